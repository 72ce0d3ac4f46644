package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/cmdassist/internal/logging"
	"github.com/aretw0/cmdassist/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// Debug forces the debug level; otherwise the configured level applies.
// Logs always go to stderr so they never mix with the wizard on stdout.
func createLogger(level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.New(slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Enter Step", "step", e.Step, "from", e.From, "input", e.Input.String())
		},
		OnStepLeave: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Leave Step", "step", e.Step)
		},
		OnInputIgnored: func(ctx context.Context, e *domain.IgnoredEvent) {
			logger.Debug("Input Ignored", "step", e.Step, "input", e.Input.String())
		},
		OnResult: func(ctx context.Context, e *domain.ResultEvent) {
			logger.Debug("Result", "step", e.Step, "command", e.Command, "fallback", e.Fallback)
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}

func logCompletion(w io.Writer, step domain.Step, err error, quiet bool, sig os.Signal) {
	if quiet {
		return
	}
	switch {
	case err == nil && sig == nil:
		printSystemMessage(w, "Finished at '%s'.", step)
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted at '%s'.", step)
	case sig != nil:
		fmt.Fprintln(w)
		printSystemMessage(w, "Terminated at '%s'.", step)
	case isInterrupted(err):
		printSystemMessage(w, "Interrupted at '%s'.", step)
	}
}
