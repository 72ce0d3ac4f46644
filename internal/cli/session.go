package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cmdassist"
	"github.com/aretw0/cmdassist/internal/logging"
	"github.com/aretw0/cmdassist/internal/presentation/tui"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/runner"
)

// RunSession executes a single wizard session on the terminal.
func RunSession(opts RunOptions) error {
	// The wizard owns the terminal: logs only in debug mode.
	logger := logging.NewNop()
	if opts.Debug {
		logger = logging.New(slog.LevelDebug)
	}
	quiet := opts.JSON || opts.Headless

	if !quiet {
		tui.PrintBanner(opts.Out, cmdassist.Version)
	}

	// Spoken text on stdout would corrupt the NDJSON stream.
	var narrationOut io.Writer
	if !opts.JSON {
		narrationOut = opts.Out
	}
	engine, err := createEngine(opts.Config, logger, opts.Debug, narrationOut)
	if err != nil {
		return err
	}
	defer engine.Close()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithInputHandler(createHandler(opts)),
	}

	var state *domain.State
	if opts.SessionID != "" {
		sessions, closeStore, err := openSessions(sigCtx, opts.Config, logger)
		if err != nil {
			return fmt.Errorf("failed to open session store: %w", err)
		}
		defer func() { _ = closeStore() }()

		if opts.Fresh {
			if err := sessions.Delete(sigCtx, opts.SessionID); err != nil {
				return fmt.Errorf("failed to reset session: %w", err)
			}
		}

		loaded := true
		state, err = sessions.LoadOrStart(sigCtx, opts.SessionID, func() *domain.State {
			loaded = false
			return engine.Start(sigCtx, opts.SessionID)
		})
		if err != nil {
			return fmt.Errorf("failed to init session: %w", err)
		}
		if verr := state.Validate(); verr != nil {
			if !errors.Is(verr, domain.ErrInvalidState) {
				return fmt.Errorf("failed to init session: %w", verr)
			}
			logger.Warn("Discarding stored session", "session_id", opts.SessionID, "error", verr)
			state, loaded = engine.Start(sigCtx, opts.SessionID), false
			if err := sessions.Save(sigCtx, opts.SessionID, state); err != nil {
				return fmt.Errorf("failed to reset session: %w", err)
			}
		}
		logSessionStatus(opts.Out, logger, opts.SessionID, state.Step, loaded, quiet)

		runnerOpts = append(runnerOpts,
			runner.WithStore(sessions.Store()),
			runner.WithSessionID(opts.SessionID),
		)
	}

	r := runner.NewRunner(runnerOpts...)
	finalState, runErr := r.Run(sigCtx, engine, state)

	completion := domain.StepPlatformSelection
	if finalState != nil {
		completion = finalState.Step
	}
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	logCompletion(opts.Out, completion, runErr, quiet, sigCtx.Signal())

	return handleExecutionError(runErr)
}

// createHandler picks the IO strategy for the run mode.
func createHandler(opts RunOptions) runner.IOHandler {
	switch {
	case opts.JSON:
		return runner.NewJSONHandler(opts.In, opts.Out)
	case opts.Form:
		return runner.NewFormHandler(opts.Out, tui.NewRenderer())
	case opts.Headless:
		return runner.NewTextHandler(opts.Out,
			runner.WithInputReader(opts.In),
			runner.WithMaxInputSize(opts.Config.Input.MaxSize),
		)
	default:
		return runner.NewTextHandler(opts.Out,
			runner.WithInputReader(opts.In),
			runner.WithMaxInputSize(opts.Config.Input.MaxSize),
			runner.WithTextHandlerRenderer(tui.NewRenderer()),
		)
	}
}

func logSessionStatus(w io.Writer, logger *slog.Logger, sessionID string, step domain.Step, loaded, quiet bool) {
	if loaded {
		logger.Info("Session Resumed", "session_id", sessionID, "step", step)
		if !quiet {
			printSystemMessage(w, "Resuming session '%s' at '%s'...", sessionID, step)
		}
		return
	}
	logger.Info("Session Created", "session_id", sessionID)
	if !quiet {
		printSystemMessage(w, "Session '%s' active.", sessionID)
	}
}
