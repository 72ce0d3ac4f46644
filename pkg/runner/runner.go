package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/ports"
)

// Runner handles the interactive loop of the wizard using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text, JSON, Form).
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Store persists the state after every accepted input.
	// If nil, sessions are ephemeral.
	Store ports.StateStore

	// SessionID keys the state in Store.
	SessionID string
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdout, WithStdin())
	}
	return r
}

// Run drives wizard until the user quits, input ends or ctx is cancelled.
// If initial is nil, wizard.Start is called. The last state is returned
// so callers can persist or inspect it; ending the session is not an error.
func (r *Runner) Run(ctx context.Context, wizard ports.Wizard, initial *domain.State) (*domain.State, error) {
	state := initial
	if state == nil {
		state = wizard.Start(ctx, r.SessionID)
	}

	var (
		screen   domain.Screen
		rendered bool
	)
	for {
		if !rendered {
			var ok bool
			screen, ok = wizard.Render(ctx, state)
			if !ok {
				// Incomplete state: only reset can recover it.
				r.Logger.Warn("state cannot be rendered", "step", state.Step)
				if err := r.Handler.SystemOutput(ctx, "This step is missing a selection. Type restart to start over."); err != nil {
					return state, fmt.Errorf("output error: %w", err)
				}
			} else if err := r.Handler.Output(ctx, screen); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
			rendered = true
		}

		raw, err := r.Handler.Input(ctx, screen)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				r.Logger.Debug("session ended", "session_id", state.SessionID, "reason", err)
				return state, nil
			}
			return state, fmt.Errorf("input error: %w", err)
		}

		input, quit := ParseInput(screen, raw)
		if quit {
			return state, nil
		}

		next, moved := wizard.Navigate(ctx, state, input)
		if !moved {
			if err := r.Handler.SystemOutput(ctx, fmt.Sprintf("%q is not an option here.", raw)); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
			continue
		}

		if err := r.saveState(ctx, next); err != nil {
			return next, fmt.Errorf("critical persistence error: %w", err)
		}
		state = next
		rendered = false
	}
}

func (r *Runner) saveState(ctx context.Context, state *domain.State) error {
	if r.Store == nil || r.SessionID == "" {
		return nil
	}
	if err := r.Store.Save(ctx, r.SessionID, state); err != nil {
		return err
	}
	r.Logger.Debug("state saved", "session_id", r.SessionID, "step", state.Step)
	return nil
}
