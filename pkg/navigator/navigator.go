package navigator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/cmdassist/internal/logging"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/ports"
)

// Navigator is the wizard state machine. It is stateless: every call takes a
// state and returns a new one, so one Navigator serves any number of sessions.
type Navigator struct {
	catalog ports.Catalog
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(n *Navigator) {
		n.hooks = n.hooks.Merge(hooks)
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(n *Navigator) {
		n.now = now
	}
}

// New creates a Navigator over catalog.
func New(catalog ports.Catalog, opts ...Option) *Navigator {
	n := &Navigator{
		catalog: catalog,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Start returns a fresh state at platform selection.
func (n *Navigator) Start(ctx context.Context, sessionID string) *domain.State {
	s := domain.NewState()
	s.SessionID = sessionID
	n.emitEnter(ctx, "", s, domain.Input{}, "")
	return s
}

// Navigate applies in to state.
//
// The input state is never modified. When the current step does not accept
// in, Navigate returns a copy of state and false. Query text is trimmed and
// an empty query is ignored.
func (n *Navigator) Navigate(ctx context.Context, state *domain.State, in domain.Input) (*domain.State, bool) {
	if state == nil {
		state = domain.NewState()
	}
	if in.Kind == domain.InputQuery {
		in.Value = strings.TrimSpace(in.Value)
	}

	next := state.Snapshot()
	narration, ok := n.apply(next, in)
	if !ok {
		n.logger.Debug("input ignored", "step", state.Step, "input", in.String())
		n.emitIgnored(ctx, state, in)
		return state.Snapshot(), false
	}

	n.logger.Debug("transition", "from", state.Step, "to", next.Step, "input", in.String(), "depth", len(next.History))
	n.emitLeave(ctx, state, in)
	n.emitEnter(ctx, state.Step, next, in, narration)
	return next, true
}

func (n *Navigator) apply(s *domain.State, in domain.Input) (string, bool) {
	if err := in.Validate(); err != nil {
		return "", false
	}
	switch in.Kind {
	case domain.InputReset:
		s.Reset()
		return "Starting over.", true
	case domain.InputBack:
		return n.back(s)
	case domain.InputSelect:
		if in.Value == "" {
			return "", false
		}
	case domain.InputQuery:
		if in.Value == "" {
			return "", false
		}
	}

	switch s.Step {
	case domain.StepPlatformSelection:
		return n.selectPlatform(s, in)
	case domain.StepPlatformAction:
		return n.platformAction(s, in)
	case domain.StepVendorSelection:
		return n.selectVendor(s, in)
	case domain.StepVendorAction:
		return n.vendorAction(s, in)
	case domain.StepVendorCategoryBrowse:
		return n.browseCategory(s, in)
	case domain.StepVendorCategoryActions:
		return n.categoryAction(s, in)
	case domain.StepResult:
		return n.resultOption(s, in)
	case domain.StepVendorCategoryResult:
		return n.categoryResultOption(s, in)
	}
	return "", false
}

func (n *Navigator) emitEnter(ctx context.Context, from domain.Step, s *domain.State, in domain.Input, narration string) {
	if n.hooks.OnStepEnter == nil {
		return
	}
	n.hooks.OnStepEnter(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: n.now(), Type: domain.EventStepEnter, SessionID: s.SessionID},
		Step:      s.Step,
		From:      from,
		Input:     in,
		Narration: narration,
	})
}

func (n *Navigator) emitLeave(ctx context.Context, s *domain.State, in domain.Input) {
	if n.hooks.OnStepLeave == nil {
		return
	}
	n.hooks.OnStepLeave(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: n.now(), Type: domain.EventStepLeave, SessionID: s.SessionID},
		Step:      s.Step,
		Input:     in,
	})
}

func (n *Navigator) emitIgnored(ctx context.Context, s *domain.State, in domain.Input) {
	if n.hooks.OnInputIgnored == nil {
		return
	}
	n.hooks.OnInputIgnored(ctx, &domain.IgnoredEvent{
		EventBase: domain.EventBase{Timestamp: n.now(), Type: domain.EventInputIgnored, SessionID: s.SessionID},
		Step:      s.Step,
		Input:     in,
	})
}
