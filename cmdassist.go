package cmdassist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/cmdassist/internal/logging"
	"github.com/aretw0/cmdassist/pkg/catalog"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/narration"
	"github.com/aretw0/cmdassist/pkg/navigator"
	"github.com/aretw0/cmdassist/pkg/ports"
	"github.com/aretw0/cmdassist/pkg/presenter"
)

// Engine is the high-level entry point of the Command Assist library.
// It wires the catalog, the navigator and the presenter, and implements
// ports.Wizard for the adapters.
type Engine struct {
	catalog     ports.Catalog
	catalogPath string
	navigator   *navigator.Navigator
	presenter   *presenter.Presenter
	hooks       domain.LifecycleHooks
	narrator    ports.Narrator
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithCatalog injects a custom catalog, bypassing the embedded dataset.
func WithCatalog(c ports.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithCatalogFile loads the catalog from a YAML file instead of the embedded dataset.
func WithCatalogFile(path string) Option {
	return func(e *Engine) {
		e.catalogPath = path
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls accumulate.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithNarrator speaks the narration of every transition.
func WithNarrator(n ports.Narrator) Option {
	return func(e *Engine) {
		e.narrator = n
	}
}

// New initializes an Engine. Without WithCatalog or WithCatalogFile the
// embedded catalog is used.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.narrator == nil {
		eng.narrator = narration.Nop{}
	}

	if eng.catalog == nil {
		var (
			store *catalog.Store
			err   error
		)
		if eng.catalogPath != "" {
			store, err = catalog.LoadFile(eng.catalogPath)
			eng.logger = eng.logger.With("catalog", eng.catalogPath)
		} else {
			store, err = catalog.Default()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		eng.catalog = store
	}

	eng.navigator = navigator.New(eng.catalog,
		navigator.WithLifecycleHooks(eng.hooks.Merge(narration.Hooks(eng.narrator))),
		navigator.WithLogger(eng.logger),
	)
	eng.presenter = presenter.New(eng.catalog)
	return eng, nil
}

// Start creates the initial state and triggers the enter hook.
func (e *Engine) Start(ctx context.Context, sessionID string) *domain.State {
	return e.navigator.Start(ctx, sessionID)
}

// Render returns the screen for the state without transitioning.
func (e *Engine) Render(ctx context.Context, state *domain.State) (domain.Screen, bool) {
	return e.presenter.Render(ctx, state)
}

// Navigate applies an input. moved is false when the input was ignored.
// Entering a result step reports the synthesized card to OnResult.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input domain.Input) (*domain.State, bool) {
	next, moved := e.navigator.Navigate(ctx, state, input)
	if moved && next.Step.IsResult() && e.hooks.OnResult != nil {
		if screen, ok := e.presenter.Render(ctx, next); ok && screen.Result != nil {
			e.hooks.OnResult(ctx, &domain.ResultEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventResult, SessionID: next.SessionID},
				Step:      next.Step,
				Command:   screen.Result.Command,
				Fallback:  screen.Result.Fallback,
			})
		}
	}
	return next, moved
}

// Lookup synthesizes a command card without running the wizard. target is an
// OS platform id or a vendor id; selection is a category title, an action
// label or free text. Free text also carries the matching catalog topic.
func (e *Engine) Lookup(target, selection string) (domain.CommandResult, error) {
	if selection == "" {
		return domain.CommandResult{}, fmt.Errorf("%w: empty selection", domain.ErrUnknownInput)
	}
	if p, ok := e.catalog.Platform(target); ok {
		return presenter.Relate(e.catalog, presenter.PlatformResult(p, selection), selection, ""), nil
	}
	if v, ok := e.catalog.Vendor(target); ok {
		return presenter.Relate(e.catalog, presenter.VendorResult(v, selection), selection, v.ID), nil
	}
	return domain.CommandResult{}, fmt.Errorf("%w: %q", domain.ErrNotInCatalog, target)
}

// Search answers a free-text question from the catalog topics. vendor is
// optional and detected from the question when empty.
func (e *Engine) Search(query, vendor string) domain.TopicMatch {
	m := e.catalog.Search(query, vendor)
	e.logger.Debug("Topic search", "query", m.Query, "vendor", m.Vendor, "outcome", m.Outcome, "score", m.Score)
	return m
}

// Catalog returns the lookup store used by the engine.
func (e *Engine) Catalog() ports.Catalog {
	return e.catalog
}

// Edges describes the step machine for visualization.
func (e *Engine) Edges() []navigator.Edge {
	return navigator.Edges()
}

// Close silences any narration in flight.
func (e *Engine) Close() error {
	e.narrator.Stop()
	return nil
}

var _ ports.Wizard = (*Engine)(nil)
