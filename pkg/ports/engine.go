package ports

import (
	"context"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// Wizard is the stateless surface used by adapters (HTTP, MCP) that keep state
// outside the process or per request.
type Wizard interface {
	// Start returns a fresh state at the first step.
	Start(ctx context.Context, sessionID string) *domain.State

	// Render returns the screen for a state. ok is false when the state lacks
	// a selection its step requires.
	Render(ctx context.Context, state *domain.State) (domain.Screen, bool)

	// Navigate applies an input. moved is false when the input was ignored,
	// in which case next equals state.
	Navigate(ctx context.Context, state *domain.State, input domain.Input) (next *domain.State, moved bool)
}
