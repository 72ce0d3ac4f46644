package runner

import (
	"context"

	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/ports"
)

// RichResponse combines state and screen for rich clients (Web, MCP, etc).
// This encapsulates the common pattern of: Navigate -> Render -> Return Screen.
type RichResponse struct {
	State  *domain.State  `json:"state"`
	Screen *domain.Screen `json:"screen,omitempty"`
	Moved  bool           `json:"moved"`
}

// NavigateAndRender performs a navigation step and immediately renders the resulting state.
// Screen is nil when the resulting state cannot be rendered.
func NavigateAndRender(ctx context.Context, wizard ports.Wizard, current *domain.State, input domain.Input) *RichResponse {
	next, moved := wizard.Navigate(ctx, current, input)
	resp := RenderState(ctx, wizard, next)
	resp.Moved = moved
	return resp
}

// RenderState wraps Render for clients that fetch a state without navigating.
func RenderState(ctx context.Context, wizard ports.Wizard, state *domain.State) *RichResponse {
	resp := &RichResponse{State: state}
	if screen, ok := wizard.Render(ctx, state); ok {
		resp.Screen = &screen
	}
	return resp
}
