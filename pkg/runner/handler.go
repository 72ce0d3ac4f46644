package runner

import (
	"context"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI), JSON (Structured) and Form modes.
type IOHandler interface {
	// Output presents a screen to the user.
	Output(ctx context.Context, screen domain.Screen) error

	// Input reads a response to screen. The raw text is interpreted by ParseInput.
	// io.EOF ends the session.
	Input(ctx context.Context, screen domain.Screen) (string, error)

	// SystemOutput presents a meta-message (rejected input, status updates).
	// This is distinct from screen rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer transforms Markdown before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
