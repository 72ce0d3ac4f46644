package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStepEnter    EventType = "step_enter"
	EventStepLeave    EventType = "step_leave"
	EventInputIgnored EventType = "input_ignored"
	EventResult       EventType = "result"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// StepEvent represents entry into or exit from a step.
type StepEvent struct {
	EventBase
	Step Step `json:"step"`
	// From is the step left by this transition (enter events only; empty on start).
	From  Step  `json:"from,omitempty"`
	Input Input `json:"input"`
	// Narration is the spoken summary of the transition (enter events only).
	Narration string `json:"narration,omitempty"`
}

// IgnoredEvent reports an input the current step does not accept.
type IgnoredEvent struct {
	EventBase
	Step  Step  `json:"step"`
	Input Input `json:"input"`
}

// ResultEvent reports a synthesized command card.
type ResultEvent struct {
	EventBase
	Step     Step   `json:"step"`
	Command  string `json:"command"`
	Fallback bool   `json:"fallback"`
}

// LifecycleHooks defines callbacks for wizard observability.
type LifecycleHooks struct {
	OnStepEnter    func(context.Context, *StepEvent)
	OnStepLeave    func(context.Context, *StepEvent)
	OnInputIgnored func(context.Context, *IgnoredEvent)
	OnResult       func(context.Context, *ResultEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStepEnter:    chain(h.OnStepEnter, other.OnStepEnter),
		OnStepLeave:    chain(h.OnStepLeave, other.OnStepLeave),
		OnInputIgnored: chain(h.OnInputIgnored, other.OnInputIgnored),
		OnResult:       chain(h.OnResult, other.OnResult),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
