package narration

import (
	"context"

	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/ports"
)

// Hooks speaks the narration attached to every step transition.
func Hooks(n ports.Narrator) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			if e.Narration != "" {
				n.Say(ctx, e.Narration)
			}
		},
	}
}
