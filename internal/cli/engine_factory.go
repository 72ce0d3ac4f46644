package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cmdassist"
	"github.com/aretw0/cmdassist/internal/config"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/narration"
)

// NarrationPrefix marks narration printed by the text backend.
const NarrationPrefix = "🔊 "

// createEngine initializes an engine with standard CLI conventions.
// narrationOut receives spoken text when narration is enabled without a
// speech command; it may be nil to discard it.
func createEngine(cfg config.Config, logger *slog.Logger, debug bool, narrationOut io.Writer, hooks ...domain.LifecycleHooks) (*cmdassist.Engine, error) {
	engineOpts := []cmdassist.Option{cmdassist.WithLogger(logger)}

	if debug {
		engineOpts = append(engineOpts, cmdassist.WithLifecycleHooks(createDebugHooks(logger)))
	}
	for _, h := range hooks {
		engineOpts = append(engineOpts, cmdassist.WithLifecycleHooks(h))
	}

	if cfg.Catalog.Path != "" {
		engineOpts = append(engineOpts, cmdassist.WithCatalogFile(cfg.Catalog.Path))
	}

	if cfg.Narration.Enabled {
		backend, err := createNarrationBackend(cfg.Narration, narrationOut)
		if err != nil {
			return nil, err
		}
		if backend != nil {
			engineOpts = append(engineOpts, cmdassist.WithNarrator(
				narration.NewSpeaker(backend, narration.WithLogger(logger)),
			))
		}
	}

	engine, err := cmdassist.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

func createNarrationBackend(cfg config.NarrationConfig, out io.Writer) (narration.Backend, error) {
	if cfg.Command != "" {
		backend, err := narration.ParseCommand(cfg.Command)
		if err != nil {
			return nil, fmt.Errorf("narration: %w", err)
		}
		return backend, nil
	}
	if out == nil {
		return nil, nil
	}
	return narration.NewWriterBackend(out, NarrationPrefix), nil
}
