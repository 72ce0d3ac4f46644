package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/cmdassist/internal/config"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Config config.Config

	Headless bool
	JSON     bool
	Form     bool
	Debug    bool

	// SessionID keys the wizard state in the configured session store so a
	// later run can resume it. Empty runs are ephemeral.
	SessionID string
	// Fresh drops the stored session before starting.
	Fresh bool

	// In and Out default to the process stdio.
	In  io.Reader
	Out io.Writer
}

// Execute handles the 'run' command logic.
func Execute(opts RunOptions) error {
	modes := 0
	for _, on := range []bool{opts.Headless, opts.JSON, opts.Form} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return fmt.Errorf("--headless, --json and --form cannot be used together")
	}
	if opts.Fresh && opts.SessionID == "" {
		return fmt.Errorf("--fresh requires --session")
	}

	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	return RunSession(opts)
}
