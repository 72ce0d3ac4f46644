/*
Package runner implements the interactive loop and I/O orchestration for the wizard.

It acts as the bridge between the stateless Wizard (Render/Navigate) and the
outside world. The runner turns raw answers into inputs, reports ignored
answers, and persists the state after every accepted step.

# Key Components

  - Runner: The loop. Render, Output, Input, ParseInput, Navigate, Save.
  - IOHandler: Decouples how screens are shown and answers are read.
  - TextHandler: Markdown on a writer, line input (CLI/TUI).
  - JSONHandler: JSON-Lines events for headless hosts.
  - FormHandler: huh select and input fields.

# Usage

	r := runner.NewRunner(
		runner.WithSessionID("user-1"),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdout, runner.WithStdin())),
	)

	if _, err := r.Run(ctx, engine, nil); err != nil {
		log.Fatal(err)
	}
*/
package runner
