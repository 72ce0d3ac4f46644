package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/presenter"
)

const typeTopic = "\x00topic"

// FormHandler presents options as a huh select and free text as a huh input.
// Result cards and system messages go to Writer.
type FormHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer

	accessible bool
}

// NewFormHandler creates a form based handler. Forms fall back to
// accessible (line based) mode when stdin is not a terminal.
func NewFormHandler(w io.Writer, renderer ContentRenderer) *FormHandler {
	if w == nil {
		w = os.Stdout
	}
	return &FormHandler{
		Writer:     w,
		Renderer:   renderer,
		accessible: !term.IsTerminal(int(os.Stdin.Fd())),
	}
}

func (h *FormHandler) newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if h.accessible {
		form = form.WithAccessible(true)
	}
	return form
}

// Output prints the result card, if any. The title and options are part of the form.
func (h *FormHandler) Output(_ context.Context, screen domain.Screen) error {
	if screen.Result == nil {
		return nil
	}
	out := presenter.CommandMarkdown(*screen.Result)
	if h.Renderer != nil {
		if rendered, err := h.Renderer(out); err == nil {
			out = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(out))
	return err
}

func (h *FormHandler) Input(ctx context.Context, screen domain.Screen) (string, error) {
	choice, err := h.choose(ctx, screen)
	if err != nil {
		return "", err
	}
	if choice != typeTopic {
		return choice, nil
	}

	var topic string
	prompt := screen.QueryPrompt
	if prompt == "" {
		prompt = "What do you need?"
	}
	form := h.newForm(huh.NewGroup(
		huh.NewInput().
			Title(prompt).
			Value(&topic).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("type a topic")
				}
				_, err := SanitizeInput(s)
				return err
			}),
	))
	if err := h.run(ctx, form); err != nil {
		return "", err
	}
	return SanitizeInput(strings.TrimSpace(topic))
}

func (h *FormHandler) choose(ctx context.Context, screen domain.Screen) (string, error) {
	opts := make([]huh.Option[string], 0, len(screen.Options)+4)
	for _, o := range screen.Options {
		label := o.Label
		if o.Icon != "" {
			label = o.Icon + " " + label
		}
		opts = append(opts, huh.NewOption(label, o.ID))
	}
	if screen.AcceptsQuery {
		opts = append(opts, huh.NewOption("✏️  Type what you need", typeTopic))
	}
	if screen.CanGoBack {
		opts = append(opts, huh.NewOption("⬅️  Back", WordBack))
	}
	if screen.Step != domain.StepPlatformSelection {
		opts = append(opts, huh.NewOption("🔄 Start over", WordRestart))
	}
	opts = append(opts, huh.NewOption("🚪 Quit", WordQuit))

	var choice string
	sel := huh.NewSelect[string]().
		Title(screen.Title).
		Options(opts...).
		Value(&choice)
	if screen.Hint != "" {
		sel = sel.Description(screen.Hint)
	} else if screen.Body != "" {
		sel = sel.Description(screen.Body)
	}

	if err := h.run(ctx, h.newForm(huh.NewGroup(sel))); err != nil {
		return "", err
	}
	return choice, nil
}

func (h *FormHandler) run(ctx context.Context, form *huh.Form) error {
	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return io.EOF
	}
	return err
}

func (h *FormHandler) SystemOutput(_ context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, systemStyle.Render("[System] "+msg))
	return err
}
