package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/presenter"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa")).Bold(true)
	systemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Italic(true)
)

// TextHandler implements the standard text-based interface.
// Screens are written as Markdown, optionally passed through a ContentRenderer.
type TextHandler struct {
	Writer       io.Writer
	Renderer     ContentRenderer
	MaxInputSize int

	source    io.Reader
	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithStdin reads answers from os.Stdin.
func WithStdin() TextHandlerOption {
	return WithInputReader(os.Stdin)
}

// WithInputReader reads answers line by line from r.
// Without a reader, input must be supplied through FeedInput.
func WithInputReader(r io.Reader) TextHandlerOption {
	return func(h *TextHandler) {
		h.source = r
	}
}

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithMaxInputSize overrides the sanitizer byte limit.
func WithMaxInputSize(n int) TextHandlerOption {
	return func(h *TextHandler) {
		h.MaxInputSize = n
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: w}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult, DefaultInputBufferSize)
		if h.source != nil {
			go h.pump(bufio.NewReader(h.source))
		}
	})
}

func (h *TextHandler) pump(reader *bufio.Reader) {
	for {
		text, err := reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// FeedInput injects a line as if it had been typed.
// Used by bridges (and tests) that own the input source.
func (h *TextHandler) FeedInput(text string, err error) {
	h.initPump()
	h.inputChan <- inputResult{text: text, err: err}
}

func (h *TextHandler) Output(_ context.Context, screen domain.Screen) error {
	output := presenter.Markdown(screen)
	if h.Renderer != nil {
		if rendered, err := h.Renderer(output); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(output))
	return err
}

func (h *TextHandler) Input(ctx context.Context, _ domain.Screen) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, promptStyle.Render(">")+" ")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInputLimit(strings.TrimSpace(res.text), h.MaxInputSize)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			if clean == "" {
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) SystemOutput(_ context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "\n%s\n", systemStyle.Render("[System] "+msg))
	return err
}
