package narration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// TextEnv carries the utterance to command backends.
const TextEnv = "CMDASSIST_NARRATION_TEXT"

// Nop discards every utterance. It is the default narrator.
type Nop struct{}

func (Nop) Say(context.Context, string) {}
func (Nop) Stop()                       {}

// WriterBackend prints utterances, one per line.
type WriterBackend struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
}

// NewWriterBackend writes to w with prefix before every line.
func NewWriterBackend(w io.Writer, prefix string) *WriterBackend {
	return &WriterBackend{w: w, prefix: prefix}
}

func (b *WriterBackend) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := fmt.Fprintf(b.w, "%s%s\n", b.prefix, text)
	return err
}

// CommandBackend runs an external speech program per utterance, for example
// "espeak --stdin" or "say -f -".
//
// The text is never passed on the command line: it is written to stdin and
// exported as TextEnv.
type CommandBackend struct {
	Command string
	Args    []string
	Dir     string
}

// ParseCommand splits a configured command line on whitespace.
func ParseCommand(line string) (*CommandBackend, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("narration command is empty")
	}
	return &CommandBackend{Command: fields[0], Args: fields[1:]}, nil
}

func (b *CommandBackend) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, b.Command, b.Args...)
	cmd.Dir = b.Dir
	cmd.Env = append(cmd.Environ(), TextEnv+"="+text)
	cmd.Stdin = strings.NewReader(text + "\n")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", b.Command, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
