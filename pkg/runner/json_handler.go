package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// Event types emitted on the JSON-Lines stream.
const (
	EventScreen = "screen"
	EventSystem = "system"
)

// JSONEvent is one line of JSONHandler output.
type JSONEvent struct {
	Type    string         `json:"type"`
	Screen  *domain.Screen `json:"screen,omitempty"`
	Message string         `json:"message,omitempty"`
}

// JSONInput is the structured form of an answer.
// Kind is one of select, query, back or reset.
type JSONInput struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	Writer io.Writer

	mu        sync.Mutex
	encoder   *json.Encoder
	reader    *bufio.Reader
	inputChan chan inputResult
	startOnce sync.Once
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		encoder: json.NewEncoder(w),
		reader:  bufio.NewReader(r),
	}
}

func (h *JSONHandler) emit(ev JSONEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.encoder.Encode(ev)
}

func (h *JSONHandler) Output(_ context.Context, screen domain.Screen) error {
	return h.emit(JSONEvent{Type: EventScreen, Screen: &screen})
}

func (h *JSONHandler) SystemOutput(_ context.Context, msg string) error {
	return h.emit(JSONEvent{Type: EventSystem, Message: msg})
}

func (h *JSONHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult, DefaultInputBufferSize)
		go func() {
			defer close(h.inputChan)
			for {
				text, err := h.reader.ReadString('\n')
				if strings.TrimSpace(text) != "" {
					h.inputChan <- inputResult{text: text}
				}
				if err != nil {
					if !errors.Is(err, io.EOF) {
						h.inputChan <- inputResult{err: err}
					}
					return
				}
			}
		}()
	})
}

// Input reads one line. It accepts a JSON string, a JSONInput object or plain text.
func (h *JSONHandler) Input(ctx context.Context, _ domain.Screen) (string, error) {
	h.initPump()

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
		return SanitizeInput(decodeAnswer(strings.TrimSpace(res.text)))
	}
}

func decodeAnswer(text string) string {
	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return val
	}

	var in JSONInput
	if err := json.Unmarshal([]byte(text), &in); err == nil && in.Kind != "" {
		switch domain.InputKind(in.Kind) {
		case domain.InputBack:
			return WordBack
		case domain.InputReset:
			return WordRestart
		default:
			return in.Value
		}
	}

	// Fallback: plain text
	return text
}
