package narration

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/cmdassist/internal/logging"
)

// Backend produces speech for one utterance. Speak should return promptly
// once ctx is cancelled.
type Backend interface {
	Speak(ctx context.Context, text string) error
}

// Speaker delivers utterances to a Backend without blocking the caller.
// A new utterance cancels the one in flight.
type Speaker struct {
	backend Backend
	logger  *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
	wg     sync.WaitGroup
}

// Option configures a Speaker.
type Option func(*Speaker)

// WithLogger sets the logger used to report backend failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Speaker) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSpeaker creates a Speaker over backend.
func NewSpeaker(backend Backend, opts ...Option) *Speaker {
	s := &Speaker{
		backend: backend,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Say starts speaking text, superseding any pending utterance.
// The utterance outlives ctx cancellation; use Stop to silence it.
func (s *Speaker) Say(ctx context.Context, text string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	speakCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.seq++
	id := s.seq
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer s.release(id, cancel)

		if err := s.backend.Speak(speakCtx, text); err != nil && speakCtx.Err() == nil {
			s.logger.Warn("narration failed", "err", err)
		}
	}()
}

// Stop cancels the utterance in flight, if any.
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Wait blocks until every started utterance has returned.
func (s *Speaker) Wait() {
	s.wg.Wait()
}

// Close stops speech and waits for the backend to return.
func (s *Speaker) Close() error {
	s.Stop()
	s.Wait()
	return nil
}

func (s *Speaker) release(id uint64, cancel context.CancelFunc) {
	cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == id {
		s.cancel = nil
	}
}
