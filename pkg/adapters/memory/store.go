package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/cmdassist/pkg/domain"
)

type entry struct {
	state   *domain.State
	expires time.Time
}

// Store implements ports.StateStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]entry
	mu   sync.RWMutex

	ttl time.Duration
	now func() time.Time
}

// Option configures the Store.
type Option func(*Store)

// WithTTL expires sessions that have not been saved for d.
// Zero keeps sessions until deleted.
func WithTTL(d time.Duration) Option {
	return func(s *Store) {
		s.ttl = d
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a new in-memory store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		data: make(map[string]entry),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) expired(e entry) bool {
	return !e.expires.IsZero() && !s.now().Before(e.expires)
}

// Save persists a copy of the state and refreshes its TTL.
func (s *Store) Save(_ context.Context, sessionID string, state *domain.State) error {
	e := entry{state: state.Snapshot()}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = e
	return nil
}

// Load retrieves a copy of the state.
func (s *Store) Load(_ context.Context, sessionID string) (*domain.State, error) {
	s.mu.RLock()
	e, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.expired(e) {
		// A Save may have landed between the two locks.
		s.mu.Lock()
		e, ok = s.data[sessionID]
		if ok && s.expired(e) {
			delete(s.data, sessionID)
			ok = false
		}
		s.mu.Unlock()
		if !ok {
			return nil, domain.ErrSessionNotFound
		}
	}
	return e.state.Snapshot(), nil
}

// Delete removes the state.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns live sessions, sorted. Expired sessions are swept.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]string, 0, len(s.data))
	for id, e := range s.data {
		if s.expired(e) {
			delete(s.data, id)
			continue
		}
		sessions = append(sessions, id)
	}
	sort.Strings(sessions)
	return sessions, nil
}
