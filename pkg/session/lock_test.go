package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/cmdassist/pkg/domain"
)

type nopStore struct{}

func (nopStore) Save(context.Context, string, *domain.State) error   { return nil }
func (nopStore) Load(context.Context, string) (*domain.State, error) { return domain.NewState(), nil }
func (nopStore) Delete(context.Context, string) error                { return nil }
func (nopStore) List(context.Context) ([]string, error)              { return nil, nil }

func TestManager_LocksAreReleased(t *testing.T) {
	mgr := NewManager(nopStore{})
	ctx := context.Background()

	for i := 0; i < 5000; i++ {
		sid := fmt.Sprintf("session-%d", i)
		_ = mgr.Save(ctx, sid, domain.NewState())
		_, _ = mgr.Update(ctx, sid, func(s *domain.State) (*domain.State, bool) { return s, true })
		_ = mgr.Delete(ctx, sid)
	}

	if n := len(mgr.locks); n != 0 {
		t.Errorf("expected no idle locks, found %d", n)
	}
}
