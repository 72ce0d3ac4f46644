package navigator_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/aretw0/cmdassist/pkg/catalog"
	"github.com/aretw0/cmdassist/pkg/domain"
	"pgregory.net/rapid"
)

// expectedHistory is the only history a consistent state can carry at its step.
func expectedHistory(s *domain.State) []domain.Step {
	const (
		ps = domain.StepPlatformSelection
		pa = domain.StepPlatformAction
		vs = domain.StepVendorSelection
		va = domain.StepVendorAction
		vb = domain.StepVendorCategoryBrowse
		vc = domain.StepVendorCategoryActions
	)
	switch s.Step {
	case domain.StepPlatformAction, domain.StepVendorSelection:
		return []domain.Step{ps}
	case domain.StepVendorAction, domain.StepVendorCategoryBrowse:
		return []domain.Step{ps, vs}
	case domain.StepVendorCategoryActions:
		return []domain.Step{ps, vs, vb}
	case domain.StepResult:
		if s.Vendor == "" {
			return []domain.Step{ps, pa}
		}
		return []domain.Step{ps, vs, va}
	case domain.StepVendorCategoryResult:
		return []domain.Step{ps, vs, vb, vc}
	}
	return []domain.Step{}
}

func checkConsistent(t *rapid.T, s *domain.State) {
	if !s.Step.Valid() {
		t.Fatalf("invalid step %q", s.Step)
	}
	want := expectedHistory(s)
	if len(want) != len(s.History) || (len(want) > 0 && !reflect.DeepEqual(want, s.History)) {
		t.Fatalf("step %s: history %v, want %v", s.Step, s.History, want)
	}

	_, isDevice := domain.ParseDeviceType(s.Platform)
	switch s.Step {
	case domain.StepPlatformSelection:
		if s.Platform != "" || s.Vendor != "" || s.PlatformAction != "" || s.VendorAction != "" || s.Result != nil {
			t.Fatalf("platform selection carries selections: %+v", s)
		}
	case domain.StepPlatformAction:
		if s.Platform == "" || isDevice || s.PlatformAction != "" || s.Vendor != "" {
			t.Fatalf("platform action: %+v", s)
		}
	case domain.StepVendorSelection:
		if !isDevice || s.Vendor != "" || s.VendorAction != "" {
			t.Fatalf("vendor selection: %+v", s)
		}
	case domain.StepVendorAction, domain.StepVendorCategoryBrowse:
		if !isDevice || s.Vendor == "" || s.VendorAction != "" || s.Result != nil {
			t.Fatalf("%s: %+v", s.Step, s)
		}
	case domain.StepVendorCategoryActions:
		if s.Vendor == "" || s.VendorAction == "" || s.VendorCategoryLabel == "" || s.Result != nil {
			t.Fatalf("category actions: %+v", s)
		}
	case domain.StepResult:
		if s.Vendor == "" && s.PlatformAction == "" || s.Vendor != "" && s.VendorAction == "" {
			t.Fatalf("result without action: %+v", s)
		}
	case domain.StepVendorCategoryResult:
		if s.Result == nil {
			t.Fatalf("category result without card: %+v", s)
		}
	}
}

func inputPool(t testing.TB, store *catalog.Store) []domain.Input {
	var pool []domain.Input
	add := func(ids ...string) {
		for _, id := range ids {
			pool = append(pool, domain.Select(id))
		}
	}

	for _, p := range store.Platforms() {
		add(p.ID)
		for _, c := range p.Categories {
			add(c.Title)
		}
	}
	for _, d := range domain.DeviceTypes {
		add(string(d))
	}
	for _, v := range store.Vendors() {
		add(v.ID)
		for _, c := range v.Categories {
			add(c.Key)
		}
	}
	cisco, _ := store.Vendor("cisco")
	for _, key := range []string{"acl", "routing_ospf", "switching_vlan"} {
		actions, _ := catalog.CategoryActions(cisco, key)
		for _, a := range actions {
			add(a.Label)
		}
	}
	for _, v := range []string{"fortinet", "juniper"} {
		for _, a := range store.VendorActions(v) {
			add(a.Label)
		}
	}
	add(
		domain.OptionAnotherAction, domain.OptionChangePlatform, domain.OptionChangeVendor,
		domain.OptionRestart, domain.OptionExploreAnother, domain.OptionDifferentCategory,
		"bogus",
	)
	pool = append(pool,
		domain.Query("show arp"),
		domain.Query("acl"),
		domain.Query("  "),
		domain.Back(),
		domain.Back(),
		domain.Back(),
		domain.Reset(),
	)
	return pool
}

func TestNavigate_StateStaysConsistent(t *testing.T) {
	nav, store := newNavigator(t)
	pool := inputPool(t, store)

	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		s := nav.Start(ctx, "prop")
		checkConsistent(t, s)

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			in := rapid.SampledFrom(pool).Draw(t, "input")
			before := s.Snapshot()

			next, moved := nav.Navigate(ctx, s, in)
			if !reflect.DeepEqual(before, s) {
				t.Fatalf("Navigate mutated its input on %s", in)
			}
			if !moved && !reflect.DeepEqual(before, next) {
				t.Fatalf("ignored %s changed the state", in)
			}
			if next.SessionID != "prop" {
				t.Fatalf("session id lost after %s", in)
			}
			checkConsistent(t, next)
			s = next
		}
	})
}

func TestNavigate_ForwardThenBackCountsMatch(t *testing.T) {
	nav, store := newNavigator(t)
	pool := inputPool(t, store)

	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		s := nav.Start(ctx, "")
		forwards := 0

		n := rapid.IntRange(0, 8).Draw(t, "forwards")
		for i := 0; i < n; i++ {
			in := rapid.SampledFrom(pool).Draw(t, "input")
			if in.Kind != domain.InputSelect && in.Kind != domain.InputQuery {
				continue
			}
			next, moved := nav.Navigate(ctx, s, in)
			if !moved {
				continue
			}
			// Result options may pop or reset; only count pure pushes.
			if len(next.History) != len(s.History)+1 {
				forwards = len(next.History)
			} else {
				forwards++
			}
			s = next
		}

		if len(s.History) != forwards {
			t.Fatalf("history %d after %d forwards", len(s.History), forwards)
		}
		for forwards > 0 {
			next, moved := nav.Navigate(ctx, s, domain.Back())
			if !moved {
				t.Fatalf("back ignored with %d entries left", forwards)
			}
			forwards--
			if len(next.History) != forwards {
				t.Fatalf("history %d, want %d", len(next.History), forwards)
			}
			s = next
		}
		if !reflect.DeepEqual(s, domain.NewState()) {
			t.Fatalf("full unwind left %+v", s)
		}
		if _, moved := nav.Navigate(ctx, s, domain.Back()); moved {
			t.Fatal("back at start must be ignored")
		}
	})
}

func TestNavigate_ResetFromAnywhere(t *testing.T) {
	nav, store := newNavigator(t)
	pool := inputPool(t, store)

	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		s := nav.Start(ctx, "id")
		for _, in := range rapid.SliceOfN(rapid.SampledFrom(pool), 0, 20).Draw(t, "inputs") {
			s, _ = nav.Navigate(ctx, s, in)
		}

		once, moved := nav.Navigate(ctx, s, domain.Reset())
		if !moved {
			t.Fatal("reset ignored")
		}
		twice, _ := nav.Navigate(ctx, once, domain.Reset())
		want := domain.NewState()
		want.SessionID = "id"
		if !reflect.DeepEqual(once, want) || !reflect.DeepEqual(twice, want) {
			t.Fatalf("reset gave %+v then %+v", once, twice)
		}
	})
}
