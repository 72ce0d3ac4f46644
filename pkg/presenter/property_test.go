package presenter_test

import (
	"context"
	"testing"

	"github.com/aretw0/cmdassist/pkg/catalog"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/navigator"
	"github.com/aretw0/cmdassist/pkg/presenter"
	"pgregory.net/rapid"
)

// Every option on a rendered screen must be an input the navigator accepts,
// and the query and back affordances must agree with it too.
func TestRender_ScreensMatchNavigator(t *testing.T) {
	store, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	nav := navigator.New(store)
	p := presenter.New(store)

	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		s := nav.Start(ctx, "")

		for i := 0; i < 12; i++ {
			screen, ok := p.Render(ctx, s)
			if !ok {
				t.Fatalf("no screen for reachable state %+v", s)
			}

			for _, o := range screen.Options {
				if _, moved := nav.Navigate(ctx, s, domain.Select(o.ID)); !moved {
					t.Fatalf("%s: option %q rejected", s.Step, o.ID)
				}
			}
			if _, moved := nav.Navigate(ctx, s, domain.Query("show arp")); moved != screen.AcceptsQuery {
				t.Fatalf("%s: query accepted=%v, screen says %v", s.Step, moved, screen.AcceptsQuery)
			}
			if _, moved := nav.Navigate(ctx, s, domain.Back()); moved != screen.CanGoBack {
				t.Fatalf("%s: back accepted=%v, screen says %v", s.Step, moved, screen.CanGoBack)
			}

			choices := make([]domain.Input, 0, len(screen.Options)+2)
			for _, o := range screen.Options {
				choices = append(choices, domain.Select(o.ID))
			}
			if screen.AcceptsQuery {
				choices = append(choices, domain.Query(rapid.SampledFrom([]string{"show arp", "vlan", "acl"}).Draw(t, "query")))
			}
			if screen.CanGoBack {
				choices = append(choices, domain.Back())
			}
			if len(choices) == 0 {
				return
			}
			s, _ = nav.Navigate(ctx, s, rapid.SampledFrom(choices).Draw(t, "choice"))
		}
	})
}
