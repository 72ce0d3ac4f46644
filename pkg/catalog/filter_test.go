package catalog_test

import (
	"strings"
	"testing"

	"github.com/aretw0/cmdassist/pkg/catalog"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryActions(t *testing.T) {
	store := defaultStore(t)
	cisco, _ := store.Vendor("cisco")
	fortinet, _ := store.Vendor("fortinet")

	tests := []struct {
		name     string
		vendor   domain.Vendor
		key      string
		wantTier catalog.Tier
		wantLen  int
		check    func(t *testing.T, actions []domain.Action)
	}{
		{
			name:     "Exact Tag",
			vendor:   cisco,
			key:      "acl",
			wantTier: catalog.TierExact,
			wantLen:  4,
			check: func(t *testing.T, actions []domain.Action) {
				for _, a := range actions {
					assert.Equal(t, "acl", a.Category)
				}
			},
		},
		{
			name:     "Keyword Token",
			vendor:   cisco,
			key:      "vlan_everything",
			wantTier: catalog.TierKeyword,
			wantLen:  5,
			check: func(t *testing.T, actions []domain.Action) {
				for _, a := range actions {
					assert.Contains(t, strings.ToLower(a.Label), "vlan")
				}
			},
		},
		{
			name:     "Keyword Capped",
			vendor:   cisco,
			key:      "s_anything",
			wantTier: catalog.TierKeyword,
			wantLen:  catalog.MaxCategoryActions,
		},
		{
			name:     "Fallback First Actions",
			vendor:   cisco,
			key:      "zzz_topic",
			wantTier: catalog.TierFallback,
			wantLen:  catalog.MaxCategoryActions,
			check: func(t *testing.T, actions []domain.Action) {
				assert.Equal(t, cisco.Actions[0].Label, actions[0].Label)
				assert.Equal(t, cisco.Actions[7].Label, actions[7].Label)
			},
		},
		{
			name:     "Fallback Short Vendor",
			vendor:   fortinet,
			key:      "zzz",
			wantTier: catalog.TierFallback,
			wantLen:  5,
		},
		{
			name:     "Vendor Without Actions",
			vendor:   domain.Vendor{ID: "other"},
			key:      "anything",
			wantTier: catalog.TierFallback,
			wantLen:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, tier := catalog.CategoryActions(tt.vendor, tt.key)
			assert.Equal(t, tt.wantTier, tier, "tier %s", tier)
			require.Len(t, actions, tt.wantLen)
			if tt.check != nil {
				tt.check(t, actions)
			}
		})
	}
}

func TestCategoryActions_NeverEmptyForCisco(t *testing.T) {
	store := defaultStore(t)
	cisco, _ := store.Vendor("cisco")

	for _, c := range cisco.Categories {
		actions, _ := catalog.CategoryActions(cisco, c.Key)
		assert.NotEmpty(t, actions, c.Key)
		assert.LessOrEqual(t, len(actions), catalog.MaxCategoryActions, c.Key)
	}
}
