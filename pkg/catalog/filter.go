package catalog

import (
	"strings"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// MaxCategoryActions caps every tier.
const MaxCategoryActions = 8

// Tier reports which rule produced a category listing.
type Tier int

const (
	// TierExact lists actions tagged with the category key.
	TierExact Tier = iota + 1
	// TierKeyword lists actions whose label contains the first token of the key.
	TierKeyword
	// TierFallback lists the first vendor actions.
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierKeyword:
		return "keyword"
	case TierFallback:
		return "fallback"
	}
	return "unknown"
}

// CategoryActions selects the actions shown for a vendor category key.
//
// Tagged actions win. Otherwise the first "_"-separated token of key is
// matched case-insensitively against action labels. When nothing matches, the
// first vendor actions are returned so the screen is never empty for a vendor
// that has actions.
func CategoryActions(v domain.Vendor, key string) ([]domain.Action, Tier) {
	var exact []domain.Action
	for _, a := range v.Actions {
		if a.Category == key {
			exact = append(exact, a)
			if len(exact) == MaxCategoryActions {
				break
			}
		}
	}
	if len(exact) > 0 {
		return exact, TierExact
	}

	token := strings.ToLower(strings.SplitN(key, "_", 2)[0])
	var keyword []domain.Action
	for _, a := range v.Actions {
		if strings.Contains(strings.ToLower(a.Label), token) {
			keyword = append(keyword, a)
			if len(keyword) == MaxCategoryActions {
				break
			}
		}
	}
	if len(keyword) > 0 {
		return keyword, TierKeyword
	}

	n := min(len(v.Actions), MaxCategoryActions)
	return append([]domain.Action(nil), v.Actions[:n]...), TierFallback
}
