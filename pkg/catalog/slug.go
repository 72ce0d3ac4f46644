package catalog

import (
	"strings"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// Slugify turns a free-text label into a category key candidate:
// surrounding whitespace is trimmed, the text is lowercased and every run of
// whitespace becomes a single "_". Slugify is idempotent.
func Slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "_")
}

// CategoryKey resolves the category key for a stored vendor selection.
// A known key is returned unchanged; anything else is slugified. An empty
// selection resolves to the vendor's first category.
func CategoryKey(v domain.Vendor, selection string) string {
	if selection == "" {
		if len(v.Categories) > 0 {
			return v.Categories[0].Key
		}
		return ""
	}
	if _, ok := v.Category(selection); ok {
		return selection
	}
	return Slugify(selection)
}
