package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// BrowseVendor is the only vendor whose actions are grouped into categories;
// every other vendor lists its actions directly.
const BrowseVendor = "cisco"

// Validate checks ids, names and cross references of a dataset.
// All problems are reported together; each wraps domain.ErrInvalidCatalog.
func Validate(ds Dataset) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidCatalog}, args...)...))
	}

	seen := make(map[string]bool)
	for i, p := range ds.Platforms {
		switch {
		case strings.TrimSpace(p.ID) == "":
			fail("platform #%d: empty id", i)
			continue
		case seen[p.ID]:
			fail("platform %q: duplicate id", p.ID)
		}
		seen[p.ID] = true

		if _, clash := domain.ParseDeviceType(p.ID); clash {
			fail("platform %q: id is reserved for a device type", p.ID)
		}
		if p.Name == "" {
			fail("platform %q: empty name", p.ID)
		}

		keys := make(map[string]bool)
		titles := make(map[string]bool)
		for _, c := range p.Categories {
			if c.Key == "" || c.Title == "" {
				fail("platform %q: category needs a key and a title", p.ID)
				continue
			}
			if keys[c.Key] {
				fail("platform %q: duplicate category key %q", p.ID, c.Key)
			}
			if titles[c.Title] {
				fail("platform %q: duplicate category title %q", p.ID, c.Title)
			}
			keys[c.Key], titles[c.Title] = true, true
			if len(c.Suggestions) == 0 {
				fail("platform %q: category %q has no suggestions", p.ID, c.Key)
			}
			for _, s := range c.Suggestions {
				if s.Label == "" || s.Command == "" {
					fail("platform %q: category %q: suggestion needs a label and a command", p.ID, c.Key)
				}
			}
		}
	}

	seen = make(map[string]bool)
	for i, v := range ds.Vendors {
		switch {
		case strings.TrimSpace(v.ID) == "":
			fail("vendor #%d: empty id", i)
			continue
		case seen[v.ID]:
			fail("vendor %q: duplicate id", v.ID)
		}
		seen[v.ID] = true

		if v.Name == "" {
			fail("vendor %q: empty name", v.ID)
		}

		if len(v.Categories) > 0 && v.ID != BrowseVendor {
			fail("vendor %q: only %q is browsed by category", v.ID, BrowseVendor)
		}
		cats := make(map[string]bool)
		for _, c := range v.Categories {
			if c.Key == "" || c.Title == "" {
				fail("vendor %q: category needs a key and a title", v.ID)
				continue
			}
			if cats[c.Key] {
				fail("vendor %q: duplicate category key %q", v.ID, c.Key)
			}
			cats[c.Key] = true
		}

		labels := make(map[string]bool)
		for _, a := range v.Actions {
			if a.Label == "" {
				fail("vendor %q: action with empty label", v.ID)
				continue
			}
			if labels[a.Label] {
				fail("vendor %q: duplicate action %q", v.ID, a.Label)
			}
			labels[a.Label] = true
			if a.Command == "" {
				fail("vendor %q: action %q has no command", v.ID, a.Label)
			}
			if a.Category != "" && !cats[a.Category] {
				fail("vendor %q: action %q references unknown category %q", v.ID, a.Label, a.Category)
			}
		}
	}

	seen = make(map[string]bool)
	for i, t := range ds.Topics {
		switch {
		case strings.TrimSpace(t.ID) == "":
			fail("topic #%d: empty id", i)
			continue
		case seen[t.ID]:
			fail("topic %q: duplicate id", t.ID)
		}
		seen[t.ID] = true

		if t.Vendor == "" {
			fail("topic %q: empty vendor (use %q)", t.ID, domain.TopicAnyVendor)
		}
		if t.Title == "" || t.Intro == "" {
			fail("topic %q: topic needs a title and an intro", t.ID)
		}
		usable := false
		for _, k := range t.Keywords {
			if Normalize(k) != "" {
				usable = true
			}
		}
		if !usable {
			fail("topic %q: no usable keyword", t.ID)
		}
		for _, b := range t.Blocks {
			if strings.TrimSpace(b.Commands) == "" {
				fail("topic %q: empty command block", t.ID)
			}
		}
	}

	return errors.Join(errs...)
}
