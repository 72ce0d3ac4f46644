package tests

import (
	"testing"

	"github.com/aretw0/cmdassist/pkg/ports"
)

// CatalogContractTest is a reusable test suite that verifies if an adapter complies with ports.Catalog.
func CatalogContractTest(t *testing.T, catalog ports.Catalog) {
	t.Helper()

	t.Run("Platforms_Resolvable", func(t *testing.T) {
		platforms := catalog.Platforms()
		if len(platforms) == 0 {
			t.Fatal("expected at least one platform")
		}
		for _, p := range platforms {
			got, ok := catalog.Platform(p.ID)
			if !ok {
				t.Fatalf("platform %s listed but not resolvable", p.ID)
			}
			if got.Name != p.Name {
				t.Errorf("name mismatch for %s. got %q, want %q", p.ID, got.Name, p.Name)
			}
			if len(catalog.PlatformCategories(p.ID)) != len(p.Categories) {
				t.Errorf("category count mismatch for %s", p.ID)
			}
		}
	})

	t.Run("Vendors_Resolvable", func(t *testing.T) {
		for _, v := range catalog.Vendors() {
			got, ok := catalog.Vendor(v.ID)
			if !ok {
				t.Fatalf("vendor %s listed but not resolvable", v.ID)
			}
			actions := catalog.VendorActions(v.ID)
			if len(actions) != len(got.Actions) {
				t.Errorf("action count mismatch for %s. got %d, want %d", v.ID, len(actions), len(got.Actions))
			}
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		if _, ok := catalog.Platform("non-existent"); ok {
			t.Error("expected unknown platform to report false")
		}
		if _, ok := catalog.Vendor("non-existent"); ok {
			t.Error("expected unknown vendor to report false")
		}
		if got := catalog.PlatformCategories("non-existent"); len(got) != 0 {
			t.Errorf("expected no categories, got %d", len(got))
		}
		if got := catalog.VendorActions("non-existent"); len(got) != 0 {
			t.Errorf("expected no actions, got %d", len(got))
		}
	})

	t.Run("Immutable", func(t *testing.T) {
		platforms := catalog.Platforms()
		if len(platforms) == 0 || len(platforms[0].Categories) == 0 {
			t.Skip("no categories to mutate")
		}
		id := platforms[0].ID
		original := platforms[0].Categories[0].Title

		cats := catalog.PlatformCategories(id)
		cats[0].Title = "mutated"
		platforms[0].Categories[0].Title = "mutated"

		again := catalog.PlatformCategories(id)
		if again[0].Title != original {
			t.Errorf("catalog was mutated through a returned value: %q", again[0].Title)
		}
	})
}
