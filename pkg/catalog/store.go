package catalog

import (
	"github.com/aretw0/cmdassist/pkg/domain"
)

// Dataset is the raw content of a catalog file.
type Dataset struct {
	Platforms []domain.Platform `mapstructure:"platforms"`
	Vendors   []domain.Vendor   `mapstructure:"vendors"`
	Topics    []domain.Topic    `mapstructure:"topics"`
}

// Store implements ports.Catalog over an immutable Dataset.
// Safe for concurrent use: nothing mutates it after New returns.
type Store struct {
	platforms   []domain.Platform
	vendors     []domain.Vendor
	topics      []indexedTopic
	platformIdx map[string]int
	vendorIdx   map[string]int
}

// New validates ds and builds a Store from a private copy of it.
func New(ds Dataset) (*Store, error) {
	if err := Validate(ds); err != nil {
		return nil, err
	}

	s := &Store{
		platforms:   make([]domain.Platform, len(ds.Platforms)),
		vendors:     make([]domain.Vendor, len(ds.Vendors)),
		platformIdx: make(map[string]int, len(ds.Platforms)),
		vendorIdx:   make(map[string]int, len(ds.Vendors)),
		topics:      indexTopics(ds.Topics),
	}
	for i, p := range ds.Platforms {
		s.platforms[i] = clonePlatform(p)
		s.platformIdx[p.ID] = i
	}
	for i, v := range ds.Vendors {
		s.vendors[i] = cloneVendor(v)
		s.vendorIdx[v.ID] = i
	}
	return s, nil
}

// Platform returns the OS platform with the given id.
func (s *Store) Platform(id string) (domain.Platform, bool) {
	i, ok := s.platformIdx[id]
	if !ok {
		return domain.Platform{}, false
	}
	return clonePlatform(s.platforms[i]), true
}

// PlatformCategories returns the ordered categories of a platform, or nil.
func (s *Store) PlatformCategories(id string) []domain.Category {
	i, ok := s.platformIdx[id]
	if !ok {
		return nil
	}
	return cloneCategories(s.platforms[i].Categories)
}

// Vendor returns the vendor with the given id.
func (s *Store) Vendor(id string) (domain.Vendor, bool) {
	i, ok := s.vendorIdx[id]
	if !ok {
		return domain.Vendor{}, false
	}
	return cloneVendor(s.vendors[i]), true
}

// VendorActions returns the ordered actions of a vendor, or nil.
func (s *Store) VendorActions(id string) []domain.Action {
	i, ok := s.vendorIdx[id]
	if !ok {
		return nil
	}
	return append([]domain.Action(nil), s.vendors[i].Actions...)
}

// Platforms lists every OS platform in catalog order.
func (s *Store) Platforms() []domain.Platform {
	out := make([]domain.Platform, len(s.platforms))
	for i, p := range s.platforms {
		out[i] = clonePlatform(p)
	}
	return out
}

// Vendors lists every vendor in catalog order.
func (s *Store) Vendors() []domain.Vendor {
	out := make([]domain.Vendor, len(s.vendors))
	for i, v := range s.vendors {
		out[i] = cloneVendor(v)
	}
	return out
}

// Topics lists the free-text topics in catalog order.
func (s *Store) Topics() []domain.Topic {
	out := make([]domain.Topic, len(s.topics))
	for i, it := range s.topics {
		out[i] = it.topic.Clone()
	}
	return out
}

// Dataset returns a copy of the content backing the store.
func (s *Store) Dataset() Dataset {
	return Dataset{Platforms: s.Platforms(), Vendors: s.Vendors(), Topics: s.Topics()}
}

func clonePlatform(p domain.Platform) domain.Platform {
	c := p
	c.Categories = cloneCategories(p.Categories)
	c.Troubleshooting = append([]string(nil), p.Troubleshooting...)
	c.FallbackTroubleshooting = append([]string(nil), p.FallbackTroubleshooting...)
	return c
}

func cloneCategories(cats []domain.Category) []domain.Category {
	if cats == nil {
		return nil
	}
	out := make([]domain.Category, len(cats))
	for i, c := range cats {
		out[i] = c
		out[i].Suggestions = append([]domain.Suggestion(nil), c.Suggestions...)
	}
	return out
}

func cloneVendor(v domain.Vendor) domain.Vendor {
	c := v
	c.Devices = append([]string(nil), v.Devices...)
	c.Categories = append([]domain.VendorCategory(nil), v.Categories...)
	c.Actions = append([]domain.Action(nil), v.Actions...)
	return c
}
