package ports

import "github.com/aretw0/cmdassist/pkg/domain"

// Catalog is the read-only lookup store for platforms, vendors and topics.
// Unknown ids are not errors: lookups report false or return empty slices.
// Returned values are copies; callers may not mutate the catalog through them.
type Catalog interface {
	// Platform returns the OS platform with the given id.
	Platform(id string) (domain.Platform, bool)

	// PlatformCategories returns the ordered categories of a platform.
	PlatformCategories(id string) []domain.Category

	// Vendor returns the vendor with the given id.
	Vendor(id string) (domain.Vendor, bool)

	// VendorActions returns the ordered actions of a vendor.
	VendorActions(id string) []domain.Action

	// Platforms lists every OS platform in catalog order.
	Platforms() []domain.Platform

	// Vendors lists every vendor in catalog order.
	Vendors() []domain.Vendor

	// Topics lists the free-text topics in catalog order.
	Topics() []domain.Topic

	// Search answers a free-text question from the topics. vendor may be
	// empty; a question without a usable topic is not an error.
	Search(query, vendor string) domain.TopicMatch
}
