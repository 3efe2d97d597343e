// Package source defines the domain models and interfaces for media catalog resolution.
package source

// Page is a resolved slice of a source's catalog, the unit handled by the
// navigation cache.
type Page struct {
	// Items listed on this page.
	Items []*Item `json:"items"`
	// Page number, starting at 1.
	Page int `json:"page"`
	// TotalPages in the source's catalog.
	TotalPages int `json:"totalPages"`
}

// Metadata describes a source as a whole, independent of any page.
type Metadata struct {
	// ID of the source.
	ID string `json:"id"`
	// Name for display.
	Name string `json:"name"`
	// Kind of the source.
	Kind Kind `json:"kind"`
	// Thumbnail reference, empty when unavailable.
	Thumbnail string `json:"thumbnail,omitempty"`
	// ItemCount across all pages, zero when unknown.
	ItemCount int `json:"itemCount,omitempty"`
}

// MetadataOf builds the cacheable descriptor for a source.
func MetadataOf(s Source) *Metadata {
	return &Metadata{
		ID:   s.ID(),
		Name: s.Name(),
		Kind: s.Kind(),
	}
}
