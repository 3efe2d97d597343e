// Package source defines the domain models and interfaces for media catalog resolution.
package source

import "time"

// Item represents a single playable entry in the unified catalog.
type Item struct {
	// Stable identifier, derived deterministically from the item's
	// root-relative path or its remote source id.
	ID string `json:"id"`
	// Display title.
	Title string `json:"title"`
	// Thumbnail reference (URL or local path), empty when unavailable.
	Thumbnail string `json:"thumbnail,omitempty"`
	// Duration of the media, zero when unknown.
	Duration time.Duration `json:"duration"`
	// Kind of the owning source.
	Kind Kind `json:"kind"`
	// Playable reference: an absolute path or a direct URL.
	PlayURL string `json:"playUrl"`
	// Navigation depth the item is presented at.
	Depth int `json:"depth"`
	// Flattened marks items hoisted from beyond the depth boundary.
	Flattened bool `json:"flattened,omitempty"`

	// Filesystem metadata, populated only for folder-local items.
	Extension string    `json:"extension,omitempty"`
	Size      int64     `json:"size,omitempty"`
	ModTime   time.Time `json:"modTime,omitzero"`
}

// String returns the display title.
func (i *Item) String() string {
	return i.Title
}

// Folder represents a navigable subdirectory discovered during a scan.
type Folder struct {
	// Display name (the directory's base name).
	Name string `json:"name"`
	// Absolute path of the directory.
	Path string `json:"path"`
	// Navigation depth, always one greater than the depth it was discovered at.
	Depth int `json:"depth"`
}

// String returns the folder name.
func (f *Folder) String() string {
	return f.Name
}
