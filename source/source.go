// Package source defines the domain models and interfaces for media catalog resolution.
package source

// Kind discriminates between the structurally different source models.
type Kind string

const (
	// KindFolderLocal marks items backed by a local or mounted filesystem tree.
	KindFolderLocal Kind = "folder-local"
	// KindNetwork marks items backed by a remote video-hosting catalog.
	KindNetwork Kind = "network"
)

// Source defines the identity contract for a media collection.
// Resolution of its contents is performed by collaborators (the folder
// scanner for filesystem trees, a remote catalog client for network
// sources); this package owns only the shared data model.
type Source interface {
	// ID returns the unique identifier of the source.
	ID() string

	// Name returns the display name of the source.
	Name() string

	// Kind returns the structural model of the source.
	Kind() Kind
}
