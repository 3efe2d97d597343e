// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Kinotree is the canonical application identifier used for filesystem paths and CLI branding.
	Kinotree = "kinotree"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridable at link time.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
