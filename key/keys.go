// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Folder Scanning - these keys govern how local directory trees are resolved into catalog listings.
const (
	ScannerMaxDepth    = "scanner.max_depth"
	ScannerSortEntries = "scanner.sort_entries"
)

// Stream Selection - these keys parameterize the choice among competing encoded variants.
const (
	StreamPreferredContainer = "stream.preferred_container"
	StreamPreferredLanguages = "stream.preferred_languages"
)

// Navigation Cache - these keys tune the in-memory page cache and its background prefetch.
const (
	CachePrefetchDelayMs = "cache.prefetch_delay_ms"
)

// Recently Visited - these keys configure the persisted continue-browsing list.
const (
	RecentLimit = "recent.limit"
)

// Logging - these keys configure the persistent diagnostic log output.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Command Line Interface - these keys define CLI presentation behavior.
const (
	CliColored = "cli.colored"
)
