// Package scanner resolves local directory subtrees into bounded-depth catalog listings.
//
// Subdirectories at the configured depth boundary are not emitted as
// navigable folders; their playable content, however deep, is flattened
// into the boundary folder's listing instead.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kinotree/kinotree/filesystem"
	"github.com/kinotree/kinotree/key"
	"github.com/kinotree/kinotree/log"
	"github.com/kinotree/kinotree/source"
	"github.com/kinotree/kinotree/util"
	"github.com/spf13/viper"
)

// Extensions is the supported set of playable media file extensions.
var Extensions = []string{".mp4", ".mkv", ".webm", ".avi", ".mov", ".m4v"}

// Result is the outcome of scanning a single directory.
type Result struct {
	Folders []*source.Folder `json:"folders"`
	Videos  []*source.Item   `json:"videos"`
	Depth   int              `json:"depth"`
}

// Scanner resolves directories under a single source root.
// Item identifiers are derived from paths relative to Root, so they stay
// stable across scans and across mount points.
type Scanner struct {
	Root string
}

// New returns a Scanner for the given source root.
func New(root string) *Scanner {
	return &Scanner{Root: root}
}

// IsPlayable reports whether the filename carries a supported media extension.
func IsPlayable(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan lists the immediate contents of dir at currentDepth.
//
// Subdirectories below maxDepth become navigable folders one level deeper.
// At the depth boundary they are elided and every playable file beneath
// them is appended as a flattened item. A missing or unreadable dir is a
// normal empty result, never an error.
func (s *Scanner) Scan(dir string, maxDepth, currentDepth int) Result {
	result := Result{
		Folders: []*source.Folder{},
		Videos:  []*source.Item{},
		Depth:   currentDepth,
	}

	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		log.Warnf("scan %s: %v", dir, err)
		return result
	}

	if viper.GetBool(key.ScannerSortEntries) {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name() < entries[j].Name()
		})
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if currentDepth < maxDepth {
				result.Folders = append(result.Folders, &source.Folder{
					Name:  entry.Name(),
					Path:  path,
					Depth: currentDepth + 1,
				})
				continue
			}

			// Depth boundary: hoist everything playable beneath this
			// subdirectory into the current listing.
			result.Videos = append(result.Videos, s.collectFlattened(path, maxDepth-1)...)
			continue
		}

		if !IsPlayable(entry.Name()) {
			continue
		}

		result.Videos = append(result.Videos, s.item(path, entry, currentDepth, false))
	}

	return result
}

// collectFlattened gathers every playable file anywhere beneath dir.
// Unreadable subdirectories are skipped, never aborting the collection.
func (s *Scanner) collectFlattened(dir string, depth int) []*source.Item {
	items := []*source.Item{}

	var worklist util.Stack[string]
	worklist.Push(dir)

	for worklist.Len() > 0 {
		current := worklist.Pop()

		entries, err := filesystem.API().ReadDir(current)
		if err != nil {
			log.Debugf("flatten %s: %v", current, err)
			continue
		}

		if viper.GetBool(key.ScannerSortEntries) {
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Name() < entries[j].Name()
			})
		}

		var dirs []string
		for _, entry := range entries {
			path := filepath.Join(current, entry.Name())
			if entry.IsDir() {
				dirs = append(dirs, path)
				continue
			}
			if IsPlayable(entry.Name()) {
				items = append(items, s.item(path, entry, depth, true))
			}
		}

		// The worklist is LIFO, so push subdirectories in reverse to
		// visit them in listing order.
		for i := len(dirs) - 1; i >= 0; i-- {
			worklist.Push(dirs[i])
		}
	}

	return items
}

// item builds a catalog entry for a playable file.
func (s *Scanner) item(path string, info os.FileInfo, depth int, flattened bool) *source.Item {
	rel, err := filepath.Rel(s.Root, path)
	if err != nil {
		rel = path
	}

	return &source.Item{
		ID:        util.SanitizeKey(rel),
		Title:     util.FileStem(info.Name()),
		Kind:      source.KindFolderLocal,
		PlayURL:   path,
		Depth:     depth,
		Flattened: flattened,
		Extension: strings.ToLower(filepath.Ext(info.Name())),
		Size:      info.Size(),
		ModTime:   info.ModTime(),
	}
}
