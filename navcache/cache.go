// Package navcache caches resolved catalog pages and per-source metadata.
//
// Two independent stores with different TTL classes back repeated
// navigation: a page store and a source-metadata store. Expired entries
// are dropped on read, and every page write triggers a capacity sweep
// that evicts oldest-by-write entries once a store is over budget. The
// cache holds no state across restarts.
package navcache

import (
	"fmt"
	"sync"
	"time"

	"github.com/kinotree/kinotree/key"
	"github.com/kinotree/kinotree/source"
	"github.com/spf13/viper"
)

const (
	// PageTTL bounds the age of a cached catalog page.
	PageTTL = 5 * time.Minute
	// SourceTTL bounds the age of cached source metadata.
	SourceTTL = 30 * time.Minute

	// MaxPages caps the page store.
	MaxPages = 50
	// MaxSources caps the source-metadata store.
	MaxSources = 20
)

// Resolver produces the contents of one catalog page on a cache miss,
// typically backed by the folder scanner or a remote catalog client.
type Resolver func(sourceID string, page int) (*source.Page, error)

type pageEntry struct {
	payload  *source.Page
	storedAt time.Time
}

type metaEntry struct {
	payload  *source.Metadata
	storedAt time.Time
}

// Stats reports the live size of both stores and the prefetch queue.
type Stats struct {
	Pages            int `json:"pages"`
	Sources          int `json:"sources"`
	QueuedPrefetches int `json:"queuedPrefetches"`
}

// Cache is a two-tier, time-bounded, size-bounded navigation cache.
// All stores are mutex-guarded; Go schedules prefetch tasks in parallel
// with reads, so the single-owner-thread shortcut does not apply here.
type Cache struct {
	mu       sync.Mutex
	pages    map[string]pageEntry
	sources  map[string]metaEntry
	inflight map[string]struct{}

	resolve       Resolver
	prefetchDelay time.Duration
	prefetchWG    sync.WaitGroup

	now func() time.Time
}

// New constructs an empty cache. resolve may be nil, which disables
// background prefetch while leaving every other operation intact.
func New(resolve Resolver) *Cache {
	return &Cache{
		pages:         make(map[string]pageEntry),
		sources:       make(map[string]metaEntry),
		inflight:      make(map[string]struct{}),
		resolve:       resolve,
		prefetchDelay: time.Duration(viper.GetInt(key.CachePrefetchDelayMs)) * time.Millisecond,
		now:           time.Now,
	}
}

// pageKey uniquely identifies a (source, page) pair.
func pageKey(sourceID string, page int) string {
	return fmt.Sprintf("%s:%d", sourceID, page)
}

// GetPage returns the cached page when present and within its TTL.
// An expired entry is removed on the spot and reported as a miss.
func (c *Cache) GetPage(sourceID string, page int) (*source.Page, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := pageKey(sourceID, page)
	entry, ok := c.pages[k]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > PageTTL {
		delete(c.pages, k)
		return nil, false
	}
	return entry.payload, true
}

// PutPage inserts or replaces a page with a fresh timestamp. When meta is
// non-nil the source-metadata entry is refreshed from the same call. A
// capacity sweep runs afterwards.
func (c *Cache) PutPage(sourceID string, page int, payload *source.Page, meta *source.Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.pages[pageKey(sourceID, page)] = pageEntry{payload: payload, storedAt: now}
	if meta != nil {
		c.sources[sourceID] = metaEntry{payload: meta, storedAt: now}
	}

	c.sweep(now)
}

// GetSourceMeta returns the cached source metadata when within its TTL.
func (c *Cache) GetSourceMeta(sourceID string) (*source.Metadata, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.sources[sourceID]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > SourceTTL {
		delete(c.sources, sourceID)
		return nil, false
	}
	return entry.payload, true
}

// PutSourceMeta inserts or replaces source metadata with a fresh timestamp.
func (c *Cache) PutSourceMeta(sourceID string, meta *source.Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sources[sourceID] = metaEntry{payload: meta, storedAt: now}
	c.sweep(now)
}

// Clear empties both stores and the in-flight prefetch set.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages = make(map[string]pageEntry)
	c.sources = make(map[string]metaEntry)
	c.inflight = make(map[string]struct{})
}

// Stats reports current store sizes and the number of queued prefetches.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Pages:            len(c.pages),
		Sources:          len(c.sources),
		QueuedPrefetches: len(c.inflight),
	}
}

// sweep removes TTL-expired entries from both stores, then evicts
// oldest-by-write entries until each store is back within budget.
// Eviction deliberately keys off the write timestamp, not the last read.
// Callers must hold c.mu.
func (c *Cache) sweep(now time.Time) {
	for k, entry := range c.pages {
		if now.Sub(entry.storedAt) > PageTTL {
			delete(c.pages, k)
		}
	}
	for k, entry := range c.sources {
		if now.Sub(entry.storedAt) > SourceTTL {
			delete(c.sources, k)
		}
	}

	for len(c.pages) > MaxPages {
		delete(c.pages, oldestPage(c.pages))
	}
	for len(c.sources) > MaxSources {
		delete(c.sources, oldestMeta(c.sources))
	}
}

func oldestPage(m map[string]pageEntry) string {
	var oldest string
	var when time.Time
	found := false
	for k, entry := range m {
		if !found || entry.storedAt.Before(when) {
			oldest = k
			when = entry.storedAt
			found = true
		}
	}
	return oldest
}

func oldestMeta(m map[string]metaEntry) string {
	var oldest string
	var when time.Time
	found := false
	for k, entry := range m {
		if !found || entry.storedAt.Before(when) {
			oldest = k
			when = entry.storedAt
			found = true
		}
	}
	return oldest
}
