// Package navcache caches resolved catalog pages and per-source metadata.
package navcache

import (
	"time"

	"github.com/kinotree/kinotree/log"
)

// PrefetchAdjacent schedules deferred background resolution for the pages
// neighboring currentPage. At most the two adjacent pages are considered
// per navigation event; pages already cached or already queued are skipped.
// Failures are logged and swallowed, never reaching the caller.
func (c *Cache) PrefetchAdjacent(sourceID string, currentPage, totalPages int) {
	if c.resolve == nil {
		return
	}

	var candidates []int
	if currentPage+1 <= totalPages {
		candidates = append(candidates, currentPage+1)
	}
	if currentPage-1 >= 1 {
		candidates = append(candidates, currentPage-1)
	}

	for _, page := range candidates {
		k := pageKey(sourceID, page)

		c.mu.Lock()
		entry, cached := c.pages[k]
		if cached && c.now().Sub(entry.storedAt) > PageTTL {
			cached = false
		}
		_, queued := c.inflight[k]
		if cached || queued {
			c.mu.Unlock()
			continue
		}
		c.inflight[k] = struct{}{}
		c.mu.Unlock()

		c.prefetchWG.Add(1)
		// The short delay keeps prefetch from competing with the
		// navigation request that triggered it.
		page, k := page, k
		time.AfterFunc(c.prefetchDelay, func() {
			c.prefetchOne(sourceID, page, k)
		})
	}
}

// WaitPrefetch blocks until every scheduled prefetch task has finished.
// Used on shutdown and in tests.
func (c *Cache) WaitPrefetch() {
	c.prefetchWG.Wait()
}

// prefetchOne resolves a single page in the background. The in-flight
// marker is cleared unconditionally, success or failure.
func (c *Cache) prefetchOne(sourceID string, page int, k string) {
	defer c.prefetchWG.Done()
	defer func() {
		c.mu.Lock()
		delete(c.inflight, k)
		c.mu.Unlock()
	}()

	// Another path may have resolved the page while this task waited.
	if _, ok := c.GetPage(sourceID, page); ok {
		return
	}

	payload, err := c.resolve(sourceID, page)
	if err != nil {
		log.Debugf("prefetch %s page %d: %v", sourceID, page, err)
		return
	}
	if payload == nil {
		return
	}

	meta, ok := c.GetSourceMeta(sourceID)
	if !ok {
		log.Debugf("prefetch %s page %d: no source metadata, discarding", sourceID, page)
		return
	}

	// Re-check right before writing; a concurrent resolution wins.
	if _, ok := c.GetPage(sourceID, page); ok {
		return
	}

	c.PutPage(sourceID, page, payload, meta)
}
