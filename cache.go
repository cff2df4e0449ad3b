package icd

import (
	"container/list"
	"sync"
)

// searchCache is a small thread-safe LRU cache of Search results keyed
// by normalized query. Results are copied on the way in and on the way
// out so cached slices stay immutable no matter what callers do with
// theirs.
type searchCache struct {
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List
	capacity int
}

// cacheEntry holds a cached result and its key for reverse lookup on
// eviction.
type cacheEntry struct {
	key     string
	matches []Match
}

// newSearchCache creates a cache with the given capacity. When the
// cache is full, the least recently used result is evicted.
func newSearchCache(capacity int) *searchCache {
	return &searchCache{
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// get retrieves a copy of the cached result for key. A hit moves the
// result to the front of the LRU list.
func (c *searchCache) get(key string) ([]Match, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)

	cached := el.Value.(*cacheEntry).matches
	out := make([]Match, len(cached))
	copy(out, cached)
	return out, true
}

// set stores a copy of matches under key, evicting the least recently
// used result if the cache is at capacity.
func (c *searchCache) set(key string, matches []Match) {
	stored := make([]Match, len(matches))
	copy(stored, matches)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*cacheEntry).matches = stored
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, matches: stored})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

// len returns the number of cached results.
func (c *searchCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
