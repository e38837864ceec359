package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/alex-user-go/tripplanner/internal/search"
	"github.com/alex-user-go/tripplanner/internal/search/types"
)

// Cache memoizes search results per query with a TTL, collapsing
// concurrent aggregations for the same query into one (singleflight).
type Cache struct {
	mu       sync.Mutex
	store    *gocache.Cache
	inflight map[string]*inflightSearch
}

type inflightSearch struct {
	done   chan struct{}
	result *types.Result
}

// New creates a Cache whose entries expire after ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		store:    gocache.New(ttl, 2*ttl),
		inflight: make(map[string]*inflightSearch),
	}
}

// Key derives the cache key for a query. Queries differing only in case
// or surrounding whitespace share an entry.
func (c *Cache) Key(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// GetOrSearch returns the cached result for key, or runs search once and
// caches its result. Concurrent callers for the same key wait for the
// first search instead of repeating it. The boolean reports a cache hit.
func (c *Cache) GetOrSearch(ctx context.Context, key string, search func() *types.Result) (*types.Result, bool) {
	c.mu.Lock()

	if cached, ok := c.store.Get(key); ok {
		c.mu.Unlock()
		return cached.(*types.Result), true
	}

	if flight, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-flight.done:
			return flight.result, false
		case <-ctx.Done():
			// Caller gave up; the in-flight search keeps running for the
			// benefit of the other waiters.
			return fallbackResult(key), false
		}
	}

	flight := &inflightSearch{done: make(chan struct{})}
	c.inflight[key] = flight
	c.mu.Unlock()

	result := search()

	c.mu.Lock()
	flight.result = result
	// Fallback results stand in for unavailable sources; caching them
	// would hide live data for the full TTL once the sources recover.
	if result != nil && !result.IsFallback {
		c.store.Set(key, result, gocache.DefaultExpiration)
	}
	delete(c.inflight, key)
	c.mu.Unlock()

	close(flight.done)

	return result, false
}

// Invalidate removes a specific key from the cache.
func (c *Cache) Invalidate(key string) {
	c.store.Delete(key)
}

// Flush removes all entries from the cache.
func (c *Cache) Flush() {
	c.store.Flush()
}

func fallbackResult(query string) *types.Result {
	destinations := search.FallbackDestinations()
	return &types.Result{
		Destinations: destinations,
		TotalResults: len(destinations),
		SearchQuery:  query,
		IsFallback:   true,
	}
}
