package meteomatics

import (
	"context"
	"fmt"
	"sync"

	"github.com/Amyn617/Nasa/internal/observability"
)

// CachedProvider wraps a Provider with an in-memory LRU cache. Keys cover
// the full request (location, parameter, day of year, span), so changing any
// part of a query misses the cache.
type CachedProvider struct {
	inner   Provider
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedProvider creates a cache decorator around a sample provider.
func NewCachedProvider(inner Provider, maxEntries int, metrics *observability.Metrics) *CachedProvider {
	return &CachedProvider{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedProvider) HistoricalSample(ctx context.Context, lat, lon float64, parameter string, dayOfYear, years int) ([]float64, error) {
	key := fmt.Sprintf("%.4f|%.4f|%s|%d|%d", lat, lon, parameter, dayOfYear, years)
	if sample, ok := c.cache.get(key); ok {
		c.metrics.ProviderCache.WithLabelValues("hit").Inc()
		return sample, nil
	}
	c.metrics.ProviderCache.WithLabelValues("miss").Inc()

	sample, err := c.inner.HistoricalSample(ctx, lat, lon, parameter, dayOfYear, years)
	if err != nil {
		return nil, err
	}
	// Only cache non-empty samples so transient failures can be retried.
	if len(sample) > 0 {
		c.cache.put(key, sample)
	}
	return sample, nil
}

// lruCache is a simple thread-safe LRU cache for samples. Values are copied
// on the way in and out so callers cannot mutate cached data.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value []float64
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return copyValues(e.value), true
}

func (c *lruCache) put(key string, value []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = copyValues(value)
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: copyValues(value)}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func copyValues(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
