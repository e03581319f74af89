package geocoding

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"

	"inventory-api/internal/observability"

	"github.com/jonboulle/clockwork"
)

// CachedGeocoder puts an LRU cache with per-entry expiry in front of a Resolver.
// Only successful lookups are cached, so failures are retried on the next call.
type CachedGeocoder struct {
	inner   Resolver
	metrics *observability.Metrics
	clock   clockwork.Clock
	ttl     time.Duration

	mu         sync.Mutex
	maxEntries int
	order      *list.List // front is most recently used
	entries    map[string]*list.Element
}

type cacheEntry struct {
	key       string
	result    Result
	expiresAt time.Time
}

// NewCachedGeocoder wraps inner. A ttl of zero keeps entries until they are evicted.
func NewCachedGeocoder(inner Resolver, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedGeocoder {
	return &CachedGeocoder{
		inner:      inner,
		metrics:    metrics,
		clock:      clock,
		ttl:        ttl,
		maxEntries: maxEntries,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

func (c *CachedGeocoder) Resolve(ctx context.Context, street, city, postcode string) (Result, error) {
	key := strings.ToLower(FormatAddress(strings.TrimSpace(street), strings.TrimSpace(city), strings.TrimSpace(postcode)))

	if result, ok := c.get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return result, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	result, err := c.inner.Resolve(ctx, street, city, postcode)
	if err != nil {
		return result, err
	}
	c.put(key, result)
	return result, nil
}

// Len returns the number of cached entries, expired ones included.
func (c *CachedGeocoder) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *CachedGeocoder) get(key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return Result{}, false
	}
	e := el.Value.(*cacheEntry)
	if !e.expiresAt.IsZero() && !c.clock.Now().Before(e.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		return Result{}, false
	}
	c.order.MoveToFront(el)
	return e.result, true
}

func (c *CachedGeocoder) put(key string, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.clock.Now().Add(c.ttl)
	}

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*cacheEntry)
		e.result = result
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, result: result, expiresAt: expiresAt})

	for c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}
