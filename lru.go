package ctxcache

import (
	"container/list"
	"context"
	"time"
)

// Get returns a cached value.
//
// An expired entry is removed and reported as a miss, expired data is never
// returned. A hit moves the entry to the most recently used position.
func (c *Cache[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V

	c.mu.Lock()
	el, found := c.items[key]

	if !found {
		c.mu.Unlock()

		if !c.config.DisableCounters {
			c.misses.Inc()
		}

		c.log.Debug(ctx, "cache miss", "name", c.config.Name, "key", key)
		c.stat.Add(ctx, MetricMiss, 1, "name", c.config.Name)

		return zero, false
	}

	e := el.Value.(*entry[V])

	if c.expired(e, time.Now()) {
		c.removeElement(el)
		c.mu.Unlock()

		if !c.config.DisableCounters {
			c.misses.Inc()
		}

		c.log.Debug(ctx, "cache entry expired", "name", c.config.Name, "key", key)
		c.stat.Add(ctx, MetricExpired, 1, "name", c.config.Name)

		return zero, false
	}

	e.hits++
	c.order.MoveToBack(el)
	val := e.val
	c.mu.Unlock()

	if !c.config.DisableCounters {
		c.hits.Inc()
	}

	c.log.Debug(ctx, "cache hit", "name", c.config.Name, "key", key)
	c.stat.Add(ctx, MetricHit, 1, "name", c.config.Name)

	return val, true
}

// Set stores a value.
//
// An existing entry under the same key is replaced entirely, with recency
// bumped, hit counter reset and a fresh timestamp. When the cache is full,
// the least recently used entry is evicted first, so capacity is never
// exceeded.
func (c *Cache[V]) Set(ctx context.Context, key string, val V) {
	c.mu.Lock()

	if el, found := c.items[key]; found {
		c.removeElement(el)
	}

	if c.order.Len() >= c.config.Capacity {
		c.evictOldest(ctx)
	}

	c.items[key] = c.order.PushBack(&entry[V]{key: key, val: val, storedAt: time.Now()})
	size := c.order.Len()
	c.mu.Unlock()

	c.log.Debug(ctx, "wrote to cache",
		"name", c.config.Name,
		"key", key,
		"ttl", c.config.TimeToLive)
	c.stat.Add(ctx, MetricWrite, 1, "name", c.config.Name)
	c.stat.Set(ctx, MetricItems, float64(size), "name", c.config.Name)
}

// Has reports whether a live value exists for key.
//
// It is not a silent peek, it shares all side effects of Get: recency is
// updated, an expired entry is removed and the outcome is accounted as a
// hit or a miss.
func (c *Cache[V]) Has(ctx context.Context, key string) bool {
	_, found := c.Get(ctx, key)

	return found
}

// Delete removes an entry and reports whether a removal happened.
func (c *Cache[V]) Delete(ctx context.Context, key string) bool {
	c.mu.Lock()
	el, found := c.items[key]

	if found {
		c.removeElement(el)
	}
	c.mu.Unlock()

	if found {
		c.log.Debug(ctx, "deleted cache entry", "name", c.config.Name, "key", key)
		c.stat.Add(ctx, MetricDelete, 1, "name", c.config.Name)
	}

	return found
}

// Clear removes all entries.
//
// Cumulative hit/miss/eviction counters are kept, only the entry table is
// dropped.
func (c *Cache[V]) Clear(ctx context.Context) {
	c.mu.Lock()
	cnt := c.order.Len()
	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.mu.Unlock()

	c.log.Important(ctx, "cleared cache", "name", c.config.Name, "count", cnt)
	c.stat.Set(ctx, MetricItems, 0, "name", c.config.Name)
}

// Len returns the number of physically present entries, including expired
// entries that were not swept yet.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// Stats returns a snapshot of the current counters, it never mutates state.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	size := c.order.Len()
	c.mu.Unlock()

	s := Stats{
		Hits:      c.hits.Value(),
		Misses:    c.misses.Value(),
		Evictions: c.evictions.Value(),
		Size:      size,
	}

	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}

	return s
}

// Walk walks cached entries from least to most recently used.
func (c *Cache[V]) Walk(walkFn func(key string, val V) error) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0

	for el := c.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[V])

		if err := walkFn(e.key, e.val); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

func (c *Cache[V]) expired(e *entry[V], now time.Time) bool {
	return now.Sub(e.storedAt) > c.config.TimeToLive
}

// removeElement must be called with mu held.
func (c *Cache[V]) removeElement(el *list.Element) {
	e := el.Value.(*entry[V])
	delete(c.items, e.key)
	c.order.Remove(el)
}

// evictOldest must be called with mu held.
func (c *Cache[V]) evictOldest(ctx context.Context) {
	el := c.order.Front()
	if el == nil {
		return
	}

	e := el.Value.(*entry[V])
	c.removeElement(el)

	if !c.config.DisableCounters {
		c.evictions.Inc()
	}

	c.log.Debug(ctx, "evicted lru cache entry",
		"name", c.config.Name,
		"key", e.key,
		"hits", e.hits)
	c.stat.Add(ctx, MetricEvict, 1, "name", c.config.Name)
}
