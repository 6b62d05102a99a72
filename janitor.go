package ctxcache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultCleanupInterval is the janitor interval applied by ScheduleCleanup
// for non-positive values.
const DefaultCleanupInterval = time.Minute

// Cleanup eagerly sweeps all expired entries and returns the removed count.
//
// Lazy expiration alone only collects entries that are looked up again, cold
// expired entries would hold capacity slots indefinitely. Designed to be
// called periodically, see ScheduleCleanup.
func (c *Cache[V]) Cleanup(ctx context.Context) int {
	now := time.Now()

	c.mu.Lock()

	cnt := 0

	for el := c.order.Front(); el != nil; {
		next := el.Next()

		if c.expired(el.Value.(*entry[V]), now) {
			c.removeElement(el)
			cnt++
		}

		el = next
	}
	c.mu.Unlock()

	if cnt > 0 {
		c.stat.Add(ctx, MetricExpired, float64(cnt), "name", c.config.Name)
	}

	return cnt
}

// ScheduleCleanup runs Cleanup on a fixed interval until stop is called.
//
// A non-positive interval falls back to DefaultCleanupInterval. The janitor
// competes for the cache lock like any other caller and a panic in a cycle
// is logged without breaking the schedule. Calling stop more than once is
// safe.
func (c *Cache[V]) ScheduleCleanup(interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.cleanupCycle()
			case <-done:
				return
			}
		}
	}()

	once := sync.Once{}

	return func() {
		once.Do(func() {
			close(done)
		})
	}
}

func (c *Cache[V]) cleanupCycle() {
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			c.log.Error(ctx, "cache cleanup panicked",
				"name", c.config.Name,
				"panic", r)
		}
	}()

	removed := c.Cleanup(ctx)
	if removed == 0 {
		return
	}

	s := c.Stats()

	c.log.Debug(ctx, "cleaned up expired cache entries",
		"name", c.config.Name,
		"removed", removed,
		"size", s.Size,
		"hitRate", fmt.Sprintf("%.1f%%", s.HitRate*100))
}
