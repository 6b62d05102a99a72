package ctxcache

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"
)

// InvalidatePattern removes every entry whose key matches re and returns the
// number of removed entries.
//
// This is an O(n) scan over all keys, see Invalidator for rate limiting of
// frequent external triggers.
func (c *Cache[V]) InvalidatePattern(ctx context.Context, re *regexp.Regexp) int {
	c.mu.Lock()

	cnt := 0

	for el := c.order.Front(); el != nil; {
		next := el.Next()

		if re.MatchString(el.Value.(*entry[V]).key) {
			c.removeElement(el)
			cnt++
		}

		el = next
	}
	c.mu.Unlock()

	if cnt > 0 {
		c.log.Debug(ctx, "invalidated cache entries by pattern",
			"name", c.config.Name,
			"pattern", re.String(),
			"count", cnt)
		c.stat.Add(ctx, MetricDelete, float64(cnt), "name", c.config.Name)
	}

	return cnt
}

// InvalidateContext removes all cached variants built for a subject,
// whichever options they were built with, and returns the removed count.
func (c *Cache[V]) InvalidateContext(ctx context.Context, subject string) int {
	re := regexp.MustCompile("^" + regexp.QuoteMeta(KeyPrefix+subject) + `(\||$)`)

	cnt := c.InvalidatePattern(ctx, re)

	c.log.Debug(ctx, "invalidated context cache",
		"name", c.config.Name,
		"subject", subject,
		"count", cnt)

	return cnt
}

// InvalidateFile removes all entries whose key embeds the given file path
// and returns the removed count.
//
// Regexp metacharacters in the path are escaped, the path is matched as a
// literal substring. Useful when the trigger is a file change rather than a
// subject change.
func (c *Cache[V]) InvalidateFile(ctx context.Context, path string) int {
	re := regexp.MustCompile(regexp.QuoteMeta(path))

	cnt := c.InvalidatePattern(ctx, re)

	c.log.Debug(ctx, "invalidated cache for file",
		"name", c.config.Name,
		"path", path,
		"count", cnt)

	return cnt
}

// Invalidator is a registry of cache invalidation triggers.
//
// It connects external change events (a file saved, a subject updated) to
// cache invalidation callbacks with flood protection against event storms.
type Invalidator struct {
	sync.Mutex

	// SkipInterval defines minimal duration between two cache invalidations (flood protection).
	SkipInterval time.Duration

	// Callbacks contains a list of functions to call on invalidate.
	Callbacks []func(ctx context.Context)

	lastRun time.Time
}

// Invalidate triggers registered callbacks.
func (i *Invalidator) Invalidate(ctx context.Context) error {
	i.Lock()
	defer i.Unlock()

	if len(i.Callbacks) == 0 {
		return ErrNothingToInvalidate
	}

	if i.SkipInterval == 0 {
		i.SkipInterval = 15 * time.Second
	}

	if time.Since(i.lastRun) < i.SkipInterval {
		return fmt.Errorf("%w at %s, %s did not pass",
			ErrAlreadyInvalidated, i.lastRun.String(), i.SkipInterval.String())
	}

	i.lastRun = time.Now()
	for _, cb := range i.Callbacks {
		cb(ctx)
	}

	return nil
}
