package ctxcache

import (
	"context"
	"sync"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

// MemoizerConfig is optional configuration for NewMemoizer.
type MemoizerConfig struct {
	// Name is added to logs and stats.
	Name string

	// Logger collects messages with context.
	Logger ctxd.Logger

	// Stats tracks stats.
	Stats stats.Tracker
}

// Memoizer builds expensive values once and serves repeats from cache.
//
// Build is locked per key, concurrent callers of the same key wait for a
// single producer call instead of piling up duplicate work. The cache never
// computes values itself, the producer function is supplied by the caller.
//
// Please use NewMemoizer to create an instance.
type Memoizer[V any] struct {
	upstream Store[V]

	lock     sync.Mutex               // Securing keyLocks.
	keyLocks map[string]chan struct{} // Preventing build concurrency per key.

	config MemoizerConfig
	log    ctxd.Logger
	stat   stats.Tracker
}

// NewMemoizer creates a Memoizer instance over an upstream store.
func NewMemoizer[V any](upstream Store[V], cfg MemoizerConfig) *Memoizer[V] {
	if cfg.Logger == nil {
		cfg.Logger = ctxd.NoOpLogger{}
	}

	if cfg.Stats == nil {
		cfg.Stats = stats.NoOp{}
	}

	return &Memoizer[V]{
		upstream: upstream,
		keyLocks: make(map[string]chan struct{}),
		config:   cfg,
		log:      cfg.Logger,
		stat:     cfg.Stats,
	}
}

// Get returns value from cache or from the build function.
//
// Build failures are returned to the caller and are never cached, a later
// call builds again. Use WithSkipRead to bypass the cached value and force
// a rebuild.
func (m *Memoizer[V]) Get(ctx context.Context, key string, build func(ctx context.Context) (V, error)) (V, error) {
	var zero V

	if !SkipRead(ctx) {
		if val, found := m.upstream.Get(ctx, key); found {
			return val, nil
		}
	}

	// Locking key for update or finding an active lock.
	m.lock.Lock()

	keyLock, alreadyLocked := m.keyLocks[key]
	if !alreadyLocked {
		keyLock = make(chan struct{})
		m.keyLocks[key] = keyLock
	}
	m.lock.Unlock()

	if alreadyLocked {
		m.log.Debug(ctx, "waiting for cache value", "name", m.config.Name, "key", key)

		// Waiting for the value built by the lock owner.
		<-keyLock

		// Owner either cached the value, making this call a hit, or failed,
		// making this call the next builder.
		return m.Get(ctx, key, build)
	}

	// Releasing the lock.
	defer func() {
		m.lock.Lock()
		delete(m.keyLocks, key)
		close(keyLock)
		m.lock.Unlock()
	}()

	m.log.Debug(ctx, "building cache value", "name", m.config.Name, "key", key)

	val, err := build(ctx)
	if err != nil {
		m.stat.Add(ctx, MetricFailed, 1, "name", m.config.Name)
		m.log.Warn(ctx, "failed to build cache value",
			"error", err,
			"name", m.config.Name,
			"key", key)

		return zero, err
	}

	m.stat.Add(ctx, MetricBuild, 1, "name", m.config.Name)
	m.upstream.Set(ctx, key, val)

	return val, nil
}
