package ctxcache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/puzpuzpuz/xsync/v2"
)

// Metric names for stats.Tracker.
const (
	MetricHit     = "cache_hit"
	MetricMiss    = "cache_miss"
	MetricExpired = "cache_expired"
	MetricWrite   = "cache_write"
	MetricEvict   = "cache_evict"
	MetricDelete  = "cache_delete"
	MetricItems   = "cache_items"
	MetricBuild   = "cache_build"
	MetricFailed  = "cache_build_failed"
)

// Default configuration values applied by New for zero-value Config fields.
const (
	DefaultCapacity   = 1000
	DefaultTimeToLive = 5 * time.Minute
)

// Store is the narrow read/write contract of Cache.
//
// Memoizer depends on it instead of the full Cache so that callers can plug
// NoOp to disable caching.
type Store[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, val V)
}

// Stats is a point-in-time snapshot of cache counters.
//
// Counters are cumulative for the lifetime of the instance, Clear does not
// reset them.
type Stats struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	Size      int     `json:"size"`
	HitRate   float64 `json:"hitRate"`
}

// Config controls cache instance.
type Config struct {
	// Logger is an instance of contextualized logger, can be nil.
	Logger ctxd.Logger

	// Stats is metrics collector, can be nil.
	Stats stats.Tracker

	// Name is cache instance name, used in stats and logging.
	Name string

	// Capacity is the maximum number of live entries, default 1000.
	// The least recently used entry is evicted beyond that.
	Capacity int

	// TimeToLive is delay before entry expiration, default 5m.
	TimeToLive time.Duration

	// DisableCounters turns off hit/miss/eviction accounting.
	DisableCounters bool
}

// entry is a cache entry.
type entry[V any] struct {
	key      string
	val      V
	storedAt time.Time
	hits     int
}

var _ Store[int] = &Cache[int]{}

// Cache is a bounded in-memory cache of built contexts with LRU eviction
// and entry expiration.
//
// Expired entries are discarded lazily on access and swept eagerly by
// Cleanup. Please use New to create an instance.
type Cache[V any] struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List // Front is the least recently used entry, the next eviction candidate.

	hits      *xsync.Counter
	misses    *xsync.Counter
	evictions *xsync.Counter

	config Config
	log    ctxd.Logger
	stat   stats.Tracker
}

// New creates a cache instance.
//
// Configuration is checked eagerly, negative capacity or ttl is rejected
// instead of being clamped.
func New[V any](cfg Config) (*Cache[V], error) {
	if cfg.Capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	if cfg.TimeToLive < 0 {
		return nil, ErrInvalidTimeToLive
	}

	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}

	if cfg.TimeToLive == 0 {
		cfg.TimeToLive = DefaultTimeToLive
	}

	if cfg.Logger == nil {
		cfg.Logger = ctxd.NoOpLogger{}
	}

	if cfg.Stats == nil {
		cfg.Stats = stats.NoOp{}
	}

	return &Cache[V]{
		items:     make(map[string]*list.Element),
		order:     list.New(),
		hits:      xsync.NewCounter(),
		misses:    xsync.NewCounter(),
		evictions: xsync.NewCounter(),
		config:    cfg,
		log:       cfg.Logger,
		stat:      cfg.Stats,
	}, nil
}
