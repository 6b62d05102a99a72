package ctxcache_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	bcache "github.com/bool64/cache"
	pca "github.com/patrickmn/go-cache"
	"github.com/vearutop/ctxcache"
)

func Benchmark_Cache(b *testing.B) {
	c, _ := ctxcache.New[int](ctxcache.Config{Capacity: 20000})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := "oneone" + strconv.Itoa(i%10000)
		// nolint
		if i < 10000 {
			c.Set(ctx, k, 123)
		}
		// nolint
		_, _ = c.Get(ctx, k)
	}
}

func Benchmark_Memoizer(b *testing.B) {
	c, _ := ctxcache.New[int](ctxcache.Config{Capacity: 20000})
	m := ctxcache.NewMemoizer[int](c, ctxcache.MemoizerConfig{})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := "oneone" + strconv.Itoa(i%10000)
		// nolint
		_, _ = m.Get(ctx, k, func(ctx context.Context) (int, error) {
			return 123, nil
		})
	}
}

func Benchmark_Patrickmn(b *testing.B) {
	c := pca.New(5*time.Minute, 10*time.Minute)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := "oneone" + strconv.Itoa(i%10000)

		if i < 10000 {
			c.Set(k, 123, time.Minute)
		}

		_, _ = c.Get(k)
	}
}

func Benchmark_Bool64ShardedMap(b *testing.B) {
	c := bcache.NewShardedMap()
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := "oneone" + strconv.Itoa(i%10000)
		// nolint
		if i < 10000 {
			_ = c.Write(ctx, []byte(k), 123)
		}
		// nolint
		_, _ = c.Read(ctx, []byte(k))
	}
}
