package ctxcache_test

import (
	"context"
	"fmt"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/vearutop/ctxcache"
)

func ExampleNew() {
	// Create cache instance.
	c, _ := ctxcache.New[[]string](ctxcache.Config{
		Name:       "contexts",
		Capacity:   500,
		TimeToLive: 5 * time.Minute,
		Logger:     &ctxd.LoggerMock{},
		Stats:      &stats.TrackerMock{},
	})

	// Use context if available.
	ctx := context.TODO()

	// Keys are deterministic over subject and options.
	key := ctxcache.BuildKey("noteA", ctxcache.Options{
		Lens:              "code",
		RelationshipTypes: []string{"imports", "calls"},
	})

	// Write value to cache.
	c.Set(ctx, key, []string{"noteA", "noteB"})

	// Read value from cache.
	val, _ := c.Get(ctx, key)
	fmt.Printf("%s %v", key, val)

	// Output:
	// ctx:noteA|lens:code|rel:calls,imports [noteA noteB]
}

func ExampleMemoizer_Get() {
	c, _ := ctxcache.New[string](ctxcache.Config{Name: "contexts"})
	m := ctxcache.NewMemoizer[string](c, ctxcache.MemoizerConfig{Name: "contexts"})

	ctx := context.TODO()
	key := ctxcache.BuildKey("noteA", ctxcache.Options{Depth: 2})

	builds := 0

	for i := 0; i < 3; i++ {
		val, _ := m.Get(ctx, key, func(_ context.Context) (string, error) {
			builds++

			return "assembled context", nil
		})

		fmt.Println(val)
	}

	fmt.Println("builds:", builds)

	// Output:
	// assembled context
	// assembled context
	// assembled context
	// builds: 1
}
