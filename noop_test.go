package ctxcache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vearutop/ctxcache"
)

func TestNoOp_Get(t *testing.T) {
	val, found := ctxcache.NoOp[int]{}.Get(context.Background(), "foo")
	assert.False(t, found)
	assert.Equal(t, 0, val)
}

func TestNoOp_Set(t *testing.T) {
	ctx := context.Background()
	c := ctxcache.NoOp[int]{}

	c.Set(ctx, "foo", 123)

	val, found := c.Get(ctx, "foo")
	assert.False(t, found)
	assert.Equal(t, 0, val)
}
