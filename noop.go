package ctxcache

import (
	"context"
)

// NoOp is a Store stub that retains nothing.
//
// Plugging it into Memoizer disables caching without branching at call
// sites, every Get invokes the producer.
type NoOp[V any] struct{}

var _ Store[int] = NoOp[int]{}

// Get does not find anything.
func (NoOp[V]) Get(_ context.Context, _ string) (V, bool) {
	var zero V

	return zero, false
}

// Set discards value.
func (NoOp[V]) Set(_ context.Context, _ string, _ V) {}
