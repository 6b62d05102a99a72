package ctxcache

// SentinelError is an error.
type SentinelError string

const (
	// ErrInvalidCapacity indicates negative cache capacity in configuration.
	ErrInvalidCapacity = SentinelError("invalid cache capacity")

	// ErrInvalidTimeToLive indicates negative entry ttl in configuration.
	ErrInvalidTimeToLive = SentinelError("invalid time to live")

	// ErrNothingToInvalidate indicates no callbacks were added to Invalidator.
	ErrNothingToInvalidate = SentinelError("nothing to invalidate")

	// ErrAlreadyInvalidated indicates recent invalidation.
	ErrAlreadyInvalidated = SentinelError("already invalidated")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}
