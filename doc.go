// Package ctxcache provides an in-process memoizing cache for expensive
// derived contexts.
//
// A context is a bundle of related entities, relationships and metadata
// assembled for a subject and a set of query options. Assembling one is
// expensive, so results are kept in a bounded in-memory store keyed by a
// deterministic string derived from the subject and options.
//
// Features:
//
//   - Bounded capacity with least-recently-used eviction.
//   - Entry expiration with lazy checks on access and an eager cleanup sweep.
//   - Deterministic cache keys, order-insensitive over list-valued options.
//   - Bulk invalidation by key pattern, by subject or by related file path.
//   - Hit/miss/eviction accounting with cheap snapshot reads.
//   - Per-key locked memoization of producer calls.
//   - Allows logging, stats collection.
package ctxcache
