// Package cache provides the key-value cache layer used by the Web API
// client. Callers pick a backend once at startup through New and inject the
// handle wherever cached lookups happen.
//
// The default backend is the embedded SQLite store in cache/sqlite, a
// single-node fallback for deployments without an external cache service.
// When one is available, cache/redis satisfies the same contract.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the entry lifetime applied by callers that have no
// per-entry requirement.
const DefaultTTL = 300 * time.Second

// Backend is the cache contract shared by every implementation.
//
// Get decodes the stored value for key into dest and reports whether a live
// entry was found. When it returns false, dest is left untouched so the
// caller's preset default stands. Set stores value under key for ttl; a zero
// ttl produces an entry that is already stale on the next Get, and a
// negative ttl is an error. Clear removes every entry unconditionally.
type Backend interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Clear(ctx context.Context) error
}
