package cache

import (
	"context"
	"fmt"

	"github.com/haltia-labs/dynamics/cache/redis"
	"github.com/haltia-labs/dynamics/cache/sqlite"
)

// New constructs the configured cache backend. It is meant to run once at
// process startup; the returned handle is then injected into callers
// rather than reached through a package-level instance.
//
// Backends that hold resources implement io.Closer; the caller owns the
// shutdown.
func New(ctx context.Context, cfg Config) (Backend, error) {
	switch cfg.Backend {
	case BackendEmbedded, "":
		store, err := sqlite.Open(sqlite.Options{
			Filename: cfg.Filename,
			Path:     cfg.Path,
		})
		if err != nil {
			return nil, fmt.Errorf("open embedded cache: %w", err)
		}
		return store, nil
	case BackendRedis:
		store, err := redis.Open(ctx, redis.Options{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisKeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

var _ Backend = (*sqlite.Store)(nil)
var _ Backend = (*redis.Store)(nil)
