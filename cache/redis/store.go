// Package redis adapts an external Redis service to the cache contract, for
// deployments that prefer a shared cache over the embedded SQLite store.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/haltia-labs/dynamics/cache/codec"
)

// DefaultKeyPrefix namespaces cache entries inside a shared Redis database.
const DefaultKeyPrefix = "dynamics:cache:"

// Options configures a Redis-backed cache.
type Options struct {
	Addr     string // e.g. "localhost:6379"
	Password string
	DB       int
	// KeyPrefix namespaces entries. Defaults to DefaultKeyPrefix.
	KeyPrefix string
	// Codec encodes stored values. Defaults to codec.CBOR.
	Codec codec.Codec
}

// Store is the externally supplied cache backend. Entry expiry is native
// Redis TTL instead of a stored expiry column, so expired entries vanish
// without lazy eviction.
type Store struct {
	client *redis.Client
	codec  codec.Codec
	prefix string
}

// Open connects to Redis and verifies the server is reachable.
func Open(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, opts), nil
}

// New wraps an existing client. The client's lifecycle belongs to the
// store once wrapped; Close releases it.
func New(client *redis.Client, opts Options) *Store {
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	c := opts.Codec
	if c == nil {
		c = codec.CBOR{}
	}
	return &Store{client: client, codec: c, prefix: prefix}
}

// Close releases the underlying client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// Get decodes the live entry for key into dest, reporting whether one was
// found. dest is untouched when no entry exists.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	blob, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache entry: %w", err)
	}
	if err := s.codec.Decode(blob, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value under key for ttl. A zero ttl matches the embedded
// store's behavior of an immediately stale entry: the key is removed so
// the next Get misses.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %v", ttl)
	}
	if ttl == 0 {
		if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
			return fmt.Errorf("write cache entry: %w", err)
		}
		return nil
	}
	blob, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(key), blob, ttl).Err(); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Clear deletes every entry under the store's prefix.
func (s *Store) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	batch := make([]string, 0, 128)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("clear cache entries: %w", err)
		}
		batch = batch[:0]
		return nil
	}
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache entries: %w", err)
	}
	return flush()
}
