package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available, skipping: %v", err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return New(client, Options{KeyPrefix: "test:cache:"})
}

func TestRedisRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "b", "x", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "b", "y", time.Minute); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	var got string
	found, err := store.Get(ctx, "b", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || got != "y" {
		t.Fatalf("get = (%q, %v), want (\"y\", true)", got, found)
	}
}

func TestRedisMissingKeyLeavesDestUntouched(t *testing.T) {
	store := newTestStore(t)

	dest := "fallback"
	found, err := store.Get(context.Background(), "nonexistent", &dest)
	if err != nil {
		t.Fatalf("get missing key: %v", err)
	}
	if found || dest != "fallback" {
		t.Fatalf("get = (%q, %v), want (\"fallback\", false)", dest, found)
	}
}

func TestRedisZeroTTLReadsBackExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "ephemeral", "v", time.Minute); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	if err := store.Set(ctx, "ephemeral", "v", 0); err != nil {
		t.Fatalf("set with zero ttl: %v", err)
	}

	var got string
	found, err := store.Get(ctx, "ephemeral", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("zero-ttl entry read back live, want expired")
	}
}

func TestRedisNegativeTTLRejected(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set(context.Background(), "k", "v", -time.Second); err == nil {
		t.Fatal("expected error for negative ttl")
	}
}

func TestRedisClearRemovesOnlyPrefixedEntries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"one", "two", "three"} {
		if err := store.Set(ctx, key, key, time.Minute); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
	if err := store.client.Set(ctx, "other:keep", "kept", time.Minute).Err(); err != nil {
		t.Fatalf("seed unprefixed key: %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	dest := "fallback"
	found, err := store.Get(ctx, "one", &dest)
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if found {
		t.Fatal("entry survived clear")
	}
	kept, err := store.client.Get(ctx, "other:keep").Result()
	if err != nil {
		t.Fatalf("read unprefixed key: %v", err)
	}
	if kept != "kept" {
		t.Fatalf("unprefixed key = %q, want kept", kept)
	}
}
