// Package sqlite implements the embedded fallback cache: a persistent,
// TTL-based key-value store over a shared SQLite database. It is the
// backend used when no external cache service is configured.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/haltia-labs/dynamics/cache/codec"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// DefaultFilename names the cache database when the caller supplies none.
const DefaultFilename = "dynamics.cache"

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS cache (key TEXT PRIMARY KEY, value BLOB, exp REAL)`
	createIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS cache_key ON cache(key)`

	getSQL = `SELECT value, exp FROM cache WHERE key = ?`
	setSQL = `INSERT INTO cache (key, value, exp) VALUES (?, ?, ?) ` +
		`ON CONFLICT(key) DO UPDATE SET value = excluded.value, exp = excluded.exp`
	deleteSQL = `DELETE FROM cache WHERE key = ?`
	clearSQL  = `DELETE FROM cache`
)

// Options configures an embedded cache store.
type Options struct {
	// Filename is the cache database name. Defaults to DefaultFilename.
	Filename string
	// Path optionally contains the database. Empty means the current
	// directory.
	Path string
	// Codec encodes stored values. Defaults to codec.CBOR.
	Codec codec.Codec
	// Now supplies the current time. Defaults to time.Now; tests inject a
	// fixed clock to drive expiry.
	Now func() time.Time
}

// Store is the embedded cache. Each public operation opens and closes its
// own connection; only the construction-time connection below outlives an
// operation, pinning the shared database until Close.
type Store struct {
	connString string
	codec      codec.Codec
	now        func() time.Time

	keeperDB   *sql.DB
	keeperConn *sql.Conn
}

// Open creates the embedded cache at the configured location, ensuring the
// schema exists. Creation is idempotent: opening the same location twice
// neither errors nor resets existing entries.
func Open(opts Options) (*Store, error) {
	filename := opts.Filename
	if filename == "" {
		filename = DefaultFilename
	}
	resolved := filename
	if opts.Path != "" {
		resolved = filepath.Join(filepath.Clean(opts.Path), filename)
	}

	s := &Store{
		// Shared, memory-mapped access: every connection to this
		// identifier, in-process or cross-process where the platform
		// allows, observes the same data.
		connString: "file:" + resolved + ":?mode=memory&cache=shared",
		codec:      opts.Codec,
		now:        opts.Now,
	}
	if s.codec == nil {
		s.codec = codec.CBOR{}
	}
	if s.now == nil {
		s.now = time.Now
	}

	ctx := context.Background()
	db, err := sql.Open(driverName, s.connString)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("acquire cache connection: %w", err)
	}
	if err := applyPragmas(ctx, conn); err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, err
	}
	for _, ddl := range []string{createTableSQL, createIndexSQL} {
		if _, err := conn.ExecContext(ctx, ddl); err != nil {
			_ = conn.Close()
			_ = db.Close()
			return nil, fmt.Errorf("ensure cache schema: %w", err)
		}
	}

	// A shared in-memory database is dropped once its last connection
	// closes. Keeping this one open preserves entries across the
	// connection-per-operation lifecycle.
	s.keeperDB = db
	s.keeperConn = conn
	return s, nil
}

// Close releases the pinned database. Entries stored under a shared
// memory identifier do not survive it.
func (s *Store) Close() error {
	if s == nil || s.keeperDB == nil {
		return nil
	}
	connErr := s.keeperConn.Close()
	dbErr := s.keeperDB.Close()
	s.keeperConn = nil
	s.keeperDB = nil
	return errors.Join(connErr, dbErr)
}

// Get looks up key and decodes the stored value into dest, reporting
// whether a live entry was found. A row whose expiry is at or before the
// current time is logically absent: the read that observes it deletes it
// (lazy expiration) and reports false. When Get returns false, dest is
// untouched.
//
// The expiry check and the delete are separate statements; a concurrent
// Set or Clear on the same key can interleave between them. That race is
// an accepted limitation of this best-effort cache.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	found := false
	err := s.withConn(ctx, func(tx *sql.Tx) error {
		var blob []byte
		var exp float64
		err := tx.QueryRowContext(ctx, getSQL, key).Scan(&blob, &exp)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read cache row: %w", err)
		}
		if epochSeconds(s.now()) >= exp {
			if _, err := tx.ExecContext(ctx, deleteSQL, key); err != nil {
				return fmt.Errorf("evict stale cache row: %w", err)
			}
			return nil
		}
		if err := s.codec.Decode(blob, dest); err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// Set stores value under key for ttl, overwriting any prior value and
// expiry for that key in place. ttl must be non-negative; a zero ttl
// yields an entry that reads back as expired on the very next Get.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %v", ttl)
	}
	blob, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	exp := epochSeconds(s.now().UTC().Add(ttl))
	return s.withConn(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, setSQL, key, blob, exp); err != nil {
			return fmt.Errorf("write cache row: %w", err)
		}
		return nil
	})
}

// Clear deletes every entry unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	return s.withConn(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, clearSQL); err != nil {
			return fmt.Errorf("clear cache rows: %w", err)
		}
		return nil
	})
}

// epochSeconds renders a timestamp as the REAL epoch-seconds form the exp
// column stores.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
