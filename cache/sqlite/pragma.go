package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// pragmas is the fixed tuning applied to every new connection before any
// cache statement runs. The values trade durability for throughput: this
// is an ephemeral fallback cache, not a system of record, so synchronous
// writes are off and a crash may lose recent entries.
var pragmas = [...]struct {
	name  string
	value string
}{
	{"mmap_size", "67108864"}, // 64 MiB read window
	{"cache_size", "8192"},
	{"wal_autocheckpoint", "1000"},
	{"auto_vacuum", "none"},
	{"synchronous", "off"},
	{"journal_mode", "wal"},
	{"temp_store", "memory"},
}

type execContexter interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// applyPragmas configures a freshly opened connection. Pragma failures are
// construction or operation errors; they are never ignored.
func applyPragmas(ctx context.Context, conn execContexter) error {
	for _, p := range pragmas {
		if _, err := conn.ExecContext(ctx, fmt.Sprintf("PRAGMA %s=%s", p.name, p.value)); err != nil {
			return fmt.Errorf("apply pragma %s: %w", p.name, err)
		}
	}
	return nil
}
