package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// withConn scopes one cache operation to its own connection: open,
// configure, run op inside a transaction, commit on success or roll back
// and propagate op's error, then hint the engine to refresh statistics and
// close. The optimize-and-close cleanup runs on every exit path.
//
// No connection is reused across operations. Setup cost is a known
// per-call overhead in exchange for keeping connection state out of
// concurrent callers; mutual exclusion is left to SQLite's own locking
// under WAL journaling.
func (s *Store) withConn(ctx context.Context, op func(tx *sql.Tx) error) error {
	db, err := sql.Open(driverName, s.connString)
	if err != nil {
		return fmt.Errorf("open cache db: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire cache connection: %w", err)
	}
	defer func() {
		// Cleanup must run even when ctx is already canceled.
		cleanupCtx := context.WithoutCancel(ctx)
		_, _ = conn.ExecContext(cleanupCtx, "PRAGMA optimize")
		_ = conn.Close()
	}()

	if err := applyPragmas(ctx, conn); err != nil {
		return err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	if err := op(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache transaction: %w", err)
	}
	return nil
}
