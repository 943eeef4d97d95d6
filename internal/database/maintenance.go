package database

import (
	"context"
	"fmt"
)

// Checkpoint merges the write-ahead log into the main database file.
func (db *DB) Checkpoint(ctx context.Context) error {
	if db == nil || db.conn == nil {
		return fmt.Errorf("database not initialized")
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	stmt := "CHECKPOINT"
	if db.engine == EngineSQLite {
		stmt = "PRAGMA wal_checkpoint(TRUNCATE)"
	}

	if _, err := db.exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to checkpoint database: %w", err)
	}

	return nil
}

// Optimize refreshes planner statistics.
func (db *DB) Optimize(ctx context.Context) error {
	if db == nil || db.conn == nil {
		return fmt.Errorf("database not initialized")
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.exec(ctx, "ANALYZE"); err != nil {
		return fmt.Errorf("failed to optimize database: %w", err)
	}

	return nil
}
