package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/saltyorg/duckapi/internal/normalize"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.conn.ExecContext(ctx, query, args...)
}

func (db *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// Query executes a parameterized statement and returns its rows with
// column order preserved and every value normalized.
func (db *DB) Query(ctx context.Context, query string, args ...any) ([]normalize.Row, error) {
	return queryRows(ctx, db.conn, query, args...)
}

func queryRows(ctx context.Context, q querier, query string, args ...any) ([]normalize.Row, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var result []normalize.Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, normalize.Value(normalize.NewRow(columns, values)).(normalize.Row))
	}

	return result, rows.Err()
}
