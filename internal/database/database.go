package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// Engine names a storage backend.
type Engine string

const (
	EngineDuckDB Engine = "duckdb"
	EngineSQLite Engine = "sqlite"
	EngineMemory Engine = "memory"
)

// ParseEngine validates an engine name.
func ParseEngine(name string) (Engine, error) {
	switch Engine(name) {
	case EngineDuckDB, EngineSQLite, EngineMemory:
		return Engine(name), nil
	default:
		return "", fmt.Errorf("unknown engine %q (want duckdb, sqlite or memory)", name)
	}
}

// Open returns a Store for the given engine. The memory engine ignores path.
func Open(engine Engine, path string) (Store, error) {
	if engine == EngineMemory {
		log.Debug().Msg("Using in-memory store")
		return NewMemStore(), nil
	}
	return New(engine, path)
}

// DB wraps an embedded SQL engine connection
type DB struct {
	conn   *sql.DB
	engine Engine
	path   string
	mu     sync.Mutex
}

// New creates a new database connection
func New(engine Engine, path string) (*DB, error) {
	var driver, dsn string
	switch engine {
	case EngineDuckDB:
		driver, dsn = "duckdb", path
	case EngineSQLite:
		// WAL mode for concurrent readers while a write is in flight
		driver = "sqlite"
		dsn = fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	default:
		return nil, fmt.Errorf("engine %q has no SQL driver", engine)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// All pooled connections share one engine instance; writes are
	// serialized by mu.
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)

	log.Debug().Str("engine", string(engine)).Str("path", path).Msg("Database connection established")

	return &DB{
		conn:   conn,
		engine: engine,
		path:   path,
	}, nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Engine returns the backend name
func (db *DB) Engine() Engine {
	return db.engine
}

// Close closes the underlying connection pool
func (db *DB) Close() error {
	return db.conn.Close()
}

// IsEmpty reports whether the users table has no rows
func (db *DB) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	err := db.queryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check users: %w", err)
	}
	return count == 0, nil
}

// Transaction wraps a function in a database transaction
func (db *DB) Transaction(ctx context.Context, fn func(*sql.Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
