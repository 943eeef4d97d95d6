package database

import (
	"context"
	"database/sql"
	"fmt"
)

const selectUsers = `SELECT id, name, email, created_at FROM users`

// ListUsers returns all users, newest first.
func (db *DB) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := db.Query(ctx, selectUsers+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userFromRow(row))
	}
	return users, nil
}

// GetUser retrieves a user by ID.
func (db *DB) GetUser(ctx context.Context, id int64) (*User, error) {
	return getUser(ctx, db.conn, id)
}

// CreateUser inserts a user with the next free ID and returns the stored
// row, including engine-assigned defaults.
func (db *DB) CreateUser(ctx context.Context, name, email string) (*User, error) {
	var user *User
	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		id, err := nextID(ctx, tx, "users")
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, name, email) VALUES (?, ?, ?)
		`, id, name, email); err != nil {
			return classify(err)
		}

		user, err = getUser(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func getUser(ctx context.Context, q querier, id int64) (*User, error) {
	rows, err := queryRows(ctx, q, selectUsers+` WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	user := userFromRow(rows[0])
	return &user, nil
}

// nextID derives the next identifier for table as MAX(id) + 1.
func nextID(ctx context.Context, q querier, table string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, fmt.Sprintf("SELECT COALESCE(MAX(id), 0) + 1 FROM %s", table)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to derive next %s id: %w", table, err)
	}
	return id, nil
}
