package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

type seedUser struct {
	Name  string
	Email string
}

type seedProduct struct {
	Name     string
	Price    float64
	Category string
}

var seedUsers = []seedUser{
	{"Alice Johnson", "alice@example.com"},
	{"Bob Smith", "bob@example.com"},
	{"Carol Williams", "carol@example.com"},
	{"David Brown", "david@example.com"},
	{"Eve Davis", "eve@example.com"},
}

var seedProducts = []seedProduct{
	{"Laptop Pro 15", 1599.00, "Electronics"},
	{"Wireless Mouse", 29.99, "Electronics"},
	{"Mechanical Keyboard", 129.99, "Electronics"},
	{"4K Monitor", 449.99, "Electronics"},
	{"Office Chair", 299.00, "Furniture"},
	{"Standing Desk", 599.00, "Furniture"},
	{"Bookshelf", 89.50, "Furniture"},
	{"Notebook Set", 12.99, "Stationery"},
	{"Gel Pen Pack", 8.49, "Stationery"},
	{"Desk Organizer", 24.95, "Stationery"},
}

// Seed inserts the demo users and products when the users table is empty.
// It reports whether anything was inserted.
func (db *DB) Seed(ctx context.Context) (bool, error) {
	empty, err := db.IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		log.Debug().Msg("Users table not empty, skipping seed")
		return false, nil
	}

	err = db.Transaction(ctx, func(tx *sql.Tx) error {
		for i, u := range seedUsers {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO users (id, name, email) VALUES (?, ?, ?)
			`, i+1, u.Name, u.Email); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Email, classify(err))
			}
		}
		base, err := nextID(ctx, tx, "products")
		if err != nil {
			return err
		}
		for i, p := range seedProducts {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO products (id, name, price, category) VALUES (?, ?, ?, ?)
			`, base+int64(i), p.Name, p.Price, p.Category); err != nil {
				return fmt.Errorf("failed to seed product %s: %w", p.Name, classify(err))
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Info().
		Int("users", len(seedUsers)).
		Int("products", len(seedProducts)).
		Msg("Seeded sample data")
	return true, nil
}
