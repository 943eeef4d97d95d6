package database

import (
	"context"
	"database/sql"
	"fmt"
)

const selectProducts = `SELECT id, name, price, category, created_at FROM products`

// ListProducts returns all products, newest first.
func (db *DB) ListProducts(ctx context.Context) ([]Product, error) {
	return db.listProducts(ctx, selectProducts+` ORDER BY created_at DESC, id DESC`)
}

// ListProductsByCategory returns products whose category matches exactly,
// cheapest first.
func (db *DB) ListProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	return db.listProducts(ctx, selectProducts+` WHERE category = ? ORDER BY price ASC, id ASC`, category)
}

func (db *DB) listProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, productFromRow(row))
	}
	return products, nil
}

// CreateProduct inserts a product with the next free ID and returns the
// stored row.
func (db *DB) CreateProduct(ctx context.Context, name string, price float64, category string) (*Product, error) {
	price, err := checkPrice(price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	var product *Product
	err = db.Transaction(ctx, func(tx *sql.Tx) error {
		id, err := nextID(ctx, tx, "products")
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, name, price, category) VALUES (?, ?, ?, ?)
		`, id, name, price, category); err != nil {
			return classify(err)
		}

		rows, err := queryRows(ctx, tx, selectProducts+` WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to read back product: %w", err)
		}
		if len(rows) == 0 {
			return fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		p := productFromRow(rows[0])
		product = &p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}
