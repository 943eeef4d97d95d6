package database

import (
	"context"

	"github.com/saltyorg/duckapi/internal/normalize"
)

// User is a user account.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Product is a catalogue entry.
type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	CreatedAt string  `json:"created_at"`
}

// CategoryStats holds price analytics for one product category.
type CategoryStats struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	AvgPrice float64 `json:"avg_price"`
	MaxPrice float64 `json:"max_price"`
	MinPrice float64 `json:"min_price"`
}

// Stats is the aggregate view served by /stats and /health.
type Stats struct {
	TotalUsers    int64           `json:"total_users"`
	TotalProducts int64           `json:"total_products"`
	Analytics     []CategoryStats `json:"analytics"`
}

// Store is the storage contract shared by the SQL engines and the
// in-memory fallback.
type Store interface {
	Engine() Engine

	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, name, email string) (*User, error)

	ListProducts(ctx context.Context) ([]Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]Product, error)
	CreateProduct(ctx context.Context, name string, price float64, category string) (*Product, error)

	Stats(ctx context.Context) (*Stats, error)

	Migrate(ctx context.Context) error
	Seed(ctx context.Context) (bool, error)
	Checkpoint(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*DB)(nil)
	_ Store = (*MemStore)(nil)
)

func userFromRow(row normalize.Row) User {
	return User{
		ID:        normalize.Int64(row.Get("id")),
		Name:      normalize.String(row.Get("name")),
		Email:     normalize.String(row.Get("email")),
		CreatedAt: normalize.Timestamp(row.Get("created_at")),
	}
}

func productFromRow(row normalize.Row) Product {
	return Product{
		ID:        normalize.Int64(row.Get("id")),
		Name:      normalize.String(row.Get("name")),
		Price:     normalize.Float64(row.Get("price")),
		Category:  normalize.String(row.Get("category")),
		CreatedAt: normalize.Timestamp(row.Get("created_at")),
	}
}

func categoryStatsFromRow(row normalize.Row) CategoryStats {
	return CategoryStats{
		Category: normalize.String(row.Get("category")),
		Count:    normalize.Int64(row.Get("count")),
		AvgPrice: normalize.Round(normalize.Float64(row.Get("avg_price")), 2),
		MaxPrice: normalize.Float64(row.Get("max_price")),
		MinPrice: normalize.Float64(row.Get("min_price")),
	}
}
