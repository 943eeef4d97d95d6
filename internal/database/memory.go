package database

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/saltyorg/duckapi/internal/normalize"
)

// MemStore is the in-memory fallback store. Records live in insertion
// order for the lifetime of the process and are never persisted.
type MemStore struct {
	mu       sync.RWMutex
	users    []User
	products []Product
	now      func() time.Time
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{now: time.Now}
}

func (m *MemStore) Engine() Engine {
	return EngineMemory
}

func (m *MemStore) timestamp() string {
	return normalize.Timestamp(m.now())
}

// --- Users ---

func (m *MemStore) ListUsers(ctx context.Context) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := slices.Clone(m.users)
	slices.Reverse(users)
	return users, nil
}

func (m *MemStore) GetUser(ctx context.Context, id int64) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
}

func (m *MemStore) CreateUser(ctx context.Context, name, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var maxID int64
	for _, u := range m.users {
		if u.Email == email {
			return nil, fmt.Errorf("failed to create user: %w", &ConstraintError{
				Err: fmt.Errorf("duplicate key %q violates unique constraint on users.email", email),
			})
		}
		maxID = max(maxID, u.ID)
	}

	user := User{
		ID:        maxID + 1,
		Name:      name,
		Email:     email,
		CreatedAt: m.timestamp(),
	}
	m.users = append(m.users, user)
	return &user, nil
}

// --- Products ---

func (m *MemStore) ListProducts(ctx context.Context) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := slices.Clone(m.products)
	slices.Reverse(products)
	return products, nil
}

func (m *MemStore) ListProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := []Product{}
	for _, p := range m.products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Price < products[j].Price
	})
	return products, nil
}

func (m *MemStore) CreateProduct(ctx context.Context, name string, price float64, category string) (*Product, error) {
	price, err := checkPrice(price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var maxID int64
	for _, p := range m.products {
		maxID = max(maxID, p.ID)
	}

	product := Product{
		ID:        maxID + 1,
		Name:      name,
		Price:     price,
		Category:  category,
		CreatedAt: m.timestamp(),
	}
	m.products = append(m.products, product)
	return &product, nil
}

// --- Analytics ---

func (m *MemStore) Stats(ctx context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := &Stats{
		TotalUsers:    int64(len(m.users)),
		TotalProducts: int64(len(m.products)),
		Analytics:     []CategoryStats{},
	}

	byCategory := make(map[string]*CategoryStats)
	sums := make(map[string]float64)
	for _, p := range m.products {
		cs, ok := byCategory[p.Category]
		if !ok {
			cs = &CategoryStats{Category: p.Category, MaxPrice: p.Price, MinPrice: p.Price}
			byCategory[p.Category] = cs
		}
		cs.Count++
		cs.MaxPrice = max(cs.MaxPrice, p.Price)
		cs.MinPrice = min(cs.MinPrice, p.Price)
		sums[p.Category] += p.Price
	}

	for category, cs := range byCategory {
		cs.AvgPrice = normalize.Round(sums[category]/float64(cs.Count), 2)
		stats.Analytics = append(stats.Analytics, *cs)
	}
	sort.Slice(stats.Analytics, func(i, j int) bool {
		return strings.Compare(stats.Analytics[i].Category, stats.Analytics[j].Category) < 0
	})

	return stats, nil
}

// --- Lifecycle ---

// Migrate is a no-op; the memory store has no schema.
func (m *MemStore) Migrate(ctx context.Context) error {
	return nil
}

// Seed loads the demo records when no users exist.
func (m *MemStore) Seed(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.users) > 0 {
		return false, nil
	}

	ts := m.timestamp()
	for i, u := range seedUsers {
		m.users = append(m.users, User{ID: int64(i + 1), Name: u.Name, Email: u.Email, CreatedAt: ts})
	}
	var base int64 = 1
	for _, p := range m.products {
		base = max(base, p.ID+1)
	}
	for i, p := range seedProducts {
		m.products = append(m.products, Product{ID: base + int64(i), Name: p.Name, Price: p.Price, Category: p.Category, CreatedAt: ts})
	}
	return true, nil
}

// Checkpoint is a no-op; nothing is persisted.
func (m *MemStore) Checkpoint(ctx context.Context) error {
	return nil
}

func (m *MemStore) Close() error {
	return nil
}
