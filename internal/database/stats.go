package database

import (
	"context"
	"fmt"
)

const categoryAnalytics = `
	SELECT
		category,
		COUNT(*) AS count,
		ROUND(AVG(price), 2) AS avg_price,
		MAX(price) AS max_price,
		MIN(price) AS min_price
	FROM products
	GROUP BY category
	ORDER BY category
`

// Stats returns row counts and per-category price analytics.
func (db *DB) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{Analytics: []CategoryStats{}}

	if err := db.queryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&stats.TotalUsers); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := db.queryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&stats.TotalProducts); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	rows, err := db.Query(ctx, categoryAnalytics)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category analytics: %w", err)
	}
	for _, row := range rows {
		stats.Analytics = append(stats.Analytics, categoryStatsFromRow(row))
	}

	return stats, nil
}
