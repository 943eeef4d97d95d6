package database

import (
	"fmt"
	"math"

	"github.com/saltyorg/duckapi/internal/normalize"
)

// MaxPrice is the largest value a DECIMAL(10, 2) price column holds.
const MaxPrice = 99999999.99

// checkPrice rounds price to cents and rejects values the products table
// cannot hold. Every engine runs it before inserting, so a sub-cent price
// that would round to 0.00 fails the same way everywhere.
func checkPrice(price float64) (float64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &ConstraintError{Err: fmt.Errorf("CHECK constraint failed: price %v is not a number", price)}
	}

	cents := normalize.Round(price, 2)
	if cents <= 0 {
		return 0, &ConstraintError{Err: fmt.Errorf("CHECK constraint failed: price %v rounds to %.2f, must be greater than 0", price, cents)}
	}
	if cents > MaxPrice {
		return 0, &ConstraintError{Err: fmt.Errorf("CHECK constraint failed: price %v exceeds %.2f", price, MaxPrice)}
	}
	return cents, nil
}
