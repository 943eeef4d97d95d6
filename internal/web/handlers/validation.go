package handlers

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a validation error for a request field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRequired checks that a text field is present and not blank.
// It returns the trimmed value.
func ValidateRequired(value, fieldName string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ValidationError{Field: fieldName, Message: "is required"}
	}
	return trimmed, nil
}

// ParsePrice accepts a JSON number or a numeric string and requires a
// finite value greater than zero.
func ParsePrice(v any) (float64, error) {
	var price float64
	switch p := v.(type) {
	case nil:
		return 0, ValidationError{Field: "price", Message: "is required"}
	case float64:
		price = p
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, ValidationError{Field: "price", Message: "must be a number"}
		}
		price = f
	default:
		return 0, ValidationError{Field: "price", Message: "must be a number"}
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ValidationError{Field: "price", Message: "must be a number"}
	}
	if price <= 0 {
		return 0, ValidationError{Field: "price", Message: "must be greater than 0"}
	}
	return price, nil
}

// ParseID parses a path identifier as a base-10 int64
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ValidationError{Field: "id", Message: "must be an integer"}
	}
	return id, nil
}

// DecodeSegment URL-decodes a single path segment. Segments that are not
// valid escapes are returned verbatim.
func DecodeSegment(raw string) string {
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
