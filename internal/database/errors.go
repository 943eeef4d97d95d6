package database

import (
	"errors"
	"strings"

	"github.com/duckdb/duckdb-go/v2"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict matches any constraint violation reported by an engine.
	ErrConflict = errors.New("constraint violation")
)

// ConstraintError carries an engine constraint violation. Its message is the
// engine's own text; errors.Is(err, ErrConflict) holds for it.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return e.Err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConflict
}

// classify wraps engine constraint violations in a ConstraintError and
// returns every other error unchanged.
func classify(err error) error {
	if err == nil || errors.Is(err, ErrConflict) {
		return err
	}
	if IsConstraint(err) {
		return &ConstraintError{Err: err}
	}
	return err
}

// IsConstraint reports whether err is a uniqueness or other constraint
// violation. Typed engine errors are checked first. Drivers that only expose
// text fall back to keyword matching, which depends on engine wording.
func IsConstraint(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConflict) {
		return true
	}

	var duckErr *duckdb.Error
	if errors.As(err, &duckErr) {
		return duckErr.Type == duckdb.ErrorTypeConstraint
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint") || strings.Contains(msg, "duplicate key")
}
