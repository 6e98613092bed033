package store

import (
	"errors"
	"strings"
)

// ErrConflict reports a uniqueness violation (duplicate company RUC or user
// email). Uniqueness is enforced by the database indexes, not by
// check-then-insert logic, so concurrent inserts race safely.
var ErrConflict = errors.New("conflict: record already exists")

// isUniqueViolation matches SQLite unique-constraint failures. The modernc
// driver surfaces these only as error text through database/sql.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
