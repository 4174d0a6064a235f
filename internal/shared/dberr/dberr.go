// Package dberr classifies PostgreSQL errors surfaced through gorm and pgx.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNumericOverflow     = "22003"
)

// IsUniqueViolation reports whether err is a unique violation on constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	return matches(err, codeUniqueViolation, "duplicate key value", constraint)
}

// IsForeignKeyViolation reports whether err is a foreign key violation on
// constraint. An empty constraint matches any foreign key violation.
func IsForeignKeyViolation(err error, constraint string) bool {
	return matches(err, codeForeignKeyViolation, "violates foreign key constraint", constraint)
}

// IsNumericOverflow reports whether a value exceeded its NUMERIC column.
func IsNumericOverflow(err error) bool {
	return matches(err, codeNumericOverflow, "numeric field overflow", "")
}

func matches(err error, code, text, constraint string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code && (constraint == "" || pgErr.ConstraintName == constraint)
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, text) && (constraint == "" || strings.Contains(errMsg, constraint))
}
