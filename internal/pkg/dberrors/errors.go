package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"
	CodeInvalidDatetime     = "22007"
	CodeNumericOutOfRange   = "22003"
)

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

// IsUniqueViolation reports a unique_violation
func IsUniqueViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == CodeUniqueViolation
}

// IsForeignKeyViolation reports a foreign_key_violation, e.g. an allocation
// pointing at a student that does not exist, or deleting a referenced parent.
func IsForeignKeyViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == CodeForeignKeyViolation
}

// IsNotNullViolation reports a not_null_violation
func IsNotNullViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == CodeNotNullViolation
}

// ConstraintName returns the violated constraint, if the driver reported one
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// Classify returns a short label for logging
func Classify(err error) string {
	code, ok := pgCode(err)
	if !ok {
		if err == nil {
			return ""
		}
		return "driver"
	}
	switch code {
	case CodeUniqueViolation:
		return "unique"
	case CodeForeignKeyViolation:
		return "foreign_key"
	case CodeNotNullViolation:
		return "not_null"
	case CodeCheckViolation:
		return "check"
	case CodeInvalidDatetime:
		return "invalid_datetime"
	case CodeNumericOutOfRange:
		return "numeric_out_of_range"
	default:
		return "sqlstate_" + code
	}
}
