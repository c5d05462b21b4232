package sqlstore

import (
	"strings"

	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for constraint error checking. TranslateError covers both
// drivers; the message checks catch errors raised before translation.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed") || // SQLite
		strings.Contains(errMsg, "duplicate key") || // PostgreSQL
		strings.Contains(errMsg, "sqlstate 23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint failed") ||
		strings.Contains(errMsg, "sqlstate 23503")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint failed") ||
		strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// translateWriteError maps a failed insert, update or delete to a domain error.
// duplicate is returned for unique key violations.
func translateWriteError(err error, duplicate *domainerrors.BaseError, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return duplicate
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrConstraintViolation.WithDetails(details + ": unknown reference")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrConstraintViolation.WithDetails(details + ": missing required value")
	default:
		return domainerrors.NewQueryFailure(err, details)
	}
}

// translateReadError maps a failed lookup to notFound or a query failure.
func translateReadError(err error, notFound *domainerrors.BaseError, details string) error {
	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	return domainerrors.NewQueryFailure(err, details)
}
