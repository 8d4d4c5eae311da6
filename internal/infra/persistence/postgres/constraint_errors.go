package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking

func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's translated duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to PostgreSQL-specific patterns when the driver error was
	// not translated by GORM.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// isUniqueConstraintViolationOn reports whether err is a unique violation
// whose constraint or column name mentions the given column. The driver
// message carries the constraint name (e.g. "users_username_key"), which is
// how concurrent signups losing the username race are told apart from the
// email ones.
func isUniqueConstraintViolationOn(err error, column string) bool {
	if !isUniqueConstraintViolation(err) {
		return false
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(column))
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
