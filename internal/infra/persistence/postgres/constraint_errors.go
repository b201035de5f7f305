package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL error codes the repositories translate into input errors.
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateNotNullViolation     = "23502"
	sqlStateStringTooLong        = "22001"
	sqlStateNumericValueOverflow = "22003"
)

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueConstraintViolation relies on TranslateError turning SQLSTATE 23505 into gorm.ErrDuplicatedKey,
// with a message fallback for drivers that do not translate.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == sqlStateUniqueViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, sqlStateUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func isNotNullConstraintViolation(err error) bool {
	if sqlState(err) == sqlStateNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not-null") ||
		strings.Contains(errMsg, sqlStateNotNullViolation)
}

// isValueOutOfRange covers strings longer than their column and numbers
// that overflow their numeric precision.
func isValueOutOfRange(err error) bool {
	switch sqlState(err) {
	case sqlStateStringTooLong, sqlStateNumericValueOverflow:
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "value too long") ||
		strings.Contains(errMsg, "numeric field overflow") ||
		strings.Contains(errMsg, sqlStateStringTooLong) ||
		strings.Contains(errMsg, sqlStateNumericValueOverflow)
}
