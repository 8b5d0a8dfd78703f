package mysql

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for MySQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// go-sql-driver surfaces ER_DUP_ENTRY (1062) in the message
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate entry") ||
		strings.Contains(errMsg, "unique constraint")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	// ER_NO_REFERENCED_ROW_2 (1452)
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	// ER_CHECK_CONSTRAINT_VIOLATED (3819); sqlite reports "CHECK constraint failed"
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint")
}

// isDeadlineExceeded reports whether the store call ran out of its
// per-request budget.
func isDeadlineExceeded(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
