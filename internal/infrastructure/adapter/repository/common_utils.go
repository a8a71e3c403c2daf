package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	LockError         ErrorType = "lock"
	ContextError      ErrorType = "context"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier classifies driver errors from Postgres and SQLite by message
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case isContextError(err):
		return ContextError
	case c.IsLockError(err):
		return LockError
	case c.IsConstraintError(err):
		return ConstraintError
	default:
		return ConnectionError
	}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// IsLockError checks if the error is due to row or table locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "violates") ||
		strings.Contains(msg, "FOREIGN KEY") ||
		c.IsDuplicateKeyError(err)
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "context canceled")
}

// dbError wraps a driver error into ErrDatabaseConnection and logs it
func dbError(logger coreport.Logger, operation string, err error, fields map[string]any) error {
	logFields := map[string]any{
		"operation": operation,
		"error":     err.Error(),
	}
	for k, v := range fields {
		logFields[k] = v
	}

	if isContextError(err) {
		logger.Warn("Database operation interrupted", logFields)
		return fmt.Errorf("%w: %s: %w", errs.ErrDatabaseConnection, operation, err)
	}

	logger.Error("Database operation failed", logFields)
	return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, operation, err.Error())
}

// notFoundOr maps gorm.ErrRecordNotFound to notFound and everything else through dbError
func notFoundOr(logger coreport.Logger, notFound error, operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return dbError(logger, operation, err, fields)
}

// nullable stores empty references as NULL so unique indexes ignore them
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
