package utils

import (
	"errors"
	"fmt"
)

// Error kinds used across services. Controllers map these onto HTTP
// status codes in RespondWithError; everything else wraps them with %w
// so callers can test with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrTransactionFailure = errors.New("transaction failure")
)

// NotFoundf wraps ErrNotFound with the entity and id that failed to resolve.
func NotFoundf(entity string, id interface{}) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, entity, id)
}

// InvalidStatef wraps ErrInvalidState with a description of the conflict.
func InvalidStatef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// InvalidInputf wraps ErrInvalidInput with the offending field.
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Forbiddenf wraps ErrForbidden with actor/target detail.
func Forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

// InvalidTransitionf wraps ErrInvalidTransition with the rejected edge.
func InvalidTransitionf(from, to string) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// TransactionFailuref wraps ErrTransactionFailure; the whole write has
// been rolled back when this is returned.
func TransactionFailuref(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrTransactionFailure, op, cause)
}
