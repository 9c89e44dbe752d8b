// Package services implements the domain operations behind the HTTP API:
// teams, agents, workflow runs, approval gates, resource locks, and
// webhook registration.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is missing or soft-deleted.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrForbidden is returned when the actor lacks rights for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict is returned when a state transition races or repeats
	// (double approval response, claim of an assigned task).
	ErrConflict = errors.New("conflict")

	// ErrResourceLocked is returned when another owner holds an active lock.
	ErrResourceLocked = errors.New("resource locked")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// LockHeldError carries the current holder on a lock conflict.
type LockHeldError struct {
	HolderAgent string
	LockID      string
	ExpiresAt   string
}

func (e *LockHeldError) Error() string {
	return fmt.Sprintf("resource locked by agent %s until %s", e.HolderAgent, e.ExpiresAt)
}

func (e *LockHeldError) Unwrap() error {
	return ErrResourceLocked
}
