package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "is required")
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "is required")

	wrapped := fmt.Errorf("create team: %w", err)
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(errors.New("plain")))
}

func TestLockHeldError_UnwrapsToResourceLocked(t *testing.T) {
	err := &LockHeldError{
		HolderAgent: "agent-1",
		LockID:      "lock-1",
		ExpiresAt:   "2026-08-24T10:00:00Z",
	}
	assert.ErrorIs(t, err, ErrResourceLocked)
	assert.Contains(t, err.Error(), "agent-1")

	var held *LockHeldError
	wrapped := fmt.Errorf("acquire: %w", err)
	assert.True(t, errors.As(wrapped, &held))
	assert.Equal(t, "lock-1", held.LockID)
}
