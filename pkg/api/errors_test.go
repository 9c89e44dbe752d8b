package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-hq/conductor/pkg/kanban"
	"github.com/conductor-hq/conductor/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", services.NewValidationError("name", "is required"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get team: %w", services.ErrNotFound), http.StatusNotFound},
		{"task not found", kanban.ErrTaskNotFound, http.StatusNotFound},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"not assignee", kanban.ErrNotAssignee, http.StatusForbidden},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"conflict", services.ErrConflict, http.StatusConflict},
		{"already taken", kanban.ErrAlreadyTaken, http.StatusConflict},
		{"not claimable", kanban.ErrNotClaimable, http.StatusConflict},
		{"resource locked", services.ErrResourceLocked, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestMapServiceError_LockHeldCarriesHolder(t *testing.T) {
	err := &services.LockHeldError{
		HolderAgent: "agent-9",
		LockID:      "lock-1",
		ExpiresAt:   "2026-08-24T10:00:00Z",
	}
	httpErr := mapServiceError(err)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	assert.Contains(t, fmt.Sprint(httpErr.Message), "agent-9")
}
