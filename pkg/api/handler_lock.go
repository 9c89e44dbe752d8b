package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/models"
)

// acquireLockHandler handles POST /api/v1/locks.
func (s *Server) acquireLockHandler(c *echo.Context) error {
	var req models.AcquireLockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lock, err := s.locks.Acquire(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, lock)
}

// releaseLockRequest is the body of DELETE /api/v1/locks/:id.
type releaseLockRequest struct {
	OwnerAgent string `json:"owner_agent"`
}

// releaseLockHandler handles DELETE /api/v1/locks/:id.
func (s *Server) releaseLockHandler(c *echo.Context) error {
	var req releaseLockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.OwnerAgent == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "owner_agent is required")
	}

	if err := s.locks.Release(c.Request().Context(), c.Param("id"), req.OwnerAgent); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// detectConflictRequest is the body of POST /api/v1/locks/detect-conflict.
type detectConflictRequest struct {
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	ContentHash  string `json:"content_hash"`
}

// detectConflictHandler handles POST /api/v1/locks/detect-conflict.
func (s *Server) detectConflictHandler(c *echo.Context) error {
	var req detectConflictRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ResourceType == "" || req.ResourceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "resource_type and resource_id are required")
	}

	result, err := s.locks.DetectConflict(c.Request().Context(), req.ResourceType, req.ResourceID, req.ContentHash)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
