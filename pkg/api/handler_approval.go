package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/models"
)

// createApprovalHandler handles POST /api/v1/approvals.
func (s *Server) createApprovalHandler(c *echo.Context) error {
	var req models.CreateApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RequestedByAgent == "" && req.RequestedByUser == "" {
		req.RequestedByUser = actor(c).Subject
	}

	gate, err := s.approvals.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, gate)
}

// listApprovalsHandler handles GET /api/v1/approvals.
func (s *Server) listApprovalsHandler(c *echo.Context) error {
	teamID := c.QueryParam("team_id")
	if teamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "team_id query parameter is required")
	}

	gates, err := s.approvals.ListPending(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, gates)
}

// getApprovalHandler handles GET /api/v1/approvals/:id.
func (s *Server) getApprovalHandler(c *echo.Context) error {
	gate, err := s.approvals.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, gate)
}

// respondApprovalHandler handles POST /api/v1/approvals/:id/respond.
// The responding user is the authenticated actor, never the body.
func (s *Server) respondApprovalHandler(c *echo.Context) error {
	var req models.RespondApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.UserID = actor(c).Subject

	gate, err := s.approvals.Respond(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, gate)
}
