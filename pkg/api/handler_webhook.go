package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/models"
)

// registerWebhookHandler handles POST /api/v1/webhooks.
func (s *Server) registerWebhookHandler(c *echo.Context) error {
	var req models.RegisterWebhookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hook, err := s.webhooks.Register(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, hook)
}

// listWebhooksHandler handles GET /api/v1/webhooks.
func (s *Server) listWebhooksHandler(c *echo.Context) error {
	teamID := c.QueryParam("team_id")
	if teamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "team_id query parameter is required")
	}

	hooks, err := s.webhooks.List(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, hooks)
}

// disableWebhookHandler handles DELETE /api/v1/webhooks/:id. Pending
// deliveries are dead-lettered.
func (s *Server) disableWebhookHandler(c *echo.Context) error {
	if err := s.webhooks.Disable(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listDeliveriesHandler handles GET /api/v1/webhooks/:id/deliveries.
func (s *Server) listDeliveriesHandler(c *echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	deliveries, err := s.webhooks.Deliveries(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, deliveries)
}
