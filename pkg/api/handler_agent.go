package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/models"
)

// registerAgentHandler handles POST /api/v1/agents.
func (s *Server) registerAgentHandler(c *echo.Context) error {
	var req models.RegisterAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := s.agents.Register(c.Request().Context(), actor(c).Subject, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	agents, err := s.agents.List(c.Request().Context(), c.QueryParam("team_id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agents)
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *echo.Context) error {
	a, err := s.agents.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, a)
}

// deleteAgentHandler handles DELETE /api/v1/agents/:id.
func (s *Server) deleteAgentHandler(c *echo.Context) error {
	if err := s.agents.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// createAgentVersionHandler handles POST /api/v1/agents/:id/versions.
func (s *Server) createAgentVersionHandler(c *echo.Context) error {
	var req models.CreateAgentVersionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := s.agents.CreateVersion(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, v)
}

// listAgentVersionsHandler handles GET /api/v1/agents/:id/versions.
func (s *Server) listAgentVersionsHandler(c *echo.Context) error {
	versions, err := s.agents.ListVersions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, versions)
}
