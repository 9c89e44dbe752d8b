package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/models"
)

// createTeamHandler handles POST /api/v1/teams.
func (s *Server) createTeamHandler(c *echo.Context) error {
	var req models.CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := s.teams.CreateTeam(c.Request().Context(), actor(c).Subject, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, team)
}

// getTeamHandler handles GET /api/v1/teams/:id.
func (s *Server) getTeamHandler(c *echo.Context) error {
	team, err := s.teams.GetTeam(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, team)
}

// addTeamMemberHandler handles POST /api/v1/teams/:id/members.
func (s *Server) addTeamMemberHandler(c *echo.Context) error {
	var req models.AddTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := s.teams.AddMember(c.Request().Context(), c.Param("id"), actor(c).Subject, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

// listTeamMembersHandler handles GET /api/v1/teams/:id/members.
func (s *Server) listTeamMembersHandler(c *echo.Context) error {
	teamID := c.Param("id")
	ok, err := s.teams.IsMember(c.Request().Context(), teamID, actor(c).Subject)
	if err != nil {
		return mapServiceError(err)
	}
	if !ok && !actor(c).IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "not a team member")
	}

	members, err := s.teams.Members(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, members)
}
