package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/models"
)

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *echo.Context) error {
	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TeamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "team_id is required")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if req.CreatedByUser == "" {
		req.CreatedByUser = actor(c).Subject
	}

	t, err := s.tasks.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, t)
}

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	teamID := c.QueryParam("team_id")
	if teamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "team_id query parameter is required")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	tasks, err := s.tasks.List(c.Request().Context(), teamID, c.QueryParam("status"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	t, err := s.tasks.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// claimTaskRequest is the body of POST /api/v1/tasks/:id/claim.
type claimTaskRequest struct {
	AgentID string `json:"agent_id"`
}

// claimTaskHandler handles POST /api/v1/tasks/:id/claim.
func (s *Server) claimTaskHandler(c *echo.Context) error {
	var req claimTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	t, err := s.tasks.Claim(c.Request().Context(), c.Param("id"), req.AgentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// taskProgressHandler handles POST /api/v1/tasks/:id/progress.
func (s *Server) taskProgressHandler(c *echo.Context) error {
	var req models.TaskProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	t, err := s.tasks.Progress(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// completeTaskHandler handles POST /api/v1/tasks/:id/complete.
func (s *Server) completeTaskHandler(c *echo.Context) error {
	var req models.CompleteTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	t, err := s.tasks.Complete(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// rejectTaskHandler handles POST /api/v1/tasks/:id/reject.
func (s *Server) rejectTaskHandler(c *echo.Context) error {
	var req models.RejectTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := s.tasks.Reject(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// failTaskHandler handles POST /api/v1/tasks/:id/fail.
func (s *Server) failTaskHandler(c *echo.Context) error {
	var req models.FailTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}
	if req.Error == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "error is required")
	}

	t, err := s.tasks.Fail(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// delegateTaskRequest is the body of POST /api/v1/tasks/delegate.
type delegateTaskRequest struct {
	AgentID string `json:"agent_id"`
	models.CreateTaskRequest
}

// delegateTaskHandler handles POST /api/v1/tasks/delegate. The task is
// created in the delegating agent's team.
func (s *Server) delegateTaskHandler(c *echo.Context) error {
	var req delegateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	t, err := s.tasks.Delegate(c.Request().Context(), req.AgentID, req.CreateTaskRequest)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, t)
}
