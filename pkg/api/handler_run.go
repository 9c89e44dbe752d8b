package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/models"
)

// createRunHandler handles POST /api/v1/runs. Enqueues the run and
// returns immediately; workers pick it up asynchronously.
func (s *Server) createRunHandler(c *echo.Context) error {
	var req models.CreateRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	run, err := s.runs.Enqueue(c.Request().Context(), actor(c).Subject, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, run)
}

// listRunsHandler handles GET /api/v1/runs.
func (s *Server) listRunsHandler(c *echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	runs, err := s.runs.List(c.Request().Context(), actor(c).Subject, c.QueryParam("status"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, runs)
}

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c *echo.Context) error {
	run, err := s.runs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, run)
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel. Cancellation is
// cooperative: only a run executing on this replica can be interrupted.
func (s *Server) cancelRunHandler(c *echo.Context) error {
	if s.workerPool == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "worker pool not available on this replica")
	}
	runID := c.Param("id")
	if !s.workerPool.CancelRun(runID) {
		return echo.NewHTTPError(http.StatusConflict, "run is not executing on this replica")
	}
	return c.JSON(http.StatusOK, map[string]string{"run_id": runID, "status": "cancelling"})
}

// verifyRunAuditHandler handles GET /api/v1/runs/:id/audit. Returns the
// run's audit records with per-record signature verification results.
func (s *Server) verifyRunAuditHandler(c *echo.Context) error {
	if _, err := s.runs.Get(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	results, err := s.recorder.VerifyRun(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "audit verification failed")
	}
	return c.JSON(http.StatusOK, results)
}
