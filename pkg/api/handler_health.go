package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/database"
	"github.com/conductor-hq/conductor/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is one component's check result.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// healthHandler handles GET /health. Unauthenticated liveness check:
// only the database is probed so an unhealthy cache or a drained worker
// pool never triggers an orchestrator restart.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// SystemHealthResponse is the body of GET /api/v1/system/health.
type SystemHealthResponse struct {
	Status           string                 `json:"status"`
	Version          string                 `json:"version"`
	Checks           map[string]HealthCheck `json:"checks"`
	WorkerPool       interface{}            `json:"worker_pool,omitempty"`
	GatewayConnCount int                    `json:"gateway_connections"`
}

// systemHealthHandler handles GET /api/v1/system/health. The full picture:
// database, cache, worker pool, and gateway connection count.
func (s *Server) systemHealthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.cache.Enabled() {
		if err := s.cache.Ping(reqCtx); err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["cache"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			checks["cache"] = HealthCheck{Status: healthStatusHealthy}
		}
	} else {
		checks["cache"] = HealthCheck{Status: healthStatusHealthy, Message: "disabled"}
	}

	resp := &SystemHealthResponse{
		Version: version.GitCommit,
		Checks:  checks,
	}
	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		resp.WorkerPool = poolHealth
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}
	if s.gateway != nil {
		resp.GatewayConnCount = s.gateway.ActiveConnections()
	}
	resp.Status = status

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, resp)
}
