// Package api exposes the platform over HTTP: REST endpoints for teams,
// agents, runs, tasks, approvals, locks, and webhooks, plus the WebSocket
// upgrade path for persistent agent streams.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/pkg/audit"
	"github.com/conductor-hq/conductor/pkg/auth"
	"github.com/conductor-hq/conductor/pkg/cache"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/database"
	"github.com/conductor-hq/conductor/pkg/gateway"
	"github.com/conductor-hq/conductor/pkg/kanban"
	"github.com/conductor-hq/conductor/pkg/queue"
	"github.com/conductor-hq/conductor/pkg/services"
)

// Server wires the service layer to HTTP routes.
type Server struct {
	client   *ent.Client
	dbClient *database.Client
	cache    *cache.Cache

	teams     *services.TeamService
	agents    *services.AgentService
	runs      *services.RunService
	approvals *services.ApprovalService
	locks     *services.LockService
	webhooks  *services.WebhookService
	tasks     *kanban.Engine

	recorder   *audit.Recorder
	gateway    *gateway.Gateway
	workerPool *queue.WorkerPool
	verifier   *auth.Verifier
	logger     *slog.Logger

	echo *echo.Echo
	http *http.Server
}

// Deps carries everything the server needs. All fields are required
// except WorkerPool and Gateway, which may be nil on API-only replicas.
type Deps struct {
	Client   *ent.Client
	DBClient *database.Client
	Cache    *cache.Cache

	Teams     *services.TeamService
	Agents    *services.AgentService
	Runs      *services.RunService
	Approvals *services.ApprovalService
	Locks     *services.LockService
	Webhooks  *services.WebhookService
	Tasks     *kanban.Engine

	Recorder   *audit.Recorder
	Gateway    *gateway.Gateway
	WorkerPool *queue.WorkerPool
	Verifier   *auth.Verifier
	Logger     *slog.Logger
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(cfg config.ServerConfig, d Deps) *Server {
	s := &Server{
		client:     d.Client,
		dbClient:   d.DBClient,
		cache:      d.Cache,
		teams:      d.Teams,
		agents:     d.Agents,
		runs:       d.Runs,
		approvals:  d.Approvals,
		locks:      d.Locks,
		webhooks:   d.Webhooks,
		tasks:      d.Tasks,
		recorder:   d.Recorder,
		gateway:    d.Gateway,
		workerPool: d.WorkerPool,
		verifier:   d.Verifier,
		logger:     d.Logger,
	}

	e := echo.New()
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e
	s.http = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/ws/agent", s.wsHandler)

	v1 := e.Group("/api/v1", s.requireUser())

	v1.POST("/teams", s.createTeamHandler)
	v1.GET("/teams/:id", s.getTeamHandler)
	v1.POST("/teams/:id/members", s.addTeamMemberHandler)
	v1.GET("/teams/:id/members", s.listTeamMembersHandler)

	v1.POST("/agents", s.registerAgentHandler)
	v1.GET("/agents", s.listAgentsHandler)
	v1.GET("/agents/:id", s.getAgentHandler)
	v1.DELETE("/agents/:id", s.deleteAgentHandler)
	v1.POST("/agents/:id/versions", s.createAgentVersionHandler)
	v1.GET("/agents/:id/versions", s.listAgentVersionsHandler)

	v1.POST("/runs", s.createRunHandler)
	v1.GET("/runs", s.listRunsHandler)
	v1.GET("/runs/:id", s.getRunHandler)
	v1.POST("/runs/:id/cancel", s.cancelRunHandler)
	v1.GET("/runs/:id/audit", s.verifyRunAuditHandler)

	v1.POST("/tasks", s.createTaskHandler)
	v1.GET("/tasks", s.listTasksHandler)
	v1.GET("/tasks/:id", s.getTaskHandler)
	v1.POST("/tasks/:id/claim", s.claimTaskHandler)
	v1.POST("/tasks/:id/progress", s.taskProgressHandler)
	v1.POST("/tasks/:id/complete", s.completeTaskHandler)
	v1.POST("/tasks/:id/reject", s.rejectTaskHandler)
	v1.POST("/tasks/:id/fail", s.failTaskHandler)
	v1.POST("/tasks/delegate", s.delegateTaskHandler)

	v1.POST("/approvals", s.createApprovalHandler)
	v1.GET("/approvals", s.listApprovalsHandler)
	v1.GET("/approvals/:id", s.getApprovalHandler)
	v1.POST("/approvals/:id/respond", s.respondApprovalHandler)

	v1.POST("/locks", s.acquireLockHandler)
	v1.DELETE("/locks/:id", s.releaseLockHandler)
	v1.POST("/locks/detect-conflict", s.detectConflictHandler)

	v1.POST("/webhooks", s.registerWebhookHandler)
	v1.GET("/webhooks", s.listWebhooksHandler)
	v1.DELETE("/webhooks/:id", s.disableWebhookHandler)
	v1.GET("/webhooks/:id/deliveries", s.listDeliveriesHandler)

	v1.GET("/system/health", s.systemHealthHandler)
}

// Start serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
