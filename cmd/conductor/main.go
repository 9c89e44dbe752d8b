// Conductor orchestration server: HTTP API, agent gateway, queue workers,
// and the background sweeps for tasks, webhooks, approvals, and locks.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/conductor-hq/conductor/pkg/agentcall"
	"github.com/conductor-hq/conductor/pkg/api"
	"github.com/conductor-hq/conductor/pkg/audit"
	"github.com/conductor-hq/conductor/pkg/auth"
	"github.com/conductor-hq/conductor/pkg/bus"
	"github.com/conductor-hq/conductor/pkg/cache"
	"github.com/conductor-hq/conductor/pkg/cleanup"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/database"
	"github.com/conductor-hq/conductor/pkg/gateway"
	"github.com/conductor-hq/conductor/pkg/kanban"
	"github.com/conductor-hq/conductor/pkg/queue"
	"github.com/conductor-hq/conductor/pkg/router"
	"github.com/conductor-hq/conductor/pkg/secrets"
	"github.com/conductor-hq/conductor/pkg/services"
	"github.com/conductor-hq/conductor/pkg/webhook"
	"github.com/conductor-hq/conductor/pkg/workflow"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	podID := resolvePodID()
	logger.Info("Starting conductor", "addr", cfg.Server.Addr(), "pod_id", podID)

	ctx := context.Background()

	// Database (connect + migrate).
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	// Requeue runs this pod abandoned in a previous life.
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		logger.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal; the periodic orphan scan covers the same ground.
	}

	// Redis cache. Disabled configuration degrades to direct DB queries.
	c := cache.New(cfg.Cache)
	defer func() { _ = c.Close() }()
	if c.Enabled() {
		logger.Info("Redis cache enabled", "addr", cfg.Cache.Addr)
	} else {
		logger.Info("Redis cache disabled, using direct queries")
	}

	// Audit signing. Nil signer means records are stored unsigned.
	signer, err := audit.LoadSigner(cfg.Audit)
	if err != nil {
		logger.Error("Failed to load audit signing key", "error", err)
		os.Exit(1)
	}
	recorder := audit.NewRecorder(dbClient.Client, signer)
	if signer != nil {
		logger.Info("Audit signing enabled", "signer", signer.Name())
	}

	// Agent secret encryption.
	box, err := secrets.NewBox(cfg.Dispatch.EncryptionKey)
	if err != nil {
		logger.Error("Failed to initialize secret encryption", "error", err)
		os.Exit(1)
	}

	// Event fabric and fan-out.
	eventBus := bus.New()
	verifier := auth.NewVerifier(cfg.Server.JWTSecret)
	gw := gateway.New(dbClient.Client, eventBus, c, verifier, cfg.Gateway, logger)
	dispatcher := webhook.NewDispatcher(dbClient.Client, eventBus, cfg.Webhook, logger)

	// Domain services.
	teamService := services.NewTeamService(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client, teamService, box, c, logger)
	runService := services.NewRunService(dbClient.Client, logger)
	approvalService := services.NewApprovalService(dbClient.Client, teamService, eventBus, logger)
	lockService := services.NewLockService(dbClient.Client, logger)
	webhookService := services.NewWebhookService(dbClient.Client, teamService, dispatcher, logger)
	taskEngine := kanban.NewEngine(dbClient.Client, eventBus, logger)
	logger.Info("Services initialized")

	// Workflow execution pipeline.
	rt := router.New(dbClient.Client, c, logger)
	agentClient := agentcall.NewClient(cfg.Dispatch.CallTimeout)
	executor := workflow.NewExecutor(dbClient.Client, rt, agentClient, c, recorder, box, cfg.Dispatch, logger)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		logger.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// Agent health probing for agents without an open stream.
	healthCtx, healthCancel := context.WithCancel(ctx)
	defer healthCancel()
	healthChecker := agentcall.NewHealthChecker(dbClient.Client, c, eventBus, cfg.Dispatch.HealthCheckInterval, logger)
	go healthChecker.Run(healthCtx)

	// Retention purges for terminal runs, tasks, and deliveries.
	retention := cleanup.NewService(cfg.Retention, dbClient.Client, logger)
	retention.Start(ctx)

	// Background sweeps on one shared cron runner.
	sweeper := cron.New()
	mustSchedule(sweeper, "@every 10s", func() { taskEngine.SweepTimeouts(ctx) })
	mustSchedule(sweeper, "@every 30s", func() { dispatcher.Sweep(ctx) })
	mustSchedule(sweeper, "@every 30s", func() { approvalService.ExpireDue(ctx) })
	mustSchedule(sweeper, "@every 30s", func() { lockService.ExpireDue(ctx) })
	sweeper.Start()
	defer sweeper.Stop()

	// HTTP server.
	server := api.NewServer(cfg.Server, api.Deps{
		Client:     dbClient.Client,
		DBClient:   dbClient,
		Cache:      c,
		Teams:      teamService,
		Agents:     agentService,
		Runs:       runService,
		Approvals:  approvalService,
		Locks:      lockService,
		Webhooks:   webhookService,
		Tasks:      taskEngine,
		Recorder:   recorder,
		Gateway:    gw,
		WorkerPool: workerPool,
		Verifier:   verifier,
		Logger:     logger,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	logger.Info("Conductor started", "pod_id", podID, "workers", cfg.Queue.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		logger.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: drain workers first, then close agent streams,
	// then stop accepting HTTP.
	healthCancel()
	retention.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		logger.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		logger.Warn("Shutdown timeout exceeded, in-flight runs will be orphan-recovered")
	}

	gw.Shutdown()

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("Shutdown complete")
}

func mustSchedule(c *cron.Cron, spec string, job func()) {
	if _, err := c.AddFunc(spec, job); err != nil {
		slog.Error("Failed to schedule background job", "spec", spec, "error", err)
		os.Exit(1)
	}
}
