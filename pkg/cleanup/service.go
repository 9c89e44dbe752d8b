// Package cleanup enforces retention policies on terminal records:
// completed workflow runs (with their stage executions and audit records),
// done tasks, and settled webhook deliveries.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/task"
	"github.com/conductor-hq/conductor/ent/webhookdelivery"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/config"
)

// Service periodically purges records past their retention TTL. All
// operations are idempotent and safe to run from multiple pods.
type Service struct {
	cfg    config.RetentionConfig
	client *ent.Client
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service.
func NewService(cfg config.RetentionConfig, client *ent.Client, logger *slog.Logger) *Service {
	if client == nil {
		panic("cleanup.NewService: client must not be nil")
	}
	return &Service{cfg: cfg, client: client, logger: logger}
}

// Start launches the background purge loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Retention service started",
		"run_ttl", s.cfg.RunTTL,
		"task_ttl", s.cfg.TaskTTL,
		"delivery_ttl", s.cfg.DeliveryTTL,
		"interval", s.cfg.SweepInterval)
}

// Stop signals the purge loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce applies every retention policy a single time.
func (s *Service) RunOnce(ctx context.Context) {
	s.purgeRuns(ctx)
	s.purgeTasks(ctx)
	s.purgeDeliveries(ctx)
}

// purgeRuns deletes terminal workflow runs past the run TTL. Stage
// executions and audit records are removed by the cascade.
func (s *Service) purgeRuns(ctx context.Context) {
	if s.cfg.RunTTL <= 0 {
		return
	}
	cutoff := time.Now().UTC().Add(-s.cfg.RunTTL)
	n, err := s.client.WorkflowRun.Delete().
		Where(
			workflowrun.StatusIn(workflowrun.StatusCompleted, workflowrun.StatusFailed),
			workflowrun.CompletedAtNotNil(),
			workflowrun.CompletedAtLTE(cutoff),
		).
		Exec(ctx)
	if err != nil {
		s.logger.Error("Retention: run purge failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("Retention: purged workflow runs", "count", n)
	}
}

func (s *Service) purgeTasks(ctx context.Context) {
	if s.cfg.TaskTTL <= 0 {
		return
	}
	cutoff := time.Now().UTC().Add(-s.cfg.TaskTTL)
	n, err := s.client.Task.Delete().
		Where(
			task.StatusEQ(task.StatusDone),
			task.CompletedAtNotNil(),
			task.CompletedAtLTE(cutoff),
		).
		Exec(ctx)
	if err != nil {
		s.logger.Error("Retention: task purge failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("Retention: purged done tasks", "count", n)
	}
}

func (s *Service) purgeDeliveries(ctx context.Context) {
	if s.cfg.DeliveryTTL <= 0 {
		return
	}
	cutoff := time.Now().UTC().Add(-s.cfg.DeliveryTTL)
	n, err := s.client.WebhookDelivery.Delete().
		Where(
			webhookdelivery.StatusIn(webhookdelivery.StatusSuccess, webhookdelivery.StatusDeadLetter),
			webhookdelivery.CreatedAtLTE(cutoff),
		).
		Exec(ctx)
	if err != nil {
		s.logger.Error("Retention: delivery purge failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("Retention: purged webhook deliveries", "count", n)
	}
}
