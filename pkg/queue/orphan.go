package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/metrics"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned runs. All pods run
// this independently; recovery is a conditional update so pods never race.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress runs with stale heartbeats and
// requeues them. The queue is at-least-once: a requeued run is redelivered
// to another worker, which resumes from the persisted completed_stages.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.WorkflowRun.Query().
		Where(
			workflowrun.StatusEQ(workflowrun.StatusInProgress),
			workflowrun.LastHeartbeatAtNotNil(),
			workflowrun.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		if err := p.requeueOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to requeue orphaned run",
				"run_id", run.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedRun puts a single orphaned run back in the queue. The
// status precondition makes concurrent recovery by multiple pods a no-op.
func (p *WorkerPool) requeueOrphanedRun(ctx context.Context, run *ent.WorkflowRun) error {
	lastHeartbeat := "unknown"
	if run.LastHeartbeatAt != nil {
		lastHeartbeat = run.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if run.PodID != nil {
		podID = *run.PodID
	}

	n, err := p.client.WorkflowRun.Update().
		Where(
			workflowrun.IDEQ(run.ID),
			workflowrun.StatusEQ(workflowrun.StatusInProgress),
		).
		SetStatus(workflowrun.StatusQueued).
		ClearPodID().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue run: %w", err)
	}
	if n == 0 {
		return nil
	}

	metrics.OrphansRequeued.Inc()
	slog.Warn("Orphaned run requeued",
		"run_id", run.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	return nil
}

// RequeueStartupOrphans performs a one-time requeue of runs owned by this
// pod that were in progress when the pod previously crashed. Called once
// during startup, before the worker pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.WorkflowRun.Update().
		Where(
			workflowrun.StatusEQ(workflowrun.StatusInProgress),
			workflowrun.PodIDEQ(podID),
		).
		SetStatus(workflowrun.StatusQueued).
		ClearPodID().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Requeued startup orphans from previous run",
			"pod_id", podID,
			"count", n)
	}
	return nil
}
