package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/metrics"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes runs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor RunExecutor
	pool     RunRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run
// registration and cancellation.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry) *Worker {
	return &Worker{
		id:       id,
		podID:    podID,
		client:   client,
		config:   cfg,
		executor: executor,
		pool:     pool,
		stopCh:   make(chan struct{}),
		status:   WorkerStatusIdle,
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// run. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check is best-effort; racy with concurrent workers
	// but bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.WorkflowRun.Query().
		Where(workflowrun.StatusEQ(workflowrun.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	run, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", run.ID, "worker_id", w.id)
	log.Info("Run claimed", "workflow", run.WorkflowName)
	metrics.RunsClaimed.Inc()
	claimedAt := time.Now()

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	go w.runHeartbeat(heartbeatCtx, run.ID)

	result := w.executor.Execute(runCtx, run)

	if result == nil {
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: workflowrun.StatusFailed,
				Error:  fmt.Errorf("run timed out after %v", w.config.RunTimeout),
			}
		case errors.Is(runCtx.Err(), context.Canceled):
			// Shutdown mid-run. Leave the run in_progress so orphan
			// recovery requeues it for another worker.
			cancelHeartbeat()
			log.Info("Run interrupted by shutdown, leaving for redelivery")
			return nil
		default:
			result = &ExecutionResult{
				Status: workflowrun.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	cancelHeartbeat()

	// Terminal update uses a background context; the run ctx may be gone.
	if err := w.updateRunTerminalStatus(context.Background(), run, result); err != nil {
		log.Error("Failed to update run terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	metrics.RunsCompleted.WithLabelValues(string(result.Status)).Inc()
	metrics.RunDuration.Observe(time.Since(claimedAt).Seconds())
	log.Info("Run processing complete", "status", result.Status)
	return nil
}

// claimNextRun atomically claims the oldest queued run using
// FOR UPDATE SKIP LOCKED. The claim update re-checks status=queued so a
// redelivered row that another pod already finished is never reclaimed.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.WorkflowRun, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	run, err := tx.WorkflowRun.Query().
		Where(workflowrun.StatusEQ(workflowrun.StatusQueued)).
		Order(ent.Asc(workflowrun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query queued run: %w", err)
	}

	now := time.Now().UTC()
	claimed, err := tx.WorkflowRun.Update().
		Where(
			workflowrun.IDEQ(run.ID),
			workflowrun.StatusEQ(workflowrun.StatusQueued),
		).
		SetStatus(workflowrun.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}
	if claimed == 0 {
		return nil, ErrNoRunsAvailable
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return w.client.WorkflowRun.Get(ctx, run.ID)
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, runID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.WorkflowRun.UpdateOneID(runID).
				SetLastHeartbeatAt(time.Now().UTC()).
				Exec(ctx); err != nil && ctx.Err() == nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
			}
		}
	}
}

// updateRunTerminalStatus writes the final run status. Conditional on the
// run still being in progress, so a concurrent orphan requeue wins.
func (w *Worker) updateRunTerminalStatus(ctx context.Context, run *ent.WorkflowRun, result *ExecutionResult) error {
	update := w.client.WorkflowRun.Update().
		Where(
			workflowrun.IDEQ(run.ID),
			workflowrun.StatusEQ(workflowrun.StatusInProgress),
		).
		SetStatus(result.Status).
		SetCompletedAt(time.Now().UTC())

	if result.Output != nil {
		update = update.SetOutput(result.Output)
	}
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}

	n, err := update.Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		slog.Warn("Run was no longer in progress at terminal update", "run_id", run.ID)
	}
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
