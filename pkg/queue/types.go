// Package queue provides the durable workflow-run queue: worker pool,
// claim semantics, heartbeats, and orphan recovery. Runs double as queue
// jobs, so publish-by-id deduplication and single-owner delivery fall out
// of the runs table's primary key and claim predicate.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/workflowrun"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no queued runs are waiting.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor processes one claimed workflow run to a terminal state.
//
// The executor owns the run lifecycle internally: stage ordering, template
// resolution, retries, fallback, and audit emission. It writes stage state
// progressively; the worker only handles claiming, heartbeat, terminal
// status, and requeue-on-shutdown.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.WorkflowRun) *ExecutionResult
}

// ExecutionResult is the terminal state of one run. Intermediate state
// (stage executions, audit records) was already persisted by the executor.
type ExecutionResult struct {
	Status workflowrun.Status // completed or failed
	Output map[string]interface{}
	Error  error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
