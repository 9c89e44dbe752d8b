package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how workflow runs are polled, claimed, and executed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and executes runs.
	WorkerCount int

	// MaxConcurrentRuns is the global limit of concurrent runs in progress
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentRuns int

	// PollInterval is the base interval for checking queued runs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// RunTimeout is the maximum wall-clock time a run may execute.
	RunTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active runs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// OrphanScanInterval is how often to scan for orphaned runs.
	OrphanScanInterval time.Duration

	// OrphanThreshold is how long a run may go without a heartbeat before
	// it is requeued for another worker.
	OrphanThreshold time.Duration

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at
	// on its active run.
	HeartbeatInterval time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              30 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Minute,
		OrphanScanInterval:      1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
		HeartbeatInterval:       15 * time.Second,
	}
}
