// Package metrics defines the platform's Prometheus collectors. All
// collectors register on the default registry; the API server exposes
// them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsClaimed counts workflow runs claimed by workers.
	RunsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conductor_runs_claimed_total",
		Help: "Workflow runs claimed from the queue.",
	})

	// RunsCompleted counts terminal run outcomes by status.
	RunsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conductor_runs_completed_total",
		Help: "Workflow runs reaching a terminal status.",
	}, []string{"status"})

	// RunDuration tracks wall-clock run execution time.
	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "conductor_run_duration_seconds",
		Help:    "Workflow run execution time.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 14),
	})

	// StageDispatches counts agent dispatch outcomes by error code
	// ("ok" for success).
	StageDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conductor_stage_dispatches_total",
		Help: "Stage dispatch attempts by outcome.",
	}, []string{"outcome"})

	// WebhookDeliveries counts webhook delivery outcomes.
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conductor_webhook_deliveries_total",
		Help: "Webhook delivery attempts by outcome.",
	}, []string{"outcome"})

	// GatewayConnections tracks currently open agent streams.
	GatewayConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "conductor_gateway_connections",
		Help: "Open agent WebSocket connections.",
	})

	// OrphansRequeued counts runs recovered by orphan detection.
	OrphansRequeued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conductor_orphans_requeued_total",
		Help: "Orphaned runs requeued for redelivery.",
	})
)
