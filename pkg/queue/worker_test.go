package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-hq/conductor/pkg/config"
)

func TestPollInterval_Jitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollInterval_NoJitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{PollInterval: time.Second}}
	assert.Equal(t, time.Second, w.pollInterval())
}

func TestWorkerHealth_Tracking(t *testing.T) {
	w := NewWorker("w-0", "pod-1", nil, &config.QueueConfig{}, nil, nil)

	h := w.Health()
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentRunID)

	w.setStatus(WorkerStatusWorking, "run-1")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "run-1", h.CurrentRunID)
}

func TestPool_CancelRun(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, &config.QueueConfig{WorkerCount: 0}, nil)

	cancelled := false
	p.RegisterRun("run-1", func() { cancelled = true })

	assert.True(t, p.CancelRun("run-1"))
	assert.True(t, cancelled)
	assert.False(t, p.CancelRun("run-missing"))

	p.UnregisterRun("run-1")
	assert.False(t, p.CancelRun("run-1"))
}

func TestPool_RegistryIsolation(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, &config.QueueConfig{WorkerCount: 0}, nil)

	var c1, c2 context.CancelFunc = func() {}, func() {}
	p.RegisterRun("r1", c1)
	p.RegisterRun("r2", c2)
	assert.ElementsMatch(t, []string{"r1", "r2"}, p.getActiveRunIDs())
}
