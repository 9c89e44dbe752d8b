package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/pkg/cache"
)

func setupCache(t *testing.T) *cache.Cache {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewFromClient(rdb)
}

func TestCache_NilReceiverIsNoOp(t *testing.T) {
	var c *cache.Cache
	ctx := context.Background()

	assert.False(t, c.Enabled())
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())

	c.SetStageOutput(ctx, "run-1", "stage-1", map[string]interface{}{"k": "v"})
	_, ok := c.GetStageOutput(ctx, "run-1", "stage-1")
	assert.False(t, ok)

	c.IncrementLoad(ctx, "agent-1")
	assert.Equal(t, 0, c.CurrentLoad(ctx, "agent-1"))
}

func TestCache_StageOutputRoundTrip(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	_, ok := c.GetStageOutput(ctx, "run-1", "stage-1")
	assert.False(t, ok)

	c.SetStageOutput(ctx, "run-1", "stage-1", map[string]interface{}{
		"url":   "s3://bucket/data.json",
		"count": float64(3),
	})

	output, ok := c.GetStageOutput(ctx, "run-1", "stage-1")
	require.True(t, ok)
	assert.Equal(t, "s3://bucket/data.json", output["url"])
	assert.Equal(t, float64(3), output["count"])

	// Other stages stay independent.
	_, ok = c.GetStageOutput(ctx, "run-1", "stage-2")
	assert.False(t, ok)
}

func TestCache_CapabilityAgentsInvalidation(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	c.SetCapabilityAgents(ctx, "code-review", []string{"agent-1", "agent-2"})
	c.SetCapabilityAgents(ctx, "indexing", []string{"agent-3"})

	ids, ok := c.GetCapabilityAgents(ctx, "code-review")
	require.True(t, ok)
	assert.Equal(t, []string{"agent-1", "agent-2"}, ids)

	c.InvalidateCapabilities(ctx, []string{"code-review"})

	_, ok = c.GetCapabilityAgents(ctx, "code-review")
	assert.False(t, ok)
	ids, ok = c.GetCapabilityAgents(ctx, "indexing")
	require.True(t, ok)
	assert.Equal(t, []string{"agent-3"}, ids)
}

func TestCache_LoadCounterClampsAtZero(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	assert.Equal(t, 0, c.CurrentLoad(ctx, "agent-1"))

	c.IncrementLoad(ctx, "agent-1")
	c.IncrementLoad(ctx, "agent-1")
	assert.Equal(t, 2, c.CurrentLoad(ctx, "agent-1"))

	c.DecrementLoad(ctx, "agent-1")
	assert.Equal(t, 1, c.CurrentLoad(ctx, "agent-1"))

	// Underflow resets to zero rather than going negative.
	c.DecrementLoad(ctx, "agent-1")
	c.DecrementLoad(ctx, "agent-1")
	assert.Equal(t, 0, c.CurrentLoad(ctx, "agent-1"))
}

func TestCache_ResponseTimeWindow(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	for i := int64(1); i <= 25; i++ {
		c.RecordResponseTime(ctx, "agent-1", i*10)
	}

	samples := c.ResponseTimes(ctx, "agent-1")
	require.Len(t, samples, 20)
	// Most recent first; the oldest five fell out of the window.
	assert.Equal(t, int64(250), samples[0])
	assert.Equal(t, int64(60), samples[19])
}
