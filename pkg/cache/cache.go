// Package cache provides short-TTL ancillary state backed by Redis: stage
// outputs, capability→agent lists, per-agent load counters, and rolling
// response-time windows.
//
// The cache is strictly best-effort. Every method is safe on a nil *Cache
// and degrades to a miss or no-op when Redis is unreachable; callers fall
// back to the durable store.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/conductor-hq/conductor/pkg/config"
)

// TTLs per key family.
const (
	stageOutputTTL  = time.Hour
	capabilityTTL   = 30 * time.Second
	responseTimeTTL = 2 * time.Hour
	memoryTTL       = time.Hour

	// responseWindowSize bounds the rolling response-time window.
	responseWindowSize = 20
)

// Cache wraps the Redis client. A nil Cache is a valid, disabled cache.
type Cache struct {
	rdb *redis.Client
}

// New creates a Cache from configuration. Returns nil when the cache is not
// configured; all methods tolerate the nil receiver.
func New(cfg config.CacheConfig) *Cache {
	if !cfg.Enabled {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Cache{rdb: rdb}
}

// NewFromClient wraps an existing Redis client (useful for testing).
func NewFromClient(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Enabled reports whether a Redis backend is configured.
func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Close releases the Redis connection pool.
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}

// Ping verifies connectivity (used by health checks).
func (c *Cache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// --- Stage outputs ---

func stageOutputKey(runID, stageID string) string {
	return "stage:" + runID + ":" + stageID
}

// SetStageOutput caches a completed stage's output. Outputs are immutable
// once written.
func (c *Cache) SetStageOutput(ctx context.Context, runID, stageID string, output map[string]interface{}) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(output)
	if err != nil {
		slog.Warn("Failed to marshal stage output for cache",
			"run_id", runID, "stage_id", stageID, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, stageOutputKey(runID, stageID), data, stageOutputTTL).Err(); err != nil {
		slog.Warn("Failed to cache stage output",
			"run_id", runID, "stage_id", stageID, "error", err)
	}
}

// GetStageOutput returns a cached stage output, or ok=false on miss or
// cache error.
func (c *Cache) GetStageOutput(ctx context.Context, runID, stageID string) (map[string]interface{}, bool) {
	if !c.Enabled() {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, stageOutputKey(runID, stageID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Stage output cache read failed",
				"run_id", runID, "stage_id", stageID, "error", err)
		}
		return nil, false
	}
	var output map[string]interface{}
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, false
	}
	return output, true
}

// --- Capability → agent lists ---

func capabilityKey(capability string) string {
	return "cap:" + capability
}

// SetCapabilityAgents caches the candidate agent ids for a capability.
func (c *Cache) SetCapabilityAgents(ctx context.Context, capability string, agentIDs []string) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(agentIDs)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, capabilityKey(capability), data, capabilityTTL).Err(); err != nil {
		slog.Warn("Failed to cache capability agents", "capability", capability, "error", err)
	}
}

// GetCapabilityAgents returns cached candidate agent ids for a capability.
func (c *Cache) GetCapabilityAgents(ctx context.Context, capability string) ([]string, bool) {
	if !c.Enabled() {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, capabilityKey(capability)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Capability cache read failed", "capability", capability, "error", err)
		}
		return nil, false
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, false
	}
	return ids, true
}

// InvalidateCapabilities drops the cached candidate lists for the given
// capabilities. Called on agent status changes.
func (c *Cache) InvalidateCapabilities(ctx context.Context, capabilities []string) {
	if !c.Enabled() || len(capabilities) == 0 {
		return
	}
	keys := make([]string, len(capabilities))
	for i, cap := range capabilities {
		keys[i] = capabilityKey(cap)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("Failed to invalidate capability cache", "error", err)
	}
}

// --- Agent load counters ---

func loadKey(agentID string) string {
	return "load:" + agentID
}

// IncrementLoad bumps the agent's in-flight dispatch counter.
func (c *Cache) IncrementLoad(ctx context.Context, agentID string) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Incr(ctx, loadKey(agentID)).Err(); err != nil {
		slog.Warn("Failed to increment agent load", "agent_id", agentID, "error", err)
	}
}

// DecrementLoad lowers the counter, clamping at zero. Underflow can occur
// after a counter reset while dispatches were in flight.
func (c *Cache) DecrementLoad(ctx context.Context, agentID string) {
	if !c.Enabled() {
		return
	}
	n, err := c.rdb.Decr(ctx, loadKey(agentID)).Result()
	if err != nil {
		slog.Warn("Failed to decrement agent load", "agent_id", agentID, "error", err)
		return
	}
	if n < 0 {
		_ = c.rdb.Set(ctx, loadKey(agentID), 0, 0).Err()
	}
}

// CurrentLoad returns the agent's in-flight dispatch count. Missing keys
// and cache errors read as zero.
func (c *Cache) CurrentLoad(ctx context.Context, agentID string) int {
	if !c.Enabled() {
		return 0
	}
	n, err := c.rdb.Get(ctx, loadKey(agentID)).Int()
	if err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

// --- Response-time windows ---

func responseTimeKey(agentID string) string {
	return "rt:" + agentID
}

// RecordResponseTime appends a sample to the agent's rolling window,
// keeping the most recent samples only.
func (c *Cache) RecordResponseTime(ctx context.Context, agentID string, ms int64) {
	if !c.Enabled() {
		return
	}
	key := responseTimeKey(agentID)
	pipe := c.rdb.TxPipeline()
	pipe.LPush(ctx, key, ms)
	pipe.LTrim(ctx, key, 0, responseWindowSize-1)
	pipe.Expire(ctx, key, responseTimeTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Failed to record response time", "agent_id", agentID, "error", err)
	}
}

// ResponseTimes returns the agent's recent response-time samples in
// most-recent-first order. Empty on miss or error.
func (c *Cache) ResponseTimes(ctx context.Context, agentID string) []int64 {
	if !c.Enabled() {
		return nil
	}
	vals, err := c.rdb.LRange(ctx, responseTimeKey(agentID), 0, responseWindowSize-1).Result()
	if err != nil {
		return nil
	}
	samples := make([]int64, 0, len(vals))
	for _, v := range vals {
		var ms int64
		if err := json.Unmarshal([]byte(v), &ms); err == nil {
			samples = append(samples, ms)
		}
	}
	return samples
}

// --- Run memory ---

func memoryKey(runID, field string) string {
	return "memory:" + runID + ":" + field
}

// SetRunMemory persists agent memory_writes from a stage response. Memory
// entries share the stage-output TTL.
func (c *Cache) SetRunMemory(ctx context.Context, runID string, writes map[string]interface{}) {
	if !c.Enabled() || len(writes) == 0 {
		return
	}
	for field, value := range writes {
		data, err := json.Marshal(value)
		if err != nil {
			continue
		}
		if err := c.rdb.Set(ctx, memoryKey(runID, field), data, memoryTTL).Err(); err != nil {
			slog.Warn("Failed to persist memory write",
				"run_id", runID, "field", field, "error", err)
		}
	}
}
