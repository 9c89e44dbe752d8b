package agentcall

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/pkg/bus"
	"github.com/conductor-hq/conductor/pkg/cache"
)

const probeTimeout = 5 * time.Second

// healthResponse is what agents return from GET /health.
type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthChecker periodically probes registered agents that have no live
// gateway connection. The gateway owns status for connected agents; the
// checker covers HTTP-only agents and those whose stream dropped.
//
// Transitions are graduated: a failed probe moves online to degraded and
// degraded to offline, so one blip never takes an agent out of rotation.
type HealthChecker struct {
	client   *ent.Client
	cache    *cache.Cache
	bus      *bus.Bus
	http     *http.Client
	interval time.Duration
	logger   *slog.Logger
}

// NewHealthChecker creates a HealthChecker sweeping at the given interval.
func NewHealthChecker(client *ent.Client, c *cache.Cache, b *bus.Bus, interval time.Duration, logger *slog.Logger) *HealthChecker {
	return &HealthChecker{
		client:   client,
		cache:    c,
		bus:      b,
		http:     &http.Client{Timeout: probeTimeout},
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps until ctx is cancelled.
func (h *HealthChecker) Run(ctx context.Context) {
	h.logger.Info("Agent health checker started", "interval", h.interval)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Agent health checker stopped")
			return
		case <-ticker.C:
			h.sweep(ctx)
		}
	}
}

func (h *HealthChecker) sweep(ctx context.Context) {
	agents, err := h.client.Agent.Query().
		Where(
			agent.DeletedAtIsNil(),
			agent.WsConnected(false),
			agent.StatusIn(agent.StatusOnline, agent.StatusDegraded),
		).
		All(ctx)
	if err != nil {
		h.logger.Error("Health sweep query failed", "error", err)
		return
	}

	for _, a := range agents {
		if ctx.Err() != nil {
			return
		}
		next := h.probe(ctx, a)
		if next == a.Status {
			continue
		}
		h.transition(ctx, a, next)
	}
}

// probe returns the status the agent should move to based on one probe.
func (h *HealthChecker) probe(ctx context.Context, a *ent.Agent) agent.Status {
	url := strings.TrimSuffix(a.EndpointURL, "/") + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return stepDown(a.Status)
	}
	resp, err := h.http.Do(req)
	if err != nil {
		return stepDown(a.Status)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return stepDown(a.Status)
	}
	var hr healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&hr); err != nil {
		return stepDown(a.Status)
	}
	switch hr.Status {
	case "healthy":
		return agent.StatusOnline
	case "degraded":
		return agent.StatusDegraded
	default:
		return stepDown(a.Status)
	}
}

func stepDown(current agent.Status) agent.Status {
	if current == agent.StatusOnline {
		return agent.StatusDegraded
	}
	return agent.StatusOffline
}

func (h *HealthChecker) transition(ctx context.Context, a *ent.Agent, next agent.Status) {
	err := h.client.Agent.UpdateOneID(a.ID).
		SetStatus(next).
		Exec(ctx)
	if err != nil {
		h.logger.Error("Failed to update agent status",
			"agent_id", a.ID, "status", next, "error", err)
		return
	}
	h.logger.Info("Agent health transition",
		"agent_id", a.ID, "external_id", a.ExternalID, "from", a.Status, "to", next)

	h.cache.InvalidateCapabilities(ctx, a.Capabilities)

	if a.TeamID == nil {
		return
	}
	eventType := "agent:degraded"
	if next == agent.StatusOffline {
		eventType = "agent:offline"
	} else if next == agent.StatusOnline {
		eventType = "agent:online"
	}
	h.bus.Publish(bus.TeamChannel(*a.TeamID), eventType, map[string]interface{}{
		"agent_uuid":  a.ID,
		"external_id": a.ExternalID,
		"status":      string(next),
		"reason":      fmt.Sprintf("health probe transition from %s", a.Status),
	})
}
