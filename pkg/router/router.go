package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/ent/agentversion"
	"github.com/conductor-hq/conductor/ent/predicate"
	"github.com/conductor-hq/conductor/pkg/cache"
)

// ErrNoAgentAvailable is returned when no live agent can take the work,
// either because none advertises the capability or all matching agents are
// at capacity.
var ErrNoAgentAvailable = errors.New("no agent available for capability")

// Router picks agents for capabilities. Candidate discovery goes through
// the capability cache when possible; load counters and response-time
// windows come from the same cache and read as zero when it is down.
type Router struct {
	client *ent.Client
	cache  *cache.Cache
	logger *slog.Logger
}

// New creates a Router. cache may be nil; selection then degrades to a
// static ordering by configured capacity.
func New(client *ent.Client, c *cache.Cache, logger *slog.Logger) *Router {
	return &Router{client: client, cache: c, logger: logger}
}

// hasCapability matches agents whose capabilities JSON array contains the
// requested capability.
func hasCapability(capability string) predicate.Agent {
	return predicate.Agent(func(s *entsql.Selector) {
		s.Where(sqljson.ValueContains(agent.FieldCapabilities, capability))
	})
}

// Select returns the best available agent for a capability, excluding the
// given agent ids (already-failed attempts). Returns ErrNoAgentAvailable
// when no candidate has spare capacity.
func (r *Router) Select(ctx context.Context, capability string, exclude []string) (*ent.Agent, Score, error) {
	candidates, err := r.candidates(ctx, capability, exclude)
	if err != nil {
		return nil, Score{}, err
	}
	if len(candidates) == 0 {
		return nil, Score{}, fmt.Errorf("%w: %s", ErrNoAgentAvailable, capability)
	}

	if !r.cache.Enabled() {
		return r.selectStatic(capability, candidates)
	}

	factors := make([]Factors, len(candidates))
	for i, a := range candidates {
		factors[i] = Factors{
			AgentID:          a.ID,
			Status:           string(a.Status),
			MaxConcurrent:    a.MaxConcurrent,
			CurrentTasks:     r.cache.CurrentLoad(ctx, a.ID),
			MeanResponseTime: mean(r.cache.ResponseTimes(ctx, a.ID)),
		}
	}
	scores := scoreCandidates(factors)

	best := -1
	for i := range scores {
		if factors[i].CurrentTasks >= factors[i].MaxConcurrent {
			continue
		}
		if best == -1 || scores[i].Total > scores[best].Total {
			best = i
		}
	}
	if best == -1 {
		return nil, Score{}, fmt.Errorf("%w: %s (all at capacity)", ErrNoAgentAvailable, capability)
	}

	r.logger.Debug("Routed capability to agent",
		"capability", capability,
		"agent_id", candidates[best].ID,
		"score", scores[best].Total,
		"candidates", len(candidates))
	return candidates[best], scores[best], nil
}

// selectStatic is the degraded path without a cache: no load or latency
// signal exists, so pick the agent with the most configured headroom.
func (r *Router) selectStatic(capability string, candidates []*ent.Agent) (*ent.Agent, Score, error) {
	best := candidates[0]
	for _, a := range candidates[1:] {
		if a.MaxConcurrent > best.MaxConcurrent {
			best = a
		}
	}
	r.logger.Debug("Routed capability without cache",
		"capability", capability, "agent_id", best.ID)
	return best, scoreOne(Factors{
		AgentID:       best.ID,
		Status:        string(best.Status),
		MaxConcurrent: best.MaxConcurrent,
	}, defaultMaxRT), nil
}

// candidates returns live online/degraded agents advertising the
// capability. The cached id list is only consulted when there is no
// exclude set; a partial list must not mask agents the caller has not
// tried yet.
func (r *Router) candidates(ctx context.Context, capability string, exclude []string) ([]*ent.Agent, error) {
	if len(exclude) == 0 {
		if ids, ok := r.cache.GetCapabilityAgents(ctx, capability); ok {
			if len(ids) == 0 {
				return nil, nil
			}
			agents, err := r.client.Agent.Query().
				Where(
					agent.IDIn(ids...),
					agent.DeletedAtIsNil(),
					agent.StatusIn(agent.StatusOnline, agent.StatusDegraded),
				).
				All(ctx)
			if err != nil {
				return nil, fmt.Errorf("load cached candidates: %w", err)
			}
			return agents, nil
		}
	}

	preds := []predicate.Agent{
		agent.DeletedAtIsNil(),
		agent.StatusIn(agent.StatusOnline, agent.StatusDegraded),
		hasCapability(capability),
	}
	if len(exclude) > 0 {
		preds = append(preds, agent.IDNotIn(exclude...))
	}
	agents, err := r.client.Agent.Query().Where(preds...).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	if len(exclude) == 0 {
		ids := make([]string, len(agents))
		for i, a := range agents {
			ids[i] = a.ID
		}
		r.cache.SetCapabilityAgents(ctx, capability, ids)
	}
	return agents, nil
}

// ResolveEndpoint picks the endpoint to dispatch to for an agent,
// honoring a canary traffic split when one is deployed. Without deployed
// versions the agent's registered endpoint is used. The returned version
// id is empty for the registered endpoint.
func (r *Router) ResolveEndpoint(ctx context.Context, a *ent.Agent) (string, string, error) {
	versions, err := r.client.AgentVersion.Query().
		Where(
			agentversion.AgentIDEQ(a.ID),
			agentversion.StatusIn(agentversion.StatusActive, agentversion.StatusCanary),
			agentversion.TrafficPercentGT(0),
		).
		Order(ent.Asc(agentversion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return "", "", fmt.Errorf("query agent versions: %w", err)
	}
	if len(versions) == 0 {
		return a.EndpointURL, "", nil
	}

	total := 0
	for _, v := range versions {
		total += v.TrafficPercent
	}
	roll := rand.IntN(total)
	for _, v := range versions {
		roll -= v.TrafficPercent
		if roll < 0 {
			return v.Endpoint, v.ID, nil
		}
	}
	last := versions[len(versions)-1]
	return last.Endpoint, last.ID, nil
}
