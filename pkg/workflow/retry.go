package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/pkg/agentcall"
	"github.com/conductor-hq/conductor/pkg/audit"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/metrics"
	"github.com/conductor-hq/conductor/pkg/models"
)

// Retry defaults and the agent-attempt budget (primary + one fallback).
const (
	defaultMaxRetries = 2
	defaultBackoffMs  = 1000
	maxAgentAttempts  = 2
)

// stageResult is the successful outcome of a stage dispatch.
type stageResult struct {
	Output          map[string]interface{}
	AgentID         string
	ExecutionTimeMs int64
}

// executeStageWithRetry is the retry/fallback state machine. Per agent
// attempt, up to max_retries retries with exponential backoff; a
// retryable exhaustion moves on to a fallback agent, a non-retryable
// error fails immediately with no fallback.
func (e *Executor) executeStageWithRetry(ctx context.Context, run *ent.WorkflowRun, stage models.StageDefinition, input map[string]interface{}, rc ResolutionContext) (*stageResult, error) {
	if e.cfg.Mode == config.DispatchMock {
		return &stageResult{
			Output: map[string]interface{}{
				"mock":       true,
				"stage_id":   stage.ID,
				"capability": stage.Capability,
			},
			AgentID: "mock",
		}, nil
	}

	maxRetries := defaultMaxRetries
	backoffMs := int64(defaultBackoffMs)
	callTimeout := e.cfg.CallTimeout
	if rcfg := stage.RetryConfig; rcfg != nil {
		if rcfg.MaxRetries != nil {
			maxRetries = *rcfg.MaxRetries
		}
		if rcfg.BackoffMs != nil {
			backoffMs = *rcfg.BackoffMs
		}
		if rcfg.TimeoutMs != nil {
			callTimeout = time.Duration(*rcfg.TimeoutMs) * time.Millisecond
		}
	}

	previousStages := make([]string, 0, len(rc.StageOutputs))
	for id := range rc.StageOutputs {
		previousStages = append(previousStages, id)
	}

	var exclude []string
	var lastErr error
	for attempt := 0; attempt < maxAgentAttempts; attempt++ {
		agent, _, err := e.router.Select(ctx, stage.Capability, exclude)
		if err != nil {
			if lastErr != nil {
				return nil, &agentcall.Error{
					Code:    "ALL_AGENTS_EXHAUSTED",
					Message: fmt.Sprintf("no remaining agents for %s: %s", stage.Capability, errMessage(lastErr)),
					AgentID: failedAgentID(lastErr),
				}
			}
			return nil, &agentcall.Error{
				Code:    "NO_AGENT_AVAILABLE",
				Message: err.Error(),
			}
		}

		result, err := e.attemptAgent(ctx, run, stage, agent, input, previousStages, maxRetries, backoffMs, callTimeout)
		if err == nil {
			return result, nil
		}
		lastErr = err

		ce := agentcall.AsError(err, agent.ExternalID)
		if !ce.Retryable {
			// A non-retryable error means the request itself is wrong;
			// a fallback agent would fail the same way.
			return nil, ce
		}
		exclude = append(exclude, agent.ID)
	}

	return nil, &agentcall.Error{
		Code:      "ALL_AGENTS_EXHAUSTED",
		Message:   fmt.Sprintf("all agent attempts exhausted for %s: %s", stage.Capability, errMessage(lastErr)),
		Retryable: false,
		AgentID:   failedAgentID(lastErr),
	}
}

// attemptAgent runs the retry loop against one agent. The load counter is
// incremented once per agent attempt and released on every exit path.
func (e *Executor) attemptAgent(ctx context.Context, run *ent.WorkflowRun, stage models.StageDefinition, agent *ent.Agent, input map[string]interface{}, previousStages []string, maxRetries int, backoffMs int64, callTimeout time.Duration) (*stageResult, error) {
	target, err := e.dispatchTarget(ctx, agent)
	if err != nil {
		return nil, err
	}

	e.cache.IncrementLoad(ctx, agent.ID)
	defer e.cache.DecrementLoad(ctx, agent.ID)

	req := agentcall.Request{
		WorkflowRunID:      run.ID,
		StageID:            stage.ID,
		CapabilityRequired: stage.Capability,
		Input:              input,
		Context: agentcall.RequestContext{
			PreviousStages: previousStages,
			UserID:         run.UserID,
		},
	}

	var lastErr *agentcall.Error
	for retry := 0; retry <= maxRetries; retry++ {
		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		resp, err := e.agents.Execute(callCtx, target, req)
		cancel()

		if err == nil {
			metrics.StageDispatches.WithLabelValues("ok").Inc()
			e.cache.SetRunMemory(ctx, run.ID, resp.MemoryWrites)
			e.cache.RecordResponseTime(ctx, agent.ID, resp.ExecutionTimeMs)
			return &stageResult{
				Output:          resp.Output,
				AgentID:         agent.ID,
				ExecutionTimeMs: resp.ExecutionTimeMs,
			}, nil
		}

		lastErr = agentcall.AsError(err, agent.ExternalID)
		metrics.StageDispatches.WithLabelValues(lastErr.Code).Inc()
		if !lastErr.Retryable {
			return nil, lastErr
		}
		if retry == maxRetries {
			break
		}

		e.recorder.RecordBestEffort(ctx, audit.Entry{
			RunID:   run.ID,
			StageID: stage.ID,
			AgentID: agent.ID,
			Action:  audit.ActionRetry,
			Status:  fmt.Sprintf("retry_%d_of_%d", retry+1, maxRetries),
		})

		backoff := time.Duration(backoffMs<<uint(retry)) * time.Millisecond
		e.logger.Debug("Retrying stage on same agent",
			"run_id", run.ID, "stage_id", stage.ID, "agent_id", agent.ID,
			"retry", retry+1, "backoff", backoff, "error", lastErr.Message)
		select {
		case <-ctx.Done():
			return nil, agentcall.AsError(ctx.Err(), agent.ExternalID)
		case <-time.After(backoff):
		}
	}

	return nil, lastErr
}

// dispatchTarget resolves the endpoint (honoring canary splits) and the
// decrypted bearer secret for one agent.
func (e *Executor) dispatchTarget(ctx context.Context, agent *ent.Agent) (agentcall.Target, error) {
	endpoint, versionID, err := e.router.ResolveEndpoint(ctx, agent)
	if err != nil {
		return agentcall.Target{}, err
	}
	if versionID != "" {
		e.logger.Debug("Dispatching to agent version",
			"agent_id", agent.ID, "version_id", versionID)
	}

	if !e.box.Enabled() || agent.AuthSecretCiphertext == nil {
		return agentcall.Target{}, &agentcall.Error{
			Code:      "AGENT_CLIENT_ERROR",
			Message:   "agent has no dispatchable credentials (secret encryption not configured)",
			Retryable: false,
			AgentID:   agent.ExternalID,
		}
	}
	secret, err := e.box.Decrypt(*agent.AuthSecretCiphertext)
	if err != nil {
		return agentcall.Target{}, &agentcall.Error{
			Code:      "AGENT_CLIENT_ERROR",
			Message:   fmt.Sprintf("decrypt agent secret: %v", err),
			Retryable: false,
			AgentID:   agent.ExternalID,
		}
	}

	return agentcall.Target{
		ExternalID: agent.ExternalID,
		Endpoint:   endpoint,
		Secret:     secret,
	}, nil
}
