package workflow

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/pkg/agentcall"
	"github.com/conductor-hq/conductor/pkg/audit"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/pkg/router"
	"github.com/conductor-hq/conductor/pkg/secrets"
)

// fakeSelector hands out agents in order, honoring the exclude list, and
// records every exclude set it was asked with.
type fakeSelector struct {
	agents   []*ent.Agent
	excludes [][]string
}

func (f *fakeSelector) Select(_ context.Context, capability string, exclude []string) (*ent.Agent, router.Score, error) {
	f.excludes = append(f.excludes, append([]string(nil), exclude...))
	for _, a := range f.agents {
		excluded := false
		for _, id := range exclude {
			if id == a.ID {
				excluded = true
				break
			}
		}
		if !excluded {
			return a, router.Score{}, nil
		}
	}
	return nil, router.Score{}, router.ErrNoAgentAvailable
}

func (f *fakeSelector) ResolveEndpoint(_ context.Context, a *ent.Agent) (string, string, error) {
	return a.EndpointURL, "", nil
}

type callOutcome struct {
	resp *agentcall.Response
	err  error
}

// fakeCaller replays a per-agent script of outcomes.
type fakeCaller struct {
	mu      sync.Mutex
	scripts map[string][]callOutcome
	calls   map[string]int
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{scripts: make(map[string][]callOutcome), calls: make(map[string]int)}
}

func (f *fakeCaller) on(agentID string, outcomes ...callOutcome) {
	f.scripts[agentID] = append(f.scripts[agentID], outcomes...)
}

func (f *fakeCaller) Execute(_ context.Context, target agentcall.Target, _ agentcall.Request) (*agentcall.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[target.ExternalID]++
	script := f.scripts[target.ExternalID]
	if len(script) == 0 {
		return nil, &agentcall.Error{
			Code:    agentcall.CodeAgentServerError,
			Message: "no scripted outcome for " + target.ExternalID,
			AgentID: target.ExternalID,
		}
	}
	next := script[0]
	f.scripts[target.ExternalID] = script[1:]
	return next.resp, next.err
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (f *fakeAudit) RecordBestEffort(_ context.Context, e audit.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
}

func (f *fakeAudit) statuses() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.Status
	}
	return out
}

func testBox(t *testing.T) *secrets.Box {
	t.Helper()
	box, err := secrets.NewBox(bytes.Repeat([]byte{0x2a}, 32))
	require.NoError(t, err)
	return box
}

func dispatchableAgent(t *testing.T, box *secrets.Box, id string) *ent.Agent {
	t.Helper()
	ct, err := box.Encrypt("bearer-" + id)
	require.NoError(t, err)
	return &ent.Agent{
		ID:                   id,
		ExternalID:           id,
		EndpointURL:          "http://" + id + ".local",
		AuthSecretCiphertext: &ct,
		MaxConcurrent:        4,
	}
}

func retryExecutor(selector AgentSelector, caller AgentCaller, sink AuditSink, box *secrets.Box) *Executor {
	return NewExecutor(nil, selector, caller, nil, sink, box, config.DispatchConfig{
		Mode:        config.DispatchReal,
		CallTimeout: time.Second,
	}, slog.Default())
}

func retryStage(maxRetries int) models.StageDefinition {
	backoff := int64(1)
	return models.StageDefinition{
		ID:         "a",
		Capability: "c1",
		RetryConfig: &models.RetryConfig{
			MaxRetries: &maxRetries,
			BackoffMs:  &backoff,
		},
	}
}

func retryableTimeout(agentID string) *agentcall.Error {
	return &agentcall.Error{
		Code:      agentcall.CodeTimeout,
		Message:   "deadline exceeded",
		Retryable: true,
		AgentID:   agentID,
	}
}

func TestExecuteStageWithRetry_RetriesThenSucceeds(t *testing.T) {
	box := testBox(t)
	selector := &fakeSelector{agents: []*ent.Agent{dispatchableAgent(t, box, "a1")}}
	caller := newFakeCaller()
	caller.on("a1",
		callOutcome{err: retryableTimeout("a1")},
		callOutcome{err: retryableTimeout("a1")},
		callOutcome{resp: &agentcall.Response{
			Status:          "success",
			Output:          map[string]interface{}{"ok": true},
			ExecutionTimeMs: 5,
		}},
	)
	sink := &fakeAudit{}
	e := retryExecutor(selector, caller, sink, box)

	run := &ent.WorkflowRun{ID: "run-1", UserID: "user-1"}
	result, err := e.executeStageWithRetry(context.Background(), run, retryStage(2), nil, ResolutionContext{})

	require.NoError(t, err)
	assert.Equal(t, "a1", result.AgentID)
	assert.Equal(t, map[string]interface{}{"ok": true}, result.Output)
	assert.Equal(t, 3, caller.calls["a1"])
	assert.Equal(t, []string{"retry_1_of_2", "retry_2_of_2"}, sink.statuses())
}

func TestExecuteStageWithRetry_FallsBackToSecondAgent(t *testing.T) {
	box := testBox(t)
	selector := &fakeSelector{agents: []*ent.Agent{
		dispatchableAgent(t, box, "a1"),
		dispatchableAgent(t, box, "a2"),
	}}
	caller := newFakeCaller()
	caller.on("a1", callOutcome{err: retryableTimeout("a1")})
	caller.on("a2", callOutcome{resp: &agentcall.Response{
		Status: "success",
		Output: map[string]interface{}{"via": "fallback"},
	}})
	sink := &fakeAudit{}
	e := retryExecutor(selector, caller, sink, box)

	run := &ent.WorkflowRun{ID: "run-1", UserID: "user-1"}
	result, err := e.executeStageWithRetry(context.Background(), run, retryStage(0), nil, ResolutionContext{})

	require.NoError(t, err)
	assert.Equal(t, "a2", result.AgentID)
	assert.Equal(t, 1, caller.calls["a1"])
	assert.Equal(t, 1, caller.calls["a2"])
	// The failed primary is excluded from fallback selection.
	require.Len(t, selector.excludes, 2)
	assert.Empty(t, selector.excludes[0])
	assert.Equal(t, []string{"a1"}, selector.excludes[1])
}

func TestExecuteStageWithRetry_NonRetryableShortCircuits(t *testing.T) {
	box := testBox(t)
	selector := &fakeSelector{agents: []*ent.Agent{
		dispatchableAgent(t, box, "a1"),
		dispatchableAgent(t, box, "a2"),
	}}
	caller := newFakeCaller()
	caller.on("a1", callOutcome{err: &agentcall.Error{
		Code:      agentcall.CodeAgentClientError,
		Message:   "HTTP 422: bad input",
		Retryable: false,
		AgentID:   "a1",
	}})
	sink := &fakeAudit{}
	e := retryExecutor(selector, caller, sink, box)

	run := &ent.WorkflowRun{ID: "run-1", UserID: "user-1"}
	_, err := e.executeStageWithRetry(context.Background(), run, retryStage(2), nil, ResolutionContext{})

	var ce *agentcall.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, agentcall.CodeAgentClientError, ce.Code)
	assert.False(t, ce.Retryable)
	// No same-agent retries, no fallback, no retry audit entries.
	assert.Equal(t, 1, caller.calls["a1"])
	assert.Zero(t, caller.calls["a2"])
	assert.Len(t, selector.excludes, 1)
	assert.Empty(t, sink.statuses())
}

func TestExecuteStageWithRetry_ZeroRetryBudgetIsSingleAttempt(t *testing.T) {
	box := testBox(t)
	selector := &fakeSelector{agents: []*ent.Agent{dispatchableAgent(t, box, "a1")}}
	caller := newFakeCaller()
	caller.on("a1", callOutcome{err: retryableTimeout("a1")})
	sink := &fakeAudit{}
	e := retryExecutor(selector, caller, sink, box)

	run := &ent.WorkflowRun{ID: "run-1", UserID: "user-1"}
	_, err := e.executeStageWithRetry(context.Background(), run, retryStage(0), nil, ResolutionContext{})

	var ce *agentcall.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "ALL_AGENTS_EXHAUSTED", ce.Code)
	assert.Equal(t, 1, caller.calls["a1"])
	assert.Empty(t, sink.statuses())
}

func TestExecuteStageWithRetry_NoAgentAvailable(t *testing.T) {
	box := testBox(t)
	e := retryExecutor(&fakeSelector{}, newFakeCaller(), &fakeAudit{}, box)

	run := &ent.WorkflowRun{ID: "run-1", UserID: "user-1"}
	_, err := e.executeStageWithRetry(context.Background(), run, retryStage(0), nil, ResolutionContext{})

	var ce *agentcall.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "NO_AGENT_AVAILABLE", ce.Code)
}
