// Package workflow executes workflow runs: stage ordering, input template
// resolution, agent dispatch with retry and fallback, and audit emission.
// The executor plugs into the queue worker pool as its RunExecutor.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/stageexecution"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/agentcall"
	"github.com/conductor-hq/conductor/pkg/audit"
	"github.com/conductor-hq/conductor/pkg/cache"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/pkg/queue"
	"github.com/conductor-hq/conductor/pkg/router"
	"github.com/conductor-hq/conductor/pkg/secrets"
)

// Fetch retry bounds for commit-visibility lag between enqueue and dequeue.
const (
	fetchAttempts    = 5
	fetchBackoffBase = 200 * time.Millisecond
)

// AgentSelector picks and resolves agents for a capability. Satisfied by
// *router.Router.
type AgentSelector interface {
	Select(ctx context.Context, capability string, exclude []string) (*ent.Agent, router.Score, error)
	ResolveEndpoint(ctx context.Context, a *ent.Agent) (string, string, error)
}

// AgentCaller dispatches one stage execution to an agent endpoint.
// Satisfied by *agentcall.Client.
type AgentCaller interface {
	Execute(ctx context.Context, target agentcall.Target, req agentcall.Request) (*agentcall.Response, error)
}

// AuditSink receives the executor's audit entries. Satisfied by
// *audit.Recorder.
type AuditSink interface {
	RecordBestEffort(ctx context.Context, e audit.Entry)
}

// Executor runs one workflow run to a terminal state.
type Executor struct {
	client   *ent.Client
	router   AgentSelector
	agents   AgentCaller
	cache    *cache.Cache
	recorder AuditSink
	box      *secrets.Box
	cfg      config.DispatchConfig
	logger   *slog.Logger
}

// NewExecutor wires the executor's collaborators.
func NewExecutor(client *ent.Client, rt AgentSelector, agents AgentCaller, c *cache.Cache, rec AuditSink, box *secrets.Box, cfg config.DispatchConfig, logger *slog.Logger) *Executor {
	return &Executor{
		client:   client,
		router:   rt,
		agents:   agents,
		cache:    c,
		recorder: rec,
		box:      box,
		cfg:      cfg,
		logger:   logger,
	}
}

// Execute processes a claimed run. Returns nil when interrupted by
// shutdown so the worker leaves the run in_progress for redelivery.
func (e *Executor) Execute(ctx context.Context, claimed *ent.WorkflowRun) *queue.ExecutionResult {
	run, err := e.fetchRun(ctx, claimed.ID)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return &queue.ExecutionResult{
			Status: workflowrun.StatusFailed,
			Error:  fmt.Errorf("fetch run: %w", err),
		}
	}

	log := e.logger.With("run_id", run.ID, "workflow", run.WorkflowName)

	levels, err := Levels(run.Definition)
	if err != nil {
		return &queue.ExecutionResult{Status: workflowrun.StatusFailed, Error: err}
	}

	completed := make(map[string]bool, len(run.CompletedStages))
	for _, id := range run.CompletedStages {
		completed[id] = true
	}

	rc := ResolutionContext{
		Input:        run.Input,
		StageOutputs: make(map[string]map[string]interface{}),
	}
	// Redelivered runs resume mid-DAG; prior outputs come from the stage
	// execution rows.
	if len(completed) > 0 {
		if err := e.loadCompletedOutputs(ctx, run.ID, completed, rc.StageOutputs); err != nil {
			return &queue.ExecutionResult{Status: workflowrun.StatusFailed, Error: err}
		}
		log.Info("Resuming run", "completed_stages", len(completed))
	}

	var lastOutput map[string]interface{}
	for _, level := range levels {
		for _, stage := range level {
			if completed[stage.ID] {
				lastOutput = rc.StageOutputs[stage.ID]
				continue
			}
			// Shutdown between stages leaves the run for redelivery.
			if ctx.Err() != nil {
				log.Info("Run interrupted between stages", "stage_id", stage.ID)
				return nil
			}

			output, err := e.executeStage(ctx, run, stage, rc)
			if err != nil {
				return &queue.ExecutionResult{
					Status: workflowrun.StatusFailed,
					Error:  fmt.Errorf("Stage '%s' failed: %s", stage.ID, errMessage(err)),
				}
			}
			rc.StageOutputs[stage.ID] = output
			lastOutput = output
		}
	}

	log.Info("Run completed", "stages", len(run.Definition.Stages))
	return &queue.ExecutionResult{
		Status: workflowrun.StatusCompleted,
		Output: lastOutput,
	}
}

// fetchRun re-reads the run with bounded linear-backoff polling to
// tolerate commit-visibility lag between enqueue and dequeue.
func (e *Executor) fetchRun(ctx context.Context, runID string) (*ent.WorkflowRun, error) {
	var lastErr error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		run, err := e.client.WorkflowRun.Get(ctx, runID)
		if err == nil {
			return run, nil
		}
		lastErr = err
		if !ent.IsNotFound(err) || attempt == fetchAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * fetchBackoffBase):
		}
	}
	return nil, fmt.Errorf("run %s not visible after %d attempts: %w", runID, fetchAttempts, lastErr)
}

func (e *Executor) loadCompletedOutputs(ctx context.Context, runID string, completed map[string]bool, into map[string]map[string]interface{}) error {
	rows, err := e.client.StageExecution.Query().
		Where(
			stageexecution.RunIDEQ(runID),
			stageexecution.StatusEQ(stageexecution.StatusCompleted),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load completed stage outputs: %w", err)
	}
	for _, row := range rows {
		if completed[row.StageID] {
			into[row.StageID] = row.Output
		}
	}
	return nil
}

// executeStage resolves inputs, dispatches with retry, and persists all
// stage state. Returns the stage output on success.
func (e *Executor) executeStage(ctx context.Context, run *ent.WorkflowRun, stage models.StageDefinition, rc ResolutionContext) (map[string]interface{}, error) {
	log := e.logger.With("run_id", run.ID, "stage_id", stage.ID)
	resolved := ResolveTemplates(stage.InputTemplate, rc)

	row, err := e.upsertStageExecution(ctx, run.ID, stage.ID, resolved)
	if err != nil {
		return nil, err
	}

	inputHash, err := audit.HashJSON(resolved)
	if err != nil {
		return nil, fmt.Errorf("hash stage input: %w", err)
	}

	started := time.Now()
	result, dispatchErr := e.executeStageWithRetry(ctx, run, stage, resolved, rc)
	elapsed := time.Since(started).Milliseconds()

	if dispatchErr != nil {
		msg := errMessage(dispatchErr)
		if err := e.client.StageExecution.UpdateOneID(row.ID).
			SetStatus(stageexecution.StatusFailed).
			SetErrorMessage(msg).
			SetCompletedAt(time.Now().UTC()).
			SetExecutionTimeMs(elapsed).
			Exec(ctx); err != nil {
			log.Error("Failed to persist stage failure", "error", err)
		}
		e.recorder.RecordBestEffort(ctx, audit.Entry{
			RunID:     run.ID,
			StageID:   stage.ID,
			AgentID:   failedAgentID(dispatchErr),
			Action:    audit.ActionFail,
			Status:    "failed",
			InputHash: inputHash,
		})
		log.Warn("Stage failed", "error", msg)
		return nil, dispatchErr
	}

	outputHash, err := audit.HashJSON(result.Output)
	if err != nil {
		return nil, fmt.Errorf("hash stage output: %w", err)
	}

	execMs := result.ExecutionTimeMs
	if execMs == 0 {
		execMs = elapsed
	}
	if err := e.client.StageExecution.UpdateOneID(row.ID).
		SetStatus(stageexecution.StatusCompleted).
		SetOutput(result.Output).
		SetAgentID(result.AgentID).
		SetCompletedAt(time.Now().UTC()).
		SetExecutionTimeMs(execMs).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("persist stage completion: %w", err)
	}

	e.recorder.RecordBestEffort(ctx, audit.Entry{
		RunID:      run.ID,
		StageID:    stage.ID,
		AgentID:    result.AgentID,
		Action:     audit.ActionExecute,
		Status:     "completed",
		InputHash:  inputHash,
		OutputHash: outputHash,
	})

	e.cache.SetStageOutput(ctx, run.ID, stage.ID, result.Output)

	if err := e.client.WorkflowRun.UpdateOneID(run.ID).
		AppendCompletedStages([]string{stage.ID}).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("append completed stage: %w", err)
	}

	log.Info("Stage completed", "agent_id", result.AgentID, "execution_time_ms", execMs)
	return result.Output, nil
}

// upsertStageExecution creates the in_progress row, reusing the existing
// one on redelivery (run_id + stage_id is unique).
func (e *Executor) upsertStageExecution(ctx context.Context, runID, stageID string, input map[string]interface{}) (*ent.StageExecution, error) {
	existing, err := e.client.StageExecution.Query().
		Where(
			stageexecution.RunIDEQ(runID),
			stageexecution.StageIDEQ(stageID),
		).
		Only(ctx)
	if err == nil {
		existing, err = existing.Update().
			SetStatus(stageexecution.StatusInProgress).
			SetInputResolved(input).
			ClearErrorMessage().
			ClearCompletedAt().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("reset stage execution: %w", err)
		}
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query stage execution: %w", err)
	}

	row, err := e.client.StageExecution.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetStageID(stageID).
		SetStatus(stageexecution.StatusInProgress).
		SetInputResolved(input).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create stage execution: %w", err)
	}
	return row, nil
}

func errMessage(err error) string {
	if ce, ok := err.(*agentcall.Error); ok {
		return ce.Message
	}
	return err.Error()
}

// failedAgentID extracts the agent external id from a classified error
// for audit correlation; empty when the failure preceded agent selection.
func failedAgentID(err error) string {
	if ce, ok := err.(*agentcall.Error); ok {
		return ce.AgentID
	}
	return ""
}
