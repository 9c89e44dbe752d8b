package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/stageexecution"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/models"
)

// RunService enqueues and queries workflow runs. Enqueuing is a single
// insert: the run row is the queue job.
type RunService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, logger *slog.Logger) *RunService {
	if client == nil {
		panic("NewRunService: client must not be nil")
	}
	return &RunService{client: client, logger: logger}
}

// Enqueue validates the definition and inserts a queued run. A
// caller-supplied run id deduplicates publishes: a repeated id returns
// ErrAlreadyExists instead of a second run.
func (s *RunService) Enqueue(ctx context.Context, userID string, req models.CreateRunRequest) (*ent.WorkflowRun, error) {
	if req.WorkflowName == "" {
		return nil, NewValidationError("workflow_name", "workflow name is required")
	}
	if err := req.Definition.Validate(); err != nil {
		return nil, NewValidationError("definition", err.Error())
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.New().String()
	}

	create := s.client.WorkflowRun.Create().
		SetID(runID).
		SetUserID(userID).
		SetWorkflowName(req.WorkflowName).
		SetDefinition(req.Definition).
		SetStatus(workflowrun.StatusQueued)
	if req.Input != nil {
		create = create.SetInput(req.Input)
	}
	if req.TeamID != "" {
		create = create.SetTeamID(req.TeamID)
	}

	run, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: run %s already published", ErrAlreadyExists, runID)
		}
		return nil, fmt.Errorf("enqueue run: %w", err)
	}

	s.logger.Info("Workflow run enqueued",
		"run_id", run.ID, "workflow", run.WorkflowName, "stages", len(req.Definition.Stages))
	return run, nil
}

// Get fetches a run with its stage executions ordered by start time.
func (s *RunService) Get(ctx context.Context, runID string) (*ent.WorkflowRun, error) {
	run, err := s.client.WorkflowRun.Query().
		Where(workflowrun.IDEQ(runID)).
		WithStageExecutions(func(q *ent.StageExecutionQuery) {
			q.Order(ent.Asc(stageexecution.FieldStartedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// List returns a user's runs, newest first, optionally filtered by status.
func (s *RunService) List(ctx context.Context, userID string, status string, limit int) ([]*ent.WorkflowRun, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.client.WorkflowRun.Query().
		Where(workflowrun.UserIDEQ(userID)).
		Order(ent.Desc(workflowrun.FieldCreatedAt)).
		Limit(limit)
	if status != "" {
		q = q.Where(workflowrun.StatusEQ(workflowrun.Status(status)))
	}
	return q.All(ctx)
}
