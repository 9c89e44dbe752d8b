// Package kanban implements the task lifecycle: claim, progress, complete,
// fail with retry or dead-letter, delegation, dependency unblocking, and
// the timeout sweep.
package kanban

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/ent/predicate"
	"github.com/conductor-hq/conductor/ent/task"
	"github.com/conductor-hq/conductor/pkg/bus"
	"github.com/conductor-hq/conductor/pkg/models"
)

// Engine coordinates task state transitions and their events.
type Engine struct {
	client *ent.Client
	bus    *bus.Bus
	logger *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(client *ent.Client, b *bus.Bus, logger *slog.Logger) *Engine {
	return &Engine{client: client, bus: b, logger: logger}
}

// Create inserts a new task. Tasks with unsatisfied dependencies start in
// backlog; everything else starts in todo.
func (e *Engine) Create(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	status := task.StatusTodo
	if len(req.DependsOn) > 0 {
		// A dependency outside the team, missing, or listed twice would
		// leave the task stuck in backlog: tryUnblock requires one done
		// row per depends_on entry.
		n, err := e.client.Task.Query().
			Where(task.IDIn(req.DependsOn...), task.TeamIDEQ(req.TeamID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("check dependencies: %w", err)
		}
		if n != len(req.DependsOn) {
			return nil, ErrBadDependency
		}
		status = task.StatusBacklog
	}

	create := e.client.Task.Create().
		SetID(uuid.New().String()).
		SetTeamID(req.TeamID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetStatus(status).
		SetTags(defaultTags(req.Tags)).
		SetDependsOn(defaultDeps(req.DependsOn))
	if req.Priority != "" {
		create = create.SetPriority(task.Priority(req.Priority))
	}
	if req.RequiredCapability != "" {
		create = create.SetRequiredCapability(req.RequiredCapability)
	}
	if req.InputMapping != nil {
		create = create.SetInputMapping(req.InputMapping)
	}
	if req.TimeoutMs != nil {
		create = create.SetTimeoutMs(*req.TimeoutMs)
	}
	if req.MaxRetries != nil {
		create = create.SetMaxRetries(*req.MaxRetries)
	}
	if req.CreatedByAgent != "" {
		create = create.SetCreatedByAgent(req.CreatedByAgent)
	}
	if req.CreatedByUser != "" {
		create = create.SetCreatedByUser(req.CreatedByUser)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	e.bus.Publish(bus.TeamChannel(t.TeamID), "task:created", e.taskPayload(t))
	return t, nil
}

// Get fetches a task by id.
func (e *Engine) Get(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := e.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List returns a team's tasks, newest first, optionally filtered by status.
func (e *Engine) List(ctx context.Context, teamID, status string, limit int) ([]*ent.Task, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := e.client.Task.Query().
		Where(task.TeamIDEQ(teamID)).
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit)
	if status != "" {
		q = q.Where(task.StatusEQ(task.Status(status)))
	}
	return q.All(ctx)
}

// Delegate creates a task on behalf of an agent, in the agent's team.
func (e *Engine) Delegate(ctx context.Context, agentID string, req models.CreateTaskRequest) (*ent.Task, error) {
	a, err := e.client.Agent.Query().
		Where(agent.IDEQ(agentID), agent.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, ErrAgentNotFound
	}
	if a.TeamID == nil {
		return nil, ErrNotTeamMember
	}
	req.TeamID = *a.TeamID
	req.CreatedByAgent = a.ID
	return e.Create(ctx, req)
}

// Claim assigns a claimable task to an agent. The agent must belong to the
// task's team; the task must be in todo and unassigned.
func (e *Engine) Claim(ctx context.Context, taskID, agentID string) (*ent.Task, error) {
	t, err := e.client.Task.Get(ctx, taskID)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	a, err := e.client.Agent.Query().
		Where(agent.IDEQ(agentID), agent.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, ErrAgentNotFound
	}
	if a.TeamID == nil || *a.TeamID != t.TeamID {
		return nil, ErrNotTeamMember
	}

	n, err := e.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusTodo),
			task.AssignedAgentIsNil(),
		).
		SetAssignedAgent(agentID).
		SetStatus(task.StatusInProgress).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claim task: %w", err)
	}
	if n == 0 {
		if t.AssignedAgent != nil {
			return nil, ErrAlreadyTaken
		}
		return nil, ErrNotClaimable
	}

	t, err = e.client.Task.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("reload task: %w", err)
	}

	payload := e.taskPayload(t)
	e.bus.Publish(bus.TeamChannel(t.TeamID), "task:claimed", payload)
	e.bus.Publish(bus.AgentChannel(agentID), "task:push", payload)
	return t, nil
}

// Progress updates the task's progress counters. Only the assignee may
// report progress.
func (e *Engine) Progress(ctx context.Context, taskID string, req models.TaskProgressRequest) (*ent.Task, error) {
	t, err := e.loadAssigned(ctx, taskID, req.AgentID)
	if err != nil {
		return nil, err
	}

	t, err = t.Update().
		SetProgressCurrent(req.Current).
		SetProgressTotal(req.Total).
		SetProgressMessage(req.Message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}

	percent := 0
	if req.Total > 0 {
		percent = int(math.Round(100 * float64(req.Current) / float64(req.Total)))
	}
	e.bus.Publish(bus.TeamChannel(t.TeamID), "task:progress", map[string]interface{}{
		"task_uuid": t.ID,
		"agent_id":  req.AgentID,
		"current":   req.Current,
		"total":     req.Total,
		"percent":   percent,
		"message":   req.Message,
	})
	return t, nil
}

// Complete finishes a task. With MoveToReview it parks in review instead
// of done; dependency unblocking only fires on done.
func (e *Engine) Complete(ctx context.Context, taskID string, req models.CompleteTaskRequest) (*ent.Task, error) {
	t, err := e.loadAssigned(ctx, taskID, req.AgentID)
	if err != nil {
		return nil, err
	}

	update := t.Update()
	if req.MoveToReview {
		update = update.SetStatus(task.StatusReview)
	} else {
		update = update.
			SetStatus(task.StatusDone).
			SetCompletedAt(time.Now().UTC())
	}
	if req.Result != "" {
		update = update.SetResult(req.Result)
	}
	if req.Output != nil {
		update = update.SetOutput(req.Output)
	}

	t, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}

	e.bus.Publish(bus.TeamChannel(t.TeamID), "task:updated", e.taskPayload(t))

	if t.Status == task.StatusDone {
		e.unblockDependents(ctx, t)
	}
	return t, nil
}

// Reject sends a task parked in review back onto the board. With Reassign,
// or when no agent holds the task, it returns to todo for a fresh claim;
// otherwise it returns to in_progress with the current assignee.
func (e *Engine) Reject(ctx context.Context, taskID string, req models.RejectTaskRequest) (*ent.Task, error) {
	t, err := e.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusReview {
		return nil, ErrNotInReview
	}

	update := e.client.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(task.StatusReview))
	if req.Reassign || t.AssignedAgent == nil {
		update = update.
			SetStatus(task.StatusTodo).
			ClearAssignedAgent().
			ClearStartedAt()
	} else {
		// The timeout clock restarts with the rework.
		update = update.
			SetStatus(task.StatusInProgress).
			SetStartedAt(time.Now().UTC())
	}
	if req.Reason != "" {
		update = update.SetLastError(req.Reason)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject task: %w", err)
	}
	if n == 0 {
		return nil, ErrNotInReview
	}

	t, err = e.client.Task.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("reload task: %w", err)
	}
	e.bus.Publish(bus.TeamChannel(t.TeamID), "task:rejected", e.taskPayload(t))
	return t, nil
}

// Fail records a failure from the assignee. Within the retry budget the
// task returns to todo for another claim; past it, the task dead-letters.
func (e *Engine) Fail(ctx context.Context, taskID string, req models.FailTaskRequest) (*ent.Task, error) {
	t, err := e.loadAssigned(ctx, taskID, req.AgentID)
	if err != nil {
		return nil, err
	}
	return e.failTask(ctx, t, req.Error, "task:retry", "task:dead_letter")
}

// failTask applies retry-or-dead-letter semantics. Shared by Fail and the
// timeout sweep, which differ only in event names.
func (e *Engine) failTask(ctx context.Context, t *ent.Task, errMsg, retryEvent, deadEvent string) (*ent.Task, error) {
	attempts := t.RetryCount + 1

	var update *ent.TaskUpdate
	eventType := retryEvent
	if attempts <= t.MaxRetries {
		update = e.client.Task.Update().
			Where(task.IDEQ(t.ID), task.StatusEQ(task.StatusInProgress)).
			SetRetryCount(attempts).
			SetStatus(task.StatusTodo).
			ClearAssignedAgent().
			ClearStartedAt().
			SetResult(fmt.Sprintf("RETRY %d/%d: %s", attempts, t.MaxRetries, errMsg)).
			SetLastError(errMsg)
	} else {
		eventType = deadEvent
		update = e.client.Task.Update().
			Where(task.IDEQ(t.ID), task.StatusEQ(task.StatusInProgress)).
			SetRetryCount(attempts).
			SetStatus(task.StatusDone).
			SetCompletedAt(time.Now().UTC()).
			SetResult(fmt.Sprintf("FAILED (%d attempts): %s", attempts, errMsg)).
			SetLastError(errMsg)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("fail task: %w", err)
	}
	if n == 0 {
		// Lost a race with another transition; nothing to report.
		return e.client.Task.Get(ctx, t.ID)
	}

	t, err = e.client.Task.Get(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("reload task: %w", err)
	}

	e.bus.Publish(bus.TeamChannel(t.TeamID), eventType, e.taskPayload(t))

	if t.Status == task.StatusDone {
		e.logger.Warn("Task dead-lettered",
			"task_id", t.ID, "attempts", attempts, "error", errMsg)
		e.unblockDependents(ctx, t)
	}
	return t, nil
}

// unblockDependents promotes backlog tasks whose dependencies are now all
// done, resolving their input mappings against the dependency outputs.
func (e *Engine) unblockDependents(ctx context.Context, done *ent.Task) {
	candidates, err := e.client.Task.Query().
		Where(
			task.TeamIDEQ(done.TeamID),
			task.StatusEQ(task.StatusBacklog),
			dependsOnContains(done.ID),
		).
		All(ctx)
	if err != nil {
		e.logger.Error("Failed to query dependent tasks", "task_id", done.ID, "error", err)
		return
	}

	for _, candidate := range candidates {
		e.tryUnblock(ctx, candidate)
	}
}

func dependsOnContains(taskID string) predicate.Task {
	return predicate.Task(func(s *entsql.Selector) {
		s.Where(sqljson.ValueContains(task.FieldDependsOn, taskID))
	})
}

func (e *Engine) tryUnblock(ctx context.Context, t *ent.Task) {
	deps, err := e.client.Task.Query().
		Where(task.IDIn(t.DependsOn...)).
		All(ctx)
	if err != nil {
		e.logger.Error("Failed to load dependencies", "task_id", t.ID, "error", err)
		return
	}
	if len(deps) != len(t.DependsOn) {
		return
	}
	depsByID := make(map[string]*ent.Task, len(deps))
	for _, dep := range deps {
		if dep.Status != task.StatusDone {
			return
		}
		depsByID[dep.ID] = dep
	}

	description := t.Description
	if len(t.InputMapping) > 0 {
		resolved := ResolveInputMapping(t.InputMapping, depsByID)
		description += formatInputBlock(resolved)
	}

	n, err := e.client.Task.Update().
		Where(task.IDEQ(t.ID), task.StatusEQ(task.StatusBacklog)).
		SetStatus(task.StatusTodo).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		e.logger.Error("Failed to unblock task", "task_id", t.ID, "error", err)
		return
	}
	if n == 0 {
		return
	}

	t, err = e.client.Task.Get(ctx, t.ID)
	if err != nil {
		return
	}
	e.logger.Info("Task unblocked", "task_id", t.ID)
	e.bus.Publish(bus.TeamChannel(t.TeamID), "task:unblocked", e.taskPayload(t))
}

// loadAssigned fetches a task and asserts the actor is its assignee.
func (e *Engine) loadAssigned(ctx context.Context, taskID, agentID string) (*ent.Task, error) {
	t, err := e.client.Task.Get(ctx, taskID)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	if t.AssignedAgent == nil || *t.AssignedAgent != agentID {
		return nil, ErrNotAssignee
	}
	return t, nil
}

func (e *Engine) taskPayload(t *ent.Task) map[string]interface{} {
	payload := map[string]interface{}{
		"task_uuid":   t.ID,
		"team_id":     t.TeamID,
		"title":       t.Title,
		"description": t.Description,
		"status":      string(t.Status),
		"priority":    string(t.Priority),
		"retry_count": t.RetryCount,
		"max_retries": t.MaxRetries,
	}
	if t.RequiredCapability != nil {
		payload["required_capability"] = *t.RequiredCapability
	}
	if t.AssignedAgent != nil {
		payload["assigned_agent"] = *t.AssignedAgent
	}
	if t.Result != nil {
		payload["result"] = *t.Result
	}
	return payload
}

func defaultTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func defaultDeps(deps []string) []string {
	if deps == nil {
		return []string{}
	}
	return deps
}
