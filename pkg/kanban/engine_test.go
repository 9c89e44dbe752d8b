package kanban_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/task"
	"github.com/conductor-hq/conductor/pkg/bus"
	"github.com/conductor-hq/conductor/pkg/kanban"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/test/util"
)

type engineFixture struct {
	client *ent.Client
	engine *kanban.Engine
	bus    *bus.Bus
	teamID string
}

func setupEngine(t *testing.T) *engineFixture {
	client, _ := util.SetupTestDatabase(t)
	b := bus.New()
	engine := kanban.NewEngine(client, b, slog.Default())

	team, err := client.Team.Create().
		SetID(uuid.New().String()).
		SetName("platform").
		SetOwnerUser("owner-1").
		Save(context.Background())
	require.NoError(t, err)

	return &engineFixture{client: client, engine: engine, bus: b, teamID: team.ID}
}

func (f *engineFixture) createAgent(t *testing.T, externalID string) *ent.Agent {
	a, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetExternalID(externalID).
		SetDisplayName(externalID).
		SetEndpointURL("http://" + externalID + ".local").
		SetRegisteredBy("owner-1").
		SetAuthSecretHash("hash").
		SetTeamID(f.teamID).
		Save(context.Background())
	require.NoError(t, err)
	return a
}

func TestEngine_ClaimCompleteLifecycle(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()
	agent := f.createAgent(t, "agent-1")

	var events []bus.Event
	f.bus.Subscribe(func(evt bus.Event) { events = append(events, evt) })

	created, err := f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID: f.teamID,
		Title:  "Index the repository",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, created.Status)

	claimed, err := f.engine.Claim(ctx, created.ID, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.AssignedAgent)
	assert.Equal(t, agent.ID, *claimed.AssignedAgent)
	assert.NotNil(t, claimed.StartedAt)

	// A second claimant loses.
	other := f.createAgent(t, "agent-2")
	_, err = f.engine.Claim(ctx, created.ID, other.ID)
	assert.ErrorIs(t, err, kanban.ErrAlreadyTaken)

	// Only the assignee reports progress.
	_, err = f.engine.Progress(ctx, created.ID, models.TaskProgressRequest{
		AgentID: other.ID, Current: 1, Total: 2,
	})
	assert.ErrorIs(t, err, kanban.ErrNotAssignee)

	progressed, err := f.engine.Progress(ctx, created.ID, models.TaskProgressRequest{
		AgentID: agent.ID, Current: 1, Total: 2, Message: "halfway",
	})
	require.NoError(t, err)
	require.NotNil(t, progressed.ProgressCurrent)
	assert.Equal(t, 1, *progressed.ProgressCurrent)

	done, err := f.engine.Complete(ctx, created.ID, models.CompleteTaskRequest{
		AgentID: agent.ID,
		Result:  "indexed 120 files",
		Output:  map[string]interface{}{"files": 120},
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, done.Status)
	assert.NotNil(t, done.CompletedAt)

	types := make([]string, 0, len(events))
	for _, evt := range events {
		types = append(types, evt.Type)
	}
	assert.Contains(t, types, "task:created")
	assert.Contains(t, types, "task:claimed")
	assert.Contains(t, types, "task:push")
	assert.Contains(t, types, "task:progress")
	assert.Contains(t, types, "task:updated")
}

func TestEngine_CompleteMoveToReviewSkipsUnblock(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()
	agent := f.createAgent(t, "agent-1")

	first, err := f.engine.Create(ctx, models.CreateTaskRequest{TeamID: f.teamID, Title: "Produce report"})
	require.NoError(t, err)
	dependent, err := f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID:    f.teamID,
		Title:     "Publish report",
		DependsOn: []string{first.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusBacklog, dependent.Status)

	_, err = f.engine.Claim(ctx, first.ID, agent.ID)
	require.NoError(t, err)
	reviewed, err := f.engine.Complete(ctx, first.ID, models.CompleteTaskRequest{
		AgentID: agent.ID, MoveToReview: true,
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusReview, reviewed.Status)
	assert.Nil(t, reviewed.CompletedAt)

	// Review is not done; the dependent stays blocked.
	got, err := f.engine.Get(ctx, dependent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusBacklog, got.Status)
}

func TestEngine_FailRetriesThenDeadLetters(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()
	agent := f.createAgent(t, "agent-1")

	maxRetries := 1
	created, err := f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID:     f.teamID,
		Title:      "Flaky job",
		MaxRetries: &maxRetries,
	})
	require.NoError(t, err)

	_, err = f.engine.Claim(ctx, created.ID, agent.ID)
	require.NoError(t, err)

	// First failure is inside the retry budget: back to todo, unassigned.
	retried, err := f.engine.Fail(ctx, created.ID, models.FailTaskRequest{
		AgentID: agent.ID, Error: "connection reset",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, retried.Status)
	assert.Nil(t, retried.AssignedAgent)
	assert.Equal(t, 1, retried.RetryCount)
	require.NotNil(t, retried.Result)
	assert.True(t, strings.HasPrefix(*retried.Result, "RETRY 1/1"))

	// Second failure exhausts the budget and dead-letters the task.
	_, err = f.engine.Claim(ctx, created.ID, agent.ID)
	require.NoError(t, err)
	dead, err := f.engine.Fail(ctx, created.ID, models.FailTaskRequest{
		AgentID: agent.ID, Error: "connection reset",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, dead.Status)
	assert.Equal(t, 2, dead.RetryCount)
	require.NotNil(t, dead.Result)
	assert.True(t, strings.HasPrefix(*dead.Result, "FAILED (2 attempts)"))
}

func TestEngine_DependencyUnblockResolvesInputMapping(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()
	agent := f.createAgent(t, "agent-1")

	producer, err := f.engine.Create(ctx, models.CreateTaskRequest{TeamID: f.teamID, Title: "Fetch data"})
	require.NoError(t, err)
	consumer, err := f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID:    f.teamID,
		Title:     "Transform data",
		DependsOn: []string{producer.ID},
		InputMapping: map[string]string{
			"source_url": "{{" + producer.ID + ".output.url}}",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusBacklog, consumer.Status)

	_, err = f.engine.Claim(ctx, producer.ID, agent.ID)
	require.NoError(t, err)
	_, err = f.engine.Complete(ctx, producer.ID, models.CompleteTaskRequest{
		AgentID: agent.ID,
		Output:  map[string]interface{}{"url": "s3://bucket/data.json"},
	})
	require.NoError(t, err)

	unblocked, err := f.engine.Get(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, unblocked.Status)
	assert.Contains(t, unblocked.Description, "s3://bucket/data.json")
}

func TestEngine_ClaimRequiresSameTeam(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()

	otherTeam, err := f.client.Team.Create().
		SetID(uuid.New().String()).
		SetName("other").
		SetOwnerUser("owner-2").
		Save(ctx)
	require.NoError(t, err)
	outsider, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetExternalID("outsider").
		SetDisplayName("outsider").
		SetEndpointURL("http://outsider.local").
		SetRegisteredBy("owner-2").
		SetAuthSecretHash("hash").
		SetTeamID(otherTeam.ID).
		Save(ctx)
	require.NoError(t, err)

	created, err := f.engine.Create(ctx, models.CreateTaskRequest{TeamID: f.teamID, Title: "Team work"})
	require.NoError(t, err)

	_, err = f.engine.Claim(ctx, created.ID, outsider.ID)
	assert.ErrorIs(t, err, kanban.ErrNotTeamMember)
}

func TestEngine_DelegateUsesAgentTeam(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()
	agent := f.createAgent(t, "agent-1")

	delegated, err := f.engine.Delegate(ctx, agent.ID, models.CreateTaskRequest{
		Title: "Follow-up scan",
	})
	require.NoError(t, err)
	assert.Equal(t, f.teamID, delegated.TeamID)
	require.NotNil(t, delegated.CreatedByAgent)
	assert.Equal(t, agent.ID, *delegated.CreatedByAgent)
}

func TestEngine_SweepTimeouts(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()
	agent := f.createAgent(t, "agent-1")

	timeout := int64(50)
	created, err := f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID:    f.teamID,
		Title:     "Slow job",
		TimeoutMs: &timeout,
	})
	require.NoError(t, err)
	_, err = f.engine.Claim(ctx, created.ID, agent.ID)
	require.NoError(t, err)

	// Backdate the start so the deadline has passed.
	require.NoError(t, f.client.Task.UpdateOneID(created.ID).
		SetStartedAt(time.Now().UTC().Add(-time.Minute)).
		Exec(ctx))

	f.engine.SweepTimeouts(ctx)

	got, err := f.engine.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, got.Status)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "Timed out after 50ms")
}

func TestEngine_RejectMovesReviewTaskBack(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()
	agent := f.createAgent(t, "agent-1")

	created, err := f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID: f.teamID,
		Title:  "Draft the migration plan",
	})
	require.NoError(t, err)
	_, err = f.engine.Claim(ctx, created.ID, agent.ID)
	require.NoError(t, err)
	_, err = f.engine.Complete(ctx, created.ID, models.CompleteTaskRequest{
		AgentID: agent.ID, Result: "draft ready", MoveToReview: true,
	})
	require.NoError(t, err)

	var events []bus.Event
	f.bus.Subscribe(func(evt bus.Event) { events = append(events, evt) })

	// Rework keeps the assignee and restarts the timeout clock.
	reworked, err := f.engine.Reject(ctx, created.ID, models.RejectTaskRequest{
		Reason: "missing rollback section",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, reworked.Status)
	require.NotNil(t, reworked.AssignedAgent)
	assert.Equal(t, agent.ID, *reworked.AssignedAgent)
	assert.NotNil(t, reworked.StartedAt)
	require.NotNil(t, reworked.LastError)
	assert.Equal(t, "missing rollback section", *reworked.LastError)

	require.Len(t, events, 1)
	assert.Equal(t, "task:rejected", events[0].Type)

	// Rejecting anything not in review is a conflict.
	_, err = f.engine.Reject(ctx, created.ID, models.RejectTaskRequest{})
	assert.ErrorIs(t, err, kanban.ErrNotInReview)

	_, err = f.engine.Complete(ctx, created.ID, models.CompleteTaskRequest{
		AgentID: agent.ID, MoveToReview: true,
	})
	require.NoError(t, err)

	// Reassign frees the task for a fresh claim.
	freed, err := f.engine.Reject(ctx, created.ID, models.RejectTaskRequest{Reassign: true})
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, freed.Status)
	assert.Nil(t, freed.AssignedAgent)
	assert.Nil(t, freed.StartedAt)

	other := f.createAgent(t, "agent-2")
	claimed, err := f.engine.Claim(ctx, created.ID, other.ID)
	require.NoError(t, err)
	require.NotNil(t, claimed.AssignedAgent)
	assert.Equal(t, other.ID, *claimed.AssignedAgent)
}

func TestEngine_CreateValidatesDependencies(t *testing.T) {
	f := setupEngine(t)
	ctx := context.Background()

	producer, err := f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID: f.teamID,
		Title:  "Produce the dataset",
	})
	require.NoError(t, err)

	_, err = f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID:    f.teamID,
		Title:     "Consume a ghost",
		DependsOn: []string{uuid.New().String()},
	})
	assert.ErrorIs(t, err, kanban.ErrBadDependency)

	// Duplicate entries would leave the task stuck in backlog forever.
	_, err = f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID:    f.teamID,
		Title:     "Consume twice",
		DependsOn: []string{producer.ID, producer.ID},
	})
	assert.ErrorIs(t, err, kanban.ErrBadDependency)

	// Tasks in another team are not visible as dependencies.
	otherTeam, err := f.client.Team.Create().
		SetID(uuid.New().String()).
		SetName("research").
		SetOwnerUser("owner-2").
		Save(ctx)
	require.NoError(t, err)
	foreign, err := f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID: otherTeam.ID,
		Title:  "Foreign producer",
	})
	require.NoError(t, err)
	_, err = f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID:    f.teamID,
		Title:     "Consume across teams",
		DependsOn: []string{foreign.ID},
	})
	assert.ErrorIs(t, err, kanban.ErrBadDependency)

	blocked, err := f.engine.Create(ctx, models.CreateTaskRequest{
		TeamID:    f.teamID,
		Title:     "Consume the dataset",
		DependsOn: []string{producer.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusBacklog, blocked.Status)
}
