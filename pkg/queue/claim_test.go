package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/test/util"
)

func enqueueRun(t *testing.T, client *ent.Client, name string) *ent.WorkflowRun {
	run, err := client.WorkflowRun.Create().
		SetID(uuid.New().String()).
		SetUserID("user-1").
		SetWorkflowName(name).
		SetDefinition(models.WorkflowDefinition{}).
		Save(context.Background())
	require.NoError(t, err)
	return run
}

func TestClaimNextRun_OldestFirst(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	w := NewWorker("worker-0", "pod-a", client, config.DefaultQueueConfig(), nil, nil)
	ctx := context.Background()

	first := enqueueRun(t, client, "first")
	// created_at ordering needs distinct timestamps.
	time.Sleep(10 * time.Millisecond)
	second := enqueueRun(t, client, "second")

	claimed, err := w.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, workflowrun.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-a", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	// The claimed run is invisible to the next claim.
	next, err := w.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, next.ID)

	// Queue drained.
	_, err = w.claimNextRun(ctx)
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
}

func TestRequeueStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	mine := enqueueRun(t, client, "mine")
	require.NoError(t, client.WorkflowRun.UpdateOneID(mine.ID).
		SetStatus(workflowrun.StatusInProgress).
		SetPodID("pod-a").
		SetLastHeartbeatAt(time.Now().UTC()).
		Exec(ctx))

	theirs := enqueueRun(t, client, "theirs")
	require.NoError(t, client.WorkflowRun.UpdateOneID(theirs.ID).
		SetStatus(workflowrun.StatusInProgress).
		SetPodID("pod-b").
		SetLastHeartbeatAt(time.Now().UTC()).
		Exec(ctx))

	require.NoError(t, RequeueStartupOrphans(ctx, client, "pod-a"))

	got, err := client.WorkflowRun.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatusQueued, got.Status)
	assert.Nil(t, got.PodID)
	assert.Nil(t, got.LastHeartbeatAt)

	// Another pod's run is untouched.
	got, err = client.WorkflowRun.Get(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatusInProgress, got.Status)
}

func TestDetectAndRecoverOrphans_StaleHeartbeat(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	cfg := config.DefaultQueueConfig()
	pool := NewWorkerPool("pod-a", client, cfg, nil)

	stale := enqueueRun(t, client, "stale")
	require.NoError(t, client.WorkflowRun.UpdateOneID(stale.ID).
		SetStatus(workflowrun.StatusInProgress).
		SetPodID("pod-dead").
		SetLastHeartbeatAt(time.Now().UTC().Add(-cfg.OrphanThreshold - time.Minute)).
		Exec(ctx))

	live := enqueueRun(t, client, "live")
	require.NoError(t, client.WorkflowRun.UpdateOneID(live.ID).
		SetStatus(workflowrun.StatusInProgress).
		SetPodID("pod-b").
		SetLastHeartbeatAt(time.Now().UTC()).
		Exec(ctx))

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	got, err := client.WorkflowRun.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatusQueued, got.Status)

	got, err = client.WorkflowRun.Get(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatusInProgress, got.Status)
}
