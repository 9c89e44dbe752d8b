package cleanup_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/task"
	"github.com/conductor-hq/conductor/ent/webhookdelivery"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/cleanup"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/test/util"
)

func retentionConfig() config.RetentionConfig {
	return config.RetentionConfig{
		RunTTL:        24 * time.Hour,
		TaskTTL:       24 * time.Hour,
		DeliveryTTL:   24 * time.Hour,
		SweepInterval: time.Hour,
	}
}

func createRun(t *testing.T, client *ent.Client, status workflowrun.Status, completedAt *time.Time) *ent.WorkflowRun {
	create := client.WorkflowRun.Create().
		SetID(uuid.New().String()).
		SetUserID("user-1").
		SetWorkflowName("indexing").
		SetDefinition(models.WorkflowDefinition{}).
		SetStatus(status)
	if completedAt != nil {
		create = create.SetCompletedAt(*completedAt)
	}
	run, err := create.Save(context.Background())
	require.NoError(t, err)
	return run
}

func TestService_PurgesTerminalRunsPastTTL(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := cleanup.NewService(retentionConfig(), client, slog.Default())
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	fresh := time.Now().UTC().Add(-time.Hour)

	oldDone := createRun(t, client, workflowrun.StatusCompleted, &old)
	oldFailed := createRun(t, client, workflowrun.StatusFailed, &old)
	recent := createRun(t, client, workflowrun.StatusCompleted, &fresh)
	running := createRun(t, client, workflowrun.StatusInProgress, nil)

	svc.RunOnce(ctx)

	for _, gone := range []string{oldDone.ID, oldFailed.ID} {
		_, err := client.WorkflowRun.Get(ctx, gone)
		assert.True(t, ent.IsNotFound(err), "run %s should be purged", gone)
	}
	for _, kept := range []string{recent.ID, running.ID} {
		_, err := client.WorkflowRun.Get(ctx, kept)
		assert.NoError(t, err, "run %s should survive", kept)
	}
}

func TestService_PurgesDoneTasksPastTTL(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := cleanup.NewService(retentionConfig(), client, slog.Default())
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)

	purged, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetTeamID("team-1").
		SetTitle("Old task").
		SetStatus(task.StatusDone).
		SetCompletedAt(old).
		Save(ctx)
	require.NoError(t, err)
	kept, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetTeamID("team-1").
		SetTitle("Open task").
		Save(ctx)
	require.NoError(t, err)

	svc.RunOnce(ctx)

	_, err = client.Task.Get(ctx, purged.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.Task.Get(ctx, kept.ID)
	assert.NoError(t, err)
}

func TestService_PurgesSettledDeliveriesPastTTL(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := cleanup.NewService(retentionConfig(), client, slog.Default())
	ctx := context.Background()

	hook, err := client.Webhook.Create().
		SetID(uuid.New().String()).
		SetTeamID("team-1").
		SetURL("https://example.com/hook").
		SetSecret("s3cret").
		SetEvents([]string{"task:created"}).
		Save(ctx)
	require.NoError(t, err)

	old := time.Now().UTC().Add(-48 * time.Hour)
	mkDelivery := func(status webhookdelivery.Status, createdAt time.Time) *ent.WebhookDelivery {
		d, err := client.WebhookDelivery.Create().
			SetID(uuid.New().String()).
			SetWebhookID(hook.ID).
			SetEvent("task:created").
			SetStatus(status).
			SetPayload(map[string]interface{}{"task_uuid": "t-1"}).
			SetCreatedAt(createdAt).
			Save(ctx)
		require.NoError(t, err)
		return d
	}

	oldSuccess := mkDelivery(webhookdelivery.StatusSuccess, old)
	oldDead := mkDelivery(webhookdelivery.StatusDeadLetter, old)
	// Pending deliveries are never purged, however old; the dispatcher
	// owns their lifecycle.
	oldPending := mkDelivery(webhookdelivery.StatusPending, old)
	freshSuccess := mkDelivery(webhookdelivery.StatusSuccess, time.Now().UTC())

	svc.RunOnce(ctx)

	for _, gone := range []string{oldSuccess.ID, oldDead.ID} {
		_, err := client.WebhookDelivery.Get(ctx, gone)
		assert.True(t, ent.IsNotFound(err), "delivery %s should be purged", gone)
	}
	for _, kept := range []string{oldPending.ID, freshSuccess.ID} {
		_, err := client.WebhookDelivery.Get(ctx, kept)
		assert.NoError(t, err, "delivery %s should survive", kept)
	}
}

func TestService_ZeroTTLDisablesPurge(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := retentionConfig()
	cfg.RunTTL = 0
	svc := cleanup.NewService(cfg, client, slog.Default())
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	run := createRun(t, client, workflowrun.StatusCompleted, &old)

	svc.RunOnce(ctx)

	_, err := client.WorkflowRun.Get(ctx, run.ID)
	assert.NoError(t, err)
}
