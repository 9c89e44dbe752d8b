package audit_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/workflowrun"
	"github.com/conductor-hq/conductor/pkg/audit"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/test/util"
)

func createAuditedRun(t *testing.T, client *ent.Client) *ent.WorkflowRun {
	run, err := client.WorkflowRun.Create().
		SetID(uuid.New().String()).
		SetUserID("user-1").
		SetWorkflowName("indexing").
		SetDefinition(models.WorkflowDefinition{}).
		SetStatus(workflowrun.StatusCompleted).
		Save(context.Background())
	require.NoError(t, err)
	return run
}

func TestRecorder_VerifyRunOutcomes(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	run := createAuditedRun(t, client)

	signer := testSigner(t)
	signed := audit.NewRecorder(client, signer)
	unsigned := audit.NewRecorder(client, nil)

	_, err := signed.Record(ctx, audit.Entry{
		RunID:      run.ID,
		StageID:    "a",
		AgentID:    "agent-1",
		Action:     audit.ActionExecute,
		Status:     "completed",
		InputHash:  "h-in",
		OutputHash: "h-out",
	})
	require.NoError(t, err)

	_, err = unsigned.Record(ctx, audit.Entry{
		RunID:     run.ID,
		StageID:   "b",
		AgentID:   "agent-1",
		Action:    audit.ActionExecute,
		Status:    "completed",
		InputHash: "h-in",
	})
	require.NoError(t, err)

	doctored, err := signed.Record(ctx, audit.Entry{
		RunID:     run.ID,
		StageID:   "c",
		AgentID:   "agent-1",
		Action:    audit.ActionFail,
		Status:    "failed",
		InputHash: "h-in",
	})
	require.NoError(t, err)

	// Records are append-only; a mutated status must fail verification.
	require.NoError(t, client.AuditRecord.UpdateOneID(doctored.ID).
		SetStatus("completed").
		Exec(ctx))

	results, err := signed.VerifyRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byStage := make(map[string]audit.RecordVerification, len(results))
	for _, rv := range results {
		byStage[rv.StageID] = rv
	}
	assert.Equal(t, audit.OutcomeValid, byStage["a"].Outcome)
	assert.Equal(t, audit.OutcomeUnsigned, byStage["b"].Outcome)
	assert.Equal(t, audit.OutcomeInvalid, byStage["c"].Outcome)
	assert.NotEmpty(t, byStage["c"].Error)
}

func TestRecorder_VerifyRunWithoutKeyReportsUnsigned(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	run := createAuditedRun(t, client)

	signed := audit.NewRecorder(client, testSigner(t))
	_, err := signed.Record(ctx, audit.Entry{
		RunID:     run.ID,
		StageID:   "a",
		AgentID:   "agent-1",
		Action:    audit.ActionExecute,
		Status:    "completed",
		InputHash: "h-in",
	})
	require.NoError(t, err)

	keyless := audit.NewRecorder(client, nil)
	results, err := keyless.VerifyRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, audit.OutcomeUnsigned, results[0].Outcome)
	assert.Equal(t, "no verification key configured", results[0].Error)
}
