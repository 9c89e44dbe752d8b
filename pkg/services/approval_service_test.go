package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/approvalgate"
	"github.com/conductor-hq/conductor/pkg/bus"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/pkg/services"
	"github.com/conductor-hq/conductor/test/util"
)

func setupApprovals(t *testing.T) (*ent.Client, *services.ApprovalService, *services.TeamService, *bus.Bus) {
	client, _ := util.SetupTestDatabase(t)
	teams := services.NewTeamService(client)
	b := bus.New()
	return client, services.NewApprovalService(client, teams, b, slog.Default()), teams, b
}

func TestApprovalService_NamedApproverFlow(t *testing.T) {
	client, svc, teams, b := setupApprovals(t)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "owner-1", models.CreateTeamRequest{Name: "platform"})
	require.NoError(t, err)

	var events []bus.Event
	b.Subscribe(func(evt bus.Event) { events = append(events, evt) })

	gate, err := svc.Create(ctx, models.CreateApprovalRequest{
		TeamID:    team.ID,
		Title:     "Deploy to production",
		Approvers: []string{"user-a", "user-b"},
	})
	require.NoError(t, err)
	assert.Equal(t, approvalgate.StatusPending, gate.Status)

	// A user outside the approver set cannot respond, admin or not.
	_, err = svc.Respond(ctx, gate.ID, models.RespondApprovalRequest{UserID: "owner-1", Approve: true})
	assert.ErrorIs(t, err, services.ErrForbidden)

	resolved, err := svc.Respond(ctx, gate.ID, models.RespondApprovalRequest{
		UserID: "user-a", Approve: true, Note: "lgtm",
	})
	require.NoError(t, err)
	assert.Equal(t, approvalgate.StatusApproved, resolved.Status)
	require.NotNil(t, resolved.RespondedBy)
	assert.Equal(t, "user-a", *resolved.RespondedBy)

	// Second response conflicts.
	_, err = svc.Respond(ctx, gate.ID, models.RespondApprovalRequest{UserID: "user-b", Approve: false})
	assert.ErrorIs(t, err, services.ErrConflict)

	types := make([]string, 0, len(events))
	for _, evt := range events {
		types = append(types, evt.Type)
	}
	assert.Contains(t, types, "approval:requested")
	assert.Contains(t, types, "approval:approved")

	// The stored row is terminal.
	got, err := client.ApprovalGate.Get(ctx, gate.ID)
	require.NoError(t, err)
	assert.Equal(t, approvalgate.StatusApproved, got.Status)
}

func TestApprovalService_EmptyApproversMeansTeamAdmin(t *testing.T) {
	_, svc, teams, _ := setupApprovals(t)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "owner-1", models.CreateTeamRequest{Name: "platform"})
	require.NoError(t, err)
	_, err = teams.AddMember(ctx, team.ID, "owner-1", models.AddTeamMemberRequest{UserID: "member-1"})
	require.NoError(t, err)

	gate, err := svc.Create(ctx, models.CreateApprovalRequest{TeamID: team.ID, Title: "Rotate keys"})
	require.NoError(t, err)

	// Plain members are not admins.
	_, err = svc.Respond(ctx, gate.ID, models.RespondApprovalRequest{UserID: "member-1", Approve: true})
	assert.ErrorIs(t, err, services.ErrForbidden)

	resolved, err := svc.Respond(ctx, gate.ID, models.RespondApprovalRequest{UserID: "owner-1", Approve: false, Note: "not yet"})
	require.NoError(t, err)
	assert.Equal(t, approvalgate.StatusRejected, resolved.Status)
}

func TestApprovalService_ExpiredGateRejectsResponse(t *testing.T) {
	client, svc, teams, _ := setupApprovals(t)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "owner-1", models.CreateTeamRequest{Name: "platform"})
	require.NoError(t, err)

	ttl := int64(3600)
	gate, err := svc.Create(ctx, models.CreateApprovalRequest{
		TeamID:           team.ID,
		Title:            "Scale down",
		Approvers:        []string{"user-a"},
		ExpiresInSeconds: &ttl,
	})
	require.NoError(t, err)
	require.NoError(t, client.ApprovalGate.UpdateOneID(gate.ID).
		SetExpiresAt(time.Now().UTC().Add(-time.Minute)).
		Exec(ctx))

	_, err = svc.Respond(ctx, gate.ID, models.RespondApprovalRequest{UserID: "user-a", Approve: true})
	assert.ErrorIs(t, err, services.ErrConflict)

	got, err := client.ApprovalGate.Get(ctx, gate.ID)
	require.NoError(t, err)
	assert.Equal(t, approvalgate.StatusExpired, got.Status)
}

func TestApprovalService_ExpireDueSweep(t *testing.T) {
	client, svc, teams, _ := setupApprovals(t)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, "owner-1", models.CreateTeamRequest{Name: "platform"})
	require.NoError(t, err)

	ttl := int64(1)
	gate, err := svc.Create(ctx, models.CreateApprovalRequest{
		TeamID:           team.ID,
		Title:            "Old request",
		ExpiresInSeconds: &ttl,
	})
	require.NoError(t, err)
	require.NoError(t, client.ApprovalGate.UpdateOneID(gate.ID).
		SetExpiresAt(time.Now().UTC().Add(-time.Minute)).
		Exec(ctx))

	svc.ExpireDue(ctx)

	got, err := client.ApprovalGate.Get(ctx, gate.ID)
	require.NoError(t, err)
	assert.Equal(t, approvalgate.StatusExpired, got.Status)

	// Pending gates without a deadline are untouched.
	open, err := svc.Create(ctx, models.CreateApprovalRequest{TeamID: team.ID, Title: "No deadline"})
	require.NoError(t, err)
	svc.ExpireDue(ctx)
	still, err := client.ApprovalGate.Get(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, approvalgate.StatusPending, still.Status)
}
