package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/ent/teammember"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/pkg/services"
	"github.com/conductor-hq/conductor/test/util"
)

func TestTeamService_CreateTeamSeedsOwnerMembership(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewTeamService(client)
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, "owner-1", models.CreateTeamRequest{Name: "platform"})
	require.NoError(t, err)
	assert.Equal(t, "platform", team.Name)
	assert.Equal(t, "owner-1", team.OwnerUser)

	members, err := svc.Members(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "owner-1", members[0].UserID)
	assert.Equal(t, teammember.RoleOwner, members[0].Role)

	admin, err := svc.IsAdmin(ctx, team.ID, "owner-1")
	require.NoError(t, err)
	assert.True(t, admin)
}

func TestTeamService_CreateTeamRequiresName(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewTeamService(client)

	_, err := svc.CreateTeam(context.Background(), "owner-1", models.CreateTeamRequest{})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestTeamService_AddMemberAuthorization(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewTeamService(client)
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, "owner-1", models.CreateTeamRequest{Name: "platform"})
	require.NoError(t, err)

	m, err := svc.AddMember(ctx, team.ID, "owner-1", models.AddTeamMemberRequest{UserID: "member-1"})
	require.NoError(t, err)
	assert.Equal(t, teammember.RoleMember, m.Role)

	// Plain members cannot add members.
	_, err = svc.AddMember(ctx, team.ID, "member-1", models.AddTeamMemberRequest{UserID: "member-2"})
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Promoted admins can.
	_, err = svc.AddMember(ctx, team.ID, "owner-1", models.AddTeamMemberRequest{UserID: "admin-1", Role: "admin"})
	require.NoError(t, err)
	_, err = svc.AddMember(ctx, team.ID, "admin-1", models.AddTeamMemberRequest{UserID: "member-2"})
	require.NoError(t, err)

	// Duplicate membership conflicts.
	_, err = svc.AddMember(ctx, team.ID, "owner-1", models.AddTeamMemberRequest{UserID: "member-1"})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	members, err := svc.Members(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, members, 4)
}

func TestTeamService_AgentCapacity(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewTeamService(client)
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, "owner-1", models.CreateTeamRequest{Name: "platform", MaxAgents: 1})
	require.NoError(t, err)

	ok, err := svc.AgentCapacityAvailable(ctx, team.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	a, err := client.Agent.Create().
		SetID(uuid.New().String()).
		SetExternalID("agent-1").
		SetDisplayName("Agent One").
		SetEndpointURL("http://agent-1.local").
		SetRegisteredBy("owner-1").
		SetAuthSecretHash("hash").
		SetTeamID(team.ID).
		Save(ctx)
	require.NoError(t, err)

	ok, err = svc.AgentCapacityAvailable(ctx, team.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Soft-deleted agents do not count against the limit.
	require.NoError(t, client.Agent.UpdateOneID(a.ID).
		SetDeletedAt(a.CreatedAt).
		Exec(ctx))
	ok, err = svc.AgentCapacityAvailable(ctx, team.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTeamService_GetTeamNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewTeamService(client)

	_, err := svc.GetTeam(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
