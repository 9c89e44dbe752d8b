package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/ent/team"
	"github.com/conductor-hq/conductor/ent/teammember"
	"github.com/conductor-hq/conductor/pkg/models"
)

// TeamService handles team and membership management.
type TeamService struct {
	client *ent.Client
}

// NewTeamService creates a new TeamService.
func NewTeamService(client *ent.Client) *TeamService {
	if client == nil {
		panic("NewTeamService: client must not be nil")
	}
	return &TeamService{client: client}
}

// CreateTeam creates a team owned by the calling user; the owner becomes
// its first member.
func (s *TeamService) CreateTeam(ctx context.Context, ownerUserID string, req models.CreateTeamRequest) (*ent.Team, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "team name is required")
	}

	create := s.client.Team.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetOwnerUser(ownerUserID)
	if req.MaxAgents > 0 {
		create = create.SetMaxAgents(req.MaxAgents)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	_, err = s.client.TeamMember.Create().
		SetID(uuid.New().String()).
		SetTeamID(t.ID).
		SetUserID(ownerUserID).
		SetRole(teammember.RoleOwner).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create owner membership: %w", err)
	}
	return t, nil
}

// GetTeam fetches a non-archived team.
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (*ent.Team, error) {
	t, err := s.client.Team.Query().
		Where(team.IDEQ(teamID), team.ArchivedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

// AddMember adds a user to the team. Only owners and admins may add
// members.
func (s *TeamService) AddMember(ctx context.Context, teamID, actorUserID string, req models.AddTeamMemberRequest) (*ent.TeamMember, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "user id is required")
	}
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if err := s.requireAdmin(ctx, teamID, actorUserID); err != nil {
		return nil, err
	}

	role := teammember.RoleMember
	if req.Role != "" {
		role = teammember.Role(req.Role)
	}

	m, err := s.client.TeamMember.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetUserID(req.UserID).
		SetRole(role).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: user is already a member", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("add team member: %w", err)
	}
	return m, nil
}

// Members lists the team's memberships.
func (s *TeamService) Members(ctx context.Context, teamID string) ([]*ent.TeamMember, error) {
	return s.client.TeamMember.Query().
		Where(teammember.TeamIDEQ(teamID)).
		Order(ent.Asc(teammember.FieldCreatedAt)).
		All(ctx)
}

// IsMember reports whether a user belongs to the team.
func (s *TeamService) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	return s.client.TeamMember.Query().
		Where(teammember.TeamIDEQ(teamID), teammember.UserIDEQ(userID)).
		Exist(ctx)
}

// IsAdmin reports whether a user is an owner or admin of the team.
func (s *TeamService) IsAdmin(ctx context.Context, teamID, userID string) (bool, error) {
	return s.client.TeamMember.Query().
		Where(
			teammember.TeamIDEQ(teamID),
			teammember.UserIDEQ(userID),
			teammember.RoleIn(teammember.RoleOwner, teammember.RoleAdmin),
		).
		Exist(ctx)
}

func (s *TeamService) requireAdmin(ctx context.Context, teamID, userID string) error {
	ok, err := s.IsAdmin(ctx, teamID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: user %s is not a team admin", ErrForbidden, userID)
	}
	return nil
}

// AgentCapacityAvailable reports whether the team can register another
// agent under its max_agents limit.
func (s *TeamService) AgentCapacityAvailable(ctx context.Context, teamID string) (bool, error) {
	t, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return false, err
	}
	count, err := s.client.Agent.Query().
		Where(agent.TeamIDEQ(teamID), agent.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count team agents: %w", err)
	}
	return count < t.MaxAgents, nil
}
