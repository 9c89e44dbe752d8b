package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/approvalgate"
	"github.com/conductor-hq/conductor/pkg/bus"
	"github.com/conductor-hq/conductor/pkg/models"
)

// ApprovalService manages human-in-the-loop approval gates.
type ApprovalService struct {
	client *ent.Client
	teams  *TeamService
	bus    *bus.Bus
	logger *slog.Logger
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(client *ent.Client, teams *TeamService, b *bus.Bus, logger *slog.Logger) *ApprovalService {
	if client == nil {
		panic("NewApprovalService: client must not be nil")
	}
	if teams == nil {
		panic("NewApprovalService: teams must not be nil")
	}
	return &ApprovalService{client: client, teams: teams, bus: b, logger: logger}
}

// Create opens a pending gate and announces it on the team channel.
func (s *ApprovalService) Create(ctx context.Context, req models.CreateApprovalRequest) (*ent.ApprovalGate, error) {
	if req.TeamID == "" {
		return nil, NewValidationError("team_id", "team id is required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if _, err := s.teams.GetTeam(ctx, req.TeamID); err != nil {
		return nil, err
	}

	approvers := req.Approvers
	if approvers == nil {
		approvers = []string{}
	}
	create := s.client.ApprovalGate.Create().
		SetID(uuid.New().String()).
		SetTeamID(req.TeamID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetApprovers(approvers)
	if req.RequestedByAgent != "" {
		create = create.SetRequestedByAgent(req.RequestedByAgent)
	}
	if req.RequestedByUser != "" {
		create = create.SetRequestedByUser(req.RequestedByUser)
	}
	if req.TaskID != "" {
		create = create.SetTaskID(req.TaskID)
	}
	if req.ExpiresInSeconds != nil && *req.ExpiresInSeconds > 0 {
		create = create.SetExpiresAt(time.Now().UTC().Add(time.Duration(*req.ExpiresInSeconds) * time.Second))
	}

	gate, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create approval gate: %w", err)
	}

	s.bus.Publish(bus.TeamChannel(req.TeamID), "approval:requested", map[string]interface{}{
		"gate_uuid": gate.ID,
		"title":     gate.Title,
		"approvers": gate.Approvers,
	})
	return gate, nil
}

// Get fetches a gate by id.
func (s *ApprovalService) Get(ctx context.Context, gateID string) (*ent.ApprovalGate, error) {
	gate, err := s.client.ApprovalGate.Get(ctx, gateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get approval gate: %w", err)
	}
	return gate, nil
}

// ListPending returns a team's open gates, oldest first.
func (s *ApprovalService) ListPending(ctx context.Context, teamID string) ([]*ent.ApprovalGate, error) {
	return s.client.ApprovalGate.Query().
		Where(
			approvalgate.TeamIDEQ(teamID),
			approvalgate.StatusEQ(approvalgate.StatusPending),
		).
		Order(ent.Asc(approvalgate.FieldCreatedAt)).
		All(ctx)
}

// Respond records the first approval or rejection of a pending gate.
// Named approvers are authoritative; a gate with no approvers accepts any
// team admin. A second response, or a response after expiry, conflicts.
func (s *ApprovalService) Respond(ctx context.Context, gateID string, req models.RespondApprovalRequest) (*ent.ApprovalGate, error) {
	gate, err := s.Get(ctx, gateID)
	if err != nil {
		return nil, err
	}

	if len(gate.Approvers) > 0 {
		if !slices.Contains(gate.Approvers, req.UserID) {
			return nil, fmt.Errorf("%w: user %s is not an approver", ErrForbidden, req.UserID)
		}
	} else {
		admin, err := s.teams.IsAdmin(ctx, gate.TeamID, req.UserID)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, fmt.Errorf("%w: user %s is not a team admin", ErrForbidden, req.UserID)
		}
	}

	status := approvalgate.StatusRejected
	eventType := "approval:rejected"
	if req.Approve {
		status = approvalgate.StatusApproved
		eventType = "approval:approved"
	}

	// The pending precondition makes the first response win; expiry is
	// checked under the same condition so a response never revives an
	// expired gate.
	update := s.client.ApprovalGate.Update().
		Where(
			approvalgate.IDEQ(gateID),
			approvalgate.StatusEQ(approvalgate.StatusPending),
		)
	if gate.ExpiresAt != nil && time.Now().UTC().After(*gate.ExpiresAt) {
		if _, err := s.expireGate(ctx, gateID); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: approval gate expired", ErrConflict)
	}
	n, err := update.
		SetStatus(status).
		SetRespondedBy(req.UserID).
		SetResponseNote(req.Note).
		SetRespondedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("respond to approval gate: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: approval gate already resolved", ErrConflict)
	}

	gate, err = s.Get(ctx, gateID)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(bus.TeamChannel(gate.TeamID), eventType, map[string]interface{}{
		"gate_uuid":    gate.ID,
		"title":        gate.Title,
		"responded_by": req.UserID,
	})
	s.logger.Info("Approval gate resolved",
		"gate_id", gate.ID, "status", gate.Status, "responded_by", req.UserID)
	return gate, nil
}

// ExpireDue transitions overdue pending gates to expired. Scheduled on
// the shared cron runner.
func (s *ApprovalService) ExpireDue(ctx context.Context) {
	due, err := s.client.ApprovalGate.Query().
		Where(
			approvalgate.StatusEQ(approvalgate.StatusPending),
			approvalgate.ExpiresAtNotNil(),
			approvalgate.ExpiresAtLTE(time.Now().UTC()),
		).
		All(ctx)
	if err != nil {
		s.logger.Error("Approval expiry sweep failed", "error", err)
		return
	}
	for _, gate := range due {
		expired, err := s.expireGate(ctx, gate.ID)
		if err != nil {
			s.logger.Error("Failed to expire approval gate", "gate_id", gate.ID, "error", err)
			continue
		}
		if expired {
			s.bus.Publish(bus.TeamChannel(gate.TeamID), "approval:expired", map[string]interface{}{
				"gate_uuid": gate.ID,
				"title":     gate.Title,
			})
		}
	}
}

func (s *ApprovalService) expireGate(ctx context.Context, gateID string) (bool, error) {
	n, err := s.client.ApprovalGate.Update().
		Where(
			approvalgate.IDEQ(gateID),
			approvalgate.StatusEQ(approvalgate.StatusPending),
		).
		SetStatus(approvalgate.StatusExpired).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
