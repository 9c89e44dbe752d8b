package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/ent/agentversion"
	"github.com/conductor-hq/conductor/pkg/cache"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/pkg/secrets"
)

// AgentService manages agent registration, lookup, and retirement.
type AgentService struct {
	client *ent.Client
	teams  *TeamService
	box    *secrets.Box
	cache  *cache.Cache
	logger *slog.Logger
}

// NewAgentService creates a new AgentService. box may be nil when secret
// encryption is not configured.
func NewAgentService(client *ent.Client, teams *TeamService, box *secrets.Box, c *cache.Cache, logger *slog.Logger) *AgentService {
	if client == nil {
		panic("NewAgentService: client must not be nil")
	}
	if teams == nil {
		panic("NewAgentService: teams must not be nil")
	}
	return &AgentService{
		client: client,
		teams:  teams,
		box:    box,
		cache:  c,
		logger: logger,
	}
}

// Register creates an agent. The bearer secret is stored as a SHA-256
// hash; when an encryption key is configured a recoverable ciphertext is
// kept alongside so the platform can dispatch work to the agent.
func (s *AgentService) Register(ctx context.Context, registeredBy string, req models.RegisterAgentRequest) (*ent.Agent, error) {
	if req.ExternalID == "" {
		return nil, NewValidationError("external_id", "external id is required")
	}
	if req.DisplayName == "" {
		return nil, NewValidationError("display_name", "display name is required")
	}
	if req.AuthSecret == "" {
		return nil, NewValidationError("auth_secret", "auth secret is required")
	}
	if _, err := url.ParseRequestURI(req.EndpointURL); err != nil {
		return nil, NewValidationError("endpoint_url", "endpoint url must be a valid absolute URL")
	}
	if len(req.Capabilities) == 0 {
		return nil, NewValidationError("capabilities", "at least one capability is required")
	}
	maxConcurrent := req.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	if req.TeamID != "" {
		ok, err := s.teams.AgentCapacityAvailable(ctx, req.TeamID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: team agent limit reached", ErrConflict)
		}
	}

	create := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetExternalID(req.ExternalID).
		SetDisplayName(req.DisplayName).
		SetEndpointURL(req.EndpointURL).
		SetCapabilities(req.Capabilities).
		SetMaxConcurrent(maxConcurrent).
		SetRegisteredBy(registeredBy).
		SetAuthSecretHash(secrets.Hash(req.AuthSecret))
	if req.TeamID != "" {
		create = create.SetTeamID(req.TeamID)
	}
	if s.box.Enabled() {
		ciphertext, err := s.box.Encrypt(req.AuthSecret)
		if err != nil {
			return nil, fmt.Errorf("encrypt agent secret: %w", err)
		}
		create = create.SetAuthSecretCiphertext(ciphertext)
	}

	a, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: agent with external id %s already registered", ErrAlreadyExists, req.ExternalID)
		}
		return nil, fmt.Errorf("register agent: %w", err)
	}

	s.cache.InvalidateCapabilities(ctx, a.Capabilities)
	s.logger.Info("Agent registered",
		"agent_id", a.ID, "external_id", a.ExternalID, "capabilities", a.Capabilities)
	return a, nil
}

// Get fetches a live agent by id.
func (s *AgentService) Get(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().
		Where(agent.IDEQ(agentID), agent.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return a, nil
}

// List returns live agents, optionally filtered by team.
func (s *AgentService) List(ctx context.Context, teamID string) ([]*ent.Agent, error) {
	q := s.client.Agent.Query().
		Where(agent.DeletedAtIsNil()).
		Order(ent.Asc(agent.FieldCreatedAt))
	if teamID != "" {
		q = q.Where(agent.TeamIDEQ(teamID))
	}
	return q.All(ctx)
}

// VerifySecret checks a presented bearer secret against the stored hash.
func (s *AgentService) VerifySecret(ctx context.Context, agentID, secret string) (bool, error) {
	a, err := s.Get(ctx, agentID)
	if err != nil {
		return false, err
	}
	return secrets.VerifyHash(secret, a.AuthSecretHash), nil
}

// Delete soft-deletes an agent and marks it offline. The external id
// becomes available for re-registration.
func (s *AgentService) Delete(ctx context.Context, agentID string) error {
	a, err := s.Get(ctx, agentID)
	if err != nil {
		return err
	}
	err = s.client.Agent.UpdateOneID(a.ID).
		SetDeletedAt(time.Now().UTC()).
		SetStatus(agent.StatusOffline).
		SetWsConnected(false).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	s.cache.InvalidateCapabilities(ctx, a.Capabilities)
	s.logger.Info("Agent deleted", "agent_id", a.ID, "external_id", a.ExternalID)
	return nil
}

// CreateVersion registers an endpoint version for canary routing.
func (s *AgentService) CreateVersion(ctx context.Context, agentID string, req models.CreateAgentVersionRequest) (*ent.AgentVersion, error) {
	if req.Version == "" {
		return nil, NewValidationError("version", "version label is required")
	}
	if req.TrafficPercent < 0 || req.TrafficPercent > 100 {
		return nil, NewValidationError("traffic_percent", "traffic percent must be between 0 and 100")
	}
	if _, err := url.ParseRequestURI(req.Endpoint); err != nil {
		return nil, NewValidationError("endpoint", "endpoint must be a valid absolute URL")
	}
	a, err := s.Get(ctx, agentID)
	if err != nil {
		return nil, err
	}

	status := agentversion.StatusActive
	if req.Canary {
		status = agentversion.StatusCanary
	}
	capabilities := req.Capabilities
	if len(capabilities) == 0 {
		capabilities = a.Capabilities
	}
	v, err := s.client.AgentVersion.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetVersion(req.Version).
		SetEndpoint(req.Endpoint).
		SetCapabilities(capabilities).
		SetTrafficPercent(req.TrafficPercent).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create agent version: %w", err)
	}
	return v, nil
}

// ListVersions returns an agent's deployed versions, newest first.
func (s *AgentService) ListVersions(ctx context.Context, agentID string) ([]*ent.AgentVersion, error) {
	if _, err := s.Get(ctx, agentID); err != nil {
		return nil, err
	}
	return s.client.AgentVersion.Query().
		Where(agentversion.AgentIDEQ(agentID)).
		Order(ent.Desc(agentversion.FieldCreatedAt)).
		All(ctx)
}

// RetireVersion takes a version out of rotation.
func (s *AgentService) RetireVersion(ctx context.Context, versionID string) error {
	err := s.client.AgentVersion.UpdateOneID(versionID).
		SetStatus(agentversion.StatusInactive).
		SetTrafficPercent(0).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}
