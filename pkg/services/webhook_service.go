package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	entwebhook "github.com/conductor-hq/conductor/ent/webhook"
	"github.com/conductor-hq/conductor/ent/webhookdelivery"
	"github.com/conductor-hq/conductor/pkg/models"
	"github.com/conductor-hq/conductor/pkg/webhook"
)

// WebhookService manages webhook registrations. Delivery itself lives in
// the webhook dispatcher; this service only owns the configuration rows.
type WebhookService struct {
	client     *ent.Client
	teams      *TeamService
	dispatcher *webhook.Dispatcher
	logger     *slog.Logger
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client, teams *TeamService, dispatcher *webhook.Dispatcher, logger *slog.Logger) *WebhookService {
	if client == nil {
		panic("NewWebhookService: client must not be nil")
	}
	if teams == nil {
		panic("NewWebhookService: teams must not be nil")
	}
	return &WebhookService{client: client, teams: teams, dispatcher: dispatcher, logger: logger}
}

// Register creates an active webhook for a team.
func (s *WebhookService) Register(ctx context.Context, req models.RegisterWebhookRequest) (*ent.Webhook, error) {
	if req.TeamID == "" {
		return nil, NewValidationError("team_id", "team id is required")
	}
	if req.Secret == "" {
		return nil, NewValidationError("secret", "signing secret is required")
	}
	if len(req.Events) == 0 {
		return nil, NewValidationError("events", "at least one event type is required")
	}
	u, err := url.ParseRequestURI(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, NewValidationError("url", "url must be a valid http(s) URL")
	}
	if _, err := s.teams.GetTeam(ctx, req.TeamID); err != nil {
		return nil, err
	}

	hook, err := s.client.Webhook.Create().
		SetID(uuid.New().String()).
		SetTeamID(req.TeamID).
		SetURL(req.URL).
		SetSecret(req.Secret).
		SetEvents(req.Events).
		SetActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("register webhook: %w", err)
	}

	s.logger.Info("Webhook registered",
		"webhook_id", hook.ID, "team_id", req.TeamID, "events", req.Events)
	return hook, nil
}

// List returns a team's webhooks.
func (s *WebhookService) List(ctx context.Context, teamID string) ([]*ent.Webhook, error) {
	return s.client.Webhook.Query().
		Where(entwebhook.TeamIDEQ(teamID)).
		Order(ent.Asc(entwebhook.FieldCreatedAt)).
		All(ctx)
}

// Get fetches a webhook by id.
func (s *WebhookService) Get(ctx context.Context, webhookID string) (*ent.Webhook, error) {
	hook, err := s.client.Webhook.Get(ctx, webhookID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get webhook: %w", err)
	}
	return hook, nil
}

// Disable deactivates a webhook and dead-letters its pending deliveries.
func (s *WebhookService) Disable(ctx context.Context, webhookID string) error {
	err := s.client.Webhook.UpdateOneID(webhookID).
		SetActive(false).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("disable webhook: %w", err)
	}

	n, err := s.dispatcher.DeadLetterPending(ctx, webhookID)
	if err != nil {
		return fmt.Errorf("dead-letter pending deliveries: %w", err)
	}
	s.logger.Info("Webhook disabled", "webhook_id", webhookID, "dead_lettered", n)
	return nil
}

// Deliveries returns a webhook's delivery history, newest first.
func (s *WebhookService) Deliveries(ctx context.Context, webhookID string, limit int) ([]*ent.WebhookDelivery, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	hook, err := s.Get(ctx, webhookID)
	if err != nil {
		return nil, err
	}
	return s.client.WebhookDelivery.Query().
		Where(webhookdelivery.WebhookIDEQ(hook.ID)).
		Order(ent.Desc(webhookdelivery.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
