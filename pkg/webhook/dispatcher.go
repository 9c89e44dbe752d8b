// Package webhook delivers team events to registered external endpoints
// with HMAC signatures, exponential-backoff retry, and dead-lettering.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/webhook"
	"github.com/conductor-hq/conductor/ent/webhookdelivery"
	"github.com/conductor-hq/conductor/pkg/bus"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/metrics"
)

// Dispatcher matches bus events against registered webhooks and manages
// the delivery lifecycle.
type Dispatcher struct {
	client *ent.Client
	cfg    config.WebhookConfig
	http   *http.Client
	logger *slog.Logger

	busSub bus.Subscription
}

// NewDispatcher creates a Dispatcher and subscribes it to the bus.
func NewDispatcher(client *ent.Client, b *bus.Bus, cfg config.WebhookConfig, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		client: client,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}
	d.busSub = b.Subscribe(d.onEvent)
	return d
}

// onEvent schedules deliveries for team-channel events that match a
// registered webhook. Runs on the publisher's goroutine, so the actual
// HTTP work is handed off.
func (d *Dispatcher) onEvent(evt bus.Event) {
	teamID, ok := strings.CutPrefix(evt.Channel, "team:")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hooks, err := d.client.Webhook.Query().
		Where(
			webhook.TeamIDEQ(teamID),
			webhook.ActiveEQ(true),
			eventsContains(evt.Type),
		).
		All(ctx)
	if err != nil {
		d.logger.Error("Webhook match query failed", "team_id", teamID, "event", evt.Type, "error", err)
		return
	}

	for _, hook := range hooks {
		delivery, err := d.client.WebhookDelivery.Create().
			SetID(uuid.New().String()).
			SetWebhookID(hook.ID).
			SetEvent(evt.Type).
			SetMaxAttempts(d.cfg.MaxAttempts).
			SetPayload(evt.Payload).
			Save(ctx)
		if err != nil {
			d.logger.Error("Failed to create webhook delivery",
				"webhook_id", hook.ID, "event", evt.Type, "error", err)
			continue
		}
		go d.attempt(context.Background(), hook, delivery)
	}
}

// Body is the canonical webhook request body.
type Body struct {
	Event     string                 `json:"event"`
	Timestamp string                 `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload"`
}

// attempt performs one delivery attempt and records the outcome.
func (d *Dispatcher) attempt(ctx context.Context, hook *ent.Webhook, delivery *ent.WebhookDelivery) {
	body, err := json.Marshal(Body{
		Event:     delivery.Event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Payload:   delivery.Payload,
	})
	if err != nil {
		d.logger.Error("Failed to marshal webhook body", "delivery_id", delivery.ID, "error", err)
		return
	}

	attempts := delivery.Attempts + 1
	statusCode, err := d.post(ctx, hook, delivery.ID, body)

	if err == nil && statusCode >= 200 && statusCode <= 299 {
		metrics.WebhookDeliveries.WithLabelValues("success").Inc()
		if uerr := d.client.WebhookDelivery.UpdateOneID(delivery.ID).
			SetStatus(webhookdelivery.StatusSuccess).
			SetAttempts(attempts).
			SetResponseCode(statusCode).
			ClearNextRetryAt().
			Exec(ctx); uerr != nil {
			d.logger.Error("Failed to record delivery success", "delivery_id", delivery.ID, "error", uerr)
		}
		return
	}

	reason := fmt.Sprintf("HTTP %d", statusCode)
	if err != nil {
		reason = err.Error()
	}

	if attempts >= delivery.MaxAttempts {
		metrics.WebhookDeliveries.WithLabelValues("dead_letter").Inc()
		d.logger.Warn("Webhook delivery dead-lettered",
			"delivery_id", delivery.ID, "webhook_id", hook.ID,
			"attempts", attempts, "reason", reason)
		update := d.client.WebhookDelivery.UpdateOneID(delivery.ID).
			SetStatus(webhookdelivery.StatusDeadLetter).
			SetAttempts(attempts).
			ClearNextRetryAt()
		if statusCode > 0 {
			update = update.SetResponseCode(statusCode)
		}
		if uerr := update.Exec(ctx); uerr != nil {
			d.logger.Error("Failed to record dead letter", "delivery_id", delivery.ID, "error", uerr)
		}
		return
	}

	metrics.WebhookDeliveries.WithLabelValues("retry").Inc()
	retryAt := time.Now().UTC().Add(Backoff(attempts, d.cfg.BaseBackoff, d.cfg.MaxBackoff))
	d.logger.Info("Webhook delivery failed, scheduling retry",
		"delivery_id", delivery.ID, "attempts", attempts,
		"next_retry_at", retryAt, "reason", reason)
	update := d.client.WebhookDelivery.UpdateOneID(delivery.ID).
		SetStatus(webhookdelivery.StatusPending).
		SetAttempts(attempts).
		SetNextRetryAt(retryAt)
	if statusCode > 0 {
		update = update.SetResponseCode(statusCode)
	}
	if uerr := update.Exec(ctx); uerr != nil {
		d.logger.Error("Failed to schedule retry", "delivery_id", delivery.ID, "error", uerr)
	}
}

// post signs and sends one webhook request.
func (d *Dispatcher) post(ctx context.Context, hook *ent.Webhook, deliveryID string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook.URL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", "sha256="+Sign(body, hook.Secret))
	req.Header.Set("X-Event", hookEvent(body))
	req.Header.Set("X-Delivery", deliveryID)

	resp, err := d.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// hookEvent re-extracts the event name from the canonical body so the
// header always matches what was signed.
func hookEvent(body []byte) string {
	var b Body
	if err := json.Unmarshal(body, &b); err != nil {
		return ""
	}
	return b.Event
}

// Sign computes the hex HMAC-SHA256 of a body under a webhook secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Backoff returns the delay before the next attempt: base · 2^(attempts−1),
// capped at max.
func Backoff(attempts int, base, max time.Duration) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	backoff := base << uint(attempts-1)
	if backoff > max || backoff <= 0 {
		return max
	}
	return backoff
}
