package webhook

import (
	"context"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/predicate"
	"github.com/conductor-hq/conductor/ent/webhook"
	"github.com/conductor-hq/conductor/ent/webhookdelivery"
)

// eventsContains matches webhooks whose events JSON array contains the
// given event type.
func eventsContains(eventType string) predicate.Webhook {
	return predicate.Webhook(func(s *entsql.Selector) {
		s.Where(sqljson.ValueContains(webhook.FieldEvents, eventType))
	})
}

// Sweep retries due pending deliveries, oldest first, up to the configured
// batch size. Scheduled on the shared cron runner.
func (d *Dispatcher) Sweep(ctx context.Context) {
	due, err := d.client.WebhookDelivery.Query().
		Where(
			webhookdelivery.StatusEQ(webhookdelivery.StatusPending),
			webhookdelivery.NextRetryAtNotNil(),
			webhookdelivery.NextRetryAtLTE(time.Now().UTC()),
		).
		Order(ent.Asc(webhookdelivery.FieldNextRetryAt)).
		Limit(d.cfg.SweepBatchSize).
		WithWebhook().
		All(ctx)
	if err != nil {
		d.logger.Error("Webhook sweep query failed", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	d.logger.Info("Webhook sweep redelivering", "count", len(due))
	for _, delivery := range due {
		hook := delivery.Edges.Webhook
		if hook == nil {
			continue
		}
		if !hook.Active {
			// Disabled webhooks stop retrying immediately.
			if err := d.client.WebhookDelivery.UpdateOneID(delivery.ID).
				SetStatus(webhookdelivery.StatusDeadLetter).
				ClearNextRetryAt().
				Exec(ctx); err != nil {
				d.logger.Error("Failed to dead-letter delivery for disabled webhook",
					"delivery_id", delivery.ID, "error", err)
			}
			continue
		}
		d.attempt(ctx, hook, delivery)
	}
}

// DeadLetterPending dead-letters all pending deliveries of a webhook.
// Called when a webhook is disabled or deleted.
func (d *Dispatcher) DeadLetterPending(ctx context.Context, webhookID string) (int, error) {
	return d.client.WebhookDelivery.Update().
		Where(
			webhookdelivery.WebhookIDEQ(webhookID),
			webhookdelivery.StatusEQ(webhookdelivery.StatusPending),
		).
		SetStatus(webhookdelivery.StatusDeadLetter).
		ClearNextRetryAt().
		Save(ctx)
}
