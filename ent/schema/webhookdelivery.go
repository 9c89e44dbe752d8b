package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookDelivery holds the schema definition for one outbound delivery
// attempt chain. Deliveries retry with exponential backoff until success
// or dead-letter.
type WebhookDelivery struct {
	ent.Schema
}

// Fields of the WebhookDelivery.
func (WebhookDelivery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("delivery_uuid").
			Unique().
			Immutable(),
		field.String("webhook_id").
			Immutable(),
		field.String("event").
			Immutable(),
		field.Enum("status").
			Values("pending", "success", "failed", "dead_letter").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(5),
		field.Time("next_retry_at").
			Optional().
			Nillable(),
		field.Int("response_code").
			Optional().
			Nillable(),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WebhookDelivery.
func (WebhookDelivery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("webhook", Webhook.Type).
			Ref("deliveries").
			Field("webhook_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WebhookDelivery.
func (WebhookDelivery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_retry_at"),
		index.Fields("webhook_id", "status"),
	}
}
