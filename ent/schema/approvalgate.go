package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalGate holds the schema definition for a human-in-the-loop gate.
// An empty approvers set means any team admin may respond.
type ApprovalGate struct {
	ent.Schema
}

// Fields of the ApprovalGate.
func (ApprovalGate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("gate_uuid").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.Enum("status").
			Values("pending", "approved", "rejected", "expired").
			Default("pending"),
		field.JSON("approvers", []string{}).
			Default([]string{}),
		field.String("requested_by_agent").
			Optional().
			Nillable(),
		field.String("requested_by_user").
			Optional().
			Nillable(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.String("responded_by").
			Optional().
			Nillable(),
		field.String("response_note").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("responded_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ApprovalGate.
func (ApprovalGate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id", "status"),
		index.Fields("status", "expires_at"),
	}
}
