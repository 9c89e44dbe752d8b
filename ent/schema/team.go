package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Team holds the schema definition for the Team entity, the isolation
// boundary for agents, tasks, webhooks, and approvals.
type Team struct {
	ent.Schema
}

// Fields of the Team.
func (Team) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("team_uuid").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("owner_user"),
		field.Int("max_agents").
			Default(10),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("archived_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Team.
func (Team) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("members", TeamMember.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Team.
func (Team) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_user"),
	}
}
