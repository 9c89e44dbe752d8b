package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentVersion holds the schema definition for a deployed agent version.
// Traffic between the active and canary versions of an agent must sum to 100.
type AgentVersion struct {
	ent.Schema
}

// Fields of the AgentVersion.
func (AgentVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_uuid").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("version"),
		field.String("endpoint"),
		field.JSON("capabilities", []string{}).
			Default([]string{}),
		field.Enum("status").
			Values("draft", "active", "canary", "inactive", "rolled_back").
			Default("draft"),
		field.Int("traffic_percent").
			Default(0).
			Min(0).
			Max(100),
		field.Float("error_rate_per_1000").
			Default(0),
		field.Float("error_threshold").
			Default(50),
		field.Bool("is_rollback_target").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentVersion.
func (AgentVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("versions").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentVersion.
func (AgentVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "status"),
	}
}
