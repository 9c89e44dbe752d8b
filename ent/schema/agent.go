package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for a remote autonomous agent.
// Agents are addressed by URL, authenticated by bearer token, and matched
// to work by their capability set.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_uuid").
			Unique().
			Immutable(),
		field.String("external_id").
			Comment("Caller-supplied stable identifier, unique over non-deleted agents"),
		field.String("display_name"),
		field.String("endpoint_url").
			Comment("Base URL for /orchestration/execute and /health"),
		field.JSON("capabilities", []string{}).
			Default([]string{}),
		field.Int("max_concurrent").
			Default(1),
		field.Enum("status").
			Values("online", "degraded", "offline").
			Default("offline"),
		field.Bool("ws_connected").
			Default(false),
		field.Time("last_heartbeat").
			Optional().
			Nillable(),
		field.String("team_id").
			Optional().
			Nillable(),
		field.String("registered_by").
			Comment("User UUID of the registering user"),
		field.String("auth_secret_hash").
			Comment("SHA-256 of the agent bearer secret"),
		field.String("auth_secret_ciphertext").
			Optional().
			Nillable().
			Comment("AES-GCM ciphertext of the bearer secret; present only when an encryption key is configured"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", AgentVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("team_id"),
		// external_id is unique over live rows only; soft-deleted agents may
		// be re-registered under the same external id.
		index.Fields("external_id").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
	}
}
