package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/conductor-hq/conductor/pkg/models"
)

// AuditRecord holds the schema definition for an append-only audit record.
// Records are optionally RS256-signed over their canonical JSON form and
// are never mutated after insert.
type AuditRecord struct {
	ent.Schema
}

// Fields of the AuditRecord.
func (AuditRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("stage_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Enum("action").
			Values("execute", "retry", "fail").
			Immutable(),
		field.String("status").
			Immutable(),
		field.String("input_hash").
			Immutable(),
		field.String("output_hash").
			Optional().
			Nillable().
			Immutable(),
		field.Time("logged_at").
			Default(time.Now).
			Immutable(),
		field.JSON("signature", &models.AuditSignature{}).
			Optional(),
	}
}

// Edges of the AuditRecord.
func (AuditRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("audit_records").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditRecord.
func (AuditRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "logged_at"),
	}
}
