package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/conductor-hq/conductor/pkg/models"
)

// WorkflowRun holds the schema definition for one execution of a workflow
// definition against a specific input. A run doubles as the durable queue
// job: workers claim queued runs with FOR UPDATE SKIP LOCKED.
type WorkflowRun struct {
	ent.Schema
}

// Fields of the WorkflowRun.
func (WorkflowRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("team_id").
			Optional().
			Nillable(),
		field.String("workflow_name"),
		field.JSON("definition", models.WorkflowDefinition{}),
		field.JSON("input", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("queued", "in_progress", "completed", "failed").
			Default("queued"),
		field.JSON("completed_stages", []string{}).
			Default([]string{}),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("Output of the terminal stage once the run completes"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker replica that owns the run (multi-replica coordination)"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the WorkflowRun.
func (WorkflowRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stage_executions", StageExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_records", AuditRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowRun.
func (WorkflowRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("user_id"),
	}
}
