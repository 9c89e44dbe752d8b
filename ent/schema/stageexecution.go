package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageExecution holds the schema definition for one stage attempt record.
// Created by the workflow worker when a stage begins; updated on
// completion or failure. Retries of the same stage reuse the row.
type StageExecution struct {
	ent.Schema
}

// Fields of the StageExecution.
func (StageExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("stage_id").
			Immutable().
			Comment("Stage id within the workflow definition"),
		field.Enum("status").
			Values("in_progress", "completed", "failed").
			Default("in_progress"),
		field.String("agent_id").
			Optional().
			Nillable().
			Comment("Agent that ultimately produced the result"),
		field.JSON("input_resolved", map[string]interface{}{}).
			Optional(),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("execution_time_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the StageExecution.
func (StageExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("stage_executions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StageExecution.
func (StageExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "stage_id").
			Unique(),
	}
}
