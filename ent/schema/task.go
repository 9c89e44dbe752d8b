package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for a kanban task. Tasks carry a
// first-class required_capability distinct from freeform tags; capability
// matching never reads tags.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_uuid").
			Unique().
			Immutable(),
		field.String("team_id").
			Immutable(),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.Enum("status").
			Values("backlog", "todo", "in_progress", "review", "done").
			Default("todo"),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.String("required_capability").
			Optional().
			Nillable(),
		field.JSON("tags", []string{}).
			Default([]string{}),
		field.String("assigned_agent").
			Optional().
			Nillable(),
		field.String("created_by_agent").
			Optional().
			Nillable(),
		field.String("created_by_user").
			Optional().
			Nillable(),
		field.JSON("depends_on", []string{}).
			Default([]string{}),
		field.JSON("input_mapping", map[string]string{}).
			Optional().
			Comment("{{task_uuid.output.path}} templates resolved at unblock time"),
		field.Int64("timeout_ms").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Int("progress_current").
			Optional().
			Nillable(),
		field.Int("progress_total").
			Optional().
			Nillable(),
		field.String("progress_message").
			Optional().
			Nillable(),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.Text("result").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
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

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id", "status"),
		index.Fields("assigned_agent"),
		index.Fields("status", "started_at"),
	}
}
