package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResourceLock holds the schema definition for an advisory resource lock.
// At most one active lock may exist per (resource_type, resource_id).
type ResourceLock struct {
	ent.Schema
}

// Fields of the ResourceLock.
func (ResourceLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lock_uuid").
			Unique().
			Immutable(),
		field.String("resource_type").
			Immutable(),
		field.String("resource_id").
			Immutable(),
		field.String("owner_agent"),
		field.Enum("status").
			Values("active", "released", "expired").
			Default("active"),
		field.Enum("conflict_strategy").
			Values("fail", "queue", "merge", "escalate").
			Default("fail"),
		field.String("content_hash").
			Optional().
			Nillable(),
		field.Int("version").
			Default(1),
		field.Time("acquired_at").
			Default(time.Now),
		field.Time("expires_at"),
		field.Time("released_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ResourceLock.
func (ResourceLock) Indexes() []ent.Index {
	return []ent.Index{
		// The single-active-lock invariant, enforced at the storage layer.
		index.Fields("resource_type", "resource_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'active'")),
		index.Fields("status", "expires_at"),
	}
}
