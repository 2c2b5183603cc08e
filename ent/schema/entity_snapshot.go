package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntitySnapshot holds an immutable pre-image of an entity row, captured
// synchronously before the corresponding entity update is applied. The
// snapshot at record_version V is written before the live row moves to V+1,
// which gives the change detector a contiguous version chain.
type EntitySnapshot struct {
	ent.Schema
}

// Mixin of the EntitySnapshot.
func (EntitySnapshot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the EntitySnapshot.
func (EntitySnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id").
			NotEmpty().
			Immutable(),
		field.Enum("entity_type").
			Values("company", "person", "job").
			Immutable(),
		field.String("entity_id").
			NotEmpty().
			Immutable(),
		field.Int("record_version").
			Min(1).
			Immutable(),
		field.JSON("canonical_payload", map[string]interface{}{}).
			Immutable(),
		field.String("source_run_id").
			Optional().
			Immutable(),
		field.Time("captured_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EntitySnapshot.
func (EntitySnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "entity_type", "entity_id", "captured_at"),
		index.Fields("entity_type", "entity_id", "record_version"),
	}
}
