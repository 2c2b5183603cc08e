package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PersonEntity holds the canonical enriched person record per org.
type PersonEntity struct {
	ent.Schema
}

// Mixin of the PersonEntity.
func (PersonEntity) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the PersonEntity.
func (PersonEntity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id").
			NotEmpty().
			Immutable(),
		field.Int("record_version").
			Default(1).
			Min(1),
		field.JSON("canonical_payload", map[string]interface{}{}),
		field.String("linkedin_url").
			Optional(),
		field.String("work_email").
			Optional(),
		field.String("full_name").
			Optional(),
		field.Time("last_enriched_at").
			Optional().
			Nillable(),
		field.String("last_run_id").
			Optional(),
		field.String("last_operation_id").
			Optional(),
		field.JSON("source_providers", []string{}).
			Optional(),
	}
}

// Indexes of the PersonEntity.
func (PersonEntity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "linkedin_url"),
		index.Fields("org_id", "work_email"),
		index.Fields("org_id", "last_enriched_at"),
	}
}
