package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompanyEntity holds the canonical enriched company record per org.
// The id is a deterministic UUIDv5 derived from normalized identity fields,
// so repeated enrichment of the same company lands on the same row.
// record_version implements optimistic concurrency: every mutation bumps it
// and a snapshot of the pre-image is captured first.
type CompanyEntity struct {
	ent.Schema
}

// Mixin of the CompanyEntity.
func (CompanyEntity) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the CompanyEntity.
func (CompanyEntity) Fields() []ent.Field {
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
		// Projected typed columns for natural-key lookup.
		field.String("canonical_domain").
			Optional(),
		field.String("linkedin_url").
			Optional(),
		field.String("name").
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

// Indexes of the CompanyEntity.
func (CompanyEntity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "canonical_domain"),
		index.Fields("org_id", "linkedin_url"),
		index.Fields("org_id", "last_enriched_at"),
	}
}
