package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobPostingEntity holds the canonical enriched job-posting record per org.
type JobPostingEntity struct {
	ent.Schema
}

// Mixin of the JobPostingEntity.
func (JobPostingEntity) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the JobPostingEntity.
func (JobPostingEntity) Fields() []ent.Field {
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
		field.String("theirstack_job_id").
			Optional(),
		field.String("job_url").
			Optional(),
		field.String("title").
			Optional(),
		field.String("company_domain").
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

// Indexes of the JobPostingEntity.
func (JobPostingEntity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "theirstack_job_id"),
		index.Fields("org_id", "job_url"),
		index.Fields("org_id", "company_domain"),
	}
}
