package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission holds the schema definition for a batch of seeded entities.
// A submission is terminal once every pipeline run it spawned is terminal.
type Submission struct {
	ent.Schema
}

// Mixin of the Submission.
func (Submission) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Submission.
func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id").
			NotEmpty().
			Immutable(),
		field.String("company_id").
			Optional().
			Immutable(),
		field.String("blueprint_id").
			NotEmpty().
			Immutable(),
		field.JSON("entities", []map[string]interface{}{}).
			Immutable(),
		field.Enum("status").
			Values("PENDING", "PROCESSING", "COMPLETED", "FAILED", "CANCELLED").
			Default("PENDING"),
		// Fan-out recursion bound for every run in this submission.
		field.Int("max_depth").
			Default(3).
			Min(0),
		field.Bool("cancel_requested").
			Default(false),
	}
}

// Edges of the Submission.
func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("org", Org.Type).
			Ref("submissions").
			Field("org_id").
			Unique().
			Required().
			Immutable(),
		edge.To("runs", PipelineRun.Type),
	}
}

// Indexes of the Submission.
func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "status"),
		index.Fields("blueprint_id"),
		index.Fields("created_at"),
	}
}
