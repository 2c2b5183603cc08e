package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for one end-to-end traversal of a
// blueprint for one entity. The blueprint steps are copied by value into
// blueprint_snapshot at creation and never change afterwards.
type PipelineRun struct {
	ent.Schema
}

// Mixin of the PipelineRun.
func (PipelineRun) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id").
			NotEmpty().
			Immutable(),
		field.String("parent_run_id").
			Optional().
			Immutable(), // set on fan-out children
		field.String("trigger_run_id").
			Optional().
			Immutable(),
		field.Enum("entity_type").
			Values("company", "person", "job").
			Immutable(),
		field.Int("entity_index").
			Default(0).
			Immutable(), // position of the seed entity within the submission
		field.JSON("blueprint_snapshot", []map[string]interface{}{}).
			Immutable(),
		field.JSON("entity_input", map[string]interface{}{}),
		field.JSON("cumulative_context", map[string]interface{}{}).
			Optional(),
		field.Int("current_position").
			Default(1).
			Min(1),
		field.Int("depth").
			Default(0).
			Min(0), // fan-out depth, bounded by submission max_depth
		field.Enum("status").
			Values("QUEUED", "RUNNING", "SUCCEEDED", "FAILED", "SKIPPED").
			Default("QUEUED"),
		field.String("error_message").
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PipelineRun.
func (PipelineRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("submission", Submission.Type).
			Ref("runs").
			Unique().
			Required().
			Immutable(),
		edge.To("step_results", StepResult.Type),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "status"),
		index.Fields("parent_run_id"),
		index.Fields("status"),
	}
}
