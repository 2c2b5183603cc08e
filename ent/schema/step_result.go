package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepResult holds the schema definition for the outcome of one step within
// one pipeline run. Rows are append-only; under at-least-once dispatch the
// same (run, position) can record multiple attempts, distinguished by
// attempt_number.
type StepResult struct {
	ent.Schema
}

// Mixin of the StepResult.
func (StepResult) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the StepResult.
func (StepResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id").
			NotEmpty().
			Immutable(),
		field.Int("position").
			Min(1).
			Immutable(),
		field.String("operation_id").
			NotEmpty().
			Immutable(),
		field.Int("attempt_number").
			Default(1).
			Min(1).
			Immutable(),
		field.Enum("status").
			Values("QUEUED", "RUNNING", "SUCCEEDED", "NOT_FOUND", "FAILED", "SKIPPED").
			Immutable(),
		field.JSON("input_payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("output_payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("provider_attempts", []map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("error_message").
			Optional().
			Immutable(),
		field.String("skip_reason").
			Optional().
			Immutable(),
		// Fan-out bookkeeping, populated only on fan-out steps.
		field.Int("children_spawned").
			Optional().
			Immutable(),
		field.JSON("skipped_duplicates", []string{}).
			Optional().
			Immutable(),
	}
}

// Edges of the StepResult.
func (StepResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("step_results").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StepResult.
func (StepResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position").
			Edges("run"),
		index.Fields("operation_id"),
	}
}
