package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlueprintStep holds the schema definition for one position in a blueprint.
type BlueprintStep struct {
	ent.Schema
}

// Mixin of the BlueprintStep.
func (BlueprintStep) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the BlueprintStep.
func (BlueprintStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Int("position").
			Min(1), // 1..N, unique per blueprint
		field.String("operation_id").
			NotEmpty(), // dotted id, e.g. "company.enrich.tech_stack"
		field.JSON("step_config", map[string]interface{}{}).
			Optional(),
		field.Bool("fan_out").
			Default(false),
		field.Bool("is_enabled").
			Default(true),
		// {"max_age_hours": N, "identity_fields": [...]} when configured.
		field.JSON("skip_if_fresh", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the BlueprintStep.
func (BlueprintStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("blueprint", Blueprint.Type).
			Ref("steps").
			Unique().
			Required(),
	}
}

// Indexes of the BlueprintStep.
func (BlueprintStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position").
			Edges("blueprint").
			Unique(),
	}
}
