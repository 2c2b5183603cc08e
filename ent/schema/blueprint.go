package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Blueprint holds the schema definition for a named enrichment recipe.
// Pipeline runs copy the steps by value at submission time, so edits to a
// blueprint never mutate in-flight runs.
type Blueprint struct {
	ent.Schema
}

// Mixin of the Blueprint.
func (Blueprint) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Blueprint.
func (Blueprint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Bool("is_active").
			Default(true),
	}
}

// Edges of the Blueprint.
func (Blueprint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("org", Org.Type).
			Ref("blueprints").
			Field("org_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", BlueprintStep.Type),
	}
}

// Indexes of the Blueprint.
func (Blueprint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "name").Unique(),
		index.Fields("is_active"),
	}
}
