package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Org holds the schema definition for a tenant organization.
// Every other row in the system carries an org_id; the org row is the
// isolation boundary for all queries.
type Org struct {
	ent.Schema
}

// Mixin of the Org.
func (Org) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Org.
func (Org) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Bool("is_active").
			Default(true),
	}
}

// Edges of the Org.
func (Org) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("blueprints", Blueprint.Type),
		edge.To("submissions", Submission.Type),
	}
}
