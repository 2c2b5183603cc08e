// Code generated by ent, DO NOT EDIT.

package blueprintstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"waterline.io/waterline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldPosition, v))
}

// OperationID applies equality check predicate on the "operation_id" field. It's identical to OperationIDEQ.
func OperationID(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldOperationID, v))
}

// FanOut applies equality check predicate on the "fan_out" field. It's identical to FanOutEQ.
func FanOut(v bool) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldFanOut, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldIsEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLTE(FieldUpdatedAt, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLTE(FieldPosition, v))
}

// OperationIDEQ applies the EQ predicate on the "operation_id" field.
func OperationIDEQ(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldOperationID, v))
}

// OperationIDNEQ applies the NEQ predicate on the "operation_id" field.
func OperationIDNEQ(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNEQ(FieldOperationID, v))
}

// OperationIDIn applies the In predicate on the "operation_id" field.
func OperationIDIn(vs ...string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldIn(FieldOperationID, vs...))
}

// OperationIDNotIn applies the NotIn predicate on the "operation_id" field.
func OperationIDNotIn(vs ...string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNotIn(FieldOperationID, vs...))
}

// OperationIDGT applies the GT predicate on the "operation_id" field.
func OperationIDGT(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGT(FieldOperationID, v))
}

// OperationIDGTE applies the GTE predicate on the "operation_id" field.
func OperationIDGTE(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldGTE(FieldOperationID, v))
}

// OperationIDLT applies the LT predicate on the "operation_id" field.
func OperationIDLT(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLT(FieldOperationID, v))
}

// OperationIDLTE applies the LTE predicate on the "operation_id" field.
func OperationIDLTE(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldLTE(FieldOperationID, v))
}

// OperationIDContains applies the Contains predicate on the "operation_id" field.
func OperationIDContains(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldContains(FieldOperationID, v))
}

// OperationIDHasPrefix applies the HasPrefix predicate on the "operation_id" field.
func OperationIDHasPrefix(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldHasPrefix(FieldOperationID, v))
}

// OperationIDHasSuffix applies the HasSuffix predicate on the "operation_id" field.
func OperationIDHasSuffix(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldHasSuffix(FieldOperationID, v))
}

// OperationIDEqualFold applies the EqualFold predicate on the "operation_id" field.
func OperationIDEqualFold(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEqualFold(FieldOperationID, v))
}

// OperationIDContainsFold applies the ContainsFold predicate on the "operation_id" field.
func OperationIDContainsFold(v string) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldContainsFold(FieldOperationID, v))
}

// StepConfigIsNil applies the IsNil predicate on the "step_config" field.
func StepConfigIsNil() predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldIsNull(FieldStepConfig))
}

// StepConfigNotNil applies the NotNil predicate on the "step_config" field.
func StepConfigNotNil() predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNotNull(FieldStepConfig))
}

// FanOutEQ applies the EQ predicate on the "fan_out" field.
func FanOutEQ(v bool) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldFanOut, v))
}

// FanOutNEQ applies the NEQ predicate on the "fan_out" field.
func FanOutNEQ(v bool) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNEQ(FieldFanOut, v))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNEQ(FieldIsEnabled, v))
}

// SkipIfFreshIsNil applies the IsNil predicate on the "skip_if_fresh" field.
func SkipIfFreshIsNil() predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldIsNull(FieldSkipIfFresh))
}

// SkipIfFreshNotNil applies the NotNil predicate on the "skip_if_fresh" field.
func SkipIfFreshNotNil() predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.FieldNotNull(FieldSkipIfFresh))
}

// HasBlueprint applies the HasEdge predicate on the "blueprint" edge.
func HasBlueprint() predicate.BlueprintStep {
	return predicate.BlueprintStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BlueprintTable, BlueprintColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlueprintWith applies the HasEdge predicate on the "blueprint" edge with a given conditions (other predicates).
func HasBlueprintWith(preds ...predicate.Blueprint) predicate.BlueprintStep {
	return predicate.BlueprintStep(func(s *sql.Selector) {
		step := newBlueprintStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlueprintStep) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlueprintStep) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlueprintStep) predicate.BlueprintStep {
	return predicate.BlueprintStep(sql.NotPredicates(p))
}
