// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"waterline.io/waterline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOrgID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCompanyID, v))
}

// BlueprintID applies equality check predicate on the "blueprint_id" field. It's identical to BlueprintIDEQ.
func BlueprintID(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBlueprintID, v))
}

// MaxDepth applies equality check predicate on the "max_depth" field. It's identical to MaxDepthEQ.
func MaxDepth(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldMaxDepth, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCancelRequested, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldOrgID, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldCompanyID))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldCompanyID, v))
}

// BlueprintIDEQ applies the EQ predicate on the "blueprint_id" field.
func BlueprintIDEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBlueprintID, v))
}

// BlueprintIDNEQ applies the NEQ predicate on the "blueprint_id" field.
func BlueprintIDNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldBlueprintID, v))
}

// BlueprintIDIn applies the In predicate on the "blueprint_id" field.
func BlueprintIDIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldBlueprintID, vs...))
}

// BlueprintIDNotIn applies the NotIn predicate on the "blueprint_id" field.
func BlueprintIDNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldBlueprintID, vs...))
}

// BlueprintIDGT applies the GT predicate on the "blueprint_id" field.
func BlueprintIDGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldBlueprintID, v))
}

// BlueprintIDGTE applies the GTE predicate on the "blueprint_id" field.
func BlueprintIDGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldBlueprintID, v))
}

// BlueprintIDLT applies the LT predicate on the "blueprint_id" field.
func BlueprintIDLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldBlueprintID, v))
}

// BlueprintIDLTE applies the LTE predicate on the "blueprint_id" field.
func BlueprintIDLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldBlueprintID, v))
}

// BlueprintIDContains applies the Contains predicate on the "blueprint_id" field.
func BlueprintIDContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldBlueprintID, v))
}

// BlueprintIDHasPrefix applies the HasPrefix predicate on the "blueprint_id" field.
func BlueprintIDHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldBlueprintID, v))
}

// BlueprintIDHasSuffix applies the HasSuffix predicate on the "blueprint_id" field.
func BlueprintIDHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldBlueprintID, v))
}

// BlueprintIDEqualFold applies the EqualFold predicate on the "blueprint_id" field.
func BlueprintIDEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldBlueprintID, v))
}

// BlueprintIDContainsFold applies the ContainsFold predicate on the "blueprint_id" field.
func BlueprintIDContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldBlueprintID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// MaxDepthEQ applies the EQ predicate on the "max_depth" field.
func MaxDepthEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldMaxDepth, v))
}

// MaxDepthNEQ applies the NEQ predicate on the "max_depth" field.
func MaxDepthNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldMaxDepth, v))
}

// MaxDepthIn applies the In predicate on the "max_depth" field.
func MaxDepthIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldMaxDepth, vs...))
}

// MaxDepthNotIn applies the NotIn predicate on the "max_depth" field.
func MaxDepthNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldMaxDepth, vs...))
}

// MaxDepthGT applies the GT predicate on the "max_depth" field.
func MaxDepthGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldMaxDepth, v))
}

// MaxDepthGTE applies the GTE predicate on the "max_depth" field.
func MaxDepthGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldMaxDepth, v))
}

// MaxDepthLT applies the LT predicate on the "max_depth" field.
func MaxDepthLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldMaxDepth, v))
}

// MaxDepthLTE applies the LTE predicate on the "max_depth" field.
func MaxDepthLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldMaxDepth, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCancelRequested, v))
}

// HasOrg applies the HasEdge predicate on the "org" edge.
func HasOrg() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrgTable, OrgColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrgWith applies the HasEdge predicate on the "org" edge with a given conditions (other predicates).
func HasOrgWith(preds ...predicate.Org) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newOrgStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.PipelineRun) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
