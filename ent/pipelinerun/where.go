// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"waterline.io/waterline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldOrgID, v))
}

// ParentRunID applies equality check predicate on the "parent_run_id" field. It's identical to ParentRunIDEQ.
func ParentRunID(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldParentRunID, v))
}

// TriggerRunID applies equality check predicate on the "trigger_run_id" field. It's identical to TriggerRunIDEQ.
func TriggerRunID(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldTriggerRunID, v))
}

// EntityIndex applies equality check predicate on the "entity_index" field. It's identical to EntityIndexEQ.
func EntityIndex(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldEntityIndex, v))
}

// CurrentPosition applies equality check predicate on the "current_position" field. It's identical to CurrentPositionEQ.
func CurrentPosition(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCurrentPosition, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldDepth, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldFinishedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldOrgID, v))
}

// ParentRunIDEQ applies the EQ predicate on the "parent_run_id" field.
func ParentRunIDEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldParentRunID, v))
}

// ParentRunIDNEQ applies the NEQ predicate on the "parent_run_id" field.
func ParentRunIDNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldParentRunID, v))
}

// ParentRunIDIn applies the In predicate on the "parent_run_id" field.
func ParentRunIDIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldParentRunID, vs...))
}

// ParentRunIDNotIn applies the NotIn predicate on the "parent_run_id" field.
func ParentRunIDNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldParentRunID, vs...))
}

// ParentRunIDGT applies the GT predicate on the "parent_run_id" field.
func ParentRunIDGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldParentRunID, v))
}

// ParentRunIDGTE applies the GTE predicate on the "parent_run_id" field.
func ParentRunIDGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldParentRunID, v))
}

// ParentRunIDLT applies the LT predicate on the "parent_run_id" field.
func ParentRunIDLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldParentRunID, v))
}

// ParentRunIDLTE applies the LTE predicate on the "parent_run_id" field.
func ParentRunIDLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldParentRunID, v))
}

// ParentRunIDContains applies the Contains predicate on the "parent_run_id" field.
func ParentRunIDContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldParentRunID, v))
}

// ParentRunIDHasPrefix applies the HasPrefix predicate on the "parent_run_id" field.
func ParentRunIDHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldParentRunID, v))
}

// ParentRunIDHasSuffix applies the HasSuffix predicate on the "parent_run_id" field.
func ParentRunIDHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldParentRunID, v))
}

// ParentRunIDIsNil applies the IsNil predicate on the "parent_run_id" field.
func ParentRunIDIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldParentRunID))
}

// ParentRunIDNotNil applies the NotNil predicate on the "parent_run_id" field.
func ParentRunIDNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldParentRunID))
}

// ParentRunIDEqualFold applies the EqualFold predicate on the "parent_run_id" field.
func ParentRunIDEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldParentRunID, v))
}

// ParentRunIDContainsFold applies the ContainsFold predicate on the "parent_run_id" field.
func ParentRunIDContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldParentRunID, v))
}

// TriggerRunIDEQ applies the EQ predicate on the "trigger_run_id" field.
func TriggerRunIDEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldTriggerRunID, v))
}

// TriggerRunIDNEQ applies the NEQ predicate on the "trigger_run_id" field.
func TriggerRunIDNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldTriggerRunID, v))
}

// TriggerRunIDIn applies the In predicate on the "trigger_run_id" field.
func TriggerRunIDIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldTriggerRunID, vs...))
}

// TriggerRunIDNotIn applies the NotIn predicate on the "trigger_run_id" field.
func TriggerRunIDNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldTriggerRunID, vs...))
}

// TriggerRunIDGT applies the GT predicate on the "trigger_run_id" field.
func TriggerRunIDGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldTriggerRunID, v))
}

// TriggerRunIDGTE applies the GTE predicate on the "trigger_run_id" field.
func TriggerRunIDGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldTriggerRunID, v))
}

// TriggerRunIDLT applies the LT predicate on the "trigger_run_id" field.
func TriggerRunIDLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldTriggerRunID, v))
}

// TriggerRunIDLTE applies the LTE predicate on the "trigger_run_id" field.
func TriggerRunIDLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldTriggerRunID, v))
}

// TriggerRunIDContains applies the Contains predicate on the "trigger_run_id" field.
func TriggerRunIDContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldTriggerRunID, v))
}

// TriggerRunIDHasPrefix applies the HasPrefix predicate on the "trigger_run_id" field.
func TriggerRunIDHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldTriggerRunID, v))
}

// TriggerRunIDHasSuffix applies the HasSuffix predicate on the "trigger_run_id" field.
func TriggerRunIDHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldTriggerRunID, v))
}

// TriggerRunIDIsNil applies the IsNil predicate on the "trigger_run_id" field.
func TriggerRunIDIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldTriggerRunID))
}

// TriggerRunIDNotNil applies the NotNil predicate on the "trigger_run_id" field.
func TriggerRunIDNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldTriggerRunID))
}

// TriggerRunIDEqualFold applies the EqualFold predicate on the "trigger_run_id" field.
func TriggerRunIDEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldTriggerRunID, v))
}

// TriggerRunIDContainsFold applies the ContainsFold predicate on the "trigger_run_id" field.
func TriggerRunIDContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldTriggerRunID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityIndexEQ applies the EQ predicate on the "entity_index" field.
func EntityIndexEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldEntityIndex, v))
}

// EntityIndexNEQ applies the NEQ predicate on the "entity_index" field.
func EntityIndexNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldEntityIndex, v))
}

// EntityIndexIn applies the In predicate on the "entity_index" field.
func EntityIndexIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldEntityIndex, vs...))
}

// EntityIndexNotIn applies the NotIn predicate on the "entity_index" field.
func EntityIndexNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldEntityIndex, vs...))
}

// EntityIndexGT applies the GT predicate on the "entity_index" field.
func EntityIndexGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldEntityIndex, v))
}

// EntityIndexGTE applies the GTE predicate on the "entity_index" field.
func EntityIndexGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldEntityIndex, v))
}

// EntityIndexLT applies the LT predicate on the "entity_index" field.
func EntityIndexLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldEntityIndex, v))
}

// EntityIndexLTE applies the LTE predicate on the "entity_index" field.
func EntityIndexLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldEntityIndex, v))
}

// CumulativeContextIsNil applies the IsNil predicate on the "cumulative_context" field.
func CumulativeContextIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldCumulativeContext))
}

// CumulativeContextNotNil applies the NotNil predicate on the "cumulative_context" field.
func CumulativeContextNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldCumulativeContext))
}

// CurrentPositionEQ applies the EQ predicate on the "current_position" field.
func CurrentPositionEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCurrentPosition, v))
}

// CurrentPositionNEQ applies the NEQ predicate on the "current_position" field.
func CurrentPositionNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCurrentPosition, v))
}

// CurrentPositionIn applies the In predicate on the "current_position" field.
func CurrentPositionIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCurrentPosition, vs...))
}

// CurrentPositionNotIn applies the NotIn predicate on the "current_position" field.
func CurrentPositionNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCurrentPosition, vs...))
}

// CurrentPositionGT applies the GT predicate on the "current_position" field.
func CurrentPositionGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCurrentPosition, v))
}

// CurrentPositionGTE applies the GTE predicate on the "current_position" field.
func CurrentPositionGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCurrentPosition, v))
}

// CurrentPositionLT applies the LT predicate on the "current_position" field.
func CurrentPositionLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCurrentPosition, v))
}

// CurrentPositionLTE applies the LTE predicate on the "current_position" field.
func CurrentPositionLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCurrentPosition, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldDepth, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldFinishedAt))
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.Submission) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStepResults applies the HasEdge predicate on the "step_results" edge.
func HasStepResults() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepResultsTable, StepResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepResultsWith applies the HasEdge predicate on the "step_results" edge with a given conditions (other predicates).
func HasStepResultsWith(preds ...predicate.StepResult) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newStepResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.NotPredicates(p))
}
