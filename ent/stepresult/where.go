// Code generated by ent, DO NOT EDIT.

package stepresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"waterline.io/waterline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldCreatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldOrgID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldPosition, v))
}

// OperationID applies equality check predicate on the "operation_id" field. It's identical to OperationIDEQ.
func OperationID(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldOperationID, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldAttemptNumber, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldErrorMessage, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldSkipReason, v))
}

// ChildrenSpawned applies equality check predicate on the "children_spawned" field. It's identical to ChildrenSpawnedEQ.
func ChildrenSpawned(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldChildrenSpawned, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldCreatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldOrgID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldPosition, v))
}

// OperationIDEQ applies the EQ predicate on the "operation_id" field.
func OperationIDEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldOperationID, v))
}

// OperationIDNEQ applies the NEQ predicate on the "operation_id" field.
func OperationIDNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldOperationID, v))
}

// OperationIDIn applies the In predicate on the "operation_id" field.
func OperationIDIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldOperationID, vs...))
}

// OperationIDNotIn applies the NotIn predicate on the "operation_id" field.
func OperationIDNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldOperationID, vs...))
}

// OperationIDGT applies the GT predicate on the "operation_id" field.
func OperationIDGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldOperationID, v))
}

// OperationIDGTE applies the GTE predicate on the "operation_id" field.
func OperationIDGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldOperationID, v))
}

// OperationIDLT applies the LT predicate on the "operation_id" field.
func OperationIDLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldOperationID, v))
}

// OperationIDLTE applies the LTE predicate on the "operation_id" field.
func OperationIDLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldOperationID, v))
}

// OperationIDContains applies the Contains predicate on the "operation_id" field.
func OperationIDContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldOperationID, v))
}

// OperationIDHasPrefix applies the HasPrefix predicate on the "operation_id" field.
func OperationIDHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldOperationID, v))
}

// OperationIDHasSuffix applies the HasSuffix predicate on the "operation_id" field.
func OperationIDHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldOperationID, v))
}

// OperationIDEqualFold applies the EqualFold predicate on the "operation_id" field.
func OperationIDEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldOperationID, v))
}

// OperationIDContainsFold applies the ContainsFold predicate on the "operation_id" field.
func OperationIDContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldOperationID, v))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldAttemptNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldStatus, vs...))
}

// InputPayloadIsNil applies the IsNil predicate on the "input_payload" field.
func InputPayloadIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldInputPayload))
}

// InputPayloadNotNil applies the NotNil predicate on the "input_payload" field.
func InputPayloadNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldInputPayload))
}

// OutputPayloadIsNil applies the IsNil predicate on the "output_payload" field.
func OutputPayloadIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldOutputPayload))
}

// OutputPayloadNotNil applies the NotNil predicate on the "output_payload" field.
func OutputPayloadNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldOutputPayload))
}

// ProviderAttemptsIsNil applies the IsNil predicate on the "provider_attempts" field.
func ProviderAttemptsIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldProviderAttempts))
}

// ProviderAttemptsNotNil applies the NotNil predicate on the "provider_attempts" field.
func ProviderAttemptsNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldProviderAttempts))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.StepResult {
	return predicate.StepResult(sql.FieldContainsFold(FieldSkipReason, v))
}

// ChildrenSpawnedEQ applies the EQ predicate on the "children_spawned" field.
func ChildrenSpawnedEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldEQ(FieldChildrenSpawned, v))
}

// ChildrenSpawnedNEQ applies the NEQ predicate on the "children_spawned" field.
func ChildrenSpawnedNEQ(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNEQ(FieldChildrenSpawned, v))
}

// ChildrenSpawnedIn applies the In predicate on the "children_spawned" field.
func ChildrenSpawnedIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldIn(FieldChildrenSpawned, vs...))
}

// ChildrenSpawnedNotIn applies the NotIn predicate on the "children_spawned" field.
func ChildrenSpawnedNotIn(vs ...int) predicate.StepResult {
	return predicate.StepResult(sql.FieldNotIn(FieldChildrenSpawned, vs...))
}

// ChildrenSpawnedGT applies the GT predicate on the "children_spawned" field.
func ChildrenSpawnedGT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGT(FieldChildrenSpawned, v))
}

// ChildrenSpawnedGTE applies the GTE predicate on the "children_spawned" field.
func ChildrenSpawnedGTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldGTE(FieldChildrenSpawned, v))
}

// ChildrenSpawnedLT applies the LT predicate on the "children_spawned" field.
func ChildrenSpawnedLT(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLT(FieldChildrenSpawned, v))
}

// ChildrenSpawnedLTE applies the LTE predicate on the "children_spawned" field.
func ChildrenSpawnedLTE(v int) predicate.StepResult {
	return predicate.StepResult(sql.FieldLTE(FieldChildrenSpawned, v))
}

// ChildrenSpawnedIsNil applies the IsNil predicate on the "children_spawned" field.
func ChildrenSpawnedIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldChildrenSpawned))
}

// ChildrenSpawnedNotNil applies the NotNil predicate on the "children_spawned" field.
func ChildrenSpawnedNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldChildrenSpawned))
}

// SkippedDuplicatesIsNil applies the IsNil predicate on the "skipped_duplicates" field.
func SkippedDuplicatesIsNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldIsNull(FieldSkippedDuplicates))
}

// SkippedDuplicatesNotNil applies the NotNil predicate on the "skipped_duplicates" field.
func SkippedDuplicatesNotNil() predicate.StepResult {
	return predicate.StepResult(sql.FieldNotNull(FieldSkippedDuplicates))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.StepResult {
	return predicate.StepResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.PipelineRun) predicate.StepResult {
	return predicate.StepResult(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepResult) predicate.StepResult {
	return predicate.StepResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepResult) predicate.StepResult {
	return predicate.StepResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepResult) predicate.StepResult {
	return predicate.StepResult(sql.NotPredicates(p))
}
