// Code generated by ent, DO NOT EDIT.

package entitysnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldOrgID, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldEntityID, v))
}

// RecordVersion applies equality check predicate on the "record_version" field. It's identical to RecordVersionEQ.
func RecordVersion(v int) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldRecordVersion, v))
}

// SourceRunID applies equality check predicate on the "source_run_id" field. It's identical to SourceRunIDEQ.
func SourceRunID(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldSourceRunID, v))
}

// CapturedAt applies equality check predicate on the "captured_at" field. It's identical to CapturedAtEQ.
func CapturedAt(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldCapturedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldContainsFold(FieldOrgID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldContainsFold(FieldEntityID, v))
}

// RecordVersionEQ applies the EQ predicate on the "record_version" field.
func RecordVersionEQ(v int) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldRecordVersion, v))
}

// RecordVersionNEQ applies the NEQ predicate on the "record_version" field.
func RecordVersionNEQ(v int) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNEQ(FieldRecordVersion, v))
}

// RecordVersionIn applies the In predicate on the "record_version" field.
func RecordVersionIn(vs ...int) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldIn(FieldRecordVersion, vs...))
}

// RecordVersionNotIn applies the NotIn predicate on the "record_version" field.
func RecordVersionNotIn(vs ...int) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNotIn(FieldRecordVersion, vs...))
}

// RecordVersionGT applies the GT predicate on the "record_version" field.
func RecordVersionGT(v int) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGT(FieldRecordVersion, v))
}

// RecordVersionGTE applies the GTE predicate on the "record_version" field.
func RecordVersionGTE(v int) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGTE(FieldRecordVersion, v))
}

// RecordVersionLT applies the LT predicate on the "record_version" field.
func RecordVersionLT(v int) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLT(FieldRecordVersion, v))
}

// RecordVersionLTE applies the LTE predicate on the "record_version" field.
func RecordVersionLTE(v int) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLTE(FieldRecordVersion, v))
}

// SourceRunIDEQ applies the EQ predicate on the "source_run_id" field.
func SourceRunIDEQ(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldSourceRunID, v))
}

// SourceRunIDNEQ applies the NEQ predicate on the "source_run_id" field.
func SourceRunIDNEQ(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNEQ(FieldSourceRunID, v))
}

// SourceRunIDIn applies the In predicate on the "source_run_id" field.
func SourceRunIDIn(vs ...string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldIn(FieldSourceRunID, vs...))
}

// SourceRunIDNotIn applies the NotIn predicate on the "source_run_id" field.
func SourceRunIDNotIn(vs ...string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNotIn(FieldSourceRunID, vs...))
}

// SourceRunIDGT applies the GT predicate on the "source_run_id" field.
func SourceRunIDGT(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGT(FieldSourceRunID, v))
}

// SourceRunIDGTE applies the GTE predicate on the "source_run_id" field.
func SourceRunIDGTE(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGTE(FieldSourceRunID, v))
}

// SourceRunIDLT applies the LT predicate on the "source_run_id" field.
func SourceRunIDLT(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLT(FieldSourceRunID, v))
}

// SourceRunIDLTE applies the LTE predicate on the "source_run_id" field.
func SourceRunIDLTE(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLTE(FieldSourceRunID, v))
}

// SourceRunIDContains applies the Contains predicate on the "source_run_id" field.
func SourceRunIDContains(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldContains(FieldSourceRunID, v))
}

// SourceRunIDHasPrefix applies the HasPrefix predicate on the "source_run_id" field.
func SourceRunIDHasPrefix(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldHasPrefix(FieldSourceRunID, v))
}

// SourceRunIDHasSuffix applies the HasSuffix predicate on the "source_run_id" field.
func SourceRunIDHasSuffix(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldHasSuffix(FieldSourceRunID, v))
}

// SourceRunIDIsNil applies the IsNil predicate on the "source_run_id" field.
func SourceRunIDIsNil() predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldIsNull(FieldSourceRunID))
}

// SourceRunIDNotNil applies the NotNil predicate on the "source_run_id" field.
func SourceRunIDNotNil() predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNotNull(FieldSourceRunID))
}

// SourceRunIDEqualFold applies the EqualFold predicate on the "source_run_id" field.
func SourceRunIDEqualFold(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEqualFold(FieldSourceRunID, v))
}

// SourceRunIDContainsFold applies the ContainsFold predicate on the "source_run_id" field.
func SourceRunIDContainsFold(v string) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldContainsFold(FieldSourceRunID, v))
}

// CapturedAtEQ applies the EQ predicate on the "captured_at" field.
func CapturedAtEQ(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldEQ(FieldCapturedAt, v))
}

// CapturedAtNEQ applies the NEQ predicate on the "captured_at" field.
func CapturedAtNEQ(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNEQ(FieldCapturedAt, v))
}

// CapturedAtIn applies the In predicate on the "captured_at" field.
func CapturedAtIn(vs ...time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldIn(FieldCapturedAt, vs...))
}

// CapturedAtNotIn applies the NotIn predicate on the "captured_at" field.
func CapturedAtNotIn(vs ...time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldNotIn(FieldCapturedAt, vs...))
}

// CapturedAtGT applies the GT predicate on the "captured_at" field.
func CapturedAtGT(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGT(FieldCapturedAt, v))
}

// CapturedAtGTE applies the GTE predicate on the "captured_at" field.
func CapturedAtGTE(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldGTE(FieldCapturedAt, v))
}

// CapturedAtLT applies the LT predicate on the "captured_at" field.
func CapturedAtLT(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLT(FieldCapturedAt, v))
}

// CapturedAtLTE applies the LTE predicate on the "captured_at" field.
func CapturedAtLTE(v time.Time) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.FieldLTE(FieldCapturedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntitySnapshot) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntitySnapshot) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntitySnapshot) predicate.EntitySnapshot {
	return predicate.EntitySnapshot(sql.NotPredicates(p))
}
