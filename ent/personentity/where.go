// Code generated by ent, DO NOT EDIT.

package personentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldOrgID, v))
}

// RecordVersion applies equality check predicate on the "record_version" field. It's identical to RecordVersionEQ.
func RecordVersion(v int) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldRecordVersion, v))
}

// LinkedinURL applies equality check predicate on the "linkedin_url" field. It's identical to LinkedinURLEQ.
func LinkedinURL(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldLinkedinURL, v))
}

// WorkEmail applies equality check predicate on the "work_email" field. It's identical to WorkEmailEQ.
func WorkEmail(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldWorkEmail, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldFullName, v))
}

// LastEnrichedAt applies equality check predicate on the "last_enriched_at" field. It's identical to LastEnrichedAtEQ.
func LastEnrichedAt(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldLastEnrichedAt, v))
}

// LastRunID applies equality check predicate on the "last_run_id" field. It's identical to LastRunIDEQ.
func LastRunID(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldLastRunID, v))
}

// LastOperationID applies equality check predicate on the "last_operation_id" field. It's identical to LastOperationIDEQ.
func LastOperationID(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldLastOperationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContainsFold(FieldOrgID, v))
}

// RecordVersionEQ applies the EQ predicate on the "record_version" field.
func RecordVersionEQ(v int) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldRecordVersion, v))
}

// RecordVersionNEQ applies the NEQ predicate on the "record_version" field.
func RecordVersionNEQ(v int) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldRecordVersion, v))
}

// RecordVersionIn applies the In predicate on the "record_version" field.
func RecordVersionIn(vs ...int) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldRecordVersion, vs...))
}

// RecordVersionNotIn applies the NotIn predicate on the "record_version" field.
func RecordVersionNotIn(vs ...int) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldRecordVersion, vs...))
}

// RecordVersionGT applies the GT predicate on the "record_version" field.
func RecordVersionGT(v int) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldRecordVersion, v))
}

// RecordVersionGTE applies the GTE predicate on the "record_version" field.
func RecordVersionGTE(v int) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldRecordVersion, v))
}

// RecordVersionLT applies the LT predicate on the "record_version" field.
func RecordVersionLT(v int) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldRecordVersion, v))
}

// RecordVersionLTE applies the LTE predicate on the "record_version" field.
func RecordVersionLTE(v int) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldRecordVersion, v))
}

// LinkedinURLEQ applies the EQ predicate on the "linkedin_url" field.
func LinkedinURLEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldLinkedinURL, v))
}

// LinkedinURLNEQ applies the NEQ predicate on the "linkedin_url" field.
func LinkedinURLNEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldLinkedinURL, v))
}

// LinkedinURLIn applies the In predicate on the "linkedin_url" field.
func LinkedinURLIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldLinkedinURL, vs...))
}

// LinkedinURLNotIn applies the NotIn predicate on the "linkedin_url" field.
func LinkedinURLNotIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldLinkedinURL, vs...))
}

// LinkedinURLGT applies the GT predicate on the "linkedin_url" field.
func LinkedinURLGT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldLinkedinURL, v))
}

// LinkedinURLGTE applies the GTE predicate on the "linkedin_url" field.
func LinkedinURLGTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldLinkedinURL, v))
}

// LinkedinURLLT applies the LT predicate on the "linkedin_url" field.
func LinkedinURLLT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldLinkedinURL, v))
}

// LinkedinURLLTE applies the LTE predicate on the "linkedin_url" field.
func LinkedinURLLTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldLinkedinURL, v))
}

// LinkedinURLContains applies the Contains predicate on the "linkedin_url" field.
func LinkedinURLContains(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContains(FieldLinkedinURL, v))
}

// LinkedinURLHasPrefix applies the HasPrefix predicate on the "linkedin_url" field.
func LinkedinURLHasPrefix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasPrefix(FieldLinkedinURL, v))
}

// LinkedinURLHasSuffix applies the HasSuffix predicate on the "linkedin_url" field.
func LinkedinURLHasSuffix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasSuffix(FieldLinkedinURL, v))
}

// LinkedinURLIsNil applies the IsNil predicate on the "linkedin_url" field.
func LinkedinURLIsNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIsNull(FieldLinkedinURL))
}

// LinkedinURLNotNil applies the NotNil predicate on the "linkedin_url" field.
func LinkedinURLNotNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotNull(FieldLinkedinURL))
}

// LinkedinURLEqualFold applies the EqualFold predicate on the "linkedin_url" field.
func LinkedinURLEqualFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEqualFold(FieldLinkedinURL, v))
}

// LinkedinURLContainsFold applies the ContainsFold predicate on the "linkedin_url" field.
func LinkedinURLContainsFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContainsFold(FieldLinkedinURL, v))
}

// WorkEmailEQ applies the EQ predicate on the "work_email" field.
func WorkEmailEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldWorkEmail, v))
}

// WorkEmailNEQ applies the NEQ predicate on the "work_email" field.
func WorkEmailNEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldWorkEmail, v))
}

// WorkEmailIn applies the In predicate on the "work_email" field.
func WorkEmailIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldWorkEmail, vs...))
}

// WorkEmailNotIn applies the NotIn predicate on the "work_email" field.
func WorkEmailNotIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldWorkEmail, vs...))
}

// WorkEmailGT applies the GT predicate on the "work_email" field.
func WorkEmailGT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldWorkEmail, v))
}

// WorkEmailGTE applies the GTE predicate on the "work_email" field.
func WorkEmailGTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldWorkEmail, v))
}

// WorkEmailLT applies the LT predicate on the "work_email" field.
func WorkEmailLT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldWorkEmail, v))
}

// WorkEmailLTE applies the LTE predicate on the "work_email" field.
func WorkEmailLTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldWorkEmail, v))
}

// WorkEmailContains applies the Contains predicate on the "work_email" field.
func WorkEmailContains(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContains(FieldWorkEmail, v))
}

// WorkEmailHasPrefix applies the HasPrefix predicate on the "work_email" field.
func WorkEmailHasPrefix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasPrefix(FieldWorkEmail, v))
}

// WorkEmailHasSuffix applies the HasSuffix predicate on the "work_email" field.
func WorkEmailHasSuffix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasSuffix(FieldWorkEmail, v))
}

// WorkEmailIsNil applies the IsNil predicate on the "work_email" field.
func WorkEmailIsNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIsNull(FieldWorkEmail))
}

// WorkEmailNotNil applies the NotNil predicate on the "work_email" field.
func WorkEmailNotNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotNull(FieldWorkEmail))
}

// WorkEmailEqualFold applies the EqualFold predicate on the "work_email" field.
func WorkEmailEqualFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEqualFold(FieldWorkEmail, v))
}

// WorkEmailContainsFold applies the ContainsFold predicate on the "work_email" field.
func WorkEmailContainsFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContainsFold(FieldWorkEmail, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameIsNil applies the IsNil predicate on the "full_name" field.
func FullNameIsNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIsNull(FieldFullName))
}

// FullNameNotNil applies the NotNil predicate on the "full_name" field.
func FullNameNotNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotNull(FieldFullName))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContainsFold(FieldFullName, v))
}

// LastEnrichedAtEQ applies the EQ predicate on the "last_enriched_at" field.
func LastEnrichedAtEQ(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldLastEnrichedAt, v))
}

// LastEnrichedAtNEQ applies the NEQ predicate on the "last_enriched_at" field.
func LastEnrichedAtNEQ(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldLastEnrichedAt, v))
}

// LastEnrichedAtIn applies the In predicate on the "last_enriched_at" field.
func LastEnrichedAtIn(vs ...time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldLastEnrichedAt, vs...))
}

// LastEnrichedAtNotIn applies the NotIn predicate on the "last_enriched_at" field.
func LastEnrichedAtNotIn(vs ...time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldLastEnrichedAt, vs...))
}

// LastEnrichedAtGT applies the GT predicate on the "last_enriched_at" field.
func LastEnrichedAtGT(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldLastEnrichedAt, v))
}

// LastEnrichedAtGTE applies the GTE predicate on the "last_enriched_at" field.
func LastEnrichedAtGTE(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldLastEnrichedAt, v))
}

// LastEnrichedAtLT applies the LT predicate on the "last_enriched_at" field.
func LastEnrichedAtLT(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldLastEnrichedAt, v))
}

// LastEnrichedAtLTE applies the LTE predicate on the "last_enriched_at" field.
func LastEnrichedAtLTE(v time.Time) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldLastEnrichedAt, v))
}

// LastEnrichedAtIsNil applies the IsNil predicate on the "last_enriched_at" field.
func LastEnrichedAtIsNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIsNull(FieldLastEnrichedAt))
}

// LastEnrichedAtNotNil applies the NotNil predicate on the "last_enriched_at" field.
func LastEnrichedAtNotNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotNull(FieldLastEnrichedAt))
}

// LastRunIDEQ applies the EQ predicate on the "last_run_id" field.
func LastRunIDEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldLastRunID, v))
}

// LastRunIDNEQ applies the NEQ predicate on the "last_run_id" field.
func LastRunIDNEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldLastRunID, v))
}

// LastRunIDIn applies the In predicate on the "last_run_id" field.
func LastRunIDIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldLastRunID, vs...))
}

// LastRunIDNotIn applies the NotIn predicate on the "last_run_id" field.
func LastRunIDNotIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldLastRunID, vs...))
}

// LastRunIDGT applies the GT predicate on the "last_run_id" field.
func LastRunIDGT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldLastRunID, v))
}

// LastRunIDGTE applies the GTE predicate on the "last_run_id" field.
func LastRunIDGTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldLastRunID, v))
}

// LastRunIDLT applies the LT predicate on the "last_run_id" field.
func LastRunIDLT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldLastRunID, v))
}

// LastRunIDLTE applies the LTE predicate on the "last_run_id" field.
func LastRunIDLTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldLastRunID, v))
}

// LastRunIDContains applies the Contains predicate on the "last_run_id" field.
func LastRunIDContains(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContains(FieldLastRunID, v))
}

// LastRunIDHasPrefix applies the HasPrefix predicate on the "last_run_id" field.
func LastRunIDHasPrefix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasPrefix(FieldLastRunID, v))
}

// LastRunIDHasSuffix applies the HasSuffix predicate on the "last_run_id" field.
func LastRunIDHasSuffix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasSuffix(FieldLastRunID, v))
}

// LastRunIDIsNil applies the IsNil predicate on the "last_run_id" field.
func LastRunIDIsNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIsNull(FieldLastRunID))
}

// LastRunIDNotNil applies the NotNil predicate on the "last_run_id" field.
func LastRunIDNotNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotNull(FieldLastRunID))
}

// LastRunIDEqualFold applies the EqualFold predicate on the "last_run_id" field.
func LastRunIDEqualFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEqualFold(FieldLastRunID, v))
}

// LastRunIDContainsFold applies the ContainsFold predicate on the "last_run_id" field.
func LastRunIDContainsFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContainsFold(FieldLastRunID, v))
}

// LastOperationIDEQ applies the EQ predicate on the "last_operation_id" field.
func LastOperationIDEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEQ(FieldLastOperationID, v))
}

// LastOperationIDNEQ applies the NEQ predicate on the "last_operation_id" field.
func LastOperationIDNEQ(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNEQ(FieldLastOperationID, v))
}

// LastOperationIDIn applies the In predicate on the "last_operation_id" field.
func LastOperationIDIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIn(FieldLastOperationID, vs...))
}

// LastOperationIDNotIn applies the NotIn predicate on the "last_operation_id" field.
func LastOperationIDNotIn(vs ...string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotIn(FieldLastOperationID, vs...))
}

// LastOperationIDGT applies the GT predicate on the "last_operation_id" field.
func LastOperationIDGT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGT(FieldLastOperationID, v))
}

// LastOperationIDGTE applies the GTE predicate on the "last_operation_id" field.
func LastOperationIDGTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldGTE(FieldLastOperationID, v))
}

// LastOperationIDLT applies the LT predicate on the "last_operation_id" field.
func LastOperationIDLT(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLT(FieldLastOperationID, v))
}

// LastOperationIDLTE applies the LTE predicate on the "last_operation_id" field.
func LastOperationIDLTE(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldLTE(FieldLastOperationID, v))
}

// LastOperationIDContains applies the Contains predicate on the "last_operation_id" field.
func LastOperationIDContains(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContains(FieldLastOperationID, v))
}

// LastOperationIDHasPrefix applies the HasPrefix predicate on the "last_operation_id" field.
func LastOperationIDHasPrefix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasPrefix(FieldLastOperationID, v))
}

// LastOperationIDHasSuffix applies the HasSuffix predicate on the "last_operation_id" field.
func LastOperationIDHasSuffix(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldHasSuffix(FieldLastOperationID, v))
}

// LastOperationIDIsNil applies the IsNil predicate on the "last_operation_id" field.
func LastOperationIDIsNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIsNull(FieldLastOperationID))
}

// LastOperationIDNotNil applies the NotNil predicate on the "last_operation_id" field.
func LastOperationIDNotNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotNull(FieldLastOperationID))
}

// LastOperationIDEqualFold applies the EqualFold predicate on the "last_operation_id" field.
func LastOperationIDEqualFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldEqualFold(FieldLastOperationID, v))
}

// LastOperationIDContainsFold applies the ContainsFold predicate on the "last_operation_id" field.
func LastOperationIDContainsFold(v string) predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldContainsFold(FieldLastOperationID, v))
}

// SourceProvidersIsNil applies the IsNil predicate on the "source_providers" field.
func SourceProvidersIsNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldIsNull(FieldSourceProviders))
}

// SourceProvidersNotNil applies the NotNil predicate on the "source_providers" field.
func SourceProvidersNotNil() predicate.PersonEntity {
	return predicate.PersonEntity(sql.FieldNotNull(FieldSourceProviders))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PersonEntity) predicate.PersonEntity {
	return predicate.PersonEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PersonEntity) predicate.PersonEntity {
	return predicate.PersonEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PersonEntity) predicate.PersonEntity {
	return predicate.PersonEntity(sql.NotPredicates(p))
}
