// Code generated by ent, DO NOT EDIT.

package jobpostingentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldOrgID, v))
}

// RecordVersion applies equality check predicate on the "record_version" field. It's identical to RecordVersionEQ.
func RecordVersion(v int) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldRecordVersion, v))
}

// TheirstackJobID applies equality check predicate on the "theirstack_job_id" field. It's identical to TheirstackJobIDEQ.
func TheirstackJobID(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldTheirstackJobID, v))
}

// JobURL applies equality check predicate on the "job_url" field. It's identical to JobURLEQ.
func JobURL(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldJobURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldTitle, v))
}

// CompanyDomain applies equality check predicate on the "company_domain" field. It's identical to CompanyDomainEQ.
func CompanyDomain(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldCompanyDomain, v))
}

// LastEnrichedAt applies equality check predicate on the "last_enriched_at" field. It's identical to LastEnrichedAtEQ.
func LastEnrichedAt(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldLastEnrichedAt, v))
}

// LastRunID applies equality check predicate on the "last_run_id" field. It's identical to LastRunIDEQ.
func LastRunID(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldLastRunID, v))
}

// LastOperationID applies equality check predicate on the "last_operation_id" field. It's identical to LastOperationIDEQ.
func LastOperationID(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldLastOperationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContainsFold(FieldOrgID, v))
}

// RecordVersionEQ applies the EQ predicate on the "record_version" field.
func RecordVersionEQ(v int) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldRecordVersion, v))
}

// RecordVersionNEQ applies the NEQ predicate on the "record_version" field.
func RecordVersionNEQ(v int) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldRecordVersion, v))
}

// RecordVersionIn applies the In predicate on the "record_version" field.
func RecordVersionIn(vs ...int) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldRecordVersion, vs...))
}

// RecordVersionNotIn applies the NotIn predicate on the "record_version" field.
func RecordVersionNotIn(vs ...int) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldRecordVersion, vs...))
}

// RecordVersionGT applies the GT predicate on the "record_version" field.
func RecordVersionGT(v int) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldRecordVersion, v))
}

// RecordVersionGTE applies the GTE predicate on the "record_version" field.
func RecordVersionGTE(v int) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldRecordVersion, v))
}

// RecordVersionLT applies the LT predicate on the "record_version" field.
func RecordVersionLT(v int) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldRecordVersion, v))
}

// RecordVersionLTE applies the LTE predicate on the "record_version" field.
func RecordVersionLTE(v int) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldRecordVersion, v))
}

// TheirstackJobIDEQ applies the EQ predicate on the "theirstack_job_id" field.
func TheirstackJobIDEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldTheirstackJobID, v))
}

// TheirstackJobIDNEQ applies the NEQ predicate on the "theirstack_job_id" field.
func TheirstackJobIDNEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldTheirstackJobID, v))
}

// TheirstackJobIDIn applies the In predicate on the "theirstack_job_id" field.
func TheirstackJobIDIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldTheirstackJobID, vs...))
}

// TheirstackJobIDNotIn applies the NotIn predicate on the "theirstack_job_id" field.
func TheirstackJobIDNotIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldTheirstackJobID, vs...))
}

// TheirstackJobIDGT applies the GT predicate on the "theirstack_job_id" field.
func TheirstackJobIDGT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldTheirstackJobID, v))
}

// TheirstackJobIDGTE applies the GTE predicate on the "theirstack_job_id" field.
func TheirstackJobIDGTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldTheirstackJobID, v))
}

// TheirstackJobIDLT applies the LT predicate on the "theirstack_job_id" field.
func TheirstackJobIDLT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldTheirstackJobID, v))
}

// TheirstackJobIDLTE applies the LTE predicate on the "theirstack_job_id" field.
func TheirstackJobIDLTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldTheirstackJobID, v))
}

// TheirstackJobIDContains applies the Contains predicate on the "theirstack_job_id" field.
func TheirstackJobIDContains(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContains(FieldTheirstackJobID, v))
}

// TheirstackJobIDHasPrefix applies the HasPrefix predicate on the "theirstack_job_id" field.
func TheirstackJobIDHasPrefix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasPrefix(FieldTheirstackJobID, v))
}

// TheirstackJobIDHasSuffix applies the HasSuffix predicate on the "theirstack_job_id" field.
func TheirstackJobIDHasSuffix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasSuffix(FieldTheirstackJobID, v))
}

// TheirstackJobIDIsNil applies the IsNil predicate on the "theirstack_job_id" field.
func TheirstackJobIDIsNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIsNull(FieldTheirstackJobID))
}

// TheirstackJobIDNotNil applies the NotNil predicate on the "theirstack_job_id" field.
func TheirstackJobIDNotNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotNull(FieldTheirstackJobID))
}

// TheirstackJobIDEqualFold applies the EqualFold predicate on the "theirstack_job_id" field.
func TheirstackJobIDEqualFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEqualFold(FieldTheirstackJobID, v))
}

// TheirstackJobIDContainsFold applies the ContainsFold predicate on the "theirstack_job_id" field.
func TheirstackJobIDContainsFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContainsFold(FieldTheirstackJobID, v))
}

// JobURLEQ applies the EQ predicate on the "job_url" field.
func JobURLEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldJobURL, v))
}

// JobURLNEQ applies the NEQ predicate on the "job_url" field.
func JobURLNEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldJobURL, v))
}

// JobURLIn applies the In predicate on the "job_url" field.
func JobURLIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldJobURL, vs...))
}

// JobURLNotIn applies the NotIn predicate on the "job_url" field.
func JobURLNotIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldJobURL, vs...))
}

// JobURLGT applies the GT predicate on the "job_url" field.
func JobURLGT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldJobURL, v))
}

// JobURLGTE applies the GTE predicate on the "job_url" field.
func JobURLGTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldJobURL, v))
}

// JobURLLT applies the LT predicate on the "job_url" field.
func JobURLLT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldJobURL, v))
}

// JobURLLTE applies the LTE predicate on the "job_url" field.
func JobURLLTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldJobURL, v))
}

// JobURLContains applies the Contains predicate on the "job_url" field.
func JobURLContains(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContains(FieldJobURL, v))
}

// JobURLHasPrefix applies the HasPrefix predicate on the "job_url" field.
func JobURLHasPrefix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasPrefix(FieldJobURL, v))
}

// JobURLHasSuffix applies the HasSuffix predicate on the "job_url" field.
func JobURLHasSuffix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasSuffix(FieldJobURL, v))
}

// JobURLIsNil applies the IsNil predicate on the "job_url" field.
func JobURLIsNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIsNull(FieldJobURL))
}

// JobURLNotNil applies the NotNil predicate on the "job_url" field.
func JobURLNotNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotNull(FieldJobURL))
}

// JobURLEqualFold applies the EqualFold predicate on the "job_url" field.
func JobURLEqualFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEqualFold(FieldJobURL, v))
}

// JobURLContainsFold applies the ContainsFold predicate on the "job_url" field.
func JobURLContainsFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContainsFold(FieldJobURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContainsFold(FieldTitle, v))
}

// CompanyDomainEQ applies the EQ predicate on the "company_domain" field.
func CompanyDomainEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldCompanyDomain, v))
}

// CompanyDomainNEQ applies the NEQ predicate on the "company_domain" field.
func CompanyDomainNEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldCompanyDomain, v))
}

// CompanyDomainIn applies the In predicate on the "company_domain" field.
func CompanyDomainIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldCompanyDomain, vs...))
}

// CompanyDomainNotIn applies the NotIn predicate on the "company_domain" field.
func CompanyDomainNotIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldCompanyDomain, vs...))
}

// CompanyDomainGT applies the GT predicate on the "company_domain" field.
func CompanyDomainGT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldCompanyDomain, v))
}

// CompanyDomainGTE applies the GTE predicate on the "company_domain" field.
func CompanyDomainGTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldCompanyDomain, v))
}

// CompanyDomainLT applies the LT predicate on the "company_domain" field.
func CompanyDomainLT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldCompanyDomain, v))
}

// CompanyDomainLTE applies the LTE predicate on the "company_domain" field.
func CompanyDomainLTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldCompanyDomain, v))
}

// CompanyDomainContains applies the Contains predicate on the "company_domain" field.
func CompanyDomainContains(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContains(FieldCompanyDomain, v))
}

// CompanyDomainHasPrefix applies the HasPrefix predicate on the "company_domain" field.
func CompanyDomainHasPrefix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasPrefix(FieldCompanyDomain, v))
}

// CompanyDomainHasSuffix applies the HasSuffix predicate on the "company_domain" field.
func CompanyDomainHasSuffix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasSuffix(FieldCompanyDomain, v))
}

// CompanyDomainIsNil applies the IsNil predicate on the "company_domain" field.
func CompanyDomainIsNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIsNull(FieldCompanyDomain))
}

// CompanyDomainNotNil applies the NotNil predicate on the "company_domain" field.
func CompanyDomainNotNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotNull(FieldCompanyDomain))
}

// CompanyDomainEqualFold applies the EqualFold predicate on the "company_domain" field.
func CompanyDomainEqualFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEqualFold(FieldCompanyDomain, v))
}

// CompanyDomainContainsFold applies the ContainsFold predicate on the "company_domain" field.
func CompanyDomainContainsFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContainsFold(FieldCompanyDomain, v))
}

// LastEnrichedAtEQ applies the EQ predicate on the "last_enriched_at" field.
func LastEnrichedAtEQ(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldLastEnrichedAt, v))
}

// LastEnrichedAtNEQ applies the NEQ predicate on the "last_enriched_at" field.
func LastEnrichedAtNEQ(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldLastEnrichedAt, v))
}

// LastEnrichedAtIn applies the In predicate on the "last_enriched_at" field.
func LastEnrichedAtIn(vs ...time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldLastEnrichedAt, vs...))
}

// LastEnrichedAtNotIn applies the NotIn predicate on the "last_enriched_at" field.
func LastEnrichedAtNotIn(vs ...time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldLastEnrichedAt, vs...))
}

// LastEnrichedAtGT applies the GT predicate on the "last_enriched_at" field.
func LastEnrichedAtGT(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldLastEnrichedAt, v))
}

// LastEnrichedAtGTE applies the GTE predicate on the "last_enriched_at" field.
func LastEnrichedAtGTE(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldLastEnrichedAt, v))
}

// LastEnrichedAtLT applies the LT predicate on the "last_enriched_at" field.
func LastEnrichedAtLT(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldLastEnrichedAt, v))
}

// LastEnrichedAtLTE applies the LTE predicate on the "last_enriched_at" field.
func LastEnrichedAtLTE(v time.Time) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldLastEnrichedAt, v))
}

// LastEnrichedAtIsNil applies the IsNil predicate on the "last_enriched_at" field.
func LastEnrichedAtIsNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIsNull(FieldLastEnrichedAt))
}

// LastEnrichedAtNotNil applies the NotNil predicate on the "last_enriched_at" field.
func LastEnrichedAtNotNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotNull(FieldLastEnrichedAt))
}

// LastRunIDEQ applies the EQ predicate on the "last_run_id" field.
func LastRunIDEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldLastRunID, v))
}

// LastRunIDNEQ applies the NEQ predicate on the "last_run_id" field.
func LastRunIDNEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldLastRunID, v))
}

// LastRunIDIn applies the In predicate on the "last_run_id" field.
func LastRunIDIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldLastRunID, vs...))
}

// LastRunIDNotIn applies the NotIn predicate on the "last_run_id" field.
func LastRunIDNotIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldLastRunID, vs...))
}

// LastRunIDGT applies the GT predicate on the "last_run_id" field.
func LastRunIDGT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldLastRunID, v))
}

// LastRunIDGTE applies the GTE predicate on the "last_run_id" field.
func LastRunIDGTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldLastRunID, v))
}

// LastRunIDLT applies the LT predicate on the "last_run_id" field.
func LastRunIDLT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldLastRunID, v))
}

// LastRunIDLTE applies the LTE predicate on the "last_run_id" field.
func LastRunIDLTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldLastRunID, v))
}

// LastRunIDContains applies the Contains predicate on the "last_run_id" field.
func LastRunIDContains(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContains(FieldLastRunID, v))
}

// LastRunIDHasPrefix applies the HasPrefix predicate on the "last_run_id" field.
func LastRunIDHasPrefix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasPrefix(FieldLastRunID, v))
}

// LastRunIDHasSuffix applies the HasSuffix predicate on the "last_run_id" field.
func LastRunIDHasSuffix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasSuffix(FieldLastRunID, v))
}

// LastRunIDIsNil applies the IsNil predicate on the "last_run_id" field.
func LastRunIDIsNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIsNull(FieldLastRunID))
}

// LastRunIDNotNil applies the NotNil predicate on the "last_run_id" field.
func LastRunIDNotNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotNull(FieldLastRunID))
}

// LastRunIDEqualFold applies the EqualFold predicate on the "last_run_id" field.
func LastRunIDEqualFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEqualFold(FieldLastRunID, v))
}

// LastRunIDContainsFold applies the ContainsFold predicate on the "last_run_id" field.
func LastRunIDContainsFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContainsFold(FieldLastRunID, v))
}

// LastOperationIDEQ applies the EQ predicate on the "last_operation_id" field.
func LastOperationIDEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEQ(FieldLastOperationID, v))
}

// LastOperationIDNEQ applies the NEQ predicate on the "last_operation_id" field.
func LastOperationIDNEQ(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNEQ(FieldLastOperationID, v))
}

// LastOperationIDIn applies the In predicate on the "last_operation_id" field.
func LastOperationIDIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIn(FieldLastOperationID, vs...))
}

// LastOperationIDNotIn applies the NotIn predicate on the "last_operation_id" field.
func LastOperationIDNotIn(vs ...string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotIn(FieldLastOperationID, vs...))
}

// LastOperationIDGT applies the GT predicate on the "last_operation_id" field.
func LastOperationIDGT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGT(FieldLastOperationID, v))
}

// LastOperationIDGTE applies the GTE predicate on the "last_operation_id" field.
func LastOperationIDGTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldGTE(FieldLastOperationID, v))
}

// LastOperationIDLT applies the LT predicate on the "last_operation_id" field.
func LastOperationIDLT(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLT(FieldLastOperationID, v))
}

// LastOperationIDLTE applies the LTE predicate on the "last_operation_id" field.
func LastOperationIDLTE(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldLTE(FieldLastOperationID, v))
}

// LastOperationIDContains applies the Contains predicate on the "last_operation_id" field.
func LastOperationIDContains(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContains(FieldLastOperationID, v))
}

// LastOperationIDHasPrefix applies the HasPrefix predicate on the "last_operation_id" field.
func LastOperationIDHasPrefix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasPrefix(FieldLastOperationID, v))
}

// LastOperationIDHasSuffix applies the HasSuffix predicate on the "last_operation_id" field.
func LastOperationIDHasSuffix(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldHasSuffix(FieldLastOperationID, v))
}

// LastOperationIDIsNil applies the IsNil predicate on the "last_operation_id" field.
func LastOperationIDIsNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIsNull(FieldLastOperationID))
}

// LastOperationIDNotNil applies the NotNil predicate on the "last_operation_id" field.
func LastOperationIDNotNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotNull(FieldLastOperationID))
}

// LastOperationIDEqualFold applies the EqualFold predicate on the "last_operation_id" field.
func LastOperationIDEqualFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldEqualFold(FieldLastOperationID, v))
}

// LastOperationIDContainsFold applies the ContainsFold predicate on the "last_operation_id" field.
func LastOperationIDContainsFold(v string) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldContainsFold(FieldLastOperationID, v))
}

// SourceProvidersIsNil applies the IsNil predicate on the "source_providers" field.
func SourceProvidersIsNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldIsNull(FieldSourceProviders))
}

// SourceProvidersNotNil applies the NotNil predicate on the "source_providers" field.
func SourceProvidersNotNil() predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.FieldNotNull(FieldSourceProviders))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobPostingEntity) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobPostingEntity) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobPostingEntity) predicate.JobPostingEntity {
	return predicate.JobPostingEntity(sql.NotPredicates(p))
}
