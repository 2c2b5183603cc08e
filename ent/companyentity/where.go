// Code generated by ent, DO NOT EDIT.

package companyentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldOrgID, v))
}

// RecordVersion applies equality check predicate on the "record_version" field. It's identical to RecordVersionEQ.
func RecordVersion(v int) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldRecordVersion, v))
}

// CanonicalDomain applies equality check predicate on the "canonical_domain" field. It's identical to CanonicalDomainEQ.
func CanonicalDomain(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldCanonicalDomain, v))
}

// LinkedinURL applies equality check predicate on the "linkedin_url" field. It's identical to LinkedinURLEQ.
func LinkedinURL(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldLinkedinURL, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldName, v))
}

// LastEnrichedAt applies equality check predicate on the "last_enriched_at" field. It's identical to LastEnrichedAtEQ.
func LastEnrichedAt(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldLastEnrichedAt, v))
}

// LastRunID applies equality check predicate on the "last_run_id" field. It's identical to LastRunIDEQ.
func LastRunID(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldLastRunID, v))
}

// LastOperationID applies equality check predicate on the "last_operation_id" field. It's identical to LastOperationIDEQ.
func LastOperationID(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldLastOperationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContainsFold(FieldOrgID, v))
}

// RecordVersionEQ applies the EQ predicate on the "record_version" field.
func RecordVersionEQ(v int) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldRecordVersion, v))
}

// RecordVersionNEQ applies the NEQ predicate on the "record_version" field.
func RecordVersionNEQ(v int) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldRecordVersion, v))
}

// RecordVersionIn applies the In predicate on the "record_version" field.
func RecordVersionIn(vs ...int) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldRecordVersion, vs...))
}

// RecordVersionNotIn applies the NotIn predicate on the "record_version" field.
func RecordVersionNotIn(vs ...int) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldRecordVersion, vs...))
}

// RecordVersionGT applies the GT predicate on the "record_version" field.
func RecordVersionGT(v int) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldRecordVersion, v))
}

// RecordVersionGTE applies the GTE predicate on the "record_version" field.
func RecordVersionGTE(v int) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldRecordVersion, v))
}

// RecordVersionLT applies the LT predicate on the "record_version" field.
func RecordVersionLT(v int) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldRecordVersion, v))
}

// RecordVersionLTE applies the LTE predicate on the "record_version" field.
func RecordVersionLTE(v int) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldRecordVersion, v))
}

// CanonicalDomainEQ applies the EQ predicate on the "canonical_domain" field.
func CanonicalDomainEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldCanonicalDomain, v))
}

// CanonicalDomainNEQ applies the NEQ predicate on the "canonical_domain" field.
func CanonicalDomainNEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldCanonicalDomain, v))
}

// CanonicalDomainIn applies the In predicate on the "canonical_domain" field.
func CanonicalDomainIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldCanonicalDomain, vs...))
}

// CanonicalDomainNotIn applies the NotIn predicate on the "canonical_domain" field.
func CanonicalDomainNotIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldCanonicalDomain, vs...))
}

// CanonicalDomainGT applies the GT predicate on the "canonical_domain" field.
func CanonicalDomainGT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldCanonicalDomain, v))
}

// CanonicalDomainGTE applies the GTE predicate on the "canonical_domain" field.
func CanonicalDomainGTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldCanonicalDomain, v))
}

// CanonicalDomainLT applies the LT predicate on the "canonical_domain" field.
func CanonicalDomainLT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldCanonicalDomain, v))
}

// CanonicalDomainLTE applies the LTE predicate on the "canonical_domain" field.
func CanonicalDomainLTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldCanonicalDomain, v))
}

// CanonicalDomainContains applies the Contains predicate on the "canonical_domain" field.
func CanonicalDomainContains(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContains(FieldCanonicalDomain, v))
}

// CanonicalDomainHasPrefix applies the HasPrefix predicate on the "canonical_domain" field.
func CanonicalDomainHasPrefix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasPrefix(FieldCanonicalDomain, v))
}

// CanonicalDomainHasSuffix applies the HasSuffix predicate on the "canonical_domain" field.
func CanonicalDomainHasSuffix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasSuffix(FieldCanonicalDomain, v))
}

// CanonicalDomainIsNil applies the IsNil predicate on the "canonical_domain" field.
func CanonicalDomainIsNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIsNull(FieldCanonicalDomain))
}

// CanonicalDomainNotNil applies the NotNil predicate on the "canonical_domain" field.
func CanonicalDomainNotNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotNull(FieldCanonicalDomain))
}

// CanonicalDomainEqualFold applies the EqualFold predicate on the "canonical_domain" field.
func CanonicalDomainEqualFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEqualFold(FieldCanonicalDomain, v))
}

// CanonicalDomainContainsFold applies the ContainsFold predicate on the "canonical_domain" field.
func CanonicalDomainContainsFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContainsFold(FieldCanonicalDomain, v))
}

// LinkedinURLEQ applies the EQ predicate on the "linkedin_url" field.
func LinkedinURLEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldLinkedinURL, v))
}

// LinkedinURLNEQ applies the NEQ predicate on the "linkedin_url" field.
func LinkedinURLNEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldLinkedinURL, v))
}

// LinkedinURLIn applies the In predicate on the "linkedin_url" field.
func LinkedinURLIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldLinkedinURL, vs...))
}

// LinkedinURLNotIn applies the NotIn predicate on the "linkedin_url" field.
func LinkedinURLNotIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldLinkedinURL, vs...))
}

// LinkedinURLGT applies the GT predicate on the "linkedin_url" field.
func LinkedinURLGT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldLinkedinURL, v))
}

// LinkedinURLGTE applies the GTE predicate on the "linkedin_url" field.
func LinkedinURLGTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldLinkedinURL, v))
}

// LinkedinURLLT applies the LT predicate on the "linkedin_url" field.
func LinkedinURLLT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldLinkedinURL, v))
}

// LinkedinURLLTE applies the LTE predicate on the "linkedin_url" field.
func LinkedinURLLTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldLinkedinURL, v))
}

// LinkedinURLContains applies the Contains predicate on the "linkedin_url" field.
func LinkedinURLContains(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContains(FieldLinkedinURL, v))
}

// LinkedinURLHasPrefix applies the HasPrefix predicate on the "linkedin_url" field.
func LinkedinURLHasPrefix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasPrefix(FieldLinkedinURL, v))
}

// LinkedinURLHasSuffix applies the HasSuffix predicate on the "linkedin_url" field.
func LinkedinURLHasSuffix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasSuffix(FieldLinkedinURL, v))
}

// LinkedinURLIsNil applies the IsNil predicate on the "linkedin_url" field.
func LinkedinURLIsNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIsNull(FieldLinkedinURL))
}

// LinkedinURLNotNil applies the NotNil predicate on the "linkedin_url" field.
func LinkedinURLNotNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotNull(FieldLinkedinURL))
}

// LinkedinURLEqualFold applies the EqualFold predicate on the "linkedin_url" field.
func LinkedinURLEqualFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEqualFold(FieldLinkedinURL, v))
}

// LinkedinURLContainsFold applies the ContainsFold predicate on the "linkedin_url" field.
func LinkedinURLContainsFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContainsFold(FieldLinkedinURL, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContainsFold(FieldName, v))
}

// LastEnrichedAtEQ applies the EQ predicate on the "last_enriched_at" field.
func LastEnrichedAtEQ(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldLastEnrichedAt, v))
}

// LastEnrichedAtNEQ applies the NEQ predicate on the "last_enriched_at" field.
func LastEnrichedAtNEQ(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldLastEnrichedAt, v))
}

// LastEnrichedAtIn applies the In predicate on the "last_enriched_at" field.
func LastEnrichedAtIn(vs ...time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldLastEnrichedAt, vs...))
}

// LastEnrichedAtNotIn applies the NotIn predicate on the "last_enriched_at" field.
func LastEnrichedAtNotIn(vs ...time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldLastEnrichedAt, vs...))
}

// LastEnrichedAtGT applies the GT predicate on the "last_enriched_at" field.
func LastEnrichedAtGT(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldLastEnrichedAt, v))
}

// LastEnrichedAtGTE applies the GTE predicate on the "last_enriched_at" field.
func LastEnrichedAtGTE(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldLastEnrichedAt, v))
}

// LastEnrichedAtLT applies the LT predicate on the "last_enriched_at" field.
func LastEnrichedAtLT(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldLastEnrichedAt, v))
}

// LastEnrichedAtLTE applies the LTE predicate on the "last_enriched_at" field.
func LastEnrichedAtLTE(v time.Time) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldLastEnrichedAt, v))
}

// LastEnrichedAtIsNil applies the IsNil predicate on the "last_enriched_at" field.
func LastEnrichedAtIsNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIsNull(FieldLastEnrichedAt))
}

// LastEnrichedAtNotNil applies the NotNil predicate on the "last_enriched_at" field.
func LastEnrichedAtNotNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotNull(FieldLastEnrichedAt))
}

// LastRunIDEQ applies the EQ predicate on the "last_run_id" field.
func LastRunIDEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldLastRunID, v))
}

// LastRunIDNEQ applies the NEQ predicate on the "last_run_id" field.
func LastRunIDNEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldLastRunID, v))
}

// LastRunIDIn applies the In predicate on the "last_run_id" field.
func LastRunIDIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldLastRunID, vs...))
}

// LastRunIDNotIn applies the NotIn predicate on the "last_run_id" field.
func LastRunIDNotIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldLastRunID, vs...))
}

// LastRunIDGT applies the GT predicate on the "last_run_id" field.
func LastRunIDGT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldLastRunID, v))
}

// LastRunIDGTE applies the GTE predicate on the "last_run_id" field.
func LastRunIDGTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldLastRunID, v))
}

// LastRunIDLT applies the LT predicate on the "last_run_id" field.
func LastRunIDLT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldLastRunID, v))
}

// LastRunIDLTE applies the LTE predicate on the "last_run_id" field.
func LastRunIDLTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldLastRunID, v))
}

// LastRunIDContains applies the Contains predicate on the "last_run_id" field.
func LastRunIDContains(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContains(FieldLastRunID, v))
}

// LastRunIDHasPrefix applies the HasPrefix predicate on the "last_run_id" field.
func LastRunIDHasPrefix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasPrefix(FieldLastRunID, v))
}

// LastRunIDHasSuffix applies the HasSuffix predicate on the "last_run_id" field.
func LastRunIDHasSuffix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasSuffix(FieldLastRunID, v))
}

// LastRunIDIsNil applies the IsNil predicate on the "last_run_id" field.
func LastRunIDIsNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIsNull(FieldLastRunID))
}

// LastRunIDNotNil applies the NotNil predicate on the "last_run_id" field.
func LastRunIDNotNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotNull(FieldLastRunID))
}

// LastRunIDEqualFold applies the EqualFold predicate on the "last_run_id" field.
func LastRunIDEqualFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEqualFold(FieldLastRunID, v))
}

// LastRunIDContainsFold applies the ContainsFold predicate on the "last_run_id" field.
func LastRunIDContainsFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContainsFold(FieldLastRunID, v))
}

// LastOperationIDEQ applies the EQ predicate on the "last_operation_id" field.
func LastOperationIDEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEQ(FieldLastOperationID, v))
}

// LastOperationIDNEQ applies the NEQ predicate on the "last_operation_id" field.
func LastOperationIDNEQ(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNEQ(FieldLastOperationID, v))
}

// LastOperationIDIn applies the In predicate on the "last_operation_id" field.
func LastOperationIDIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIn(FieldLastOperationID, vs...))
}

// LastOperationIDNotIn applies the NotIn predicate on the "last_operation_id" field.
func LastOperationIDNotIn(vs ...string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotIn(FieldLastOperationID, vs...))
}

// LastOperationIDGT applies the GT predicate on the "last_operation_id" field.
func LastOperationIDGT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGT(FieldLastOperationID, v))
}

// LastOperationIDGTE applies the GTE predicate on the "last_operation_id" field.
func LastOperationIDGTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldGTE(FieldLastOperationID, v))
}

// LastOperationIDLT applies the LT predicate on the "last_operation_id" field.
func LastOperationIDLT(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLT(FieldLastOperationID, v))
}

// LastOperationIDLTE applies the LTE predicate on the "last_operation_id" field.
func LastOperationIDLTE(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldLTE(FieldLastOperationID, v))
}

// LastOperationIDContains applies the Contains predicate on the "last_operation_id" field.
func LastOperationIDContains(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContains(FieldLastOperationID, v))
}

// LastOperationIDHasPrefix applies the HasPrefix predicate on the "last_operation_id" field.
func LastOperationIDHasPrefix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasPrefix(FieldLastOperationID, v))
}

// LastOperationIDHasSuffix applies the HasSuffix predicate on the "last_operation_id" field.
func LastOperationIDHasSuffix(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldHasSuffix(FieldLastOperationID, v))
}

// LastOperationIDIsNil applies the IsNil predicate on the "last_operation_id" field.
func LastOperationIDIsNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIsNull(FieldLastOperationID))
}

// LastOperationIDNotNil applies the NotNil predicate on the "last_operation_id" field.
func LastOperationIDNotNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotNull(FieldLastOperationID))
}

// LastOperationIDEqualFold applies the EqualFold predicate on the "last_operation_id" field.
func LastOperationIDEqualFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldEqualFold(FieldLastOperationID, v))
}

// LastOperationIDContainsFold applies the ContainsFold predicate on the "last_operation_id" field.
func LastOperationIDContainsFold(v string) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldContainsFold(FieldLastOperationID, v))
}

// SourceProvidersIsNil applies the IsNil predicate on the "source_providers" field.
func SourceProvidersIsNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldIsNull(FieldSourceProviders))
}

// SourceProvidersNotNil applies the NotNil predicate on the "source_providers" field.
func SourceProvidersNotNil() predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.FieldNotNull(FieldSourceProviders))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompanyEntity) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompanyEntity) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompanyEntity) predicate.CompanyEntity {
	return predicate.CompanyEntity(sql.NotPredicates(p))
}
