// Code generated by ent, DO NOT EDIT.

package jobpostingentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the jobpostingentity type in the database.
	Label = "job_posting_entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldRecordVersion holds the string denoting the record_version field in the database.
	FieldRecordVersion = "record_version"
	// FieldCanonicalPayload holds the string denoting the canonical_payload field in the database.
	FieldCanonicalPayload = "canonical_payload"
	// FieldTheirstackJobID holds the string denoting the theirstack_job_id field in the database.
	FieldTheirstackJobID = "theirstack_job_id"
	// FieldJobURL holds the string denoting the job_url field in the database.
	FieldJobURL = "job_url"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldCompanyDomain holds the string denoting the company_domain field in the database.
	FieldCompanyDomain = "company_domain"
	// FieldLastEnrichedAt holds the string denoting the last_enriched_at field in the database.
	FieldLastEnrichedAt = "last_enriched_at"
	// FieldLastRunID holds the string denoting the last_run_id field in the database.
	FieldLastRunID = "last_run_id"
	// FieldLastOperationID holds the string denoting the last_operation_id field in the database.
	FieldLastOperationID = "last_operation_id"
	// FieldSourceProviders holds the string denoting the source_providers field in the database.
	FieldSourceProviders = "source_providers"
	// Table holds the table name of the jobpostingentity in the database.
	Table = "job_posting_entities"
)

// Columns holds all SQL columns for jobpostingentity fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOrgID,
	FieldRecordVersion,
	FieldCanonicalPayload,
	FieldTheirstackJobID,
	FieldJobURL,
	FieldTitle,
	FieldCompanyDomain,
	FieldLastEnrichedAt,
	FieldLastRunID,
	FieldLastOperationID,
	FieldSourceProviders,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	OrgIDValidator func(string) error
	// DefaultRecordVersion holds the default value on creation for the "record_version" field.
	DefaultRecordVersion int
	// RecordVersionValidator is a validator for the "record_version" field. It is called by the builders before save.
	RecordVersionValidator func(int) error
)

// OrderOption defines the ordering options for the JobPostingEntity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByRecordVersion orders the results by the record_version field.
func ByRecordVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordVersion, opts...).ToFunc()
}

// ByTheirstackJobID orders the results by the theirstack_job_id field.
func ByTheirstackJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheirstackJobID, opts...).ToFunc()
}

// ByJobURL orders the results by the job_url field.
func ByJobURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobURL, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCompanyDomain orders the results by the company_domain field.
func ByCompanyDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyDomain, opts...).ToFunc()
}

// ByLastEnrichedAt orders the results by the last_enriched_at field.
func ByLastEnrichedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEnrichedAt, opts...).ToFunc()
}

// ByLastRunID orders the results by the last_run_id field.
func ByLastRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunID, opts...).ToFunc()
}

// ByLastOperationID orders the results by the last_operation_id field.
func ByLastOperationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOperationID, opts...).ToFunc()
}
