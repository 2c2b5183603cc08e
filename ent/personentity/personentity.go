// Code generated by ent, DO NOT EDIT.

package personentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the personentity type in the database.
	Label = "person_entity"
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
	// FieldLinkedinURL holds the string denoting the linkedin_url field in the database.
	FieldLinkedinURL = "linkedin_url"
	// FieldWorkEmail holds the string denoting the work_email field in the database.
	FieldWorkEmail = "work_email"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldLastEnrichedAt holds the string denoting the last_enriched_at field in the database.
	FieldLastEnrichedAt = "last_enriched_at"
	// FieldLastRunID holds the string denoting the last_run_id field in the database.
	FieldLastRunID = "last_run_id"
	// FieldLastOperationID holds the string denoting the last_operation_id field in the database.
	FieldLastOperationID = "last_operation_id"
	// FieldSourceProviders holds the string denoting the source_providers field in the database.
	FieldSourceProviders = "source_providers"
	// Table holds the table name of the personentity in the database.
	Table = "person_entities"
)

// Columns holds all SQL columns for personentity fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOrgID,
	FieldRecordVersion,
	FieldCanonicalPayload,
	FieldLinkedinURL,
	FieldWorkEmail,
	FieldFullName,
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

// OrderOption defines the ordering options for the PersonEntity queries.
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

// ByLinkedinURL orders the results by the linkedin_url field.
func ByLinkedinURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedinURL, opts...).ToFunc()
}

// ByWorkEmail orders the results by the work_email field.
func ByWorkEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkEmail, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
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
