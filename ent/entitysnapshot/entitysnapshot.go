// Code generated by ent, DO NOT EDIT.

package entitysnapshot

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entitysnapshot type in the database.
	Label = "entity_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldRecordVersion holds the string denoting the record_version field in the database.
	FieldRecordVersion = "record_version"
	// FieldCanonicalPayload holds the string denoting the canonical_payload field in the database.
	FieldCanonicalPayload = "canonical_payload"
	// FieldSourceRunID holds the string denoting the source_run_id field in the database.
	FieldSourceRunID = "source_run_id"
	// FieldCapturedAt holds the string denoting the captured_at field in the database.
	FieldCapturedAt = "captured_at"
	// Table holds the table name of the entitysnapshot in the database.
	Table = "entity_snapshots"
)

// Columns holds all SQL columns for entitysnapshot fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldOrgID,
	FieldEntityType,
	FieldEntityID,
	FieldRecordVersion,
	FieldCanonicalPayload,
	FieldSourceRunID,
	FieldCapturedAt,
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
	// OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	OrgIDValidator func(string) error
	// EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	EntityIDValidator func(string) error
	// RecordVersionValidator is a validator for the "record_version" field. It is called by the builders before save.
	RecordVersionValidator func(int) error
	// DefaultCapturedAt holds the default value on creation for the "captured_at" field.
	DefaultCapturedAt func() time.Time
)

// EntityType defines the type for the "entity_type" enum field.
type EntityType string

// EntityType values.
const (
	EntityTypeCompany EntityType = "company"
	EntityTypePerson  EntityType = "person"
	EntityTypeJob     EntityType = "job"
)

func (et EntityType) String() string {
	return string(et)
}

// EntityTypeValidator is a validator for the "entity_type" field enum values. It is called by the builders before save.
func EntityTypeValidator(et EntityType) error {
	switch et {
	case EntityTypeCompany, EntityTypePerson, EntityTypeJob:
		return nil
	default:
		return fmt.Errorf("entitysnapshot: invalid enum value for entity_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the EntitySnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByRecordVersion orders the results by the record_version field.
func ByRecordVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordVersion, opts...).ToFunc()
}

// BySourceRunID orders the results by the source_run_id field.
func BySourceRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceRunID, opts...).ToFunc()
}

// ByCapturedAt orders the results by the captured_at field.
func ByCapturedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapturedAt, opts...).ToFunc()
}
