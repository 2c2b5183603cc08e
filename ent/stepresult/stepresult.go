// Code generated by ent, DO NOT EDIT.

package stepresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stepresult type in the database.
	Label = "step_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldOperationID holds the string denoting the operation_id field in the database.
	FieldOperationID = "operation_id"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputPayload holds the string denoting the input_payload field in the database.
	FieldInputPayload = "input_payload"
	// FieldOutputPayload holds the string denoting the output_payload field in the database.
	FieldOutputPayload = "output_payload"
	// FieldProviderAttempts holds the string denoting the provider_attempts field in the database.
	FieldProviderAttempts = "provider_attempts"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldSkipReason holds the string denoting the skip_reason field in the database.
	FieldSkipReason = "skip_reason"
	// FieldChildrenSpawned holds the string denoting the children_spawned field in the database.
	FieldChildrenSpawned = "children_spawned"
	// FieldSkippedDuplicates holds the string denoting the skipped_duplicates field in the database.
	FieldSkippedDuplicates = "skipped_duplicates"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// Table holds the table name of the stepresult in the database.
	Table = "step_results"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "step_results"
	// RunInverseTable is the table name for the PipelineRun entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinerun" package.
	RunInverseTable = "pipeline_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "pipeline_run_step_results"
)

// Columns holds all SQL columns for stepresult fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldOrgID,
	FieldPosition,
	FieldOperationID,
	FieldAttemptNumber,
	FieldStatus,
	FieldInputPayload,
	FieldOutputPayload,
	FieldProviderAttempts,
	FieldErrorMessage,
	FieldSkipReason,
	FieldChildrenSpawned,
	FieldSkippedDuplicates,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "step_results"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"pipeline_run_step_results",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
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
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// OperationIDValidator is a validator for the "operation_id" field. It is called by the builders before save.
	OperationIDValidator func(string) error
	// DefaultAttemptNumber holds the default value on creation for the "attempt_number" field.
	DefaultAttemptNumber int
	// AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	AttemptNumberValidator func(int) error
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusQUEUED    Status = "QUEUED"
	StatusRUNNING   Status = "RUNNING"
	StatusSUCCEEDED Status = "SUCCEEDED"
	StatusNOT_FOUND Status = "NOT_FOUND"
	StatusFAILED    Status = "FAILED"
	StatusSKIPPED   Status = "SKIPPED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQUEUED, StatusRUNNING, StatusSUCCEEDED, StatusNOT_FOUND, StatusFAILED, StatusSKIPPED:
		return nil
	default:
		return fmt.Errorf("stepresult: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StepResult queries.
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

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByOperationID orders the results by the operation_id field.
func ByOperationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationID, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// BySkipReason orders the results by the skip_reason field.
func BySkipReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipReason, opts...).ToFunc()
}

// ByChildrenSpawned orders the results by the children_spawned field.
func ByChildrenSpawned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildrenSpawned, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
