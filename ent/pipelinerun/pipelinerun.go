// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pipelinerun type in the database.
	Label = "pipeline_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldParentRunID holds the string denoting the parent_run_id field in the database.
	FieldParentRunID = "parent_run_id"
	// FieldTriggerRunID holds the string denoting the trigger_run_id field in the database.
	FieldTriggerRunID = "trigger_run_id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldEntityIndex holds the string denoting the entity_index field in the database.
	FieldEntityIndex = "entity_index"
	// FieldBlueprintSnapshot holds the string denoting the blueprint_snapshot field in the database.
	FieldBlueprintSnapshot = "blueprint_snapshot"
	// FieldEntityInput holds the string denoting the entity_input field in the database.
	FieldEntityInput = "entity_input"
	// FieldCumulativeContext holds the string denoting the cumulative_context field in the database.
	FieldCumulativeContext = "cumulative_context"
	// FieldCurrentPosition holds the string denoting the current_position field in the database.
	FieldCurrentPosition = "current_position"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeSubmission holds the string denoting the submission edge name in mutations.
	EdgeSubmission = "submission"
	// EdgeStepResults holds the string denoting the step_results edge name in mutations.
	EdgeStepResults = "step_results"
	// Table holds the table name of the pipelinerun in the database.
	Table = "pipeline_runs"
	// SubmissionTable is the table that holds the submission relation/edge.
	SubmissionTable = "pipeline_runs"
	// SubmissionInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionInverseTable = "submissions"
	// SubmissionColumn is the table column denoting the submission relation/edge.
	SubmissionColumn = "submission_runs"
	// StepResultsTable is the table that holds the step_results relation/edge.
	StepResultsTable = "step_results"
	// StepResultsInverseTable is the table name for the StepResult entity.
	// It exists in this package in order to avoid circular dependency with the "stepresult" package.
	StepResultsInverseTable = "step_results"
	// StepResultsColumn is the table column denoting the step_results relation/edge.
	StepResultsColumn = "pipeline_run_step_results"
)

// Columns holds all SQL columns for pipelinerun fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOrgID,
	FieldParentRunID,
	FieldTriggerRunID,
	FieldEntityType,
	FieldEntityIndex,
	FieldBlueprintSnapshot,
	FieldEntityInput,
	FieldCumulativeContext,
	FieldCurrentPosition,
	FieldDepth,
	FieldStatus,
	FieldErrorMessage,
	FieldStartedAt,
	FieldFinishedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "pipeline_runs"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"submission_runs",
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	OrgIDValidator func(string) error
	// DefaultEntityIndex holds the default value on creation for the "entity_index" field.
	DefaultEntityIndex int
	// DefaultCurrentPosition holds the default value on creation for the "current_position" field.
	DefaultCurrentPosition int
	// CurrentPositionValidator is a validator for the "current_position" field. It is called by the builders before save.
	CurrentPositionValidator func(int) error
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DepthValidator is a validator for the "depth" field. It is called by the builders before save.
	DepthValidator func(int) error
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
		return fmt.Errorf("pipelinerun: invalid enum value for entity_type field: %q", et)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQUEUED is the default value of the Status enum.
const DefaultStatus = StatusQUEUED

// Status values.
const (
	StatusQUEUED    Status = "QUEUED"
	StatusRUNNING   Status = "RUNNING"
	StatusSUCCEEDED Status = "SUCCEEDED"
	StatusFAILED    Status = "FAILED"
	StatusSKIPPED   Status = "SKIPPED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQUEUED, StatusRUNNING, StatusSUCCEEDED, StatusFAILED, StatusSKIPPED:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PipelineRun queries.
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

// ByParentRunID orders the results by the parent_run_id field.
func ByParentRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentRunID, opts...).ToFunc()
}

// ByTriggerRunID orders the results by the trigger_run_id field.
func ByTriggerRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerRunID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByEntityIndex orders the results by the entity_index field.
func ByEntityIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityIndex, opts...).ToFunc()
}

// ByCurrentPosition orders the results by the current_position field.
func ByCurrentPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPosition, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// BySubmissionField orders the results by submission field.
func BySubmissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepResultsCount orders the results by step_results count.
func ByStepResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepResultsStep(), opts...)
	}
}

// ByStepResults orders the results by step_results terms.
func ByStepResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubmissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
	)
}
func newStepResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepResultsTable, StepResultsColumn),
	)
}
