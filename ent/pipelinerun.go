// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/submission"
)

// PipelineRun is the model entity for the PipelineRun schema.
type PipelineRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// ParentRunID holds the value of the "parent_run_id" field.
	ParentRunID string `json:"parent_run_id,omitempty"`
	// TriggerRunID holds the value of the "trigger_run_id" field.
	TriggerRunID string `json:"trigger_run_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType pipelinerun.EntityType `json:"entity_type,omitempty"`
	// EntityIndex holds the value of the "entity_index" field.
	EntityIndex int `json:"entity_index,omitempty"`
	// BlueprintSnapshot holds the value of the "blueprint_snapshot" field.
	BlueprintSnapshot []map[string]interface{} `json:"blueprint_snapshot,omitempty"`
	// EntityInput holds the value of the "entity_input" field.
	EntityInput map[string]interface{} `json:"entity_input,omitempty"`
	// CumulativeContext holds the value of the "cumulative_context" field.
	CumulativeContext map[string]interface{} `json:"cumulative_context,omitempty"`
	// CurrentPosition holds the value of the "current_position" field.
	CurrentPosition int `json:"current_position,omitempty"`
	// Depth holds the value of the "depth" field.
	Depth int `json:"depth,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinerun.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineRunQuery when eager-loading is set.
	Edges           PipelineRunEdges `json:"edges"`
	submission_runs *string
	selectValues    sql.SelectValues
}

// PipelineRunEdges holds the relations/edges for other nodes in the graph.
type PipelineRunEdges struct {
	// Submission holds the value of the submission edge.
	Submission *Submission `json:"submission,omitempty"`
	// StepResults holds the value of the step_results edge.
	StepResults []*StepResult `json:"step_results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SubmissionOrErr returns the Submission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineRunEdges) SubmissionOrErr() (*Submission, error) {
	if e.Submission != nil {
		return e.Submission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: submission.Label}
	}
	return nil, &NotLoadedError{edge: "submission"}
}

// StepResultsOrErr returns the StepResults value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineRunEdges) StepResultsOrErr() ([]*StepResult, error) {
	if e.loadedTypes[1] {
		return e.StepResults, nil
	}
	return nil, &NotLoadedError{edge: "step_results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldBlueprintSnapshot, pipelinerun.FieldEntityInput, pipelinerun.FieldCumulativeContext:
			values[i] = new([]byte)
		case pipelinerun.FieldEntityIndex, pipelinerun.FieldCurrentPosition, pipelinerun.FieldDepth:
			values[i] = new(sql.NullInt64)
		case pipelinerun.FieldID, pipelinerun.FieldOrgID, pipelinerun.FieldParentRunID, pipelinerun.FieldTriggerRunID, pipelinerun.FieldEntityType, pipelinerun.FieldStatus, pipelinerun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case pipelinerun.FieldCreatedAt, pipelinerun.FieldUpdatedAt, pipelinerun.FieldStartedAt, pipelinerun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case pipelinerun.ForeignKeys[0]: // submission_runs
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineRun fields.
func (_m *PipelineRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinerun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinerun.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case pipelinerun.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case pipelinerun.FieldParentRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_run_id", values[i])
			} else if value.Valid {
				_m.ParentRunID = value.String
			}
		case pipelinerun.FieldTriggerRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_run_id", values[i])
			} else if value.Valid {
				_m.TriggerRunID = value.String
			}
		case pipelinerun.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = pipelinerun.EntityType(value.String)
			}
		case pipelinerun.FieldEntityIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field entity_index", values[i])
			} else if value.Valid {
				_m.EntityIndex = int(value.Int64)
			}
		case pipelinerun.FieldBlueprintSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BlueprintSnapshot); err != nil {
					return fmt.Errorf("unmarshal field blueprint_snapshot: %w", err)
				}
			}
		case pipelinerun.FieldEntityInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entity_input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EntityInput); err != nil {
					return fmt.Errorf("unmarshal field entity_input: %w", err)
				}
			}
		case pipelinerun.FieldCumulativeContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cumulative_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CumulativeContext); err != nil {
					return fmt.Errorf("unmarshal field cumulative_context: %w", err)
				}
			}
		case pipelinerun.FieldCurrentPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_position", values[i])
			} else if value.Valid {
				_m.CurrentPosition = int(value.Int64)
			}
		case pipelinerun.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case pipelinerun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinerun.Status(value.String)
			}
		case pipelinerun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case pipelinerun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case pipelinerun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case pipelinerun.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submission_runs", values[i])
			} else if value.Valid {
				_m.submission_runs = new(string)
				*_m.submission_runs = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineRun.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmission queries the "submission" edge of the PipelineRun entity.
func (_m *PipelineRun) QuerySubmission() *SubmissionQuery {
	return NewPipelineRunClient(_m.config).QuerySubmission(_m)
}

// QueryStepResults queries the "step_results" edge of the PipelineRun entity.
func (_m *PipelineRun) QueryStepResults() *StepResultQuery {
	return NewPipelineRunClient(_m.config).QueryStepResults(_m)
}

// Update returns a builder for updating this PipelineRun.
// Note that you need to call PipelineRun.Unwrap() before calling this method if this PipelineRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineRun) Update() *PipelineRunUpdateOne {
	return NewPipelineRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineRun) Unwrap() *PipelineRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineRun) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("parent_run_id=")
	builder.WriteString(_m.ParentRunID)
	builder.WriteString(", ")
	builder.WriteString("trigger_run_id=")
	builder.WriteString(_m.TriggerRunID)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteString(", ")
	builder.WriteString("entity_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityIndex))
	builder.WriteString(", ")
	builder.WriteString("blueprint_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlueprintSnapshot))
	builder.WriteString(", ")
	builder.WriteString("entity_input=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityInput))
	builder.WriteString(", ")
	builder.WriteString("cumulative_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.CumulativeContext))
	builder.WriteString(", ")
	builder.WriteString("current_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentPosition))
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PipelineRuns is a parsable slice of PipelineRun.
type PipelineRuns []*PipelineRun
