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
	"waterline.io/waterline/ent/stepresult"
)

// StepResult is the model entity for the StepResult schema.
type StepResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// OperationID holds the value of the "operation_id" field.
	OperationID string `json:"operation_id,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber int `json:"attempt_number,omitempty"`
	// Status holds the value of the "status" field.
	Status stepresult.Status `json:"status,omitempty"`
	// InputPayload holds the value of the "input_payload" field.
	InputPayload map[string]interface{} `json:"input_payload,omitempty"`
	// OutputPayload holds the value of the "output_payload" field.
	OutputPayload map[string]interface{} `json:"output_payload,omitempty"`
	// ProviderAttempts holds the value of the "provider_attempts" field.
	ProviderAttempts []map[string]interface{} `json:"provider_attempts,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// SkipReason holds the value of the "skip_reason" field.
	SkipReason string `json:"skip_reason,omitempty"`
	// ChildrenSpawned holds the value of the "children_spawned" field.
	ChildrenSpawned int `json:"children_spawned,omitempty"`
	// SkippedDuplicates holds the value of the "skipped_duplicates" field.
	SkippedDuplicates []string `json:"skipped_duplicates,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepResultQuery when eager-loading is set.
	Edges                     StepResultEdges `json:"edges"`
	pipeline_run_step_results *string
	selectValues              sql.SelectValues
}

// StepResultEdges holds the relations/edges for other nodes in the graph.
type StepResultEdges struct {
	// Run holds the value of the run edge.
	Run *PipelineRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepResultEdges) RunOrErr() (*PipelineRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipelinerun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepresult.FieldInputPayload, stepresult.FieldOutputPayload, stepresult.FieldProviderAttempts, stepresult.FieldSkippedDuplicates:
			values[i] = new([]byte)
		case stepresult.FieldPosition, stepresult.FieldAttemptNumber, stepresult.FieldChildrenSpawned:
			values[i] = new(sql.NullInt64)
		case stepresult.FieldID, stepresult.FieldOrgID, stepresult.FieldOperationID, stepresult.FieldStatus, stepresult.FieldErrorMessage, stepresult.FieldSkipReason:
			values[i] = new(sql.NullString)
		case stepresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case stepresult.ForeignKeys[0]: // pipeline_run_step_results
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepResult fields.
func (_m *StepResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stepresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stepresult.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case stepresult.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case stepresult.FieldOperationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_id", values[i])
			} else if value.Valid {
				_m.OperationID = value.String
			}
		case stepresult.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case stepresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stepresult.Status(value.String)
			}
		case stepresult.FieldInputPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputPayload); err != nil {
					return fmt.Errorf("unmarshal field input_payload: %w", err)
				}
			}
		case stepresult.FieldOutputPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutputPayload); err != nil {
					return fmt.Errorf("unmarshal field output_payload: %w", err)
				}
			}
		case stepresult.FieldProviderAttempts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provider_attempts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProviderAttempts); err != nil {
					return fmt.Errorf("unmarshal field provider_attempts: %w", err)
				}
			}
		case stepresult.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case stepresult.FieldSkipReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skip_reason", values[i])
			} else if value.Valid {
				_m.SkipReason = value.String
			}
		case stepresult.FieldChildrenSpawned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field children_spawned", values[i])
			} else if value.Valid {
				_m.ChildrenSpawned = int(value.Int64)
			}
		case stepresult.FieldSkippedDuplicates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_duplicates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkippedDuplicates); err != nil {
					return fmt.Errorf("unmarshal field skipped_duplicates: %w", err)
				}
			}
		case stepresult.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_run_step_results", values[i])
			} else if value.Valid {
				_m.pipeline_run_step_results = new(string)
				*_m.pipeline_run_step_results = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepResult.
// This includes values selected through modifiers, order, etc.
func (_m *StepResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the StepResult entity.
func (_m *StepResult) QueryRun() *PipelineRunQuery {
	return NewStepResultClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this StepResult.
// Note that you need to call StepResult.Unwrap() before calling this method if this StepResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepResult) Update() *StepResultUpdateOne {
	return NewStepResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepResult) Unwrap() *StepResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepResult) String() string {
	var builder strings.Builder
	builder.WriteString("StepResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("operation_id=")
	builder.WriteString(_m.OperationID)
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("input_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputPayload))
	builder.WriteString(", ")
	builder.WriteString("output_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputPayload))
	builder.WriteString(", ")
	builder.WriteString("provider_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderAttempts))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("skip_reason=")
	builder.WriteString(_m.SkipReason)
	builder.WriteString(", ")
	builder.WriteString("children_spawned=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildrenSpawned))
	builder.WriteString(", ")
	builder.WriteString("skipped_duplicates=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkippedDuplicates))
	builder.WriteByte(')')
	return builder.String()
}

// StepResults is a parsable slice of StepResult.
type StepResults []*StepResult
