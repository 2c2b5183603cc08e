// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/blueprint"
	"waterline.io/waterline/ent/blueprintstep"
)

// BlueprintStep is the model entity for the BlueprintStep schema.
type BlueprintStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// OperationID holds the value of the "operation_id" field.
	OperationID string `json:"operation_id,omitempty"`
	// StepConfig holds the value of the "step_config" field.
	StepConfig map[string]interface{} `json:"step_config,omitempty"`
	// FanOut holds the value of the "fan_out" field.
	FanOut bool `json:"fan_out,omitempty"`
	// IsEnabled holds the value of the "is_enabled" field.
	IsEnabled bool `json:"is_enabled,omitempty"`
	// SkipIfFresh holds the value of the "skip_if_fresh" field.
	SkipIfFresh map[string]interface{} `json:"skip_if_fresh,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlueprintStepQuery when eager-loading is set.
	Edges           BlueprintStepEdges `json:"edges"`
	blueprint_steps *string
	selectValues    sql.SelectValues
}

// BlueprintStepEdges holds the relations/edges for other nodes in the graph.
type BlueprintStepEdges struct {
	// Blueprint holds the value of the blueprint edge.
	Blueprint *Blueprint `json:"blueprint,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BlueprintOrErr returns the Blueprint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlueprintStepEdges) BlueprintOrErr() (*Blueprint, error) {
	if e.Blueprint != nil {
		return e.Blueprint, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: blueprint.Label}
	}
	return nil, &NotLoadedError{edge: "blueprint"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlueprintStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blueprintstep.FieldStepConfig, blueprintstep.FieldSkipIfFresh:
			values[i] = new([]byte)
		case blueprintstep.FieldFanOut, blueprintstep.FieldIsEnabled:
			values[i] = new(sql.NullBool)
		case blueprintstep.FieldPosition:
			values[i] = new(sql.NullInt64)
		case blueprintstep.FieldID, blueprintstep.FieldOperationID:
			values[i] = new(sql.NullString)
		case blueprintstep.FieldCreatedAt, blueprintstep.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case blueprintstep.ForeignKeys[0]: // blueprint_steps
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlueprintStep fields.
func (_m *BlueprintStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blueprintstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case blueprintstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case blueprintstep.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case blueprintstep.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case blueprintstep.FieldOperationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_id", values[i])
			} else if value.Valid {
				_m.OperationID = value.String
			}
		case blueprintstep.FieldStepConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field step_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepConfig); err != nil {
					return fmt.Errorf("unmarshal field step_config: %w", err)
				}
			}
		case blueprintstep.FieldFanOut:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fan_out", values[i])
			} else if value.Valid {
				_m.FanOut = value.Bool
			}
		case blueprintstep.FieldIsEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_enabled", values[i])
			} else if value.Valid {
				_m.IsEnabled = value.Bool
			}
		case blueprintstep.FieldSkipIfFresh:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skip_if_fresh", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkipIfFresh); err != nil {
					return fmt.Errorf("unmarshal field skip_if_fresh: %w", err)
				}
			}
		case blueprintstep.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_steps", values[i])
			} else if value.Valid {
				_m.blueprint_steps = new(string)
				*_m.blueprint_steps = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlueprintStep.
// This includes values selected through modifiers, order, etc.
func (_m *BlueprintStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBlueprint queries the "blueprint" edge of the BlueprintStep entity.
func (_m *BlueprintStep) QueryBlueprint() *BlueprintQuery {
	return NewBlueprintStepClient(_m.config).QueryBlueprint(_m)
}

// Update returns a builder for updating this BlueprintStep.
// Note that you need to call BlueprintStep.Unwrap() before calling this method if this BlueprintStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlueprintStep) Update() *BlueprintStepUpdateOne {
	return NewBlueprintStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlueprintStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlueprintStep) Unwrap() *BlueprintStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlueprintStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlueprintStep) String() string {
	var builder strings.Builder
	builder.WriteString("BlueprintStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("operation_id=")
	builder.WriteString(_m.OperationID)
	builder.WriteString(", ")
	builder.WriteString("step_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepConfig))
	builder.WriteString(", ")
	builder.WriteString("fan_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.FanOut))
	builder.WriteString(", ")
	builder.WriteString("is_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEnabled))
	builder.WriteString(", ")
	builder.WriteString("skip_if_fresh=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipIfFresh))
	builder.WriteByte(')')
	return builder.String()
}

// BlueprintSteps is a parsable slice of BlueprintStep.
type BlueprintSteps []*BlueprintStep
