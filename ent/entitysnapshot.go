// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/entitysnapshot"
)

// EntitySnapshot is the model entity for the EntitySnapshot schema.
type EntitySnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType entitysnapshot.EntityType `json:"entity_type,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// RecordVersion holds the value of the "record_version" field.
	RecordVersion int `json:"record_version,omitempty"`
	// CanonicalPayload holds the value of the "canonical_payload" field.
	CanonicalPayload map[string]interface{} `json:"canonical_payload,omitempty"`
	// SourceRunID holds the value of the "source_run_id" field.
	SourceRunID string `json:"source_run_id,omitempty"`
	// CapturedAt holds the value of the "captured_at" field.
	CapturedAt   time.Time `json:"captured_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntitySnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitysnapshot.FieldCanonicalPayload:
			values[i] = new([]byte)
		case entitysnapshot.FieldRecordVersion:
			values[i] = new(sql.NullInt64)
		case entitysnapshot.FieldID, entitysnapshot.FieldOrgID, entitysnapshot.FieldEntityType, entitysnapshot.FieldEntityID, entitysnapshot.FieldSourceRunID:
			values[i] = new(sql.NullString)
		case entitysnapshot.FieldCreatedAt, entitysnapshot.FieldCapturedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntitySnapshot fields.
func (_m *EntitySnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitysnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entitysnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entitysnapshot.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case entitysnapshot.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = entitysnapshot.EntityType(value.String)
			}
		case entitysnapshot.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case entitysnapshot.FieldRecordVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field record_version", values[i])
			} else if value.Valid {
				_m.RecordVersion = int(value.Int64)
			}
		case entitysnapshot.FieldCanonicalPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CanonicalPayload); err != nil {
					return fmt.Errorf("unmarshal field canonical_payload: %w", err)
				}
			}
		case entitysnapshot.FieldSourceRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_run_id", values[i])
			} else if value.Valid {
				_m.SourceRunID = value.String
			}
		case entitysnapshot.FieldCapturedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field captured_at", values[i])
			} else if value.Valid {
				_m.CapturedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntitySnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *EntitySnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EntitySnapshot.
// Note that you need to call EntitySnapshot.Unwrap() before calling this method if this EntitySnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntitySnapshot) Update() *EntitySnapshotUpdateOne {
	return NewEntitySnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntitySnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntitySnapshot) Unwrap() *EntitySnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntitySnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntitySnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("EntitySnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("record_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordVersion))
	builder.WriteString(", ")
	builder.WriteString("canonical_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanonicalPayload))
	builder.WriteString(", ")
	builder.WriteString("source_run_id=")
	builder.WriteString(_m.SourceRunID)
	builder.WriteString(", ")
	builder.WriteString("captured_at=")
	builder.WriteString(_m.CapturedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntitySnapshots is a parsable slice of EntitySnapshot.
type EntitySnapshots []*EntitySnapshot
