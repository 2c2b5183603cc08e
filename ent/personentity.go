// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/personentity"
)

// PersonEntity is the model entity for the PersonEntity schema.
type PersonEntity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// RecordVersion holds the value of the "record_version" field.
	RecordVersion int `json:"record_version,omitempty"`
	// CanonicalPayload holds the value of the "canonical_payload" field.
	CanonicalPayload map[string]interface{} `json:"canonical_payload,omitempty"`
	// LinkedinURL holds the value of the "linkedin_url" field.
	LinkedinURL string `json:"linkedin_url,omitempty"`
	// WorkEmail holds the value of the "work_email" field.
	WorkEmail string `json:"work_email,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// LastEnrichedAt holds the value of the "last_enriched_at" field.
	LastEnrichedAt *time.Time `json:"last_enriched_at,omitempty"`
	// LastRunID holds the value of the "last_run_id" field.
	LastRunID string `json:"last_run_id,omitempty"`
	// LastOperationID holds the value of the "last_operation_id" field.
	LastOperationID string `json:"last_operation_id,omitempty"`
	// SourceProviders holds the value of the "source_providers" field.
	SourceProviders []string `json:"source_providers,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PersonEntity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case personentity.FieldCanonicalPayload, personentity.FieldSourceProviders:
			values[i] = new([]byte)
		case personentity.FieldRecordVersion:
			values[i] = new(sql.NullInt64)
		case personentity.FieldID, personentity.FieldOrgID, personentity.FieldLinkedinURL, personentity.FieldWorkEmail, personentity.FieldFullName, personentity.FieldLastRunID, personentity.FieldLastOperationID:
			values[i] = new(sql.NullString)
		case personentity.FieldCreatedAt, personentity.FieldUpdatedAt, personentity.FieldLastEnrichedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PersonEntity fields.
func (_m *PersonEntity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case personentity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case personentity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case personentity.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case personentity.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case personentity.FieldRecordVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field record_version", values[i])
			} else if value.Valid {
				_m.RecordVersion = int(value.Int64)
			}
		case personentity.FieldCanonicalPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CanonicalPayload); err != nil {
					return fmt.Errorf("unmarshal field canonical_payload: %w", err)
				}
			}
		case personentity.FieldLinkedinURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linkedin_url", values[i])
			} else if value.Valid {
				_m.LinkedinURL = value.String
			}
		case personentity.FieldWorkEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_email", values[i])
			} else if value.Valid {
				_m.WorkEmail = value.String
			}
		case personentity.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case personentity.FieldLastEnrichedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_enriched_at", values[i])
			} else if value.Valid {
				_m.LastEnrichedAt = new(time.Time)
				*_m.LastEnrichedAt = value.Time
			}
		case personentity.FieldLastRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_id", values[i])
			} else if value.Valid {
				_m.LastRunID = value.String
			}
		case personentity.FieldLastOperationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_operation_id", values[i])
			} else if value.Valid {
				_m.LastOperationID = value.String
			}
		case personentity.FieldSourceProviders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_providers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceProviders); err != nil {
					return fmt.Errorf("unmarshal field source_providers: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PersonEntity.
// This includes values selected through modifiers, order, etc.
func (_m *PersonEntity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PersonEntity.
// Note that you need to call PersonEntity.Unwrap() before calling this method if this PersonEntity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PersonEntity) Update() *PersonEntityUpdateOne {
	return NewPersonEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PersonEntity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PersonEntity) Unwrap() *PersonEntity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PersonEntity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PersonEntity) String() string {
	var builder strings.Builder
	builder.WriteString("PersonEntity(")
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
	builder.WriteString("record_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordVersion))
	builder.WriteString(", ")
	builder.WriteString("canonical_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanonicalPayload))
	builder.WriteString(", ")
	builder.WriteString("linkedin_url=")
	builder.WriteString(_m.LinkedinURL)
	builder.WriteString(", ")
	builder.WriteString("work_email=")
	builder.WriteString(_m.WorkEmail)
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	if v := _m.LastEnrichedAt; v != nil {
		builder.WriteString("last_enriched_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_run_id=")
	builder.WriteString(_m.LastRunID)
	builder.WriteString(", ")
	builder.WriteString("last_operation_id=")
	builder.WriteString(_m.LastOperationID)
	builder.WriteString(", ")
	builder.WriteString("source_providers=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceProviders))
	builder.WriteByte(')')
	return builder.String()
}

// PersonEntities is a parsable slice of PersonEntity.
type PersonEntities []*PersonEntity
