// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/jobpostingentity"
)

// JobPostingEntity is the model entity for the JobPostingEntity schema.
type JobPostingEntity struct {
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
	// TheirstackJobID holds the value of the "theirstack_job_id" field.
	TheirstackJobID string `json:"theirstack_job_id,omitempty"`
	// JobURL holds the value of the "job_url" field.
	JobURL string `json:"job_url,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// CompanyDomain holds the value of the "company_domain" field.
	CompanyDomain string `json:"company_domain,omitempty"`
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
func (*JobPostingEntity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobpostingentity.FieldCanonicalPayload, jobpostingentity.FieldSourceProviders:
			values[i] = new([]byte)
		case jobpostingentity.FieldRecordVersion:
			values[i] = new(sql.NullInt64)
		case jobpostingentity.FieldID, jobpostingentity.FieldOrgID, jobpostingentity.FieldTheirstackJobID, jobpostingentity.FieldJobURL, jobpostingentity.FieldTitle, jobpostingentity.FieldCompanyDomain, jobpostingentity.FieldLastRunID, jobpostingentity.FieldLastOperationID:
			values[i] = new(sql.NullString)
		case jobpostingentity.FieldCreatedAt, jobpostingentity.FieldUpdatedAt, jobpostingentity.FieldLastEnrichedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobPostingEntity fields.
func (_m *JobPostingEntity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobpostingentity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case jobpostingentity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case jobpostingentity.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case jobpostingentity.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case jobpostingentity.FieldRecordVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field record_version", values[i])
			} else if value.Valid {
				_m.RecordVersion = int(value.Int64)
			}
		case jobpostingentity.FieldCanonicalPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CanonicalPayload); err != nil {
					return fmt.Errorf("unmarshal field canonical_payload: %w", err)
				}
			}
		case jobpostingentity.FieldTheirstackJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theirstack_job_id", values[i])
			} else if value.Valid {
				_m.TheirstackJobID = value.String
			}
		case jobpostingentity.FieldJobURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_url", values[i])
			} else if value.Valid {
				_m.JobURL = value.String
			}
		case jobpostingentity.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case jobpostingentity.FieldCompanyDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_domain", values[i])
			} else if value.Valid {
				_m.CompanyDomain = value.String
			}
		case jobpostingentity.FieldLastEnrichedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_enriched_at", values[i])
			} else if value.Valid {
				_m.LastEnrichedAt = new(time.Time)
				*_m.LastEnrichedAt = value.Time
			}
		case jobpostingentity.FieldLastRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_id", values[i])
			} else if value.Valid {
				_m.LastRunID = value.String
			}
		case jobpostingentity.FieldLastOperationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_operation_id", values[i])
			} else if value.Valid {
				_m.LastOperationID = value.String
			}
		case jobpostingentity.FieldSourceProviders:
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

// Value returns the ent.Value that was dynamically selected and assigned to the JobPostingEntity.
// This includes values selected through modifiers, order, etc.
func (_m *JobPostingEntity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this JobPostingEntity.
// Note that you need to call JobPostingEntity.Unwrap() before calling this method if this JobPostingEntity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobPostingEntity) Update() *JobPostingEntityUpdateOne {
	return NewJobPostingEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobPostingEntity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobPostingEntity) Unwrap() *JobPostingEntity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobPostingEntity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobPostingEntity) String() string {
	var builder strings.Builder
	builder.WriteString("JobPostingEntity(")
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
	builder.WriteString("theirstack_job_id=")
	builder.WriteString(_m.TheirstackJobID)
	builder.WriteString(", ")
	builder.WriteString("job_url=")
	builder.WriteString(_m.JobURL)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("company_domain=")
	builder.WriteString(_m.CompanyDomain)
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

// JobPostingEntities is a parsable slice of JobPostingEntity.
type JobPostingEntities []*JobPostingEntity
