package domain

import (
	"fmt"
	"strings"
)

// EntityType identifies the canonical record family an operation produces.
type EntityType string

// Entity types.
const (
	EntityCompany EntityType = "company"
	EntityPerson  EntityType = "person"
	EntityJob     EntityType = "job"
	EntityNone    EntityType = "none"
)

// ParseEntityType validates a user-supplied entity type string.
func ParseEntityType(raw string) (EntityType, error) {
	switch EntityType(strings.ToLower(strings.TrimSpace(raw))) {
	case EntityCompany:
		return EntityCompany, nil
	case EntityPerson:
		return EntityPerson, nil
	case EntityJob:
		return EntityJob, nil
	default:
		return "", fmt.Errorf("unknown entity type %q", raw)
	}
}

// Canonical field names. These are a closed set per entity type; operations
// and the entity store agree on them so merged payloads never drift.
const (
	// Company fields.
	FieldCompanyDomain   = "company_domain"
	FieldCanonicalDomain = "canonical_domain"
	FieldDomain          = "domain"
	FieldCompanyName     = "company_name"
	FieldName            = "name"
	FieldLinkedInURL     = "linkedin_url"
	FieldIndustry        = "industry"
	FieldDescription     = "description"
	FieldEmployeeCount   = "employee_count"
	FieldTechStack       = "tech_stack"

	// Person fields.
	FieldFullName  = "full_name"
	FieldWorkEmail = "work_email"
	FieldJobTitle  = "job_title"

	// Job posting fields.
	FieldTheirstackJobID = "theirstack_job_id"
	FieldJobURL          = "job_url"
	FieldTitle           = "title"
)

// DomainAliases are the accepted spellings of a company domain, collapsed
// to one canonical key with first-non-empty-wins semantics.
var DomainAliases = []string{FieldCompanyDomain, FieldDomain, FieldCanonicalDomain}

// CanonicalFields lists the closed canonical field set per entity type.
func CanonicalFields(t EntityType) []string {
	switch t {
	case EntityCompany:
		return []string{
			FieldCanonicalDomain, FieldName, FieldLinkedInURL,
			FieldIndustry, FieldDescription, FieldEmployeeCount, FieldTechStack,
		}
	case EntityPerson:
		return []string{
			FieldFullName, FieldWorkEmail, FieldLinkedInURL, FieldJobTitle,
			FieldCompanyDomain,
		}
	case EntityJob:
		return []string{
			FieldTheirstackJobID, FieldJobURL, FieldTitle, FieldCompanyDomain,
			FieldDescription,
		}
	default:
		return nil
	}
}

// RunStatus is the pipeline-run state machine. queued → running →
// {succeeded | failed | skipped}; terminal states are never re-opened.
type RunStatus string

// Run statuses (persisted uppercase; see ent schema).
const (
	RunQueued    RunStatus = "QUEUED"
	RunRunning   RunStatus = "RUNNING"
	RunSucceeded RunStatus = "SUCCEEDED"
	RunFailed    RunStatus = "FAILED"
	RunSkipped   RunStatus = "SKIPPED"
)

// Terminal reports whether a run status is final.
func (s RunStatus) Terminal() bool {
	switch s {
	case RunSucceeded, RunFailed, RunSkipped:
		return true
	}
	return false
}

// BlueprintStepSnapshot is the value copy of one blueprint step embedded in
// every pipeline run at submission time.
type BlueprintStepSnapshot struct {
	Position    int                    `json:"position"`
	OperationID string                 `json:"operation_id"`
	StepConfig  map[string]interface{} `json:"step_config,omitempty"`
	FanOut      bool                   `json:"fan_out"`
	IsEnabled   bool                   `json:"is_enabled"`
	SkipIfFresh *SkipIfFresh           `json:"skip_if_fresh,omitempty"`
}

// SkipIfFresh configures the freshness short-circuit for one step.
type SkipIfFresh struct {
	MaxAgeHours    float64  `json:"max_age_hours"`
	IdentityFields []string `json:"identity_fields"`
}
