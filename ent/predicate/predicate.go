// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Blueprint is the predicate function for blueprint builders.
type Blueprint func(*sql.Selector)

// BlueprintStep is the predicate function for blueprintstep builders.
type BlueprintStep func(*sql.Selector)

// CompanyEntity is the predicate function for companyentity builders.
type CompanyEntity func(*sql.Selector)

// EntitySnapshot is the predicate function for entitysnapshot builders.
type EntitySnapshot func(*sql.Selector)

// JobPostingEntity is the predicate function for jobpostingentity builders.
type JobPostingEntity func(*sql.Selector)

// Org is the predicate function for org builders.
type Org func(*sql.Selector)

// PersonEntity is the predicate function for personentity builders.
type PersonEntity func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// StepResult is the predicate function for stepresult builders.
type StepResult func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
