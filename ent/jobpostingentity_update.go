// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/jobpostingentity"
	"waterline.io/waterline/ent/predicate"
)

// JobPostingEntityUpdate is the builder for updating JobPostingEntity entities.
type JobPostingEntityUpdate struct {
	config
	hooks    []Hook
	mutation *JobPostingEntityMutation
}

// Where appends a list predicates to the JobPostingEntityUpdate builder.
func (_u *JobPostingEntityUpdate) Where(ps ...predicate.JobPostingEntity) *JobPostingEntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobPostingEntityUpdate) SetUpdatedAt(v time.Time) *JobPostingEntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecordVersion sets the "record_version" field.
func (_u *JobPostingEntityUpdate) SetRecordVersion(v int) *JobPostingEntityUpdate {
	_u.mutation.ResetRecordVersion()
	_u.mutation.SetRecordVersion(v)
	return _u
}

// SetNillableRecordVersion sets the "record_version" field if the given value is not nil.
func (_u *JobPostingEntityUpdate) SetNillableRecordVersion(v *int) *JobPostingEntityUpdate {
	if v != nil {
		_u.SetRecordVersion(*v)
	}
	return _u
}

// AddRecordVersion adds value to the "record_version" field.
func (_u *JobPostingEntityUpdate) AddRecordVersion(v int) *JobPostingEntityUpdate {
	_u.mutation.AddRecordVersion(v)
	return _u
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_u *JobPostingEntityUpdate) SetCanonicalPayload(v map[string]interface{}) *JobPostingEntityUpdate {
	_u.mutation.SetCanonicalPayload(v)
	return _u
}

// SetTheirstackJobID sets the "theirstack_job_id" field.
func (_u *JobPostingEntityUpdate) SetTheirstackJobID(v string) *JobPostingEntityUpdate {
	_u.mutation.SetTheirstackJobID(v)
	return _u
}

// SetNillableTheirstackJobID sets the "theirstack_job_id" field if the given value is not nil.
func (_u *JobPostingEntityUpdate) SetNillableTheirstackJobID(v *string) *JobPostingEntityUpdate {
	if v != nil {
		_u.SetTheirstackJobID(*v)
	}
	return _u
}

// ClearTheirstackJobID clears the value of the "theirstack_job_id" field.
func (_u *JobPostingEntityUpdate) ClearTheirstackJobID() *JobPostingEntityUpdate {
	_u.mutation.ClearTheirstackJobID()
	return _u
}

// SetJobURL sets the "job_url" field.
func (_u *JobPostingEntityUpdate) SetJobURL(v string) *JobPostingEntityUpdate {
	_u.mutation.SetJobURL(v)
	return _u
}

// SetNillableJobURL sets the "job_url" field if the given value is not nil.
func (_u *JobPostingEntityUpdate) SetNillableJobURL(v *string) *JobPostingEntityUpdate {
	if v != nil {
		_u.SetJobURL(*v)
	}
	return _u
}

// ClearJobURL clears the value of the "job_url" field.
func (_u *JobPostingEntityUpdate) ClearJobURL() *JobPostingEntityUpdate {
	_u.mutation.ClearJobURL()
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobPostingEntityUpdate) SetTitle(v string) *JobPostingEntityUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobPostingEntityUpdate) SetNillableTitle(v *string) *JobPostingEntityUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *JobPostingEntityUpdate) ClearTitle() *JobPostingEntityUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetCompanyDomain sets the "company_domain" field.
func (_u *JobPostingEntityUpdate) SetCompanyDomain(v string) *JobPostingEntityUpdate {
	_u.mutation.SetCompanyDomain(v)
	return _u
}

// SetNillableCompanyDomain sets the "company_domain" field if the given value is not nil.
func (_u *JobPostingEntityUpdate) SetNillableCompanyDomain(v *string) *JobPostingEntityUpdate {
	if v != nil {
		_u.SetCompanyDomain(*v)
	}
	return _u
}

// ClearCompanyDomain clears the value of the "company_domain" field.
func (_u *JobPostingEntityUpdate) ClearCompanyDomain() *JobPostingEntityUpdate {
	_u.mutation.ClearCompanyDomain()
	return _u
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (_u *JobPostingEntityUpdate) SetLastEnrichedAt(v time.Time) *JobPostingEntityUpdate {
	_u.mutation.SetLastEnrichedAt(v)
	return _u
}

// SetNillableLastEnrichedAt sets the "last_enriched_at" field if the given value is not nil.
func (_u *JobPostingEntityUpdate) SetNillableLastEnrichedAt(v *time.Time) *JobPostingEntityUpdate {
	if v != nil {
		_u.SetLastEnrichedAt(*v)
	}
	return _u
}

// ClearLastEnrichedAt clears the value of the "last_enriched_at" field.
func (_u *JobPostingEntityUpdate) ClearLastEnrichedAt() *JobPostingEntityUpdate {
	_u.mutation.ClearLastEnrichedAt()
	return _u
}

// SetLastRunID sets the "last_run_id" field.
func (_u *JobPostingEntityUpdate) SetLastRunID(v string) *JobPostingEntityUpdate {
	_u.mutation.SetLastRunID(v)
	return _u
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_u *JobPostingEntityUpdate) SetNillableLastRunID(v *string) *JobPostingEntityUpdate {
	if v != nil {
		_u.SetLastRunID(*v)
	}
	return _u
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (_u *JobPostingEntityUpdate) ClearLastRunID() *JobPostingEntityUpdate {
	_u.mutation.ClearLastRunID()
	return _u
}

// SetLastOperationID sets the "last_operation_id" field.
func (_u *JobPostingEntityUpdate) SetLastOperationID(v string) *JobPostingEntityUpdate {
	_u.mutation.SetLastOperationID(v)
	return _u
}

// SetNillableLastOperationID sets the "last_operation_id" field if the given value is not nil.
func (_u *JobPostingEntityUpdate) SetNillableLastOperationID(v *string) *JobPostingEntityUpdate {
	if v != nil {
		_u.SetLastOperationID(*v)
	}
	return _u
}

// ClearLastOperationID clears the value of the "last_operation_id" field.
func (_u *JobPostingEntityUpdate) ClearLastOperationID() *JobPostingEntityUpdate {
	_u.mutation.ClearLastOperationID()
	return _u
}

// SetSourceProviders sets the "source_providers" field.
func (_u *JobPostingEntityUpdate) SetSourceProviders(v []string) *JobPostingEntityUpdate {
	_u.mutation.SetSourceProviders(v)
	return _u
}

// AppendSourceProviders appends value to the "source_providers" field.
func (_u *JobPostingEntityUpdate) AppendSourceProviders(v []string) *JobPostingEntityUpdate {
	_u.mutation.AppendSourceProviders(v)
	return _u
}

// ClearSourceProviders clears the value of the "source_providers" field.
func (_u *JobPostingEntityUpdate) ClearSourceProviders() *JobPostingEntityUpdate {
	_u.mutation.ClearSourceProviders()
	return _u
}

// Mutation returns the JobPostingEntityMutation object of the builder.
func (_u *JobPostingEntityUpdate) Mutation() *JobPostingEntityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobPostingEntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPostingEntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobPostingEntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPostingEntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobPostingEntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobpostingentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPostingEntityUpdate) check() error {
	if v, ok := _u.mutation.RecordVersion(); ok {
		if err := jobpostingentity.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "JobPostingEntity.record_version": %w`, err)}
		}
	}
	return nil
}

func (_u *JobPostingEntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobpostingentity.Table, jobpostingentity.Columns, sqlgraph.NewFieldSpec(jobpostingentity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobpostingentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordVersion(); ok {
		_spec.SetField(jobpostingentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordVersion(); ok {
		_spec.AddField(jobpostingentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CanonicalPayload(); ok {
		_spec.SetField(jobpostingentity.FieldCanonicalPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TheirstackJobID(); ok {
		_spec.SetField(jobpostingentity.FieldTheirstackJobID, field.TypeString, value)
	}
	if _u.mutation.TheirstackJobIDCleared() {
		_spec.ClearField(jobpostingentity.FieldTheirstackJobID, field.TypeString)
	}
	if value, ok := _u.mutation.JobURL(); ok {
		_spec.SetField(jobpostingentity.FieldJobURL, field.TypeString, value)
	}
	if _u.mutation.JobURLCleared() {
		_spec.ClearField(jobpostingentity.FieldJobURL, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(jobpostingentity.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(jobpostingentity.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyDomain(); ok {
		_spec.SetField(jobpostingentity.FieldCompanyDomain, field.TypeString, value)
	}
	if _u.mutation.CompanyDomainCleared() {
		_spec.ClearField(jobpostingentity.FieldCompanyDomain, field.TypeString)
	}
	if value, ok := _u.mutation.LastEnrichedAt(); ok {
		_spec.SetField(jobpostingentity.FieldLastEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnrichedAtCleared() {
		_spec.ClearField(jobpostingentity.FieldLastEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunID(); ok {
		_spec.SetField(jobpostingentity.FieldLastRunID, field.TypeString, value)
	}
	if _u.mutation.LastRunIDCleared() {
		_spec.ClearField(jobpostingentity.FieldLastRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LastOperationID(); ok {
		_spec.SetField(jobpostingentity.FieldLastOperationID, field.TypeString, value)
	}
	if _u.mutation.LastOperationIDCleared() {
		_spec.ClearField(jobpostingentity.FieldLastOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceProviders(); ok {
		_spec.SetField(jobpostingentity.FieldSourceProviders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobpostingentity.FieldSourceProviders, value)
		})
	}
	if _u.mutation.SourceProvidersCleared() {
		_spec.ClearField(jobpostingentity.FieldSourceProviders, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobpostingentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobPostingEntityUpdateOne is the builder for updating a single JobPostingEntity entity.
type JobPostingEntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobPostingEntityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobPostingEntityUpdateOne) SetUpdatedAt(v time.Time) *JobPostingEntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecordVersion sets the "record_version" field.
func (_u *JobPostingEntityUpdateOne) SetRecordVersion(v int) *JobPostingEntityUpdateOne {
	_u.mutation.ResetRecordVersion()
	_u.mutation.SetRecordVersion(v)
	return _u
}

// SetNillableRecordVersion sets the "record_version" field if the given value is not nil.
func (_u *JobPostingEntityUpdateOne) SetNillableRecordVersion(v *int) *JobPostingEntityUpdateOne {
	if v != nil {
		_u.SetRecordVersion(*v)
	}
	return _u
}

// AddRecordVersion adds value to the "record_version" field.
func (_u *JobPostingEntityUpdateOne) AddRecordVersion(v int) *JobPostingEntityUpdateOne {
	_u.mutation.AddRecordVersion(v)
	return _u
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_u *JobPostingEntityUpdateOne) SetCanonicalPayload(v map[string]interface{}) *JobPostingEntityUpdateOne {
	_u.mutation.SetCanonicalPayload(v)
	return _u
}

// SetTheirstackJobID sets the "theirstack_job_id" field.
func (_u *JobPostingEntityUpdateOne) SetTheirstackJobID(v string) *JobPostingEntityUpdateOne {
	_u.mutation.SetTheirstackJobID(v)
	return _u
}

// SetNillableTheirstackJobID sets the "theirstack_job_id" field if the given value is not nil.
func (_u *JobPostingEntityUpdateOne) SetNillableTheirstackJobID(v *string) *JobPostingEntityUpdateOne {
	if v != nil {
		_u.SetTheirstackJobID(*v)
	}
	return _u
}

// ClearTheirstackJobID clears the value of the "theirstack_job_id" field.
func (_u *JobPostingEntityUpdateOne) ClearTheirstackJobID() *JobPostingEntityUpdateOne {
	_u.mutation.ClearTheirstackJobID()
	return _u
}

// SetJobURL sets the "job_url" field.
func (_u *JobPostingEntityUpdateOne) SetJobURL(v string) *JobPostingEntityUpdateOne {
	_u.mutation.SetJobURL(v)
	return _u
}

// SetNillableJobURL sets the "job_url" field if the given value is not nil.
func (_u *JobPostingEntityUpdateOne) SetNillableJobURL(v *string) *JobPostingEntityUpdateOne {
	if v != nil {
		_u.SetJobURL(*v)
	}
	return _u
}

// ClearJobURL clears the value of the "job_url" field.
func (_u *JobPostingEntityUpdateOne) ClearJobURL() *JobPostingEntityUpdateOne {
	_u.mutation.ClearJobURL()
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobPostingEntityUpdateOne) SetTitle(v string) *JobPostingEntityUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobPostingEntityUpdateOne) SetNillableTitle(v *string) *JobPostingEntityUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *JobPostingEntityUpdateOne) ClearTitle() *JobPostingEntityUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetCompanyDomain sets the "company_domain" field.
func (_u *JobPostingEntityUpdateOne) SetCompanyDomain(v string) *JobPostingEntityUpdateOne {
	_u.mutation.SetCompanyDomain(v)
	return _u
}

// SetNillableCompanyDomain sets the "company_domain" field if the given value is not nil.
func (_u *JobPostingEntityUpdateOne) SetNillableCompanyDomain(v *string) *JobPostingEntityUpdateOne {
	if v != nil {
		_u.SetCompanyDomain(*v)
	}
	return _u
}

// ClearCompanyDomain clears the value of the "company_domain" field.
func (_u *JobPostingEntityUpdateOne) ClearCompanyDomain() *JobPostingEntityUpdateOne {
	_u.mutation.ClearCompanyDomain()
	return _u
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (_u *JobPostingEntityUpdateOne) SetLastEnrichedAt(v time.Time) *JobPostingEntityUpdateOne {
	_u.mutation.SetLastEnrichedAt(v)
	return _u
}

// SetNillableLastEnrichedAt sets the "last_enriched_at" field if the given value is not nil.
func (_u *JobPostingEntityUpdateOne) SetNillableLastEnrichedAt(v *time.Time) *JobPostingEntityUpdateOne {
	if v != nil {
		_u.SetLastEnrichedAt(*v)
	}
	return _u
}

// ClearLastEnrichedAt clears the value of the "last_enriched_at" field.
func (_u *JobPostingEntityUpdateOne) ClearLastEnrichedAt() *JobPostingEntityUpdateOne {
	_u.mutation.ClearLastEnrichedAt()
	return _u
}

// SetLastRunID sets the "last_run_id" field.
func (_u *JobPostingEntityUpdateOne) SetLastRunID(v string) *JobPostingEntityUpdateOne {
	_u.mutation.SetLastRunID(v)
	return _u
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_u *JobPostingEntityUpdateOne) SetNillableLastRunID(v *string) *JobPostingEntityUpdateOne {
	if v != nil {
		_u.SetLastRunID(*v)
	}
	return _u
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (_u *JobPostingEntityUpdateOne) ClearLastRunID() *JobPostingEntityUpdateOne {
	_u.mutation.ClearLastRunID()
	return _u
}

// SetLastOperationID sets the "last_operation_id" field.
func (_u *JobPostingEntityUpdateOne) SetLastOperationID(v string) *JobPostingEntityUpdateOne {
	_u.mutation.SetLastOperationID(v)
	return _u
}

// SetNillableLastOperationID sets the "last_operation_id" field if the given value is not nil.
func (_u *JobPostingEntityUpdateOne) SetNillableLastOperationID(v *string) *JobPostingEntityUpdateOne {
	if v != nil {
		_u.SetLastOperationID(*v)
	}
	return _u
}

// ClearLastOperationID clears the value of the "last_operation_id" field.
func (_u *JobPostingEntityUpdateOne) ClearLastOperationID() *JobPostingEntityUpdateOne {
	_u.mutation.ClearLastOperationID()
	return _u
}

// SetSourceProviders sets the "source_providers" field.
func (_u *JobPostingEntityUpdateOne) SetSourceProviders(v []string) *JobPostingEntityUpdateOne {
	_u.mutation.SetSourceProviders(v)
	return _u
}

// AppendSourceProviders appends value to the "source_providers" field.
func (_u *JobPostingEntityUpdateOne) AppendSourceProviders(v []string) *JobPostingEntityUpdateOne {
	_u.mutation.AppendSourceProviders(v)
	return _u
}

// ClearSourceProviders clears the value of the "source_providers" field.
func (_u *JobPostingEntityUpdateOne) ClearSourceProviders() *JobPostingEntityUpdateOne {
	_u.mutation.ClearSourceProviders()
	return _u
}

// Mutation returns the JobPostingEntityMutation object of the builder.
func (_u *JobPostingEntityUpdateOne) Mutation() *JobPostingEntityMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobPostingEntityUpdate builder.
func (_u *JobPostingEntityUpdateOne) Where(ps ...predicate.JobPostingEntity) *JobPostingEntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobPostingEntityUpdateOne) Select(field string, fields ...string) *JobPostingEntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobPostingEntity entity.
func (_u *JobPostingEntityUpdateOne) Save(ctx context.Context) (*JobPostingEntity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPostingEntityUpdateOne) SaveX(ctx context.Context) *JobPostingEntity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobPostingEntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPostingEntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobPostingEntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobpostingentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPostingEntityUpdateOne) check() error {
	if v, ok := _u.mutation.RecordVersion(); ok {
		if err := jobpostingentity.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "JobPostingEntity.record_version": %w`, err)}
		}
	}
	return nil
}

func (_u *JobPostingEntityUpdateOne) sqlSave(ctx context.Context) (_node *JobPostingEntity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobpostingentity.Table, jobpostingentity.Columns, sqlgraph.NewFieldSpec(jobpostingentity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobPostingEntity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobpostingentity.FieldID)
		for _, f := range fields {
			if !jobpostingentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobpostingentity.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobpostingentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordVersion(); ok {
		_spec.SetField(jobpostingentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordVersion(); ok {
		_spec.AddField(jobpostingentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CanonicalPayload(); ok {
		_spec.SetField(jobpostingentity.FieldCanonicalPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TheirstackJobID(); ok {
		_spec.SetField(jobpostingentity.FieldTheirstackJobID, field.TypeString, value)
	}
	if _u.mutation.TheirstackJobIDCleared() {
		_spec.ClearField(jobpostingentity.FieldTheirstackJobID, field.TypeString)
	}
	if value, ok := _u.mutation.JobURL(); ok {
		_spec.SetField(jobpostingentity.FieldJobURL, field.TypeString, value)
	}
	if _u.mutation.JobURLCleared() {
		_spec.ClearField(jobpostingentity.FieldJobURL, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(jobpostingentity.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(jobpostingentity.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyDomain(); ok {
		_spec.SetField(jobpostingentity.FieldCompanyDomain, field.TypeString, value)
	}
	if _u.mutation.CompanyDomainCleared() {
		_spec.ClearField(jobpostingentity.FieldCompanyDomain, field.TypeString)
	}
	if value, ok := _u.mutation.LastEnrichedAt(); ok {
		_spec.SetField(jobpostingentity.FieldLastEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnrichedAtCleared() {
		_spec.ClearField(jobpostingentity.FieldLastEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunID(); ok {
		_spec.SetField(jobpostingentity.FieldLastRunID, field.TypeString, value)
	}
	if _u.mutation.LastRunIDCleared() {
		_spec.ClearField(jobpostingentity.FieldLastRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LastOperationID(); ok {
		_spec.SetField(jobpostingentity.FieldLastOperationID, field.TypeString, value)
	}
	if _u.mutation.LastOperationIDCleared() {
		_spec.ClearField(jobpostingentity.FieldLastOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceProviders(); ok {
		_spec.SetField(jobpostingentity.FieldSourceProviders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobpostingentity.FieldSourceProviders, value)
		})
	}
	if _u.mutation.SourceProvidersCleared() {
		_spec.ClearField(jobpostingentity.FieldSourceProviders, field.TypeJSON)
	}
	_node = &JobPostingEntity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobpostingentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
