// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/jobpostingentity"
)

// JobPostingEntityCreate is the builder for creating a JobPostingEntity entity.
type JobPostingEntityCreate struct {
	config
	mutation *JobPostingEntityMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobPostingEntityCreate) SetCreatedAt(v time.Time) *JobPostingEntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableCreatedAt(v *time.Time) *JobPostingEntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobPostingEntityCreate) SetUpdatedAt(v time.Time) *JobPostingEntityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableUpdatedAt(v *time.Time) *JobPostingEntityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *JobPostingEntityCreate) SetOrgID(v string) *JobPostingEntityCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetRecordVersion sets the "record_version" field.
func (_c *JobPostingEntityCreate) SetRecordVersion(v int) *JobPostingEntityCreate {
	_c.mutation.SetRecordVersion(v)
	return _c
}

// SetNillableRecordVersion sets the "record_version" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableRecordVersion(v *int) *JobPostingEntityCreate {
	if v != nil {
		_c.SetRecordVersion(*v)
	}
	return _c
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_c *JobPostingEntityCreate) SetCanonicalPayload(v map[string]interface{}) *JobPostingEntityCreate {
	_c.mutation.SetCanonicalPayload(v)
	return _c
}

// SetTheirstackJobID sets the "theirstack_job_id" field.
func (_c *JobPostingEntityCreate) SetTheirstackJobID(v string) *JobPostingEntityCreate {
	_c.mutation.SetTheirstackJobID(v)
	return _c
}

// SetNillableTheirstackJobID sets the "theirstack_job_id" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableTheirstackJobID(v *string) *JobPostingEntityCreate {
	if v != nil {
		_c.SetTheirstackJobID(*v)
	}
	return _c
}

// SetJobURL sets the "job_url" field.
func (_c *JobPostingEntityCreate) SetJobURL(v string) *JobPostingEntityCreate {
	_c.mutation.SetJobURL(v)
	return _c
}

// SetNillableJobURL sets the "job_url" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableJobURL(v *string) *JobPostingEntityCreate {
	if v != nil {
		_c.SetJobURL(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *JobPostingEntityCreate) SetTitle(v string) *JobPostingEntityCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableTitle(v *string) *JobPostingEntityCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetCompanyDomain sets the "company_domain" field.
func (_c *JobPostingEntityCreate) SetCompanyDomain(v string) *JobPostingEntityCreate {
	_c.mutation.SetCompanyDomain(v)
	return _c
}

// SetNillableCompanyDomain sets the "company_domain" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableCompanyDomain(v *string) *JobPostingEntityCreate {
	if v != nil {
		_c.SetCompanyDomain(*v)
	}
	return _c
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (_c *JobPostingEntityCreate) SetLastEnrichedAt(v time.Time) *JobPostingEntityCreate {
	_c.mutation.SetLastEnrichedAt(v)
	return _c
}

// SetNillableLastEnrichedAt sets the "last_enriched_at" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableLastEnrichedAt(v *time.Time) *JobPostingEntityCreate {
	if v != nil {
		_c.SetLastEnrichedAt(*v)
	}
	return _c
}

// SetLastRunID sets the "last_run_id" field.
func (_c *JobPostingEntityCreate) SetLastRunID(v string) *JobPostingEntityCreate {
	_c.mutation.SetLastRunID(v)
	return _c
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableLastRunID(v *string) *JobPostingEntityCreate {
	if v != nil {
		_c.SetLastRunID(*v)
	}
	return _c
}

// SetLastOperationID sets the "last_operation_id" field.
func (_c *JobPostingEntityCreate) SetLastOperationID(v string) *JobPostingEntityCreate {
	_c.mutation.SetLastOperationID(v)
	return _c
}

// SetNillableLastOperationID sets the "last_operation_id" field if the given value is not nil.
func (_c *JobPostingEntityCreate) SetNillableLastOperationID(v *string) *JobPostingEntityCreate {
	if v != nil {
		_c.SetLastOperationID(*v)
	}
	return _c
}

// SetSourceProviders sets the "source_providers" field.
func (_c *JobPostingEntityCreate) SetSourceProviders(v []string) *JobPostingEntityCreate {
	_c.mutation.SetSourceProviders(v)
	return _c
}

// SetID sets the "id" field.
func (_c *JobPostingEntityCreate) SetID(v string) *JobPostingEntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobPostingEntityMutation object of the builder.
func (_c *JobPostingEntityCreate) Mutation() *JobPostingEntityMutation {
	return _c.mutation
}

// Save creates the JobPostingEntity in the database.
func (_c *JobPostingEntityCreate) Save(ctx context.Context) (*JobPostingEntity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobPostingEntityCreate) SaveX(ctx context.Context) *JobPostingEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobPostingEntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobPostingEntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobPostingEntityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobpostingentity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := jobpostingentity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RecordVersion(); !ok {
		v := jobpostingentity.DefaultRecordVersion
		_c.mutation.SetRecordVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobPostingEntityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobPostingEntity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "JobPostingEntity.updated_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "JobPostingEntity.org_id"`)}
	}
	if v, ok := _c.mutation.OrgID(); ok {
		if err := jobpostingentity.OrgIDValidator(v); err != nil {
			return &ValidationError{Name: "org_id", err: fmt.Errorf(`ent: validator failed for field "JobPostingEntity.org_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordVersion(); !ok {
		return &ValidationError{Name: "record_version", err: errors.New(`ent: missing required field "JobPostingEntity.record_version"`)}
	}
	if v, ok := _c.mutation.RecordVersion(); ok {
		if err := jobpostingentity.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "JobPostingEntity.record_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanonicalPayload(); !ok {
		return &ValidationError{Name: "canonical_payload", err: errors.New(`ent: missing required field "JobPostingEntity.canonical_payload"`)}
	}
	return nil
}

func (_c *JobPostingEntityCreate) sqlSave(ctx context.Context) (*JobPostingEntity, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected JobPostingEntity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobPostingEntityCreate) createSpec() (*JobPostingEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &JobPostingEntity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobpostingentity.Table, sqlgraph.NewFieldSpec(jobpostingentity.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobpostingentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(jobpostingentity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(jobpostingentity.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.RecordVersion(); ok {
		_spec.SetField(jobpostingentity.FieldRecordVersion, field.TypeInt, value)
		_node.RecordVersion = value
	}
	if value, ok := _c.mutation.CanonicalPayload(); ok {
		_spec.SetField(jobpostingentity.FieldCanonicalPayload, field.TypeJSON, value)
		_node.CanonicalPayload = value
	}
	if value, ok := _c.mutation.TheirstackJobID(); ok {
		_spec.SetField(jobpostingentity.FieldTheirstackJobID, field.TypeString, value)
		_node.TheirstackJobID = value
	}
	if value, ok := _c.mutation.JobURL(); ok {
		_spec.SetField(jobpostingentity.FieldJobURL, field.TypeString, value)
		_node.JobURL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(jobpostingentity.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.CompanyDomain(); ok {
		_spec.SetField(jobpostingentity.FieldCompanyDomain, field.TypeString, value)
		_node.CompanyDomain = value
	}
	if value, ok := _c.mutation.LastEnrichedAt(); ok {
		_spec.SetField(jobpostingentity.FieldLastEnrichedAt, field.TypeTime, value)
		_node.LastEnrichedAt = &value
	}
	if value, ok := _c.mutation.LastRunID(); ok {
		_spec.SetField(jobpostingentity.FieldLastRunID, field.TypeString, value)
		_node.LastRunID = value
	}
	if value, ok := _c.mutation.LastOperationID(); ok {
		_spec.SetField(jobpostingentity.FieldLastOperationID, field.TypeString, value)
		_node.LastOperationID = value
	}
	if value, ok := _c.mutation.SourceProviders(); ok {
		_spec.SetField(jobpostingentity.FieldSourceProviders, field.TypeJSON, value)
		_node.SourceProviders = value
	}
	return _node, _spec
}

// JobPostingEntityCreateBulk is the builder for creating many JobPostingEntity entities in bulk.
type JobPostingEntityCreateBulk struct {
	config
	err      error
	builders []*JobPostingEntityCreate
}

// Save creates the JobPostingEntity entities in the database.
func (_c *JobPostingEntityCreateBulk) Save(ctx context.Context) ([]*JobPostingEntity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobPostingEntity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobPostingEntityMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobPostingEntityCreateBulk) SaveX(ctx context.Context) []*JobPostingEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobPostingEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobPostingEntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
