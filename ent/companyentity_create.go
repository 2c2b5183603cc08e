// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/companyentity"
)

// CompanyEntityCreate is the builder for creating a CompanyEntity entity.
type CompanyEntityCreate struct {
	config
	mutation *CompanyEntityMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyEntityCreate) SetCreatedAt(v time.Time) *CompanyEntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyEntityCreate) SetNillableCreatedAt(v *time.Time) *CompanyEntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompanyEntityCreate) SetUpdatedAt(v time.Time) *CompanyEntityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompanyEntityCreate) SetNillableUpdatedAt(v *time.Time) *CompanyEntityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *CompanyEntityCreate) SetOrgID(v string) *CompanyEntityCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetRecordVersion sets the "record_version" field.
func (_c *CompanyEntityCreate) SetRecordVersion(v int) *CompanyEntityCreate {
	_c.mutation.SetRecordVersion(v)
	return _c
}

// SetNillableRecordVersion sets the "record_version" field if the given value is not nil.
func (_c *CompanyEntityCreate) SetNillableRecordVersion(v *int) *CompanyEntityCreate {
	if v != nil {
		_c.SetRecordVersion(*v)
	}
	return _c
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_c *CompanyEntityCreate) SetCanonicalPayload(v map[string]interface{}) *CompanyEntityCreate {
	_c.mutation.SetCanonicalPayload(v)
	return _c
}

// SetCanonicalDomain sets the "canonical_domain" field.
func (_c *CompanyEntityCreate) SetCanonicalDomain(v string) *CompanyEntityCreate {
	_c.mutation.SetCanonicalDomain(v)
	return _c
}

// SetNillableCanonicalDomain sets the "canonical_domain" field if the given value is not nil.
func (_c *CompanyEntityCreate) SetNillableCanonicalDomain(v *string) *CompanyEntityCreate {
	if v != nil {
		_c.SetCanonicalDomain(*v)
	}
	return _c
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_c *CompanyEntityCreate) SetLinkedinURL(v string) *CompanyEntityCreate {
	_c.mutation.SetLinkedinURL(v)
	return _c
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_c *CompanyEntityCreate) SetNillableLinkedinURL(v *string) *CompanyEntityCreate {
	if v != nil {
		_c.SetLinkedinURL(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *CompanyEntityCreate) SetName(v string) *CompanyEntityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *CompanyEntityCreate) SetNillableName(v *string) *CompanyEntityCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (_c *CompanyEntityCreate) SetLastEnrichedAt(v time.Time) *CompanyEntityCreate {
	_c.mutation.SetLastEnrichedAt(v)
	return _c
}

// SetNillableLastEnrichedAt sets the "last_enriched_at" field if the given value is not nil.
func (_c *CompanyEntityCreate) SetNillableLastEnrichedAt(v *time.Time) *CompanyEntityCreate {
	if v != nil {
		_c.SetLastEnrichedAt(*v)
	}
	return _c
}

// SetLastRunID sets the "last_run_id" field.
func (_c *CompanyEntityCreate) SetLastRunID(v string) *CompanyEntityCreate {
	_c.mutation.SetLastRunID(v)
	return _c
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_c *CompanyEntityCreate) SetNillableLastRunID(v *string) *CompanyEntityCreate {
	if v != nil {
		_c.SetLastRunID(*v)
	}
	return _c
}

// SetLastOperationID sets the "last_operation_id" field.
func (_c *CompanyEntityCreate) SetLastOperationID(v string) *CompanyEntityCreate {
	_c.mutation.SetLastOperationID(v)
	return _c
}

// SetNillableLastOperationID sets the "last_operation_id" field if the given value is not nil.
func (_c *CompanyEntityCreate) SetNillableLastOperationID(v *string) *CompanyEntityCreate {
	if v != nil {
		_c.SetLastOperationID(*v)
	}
	return _c
}

// SetSourceProviders sets the "source_providers" field.
func (_c *CompanyEntityCreate) SetSourceProviders(v []string) *CompanyEntityCreate {
	_c.mutation.SetSourceProviders(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyEntityCreate) SetID(v string) *CompanyEntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CompanyEntityMutation object of the builder.
func (_c *CompanyEntityCreate) Mutation() *CompanyEntityMutation {
	return _c.mutation
}

// Save creates the CompanyEntity in the database.
func (_c *CompanyEntityCreate) Save(ctx context.Context) (*CompanyEntity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyEntityCreate) SaveX(ctx context.Context) *CompanyEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyEntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyEntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyEntityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := companyentity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := companyentity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RecordVersion(); !ok {
		v := companyentity.DefaultRecordVersion
		_c.mutation.SetRecordVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyEntityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CompanyEntity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CompanyEntity.updated_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "CompanyEntity.org_id"`)}
	}
	if v, ok := _c.mutation.OrgID(); ok {
		if err := companyentity.OrgIDValidator(v); err != nil {
			return &ValidationError{Name: "org_id", err: fmt.Errorf(`ent: validator failed for field "CompanyEntity.org_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordVersion(); !ok {
		return &ValidationError{Name: "record_version", err: errors.New(`ent: missing required field "CompanyEntity.record_version"`)}
	}
	if v, ok := _c.mutation.RecordVersion(); ok {
		if err := companyentity.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "CompanyEntity.record_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanonicalPayload(); !ok {
		return &ValidationError{Name: "canonical_payload", err: errors.New(`ent: missing required field "CompanyEntity.canonical_payload"`)}
	}
	return nil
}

func (_c *CompanyEntityCreate) sqlSave(ctx context.Context) (*CompanyEntity, error) {
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
			return nil, fmt.Errorf("unexpected CompanyEntity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompanyEntityCreate) createSpec() (*CompanyEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &CompanyEntity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(companyentity.Table, sqlgraph.NewFieldSpec(companyentity.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(companyentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(companyentity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(companyentity.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.RecordVersion(); ok {
		_spec.SetField(companyentity.FieldRecordVersion, field.TypeInt, value)
		_node.RecordVersion = value
	}
	if value, ok := _c.mutation.CanonicalPayload(); ok {
		_spec.SetField(companyentity.FieldCanonicalPayload, field.TypeJSON, value)
		_node.CanonicalPayload = value
	}
	if value, ok := _c.mutation.CanonicalDomain(); ok {
		_spec.SetField(companyentity.FieldCanonicalDomain, field.TypeString, value)
		_node.CanonicalDomain = value
	}
	if value, ok := _c.mutation.LinkedinURL(); ok {
		_spec.SetField(companyentity.FieldLinkedinURL, field.TypeString, value)
		_node.LinkedinURL = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(companyentity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.LastEnrichedAt(); ok {
		_spec.SetField(companyentity.FieldLastEnrichedAt, field.TypeTime, value)
		_node.LastEnrichedAt = &value
	}
	if value, ok := _c.mutation.LastRunID(); ok {
		_spec.SetField(companyentity.FieldLastRunID, field.TypeString, value)
		_node.LastRunID = value
	}
	if value, ok := _c.mutation.LastOperationID(); ok {
		_spec.SetField(companyentity.FieldLastOperationID, field.TypeString, value)
		_node.LastOperationID = value
	}
	if value, ok := _c.mutation.SourceProviders(); ok {
		_spec.SetField(companyentity.FieldSourceProviders, field.TypeJSON, value)
		_node.SourceProviders = value
	}
	return _node, _spec
}

// CompanyEntityCreateBulk is the builder for creating many CompanyEntity entities in bulk.
type CompanyEntityCreateBulk struct {
	config
	err      error
	builders []*CompanyEntityCreate
}

// Save creates the CompanyEntity entities in the database.
func (_c *CompanyEntityCreateBulk) Save(ctx context.Context) ([]*CompanyEntity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompanyEntity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyEntityMutation)
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
func (_c *CompanyEntityCreateBulk) SaveX(ctx context.Context) []*CompanyEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyEntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
