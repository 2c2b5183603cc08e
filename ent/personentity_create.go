// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/personentity"
)

// PersonEntityCreate is the builder for creating a PersonEntity entity.
type PersonEntityCreate struct {
	config
	mutation *PersonEntityMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonEntityCreate) SetCreatedAt(v time.Time) *PersonEntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonEntityCreate) SetNillableCreatedAt(v *time.Time) *PersonEntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PersonEntityCreate) SetUpdatedAt(v time.Time) *PersonEntityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PersonEntityCreate) SetNillableUpdatedAt(v *time.Time) *PersonEntityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *PersonEntityCreate) SetOrgID(v string) *PersonEntityCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetRecordVersion sets the "record_version" field.
func (_c *PersonEntityCreate) SetRecordVersion(v int) *PersonEntityCreate {
	_c.mutation.SetRecordVersion(v)
	return _c
}

// SetNillableRecordVersion sets the "record_version" field if the given value is not nil.
func (_c *PersonEntityCreate) SetNillableRecordVersion(v *int) *PersonEntityCreate {
	if v != nil {
		_c.SetRecordVersion(*v)
	}
	return _c
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_c *PersonEntityCreate) SetCanonicalPayload(v map[string]interface{}) *PersonEntityCreate {
	_c.mutation.SetCanonicalPayload(v)
	return _c
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_c *PersonEntityCreate) SetLinkedinURL(v string) *PersonEntityCreate {
	_c.mutation.SetLinkedinURL(v)
	return _c
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_c *PersonEntityCreate) SetNillableLinkedinURL(v *string) *PersonEntityCreate {
	if v != nil {
		_c.SetLinkedinURL(*v)
	}
	return _c
}

// SetWorkEmail sets the "work_email" field.
func (_c *PersonEntityCreate) SetWorkEmail(v string) *PersonEntityCreate {
	_c.mutation.SetWorkEmail(v)
	return _c
}

// SetNillableWorkEmail sets the "work_email" field if the given value is not nil.
func (_c *PersonEntityCreate) SetNillableWorkEmail(v *string) *PersonEntityCreate {
	if v != nil {
		_c.SetWorkEmail(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *PersonEntityCreate) SetFullName(v string) *PersonEntityCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *PersonEntityCreate) SetNillableFullName(v *string) *PersonEntityCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (_c *PersonEntityCreate) SetLastEnrichedAt(v time.Time) *PersonEntityCreate {
	_c.mutation.SetLastEnrichedAt(v)
	return _c
}

// SetNillableLastEnrichedAt sets the "last_enriched_at" field if the given value is not nil.
func (_c *PersonEntityCreate) SetNillableLastEnrichedAt(v *time.Time) *PersonEntityCreate {
	if v != nil {
		_c.SetLastEnrichedAt(*v)
	}
	return _c
}

// SetLastRunID sets the "last_run_id" field.
func (_c *PersonEntityCreate) SetLastRunID(v string) *PersonEntityCreate {
	_c.mutation.SetLastRunID(v)
	return _c
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_c *PersonEntityCreate) SetNillableLastRunID(v *string) *PersonEntityCreate {
	if v != nil {
		_c.SetLastRunID(*v)
	}
	return _c
}

// SetLastOperationID sets the "last_operation_id" field.
func (_c *PersonEntityCreate) SetLastOperationID(v string) *PersonEntityCreate {
	_c.mutation.SetLastOperationID(v)
	return _c
}

// SetNillableLastOperationID sets the "last_operation_id" field if the given value is not nil.
func (_c *PersonEntityCreate) SetNillableLastOperationID(v *string) *PersonEntityCreate {
	if v != nil {
		_c.SetLastOperationID(*v)
	}
	return _c
}

// SetSourceProviders sets the "source_providers" field.
func (_c *PersonEntityCreate) SetSourceProviders(v []string) *PersonEntityCreate {
	_c.mutation.SetSourceProviders(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PersonEntityCreate) SetID(v string) *PersonEntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PersonEntityMutation object of the builder.
func (_c *PersonEntityCreate) Mutation() *PersonEntityMutation {
	return _c.mutation
}

// Save creates the PersonEntity in the database.
func (_c *PersonEntityCreate) Save(ctx context.Context) (*PersonEntity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonEntityCreate) SaveX(ctx context.Context) *PersonEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonEntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonEntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonEntityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := personentity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := personentity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RecordVersion(); !ok {
		v := personentity.DefaultRecordVersion
		_c.mutation.SetRecordVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonEntityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PersonEntity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PersonEntity.updated_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "PersonEntity.org_id"`)}
	}
	if v, ok := _c.mutation.OrgID(); ok {
		if err := personentity.OrgIDValidator(v); err != nil {
			return &ValidationError{Name: "org_id", err: fmt.Errorf(`ent: validator failed for field "PersonEntity.org_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordVersion(); !ok {
		return &ValidationError{Name: "record_version", err: errors.New(`ent: missing required field "PersonEntity.record_version"`)}
	}
	if v, ok := _c.mutation.RecordVersion(); ok {
		if err := personentity.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "PersonEntity.record_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanonicalPayload(); !ok {
		return &ValidationError{Name: "canonical_payload", err: errors.New(`ent: missing required field "PersonEntity.canonical_payload"`)}
	}
	return nil
}

func (_c *PersonEntityCreate) sqlSave(ctx context.Context) (*PersonEntity, error) {
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
			return nil, fmt.Errorf("unexpected PersonEntity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PersonEntityCreate) createSpec() (*PersonEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &PersonEntity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(personentity.Table, sqlgraph.NewFieldSpec(personentity.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(personentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(personentity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(personentity.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.RecordVersion(); ok {
		_spec.SetField(personentity.FieldRecordVersion, field.TypeInt, value)
		_node.RecordVersion = value
	}
	if value, ok := _c.mutation.CanonicalPayload(); ok {
		_spec.SetField(personentity.FieldCanonicalPayload, field.TypeJSON, value)
		_node.CanonicalPayload = value
	}
	if value, ok := _c.mutation.LinkedinURL(); ok {
		_spec.SetField(personentity.FieldLinkedinURL, field.TypeString, value)
		_node.LinkedinURL = value
	}
	if value, ok := _c.mutation.WorkEmail(); ok {
		_spec.SetField(personentity.FieldWorkEmail, field.TypeString, value)
		_node.WorkEmail = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(personentity.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.LastEnrichedAt(); ok {
		_spec.SetField(personentity.FieldLastEnrichedAt, field.TypeTime, value)
		_node.LastEnrichedAt = &value
	}
	if value, ok := _c.mutation.LastRunID(); ok {
		_spec.SetField(personentity.FieldLastRunID, field.TypeString, value)
		_node.LastRunID = value
	}
	if value, ok := _c.mutation.LastOperationID(); ok {
		_spec.SetField(personentity.FieldLastOperationID, field.TypeString, value)
		_node.LastOperationID = value
	}
	if value, ok := _c.mutation.SourceProviders(); ok {
		_spec.SetField(personentity.FieldSourceProviders, field.TypeJSON, value)
		_node.SourceProviders = value
	}
	return _node, _spec
}

// PersonEntityCreateBulk is the builder for creating many PersonEntity entities in bulk.
type PersonEntityCreateBulk struct {
	config
	err      error
	builders []*PersonEntityCreate
}

// Save creates the PersonEntity entities in the database.
func (_c *PersonEntityCreateBulk) Save(ctx context.Context) ([]*PersonEntity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PersonEntity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonEntityMutation)
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
func (_c *PersonEntityCreateBulk) SaveX(ctx context.Context) []*PersonEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonEntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
