// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/entitysnapshot"
)

// EntitySnapshotCreate is the builder for creating a EntitySnapshot entity.
type EntitySnapshotCreate struct {
	config
	mutation *EntitySnapshotMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntitySnapshotCreate) SetCreatedAt(v time.Time) *EntitySnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntitySnapshotCreate) SetNillableCreatedAt(v *time.Time) *EntitySnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *EntitySnapshotCreate) SetOrgID(v string) *EntitySnapshotCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntitySnapshotCreate) SetEntityType(v entitysnapshot.EntityType) *EntitySnapshotCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *EntitySnapshotCreate) SetEntityID(v string) *EntitySnapshotCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetRecordVersion sets the "record_version" field.
func (_c *EntitySnapshotCreate) SetRecordVersion(v int) *EntitySnapshotCreate {
	_c.mutation.SetRecordVersion(v)
	return _c
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_c *EntitySnapshotCreate) SetCanonicalPayload(v map[string]interface{}) *EntitySnapshotCreate {
	_c.mutation.SetCanonicalPayload(v)
	return _c
}

// SetSourceRunID sets the "source_run_id" field.
func (_c *EntitySnapshotCreate) SetSourceRunID(v string) *EntitySnapshotCreate {
	_c.mutation.SetSourceRunID(v)
	return _c
}

// SetNillableSourceRunID sets the "source_run_id" field if the given value is not nil.
func (_c *EntitySnapshotCreate) SetNillableSourceRunID(v *string) *EntitySnapshotCreate {
	if v != nil {
		_c.SetSourceRunID(*v)
	}
	return _c
}

// SetCapturedAt sets the "captured_at" field.
func (_c *EntitySnapshotCreate) SetCapturedAt(v time.Time) *EntitySnapshotCreate {
	_c.mutation.SetCapturedAt(v)
	return _c
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_c *EntitySnapshotCreate) SetNillableCapturedAt(v *time.Time) *EntitySnapshotCreate {
	if v != nil {
		_c.SetCapturedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntitySnapshotCreate) SetID(v string) *EntitySnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EntitySnapshotMutation object of the builder.
func (_c *EntitySnapshotCreate) Mutation() *EntitySnapshotMutation {
	return _c.mutation
}

// Save creates the EntitySnapshot in the database.
func (_c *EntitySnapshotCreate) Save(ctx context.Context) (*EntitySnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntitySnapshotCreate) SaveX(ctx context.Context) *EntitySnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitySnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitySnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntitySnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entitysnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		v := entitysnapshot.DefaultCapturedAt()
		_c.mutation.SetCapturedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntitySnapshotCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntitySnapshot.created_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "EntitySnapshot.org_id"`)}
	}
	if v, ok := _c.mutation.OrgID(); ok {
		if err := entitysnapshot.OrgIDValidator(v); err != nil {
			return &ValidationError{Name: "org_id", err: fmt.Errorf(`ent: validator failed for field "EntitySnapshot.org_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EntitySnapshot.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := entitysnapshot.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntitySnapshot.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntitySnapshot.entity_id"`)}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := entitysnapshot.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "EntitySnapshot.entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordVersion(); !ok {
		return &ValidationError{Name: "record_version", err: errors.New(`ent: missing required field "EntitySnapshot.record_version"`)}
	}
	if v, ok := _c.mutation.RecordVersion(); ok {
		if err := entitysnapshot.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "EntitySnapshot.record_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanonicalPayload(); !ok {
		return &ValidationError{Name: "canonical_payload", err: errors.New(`ent: missing required field "EntitySnapshot.canonical_payload"`)}
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		return &ValidationError{Name: "captured_at", err: errors.New(`ent: missing required field "EntitySnapshot.captured_at"`)}
	}
	return nil
}

func (_c *EntitySnapshotCreate) sqlSave(ctx context.Context) (*EntitySnapshot, error) {
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
			return nil, fmt.Errorf("unexpected EntitySnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntitySnapshotCreate) createSpec() (*EntitySnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &EntitySnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitysnapshot.Table, sqlgraph.NewFieldSpec(entitysnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entitysnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(entitysnapshot.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entitysnapshot.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(entitysnapshot.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.RecordVersion(); ok {
		_spec.SetField(entitysnapshot.FieldRecordVersion, field.TypeInt, value)
		_node.RecordVersion = value
	}
	if value, ok := _c.mutation.CanonicalPayload(); ok {
		_spec.SetField(entitysnapshot.FieldCanonicalPayload, field.TypeJSON, value)
		_node.CanonicalPayload = value
	}
	if value, ok := _c.mutation.SourceRunID(); ok {
		_spec.SetField(entitysnapshot.FieldSourceRunID, field.TypeString, value)
		_node.SourceRunID = value
	}
	if value, ok := _c.mutation.CapturedAt(); ok {
		_spec.SetField(entitysnapshot.FieldCapturedAt, field.TypeTime, value)
		_node.CapturedAt = value
	}
	return _node, _spec
}

// EntitySnapshotCreateBulk is the builder for creating many EntitySnapshot entities in bulk.
type EntitySnapshotCreateBulk struct {
	config
	err      error
	builders []*EntitySnapshotCreate
}

// Save creates the EntitySnapshot entities in the database.
func (_c *EntitySnapshotCreateBulk) Save(ctx context.Context) ([]*EntitySnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntitySnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntitySnapshotMutation)
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
func (_c *EntitySnapshotCreateBulk) SaveX(ctx context.Context) []*EntitySnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitySnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitySnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
