// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/blueprint"
	"waterline.io/waterline/ent/blueprintstep"
)

// BlueprintStepCreate is the builder for creating a BlueprintStep entity.
type BlueprintStepCreate struct {
	config
	mutation *BlueprintStepMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlueprintStepCreate) SetCreatedAt(v time.Time) *BlueprintStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlueprintStepCreate) SetNillableCreatedAt(v *time.Time) *BlueprintStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BlueprintStepCreate) SetUpdatedAt(v time.Time) *BlueprintStepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BlueprintStepCreate) SetNillableUpdatedAt(v *time.Time) *BlueprintStepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *BlueprintStepCreate) SetPosition(v int) *BlueprintStepCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetOperationID sets the "operation_id" field.
func (_c *BlueprintStepCreate) SetOperationID(v string) *BlueprintStepCreate {
	_c.mutation.SetOperationID(v)
	return _c
}

// SetStepConfig sets the "step_config" field.
func (_c *BlueprintStepCreate) SetStepConfig(v map[string]interface{}) *BlueprintStepCreate {
	_c.mutation.SetStepConfig(v)
	return _c
}

// SetFanOut sets the "fan_out" field.
func (_c *BlueprintStepCreate) SetFanOut(v bool) *BlueprintStepCreate {
	_c.mutation.SetFanOut(v)
	return _c
}

// SetNillableFanOut sets the "fan_out" field if the given value is not nil.
func (_c *BlueprintStepCreate) SetNillableFanOut(v *bool) *BlueprintStepCreate {
	if v != nil {
		_c.SetFanOut(*v)
	}
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *BlueprintStepCreate) SetIsEnabled(v bool) *BlueprintStepCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *BlueprintStepCreate) SetNillableIsEnabled(v *bool) *BlueprintStepCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetSkipIfFresh sets the "skip_if_fresh" field.
func (_c *BlueprintStepCreate) SetSkipIfFresh(v map[string]interface{}) *BlueprintStepCreate {
	_c.mutation.SetSkipIfFresh(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BlueprintStepCreate) SetID(v string) *BlueprintStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBlueprintID sets the "blueprint" edge to the Blueprint entity by ID.
func (_c *BlueprintStepCreate) SetBlueprintID(id string) *BlueprintStepCreate {
	_c.mutation.SetBlueprintID(id)
	return _c
}

// SetBlueprint sets the "blueprint" edge to the Blueprint entity.
func (_c *BlueprintStepCreate) SetBlueprint(v *Blueprint) *BlueprintStepCreate {
	return _c.SetBlueprintID(v.ID)
}

// Mutation returns the BlueprintStepMutation object of the builder.
func (_c *BlueprintStepCreate) Mutation() *BlueprintStepMutation {
	return _c.mutation
}

// Save creates the BlueprintStep in the database.
func (_c *BlueprintStepCreate) Save(ctx context.Context) (*BlueprintStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlueprintStepCreate) SaveX(ctx context.Context) *BlueprintStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlueprintStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blueprintstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := blueprintstep.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.FanOut(); !ok {
		v := blueprintstep.DefaultFanOut
		_c.mutation.SetFanOut(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := blueprintstep.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlueprintStepCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlueprintStep.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BlueprintStep.updated_at"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "BlueprintStep.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := blueprintstep.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "BlueprintStep.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OperationID(); !ok {
		return &ValidationError{Name: "operation_id", err: errors.New(`ent: missing required field "BlueprintStep.operation_id"`)}
	}
	if v, ok := _c.mutation.OperationID(); ok {
		if err := blueprintstep.OperationIDValidator(v); err != nil {
			return &ValidationError{Name: "operation_id", err: fmt.Errorf(`ent: validator failed for field "BlueprintStep.operation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FanOut(); !ok {
		return &ValidationError{Name: "fan_out", err: errors.New(`ent: missing required field "BlueprintStep.fan_out"`)}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "BlueprintStep.is_enabled"`)}
	}
	if len(_c.mutation.BlueprintIDs()) == 0 {
		return &ValidationError{Name: "blueprint", err: errors.New(`ent: missing required edge "BlueprintStep.blueprint"`)}
	}
	return nil
}

func (_c *BlueprintStepCreate) sqlSave(ctx context.Context) (*BlueprintStep, error) {
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
			return nil, fmt.Errorf("unexpected BlueprintStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlueprintStepCreate) createSpec() (*BlueprintStep, *sqlgraph.CreateSpec) {
	var (
		_node = &BlueprintStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blueprintstep.Table, sqlgraph.NewFieldSpec(blueprintstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blueprintstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(blueprintstep.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(blueprintstep.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.OperationID(); ok {
		_spec.SetField(blueprintstep.FieldOperationID, field.TypeString, value)
		_node.OperationID = value
	}
	if value, ok := _c.mutation.StepConfig(); ok {
		_spec.SetField(blueprintstep.FieldStepConfig, field.TypeJSON, value)
		_node.StepConfig = value
	}
	if value, ok := _c.mutation.FanOut(); ok {
		_spec.SetField(blueprintstep.FieldFanOut, field.TypeBool, value)
		_node.FanOut = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(blueprintstep.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.SkipIfFresh(); ok {
		_spec.SetField(blueprintstep.FieldSkipIfFresh, field.TypeJSON, value)
		_node.SkipIfFresh = value
	}
	if nodes := _c.mutation.BlueprintIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blueprintstep.BlueprintTable,
			Columns: []string{blueprintstep.BlueprintColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.blueprint_steps = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlueprintStepCreateBulk is the builder for creating many BlueprintStep entities in bulk.
type BlueprintStepCreateBulk struct {
	config
	err      error
	builders []*BlueprintStepCreate
}

// Save creates the BlueprintStep entities in the database.
func (_c *BlueprintStepCreateBulk) Save(ctx context.Context) ([]*BlueprintStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlueprintStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintStepMutation)
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
func (_c *BlueprintStepCreateBulk) SaveX(ctx context.Context) []*BlueprintStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
