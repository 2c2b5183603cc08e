// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/blueprint"
	"waterline.io/waterline/ent/blueprintstep"
	"waterline.io/waterline/ent/predicate"
)

// BlueprintStepUpdate is the builder for updating BlueprintStep entities.
type BlueprintStepUpdate struct {
	config
	hooks    []Hook
	mutation *BlueprintStepMutation
}

// Where appends a list predicates to the BlueprintStepUpdate builder.
func (_u *BlueprintStepUpdate) Where(ps ...predicate.BlueprintStep) *BlueprintStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlueprintStepUpdate) SetUpdatedAt(v time.Time) *BlueprintStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *BlueprintStepUpdate) SetPosition(v int) *BlueprintStepUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *BlueprintStepUpdate) SetNillablePosition(v *int) *BlueprintStepUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *BlueprintStepUpdate) AddPosition(v int) *BlueprintStepUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *BlueprintStepUpdate) SetOperationID(v string) *BlueprintStepUpdate {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *BlueprintStepUpdate) SetNillableOperationID(v *string) *BlueprintStepUpdate {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// SetStepConfig sets the "step_config" field.
func (_u *BlueprintStepUpdate) SetStepConfig(v map[string]interface{}) *BlueprintStepUpdate {
	_u.mutation.SetStepConfig(v)
	return _u
}

// ClearStepConfig clears the value of the "step_config" field.
func (_u *BlueprintStepUpdate) ClearStepConfig() *BlueprintStepUpdate {
	_u.mutation.ClearStepConfig()
	return _u
}

// SetFanOut sets the "fan_out" field.
func (_u *BlueprintStepUpdate) SetFanOut(v bool) *BlueprintStepUpdate {
	_u.mutation.SetFanOut(v)
	return _u
}

// SetNillableFanOut sets the "fan_out" field if the given value is not nil.
func (_u *BlueprintStepUpdate) SetNillableFanOut(v *bool) *BlueprintStepUpdate {
	if v != nil {
		_u.SetFanOut(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *BlueprintStepUpdate) SetIsEnabled(v bool) *BlueprintStepUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *BlueprintStepUpdate) SetNillableIsEnabled(v *bool) *BlueprintStepUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSkipIfFresh sets the "skip_if_fresh" field.
func (_u *BlueprintStepUpdate) SetSkipIfFresh(v map[string]interface{}) *BlueprintStepUpdate {
	_u.mutation.SetSkipIfFresh(v)
	return _u
}

// ClearSkipIfFresh clears the value of the "skip_if_fresh" field.
func (_u *BlueprintStepUpdate) ClearSkipIfFresh() *BlueprintStepUpdate {
	_u.mutation.ClearSkipIfFresh()
	return _u
}

// SetBlueprintID sets the "blueprint" edge to the Blueprint entity by ID.
func (_u *BlueprintStepUpdate) SetBlueprintID(id string) *BlueprintStepUpdate {
	_u.mutation.SetBlueprintID(id)
	return _u
}

// SetBlueprint sets the "blueprint" edge to the Blueprint entity.
func (_u *BlueprintStepUpdate) SetBlueprint(v *Blueprint) *BlueprintStepUpdate {
	return _u.SetBlueprintID(v.ID)
}

// Mutation returns the BlueprintStepMutation object of the builder.
func (_u *BlueprintStepUpdate) Mutation() *BlueprintStepMutation {
	return _u.mutation
}

// ClearBlueprint clears the "blueprint" edge to the Blueprint entity.
func (_u *BlueprintStepUpdate) ClearBlueprint() *BlueprintStepUpdate {
	_u.mutation.ClearBlueprint()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlueprintStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlueprintStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlueprintStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blueprintstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintStepUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := blueprintstep.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "BlueprintStep.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationID(); ok {
		if err := blueprintstep.OperationIDValidator(v); err != nil {
			return &ValidationError{Name: "operation_id", err: fmt.Errorf(`ent: validator failed for field "BlueprintStep.operation_id": %w`, err)}
		}
	}
	if _u.mutation.BlueprintCleared() && len(_u.mutation.BlueprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlueprintStep.blueprint"`)
	}
	return nil
}

func (_u *BlueprintStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprintstep.Table, blueprintstep.Columns, sqlgraph.NewFieldSpec(blueprintstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blueprintstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(blueprintstep.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(blueprintstep.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(blueprintstep.FieldOperationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepConfig(); ok {
		_spec.SetField(blueprintstep.FieldStepConfig, field.TypeJSON, value)
	}
	if _u.mutation.StepConfigCleared() {
		_spec.ClearField(blueprintstep.FieldStepConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.FanOut(); ok {
		_spec.SetField(blueprintstep.FieldFanOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(blueprintstep.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkipIfFresh(); ok {
		_spec.SetField(blueprintstep.FieldSkipIfFresh, field.TypeJSON, value)
	}
	if _u.mutation.SkipIfFreshCleared() {
		_spec.ClearField(blueprintstep.FieldSkipIfFresh, field.TypeJSON)
	}
	if _u.mutation.BlueprintCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlueprintIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlueprintStepUpdateOne is the builder for updating a single BlueprintStep entity.
type BlueprintStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlueprintStepMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlueprintStepUpdateOne) SetUpdatedAt(v time.Time) *BlueprintStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *BlueprintStepUpdateOne) SetPosition(v int) *BlueprintStepUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *BlueprintStepUpdateOne) SetNillablePosition(v *int) *BlueprintStepUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *BlueprintStepUpdateOne) AddPosition(v int) *BlueprintStepUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *BlueprintStepUpdateOne) SetOperationID(v string) *BlueprintStepUpdateOne {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *BlueprintStepUpdateOne) SetNillableOperationID(v *string) *BlueprintStepUpdateOne {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// SetStepConfig sets the "step_config" field.
func (_u *BlueprintStepUpdateOne) SetStepConfig(v map[string]interface{}) *BlueprintStepUpdateOne {
	_u.mutation.SetStepConfig(v)
	return _u
}

// ClearStepConfig clears the value of the "step_config" field.
func (_u *BlueprintStepUpdateOne) ClearStepConfig() *BlueprintStepUpdateOne {
	_u.mutation.ClearStepConfig()
	return _u
}

// SetFanOut sets the "fan_out" field.
func (_u *BlueprintStepUpdateOne) SetFanOut(v bool) *BlueprintStepUpdateOne {
	_u.mutation.SetFanOut(v)
	return _u
}

// SetNillableFanOut sets the "fan_out" field if the given value is not nil.
func (_u *BlueprintStepUpdateOne) SetNillableFanOut(v *bool) *BlueprintStepUpdateOne {
	if v != nil {
		_u.SetFanOut(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *BlueprintStepUpdateOne) SetIsEnabled(v bool) *BlueprintStepUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *BlueprintStepUpdateOne) SetNillableIsEnabled(v *bool) *BlueprintStepUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSkipIfFresh sets the "skip_if_fresh" field.
func (_u *BlueprintStepUpdateOne) SetSkipIfFresh(v map[string]interface{}) *BlueprintStepUpdateOne {
	_u.mutation.SetSkipIfFresh(v)
	return _u
}

// ClearSkipIfFresh clears the value of the "skip_if_fresh" field.
func (_u *BlueprintStepUpdateOne) ClearSkipIfFresh() *BlueprintStepUpdateOne {
	_u.mutation.ClearSkipIfFresh()
	return _u
}

// SetBlueprintID sets the "blueprint" edge to the Blueprint entity by ID.
func (_u *BlueprintStepUpdateOne) SetBlueprintID(id string) *BlueprintStepUpdateOne {
	_u.mutation.SetBlueprintID(id)
	return _u
}

// SetBlueprint sets the "blueprint" edge to the Blueprint entity.
func (_u *BlueprintStepUpdateOne) SetBlueprint(v *Blueprint) *BlueprintStepUpdateOne {
	return _u.SetBlueprintID(v.ID)
}

// Mutation returns the BlueprintStepMutation object of the builder.
func (_u *BlueprintStepUpdateOne) Mutation() *BlueprintStepMutation {
	return _u.mutation
}

// ClearBlueprint clears the "blueprint" edge to the Blueprint entity.
func (_u *BlueprintStepUpdateOne) ClearBlueprint() *BlueprintStepUpdateOne {
	_u.mutation.ClearBlueprint()
	return _u
}

// Where appends a list predicates to the BlueprintStepUpdate builder.
func (_u *BlueprintStepUpdateOne) Where(ps ...predicate.BlueprintStep) *BlueprintStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlueprintStepUpdateOne) Select(field string, fields ...string) *BlueprintStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlueprintStep entity.
func (_u *BlueprintStepUpdateOne) Save(ctx context.Context) (*BlueprintStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintStepUpdateOne) SaveX(ctx context.Context) *BlueprintStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlueprintStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlueprintStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blueprintstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintStepUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := blueprintstep.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "BlueprintStep.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OperationID(); ok {
		if err := blueprintstep.OperationIDValidator(v); err != nil {
			return &ValidationError{Name: "operation_id", err: fmt.Errorf(`ent: validator failed for field "BlueprintStep.operation_id": %w`, err)}
		}
	}
	if _u.mutation.BlueprintCleared() && len(_u.mutation.BlueprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlueprintStep.blueprint"`)
	}
	return nil
}

func (_u *BlueprintStepUpdateOne) sqlSave(ctx context.Context) (_node *BlueprintStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprintstep.Table, blueprintstep.Columns, sqlgraph.NewFieldSpec(blueprintstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlueprintStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintstep.FieldID)
		for _, f := range fields {
			if !blueprintstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprintstep.FieldID {
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
		_spec.SetField(blueprintstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(blueprintstep.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(blueprintstep.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(blueprintstep.FieldOperationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepConfig(); ok {
		_spec.SetField(blueprintstep.FieldStepConfig, field.TypeJSON, value)
	}
	if _u.mutation.StepConfigCleared() {
		_spec.ClearField(blueprintstep.FieldStepConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.FanOut(); ok {
		_spec.SetField(blueprintstep.FieldFanOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(blueprintstep.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkipIfFresh(); ok {
		_spec.SetField(blueprintstep.FieldSkipIfFresh, field.TypeJSON, value)
	}
	if _u.mutation.SkipIfFreshCleared() {
		_spec.ClearField(blueprintstep.FieldSkipIfFresh, field.TypeJSON)
	}
	if _u.mutation.BlueprintCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlueprintIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BlueprintStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
