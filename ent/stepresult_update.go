// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/predicate"
	"waterline.io/waterline/ent/stepresult"
)

// StepResultUpdate is the builder for updating StepResult entities.
type StepResultUpdate struct {
	config
	hooks    []Hook
	mutation *StepResultMutation
}

// Where appends a list predicates to the StepResultUpdate builder.
func (_u *StepResultUpdate) Where(ps ...predicate.StepResult) *StepResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the StepResultMutation object of the builder.
func (_u *StepResultUpdate) Mutation() *StepResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepResultUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepResult.run"`)
	}
	return nil
}

func (_u *StepResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepresult.Table, stepresult.Columns, sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InputPayloadCleared() {
		_spec.ClearField(stepresult.FieldInputPayload, field.TypeJSON)
	}
	if _u.mutation.OutputPayloadCleared() {
		_spec.ClearField(stepresult.FieldOutputPayload, field.TypeJSON)
	}
	if _u.mutation.ProviderAttemptsCleared() {
		_spec.ClearField(stepresult.FieldProviderAttempts, field.TypeJSON)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stepresult.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(stepresult.FieldSkipReason, field.TypeString)
	}
	if _u.mutation.ChildrenSpawnedCleared() {
		_spec.ClearField(stepresult.FieldChildrenSpawned, field.TypeInt)
	}
	if _u.mutation.SkippedDuplicatesCleared() {
		_spec.ClearField(stepresult.FieldSkippedDuplicates, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepResultUpdateOne is the builder for updating a single StepResult entity.
type StepResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepResultMutation
}

// Mutation returns the StepResultMutation object of the builder.
func (_u *StepResultUpdateOne) Mutation() *StepResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepResultUpdate builder.
func (_u *StepResultUpdateOne) Where(ps ...predicate.StepResult) *StepResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepResultUpdateOne) Select(field string, fields ...string) *StepResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepResult entity.
func (_u *StepResultUpdateOne) Save(ctx context.Context) (*StepResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepResultUpdateOne) SaveX(ctx context.Context) *StepResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepResultUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepResult.run"`)
	}
	return nil
}

func (_u *StepResultUpdateOne) sqlSave(ctx context.Context) (_node *StepResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepresult.Table, stepresult.Columns, sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepresult.FieldID)
		for _, f := range fields {
			if !stepresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepresult.FieldID {
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
	if _u.mutation.InputPayloadCleared() {
		_spec.ClearField(stepresult.FieldInputPayload, field.TypeJSON)
	}
	if _u.mutation.OutputPayloadCleared() {
		_spec.ClearField(stepresult.FieldOutputPayload, field.TypeJSON)
	}
	if _u.mutation.ProviderAttemptsCleared() {
		_spec.ClearField(stepresult.FieldProviderAttempts, field.TypeJSON)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stepresult.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(stepresult.FieldSkipReason, field.TypeString)
	}
	if _u.mutation.ChildrenSpawnedCleared() {
		_spec.ClearField(stepresult.FieldChildrenSpawned, field.TypeInt)
	}
	if _u.mutation.SkippedDuplicatesCleared() {
		_spec.ClearField(stepresult.FieldSkippedDuplicates, field.TypeJSON)
	}
	_node = &StepResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
