// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/entitysnapshot"
	"waterline.io/waterline/ent/predicate"
)

// EntitySnapshotUpdate is the builder for updating EntitySnapshot entities.
type EntitySnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *EntitySnapshotMutation
}

// Where appends a list predicates to the EntitySnapshotUpdate builder.
func (_u *EntitySnapshotUpdate) Where(ps ...predicate.EntitySnapshot) *EntitySnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EntitySnapshotMutation object of the builder.
func (_u *EntitySnapshotUpdate) Mutation() *EntitySnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntitySnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitySnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntitySnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitySnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntitySnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(entitysnapshot.Table, entitysnapshot.Columns, sqlgraph.NewFieldSpec(entitysnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SourceRunIDCleared() {
		_spec.ClearField(entitysnapshot.FieldSourceRunID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitysnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntitySnapshotUpdateOne is the builder for updating a single EntitySnapshot entity.
type EntitySnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntitySnapshotMutation
}

// Mutation returns the EntitySnapshotMutation object of the builder.
func (_u *EntitySnapshotUpdateOne) Mutation() *EntitySnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntitySnapshotUpdate builder.
func (_u *EntitySnapshotUpdateOne) Where(ps ...predicate.EntitySnapshot) *EntitySnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntitySnapshotUpdateOne) Select(field string, fields ...string) *EntitySnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntitySnapshot entity.
func (_u *EntitySnapshotUpdateOne) Save(ctx context.Context) (*EntitySnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitySnapshotUpdateOne) SaveX(ctx context.Context) *EntitySnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntitySnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitySnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntitySnapshotUpdateOne) sqlSave(ctx context.Context) (_node *EntitySnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(entitysnapshot.Table, entitysnapshot.Columns, sqlgraph.NewFieldSpec(entitysnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntitySnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitysnapshot.FieldID)
		for _, f := range fields {
			if !entitysnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitysnapshot.FieldID {
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
	if _u.mutation.SourceRunIDCleared() {
		_spec.ClearField(entitysnapshot.FieldSourceRunID, field.TypeString)
	}
	_node = &EntitySnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitysnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
