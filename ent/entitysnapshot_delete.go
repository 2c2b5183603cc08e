// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/entitysnapshot"
	"waterline.io/waterline/ent/predicate"
)

// EntitySnapshotDelete is the builder for deleting a EntitySnapshot entity.
type EntitySnapshotDelete struct {
	config
	hooks    []Hook
	mutation *EntitySnapshotMutation
}

// Where appends a list predicates to the EntitySnapshotDelete builder.
func (_d *EntitySnapshotDelete) Where(ps ...predicate.EntitySnapshot) *EntitySnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EntitySnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntitySnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EntitySnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(entitysnapshot.Table, sqlgraph.NewFieldSpec(entitysnapshot.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EntitySnapshotDeleteOne is the builder for deleting a single EntitySnapshot entity.
type EntitySnapshotDeleteOne struct {
	_d *EntitySnapshotDelete
}

// Where appends a list predicates to the EntitySnapshotDelete builder.
func (_d *EntitySnapshotDeleteOne) Where(ps ...predicate.EntitySnapshot) *EntitySnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EntitySnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{entitysnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntitySnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
