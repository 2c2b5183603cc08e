// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/jobpostingentity"
	"waterline.io/waterline/ent/predicate"
)

// JobPostingEntityDelete is the builder for deleting a JobPostingEntity entity.
type JobPostingEntityDelete struct {
	config
	hooks    []Hook
	mutation *JobPostingEntityMutation
}

// Where appends a list predicates to the JobPostingEntityDelete builder.
func (_d *JobPostingEntityDelete) Where(ps ...predicate.JobPostingEntity) *JobPostingEntityDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *JobPostingEntityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JobPostingEntityDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *JobPostingEntityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(jobpostingentity.Table, sqlgraph.NewFieldSpec(jobpostingentity.FieldID, field.TypeString))
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

// JobPostingEntityDeleteOne is the builder for deleting a single JobPostingEntity entity.
type JobPostingEntityDeleteOne struct {
	_d *JobPostingEntityDelete
}

// Where appends a list predicates to the JobPostingEntityDelete builder.
func (_d *JobPostingEntityDeleteOne) Where(ps ...predicate.JobPostingEntity) *JobPostingEntityDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *JobPostingEntityDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{jobpostingentity.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JobPostingEntityDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
