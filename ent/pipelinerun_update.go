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
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/predicate"
	"waterline.io/waterline/ent/stepresult"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineRunUpdate) SetUpdatedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEntityInput sets the "entity_input" field.
func (_u *PipelineRunUpdate) SetEntityInput(v map[string]interface{}) *PipelineRunUpdate {
	_u.mutation.SetEntityInput(v)
	return _u
}

// SetCumulativeContext sets the "cumulative_context" field.
func (_u *PipelineRunUpdate) SetCumulativeContext(v map[string]interface{}) *PipelineRunUpdate {
	_u.mutation.SetCumulativeContext(v)
	return _u
}

// ClearCumulativeContext clears the value of the "cumulative_context" field.
func (_u *PipelineRunUpdate) ClearCumulativeContext() *PipelineRunUpdate {
	_u.mutation.ClearCumulativeContext()
	return _u
}

// SetCurrentPosition sets the "current_position" field.
func (_u *PipelineRunUpdate) SetCurrentPosition(v int) *PipelineRunUpdate {
	_u.mutation.ResetCurrentPosition()
	_u.mutation.SetCurrentPosition(v)
	return _u
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCurrentPosition(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetCurrentPosition(*v)
	}
	return _u
}

// AddCurrentPosition adds value to the "current_position" field.
func (_u *PipelineRunUpdate) AddCurrentPosition(v int) *PipelineRunUpdate {
	_u.mutation.AddCurrentPosition(v)
	return _u
}

// SetDepth sets the "depth" field.
func (_u *PipelineRunUpdate) SetDepth(v int) *PipelineRunUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableDepth(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *PipelineRunUpdate) AddDepth(v int) *PipelineRunUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdate) SetErrorMessage(v string) *PipelineRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableErrorMessage(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdate) ClearErrorMessage() *PipelineRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdate) SetStartedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStartedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdate) ClearStartedAt() *PipelineRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PipelineRunUpdate) SetFinishedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableFinishedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PipelineRunUpdate) ClearFinishedAt() *PipelineRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by IDs.
func (_u *PipelineRunUpdate) AddStepResultIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddStepResultIDs(ids...)
	return _u
}

// AddStepResults adds the "step_results" edges to the StepResult entity.
func (_u *PipelineRunUpdate) AddStepResults(v ...*StepResult) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepResultIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearStepResults clears all "step_results" edges to the StepResult entity.
func (_u *PipelineRunUpdate) ClearStepResults() *PipelineRunUpdate {
	_u.mutation.ClearStepResults()
	return _u
}

// RemoveStepResultIDs removes the "step_results" edge to StepResult entities by IDs.
func (_u *PipelineRunUpdate) RemoveStepResultIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemoveStepResultIDs(ids...)
	return _u
}

// RemoveStepResults removes "step_results" edges to StepResult entities.
func (_u *PipelineRunUpdate) RemoveStepResults(v ...*StepResult) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinerun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.CurrentPosition(); ok {
		if err := pipelinerun.CurrentPositionValidator(v); err != nil {
			return &ValidationError{Name: "current_position", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.current_position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := pipelinerun.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineRun.submission"`)
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinerun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(pipelinerun.FieldParentRunID, field.TypeString)
	}
	if _u.mutation.TriggerRunIDCleared() {
		_spec.ClearField(pipelinerun.FieldTriggerRunID, field.TypeString)
	}
	if value, ok := _u.mutation.EntityInput(); ok {
		_spec.SetField(pipelinerun.FieldEntityInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CumulativeContext(); ok {
		_spec.SetField(pipelinerun.FieldCumulativeContext, field.TypeJSON, value)
	}
	if _u.mutation.CumulativeContextCleared() {
		_spec.ClearField(pipelinerun.FieldCumulativeContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentPosition(); ok {
		_spec.SetField(pipelinerun.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPosition(); ok {
		_spec.AddField(pipelinerun.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(pipelinerun.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(pipelinerun.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(pipelinerun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(pipelinerun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StepResultsTable,
			Columns: []string{pipelinerun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepResultsIDs(); len(nodes) > 0 && !_u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StepResultsTable,
			Columns: []string{pipelinerun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StepResultsTable,
			Columns: []string{pipelinerun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineRunUpdateOne) SetUpdatedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEntityInput sets the "entity_input" field.
func (_u *PipelineRunUpdateOne) SetEntityInput(v map[string]interface{}) *PipelineRunUpdateOne {
	_u.mutation.SetEntityInput(v)
	return _u
}

// SetCumulativeContext sets the "cumulative_context" field.
func (_u *PipelineRunUpdateOne) SetCumulativeContext(v map[string]interface{}) *PipelineRunUpdateOne {
	_u.mutation.SetCumulativeContext(v)
	return _u
}

// ClearCumulativeContext clears the value of the "cumulative_context" field.
func (_u *PipelineRunUpdateOne) ClearCumulativeContext() *PipelineRunUpdateOne {
	_u.mutation.ClearCumulativeContext()
	return _u
}

// SetCurrentPosition sets the "current_position" field.
func (_u *PipelineRunUpdateOne) SetCurrentPosition(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetCurrentPosition()
	_u.mutation.SetCurrentPosition(v)
	return _u
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCurrentPosition(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCurrentPosition(*v)
	}
	return _u
}

// AddCurrentPosition adds value to the "current_position" field.
func (_u *PipelineRunUpdateOne) AddCurrentPosition(v int) *PipelineRunUpdateOne {
	_u.mutation.AddCurrentPosition(v)
	return _u
}

// SetDepth sets the "depth" field.
func (_u *PipelineRunUpdateOne) SetDepth(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableDepth(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *PipelineRunUpdateOne) AddDepth(v int) *PipelineRunUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdateOne) SetErrorMessage(v string) *PipelineRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableErrorMessage(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdateOne) ClearErrorMessage() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdateOne) SetStartedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdateOne) ClearStartedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PipelineRunUpdateOne) SetFinishedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableFinishedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PipelineRunUpdateOne) ClearFinishedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by IDs.
func (_u *PipelineRunUpdateOne) AddStepResultIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddStepResultIDs(ids...)
	return _u
}

// AddStepResults adds the "step_results" edges to the StepResult entity.
func (_u *PipelineRunUpdateOne) AddStepResults(v ...*StepResult) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepResultIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearStepResults clears all "step_results" edges to the StepResult entity.
func (_u *PipelineRunUpdateOne) ClearStepResults() *PipelineRunUpdateOne {
	_u.mutation.ClearStepResults()
	return _u
}

// RemoveStepResultIDs removes the "step_results" edge to StepResult entities by IDs.
func (_u *PipelineRunUpdateOne) RemoveStepResultIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemoveStepResultIDs(ids...)
	return _u
}

// RemoveStepResults removes "step_results" edges to StepResult entities.
func (_u *PipelineRunUpdateOne) RemoveStepResults(v ...*StepResult) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepResultIDs(ids...)
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinerun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentPosition(); ok {
		if err := pipelinerun.CurrentPositionValidator(v); err != nil {
			return &ValidationError{Name: "current_position", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.current_position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := pipelinerun.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineRun.submission"`)
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
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
		_spec.SetField(pipelinerun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(pipelinerun.FieldParentRunID, field.TypeString)
	}
	if _u.mutation.TriggerRunIDCleared() {
		_spec.ClearField(pipelinerun.FieldTriggerRunID, field.TypeString)
	}
	if value, ok := _u.mutation.EntityInput(); ok {
		_spec.SetField(pipelinerun.FieldEntityInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CumulativeContext(); ok {
		_spec.SetField(pipelinerun.FieldCumulativeContext, field.TypeJSON, value)
	}
	if _u.mutation.CumulativeContextCleared() {
		_spec.ClearField(pipelinerun.FieldCumulativeContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentPosition(); ok {
		_spec.SetField(pipelinerun.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPosition(); ok {
		_spec.AddField(pipelinerun.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(pipelinerun.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(pipelinerun.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(pipelinerun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(pipelinerun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StepResultsTable,
			Columns: []string{pipelinerun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepResultsIDs(); len(nodes) > 0 && !_u.mutation.StepResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StepResultsTable,
			Columns: []string{pipelinerun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StepResultsTable,
			Columns: []string{pipelinerun.StepResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
