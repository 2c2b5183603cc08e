// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/stepresult"
	"waterline.io/waterline/ent/submission"
)

// PipelineRunCreate is the builder for creating a PipelineRun entity.
type PipelineRunCreate struct {
	config
	mutation *PipelineRunMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineRunCreate) SetCreatedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCreatedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineRunCreate) SetUpdatedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableUpdatedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *PipelineRunCreate) SetOrgID(v string) *PipelineRunCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetParentRunID sets the "parent_run_id" field.
func (_c *PipelineRunCreate) SetParentRunID(v string) *PipelineRunCreate {
	_c.mutation.SetParentRunID(v)
	return _c
}

// SetNillableParentRunID sets the "parent_run_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableParentRunID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetParentRunID(*v)
	}
	return _c
}

// SetTriggerRunID sets the "trigger_run_id" field.
func (_c *PipelineRunCreate) SetTriggerRunID(v string) *PipelineRunCreate {
	_c.mutation.SetTriggerRunID(v)
	return _c
}

// SetNillableTriggerRunID sets the "trigger_run_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableTriggerRunID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetTriggerRunID(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *PipelineRunCreate) SetEntityType(v pipelinerun.EntityType) *PipelineRunCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityIndex sets the "entity_index" field.
func (_c *PipelineRunCreate) SetEntityIndex(v int) *PipelineRunCreate {
	_c.mutation.SetEntityIndex(v)
	return _c
}

// SetNillableEntityIndex sets the "entity_index" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableEntityIndex(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetEntityIndex(*v)
	}
	return _c
}

// SetBlueprintSnapshot sets the "blueprint_snapshot" field.
func (_c *PipelineRunCreate) SetBlueprintSnapshot(v []map[string]interface{}) *PipelineRunCreate {
	_c.mutation.SetBlueprintSnapshot(v)
	return _c
}

// SetEntityInput sets the "entity_input" field.
func (_c *PipelineRunCreate) SetEntityInput(v map[string]interface{}) *PipelineRunCreate {
	_c.mutation.SetEntityInput(v)
	return _c
}

// SetCumulativeContext sets the "cumulative_context" field.
func (_c *PipelineRunCreate) SetCumulativeContext(v map[string]interface{}) *PipelineRunCreate {
	_c.mutation.SetCumulativeContext(v)
	return _c
}

// SetCurrentPosition sets the "current_position" field.
func (_c *PipelineRunCreate) SetCurrentPosition(v int) *PipelineRunCreate {
	_c.mutation.SetCurrentPosition(v)
	return _c
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCurrentPosition(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetCurrentPosition(*v)
	}
	return _c
}

// SetDepth sets the "depth" field.
func (_c *PipelineRunCreate) SetDepth(v int) *PipelineRunCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableDepth(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineRunCreate) SetStatus(v pipelinerun.Status) *PipelineRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineRunCreate) SetErrorMessage(v string) *PipelineRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableErrorMessage(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineRunCreate) SetStartedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStartedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *PipelineRunCreate) SetFinishedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableFinishedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineRunCreate) SetID(v string) *PipelineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSubmissionID sets the "submission" edge to the Submission entity by ID.
func (_c *PipelineRunCreate) SetSubmissionID(id string) *PipelineRunCreate {
	_c.mutation.SetSubmissionID(id)
	return _c
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *PipelineRunCreate) SetSubmission(v *Submission) *PipelineRunCreate {
	return _c.SetSubmissionID(v.ID)
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by IDs.
func (_c *PipelineRunCreate) AddStepResultIDs(ids ...string) *PipelineRunCreate {
	_c.mutation.AddStepResultIDs(ids...)
	return _c
}

// AddStepResults adds the "step_results" edges to the StepResult entity.
func (_c *PipelineRunCreate) AddStepResults(v ...*StepResult) *PipelineRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepResultIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_c *PipelineRunCreate) Mutation() *PipelineRunMutation {
	return _c.mutation
}

// Save creates the PipelineRun in the database.
func (_c *PipelineRunCreate) Save(ctx context.Context) (*PipelineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunCreate) SaveX(ctx context.Context) *PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinerun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinerun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.EntityIndex(); !ok {
		v := pipelinerun.DefaultEntityIndex
		_c.mutation.SetEntityIndex(v)
	}
	if _, ok := _c.mutation.CurrentPosition(); !ok {
		v := pipelinerun.DefaultCurrentPosition
		_c.mutation.SetCurrentPosition(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := pipelinerun.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineRun.updated_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "PipelineRun.org_id"`)}
	}
	if v, ok := _c.mutation.OrgID(); ok {
		if err := pipelinerun.OrgIDValidator(v); err != nil {
			return &ValidationError{Name: "org_id", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.org_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "PipelineRun.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := pipelinerun.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityIndex(); !ok {
		return &ValidationError{Name: "entity_index", err: errors.New(`ent: missing required field "PipelineRun.entity_index"`)}
	}
	if _, ok := _c.mutation.BlueprintSnapshot(); !ok {
		return &ValidationError{Name: "blueprint_snapshot", err: errors.New(`ent: missing required field "PipelineRun.blueprint_snapshot"`)}
	}
	if _, ok := _c.mutation.EntityInput(); !ok {
		return &ValidationError{Name: "entity_input", err: errors.New(`ent: missing required field "PipelineRun.entity_input"`)}
	}
	if _, ok := _c.mutation.CurrentPosition(); !ok {
		return &ValidationError{Name: "current_position", err: errors.New(`ent: missing required field "PipelineRun.current_position"`)}
	}
	if v, ok := _c.mutation.CurrentPosition(); ok {
		if err := pipelinerun.CurrentPositionValidator(v); err != nil {
			return &ValidationError{Name: "current_position", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.current_position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "PipelineRun.depth"`)}
	}
	if v, ok := _c.mutation.Depth(); ok {
		if err := pipelinerun.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required edge "PipelineRun.submission"`)}
	}
	return nil
}

func (_c *PipelineRunCreate) sqlSave(ctx context.Context) (*PipelineRun, error) {
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
			return nil, fmt.Errorf("unexpected PipelineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunCreate) createSpec() (*PipelineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerun.Table, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinerun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinerun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(pipelinerun.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.ParentRunID(); ok {
		_spec.SetField(pipelinerun.FieldParentRunID, field.TypeString, value)
		_node.ParentRunID = value
	}
	if value, ok := _c.mutation.TriggerRunID(); ok {
		_spec.SetField(pipelinerun.FieldTriggerRunID, field.TypeString, value)
		_node.TriggerRunID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(pipelinerun.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityIndex(); ok {
		_spec.SetField(pipelinerun.FieldEntityIndex, field.TypeInt, value)
		_node.EntityIndex = value
	}
	if value, ok := _c.mutation.BlueprintSnapshot(); ok {
		_spec.SetField(pipelinerun.FieldBlueprintSnapshot, field.TypeJSON, value)
		_node.BlueprintSnapshot = value
	}
	if value, ok := _c.mutation.EntityInput(); ok {
		_spec.SetField(pipelinerun.FieldEntityInput, field.TypeJSON, value)
		_node.EntityInput = value
	}
	if value, ok := _c.mutation.CumulativeContext(); ok {
		_spec.SetField(pipelinerun.FieldCumulativeContext, field.TypeJSON, value)
		_node.CumulativeContext = value
	}
	if value, ok := _c.mutation.CurrentPosition(); ok {
		_spec.SetField(pipelinerun.FieldCurrentPosition, field.TypeInt, value)
		_node.CurrentPosition = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(pipelinerun.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(pipelinerun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinerun.SubmissionTable,
			Columns: []string{pipelinerun.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.submission_runs = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineRunCreateBulk is the builder for creating many PipelineRun entities in bulk.
type PipelineRunCreateBulk struct {
	config
	err      error
	builders []*PipelineRunCreate
}

// Save creates the PipelineRun entities in the database.
func (_c *PipelineRunCreateBulk) Save(ctx context.Context) ([]*PipelineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunMutation)
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
func (_c *PipelineRunCreateBulk) SaveX(ctx context.Context) []*PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
