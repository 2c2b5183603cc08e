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
)

// StepResultCreate is the builder for creating a StepResult entity.
type StepResultCreate struct {
	config
	mutation *StepResultMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepResultCreate) SetCreatedAt(v time.Time) *StepResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableCreatedAt(v *time.Time) *StepResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *StepResultCreate) SetOrgID(v string) *StepResultCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *StepResultCreate) SetPosition(v int) *StepResultCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetOperationID sets the "operation_id" field.
func (_c *StepResultCreate) SetOperationID(v string) *StepResultCreate {
	_c.mutation.SetOperationID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *StepResultCreate) SetAttemptNumber(v int) *StepResultCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableAttemptNumber(v *int) *StepResultCreate {
	if v != nil {
		_c.SetAttemptNumber(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepResultCreate) SetStatus(v stepresult.Status) *StepResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetInputPayload sets the "input_payload" field.
func (_c *StepResultCreate) SetInputPayload(v map[string]interface{}) *StepResultCreate {
	_c.mutation.SetInputPayload(v)
	return _c
}

// SetOutputPayload sets the "output_payload" field.
func (_c *StepResultCreate) SetOutputPayload(v map[string]interface{}) *StepResultCreate {
	_c.mutation.SetOutputPayload(v)
	return _c
}

// SetProviderAttempts sets the "provider_attempts" field.
func (_c *StepResultCreate) SetProviderAttempts(v []map[string]interface{}) *StepResultCreate {
	_c.mutation.SetProviderAttempts(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StepResultCreate) SetErrorMessage(v string) *StepResultCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableErrorMessage(v *string) *StepResultCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *StepResultCreate) SetSkipReason(v string) *StepResultCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableSkipReason(v *string) *StepResultCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetChildrenSpawned sets the "children_spawned" field.
func (_c *StepResultCreate) SetChildrenSpawned(v int) *StepResultCreate {
	_c.mutation.SetChildrenSpawned(v)
	return _c
}

// SetNillableChildrenSpawned sets the "children_spawned" field if the given value is not nil.
func (_c *StepResultCreate) SetNillableChildrenSpawned(v *int) *StepResultCreate {
	if v != nil {
		_c.SetChildrenSpawned(*v)
	}
	return _c
}

// SetSkippedDuplicates sets the "skipped_duplicates" field.
func (_c *StepResultCreate) SetSkippedDuplicates(v []string) *StepResultCreate {
	_c.mutation.SetSkippedDuplicates(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StepResultCreate) SetID(v string) *StepResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRunID sets the "run" edge to the PipelineRun entity by ID.
func (_c *StepResultCreate) SetRunID(id string) *StepResultCreate {
	_c.mutation.SetRunID(id)
	return _c
}

// SetRun sets the "run" edge to the PipelineRun entity.
func (_c *StepResultCreate) SetRun(v *PipelineRun) *StepResultCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the StepResultMutation object of the builder.
func (_c *StepResultCreate) Mutation() *StepResultMutation {
	return _c.mutation
}

// Save creates the StepResult in the database.
func (_c *StepResultCreate) Save(ctx context.Context) (*StepResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepResultCreate) SaveX(ctx context.Context) *StepResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stepresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		v := stepresult.DefaultAttemptNumber
		_c.mutation.SetAttemptNumber(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepResultCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StepResult.created_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "StepResult.org_id"`)}
	}
	if v, ok := _c.mutation.OrgID(); ok {
		if err := stepresult.OrgIDValidator(v); err != nil {
			return &ValidationError{Name: "org_id", err: fmt.Errorf(`ent: validator failed for field "StepResult.org_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "StepResult.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := stepresult.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "StepResult.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OperationID(); !ok {
		return &ValidationError{Name: "operation_id", err: errors.New(`ent: missing required field "StepResult.operation_id"`)}
	}
	if v, ok := _c.mutation.OperationID(); ok {
		if err := stepresult.OperationIDValidator(v); err != nil {
			return &ValidationError{Name: "operation_id", err: fmt.Errorf(`ent: validator failed for field "StepResult.operation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "StepResult.attempt_number"`)}
	}
	if v, ok := _c.mutation.AttemptNumber(); ok {
		if err := stepresult.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "StepResult.attempt_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StepResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stepresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepResult.status": %w`, err)}
		}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "StepResult.run"`)}
	}
	return nil
}

func (_c *StepResultCreate) sqlSave(ctx context.Context) (*StepResult, error) {
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
			return nil, fmt.Errorf("unexpected StepResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepResultCreate) createSpec() (*StepResult, *sqlgraph.CreateSpec) {
	var (
		_node = &StepResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepresult.Table, sqlgraph.NewFieldSpec(stepresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stepresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(stepresult.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(stepresult.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.OperationID(); ok {
		_spec.SetField(stepresult.FieldOperationID, field.TypeString, value)
		_node.OperationID = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(stepresult.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stepresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputPayload(); ok {
		_spec.SetField(stepresult.FieldInputPayload, field.TypeJSON, value)
		_node.InputPayload = value
	}
	if value, ok := _c.mutation.OutputPayload(); ok {
		_spec.SetField(stepresult.FieldOutputPayload, field.TypeJSON, value)
		_node.OutputPayload = value
	}
	if value, ok := _c.mutation.ProviderAttempts(); ok {
		_spec.SetField(stepresult.FieldProviderAttempts, field.TypeJSON, value)
		_node.ProviderAttempts = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stepresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(stepresult.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = value
	}
	if value, ok := _c.mutation.ChildrenSpawned(); ok {
		_spec.SetField(stepresult.FieldChildrenSpawned, field.TypeInt, value)
		_node.ChildrenSpawned = value
	}
	if value, ok := _c.mutation.SkippedDuplicates(); ok {
		_spec.SetField(stepresult.FieldSkippedDuplicates, field.TypeJSON, value)
		_node.SkippedDuplicates = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepresult.RunTable,
			Columns: []string{stepresult.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.pipeline_run_step_results = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StepResultCreateBulk is the builder for creating many StepResult entities in bulk.
type StepResultCreateBulk struct {
	config
	err      error
	builders []*StepResultCreate
}

// Save creates the StepResult entities in the database.
func (_c *StepResultCreateBulk) Save(ctx context.Context) ([]*StepResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepResultMutation)
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
func (_c *StepResultCreateBulk) SaveX(ctx context.Context) []*StepResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
