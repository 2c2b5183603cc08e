// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/org"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/submission"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionCreate) SetUpdatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *SubmissionCreate) SetOrgID(v string) *SubmissionCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *SubmissionCreate) SetCompanyID(v string) *SubmissionCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCompanyID(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetBlueprintID sets the "blueprint_id" field.
func (_c *SubmissionCreate) SetBlueprintID(v string) *SubmissionCreate {
	_c.mutation.SetBlueprintID(v)
	return _c
}

// SetEntities sets the "entities" field.
func (_c *SubmissionCreate) SetEntities(v []map[string]interface{}) *SubmissionCreate {
	_c.mutation.SetEntities(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v submission.Status) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStatus(v *submission.Status) *SubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMaxDepth sets the "max_depth" field.
func (_c *SubmissionCreate) SetMaxDepth(v int) *SubmissionCreate {
	_c.mutation.SetMaxDepth(v)
	return _c
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableMaxDepth(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetMaxDepth(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *SubmissionCreate) SetCancelRequested(v bool) *SubmissionCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCancelRequested(v *bool) *SubmissionCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v string) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOrg sets the "org" edge to the Org entity.
func (_c *SubmissionCreate) SetOrg(v *Org) *SubmissionCreate {
	return _c.SetOrgID(v.ID)
}

// AddRunIDs adds the "runs" edge to the PipelineRun entity by IDs.
func (_c *SubmissionCreate) AddRunIDs(ids ...string) *SubmissionCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the PipelineRun entity.
func (_c *SubmissionCreate) AddRuns(v ...*PipelineRun) *SubmissionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := submission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.MaxDepth(); !ok {
		v := submission.DefaultMaxDepth
		_c.mutation.SetMaxDepth(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := submission.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Submission.updated_at"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "Submission.org_id"`)}
	}
	if v, ok := _c.mutation.OrgID(); ok {
		if err := submission.OrgIDValidator(v); err != nil {
			return &ValidationError{Name: "org_id", err: fmt.Errorf(`ent: validator failed for field "Submission.org_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlueprintID(); !ok {
		return &ValidationError{Name: "blueprint_id", err: errors.New(`ent: missing required field "Submission.blueprint_id"`)}
	}
	if v, ok := _c.mutation.BlueprintID(); ok {
		if err := submission.BlueprintIDValidator(v); err != nil {
			return &ValidationError{Name: "blueprint_id", err: fmt.Errorf(`ent: validator failed for field "Submission.blueprint_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Entities(); !ok {
		return &ValidationError{Name: "entities", err: errors.New(`ent: missing required field "Submission.entities"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Submission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxDepth(); !ok {
		return &ValidationError{Name: "max_depth", err: errors.New(`ent: missing required field "Submission.max_depth"`)}
	}
	if v, ok := _c.mutation.MaxDepth(); ok {
		if err := submission.MaxDepthValidator(v); err != nil {
			return &ValidationError{Name: "max_depth", err: fmt.Errorf(`ent: validator failed for field "Submission.max_depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Submission.cancel_requested"`)}
	}
	if len(_c.mutation.OrgIDs()) == 0 {
		return &ValidationError{Name: "org", err: errors.New(`ent: missing required edge "Submission.org"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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
			return nil, fmt.Errorf("unexpected Submission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(submission.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.BlueprintID(); ok {
		_spec.SetField(submission.FieldBlueprintID, field.TypeString, value)
		_node.BlueprintID = value
	}
	if value, ok := _c.mutation.Entities(); ok {
		_spec.SetField(submission.FieldEntities, field.TypeJSON, value)
		_node.Entities = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MaxDepth(); ok {
		_spec.SetField(submission.FieldMaxDepth, field.TypeInt, value)
		_node.MaxDepth = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(submission.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if nodes := _c.mutation.OrgIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.OrgTable,
			Columns: []string{submission.OrgColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(org.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OrgID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.RunsTable,
			Columns: []string{submission.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
