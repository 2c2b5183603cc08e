// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/personentity"
	"waterline.io/waterline/ent/predicate"
)

// PersonEntityUpdate is the builder for updating PersonEntity entities.
type PersonEntityUpdate struct {
	config
	hooks    []Hook
	mutation *PersonEntityMutation
}

// Where appends a list predicates to the PersonEntityUpdate builder.
func (_u *PersonEntityUpdate) Where(ps ...predicate.PersonEntity) *PersonEntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonEntityUpdate) SetUpdatedAt(v time.Time) *PersonEntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecordVersion sets the "record_version" field.
func (_u *PersonEntityUpdate) SetRecordVersion(v int) *PersonEntityUpdate {
	_u.mutation.ResetRecordVersion()
	_u.mutation.SetRecordVersion(v)
	return _u
}

// SetNillableRecordVersion sets the "record_version" field if the given value is not nil.
func (_u *PersonEntityUpdate) SetNillableRecordVersion(v *int) *PersonEntityUpdate {
	if v != nil {
		_u.SetRecordVersion(*v)
	}
	return _u
}

// AddRecordVersion adds value to the "record_version" field.
func (_u *PersonEntityUpdate) AddRecordVersion(v int) *PersonEntityUpdate {
	_u.mutation.AddRecordVersion(v)
	return _u
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_u *PersonEntityUpdate) SetCanonicalPayload(v map[string]interface{}) *PersonEntityUpdate {
	_u.mutation.SetCanonicalPayload(v)
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *PersonEntityUpdate) SetLinkedinURL(v string) *PersonEntityUpdate {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *PersonEntityUpdate) SetNillableLinkedinURL(v *string) *PersonEntityUpdate {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *PersonEntityUpdate) ClearLinkedinURL() *PersonEntityUpdate {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetWorkEmail sets the "work_email" field.
func (_u *PersonEntityUpdate) SetWorkEmail(v string) *PersonEntityUpdate {
	_u.mutation.SetWorkEmail(v)
	return _u
}

// SetNillableWorkEmail sets the "work_email" field if the given value is not nil.
func (_u *PersonEntityUpdate) SetNillableWorkEmail(v *string) *PersonEntityUpdate {
	if v != nil {
		_u.SetWorkEmail(*v)
	}
	return _u
}

// ClearWorkEmail clears the value of the "work_email" field.
func (_u *PersonEntityUpdate) ClearWorkEmail() *PersonEntityUpdate {
	_u.mutation.ClearWorkEmail()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *PersonEntityUpdate) SetFullName(v string) *PersonEntityUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *PersonEntityUpdate) SetNillableFullName(v *string) *PersonEntityUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *PersonEntityUpdate) ClearFullName() *PersonEntityUpdate {
	_u.mutation.ClearFullName()
	return _u
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (_u *PersonEntityUpdate) SetLastEnrichedAt(v time.Time) *PersonEntityUpdate {
	_u.mutation.SetLastEnrichedAt(v)
	return _u
}

// SetNillableLastEnrichedAt sets the "last_enriched_at" field if the given value is not nil.
func (_u *PersonEntityUpdate) SetNillableLastEnrichedAt(v *time.Time) *PersonEntityUpdate {
	if v != nil {
		_u.SetLastEnrichedAt(*v)
	}
	return _u
}

// ClearLastEnrichedAt clears the value of the "last_enriched_at" field.
func (_u *PersonEntityUpdate) ClearLastEnrichedAt() *PersonEntityUpdate {
	_u.mutation.ClearLastEnrichedAt()
	return _u
}

// SetLastRunID sets the "last_run_id" field.
func (_u *PersonEntityUpdate) SetLastRunID(v string) *PersonEntityUpdate {
	_u.mutation.SetLastRunID(v)
	return _u
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_u *PersonEntityUpdate) SetNillableLastRunID(v *string) *PersonEntityUpdate {
	if v != nil {
		_u.SetLastRunID(*v)
	}
	return _u
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (_u *PersonEntityUpdate) ClearLastRunID() *PersonEntityUpdate {
	_u.mutation.ClearLastRunID()
	return _u
}

// SetLastOperationID sets the "last_operation_id" field.
func (_u *PersonEntityUpdate) SetLastOperationID(v string) *PersonEntityUpdate {
	_u.mutation.SetLastOperationID(v)
	return _u
}

// SetNillableLastOperationID sets the "last_operation_id" field if the given value is not nil.
func (_u *PersonEntityUpdate) SetNillableLastOperationID(v *string) *PersonEntityUpdate {
	if v != nil {
		_u.SetLastOperationID(*v)
	}
	return _u
}

// ClearLastOperationID clears the value of the "last_operation_id" field.
func (_u *PersonEntityUpdate) ClearLastOperationID() *PersonEntityUpdate {
	_u.mutation.ClearLastOperationID()
	return _u
}

// SetSourceProviders sets the "source_providers" field.
func (_u *PersonEntityUpdate) SetSourceProviders(v []string) *PersonEntityUpdate {
	_u.mutation.SetSourceProviders(v)
	return _u
}

// AppendSourceProviders appends value to the "source_providers" field.
func (_u *PersonEntityUpdate) AppendSourceProviders(v []string) *PersonEntityUpdate {
	_u.mutation.AppendSourceProviders(v)
	return _u
}

// ClearSourceProviders clears the value of the "source_providers" field.
func (_u *PersonEntityUpdate) ClearSourceProviders() *PersonEntityUpdate {
	_u.mutation.ClearSourceProviders()
	return _u
}

// Mutation returns the PersonEntityMutation object of the builder.
func (_u *PersonEntityUpdate) Mutation() *PersonEntityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonEntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonEntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonEntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonEntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonEntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonEntityUpdate) check() error {
	if v, ok := _u.mutation.RecordVersion(); ok {
		if err := personentity.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "PersonEntity.record_version": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonEntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personentity.Table, personentity.Columns, sqlgraph.NewFieldSpec(personentity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(personentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordVersion(); ok {
		_spec.SetField(personentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordVersion(); ok {
		_spec.AddField(personentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CanonicalPayload(); ok {
		_spec.SetField(personentity.FieldCanonicalPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(personentity.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(personentity.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.WorkEmail(); ok {
		_spec.SetField(personentity.FieldWorkEmail, field.TypeString, value)
	}
	if _u.mutation.WorkEmailCleared() {
		_spec.ClearField(personentity.FieldWorkEmail, field.TypeString)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(personentity.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(personentity.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.LastEnrichedAt(); ok {
		_spec.SetField(personentity.FieldLastEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnrichedAtCleared() {
		_spec.ClearField(personentity.FieldLastEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunID(); ok {
		_spec.SetField(personentity.FieldLastRunID, field.TypeString, value)
	}
	if _u.mutation.LastRunIDCleared() {
		_spec.ClearField(personentity.FieldLastRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LastOperationID(); ok {
		_spec.SetField(personentity.FieldLastOperationID, field.TypeString, value)
	}
	if _u.mutation.LastOperationIDCleared() {
		_spec.ClearField(personentity.FieldLastOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceProviders(); ok {
		_spec.SetField(personentity.FieldSourceProviders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, personentity.FieldSourceProviders, value)
		})
	}
	if _u.mutation.SourceProvidersCleared() {
		_spec.ClearField(personentity.FieldSourceProviders, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonEntityUpdateOne is the builder for updating a single PersonEntity entity.
type PersonEntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonEntityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonEntityUpdateOne) SetUpdatedAt(v time.Time) *PersonEntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecordVersion sets the "record_version" field.
func (_u *PersonEntityUpdateOne) SetRecordVersion(v int) *PersonEntityUpdateOne {
	_u.mutation.ResetRecordVersion()
	_u.mutation.SetRecordVersion(v)
	return _u
}

// SetNillableRecordVersion sets the "record_version" field if the given value is not nil.
func (_u *PersonEntityUpdateOne) SetNillableRecordVersion(v *int) *PersonEntityUpdateOne {
	if v != nil {
		_u.SetRecordVersion(*v)
	}
	return _u
}

// AddRecordVersion adds value to the "record_version" field.
func (_u *PersonEntityUpdateOne) AddRecordVersion(v int) *PersonEntityUpdateOne {
	_u.mutation.AddRecordVersion(v)
	return _u
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_u *PersonEntityUpdateOne) SetCanonicalPayload(v map[string]interface{}) *PersonEntityUpdateOne {
	_u.mutation.SetCanonicalPayload(v)
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *PersonEntityUpdateOne) SetLinkedinURL(v string) *PersonEntityUpdateOne {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *PersonEntityUpdateOne) SetNillableLinkedinURL(v *string) *PersonEntityUpdateOne {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *PersonEntityUpdateOne) ClearLinkedinURL() *PersonEntityUpdateOne {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetWorkEmail sets the "work_email" field.
func (_u *PersonEntityUpdateOne) SetWorkEmail(v string) *PersonEntityUpdateOne {
	_u.mutation.SetWorkEmail(v)
	return _u
}

// SetNillableWorkEmail sets the "work_email" field if the given value is not nil.
func (_u *PersonEntityUpdateOne) SetNillableWorkEmail(v *string) *PersonEntityUpdateOne {
	if v != nil {
		_u.SetWorkEmail(*v)
	}
	return _u
}

// ClearWorkEmail clears the value of the "work_email" field.
func (_u *PersonEntityUpdateOne) ClearWorkEmail() *PersonEntityUpdateOne {
	_u.mutation.ClearWorkEmail()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *PersonEntityUpdateOne) SetFullName(v string) *PersonEntityUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *PersonEntityUpdateOne) SetNillableFullName(v *string) *PersonEntityUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *PersonEntityUpdateOne) ClearFullName() *PersonEntityUpdateOne {
	_u.mutation.ClearFullName()
	return _u
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (_u *PersonEntityUpdateOne) SetLastEnrichedAt(v time.Time) *PersonEntityUpdateOne {
	_u.mutation.SetLastEnrichedAt(v)
	return _u
}

// SetNillableLastEnrichedAt sets the "last_enriched_at" field if the given value is not nil.
func (_u *PersonEntityUpdateOne) SetNillableLastEnrichedAt(v *time.Time) *PersonEntityUpdateOne {
	if v != nil {
		_u.SetLastEnrichedAt(*v)
	}
	return _u
}

// ClearLastEnrichedAt clears the value of the "last_enriched_at" field.
func (_u *PersonEntityUpdateOne) ClearLastEnrichedAt() *PersonEntityUpdateOne {
	_u.mutation.ClearLastEnrichedAt()
	return _u
}

// SetLastRunID sets the "last_run_id" field.
func (_u *PersonEntityUpdateOne) SetLastRunID(v string) *PersonEntityUpdateOne {
	_u.mutation.SetLastRunID(v)
	return _u
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_u *PersonEntityUpdateOne) SetNillableLastRunID(v *string) *PersonEntityUpdateOne {
	if v != nil {
		_u.SetLastRunID(*v)
	}
	return _u
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (_u *PersonEntityUpdateOne) ClearLastRunID() *PersonEntityUpdateOne {
	_u.mutation.ClearLastRunID()
	return _u
}

// SetLastOperationID sets the "last_operation_id" field.
func (_u *PersonEntityUpdateOne) SetLastOperationID(v string) *PersonEntityUpdateOne {
	_u.mutation.SetLastOperationID(v)
	return _u
}

// SetNillableLastOperationID sets the "last_operation_id" field if the given value is not nil.
func (_u *PersonEntityUpdateOne) SetNillableLastOperationID(v *string) *PersonEntityUpdateOne {
	if v != nil {
		_u.SetLastOperationID(*v)
	}
	return _u
}

// ClearLastOperationID clears the value of the "last_operation_id" field.
func (_u *PersonEntityUpdateOne) ClearLastOperationID() *PersonEntityUpdateOne {
	_u.mutation.ClearLastOperationID()
	return _u
}

// SetSourceProviders sets the "source_providers" field.
func (_u *PersonEntityUpdateOne) SetSourceProviders(v []string) *PersonEntityUpdateOne {
	_u.mutation.SetSourceProviders(v)
	return _u
}

// AppendSourceProviders appends value to the "source_providers" field.
func (_u *PersonEntityUpdateOne) AppendSourceProviders(v []string) *PersonEntityUpdateOne {
	_u.mutation.AppendSourceProviders(v)
	return _u
}

// ClearSourceProviders clears the value of the "source_providers" field.
func (_u *PersonEntityUpdateOne) ClearSourceProviders() *PersonEntityUpdateOne {
	_u.mutation.ClearSourceProviders()
	return _u
}

// Mutation returns the PersonEntityMutation object of the builder.
func (_u *PersonEntityUpdateOne) Mutation() *PersonEntityMutation {
	return _u.mutation
}

// Where appends a list predicates to the PersonEntityUpdate builder.
func (_u *PersonEntityUpdateOne) Where(ps ...predicate.PersonEntity) *PersonEntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonEntityUpdateOne) Select(field string, fields ...string) *PersonEntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PersonEntity entity.
func (_u *PersonEntityUpdateOne) Save(ctx context.Context) (*PersonEntity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonEntityUpdateOne) SaveX(ctx context.Context) *PersonEntity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonEntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonEntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonEntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonEntityUpdateOne) check() error {
	if v, ok := _u.mutation.RecordVersion(); ok {
		if err := personentity.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "PersonEntity.record_version": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonEntityUpdateOne) sqlSave(ctx context.Context) (_node *PersonEntity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personentity.Table, personentity.Columns, sqlgraph.NewFieldSpec(personentity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PersonEntity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, personentity.FieldID)
		for _, f := range fields {
			if !personentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != personentity.FieldID {
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
		_spec.SetField(personentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordVersion(); ok {
		_spec.SetField(personentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordVersion(); ok {
		_spec.AddField(personentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CanonicalPayload(); ok {
		_spec.SetField(personentity.FieldCanonicalPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(personentity.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(personentity.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.WorkEmail(); ok {
		_spec.SetField(personentity.FieldWorkEmail, field.TypeString, value)
	}
	if _u.mutation.WorkEmailCleared() {
		_spec.ClearField(personentity.FieldWorkEmail, field.TypeString)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(personentity.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(personentity.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.LastEnrichedAt(); ok {
		_spec.SetField(personentity.FieldLastEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnrichedAtCleared() {
		_spec.ClearField(personentity.FieldLastEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunID(); ok {
		_spec.SetField(personentity.FieldLastRunID, field.TypeString, value)
	}
	if _u.mutation.LastRunIDCleared() {
		_spec.ClearField(personentity.FieldLastRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LastOperationID(); ok {
		_spec.SetField(personentity.FieldLastOperationID, field.TypeString, value)
	}
	if _u.mutation.LastOperationIDCleared() {
		_spec.ClearField(personentity.FieldLastOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceProviders(); ok {
		_spec.SetField(personentity.FieldSourceProviders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, personentity.FieldSourceProviders, value)
		})
	}
	if _u.mutation.SourceProvidersCleared() {
		_spec.ClearField(personentity.FieldSourceProviders, field.TypeJSON)
	}
	_node = &PersonEntity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
