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
	"waterline.io/waterline/ent/companyentity"
	"waterline.io/waterline/ent/predicate"
)

// CompanyEntityUpdate is the builder for updating CompanyEntity entities.
type CompanyEntityUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyEntityMutation
}

// Where appends a list predicates to the CompanyEntityUpdate builder.
func (_u *CompanyEntityUpdate) Where(ps ...predicate.CompanyEntity) *CompanyEntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyEntityUpdate) SetUpdatedAt(v time.Time) *CompanyEntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecordVersion sets the "record_version" field.
func (_u *CompanyEntityUpdate) SetRecordVersion(v int) *CompanyEntityUpdate {
	_u.mutation.ResetRecordVersion()
	_u.mutation.SetRecordVersion(v)
	return _u
}

// SetNillableRecordVersion sets the "record_version" field if the given value is not nil.
func (_u *CompanyEntityUpdate) SetNillableRecordVersion(v *int) *CompanyEntityUpdate {
	if v != nil {
		_u.SetRecordVersion(*v)
	}
	return _u
}

// AddRecordVersion adds value to the "record_version" field.
func (_u *CompanyEntityUpdate) AddRecordVersion(v int) *CompanyEntityUpdate {
	_u.mutation.AddRecordVersion(v)
	return _u
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_u *CompanyEntityUpdate) SetCanonicalPayload(v map[string]interface{}) *CompanyEntityUpdate {
	_u.mutation.SetCanonicalPayload(v)
	return _u
}

// SetCanonicalDomain sets the "canonical_domain" field.
func (_u *CompanyEntityUpdate) SetCanonicalDomain(v string) *CompanyEntityUpdate {
	_u.mutation.SetCanonicalDomain(v)
	return _u
}

// SetNillableCanonicalDomain sets the "canonical_domain" field if the given value is not nil.
func (_u *CompanyEntityUpdate) SetNillableCanonicalDomain(v *string) *CompanyEntityUpdate {
	if v != nil {
		_u.SetCanonicalDomain(*v)
	}
	return _u
}

// ClearCanonicalDomain clears the value of the "canonical_domain" field.
func (_u *CompanyEntityUpdate) ClearCanonicalDomain() *CompanyEntityUpdate {
	_u.mutation.ClearCanonicalDomain()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *CompanyEntityUpdate) SetLinkedinURL(v string) *CompanyEntityUpdate {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *CompanyEntityUpdate) SetNillableLinkedinURL(v *string) *CompanyEntityUpdate {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *CompanyEntityUpdate) ClearLinkedinURL() *CompanyEntityUpdate {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyEntityUpdate) SetName(v string) *CompanyEntityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyEntityUpdate) SetNillableName(v *string) *CompanyEntityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *CompanyEntityUpdate) ClearName() *CompanyEntityUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (_u *CompanyEntityUpdate) SetLastEnrichedAt(v time.Time) *CompanyEntityUpdate {
	_u.mutation.SetLastEnrichedAt(v)
	return _u
}

// SetNillableLastEnrichedAt sets the "last_enriched_at" field if the given value is not nil.
func (_u *CompanyEntityUpdate) SetNillableLastEnrichedAt(v *time.Time) *CompanyEntityUpdate {
	if v != nil {
		_u.SetLastEnrichedAt(*v)
	}
	return _u
}

// ClearLastEnrichedAt clears the value of the "last_enriched_at" field.
func (_u *CompanyEntityUpdate) ClearLastEnrichedAt() *CompanyEntityUpdate {
	_u.mutation.ClearLastEnrichedAt()
	return _u
}

// SetLastRunID sets the "last_run_id" field.
func (_u *CompanyEntityUpdate) SetLastRunID(v string) *CompanyEntityUpdate {
	_u.mutation.SetLastRunID(v)
	return _u
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_u *CompanyEntityUpdate) SetNillableLastRunID(v *string) *CompanyEntityUpdate {
	if v != nil {
		_u.SetLastRunID(*v)
	}
	return _u
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (_u *CompanyEntityUpdate) ClearLastRunID() *CompanyEntityUpdate {
	_u.mutation.ClearLastRunID()
	return _u
}

// SetLastOperationID sets the "last_operation_id" field.
func (_u *CompanyEntityUpdate) SetLastOperationID(v string) *CompanyEntityUpdate {
	_u.mutation.SetLastOperationID(v)
	return _u
}

// SetNillableLastOperationID sets the "last_operation_id" field if the given value is not nil.
func (_u *CompanyEntityUpdate) SetNillableLastOperationID(v *string) *CompanyEntityUpdate {
	if v != nil {
		_u.SetLastOperationID(*v)
	}
	return _u
}

// ClearLastOperationID clears the value of the "last_operation_id" field.
func (_u *CompanyEntityUpdate) ClearLastOperationID() *CompanyEntityUpdate {
	_u.mutation.ClearLastOperationID()
	return _u
}

// SetSourceProviders sets the "source_providers" field.
func (_u *CompanyEntityUpdate) SetSourceProviders(v []string) *CompanyEntityUpdate {
	_u.mutation.SetSourceProviders(v)
	return _u
}

// AppendSourceProviders appends value to the "source_providers" field.
func (_u *CompanyEntityUpdate) AppendSourceProviders(v []string) *CompanyEntityUpdate {
	_u.mutation.AppendSourceProviders(v)
	return _u
}

// ClearSourceProviders clears the value of the "source_providers" field.
func (_u *CompanyEntityUpdate) ClearSourceProviders() *CompanyEntityUpdate {
	_u.mutation.ClearSourceProviders()
	return _u
}

// Mutation returns the CompanyEntityMutation object of the builder.
func (_u *CompanyEntityUpdate) Mutation() *CompanyEntityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyEntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyEntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyEntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyEntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyEntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := companyentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyEntityUpdate) check() error {
	if v, ok := _u.mutation.RecordVersion(); ok {
		if err := companyentity.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "CompanyEntity.record_version": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyEntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(companyentity.Table, companyentity.Columns, sqlgraph.NewFieldSpec(companyentity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(companyentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordVersion(); ok {
		_spec.SetField(companyentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordVersion(); ok {
		_spec.AddField(companyentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CanonicalPayload(); ok {
		_spec.SetField(companyentity.FieldCanonicalPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CanonicalDomain(); ok {
		_spec.SetField(companyentity.FieldCanonicalDomain, field.TypeString, value)
	}
	if _u.mutation.CanonicalDomainCleared() {
		_spec.ClearField(companyentity.FieldCanonicalDomain, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(companyentity.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(companyentity.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(companyentity.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(companyentity.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.LastEnrichedAt(); ok {
		_spec.SetField(companyentity.FieldLastEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnrichedAtCleared() {
		_spec.ClearField(companyentity.FieldLastEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunID(); ok {
		_spec.SetField(companyentity.FieldLastRunID, field.TypeString, value)
	}
	if _u.mutation.LastRunIDCleared() {
		_spec.ClearField(companyentity.FieldLastRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LastOperationID(); ok {
		_spec.SetField(companyentity.FieldLastOperationID, field.TypeString, value)
	}
	if _u.mutation.LastOperationIDCleared() {
		_spec.ClearField(companyentity.FieldLastOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceProviders(); ok {
		_spec.SetField(companyentity.FieldSourceProviders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, companyentity.FieldSourceProviders, value)
		})
	}
	if _u.mutation.SourceProvidersCleared() {
		_spec.ClearField(companyentity.FieldSourceProviders, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companyentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyEntityUpdateOne is the builder for updating a single CompanyEntity entity.
type CompanyEntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyEntityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyEntityUpdateOne) SetUpdatedAt(v time.Time) *CompanyEntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecordVersion sets the "record_version" field.
func (_u *CompanyEntityUpdateOne) SetRecordVersion(v int) *CompanyEntityUpdateOne {
	_u.mutation.ResetRecordVersion()
	_u.mutation.SetRecordVersion(v)
	return _u
}

// SetNillableRecordVersion sets the "record_version" field if the given value is not nil.
func (_u *CompanyEntityUpdateOne) SetNillableRecordVersion(v *int) *CompanyEntityUpdateOne {
	if v != nil {
		_u.SetRecordVersion(*v)
	}
	return _u
}

// AddRecordVersion adds value to the "record_version" field.
func (_u *CompanyEntityUpdateOne) AddRecordVersion(v int) *CompanyEntityUpdateOne {
	_u.mutation.AddRecordVersion(v)
	return _u
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_u *CompanyEntityUpdateOne) SetCanonicalPayload(v map[string]interface{}) *CompanyEntityUpdateOne {
	_u.mutation.SetCanonicalPayload(v)
	return _u
}

// SetCanonicalDomain sets the "canonical_domain" field.
func (_u *CompanyEntityUpdateOne) SetCanonicalDomain(v string) *CompanyEntityUpdateOne {
	_u.mutation.SetCanonicalDomain(v)
	return _u
}

// SetNillableCanonicalDomain sets the "canonical_domain" field if the given value is not nil.
func (_u *CompanyEntityUpdateOne) SetNillableCanonicalDomain(v *string) *CompanyEntityUpdateOne {
	if v != nil {
		_u.SetCanonicalDomain(*v)
	}
	return _u
}

// ClearCanonicalDomain clears the value of the "canonical_domain" field.
func (_u *CompanyEntityUpdateOne) ClearCanonicalDomain() *CompanyEntityUpdateOne {
	_u.mutation.ClearCanonicalDomain()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *CompanyEntityUpdateOne) SetLinkedinURL(v string) *CompanyEntityUpdateOne {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *CompanyEntityUpdateOne) SetNillableLinkedinURL(v *string) *CompanyEntityUpdateOne {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *CompanyEntityUpdateOne) ClearLinkedinURL() *CompanyEntityUpdateOne {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyEntityUpdateOne) SetName(v string) *CompanyEntityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyEntityUpdateOne) SetNillableName(v *string) *CompanyEntityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *CompanyEntityUpdateOne) ClearName() *CompanyEntityUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (_u *CompanyEntityUpdateOne) SetLastEnrichedAt(v time.Time) *CompanyEntityUpdateOne {
	_u.mutation.SetLastEnrichedAt(v)
	return _u
}

// SetNillableLastEnrichedAt sets the "last_enriched_at" field if the given value is not nil.
func (_u *CompanyEntityUpdateOne) SetNillableLastEnrichedAt(v *time.Time) *CompanyEntityUpdateOne {
	if v != nil {
		_u.SetLastEnrichedAt(*v)
	}
	return _u
}

// ClearLastEnrichedAt clears the value of the "last_enriched_at" field.
func (_u *CompanyEntityUpdateOne) ClearLastEnrichedAt() *CompanyEntityUpdateOne {
	_u.mutation.ClearLastEnrichedAt()
	return _u
}

// SetLastRunID sets the "last_run_id" field.
func (_u *CompanyEntityUpdateOne) SetLastRunID(v string) *CompanyEntityUpdateOne {
	_u.mutation.SetLastRunID(v)
	return _u
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_u *CompanyEntityUpdateOne) SetNillableLastRunID(v *string) *CompanyEntityUpdateOne {
	if v != nil {
		_u.SetLastRunID(*v)
	}
	return _u
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (_u *CompanyEntityUpdateOne) ClearLastRunID() *CompanyEntityUpdateOne {
	_u.mutation.ClearLastRunID()
	return _u
}

// SetLastOperationID sets the "last_operation_id" field.
func (_u *CompanyEntityUpdateOne) SetLastOperationID(v string) *CompanyEntityUpdateOne {
	_u.mutation.SetLastOperationID(v)
	return _u
}

// SetNillableLastOperationID sets the "last_operation_id" field if the given value is not nil.
func (_u *CompanyEntityUpdateOne) SetNillableLastOperationID(v *string) *CompanyEntityUpdateOne {
	if v != nil {
		_u.SetLastOperationID(*v)
	}
	return _u
}

// ClearLastOperationID clears the value of the "last_operation_id" field.
func (_u *CompanyEntityUpdateOne) ClearLastOperationID() *CompanyEntityUpdateOne {
	_u.mutation.ClearLastOperationID()
	return _u
}

// SetSourceProviders sets the "source_providers" field.
func (_u *CompanyEntityUpdateOne) SetSourceProviders(v []string) *CompanyEntityUpdateOne {
	_u.mutation.SetSourceProviders(v)
	return _u
}

// AppendSourceProviders appends value to the "source_providers" field.
func (_u *CompanyEntityUpdateOne) AppendSourceProviders(v []string) *CompanyEntityUpdateOne {
	_u.mutation.AppendSourceProviders(v)
	return _u
}

// ClearSourceProviders clears the value of the "source_providers" field.
func (_u *CompanyEntityUpdateOne) ClearSourceProviders() *CompanyEntityUpdateOne {
	_u.mutation.ClearSourceProviders()
	return _u
}

// Mutation returns the CompanyEntityMutation object of the builder.
func (_u *CompanyEntityUpdateOne) Mutation() *CompanyEntityMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompanyEntityUpdate builder.
func (_u *CompanyEntityUpdateOne) Where(ps ...predicate.CompanyEntity) *CompanyEntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyEntityUpdateOne) Select(field string, fields ...string) *CompanyEntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompanyEntity entity.
func (_u *CompanyEntityUpdateOne) Save(ctx context.Context) (*CompanyEntity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyEntityUpdateOne) SaveX(ctx context.Context) *CompanyEntity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyEntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyEntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyEntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := companyentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyEntityUpdateOne) check() error {
	if v, ok := _u.mutation.RecordVersion(); ok {
		if err := companyentity.RecordVersionValidator(v); err != nil {
			return &ValidationError{Name: "record_version", err: fmt.Errorf(`ent: validator failed for field "CompanyEntity.record_version": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyEntityUpdateOne) sqlSave(ctx context.Context) (_node *CompanyEntity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(companyentity.Table, companyentity.Columns, sqlgraph.NewFieldSpec(companyentity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompanyEntity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, companyentity.FieldID)
		for _, f := range fields {
			if !companyentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != companyentity.FieldID {
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
		_spec.SetField(companyentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordVersion(); ok {
		_spec.SetField(companyentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordVersion(); ok {
		_spec.AddField(companyentity.FieldRecordVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CanonicalPayload(); ok {
		_spec.SetField(companyentity.FieldCanonicalPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CanonicalDomain(); ok {
		_spec.SetField(companyentity.FieldCanonicalDomain, field.TypeString, value)
	}
	if _u.mutation.CanonicalDomainCleared() {
		_spec.ClearField(companyentity.FieldCanonicalDomain, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(companyentity.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(companyentity.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(companyentity.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(companyentity.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.LastEnrichedAt(); ok {
		_spec.SetField(companyentity.FieldLastEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEnrichedAtCleared() {
		_spec.ClearField(companyentity.FieldLastEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunID(); ok {
		_spec.SetField(companyentity.FieldLastRunID, field.TypeString, value)
	}
	if _u.mutation.LastRunIDCleared() {
		_spec.ClearField(companyentity.FieldLastRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LastOperationID(); ok {
		_spec.SetField(companyentity.FieldLastOperationID, field.TypeString, value)
	}
	if _u.mutation.LastOperationIDCleared() {
		_spec.ClearField(companyentity.FieldLastOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceProviders(); ok {
		_spec.SetField(companyentity.FieldSourceProviders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, companyentity.FieldSourceProviders, value)
		})
	}
	if _u.mutation.SourceProvidersCleared() {
		_spec.ClearField(companyentity.FieldSourceProviders, field.TypeJSON)
	}
	_node = &CompanyEntity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companyentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
