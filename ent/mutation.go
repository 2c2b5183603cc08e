// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"waterline.io/waterline/ent/blueprint"
	"waterline.io/waterline/ent/blueprintstep"
	"waterline.io/waterline/ent/companyentity"
	"waterline.io/waterline/ent/entitysnapshot"
	"waterline.io/waterline/ent/jobpostingentity"
	"waterline.io/waterline/ent/org"
	"waterline.io/waterline/ent/personentity"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/predicate"
	"waterline.io/waterline/ent/stepresult"
	"waterline.io/waterline/ent/submission"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBlueprint        = "Blueprint"
	TypeBlueprintStep    = "BlueprintStep"
	TypeCompanyEntity    = "CompanyEntity"
	TypeEntitySnapshot   = "EntitySnapshot"
	TypeJobPostingEntity = "JobPostingEntity"
	TypeOrg              = "Org"
	TypePersonEntity     = "PersonEntity"
	TypePipelineRun      = "PipelineRun"
	TypeStepResult       = "StepResult"
	TypeSubmission       = "Submission"
)

// BlueprintMutation represents an operation that mutates the Blueprint nodes in the graph.
type BlueprintMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	description   *string
	is_active     *bool
	clearedFields map[string]struct{}
	org           *string
	clearedorg    bool
	steps         map[string]struct{}
	removedsteps  map[string]struct{}
	clearedsteps  bool
	done          bool
	oldValue      func(context.Context) (*Blueprint, error)
	predicates    []predicate.Blueprint
}

var _ ent.Mutation = (*BlueprintMutation)(nil)

// blueprintOption allows management of the mutation configuration using functional options.
type blueprintOption func(*BlueprintMutation)

// newBlueprintMutation creates new mutation for the Blueprint entity.
func newBlueprintMutation(c config, op Op, opts ...blueprintOption) *BlueprintMutation {
	m := &BlueprintMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintID sets the ID field of the mutation.
func withBlueprintID(id string) blueprintOption {
	return func(m *BlueprintMutation) {
		var (
			err   error
			once  sync.Once
			value *Blueprint
		)
		m.oldValue = func(ctx context.Context) (*Blueprint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Blueprint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprint sets the old Blueprint of the mutation.
func withBlueprint(node *Blueprint) blueprintOption {
	return func(m *BlueprintMutation) {
		m.oldValue = func(context.Context) (*Blueprint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Blueprint entities.
func (m *BlueprintMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Blueprint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BlueprintMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlueprintMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlueprintMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BlueprintMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BlueprintMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BlueprintMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrgID sets the "org_id" field.
func (m *BlueprintMutation) SetOrgID(s string) {
	m.org = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *BlueprintMutation) OrgID() (r string, exists bool) {
	v := m.org
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *BlueprintMutation) ResetOrgID() {
	m.org = nil
}

// SetName sets the "name" field.
func (m *BlueprintMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BlueprintMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BlueprintMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *BlueprintMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BlueprintMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BlueprintMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[blueprint.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BlueprintMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BlueprintMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, blueprint.FieldDescription)
}

// SetIsActive sets the "is_active" field.
func (m *BlueprintMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *BlueprintMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *BlueprintMutation) ResetIsActive() {
	m.is_active = nil
}

// ClearOrg clears the "org" edge to the Org entity.
func (m *BlueprintMutation) ClearOrg() {
	m.clearedorg = true
	m.clearedFields[blueprint.FieldOrgID] = struct{}{}
}

// OrgCleared reports if the "org" edge to the Org entity was cleared.
func (m *BlueprintMutation) OrgCleared() bool {
	return m.clearedorg
}

// OrgIDs returns the "org" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrgID instead. It exists only for internal usage by the builders.
func (m *BlueprintMutation) OrgIDs() (ids []string) {
	if id := m.org; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrg resets all changes to the "org" edge.
func (m *BlueprintMutation) ResetOrg() {
	m.org = nil
	m.clearedorg = false
}

// AddStepIDs adds the "steps" edge to the BlueprintStep entity by ids.
func (m *BlueprintMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the BlueprintStep entity.
func (m *BlueprintMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the BlueprintStep entity was cleared.
func (m *BlueprintMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the BlueprintStep entity by IDs.
func (m *BlueprintMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the BlueprintStep entity.
func (m *BlueprintMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *BlueprintMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *BlueprintMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the BlueprintMutation builder.
func (m *BlueprintMutation) Where(ps ...predicate.Blueprint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Blueprint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Blueprint).
func (m *BlueprintMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, blueprint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, blueprint.FieldUpdatedAt)
	}
	if m.org != nil {
		fields = append(fields, blueprint.FieldOrgID)
	}
	if m.name != nil {
		fields = append(fields, blueprint.FieldName)
	}
	if m.description != nil {
		fields = append(fields, blueprint.FieldDescription)
	}
	if m.is_active != nil {
		fields = append(fields, blueprint.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprint.FieldCreatedAt:
		return m.CreatedAt()
	case blueprint.FieldUpdatedAt:
		return m.UpdatedAt()
	case blueprint.FieldOrgID:
		return m.OrgID()
	case blueprint.FieldName:
		return m.Name()
	case blueprint.FieldDescription:
		return m.Description()
	case blueprint.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case blueprint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case blueprint.FieldOrgID:
		return m.OldOrgID(ctx)
	case blueprint.FieldName:
		return m.OldName(ctx)
	case blueprint.FieldDescription:
		return m.OldDescription(ctx)
	case blueprint.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Blueprint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case blueprint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case blueprint.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case blueprint.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case blueprint.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case blueprint.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Blueprint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Blueprint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blueprint.FieldDescription) {
		fields = append(fields, blueprint.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintMutation) ClearField(name string) error {
	switch name {
	case blueprint.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Blueprint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintMutation) ResetField(name string) error {
	switch name {
	case blueprint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case blueprint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case blueprint.FieldOrgID:
		m.ResetOrgID()
		return nil
	case blueprint.FieldName:
		m.ResetName()
		return nil
	case blueprint.FieldDescription:
		m.ResetDescription()
		return nil
	case blueprint.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Blueprint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.org != nil {
		edges = append(edges, blueprint.EdgeOrg)
	}
	if m.steps != nil {
		edges = append(edges, blueprint.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blueprint.EdgeOrg:
		if id := m.org; id != nil {
			return []ent.Value{*id}
		}
	case blueprint.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, blueprint.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case blueprint.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedorg {
		edges = append(edges, blueprint.EdgeOrg)
	}
	if m.clearedsteps {
		edges = append(edges, blueprint.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintMutation) EdgeCleared(name string) bool {
	switch name {
	case blueprint.EdgeOrg:
		return m.clearedorg
	case blueprint.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintMutation) ClearEdge(name string) error {
	switch name {
	case blueprint.EdgeOrg:
		m.ClearOrg()
		return nil
	}
	return fmt.Errorf("unknown Blueprint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintMutation) ResetEdge(name string) error {
	switch name {
	case blueprint.EdgeOrg:
		m.ResetOrg()
		return nil
	case blueprint.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Blueprint edge %s", name)
}

// BlueprintStepMutation represents an operation that mutates the BlueprintStep nodes in the graph.
type BlueprintStepMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	position         *int
	addposition      *int
	operation_id     *string
	step_config      *map[string]interface{}
	fan_out          *bool
	is_enabled       *bool
	skip_if_fresh    *map[string]interface{}
	clearedFields    map[string]struct{}
	blueprint        *string
	clearedblueprint bool
	done             bool
	oldValue         func(context.Context) (*BlueprintStep, error)
	predicates       []predicate.BlueprintStep
}

var _ ent.Mutation = (*BlueprintStepMutation)(nil)

// blueprintstepOption allows management of the mutation configuration using functional options.
type blueprintstepOption func(*BlueprintStepMutation)

// newBlueprintStepMutation creates new mutation for the BlueprintStep entity.
func newBlueprintStepMutation(c config, op Op, opts ...blueprintstepOption) *BlueprintStepMutation {
	m := &BlueprintStepMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprintStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintStepID sets the ID field of the mutation.
func withBlueprintStepID(id string) blueprintstepOption {
	return func(m *BlueprintStepMutation) {
		var (
			err   error
			once  sync.Once
			value *BlueprintStep
		)
		m.oldValue = func(ctx context.Context) (*BlueprintStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlueprintStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprintStep sets the old BlueprintStep of the mutation.
func withBlueprintStep(node *BlueprintStep) blueprintstepOption {
	return func(m *BlueprintStepMutation) {
		m.oldValue = func(context.Context) (*BlueprintStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlueprintStep entities.
func (m *BlueprintStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlueprintStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BlueprintStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlueprintStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlueprintStep entity.
// If the BlueprintStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlueprintStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BlueprintStepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BlueprintStepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BlueprintStep entity.
// If the BlueprintStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BlueprintStepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPosition sets the "position" field.
func (m *BlueprintStepMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *BlueprintStepMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the BlueprintStep entity.
// If the BlueprintStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStepMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *BlueprintStepMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *BlueprintStepMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *BlueprintStepMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetOperationID sets the "operation_id" field.
func (m *BlueprintStepMutation) SetOperationID(s string) {
	m.operation_id = &s
}

// OperationID returns the value of the "operation_id" field in the mutation.
func (m *BlueprintStepMutation) OperationID() (r string, exists bool) {
	v := m.operation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationID returns the old "operation_id" field's value of the BlueprintStep entity.
// If the BlueprintStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStepMutation) OldOperationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationID: %w", err)
	}
	return oldValue.OperationID, nil
}

// ResetOperationID resets all changes to the "operation_id" field.
func (m *BlueprintStepMutation) ResetOperationID() {
	m.operation_id = nil
}

// SetStepConfig sets the "step_config" field.
func (m *BlueprintStepMutation) SetStepConfig(value map[string]interface{}) {
	m.step_config = &value
}

// StepConfig returns the value of the "step_config" field in the mutation.
func (m *BlueprintStepMutation) StepConfig() (r map[string]interface{}, exists bool) {
	v := m.step_config
	if v == nil {
		return
	}
	return *v, true
}

// OldStepConfig returns the old "step_config" field's value of the BlueprintStep entity.
// If the BlueprintStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStepMutation) OldStepConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepConfig: %w", err)
	}
	return oldValue.StepConfig, nil
}

// ClearStepConfig clears the value of the "step_config" field.
func (m *BlueprintStepMutation) ClearStepConfig() {
	m.step_config = nil
	m.clearedFields[blueprintstep.FieldStepConfig] = struct{}{}
}

// StepConfigCleared returns if the "step_config" field was cleared in this mutation.
func (m *BlueprintStepMutation) StepConfigCleared() bool {
	_, ok := m.clearedFields[blueprintstep.FieldStepConfig]
	return ok
}

// ResetStepConfig resets all changes to the "step_config" field.
func (m *BlueprintStepMutation) ResetStepConfig() {
	m.step_config = nil
	delete(m.clearedFields, blueprintstep.FieldStepConfig)
}

// SetFanOut sets the "fan_out" field.
func (m *BlueprintStepMutation) SetFanOut(b bool) {
	m.fan_out = &b
}

// FanOut returns the value of the "fan_out" field in the mutation.
func (m *BlueprintStepMutation) FanOut() (r bool, exists bool) {
	v := m.fan_out
	if v == nil {
		return
	}
	return *v, true
}

// OldFanOut returns the old "fan_out" field's value of the BlueprintStep entity.
// If the BlueprintStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStepMutation) OldFanOut(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFanOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFanOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFanOut: %w", err)
	}
	return oldValue.FanOut, nil
}

// ResetFanOut resets all changes to the "fan_out" field.
func (m *BlueprintStepMutation) ResetFanOut() {
	m.fan_out = nil
}

// SetIsEnabled sets the "is_enabled" field.
func (m *BlueprintStepMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *BlueprintStepMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the BlueprintStep entity.
// If the BlueprintStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStepMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *BlueprintStepMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetSkipIfFresh sets the "skip_if_fresh" field.
func (m *BlueprintStepMutation) SetSkipIfFresh(value map[string]interface{}) {
	m.skip_if_fresh = &value
}

// SkipIfFresh returns the value of the "skip_if_fresh" field in the mutation.
func (m *BlueprintStepMutation) SkipIfFresh() (r map[string]interface{}, exists bool) {
	v := m.skip_if_fresh
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipIfFresh returns the old "skip_if_fresh" field's value of the BlueprintStep entity.
// If the BlueprintStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStepMutation) OldSkipIfFresh(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipIfFresh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipIfFresh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipIfFresh: %w", err)
	}
	return oldValue.SkipIfFresh, nil
}

// ClearSkipIfFresh clears the value of the "skip_if_fresh" field.
func (m *BlueprintStepMutation) ClearSkipIfFresh() {
	m.skip_if_fresh = nil
	m.clearedFields[blueprintstep.FieldSkipIfFresh] = struct{}{}
}

// SkipIfFreshCleared returns if the "skip_if_fresh" field was cleared in this mutation.
func (m *BlueprintStepMutation) SkipIfFreshCleared() bool {
	_, ok := m.clearedFields[blueprintstep.FieldSkipIfFresh]
	return ok
}

// ResetSkipIfFresh resets all changes to the "skip_if_fresh" field.
func (m *BlueprintStepMutation) ResetSkipIfFresh() {
	m.skip_if_fresh = nil
	delete(m.clearedFields, blueprintstep.FieldSkipIfFresh)
}

// SetBlueprintID sets the "blueprint" edge to the Blueprint entity by id.
func (m *BlueprintStepMutation) SetBlueprintID(id string) {
	m.blueprint = &id
}

// ClearBlueprint clears the "blueprint" edge to the Blueprint entity.
func (m *BlueprintStepMutation) ClearBlueprint() {
	m.clearedblueprint = true
}

// BlueprintCleared reports if the "blueprint" edge to the Blueprint entity was cleared.
func (m *BlueprintStepMutation) BlueprintCleared() bool {
	return m.clearedblueprint
}

// BlueprintID returns the "blueprint" edge ID in the mutation.
func (m *BlueprintStepMutation) BlueprintID() (id string, exists bool) {
	if m.blueprint != nil {
		return *m.blueprint, true
	}
	return
}

// BlueprintIDs returns the "blueprint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlueprintID instead. It exists only for internal usage by the builders.
func (m *BlueprintStepMutation) BlueprintIDs() (ids []string) {
	if id := m.blueprint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlueprint resets all changes to the "blueprint" edge.
func (m *BlueprintStepMutation) ResetBlueprint() {
	m.blueprint = nil
	m.clearedblueprint = false
}

// Where appends a list predicates to the BlueprintStepMutation builder.
func (m *BlueprintStepMutation) Where(ps ...predicate.BlueprintStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlueprintStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlueprintStep).
func (m *BlueprintStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintStepMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, blueprintstep.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, blueprintstep.FieldUpdatedAt)
	}
	if m.position != nil {
		fields = append(fields, blueprintstep.FieldPosition)
	}
	if m.operation_id != nil {
		fields = append(fields, blueprintstep.FieldOperationID)
	}
	if m.step_config != nil {
		fields = append(fields, blueprintstep.FieldStepConfig)
	}
	if m.fan_out != nil {
		fields = append(fields, blueprintstep.FieldFanOut)
	}
	if m.is_enabled != nil {
		fields = append(fields, blueprintstep.FieldIsEnabled)
	}
	if m.skip_if_fresh != nil {
		fields = append(fields, blueprintstep.FieldSkipIfFresh)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprintstep.FieldCreatedAt:
		return m.CreatedAt()
	case blueprintstep.FieldUpdatedAt:
		return m.UpdatedAt()
	case blueprintstep.FieldPosition:
		return m.Position()
	case blueprintstep.FieldOperationID:
		return m.OperationID()
	case blueprintstep.FieldStepConfig:
		return m.StepConfig()
	case blueprintstep.FieldFanOut:
		return m.FanOut()
	case blueprintstep.FieldIsEnabled:
		return m.IsEnabled()
	case blueprintstep.FieldSkipIfFresh:
		return m.SkipIfFresh()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprintstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case blueprintstep.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case blueprintstep.FieldPosition:
		return m.OldPosition(ctx)
	case blueprintstep.FieldOperationID:
		return m.OldOperationID(ctx)
	case blueprintstep.FieldStepConfig:
		return m.OldStepConfig(ctx)
	case blueprintstep.FieldFanOut:
		return m.OldFanOut(ctx)
	case blueprintstep.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case blueprintstep.FieldSkipIfFresh:
		return m.OldSkipIfFresh(ctx)
	}
	return nil, fmt.Errorf("unknown BlueprintStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprintstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case blueprintstep.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case blueprintstep.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case blueprintstep.FieldOperationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationID(v)
		return nil
	case blueprintstep.FieldStepConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepConfig(v)
		return nil
	case blueprintstep.FieldFanOut:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFanOut(v)
		return nil
	case blueprintstep.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case blueprintstep.FieldSkipIfFresh:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipIfFresh(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintStepMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, blueprintstep.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprintstep.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprintstep.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blueprintstep.FieldStepConfig) {
		fields = append(fields, blueprintstep.FieldStepConfig)
	}
	if m.FieldCleared(blueprintstep.FieldSkipIfFresh) {
		fields = append(fields, blueprintstep.FieldSkipIfFresh)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintStepMutation) ClearField(name string) error {
	switch name {
	case blueprintstep.FieldStepConfig:
		m.ClearStepConfig()
		return nil
	case blueprintstep.FieldSkipIfFresh:
		m.ClearSkipIfFresh()
		return nil
	}
	return fmt.Errorf("unknown BlueprintStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintStepMutation) ResetField(name string) error {
	switch name {
	case blueprintstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case blueprintstep.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case blueprintstep.FieldPosition:
		m.ResetPosition()
		return nil
	case blueprintstep.FieldOperationID:
		m.ResetOperationID()
		return nil
	case blueprintstep.FieldStepConfig:
		m.ResetStepConfig()
		return nil
	case blueprintstep.FieldFanOut:
		m.ResetFanOut()
		return nil
	case blueprintstep.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case blueprintstep.FieldSkipIfFresh:
		m.ResetSkipIfFresh()
		return nil
	}
	return fmt.Errorf("unknown BlueprintStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.blueprint != nil {
		edges = append(edges, blueprintstep.EdgeBlueprint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blueprintstep.EdgeBlueprint:
		if id := m.blueprint; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedblueprint {
		edges = append(edges, blueprintstep.EdgeBlueprint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintStepMutation) EdgeCleared(name string) bool {
	switch name {
	case blueprintstep.EdgeBlueprint:
		return m.clearedblueprint
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintStepMutation) ClearEdge(name string) error {
	switch name {
	case blueprintstep.EdgeBlueprint:
		m.ClearBlueprint()
		return nil
	}
	return fmt.Errorf("unknown BlueprintStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintStepMutation) ResetEdge(name string) error {
	switch name {
	case blueprintstep.EdgeBlueprint:
		m.ResetBlueprint()
		return nil
	}
	return fmt.Errorf("unknown BlueprintStep edge %s", name)
}

// CompanyEntityMutation represents an operation that mutates the CompanyEntity nodes in the graph.
type CompanyEntityMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	updated_at             *time.Time
	org_id                 *string
	record_version         *int
	addrecord_version      *int
	canonical_payload      *map[string]interface{}
	canonical_domain       *string
	linkedin_url           *string
	name                   *string
	last_enriched_at       *time.Time
	last_run_id            *string
	last_operation_id      *string
	source_providers       *[]string
	appendsource_providers []string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*CompanyEntity, error)
	predicates             []predicate.CompanyEntity
}

var _ ent.Mutation = (*CompanyEntityMutation)(nil)

// companyentityOption allows management of the mutation configuration using functional options.
type companyentityOption func(*CompanyEntityMutation)

// newCompanyEntityMutation creates new mutation for the CompanyEntity entity.
func newCompanyEntityMutation(c config, op Op, opts ...companyentityOption) *CompanyEntityMutation {
	m := &CompanyEntityMutation{
		config:        c,
		op:            op,
		typ:           TypeCompanyEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyEntityID sets the ID field of the mutation.
func withCompanyEntityID(id string) companyentityOption {
	return func(m *CompanyEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *CompanyEntity
		)
		m.oldValue = func(ctx context.Context) (*CompanyEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompanyEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompanyEntity sets the old CompanyEntity of the mutation.
func withCompanyEntity(node *CompanyEntity) companyentityOption {
	return func(m *CompanyEntityMutation) {
		m.oldValue = func(context.Context) (*CompanyEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompanyEntity entities.
func (m *CompanyEntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyEntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyEntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompanyEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyEntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyEntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyEntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyEntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyEntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyEntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrgID sets the "org_id" field.
func (m *CompanyEntityMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *CompanyEntityMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *CompanyEntityMutation) ResetOrgID() {
	m.org_id = nil
}

// SetRecordVersion sets the "record_version" field.
func (m *CompanyEntityMutation) SetRecordVersion(i int) {
	m.record_version = &i
	m.addrecord_version = nil
}

// RecordVersion returns the value of the "record_version" field in the mutation.
func (m *CompanyEntityMutation) RecordVersion() (r int, exists bool) {
	v := m.record_version
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordVersion returns the old "record_version" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldRecordVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordVersion: %w", err)
	}
	return oldValue.RecordVersion, nil
}

// AddRecordVersion adds i to the "record_version" field.
func (m *CompanyEntityMutation) AddRecordVersion(i int) {
	if m.addrecord_version != nil {
		*m.addrecord_version += i
	} else {
		m.addrecord_version = &i
	}
}

// AddedRecordVersion returns the value that was added to the "record_version" field in this mutation.
func (m *CompanyEntityMutation) AddedRecordVersion() (r int, exists bool) {
	v := m.addrecord_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordVersion resets all changes to the "record_version" field.
func (m *CompanyEntityMutation) ResetRecordVersion() {
	m.record_version = nil
	m.addrecord_version = nil
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (m *CompanyEntityMutation) SetCanonicalPayload(value map[string]interface{}) {
	m.canonical_payload = &value
}

// CanonicalPayload returns the value of the "canonical_payload" field in the mutation.
func (m *CompanyEntityMutation) CanonicalPayload() (r map[string]interface{}, exists bool) {
	v := m.canonical_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalPayload returns the old "canonical_payload" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldCanonicalPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalPayload: %w", err)
	}
	return oldValue.CanonicalPayload, nil
}

// ResetCanonicalPayload resets all changes to the "canonical_payload" field.
func (m *CompanyEntityMutation) ResetCanonicalPayload() {
	m.canonical_payload = nil
}

// SetCanonicalDomain sets the "canonical_domain" field.
func (m *CompanyEntityMutation) SetCanonicalDomain(s string) {
	m.canonical_domain = &s
}

// CanonicalDomain returns the value of the "canonical_domain" field in the mutation.
func (m *CompanyEntityMutation) CanonicalDomain() (r string, exists bool) {
	v := m.canonical_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalDomain returns the old "canonical_domain" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldCanonicalDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalDomain: %w", err)
	}
	return oldValue.CanonicalDomain, nil
}

// ClearCanonicalDomain clears the value of the "canonical_domain" field.
func (m *CompanyEntityMutation) ClearCanonicalDomain() {
	m.canonical_domain = nil
	m.clearedFields[companyentity.FieldCanonicalDomain] = struct{}{}
}

// CanonicalDomainCleared returns if the "canonical_domain" field was cleared in this mutation.
func (m *CompanyEntityMutation) CanonicalDomainCleared() bool {
	_, ok := m.clearedFields[companyentity.FieldCanonicalDomain]
	return ok
}

// ResetCanonicalDomain resets all changes to the "canonical_domain" field.
func (m *CompanyEntityMutation) ResetCanonicalDomain() {
	m.canonical_domain = nil
	delete(m.clearedFields, companyentity.FieldCanonicalDomain)
}

// SetLinkedinURL sets the "linkedin_url" field.
func (m *CompanyEntityMutation) SetLinkedinURL(s string) {
	m.linkedin_url = &s
}

// LinkedinURL returns the value of the "linkedin_url" field in the mutation.
func (m *CompanyEntityMutation) LinkedinURL() (r string, exists bool) {
	v := m.linkedin_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedinURL returns the old "linkedin_url" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldLinkedinURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedinURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedinURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedinURL: %w", err)
	}
	return oldValue.LinkedinURL, nil
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (m *CompanyEntityMutation) ClearLinkedinURL() {
	m.linkedin_url = nil
	m.clearedFields[companyentity.FieldLinkedinURL] = struct{}{}
}

// LinkedinURLCleared returns if the "linkedin_url" field was cleared in this mutation.
func (m *CompanyEntityMutation) LinkedinURLCleared() bool {
	_, ok := m.clearedFields[companyentity.FieldLinkedinURL]
	return ok
}

// ResetLinkedinURL resets all changes to the "linkedin_url" field.
func (m *CompanyEntityMutation) ResetLinkedinURL() {
	m.linkedin_url = nil
	delete(m.clearedFields, companyentity.FieldLinkedinURL)
}

// SetName sets the "name" field.
func (m *CompanyEntityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyEntityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *CompanyEntityMutation) ClearName() {
	m.name = nil
	m.clearedFields[companyentity.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *CompanyEntityMutation) NameCleared() bool {
	_, ok := m.clearedFields[companyentity.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *CompanyEntityMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, companyentity.FieldName)
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (m *CompanyEntityMutation) SetLastEnrichedAt(t time.Time) {
	m.last_enriched_at = &t
}

// LastEnrichedAt returns the value of the "last_enriched_at" field in the mutation.
func (m *CompanyEntityMutation) LastEnrichedAt() (r time.Time, exists bool) {
	v := m.last_enriched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEnrichedAt returns the old "last_enriched_at" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldLastEnrichedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEnrichedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEnrichedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEnrichedAt: %w", err)
	}
	return oldValue.LastEnrichedAt, nil
}

// ClearLastEnrichedAt clears the value of the "last_enriched_at" field.
func (m *CompanyEntityMutation) ClearLastEnrichedAt() {
	m.last_enriched_at = nil
	m.clearedFields[companyentity.FieldLastEnrichedAt] = struct{}{}
}

// LastEnrichedAtCleared returns if the "last_enriched_at" field was cleared in this mutation.
func (m *CompanyEntityMutation) LastEnrichedAtCleared() bool {
	_, ok := m.clearedFields[companyentity.FieldLastEnrichedAt]
	return ok
}

// ResetLastEnrichedAt resets all changes to the "last_enriched_at" field.
func (m *CompanyEntityMutation) ResetLastEnrichedAt() {
	m.last_enriched_at = nil
	delete(m.clearedFields, companyentity.FieldLastEnrichedAt)
}

// SetLastRunID sets the "last_run_id" field.
func (m *CompanyEntityMutation) SetLastRunID(s string) {
	m.last_run_id = &s
}

// LastRunID returns the value of the "last_run_id" field in the mutation.
func (m *CompanyEntityMutation) LastRunID() (r string, exists bool) {
	v := m.last_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunID returns the old "last_run_id" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldLastRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunID: %w", err)
	}
	return oldValue.LastRunID, nil
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (m *CompanyEntityMutation) ClearLastRunID() {
	m.last_run_id = nil
	m.clearedFields[companyentity.FieldLastRunID] = struct{}{}
}

// LastRunIDCleared returns if the "last_run_id" field was cleared in this mutation.
func (m *CompanyEntityMutation) LastRunIDCleared() bool {
	_, ok := m.clearedFields[companyentity.FieldLastRunID]
	return ok
}

// ResetLastRunID resets all changes to the "last_run_id" field.
func (m *CompanyEntityMutation) ResetLastRunID() {
	m.last_run_id = nil
	delete(m.clearedFields, companyentity.FieldLastRunID)
}

// SetLastOperationID sets the "last_operation_id" field.
func (m *CompanyEntityMutation) SetLastOperationID(s string) {
	m.last_operation_id = &s
}

// LastOperationID returns the value of the "last_operation_id" field in the mutation.
func (m *CompanyEntityMutation) LastOperationID() (r string, exists bool) {
	v := m.last_operation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOperationID returns the old "last_operation_id" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldLastOperationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOperationID: %w", err)
	}
	return oldValue.LastOperationID, nil
}

// ClearLastOperationID clears the value of the "last_operation_id" field.
func (m *CompanyEntityMutation) ClearLastOperationID() {
	m.last_operation_id = nil
	m.clearedFields[companyentity.FieldLastOperationID] = struct{}{}
}

// LastOperationIDCleared returns if the "last_operation_id" field was cleared in this mutation.
func (m *CompanyEntityMutation) LastOperationIDCleared() bool {
	_, ok := m.clearedFields[companyentity.FieldLastOperationID]
	return ok
}

// ResetLastOperationID resets all changes to the "last_operation_id" field.
func (m *CompanyEntityMutation) ResetLastOperationID() {
	m.last_operation_id = nil
	delete(m.clearedFields, companyentity.FieldLastOperationID)
}

// SetSourceProviders sets the "source_providers" field.
func (m *CompanyEntityMutation) SetSourceProviders(s []string) {
	m.source_providers = &s
	m.appendsource_providers = nil
}

// SourceProviders returns the value of the "source_providers" field in the mutation.
func (m *CompanyEntityMutation) SourceProviders() (r []string, exists bool) {
	v := m.source_providers
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceProviders returns the old "source_providers" field's value of the CompanyEntity entity.
// If the CompanyEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyEntityMutation) OldSourceProviders(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceProviders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceProviders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceProviders: %w", err)
	}
	return oldValue.SourceProviders, nil
}

// AppendSourceProviders adds s to the "source_providers" field.
func (m *CompanyEntityMutation) AppendSourceProviders(s []string) {
	m.appendsource_providers = append(m.appendsource_providers, s...)
}

// AppendedSourceProviders returns the list of values that were appended to the "source_providers" field in this mutation.
func (m *CompanyEntityMutation) AppendedSourceProviders() ([]string, bool) {
	if len(m.appendsource_providers) == 0 {
		return nil, false
	}
	return m.appendsource_providers, true
}

// ClearSourceProviders clears the value of the "source_providers" field.
func (m *CompanyEntityMutation) ClearSourceProviders() {
	m.source_providers = nil
	m.appendsource_providers = nil
	m.clearedFields[companyentity.FieldSourceProviders] = struct{}{}
}

// SourceProvidersCleared returns if the "source_providers" field was cleared in this mutation.
func (m *CompanyEntityMutation) SourceProvidersCleared() bool {
	_, ok := m.clearedFields[companyentity.FieldSourceProviders]
	return ok
}

// ResetSourceProviders resets all changes to the "source_providers" field.
func (m *CompanyEntityMutation) ResetSourceProviders() {
	m.source_providers = nil
	m.appendsource_providers = nil
	delete(m.clearedFields, companyentity.FieldSourceProviders)
}

// Where appends a list predicates to the CompanyEntityMutation builder.
func (m *CompanyEntityMutation) Where(ps ...predicate.CompanyEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompanyEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompanyEntity).
func (m *CompanyEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyEntityMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, companyentity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, companyentity.FieldUpdatedAt)
	}
	if m.org_id != nil {
		fields = append(fields, companyentity.FieldOrgID)
	}
	if m.record_version != nil {
		fields = append(fields, companyentity.FieldRecordVersion)
	}
	if m.canonical_payload != nil {
		fields = append(fields, companyentity.FieldCanonicalPayload)
	}
	if m.canonical_domain != nil {
		fields = append(fields, companyentity.FieldCanonicalDomain)
	}
	if m.linkedin_url != nil {
		fields = append(fields, companyentity.FieldLinkedinURL)
	}
	if m.name != nil {
		fields = append(fields, companyentity.FieldName)
	}
	if m.last_enriched_at != nil {
		fields = append(fields, companyentity.FieldLastEnrichedAt)
	}
	if m.last_run_id != nil {
		fields = append(fields, companyentity.FieldLastRunID)
	}
	if m.last_operation_id != nil {
		fields = append(fields, companyentity.FieldLastOperationID)
	}
	if m.source_providers != nil {
		fields = append(fields, companyentity.FieldSourceProviders)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case companyentity.FieldCreatedAt:
		return m.CreatedAt()
	case companyentity.FieldUpdatedAt:
		return m.UpdatedAt()
	case companyentity.FieldOrgID:
		return m.OrgID()
	case companyentity.FieldRecordVersion:
		return m.RecordVersion()
	case companyentity.FieldCanonicalPayload:
		return m.CanonicalPayload()
	case companyentity.FieldCanonicalDomain:
		return m.CanonicalDomain()
	case companyentity.FieldLinkedinURL:
		return m.LinkedinURL()
	case companyentity.FieldName:
		return m.Name()
	case companyentity.FieldLastEnrichedAt:
		return m.LastEnrichedAt()
	case companyentity.FieldLastRunID:
		return m.LastRunID()
	case companyentity.FieldLastOperationID:
		return m.LastOperationID()
	case companyentity.FieldSourceProviders:
		return m.SourceProviders()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case companyentity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case companyentity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case companyentity.FieldOrgID:
		return m.OldOrgID(ctx)
	case companyentity.FieldRecordVersion:
		return m.OldRecordVersion(ctx)
	case companyentity.FieldCanonicalPayload:
		return m.OldCanonicalPayload(ctx)
	case companyentity.FieldCanonicalDomain:
		return m.OldCanonicalDomain(ctx)
	case companyentity.FieldLinkedinURL:
		return m.OldLinkedinURL(ctx)
	case companyentity.FieldName:
		return m.OldName(ctx)
	case companyentity.FieldLastEnrichedAt:
		return m.OldLastEnrichedAt(ctx)
	case companyentity.FieldLastRunID:
		return m.OldLastRunID(ctx)
	case companyentity.FieldLastOperationID:
		return m.OldLastOperationID(ctx)
	case companyentity.FieldSourceProviders:
		return m.OldSourceProviders(ctx)
	}
	return nil, fmt.Errorf("unknown CompanyEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case companyentity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case companyentity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case companyentity.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case companyentity.FieldRecordVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordVersion(v)
		return nil
	case companyentity.FieldCanonicalPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalPayload(v)
		return nil
	case companyentity.FieldCanonicalDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalDomain(v)
		return nil
	case companyentity.FieldLinkedinURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedinURL(v)
		return nil
	case companyentity.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case companyentity.FieldLastEnrichedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEnrichedAt(v)
		return nil
	case companyentity.FieldLastRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunID(v)
		return nil
	case companyentity.FieldLastOperationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOperationID(v)
		return nil
	case companyentity.FieldSourceProviders:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceProviders(v)
		return nil
	}
	return fmt.Errorf("unknown CompanyEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyEntityMutation) AddedFields() []string {
	var fields []string
	if m.addrecord_version != nil {
		fields = append(fields, companyentity.FieldRecordVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyEntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case companyentity.FieldRecordVersion:
		return m.AddedRecordVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case companyentity.FieldRecordVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordVersion(v)
		return nil
	}
	return fmt.Errorf("unknown CompanyEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyEntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(companyentity.FieldCanonicalDomain) {
		fields = append(fields, companyentity.FieldCanonicalDomain)
	}
	if m.FieldCleared(companyentity.FieldLinkedinURL) {
		fields = append(fields, companyentity.FieldLinkedinURL)
	}
	if m.FieldCleared(companyentity.FieldName) {
		fields = append(fields, companyentity.FieldName)
	}
	if m.FieldCleared(companyentity.FieldLastEnrichedAt) {
		fields = append(fields, companyentity.FieldLastEnrichedAt)
	}
	if m.FieldCleared(companyentity.FieldLastRunID) {
		fields = append(fields, companyentity.FieldLastRunID)
	}
	if m.FieldCleared(companyentity.FieldLastOperationID) {
		fields = append(fields, companyentity.FieldLastOperationID)
	}
	if m.FieldCleared(companyentity.FieldSourceProviders) {
		fields = append(fields, companyentity.FieldSourceProviders)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyEntityMutation) ClearField(name string) error {
	switch name {
	case companyentity.FieldCanonicalDomain:
		m.ClearCanonicalDomain()
		return nil
	case companyentity.FieldLinkedinURL:
		m.ClearLinkedinURL()
		return nil
	case companyentity.FieldName:
		m.ClearName()
		return nil
	case companyentity.FieldLastEnrichedAt:
		m.ClearLastEnrichedAt()
		return nil
	case companyentity.FieldLastRunID:
		m.ClearLastRunID()
		return nil
	case companyentity.FieldLastOperationID:
		m.ClearLastOperationID()
		return nil
	case companyentity.FieldSourceProviders:
		m.ClearSourceProviders()
		return nil
	}
	return fmt.Errorf("unknown CompanyEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyEntityMutation) ResetField(name string) error {
	switch name {
	case companyentity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case companyentity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case companyentity.FieldOrgID:
		m.ResetOrgID()
		return nil
	case companyentity.FieldRecordVersion:
		m.ResetRecordVersion()
		return nil
	case companyentity.FieldCanonicalPayload:
		m.ResetCanonicalPayload()
		return nil
	case companyentity.FieldCanonicalDomain:
		m.ResetCanonicalDomain()
		return nil
	case companyentity.FieldLinkedinURL:
		m.ResetLinkedinURL()
		return nil
	case companyentity.FieldName:
		m.ResetName()
		return nil
	case companyentity.FieldLastEnrichedAt:
		m.ResetLastEnrichedAt()
		return nil
	case companyentity.FieldLastRunID:
		m.ResetLastRunID()
		return nil
	case companyentity.FieldLastOperationID:
		m.ResetLastOperationID()
		return nil
	case companyentity.FieldSourceProviders:
		m.ResetSourceProviders()
		return nil
	}
	return fmt.Errorf("unknown CompanyEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyEntityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyEntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyEntityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyEntityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CompanyEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyEntityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CompanyEntity edge %s", name)
}

// EntitySnapshotMutation represents an operation that mutates the EntitySnapshot nodes in the graph.
type EntitySnapshotMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	org_id            *string
	entity_type       *entitysnapshot.EntityType
	entity_id         *string
	record_version    *int
	addrecord_version *int
	canonical_payload *map[string]interface{}
	source_run_id     *string
	captured_at       *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*EntitySnapshot, error)
	predicates        []predicate.EntitySnapshot
}

var _ ent.Mutation = (*EntitySnapshotMutation)(nil)

// entitysnapshotOption allows management of the mutation configuration using functional options.
type entitysnapshotOption func(*EntitySnapshotMutation)

// newEntitySnapshotMutation creates new mutation for the EntitySnapshot entity.
func newEntitySnapshotMutation(c config, op Op, opts ...entitysnapshotOption) *EntitySnapshotMutation {
	m := &EntitySnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeEntitySnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntitySnapshotID sets the ID field of the mutation.
func withEntitySnapshotID(id string) entitysnapshotOption {
	return func(m *EntitySnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *EntitySnapshot
		)
		m.oldValue = func(ctx context.Context) (*EntitySnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntitySnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntitySnapshot sets the old EntitySnapshot of the mutation.
func withEntitySnapshot(node *EntitySnapshot) entitysnapshotOption {
	return func(m *EntitySnapshotMutation) {
		m.oldValue = func(context.Context) (*EntitySnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntitySnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntitySnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntitySnapshot entities.
func (m *EntitySnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntitySnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntitySnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntitySnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EntitySnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntitySnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntitySnapshot entity.
// If the EntitySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntitySnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOrgID sets the "org_id" field.
func (m *EntitySnapshotMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *EntitySnapshotMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the EntitySnapshot entity.
// If the EntitySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySnapshotMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *EntitySnapshotMutation) ResetOrgID() {
	m.org_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntitySnapshotMutation) SetEntityType(et entitysnapshot.EntityType) {
	m.entity_type = &et
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntitySnapshotMutation) EntityType() (r entitysnapshot.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EntitySnapshot entity.
// If the EntitySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySnapshotMutation) OldEntityType(ctx context.Context) (v entitysnapshot.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntitySnapshotMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EntitySnapshotMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntitySnapshotMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntitySnapshot entity.
// If the EntitySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySnapshotMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntitySnapshotMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetRecordVersion sets the "record_version" field.
func (m *EntitySnapshotMutation) SetRecordVersion(i int) {
	m.record_version = &i
	m.addrecord_version = nil
}

// RecordVersion returns the value of the "record_version" field in the mutation.
func (m *EntitySnapshotMutation) RecordVersion() (r int, exists bool) {
	v := m.record_version
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordVersion returns the old "record_version" field's value of the EntitySnapshot entity.
// If the EntitySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySnapshotMutation) OldRecordVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordVersion: %w", err)
	}
	return oldValue.RecordVersion, nil
}

// AddRecordVersion adds i to the "record_version" field.
func (m *EntitySnapshotMutation) AddRecordVersion(i int) {
	if m.addrecord_version != nil {
		*m.addrecord_version += i
	} else {
		m.addrecord_version = &i
	}
}

// AddedRecordVersion returns the value that was added to the "record_version" field in this mutation.
func (m *EntitySnapshotMutation) AddedRecordVersion() (r int, exists bool) {
	v := m.addrecord_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordVersion resets all changes to the "record_version" field.
func (m *EntitySnapshotMutation) ResetRecordVersion() {
	m.record_version = nil
	m.addrecord_version = nil
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (m *EntitySnapshotMutation) SetCanonicalPayload(value map[string]interface{}) {
	m.canonical_payload = &value
}

// CanonicalPayload returns the value of the "canonical_payload" field in the mutation.
func (m *EntitySnapshotMutation) CanonicalPayload() (r map[string]interface{}, exists bool) {
	v := m.canonical_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalPayload returns the old "canonical_payload" field's value of the EntitySnapshot entity.
// If the EntitySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySnapshotMutation) OldCanonicalPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalPayload: %w", err)
	}
	return oldValue.CanonicalPayload, nil
}

// ResetCanonicalPayload resets all changes to the "canonical_payload" field.
func (m *EntitySnapshotMutation) ResetCanonicalPayload() {
	m.canonical_payload = nil
}

// SetSourceRunID sets the "source_run_id" field.
func (m *EntitySnapshotMutation) SetSourceRunID(s string) {
	m.source_run_id = &s
}

// SourceRunID returns the value of the "source_run_id" field in the mutation.
func (m *EntitySnapshotMutation) SourceRunID() (r string, exists bool) {
	v := m.source_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceRunID returns the old "source_run_id" field's value of the EntitySnapshot entity.
// If the EntitySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySnapshotMutation) OldSourceRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceRunID: %w", err)
	}
	return oldValue.SourceRunID, nil
}

// ClearSourceRunID clears the value of the "source_run_id" field.
func (m *EntitySnapshotMutation) ClearSourceRunID() {
	m.source_run_id = nil
	m.clearedFields[entitysnapshot.FieldSourceRunID] = struct{}{}
}

// SourceRunIDCleared returns if the "source_run_id" field was cleared in this mutation.
func (m *EntitySnapshotMutation) SourceRunIDCleared() bool {
	_, ok := m.clearedFields[entitysnapshot.FieldSourceRunID]
	return ok
}

// ResetSourceRunID resets all changes to the "source_run_id" field.
func (m *EntitySnapshotMutation) ResetSourceRunID() {
	m.source_run_id = nil
	delete(m.clearedFields, entitysnapshot.FieldSourceRunID)
}

// SetCapturedAt sets the "captured_at" field.
func (m *EntitySnapshotMutation) SetCapturedAt(t time.Time) {
	m.captured_at = &t
}

// CapturedAt returns the value of the "captured_at" field in the mutation.
func (m *EntitySnapshotMutation) CapturedAt() (r time.Time, exists bool) {
	v := m.captured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCapturedAt returns the old "captured_at" field's value of the EntitySnapshot entity.
// If the EntitySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySnapshotMutation) OldCapturedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapturedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapturedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapturedAt: %w", err)
	}
	return oldValue.CapturedAt, nil
}

// ResetCapturedAt resets all changes to the "captured_at" field.
func (m *EntitySnapshotMutation) ResetCapturedAt() {
	m.captured_at = nil
}

// Where appends a list predicates to the EntitySnapshotMutation builder.
func (m *EntitySnapshotMutation) Where(ps ...predicate.EntitySnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntitySnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntitySnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntitySnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntitySnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntitySnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntitySnapshot).
func (m *EntitySnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntitySnapshotMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, entitysnapshot.FieldCreatedAt)
	}
	if m.org_id != nil {
		fields = append(fields, entitysnapshot.FieldOrgID)
	}
	if m.entity_type != nil {
		fields = append(fields, entitysnapshot.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, entitysnapshot.FieldEntityID)
	}
	if m.record_version != nil {
		fields = append(fields, entitysnapshot.FieldRecordVersion)
	}
	if m.canonical_payload != nil {
		fields = append(fields, entitysnapshot.FieldCanonicalPayload)
	}
	if m.source_run_id != nil {
		fields = append(fields, entitysnapshot.FieldSourceRunID)
	}
	if m.captured_at != nil {
		fields = append(fields, entitysnapshot.FieldCapturedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntitySnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitysnapshot.FieldCreatedAt:
		return m.CreatedAt()
	case entitysnapshot.FieldOrgID:
		return m.OrgID()
	case entitysnapshot.FieldEntityType:
		return m.EntityType()
	case entitysnapshot.FieldEntityID:
		return m.EntityID()
	case entitysnapshot.FieldRecordVersion:
		return m.RecordVersion()
	case entitysnapshot.FieldCanonicalPayload:
		return m.CanonicalPayload()
	case entitysnapshot.FieldSourceRunID:
		return m.SourceRunID()
	case entitysnapshot.FieldCapturedAt:
		return m.CapturedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntitySnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitysnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entitysnapshot.FieldOrgID:
		return m.OldOrgID(ctx)
	case entitysnapshot.FieldEntityType:
		return m.OldEntityType(ctx)
	case entitysnapshot.FieldEntityID:
		return m.OldEntityID(ctx)
	case entitysnapshot.FieldRecordVersion:
		return m.OldRecordVersion(ctx)
	case entitysnapshot.FieldCanonicalPayload:
		return m.OldCanonicalPayload(ctx)
	case entitysnapshot.FieldSourceRunID:
		return m.OldSourceRunID(ctx)
	case entitysnapshot.FieldCapturedAt:
		return m.OldCapturedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntitySnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitySnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitysnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entitysnapshot.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case entitysnapshot.FieldEntityType:
		v, ok := value.(entitysnapshot.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entitysnapshot.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entitysnapshot.FieldRecordVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordVersion(v)
		return nil
	case entitysnapshot.FieldCanonicalPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalPayload(v)
		return nil
	case entitysnapshot.FieldSourceRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceRunID(v)
		return nil
	case entitysnapshot.FieldCapturedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapturedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntitySnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntitySnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addrecord_version != nil {
		fields = append(fields, entitysnapshot.FieldRecordVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntitySnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitysnapshot.FieldRecordVersion:
		return m.AddedRecordVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitySnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitysnapshot.FieldRecordVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordVersion(v)
		return nil
	}
	return fmt.Errorf("unknown EntitySnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntitySnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entitysnapshot.FieldSourceRunID) {
		fields = append(fields, entitysnapshot.FieldSourceRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntitySnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntitySnapshotMutation) ClearField(name string) error {
	switch name {
	case entitysnapshot.FieldSourceRunID:
		m.ClearSourceRunID()
		return nil
	}
	return fmt.Errorf("unknown EntitySnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntitySnapshotMutation) ResetField(name string) error {
	switch name {
	case entitysnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entitysnapshot.FieldOrgID:
		m.ResetOrgID()
		return nil
	case entitysnapshot.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entitysnapshot.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entitysnapshot.FieldRecordVersion:
		m.ResetRecordVersion()
		return nil
	case entitysnapshot.FieldCanonicalPayload:
		m.ResetCanonicalPayload()
		return nil
	case entitysnapshot.FieldSourceRunID:
		m.ResetSourceRunID()
		return nil
	case entitysnapshot.FieldCapturedAt:
		m.ResetCapturedAt()
		return nil
	}
	return fmt.Errorf("unknown EntitySnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntitySnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntitySnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntitySnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntitySnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntitySnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntitySnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntitySnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EntitySnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntitySnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EntitySnapshot edge %s", name)
}

// JobPostingEntityMutation represents an operation that mutates the JobPostingEntity nodes in the graph.
type JobPostingEntityMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	updated_at             *time.Time
	org_id                 *string
	record_version         *int
	addrecord_version      *int
	canonical_payload      *map[string]interface{}
	theirstack_job_id      *string
	job_url                *string
	title                  *string
	company_domain         *string
	last_enriched_at       *time.Time
	last_run_id            *string
	last_operation_id      *string
	source_providers       *[]string
	appendsource_providers []string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*JobPostingEntity, error)
	predicates             []predicate.JobPostingEntity
}

var _ ent.Mutation = (*JobPostingEntityMutation)(nil)

// jobpostingentityOption allows management of the mutation configuration using functional options.
type jobpostingentityOption func(*JobPostingEntityMutation)

// newJobPostingEntityMutation creates new mutation for the JobPostingEntity entity.
func newJobPostingEntityMutation(c config, op Op, opts ...jobpostingentityOption) *JobPostingEntityMutation {
	m := &JobPostingEntityMutation{
		config:        c,
		op:            op,
		typ:           TypeJobPostingEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobPostingEntityID sets the ID field of the mutation.
func withJobPostingEntityID(id string) jobpostingentityOption {
	return func(m *JobPostingEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *JobPostingEntity
		)
		m.oldValue = func(ctx context.Context) (*JobPostingEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobPostingEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobPostingEntity sets the old JobPostingEntity of the mutation.
func withJobPostingEntity(node *JobPostingEntity) jobpostingentityOption {
	return func(m *JobPostingEntityMutation) {
		m.oldValue = func(context.Context) (*JobPostingEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobPostingEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobPostingEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobPostingEntity entities.
func (m *JobPostingEntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobPostingEntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobPostingEntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobPostingEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *JobPostingEntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobPostingEntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobPostingEntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobPostingEntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobPostingEntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobPostingEntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrgID sets the "org_id" field.
func (m *JobPostingEntityMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *JobPostingEntityMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *JobPostingEntityMutation) ResetOrgID() {
	m.org_id = nil
}

// SetRecordVersion sets the "record_version" field.
func (m *JobPostingEntityMutation) SetRecordVersion(i int) {
	m.record_version = &i
	m.addrecord_version = nil
}

// RecordVersion returns the value of the "record_version" field in the mutation.
func (m *JobPostingEntityMutation) RecordVersion() (r int, exists bool) {
	v := m.record_version
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordVersion returns the old "record_version" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldRecordVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordVersion: %w", err)
	}
	return oldValue.RecordVersion, nil
}

// AddRecordVersion adds i to the "record_version" field.
func (m *JobPostingEntityMutation) AddRecordVersion(i int) {
	if m.addrecord_version != nil {
		*m.addrecord_version += i
	} else {
		m.addrecord_version = &i
	}
}

// AddedRecordVersion returns the value that was added to the "record_version" field in this mutation.
func (m *JobPostingEntityMutation) AddedRecordVersion() (r int, exists bool) {
	v := m.addrecord_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordVersion resets all changes to the "record_version" field.
func (m *JobPostingEntityMutation) ResetRecordVersion() {
	m.record_version = nil
	m.addrecord_version = nil
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (m *JobPostingEntityMutation) SetCanonicalPayload(value map[string]interface{}) {
	m.canonical_payload = &value
}

// CanonicalPayload returns the value of the "canonical_payload" field in the mutation.
func (m *JobPostingEntityMutation) CanonicalPayload() (r map[string]interface{}, exists bool) {
	v := m.canonical_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalPayload returns the old "canonical_payload" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldCanonicalPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalPayload: %w", err)
	}
	return oldValue.CanonicalPayload, nil
}

// ResetCanonicalPayload resets all changes to the "canonical_payload" field.
func (m *JobPostingEntityMutation) ResetCanonicalPayload() {
	m.canonical_payload = nil
}

// SetTheirstackJobID sets the "theirstack_job_id" field.
func (m *JobPostingEntityMutation) SetTheirstackJobID(s string) {
	m.theirstack_job_id = &s
}

// TheirstackJobID returns the value of the "theirstack_job_id" field in the mutation.
func (m *JobPostingEntityMutation) TheirstackJobID() (r string, exists bool) {
	v := m.theirstack_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTheirstackJobID returns the old "theirstack_job_id" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldTheirstackJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheirstackJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheirstackJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheirstackJobID: %w", err)
	}
	return oldValue.TheirstackJobID, nil
}

// ClearTheirstackJobID clears the value of the "theirstack_job_id" field.
func (m *JobPostingEntityMutation) ClearTheirstackJobID() {
	m.theirstack_job_id = nil
	m.clearedFields[jobpostingentity.FieldTheirstackJobID] = struct{}{}
}

// TheirstackJobIDCleared returns if the "theirstack_job_id" field was cleared in this mutation.
func (m *JobPostingEntityMutation) TheirstackJobIDCleared() bool {
	_, ok := m.clearedFields[jobpostingentity.FieldTheirstackJobID]
	return ok
}

// ResetTheirstackJobID resets all changes to the "theirstack_job_id" field.
func (m *JobPostingEntityMutation) ResetTheirstackJobID() {
	m.theirstack_job_id = nil
	delete(m.clearedFields, jobpostingentity.FieldTheirstackJobID)
}

// SetJobURL sets the "job_url" field.
func (m *JobPostingEntityMutation) SetJobURL(s string) {
	m.job_url = &s
}

// JobURL returns the value of the "job_url" field in the mutation.
func (m *JobPostingEntityMutation) JobURL() (r string, exists bool) {
	v := m.job_url
	if v == nil {
		return
	}
	return *v, true
}

// OldJobURL returns the old "job_url" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldJobURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobURL: %w", err)
	}
	return oldValue.JobURL, nil
}

// ClearJobURL clears the value of the "job_url" field.
func (m *JobPostingEntityMutation) ClearJobURL() {
	m.job_url = nil
	m.clearedFields[jobpostingentity.FieldJobURL] = struct{}{}
}

// JobURLCleared returns if the "job_url" field was cleared in this mutation.
func (m *JobPostingEntityMutation) JobURLCleared() bool {
	_, ok := m.clearedFields[jobpostingentity.FieldJobURL]
	return ok
}

// ResetJobURL resets all changes to the "job_url" field.
func (m *JobPostingEntityMutation) ResetJobURL() {
	m.job_url = nil
	delete(m.clearedFields, jobpostingentity.FieldJobURL)
}

// SetTitle sets the "title" field.
func (m *JobPostingEntityMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobPostingEntityMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *JobPostingEntityMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[jobpostingentity.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *JobPostingEntityMutation) TitleCleared() bool {
	_, ok := m.clearedFields[jobpostingentity.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *JobPostingEntityMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, jobpostingentity.FieldTitle)
}

// SetCompanyDomain sets the "company_domain" field.
func (m *JobPostingEntityMutation) SetCompanyDomain(s string) {
	m.company_domain = &s
}

// CompanyDomain returns the value of the "company_domain" field in the mutation.
func (m *JobPostingEntityMutation) CompanyDomain() (r string, exists bool) {
	v := m.company_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyDomain returns the old "company_domain" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldCompanyDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyDomain: %w", err)
	}
	return oldValue.CompanyDomain, nil
}

// ClearCompanyDomain clears the value of the "company_domain" field.
func (m *JobPostingEntityMutation) ClearCompanyDomain() {
	m.company_domain = nil
	m.clearedFields[jobpostingentity.FieldCompanyDomain] = struct{}{}
}

// CompanyDomainCleared returns if the "company_domain" field was cleared in this mutation.
func (m *JobPostingEntityMutation) CompanyDomainCleared() bool {
	_, ok := m.clearedFields[jobpostingentity.FieldCompanyDomain]
	return ok
}

// ResetCompanyDomain resets all changes to the "company_domain" field.
func (m *JobPostingEntityMutation) ResetCompanyDomain() {
	m.company_domain = nil
	delete(m.clearedFields, jobpostingentity.FieldCompanyDomain)
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (m *JobPostingEntityMutation) SetLastEnrichedAt(t time.Time) {
	m.last_enriched_at = &t
}

// LastEnrichedAt returns the value of the "last_enriched_at" field in the mutation.
func (m *JobPostingEntityMutation) LastEnrichedAt() (r time.Time, exists bool) {
	v := m.last_enriched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEnrichedAt returns the old "last_enriched_at" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldLastEnrichedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEnrichedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEnrichedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEnrichedAt: %w", err)
	}
	return oldValue.LastEnrichedAt, nil
}

// ClearLastEnrichedAt clears the value of the "last_enriched_at" field.
func (m *JobPostingEntityMutation) ClearLastEnrichedAt() {
	m.last_enriched_at = nil
	m.clearedFields[jobpostingentity.FieldLastEnrichedAt] = struct{}{}
}

// LastEnrichedAtCleared returns if the "last_enriched_at" field was cleared in this mutation.
func (m *JobPostingEntityMutation) LastEnrichedAtCleared() bool {
	_, ok := m.clearedFields[jobpostingentity.FieldLastEnrichedAt]
	return ok
}

// ResetLastEnrichedAt resets all changes to the "last_enriched_at" field.
func (m *JobPostingEntityMutation) ResetLastEnrichedAt() {
	m.last_enriched_at = nil
	delete(m.clearedFields, jobpostingentity.FieldLastEnrichedAt)
}

// SetLastRunID sets the "last_run_id" field.
func (m *JobPostingEntityMutation) SetLastRunID(s string) {
	m.last_run_id = &s
}

// LastRunID returns the value of the "last_run_id" field in the mutation.
func (m *JobPostingEntityMutation) LastRunID() (r string, exists bool) {
	v := m.last_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunID returns the old "last_run_id" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldLastRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunID: %w", err)
	}
	return oldValue.LastRunID, nil
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (m *JobPostingEntityMutation) ClearLastRunID() {
	m.last_run_id = nil
	m.clearedFields[jobpostingentity.FieldLastRunID] = struct{}{}
}

// LastRunIDCleared returns if the "last_run_id" field was cleared in this mutation.
func (m *JobPostingEntityMutation) LastRunIDCleared() bool {
	_, ok := m.clearedFields[jobpostingentity.FieldLastRunID]
	return ok
}

// ResetLastRunID resets all changes to the "last_run_id" field.
func (m *JobPostingEntityMutation) ResetLastRunID() {
	m.last_run_id = nil
	delete(m.clearedFields, jobpostingentity.FieldLastRunID)
}

// SetLastOperationID sets the "last_operation_id" field.
func (m *JobPostingEntityMutation) SetLastOperationID(s string) {
	m.last_operation_id = &s
}

// LastOperationID returns the value of the "last_operation_id" field in the mutation.
func (m *JobPostingEntityMutation) LastOperationID() (r string, exists bool) {
	v := m.last_operation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOperationID returns the old "last_operation_id" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldLastOperationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOperationID: %w", err)
	}
	return oldValue.LastOperationID, nil
}

// ClearLastOperationID clears the value of the "last_operation_id" field.
func (m *JobPostingEntityMutation) ClearLastOperationID() {
	m.last_operation_id = nil
	m.clearedFields[jobpostingentity.FieldLastOperationID] = struct{}{}
}

// LastOperationIDCleared returns if the "last_operation_id" field was cleared in this mutation.
func (m *JobPostingEntityMutation) LastOperationIDCleared() bool {
	_, ok := m.clearedFields[jobpostingentity.FieldLastOperationID]
	return ok
}

// ResetLastOperationID resets all changes to the "last_operation_id" field.
func (m *JobPostingEntityMutation) ResetLastOperationID() {
	m.last_operation_id = nil
	delete(m.clearedFields, jobpostingentity.FieldLastOperationID)
}

// SetSourceProviders sets the "source_providers" field.
func (m *JobPostingEntityMutation) SetSourceProviders(s []string) {
	m.source_providers = &s
	m.appendsource_providers = nil
}

// SourceProviders returns the value of the "source_providers" field in the mutation.
func (m *JobPostingEntityMutation) SourceProviders() (r []string, exists bool) {
	v := m.source_providers
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceProviders returns the old "source_providers" field's value of the JobPostingEntity entity.
// If the JobPostingEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostingEntityMutation) OldSourceProviders(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceProviders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceProviders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceProviders: %w", err)
	}
	return oldValue.SourceProviders, nil
}

// AppendSourceProviders adds s to the "source_providers" field.
func (m *JobPostingEntityMutation) AppendSourceProviders(s []string) {
	m.appendsource_providers = append(m.appendsource_providers, s...)
}

// AppendedSourceProviders returns the list of values that were appended to the "source_providers" field in this mutation.
func (m *JobPostingEntityMutation) AppendedSourceProviders() ([]string, bool) {
	if len(m.appendsource_providers) == 0 {
		return nil, false
	}
	return m.appendsource_providers, true
}

// ClearSourceProviders clears the value of the "source_providers" field.
func (m *JobPostingEntityMutation) ClearSourceProviders() {
	m.source_providers = nil
	m.appendsource_providers = nil
	m.clearedFields[jobpostingentity.FieldSourceProviders] = struct{}{}
}

// SourceProvidersCleared returns if the "source_providers" field was cleared in this mutation.
func (m *JobPostingEntityMutation) SourceProvidersCleared() bool {
	_, ok := m.clearedFields[jobpostingentity.FieldSourceProviders]
	return ok
}

// ResetSourceProviders resets all changes to the "source_providers" field.
func (m *JobPostingEntityMutation) ResetSourceProviders() {
	m.source_providers = nil
	m.appendsource_providers = nil
	delete(m.clearedFields, jobpostingentity.FieldSourceProviders)
}

// Where appends a list predicates to the JobPostingEntityMutation builder.
func (m *JobPostingEntityMutation) Where(ps ...predicate.JobPostingEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobPostingEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobPostingEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobPostingEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobPostingEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobPostingEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobPostingEntity).
func (m *JobPostingEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobPostingEntityMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, jobpostingentity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, jobpostingentity.FieldUpdatedAt)
	}
	if m.org_id != nil {
		fields = append(fields, jobpostingentity.FieldOrgID)
	}
	if m.record_version != nil {
		fields = append(fields, jobpostingentity.FieldRecordVersion)
	}
	if m.canonical_payload != nil {
		fields = append(fields, jobpostingentity.FieldCanonicalPayload)
	}
	if m.theirstack_job_id != nil {
		fields = append(fields, jobpostingentity.FieldTheirstackJobID)
	}
	if m.job_url != nil {
		fields = append(fields, jobpostingentity.FieldJobURL)
	}
	if m.title != nil {
		fields = append(fields, jobpostingentity.FieldTitle)
	}
	if m.company_domain != nil {
		fields = append(fields, jobpostingentity.FieldCompanyDomain)
	}
	if m.last_enriched_at != nil {
		fields = append(fields, jobpostingentity.FieldLastEnrichedAt)
	}
	if m.last_run_id != nil {
		fields = append(fields, jobpostingentity.FieldLastRunID)
	}
	if m.last_operation_id != nil {
		fields = append(fields, jobpostingentity.FieldLastOperationID)
	}
	if m.source_providers != nil {
		fields = append(fields, jobpostingentity.FieldSourceProviders)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobPostingEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobpostingentity.FieldCreatedAt:
		return m.CreatedAt()
	case jobpostingentity.FieldUpdatedAt:
		return m.UpdatedAt()
	case jobpostingentity.FieldOrgID:
		return m.OrgID()
	case jobpostingentity.FieldRecordVersion:
		return m.RecordVersion()
	case jobpostingentity.FieldCanonicalPayload:
		return m.CanonicalPayload()
	case jobpostingentity.FieldTheirstackJobID:
		return m.TheirstackJobID()
	case jobpostingentity.FieldJobURL:
		return m.JobURL()
	case jobpostingentity.FieldTitle:
		return m.Title()
	case jobpostingentity.FieldCompanyDomain:
		return m.CompanyDomain()
	case jobpostingentity.FieldLastEnrichedAt:
		return m.LastEnrichedAt()
	case jobpostingentity.FieldLastRunID:
		return m.LastRunID()
	case jobpostingentity.FieldLastOperationID:
		return m.LastOperationID()
	case jobpostingentity.FieldSourceProviders:
		return m.SourceProviders()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobPostingEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobpostingentity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobpostingentity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case jobpostingentity.FieldOrgID:
		return m.OldOrgID(ctx)
	case jobpostingentity.FieldRecordVersion:
		return m.OldRecordVersion(ctx)
	case jobpostingentity.FieldCanonicalPayload:
		return m.OldCanonicalPayload(ctx)
	case jobpostingentity.FieldTheirstackJobID:
		return m.OldTheirstackJobID(ctx)
	case jobpostingentity.FieldJobURL:
		return m.OldJobURL(ctx)
	case jobpostingentity.FieldTitle:
		return m.OldTitle(ctx)
	case jobpostingentity.FieldCompanyDomain:
		return m.OldCompanyDomain(ctx)
	case jobpostingentity.FieldLastEnrichedAt:
		return m.OldLastEnrichedAt(ctx)
	case jobpostingentity.FieldLastRunID:
		return m.OldLastRunID(ctx)
	case jobpostingentity.FieldLastOperationID:
		return m.OldLastOperationID(ctx)
	case jobpostingentity.FieldSourceProviders:
		return m.OldSourceProviders(ctx)
	}
	return nil, fmt.Errorf("unknown JobPostingEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPostingEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobpostingentity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobpostingentity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case jobpostingentity.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case jobpostingentity.FieldRecordVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordVersion(v)
		return nil
	case jobpostingentity.FieldCanonicalPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalPayload(v)
		return nil
	case jobpostingentity.FieldTheirstackJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheirstackJobID(v)
		return nil
	case jobpostingentity.FieldJobURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobURL(v)
		return nil
	case jobpostingentity.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case jobpostingentity.FieldCompanyDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyDomain(v)
		return nil
	case jobpostingentity.FieldLastEnrichedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEnrichedAt(v)
		return nil
	case jobpostingentity.FieldLastRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunID(v)
		return nil
	case jobpostingentity.FieldLastOperationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOperationID(v)
		return nil
	case jobpostingentity.FieldSourceProviders:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceProviders(v)
		return nil
	}
	return fmt.Errorf("unknown JobPostingEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobPostingEntityMutation) AddedFields() []string {
	var fields []string
	if m.addrecord_version != nil {
		fields = append(fields, jobpostingentity.FieldRecordVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobPostingEntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobpostingentity.FieldRecordVersion:
		return m.AddedRecordVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPostingEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobpostingentity.FieldRecordVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordVersion(v)
		return nil
	}
	return fmt.Errorf("unknown JobPostingEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobPostingEntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobpostingentity.FieldTheirstackJobID) {
		fields = append(fields, jobpostingentity.FieldTheirstackJobID)
	}
	if m.FieldCleared(jobpostingentity.FieldJobURL) {
		fields = append(fields, jobpostingentity.FieldJobURL)
	}
	if m.FieldCleared(jobpostingentity.FieldTitle) {
		fields = append(fields, jobpostingentity.FieldTitle)
	}
	if m.FieldCleared(jobpostingentity.FieldCompanyDomain) {
		fields = append(fields, jobpostingentity.FieldCompanyDomain)
	}
	if m.FieldCleared(jobpostingentity.FieldLastEnrichedAt) {
		fields = append(fields, jobpostingentity.FieldLastEnrichedAt)
	}
	if m.FieldCleared(jobpostingentity.FieldLastRunID) {
		fields = append(fields, jobpostingentity.FieldLastRunID)
	}
	if m.FieldCleared(jobpostingentity.FieldLastOperationID) {
		fields = append(fields, jobpostingentity.FieldLastOperationID)
	}
	if m.FieldCleared(jobpostingentity.FieldSourceProviders) {
		fields = append(fields, jobpostingentity.FieldSourceProviders)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobPostingEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobPostingEntityMutation) ClearField(name string) error {
	switch name {
	case jobpostingentity.FieldTheirstackJobID:
		m.ClearTheirstackJobID()
		return nil
	case jobpostingentity.FieldJobURL:
		m.ClearJobURL()
		return nil
	case jobpostingentity.FieldTitle:
		m.ClearTitle()
		return nil
	case jobpostingentity.FieldCompanyDomain:
		m.ClearCompanyDomain()
		return nil
	case jobpostingentity.FieldLastEnrichedAt:
		m.ClearLastEnrichedAt()
		return nil
	case jobpostingentity.FieldLastRunID:
		m.ClearLastRunID()
		return nil
	case jobpostingentity.FieldLastOperationID:
		m.ClearLastOperationID()
		return nil
	case jobpostingentity.FieldSourceProviders:
		m.ClearSourceProviders()
		return nil
	}
	return fmt.Errorf("unknown JobPostingEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobPostingEntityMutation) ResetField(name string) error {
	switch name {
	case jobpostingentity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobpostingentity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case jobpostingentity.FieldOrgID:
		m.ResetOrgID()
		return nil
	case jobpostingentity.FieldRecordVersion:
		m.ResetRecordVersion()
		return nil
	case jobpostingentity.FieldCanonicalPayload:
		m.ResetCanonicalPayload()
		return nil
	case jobpostingentity.FieldTheirstackJobID:
		m.ResetTheirstackJobID()
		return nil
	case jobpostingentity.FieldJobURL:
		m.ResetJobURL()
		return nil
	case jobpostingentity.FieldTitle:
		m.ResetTitle()
		return nil
	case jobpostingentity.FieldCompanyDomain:
		m.ResetCompanyDomain()
		return nil
	case jobpostingentity.FieldLastEnrichedAt:
		m.ResetLastEnrichedAt()
		return nil
	case jobpostingentity.FieldLastRunID:
		m.ResetLastRunID()
		return nil
	case jobpostingentity.FieldLastOperationID:
		m.ResetLastOperationID()
		return nil
	case jobpostingentity.FieldSourceProviders:
		m.ResetSourceProviders()
		return nil
	}
	return fmt.Errorf("unknown JobPostingEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobPostingEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobPostingEntityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobPostingEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobPostingEntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobPostingEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobPostingEntityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobPostingEntityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown JobPostingEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobPostingEntityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown JobPostingEntity edge %s", name)
}

// OrgMutation represents an operation that mutates the Org nodes in the graph.
type OrgMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	is_active          *bool
	clearedFields      map[string]struct{}
	blueprints         map[string]struct{}
	removedblueprints  map[string]struct{}
	clearedblueprints  bool
	submissions        map[string]struct{}
	removedsubmissions map[string]struct{}
	clearedsubmissions bool
	done               bool
	oldValue           func(context.Context) (*Org, error)
	predicates         []predicate.Org
}

var _ ent.Mutation = (*OrgMutation)(nil)

// orgOption allows management of the mutation configuration using functional options.
type orgOption func(*OrgMutation)

// newOrgMutation creates new mutation for the Org entity.
func newOrgMutation(c config, op Op, opts ...orgOption) *OrgMutation {
	m := &OrgMutation{
		config:        c,
		op:            op,
		typ:           TypeOrg,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrgID sets the ID field of the mutation.
func withOrgID(id string) orgOption {
	return func(m *OrgMutation) {
		var (
			err   error
			once  sync.Once
			value *Org
		)
		m.oldValue = func(ctx context.Context) (*Org, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Org.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrg sets the old Org of the mutation.
func withOrg(node *Org) orgOption {
	return func(m *OrgMutation) {
		m.oldValue = func(context.Context) (*Org, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrgMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrgMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Org entities.
func (m *OrgMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrgMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrgMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Org.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *OrgMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrgMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Org entity.
// If the Org object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrgMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrgMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrgMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Org entity.
// If the Org object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrgMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *OrgMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrgMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Org entity.
// If the Org object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OrgMutation) ResetName() {
	m.name = nil
}

// SetIsActive sets the "is_active" field.
func (m *OrgMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *OrgMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Org entity.
// If the Org object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *OrgMutation) ResetIsActive() {
	m.is_active = nil
}

// AddBlueprintIDs adds the "blueprints" edge to the Blueprint entity by ids.
func (m *OrgMutation) AddBlueprintIDs(ids ...string) {
	if m.blueprints == nil {
		m.blueprints = make(map[string]struct{})
	}
	for i := range ids {
		m.blueprints[ids[i]] = struct{}{}
	}
}

// ClearBlueprints clears the "blueprints" edge to the Blueprint entity.
func (m *OrgMutation) ClearBlueprints() {
	m.clearedblueprints = true
}

// BlueprintsCleared reports if the "blueprints" edge to the Blueprint entity was cleared.
func (m *OrgMutation) BlueprintsCleared() bool {
	return m.clearedblueprints
}

// RemoveBlueprintIDs removes the "blueprints" edge to the Blueprint entity by IDs.
func (m *OrgMutation) RemoveBlueprintIDs(ids ...string) {
	if m.removedblueprints == nil {
		m.removedblueprints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.blueprints, ids[i])
		m.removedblueprints[ids[i]] = struct{}{}
	}
}

// RemovedBlueprints returns the removed IDs of the "blueprints" edge to the Blueprint entity.
func (m *OrgMutation) RemovedBlueprintsIDs() (ids []string) {
	for id := range m.removedblueprints {
		ids = append(ids, id)
	}
	return
}

// BlueprintsIDs returns the "blueprints" edge IDs in the mutation.
func (m *OrgMutation) BlueprintsIDs() (ids []string) {
	for id := range m.blueprints {
		ids = append(ids, id)
	}
	return
}

// ResetBlueprints resets all changes to the "blueprints" edge.
func (m *OrgMutation) ResetBlueprints() {
	m.blueprints = nil
	m.clearedblueprints = false
	m.removedblueprints = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *OrgMutation) AddSubmissionIDs(ids ...string) {
	if m.submissions == nil {
		m.submissions = make(map[string]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *OrgMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *OrgMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *OrgMutation) RemoveSubmissionIDs(ids ...string) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *OrgMutation) RemovedSubmissionsIDs() (ids []string) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *OrgMutation) SubmissionsIDs() (ids []string) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *OrgMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// Where appends a list predicates to the OrgMutation builder.
func (m *OrgMutation) Where(ps ...predicate.Org) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrgMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrgMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Org, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrgMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrgMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Org).
func (m *OrgMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrgMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, org.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, org.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, org.FieldName)
	}
	if m.is_active != nil {
		fields = append(fields, org.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrgMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case org.FieldCreatedAt:
		return m.CreatedAt()
	case org.FieldUpdatedAt:
		return m.UpdatedAt()
	case org.FieldName:
		return m.Name()
	case org.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrgMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case org.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case org.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case org.FieldName:
		return m.OldName(ctx)
	case org.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Org field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgMutation) SetField(name string, value ent.Value) error {
	switch name {
	case org.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case org.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case org.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case org.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Org field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrgMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrgMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Org numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrgMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrgMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrgMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Org nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrgMutation) ResetField(name string) error {
	switch name {
	case org.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case org.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case org.FieldName:
		m.ResetName()
		return nil
	case org.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Org field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrgMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.blueprints != nil {
		edges = append(edges, org.EdgeBlueprints)
	}
	if m.submissions != nil {
		edges = append(edges, org.EdgeSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrgMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case org.EdgeBlueprints:
		ids := make([]ent.Value, 0, len(m.blueprints))
		for id := range m.blueprints {
			ids = append(ids, id)
		}
		return ids
	case org.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrgMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedblueprints != nil {
		edges = append(edges, org.EdgeBlueprints)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, org.EdgeSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrgMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case org.EdgeBlueprints:
		ids := make([]ent.Value, 0, len(m.removedblueprints))
		for id := range m.removedblueprints {
			ids = append(ids, id)
		}
		return ids
	case org.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrgMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedblueprints {
		edges = append(edges, org.EdgeBlueprints)
	}
	if m.clearedsubmissions {
		edges = append(edges, org.EdgeSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrgMutation) EdgeCleared(name string) bool {
	switch name {
	case org.EdgeBlueprints:
		return m.clearedblueprints
	case org.EdgeSubmissions:
		return m.clearedsubmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrgMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Org unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrgMutation) ResetEdge(name string) error {
	switch name {
	case org.EdgeBlueprints:
		m.ResetBlueprints()
		return nil
	case org.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	}
	return fmt.Errorf("unknown Org edge %s", name)
}

// PersonEntityMutation represents an operation that mutates the PersonEntity nodes in the graph.
type PersonEntityMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	updated_at             *time.Time
	org_id                 *string
	record_version         *int
	addrecord_version      *int
	canonical_payload      *map[string]interface{}
	linkedin_url           *string
	work_email             *string
	full_name              *string
	last_enriched_at       *time.Time
	last_run_id            *string
	last_operation_id      *string
	source_providers       *[]string
	appendsource_providers []string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PersonEntity, error)
	predicates             []predicate.PersonEntity
}

var _ ent.Mutation = (*PersonEntityMutation)(nil)

// personentityOption allows management of the mutation configuration using functional options.
type personentityOption func(*PersonEntityMutation)

// newPersonEntityMutation creates new mutation for the PersonEntity entity.
func newPersonEntityMutation(c config, op Op, opts ...personentityOption) *PersonEntityMutation {
	m := &PersonEntityMutation{
		config:        c,
		op:            op,
		typ:           TypePersonEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonEntityID sets the ID field of the mutation.
func withPersonEntityID(id string) personentityOption {
	return func(m *PersonEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *PersonEntity
		)
		m.oldValue = func(ctx context.Context) (*PersonEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PersonEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersonEntity sets the old PersonEntity of the mutation.
func withPersonEntity(node *PersonEntity) personentityOption {
	return func(m *PersonEntityMutation) {
		m.oldValue = func(context.Context) (*PersonEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PersonEntity entities.
func (m *PersonEntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonEntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonEntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PersonEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonEntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonEntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonEntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PersonEntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PersonEntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PersonEntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrgID sets the "org_id" field.
func (m *PersonEntityMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *PersonEntityMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *PersonEntityMutation) ResetOrgID() {
	m.org_id = nil
}

// SetRecordVersion sets the "record_version" field.
func (m *PersonEntityMutation) SetRecordVersion(i int) {
	m.record_version = &i
	m.addrecord_version = nil
}

// RecordVersion returns the value of the "record_version" field in the mutation.
func (m *PersonEntityMutation) RecordVersion() (r int, exists bool) {
	v := m.record_version
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordVersion returns the old "record_version" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldRecordVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordVersion: %w", err)
	}
	return oldValue.RecordVersion, nil
}

// AddRecordVersion adds i to the "record_version" field.
func (m *PersonEntityMutation) AddRecordVersion(i int) {
	if m.addrecord_version != nil {
		*m.addrecord_version += i
	} else {
		m.addrecord_version = &i
	}
}

// AddedRecordVersion returns the value that was added to the "record_version" field in this mutation.
func (m *PersonEntityMutation) AddedRecordVersion() (r int, exists bool) {
	v := m.addrecord_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordVersion resets all changes to the "record_version" field.
func (m *PersonEntityMutation) ResetRecordVersion() {
	m.record_version = nil
	m.addrecord_version = nil
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (m *PersonEntityMutation) SetCanonicalPayload(value map[string]interface{}) {
	m.canonical_payload = &value
}

// CanonicalPayload returns the value of the "canonical_payload" field in the mutation.
func (m *PersonEntityMutation) CanonicalPayload() (r map[string]interface{}, exists bool) {
	v := m.canonical_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalPayload returns the old "canonical_payload" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldCanonicalPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalPayload: %w", err)
	}
	return oldValue.CanonicalPayload, nil
}

// ResetCanonicalPayload resets all changes to the "canonical_payload" field.
func (m *PersonEntityMutation) ResetCanonicalPayload() {
	m.canonical_payload = nil
}

// SetLinkedinURL sets the "linkedin_url" field.
func (m *PersonEntityMutation) SetLinkedinURL(s string) {
	m.linkedin_url = &s
}

// LinkedinURL returns the value of the "linkedin_url" field in the mutation.
func (m *PersonEntityMutation) LinkedinURL() (r string, exists bool) {
	v := m.linkedin_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedinURL returns the old "linkedin_url" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldLinkedinURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedinURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedinURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedinURL: %w", err)
	}
	return oldValue.LinkedinURL, nil
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (m *PersonEntityMutation) ClearLinkedinURL() {
	m.linkedin_url = nil
	m.clearedFields[personentity.FieldLinkedinURL] = struct{}{}
}

// LinkedinURLCleared returns if the "linkedin_url" field was cleared in this mutation.
func (m *PersonEntityMutation) LinkedinURLCleared() bool {
	_, ok := m.clearedFields[personentity.FieldLinkedinURL]
	return ok
}

// ResetLinkedinURL resets all changes to the "linkedin_url" field.
func (m *PersonEntityMutation) ResetLinkedinURL() {
	m.linkedin_url = nil
	delete(m.clearedFields, personentity.FieldLinkedinURL)
}

// SetWorkEmail sets the "work_email" field.
func (m *PersonEntityMutation) SetWorkEmail(s string) {
	m.work_email = &s
}

// WorkEmail returns the value of the "work_email" field in the mutation.
func (m *PersonEntityMutation) WorkEmail() (r string, exists bool) {
	v := m.work_email
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkEmail returns the old "work_email" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldWorkEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkEmail: %w", err)
	}
	return oldValue.WorkEmail, nil
}

// ClearWorkEmail clears the value of the "work_email" field.
func (m *PersonEntityMutation) ClearWorkEmail() {
	m.work_email = nil
	m.clearedFields[personentity.FieldWorkEmail] = struct{}{}
}

// WorkEmailCleared returns if the "work_email" field was cleared in this mutation.
func (m *PersonEntityMutation) WorkEmailCleared() bool {
	_, ok := m.clearedFields[personentity.FieldWorkEmail]
	return ok
}

// ResetWorkEmail resets all changes to the "work_email" field.
func (m *PersonEntityMutation) ResetWorkEmail() {
	m.work_email = nil
	delete(m.clearedFields, personentity.FieldWorkEmail)
}

// SetFullName sets the "full_name" field.
func (m *PersonEntityMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *PersonEntityMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *PersonEntityMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[personentity.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *PersonEntityMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[personentity.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *PersonEntityMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, personentity.FieldFullName)
}

// SetLastEnrichedAt sets the "last_enriched_at" field.
func (m *PersonEntityMutation) SetLastEnrichedAt(t time.Time) {
	m.last_enriched_at = &t
}

// LastEnrichedAt returns the value of the "last_enriched_at" field in the mutation.
func (m *PersonEntityMutation) LastEnrichedAt() (r time.Time, exists bool) {
	v := m.last_enriched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEnrichedAt returns the old "last_enriched_at" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldLastEnrichedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEnrichedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEnrichedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEnrichedAt: %w", err)
	}
	return oldValue.LastEnrichedAt, nil
}

// ClearLastEnrichedAt clears the value of the "last_enriched_at" field.
func (m *PersonEntityMutation) ClearLastEnrichedAt() {
	m.last_enriched_at = nil
	m.clearedFields[personentity.FieldLastEnrichedAt] = struct{}{}
}

// LastEnrichedAtCleared returns if the "last_enriched_at" field was cleared in this mutation.
func (m *PersonEntityMutation) LastEnrichedAtCleared() bool {
	_, ok := m.clearedFields[personentity.FieldLastEnrichedAt]
	return ok
}

// ResetLastEnrichedAt resets all changes to the "last_enriched_at" field.
func (m *PersonEntityMutation) ResetLastEnrichedAt() {
	m.last_enriched_at = nil
	delete(m.clearedFields, personentity.FieldLastEnrichedAt)
}

// SetLastRunID sets the "last_run_id" field.
func (m *PersonEntityMutation) SetLastRunID(s string) {
	m.last_run_id = &s
}

// LastRunID returns the value of the "last_run_id" field in the mutation.
func (m *PersonEntityMutation) LastRunID() (r string, exists bool) {
	v := m.last_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunID returns the old "last_run_id" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldLastRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunID: %w", err)
	}
	return oldValue.LastRunID, nil
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (m *PersonEntityMutation) ClearLastRunID() {
	m.last_run_id = nil
	m.clearedFields[personentity.FieldLastRunID] = struct{}{}
}

// LastRunIDCleared returns if the "last_run_id" field was cleared in this mutation.
func (m *PersonEntityMutation) LastRunIDCleared() bool {
	_, ok := m.clearedFields[personentity.FieldLastRunID]
	return ok
}

// ResetLastRunID resets all changes to the "last_run_id" field.
func (m *PersonEntityMutation) ResetLastRunID() {
	m.last_run_id = nil
	delete(m.clearedFields, personentity.FieldLastRunID)
}

// SetLastOperationID sets the "last_operation_id" field.
func (m *PersonEntityMutation) SetLastOperationID(s string) {
	m.last_operation_id = &s
}

// LastOperationID returns the value of the "last_operation_id" field in the mutation.
func (m *PersonEntityMutation) LastOperationID() (r string, exists bool) {
	v := m.last_operation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOperationID returns the old "last_operation_id" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldLastOperationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOperationID: %w", err)
	}
	return oldValue.LastOperationID, nil
}

// ClearLastOperationID clears the value of the "last_operation_id" field.
func (m *PersonEntityMutation) ClearLastOperationID() {
	m.last_operation_id = nil
	m.clearedFields[personentity.FieldLastOperationID] = struct{}{}
}

// LastOperationIDCleared returns if the "last_operation_id" field was cleared in this mutation.
func (m *PersonEntityMutation) LastOperationIDCleared() bool {
	_, ok := m.clearedFields[personentity.FieldLastOperationID]
	return ok
}

// ResetLastOperationID resets all changes to the "last_operation_id" field.
func (m *PersonEntityMutation) ResetLastOperationID() {
	m.last_operation_id = nil
	delete(m.clearedFields, personentity.FieldLastOperationID)
}

// SetSourceProviders sets the "source_providers" field.
func (m *PersonEntityMutation) SetSourceProviders(s []string) {
	m.source_providers = &s
	m.appendsource_providers = nil
}

// SourceProviders returns the value of the "source_providers" field in the mutation.
func (m *PersonEntityMutation) SourceProviders() (r []string, exists bool) {
	v := m.source_providers
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceProviders returns the old "source_providers" field's value of the PersonEntity entity.
// If the PersonEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonEntityMutation) OldSourceProviders(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceProviders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceProviders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceProviders: %w", err)
	}
	return oldValue.SourceProviders, nil
}

// AppendSourceProviders adds s to the "source_providers" field.
func (m *PersonEntityMutation) AppendSourceProviders(s []string) {
	m.appendsource_providers = append(m.appendsource_providers, s...)
}

// AppendedSourceProviders returns the list of values that were appended to the "source_providers" field in this mutation.
func (m *PersonEntityMutation) AppendedSourceProviders() ([]string, bool) {
	if len(m.appendsource_providers) == 0 {
		return nil, false
	}
	return m.appendsource_providers, true
}

// ClearSourceProviders clears the value of the "source_providers" field.
func (m *PersonEntityMutation) ClearSourceProviders() {
	m.source_providers = nil
	m.appendsource_providers = nil
	m.clearedFields[personentity.FieldSourceProviders] = struct{}{}
}

// SourceProvidersCleared returns if the "source_providers" field was cleared in this mutation.
func (m *PersonEntityMutation) SourceProvidersCleared() bool {
	_, ok := m.clearedFields[personentity.FieldSourceProviders]
	return ok
}

// ResetSourceProviders resets all changes to the "source_providers" field.
func (m *PersonEntityMutation) ResetSourceProviders() {
	m.source_providers = nil
	m.appendsource_providers = nil
	delete(m.clearedFields, personentity.FieldSourceProviders)
}

// Where appends a list predicates to the PersonEntityMutation builder.
func (m *PersonEntityMutation) Where(ps ...predicate.PersonEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PersonEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PersonEntity).
func (m *PersonEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonEntityMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, personentity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, personentity.FieldUpdatedAt)
	}
	if m.org_id != nil {
		fields = append(fields, personentity.FieldOrgID)
	}
	if m.record_version != nil {
		fields = append(fields, personentity.FieldRecordVersion)
	}
	if m.canonical_payload != nil {
		fields = append(fields, personentity.FieldCanonicalPayload)
	}
	if m.linkedin_url != nil {
		fields = append(fields, personentity.FieldLinkedinURL)
	}
	if m.work_email != nil {
		fields = append(fields, personentity.FieldWorkEmail)
	}
	if m.full_name != nil {
		fields = append(fields, personentity.FieldFullName)
	}
	if m.last_enriched_at != nil {
		fields = append(fields, personentity.FieldLastEnrichedAt)
	}
	if m.last_run_id != nil {
		fields = append(fields, personentity.FieldLastRunID)
	}
	if m.last_operation_id != nil {
		fields = append(fields, personentity.FieldLastOperationID)
	}
	if m.source_providers != nil {
		fields = append(fields, personentity.FieldSourceProviders)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case personentity.FieldCreatedAt:
		return m.CreatedAt()
	case personentity.FieldUpdatedAt:
		return m.UpdatedAt()
	case personentity.FieldOrgID:
		return m.OrgID()
	case personentity.FieldRecordVersion:
		return m.RecordVersion()
	case personentity.FieldCanonicalPayload:
		return m.CanonicalPayload()
	case personentity.FieldLinkedinURL:
		return m.LinkedinURL()
	case personentity.FieldWorkEmail:
		return m.WorkEmail()
	case personentity.FieldFullName:
		return m.FullName()
	case personentity.FieldLastEnrichedAt:
		return m.LastEnrichedAt()
	case personentity.FieldLastRunID:
		return m.LastRunID()
	case personentity.FieldLastOperationID:
		return m.LastOperationID()
	case personentity.FieldSourceProviders:
		return m.SourceProviders()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case personentity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case personentity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case personentity.FieldOrgID:
		return m.OldOrgID(ctx)
	case personentity.FieldRecordVersion:
		return m.OldRecordVersion(ctx)
	case personentity.FieldCanonicalPayload:
		return m.OldCanonicalPayload(ctx)
	case personentity.FieldLinkedinURL:
		return m.OldLinkedinURL(ctx)
	case personentity.FieldWorkEmail:
		return m.OldWorkEmail(ctx)
	case personentity.FieldFullName:
		return m.OldFullName(ctx)
	case personentity.FieldLastEnrichedAt:
		return m.OldLastEnrichedAt(ctx)
	case personentity.FieldLastRunID:
		return m.OldLastRunID(ctx)
	case personentity.FieldLastOperationID:
		return m.OldLastOperationID(ctx)
	case personentity.FieldSourceProviders:
		return m.OldSourceProviders(ctx)
	}
	return nil, fmt.Errorf("unknown PersonEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case personentity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case personentity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case personentity.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case personentity.FieldRecordVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordVersion(v)
		return nil
	case personentity.FieldCanonicalPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalPayload(v)
		return nil
	case personentity.FieldLinkedinURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedinURL(v)
		return nil
	case personentity.FieldWorkEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkEmail(v)
		return nil
	case personentity.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case personentity.FieldLastEnrichedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEnrichedAt(v)
		return nil
	case personentity.FieldLastRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunID(v)
		return nil
	case personentity.FieldLastOperationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOperationID(v)
		return nil
	case personentity.FieldSourceProviders:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceProviders(v)
		return nil
	}
	return fmt.Errorf("unknown PersonEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonEntityMutation) AddedFields() []string {
	var fields []string
	if m.addrecord_version != nil {
		fields = append(fields, personentity.FieldRecordVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonEntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case personentity.FieldRecordVersion:
		return m.AddedRecordVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case personentity.FieldRecordVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PersonEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonEntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(personentity.FieldLinkedinURL) {
		fields = append(fields, personentity.FieldLinkedinURL)
	}
	if m.FieldCleared(personentity.FieldWorkEmail) {
		fields = append(fields, personentity.FieldWorkEmail)
	}
	if m.FieldCleared(personentity.FieldFullName) {
		fields = append(fields, personentity.FieldFullName)
	}
	if m.FieldCleared(personentity.FieldLastEnrichedAt) {
		fields = append(fields, personentity.FieldLastEnrichedAt)
	}
	if m.FieldCleared(personentity.FieldLastRunID) {
		fields = append(fields, personentity.FieldLastRunID)
	}
	if m.FieldCleared(personentity.FieldLastOperationID) {
		fields = append(fields, personentity.FieldLastOperationID)
	}
	if m.FieldCleared(personentity.FieldSourceProviders) {
		fields = append(fields, personentity.FieldSourceProviders)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonEntityMutation) ClearField(name string) error {
	switch name {
	case personentity.FieldLinkedinURL:
		m.ClearLinkedinURL()
		return nil
	case personentity.FieldWorkEmail:
		m.ClearWorkEmail()
		return nil
	case personentity.FieldFullName:
		m.ClearFullName()
		return nil
	case personentity.FieldLastEnrichedAt:
		m.ClearLastEnrichedAt()
		return nil
	case personentity.FieldLastRunID:
		m.ClearLastRunID()
		return nil
	case personentity.FieldLastOperationID:
		m.ClearLastOperationID()
		return nil
	case personentity.FieldSourceProviders:
		m.ClearSourceProviders()
		return nil
	}
	return fmt.Errorf("unknown PersonEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonEntityMutation) ResetField(name string) error {
	switch name {
	case personentity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case personentity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case personentity.FieldOrgID:
		m.ResetOrgID()
		return nil
	case personentity.FieldRecordVersion:
		m.ResetRecordVersion()
		return nil
	case personentity.FieldCanonicalPayload:
		m.ResetCanonicalPayload()
		return nil
	case personentity.FieldLinkedinURL:
		m.ResetLinkedinURL()
		return nil
	case personentity.FieldWorkEmail:
		m.ResetWorkEmail()
		return nil
	case personentity.FieldFullName:
		m.ResetFullName()
		return nil
	case personentity.FieldLastEnrichedAt:
		m.ResetLastEnrichedAt()
		return nil
	case personentity.FieldLastRunID:
		m.ResetLastRunID()
		return nil
	case personentity.FieldLastOperationID:
		m.ResetLastOperationID()
		return nil
	case personentity.FieldSourceProviders:
		m.ResetSourceProviders()
		return nil
	}
	return fmt.Errorf("unknown PersonEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonEntityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonEntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonEntityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonEntityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PersonEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonEntityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PersonEntity edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	created_at               *time.Time
	updated_at               *time.Time
	org_id                   *string
	parent_run_id            *string
	trigger_run_id           *string
	entity_type              *pipelinerun.EntityType
	entity_index             *int
	addentity_index          *int
	blueprint_snapshot       *[]map[string]interface{}
	appendblueprint_snapshot []map[string]interface{}
	entity_input             *map[string]interface{}
	cumulative_context       *map[string]interface{}
	current_position         *int
	addcurrent_position      *int
	depth                    *int
	adddepth                 *int
	status                   *pipelinerun.Status
	error_message            *string
	started_at               *time.Time
	finished_at              *time.Time
	clearedFields            map[string]struct{}
	submission               *string
	clearedsubmission        bool
	step_results             map[string]struct{}
	removedstep_results      map[string]struct{}
	clearedstep_results      bool
	done                     bool
	oldValue                 func(context.Context) (*PipelineRun, error)
	predicates               []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrgID sets the "org_id" field.
func (m *PipelineRunMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *PipelineRunMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *PipelineRunMutation) ResetOrgID() {
	m.org_id = nil
}

// SetParentRunID sets the "parent_run_id" field.
func (m *PipelineRunMutation) SetParentRunID(s string) {
	m.parent_run_id = &s
}

// ParentRunID returns the value of the "parent_run_id" field in the mutation.
func (m *PipelineRunMutation) ParentRunID() (r string, exists bool) {
	v := m.parent_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentRunID returns the old "parent_run_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldParentRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentRunID: %w", err)
	}
	return oldValue.ParentRunID, nil
}

// ClearParentRunID clears the value of the "parent_run_id" field.
func (m *PipelineRunMutation) ClearParentRunID() {
	m.parent_run_id = nil
	m.clearedFields[pipelinerun.FieldParentRunID] = struct{}{}
}

// ParentRunIDCleared returns if the "parent_run_id" field was cleared in this mutation.
func (m *PipelineRunMutation) ParentRunIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldParentRunID]
	return ok
}

// ResetParentRunID resets all changes to the "parent_run_id" field.
func (m *PipelineRunMutation) ResetParentRunID() {
	m.parent_run_id = nil
	delete(m.clearedFields, pipelinerun.FieldParentRunID)
}

// SetTriggerRunID sets the "trigger_run_id" field.
func (m *PipelineRunMutation) SetTriggerRunID(s string) {
	m.trigger_run_id = &s
}

// TriggerRunID returns the value of the "trigger_run_id" field in the mutation.
func (m *PipelineRunMutation) TriggerRunID() (r string, exists bool) {
	v := m.trigger_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerRunID returns the old "trigger_run_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTriggerRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerRunID: %w", err)
	}
	return oldValue.TriggerRunID, nil
}

// ClearTriggerRunID clears the value of the "trigger_run_id" field.
func (m *PipelineRunMutation) ClearTriggerRunID() {
	m.trigger_run_id = nil
	m.clearedFields[pipelinerun.FieldTriggerRunID] = struct{}{}
}

// TriggerRunIDCleared returns if the "trigger_run_id" field was cleared in this mutation.
func (m *PipelineRunMutation) TriggerRunIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldTriggerRunID]
	return ok
}

// ResetTriggerRunID resets all changes to the "trigger_run_id" field.
func (m *PipelineRunMutation) ResetTriggerRunID() {
	m.trigger_run_id = nil
	delete(m.clearedFields, pipelinerun.FieldTriggerRunID)
}

// SetEntityType sets the "entity_type" field.
func (m *PipelineRunMutation) SetEntityType(pt pipelinerun.EntityType) {
	m.entity_type = &pt
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *PipelineRunMutation) EntityType() (r pipelinerun.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldEntityType(ctx context.Context) (v pipelinerun.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *PipelineRunMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityIndex sets the "entity_index" field.
func (m *PipelineRunMutation) SetEntityIndex(i int) {
	m.entity_index = &i
	m.addentity_index = nil
}

// EntityIndex returns the value of the "entity_index" field in the mutation.
func (m *PipelineRunMutation) EntityIndex() (r int, exists bool) {
	v := m.entity_index
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityIndex returns the old "entity_index" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldEntityIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityIndex: %w", err)
	}
	return oldValue.EntityIndex, nil
}

// AddEntityIndex adds i to the "entity_index" field.
func (m *PipelineRunMutation) AddEntityIndex(i int) {
	if m.addentity_index != nil {
		*m.addentity_index += i
	} else {
		m.addentity_index = &i
	}
}

// AddedEntityIndex returns the value that was added to the "entity_index" field in this mutation.
func (m *PipelineRunMutation) AddedEntityIndex() (r int, exists bool) {
	v := m.addentity_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntityIndex resets all changes to the "entity_index" field.
func (m *PipelineRunMutation) ResetEntityIndex() {
	m.entity_index = nil
	m.addentity_index = nil
}

// SetBlueprintSnapshot sets the "blueprint_snapshot" field.
func (m *PipelineRunMutation) SetBlueprintSnapshot(value []map[string]interface{}) {
	m.blueprint_snapshot = &value
	m.appendblueprint_snapshot = nil
}

// BlueprintSnapshot returns the value of the "blueprint_snapshot" field in the mutation.
func (m *PipelineRunMutation) BlueprintSnapshot() (r []map[string]interface{}, exists bool) {
	v := m.blueprint_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintSnapshot returns the old "blueprint_snapshot" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldBlueprintSnapshot(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintSnapshot: %w", err)
	}
	return oldValue.BlueprintSnapshot, nil
}

// AppendBlueprintSnapshot adds value to the "blueprint_snapshot" field.
func (m *PipelineRunMutation) AppendBlueprintSnapshot(value []map[string]interface{}) {
	m.appendblueprint_snapshot = append(m.appendblueprint_snapshot, value...)
}

// AppendedBlueprintSnapshot returns the list of values that were appended to the "blueprint_snapshot" field in this mutation.
func (m *PipelineRunMutation) AppendedBlueprintSnapshot() ([]map[string]interface{}, bool) {
	if len(m.appendblueprint_snapshot) == 0 {
		return nil, false
	}
	return m.appendblueprint_snapshot, true
}

// ResetBlueprintSnapshot resets all changes to the "blueprint_snapshot" field.
func (m *PipelineRunMutation) ResetBlueprintSnapshot() {
	m.blueprint_snapshot = nil
	m.appendblueprint_snapshot = nil
}

// SetEntityInput sets the "entity_input" field.
func (m *PipelineRunMutation) SetEntityInput(value map[string]interface{}) {
	m.entity_input = &value
}

// EntityInput returns the value of the "entity_input" field in the mutation.
func (m *PipelineRunMutation) EntityInput() (r map[string]interface{}, exists bool) {
	v := m.entity_input
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityInput returns the old "entity_input" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldEntityInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityInput: %w", err)
	}
	return oldValue.EntityInput, nil
}

// ResetEntityInput resets all changes to the "entity_input" field.
func (m *PipelineRunMutation) ResetEntityInput() {
	m.entity_input = nil
}

// SetCumulativeContext sets the "cumulative_context" field.
func (m *PipelineRunMutation) SetCumulativeContext(value map[string]interface{}) {
	m.cumulative_context = &value
}

// CumulativeContext returns the value of the "cumulative_context" field in the mutation.
func (m *PipelineRunMutation) CumulativeContext() (r map[string]interface{}, exists bool) {
	v := m.cumulative_context
	if v == nil {
		return
	}
	return *v, true
}

// OldCumulativeContext returns the old "cumulative_context" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCumulativeContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCumulativeContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCumulativeContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCumulativeContext: %w", err)
	}
	return oldValue.CumulativeContext, nil
}

// ClearCumulativeContext clears the value of the "cumulative_context" field.
func (m *PipelineRunMutation) ClearCumulativeContext() {
	m.cumulative_context = nil
	m.clearedFields[pipelinerun.FieldCumulativeContext] = struct{}{}
}

// CumulativeContextCleared returns if the "cumulative_context" field was cleared in this mutation.
func (m *PipelineRunMutation) CumulativeContextCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCumulativeContext]
	return ok
}

// ResetCumulativeContext resets all changes to the "cumulative_context" field.
func (m *PipelineRunMutation) ResetCumulativeContext() {
	m.cumulative_context = nil
	delete(m.clearedFields, pipelinerun.FieldCumulativeContext)
}

// SetCurrentPosition sets the "current_position" field.
func (m *PipelineRunMutation) SetCurrentPosition(i int) {
	m.current_position = &i
	m.addcurrent_position = nil
}

// CurrentPosition returns the value of the "current_position" field in the mutation.
func (m *PipelineRunMutation) CurrentPosition() (r int, exists bool) {
	v := m.current_position
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPosition returns the old "current_position" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCurrentPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPosition: %w", err)
	}
	return oldValue.CurrentPosition, nil
}

// AddCurrentPosition adds i to the "current_position" field.
func (m *PipelineRunMutation) AddCurrentPosition(i int) {
	if m.addcurrent_position != nil {
		*m.addcurrent_position += i
	} else {
		m.addcurrent_position = &i
	}
}

// AddedCurrentPosition returns the value that was added to the "current_position" field in this mutation.
func (m *PipelineRunMutation) AddedCurrentPosition() (r int, exists bool) {
	v := m.addcurrent_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentPosition resets all changes to the "current_position" field.
func (m *PipelineRunMutation) ResetCurrentPosition() {
	m.current_position = nil
	m.addcurrent_position = nil
}

// SetDepth sets the "depth" field.
func (m *PipelineRunMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *PipelineRunMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *PipelineRunMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *PipelineRunMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *PipelineRunMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinerun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinerun.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinerun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinerun.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *PipelineRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *PipelineRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *PipelineRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[pipelinerun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *PipelineRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *PipelineRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, pipelinerun.FieldFinishedAt)
}

// SetSubmissionID sets the "submission" edge to the Submission entity by id.
func (m *PipelineRunMutation) SetSubmissionID(id string) {
	m.submission = &id
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (m *PipelineRunMutation) ClearSubmission() {
	m.clearedsubmission = true
}

// SubmissionCleared reports if the "submission" edge to the Submission entity was cleared.
func (m *PipelineRunMutation) SubmissionCleared() bool {
	return m.clearedsubmission
}

// SubmissionID returns the "submission" edge ID in the mutation.
func (m *PipelineRunMutation) SubmissionID() (id string, exists bool) {
	if m.submission != nil {
		return *m.submission, true
	}
	return
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *PipelineRunMutation) SubmissionIDs() (ids []string) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *PipelineRunMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// AddStepResultIDs adds the "step_results" edge to the StepResult entity by ids.
func (m *PipelineRunMutation) AddStepResultIDs(ids ...string) {
	if m.step_results == nil {
		m.step_results = make(map[string]struct{})
	}
	for i := range ids {
		m.step_results[ids[i]] = struct{}{}
	}
}

// ClearStepResults clears the "step_results" edge to the StepResult entity.
func (m *PipelineRunMutation) ClearStepResults() {
	m.clearedstep_results = true
}

// StepResultsCleared reports if the "step_results" edge to the StepResult entity was cleared.
func (m *PipelineRunMutation) StepResultsCleared() bool {
	return m.clearedstep_results
}

// RemoveStepResultIDs removes the "step_results" edge to the StepResult entity by IDs.
func (m *PipelineRunMutation) RemoveStepResultIDs(ids ...string) {
	if m.removedstep_results == nil {
		m.removedstep_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.step_results, ids[i])
		m.removedstep_results[ids[i]] = struct{}{}
	}
}

// RemovedStepResults returns the removed IDs of the "step_results" edge to the StepResult entity.
func (m *PipelineRunMutation) RemovedStepResultsIDs() (ids []string) {
	for id := range m.removedstep_results {
		ids = append(ids, id)
	}
	return
}

// StepResultsIDs returns the "step_results" edge IDs in the mutation.
func (m *PipelineRunMutation) StepResultsIDs() (ids []string) {
	for id := range m.step_results {
		ids = append(ids, id)
	}
	return
}

// ResetStepResults resets all changes to the "step_results" edge.
func (m *PipelineRunMutation) ResetStepResults() {
	m.step_results = nil
	m.clearedstep_results = false
	m.removedstep_results = nil
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, pipelinerun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinerun.FieldUpdatedAt)
	}
	if m.org_id != nil {
		fields = append(fields, pipelinerun.FieldOrgID)
	}
	if m.parent_run_id != nil {
		fields = append(fields, pipelinerun.FieldParentRunID)
	}
	if m.trigger_run_id != nil {
		fields = append(fields, pipelinerun.FieldTriggerRunID)
	}
	if m.entity_type != nil {
		fields = append(fields, pipelinerun.FieldEntityType)
	}
	if m.entity_index != nil {
		fields = append(fields, pipelinerun.FieldEntityIndex)
	}
	if m.blueprint_snapshot != nil {
		fields = append(fields, pipelinerun.FieldBlueprintSnapshot)
	}
	if m.entity_input != nil {
		fields = append(fields, pipelinerun.FieldEntityInput)
	}
	if m.cumulative_context != nil {
		fields = append(fields, pipelinerun.FieldCumulativeContext)
	}
	if m.current_position != nil {
		fields = append(fields, pipelinerun.FieldCurrentPosition)
	}
	if m.depth != nil {
		fields = append(fields, pipelinerun.FieldDepth)
	}
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, pipelinerun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinerun.FieldUpdatedAt:
		return m.UpdatedAt()
	case pipelinerun.FieldOrgID:
		return m.OrgID()
	case pipelinerun.FieldParentRunID:
		return m.ParentRunID()
	case pipelinerun.FieldTriggerRunID:
		return m.TriggerRunID()
	case pipelinerun.FieldEntityType:
		return m.EntityType()
	case pipelinerun.FieldEntityIndex:
		return m.EntityIndex()
	case pipelinerun.FieldBlueprintSnapshot:
		return m.BlueprintSnapshot()
	case pipelinerun.FieldEntityInput:
		return m.EntityInput()
	case pipelinerun.FieldCumulativeContext:
		return m.CumulativeContext()
	case pipelinerun.FieldCurrentPosition:
		return m.CurrentPosition()
	case pipelinerun.FieldDepth:
		return m.Depth()
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinerun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case pipelinerun.FieldOrgID:
		return m.OldOrgID(ctx)
	case pipelinerun.FieldParentRunID:
		return m.OldParentRunID(ctx)
	case pipelinerun.FieldTriggerRunID:
		return m.OldTriggerRunID(ctx)
	case pipelinerun.FieldEntityType:
		return m.OldEntityType(ctx)
	case pipelinerun.FieldEntityIndex:
		return m.OldEntityIndex(ctx)
	case pipelinerun.FieldBlueprintSnapshot:
		return m.OldBlueprintSnapshot(ctx)
	case pipelinerun.FieldEntityInput:
		return m.OldEntityInput(ctx)
	case pipelinerun.FieldCumulativeContext:
		return m.OldCumulativeContext(ctx)
	case pipelinerun.FieldCurrentPosition:
		return m.OldCurrentPosition(ctx)
	case pipelinerun.FieldDepth:
		return m.OldDepth(ctx)
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinerun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case pipelinerun.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case pipelinerun.FieldParentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentRunID(v)
		return nil
	case pipelinerun.FieldTriggerRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerRunID(v)
		return nil
	case pipelinerun.FieldEntityType:
		v, ok := value.(pipelinerun.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case pipelinerun.FieldEntityIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityIndex(v)
		return nil
	case pipelinerun.FieldBlueprintSnapshot:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintSnapshot(v)
		return nil
	case pipelinerun.FieldEntityInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityInput(v)
		return nil
	case pipelinerun.FieldCumulativeContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCumulativeContext(v)
		return nil
	case pipelinerun.FieldCurrentPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPosition(v)
		return nil
	case pipelinerun.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	var fields []string
	if m.addentity_index != nil {
		fields = append(fields, pipelinerun.FieldEntityIndex)
	}
	if m.addcurrent_position != nil {
		fields = append(fields, pipelinerun.FieldCurrentPosition)
	}
	if m.adddepth != nil {
		fields = append(fields, pipelinerun.FieldDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldEntityIndex:
		return m.AddedEntityIndex()
	case pipelinerun.FieldCurrentPosition:
		return m.AddedCurrentPosition()
	case pipelinerun.FieldDepth:
		return m.AddedDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldEntityIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntityIndex(v)
		return nil
	case pipelinerun.FieldCurrentPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentPosition(v)
		return nil
	case pipelinerun.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldParentRunID) {
		fields = append(fields, pipelinerun.FieldParentRunID)
	}
	if m.FieldCleared(pipelinerun.FieldTriggerRunID) {
		fields = append(fields, pipelinerun.FieldTriggerRunID)
	}
	if m.FieldCleared(pipelinerun.FieldCumulativeContext) {
		fields = append(fields, pipelinerun.FieldCumulativeContext)
	}
	if m.FieldCleared(pipelinerun.FieldErrorMessage) {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinerun.FieldStartedAt) {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.FieldCleared(pipelinerun.FieldFinishedAt) {
		fields = append(fields, pipelinerun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldParentRunID:
		m.ClearParentRunID()
		return nil
	case pipelinerun.FieldTriggerRunID:
		m.ClearTriggerRunID()
		return nil
	case pipelinerun.FieldCumulativeContext:
		m.ClearCumulativeContext()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinerun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinerun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case pipelinerun.FieldOrgID:
		m.ResetOrgID()
		return nil
	case pipelinerun.FieldParentRunID:
		m.ResetParentRunID()
		return nil
	case pipelinerun.FieldTriggerRunID:
		m.ResetTriggerRunID()
		return nil
	case pipelinerun.FieldEntityType:
		m.ResetEntityType()
		return nil
	case pipelinerun.FieldEntityIndex:
		m.ResetEntityIndex()
		return nil
	case pipelinerun.FieldBlueprintSnapshot:
		m.ResetBlueprintSnapshot()
		return nil
	case pipelinerun.FieldEntityInput:
		m.ResetEntityInput()
		return nil
	case pipelinerun.FieldCumulativeContext:
		m.ResetCumulativeContext()
		return nil
	case pipelinerun.FieldCurrentPosition:
		m.ResetCurrentPosition()
		return nil
	case pipelinerun.FieldDepth:
		m.ResetDepth()
		return nil
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.submission != nil {
		edges = append(edges, pipelinerun.EdgeSubmission)
	}
	if m.step_results != nil {
		edges = append(edges, pipelinerun.EdgeStepResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	case pipelinerun.EdgeStepResults:
		ids := make([]ent.Value, 0, len(m.step_results))
		for id := range m.step_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedstep_results != nil {
		edges = append(edges, pipelinerun.EdgeStepResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeStepResults:
		ids := make([]ent.Value, 0, len(m.removedstep_results))
		for id := range m.removedstep_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubmission {
		edges = append(edges, pipelinerun.EdgeSubmission)
	}
	if m.clearedstep_results {
		edges = append(edges, pipelinerun.EdgeStepResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinerun.EdgeSubmission:
		return m.clearedsubmission
	case pipelinerun.EdgeStepResults:
		return m.clearedstep_results
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	switch name {
	case pipelinerun.EdgeSubmission:
		m.ClearSubmission()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	switch name {
	case pipelinerun.EdgeSubmission:
		m.ResetSubmission()
		return nil
	case pipelinerun.EdgeStepResults:
		m.ResetStepResults()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// StepResultMutation represents an operation that mutates the StepResult nodes in the graph.
type StepResultMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	created_at               *time.Time
	org_id                   *string
	position                 *int
	addposition              *int
	operation_id             *string
	attempt_number           *int
	addattempt_number        *int
	status                   *stepresult.Status
	input_payload            *map[string]interface{}
	output_payload           *map[string]interface{}
	provider_attempts        *[]map[string]interface{}
	appendprovider_attempts  []map[string]interface{}
	error_message            *string
	skip_reason              *string
	children_spawned         *int
	addchildren_spawned      *int
	skipped_duplicates       *[]string
	appendskipped_duplicates []string
	clearedFields            map[string]struct{}
	run                      *string
	clearedrun               bool
	done                     bool
	oldValue                 func(context.Context) (*StepResult, error)
	predicates               []predicate.StepResult
}

var _ ent.Mutation = (*StepResultMutation)(nil)

// stepresultOption allows management of the mutation configuration using functional options.
type stepresultOption func(*StepResultMutation)

// newStepResultMutation creates new mutation for the StepResult entity.
func newStepResultMutation(c config, op Op, opts ...stepresultOption) *StepResultMutation {
	m := &StepResultMutation{
		config:        c,
		op:            op,
		typ:           TypeStepResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepResultID sets the ID field of the mutation.
func withStepResultID(id string) stepresultOption {
	return func(m *StepResultMutation) {
		var (
			err   error
			once  sync.Once
			value *StepResult
		)
		m.oldValue = func(ctx context.Context) (*StepResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepResult sets the old StepResult of the mutation.
func withStepResult(node *StepResult) stepresultOption {
	return func(m *StepResultMutation) {
		m.oldValue = func(context.Context) (*StepResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StepResult entities.
func (m *StepResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StepResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOrgID sets the "org_id" field.
func (m *StepResultMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *StepResultMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *StepResultMutation) ResetOrgID() {
	m.org_id = nil
}

// SetPosition sets the "position" field.
func (m *StepResultMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *StepResultMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *StepResultMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *StepResultMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *StepResultMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetOperationID sets the "operation_id" field.
func (m *StepResultMutation) SetOperationID(s string) {
	m.operation_id = &s
}

// OperationID returns the value of the "operation_id" field in the mutation.
func (m *StepResultMutation) OperationID() (r string, exists bool) {
	v := m.operation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationID returns the old "operation_id" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldOperationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationID: %w", err)
	}
	return oldValue.OperationID, nil
}

// ResetOperationID resets all changes to the "operation_id" field.
func (m *StepResultMutation) ResetOperationID() {
	m.operation_id = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *StepResultMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *StepResultMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *StepResultMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *StepResultMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *StepResultMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetStatus sets the "status" field.
func (m *StepResultMutation) SetStatus(s stepresult.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepResultMutation) Status() (r stepresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldStatus(ctx context.Context) (v stepresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepResultMutation) ResetStatus() {
	m.status = nil
}

// SetInputPayload sets the "input_payload" field.
func (m *StepResultMutation) SetInputPayload(value map[string]interface{}) {
	m.input_payload = &value
}

// InputPayload returns the value of the "input_payload" field in the mutation.
func (m *StepResultMutation) InputPayload() (r map[string]interface{}, exists bool) {
	v := m.input_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldInputPayload returns the old "input_payload" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldInputPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputPayload: %w", err)
	}
	return oldValue.InputPayload, nil
}

// ClearInputPayload clears the value of the "input_payload" field.
func (m *StepResultMutation) ClearInputPayload() {
	m.input_payload = nil
	m.clearedFields[stepresult.FieldInputPayload] = struct{}{}
}

// InputPayloadCleared returns if the "input_payload" field was cleared in this mutation.
func (m *StepResultMutation) InputPayloadCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldInputPayload]
	return ok
}

// ResetInputPayload resets all changes to the "input_payload" field.
func (m *StepResultMutation) ResetInputPayload() {
	m.input_payload = nil
	delete(m.clearedFields, stepresult.FieldInputPayload)
}

// SetOutputPayload sets the "output_payload" field.
func (m *StepResultMutation) SetOutputPayload(value map[string]interface{}) {
	m.output_payload = &value
}

// OutputPayload returns the value of the "output_payload" field in the mutation.
func (m *StepResultMutation) OutputPayload() (r map[string]interface{}, exists bool) {
	v := m.output_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputPayload returns the old "output_payload" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldOutputPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputPayload: %w", err)
	}
	return oldValue.OutputPayload, nil
}

// ClearOutputPayload clears the value of the "output_payload" field.
func (m *StepResultMutation) ClearOutputPayload() {
	m.output_payload = nil
	m.clearedFields[stepresult.FieldOutputPayload] = struct{}{}
}

// OutputPayloadCleared returns if the "output_payload" field was cleared in this mutation.
func (m *StepResultMutation) OutputPayloadCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldOutputPayload]
	return ok
}

// ResetOutputPayload resets all changes to the "output_payload" field.
func (m *StepResultMutation) ResetOutputPayload() {
	m.output_payload = nil
	delete(m.clearedFields, stepresult.FieldOutputPayload)
}

// SetProviderAttempts sets the "provider_attempts" field.
func (m *StepResultMutation) SetProviderAttempts(value []map[string]interface{}) {
	m.provider_attempts = &value
	m.appendprovider_attempts = nil
}

// ProviderAttempts returns the value of the "provider_attempts" field in the mutation.
func (m *StepResultMutation) ProviderAttempts() (r []map[string]interface{}, exists bool) {
	v := m.provider_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderAttempts returns the old "provider_attempts" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldProviderAttempts(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderAttempts: %w", err)
	}
	return oldValue.ProviderAttempts, nil
}

// AppendProviderAttempts adds value to the "provider_attempts" field.
func (m *StepResultMutation) AppendProviderAttempts(value []map[string]interface{}) {
	m.appendprovider_attempts = append(m.appendprovider_attempts, value...)
}

// AppendedProviderAttempts returns the list of values that were appended to the "provider_attempts" field in this mutation.
func (m *StepResultMutation) AppendedProviderAttempts() ([]map[string]interface{}, bool) {
	if len(m.appendprovider_attempts) == 0 {
		return nil, false
	}
	return m.appendprovider_attempts, true
}

// ClearProviderAttempts clears the value of the "provider_attempts" field.
func (m *StepResultMutation) ClearProviderAttempts() {
	m.provider_attempts = nil
	m.appendprovider_attempts = nil
	m.clearedFields[stepresult.FieldProviderAttempts] = struct{}{}
}

// ProviderAttemptsCleared returns if the "provider_attempts" field was cleared in this mutation.
func (m *StepResultMutation) ProviderAttemptsCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldProviderAttempts]
	return ok
}

// ResetProviderAttempts resets all changes to the "provider_attempts" field.
func (m *StepResultMutation) ResetProviderAttempts() {
	m.provider_attempts = nil
	m.appendprovider_attempts = nil
	delete(m.clearedFields, stepresult.FieldProviderAttempts)
}

// SetErrorMessage sets the "error_message" field.
func (m *StepResultMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StepResultMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StepResultMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stepresult.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StepResultMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StepResultMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stepresult.FieldErrorMessage)
}

// SetSkipReason sets the "skip_reason" field.
func (m *StepResultMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *StepResultMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldSkipReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *StepResultMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[stepresult.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *StepResultMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *StepResultMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, stepresult.FieldSkipReason)
}

// SetChildrenSpawned sets the "children_spawned" field.
func (m *StepResultMutation) SetChildrenSpawned(i int) {
	m.children_spawned = &i
	m.addchildren_spawned = nil
}

// ChildrenSpawned returns the value of the "children_spawned" field in the mutation.
func (m *StepResultMutation) ChildrenSpawned() (r int, exists bool) {
	v := m.children_spawned
	if v == nil {
		return
	}
	return *v, true
}

// OldChildrenSpawned returns the old "children_spawned" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldChildrenSpawned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildrenSpawned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildrenSpawned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildrenSpawned: %w", err)
	}
	return oldValue.ChildrenSpawned, nil
}

// AddChildrenSpawned adds i to the "children_spawned" field.
func (m *StepResultMutation) AddChildrenSpawned(i int) {
	if m.addchildren_spawned != nil {
		*m.addchildren_spawned += i
	} else {
		m.addchildren_spawned = &i
	}
}

// AddedChildrenSpawned returns the value that was added to the "children_spawned" field in this mutation.
func (m *StepResultMutation) AddedChildrenSpawned() (r int, exists bool) {
	v := m.addchildren_spawned
	if v == nil {
		return
	}
	return *v, true
}

// ClearChildrenSpawned clears the value of the "children_spawned" field.
func (m *StepResultMutation) ClearChildrenSpawned() {
	m.children_spawned = nil
	m.addchildren_spawned = nil
	m.clearedFields[stepresult.FieldChildrenSpawned] = struct{}{}
}

// ChildrenSpawnedCleared returns if the "children_spawned" field was cleared in this mutation.
func (m *StepResultMutation) ChildrenSpawnedCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldChildrenSpawned]
	return ok
}

// ResetChildrenSpawned resets all changes to the "children_spawned" field.
func (m *StepResultMutation) ResetChildrenSpawned() {
	m.children_spawned = nil
	m.addchildren_spawned = nil
	delete(m.clearedFields, stepresult.FieldChildrenSpawned)
}

// SetSkippedDuplicates sets the "skipped_duplicates" field.
func (m *StepResultMutation) SetSkippedDuplicates(s []string) {
	m.skipped_duplicates = &s
	m.appendskipped_duplicates = nil
}

// SkippedDuplicates returns the value of the "skipped_duplicates" field in the mutation.
func (m *StepResultMutation) SkippedDuplicates() (r []string, exists bool) {
	v := m.skipped_duplicates
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedDuplicates returns the old "skipped_duplicates" field's value of the StepResult entity.
// If the StepResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepResultMutation) OldSkippedDuplicates(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedDuplicates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedDuplicates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedDuplicates: %w", err)
	}
	return oldValue.SkippedDuplicates, nil
}

// AppendSkippedDuplicates adds s to the "skipped_duplicates" field.
func (m *StepResultMutation) AppendSkippedDuplicates(s []string) {
	m.appendskipped_duplicates = append(m.appendskipped_duplicates, s...)
}

// AppendedSkippedDuplicates returns the list of values that were appended to the "skipped_duplicates" field in this mutation.
func (m *StepResultMutation) AppendedSkippedDuplicates() ([]string, bool) {
	if len(m.appendskipped_duplicates) == 0 {
		return nil, false
	}
	return m.appendskipped_duplicates, true
}

// ClearSkippedDuplicates clears the value of the "skipped_duplicates" field.
func (m *StepResultMutation) ClearSkippedDuplicates() {
	m.skipped_duplicates = nil
	m.appendskipped_duplicates = nil
	m.clearedFields[stepresult.FieldSkippedDuplicates] = struct{}{}
}

// SkippedDuplicatesCleared returns if the "skipped_duplicates" field was cleared in this mutation.
func (m *StepResultMutation) SkippedDuplicatesCleared() bool {
	_, ok := m.clearedFields[stepresult.FieldSkippedDuplicates]
	return ok
}

// ResetSkippedDuplicates resets all changes to the "skipped_duplicates" field.
func (m *StepResultMutation) ResetSkippedDuplicates() {
	m.skipped_duplicates = nil
	m.appendskipped_duplicates = nil
	delete(m.clearedFields, stepresult.FieldSkippedDuplicates)
}

// SetRunID sets the "run" edge to the PipelineRun entity by id.
func (m *StepResultMutation) SetRunID(id string) {
	m.run = &id
}

// ClearRun clears the "run" edge to the PipelineRun entity.
func (m *StepResultMutation) ClearRun() {
	m.clearedrun = true
}

// RunCleared reports if the "run" edge to the PipelineRun entity was cleared.
func (m *StepResultMutation) RunCleared() bool {
	return m.clearedrun
}

// RunID returns the "run" edge ID in the mutation.
func (m *StepResultMutation) RunID() (id string, exists bool) {
	if m.run != nil {
		return *m.run, true
	}
	return
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *StepResultMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *StepResultMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the StepResultMutation builder.
func (m *StepResultMutation) Where(ps ...predicate.StepResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepResult).
func (m *StepResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepResultMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, stepresult.FieldCreatedAt)
	}
	if m.org_id != nil {
		fields = append(fields, stepresult.FieldOrgID)
	}
	if m.position != nil {
		fields = append(fields, stepresult.FieldPosition)
	}
	if m.operation_id != nil {
		fields = append(fields, stepresult.FieldOperationID)
	}
	if m.attempt_number != nil {
		fields = append(fields, stepresult.FieldAttemptNumber)
	}
	if m.status != nil {
		fields = append(fields, stepresult.FieldStatus)
	}
	if m.input_payload != nil {
		fields = append(fields, stepresult.FieldInputPayload)
	}
	if m.output_payload != nil {
		fields = append(fields, stepresult.FieldOutputPayload)
	}
	if m.provider_attempts != nil {
		fields = append(fields, stepresult.FieldProviderAttempts)
	}
	if m.error_message != nil {
		fields = append(fields, stepresult.FieldErrorMessage)
	}
	if m.skip_reason != nil {
		fields = append(fields, stepresult.FieldSkipReason)
	}
	if m.children_spawned != nil {
		fields = append(fields, stepresult.FieldChildrenSpawned)
	}
	if m.skipped_duplicates != nil {
		fields = append(fields, stepresult.FieldSkippedDuplicates)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepresult.FieldCreatedAt:
		return m.CreatedAt()
	case stepresult.FieldOrgID:
		return m.OrgID()
	case stepresult.FieldPosition:
		return m.Position()
	case stepresult.FieldOperationID:
		return m.OperationID()
	case stepresult.FieldAttemptNumber:
		return m.AttemptNumber()
	case stepresult.FieldStatus:
		return m.Status()
	case stepresult.FieldInputPayload:
		return m.InputPayload()
	case stepresult.FieldOutputPayload:
		return m.OutputPayload()
	case stepresult.FieldProviderAttempts:
		return m.ProviderAttempts()
	case stepresult.FieldErrorMessage:
		return m.ErrorMessage()
	case stepresult.FieldSkipReason:
		return m.SkipReason()
	case stepresult.FieldChildrenSpawned:
		return m.ChildrenSpawned()
	case stepresult.FieldSkippedDuplicates:
		return m.SkippedDuplicates()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stepresult.FieldOrgID:
		return m.OldOrgID(ctx)
	case stepresult.FieldPosition:
		return m.OldPosition(ctx)
	case stepresult.FieldOperationID:
		return m.OldOperationID(ctx)
	case stepresult.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case stepresult.FieldStatus:
		return m.OldStatus(ctx)
	case stepresult.FieldInputPayload:
		return m.OldInputPayload(ctx)
	case stepresult.FieldOutputPayload:
		return m.OldOutputPayload(ctx)
	case stepresult.FieldProviderAttempts:
		return m.OldProviderAttempts(ctx)
	case stepresult.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stepresult.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case stepresult.FieldChildrenSpawned:
		return m.OldChildrenSpawned(ctx)
	case stepresult.FieldSkippedDuplicates:
		return m.OldSkippedDuplicates(ctx)
	}
	return nil, fmt.Errorf("unknown StepResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stepresult.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case stepresult.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case stepresult.FieldOperationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationID(v)
		return nil
	case stepresult.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case stepresult.FieldStatus:
		v, ok := value.(stepresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stepresult.FieldInputPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputPayload(v)
		return nil
	case stepresult.FieldOutputPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputPayload(v)
		return nil
	case stepresult.FieldProviderAttempts:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderAttempts(v)
		return nil
	case stepresult.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stepresult.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case stepresult.FieldChildrenSpawned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildrenSpawned(v)
		return nil
	case stepresult.FieldSkippedDuplicates:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedDuplicates(v)
		return nil
	}
	return fmt.Errorf("unknown StepResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepResultMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, stepresult.FieldPosition)
	}
	if m.addattempt_number != nil {
		fields = append(fields, stepresult.FieldAttemptNumber)
	}
	if m.addchildren_spawned != nil {
		fields = append(fields, stepresult.FieldChildrenSpawned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepresult.FieldPosition:
		return m.AddedPosition()
	case stepresult.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case stepresult.FieldChildrenSpawned:
		return m.AddedChildrenSpawned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepresult.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case stepresult.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case stepresult.FieldChildrenSpawned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChildrenSpawned(v)
		return nil
	}
	return fmt.Errorf("unknown StepResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stepresult.FieldInputPayload) {
		fields = append(fields, stepresult.FieldInputPayload)
	}
	if m.FieldCleared(stepresult.FieldOutputPayload) {
		fields = append(fields, stepresult.FieldOutputPayload)
	}
	if m.FieldCleared(stepresult.FieldProviderAttempts) {
		fields = append(fields, stepresult.FieldProviderAttempts)
	}
	if m.FieldCleared(stepresult.FieldErrorMessage) {
		fields = append(fields, stepresult.FieldErrorMessage)
	}
	if m.FieldCleared(stepresult.FieldSkipReason) {
		fields = append(fields, stepresult.FieldSkipReason)
	}
	if m.FieldCleared(stepresult.FieldChildrenSpawned) {
		fields = append(fields, stepresult.FieldChildrenSpawned)
	}
	if m.FieldCleared(stepresult.FieldSkippedDuplicates) {
		fields = append(fields, stepresult.FieldSkippedDuplicates)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepResultMutation) ClearField(name string) error {
	switch name {
	case stepresult.FieldInputPayload:
		m.ClearInputPayload()
		return nil
	case stepresult.FieldOutputPayload:
		m.ClearOutputPayload()
		return nil
	case stepresult.FieldProviderAttempts:
		m.ClearProviderAttempts()
		return nil
	case stepresult.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stepresult.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case stepresult.FieldChildrenSpawned:
		m.ClearChildrenSpawned()
		return nil
	case stepresult.FieldSkippedDuplicates:
		m.ClearSkippedDuplicates()
		return nil
	}
	return fmt.Errorf("unknown StepResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepResultMutation) ResetField(name string) error {
	switch name {
	case stepresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stepresult.FieldOrgID:
		m.ResetOrgID()
		return nil
	case stepresult.FieldPosition:
		m.ResetPosition()
		return nil
	case stepresult.FieldOperationID:
		m.ResetOperationID()
		return nil
	case stepresult.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case stepresult.FieldStatus:
		m.ResetStatus()
		return nil
	case stepresult.FieldInputPayload:
		m.ResetInputPayload()
		return nil
	case stepresult.FieldOutputPayload:
		m.ResetOutputPayload()
		return nil
	case stepresult.FieldProviderAttempts:
		m.ResetProviderAttempts()
		return nil
	case stepresult.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stepresult.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case stepresult.FieldChildrenSpawned:
		m.ResetChildrenSpawned()
		return nil
	case stepresult.FieldSkippedDuplicates:
		m.ResetSkippedDuplicates()
		return nil
	}
	return fmt.Errorf("unknown StepResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, stepresult.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stepresult.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, stepresult.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepResultMutation) EdgeCleared(name string) bool {
	switch name {
	case stepresult.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepResultMutation) ClearEdge(name string) error {
	switch name {
	case stepresult.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown StepResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepResultMutation) ResetEdge(name string) error {
	switch name {
	case stepresult.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown StepResult edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	company_id       *string
	blueprint_id     *string
	entities         *[]map[string]interface{}
	appendentities   []map[string]interface{}
	status           *submission.Status
	max_depth        *int
	addmax_depth     *int
	cancel_requested *bool
	clearedFields    map[string]struct{}
	org              *string
	clearedorg       bool
	runs             map[string]struct{}
	removedruns      map[string]struct{}
	clearedruns      bool
	done             bool
	oldValue         func(context.Context) (*Submission, error)
	predicates       []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id string) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Submission entities.
func (m *SubmissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubmissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubmissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubmissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrgID sets the "org_id" field.
func (m *SubmissionMutation) SetOrgID(s string) {
	m.org = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *SubmissionMutation) OrgID() (r string, exists bool) {
	v := m.org
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *SubmissionMutation) ResetOrgID() {
	m.org = nil
}

// SetCompanyID sets the "company_id" field.
func (m *SubmissionMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *SubmissionMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *SubmissionMutation) ClearCompanyID() {
	m.company_id = nil
	m.clearedFields[submission.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *SubmissionMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[submission.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *SubmissionMutation) ResetCompanyID() {
	m.company_id = nil
	delete(m.clearedFields, submission.FieldCompanyID)
}

// SetBlueprintID sets the "blueprint_id" field.
func (m *SubmissionMutation) SetBlueprintID(s string) {
	m.blueprint_id = &s
}

// BlueprintID returns the value of the "blueprint_id" field in the mutation.
func (m *SubmissionMutation) BlueprintID() (r string, exists bool) {
	v := m.blueprint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintID returns the old "blueprint_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldBlueprintID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintID: %w", err)
	}
	return oldValue.BlueprintID, nil
}

// ResetBlueprintID resets all changes to the "blueprint_id" field.
func (m *SubmissionMutation) ResetBlueprintID() {
	m.blueprint_id = nil
}

// SetEntities sets the "entities" field.
func (m *SubmissionMutation) SetEntities(value []map[string]interface{}) {
	m.entities = &value
	m.appendentities = nil
}

// Entities returns the value of the "entities" field in the mutation.
func (m *SubmissionMutation) Entities() (r []map[string]interface{}, exists bool) {
	v := m.entities
	if v == nil {
		return
	}
	return *v, true
}

// OldEntities returns the old "entities" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldEntities(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntities: %w", err)
	}
	return oldValue.Entities, nil
}

// AppendEntities adds value to the "entities" field.
func (m *SubmissionMutation) AppendEntities(value []map[string]interface{}) {
	m.appendentities = append(m.appendentities, value...)
}

// AppendedEntities returns the list of values that were appended to the "entities" field in this mutation.
func (m *SubmissionMutation) AppendedEntities() ([]map[string]interface{}, bool) {
	if len(m.appendentities) == 0 {
		return nil, false
	}
	return m.appendentities, true
}

// ResetEntities resets all changes to the "entities" field.
func (m *SubmissionMutation) ResetEntities() {
	m.entities = nil
	m.appendentities = nil
}

// SetStatus sets the "status" field.
func (m *SubmissionMutation) SetStatus(s submission.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubmissionMutation) Status() (r submission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldStatus(ctx context.Context) (v submission.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubmissionMutation) ResetStatus() {
	m.status = nil
}

// SetMaxDepth sets the "max_depth" field.
func (m *SubmissionMutation) SetMaxDepth(i int) {
	m.max_depth = &i
	m.addmax_depth = nil
}

// MaxDepth returns the value of the "max_depth" field in the mutation.
func (m *SubmissionMutation) MaxDepth() (r int, exists bool) {
	v := m.max_depth
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDepth returns the old "max_depth" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldMaxDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDepth: %w", err)
	}
	return oldValue.MaxDepth, nil
}

// AddMaxDepth adds i to the "max_depth" field.
func (m *SubmissionMutation) AddMaxDepth(i int) {
	if m.addmax_depth != nil {
		*m.addmax_depth += i
	} else {
		m.addmax_depth = &i
	}
}

// AddedMaxDepth returns the value that was added to the "max_depth" field in this mutation.
func (m *SubmissionMutation) AddedMaxDepth() (r int, exists bool) {
	v := m.addmax_depth
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDepth resets all changes to the "max_depth" field.
func (m *SubmissionMutation) ResetMaxDepth() {
	m.max_depth = nil
	m.addmax_depth = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *SubmissionMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *SubmissionMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *SubmissionMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// ClearOrg clears the "org" edge to the Org entity.
func (m *SubmissionMutation) ClearOrg() {
	m.clearedorg = true
	m.clearedFields[submission.FieldOrgID] = struct{}{}
}

// OrgCleared reports if the "org" edge to the Org entity was cleared.
func (m *SubmissionMutation) OrgCleared() bool {
	return m.clearedorg
}

// OrgIDs returns the "org" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrgID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) OrgIDs() (ids []string) {
	if id := m.org; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrg resets all changes to the "org" edge.
func (m *SubmissionMutation) ResetOrg() {
	m.org = nil
	m.clearedorg = false
}

// AddRunIDs adds the "runs" edge to the PipelineRun entity by ids.
func (m *SubmissionMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the PipelineRun entity.
func (m *SubmissionMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the PipelineRun entity was cleared.
func (m *SubmissionMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the PipelineRun entity by IDs.
func (m *SubmissionMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the PipelineRun entity.
func (m *SubmissionMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *SubmissionMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *SubmissionMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, submission.FieldUpdatedAt)
	}
	if m.org != nil {
		fields = append(fields, submission.FieldOrgID)
	}
	if m.company_id != nil {
		fields = append(fields, submission.FieldCompanyID)
	}
	if m.blueprint_id != nil {
		fields = append(fields, submission.FieldBlueprintID)
	}
	if m.entities != nil {
		fields = append(fields, submission.FieldEntities)
	}
	if m.status != nil {
		fields = append(fields, submission.FieldStatus)
	}
	if m.max_depth != nil {
		fields = append(fields, submission.FieldMaxDepth)
	}
	if m.cancel_requested != nil {
		fields = append(fields, submission.FieldCancelRequested)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	case submission.FieldUpdatedAt:
		return m.UpdatedAt()
	case submission.FieldOrgID:
		return m.OrgID()
	case submission.FieldCompanyID:
		return m.CompanyID()
	case submission.FieldBlueprintID:
		return m.BlueprintID()
	case submission.FieldEntities:
		return m.Entities()
	case submission.FieldStatus:
		return m.Status()
	case submission.FieldMaxDepth:
		return m.MaxDepth()
	case submission.FieldCancelRequested:
		return m.CancelRequested()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case submission.FieldOrgID:
		return m.OldOrgID(ctx)
	case submission.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case submission.FieldBlueprintID:
		return m.OldBlueprintID(ctx)
	case submission.FieldEntities:
		return m.OldEntities(ctx)
	case submission.FieldStatus:
		return m.OldStatus(ctx)
	case submission.FieldMaxDepth:
		return m.OldMaxDepth(ctx)
	case submission.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case submission.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case submission.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case submission.FieldBlueprintID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintID(v)
		return nil
	case submission.FieldEntities:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntities(v)
		return nil
	case submission.FieldStatus:
		v, ok := value.(submission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case submission.FieldMaxDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDepth(v)
		return nil
	case submission.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addmax_depth != nil {
		fields = append(fields, submission.FieldMaxDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldMaxDepth:
		return m.AddedMaxDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submission.FieldMaxDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDepth(v)
		return nil
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldCompanyID) {
		fields = append(fields, submission.FieldCompanyID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case submission.FieldOrgID:
		m.ResetOrgID()
		return nil
	case submission.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case submission.FieldBlueprintID:
		m.ResetBlueprintID()
		return nil
	case submission.FieldEntities:
		m.ResetEntities()
		return nil
	case submission.FieldStatus:
		m.ResetStatus()
		return nil
	case submission.FieldMaxDepth:
		m.ResetMaxDepth()
		return nil
	case submission.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.org != nil {
		edges = append(edges, submission.EdgeOrg)
	}
	if m.runs != nil {
		edges = append(edges, submission.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeOrg:
		if id := m.org; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedruns != nil {
		edges = append(edges, submission.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedorg {
		edges = append(edges, submission.EdgeOrg)
	}
	if m.clearedruns {
		edges = append(edges, submission.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case submission.EdgeOrg:
		return m.clearedorg
	case submission.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	switch name {
	case submission.EdgeOrg:
		m.ClearOrg()
		return nil
	}
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	switch name {
	case submission.EdgeOrg:
		m.ResetOrg()
		return nil
	case submission.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Submission edge %s", name)
}
