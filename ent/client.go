// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"waterline.io/waterline/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"waterline.io/waterline/ent/blueprint"
	"waterline.io/waterline/ent/blueprintstep"
	"waterline.io/waterline/ent/companyentity"
	"waterline.io/waterline/ent/entitysnapshot"
	"waterline.io/waterline/ent/jobpostingentity"
	"waterline.io/waterline/ent/org"
	"waterline.io/waterline/ent/personentity"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/stepresult"
	"waterline.io/waterline/ent/submission"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Blueprint is the client for interacting with the Blueprint builders.
	Blueprint *BlueprintClient
	// BlueprintStep is the client for interacting with the BlueprintStep builders.
	BlueprintStep *BlueprintStepClient
	// CompanyEntity is the client for interacting with the CompanyEntity builders.
	CompanyEntity *CompanyEntityClient
	// EntitySnapshot is the client for interacting with the EntitySnapshot builders.
	EntitySnapshot *EntitySnapshotClient
	// JobPostingEntity is the client for interacting with the JobPostingEntity builders.
	JobPostingEntity *JobPostingEntityClient
	// Org is the client for interacting with the Org builders.
	Org *OrgClient
	// PersonEntity is the client for interacting with the PersonEntity builders.
	PersonEntity *PersonEntityClient
	// PipelineRun is the client for interacting with the PipelineRun builders.
	PipelineRun *PipelineRunClient
	// StepResult is the client for interacting with the StepResult builders.
	StepResult *StepResultClient
	// Submission is the client for interacting with the Submission builders.
	Submission *SubmissionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Blueprint = NewBlueprintClient(c.config)
	c.BlueprintStep = NewBlueprintStepClient(c.config)
	c.CompanyEntity = NewCompanyEntityClient(c.config)
	c.EntitySnapshot = NewEntitySnapshotClient(c.config)
	c.JobPostingEntity = NewJobPostingEntityClient(c.config)
	c.Org = NewOrgClient(c.config)
	c.PersonEntity = NewPersonEntityClient(c.config)
	c.PipelineRun = NewPipelineRunClient(c.config)
	c.StepResult = NewStepResultClient(c.config)
	c.Submission = NewSubmissionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Blueprint:        NewBlueprintClient(cfg),
		BlueprintStep:    NewBlueprintStepClient(cfg),
		CompanyEntity:    NewCompanyEntityClient(cfg),
		EntitySnapshot:   NewEntitySnapshotClient(cfg),
		JobPostingEntity: NewJobPostingEntityClient(cfg),
		Org:              NewOrgClient(cfg),
		PersonEntity:     NewPersonEntityClient(cfg),
		PipelineRun:      NewPipelineRunClient(cfg),
		StepResult:       NewStepResultClient(cfg),
		Submission:       NewSubmissionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Blueprint:        NewBlueprintClient(cfg),
		BlueprintStep:    NewBlueprintStepClient(cfg),
		CompanyEntity:    NewCompanyEntityClient(cfg),
		EntitySnapshot:   NewEntitySnapshotClient(cfg),
		JobPostingEntity: NewJobPostingEntityClient(cfg),
		Org:              NewOrgClient(cfg),
		PersonEntity:     NewPersonEntityClient(cfg),
		PipelineRun:      NewPipelineRunClient(cfg),
		StepResult:       NewStepResultClient(cfg),
		Submission:       NewSubmissionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Blueprint.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Blueprint, c.BlueprintStep, c.CompanyEntity, c.EntitySnapshot,
		c.JobPostingEntity, c.Org, c.PersonEntity, c.PipelineRun, c.StepResult,
		c.Submission,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Blueprint, c.BlueprintStep, c.CompanyEntity, c.EntitySnapshot,
		c.JobPostingEntity, c.Org, c.PersonEntity, c.PipelineRun, c.StepResult,
		c.Submission,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BlueprintMutation:
		return c.Blueprint.mutate(ctx, m)
	case *BlueprintStepMutation:
		return c.BlueprintStep.mutate(ctx, m)
	case *CompanyEntityMutation:
		return c.CompanyEntity.mutate(ctx, m)
	case *EntitySnapshotMutation:
		return c.EntitySnapshot.mutate(ctx, m)
	case *JobPostingEntityMutation:
		return c.JobPostingEntity.mutate(ctx, m)
	case *OrgMutation:
		return c.Org.mutate(ctx, m)
	case *PersonEntityMutation:
		return c.PersonEntity.mutate(ctx, m)
	case *PipelineRunMutation:
		return c.PipelineRun.mutate(ctx, m)
	case *StepResultMutation:
		return c.StepResult.mutate(ctx, m)
	case *SubmissionMutation:
		return c.Submission.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BlueprintClient is a client for the Blueprint schema.
type BlueprintClient struct {
	config
}

// NewBlueprintClient returns a client for the Blueprint from the given config.
func NewBlueprintClient(c config) *BlueprintClient {
	return &BlueprintClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprint.Hooks(f(g(h())))`.
func (c *BlueprintClient) Use(hooks ...Hook) {
	c.hooks.Blueprint = append(c.hooks.Blueprint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprint.Intercept(f(g(h())))`.
func (c *BlueprintClient) Intercept(interceptors ...Interceptor) {
	c.inters.Blueprint = append(c.inters.Blueprint, interceptors...)
}

// Create returns a builder for creating a Blueprint entity.
func (c *BlueprintClient) Create() *BlueprintCreate {
	mutation := newBlueprintMutation(c.config, OpCreate)
	return &BlueprintCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Blueprint entities.
func (c *BlueprintClient) CreateBulk(builders ...*BlueprintCreate) *BlueprintCreateBulk {
	return &BlueprintCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintClient) MapCreateBulk(slice any, setFunc func(*BlueprintCreate, int)) *BlueprintCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintCreateBulk{err: fmt.Errorf("calling to BlueprintClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Blueprint.
func (c *BlueprintClient) Update() *BlueprintUpdate {
	mutation := newBlueprintMutation(c.config, OpUpdate)
	return &BlueprintUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintClient) UpdateOne(_m *Blueprint) *BlueprintUpdateOne {
	mutation := newBlueprintMutation(c.config, OpUpdateOne, withBlueprint(_m))
	return &BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintClient) UpdateOneID(id string) *BlueprintUpdateOne {
	mutation := newBlueprintMutation(c.config, OpUpdateOne, withBlueprintID(id))
	return &BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Blueprint.
func (c *BlueprintClient) Delete() *BlueprintDelete {
	mutation := newBlueprintMutation(c.config, OpDelete)
	return &BlueprintDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintClient) DeleteOne(_m *Blueprint) *BlueprintDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintClient) DeleteOneID(id string) *BlueprintDeleteOne {
	builder := c.Delete().Where(blueprint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintDeleteOne{builder}
}

// Query returns a query builder for Blueprint.
func (c *BlueprintClient) Query() *BlueprintQuery {
	return &BlueprintQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprint},
		inters: c.Interceptors(),
	}
}

// Get returns a Blueprint entity by its id.
func (c *BlueprintClient) Get(ctx context.Context, id string) (*Blueprint, error) {
	return c.Query().Where(blueprint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintClient) GetX(ctx context.Context, id string) *Blueprint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrg queries the org edge of a Blueprint.
func (c *BlueprintClient) QueryOrg(_m *Blueprint) *OrgQuery {
	query := (&OrgClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprint.Table, blueprint.FieldID, id),
			sqlgraph.To(org.Table, org.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blueprint.OrgTable, blueprint.OrgColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a Blueprint.
func (c *BlueprintClient) QuerySteps(_m *Blueprint) *BlueprintStepQuery {
	query := (&BlueprintStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprint.Table, blueprint.FieldID, id),
			sqlgraph.To(blueprintstep.Table, blueprintstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blueprint.StepsTable, blueprint.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlueprintClient) Hooks() []Hook {
	return c.hooks.Blueprint
}

// Interceptors returns the client interceptors.
func (c *BlueprintClient) Interceptors() []Interceptor {
	return c.inters.Blueprint
}

func (c *BlueprintClient) mutate(ctx context.Context, m *BlueprintMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Blueprint mutation op: %q", m.Op())
	}
}

// BlueprintStepClient is a client for the BlueprintStep schema.
type BlueprintStepClient struct {
	config
}

// NewBlueprintStepClient returns a client for the BlueprintStep from the given config.
func NewBlueprintStepClient(c config) *BlueprintStepClient {
	return &BlueprintStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprintstep.Hooks(f(g(h())))`.
func (c *BlueprintStepClient) Use(hooks ...Hook) {
	c.hooks.BlueprintStep = append(c.hooks.BlueprintStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprintstep.Intercept(f(g(h())))`.
func (c *BlueprintStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlueprintStep = append(c.inters.BlueprintStep, interceptors...)
}

// Create returns a builder for creating a BlueprintStep entity.
func (c *BlueprintStepClient) Create() *BlueprintStepCreate {
	mutation := newBlueprintStepMutation(c.config, OpCreate)
	return &BlueprintStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlueprintStep entities.
func (c *BlueprintStepClient) CreateBulk(builders ...*BlueprintStepCreate) *BlueprintStepCreateBulk {
	return &BlueprintStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintStepClient) MapCreateBulk(slice any, setFunc func(*BlueprintStepCreate, int)) *BlueprintStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintStepCreateBulk{err: fmt.Errorf("calling to BlueprintStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlueprintStep.
func (c *BlueprintStepClient) Update() *BlueprintStepUpdate {
	mutation := newBlueprintStepMutation(c.config, OpUpdate)
	return &BlueprintStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintStepClient) UpdateOne(_m *BlueprintStep) *BlueprintStepUpdateOne {
	mutation := newBlueprintStepMutation(c.config, OpUpdateOne, withBlueprintStep(_m))
	return &BlueprintStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintStepClient) UpdateOneID(id string) *BlueprintStepUpdateOne {
	mutation := newBlueprintStepMutation(c.config, OpUpdateOne, withBlueprintStepID(id))
	return &BlueprintStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlueprintStep.
func (c *BlueprintStepClient) Delete() *BlueprintStepDelete {
	mutation := newBlueprintStepMutation(c.config, OpDelete)
	return &BlueprintStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintStepClient) DeleteOne(_m *BlueprintStep) *BlueprintStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintStepClient) DeleteOneID(id string) *BlueprintStepDeleteOne {
	builder := c.Delete().Where(blueprintstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintStepDeleteOne{builder}
}

// Query returns a query builder for BlueprintStep.
func (c *BlueprintStepClient) Query() *BlueprintStepQuery {
	return &BlueprintStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprintStep},
		inters: c.Interceptors(),
	}
}

// Get returns a BlueprintStep entity by its id.
func (c *BlueprintStepClient) Get(ctx context.Context, id string) (*BlueprintStep, error) {
	return c.Query().Where(blueprintstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintStepClient) GetX(ctx context.Context, id string) *BlueprintStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlueprint queries the blueprint edge of a BlueprintStep.
func (c *BlueprintStepClient) QueryBlueprint(_m *BlueprintStep) *BlueprintQuery {
	query := (&BlueprintClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprintstep.Table, blueprintstep.FieldID, id),
			sqlgraph.To(blueprint.Table, blueprint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blueprintstep.BlueprintTable, blueprintstep.BlueprintColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlueprintStepClient) Hooks() []Hook {
	return c.hooks.BlueprintStep
}

// Interceptors returns the client interceptors.
func (c *BlueprintStepClient) Interceptors() []Interceptor {
	return c.inters.BlueprintStep
}

func (c *BlueprintStepClient) mutate(ctx context.Context, m *BlueprintStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlueprintStep mutation op: %q", m.Op())
	}
}

// CompanyEntityClient is a client for the CompanyEntity schema.
type CompanyEntityClient struct {
	config
}

// NewCompanyEntityClient returns a client for the CompanyEntity from the given config.
func NewCompanyEntityClient(c config) *CompanyEntityClient {
	return &CompanyEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `companyentity.Hooks(f(g(h())))`.
func (c *CompanyEntityClient) Use(hooks ...Hook) {
	c.hooks.CompanyEntity = append(c.hooks.CompanyEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `companyentity.Intercept(f(g(h())))`.
func (c *CompanyEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompanyEntity = append(c.inters.CompanyEntity, interceptors...)
}

// Create returns a builder for creating a CompanyEntity entity.
func (c *CompanyEntityClient) Create() *CompanyEntityCreate {
	mutation := newCompanyEntityMutation(c.config, OpCreate)
	return &CompanyEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompanyEntity entities.
func (c *CompanyEntityClient) CreateBulk(builders ...*CompanyEntityCreate) *CompanyEntityCreateBulk {
	return &CompanyEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyEntityClient) MapCreateBulk(slice any, setFunc func(*CompanyEntityCreate, int)) *CompanyEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyEntityCreateBulk{err: fmt.Errorf("calling to CompanyEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompanyEntity.
func (c *CompanyEntityClient) Update() *CompanyEntityUpdate {
	mutation := newCompanyEntityMutation(c.config, OpUpdate)
	return &CompanyEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyEntityClient) UpdateOne(_m *CompanyEntity) *CompanyEntityUpdateOne {
	mutation := newCompanyEntityMutation(c.config, OpUpdateOne, withCompanyEntity(_m))
	return &CompanyEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyEntityClient) UpdateOneID(id string) *CompanyEntityUpdateOne {
	mutation := newCompanyEntityMutation(c.config, OpUpdateOne, withCompanyEntityID(id))
	return &CompanyEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompanyEntity.
func (c *CompanyEntityClient) Delete() *CompanyEntityDelete {
	mutation := newCompanyEntityMutation(c.config, OpDelete)
	return &CompanyEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyEntityClient) DeleteOne(_m *CompanyEntity) *CompanyEntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyEntityClient) DeleteOneID(id string) *CompanyEntityDeleteOne {
	builder := c.Delete().Where(companyentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyEntityDeleteOne{builder}
}

// Query returns a query builder for CompanyEntity.
func (c *CompanyEntityClient) Query() *CompanyEntityQuery {
	return &CompanyEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompanyEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a CompanyEntity entity by its id.
func (c *CompanyEntityClient) Get(ctx context.Context, id string) (*CompanyEntity, error) {
	return c.Query().Where(companyentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyEntityClient) GetX(ctx context.Context, id string) *CompanyEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompanyEntityClient) Hooks() []Hook {
	return c.hooks.CompanyEntity
}

// Interceptors returns the client interceptors.
func (c *CompanyEntityClient) Interceptors() []Interceptor {
	return c.inters.CompanyEntity
}

func (c *CompanyEntityClient) mutate(ctx context.Context, m *CompanyEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompanyEntity mutation op: %q", m.Op())
	}
}

// EntitySnapshotClient is a client for the EntitySnapshot schema.
type EntitySnapshotClient struct {
	config
}

// NewEntitySnapshotClient returns a client for the EntitySnapshot from the given config.
func NewEntitySnapshotClient(c config) *EntitySnapshotClient {
	return &EntitySnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitysnapshot.Hooks(f(g(h())))`.
func (c *EntitySnapshotClient) Use(hooks ...Hook) {
	c.hooks.EntitySnapshot = append(c.hooks.EntitySnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitysnapshot.Intercept(f(g(h())))`.
func (c *EntitySnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntitySnapshot = append(c.inters.EntitySnapshot, interceptors...)
}

// Create returns a builder for creating a EntitySnapshot entity.
func (c *EntitySnapshotClient) Create() *EntitySnapshotCreate {
	mutation := newEntitySnapshotMutation(c.config, OpCreate)
	return &EntitySnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntitySnapshot entities.
func (c *EntitySnapshotClient) CreateBulk(builders ...*EntitySnapshotCreate) *EntitySnapshotCreateBulk {
	return &EntitySnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntitySnapshotClient) MapCreateBulk(slice any, setFunc func(*EntitySnapshotCreate, int)) *EntitySnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntitySnapshotCreateBulk{err: fmt.Errorf("calling to EntitySnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntitySnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntitySnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntitySnapshot.
func (c *EntitySnapshotClient) Update() *EntitySnapshotUpdate {
	mutation := newEntitySnapshotMutation(c.config, OpUpdate)
	return &EntitySnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntitySnapshotClient) UpdateOne(_m *EntitySnapshot) *EntitySnapshotUpdateOne {
	mutation := newEntitySnapshotMutation(c.config, OpUpdateOne, withEntitySnapshot(_m))
	return &EntitySnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntitySnapshotClient) UpdateOneID(id string) *EntitySnapshotUpdateOne {
	mutation := newEntitySnapshotMutation(c.config, OpUpdateOne, withEntitySnapshotID(id))
	return &EntitySnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntitySnapshot.
func (c *EntitySnapshotClient) Delete() *EntitySnapshotDelete {
	mutation := newEntitySnapshotMutation(c.config, OpDelete)
	return &EntitySnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntitySnapshotClient) DeleteOne(_m *EntitySnapshot) *EntitySnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntitySnapshotClient) DeleteOneID(id string) *EntitySnapshotDeleteOne {
	builder := c.Delete().Where(entitysnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntitySnapshotDeleteOne{builder}
}

// Query returns a query builder for EntitySnapshot.
func (c *EntitySnapshotClient) Query() *EntitySnapshotQuery {
	return &EntitySnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntitySnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a EntitySnapshot entity by its id.
func (c *EntitySnapshotClient) Get(ctx context.Context, id string) (*EntitySnapshot, error) {
	return c.Query().Where(entitysnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntitySnapshotClient) GetX(ctx context.Context, id string) *EntitySnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntitySnapshotClient) Hooks() []Hook {
	return c.hooks.EntitySnapshot
}

// Interceptors returns the client interceptors.
func (c *EntitySnapshotClient) Interceptors() []Interceptor {
	return c.inters.EntitySnapshot
}

func (c *EntitySnapshotClient) mutate(ctx context.Context, m *EntitySnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntitySnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntitySnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntitySnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntitySnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntitySnapshot mutation op: %q", m.Op())
	}
}

// JobPostingEntityClient is a client for the JobPostingEntity schema.
type JobPostingEntityClient struct {
	config
}

// NewJobPostingEntityClient returns a client for the JobPostingEntity from the given config.
func NewJobPostingEntityClient(c config) *JobPostingEntityClient {
	return &JobPostingEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobpostingentity.Hooks(f(g(h())))`.
func (c *JobPostingEntityClient) Use(hooks ...Hook) {
	c.hooks.JobPostingEntity = append(c.hooks.JobPostingEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobpostingentity.Intercept(f(g(h())))`.
func (c *JobPostingEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobPostingEntity = append(c.inters.JobPostingEntity, interceptors...)
}

// Create returns a builder for creating a JobPostingEntity entity.
func (c *JobPostingEntityClient) Create() *JobPostingEntityCreate {
	mutation := newJobPostingEntityMutation(c.config, OpCreate)
	return &JobPostingEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobPostingEntity entities.
func (c *JobPostingEntityClient) CreateBulk(builders ...*JobPostingEntityCreate) *JobPostingEntityCreateBulk {
	return &JobPostingEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobPostingEntityClient) MapCreateBulk(slice any, setFunc func(*JobPostingEntityCreate, int)) *JobPostingEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobPostingEntityCreateBulk{err: fmt.Errorf("calling to JobPostingEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobPostingEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobPostingEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobPostingEntity.
func (c *JobPostingEntityClient) Update() *JobPostingEntityUpdate {
	mutation := newJobPostingEntityMutation(c.config, OpUpdate)
	return &JobPostingEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobPostingEntityClient) UpdateOne(_m *JobPostingEntity) *JobPostingEntityUpdateOne {
	mutation := newJobPostingEntityMutation(c.config, OpUpdateOne, withJobPostingEntity(_m))
	return &JobPostingEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobPostingEntityClient) UpdateOneID(id string) *JobPostingEntityUpdateOne {
	mutation := newJobPostingEntityMutation(c.config, OpUpdateOne, withJobPostingEntityID(id))
	return &JobPostingEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobPostingEntity.
func (c *JobPostingEntityClient) Delete() *JobPostingEntityDelete {
	mutation := newJobPostingEntityMutation(c.config, OpDelete)
	return &JobPostingEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobPostingEntityClient) DeleteOne(_m *JobPostingEntity) *JobPostingEntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobPostingEntityClient) DeleteOneID(id string) *JobPostingEntityDeleteOne {
	builder := c.Delete().Where(jobpostingentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobPostingEntityDeleteOne{builder}
}

// Query returns a query builder for JobPostingEntity.
func (c *JobPostingEntityClient) Query() *JobPostingEntityQuery {
	return &JobPostingEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobPostingEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a JobPostingEntity entity by its id.
func (c *JobPostingEntityClient) Get(ctx context.Context, id string) (*JobPostingEntity, error) {
	return c.Query().Where(jobpostingentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobPostingEntityClient) GetX(ctx context.Context, id string) *JobPostingEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobPostingEntityClient) Hooks() []Hook {
	return c.hooks.JobPostingEntity
}

// Interceptors returns the client interceptors.
func (c *JobPostingEntityClient) Interceptors() []Interceptor {
	return c.inters.JobPostingEntity
}

func (c *JobPostingEntityClient) mutate(ctx context.Context, m *JobPostingEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobPostingEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobPostingEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobPostingEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobPostingEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobPostingEntity mutation op: %q", m.Op())
	}
}

// OrgClient is a client for the Org schema.
type OrgClient struct {
	config
}

// NewOrgClient returns a client for the Org from the given config.
func NewOrgClient(c config) *OrgClient {
	return &OrgClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `org.Hooks(f(g(h())))`.
func (c *OrgClient) Use(hooks ...Hook) {
	c.hooks.Org = append(c.hooks.Org, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `org.Intercept(f(g(h())))`.
func (c *OrgClient) Intercept(interceptors ...Interceptor) {
	c.inters.Org = append(c.inters.Org, interceptors...)
}

// Create returns a builder for creating a Org entity.
func (c *OrgClient) Create() *OrgCreate {
	mutation := newOrgMutation(c.config, OpCreate)
	return &OrgCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Org entities.
func (c *OrgClient) CreateBulk(builders ...*OrgCreate) *OrgCreateBulk {
	return &OrgCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrgClient) MapCreateBulk(slice any, setFunc func(*OrgCreate, int)) *OrgCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrgCreateBulk{err: fmt.Errorf("calling to OrgClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrgCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrgCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Org.
func (c *OrgClient) Update() *OrgUpdate {
	mutation := newOrgMutation(c.config, OpUpdate)
	return &OrgUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrgClient) UpdateOne(_m *Org) *OrgUpdateOne {
	mutation := newOrgMutation(c.config, OpUpdateOne, withOrg(_m))
	return &OrgUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrgClient) UpdateOneID(id string) *OrgUpdateOne {
	mutation := newOrgMutation(c.config, OpUpdateOne, withOrgID(id))
	return &OrgUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Org.
func (c *OrgClient) Delete() *OrgDelete {
	mutation := newOrgMutation(c.config, OpDelete)
	return &OrgDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrgClient) DeleteOne(_m *Org) *OrgDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrgClient) DeleteOneID(id string) *OrgDeleteOne {
	builder := c.Delete().Where(org.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrgDeleteOne{builder}
}

// Query returns a query builder for Org.
func (c *OrgClient) Query() *OrgQuery {
	return &OrgQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrg},
		inters: c.Interceptors(),
	}
}

// Get returns a Org entity by its id.
func (c *OrgClient) Get(ctx context.Context, id string) (*Org, error) {
	return c.Query().Where(org.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrgClient) GetX(ctx context.Context, id string) *Org {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlueprints queries the blueprints edge of a Org.
func (c *OrgClient) QueryBlueprints(_m *Org) *BlueprintQuery {
	query := (&BlueprintClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(org.Table, org.FieldID, id),
			sqlgraph.To(blueprint.Table, blueprint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, org.BlueprintsTable, org.BlueprintsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmissions queries the submissions edge of a Org.
func (c *OrgClient) QuerySubmissions(_m *Org) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(org.Table, org.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, org.SubmissionsTable, org.SubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrgClient) Hooks() []Hook {
	return c.hooks.Org
}

// Interceptors returns the client interceptors.
func (c *OrgClient) Interceptors() []Interceptor {
	return c.inters.Org
}

func (c *OrgClient) mutate(ctx context.Context, m *OrgMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrgCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrgUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrgUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrgDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Org mutation op: %q", m.Op())
	}
}

// PersonEntityClient is a client for the PersonEntity schema.
type PersonEntityClient struct {
	config
}

// NewPersonEntityClient returns a client for the PersonEntity from the given config.
func NewPersonEntityClient(c config) *PersonEntityClient {
	return &PersonEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `personentity.Hooks(f(g(h())))`.
func (c *PersonEntityClient) Use(hooks ...Hook) {
	c.hooks.PersonEntity = append(c.hooks.PersonEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `personentity.Intercept(f(g(h())))`.
func (c *PersonEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.PersonEntity = append(c.inters.PersonEntity, interceptors...)
}

// Create returns a builder for creating a PersonEntity entity.
func (c *PersonEntityClient) Create() *PersonEntityCreate {
	mutation := newPersonEntityMutation(c.config, OpCreate)
	return &PersonEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PersonEntity entities.
func (c *PersonEntityClient) CreateBulk(builders ...*PersonEntityCreate) *PersonEntityCreateBulk {
	return &PersonEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonEntityClient) MapCreateBulk(slice any, setFunc func(*PersonEntityCreate, int)) *PersonEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonEntityCreateBulk{err: fmt.Errorf("calling to PersonEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PersonEntity.
func (c *PersonEntityClient) Update() *PersonEntityUpdate {
	mutation := newPersonEntityMutation(c.config, OpUpdate)
	return &PersonEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonEntityClient) UpdateOne(_m *PersonEntity) *PersonEntityUpdateOne {
	mutation := newPersonEntityMutation(c.config, OpUpdateOne, withPersonEntity(_m))
	return &PersonEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonEntityClient) UpdateOneID(id string) *PersonEntityUpdateOne {
	mutation := newPersonEntityMutation(c.config, OpUpdateOne, withPersonEntityID(id))
	return &PersonEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PersonEntity.
func (c *PersonEntityClient) Delete() *PersonEntityDelete {
	mutation := newPersonEntityMutation(c.config, OpDelete)
	return &PersonEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonEntityClient) DeleteOne(_m *PersonEntity) *PersonEntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonEntityClient) DeleteOneID(id string) *PersonEntityDeleteOne {
	builder := c.Delete().Where(personentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonEntityDeleteOne{builder}
}

// Query returns a query builder for PersonEntity.
func (c *PersonEntityClient) Query() *PersonEntityQuery {
	return &PersonEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePersonEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a PersonEntity entity by its id.
func (c *PersonEntityClient) Get(ctx context.Context, id string) (*PersonEntity, error) {
	return c.Query().Where(personentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonEntityClient) GetX(ctx context.Context, id string) *PersonEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PersonEntityClient) Hooks() []Hook {
	return c.hooks.PersonEntity
}

// Interceptors returns the client interceptors.
func (c *PersonEntityClient) Interceptors() []Interceptor {
	return c.inters.PersonEntity
}

func (c *PersonEntityClient) mutate(ctx context.Context, m *PersonEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PersonEntity mutation op: %q", m.Op())
	}
}

// PipelineRunClient is a client for the PipelineRun schema.
type PipelineRunClient struct {
	config
}

// NewPipelineRunClient returns a client for the PipelineRun from the given config.
func NewPipelineRunClient(c config) *PipelineRunClient {
	return &PipelineRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinerun.Hooks(f(g(h())))`.
func (c *PipelineRunClient) Use(hooks ...Hook) {
	c.hooks.PipelineRun = append(c.hooks.PipelineRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinerun.Intercept(f(g(h())))`.
func (c *PipelineRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineRun = append(c.inters.PipelineRun, interceptors...)
}

// Create returns a builder for creating a PipelineRun entity.
func (c *PipelineRunClient) Create() *PipelineRunCreate {
	mutation := newPipelineRunMutation(c.config, OpCreate)
	return &PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineRun entities.
func (c *PipelineRunClient) CreateBulk(builders ...*PipelineRunCreate) *PipelineRunCreateBulk {
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineRunClient) MapCreateBulk(slice any, setFunc func(*PipelineRunCreate, int)) *PipelineRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineRunCreateBulk{err: fmt.Errorf("calling to PipelineRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineRun.
func (c *PipelineRunClient) Update() *PipelineRunUpdate {
	mutation := newPipelineRunMutation(c.config, OpUpdate)
	return &PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineRunClient) UpdateOne(_m *PipelineRun) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRun(_m))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineRunClient) UpdateOneID(id string) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRunID(id))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineRun.
func (c *PipelineRunClient) Delete() *PipelineRunDelete {
	mutation := newPipelineRunMutation(c.config, OpDelete)
	return &PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineRunClient) DeleteOne(_m *PipelineRun) *PipelineRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineRunClient) DeleteOneID(id string) *PipelineRunDeleteOne {
	builder := c.Delete().Where(pipelinerun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineRunDeleteOne{builder}
}

// Query returns a query builder for PipelineRun.
func (c *PipelineRunClient) Query() *PipelineRunQuery {
	return &PipelineRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineRun entity by its id.
func (c *PipelineRunClient) Get(ctx context.Context, id string) (*PipelineRun, error) {
	return c.Query().Where(pipelinerun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineRunClient) GetX(ctx context.Context, id string) *PipelineRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmission queries the submission edge of a PipelineRun.
func (c *PipelineRunClient) QuerySubmission(_m *PipelineRun) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinerun.Table, pipelinerun.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinerun.SubmissionTable, pipelinerun.SubmissionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStepResults queries the step_results edge of a PipelineRun.
func (c *PipelineRunClient) QueryStepResults(_m *PipelineRun) *StepResultQuery {
	query := (&StepResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinerun.Table, pipelinerun.FieldID, id),
			sqlgraph.To(stepresult.Table, stepresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipelinerun.StepResultsTable, pipelinerun.StepResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineRunClient) Hooks() []Hook {
	return c.hooks.PipelineRun
}

// Interceptors returns the client interceptors.
func (c *PipelineRunClient) Interceptors() []Interceptor {
	return c.inters.PipelineRun
}

func (c *PipelineRunClient) mutate(ctx context.Context, m *PipelineRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineRun mutation op: %q", m.Op())
	}
}

// StepResultClient is a client for the StepResult schema.
type StepResultClient struct {
	config
}

// NewStepResultClient returns a client for the StepResult from the given config.
func NewStepResultClient(c config) *StepResultClient {
	return &StepResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepresult.Hooks(f(g(h())))`.
func (c *StepResultClient) Use(hooks ...Hook) {
	c.hooks.StepResult = append(c.hooks.StepResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepresult.Intercept(f(g(h())))`.
func (c *StepResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepResult = append(c.inters.StepResult, interceptors...)
}

// Create returns a builder for creating a StepResult entity.
func (c *StepResultClient) Create() *StepResultCreate {
	mutation := newStepResultMutation(c.config, OpCreate)
	return &StepResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepResult entities.
func (c *StepResultClient) CreateBulk(builders ...*StepResultCreate) *StepResultCreateBulk {
	return &StepResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepResultClient) MapCreateBulk(slice any, setFunc func(*StepResultCreate, int)) *StepResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepResultCreateBulk{err: fmt.Errorf("calling to StepResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepResult.
func (c *StepResultClient) Update() *StepResultUpdate {
	mutation := newStepResultMutation(c.config, OpUpdate)
	return &StepResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepResultClient) UpdateOne(_m *StepResult) *StepResultUpdateOne {
	mutation := newStepResultMutation(c.config, OpUpdateOne, withStepResult(_m))
	return &StepResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepResultClient) UpdateOneID(id string) *StepResultUpdateOne {
	mutation := newStepResultMutation(c.config, OpUpdateOne, withStepResultID(id))
	return &StepResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepResult.
func (c *StepResultClient) Delete() *StepResultDelete {
	mutation := newStepResultMutation(c.config, OpDelete)
	return &StepResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepResultClient) DeleteOne(_m *StepResult) *StepResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepResultClient) DeleteOneID(id string) *StepResultDeleteOne {
	builder := c.Delete().Where(stepresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepResultDeleteOne{builder}
}

// Query returns a query builder for StepResult.
func (c *StepResultClient) Query() *StepResultQuery {
	return &StepResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepResult},
		inters: c.Interceptors(),
	}
}

// Get returns a StepResult entity by its id.
func (c *StepResultClient) Get(ctx context.Context, id string) (*StepResult, error) {
	return c.Query().Where(stepresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepResultClient) GetX(ctx context.Context, id string) *StepResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a StepResult.
func (c *StepResultClient) QueryRun(_m *StepResult) *PipelineRunQuery {
	query := (&PipelineRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepresult.Table, stepresult.FieldID, id),
			sqlgraph.To(pipelinerun.Table, pipelinerun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepresult.RunTable, stepresult.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepResultClient) Hooks() []Hook {
	return c.hooks.StepResult
}

// Interceptors returns the client interceptors.
func (c *StepResultClient) Interceptors() []Interceptor {
	return c.inters.StepResult
}

func (c *StepResultClient) mutate(ctx context.Context, m *StepResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepResult mutation op: %q", m.Op())
	}
}

// SubmissionClient is a client for the Submission schema.
type SubmissionClient struct {
	config
}

// NewSubmissionClient returns a client for the Submission from the given config.
func NewSubmissionClient(c config) *SubmissionClient {
	return &SubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submission.Hooks(f(g(h())))`.
func (c *SubmissionClient) Use(hooks ...Hook) {
	c.hooks.Submission = append(c.hooks.Submission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submission.Intercept(f(g(h())))`.
func (c *SubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Submission = append(c.inters.Submission, interceptors...)
}

// Create returns a builder for creating a Submission entity.
func (c *SubmissionClient) Create() *SubmissionCreate {
	mutation := newSubmissionMutation(c.config, OpCreate)
	return &SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Submission entities.
func (c *SubmissionClient) CreateBulk(builders ...*SubmissionCreate) *SubmissionCreateBulk {
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionClient) MapCreateBulk(slice any, setFunc func(*SubmissionCreate, int)) *SubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionCreateBulk{err: fmt.Errorf("calling to SubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Submission.
func (c *SubmissionClient) Update() *SubmissionUpdate {
	mutation := newSubmissionMutation(c.config, OpUpdate)
	return &SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionClient) UpdateOne(_m *Submission) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmission(_m))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionClient) UpdateOneID(id string) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmissionID(id))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Submission.
func (c *SubmissionClient) Delete() *SubmissionDelete {
	mutation := newSubmissionMutation(c.config, OpDelete)
	return &SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionClient) DeleteOne(_m *Submission) *SubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionClient) DeleteOneID(id string) *SubmissionDeleteOne {
	builder := c.Delete().Where(submission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionDeleteOne{builder}
}

// Query returns a query builder for Submission.
func (c *SubmissionClient) Query() *SubmissionQuery {
	return &SubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a Submission entity by its id.
func (c *SubmissionClient) Get(ctx context.Context, id string) (*Submission, error) {
	return c.Query().Where(submission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionClient) GetX(ctx context.Context, id string) *Submission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrg queries the org edge of a Submission.
func (c *SubmissionClient) QueryOrg(_m *Submission) *OrgQuery {
	query := (&OrgClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(org.Table, org.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submission.OrgTable, submission.OrgColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a Submission.
func (c *SubmissionClient) QueryRuns(_m *Submission) *PipelineRunQuery {
	query := (&PipelineRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(pipelinerun.Table, pipelinerun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submission.RunsTable, submission.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmissionClient) Hooks() []Hook {
	return c.hooks.Submission
}

// Interceptors returns the client interceptors.
func (c *SubmissionClient) Interceptors() []Interceptor {
	return c.inters.Submission
}

func (c *SubmissionClient) mutate(ctx context.Context, m *SubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Submission mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Blueprint, BlueprintStep, CompanyEntity, EntitySnapshot, JobPostingEntity, Org,
		PersonEntity, PipelineRun, StepResult, Submission []ent.Hook
	}
	inters struct {
		Blueprint, BlueprintStep, CompanyEntity, EntitySnapshot, JobPostingEntity, Org,
		PersonEntity, PipelineRun, StepResult, Submission []ent.Interceptor
	}
)
