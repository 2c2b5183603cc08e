// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"waterline.io/waterline/ent/blueprint"
	"waterline.io/waterline/ent/blueprintstep"
	"waterline.io/waterline/ent/org"
	"waterline.io/waterline/ent/predicate"
)

// BlueprintQuery is the builder for querying Blueprint entities.
type BlueprintQuery struct {
	config
	ctx        *QueryContext
	order      []blueprint.OrderOption
	inters     []Interceptor
	predicates []predicate.Blueprint
	withOrg    *OrgQuery
	withSteps  *BlueprintStepQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BlueprintQuery builder.
func (_q *BlueprintQuery) Where(ps ...predicate.Blueprint) *BlueprintQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BlueprintQuery) Limit(limit int) *BlueprintQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BlueprintQuery) Offset(offset int) *BlueprintQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BlueprintQuery) Unique(unique bool) *BlueprintQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BlueprintQuery) Order(o ...blueprint.OrderOption) *BlueprintQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOrg chains the current query on the "org" edge.
func (_q *BlueprintQuery) QueryOrg() *OrgQuery {
	query := (&OrgClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprint.Table, blueprint.FieldID, selector),
			sqlgraph.To(org.Table, org.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blueprint.OrgTable, blueprint.OrgColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySteps chains the current query on the "steps" edge.
func (_q *BlueprintQuery) QuerySteps() *BlueprintStepQuery {
	query := (&BlueprintStepClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprint.Table, blueprint.FieldID, selector),
			sqlgraph.To(blueprintstep.Table, blueprintstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blueprint.StepsTable, blueprint.StepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Blueprint entity from the query.
// Returns a *NotFoundError when no Blueprint was found.
func (_q *BlueprintQuery) First(ctx context.Context) (*Blueprint, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{blueprint.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BlueprintQuery) FirstX(ctx context.Context) *Blueprint {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Blueprint ID from the query.
// Returns a *NotFoundError when no Blueprint ID was found.
func (_q *BlueprintQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{blueprint.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BlueprintQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Blueprint entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Blueprint entity is found.
// Returns a *NotFoundError when no Blueprint entities are found.
func (_q *BlueprintQuery) Only(ctx context.Context) (*Blueprint, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{blueprint.Label}
	default:
		return nil, &NotSingularError{blueprint.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BlueprintQuery) OnlyX(ctx context.Context) *Blueprint {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Blueprint ID in the query.
// Returns a *NotSingularError when more than one Blueprint ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BlueprintQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{blueprint.Label}
	default:
		err = &NotSingularError{blueprint.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BlueprintQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Blueprints.
func (_q *BlueprintQuery) All(ctx context.Context) ([]*Blueprint, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Blueprint, *BlueprintQuery]()
	return withInterceptors[[]*Blueprint](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BlueprintQuery) AllX(ctx context.Context) []*Blueprint {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Blueprint IDs.
func (_q *BlueprintQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(blueprint.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BlueprintQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BlueprintQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BlueprintQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BlueprintQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BlueprintQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *BlueprintQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BlueprintQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BlueprintQuery) Clone() *BlueprintQuery {
	if _q == nil {
		return nil
	}
	return &BlueprintQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]blueprint.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.Blueprint{}, _q.predicates...),
		withOrg:    _q.withOrg.Clone(),
		withSteps:  _q.withSteps.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOrg tells the query-builder to eager-load the nodes that are connected to
// the "org" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BlueprintQuery) WithOrg(opts ...func(*OrgQuery)) *BlueprintQuery {
	query := (&OrgClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOrg = query
	return _q
}

// WithSteps tells the query-builder to eager-load the nodes that are connected to
// the "steps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BlueprintQuery) WithSteps(opts ...func(*BlueprintStepQuery)) *BlueprintQuery {
	query := (&BlueprintStepClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSteps = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Blueprint.Query().
//		GroupBy(blueprint.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BlueprintQuery) GroupBy(field string, fields ...string) *BlueprintGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BlueprintGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = blueprint.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Blueprint.Query().
//		Select(blueprint.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *BlueprintQuery) Select(fields ...string) *BlueprintSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BlueprintSelect{BlueprintQuery: _q}
	sbuild.label = blueprint.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BlueprintSelect configured with the given aggregations.
func (_q *BlueprintQuery) Aggregate(fns ...AggregateFunc) *BlueprintSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BlueprintQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !blueprint.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *BlueprintQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Blueprint, error) {
	var (
		nodes       = []*Blueprint{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withOrg != nil,
			_q.withSteps != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Blueprint).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Blueprint{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withOrg; query != nil {
		if err := _q.loadOrg(ctx, query, nodes, nil,
			func(n *Blueprint, e *Org) { n.Edges.Org = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSteps; query != nil {
		if err := _q.loadSteps(ctx, query, nodes,
			func(n *Blueprint) { n.Edges.Steps = []*BlueprintStep{} },
			func(n *Blueprint, e *BlueprintStep) { n.Edges.Steps = append(n.Edges.Steps, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BlueprintQuery) loadOrg(ctx context.Context, query *OrgQuery, nodes []*Blueprint, init func(*Blueprint), assign func(*Blueprint, *Org)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Blueprint)
	for i := range nodes {
		fk := nodes[i].OrgID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(org.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "org_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BlueprintQuery) loadSteps(ctx context.Context, query *BlueprintStepQuery, nodes []*Blueprint, init func(*Blueprint), assign func(*Blueprint, *BlueprintStep)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Blueprint)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.BlueprintStep(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(blueprint.StepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.blueprint_steps
		if fk == nil {
			return fmt.Errorf(`foreign-key "blueprint_steps" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "blueprint_steps" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BlueprintQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BlueprintQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(blueprint.Table, blueprint.Columns, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprint.FieldID)
		for i := range fields {
			if fields[i] != blueprint.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOrg != nil {
			_spec.Node.AddColumnOnce(blueprint.FieldOrgID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *BlueprintQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(blueprint.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = blueprint.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BlueprintGroupBy is the group-by builder for Blueprint entities.
type BlueprintGroupBy struct {
	selector
	build *BlueprintQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BlueprintGroupBy) Aggregate(fns ...AggregateFunc) *BlueprintGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BlueprintGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintQuery, *BlueprintGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BlueprintGroupBy) sqlScan(ctx context.Context, root *BlueprintQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BlueprintSelect is the builder for selecting fields of Blueprint entities.
type BlueprintSelect struct {
	*BlueprintQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BlueprintSelect) Aggregate(fns ...AggregateFunc) *BlueprintSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BlueprintSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintQuery, *BlueprintSelect](ctx, _s.BlueprintQuery, _s, _s.inters, v)
}

func (_s *BlueprintSelect) sqlScan(ctx context.Context, root *BlueprintQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
