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
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/predicate"
	"waterline.io/waterline/ent/stepresult"
	"waterline.io/waterline/ent/submission"
)

// PipelineRunQuery is the builder for querying PipelineRun entities.
type PipelineRunQuery struct {
	config
	ctx             *QueryContext
	order           []pipelinerun.OrderOption
	inters          []Interceptor
	predicates      []predicate.PipelineRun
	withSubmission  *SubmissionQuery
	withStepResults *StepResultQuery
	withFKs         bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PipelineRunQuery builder.
func (_q *PipelineRunQuery) Where(ps ...predicate.PipelineRun) *PipelineRunQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PipelineRunQuery) Limit(limit int) *PipelineRunQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PipelineRunQuery) Offset(offset int) *PipelineRunQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PipelineRunQuery) Unique(unique bool) *PipelineRunQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PipelineRunQuery) Order(o ...pipelinerun.OrderOption) *PipelineRunQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySubmission chains the current query on the "submission" edge.
func (_q *PipelineRunQuery) QuerySubmission() *SubmissionQuery {
	query := (&SubmissionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinerun.Table, pipelinerun.FieldID, selector),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinerun.SubmissionTable, pipelinerun.SubmissionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStepResults chains the current query on the "step_results" edge.
func (_q *PipelineRunQuery) QueryStepResults() *StepResultQuery {
	query := (&StepResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinerun.Table, pipelinerun.FieldID, selector),
			sqlgraph.To(stepresult.Table, stepresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipelinerun.StepResultsTable, pipelinerun.StepResultsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PipelineRun entity from the query.
// Returns a *NotFoundError when no PipelineRun was found.
func (_q *PipelineRunQuery) First(ctx context.Context) (*PipelineRun, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pipelinerun.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PipelineRunQuery) FirstX(ctx context.Context) *PipelineRun {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PipelineRun ID from the query.
// Returns a *NotFoundError when no PipelineRun ID was found.
func (_q *PipelineRunQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pipelinerun.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PipelineRunQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PipelineRun entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PipelineRun entity is found.
// Returns a *NotFoundError when no PipelineRun entities are found.
func (_q *PipelineRunQuery) Only(ctx context.Context) (*PipelineRun, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pipelinerun.Label}
	default:
		return nil, &NotSingularError{pipelinerun.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PipelineRunQuery) OnlyX(ctx context.Context) *PipelineRun {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PipelineRun ID in the query.
// Returns a *NotSingularError when more than one PipelineRun ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PipelineRunQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pipelinerun.Label}
	default:
		err = &NotSingularError{pipelinerun.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PipelineRunQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PipelineRuns.
func (_q *PipelineRunQuery) All(ctx context.Context) ([]*PipelineRun, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PipelineRun, *PipelineRunQuery]()
	return withInterceptors[[]*PipelineRun](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PipelineRunQuery) AllX(ctx context.Context) []*PipelineRun {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PipelineRun IDs.
func (_q *PipelineRunQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pipelinerun.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PipelineRunQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PipelineRunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PipelineRunQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PipelineRunQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PipelineRunQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PipelineRunQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PipelineRunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PipelineRunQuery) Clone() *PipelineRunQuery {
	if _q == nil {
		return nil
	}
	return &PipelineRunQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]pipelinerun.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.PipelineRun{}, _q.predicates...),
		withSubmission:  _q.withSubmission.Clone(),
		withStepResults: _q.withStepResults.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSubmission tells the query-builder to eager-load the nodes that are connected to
// the "submission" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PipelineRunQuery) WithSubmission(opts ...func(*SubmissionQuery)) *PipelineRunQuery {
	query := (&SubmissionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubmission = query
	return _q
}

// WithStepResults tells the query-builder to eager-load the nodes that are connected to
// the "step_results" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PipelineRunQuery) WithStepResults(opts ...func(*StepResultQuery)) *PipelineRunQuery {
	query := (&StepResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStepResults = query
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
//	client.PipelineRun.Query().
//		GroupBy(pipelinerun.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PipelineRunQuery) GroupBy(field string, fields ...string) *PipelineRunGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PipelineRunGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pipelinerun.Label
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
//	client.PipelineRun.Query().
//		Select(pipelinerun.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *PipelineRunQuery) Select(fields ...string) *PipelineRunSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PipelineRunSelect{PipelineRunQuery: _q}
	sbuild.label = pipelinerun.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PipelineRunSelect configured with the given aggregations.
func (_q *PipelineRunQuery) Aggregate(fns ...AggregateFunc) *PipelineRunSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PipelineRunQuery) prepareQuery(ctx context.Context) error {
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
		if !pipelinerun.ValidColumn(f) {
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

func (_q *PipelineRunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PipelineRun, error) {
	var (
		nodes       = []*PipelineRun{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSubmission != nil,
			_q.withStepResults != nil,
		}
	)
	if _q.withSubmission != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PipelineRun).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PipelineRun{config: _q.config}
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
	if query := _q.withSubmission; query != nil {
		if err := _q.loadSubmission(ctx, query, nodes, nil,
			func(n *PipelineRun, e *Submission) { n.Edges.Submission = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStepResults; query != nil {
		if err := _q.loadStepResults(ctx, query, nodes,
			func(n *PipelineRun) { n.Edges.StepResults = []*StepResult{} },
			func(n *PipelineRun, e *StepResult) { n.Edges.StepResults = append(n.Edges.StepResults, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PipelineRunQuery) loadSubmission(ctx context.Context, query *SubmissionQuery, nodes []*PipelineRun, init func(*PipelineRun), assign func(*PipelineRun, *Submission)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PipelineRun)
	for i := range nodes {
		if nodes[i].submission_runs == nil {
			continue
		}
		fk := *nodes[i].submission_runs
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(submission.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "submission_runs" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PipelineRunQuery) loadStepResults(ctx context.Context, query *StepResultQuery, nodes []*PipelineRun, init func(*PipelineRun), assign func(*PipelineRun, *StepResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PipelineRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.StepResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pipelinerun.StepResultsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.pipeline_run_step_results
		if fk == nil {
			return fmt.Errorf(`foreign-key "pipeline_run_step_results" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "pipeline_run_step_results" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PipelineRunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PipelineRunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for i := range fields {
			if fields[i] != pipelinerun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *PipelineRunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pipelinerun.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pipelinerun.Columns
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

// PipelineRunGroupBy is the group-by builder for PipelineRun entities.
type PipelineRunGroupBy struct {
	selector
	build *PipelineRunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PipelineRunGroupBy) Aggregate(fns ...AggregateFunc) *PipelineRunGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PipelineRunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PipelineRunQuery, *PipelineRunGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PipelineRunGroupBy) sqlScan(ctx context.Context, root *PipelineRunQuery, v any) error {
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

// PipelineRunSelect is the builder for selecting fields of PipelineRun entities.
type PipelineRunSelect struct {
	*PipelineRunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PipelineRunSelect) Aggregate(fns ...AggregateFunc) *PipelineRunSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PipelineRunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PipelineRunQuery, *PipelineRunSelect](ctx, _s.PipelineRunQuery, _s, _s.inters, v)
}

func (_s *PipelineRunSelect) sqlScan(ctx context.Context, root *PipelineRunQuery, v any) error {
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
