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
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/generationlog"
	"github.com/abhisek/coursegen/ent/predicate"
)

// CourseGenerationQuery is the builder for querying CourseGeneration entities.
type CourseGenerationQuery struct {
	config
	ctx          *QueryContext
	order        []coursegeneration.OrderOption
	inters       []Interceptor
	predicates   []predicate.CourseGeneration
	withChapters *ChapterQuery
	withLogs     *GenerationLogQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CourseGenerationQuery builder.
func (_q *CourseGenerationQuery) Where(ps ...predicate.CourseGeneration) *CourseGenerationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CourseGenerationQuery) Limit(limit int) *CourseGenerationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CourseGenerationQuery) Offset(offset int) *CourseGenerationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CourseGenerationQuery) Unique(unique bool) *CourseGenerationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CourseGenerationQuery) Order(o ...coursegeneration.OrderOption) *CourseGenerationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryChapters chains the current query on the "chapters" edge.
func (_q *CourseGenerationQuery) QueryChapters() *ChapterQuery {
	query := (&ChapterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(coursegeneration.Table, coursegeneration.FieldID, selector),
			sqlgraph.To(chapter.Table, chapter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, coursegeneration.ChaptersTable, coursegeneration.ChaptersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLogs chains the current query on the "logs" edge.
func (_q *CourseGenerationQuery) QueryLogs() *GenerationLogQuery {
	query := (&GenerationLogClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(coursegeneration.Table, coursegeneration.FieldID, selector),
			sqlgraph.To(generationlog.Table, generationlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, coursegeneration.LogsTable, coursegeneration.LogsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CourseGeneration entity from the query.
// Returns a *NotFoundError when no CourseGeneration was found.
func (_q *CourseGenerationQuery) First(ctx context.Context) (*CourseGeneration, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{coursegeneration.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CourseGenerationQuery) FirstX(ctx context.Context) *CourseGeneration {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CourseGeneration ID from the query.
// Returns a *NotFoundError when no CourseGeneration ID was found.
func (_q *CourseGenerationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{coursegeneration.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CourseGenerationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CourseGeneration entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CourseGeneration entity is found.
// Returns a *NotFoundError when no CourseGeneration entities are found.
func (_q *CourseGenerationQuery) Only(ctx context.Context) (*CourseGeneration, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{coursegeneration.Label}
	default:
		return nil, &NotSingularError{coursegeneration.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CourseGenerationQuery) OnlyX(ctx context.Context) *CourseGeneration {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CourseGeneration ID in the query.
// Returns a *NotSingularError when more than one CourseGeneration ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CourseGenerationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{coursegeneration.Label}
	default:
		err = &NotSingularError{coursegeneration.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CourseGenerationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CourseGenerations.
func (_q *CourseGenerationQuery) All(ctx context.Context) ([]*CourseGeneration, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CourseGeneration, *CourseGenerationQuery]()
	return withInterceptors[[]*CourseGeneration](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CourseGenerationQuery) AllX(ctx context.Context) []*CourseGeneration {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CourseGeneration IDs.
func (_q *CourseGenerationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(coursegeneration.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CourseGenerationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CourseGenerationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CourseGenerationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CourseGenerationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CourseGenerationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CourseGenerationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CourseGenerationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CourseGenerationQuery) Clone() *CourseGenerationQuery {
	if _q == nil {
		return nil
	}
	return &CourseGenerationQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]coursegeneration.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.CourseGeneration{}, _q.predicates...),
		withChapters: _q.withChapters.Clone(),
		withLogs:     _q.withLogs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithChapters tells the query-builder to eager-load the nodes that are connected to
// the "chapters" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CourseGenerationQuery) WithChapters(opts ...func(*ChapterQuery)) *CourseGenerationQuery {
	query := (&ChapterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChapters = query
	return _q
}

// WithLogs tells the query-builder to eager-load the nodes that are connected to
// the "logs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CourseGenerationQuery) WithLogs(opts ...func(*GenerationLogQuery)) *CourseGenerationQuery {
	query := (&GenerationLogClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLogs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CourseGeneration.Query().
//		GroupBy(coursegeneration.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CourseGenerationQuery) GroupBy(field string, fields ...string) *CourseGenerationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CourseGenerationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = coursegeneration.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//	}
//
//	client.CourseGeneration.Query().
//		Select(coursegeneration.FieldCreateTime).
//		Scan(ctx, &v)
func (_q *CourseGenerationQuery) Select(fields ...string) *CourseGenerationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CourseGenerationSelect{CourseGenerationQuery: _q}
	sbuild.label = coursegeneration.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CourseGenerationSelect configured with the given aggregations.
func (_q *CourseGenerationQuery) Aggregate(fns ...AggregateFunc) *CourseGenerationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CourseGenerationQuery) prepareQuery(ctx context.Context) error {
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
		if !coursegeneration.ValidColumn(f) {
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

func (_q *CourseGenerationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CourseGeneration, error) {
	var (
		nodes       = []*CourseGeneration{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withChapters != nil,
			_q.withLogs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CourseGeneration).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CourseGeneration{config: _q.config}
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
	if query := _q.withChapters; query != nil {
		if err := _q.loadChapters(ctx, query, nodes,
			func(n *CourseGeneration) { n.Edges.Chapters = []*Chapter{} },
			func(n *CourseGeneration, e *Chapter) { n.Edges.Chapters = append(n.Edges.Chapters, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLogs; query != nil {
		if err := _q.loadLogs(ctx, query, nodes,
			func(n *CourseGeneration) { n.Edges.Logs = []*GenerationLog{} },
			func(n *CourseGeneration, e *GenerationLog) { n.Edges.Logs = append(n.Edges.Logs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CourseGenerationQuery) loadChapters(ctx context.Context, query *ChapterQuery, nodes []*CourseGeneration, init func(*CourseGeneration), assign func(*CourseGeneration, *Chapter)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*CourseGeneration)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chapter.FieldCourseGenerationID)
	}
	query.Where(predicate.Chapter(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(coursegeneration.ChaptersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CourseGenerationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "course_generation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CourseGenerationQuery) loadLogs(ctx context.Context, query *GenerationLogQuery, nodes []*CourseGeneration, init func(*CourseGeneration), assign func(*CourseGeneration, *GenerationLog)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*CourseGeneration)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(generationlog.FieldCourseGenerationID)
	}
	query.Where(predicate.GenerationLog(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(coursegeneration.LogsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CourseGenerationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "course_generation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CourseGenerationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CourseGenerationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(coursegeneration.Table, coursegeneration.Columns, sqlgraph.NewFieldSpec(coursegeneration.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coursegeneration.FieldID)
		for i := range fields {
			if fields[i] != coursegeneration.FieldID {
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

func (_q *CourseGenerationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(coursegeneration.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = coursegeneration.Columns
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

// CourseGenerationGroupBy is the group-by builder for CourseGeneration entities.
type CourseGenerationGroupBy struct {
	selector
	build *CourseGenerationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CourseGenerationGroupBy) Aggregate(fns ...AggregateFunc) *CourseGenerationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CourseGenerationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CourseGenerationQuery, *CourseGenerationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CourseGenerationGroupBy) sqlScan(ctx context.Context, root *CourseGenerationQuery, v any) error {
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

// CourseGenerationSelect is the builder for selecting fields of CourseGeneration entities.
type CourseGenerationSelect struct {
	*CourseGenerationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CourseGenerationSelect) Aggregate(fns ...AggregateFunc) *CourseGenerationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CourseGenerationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CourseGenerationQuery, *CourseGenerationSelect](ctx, _s.CourseGenerationQuery, _s, _s.inters, v)
}

func (_s *CourseGenerationSelect) sqlScan(ctx context.Context, root *CourseGenerationQuery, v any) error {
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
