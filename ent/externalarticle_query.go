// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ExternalArticleQuery is the builder for querying ExternalArticle entities.
type ExternalArticleQuery struct {
	config
	ctx        *QueryContext
	order      []externalarticle.OrderOption
	inters     []Interceptor
	predicates []predicate.ExternalArticle
	withLesson *LessonQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExternalArticleQuery builder.
func (_q *ExternalArticleQuery) Where(ps ...predicate.ExternalArticle) *ExternalArticleQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExternalArticleQuery) Limit(limit int) *ExternalArticleQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExternalArticleQuery) Offset(offset int) *ExternalArticleQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExternalArticleQuery) Unique(unique bool) *ExternalArticleQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExternalArticleQuery) Order(o ...externalarticle.OrderOption) *ExternalArticleQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLesson chains the current query on the "lesson" edge.
func (_q *ExternalArticleQuery) QueryLesson() *LessonQuery {
	query := (&LessonClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(externalarticle.Table, externalarticle.FieldID, selector),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, externalarticle.LessonTable, externalarticle.LessonColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExternalArticle entity from the query.
// Returns a *NotFoundError when no ExternalArticle was found.
func (_q *ExternalArticleQuery) First(ctx context.Context) (*ExternalArticle, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{externalarticle.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExternalArticleQuery) FirstX(ctx context.Context) *ExternalArticle {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExternalArticle ID from the query.
// Returns a *NotFoundError when no ExternalArticle ID was found.
func (_q *ExternalArticleQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{externalarticle.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExternalArticleQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExternalArticle entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExternalArticle entity is found.
// Returns a *NotFoundError when no ExternalArticle entities are found.
func (_q *ExternalArticleQuery) Only(ctx context.Context) (*ExternalArticle, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{externalarticle.Label}
	default:
		return nil, &NotSingularError{externalarticle.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExternalArticleQuery) OnlyX(ctx context.Context) *ExternalArticle {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExternalArticle ID in the query.
// Returns a *NotSingularError when more than one ExternalArticle ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExternalArticleQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{externalarticle.Label}
	default:
		err = &NotSingularError{externalarticle.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExternalArticleQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExternalArticles.
func (_q *ExternalArticleQuery) All(ctx context.Context) ([]*ExternalArticle, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExternalArticle, *ExternalArticleQuery]()
	return withInterceptors[[]*ExternalArticle](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExternalArticleQuery) AllX(ctx context.Context) []*ExternalArticle {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExternalArticle IDs.
func (_q *ExternalArticleQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(externalarticle.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExternalArticleQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExternalArticleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExternalArticleQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExternalArticleQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExternalArticleQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExternalArticleQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExternalArticleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExternalArticleQuery) Clone() *ExternalArticleQuery {
	if _q == nil {
		return nil
	}
	return &ExternalArticleQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]externalarticle.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.ExternalArticle{}, _q.predicates...),
		withLesson: _q.withLesson.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLesson tells the query-builder to eager-load the nodes that are connected to
// the "lesson" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExternalArticleQuery) WithLesson(opts ...func(*LessonQuery)) *ExternalArticleQuery {
	query := (&LessonClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLesson = query
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
//	client.ExternalArticle.Query().
//		GroupBy(externalarticle.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExternalArticleQuery) GroupBy(field string, fields ...string) *ExternalArticleGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExternalArticleGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = externalarticle.Label
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
//	client.ExternalArticle.Query().
//		Select(externalarticle.FieldCreateTime).
//		Scan(ctx, &v)
func (_q *ExternalArticleQuery) Select(fields ...string) *ExternalArticleSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExternalArticleSelect{ExternalArticleQuery: _q}
	sbuild.label = externalarticle.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExternalArticleSelect configured with the given aggregations.
func (_q *ExternalArticleQuery) Aggregate(fns ...AggregateFunc) *ExternalArticleSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExternalArticleQuery) prepareQuery(ctx context.Context) error {
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
		if !externalarticle.ValidColumn(f) {
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

func (_q *ExternalArticleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExternalArticle, error) {
	var (
		nodes       = []*ExternalArticle{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withLesson != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExternalArticle).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExternalArticle{config: _q.config}
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
	if query := _q.withLesson; query != nil {
		if err := _q.loadLesson(ctx, query, nodes, nil,
			func(n *ExternalArticle, e *Lesson) { n.Edges.Lesson = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExternalArticleQuery) loadLesson(ctx context.Context, query *LessonQuery, nodes []*ExternalArticle, init func(*ExternalArticle), assign func(*ExternalArticle, *Lesson)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ExternalArticle)
	for i := range nodes {
		fk := nodes[i].LessonID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(lesson.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "lesson_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ExternalArticleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExternalArticleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(externalarticle.Table, externalarticle.Columns, sqlgraph.NewFieldSpec(externalarticle.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, externalarticle.FieldID)
		for i := range fields {
			if fields[i] != externalarticle.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withLesson != nil {
			_spec.Node.AddColumnOnce(externalarticle.FieldLessonID)
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

func (_q *ExternalArticleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(externalarticle.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = externalarticle.Columns
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

// ExternalArticleGroupBy is the group-by builder for ExternalArticle entities.
type ExternalArticleGroupBy struct {
	selector
	build *ExternalArticleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExternalArticleGroupBy) Aggregate(fns ...AggregateFunc) *ExternalArticleGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExternalArticleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExternalArticleQuery, *ExternalArticleGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExternalArticleGroupBy) sqlScan(ctx context.Context, root *ExternalArticleQuery, v any) error {
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

// ExternalArticleSelect is the builder for selecting fields of ExternalArticle entities.
type ExternalArticleSelect struct {
	*ExternalArticleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExternalArticleSelect) Aggregate(fns ...AggregateFunc) *ExternalArticleSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExternalArticleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExternalArticleQuery, *ExternalArticleSelect](ctx, _s.ExternalArticleQuery, _s, _s.inters, v)
}

func (_s *ExternalArticleSelect) sqlScan(ctx context.Context, root *ExternalArticleQuery, v any) error {
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
