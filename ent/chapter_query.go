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
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ChapterQuery is the builder for querying Chapter entities.
type ChapterQuery struct {
	config
	ctx                  *QueryContext
	order                []chapter.OrderOption
	inters               []Interceptor
	predicates           []predicate.Chapter
	withCourseGeneration *CourseGenerationQuery
	withLessons          *LessonQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ChapterQuery builder.
func (_q *ChapterQuery) Where(ps ...predicate.Chapter) *ChapterQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ChapterQuery) Limit(limit int) *ChapterQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ChapterQuery) Offset(offset int) *ChapterQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ChapterQuery) Unique(unique bool) *ChapterQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ChapterQuery) Order(o ...chapter.OrderOption) *ChapterQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCourseGeneration chains the current query on the "course_generation" edge.
func (_q *ChapterQuery) QueryCourseGeneration() *CourseGenerationQuery {
	query := (&CourseGenerationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chapter.Table, chapter.FieldID, selector),
			sqlgraph.To(coursegeneration.Table, coursegeneration.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chapter.CourseGenerationTable, chapter.CourseGenerationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLessons chains the current query on the "lessons" edge.
func (_q *ChapterQuery) QueryLessons() *LessonQuery {
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
			sqlgraph.From(chapter.Table, chapter.FieldID, selector),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chapter.LessonsTable, chapter.LessonsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Chapter entity from the query.
// Returns a *NotFoundError when no Chapter was found.
func (_q *ChapterQuery) First(ctx context.Context) (*Chapter, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{chapter.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ChapterQuery) FirstX(ctx context.Context) *Chapter {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Chapter ID from the query.
// Returns a *NotFoundError when no Chapter ID was found.
func (_q *ChapterQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{chapter.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ChapterQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Chapter entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Chapter entity is found.
// Returns a *NotFoundError when no Chapter entities are found.
func (_q *ChapterQuery) Only(ctx context.Context) (*Chapter, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{chapter.Label}
	default:
		return nil, &NotSingularError{chapter.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ChapterQuery) OnlyX(ctx context.Context) *Chapter {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Chapter ID in the query.
// Returns a *NotSingularError when more than one Chapter ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ChapterQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{chapter.Label}
	default:
		err = &NotSingularError{chapter.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ChapterQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Chapters.
func (_q *ChapterQuery) All(ctx context.Context) ([]*Chapter, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Chapter, *ChapterQuery]()
	return withInterceptors[[]*Chapter](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ChapterQuery) AllX(ctx context.Context) []*Chapter {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Chapter IDs.
func (_q *ChapterQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(chapter.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ChapterQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ChapterQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ChapterQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ChapterQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ChapterQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ChapterQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ChapterQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ChapterQuery) Clone() *ChapterQuery {
	if _q == nil {
		return nil
	}
	return &ChapterQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]chapter.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.Chapter{}, _q.predicates...),
		withCourseGeneration: _q.withCourseGeneration.Clone(),
		withLessons:          _q.withLessons.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCourseGeneration tells the query-builder to eager-load the nodes that are connected to
// the "course_generation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChapterQuery) WithCourseGeneration(opts ...func(*CourseGenerationQuery)) *ChapterQuery {
	query := (&CourseGenerationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCourseGeneration = query
	return _q
}

// WithLessons tells the query-builder to eager-load the nodes that are connected to
// the "lessons" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChapterQuery) WithLessons(opts ...func(*LessonQuery)) *ChapterQuery {
	query := (&LessonClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLessons = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CourseGenerationID int `json:"course_generation_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Chapter.Query().
//		GroupBy(chapter.FieldCourseGenerationID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ChapterQuery) GroupBy(field string, fields ...string) *ChapterGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ChapterGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = chapter.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CourseGenerationID int `json:"course_generation_id,omitempty"`
//	}
//
//	client.Chapter.Query().
//		Select(chapter.FieldCourseGenerationID).
//		Scan(ctx, &v)
func (_q *ChapterQuery) Select(fields ...string) *ChapterSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ChapterSelect{ChapterQuery: _q}
	sbuild.label = chapter.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ChapterSelect configured with the given aggregations.
func (_q *ChapterQuery) Aggregate(fns ...AggregateFunc) *ChapterSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ChapterQuery) prepareQuery(ctx context.Context) error {
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
		if !chapter.ValidColumn(f) {
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

func (_q *ChapterQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Chapter, error) {
	var (
		nodes       = []*Chapter{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withCourseGeneration != nil,
			_q.withLessons != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Chapter).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Chapter{config: _q.config}
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
	if query := _q.withCourseGeneration; query != nil {
		if err := _q.loadCourseGeneration(ctx, query, nodes, nil,
			func(n *Chapter, e *CourseGeneration) { n.Edges.CourseGeneration = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLessons; query != nil {
		if err := _q.loadLessons(ctx, query, nodes,
			func(n *Chapter) { n.Edges.Lessons = []*Lesson{} },
			func(n *Chapter, e *Lesson) { n.Edges.Lessons = append(n.Edges.Lessons, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ChapterQuery) loadCourseGeneration(ctx context.Context, query *CourseGenerationQuery, nodes []*Chapter, init func(*Chapter), assign func(*Chapter, *CourseGeneration)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Chapter)
	for i := range nodes {
		fk := nodes[i].CourseGenerationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(coursegeneration.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "course_generation_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ChapterQuery) loadLessons(ctx context.Context, query *LessonQuery, nodes []*Chapter, init func(*Chapter), assign func(*Chapter, *Lesson)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Chapter)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(lesson.FieldChapterID)
	}
	query.Where(predicate.Lesson(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(chapter.LessonsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChapterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "chapter_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ChapterQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ChapterQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chapter.FieldID)
		for i := range fields {
			if fields[i] != chapter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCourseGeneration != nil {
			_spec.Node.AddColumnOnce(chapter.FieldCourseGenerationID)
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

func (_q *ChapterQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(chapter.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = chapter.Columns
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

// ChapterGroupBy is the group-by builder for Chapter entities.
type ChapterGroupBy struct {
	selector
	build *ChapterQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ChapterGroupBy) Aggregate(fns ...AggregateFunc) *ChapterGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ChapterGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChapterQuery, *ChapterGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ChapterGroupBy) sqlScan(ctx context.Context, root *ChapterQuery, v any) error {
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

// ChapterSelect is the builder for selecting fields of Chapter entities.
type ChapterSelect struct {
	*ChapterQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ChapterSelect) Aggregate(fns ...AggregateFunc) *ChapterSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ChapterSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChapterQuery, *ChapterSelect](ctx, _s.ChapterQuery, _s, _s.inters, v)
}

func (_s *ChapterSelect) sqlScan(ctx context.Context, root *ChapterQuery, v any) error {
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
