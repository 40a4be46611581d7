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
	"github.com/abhisek/coursegen/ent/article"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
	"github.com/abhisek/coursegen/ent/textresponsesubmission"
	"github.com/abhisek/coursegen/ent/video"
)

// LessonQuery is the builder for querying Lesson entities.
type LessonQuery struct {
	config
	ctx                 *QueryContext
	order               []lesson.OrderOption
	inters              []Interceptor
	predicates          []predicate.Lesson
	withChapter         *ChapterQuery
	withQuiz            *QuizQuery
	withArticle         *ArticleQuery
	withExternalArticle *ExternalArticleQuery
	withVideos          *VideoQuery
	withProject         *ProjectQuery
	withTextQuestions   *TextResponseQuestionQuery
	withTextSubmissions *TextResponseSubmissionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LessonQuery builder.
func (_q *LessonQuery) Where(ps ...predicate.Lesson) *LessonQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LessonQuery) Limit(limit int) *LessonQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LessonQuery) Offset(offset int) *LessonQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LessonQuery) Unique(unique bool) *LessonQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LessonQuery) Order(o ...lesson.OrderOption) *LessonQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryChapter chains the current query on the "chapter" edge.
func (_q *LessonQuery) QueryChapter() *ChapterQuery {
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
			sqlgraph.From(lesson.Table, lesson.FieldID, selector),
			sqlgraph.To(chapter.Table, chapter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lesson.ChapterTable, lesson.ChapterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuiz chains the current query on the "quiz" edge.
func (_q *LessonQuery) QueryQuiz() *QuizQuery {
	query := (&QuizClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, selector),
			sqlgraph.To(quiz.Table, quiz.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.QuizTable, lesson.QuizColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArticle chains the current query on the "article" edge.
func (_q *LessonQuery) QueryArticle() *ArticleQuery {
	query := (&ArticleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, selector),
			sqlgraph.To(article.Table, article.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.ArticleTable, lesson.ArticleColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExternalArticle chains the current query on the "external_article" edge.
func (_q *LessonQuery) QueryExternalArticle() *ExternalArticleQuery {
	query := (&ExternalArticleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, selector),
			sqlgraph.To(externalarticle.Table, externalarticle.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.ExternalArticleTable, lesson.ExternalArticleColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVideos chains the current query on the "videos" edge.
func (_q *LessonQuery) QueryVideos() *VideoQuery {
	query := (&VideoClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, selector),
			sqlgraph.To(video.Table, video.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lesson.VideosTable, lesson.VideosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProject chains the current query on the "project" edge.
func (_q *LessonQuery) QueryProject() *ProjectQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.ProjectTable, lesson.ProjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTextQuestions chains the current query on the "text_questions" edge.
func (_q *LessonQuery) QueryTextQuestions() *TextResponseQuestionQuery {
	query := (&TextResponseQuestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, selector),
			sqlgraph.To(textresponsequestion.Table, textresponsequestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lesson.TextQuestionsTable, lesson.TextQuestionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTextSubmissions chains the current query on the "text_submissions" edge.
func (_q *LessonQuery) QueryTextSubmissions() *TextResponseSubmissionQuery {
	query := (&TextResponseSubmissionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, selector),
			sqlgraph.To(textresponsesubmission.Table, textresponsesubmission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lesson.TextSubmissionsTable, lesson.TextSubmissionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Lesson entity from the query.
// Returns a *NotFoundError when no Lesson was found.
func (_q *LessonQuery) First(ctx context.Context) (*Lesson, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{lesson.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LessonQuery) FirstX(ctx context.Context) *Lesson {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Lesson ID from the query.
// Returns a *NotFoundError when no Lesson ID was found.
func (_q *LessonQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{lesson.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LessonQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Lesson entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Lesson entity is found.
// Returns a *NotFoundError when no Lesson entities are found.
func (_q *LessonQuery) Only(ctx context.Context) (*Lesson, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{lesson.Label}
	default:
		return nil, &NotSingularError{lesson.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LessonQuery) OnlyX(ctx context.Context) *Lesson {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Lesson ID in the query.
// Returns a *NotSingularError when more than one Lesson ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LessonQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{lesson.Label}
	default:
		err = &NotSingularError{lesson.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LessonQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Lessons.
func (_q *LessonQuery) All(ctx context.Context) ([]*Lesson, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Lesson, *LessonQuery]()
	return withInterceptors[[]*Lesson](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LessonQuery) AllX(ctx context.Context) []*Lesson {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Lesson IDs.
func (_q *LessonQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(lesson.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LessonQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LessonQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LessonQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LessonQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LessonQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LessonQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LessonQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LessonQuery) Clone() *LessonQuery {
	if _q == nil {
		return nil
	}
	return &LessonQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]lesson.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.Lesson{}, _q.predicates...),
		withChapter:         _q.withChapter.Clone(),
		withQuiz:            _q.withQuiz.Clone(),
		withArticle:         _q.withArticle.Clone(),
		withExternalArticle: _q.withExternalArticle.Clone(),
		withVideos:          _q.withVideos.Clone(),
		withProject:         _q.withProject.Clone(),
		withTextQuestions:   _q.withTextQuestions.Clone(),
		withTextSubmissions: _q.withTextSubmissions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithChapter tells the query-builder to eager-load the nodes that are connected to
// the "chapter" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LessonQuery) WithChapter(opts ...func(*ChapterQuery)) *LessonQuery {
	query := (&ChapterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChapter = query
	return _q
}

// WithQuiz tells the query-builder to eager-load the nodes that are connected to
// the "quiz" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LessonQuery) WithQuiz(opts ...func(*QuizQuery)) *LessonQuery {
	query := (&QuizClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuiz = query
	return _q
}

// WithArticle tells the query-builder to eager-load the nodes that are connected to
// the "article" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LessonQuery) WithArticle(opts ...func(*ArticleQuery)) *LessonQuery {
	query := (&ArticleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArticle = query
	return _q
}

// WithExternalArticle tells the query-builder to eager-load the nodes that are connected to
// the "external_article" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LessonQuery) WithExternalArticle(opts ...func(*ExternalArticleQuery)) *LessonQuery {
	query := (&ExternalArticleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExternalArticle = query
	return _q
}

// WithVideos tells the query-builder to eager-load the nodes that are connected to
// the "videos" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LessonQuery) WithVideos(opts ...func(*VideoQuery)) *LessonQuery {
	query := (&VideoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVideos = query
	return _q
}

// WithProject tells the query-builder to eager-load the nodes that are connected to
// the "project" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LessonQuery) WithProject(opts ...func(*ProjectQuery)) *LessonQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProject = query
	return _q
}

// WithTextQuestions tells the query-builder to eager-load the nodes that are connected to
// the "text_questions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LessonQuery) WithTextQuestions(opts ...func(*TextResponseQuestionQuery)) *LessonQuery {
	query := (&TextResponseQuestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTextQuestions = query
	return _q
}

// WithTextSubmissions tells the query-builder to eager-load the nodes that are connected to
// the "text_submissions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LessonQuery) WithTextSubmissions(opts ...func(*TextResponseSubmissionQuery)) *LessonQuery {
	query := (&TextResponseSubmissionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTextSubmissions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ChapterID int `json:"chapter_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Lesson.Query().
//		GroupBy(lesson.FieldChapterID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LessonQuery) GroupBy(field string, fields ...string) *LessonGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LessonGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = lesson.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ChapterID int `json:"chapter_id,omitempty"`
//	}
//
//	client.Lesson.Query().
//		Select(lesson.FieldChapterID).
//		Scan(ctx, &v)
func (_q *LessonQuery) Select(fields ...string) *LessonSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LessonSelect{LessonQuery: _q}
	sbuild.label = lesson.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LessonSelect configured with the given aggregations.
func (_q *LessonQuery) Aggregate(fns ...AggregateFunc) *LessonSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LessonQuery) prepareQuery(ctx context.Context) error {
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
		if !lesson.ValidColumn(f) {
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

func (_q *LessonQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Lesson, error) {
	var (
		nodes       = []*Lesson{}
		_spec       = _q.querySpec()
		loadedTypes = [8]bool{
			_q.withChapter != nil,
			_q.withQuiz != nil,
			_q.withArticle != nil,
			_q.withExternalArticle != nil,
			_q.withVideos != nil,
			_q.withProject != nil,
			_q.withTextQuestions != nil,
			_q.withTextSubmissions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Lesson).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Lesson{config: _q.config}
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
	if query := _q.withChapter; query != nil {
		if err := _q.loadChapter(ctx, query, nodes, nil,
			func(n *Lesson, e *Chapter) { n.Edges.Chapter = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuiz; query != nil {
		if err := _q.loadQuiz(ctx, query, nodes, nil,
			func(n *Lesson, e *Quiz) { n.Edges.Quiz = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArticle; query != nil {
		if err := _q.loadArticle(ctx, query, nodes, nil,
			func(n *Lesson, e *Article) { n.Edges.Article = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExternalArticle; query != nil {
		if err := _q.loadExternalArticle(ctx, query, nodes, nil,
			func(n *Lesson, e *ExternalArticle) { n.Edges.ExternalArticle = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVideos; query != nil {
		if err := _q.loadVideos(ctx, query, nodes,
			func(n *Lesson) { n.Edges.Videos = []*Video{} },
			func(n *Lesson, e *Video) { n.Edges.Videos = append(n.Edges.Videos, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withProject; query != nil {
		if err := _q.loadProject(ctx, query, nodes, nil,
			func(n *Lesson, e *Project) { n.Edges.Project = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTextQuestions; query != nil {
		if err := _q.loadTextQuestions(ctx, query, nodes,
			func(n *Lesson) { n.Edges.TextQuestions = []*TextResponseQuestion{} },
			func(n *Lesson, e *TextResponseQuestion) { n.Edges.TextQuestions = append(n.Edges.TextQuestions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTextSubmissions; query != nil {
		if err := _q.loadTextSubmissions(ctx, query, nodes,
			func(n *Lesson) { n.Edges.TextSubmissions = []*TextResponseSubmission{} },
			func(n *Lesson, e *TextResponseSubmission) {
				n.Edges.TextSubmissions = append(n.Edges.TextSubmissions, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LessonQuery) loadChapter(ctx context.Context, query *ChapterQuery, nodes []*Lesson, init func(*Lesson), assign func(*Lesson, *Chapter)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Lesson)
	for i := range nodes {
		fk := nodes[i].ChapterID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(chapter.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "chapter_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LessonQuery) loadQuiz(ctx context.Context, query *QuizQuery, nodes []*Lesson, init func(*Lesson), assign func(*Lesson, *Quiz)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Lesson)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(quiz.FieldLessonID)
	}
	query.Where(predicate.Quiz(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lesson.QuizColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LessonID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lesson_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LessonQuery) loadArticle(ctx context.Context, query *ArticleQuery, nodes []*Lesson, init func(*Lesson), assign func(*Lesson, *Article)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Lesson)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(article.FieldLessonID)
	}
	query.Where(predicate.Article(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lesson.ArticleColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LessonID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lesson_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LessonQuery) loadExternalArticle(ctx context.Context, query *ExternalArticleQuery, nodes []*Lesson, init func(*Lesson), assign func(*Lesson, *ExternalArticle)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Lesson)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(externalarticle.FieldLessonID)
	}
	query.Where(predicate.ExternalArticle(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lesson.ExternalArticleColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LessonID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lesson_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LessonQuery) loadVideos(ctx context.Context, query *VideoQuery, nodes []*Lesson, init func(*Lesson), assign func(*Lesson, *Video)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Lesson)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(video.FieldLessonID)
	}
	query.Where(predicate.Video(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lesson.VideosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LessonID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lesson_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LessonQuery) loadProject(ctx context.Context, query *ProjectQuery, nodes []*Lesson, init func(*Lesson), assign func(*Lesson, *Project)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Lesson)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(project.FieldLessonID)
	}
	query.Where(predicate.Project(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lesson.ProjectColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LessonID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lesson_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LessonQuery) loadTextQuestions(ctx context.Context, query *TextResponseQuestionQuery, nodes []*Lesson, init func(*Lesson), assign func(*Lesson, *TextResponseQuestion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Lesson)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(textresponsequestion.FieldLessonID)
	}
	query.Where(predicate.TextResponseQuestion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lesson.TextQuestionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LessonID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lesson_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LessonQuery) loadTextSubmissions(ctx context.Context, query *TextResponseSubmissionQuery, nodes []*Lesson, init func(*Lesson), assign func(*Lesson, *TextResponseSubmission)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Lesson)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(textresponsesubmission.FieldLessonID)
	}
	query.Where(predicate.TextResponseSubmission(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lesson.TextSubmissionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LessonID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lesson_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *LessonQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LessonQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for i := range fields {
			if fields[i] != lesson.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withChapter != nil {
			_spec.Node.AddColumnOnce(lesson.FieldChapterID)
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

func (_q *LessonQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(lesson.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = lesson.Columns
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

// LessonGroupBy is the group-by builder for Lesson entities.
type LessonGroupBy struct {
	selector
	build *LessonQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LessonGroupBy) Aggregate(fns ...AggregateFunc) *LessonGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LessonGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LessonQuery, *LessonGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LessonGroupBy) sqlScan(ctx context.Context, root *LessonQuery, v any) error {
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

// LessonSelect is the builder for selecting fields of Lesson entities.
type LessonSelect struct {
	*LessonQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LessonSelect) Aggregate(fns ...AggregateFunc) *LessonSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LessonSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LessonQuery, *LessonSelect](ctx, _s.LessonQuery, _s, _s.inters, v)
}

func (_s *LessonSelect) sqlScan(ctx context.Context, root *LessonQuery, v any) error {
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
