// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/coursegen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/coursegen/ent/article"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/generationlog"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/llmrequestevent"
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/projectfile"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/quizattempt"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
	"github.com/abhisek/coursegen/ent/textresponsesubmission"
	"github.com/abhisek/coursegen/ent/video"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Article is the client for interacting with the Article builders.
	Article *ArticleClient
	// Chapter is the client for interacting with the Chapter builders.
	Chapter *ChapterClient
	// CourseGeneration is the client for interacting with the CourseGeneration builders.
	CourseGeneration *CourseGenerationClient
	// ExternalArticle is the client for interacting with the ExternalArticle builders.
	ExternalArticle *ExternalArticleClient
	// GenerationLog is the client for interacting with the GenerationLog builders.
	GenerationLog *GenerationLogClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// ProjectFile is the client for interacting with the ProjectFile builders.
	ProjectFile *ProjectFileClient
	// Quiz is the client for interacting with the Quiz builders.
	Quiz *QuizClient
	// QuizAttempt is the client for interacting with the QuizAttempt builders.
	QuizAttempt *QuizAttemptClient
	// TextResponseQuestion is the client for interacting with the TextResponseQuestion builders.
	TextResponseQuestion *TextResponseQuestionClient
	// TextResponseSubmission is the client for interacting with the TextResponseSubmission builders.
	TextResponseSubmission *TextResponseSubmissionClient
	// Video is the client for interacting with the Video builders.
	Video *VideoClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Article = NewArticleClient(c.config)
	c.Chapter = NewChapterClient(c.config)
	c.CourseGeneration = NewCourseGenerationClient(c.config)
	c.ExternalArticle = NewExternalArticleClient(c.config)
	c.GenerationLog = NewGenerationLogClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.ProjectFile = NewProjectFileClient(c.config)
	c.Quiz = NewQuizClient(c.config)
	c.QuizAttempt = NewQuizAttemptClient(c.config)
	c.TextResponseQuestion = NewTextResponseQuestionClient(c.config)
	c.TextResponseSubmission = NewTextResponseSubmissionClient(c.config)
	c.Video = NewVideoClient(c.config)
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
		ctx:                    ctx,
		config:                 cfg,
		Article:                NewArticleClient(cfg),
		Chapter:                NewChapterClient(cfg),
		CourseGeneration:       NewCourseGenerationClient(cfg),
		ExternalArticle:        NewExternalArticleClient(cfg),
		GenerationLog:          NewGenerationLogClient(cfg),
		LLMRequestEvent:        NewLLMRequestEventClient(cfg),
		Lesson:                 NewLessonClient(cfg),
		Project:                NewProjectClient(cfg),
		ProjectFile:            NewProjectFileClient(cfg),
		Quiz:                   NewQuizClient(cfg),
		QuizAttempt:            NewQuizAttemptClient(cfg),
		TextResponseQuestion:   NewTextResponseQuestionClient(cfg),
		TextResponseSubmission: NewTextResponseSubmissionClient(cfg),
		Video:                  NewVideoClient(cfg),
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
		ctx:                    ctx,
		config:                 cfg,
		Article:                NewArticleClient(cfg),
		Chapter:                NewChapterClient(cfg),
		CourseGeneration:       NewCourseGenerationClient(cfg),
		ExternalArticle:        NewExternalArticleClient(cfg),
		GenerationLog:          NewGenerationLogClient(cfg),
		LLMRequestEvent:        NewLLMRequestEventClient(cfg),
		Lesson:                 NewLessonClient(cfg),
		Project:                NewProjectClient(cfg),
		ProjectFile:            NewProjectFileClient(cfg),
		Quiz:                   NewQuizClient(cfg),
		QuizAttempt:            NewQuizAttemptClient(cfg),
		TextResponseQuestion:   NewTextResponseQuestionClient(cfg),
		TextResponseSubmission: NewTextResponseSubmissionClient(cfg),
		Video:                  NewVideoClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Article.
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
		c.Article, c.Chapter, c.CourseGeneration, c.ExternalArticle, c.GenerationLog,
		c.LLMRequestEvent, c.Lesson, c.Project, c.ProjectFile, c.Quiz, c.QuizAttempt,
		c.TextResponseQuestion, c.TextResponseSubmission, c.Video,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Article, c.Chapter, c.CourseGeneration, c.ExternalArticle, c.GenerationLog,
		c.LLMRequestEvent, c.Lesson, c.Project, c.ProjectFile, c.Quiz, c.QuizAttempt,
		c.TextResponseQuestion, c.TextResponseSubmission, c.Video,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArticleMutation:
		return c.Article.mutate(ctx, m)
	case *ChapterMutation:
		return c.Chapter.mutate(ctx, m)
	case *CourseGenerationMutation:
		return c.CourseGeneration.mutate(ctx, m)
	case *ExternalArticleMutation:
		return c.ExternalArticle.mutate(ctx, m)
	case *GenerationLogMutation:
		return c.GenerationLog.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ProjectFileMutation:
		return c.ProjectFile.mutate(ctx, m)
	case *QuizMutation:
		return c.Quiz.mutate(ctx, m)
	case *QuizAttemptMutation:
		return c.QuizAttempt.mutate(ctx, m)
	case *TextResponseQuestionMutation:
		return c.TextResponseQuestion.mutate(ctx, m)
	case *TextResponseSubmissionMutation:
		return c.TextResponseSubmission.mutate(ctx, m)
	case *VideoMutation:
		return c.Video.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArticleClient is a client for the Article schema.
type ArticleClient struct {
	config
}

// NewArticleClient returns a client for the Article from the given config.
func NewArticleClient(c config) *ArticleClient {
	return &ArticleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `article.Hooks(f(g(h())))`.
func (c *ArticleClient) Use(hooks ...Hook) {
	c.hooks.Article = append(c.hooks.Article, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `article.Intercept(f(g(h())))`.
func (c *ArticleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Article = append(c.inters.Article, interceptors...)
}

// Create returns a builder for creating a Article entity.
func (c *ArticleClient) Create() *ArticleCreate {
	mutation := newArticleMutation(c.config, OpCreate)
	return &ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Article entities.
func (c *ArticleClient) CreateBulk(builders ...*ArticleCreate) *ArticleCreateBulk {
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArticleClient) MapCreateBulk(slice any, setFunc func(*ArticleCreate, int)) *ArticleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArticleCreateBulk{err: fmt.Errorf("calling to ArticleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArticleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Article.
func (c *ArticleClient) Update() *ArticleUpdate {
	mutation := newArticleMutation(c.config, OpUpdate)
	return &ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArticleClient) UpdateOne(_m *Article) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticle(_m))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArticleClient) UpdateOneID(id int) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticleID(id))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Article.
func (c *ArticleClient) Delete() *ArticleDelete {
	mutation := newArticleMutation(c.config, OpDelete)
	return &ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArticleClient) DeleteOne(_m *Article) *ArticleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArticleClient) DeleteOneID(id int) *ArticleDeleteOne {
	builder := c.Delete().Where(article.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArticleDeleteOne{builder}
}

// Query returns a query builder for Article.
func (c *ArticleClient) Query() *ArticleQuery {
	return &ArticleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArticle},
		inters: c.Interceptors(),
	}
}

// Get returns a Article entity by its id.
func (c *ArticleClient) Get(ctx context.Context, id int) (*Article, error) {
	return c.Query().Where(article.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArticleClient) GetX(ctx context.Context, id int) *Article {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a Article.
func (c *ArticleClient) QueryLesson(_m *Article) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(article.Table, article.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, article.LessonTable, article.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArticleClient) Hooks() []Hook {
	return c.hooks.Article
}

// Interceptors returns the client interceptors.
func (c *ArticleClient) Interceptors() []Interceptor {
	return c.inters.Article
}

func (c *ArticleClient) mutate(ctx context.Context, m *ArticleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Article mutation op: %q", m.Op())
	}
}

// ChapterClient is a client for the Chapter schema.
type ChapterClient struct {
	config
}

// NewChapterClient returns a client for the Chapter from the given config.
func NewChapterClient(c config) *ChapterClient {
	return &ChapterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chapter.Hooks(f(g(h())))`.
func (c *ChapterClient) Use(hooks ...Hook) {
	c.hooks.Chapter = append(c.hooks.Chapter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chapter.Intercept(f(g(h())))`.
func (c *ChapterClient) Intercept(interceptors ...Interceptor) {
	c.inters.Chapter = append(c.inters.Chapter, interceptors...)
}

// Create returns a builder for creating a Chapter entity.
func (c *ChapterClient) Create() *ChapterCreate {
	mutation := newChapterMutation(c.config, OpCreate)
	return &ChapterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Chapter entities.
func (c *ChapterClient) CreateBulk(builders ...*ChapterCreate) *ChapterCreateBulk {
	return &ChapterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChapterClient) MapCreateBulk(slice any, setFunc func(*ChapterCreate, int)) *ChapterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChapterCreateBulk{err: fmt.Errorf("calling to ChapterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChapterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChapterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Chapter.
func (c *ChapterClient) Update() *ChapterUpdate {
	mutation := newChapterMutation(c.config, OpUpdate)
	return &ChapterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChapterClient) UpdateOne(_m *Chapter) *ChapterUpdateOne {
	mutation := newChapterMutation(c.config, OpUpdateOne, withChapter(_m))
	return &ChapterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChapterClient) UpdateOneID(id int) *ChapterUpdateOne {
	mutation := newChapterMutation(c.config, OpUpdateOne, withChapterID(id))
	return &ChapterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Chapter.
func (c *ChapterClient) Delete() *ChapterDelete {
	mutation := newChapterMutation(c.config, OpDelete)
	return &ChapterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChapterClient) DeleteOne(_m *Chapter) *ChapterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChapterClient) DeleteOneID(id int) *ChapterDeleteOne {
	builder := c.Delete().Where(chapter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChapterDeleteOne{builder}
}

// Query returns a query builder for Chapter.
func (c *ChapterClient) Query() *ChapterQuery {
	return &ChapterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChapter},
		inters: c.Interceptors(),
	}
}

// Get returns a Chapter entity by its id.
func (c *ChapterClient) Get(ctx context.Context, id int) (*Chapter, error) {
	return c.Query().Where(chapter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChapterClient) GetX(ctx context.Context, id int) *Chapter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCourseGeneration queries the course_generation edge of a Chapter.
func (c *ChapterClient) QueryCourseGeneration(_m *Chapter) *CourseGenerationQuery {
	query := (&CourseGenerationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chapter.Table, chapter.FieldID, id),
			sqlgraph.To(coursegeneration.Table, coursegeneration.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chapter.CourseGenerationTable, chapter.CourseGenerationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLessons queries the lessons edge of a Chapter.
func (c *ChapterClient) QueryLessons(_m *Chapter) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chapter.Table, chapter.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chapter.LessonsTable, chapter.LessonsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChapterClient) Hooks() []Hook {
	return c.hooks.Chapter
}

// Interceptors returns the client interceptors.
func (c *ChapterClient) Interceptors() []Interceptor {
	return c.inters.Chapter
}

func (c *ChapterClient) mutate(ctx context.Context, m *ChapterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChapterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChapterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChapterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChapterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Chapter mutation op: %q", m.Op())
	}
}

// CourseGenerationClient is a client for the CourseGeneration schema.
type CourseGenerationClient struct {
	config
}

// NewCourseGenerationClient returns a client for the CourseGeneration from the given config.
func NewCourseGenerationClient(c config) *CourseGenerationClient {
	return &CourseGenerationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coursegeneration.Hooks(f(g(h())))`.
func (c *CourseGenerationClient) Use(hooks ...Hook) {
	c.hooks.CourseGeneration = append(c.hooks.CourseGeneration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coursegeneration.Intercept(f(g(h())))`.
func (c *CourseGenerationClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseGeneration = append(c.inters.CourseGeneration, interceptors...)
}

// Create returns a builder for creating a CourseGeneration entity.
func (c *CourseGenerationClient) Create() *CourseGenerationCreate {
	mutation := newCourseGenerationMutation(c.config, OpCreate)
	return &CourseGenerationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseGeneration entities.
func (c *CourseGenerationClient) CreateBulk(builders ...*CourseGenerationCreate) *CourseGenerationCreateBulk {
	return &CourseGenerationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseGenerationClient) MapCreateBulk(slice any, setFunc func(*CourseGenerationCreate, int)) *CourseGenerationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseGenerationCreateBulk{err: fmt.Errorf("calling to CourseGenerationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseGenerationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseGenerationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseGeneration.
func (c *CourseGenerationClient) Update() *CourseGenerationUpdate {
	mutation := newCourseGenerationMutation(c.config, OpUpdate)
	return &CourseGenerationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseGenerationClient) UpdateOne(_m *CourseGeneration) *CourseGenerationUpdateOne {
	mutation := newCourseGenerationMutation(c.config, OpUpdateOne, withCourseGeneration(_m))
	return &CourseGenerationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseGenerationClient) UpdateOneID(id int) *CourseGenerationUpdateOne {
	mutation := newCourseGenerationMutation(c.config, OpUpdateOne, withCourseGenerationID(id))
	return &CourseGenerationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseGeneration.
func (c *CourseGenerationClient) Delete() *CourseGenerationDelete {
	mutation := newCourseGenerationMutation(c.config, OpDelete)
	return &CourseGenerationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseGenerationClient) DeleteOne(_m *CourseGeneration) *CourseGenerationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseGenerationClient) DeleteOneID(id int) *CourseGenerationDeleteOne {
	builder := c.Delete().Where(coursegeneration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseGenerationDeleteOne{builder}
}

// Query returns a query builder for CourseGeneration.
func (c *CourseGenerationClient) Query() *CourseGenerationQuery {
	return &CourseGenerationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseGeneration},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseGeneration entity by its id.
func (c *CourseGenerationClient) Get(ctx context.Context, id int) (*CourseGeneration, error) {
	return c.Query().Where(coursegeneration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseGenerationClient) GetX(ctx context.Context, id int) *CourseGeneration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChapters queries the chapters edge of a CourseGeneration.
func (c *CourseGenerationClient) QueryChapters(_m *CourseGeneration) *ChapterQuery {
	query := (&ChapterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(coursegeneration.Table, coursegeneration.FieldID, id),
			sqlgraph.To(chapter.Table, chapter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, coursegeneration.ChaptersTable, coursegeneration.ChaptersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogs queries the logs edge of a CourseGeneration.
func (c *CourseGenerationClient) QueryLogs(_m *CourseGeneration) *GenerationLogQuery {
	query := (&GenerationLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(coursegeneration.Table, coursegeneration.FieldID, id),
			sqlgraph.To(generationlog.Table, generationlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, coursegeneration.LogsTable, coursegeneration.LogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CourseGenerationClient) Hooks() []Hook {
	return c.hooks.CourseGeneration
}

// Interceptors returns the client interceptors.
func (c *CourseGenerationClient) Interceptors() []Interceptor {
	return c.inters.CourseGeneration
}

func (c *CourseGenerationClient) mutate(ctx context.Context, m *CourseGenerationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseGenerationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseGenerationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseGenerationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseGenerationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseGeneration mutation op: %q", m.Op())
	}
}

// ExternalArticleClient is a client for the ExternalArticle schema.
type ExternalArticleClient struct {
	config
}

// NewExternalArticleClient returns a client for the ExternalArticle from the given config.
func NewExternalArticleClient(c config) *ExternalArticleClient {
	return &ExternalArticleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `externalarticle.Hooks(f(g(h())))`.
func (c *ExternalArticleClient) Use(hooks ...Hook) {
	c.hooks.ExternalArticle = append(c.hooks.ExternalArticle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `externalarticle.Intercept(f(g(h())))`.
func (c *ExternalArticleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExternalArticle = append(c.inters.ExternalArticle, interceptors...)
}

// Create returns a builder for creating a ExternalArticle entity.
func (c *ExternalArticleClient) Create() *ExternalArticleCreate {
	mutation := newExternalArticleMutation(c.config, OpCreate)
	return &ExternalArticleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExternalArticle entities.
func (c *ExternalArticleClient) CreateBulk(builders ...*ExternalArticleCreate) *ExternalArticleCreateBulk {
	return &ExternalArticleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExternalArticleClient) MapCreateBulk(slice any, setFunc func(*ExternalArticleCreate, int)) *ExternalArticleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExternalArticleCreateBulk{err: fmt.Errorf("calling to ExternalArticleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExternalArticleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExternalArticleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExternalArticle.
func (c *ExternalArticleClient) Update() *ExternalArticleUpdate {
	mutation := newExternalArticleMutation(c.config, OpUpdate)
	return &ExternalArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExternalArticleClient) UpdateOne(_m *ExternalArticle) *ExternalArticleUpdateOne {
	mutation := newExternalArticleMutation(c.config, OpUpdateOne, withExternalArticle(_m))
	return &ExternalArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExternalArticleClient) UpdateOneID(id int) *ExternalArticleUpdateOne {
	mutation := newExternalArticleMutation(c.config, OpUpdateOne, withExternalArticleID(id))
	return &ExternalArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExternalArticle.
func (c *ExternalArticleClient) Delete() *ExternalArticleDelete {
	mutation := newExternalArticleMutation(c.config, OpDelete)
	return &ExternalArticleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExternalArticleClient) DeleteOne(_m *ExternalArticle) *ExternalArticleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExternalArticleClient) DeleteOneID(id int) *ExternalArticleDeleteOne {
	builder := c.Delete().Where(externalarticle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExternalArticleDeleteOne{builder}
}

// Query returns a query builder for ExternalArticle.
func (c *ExternalArticleClient) Query() *ExternalArticleQuery {
	return &ExternalArticleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExternalArticle},
		inters: c.Interceptors(),
	}
}

// Get returns a ExternalArticle entity by its id.
func (c *ExternalArticleClient) Get(ctx context.Context, id int) (*ExternalArticle, error) {
	return c.Query().Where(externalarticle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExternalArticleClient) GetX(ctx context.Context, id int) *ExternalArticle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a ExternalArticle.
func (c *ExternalArticleClient) QueryLesson(_m *ExternalArticle) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(externalarticle.Table, externalarticle.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, externalarticle.LessonTable, externalarticle.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExternalArticleClient) Hooks() []Hook {
	return c.hooks.ExternalArticle
}

// Interceptors returns the client interceptors.
func (c *ExternalArticleClient) Interceptors() []Interceptor {
	return c.inters.ExternalArticle
}

func (c *ExternalArticleClient) mutate(ctx context.Context, m *ExternalArticleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExternalArticleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExternalArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExternalArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExternalArticleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExternalArticle mutation op: %q", m.Op())
	}
}

// GenerationLogClient is a client for the GenerationLog schema.
type GenerationLogClient struct {
	config
}

// NewGenerationLogClient returns a client for the GenerationLog from the given config.
func NewGenerationLogClient(c config) *GenerationLogClient {
	return &GenerationLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationlog.Hooks(f(g(h())))`.
func (c *GenerationLogClient) Use(hooks ...Hook) {
	c.hooks.GenerationLog = append(c.hooks.GenerationLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationlog.Intercept(f(g(h())))`.
func (c *GenerationLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationLog = append(c.inters.GenerationLog, interceptors...)
}

// Create returns a builder for creating a GenerationLog entity.
func (c *GenerationLogClient) Create() *GenerationLogCreate {
	mutation := newGenerationLogMutation(c.config, OpCreate)
	return &GenerationLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationLog entities.
func (c *GenerationLogClient) CreateBulk(builders ...*GenerationLogCreate) *GenerationLogCreateBulk {
	return &GenerationLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationLogClient) MapCreateBulk(slice any, setFunc func(*GenerationLogCreate, int)) *GenerationLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationLogCreateBulk{err: fmt.Errorf("calling to GenerationLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationLog.
func (c *GenerationLogClient) Update() *GenerationLogUpdate {
	mutation := newGenerationLogMutation(c.config, OpUpdate)
	return &GenerationLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationLogClient) UpdateOne(_m *GenerationLog) *GenerationLogUpdateOne {
	mutation := newGenerationLogMutation(c.config, OpUpdateOne, withGenerationLog(_m))
	return &GenerationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationLogClient) UpdateOneID(id int) *GenerationLogUpdateOne {
	mutation := newGenerationLogMutation(c.config, OpUpdateOne, withGenerationLogID(id))
	return &GenerationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationLog.
func (c *GenerationLogClient) Delete() *GenerationLogDelete {
	mutation := newGenerationLogMutation(c.config, OpDelete)
	return &GenerationLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationLogClient) DeleteOne(_m *GenerationLog) *GenerationLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationLogClient) DeleteOneID(id int) *GenerationLogDeleteOne {
	builder := c.Delete().Where(generationlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationLogDeleteOne{builder}
}

// Query returns a query builder for GenerationLog.
func (c *GenerationLogClient) Query() *GenerationLogQuery {
	return &GenerationLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationLog},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationLog entity by its id.
func (c *GenerationLogClient) Get(ctx context.Context, id int) (*GenerationLog, error) {
	return c.Query().Where(generationlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationLogClient) GetX(ctx context.Context, id int) *GenerationLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCourseGeneration queries the course_generation edge of a GenerationLog.
func (c *GenerationLogClient) QueryCourseGeneration(_m *GenerationLog) *CourseGenerationQuery {
	query := (&CourseGenerationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generationlog.Table, generationlog.FieldID, id),
			sqlgraph.To(coursegeneration.Table, coursegeneration.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generationlog.CourseGenerationTable, generationlog.CourseGenerationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GenerationLogClient) Hooks() []Hook {
	return c.hooks.GenerationLog
}

// Interceptors returns the client interceptors.
func (c *GenerationLogClient) Interceptors() []Interceptor {
	return c.inters.GenerationLog
}

func (c *GenerationLogClient) mutate(ctx context.Context, m *GenerationLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationLog mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(_m *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(_m))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id int) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(_m *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id int) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id int) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id int) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChapter queries the chapter edge of a Lesson.
func (c *LessonClient) QueryChapter(_m *Lesson) *ChapterQuery {
	query := (&ChapterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(chapter.Table, chapter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lesson.ChapterTable, lesson.ChapterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuiz queries the quiz edge of a Lesson.
func (c *LessonClient) QueryQuiz(_m *Lesson) *QuizQuery {
	query := (&QuizClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(quiz.Table, quiz.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.QuizTable, lesson.QuizColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArticle queries the article edge of a Lesson.
func (c *LessonClient) QueryArticle(_m *Lesson) *ArticleQuery {
	query := (&ArticleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(article.Table, article.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.ArticleTable, lesson.ArticleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExternalArticle queries the external_article edge of a Lesson.
func (c *LessonClient) QueryExternalArticle(_m *Lesson) *ExternalArticleQuery {
	query := (&ExternalArticleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(externalarticle.Table, externalarticle.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.ExternalArticleTable, lesson.ExternalArticleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVideos queries the videos edge of a Lesson.
func (c *LessonClient) QueryVideos(_m *Lesson) *VideoQuery {
	query := (&VideoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(video.Table, video.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lesson.VideosTable, lesson.VideosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProject queries the project edge of a Lesson.
func (c *LessonClient) QueryProject(_m *Lesson) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, lesson.ProjectTable, lesson.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTextQuestions queries the text_questions edge of a Lesson.
func (c *LessonClient) QueryTextQuestions(_m *Lesson) *TextResponseQuestionQuery {
	query := (&TextResponseQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(textresponsequestion.Table, textresponsequestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lesson.TextQuestionsTable, lesson.TextQuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTextSubmissions queries the text_submissions edge of a Lesson.
func (c *LessonClient) QueryTextSubmissions(_m *Lesson) *TextResponseSubmissionQuery {
	query := (&TextResponseSubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(textresponsesubmission.Table, textresponsesubmission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lesson.TextSubmissionsTable, lesson.TextSubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lesson mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id int) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id int) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id int) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id int) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a Project.
func (c *ProjectClient) QueryLesson(_m *Project) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, project.LessonTable, project.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Project.
func (c *ProjectClient) QueryFiles(_m *Project) *ProjectFileQuery {
	query := (&ProjectFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(projectfile.Table, projectfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.FilesTable, project.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ProjectFileClient is a client for the ProjectFile schema.
type ProjectFileClient struct {
	config
}

// NewProjectFileClient returns a client for the ProjectFile from the given config.
func NewProjectFileClient(c config) *ProjectFileClient {
	return &ProjectFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectfile.Hooks(f(g(h())))`.
func (c *ProjectFileClient) Use(hooks ...Hook) {
	c.hooks.ProjectFile = append(c.hooks.ProjectFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectfile.Intercept(f(g(h())))`.
func (c *ProjectFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectFile = append(c.inters.ProjectFile, interceptors...)
}

// Create returns a builder for creating a ProjectFile entity.
func (c *ProjectFileClient) Create() *ProjectFileCreate {
	mutation := newProjectFileMutation(c.config, OpCreate)
	return &ProjectFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectFile entities.
func (c *ProjectFileClient) CreateBulk(builders ...*ProjectFileCreate) *ProjectFileCreateBulk {
	return &ProjectFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectFileClient) MapCreateBulk(slice any, setFunc func(*ProjectFileCreate, int)) *ProjectFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectFileCreateBulk{err: fmt.Errorf("calling to ProjectFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectFile.
func (c *ProjectFileClient) Update() *ProjectFileUpdate {
	mutation := newProjectFileMutation(c.config, OpUpdate)
	return &ProjectFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectFileClient) UpdateOne(_m *ProjectFile) *ProjectFileUpdateOne {
	mutation := newProjectFileMutation(c.config, OpUpdateOne, withProjectFile(_m))
	return &ProjectFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectFileClient) UpdateOneID(id int) *ProjectFileUpdateOne {
	mutation := newProjectFileMutation(c.config, OpUpdateOne, withProjectFileID(id))
	return &ProjectFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectFile.
func (c *ProjectFileClient) Delete() *ProjectFileDelete {
	mutation := newProjectFileMutation(c.config, OpDelete)
	return &ProjectFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectFileClient) DeleteOne(_m *ProjectFile) *ProjectFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectFileClient) DeleteOneID(id int) *ProjectFileDeleteOne {
	builder := c.Delete().Where(projectfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectFileDeleteOne{builder}
}

// Query returns a query builder for ProjectFile.
func (c *ProjectFileClient) Query() *ProjectFileQuery {
	return &ProjectFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectFile entity by its id.
func (c *ProjectFileClient) Get(ctx context.Context, id int) (*ProjectFile, error) {
	return c.Query().Where(projectfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectFileClient) GetX(ctx context.Context, id int) *ProjectFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a ProjectFile.
func (c *ProjectFileClient) QueryProject(_m *ProjectFile) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectfile.Table, projectfile.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, projectfile.ProjectTable, projectfile.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectFileClient) Hooks() []Hook {
	return c.hooks.ProjectFile
}

// Interceptors returns the client interceptors.
func (c *ProjectFileClient) Interceptors() []Interceptor {
	return c.inters.ProjectFile
}

func (c *ProjectFileClient) mutate(ctx context.Context, m *ProjectFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectFile mutation op: %q", m.Op())
	}
}

// QuizClient is a client for the Quiz schema.
type QuizClient struct {
	config
}

// NewQuizClient returns a client for the Quiz from the given config.
func NewQuizClient(c config) *QuizClient {
	return &QuizClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quiz.Hooks(f(g(h())))`.
func (c *QuizClient) Use(hooks ...Hook) {
	c.hooks.Quiz = append(c.hooks.Quiz, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quiz.Intercept(f(g(h())))`.
func (c *QuizClient) Intercept(interceptors ...Interceptor) {
	c.inters.Quiz = append(c.inters.Quiz, interceptors...)
}

// Create returns a builder for creating a Quiz entity.
func (c *QuizClient) Create() *QuizCreate {
	mutation := newQuizMutation(c.config, OpCreate)
	return &QuizCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Quiz entities.
func (c *QuizClient) CreateBulk(builders ...*QuizCreate) *QuizCreateBulk {
	return &QuizCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizClient) MapCreateBulk(slice any, setFunc func(*QuizCreate, int)) *QuizCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizCreateBulk{err: fmt.Errorf("calling to QuizClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Quiz.
func (c *QuizClient) Update() *QuizUpdate {
	mutation := newQuizMutation(c.config, OpUpdate)
	return &QuizUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizClient) UpdateOne(_m *Quiz) *QuizUpdateOne {
	mutation := newQuizMutation(c.config, OpUpdateOne, withQuiz(_m))
	return &QuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizClient) UpdateOneID(id int) *QuizUpdateOne {
	mutation := newQuizMutation(c.config, OpUpdateOne, withQuizID(id))
	return &QuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Quiz.
func (c *QuizClient) Delete() *QuizDelete {
	mutation := newQuizMutation(c.config, OpDelete)
	return &QuizDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizClient) DeleteOne(_m *Quiz) *QuizDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizClient) DeleteOneID(id int) *QuizDeleteOne {
	builder := c.Delete().Where(quiz.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizDeleteOne{builder}
}

// Query returns a query builder for Quiz.
func (c *QuizClient) Query() *QuizQuery {
	return &QuizQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuiz},
		inters: c.Interceptors(),
	}
}

// Get returns a Quiz entity by its id.
func (c *QuizClient) Get(ctx context.Context, id int) (*Quiz, error) {
	return c.Query().Where(quiz.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizClient) GetX(ctx context.Context, id int) *Quiz {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a Quiz.
func (c *QuizClient) QueryLesson(_m *Quiz) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quiz.Table, quiz.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, quiz.LessonTable, quiz.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttempts queries the attempts edge of a Quiz.
func (c *QuizClient) QueryAttempts(_m *Quiz) *QuizAttemptQuery {
	query := (&QuizAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quiz.Table, quiz.FieldID, id),
			sqlgraph.To(quizattempt.Table, quizattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, quiz.AttemptsTable, quiz.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuizClient) Hooks() []Hook {
	return c.hooks.Quiz
}

// Interceptors returns the client interceptors.
func (c *QuizClient) Interceptors() []Interceptor {
	return c.inters.Quiz
}

func (c *QuizClient) mutate(ctx context.Context, m *QuizMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Quiz mutation op: %q", m.Op())
	}
}

// QuizAttemptClient is a client for the QuizAttempt schema.
type QuizAttemptClient struct {
	config
}

// NewQuizAttemptClient returns a client for the QuizAttempt from the given config.
func NewQuizAttemptClient(c config) *QuizAttemptClient {
	return &QuizAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizattempt.Hooks(f(g(h())))`.
func (c *QuizAttemptClient) Use(hooks ...Hook) {
	c.hooks.QuizAttempt = append(c.hooks.QuizAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizattempt.Intercept(f(g(h())))`.
func (c *QuizAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAttempt = append(c.inters.QuizAttempt, interceptors...)
}

// Create returns a builder for creating a QuizAttempt entity.
func (c *QuizAttemptClient) Create() *QuizAttemptCreate {
	mutation := newQuizAttemptMutation(c.config, OpCreate)
	return &QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAttempt entities.
func (c *QuizAttemptClient) CreateBulk(builders ...*QuizAttemptCreate) *QuizAttemptCreateBulk {
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAttemptClient) MapCreateBulk(slice any, setFunc func(*QuizAttemptCreate, int)) *QuizAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAttemptCreateBulk{err: fmt.Errorf("calling to QuizAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAttempt.
func (c *QuizAttemptClient) Update() *QuizAttemptUpdate {
	mutation := newQuizAttemptMutation(c.config, OpUpdate)
	return &QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAttemptClient) UpdateOne(_m *QuizAttempt) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttempt(_m))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAttemptClient) UpdateOneID(id int) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttemptID(id))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAttempt.
func (c *QuizAttemptClient) Delete() *QuizAttemptDelete {
	mutation := newQuizAttemptMutation(c.config, OpDelete)
	return &QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAttemptClient) DeleteOne(_m *QuizAttempt) *QuizAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAttemptClient) DeleteOneID(id int) *QuizAttemptDeleteOne {
	builder := c.Delete().Where(quizattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAttemptDeleteOne{builder}
}

// Query returns a query builder for QuizAttempt.
func (c *QuizAttemptClient) Query() *QuizAttemptQuery {
	return &QuizAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAttempt entity by its id.
func (c *QuizAttemptClient) Get(ctx context.Context, id int) (*QuizAttempt, error) {
	return c.Query().Where(quizattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAttemptClient) GetX(ctx context.Context, id int) *QuizAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuiz queries the quiz edge of a QuizAttempt.
func (c *QuizAttemptClient) QueryQuiz(_m *QuizAttempt) *QuizQuery {
	query := (&QuizClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quizattempt.Table, quizattempt.FieldID, id),
			sqlgraph.To(quiz.Table, quiz.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quizattempt.QuizTable, quizattempt.QuizColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuizAttemptClient) Hooks() []Hook {
	return c.hooks.QuizAttempt
}

// Interceptors returns the client interceptors.
func (c *QuizAttemptClient) Interceptors() []Interceptor {
	return c.inters.QuizAttempt
}

func (c *QuizAttemptClient) mutate(ctx context.Context, m *QuizAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAttempt mutation op: %q", m.Op())
	}
}

// TextResponseQuestionClient is a client for the TextResponseQuestion schema.
type TextResponseQuestionClient struct {
	config
}

// NewTextResponseQuestionClient returns a client for the TextResponseQuestion from the given config.
func NewTextResponseQuestionClient(c config) *TextResponseQuestionClient {
	return &TextResponseQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `textresponsequestion.Hooks(f(g(h())))`.
func (c *TextResponseQuestionClient) Use(hooks ...Hook) {
	c.hooks.TextResponseQuestion = append(c.hooks.TextResponseQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `textresponsequestion.Intercept(f(g(h())))`.
func (c *TextResponseQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TextResponseQuestion = append(c.inters.TextResponseQuestion, interceptors...)
}

// Create returns a builder for creating a TextResponseQuestion entity.
func (c *TextResponseQuestionClient) Create() *TextResponseQuestionCreate {
	mutation := newTextResponseQuestionMutation(c.config, OpCreate)
	return &TextResponseQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TextResponseQuestion entities.
func (c *TextResponseQuestionClient) CreateBulk(builders ...*TextResponseQuestionCreate) *TextResponseQuestionCreateBulk {
	return &TextResponseQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TextResponseQuestionClient) MapCreateBulk(slice any, setFunc func(*TextResponseQuestionCreate, int)) *TextResponseQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TextResponseQuestionCreateBulk{err: fmt.Errorf("calling to TextResponseQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TextResponseQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TextResponseQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TextResponseQuestion.
func (c *TextResponseQuestionClient) Update() *TextResponseQuestionUpdate {
	mutation := newTextResponseQuestionMutation(c.config, OpUpdate)
	return &TextResponseQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TextResponseQuestionClient) UpdateOne(_m *TextResponseQuestion) *TextResponseQuestionUpdateOne {
	mutation := newTextResponseQuestionMutation(c.config, OpUpdateOne, withTextResponseQuestion(_m))
	return &TextResponseQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TextResponseQuestionClient) UpdateOneID(id int) *TextResponseQuestionUpdateOne {
	mutation := newTextResponseQuestionMutation(c.config, OpUpdateOne, withTextResponseQuestionID(id))
	return &TextResponseQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TextResponseQuestion.
func (c *TextResponseQuestionClient) Delete() *TextResponseQuestionDelete {
	mutation := newTextResponseQuestionMutation(c.config, OpDelete)
	return &TextResponseQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TextResponseQuestionClient) DeleteOne(_m *TextResponseQuestion) *TextResponseQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TextResponseQuestionClient) DeleteOneID(id int) *TextResponseQuestionDeleteOne {
	builder := c.Delete().Where(textresponsequestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TextResponseQuestionDeleteOne{builder}
}

// Query returns a query builder for TextResponseQuestion.
func (c *TextResponseQuestionClient) Query() *TextResponseQuestionQuery {
	return &TextResponseQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTextResponseQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a TextResponseQuestion entity by its id.
func (c *TextResponseQuestionClient) Get(ctx context.Context, id int) (*TextResponseQuestion, error) {
	return c.Query().Where(textresponsequestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TextResponseQuestionClient) GetX(ctx context.Context, id int) *TextResponseQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a TextResponseQuestion.
func (c *TextResponseQuestionClient) QueryLesson(_m *TextResponseQuestion) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(textresponsequestion.Table, textresponsequestion.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, textresponsequestion.LessonTable, textresponsequestion.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TextResponseQuestionClient) Hooks() []Hook {
	return c.hooks.TextResponseQuestion
}

// Interceptors returns the client interceptors.
func (c *TextResponseQuestionClient) Interceptors() []Interceptor {
	return c.inters.TextResponseQuestion
}

func (c *TextResponseQuestionClient) mutate(ctx context.Context, m *TextResponseQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TextResponseQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TextResponseQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TextResponseQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TextResponseQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TextResponseQuestion mutation op: %q", m.Op())
	}
}

// TextResponseSubmissionClient is a client for the TextResponseSubmission schema.
type TextResponseSubmissionClient struct {
	config
}

// NewTextResponseSubmissionClient returns a client for the TextResponseSubmission from the given config.
func NewTextResponseSubmissionClient(c config) *TextResponseSubmissionClient {
	return &TextResponseSubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `textresponsesubmission.Hooks(f(g(h())))`.
func (c *TextResponseSubmissionClient) Use(hooks ...Hook) {
	c.hooks.TextResponseSubmission = append(c.hooks.TextResponseSubmission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `textresponsesubmission.Intercept(f(g(h())))`.
func (c *TextResponseSubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TextResponseSubmission = append(c.inters.TextResponseSubmission, interceptors...)
}

// Create returns a builder for creating a TextResponseSubmission entity.
func (c *TextResponseSubmissionClient) Create() *TextResponseSubmissionCreate {
	mutation := newTextResponseSubmissionMutation(c.config, OpCreate)
	return &TextResponseSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TextResponseSubmission entities.
func (c *TextResponseSubmissionClient) CreateBulk(builders ...*TextResponseSubmissionCreate) *TextResponseSubmissionCreateBulk {
	return &TextResponseSubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TextResponseSubmissionClient) MapCreateBulk(slice any, setFunc func(*TextResponseSubmissionCreate, int)) *TextResponseSubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TextResponseSubmissionCreateBulk{err: fmt.Errorf("calling to TextResponseSubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TextResponseSubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TextResponseSubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TextResponseSubmission.
func (c *TextResponseSubmissionClient) Update() *TextResponseSubmissionUpdate {
	mutation := newTextResponseSubmissionMutation(c.config, OpUpdate)
	return &TextResponseSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TextResponseSubmissionClient) UpdateOne(_m *TextResponseSubmission) *TextResponseSubmissionUpdateOne {
	mutation := newTextResponseSubmissionMutation(c.config, OpUpdateOne, withTextResponseSubmission(_m))
	return &TextResponseSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TextResponseSubmissionClient) UpdateOneID(id int) *TextResponseSubmissionUpdateOne {
	mutation := newTextResponseSubmissionMutation(c.config, OpUpdateOne, withTextResponseSubmissionID(id))
	return &TextResponseSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TextResponseSubmission.
func (c *TextResponseSubmissionClient) Delete() *TextResponseSubmissionDelete {
	mutation := newTextResponseSubmissionMutation(c.config, OpDelete)
	return &TextResponseSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TextResponseSubmissionClient) DeleteOne(_m *TextResponseSubmission) *TextResponseSubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TextResponseSubmissionClient) DeleteOneID(id int) *TextResponseSubmissionDeleteOne {
	builder := c.Delete().Where(textresponsesubmission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TextResponseSubmissionDeleteOne{builder}
}

// Query returns a query builder for TextResponseSubmission.
func (c *TextResponseSubmissionClient) Query() *TextResponseSubmissionQuery {
	return &TextResponseSubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTextResponseSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a TextResponseSubmission entity by its id.
func (c *TextResponseSubmissionClient) Get(ctx context.Context, id int) (*TextResponseSubmission, error) {
	return c.Query().Where(textresponsesubmission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TextResponseSubmissionClient) GetX(ctx context.Context, id int) *TextResponseSubmission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a TextResponseSubmission.
func (c *TextResponseSubmissionClient) QueryLesson(_m *TextResponseSubmission) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(textresponsesubmission.Table, textresponsesubmission.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, textresponsesubmission.LessonTable, textresponsesubmission.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TextResponseSubmissionClient) Hooks() []Hook {
	return c.hooks.TextResponseSubmission
}

// Interceptors returns the client interceptors.
func (c *TextResponseSubmissionClient) Interceptors() []Interceptor {
	return c.inters.TextResponseSubmission
}

func (c *TextResponseSubmissionClient) mutate(ctx context.Context, m *TextResponseSubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TextResponseSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TextResponseSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TextResponseSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TextResponseSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TextResponseSubmission mutation op: %q", m.Op())
	}
}

// VideoClient is a client for the Video schema.
type VideoClient struct {
	config
}

// NewVideoClient returns a client for the Video from the given config.
func NewVideoClient(c config) *VideoClient {
	return &VideoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `video.Hooks(f(g(h())))`.
func (c *VideoClient) Use(hooks ...Hook) {
	c.hooks.Video = append(c.hooks.Video, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `video.Intercept(f(g(h())))`.
func (c *VideoClient) Intercept(interceptors ...Interceptor) {
	c.inters.Video = append(c.inters.Video, interceptors...)
}

// Create returns a builder for creating a Video entity.
func (c *VideoClient) Create() *VideoCreate {
	mutation := newVideoMutation(c.config, OpCreate)
	return &VideoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Video entities.
func (c *VideoClient) CreateBulk(builders ...*VideoCreate) *VideoCreateBulk {
	return &VideoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VideoClient) MapCreateBulk(slice any, setFunc func(*VideoCreate, int)) *VideoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VideoCreateBulk{err: fmt.Errorf("calling to VideoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VideoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VideoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Video.
func (c *VideoClient) Update() *VideoUpdate {
	mutation := newVideoMutation(c.config, OpUpdate)
	return &VideoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VideoClient) UpdateOne(_m *Video) *VideoUpdateOne {
	mutation := newVideoMutation(c.config, OpUpdateOne, withVideo(_m))
	return &VideoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VideoClient) UpdateOneID(id int) *VideoUpdateOne {
	mutation := newVideoMutation(c.config, OpUpdateOne, withVideoID(id))
	return &VideoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Video.
func (c *VideoClient) Delete() *VideoDelete {
	mutation := newVideoMutation(c.config, OpDelete)
	return &VideoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VideoClient) DeleteOne(_m *Video) *VideoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VideoClient) DeleteOneID(id int) *VideoDeleteOne {
	builder := c.Delete().Where(video.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VideoDeleteOne{builder}
}

// Query returns a query builder for Video.
func (c *VideoClient) Query() *VideoQuery {
	return &VideoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVideo},
		inters: c.Interceptors(),
	}
}

// Get returns a Video entity by its id.
func (c *VideoClient) Get(ctx context.Context, id int) (*Video, error) {
	return c.Query().Where(video.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VideoClient) GetX(ctx context.Context, id int) *Video {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a Video.
func (c *VideoClient) QueryLesson(_m *Video) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(video.Table, video.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, video.LessonTable, video.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VideoClient) Hooks() []Hook {
	return c.hooks.Video
}

// Interceptors returns the client interceptors.
func (c *VideoClient) Interceptors() []Interceptor {
	return c.inters.Video
}

func (c *VideoClient) mutate(ctx context.Context, m *VideoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VideoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VideoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VideoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VideoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Video mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Article, Chapter, CourseGeneration, ExternalArticle, GenerationLog,
		LLMRequestEvent, Lesson, Project, ProjectFile, Quiz, QuizAttempt,
		TextResponseQuestion, TextResponseSubmission, Video []ent.Hook
	}
	inters struct {
		Article, Chapter, CourseGeneration, ExternalArticle, GenerationLog,
		LLMRequestEvent, Lesson, Project, ProjectFile, Quiz, QuizAttempt,
		TextResponseQuestion, TextResponseSubmission, Video []ent.Interceptor
	}
)
