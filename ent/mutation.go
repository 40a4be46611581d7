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
	"github.com/abhisek/coursegen/ent/article"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/generationlog"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/llmrequestevent"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/projectfile"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/quizattempt"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
	"github.com/abhisek/coursegen/ent/textresponsesubmission"
	"github.com/abhisek/coursegen/ent/video"
	"github.com/abhisek/coursegen/internal/course"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArticle                = "Article"
	TypeChapter                = "Chapter"
	TypeCourseGeneration       = "CourseGeneration"
	TypeExternalArticle        = "ExternalArticle"
	TypeGenerationLog          = "GenerationLog"
	TypeLLMRequestEvent        = "LLMRequestEvent"
	TypeLesson                 = "Lesson"
	TypeProject                = "Project"
	TypeProjectFile            = "ProjectFile"
	TypeQuiz                   = "Quiz"
	TypeQuizAttempt            = "QuizAttempt"
	TypeTextResponseQuestion   = "TextResponseQuestion"
	TypeTextResponseSubmission = "TextResponseSubmission"
	TypeVideo                  = "Video"
)

// ArticleMutation represents an operation that mutates the Article nodes in the graph.
type ArticleMutation struct {
	config
	op            Op
	typ           string
	id            *int
	create_time   *time.Time
	update_time   *time.Time
	content       *string
	clearedFields map[string]struct{}
	lesson        *int
	clearedlesson bool
	done          bool
	oldValue      func(context.Context) (*Article, error)
	predicates    []predicate.Article
}

var _ ent.Mutation = (*ArticleMutation)(nil)

// articleOption allows management of the mutation configuration using functional options.
type articleOption func(*ArticleMutation)

// newArticleMutation creates new mutation for the Article entity.
func newArticleMutation(c config, op Op, opts ...articleOption) *ArticleMutation {
	m := &ArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArticleID sets the ID field of the mutation.
func withArticleID(id int) articleOption {
	return func(m *ArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *Article
		)
		m.oldValue = func(ctx context.Context) (*Article, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Article.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArticle sets the old Article of the mutation.
func withArticle(node *Article) articleOption {
	return func(m *ArticleMutation) {
		m.oldValue = func(context.Context) (*Article, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArticleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArticleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Article.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *ArticleMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *ArticleMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *ArticleMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ArticleMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ArticleMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ArticleMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *ArticleMutation) SetLessonID(i int) {
	m.lesson = &i
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *ArticleMutation) LessonID() (r int, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldLessonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *ArticleMutation) ResetLessonID() {
	m.lesson = nil
}

// SetContent sets the "content" field.
func (m *ArticleMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ArticleMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ArticleMutation) ResetContent() {
	m.content = nil
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (m *ArticleMutation) ClearLesson() {
	m.clearedlesson = true
	m.clearedFields[article.FieldLessonID] = struct{}{}
}

// LessonCleared reports if the "lesson" edge to the Lesson entity was cleared.
func (m *ArticleMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *ArticleMutation) LessonIDs() (ids []int) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *ArticleMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// Where appends a list predicates to the ArticleMutation builder.
func (m *ArticleMutation) Where(ps ...predicate.Article) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Article, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Article).
func (m *ArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArticleMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.create_time != nil {
		fields = append(fields, article.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, article.FieldUpdateTime)
	}
	if m.lesson != nil {
		fields = append(fields, article.FieldLessonID)
	}
	if m.content != nil {
		fields = append(fields, article.FieldContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case article.FieldCreateTime:
		return m.CreateTime()
	case article.FieldUpdateTime:
		return m.UpdateTime()
	case article.FieldLessonID:
		return m.LessonID()
	case article.FieldContent:
		return m.Content()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case article.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case article.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case article.FieldLessonID:
		return m.OldLessonID(ctx)
	case article.FieldContent:
		return m.OldContent(ctx)
	}
	return nil, fmt.Errorf("unknown Article field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case article.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case article.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case article.FieldLessonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case article.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArticleMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArticleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Article numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArticleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArticleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Article nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArticleMutation) ResetField(name string) error {
	switch name {
	case article.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case article.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case article.FieldLessonID:
		m.ResetLessonID()
		return nil
	case article.FieldContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lesson != nil {
		edges = append(edges, article.EdgeLesson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArticleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case article.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArticleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlesson {
		edges = append(edges, article.EdgeLesson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArticleMutation) EdgeCleared(name string) bool {
	switch name {
	case article.EdgeLesson:
		return m.clearedlesson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArticleMutation) ClearEdge(name string) error {
	switch name {
	case article.EdgeLesson:
		m.ClearLesson()
		return nil
	}
	return fmt.Errorf("unknown Article unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArticleMutation) ResetEdge(name string) error {
	switch name {
	case article.EdgeLesson:
		m.ResetLesson()
		return nil
	}
	return fmt.Errorf("unknown Article edge %s", name)
}

// ChapterMutation represents an operation that mutates the Chapter nodes in the graph.
type ChapterMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	number                   *int
	addnumber                *int
	name                     *string
	description              *string
	difficulty               *int
	adddifficulty            *int
	clearedFields            map[string]struct{}
	course_generation        *int
	clearedcourse_generation bool
	lessons                  map[int]struct{}
	removedlessons           map[int]struct{}
	clearedlessons           bool
	done                     bool
	oldValue                 func(context.Context) (*Chapter, error)
	predicates               []predicate.Chapter
}

var _ ent.Mutation = (*ChapterMutation)(nil)

// chapterOption allows management of the mutation configuration using functional options.
type chapterOption func(*ChapterMutation)

// newChapterMutation creates new mutation for the Chapter entity.
func newChapterMutation(c config, op Op, opts ...chapterOption) *ChapterMutation {
	m := &ChapterMutation{
		config:        c,
		op:            op,
		typ:           TypeChapter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChapterID sets the ID field of the mutation.
func withChapterID(id int) chapterOption {
	return func(m *ChapterMutation) {
		var (
			err   error
			once  sync.Once
			value *Chapter
		)
		m.oldValue = func(ctx context.Context) (*Chapter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chapter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChapter sets the old Chapter of the mutation.
func withChapter(node *Chapter) chapterOption {
	return func(m *ChapterMutation) {
		m.oldValue = func(context.Context) (*Chapter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChapterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChapterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChapterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChapterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chapter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseGenerationID sets the "course_generation_id" field.
func (m *ChapterMutation) SetCourseGenerationID(i int) {
	m.course_generation = &i
}

// CourseGenerationID returns the value of the "course_generation_id" field in the mutation.
func (m *ChapterMutation) CourseGenerationID() (r int, exists bool) {
	v := m.course_generation
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseGenerationID returns the old "course_generation_id" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldCourseGenerationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseGenerationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseGenerationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseGenerationID: %w", err)
	}
	return oldValue.CourseGenerationID, nil
}

// ResetCourseGenerationID resets all changes to the "course_generation_id" field.
func (m *ChapterMutation) ResetCourseGenerationID() {
	m.course_generation = nil
}

// SetNumber sets the "number" field.
func (m *ChapterMutation) SetNumber(i int) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *ChapterMutation) Number() (r int, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *ChapterMutation) AddNumber(i int) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *ChapterMutation) AddedNumber() (r int, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *ChapterMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetName sets the "name" field.
func (m *ChapterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChapterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ChapterMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ChapterMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ChapterMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldDescription(ctx context.Context) (v string, err error) {
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

// ResetDescription resets all changes to the "description" field.
func (m *ChapterMutation) ResetDescription() {
	m.description = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ChapterMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ChapterMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *ChapterMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *ChapterMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ChapterMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// ClearCourseGeneration clears the "course_generation" edge to the CourseGeneration entity.
func (m *ChapterMutation) ClearCourseGeneration() {
	m.clearedcourse_generation = true
	m.clearedFields[chapter.FieldCourseGenerationID] = struct{}{}
}

// CourseGenerationCleared reports if the "course_generation" edge to the CourseGeneration entity was cleared.
func (m *ChapterMutation) CourseGenerationCleared() bool {
	return m.clearedcourse_generation
}

// CourseGenerationIDs returns the "course_generation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseGenerationID instead. It exists only for internal usage by the builders.
func (m *ChapterMutation) CourseGenerationIDs() (ids []int) {
	if id := m.course_generation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourseGeneration resets all changes to the "course_generation" edge.
func (m *ChapterMutation) ResetCourseGeneration() {
	m.course_generation = nil
	m.clearedcourse_generation = false
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by ids.
func (m *ChapterMutation) AddLessonIDs(ids ...int) {
	if m.lessons == nil {
		m.lessons = make(map[int]struct{})
	}
	for i := range ids {
		m.lessons[ids[i]] = struct{}{}
	}
}

// ClearLessons clears the "lessons" edge to the Lesson entity.
func (m *ChapterMutation) ClearLessons() {
	m.clearedlessons = true
}

// LessonsCleared reports if the "lessons" edge to the Lesson entity was cleared.
func (m *ChapterMutation) LessonsCleared() bool {
	return m.clearedlessons
}

// RemoveLessonIDs removes the "lessons" edge to the Lesson entity by IDs.
func (m *ChapterMutation) RemoveLessonIDs(ids ...int) {
	if m.removedlessons == nil {
		m.removedlessons = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lessons, ids[i])
		m.removedlessons[ids[i]] = struct{}{}
	}
}

// RemovedLessons returns the removed IDs of the "lessons" edge to the Lesson entity.
func (m *ChapterMutation) RemovedLessonsIDs() (ids []int) {
	for id := range m.removedlessons {
		ids = append(ids, id)
	}
	return
}

// LessonsIDs returns the "lessons" edge IDs in the mutation.
func (m *ChapterMutation) LessonsIDs() (ids []int) {
	for id := range m.lessons {
		ids = append(ids, id)
	}
	return
}

// ResetLessons resets all changes to the "lessons" edge.
func (m *ChapterMutation) ResetLessons() {
	m.lessons = nil
	m.clearedlessons = false
	m.removedlessons = nil
}

// Where appends a list predicates to the ChapterMutation builder.
func (m *ChapterMutation) Where(ps ...predicate.Chapter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChapterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChapterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chapter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChapterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChapterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chapter).
func (m *ChapterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChapterMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.course_generation != nil {
		fields = append(fields, chapter.FieldCourseGenerationID)
	}
	if m.number != nil {
		fields = append(fields, chapter.FieldNumber)
	}
	if m.name != nil {
		fields = append(fields, chapter.FieldName)
	}
	if m.description != nil {
		fields = append(fields, chapter.FieldDescription)
	}
	if m.difficulty != nil {
		fields = append(fields, chapter.FieldDifficulty)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChapterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chapter.FieldCourseGenerationID:
		return m.CourseGenerationID()
	case chapter.FieldNumber:
		return m.Number()
	case chapter.FieldName:
		return m.Name()
	case chapter.FieldDescription:
		return m.Description()
	case chapter.FieldDifficulty:
		return m.Difficulty()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChapterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chapter.FieldCourseGenerationID:
		return m.OldCourseGenerationID(ctx)
	case chapter.FieldNumber:
		return m.OldNumber(ctx)
	case chapter.FieldName:
		return m.OldName(ctx)
	case chapter.FieldDescription:
		return m.OldDescription(ctx)
	case chapter.FieldDifficulty:
		return m.OldDifficulty(ctx)
	}
	return nil, fmt.Errorf("unknown Chapter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chapter.FieldCourseGenerationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseGenerationID(v)
		return nil
	case chapter.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case chapter.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case chapter.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case chapter.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChapterMutation) AddedFields() []string {
	var fields []string
	if m.addnumber != nil {
		fields = append(fields, chapter.FieldNumber)
	}
	if m.adddifficulty != nil {
		fields = append(fields, chapter.FieldDifficulty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChapterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chapter.FieldNumber:
		return m.AddedNumber()
	case chapter.FieldDifficulty:
		return m.AddedDifficulty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chapter.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	case chapter.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown Chapter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChapterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChapterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChapterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Chapter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChapterMutation) ResetField(name string) error {
	switch name {
	case chapter.FieldCourseGenerationID:
		m.ResetCourseGenerationID()
		return nil
	case chapter.FieldNumber:
		m.ResetNumber()
		return nil
	case chapter.FieldName:
		m.ResetName()
		return nil
	case chapter.FieldDescription:
		m.ResetDescription()
		return nil
	case chapter.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChapterMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.course_generation != nil {
		edges = append(edges, chapter.EdgeCourseGeneration)
	}
	if m.lessons != nil {
		edges = append(edges, chapter.EdgeLessons)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChapterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chapter.EdgeCourseGeneration:
		if id := m.course_generation; id != nil {
			return []ent.Value{*id}
		}
	case chapter.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.lessons))
		for id := range m.lessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChapterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlessons != nil {
		edges = append(edges, chapter.EdgeLessons)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChapterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chapter.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.removedlessons))
		for id := range m.removedlessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChapterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcourse_generation {
		edges = append(edges, chapter.EdgeCourseGeneration)
	}
	if m.clearedlessons {
		edges = append(edges, chapter.EdgeLessons)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChapterMutation) EdgeCleared(name string) bool {
	switch name {
	case chapter.EdgeCourseGeneration:
		return m.clearedcourse_generation
	case chapter.EdgeLessons:
		return m.clearedlessons
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChapterMutation) ClearEdge(name string) error {
	switch name {
	case chapter.EdgeCourseGeneration:
		m.ClearCourseGeneration()
		return nil
	}
	return fmt.Errorf("unknown Chapter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChapterMutation) ResetEdge(name string) error {
	switch name {
	case chapter.EdgeCourseGeneration:
		m.ResetCourseGeneration()
		return nil
	case chapter.EdgeLessons:
		m.ResetLessons()
		return nil
	}
	return fmt.Errorf("unknown Chapter edge %s", name)
}

// CourseGenerationMutation represents an operation that mutates the CourseGeneration nodes in the graph.
type CourseGenerationMutation struct {
	config
	op                Op
	typ               string
	id                *int
	create_time       *time.Time
	update_time       *time.Time
	prompt            *string
	experience_level  *string
	status            *coursegeneration.Status
	total_chapters    *int
	addtotal_chapters *int
	total_lessons     *int
	addtotal_lessons  *int
	course_data       *map[string]interface{}
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	chapters          map[int]struct{}
	removedchapters   map[int]struct{}
	clearedchapters   bool
	logs              map[int]struct{}
	removedlogs       map[int]struct{}
	clearedlogs       bool
	done              bool
	oldValue          func(context.Context) (*CourseGeneration, error)
	predicates        []predicate.CourseGeneration
}

var _ ent.Mutation = (*CourseGenerationMutation)(nil)

// coursegenerationOption allows management of the mutation configuration using functional options.
type coursegenerationOption func(*CourseGenerationMutation)

// newCourseGenerationMutation creates new mutation for the CourseGeneration entity.
func newCourseGenerationMutation(c config, op Op, opts ...coursegenerationOption) *CourseGenerationMutation {
	m := &CourseGenerationMutation{
		config:        c,
		op:            op,
		typ:           TypeCourseGeneration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseGenerationID sets the ID field of the mutation.
func withCourseGenerationID(id int) coursegenerationOption {
	return func(m *CourseGenerationMutation) {
		var (
			err   error
			once  sync.Once
			value *CourseGeneration
		)
		m.oldValue = func(ctx context.Context) (*CourseGeneration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourseGeneration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourseGeneration sets the old CourseGeneration of the mutation.
func withCourseGeneration(node *CourseGeneration) coursegenerationOption {
	return func(m *CourseGenerationMutation) {
		m.oldValue = func(context.Context) (*CourseGeneration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseGenerationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseGenerationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseGenerationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseGenerationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourseGeneration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *CourseGenerationMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *CourseGenerationMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the CourseGeneration entity.
// If the CourseGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseGenerationMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *CourseGenerationMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *CourseGenerationMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *CourseGenerationMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the CourseGeneration entity.
// If the CourseGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseGenerationMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *CourseGenerationMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetPrompt sets the "prompt" field.
func (m *CourseGenerationMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *CourseGenerationMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the CourseGeneration entity.
// If the CourseGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseGenerationMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *CourseGenerationMutation) ResetPrompt() {
	m.prompt = nil
}

// SetExperienceLevel sets the "experience_level" field.
func (m *CourseGenerationMutation) SetExperienceLevel(s string) {
	m.experience_level = &s
}

// ExperienceLevel returns the value of the "experience_level" field in the mutation.
func (m *CourseGenerationMutation) ExperienceLevel() (r string, exists bool) {
	v := m.experience_level
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceLevel returns the old "experience_level" field's value of the CourseGeneration entity.
// If the CourseGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseGenerationMutation) OldExperienceLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceLevel: %w", err)
	}
	return oldValue.ExperienceLevel, nil
}

// ResetExperienceLevel resets all changes to the "experience_level" field.
func (m *CourseGenerationMutation) ResetExperienceLevel() {
	m.experience_level = nil
}

// SetStatus sets the "status" field.
func (m *CourseGenerationMutation) SetStatus(c coursegeneration.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CourseGenerationMutation) Status() (r coursegeneration.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CourseGeneration entity.
// If the CourseGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseGenerationMutation) OldStatus(ctx context.Context) (v coursegeneration.Status, err error) {
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
func (m *CourseGenerationMutation) ResetStatus() {
	m.status = nil
}

// SetTotalChapters sets the "total_chapters" field.
func (m *CourseGenerationMutation) SetTotalChapters(i int) {
	m.total_chapters = &i
	m.addtotal_chapters = nil
}

// TotalChapters returns the value of the "total_chapters" field in the mutation.
func (m *CourseGenerationMutation) TotalChapters() (r int, exists bool) {
	v := m.total_chapters
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChapters returns the old "total_chapters" field's value of the CourseGeneration entity.
// If the CourseGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseGenerationMutation) OldTotalChapters(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChapters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChapters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChapters: %w", err)
	}
	return oldValue.TotalChapters, nil
}

// AddTotalChapters adds i to the "total_chapters" field.
func (m *CourseGenerationMutation) AddTotalChapters(i int) {
	if m.addtotal_chapters != nil {
		*m.addtotal_chapters += i
	} else {
		m.addtotal_chapters = &i
	}
}

// AddedTotalChapters returns the value that was added to the "total_chapters" field in this mutation.
func (m *CourseGenerationMutation) AddedTotalChapters() (r int, exists bool) {
	v := m.addtotal_chapters
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChapters resets all changes to the "total_chapters" field.
func (m *CourseGenerationMutation) ResetTotalChapters() {
	m.total_chapters = nil
	m.addtotal_chapters = nil
}

// SetTotalLessons sets the "total_lessons" field.
func (m *CourseGenerationMutation) SetTotalLessons(i int) {
	m.total_lessons = &i
	m.addtotal_lessons = nil
}

// TotalLessons returns the value of the "total_lessons" field in the mutation.
func (m *CourseGenerationMutation) TotalLessons() (r int, exists bool) {
	v := m.total_lessons
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLessons returns the old "total_lessons" field's value of the CourseGeneration entity.
// If the CourseGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseGenerationMutation) OldTotalLessons(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLessons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLessons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLessons: %w", err)
	}
	return oldValue.TotalLessons, nil
}

// AddTotalLessons adds i to the "total_lessons" field.
func (m *CourseGenerationMutation) AddTotalLessons(i int) {
	if m.addtotal_lessons != nil {
		*m.addtotal_lessons += i
	} else {
		m.addtotal_lessons = &i
	}
}

// AddedTotalLessons returns the value that was added to the "total_lessons" field in this mutation.
func (m *CourseGenerationMutation) AddedTotalLessons() (r int, exists bool) {
	v := m.addtotal_lessons
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLessons resets all changes to the "total_lessons" field.
func (m *CourseGenerationMutation) ResetTotalLessons() {
	m.total_lessons = nil
	m.addtotal_lessons = nil
}

// SetCourseData sets the "course_data" field.
func (m *CourseGenerationMutation) SetCourseData(value map[string]interface{}) {
	m.course_data = &value
}

// CourseData returns the value of the "course_data" field in the mutation.
func (m *CourseGenerationMutation) CourseData() (r map[string]interface{}, exists bool) {
	v := m.course_data
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseData returns the old "course_data" field's value of the CourseGeneration entity.
// If the CourseGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseGenerationMutation) OldCourseData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseData: %w", err)
	}
	return oldValue.CourseData, nil
}

// ClearCourseData clears the value of the "course_data" field.
func (m *CourseGenerationMutation) ClearCourseData() {
	m.course_data = nil
	m.clearedFields[coursegeneration.FieldCourseData] = struct{}{}
}

// CourseDataCleared returns if the "course_data" field was cleared in this mutation.
func (m *CourseGenerationMutation) CourseDataCleared() bool {
	_, ok := m.clearedFields[coursegeneration.FieldCourseData]
	return ok
}

// ResetCourseData resets all changes to the "course_data" field.
func (m *CourseGenerationMutation) ResetCourseData() {
	m.course_data = nil
	delete(m.clearedFields, coursegeneration.FieldCourseData)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CourseGenerationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CourseGenerationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CourseGeneration entity.
// If the CourseGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseGenerationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CourseGenerationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[coursegeneration.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CourseGenerationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[coursegeneration.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CourseGenerationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, coursegeneration.FieldCompletedAt)
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by ids.
func (m *CourseGenerationMutation) AddChapterIDs(ids ...int) {
	if m.chapters == nil {
		m.chapters = make(map[int]struct{})
	}
	for i := range ids {
		m.chapters[ids[i]] = struct{}{}
	}
}

// ClearChapters clears the "chapters" edge to the Chapter entity.
func (m *CourseGenerationMutation) ClearChapters() {
	m.clearedchapters = true
}

// ChaptersCleared reports if the "chapters" edge to the Chapter entity was cleared.
func (m *CourseGenerationMutation) ChaptersCleared() bool {
	return m.clearedchapters
}

// RemoveChapterIDs removes the "chapters" edge to the Chapter entity by IDs.
func (m *CourseGenerationMutation) RemoveChapterIDs(ids ...int) {
	if m.removedchapters == nil {
		m.removedchapters = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chapters, ids[i])
		m.removedchapters[ids[i]] = struct{}{}
	}
}

// RemovedChapters returns the removed IDs of the "chapters" edge to the Chapter entity.
func (m *CourseGenerationMutation) RemovedChaptersIDs() (ids []int) {
	for id := range m.removedchapters {
		ids = append(ids, id)
	}
	return
}

// ChaptersIDs returns the "chapters" edge IDs in the mutation.
func (m *CourseGenerationMutation) ChaptersIDs() (ids []int) {
	for id := range m.chapters {
		ids = append(ids, id)
	}
	return
}

// ResetChapters resets all changes to the "chapters" edge.
func (m *CourseGenerationMutation) ResetChapters() {
	m.chapters = nil
	m.clearedchapters = false
	m.removedchapters = nil
}

// AddLogIDs adds the "logs" edge to the GenerationLog entity by ids.
func (m *CourseGenerationMutation) AddLogIDs(ids ...int) {
	if m.logs == nil {
		m.logs = make(map[int]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the GenerationLog entity.
func (m *CourseGenerationMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the GenerationLog entity was cleared.
func (m *CourseGenerationMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the GenerationLog entity by IDs.
func (m *CourseGenerationMutation) RemoveLogIDs(ids ...int) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the GenerationLog entity.
func (m *CourseGenerationMutation) RemovedLogsIDs() (ids []int) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *CourseGenerationMutation) LogsIDs() (ids []int) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *CourseGenerationMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// Where appends a list predicates to the CourseGenerationMutation builder.
func (m *CourseGenerationMutation) Where(ps ...predicate.CourseGeneration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseGenerationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseGenerationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourseGeneration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseGenerationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseGenerationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourseGeneration).
func (m *CourseGenerationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseGenerationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.create_time != nil {
		fields = append(fields, coursegeneration.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, coursegeneration.FieldUpdateTime)
	}
	if m.prompt != nil {
		fields = append(fields, coursegeneration.FieldPrompt)
	}
	if m.experience_level != nil {
		fields = append(fields, coursegeneration.FieldExperienceLevel)
	}
	if m.status != nil {
		fields = append(fields, coursegeneration.FieldStatus)
	}
	if m.total_chapters != nil {
		fields = append(fields, coursegeneration.FieldTotalChapters)
	}
	if m.total_lessons != nil {
		fields = append(fields, coursegeneration.FieldTotalLessons)
	}
	if m.course_data != nil {
		fields = append(fields, coursegeneration.FieldCourseData)
	}
	if m.completed_at != nil {
		fields = append(fields, coursegeneration.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseGenerationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coursegeneration.FieldCreateTime:
		return m.CreateTime()
	case coursegeneration.FieldUpdateTime:
		return m.UpdateTime()
	case coursegeneration.FieldPrompt:
		return m.Prompt()
	case coursegeneration.FieldExperienceLevel:
		return m.ExperienceLevel()
	case coursegeneration.FieldStatus:
		return m.Status()
	case coursegeneration.FieldTotalChapters:
		return m.TotalChapters()
	case coursegeneration.FieldTotalLessons:
		return m.TotalLessons()
	case coursegeneration.FieldCourseData:
		return m.CourseData()
	case coursegeneration.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseGenerationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coursegeneration.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case coursegeneration.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case coursegeneration.FieldPrompt:
		return m.OldPrompt(ctx)
	case coursegeneration.FieldExperienceLevel:
		return m.OldExperienceLevel(ctx)
	case coursegeneration.FieldStatus:
		return m.OldStatus(ctx)
	case coursegeneration.FieldTotalChapters:
		return m.OldTotalChapters(ctx)
	case coursegeneration.FieldTotalLessons:
		return m.OldTotalLessons(ctx)
	case coursegeneration.FieldCourseData:
		return m.OldCourseData(ctx)
	case coursegeneration.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CourseGeneration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseGenerationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coursegeneration.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case coursegeneration.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case coursegeneration.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case coursegeneration.FieldExperienceLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceLevel(v)
		return nil
	case coursegeneration.FieldStatus:
		v, ok := value.(coursegeneration.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case coursegeneration.FieldTotalChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChapters(v)
		return nil
	case coursegeneration.FieldTotalLessons:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLessons(v)
		return nil
	case coursegeneration.FieldCourseData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseData(v)
		return nil
	case coursegeneration.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CourseGeneration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseGenerationMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_chapters != nil {
		fields = append(fields, coursegeneration.FieldTotalChapters)
	}
	if m.addtotal_lessons != nil {
		fields = append(fields, coursegeneration.FieldTotalLessons)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseGenerationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case coursegeneration.FieldTotalChapters:
		return m.AddedTotalChapters()
	case coursegeneration.FieldTotalLessons:
		return m.AddedTotalLessons()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseGenerationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case coursegeneration.FieldTotalChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChapters(v)
		return nil
	case coursegeneration.FieldTotalLessons:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLessons(v)
		return nil
	}
	return fmt.Errorf("unknown CourseGeneration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseGenerationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(coursegeneration.FieldCourseData) {
		fields = append(fields, coursegeneration.FieldCourseData)
	}
	if m.FieldCleared(coursegeneration.FieldCompletedAt) {
		fields = append(fields, coursegeneration.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseGenerationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseGenerationMutation) ClearField(name string) error {
	switch name {
	case coursegeneration.FieldCourseData:
		m.ClearCourseData()
		return nil
	case coursegeneration.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CourseGeneration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseGenerationMutation) ResetField(name string) error {
	switch name {
	case coursegeneration.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case coursegeneration.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case coursegeneration.FieldPrompt:
		m.ResetPrompt()
		return nil
	case coursegeneration.FieldExperienceLevel:
		m.ResetExperienceLevel()
		return nil
	case coursegeneration.FieldStatus:
		m.ResetStatus()
		return nil
	case coursegeneration.FieldTotalChapters:
		m.ResetTotalChapters()
		return nil
	case coursegeneration.FieldTotalLessons:
		m.ResetTotalLessons()
		return nil
	case coursegeneration.FieldCourseData:
		m.ResetCourseData()
		return nil
	case coursegeneration.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CourseGeneration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseGenerationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.chapters != nil {
		edges = append(edges, coursegeneration.EdgeChapters)
	}
	if m.logs != nil {
		edges = append(edges, coursegeneration.EdgeLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseGenerationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case coursegeneration.EdgeChapters:
		ids := make([]ent.Value, 0, len(m.chapters))
		for id := range m.chapters {
			ids = append(ids, id)
		}
		return ids
	case coursegeneration.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseGenerationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchapters != nil {
		edges = append(edges, coursegeneration.EdgeChapters)
	}
	if m.removedlogs != nil {
		edges = append(edges, coursegeneration.EdgeLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseGenerationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case coursegeneration.EdgeChapters:
		ids := make([]ent.Value, 0, len(m.removedchapters))
		for id := range m.removedchapters {
			ids = append(ids, id)
		}
		return ids
	case coursegeneration.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseGenerationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchapters {
		edges = append(edges, coursegeneration.EdgeChapters)
	}
	if m.clearedlogs {
		edges = append(edges, coursegeneration.EdgeLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseGenerationMutation) EdgeCleared(name string) bool {
	switch name {
	case coursegeneration.EdgeChapters:
		return m.clearedchapters
	case coursegeneration.EdgeLogs:
		return m.clearedlogs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseGenerationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CourseGeneration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseGenerationMutation) ResetEdge(name string) error {
	switch name {
	case coursegeneration.EdgeChapters:
		m.ResetChapters()
		return nil
	case coursegeneration.EdgeLogs:
		m.ResetLogs()
		return nil
	}
	return fmt.Errorf("unknown CourseGeneration edge %s", name)
}

// ExternalArticleMutation represents an operation that mutates the ExternalArticle nodes in the graph.
type ExternalArticleMutation struct {
	config
	op            Op
	typ           string
	id            *int
	create_time   *time.Time
	update_time   *time.Time
	url           *string
	title         *string
	score         *float64
	addscore      *float64
	clearedFields map[string]struct{}
	lesson        *int
	clearedlesson bool
	done          bool
	oldValue      func(context.Context) (*ExternalArticle, error)
	predicates    []predicate.ExternalArticle
}

var _ ent.Mutation = (*ExternalArticleMutation)(nil)

// externalarticleOption allows management of the mutation configuration using functional options.
type externalarticleOption func(*ExternalArticleMutation)

// newExternalArticleMutation creates new mutation for the ExternalArticle entity.
func newExternalArticleMutation(c config, op Op, opts ...externalarticleOption) *ExternalArticleMutation {
	m := &ExternalArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeExternalArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExternalArticleID sets the ID field of the mutation.
func withExternalArticleID(id int) externalarticleOption {
	return func(m *ExternalArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *ExternalArticle
		)
		m.oldValue = func(ctx context.Context) (*ExternalArticle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExternalArticle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExternalArticle sets the old ExternalArticle of the mutation.
func withExternalArticle(node *ExternalArticle) externalarticleOption {
	return func(m *ExternalArticleMutation) {
		m.oldValue = func(context.Context) (*ExternalArticle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExternalArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExternalArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExternalArticleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExternalArticleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExternalArticle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *ExternalArticleMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *ExternalArticleMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the ExternalArticle entity.
// If the ExternalArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalArticleMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *ExternalArticleMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ExternalArticleMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ExternalArticleMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the ExternalArticle entity.
// If the ExternalArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalArticleMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ExternalArticleMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *ExternalArticleMutation) SetLessonID(i int) {
	m.lesson = &i
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *ExternalArticleMutation) LessonID() (r int, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the ExternalArticle entity.
// If the ExternalArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalArticleMutation) OldLessonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *ExternalArticleMutation) ResetLessonID() {
	m.lesson = nil
}

// SetURL sets the "url" field.
func (m *ExternalArticleMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ExternalArticleMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ExternalArticle entity.
// If the ExternalArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalArticleMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ExternalArticleMutation) ResetURL() {
	m.url = nil
}

// SetTitle sets the "title" field.
func (m *ExternalArticleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ExternalArticleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ExternalArticle entity.
// If the ExternalArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalArticleMutation) OldTitle(ctx context.Context) (v string, err error) {
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

// ResetTitle resets all changes to the "title" field.
func (m *ExternalArticleMutation) ResetTitle() {
	m.title = nil
}

// SetScore sets the "score" field.
func (m *ExternalArticleMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ExternalArticleMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ExternalArticle entity.
// If the ExternalArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalArticleMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ExternalArticleMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ExternalArticleMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ExternalArticleMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (m *ExternalArticleMutation) ClearLesson() {
	m.clearedlesson = true
	m.clearedFields[externalarticle.FieldLessonID] = struct{}{}
}

// LessonCleared reports if the "lesson" edge to the Lesson entity was cleared.
func (m *ExternalArticleMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *ExternalArticleMutation) LessonIDs() (ids []int) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *ExternalArticleMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// Where appends a list predicates to the ExternalArticleMutation builder.
func (m *ExternalArticleMutation) Where(ps ...predicate.ExternalArticle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExternalArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExternalArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExternalArticle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExternalArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExternalArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExternalArticle).
func (m *ExternalArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExternalArticleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.create_time != nil {
		fields = append(fields, externalarticle.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, externalarticle.FieldUpdateTime)
	}
	if m.lesson != nil {
		fields = append(fields, externalarticle.FieldLessonID)
	}
	if m.url != nil {
		fields = append(fields, externalarticle.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, externalarticle.FieldTitle)
	}
	if m.score != nil {
		fields = append(fields, externalarticle.FieldScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExternalArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case externalarticle.FieldCreateTime:
		return m.CreateTime()
	case externalarticle.FieldUpdateTime:
		return m.UpdateTime()
	case externalarticle.FieldLessonID:
		return m.LessonID()
	case externalarticle.FieldURL:
		return m.URL()
	case externalarticle.FieldTitle:
		return m.Title()
	case externalarticle.FieldScore:
		return m.Score()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExternalArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case externalarticle.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case externalarticle.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case externalarticle.FieldLessonID:
		return m.OldLessonID(ctx)
	case externalarticle.FieldURL:
		return m.OldURL(ctx)
	case externalarticle.FieldTitle:
		return m.OldTitle(ctx)
	case externalarticle.FieldScore:
		return m.OldScore(ctx)
	}
	return nil, fmt.Errorf("unknown ExternalArticle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case externalarticle.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case externalarticle.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case externalarticle.FieldLessonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case externalarticle.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case externalarticle.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case externalarticle.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	}
	return fmt.Errorf("unknown ExternalArticle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExternalArticleMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, externalarticle.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExternalArticleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case externalarticle.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case externalarticle.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown ExternalArticle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExternalArticleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExternalArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExternalArticleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExternalArticle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExternalArticleMutation) ResetField(name string) error {
	switch name {
	case externalarticle.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case externalarticle.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case externalarticle.FieldLessonID:
		m.ResetLessonID()
		return nil
	case externalarticle.FieldURL:
		m.ResetURL()
		return nil
	case externalarticle.FieldTitle:
		m.ResetTitle()
		return nil
	case externalarticle.FieldScore:
		m.ResetScore()
		return nil
	}
	return fmt.Errorf("unknown ExternalArticle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExternalArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lesson != nil {
		edges = append(edges, externalarticle.EdgeLesson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExternalArticleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case externalarticle.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExternalArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExternalArticleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExternalArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlesson {
		edges = append(edges, externalarticle.EdgeLesson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExternalArticleMutation) EdgeCleared(name string) bool {
	switch name {
	case externalarticle.EdgeLesson:
		return m.clearedlesson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExternalArticleMutation) ClearEdge(name string) error {
	switch name {
	case externalarticle.EdgeLesson:
		m.ClearLesson()
		return nil
	}
	return fmt.Errorf("unknown ExternalArticle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExternalArticleMutation) ResetEdge(name string) error {
	switch name {
	case externalarticle.EdgeLesson:
		m.ResetLesson()
		return nil
	}
	return fmt.Errorf("unknown ExternalArticle edge %s", name)
}

// GenerationLogMutation represents an operation that mutates the GenerationLog nodes in the graph.
type GenerationLogMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	timestamp                *time.Time
	step                     *string
	status                   *generationlog.Status
	level                    *generationlog.Level
	message                  *string
	data                     *map[string]interface{}
	clearedFields            map[string]struct{}
	course_generation        *int
	clearedcourse_generation bool
	done                     bool
	oldValue                 func(context.Context) (*GenerationLog, error)
	predicates               []predicate.GenerationLog
}

var _ ent.Mutation = (*GenerationLogMutation)(nil)

// generationlogOption allows management of the mutation configuration using functional options.
type generationlogOption func(*GenerationLogMutation)

// newGenerationLogMutation creates new mutation for the GenerationLog entity.
func newGenerationLogMutation(c config, op Op, opts ...generationlogOption) *GenerationLogMutation {
	m := &GenerationLogMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationLogID sets the ID field of the mutation.
func withGenerationLogID(id int) generationlogOption {
	return func(m *GenerationLogMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationLog
		)
		m.oldValue = func(ctx context.Context) (*GenerationLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationLog sets the old GenerationLog of the mutation.
func withGenerationLog(node *GenerationLog) generationlogOption {
	return func(m *GenerationLogMutation) {
		m.oldValue = func(context.Context) (*GenerationLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *GenerationLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GenerationLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GenerationLog entity.
// If the GenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GenerationLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCourseGenerationID sets the "course_generation_id" field.
func (m *GenerationLogMutation) SetCourseGenerationID(i int) {
	m.course_generation = &i
}

// CourseGenerationID returns the value of the "course_generation_id" field in the mutation.
func (m *GenerationLogMutation) CourseGenerationID() (r int, exists bool) {
	v := m.course_generation
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseGenerationID returns the old "course_generation_id" field's value of the GenerationLog entity.
// If the GenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationLogMutation) OldCourseGenerationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseGenerationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseGenerationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseGenerationID: %w", err)
	}
	return oldValue.CourseGenerationID, nil
}

// ResetCourseGenerationID resets all changes to the "course_generation_id" field.
func (m *GenerationLogMutation) ResetCourseGenerationID() {
	m.course_generation = nil
}

// SetStep sets the "step" field.
func (m *GenerationLogMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *GenerationLogMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the GenerationLog entity.
// If the GenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationLogMutation) OldStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ResetStep resets all changes to the "step" field.
func (m *GenerationLogMutation) ResetStep() {
	m.step = nil
}

// SetStatus sets the "status" field.
func (m *GenerationLogMutation) SetStatus(ge generationlog.Status) {
	m.status = &ge
}

// Status returns the value of the "status" field in the mutation.
func (m *GenerationLogMutation) Status() (r generationlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GenerationLog entity.
// If the GenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationLogMutation) OldStatus(ctx context.Context) (v generationlog.Status, err error) {
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
func (m *GenerationLogMutation) ResetStatus() {
	m.status = nil
}

// SetLevel sets the "level" field.
func (m *GenerationLogMutation) SetLevel(ge generationlog.Level) {
	m.level = &ge
}

// Level returns the value of the "level" field in the mutation.
func (m *GenerationLogMutation) Level() (r generationlog.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the GenerationLog entity.
// If the GenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationLogMutation) OldLevel(ctx context.Context) (v generationlog.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *GenerationLogMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *GenerationLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *GenerationLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the GenerationLog entity.
// If the GenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *GenerationLogMutation) ResetMessage() {
	m.message = nil
}

// SetData sets the "data" field.
func (m *GenerationLogMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *GenerationLogMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the GenerationLog entity.
// If the GenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationLogMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *GenerationLogMutation) ClearData() {
	m.data = nil
	m.clearedFields[generationlog.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *GenerationLogMutation) DataCleared() bool {
	_, ok := m.clearedFields[generationlog.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *GenerationLogMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, generationlog.FieldData)
}

// ClearCourseGeneration clears the "course_generation" edge to the CourseGeneration entity.
func (m *GenerationLogMutation) ClearCourseGeneration() {
	m.clearedcourse_generation = true
	m.clearedFields[generationlog.FieldCourseGenerationID] = struct{}{}
}

// CourseGenerationCleared reports if the "course_generation" edge to the CourseGeneration entity was cleared.
func (m *GenerationLogMutation) CourseGenerationCleared() bool {
	return m.clearedcourse_generation
}

// CourseGenerationIDs returns the "course_generation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseGenerationID instead. It exists only for internal usage by the builders.
func (m *GenerationLogMutation) CourseGenerationIDs() (ids []int) {
	if id := m.course_generation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourseGeneration resets all changes to the "course_generation" edge.
func (m *GenerationLogMutation) ResetCourseGeneration() {
	m.course_generation = nil
	m.clearedcourse_generation = false
}

// Where appends a list predicates to the GenerationLogMutation builder.
func (m *GenerationLogMutation) Where(ps ...predicate.GenerationLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationLog).
func (m *GenerationLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.timestamp != nil {
		fields = append(fields, generationlog.FieldTimestamp)
	}
	if m.course_generation != nil {
		fields = append(fields, generationlog.FieldCourseGenerationID)
	}
	if m.step != nil {
		fields = append(fields, generationlog.FieldStep)
	}
	if m.status != nil {
		fields = append(fields, generationlog.FieldStatus)
	}
	if m.level != nil {
		fields = append(fields, generationlog.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, generationlog.FieldMessage)
	}
	if m.data != nil {
		fields = append(fields, generationlog.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationlog.FieldTimestamp:
		return m.Timestamp()
	case generationlog.FieldCourseGenerationID:
		return m.CourseGenerationID()
	case generationlog.FieldStep:
		return m.Step()
	case generationlog.FieldStatus:
		return m.Status()
	case generationlog.FieldLevel:
		return m.Level()
	case generationlog.FieldMessage:
		return m.Message()
	case generationlog.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case generationlog.FieldCourseGenerationID:
		return m.OldCourseGenerationID(ctx)
	case generationlog.FieldStep:
		return m.OldStep(ctx)
	case generationlog.FieldStatus:
		return m.OldStatus(ctx)
	case generationlog.FieldLevel:
		return m.OldLevel(ctx)
	case generationlog.FieldMessage:
		return m.OldMessage(ctx)
	case generationlog.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case generationlog.FieldCourseGenerationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseGenerationID(v)
		return nil
	case generationlog.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case generationlog.FieldStatus:
		v, ok := value.(generationlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case generationlog.FieldLevel:
		v, ok := value.(generationlog.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case generationlog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case generationlog.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationLogMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GenerationLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationlog.FieldData) {
		fields = append(fields, generationlog.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationLogMutation) ClearField(name string) error {
	switch name {
	case generationlog.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown GenerationLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationLogMutation) ResetField(name string) error {
	switch name {
	case generationlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case generationlog.FieldCourseGenerationID:
		m.ResetCourseGenerationID()
		return nil
	case generationlog.FieldStep:
		m.ResetStep()
		return nil
	case generationlog.FieldStatus:
		m.ResetStatus()
		return nil
	case generationlog.FieldLevel:
		m.ResetLevel()
		return nil
	case generationlog.FieldMessage:
		m.ResetMessage()
		return nil
	case generationlog.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown GenerationLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.course_generation != nil {
		edges = append(edges, generationlog.EdgeCourseGeneration)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case generationlog.EdgeCourseGeneration:
		if id := m.course_generation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcourse_generation {
		edges = append(edges, generationlog.EdgeCourseGeneration)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationLogMutation) EdgeCleared(name string) bool {
	switch name {
	case generationlog.EdgeCourseGeneration:
		return m.clearedcourse_generation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationLogMutation) ClearEdge(name string) error {
	switch name {
	case generationlog.EdgeCourseGeneration:
		m.ClearCourseGeneration()
		return nil
	}
	return fmt.Errorf("unknown GenerationLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationLogMutation) ResetEdge(name string) error {
	switch name {
	case generationlog.EdgeCourseGeneration:
		m.ResetCourseGeneration()
		return nil
	}
	return fmt.Errorf("unknown GenerationLog edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LessonMutation represents an operation that mutates the Lesson nodes in the graph.
type LessonMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	number                  *int
	addnumber               *int
	lesson_type             *string
	lesson_type_id          *int
	addlesson_type_id       *int
	name                    *string
	description             *string
	details                 *string
	goals                   *string
	guidelines              *string
	is_complete             *bool
	clearedFields           map[string]struct{}
	chapter                 *int
	clearedchapter          bool
	quiz                    *int
	clearedquiz             bool
	article                 *int
	clearedarticle          bool
	external_article        *int
	clearedexternal_article bool
	videos                  map[int]struct{}
	removedvideos           map[int]struct{}
	clearedvideos           bool
	project                 *int
	clearedproject          bool
	text_questions          map[int]struct{}
	removedtext_questions   map[int]struct{}
	clearedtext_questions   bool
	text_submissions        map[int]struct{}
	removedtext_submissions map[int]struct{}
	clearedtext_submissions bool
	done                    bool
	oldValue                func(context.Context) (*Lesson, error)
	predicates              []predicate.Lesson
}

var _ ent.Mutation = (*LessonMutation)(nil)

// lessonOption allows management of the mutation configuration using functional options.
type lessonOption func(*LessonMutation)

// newLessonMutation creates new mutation for the Lesson entity.
func newLessonMutation(c config, op Op, opts ...lessonOption) *LessonMutation {
	m := &LessonMutation{
		config:        c,
		op:            op,
		typ:           TypeLesson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonID sets the ID field of the mutation.
func withLessonID(id int) lessonOption {
	return func(m *LessonMutation) {
		var (
			err   error
			once  sync.Once
			value *Lesson
		)
		m.oldValue = func(ctx context.Context) (*Lesson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lesson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLesson sets the old Lesson of the mutation.
func withLesson(node *Lesson) lessonOption {
	return func(m *LessonMutation) {
		m.oldValue = func(context.Context) (*Lesson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lesson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChapterID sets the "chapter_id" field.
func (m *LessonMutation) SetChapterID(i int) {
	m.chapter = &i
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *LessonMutation) ChapterID() (r int, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldChapterID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *LessonMutation) ResetChapterID() {
	m.chapter = nil
}

// SetNumber sets the "number" field.
func (m *LessonMutation) SetNumber(i int) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *LessonMutation) Number() (r int, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *LessonMutation) AddNumber(i int) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *LessonMutation) AddedNumber() (r int, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *LessonMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetLessonType sets the "lesson_type" field.
func (m *LessonMutation) SetLessonType(s string) {
	m.lesson_type = &s
}

// LessonType returns the value of the "lesson_type" field in the mutation.
func (m *LessonMutation) LessonType() (r string, exists bool) {
	v := m.lesson_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonType returns the old "lesson_type" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldLessonType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonType: %w", err)
	}
	return oldValue.LessonType, nil
}

// ResetLessonType resets all changes to the "lesson_type" field.
func (m *LessonMutation) ResetLessonType() {
	m.lesson_type = nil
}

// SetLessonTypeID sets the "lesson_type_id" field.
func (m *LessonMutation) SetLessonTypeID(i int) {
	m.lesson_type_id = &i
	m.addlesson_type_id = nil
}

// LessonTypeID returns the value of the "lesson_type_id" field in the mutation.
func (m *LessonMutation) LessonTypeID() (r int, exists bool) {
	v := m.lesson_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonTypeID returns the old "lesson_type_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldLessonTypeID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonTypeID: %w", err)
	}
	return oldValue.LessonTypeID, nil
}

// AddLessonTypeID adds i to the "lesson_type_id" field.
func (m *LessonMutation) AddLessonTypeID(i int) {
	if m.addlesson_type_id != nil {
		*m.addlesson_type_id += i
	} else {
		m.addlesson_type_id = &i
	}
}

// AddedLessonTypeID returns the value that was added to the "lesson_type_id" field in this mutation.
func (m *LessonMutation) AddedLessonTypeID() (r int, exists bool) {
	v := m.addlesson_type_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLessonTypeID resets all changes to the "lesson_type_id" field.
func (m *LessonMutation) ResetLessonTypeID() {
	m.lesson_type_id = nil
	m.addlesson_type_id = nil
}

// SetName sets the "name" field.
func (m *LessonMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LessonMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *LessonMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *LessonMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *LessonMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldDescription(ctx context.Context) (v string, err error) {
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

// ResetDescription resets all changes to the "description" field.
func (m *LessonMutation) ResetDescription() {
	m.description = nil
}

// SetDetails sets the "details" field.
func (m *LessonMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *LessonMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ResetDetails resets all changes to the "details" field.
func (m *LessonMutation) ResetDetails() {
	m.details = nil
}

// SetGoals sets the "goals" field.
func (m *LessonMutation) SetGoals(s string) {
	m.goals = &s
}

// Goals returns the value of the "goals" field in the mutation.
func (m *LessonMutation) Goals() (r string, exists bool) {
	v := m.goals
	if v == nil {
		return
	}
	return *v, true
}

// OldGoals returns the old "goals" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldGoals(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoals: %w", err)
	}
	return oldValue.Goals, nil
}

// ResetGoals resets all changes to the "goals" field.
func (m *LessonMutation) ResetGoals() {
	m.goals = nil
}

// SetGuidelines sets the "guidelines" field.
func (m *LessonMutation) SetGuidelines(s string) {
	m.guidelines = &s
}

// Guidelines returns the value of the "guidelines" field in the mutation.
func (m *LessonMutation) Guidelines() (r string, exists bool) {
	v := m.guidelines
	if v == nil {
		return
	}
	return *v, true
}

// OldGuidelines returns the old "guidelines" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldGuidelines(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuidelines is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuidelines requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuidelines: %w", err)
	}
	return oldValue.Guidelines, nil
}

// ResetGuidelines resets all changes to the "guidelines" field.
func (m *LessonMutation) ResetGuidelines() {
	m.guidelines = nil
}

// SetIsComplete sets the "is_complete" field.
func (m *LessonMutation) SetIsComplete(b bool) {
	m.is_complete = &b
}

// IsComplete returns the value of the "is_complete" field in the mutation.
func (m *LessonMutation) IsComplete() (r bool, exists bool) {
	v := m.is_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldIsComplete returns the old "is_complete" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldIsComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsComplete: %w", err)
	}
	return oldValue.IsComplete, nil
}

// ResetIsComplete resets all changes to the "is_complete" field.
func (m *LessonMutation) ResetIsComplete() {
	m.is_complete = nil
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (m *LessonMutation) ClearChapter() {
	m.clearedchapter = true
	m.clearedFields[lesson.FieldChapterID] = struct{}{}
}

// ChapterCleared reports if the "chapter" edge to the Chapter entity was cleared.
func (m *LessonMutation) ChapterCleared() bool {
	return m.clearedchapter
}

// ChapterIDs returns the "chapter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChapterID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) ChapterIDs() (ids []int) {
	if id := m.chapter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChapter resets all changes to the "chapter" edge.
func (m *LessonMutation) ResetChapter() {
	m.chapter = nil
	m.clearedchapter = false
}

// SetQuizID sets the "quiz" edge to the Quiz entity by id.
func (m *LessonMutation) SetQuizID(id int) {
	m.quiz = &id
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (m *LessonMutation) ClearQuiz() {
	m.clearedquiz = true
}

// QuizCleared reports if the "quiz" edge to the Quiz entity was cleared.
func (m *LessonMutation) QuizCleared() bool {
	return m.clearedquiz
}

// QuizID returns the "quiz" edge ID in the mutation.
func (m *LessonMutation) QuizID() (id int, exists bool) {
	if m.quiz != nil {
		return *m.quiz, true
	}
	return
}

// QuizIDs returns the "quiz" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuizID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) QuizIDs() (ids []int) {
	if id := m.quiz; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuiz resets all changes to the "quiz" edge.
func (m *LessonMutation) ResetQuiz() {
	m.quiz = nil
	m.clearedquiz = false
}

// SetArticleID sets the "article" edge to the Article entity by id.
func (m *LessonMutation) SetArticleID(id int) {
	m.article = &id
}

// ClearArticle clears the "article" edge to the Article entity.
func (m *LessonMutation) ClearArticle() {
	m.clearedarticle = true
}

// ArticleCleared reports if the "article" edge to the Article entity was cleared.
func (m *LessonMutation) ArticleCleared() bool {
	return m.clearedarticle
}

// ArticleID returns the "article" edge ID in the mutation.
func (m *LessonMutation) ArticleID() (id int, exists bool) {
	if m.article != nil {
		return *m.article, true
	}
	return
}

// ArticleIDs returns the "article" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArticleID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) ArticleIDs() (ids []int) {
	if id := m.article; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArticle resets all changes to the "article" edge.
func (m *LessonMutation) ResetArticle() {
	m.article = nil
	m.clearedarticle = false
}

// SetExternalArticleID sets the "external_article" edge to the ExternalArticle entity by id.
func (m *LessonMutation) SetExternalArticleID(id int) {
	m.external_article = &id
}

// ClearExternalArticle clears the "external_article" edge to the ExternalArticle entity.
func (m *LessonMutation) ClearExternalArticle() {
	m.clearedexternal_article = true
}

// ExternalArticleCleared reports if the "external_article" edge to the ExternalArticle entity was cleared.
func (m *LessonMutation) ExternalArticleCleared() bool {
	return m.clearedexternal_article
}

// ExternalArticleID returns the "external_article" edge ID in the mutation.
func (m *LessonMutation) ExternalArticleID() (id int, exists bool) {
	if m.external_article != nil {
		return *m.external_article, true
	}
	return
}

// ExternalArticleIDs returns the "external_article" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExternalArticleID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) ExternalArticleIDs() (ids []int) {
	if id := m.external_article; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExternalArticle resets all changes to the "external_article" edge.
func (m *LessonMutation) ResetExternalArticle() {
	m.external_article = nil
	m.clearedexternal_article = false
}

// AddVideoIDs adds the "videos" edge to the Video entity by ids.
func (m *LessonMutation) AddVideoIDs(ids ...int) {
	if m.videos == nil {
		m.videos = make(map[int]struct{})
	}
	for i := range ids {
		m.videos[ids[i]] = struct{}{}
	}
}

// ClearVideos clears the "videos" edge to the Video entity.
func (m *LessonMutation) ClearVideos() {
	m.clearedvideos = true
}

// VideosCleared reports if the "videos" edge to the Video entity was cleared.
func (m *LessonMutation) VideosCleared() bool {
	return m.clearedvideos
}

// RemoveVideoIDs removes the "videos" edge to the Video entity by IDs.
func (m *LessonMutation) RemoveVideoIDs(ids ...int) {
	if m.removedvideos == nil {
		m.removedvideos = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.videos, ids[i])
		m.removedvideos[ids[i]] = struct{}{}
	}
}

// RemovedVideos returns the removed IDs of the "videos" edge to the Video entity.
func (m *LessonMutation) RemovedVideosIDs() (ids []int) {
	for id := range m.removedvideos {
		ids = append(ids, id)
	}
	return
}

// VideosIDs returns the "videos" edge IDs in the mutation.
func (m *LessonMutation) VideosIDs() (ids []int) {
	for id := range m.videos {
		ids = append(ids, id)
	}
	return
}

// ResetVideos resets all changes to the "videos" edge.
func (m *LessonMutation) ResetVideos() {
	m.videos = nil
	m.clearedvideos = false
	m.removedvideos = nil
}

// SetProjectID sets the "project" edge to the Project entity by id.
func (m *LessonMutation) SetProjectID(id int) {
	m.project = &id
}

// ClearProject clears the "project" edge to the Project entity.
func (m *LessonMutation) ClearProject() {
	m.clearedproject = true
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *LessonMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectID returns the "project" edge ID in the mutation.
func (m *LessonMutation) ProjectID() (id int, exists bool) {
	if m.project != nil {
		return *m.project, true
	}
	return
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *LessonMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *LessonMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddTextQuestionIDs adds the "text_questions" edge to the TextResponseQuestion entity by ids.
func (m *LessonMutation) AddTextQuestionIDs(ids ...int) {
	if m.text_questions == nil {
		m.text_questions = make(map[int]struct{})
	}
	for i := range ids {
		m.text_questions[ids[i]] = struct{}{}
	}
}

// ClearTextQuestions clears the "text_questions" edge to the TextResponseQuestion entity.
func (m *LessonMutation) ClearTextQuestions() {
	m.clearedtext_questions = true
}

// TextQuestionsCleared reports if the "text_questions" edge to the TextResponseQuestion entity was cleared.
func (m *LessonMutation) TextQuestionsCleared() bool {
	return m.clearedtext_questions
}

// RemoveTextQuestionIDs removes the "text_questions" edge to the TextResponseQuestion entity by IDs.
func (m *LessonMutation) RemoveTextQuestionIDs(ids ...int) {
	if m.removedtext_questions == nil {
		m.removedtext_questions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.text_questions, ids[i])
		m.removedtext_questions[ids[i]] = struct{}{}
	}
}

// RemovedTextQuestions returns the removed IDs of the "text_questions" edge to the TextResponseQuestion entity.
func (m *LessonMutation) RemovedTextQuestionsIDs() (ids []int) {
	for id := range m.removedtext_questions {
		ids = append(ids, id)
	}
	return
}

// TextQuestionsIDs returns the "text_questions" edge IDs in the mutation.
func (m *LessonMutation) TextQuestionsIDs() (ids []int) {
	for id := range m.text_questions {
		ids = append(ids, id)
	}
	return
}

// ResetTextQuestions resets all changes to the "text_questions" edge.
func (m *LessonMutation) ResetTextQuestions() {
	m.text_questions = nil
	m.clearedtext_questions = false
	m.removedtext_questions = nil
}

// AddTextSubmissionIDs adds the "text_submissions" edge to the TextResponseSubmission entity by ids.
func (m *LessonMutation) AddTextSubmissionIDs(ids ...int) {
	if m.text_submissions == nil {
		m.text_submissions = make(map[int]struct{})
	}
	for i := range ids {
		m.text_submissions[ids[i]] = struct{}{}
	}
}

// ClearTextSubmissions clears the "text_submissions" edge to the TextResponseSubmission entity.
func (m *LessonMutation) ClearTextSubmissions() {
	m.clearedtext_submissions = true
}

// TextSubmissionsCleared reports if the "text_submissions" edge to the TextResponseSubmission entity was cleared.
func (m *LessonMutation) TextSubmissionsCleared() bool {
	return m.clearedtext_submissions
}

// RemoveTextSubmissionIDs removes the "text_submissions" edge to the TextResponseSubmission entity by IDs.
func (m *LessonMutation) RemoveTextSubmissionIDs(ids ...int) {
	if m.removedtext_submissions == nil {
		m.removedtext_submissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.text_submissions, ids[i])
		m.removedtext_submissions[ids[i]] = struct{}{}
	}
}

// RemovedTextSubmissions returns the removed IDs of the "text_submissions" edge to the TextResponseSubmission entity.
func (m *LessonMutation) RemovedTextSubmissionsIDs() (ids []int) {
	for id := range m.removedtext_submissions {
		ids = append(ids, id)
	}
	return
}

// TextSubmissionsIDs returns the "text_submissions" edge IDs in the mutation.
func (m *LessonMutation) TextSubmissionsIDs() (ids []int) {
	for id := range m.text_submissions {
		ids = append(ids, id)
	}
	return
}

// ResetTextSubmissions resets all changes to the "text_submissions" edge.
func (m *LessonMutation) ResetTextSubmissions() {
	m.text_submissions = nil
	m.clearedtext_submissions = false
	m.removedtext_submissions = nil
}

// Where appends a list predicates to the LessonMutation builder.
func (m *LessonMutation) Where(ps ...predicate.Lesson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lesson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lesson).
func (m *LessonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.chapter != nil {
		fields = append(fields, lesson.FieldChapterID)
	}
	if m.number != nil {
		fields = append(fields, lesson.FieldNumber)
	}
	if m.lesson_type != nil {
		fields = append(fields, lesson.FieldLessonType)
	}
	if m.lesson_type_id != nil {
		fields = append(fields, lesson.FieldLessonTypeID)
	}
	if m.name != nil {
		fields = append(fields, lesson.FieldName)
	}
	if m.description != nil {
		fields = append(fields, lesson.FieldDescription)
	}
	if m.details != nil {
		fields = append(fields, lesson.FieldDetails)
	}
	if m.goals != nil {
		fields = append(fields, lesson.FieldGoals)
	}
	if m.guidelines != nil {
		fields = append(fields, lesson.FieldGuidelines)
	}
	if m.is_complete != nil {
		fields = append(fields, lesson.FieldIsComplete)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldChapterID:
		return m.ChapterID()
	case lesson.FieldNumber:
		return m.Number()
	case lesson.FieldLessonType:
		return m.LessonType()
	case lesson.FieldLessonTypeID:
		return m.LessonTypeID()
	case lesson.FieldName:
		return m.Name()
	case lesson.FieldDescription:
		return m.Description()
	case lesson.FieldDetails:
		return m.Details()
	case lesson.FieldGoals:
		return m.Goals()
	case lesson.FieldGuidelines:
		return m.Guidelines()
	case lesson.FieldIsComplete:
		return m.IsComplete()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lesson.FieldChapterID:
		return m.OldChapterID(ctx)
	case lesson.FieldNumber:
		return m.OldNumber(ctx)
	case lesson.FieldLessonType:
		return m.OldLessonType(ctx)
	case lesson.FieldLessonTypeID:
		return m.OldLessonTypeID(ctx)
	case lesson.FieldName:
		return m.OldName(ctx)
	case lesson.FieldDescription:
		return m.OldDescription(ctx)
	case lesson.FieldDetails:
		return m.OldDetails(ctx)
	case lesson.FieldGoals:
		return m.OldGoals(ctx)
	case lesson.FieldGuidelines:
		return m.OldGuidelines(ctx)
	case lesson.FieldIsComplete:
		return m.OldIsComplete(ctx)
	}
	return nil, fmt.Errorf("unknown Lesson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldChapterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	case lesson.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case lesson.FieldLessonType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonType(v)
		return nil
	case lesson.FieldLessonTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonTypeID(v)
		return nil
	case lesson.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lesson.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case lesson.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case lesson.FieldGoals:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoals(v)
		return nil
	case lesson.FieldGuidelines:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuidelines(v)
		return nil
	case lesson.FieldIsComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsComplete(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonMutation) AddedFields() []string {
	var fields []string
	if m.addnumber != nil {
		fields = append(fields, lesson.FieldNumber)
	}
	if m.addlesson_type_id != nil {
		fields = append(fields, lesson.FieldLessonTypeID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldNumber:
		return m.AddedNumber()
	case lesson.FieldLessonTypeID:
		return m.AddedLessonTypeID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	case lesson.FieldLessonTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLessonTypeID(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Lesson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonMutation) ResetField(name string) error {
	switch name {
	case lesson.FieldChapterID:
		m.ResetChapterID()
		return nil
	case lesson.FieldNumber:
		m.ResetNumber()
		return nil
	case lesson.FieldLessonType:
		m.ResetLessonType()
		return nil
	case lesson.FieldLessonTypeID:
		m.ResetLessonTypeID()
		return nil
	case lesson.FieldName:
		m.ResetName()
		return nil
	case lesson.FieldDescription:
		m.ResetDescription()
		return nil
	case lesson.FieldDetails:
		m.ResetDetails()
		return nil
	case lesson.FieldGoals:
		m.ResetGoals()
		return nil
	case lesson.FieldGuidelines:
		m.ResetGuidelines()
		return nil
	case lesson.FieldIsComplete:
		m.ResetIsComplete()
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.chapter != nil {
		edges = append(edges, lesson.EdgeChapter)
	}
	if m.quiz != nil {
		edges = append(edges, lesson.EdgeQuiz)
	}
	if m.article != nil {
		edges = append(edges, lesson.EdgeArticle)
	}
	if m.external_article != nil {
		edges = append(edges, lesson.EdgeExternalArticle)
	}
	if m.videos != nil {
		edges = append(edges, lesson.EdgeVideos)
	}
	if m.project != nil {
		edges = append(edges, lesson.EdgeProject)
	}
	if m.text_questions != nil {
		edges = append(edges, lesson.EdgeTextQuestions)
	}
	if m.text_submissions != nil {
		edges = append(edges, lesson.EdgeTextSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lesson.EdgeChapter:
		if id := m.chapter; id != nil {
			return []ent.Value{*id}
		}
	case lesson.EdgeQuiz:
		if id := m.quiz; id != nil {
			return []ent.Value{*id}
		}
	case lesson.EdgeArticle:
		if id := m.article; id != nil {
			return []ent.Value{*id}
		}
	case lesson.EdgeExternalArticle:
		if id := m.external_article; id != nil {
			return []ent.Value{*id}
		}
	case lesson.EdgeVideos:
		ids := make([]ent.Value, 0, len(m.videos))
		for id := range m.videos {
			ids = append(ids, id)
		}
		return ids
	case lesson.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case lesson.EdgeTextQuestions:
		ids := make([]ent.Value, 0, len(m.text_questions))
		for id := range m.text_questions {
			ids = append(ids, id)
		}
		return ids
	case lesson.EdgeTextSubmissions:
		ids := make([]ent.Value, 0, len(m.text_submissions))
		for id := range m.text_submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedvideos != nil {
		edges = append(edges, lesson.EdgeVideos)
	}
	if m.removedtext_questions != nil {
		edges = append(edges, lesson.EdgeTextQuestions)
	}
	if m.removedtext_submissions != nil {
		edges = append(edges, lesson.EdgeTextSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lesson.EdgeVideos:
		ids := make([]ent.Value, 0, len(m.removedvideos))
		for id := range m.removedvideos {
			ids = append(ids, id)
		}
		return ids
	case lesson.EdgeTextQuestions:
		ids := make([]ent.Value, 0, len(m.removedtext_questions))
		for id := range m.removedtext_questions {
			ids = append(ids, id)
		}
		return ids
	case lesson.EdgeTextSubmissions:
		ids := make([]ent.Value, 0, len(m.removedtext_submissions))
		for id := range m.removedtext_submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedchapter {
		edges = append(edges, lesson.EdgeChapter)
	}
	if m.clearedquiz {
		edges = append(edges, lesson.EdgeQuiz)
	}
	if m.clearedarticle {
		edges = append(edges, lesson.EdgeArticle)
	}
	if m.clearedexternal_article {
		edges = append(edges, lesson.EdgeExternalArticle)
	}
	if m.clearedvideos {
		edges = append(edges, lesson.EdgeVideos)
	}
	if m.clearedproject {
		edges = append(edges, lesson.EdgeProject)
	}
	if m.clearedtext_questions {
		edges = append(edges, lesson.EdgeTextQuestions)
	}
	if m.clearedtext_submissions {
		edges = append(edges, lesson.EdgeTextSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonMutation) EdgeCleared(name string) bool {
	switch name {
	case lesson.EdgeChapter:
		return m.clearedchapter
	case lesson.EdgeQuiz:
		return m.clearedquiz
	case lesson.EdgeArticle:
		return m.clearedarticle
	case lesson.EdgeExternalArticle:
		return m.clearedexternal_article
	case lesson.EdgeVideos:
		return m.clearedvideos
	case lesson.EdgeProject:
		return m.clearedproject
	case lesson.EdgeTextQuestions:
		return m.clearedtext_questions
	case lesson.EdgeTextSubmissions:
		return m.clearedtext_submissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonMutation) ClearEdge(name string) error {
	switch name {
	case lesson.EdgeChapter:
		m.ClearChapter()
		return nil
	case lesson.EdgeQuiz:
		m.ClearQuiz()
		return nil
	case lesson.EdgeArticle:
		m.ClearArticle()
		return nil
	case lesson.EdgeExternalArticle:
		m.ClearExternalArticle()
		return nil
	case lesson.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Lesson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonMutation) ResetEdge(name string) error {
	switch name {
	case lesson.EdgeChapter:
		m.ResetChapter()
		return nil
	case lesson.EdgeQuiz:
		m.ResetQuiz()
		return nil
	case lesson.EdgeArticle:
		m.ResetArticle()
		return nil
	case lesson.EdgeExternalArticle:
		m.ResetExternalArticle()
		return nil
	case lesson.EdgeVideos:
		m.ResetVideos()
		return nil
	case lesson.EdgeProject:
		m.ResetProject()
		return nil
	case lesson.EdgeTextQuestions:
		m.ResetTextQuestions()
		return nil
	case lesson.EdgeTextSubmissions:
		m.ResetTextSubmissions()
		return nil
	}
	return fmt.Errorf("unknown Lesson edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op               Op
	typ              string
	id               *int
	create_time      *time.Time
	update_time      *time.Time
	name             *string
	description      *string
	grading_method   *project.GradingMethod
	expected_output  *string
	is_final_project *bool
	clearedFields    map[string]struct{}
	lesson           *int
	clearedlesson    bool
	files            map[int]struct{}
	removedfiles     map[int]struct{}
	clearedfiles     bool
	done             bool
	oldValue         func(context.Context) (*Project, error)
	predicates       []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id int) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *ProjectMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *ProjectMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *ProjectMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ProjectMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ProjectMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ProjectMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *ProjectMutation) SetLessonID(i int) {
	m.lesson = &i
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *ProjectMutation) LessonID() (r int, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLessonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *ProjectMutation) ResetLessonID() {
	m.lesson = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
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

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
}

// SetGradingMethod sets the "grading_method" field.
func (m *ProjectMutation) SetGradingMethod(pm project.GradingMethod) {
	m.grading_method = &pm
}

// GradingMethod returns the value of the "grading_method" field in the mutation.
func (m *ProjectMutation) GradingMethod() (r project.GradingMethod, exists bool) {
	v := m.grading_method
	if v == nil {
		return
	}
	return *v, true
}

// OldGradingMethod returns the old "grading_method" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldGradingMethod(ctx context.Context) (v project.GradingMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradingMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradingMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradingMethod: %w", err)
	}
	return oldValue.GradingMethod, nil
}

// ResetGradingMethod resets all changes to the "grading_method" field.
func (m *ProjectMutation) ResetGradingMethod() {
	m.grading_method = nil
}

// SetExpectedOutput sets the "expected_output" field.
func (m *ProjectMutation) SetExpectedOutput(s string) {
	m.expected_output = &s
}

// ExpectedOutput returns the value of the "expected_output" field in the mutation.
func (m *ProjectMutation) ExpectedOutput() (r string, exists bool) {
	v := m.expected_output
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedOutput returns the old "expected_output" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldExpectedOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedOutput: %w", err)
	}
	return oldValue.ExpectedOutput, nil
}

// ResetExpectedOutput resets all changes to the "expected_output" field.
func (m *ProjectMutation) ResetExpectedOutput() {
	m.expected_output = nil
}

// SetIsFinalProject sets the "is_final_project" field.
func (m *ProjectMutation) SetIsFinalProject(b bool) {
	m.is_final_project = &b
}

// IsFinalProject returns the value of the "is_final_project" field in the mutation.
func (m *ProjectMutation) IsFinalProject() (r bool, exists bool) {
	v := m.is_final_project
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFinalProject returns the old "is_final_project" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldIsFinalProject(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFinalProject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFinalProject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFinalProject: %w", err)
	}
	return oldValue.IsFinalProject, nil
}

// ResetIsFinalProject resets all changes to the "is_final_project" field.
func (m *ProjectMutation) ResetIsFinalProject() {
	m.is_final_project = nil
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (m *ProjectMutation) ClearLesson() {
	m.clearedlesson = true
	m.clearedFields[project.FieldLessonID] = struct{}{}
}

// LessonCleared reports if the "lesson" edge to the Lesson entity was cleared.
func (m *ProjectMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *ProjectMutation) LessonIDs() (ids []int) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *ProjectMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// AddFileIDs adds the "files" edge to the ProjectFile entity by ids.
func (m *ProjectMutation) AddFileIDs(ids ...int) {
	if m.files == nil {
		m.files = make(map[int]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the ProjectFile entity.
func (m *ProjectMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the ProjectFile entity was cleared.
func (m *ProjectMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the ProjectFile entity by IDs.
func (m *ProjectMutation) RemoveFileIDs(ids ...int) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the ProjectFile entity.
func (m *ProjectMutation) RemovedFilesIDs() (ids []int) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *ProjectMutation) FilesIDs() (ids []int) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *ProjectMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.create_time != nil {
		fields = append(fields, project.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, project.FieldUpdateTime)
	}
	if m.lesson != nil {
		fields = append(fields, project.FieldLessonID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.grading_method != nil {
		fields = append(fields, project.FieldGradingMethod)
	}
	if m.expected_output != nil {
		fields = append(fields, project.FieldExpectedOutput)
	}
	if m.is_final_project != nil {
		fields = append(fields, project.FieldIsFinalProject)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldCreateTime:
		return m.CreateTime()
	case project.FieldUpdateTime:
		return m.UpdateTime()
	case project.FieldLessonID:
		return m.LessonID()
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldGradingMethod:
		return m.GradingMethod()
	case project.FieldExpectedOutput:
		return m.ExpectedOutput()
	case project.FieldIsFinalProject:
		return m.IsFinalProject()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case project.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case project.FieldLessonID:
		return m.OldLessonID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldGradingMethod:
		return m.OldGradingMethod(ctx)
	case project.FieldExpectedOutput:
		return m.OldExpectedOutput(ctx)
	case project.FieldIsFinalProject:
		return m.OldIsFinalProject(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case project.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case project.FieldLessonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldGradingMethod:
		v, ok := value.(project.GradingMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradingMethod(v)
		return nil
	case project.FieldExpectedOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedOutput(v)
		return nil
	case project.FieldIsFinalProject:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFinalProject(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case project.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case project.FieldLessonID:
		m.ResetLessonID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldGradingMethod:
		m.ResetGradingMethod()
		return nil
	case project.FieldExpectedOutput:
		m.ResetExpectedOutput()
		return nil
	case project.FieldIsFinalProject:
		m.ResetIsFinalProject()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lesson != nil {
		edges = append(edges, project.EdgeLesson)
	}
	if m.files != nil {
		edges = append(edges, project.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	case project.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfiles != nil {
		edges = append(edges, project.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlesson {
		edges = append(edges, project.EdgeLesson)
	}
	if m.clearedfiles {
		edges = append(edges, project.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeLesson:
		return m.clearedlesson
	case project.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	case project.EdgeLesson:
		m.ClearLesson()
		return nil
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeLesson:
		m.ResetLesson()
		return nil
	case project.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ProjectFileMutation represents an operation that mutates the ProjectFile nodes in the graph.
type ProjectFileMutation struct {
	config
	op             Op
	typ            string
	id             *int
	_path          *string
	content        *string
	clearedFields  map[string]struct{}
	project        *int
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*ProjectFile, error)
	predicates     []predicate.ProjectFile
}

var _ ent.Mutation = (*ProjectFileMutation)(nil)

// projectfileOption allows management of the mutation configuration using functional options.
type projectfileOption func(*ProjectFileMutation)

// newProjectFileMutation creates new mutation for the ProjectFile entity.
func newProjectFileMutation(c config, op Op, opts ...projectfileOption) *ProjectFileMutation {
	m := &ProjectFileMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectFileID sets the ID field of the mutation.
func withProjectFileID(id int) projectfileOption {
	return func(m *ProjectFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectFile
		)
		m.oldValue = func(ctx context.Context) (*ProjectFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectFile sets the old ProjectFile of the mutation.
func withProjectFile(node *ProjectFile) projectfileOption {
	return func(m *ProjectFileMutation) {
		m.oldValue = func(context.Context) (*ProjectFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectFileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectFileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ProjectFileMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ProjectFileMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ProjectFile entity.
// If the ProjectFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectFileMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ProjectFileMutation) ResetProjectID() {
	m.project = nil
}

// SetPath sets the "path" field.
func (m *ProjectFileMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ProjectFileMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the ProjectFile entity.
// If the ProjectFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectFileMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ProjectFileMutation) ResetPath() {
	m._path = nil
}

// SetContent sets the "content" field.
func (m *ProjectFileMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ProjectFileMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ProjectFile entity.
// If the ProjectFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectFileMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ProjectFileMutation) ResetContent() {
	m.content = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ProjectFileMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[projectfile.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ProjectFileMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ProjectFileMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ProjectFileMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ProjectFileMutation builder.
func (m *ProjectFileMutation) Where(ps ...predicate.ProjectFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectFile).
func (m *ProjectFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectFileMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.project != nil {
		fields = append(fields, projectfile.FieldProjectID)
	}
	if m._path != nil {
		fields = append(fields, projectfile.FieldPath)
	}
	if m.content != nil {
		fields = append(fields, projectfile.FieldContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectfile.FieldProjectID:
		return m.ProjectID()
	case projectfile.FieldPath:
		return m.Path()
	case projectfile.FieldContent:
		return m.Content()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectfile.FieldProjectID:
		return m.OldProjectID(ctx)
	case projectfile.FieldPath:
		return m.OldPath(ctx)
	case projectfile.FieldContent:
		return m.OldContent(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectfile.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case projectfile.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case projectfile.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectFileMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProjectFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectFileMutation) ResetField(name string) error {
	switch name {
	case projectfile.FieldProjectID:
		m.ResetProjectID()
		return nil
	case projectfile.FieldPath:
		m.ResetPath()
		return nil
	case projectfile.FieldContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown ProjectFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, projectfile.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case projectfile.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, projectfile.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectFileMutation) EdgeCleared(name string) bool {
	switch name {
	case projectfile.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectFileMutation) ClearEdge(name string) error {
	switch name {
	case projectfile.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectFileMutation) ResetEdge(name string) error {
	switch name {
	case projectfile.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectFile edge %s", name)
}

// QuizMutation represents an operation that mutates the Quiz nodes in the graph.
type QuizMutation struct {
	config
	op              Op
	typ             string
	id              *int
	create_time     *time.Time
	questions       *[]course.QuizQuestion
	appendquestions []course.QuizQuestion
	clearedFields   map[string]struct{}
	lesson          *int
	clearedlesson   bool
	attempts        map[int]struct{}
	removedattempts map[int]struct{}
	clearedattempts bool
	done            bool
	oldValue        func(context.Context) (*Quiz, error)
	predicates      []predicate.Quiz
}

var _ ent.Mutation = (*QuizMutation)(nil)

// quizOption allows management of the mutation configuration using functional options.
type quizOption func(*QuizMutation)

// newQuizMutation creates new mutation for the Quiz entity.
func newQuizMutation(c config, op Op, opts ...quizOption) *QuizMutation {
	m := &QuizMutation{
		config:        c,
		op:            op,
		typ:           TypeQuiz,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizID sets the ID field of the mutation.
func withQuizID(id int) quizOption {
	return func(m *QuizMutation) {
		var (
			err   error
			once  sync.Once
			value *Quiz
		)
		m.oldValue = func(ctx context.Context) (*Quiz, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Quiz.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuiz sets the old Quiz of the mutation.
func withQuiz(node *Quiz) quizOption {
	return func(m *QuizMutation) {
		m.oldValue = func(context.Context) (*Quiz, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Quiz.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *QuizMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *QuizMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Quiz entity.
// If the Quiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *QuizMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *QuizMutation) SetLessonID(i int) {
	m.lesson = &i
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *QuizMutation) LessonID() (r int, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the Quiz entity.
// If the Quiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizMutation) OldLessonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *QuizMutation) ResetLessonID() {
	m.lesson = nil
}

// SetQuestions sets the "questions" field.
func (m *QuizMutation) SetQuestions(cq []course.QuizQuestion) {
	m.questions = &cq
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *QuizMutation) Questions() (r []course.QuizQuestion, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the Quiz entity.
// If the Quiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizMutation) OldQuestions(ctx context.Context) (v []course.QuizQuestion, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds cq to the "questions" field.
func (m *QuizMutation) AppendQuestions(cq []course.QuizQuestion) {
	m.appendquestions = append(m.appendquestions, cq...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *QuizMutation) AppendedQuestions() ([]course.QuizQuestion, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ResetQuestions resets all changes to the "questions" field.
func (m *QuizMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (m *QuizMutation) ClearLesson() {
	m.clearedlesson = true
	m.clearedFields[quiz.FieldLessonID] = struct{}{}
}

// LessonCleared reports if the "lesson" edge to the Lesson entity was cleared.
func (m *QuizMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *QuizMutation) LessonIDs() (ids []int) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *QuizMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// AddAttemptIDs adds the "attempts" edge to the QuizAttempt entity by ids.
func (m *QuizMutation) AddAttemptIDs(ids ...int) {
	if m.attempts == nil {
		m.attempts = make(map[int]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the QuizAttempt entity.
func (m *QuizMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the QuizAttempt entity was cleared.
func (m *QuizMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the QuizAttempt entity by IDs.
func (m *QuizMutation) RemoveAttemptIDs(ids ...int) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the QuizAttempt entity.
func (m *QuizMutation) RemovedAttemptsIDs() (ids []int) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *QuizMutation) AttemptsIDs() (ids []int) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *QuizMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the QuizMutation builder.
func (m *QuizMutation) Where(ps ...predicate.Quiz) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Quiz, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Quiz).
func (m *QuizMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.create_time != nil {
		fields = append(fields, quiz.FieldCreateTime)
	}
	if m.lesson != nil {
		fields = append(fields, quiz.FieldLessonID)
	}
	if m.questions != nil {
		fields = append(fields, quiz.FieldQuestions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quiz.FieldCreateTime:
		return m.CreateTime()
	case quiz.FieldLessonID:
		return m.LessonID()
	case quiz.FieldQuestions:
		return m.Questions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quiz.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case quiz.FieldLessonID:
		return m.OldLessonID(ctx)
	case quiz.FieldQuestions:
		return m.OldQuestions(ctx)
	}
	return nil, fmt.Errorf("unknown Quiz field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quiz.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case quiz.FieldLessonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case quiz.FieldQuestions:
		v, ok := value.([]course.QuizQuestion)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	}
	return fmt.Errorf("unknown Quiz field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Quiz numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Quiz nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizMutation) ResetField(name string) error {
	switch name {
	case quiz.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case quiz.FieldLessonID:
		m.ResetLessonID()
		return nil
	case quiz.FieldQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Quiz field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lesson != nil {
		edges = append(edges, quiz.EdgeLesson)
	}
	if m.attempts != nil {
		edges = append(edges, quiz.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quiz.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	case quiz.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedattempts != nil {
		edges = append(edges, quiz.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case quiz.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlesson {
		edges = append(edges, quiz.EdgeLesson)
	}
	if m.clearedattempts {
		edges = append(edges, quiz.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizMutation) EdgeCleared(name string) bool {
	switch name {
	case quiz.EdgeLesson:
		return m.clearedlesson
	case quiz.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizMutation) ClearEdge(name string) error {
	switch name {
	case quiz.EdgeLesson:
		m.ClearLesson()
		return nil
	}
	return fmt.Errorf("unknown Quiz unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizMutation) ResetEdge(name string) error {
	switch name {
	case quiz.EdgeLesson:
		m.ResetLesson()
		return nil
	case quiz.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown Quiz edge %s", name)
}

// QuizAttemptMutation represents an operation that mutates the QuizAttempt nodes in the graph.
type QuizAttemptMutation struct {
	config
	op            Op
	typ           string
	id            *int
	create_time   *time.Time
	answers       *map[int]string
	results       *[]course.QuestionResult
	appendresults []course.QuestionResult
	score         *int
	addscore      *int
	total         *int
	addtotal      *int
	clearedFields map[string]struct{}
	quiz          *int
	clearedquiz   bool
	done          bool
	oldValue      func(context.Context) (*QuizAttempt, error)
	predicates    []predicate.QuizAttempt
}

var _ ent.Mutation = (*QuizAttemptMutation)(nil)

// quizattemptOption allows management of the mutation configuration using functional options.
type quizattemptOption func(*QuizAttemptMutation)

// newQuizAttemptMutation creates new mutation for the QuizAttempt entity.
func newQuizAttemptMutation(c config, op Op, opts ...quizattemptOption) *QuizAttemptMutation {
	m := &QuizAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizAttemptID sets the ID field of the mutation.
func withQuizAttemptID(id int) quizattemptOption {
	return func(m *QuizAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizAttempt
		)
		m.oldValue = func(ctx context.Context) (*QuizAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizAttempt sets the old QuizAttempt of the mutation.
func withQuizAttempt(node *QuizAttempt) quizattemptOption {
	return func(m *QuizAttemptMutation) {
		m.oldValue = func(context.Context) (*QuizAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *QuizAttemptMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *QuizAttemptMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *QuizAttemptMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetQuizID sets the "quiz_id" field.
func (m *QuizAttemptMutation) SetQuizID(i int) {
	m.quiz = &i
}

// QuizID returns the value of the "quiz_id" field in the mutation.
func (m *QuizAttemptMutation) QuizID() (r int, exists bool) {
	v := m.quiz
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizID returns the old "quiz_id" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldQuizID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizID: %w", err)
	}
	return oldValue.QuizID, nil
}

// ResetQuizID resets all changes to the "quiz_id" field.
func (m *QuizAttemptMutation) ResetQuizID() {
	m.quiz = nil
}

// SetAnswers sets the "answers" field.
func (m *QuizAttemptMutation) SetAnswers(value map[int]string) {
	m.answers = &value
}

// Answers returns the value of the "answers" field in the mutation.
func (m *QuizAttemptMutation) Answers() (r map[int]string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldAnswers(ctx context.Context) (v map[int]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// ResetAnswers resets all changes to the "answers" field.
func (m *QuizAttemptMutation) ResetAnswers() {
	m.answers = nil
}

// SetResults sets the "results" field.
func (m *QuizAttemptMutation) SetResults(cr []course.QuestionResult) {
	m.results = &cr
	m.appendresults = nil
}

// Results returns the value of the "results" field in the mutation.
func (m *QuizAttemptMutation) Results() (r []course.QuestionResult, exists bool) {
	v := m.results
	if v == nil {
		return
	}
	return *v, true
}

// OldResults returns the old "results" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldResults(ctx context.Context) (v []course.QuestionResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResults: %w", err)
	}
	return oldValue.Results, nil
}

// AppendResults adds cr to the "results" field.
func (m *QuizAttemptMutation) AppendResults(cr []course.QuestionResult) {
	m.appendresults = append(m.appendresults, cr...)
}

// AppendedResults returns the list of values that were appended to the "results" field in this mutation.
func (m *QuizAttemptMutation) AppendedResults() ([]course.QuestionResult, bool) {
	if len(m.appendresults) == 0 {
		return nil, false
	}
	return m.appendresults, true
}

// ResetResults resets all changes to the "results" field.
func (m *QuizAttemptMutation) ResetResults() {
	m.results = nil
	m.appendresults = nil
}

// SetScore sets the "score" field.
func (m *QuizAttemptMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuizAttemptMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *QuizAttemptMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuizAttemptMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *QuizAttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotal sets the "total" field.
func (m *QuizAttemptMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *QuizAttemptMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *QuizAttemptMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *QuizAttemptMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *QuizAttemptMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (m *QuizAttemptMutation) ClearQuiz() {
	m.clearedquiz = true
	m.clearedFields[quizattempt.FieldQuizID] = struct{}{}
}

// QuizCleared reports if the "quiz" edge to the Quiz entity was cleared.
func (m *QuizAttemptMutation) QuizCleared() bool {
	return m.clearedquiz
}

// QuizIDs returns the "quiz" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuizID instead. It exists only for internal usage by the builders.
func (m *QuizAttemptMutation) QuizIDs() (ids []int) {
	if id := m.quiz; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuiz resets all changes to the "quiz" edge.
func (m *QuizAttemptMutation) ResetQuiz() {
	m.quiz = nil
	m.clearedquiz = false
}

// Where appends a list predicates to the QuizAttemptMutation builder.
func (m *QuizAttemptMutation) Where(ps ...predicate.QuizAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizAttempt).
func (m *QuizAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizAttemptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.create_time != nil {
		fields = append(fields, quizattempt.FieldCreateTime)
	}
	if m.quiz != nil {
		fields = append(fields, quizattempt.FieldQuizID)
	}
	if m.answers != nil {
		fields = append(fields, quizattempt.FieldAnswers)
	}
	if m.results != nil {
		fields = append(fields, quizattempt.FieldResults)
	}
	if m.score != nil {
		fields = append(fields, quizattempt.FieldScore)
	}
	if m.total != nil {
		fields = append(fields, quizattempt.FieldTotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizattempt.FieldCreateTime:
		return m.CreateTime()
	case quizattempt.FieldQuizID:
		return m.QuizID()
	case quizattempt.FieldAnswers:
		return m.Answers()
	case quizattempt.FieldResults:
		return m.Results()
	case quizattempt.FieldScore:
		return m.Score()
	case quizattempt.FieldTotal:
		return m.Total()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizattempt.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case quizattempt.FieldQuizID:
		return m.OldQuizID(ctx)
	case quizattempt.FieldAnswers:
		return m.OldAnswers(ctx)
	case quizattempt.FieldResults:
		return m.OldResults(ctx)
	case quizattempt.FieldScore:
		return m.OldScore(ctx)
	case quizattempt.FieldTotal:
		return m.OldTotal(ctx)
	}
	return nil, fmt.Errorf("unknown QuizAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizattempt.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case quizattempt.FieldQuizID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizID(v)
		return nil
	case quizattempt.FieldAnswers:
		v, ok := value.(map[int]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case quizattempt.FieldResults:
		v, ok := value.([]course.QuestionResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResults(v)
		return nil
	case quizattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case quizattempt.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, quizattempt.FieldScore)
	}
	if m.addtotal != nil {
		fields = append(fields, quizattempt.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizattempt.FieldScore:
		return m.AddedScore()
	case quizattempt.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case quizattempt.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizAttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizAttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizAttemptMutation) ResetField(name string) error {
	switch name {
	case quizattempt.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case quizattempt.FieldQuizID:
		m.ResetQuizID()
		return nil
	case quizattempt.FieldAnswers:
		m.ResetAnswers()
		return nil
	case quizattempt.FieldResults:
		m.ResetResults()
		return nil
	case quizattempt.FieldScore:
		m.ResetScore()
		return nil
	case quizattempt.FieldTotal:
		m.ResetTotal()
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.quiz != nil {
		edges = append(edges, quizattempt.EdgeQuiz)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quizattempt.EdgeQuiz:
		if id := m.quiz; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquiz {
		edges = append(edges, quizattempt.EdgeQuiz)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case quizattempt.EdgeQuiz:
		return m.clearedquiz
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizAttemptMutation) ClearEdge(name string) error {
	switch name {
	case quizattempt.EdgeQuiz:
		m.ClearQuiz()
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizAttemptMutation) ResetEdge(name string) error {
	switch name {
	case quizattempt.EdgeQuiz:
		m.ResetQuiz()
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt edge %s", name)
}

// TextResponseQuestionMutation represents an operation that mutates the TextResponseQuestion nodes in the graph.
type TextResponseQuestionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	create_time      *time.Time
	number           *int
	addnumber        *int
	question         *string
	reference_answer *string
	clearedFields    map[string]struct{}
	lesson           *int
	clearedlesson    bool
	done             bool
	oldValue         func(context.Context) (*TextResponseQuestion, error)
	predicates       []predicate.TextResponseQuestion
}

var _ ent.Mutation = (*TextResponseQuestionMutation)(nil)

// textresponsequestionOption allows management of the mutation configuration using functional options.
type textresponsequestionOption func(*TextResponseQuestionMutation)

// newTextResponseQuestionMutation creates new mutation for the TextResponseQuestion entity.
func newTextResponseQuestionMutation(c config, op Op, opts ...textresponsequestionOption) *TextResponseQuestionMutation {
	m := &TextResponseQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeTextResponseQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTextResponseQuestionID sets the ID field of the mutation.
func withTextResponseQuestionID(id int) textresponsequestionOption {
	return func(m *TextResponseQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *TextResponseQuestion
		)
		m.oldValue = func(ctx context.Context) (*TextResponseQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TextResponseQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTextResponseQuestion sets the old TextResponseQuestion of the mutation.
func withTextResponseQuestion(node *TextResponseQuestion) textresponsequestionOption {
	return func(m *TextResponseQuestionMutation) {
		m.oldValue = func(context.Context) (*TextResponseQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TextResponseQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TextResponseQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TextResponseQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TextResponseQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TextResponseQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *TextResponseQuestionMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *TextResponseQuestionMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the TextResponseQuestion entity.
// If the TextResponseQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseQuestionMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *TextResponseQuestionMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *TextResponseQuestionMutation) SetLessonID(i int) {
	m.lesson = &i
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *TextResponseQuestionMutation) LessonID() (r int, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the TextResponseQuestion entity.
// If the TextResponseQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseQuestionMutation) OldLessonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *TextResponseQuestionMutation) ResetLessonID() {
	m.lesson = nil
}

// SetNumber sets the "number" field.
func (m *TextResponseQuestionMutation) SetNumber(i int) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *TextResponseQuestionMutation) Number() (r int, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the TextResponseQuestion entity.
// If the TextResponseQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseQuestionMutation) OldNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *TextResponseQuestionMutation) AddNumber(i int) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *TextResponseQuestionMutation) AddedNumber() (r int, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *TextResponseQuestionMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetQuestion sets the "question" field.
func (m *TextResponseQuestionMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *TextResponseQuestionMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the TextResponseQuestion entity.
// If the TextResponseQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseQuestionMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *TextResponseQuestionMutation) ResetQuestion() {
	m.question = nil
}

// SetReferenceAnswer sets the "reference_answer" field.
func (m *TextResponseQuestionMutation) SetReferenceAnswer(s string) {
	m.reference_answer = &s
}

// ReferenceAnswer returns the value of the "reference_answer" field in the mutation.
func (m *TextResponseQuestionMutation) ReferenceAnswer() (r string, exists bool) {
	v := m.reference_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceAnswer returns the old "reference_answer" field's value of the TextResponseQuestion entity.
// If the TextResponseQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseQuestionMutation) OldReferenceAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceAnswer: %w", err)
	}
	return oldValue.ReferenceAnswer, nil
}

// ResetReferenceAnswer resets all changes to the "reference_answer" field.
func (m *TextResponseQuestionMutation) ResetReferenceAnswer() {
	m.reference_answer = nil
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (m *TextResponseQuestionMutation) ClearLesson() {
	m.clearedlesson = true
	m.clearedFields[textresponsequestion.FieldLessonID] = struct{}{}
}

// LessonCleared reports if the "lesson" edge to the Lesson entity was cleared.
func (m *TextResponseQuestionMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *TextResponseQuestionMutation) LessonIDs() (ids []int) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *TextResponseQuestionMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// Where appends a list predicates to the TextResponseQuestionMutation builder.
func (m *TextResponseQuestionMutation) Where(ps ...predicate.TextResponseQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TextResponseQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TextResponseQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TextResponseQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TextResponseQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TextResponseQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TextResponseQuestion).
func (m *TextResponseQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TextResponseQuestionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.create_time != nil {
		fields = append(fields, textresponsequestion.FieldCreateTime)
	}
	if m.lesson != nil {
		fields = append(fields, textresponsequestion.FieldLessonID)
	}
	if m.number != nil {
		fields = append(fields, textresponsequestion.FieldNumber)
	}
	if m.question != nil {
		fields = append(fields, textresponsequestion.FieldQuestion)
	}
	if m.reference_answer != nil {
		fields = append(fields, textresponsequestion.FieldReferenceAnswer)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TextResponseQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case textresponsequestion.FieldCreateTime:
		return m.CreateTime()
	case textresponsequestion.FieldLessonID:
		return m.LessonID()
	case textresponsequestion.FieldNumber:
		return m.Number()
	case textresponsequestion.FieldQuestion:
		return m.Question()
	case textresponsequestion.FieldReferenceAnswer:
		return m.ReferenceAnswer()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TextResponseQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case textresponsequestion.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case textresponsequestion.FieldLessonID:
		return m.OldLessonID(ctx)
	case textresponsequestion.FieldNumber:
		return m.OldNumber(ctx)
	case textresponsequestion.FieldQuestion:
		return m.OldQuestion(ctx)
	case textresponsequestion.FieldReferenceAnswer:
		return m.OldReferenceAnswer(ctx)
	}
	return nil, fmt.Errorf("unknown TextResponseQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TextResponseQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case textresponsequestion.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case textresponsequestion.FieldLessonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case textresponsequestion.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case textresponsequestion.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case textresponsequestion.FieldReferenceAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceAnswer(v)
		return nil
	}
	return fmt.Errorf("unknown TextResponseQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TextResponseQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addnumber != nil {
		fields = append(fields, textresponsequestion.FieldNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TextResponseQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case textresponsequestion.FieldNumber:
		return m.AddedNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TextResponseQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case textresponsequestion.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	}
	return fmt.Errorf("unknown TextResponseQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TextResponseQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TextResponseQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TextResponseQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TextResponseQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TextResponseQuestionMutation) ResetField(name string) error {
	switch name {
	case textresponsequestion.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case textresponsequestion.FieldLessonID:
		m.ResetLessonID()
		return nil
	case textresponsequestion.FieldNumber:
		m.ResetNumber()
		return nil
	case textresponsequestion.FieldQuestion:
		m.ResetQuestion()
		return nil
	case textresponsequestion.FieldReferenceAnswer:
		m.ResetReferenceAnswer()
		return nil
	}
	return fmt.Errorf("unknown TextResponseQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TextResponseQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lesson != nil {
		edges = append(edges, textresponsequestion.EdgeLesson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TextResponseQuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case textresponsequestion.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TextResponseQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TextResponseQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TextResponseQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlesson {
		edges = append(edges, textresponsequestion.EdgeLesson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TextResponseQuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case textresponsequestion.EdgeLesson:
		return m.clearedlesson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TextResponseQuestionMutation) ClearEdge(name string) error {
	switch name {
	case textresponsequestion.EdgeLesson:
		m.ClearLesson()
		return nil
	}
	return fmt.Errorf("unknown TextResponseQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TextResponseQuestionMutation) ResetEdge(name string) error {
	switch name {
	case textresponsequestion.EdgeLesson:
		m.ResetLesson()
		return nil
	}
	return fmt.Errorf("unknown TextResponseQuestion edge %s", name)
}

// TextResponseSubmissionMutation represents an operation that mutates the TextResponseSubmission nodes in the graph.
type TextResponseSubmissionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	create_time        *time.Time
	answers            *map[int]string
	grades             *map[int]course.TextGrade
	total_score        *float64
	addtotal_score     *float64
	total_questions    *int
	addtotal_questions *int
	fallback           *bool
	clearedFields      map[string]struct{}
	lesson             *int
	clearedlesson      bool
	done               bool
	oldValue           func(context.Context) (*TextResponseSubmission, error)
	predicates         []predicate.TextResponseSubmission
}

var _ ent.Mutation = (*TextResponseSubmissionMutation)(nil)

// textresponsesubmissionOption allows management of the mutation configuration using functional options.
type textresponsesubmissionOption func(*TextResponseSubmissionMutation)

// newTextResponseSubmissionMutation creates new mutation for the TextResponseSubmission entity.
func newTextResponseSubmissionMutation(c config, op Op, opts ...textresponsesubmissionOption) *TextResponseSubmissionMutation {
	m := &TextResponseSubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeTextResponseSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTextResponseSubmissionID sets the ID field of the mutation.
func withTextResponseSubmissionID(id int) textresponsesubmissionOption {
	return func(m *TextResponseSubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *TextResponseSubmission
		)
		m.oldValue = func(ctx context.Context) (*TextResponseSubmission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TextResponseSubmission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTextResponseSubmission sets the old TextResponseSubmission of the mutation.
func withTextResponseSubmission(node *TextResponseSubmission) textresponsesubmissionOption {
	return func(m *TextResponseSubmissionMutation) {
		m.oldValue = func(context.Context) (*TextResponseSubmission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TextResponseSubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TextResponseSubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TextResponseSubmissionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TextResponseSubmissionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TextResponseSubmission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *TextResponseSubmissionMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *TextResponseSubmissionMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the TextResponseSubmission entity.
// If the TextResponseSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseSubmissionMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *TextResponseSubmissionMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *TextResponseSubmissionMutation) SetLessonID(i int) {
	m.lesson = &i
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *TextResponseSubmissionMutation) LessonID() (r int, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the TextResponseSubmission entity.
// If the TextResponseSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseSubmissionMutation) OldLessonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *TextResponseSubmissionMutation) ResetLessonID() {
	m.lesson = nil
}

// SetAnswers sets the "answers" field.
func (m *TextResponseSubmissionMutation) SetAnswers(value map[int]string) {
	m.answers = &value
}

// Answers returns the value of the "answers" field in the mutation.
func (m *TextResponseSubmissionMutation) Answers() (r map[int]string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the TextResponseSubmission entity.
// If the TextResponseSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseSubmissionMutation) OldAnswers(ctx context.Context) (v map[int]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// ResetAnswers resets all changes to the "answers" field.
func (m *TextResponseSubmissionMutation) ResetAnswers() {
	m.answers = nil
}

// SetGrades sets the "grades" field.
func (m *TextResponseSubmissionMutation) SetGrades(mg map[int]course.TextGrade) {
	m.grades = &mg
}

// Grades returns the value of the "grades" field in the mutation.
func (m *TextResponseSubmissionMutation) Grades() (r map[int]course.TextGrade, exists bool) {
	v := m.grades
	if v == nil {
		return
	}
	return *v, true
}

// OldGrades returns the old "grades" field's value of the TextResponseSubmission entity.
// If the TextResponseSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseSubmissionMutation) OldGrades(ctx context.Context) (v map[int]course.TextGrade, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrades is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrades requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrades: %w", err)
	}
	return oldValue.Grades, nil
}

// ResetGrades resets all changes to the "grades" field.
func (m *TextResponseSubmissionMutation) ResetGrades() {
	m.grades = nil
}

// SetTotalScore sets the "total_score" field.
func (m *TextResponseSubmissionMutation) SetTotalScore(f float64) {
	m.total_score = &f
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *TextResponseSubmissionMutation) TotalScore() (r float64, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the TextResponseSubmission entity.
// If the TextResponseSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseSubmissionMutation) OldTotalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds f to the "total_score" field.
func (m *TextResponseSubmissionMutation) AddTotalScore(f float64) {
	if m.addtotal_score != nil {
		*m.addtotal_score += f
	} else {
		m.addtotal_score = &f
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *TextResponseSubmissionMutation) AddedTotalScore() (r float64, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *TextResponseSubmissionMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *TextResponseSubmissionMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *TextResponseSubmissionMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the TextResponseSubmission entity.
// If the TextResponseSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseSubmissionMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *TextResponseSubmissionMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *TextResponseSubmissionMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *TextResponseSubmissionMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetFallback sets the "fallback" field.
func (m *TextResponseSubmissionMutation) SetFallback(b bool) {
	m.fallback = &b
}

// Fallback returns the value of the "fallback" field in the mutation.
func (m *TextResponseSubmissionMutation) Fallback() (r bool, exists bool) {
	v := m.fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldFallback returns the old "fallback" field's value of the TextResponseSubmission entity.
// If the TextResponseSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextResponseSubmissionMutation) OldFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallback: %w", err)
	}
	return oldValue.Fallback, nil
}

// ResetFallback resets all changes to the "fallback" field.
func (m *TextResponseSubmissionMutation) ResetFallback() {
	m.fallback = nil
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (m *TextResponseSubmissionMutation) ClearLesson() {
	m.clearedlesson = true
	m.clearedFields[textresponsesubmission.FieldLessonID] = struct{}{}
}

// LessonCleared reports if the "lesson" edge to the Lesson entity was cleared.
func (m *TextResponseSubmissionMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *TextResponseSubmissionMutation) LessonIDs() (ids []int) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *TextResponseSubmissionMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// Where appends a list predicates to the TextResponseSubmissionMutation builder.
func (m *TextResponseSubmissionMutation) Where(ps ...predicate.TextResponseSubmission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TextResponseSubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TextResponseSubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TextResponseSubmission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TextResponseSubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TextResponseSubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TextResponseSubmission).
func (m *TextResponseSubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TextResponseSubmissionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.create_time != nil {
		fields = append(fields, textresponsesubmission.FieldCreateTime)
	}
	if m.lesson != nil {
		fields = append(fields, textresponsesubmission.FieldLessonID)
	}
	if m.answers != nil {
		fields = append(fields, textresponsesubmission.FieldAnswers)
	}
	if m.grades != nil {
		fields = append(fields, textresponsesubmission.FieldGrades)
	}
	if m.total_score != nil {
		fields = append(fields, textresponsesubmission.FieldTotalScore)
	}
	if m.total_questions != nil {
		fields = append(fields, textresponsesubmission.FieldTotalQuestions)
	}
	if m.fallback != nil {
		fields = append(fields, textresponsesubmission.FieldFallback)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TextResponseSubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case textresponsesubmission.FieldCreateTime:
		return m.CreateTime()
	case textresponsesubmission.FieldLessonID:
		return m.LessonID()
	case textresponsesubmission.FieldAnswers:
		return m.Answers()
	case textresponsesubmission.FieldGrades:
		return m.Grades()
	case textresponsesubmission.FieldTotalScore:
		return m.TotalScore()
	case textresponsesubmission.FieldTotalQuestions:
		return m.TotalQuestions()
	case textresponsesubmission.FieldFallback:
		return m.Fallback()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TextResponseSubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case textresponsesubmission.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case textresponsesubmission.FieldLessonID:
		return m.OldLessonID(ctx)
	case textresponsesubmission.FieldAnswers:
		return m.OldAnswers(ctx)
	case textresponsesubmission.FieldGrades:
		return m.OldGrades(ctx)
	case textresponsesubmission.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case textresponsesubmission.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case textresponsesubmission.FieldFallback:
		return m.OldFallback(ctx)
	}
	return nil, fmt.Errorf("unknown TextResponseSubmission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TextResponseSubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case textresponsesubmission.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case textresponsesubmission.FieldLessonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case textresponsesubmission.FieldAnswers:
		v, ok := value.(map[int]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case textresponsesubmission.FieldGrades:
		v, ok := value.(map[int]course.TextGrade)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrades(v)
		return nil
	case textresponsesubmission.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case textresponsesubmission.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case textresponsesubmission.FieldFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallback(v)
		return nil
	}
	return fmt.Errorf("unknown TextResponseSubmission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TextResponseSubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_score != nil {
		fields = append(fields, textresponsesubmission.FieldTotalScore)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, textresponsesubmission.FieldTotalQuestions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TextResponseSubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case textresponsesubmission.FieldTotalScore:
		return m.AddedTotalScore()
	case textresponsesubmission.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TextResponseSubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case textresponsesubmission.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	case textresponsesubmission.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	}
	return fmt.Errorf("unknown TextResponseSubmission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TextResponseSubmissionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TextResponseSubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TextResponseSubmissionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TextResponseSubmission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TextResponseSubmissionMutation) ResetField(name string) error {
	switch name {
	case textresponsesubmission.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case textresponsesubmission.FieldLessonID:
		m.ResetLessonID()
		return nil
	case textresponsesubmission.FieldAnswers:
		m.ResetAnswers()
		return nil
	case textresponsesubmission.FieldGrades:
		m.ResetGrades()
		return nil
	case textresponsesubmission.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case textresponsesubmission.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case textresponsesubmission.FieldFallback:
		m.ResetFallback()
		return nil
	}
	return fmt.Errorf("unknown TextResponseSubmission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TextResponseSubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lesson != nil {
		edges = append(edges, textresponsesubmission.EdgeLesson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TextResponseSubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case textresponsesubmission.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TextResponseSubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TextResponseSubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TextResponseSubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlesson {
		edges = append(edges, textresponsesubmission.EdgeLesson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TextResponseSubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case textresponsesubmission.EdgeLesson:
		return m.clearedlesson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TextResponseSubmissionMutation) ClearEdge(name string) error {
	switch name {
	case textresponsesubmission.EdgeLesson:
		m.ClearLesson()
		return nil
	}
	return fmt.Errorf("unknown TextResponseSubmission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TextResponseSubmissionMutation) ResetEdge(name string) error {
	switch name {
	case textresponsesubmission.EdgeLesson:
		m.ResetLesson()
		return nil
	}
	return fmt.Errorf("unknown TextResponseSubmission edge %s", name)
}

// VideoMutation represents an operation that mutates the Video nodes in the graph.
type VideoMutation struct {
	config
	op            Op
	typ           string
	id            *int
	create_time   *time.Time
	update_time   *time.Time
	video_id      *string
	title         *string
	description   *string
	thumbnail_url *string
	channel_title *string
	published_at  *time.Time
	video_url     *string
	like_count    *uint64
	addlike_count *int64
	view_count    *uint64
	addview_count *int64
	clearedFields map[string]struct{}
	lesson        *int
	clearedlesson bool
	done          bool
	oldValue      func(context.Context) (*Video, error)
	predicates    []predicate.Video
}

var _ ent.Mutation = (*VideoMutation)(nil)

// videoOption allows management of the mutation configuration using functional options.
type videoOption func(*VideoMutation)

// newVideoMutation creates new mutation for the Video entity.
func newVideoMutation(c config, op Op, opts ...videoOption) *VideoMutation {
	m := &VideoMutation{
		config:        c,
		op:            op,
		typ:           TypeVideo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVideoID sets the ID field of the mutation.
func withVideoID(id int) videoOption {
	return func(m *VideoMutation) {
		var (
			err   error
			once  sync.Once
			value *Video
		)
		m.oldValue = func(ctx context.Context) (*Video, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Video.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVideo sets the old Video of the mutation.
func withVideo(node *Video) videoOption {
	return func(m *VideoMutation) {
		m.oldValue = func(context.Context) (*Video, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VideoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VideoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VideoMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VideoMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Video.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *VideoMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *VideoMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *VideoMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *VideoMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *VideoMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *VideoMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *VideoMutation) SetLessonID(i int) {
	m.lesson = &i
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *VideoMutation) LessonID() (r int, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldLessonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *VideoMutation) ResetLessonID() {
	m.lesson = nil
}

// SetVideoID sets the "video_id" field.
func (m *VideoMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *VideoMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *VideoMutation) ResetVideoID() {
	m.video_id = nil
}

// SetTitle sets the "title" field.
func (m *VideoMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *VideoMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldTitle(ctx context.Context) (v string, err error) {
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

// ResetTitle resets all changes to the "title" field.
func (m *VideoMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *VideoMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *VideoMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldDescription(ctx context.Context) (v string, err error) {
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

// ResetDescription resets all changes to the "description" field.
func (m *VideoMutation) ResetDescription() {
	m.description = nil
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (m *VideoMutation) SetThumbnailURL(s string) {
	m.thumbnail_url = &s
}

// ThumbnailURL returns the value of the "thumbnail_url" field in the mutation.
func (m *VideoMutation) ThumbnailURL() (r string, exists bool) {
	v := m.thumbnail_url
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailURL returns the old "thumbnail_url" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldThumbnailURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailURL: %w", err)
	}
	return oldValue.ThumbnailURL, nil
}

// ResetThumbnailURL resets all changes to the "thumbnail_url" field.
func (m *VideoMutation) ResetThumbnailURL() {
	m.thumbnail_url = nil
}

// SetChannelTitle sets the "channel_title" field.
func (m *VideoMutation) SetChannelTitle(s string) {
	m.channel_title = &s
}

// ChannelTitle returns the value of the "channel_title" field in the mutation.
func (m *VideoMutation) ChannelTitle() (r string, exists bool) {
	v := m.channel_title
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelTitle returns the old "channel_title" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldChannelTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelTitle: %w", err)
	}
	return oldValue.ChannelTitle, nil
}

// ResetChannelTitle resets all changes to the "channel_title" field.
func (m *VideoMutation) ResetChannelTitle() {
	m.channel_title = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *VideoMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *VideoMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *VideoMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[video.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *VideoMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[video.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *VideoMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, video.FieldPublishedAt)
}

// SetVideoURL sets the "video_url" field.
func (m *VideoMutation) SetVideoURL(s string) {
	m.video_url = &s
}

// VideoURL returns the value of the "video_url" field in the mutation.
func (m *VideoMutation) VideoURL() (r string, exists bool) {
	v := m.video_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoURL returns the old "video_url" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldVideoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoURL: %w", err)
	}
	return oldValue.VideoURL, nil
}

// ResetVideoURL resets all changes to the "video_url" field.
func (m *VideoMutation) ResetVideoURL() {
	m.video_url = nil
}

// SetLikeCount sets the "like_count" field.
func (m *VideoMutation) SetLikeCount(u uint64) {
	m.like_count = &u
	m.addlike_count = nil
}

// LikeCount returns the value of the "like_count" field in the mutation.
func (m *VideoMutation) LikeCount() (r uint64, exists bool) {
	v := m.like_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLikeCount returns the old "like_count" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldLikeCount(ctx context.Context) (v uint64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikeCount: %w", err)
	}
	return oldValue.LikeCount, nil
}

// AddLikeCount adds u to the "like_count" field.
func (m *VideoMutation) AddLikeCount(u int64) {
	if m.addlike_count != nil {
		*m.addlike_count += u
	} else {
		m.addlike_count = &u
	}
}

// AddedLikeCount returns the value that was added to the "like_count" field in this mutation.
func (m *VideoMutation) AddedLikeCount() (r int64, exists bool) {
	v := m.addlike_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLikeCount resets all changes to the "like_count" field.
func (m *VideoMutation) ResetLikeCount() {
	m.like_count = nil
	m.addlike_count = nil
}

// SetViewCount sets the "view_count" field.
func (m *VideoMutation) SetViewCount(u uint64) {
	m.view_count = &u
	m.addview_count = nil
}

// ViewCount returns the value of the "view_count" field in the mutation.
func (m *VideoMutation) ViewCount() (r uint64, exists bool) {
	v := m.view_count
	if v == nil {
		return
	}
	return *v, true
}

// OldViewCount returns the old "view_count" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldViewCount(ctx context.Context) (v uint64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewCount: %w", err)
	}
	return oldValue.ViewCount, nil
}

// AddViewCount adds u to the "view_count" field.
func (m *VideoMutation) AddViewCount(u int64) {
	if m.addview_count != nil {
		*m.addview_count += u
	} else {
		m.addview_count = &u
	}
}

// AddedViewCount returns the value that was added to the "view_count" field in this mutation.
func (m *VideoMutation) AddedViewCount() (r int64, exists bool) {
	v := m.addview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetViewCount resets all changes to the "view_count" field.
func (m *VideoMutation) ResetViewCount() {
	m.view_count = nil
	m.addview_count = nil
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (m *VideoMutation) ClearLesson() {
	m.clearedlesson = true
	m.clearedFields[video.FieldLessonID] = struct{}{}
}

// LessonCleared reports if the "lesson" edge to the Lesson entity was cleared.
func (m *VideoMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *VideoMutation) LessonIDs() (ids []int) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *VideoMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// Where appends a list predicates to the VideoMutation builder.
func (m *VideoMutation) Where(ps ...predicate.Video) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VideoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VideoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Video, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VideoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VideoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Video).
func (m *VideoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VideoMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.create_time != nil {
		fields = append(fields, video.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, video.FieldUpdateTime)
	}
	if m.lesson != nil {
		fields = append(fields, video.FieldLessonID)
	}
	if m.video_id != nil {
		fields = append(fields, video.FieldVideoID)
	}
	if m.title != nil {
		fields = append(fields, video.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, video.FieldDescription)
	}
	if m.thumbnail_url != nil {
		fields = append(fields, video.FieldThumbnailURL)
	}
	if m.channel_title != nil {
		fields = append(fields, video.FieldChannelTitle)
	}
	if m.published_at != nil {
		fields = append(fields, video.FieldPublishedAt)
	}
	if m.video_url != nil {
		fields = append(fields, video.FieldVideoURL)
	}
	if m.like_count != nil {
		fields = append(fields, video.FieldLikeCount)
	}
	if m.view_count != nil {
		fields = append(fields, video.FieldViewCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VideoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case video.FieldCreateTime:
		return m.CreateTime()
	case video.FieldUpdateTime:
		return m.UpdateTime()
	case video.FieldLessonID:
		return m.LessonID()
	case video.FieldVideoID:
		return m.VideoID()
	case video.FieldTitle:
		return m.Title()
	case video.FieldDescription:
		return m.Description()
	case video.FieldThumbnailURL:
		return m.ThumbnailURL()
	case video.FieldChannelTitle:
		return m.ChannelTitle()
	case video.FieldPublishedAt:
		return m.PublishedAt()
	case video.FieldVideoURL:
		return m.VideoURL()
	case video.FieldLikeCount:
		return m.LikeCount()
	case video.FieldViewCount:
		return m.ViewCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VideoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case video.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case video.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case video.FieldLessonID:
		return m.OldLessonID(ctx)
	case video.FieldVideoID:
		return m.OldVideoID(ctx)
	case video.FieldTitle:
		return m.OldTitle(ctx)
	case video.FieldDescription:
		return m.OldDescription(ctx)
	case video.FieldThumbnailURL:
		return m.OldThumbnailURL(ctx)
	case video.FieldChannelTitle:
		return m.OldChannelTitle(ctx)
	case video.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case video.FieldVideoURL:
		return m.OldVideoURL(ctx)
	case video.FieldLikeCount:
		return m.OldLikeCount(ctx)
	case video.FieldViewCount:
		return m.OldViewCount(ctx)
	}
	return nil, fmt.Errorf("unknown Video field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VideoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case video.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case video.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case video.FieldLessonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case video.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case video.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case video.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case video.FieldThumbnailURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailURL(v)
		return nil
	case video.FieldChannelTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelTitle(v)
		return nil
	case video.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case video.FieldVideoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoURL(v)
		return nil
	case video.FieldLikeCount:
		v, ok := value.(uint64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikeCount(v)
		return nil
	case video.FieldViewCount:
		v, ok := value.(uint64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewCount(v)
		return nil
	}
	return fmt.Errorf("unknown Video field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VideoMutation) AddedFields() []string {
	var fields []string
	if m.addlike_count != nil {
		fields = append(fields, video.FieldLikeCount)
	}
	if m.addview_count != nil {
		fields = append(fields, video.FieldViewCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VideoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case video.FieldLikeCount:
		return m.AddedLikeCount()
	case video.FieldViewCount:
		return m.AddedViewCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VideoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case video.FieldLikeCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikeCount(v)
		return nil
	case video.FieldViewCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddViewCount(v)
		return nil
	}
	return fmt.Errorf("unknown Video numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VideoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(video.FieldPublishedAt) {
		fields = append(fields, video.FieldPublishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VideoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VideoMutation) ClearField(name string) error {
	switch name {
	case video.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown Video nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VideoMutation) ResetField(name string) error {
	switch name {
	case video.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case video.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case video.FieldLessonID:
		m.ResetLessonID()
		return nil
	case video.FieldVideoID:
		m.ResetVideoID()
		return nil
	case video.FieldTitle:
		m.ResetTitle()
		return nil
	case video.FieldDescription:
		m.ResetDescription()
		return nil
	case video.FieldThumbnailURL:
		m.ResetThumbnailURL()
		return nil
	case video.FieldChannelTitle:
		m.ResetChannelTitle()
		return nil
	case video.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case video.FieldVideoURL:
		m.ResetVideoURL()
		return nil
	case video.FieldLikeCount:
		m.ResetLikeCount()
		return nil
	case video.FieldViewCount:
		m.ResetViewCount()
		return nil
	}
	return fmt.Errorf("unknown Video field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VideoMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lesson != nil {
		edges = append(edges, video.EdgeLesson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VideoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case video.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VideoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VideoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VideoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlesson {
		edges = append(edges, video.EdgeLesson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VideoMutation) EdgeCleared(name string) bool {
	switch name {
	case video.EdgeLesson:
		return m.clearedlesson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VideoMutation) ClearEdge(name string) error {
	switch name {
	case video.EdgeLesson:
		m.ClearLesson()
		return nil
	}
	return fmt.Errorf("unknown Video unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VideoMutation) ResetEdge(name string) error {
	switch name {
	case video.EdgeLesson:
		m.ResetLesson()
		return nil
	}
	return fmt.Errorf("unknown Video edge %s", name)
}
