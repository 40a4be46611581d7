// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/article"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
	"github.com/abhisek/coursegen/ent/textresponsesubmission"
	"github.com/abhisek/coursegen/ent/video"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
}

// SetChapterID sets the "chapter_id" field.
func (_c *LessonCreate) SetChapterID(v int) *LessonCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetNumber sets the "number" field.
func (_c *LessonCreate) SetNumber(v int) *LessonCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetLessonType sets the "lesson_type" field.
func (_c *LessonCreate) SetLessonType(v string) *LessonCreate {
	_c.mutation.SetLessonType(v)
	return _c
}

// SetLessonTypeID sets the "lesson_type_id" field.
func (_c *LessonCreate) SetLessonTypeID(v int) *LessonCreate {
	_c.mutation.SetLessonTypeID(v)
	return _c
}

// SetNillableLessonTypeID sets the "lesson_type_id" field if the given value is not nil.
func (_c *LessonCreate) SetNillableLessonTypeID(v *int) *LessonCreate {
	if v != nil {
		_c.SetLessonTypeID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *LessonCreate) SetName(v string) *LessonCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *LessonCreate) SetDescription(v string) *LessonCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *LessonCreate) SetNillableDescription(v *string) *LessonCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *LessonCreate) SetDetails(v string) *LessonCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *LessonCreate) SetNillableDetails(v *string) *LessonCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetGoals sets the "goals" field.
func (_c *LessonCreate) SetGoals(v string) *LessonCreate {
	_c.mutation.SetGoals(v)
	return _c
}

// SetNillableGoals sets the "goals" field if the given value is not nil.
func (_c *LessonCreate) SetNillableGoals(v *string) *LessonCreate {
	if v != nil {
		_c.SetGoals(*v)
	}
	return _c
}

// SetGuidelines sets the "guidelines" field.
func (_c *LessonCreate) SetGuidelines(v string) *LessonCreate {
	_c.mutation.SetGuidelines(v)
	return _c
}

// SetNillableGuidelines sets the "guidelines" field if the given value is not nil.
func (_c *LessonCreate) SetNillableGuidelines(v *string) *LessonCreate {
	if v != nil {
		_c.SetGuidelines(*v)
	}
	return _c
}

// SetIsComplete sets the "is_complete" field.
func (_c *LessonCreate) SetIsComplete(v bool) *LessonCreate {
	_c.mutation.SetIsComplete(v)
	return _c
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_c *LessonCreate) SetNillableIsComplete(v *bool) *LessonCreate {
	if v != nil {
		_c.SetIsComplete(*v)
	}
	return _c
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_c *LessonCreate) SetChapter(v *Chapter) *LessonCreate {
	return _c.SetChapterID(v.ID)
}

// SetQuizID sets the "quiz" edge to the Quiz entity by ID.
func (_c *LessonCreate) SetQuizID(id int) *LessonCreate {
	_c.mutation.SetQuizID(id)
	return _c
}

// SetNillableQuizID sets the "quiz" edge to the Quiz entity by ID if the given value is not nil.
func (_c *LessonCreate) SetNillableQuizID(id *int) *LessonCreate {
	if id != nil {
		_c = _c.SetQuizID(*id)
	}
	return _c
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_c *LessonCreate) SetQuiz(v *Quiz) *LessonCreate {
	return _c.SetQuizID(v.ID)
}

// SetArticleID sets the "article" edge to the Article entity by ID.
func (_c *LessonCreate) SetArticleID(id int) *LessonCreate {
	_c.mutation.SetArticleID(id)
	return _c
}

// SetNillableArticleID sets the "article" edge to the Article entity by ID if the given value is not nil.
func (_c *LessonCreate) SetNillableArticleID(id *int) *LessonCreate {
	if id != nil {
		_c = _c.SetArticleID(*id)
	}
	return _c
}

// SetArticle sets the "article" edge to the Article entity.
func (_c *LessonCreate) SetArticle(v *Article) *LessonCreate {
	return _c.SetArticleID(v.ID)
}

// SetExternalArticleID sets the "external_article" edge to the ExternalArticle entity by ID.
func (_c *LessonCreate) SetExternalArticleID(id int) *LessonCreate {
	_c.mutation.SetExternalArticleID(id)
	return _c
}

// SetNillableExternalArticleID sets the "external_article" edge to the ExternalArticle entity by ID if the given value is not nil.
func (_c *LessonCreate) SetNillableExternalArticleID(id *int) *LessonCreate {
	if id != nil {
		_c = _c.SetExternalArticleID(*id)
	}
	return _c
}

// SetExternalArticle sets the "external_article" edge to the ExternalArticle entity.
func (_c *LessonCreate) SetExternalArticle(v *ExternalArticle) *LessonCreate {
	return _c.SetExternalArticleID(v.ID)
}

// AddVideoIDs adds the "videos" edge to the Video entity by IDs.
func (_c *LessonCreate) AddVideoIDs(ids ...int) *LessonCreate {
	_c.mutation.AddVideoIDs(ids...)
	return _c
}

// AddVideos adds the "videos" edges to the Video entity.
func (_c *LessonCreate) AddVideos(v ...*Video) *LessonCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVideoIDs(ids...)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *LessonCreate) SetProjectID(id int) *LessonCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_c *LessonCreate) SetNillableProjectID(id *int) *LessonCreate {
	if id != nil {
		_c = _c.SetProjectID(*id)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *LessonCreate) SetProject(v *Project) *LessonCreate {
	return _c.SetProjectID(v.ID)
}

// AddTextQuestionIDs adds the "text_questions" edge to the TextResponseQuestion entity by IDs.
func (_c *LessonCreate) AddTextQuestionIDs(ids ...int) *LessonCreate {
	_c.mutation.AddTextQuestionIDs(ids...)
	return _c
}

// AddTextQuestions adds the "text_questions" edges to the TextResponseQuestion entity.
func (_c *LessonCreate) AddTextQuestions(v ...*TextResponseQuestion) *LessonCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTextQuestionIDs(ids...)
}

// AddTextSubmissionIDs adds the "text_submissions" edge to the TextResponseSubmission entity by IDs.
func (_c *LessonCreate) AddTextSubmissionIDs(ids ...int) *LessonCreate {
	_c.mutation.AddTextSubmissionIDs(ids...)
	return _c
}

// AddTextSubmissions adds the "text_submissions" edges to the TextResponseSubmission entity.
func (_c *LessonCreate) AddTextSubmissions(v ...*TextResponseSubmission) *LessonCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTextSubmissionIDs(ids...)
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.LessonTypeID(); !ok {
		v := lesson.DefaultLessonTypeID
		_c.mutation.SetLessonTypeID(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := lesson.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Details(); !ok {
		v := lesson.DefaultDetails
		_c.mutation.SetDetails(v)
	}
	if _, ok := _c.mutation.Goals(); !ok {
		v := lesson.DefaultGoals
		_c.mutation.SetGoals(v)
	}
	if _, ok := _c.mutation.Guidelines(); !ok {
		v := lesson.DefaultGuidelines
		_c.mutation.SetGuidelines(v)
	}
	if _, ok := _c.mutation.IsComplete(); !ok {
		v := lesson.DefaultIsComplete
		_c.mutation.SetIsComplete(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.ChapterID(); !ok {
		return &ValidationError{Name: "chapter_id", err: errors.New(`ent: missing required field "Lesson.chapter_id"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "Lesson.number"`)}
	}
	if v, ok := _c.mutation.Number(); ok {
		if err := lesson.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Lesson.number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonType(); !ok {
		return &ValidationError{Name: "lesson_type", err: errors.New(`ent: missing required field "Lesson.lesson_type"`)}
	}
	if _, ok := _c.mutation.LessonTypeID(); !ok {
		return &ValidationError{Name: "lesson_type_id", err: errors.New(`ent: missing required field "Lesson.lesson_type_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Lesson.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Lesson.description"`)}
	}
	if _, ok := _c.mutation.Details(); !ok {
		return &ValidationError{Name: "details", err: errors.New(`ent: missing required field "Lesson.details"`)}
	}
	if _, ok := _c.mutation.Goals(); !ok {
		return &ValidationError{Name: "goals", err: errors.New(`ent: missing required field "Lesson.goals"`)}
	}
	if _, ok := _c.mutation.Guidelines(); !ok {
		return &ValidationError{Name: "guidelines", err: errors.New(`ent: missing required field "Lesson.guidelines"`)}
	}
	if _, ok := _c.mutation.IsComplete(); !ok {
		return &ValidationError{Name: "is_complete", err: errors.New(`ent: missing required field "Lesson.is_complete"`)}
	}
	if len(_c.mutation.ChapterIDs()) == 0 {
		return &ValidationError{Name: "chapter", err: errors.New(`ent: missing required edge "Lesson.chapter"`)}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(lesson.FieldNumber, field.TypeInt, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.LessonType(); ok {
		_spec.SetField(lesson.FieldLessonType, field.TypeString, value)
		_node.LessonType = value
	}
	if value, ok := _c.mutation.LessonTypeID(); ok {
		_spec.SetField(lesson.FieldLessonTypeID, field.TypeInt, value)
		_node.LessonTypeID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lesson.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(lesson.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(lesson.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.Goals(); ok {
		_spec.SetField(lesson.FieldGoals, field.TypeString, value)
		_node.Goals = value
	}
	if value, ok := _c.mutation.Guidelines(); ok {
		_spec.SetField(lesson.FieldGuidelines, field.TypeString, value)
		_node.Guidelines = value
	}
	if value, ok := _c.mutation.IsComplete(); ok {
		_spec.SetField(lesson.FieldIsComplete, field.TypeBool, value)
		_node.IsComplete = value
	}
	if nodes := _c.mutation.ChapterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.ChapterTable,
			Columns: []string{lesson.ChapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChapterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuizIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.QuizTable,
			Columns: []string{lesson.QuizColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArticleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.ArticleTable,
			Columns: []string{lesson.ArticleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExternalArticleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.ExternalArticleTable,
			Columns: []string{lesson.ExternalArticleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(externalarticle.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VideosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lesson.VideosTable,
			Columns: []string{lesson.VideosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(video.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   lesson.ProjectTable,
			Columns: []string{lesson.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TextQuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lesson.TextQuestionsTable,
			Columns: []string{lesson.TextQuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(textresponsequestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TextSubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lesson.TextSubmissionsTable,
			Columns: []string{lesson.TextSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(textresponsesubmission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
