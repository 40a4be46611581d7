// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

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

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *LessonUpdate) SetChapterID(v int) *LessonUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableChapterID(v *int) *LessonUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *LessonUpdate) SetNumber(v int) *LessonUpdate {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableNumber(v *int) *LessonUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *LessonUpdate) AddNumber(v int) *LessonUpdate {
	_u.mutation.AddNumber(v)
	return _u
}

// SetLessonType sets the "lesson_type" field.
func (_u *LessonUpdate) SetLessonType(v string) *LessonUpdate {
	_u.mutation.SetLessonType(v)
	return _u
}

// SetNillableLessonType sets the "lesson_type" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLessonType(v *string) *LessonUpdate {
	if v != nil {
		_u.SetLessonType(*v)
	}
	return _u
}

// SetLessonTypeID sets the "lesson_type_id" field.
func (_u *LessonUpdate) SetLessonTypeID(v int) *LessonUpdate {
	_u.mutation.ResetLessonTypeID()
	_u.mutation.SetLessonTypeID(v)
	return _u
}

// SetNillableLessonTypeID sets the "lesson_type_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLessonTypeID(v *int) *LessonUpdate {
	if v != nil {
		_u.SetLessonTypeID(*v)
	}
	return _u
}

// AddLessonTypeID adds value to the "lesson_type_id" field.
func (_u *LessonUpdate) AddLessonTypeID(v int) *LessonUpdate {
	_u.mutation.AddLessonTypeID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *LessonUpdate) SetName(v string) *LessonUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableName(v *string) *LessonUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LessonUpdate) SetDescription(v string) *LessonUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableDescription(v *string) *LessonUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *LessonUpdate) SetDetails(v string) *LessonUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableDetails(v *string) *LessonUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetGoals sets the "goals" field.
func (_u *LessonUpdate) SetGoals(v string) *LessonUpdate {
	_u.mutation.SetGoals(v)
	return _u
}

// SetNillableGoals sets the "goals" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableGoals(v *string) *LessonUpdate {
	if v != nil {
		_u.SetGoals(*v)
	}
	return _u
}

// SetGuidelines sets the "guidelines" field.
func (_u *LessonUpdate) SetGuidelines(v string) *LessonUpdate {
	_u.mutation.SetGuidelines(v)
	return _u
}

// SetNillableGuidelines sets the "guidelines" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableGuidelines(v *string) *LessonUpdate {
	if v != nil {
		_u.SetGuidelines(*v)
	}
	return _u
}

// SetIsComplete sets the "is_complete" field.
func (_u *LessonUpdate) SetIsComplete(v bool) *LessonUpdate {
	_u.mutation.SetIsComplete(v)
	return _u
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableIsComplete(v *bool) *LessonUpdate {
	if v != nil {
		_u.SetIsComplete(*v)
	}
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *LessonUpdate) SetChapter(v *Chapter) *LessonUpdate {
	return _u.SetChapterID(v.ID)
}

// SetQuizID sets the "quiz" edge to the Quiz entity by ID.
func (_u *LessonUpdate) SetQuizID(id int) *LessonUpdate {
	_u.mutation.SetQuizID(id)
	return _u
}

// SetNillableQuizID sets the "quiz" edge to the Quiz entity by ID if the given value is not nil.
func (_u *LessonUpdate) SetNillableQuizID(id *int) *LessonUpdate {
	if id != nil {
		_u = _u.SetQuizID(*id)
	}
	return _u
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *LessonUpdate) SetQuiz(v *Quiz) *LessonUpdate {
	return _u.SetQuizID(v.ID)
}

// SetArticleID sets the "article" edge to the Article entity by ID.
func (_u *LessonUpdate) SetArticleID(id int) *LessonUpdate {
	_u.mutation.SetArticleID(id)
	return _u
}

// SetNillableArticleID sets the "article" edge to the Article entity by ID if the given value is not nil.
func (_u *LessonUpdate) SetNillableArticleID(id *int) *LessonUpdate {
	if id != nil {
		_u = _u.SetArticleID(*id)
	}
	return _u
}

// SetArticle sets the "article" edge to the Article entity.
func (_u *LessonUpdate) SetArticle(v *Article) *LessonUpdate {
	return _u.SetArticleID(v.ID)
}

// SetExternalArticleID sets the "external_article" edge to the ExternalArticle entity by ID.
func (_u *LessonUpdate) SetExternalArticleID(id int) *LessonUpdate {
	_u.mutation.SetExternalArticleID(id)
	return _u
}

// SetNillableExternalArticleID sets the "external_article" edge to the ExternalArticle entity by ID if the given value is not nil.
func (_u *LessonUpdate) SetNillableExternalArticleID(id *int) *LessonUpdate {
	if id != nil {
		_u = _u.SetExternalArticleID(*id)
	}
	return _u
}

// SetExternalArticle sets the "external_article" edge to the ExternalArticle entity.
func (_u *LessonUpdate) SetExternalArticle(v *ExternalArticle) *LessonUpdate {
	return _u.SetExternalArticleID(v.ID)
}

// AddVideoIDs adds the "videos" edge to the Video entity by IDs.
func (_u *LessonUpdate) AddVideoIDs(ids ...int) *LessonUpdate {
	_u.mutation.AddVideoIDs(ids...)
	return _u
}

// AddVideos adds the "videos" edges to the Video entity.
func (_u *LessonUpdate) AddVideos(v ...*Video) *LessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVideoIDs(ids...)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *LessonUpdate) SetProjectID(id int) *LessonUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_u *LessonUpdate) SetNillableProjectID(id *int) *LessonUpdate {
	if id != nil {
		_u = _u.SetProjectID(*id)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *LessonUpdate) SetProject(v *Project) *LessonUpdate {
	return _u.SetProjectID(v.ID)
}

// AddTextQuestionIDs adds the "text_questions" edge to the TextResponseQuestion entity by IDs.
func (_u *LessonUpdate) AddTextQuestionIDs(ids ...int) *LessonUpdate {
	_u.mutation.AddTextQuestionIDs(ids...)
	return _u
}

// AddTextQuestions adds the "text_questions" edges to the TextResponseQuestion entity.
func (_u *LessonUpdate) AddTextQuestions(v ...*TextResponseQuestion) *LessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTextQuestionIDs(ids...)
}

// AddTextSubmissionIDs adds the "text_submissions" edge to the TextResponseSubmission entity by IDs.
func (_u *LessonUpdate) AddTextSubmissionIDs(ids ...int) *LessonUpdate {
	_u.mutation.AddTextSubmissionIDs(ids...)
	return _u
}

// AddTextSubmissions adds the "text_submissions" edges to the TextResponseSubmission entity.
func (_u *LessonUpdate) AddTextSubmissions(v ...*TextResponseSubmission) *LessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTextSubmissionIDs(ids...)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *LessonUpdate) ClearChapter() *LessonUpdate {
	_u.mutation.ClearChapter()
	return _u
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *LessonUpdate) ClearQuiz() *LessonUpdate {
	_u.mutation.ClearQuiz()
	return _u
}

// ClearArticle clears the "article" edge to the Article entity.
func (_u *LessonUpdate) ClearArticle() *LessonUpdate {
	_u.mutation.ClearArticle()
	return _u
}

// ClearExternalArticle clears the "external_article" edge to the ExternalArticle entity.
func (_u *LessonUpdate) ClearExternalArticle() *LessonUpdate {
	_u.mutation.ClearExternalArticle()
	return _u
}

// ClearVideos clears all "videos" edges to the Video entity.
func (_u *LessonUpdate) ClearVideos() *LessonUpdate {
	_u.mutation.ClearVideos()
	return _u
}

// RemoveVideoIDs removes the "videos" edge to Video entities by IDs.
func (_u *LessonUpdate) RemoveVideoIDs(ids ...int) *LessonUpdate {
	_u.mutation.RemoveVideoIDs(ids...)
	return _u
}

// RemoveVideos removes "videos" edges to Video entities.
func (_u *LessonUpdate) RemoveVideos(v ...*Video) *LessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVideoIDs(ids...)
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *LessonUpdate) ClearProject() *LessonUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearTextQuestions clears all "text_questions" edges to the TextResponseQuestion entity.
func (_u *LessonUpdate) ClearTextQuestions() *LessonUpdate {
	_u.mutation.ClearTextQuestions()
	return _u
}

// RemoveTextQuestionIDs removes the "text_questions" edge to TextResponseQuestion entities by IDs.
func (_u *LessonUpdate) RemoveTextQuestionIDs(ids ...int) *LessonUpdate {
	_u.mutation.RemoveTextQuestionIDs(ids...)
	return _u
}

// RemoveTextQuestions removes "text_questions" edges to TextResponseQuestion entities.
func (_u *LessonUpdate) RemoveTextQuestions(v ...*TextResponseQuestion) *LessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTextQuestionIDs(ids...)
}

// ClearTextSubmissions clears all "text_submissions" edges to the TextResponseSubmission entity.
func (_u *LessonUpdate) ClearTextSubmissions() *LessonUpdate {
	_u.mutation.ClearTextSubmissions()
	return _u
}

// RemoveTextSubmissionIDs removes the "text_submissions" edge to TextResponseSubmission entities by IDs.
func (_u *LessonUpdate) RemoveTextSubmissionIDs(ids ...int) *LessonUpdate {
	_u.mutation.RemoveTextSubmissionIDs(ids...)
	return _u
}

// RemoveTextSubmissions removes "text_submissions" edges to TextResponseSubmission entities.
func (_u *LessonUpdate) RemoveTextSubmissions(v ...*TextResponseSubmission) *LessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTextSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := lesson.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Lesson.number": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lesson.chapter"`)
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(lesson.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(lesson.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonType(); ok {
		_spec.SetField(lesson.FieldLessonType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTypeID(); ok {
		_spec.SetField(lesson.FieldLessonTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonTypeID(); ok {
		_spec.AddField(lesson.FieldLessonTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lesson.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lesson.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(lesson.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(lesson.FieldGoals, field.TypeString, value)
	}
	if value, ok := _u.mutation.Guidelines(); ok {
		_spec.SetField(lesson.FieldGuidelines, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsComplete(); ok {
		_spec.SetField(lesson.FieldIsComplete, field.TypeBool, value)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArticleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExternalArticleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExternalArticleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VideosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVideosIDs(); len(nodes) > 0 && !_u.mutation.VideosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VideosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TextQuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTextQuestionsIDs(); len(nodes) > 0 && !_u.mutation.TextQuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TextQuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TextSubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTextSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.TextSubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TextSubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetChapterID sets the "chapter_id" field.
func (_u *LessonUpdateOne) SetChapterID(v int) *LessonUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableChapterID(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *LessonUpdateOne) SetNumber(v int) *LessonUpdateOne {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableNumber(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *LessonUpdateOne) AddNumber(v int) *LessonUpdateOne {
	_u.mutation.AddNumber(v)
	return _u
}

// SetLessonType sets the "lesson_type" field.
func (_u *LessonUpdateOne) SetLessonType(v string) *LessonUpdateOne {
	_u.mutation.SetLessonType(v)
	return _u
}

// SetNillableLessonType sets the "lesson_type" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLessonType(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetLessonType(*v)
	}
	return _u
}

// SetLessonTypeID sets the "lesson_type_id" field.
func (_u *LessonUpdateOne) SetLessonTypeID(v int) *LessonUpdateOne {
	_u.mutation.ResetLessonTypeID()
	_u.mutation.SetLessonTypeID(v)
	return _u
}

// SetNillableLessonTypeID sets the "lesson_type_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLessonTypeID(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetLessonTypeID(*v)
	}
	return _u
}

// AddLessonTypeID adds value to the "lesson_type_id" field.
func (_u *LessonUpdateOne) AddLessonTypeID(v int) *LessonUpdateOne {
	_u.mutation.AddLessonTypeID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *LessonUpdateOne) SetName(v string) *LessonUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableName(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LessonUpdateOne) SetDescription(v string) *LessonUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableDescription(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *LessonUpdateOne) SetDetails(v string) *LessonUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableDetails(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetGoals sets the "goals" field.
func (_u *LessonUpdateOne) SetGoals(v string) *LessonUpdateOne {
	_u.mutation.SetGoals(v)
	return _u
}

// SetNillableGoals sets the "goals" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableGoals(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetGoals(*v)
	}
	return _u
}

// SetGuidelines sets the "guidelines" field.
func (_u *LessonUpdateOne) SetGuidelines(v string) *LessonUpdateOne {
	_u.mutation.SetGuidelines(v)
	return _u
}

// SetNillableGuidelines sets the "guidelines" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableGuidelines(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetGuidelines(*v)
	}
	return _u
}

// SetIsComplete sets the "is_complete" field.
func (_u *LessonUpdateOne) SetIsComplete(v bool) *LessonUpdateOne {
	_u.mutation.SetIsComplete(v)
	return _u
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableIsComplete(v *bool) *LessonUpdateOne {
	if v != nil {
		_u.SetIsComplete(*v)
	}
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *LessonUpdateOne) SetChapter(v *Chapter) *LessonUpdateOne {
	return _u.SetChapterID(v.ID)
}

// SetQuizID sets the "quiz" edge to the Quiz entity by ID.
func (_u *LessonUpdateOne) SetQuizID(id int) *LessonUpdateOne {
	_u.mutation.SetQuizID(id)
	return _u
}

// SetNillableQuizID sets the "quiz" edge to the Quiz entity by ID if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableQuizID(id *int) *LessonUpdateOne {
	if id != nil {
		_u = _u.SetQuizID(*id)
	}
	return _u
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *LessonUpdateOne) SetQuiz(v *Quiz) *LessonUpdateOne {
	return _u.SetQuizID(v.ID)
}

// SetArticleID sets the "article" edge to the Article entity by ID.
func (_u *LessonUpdateOne) SetArticleID(id int) *LessonUpdateOne {
	_u.mutation.SetArticleID(id)
	return _u
}

// SetNillableArticleID sets the "article" edge to the Article entity by ID if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableArticleID(id *int) *LessonUpdateOne {
	if id != nil {
		_u = _u.SetArticleID(*id)
	}
	return _u
}

// SetArticle sets the "article" edge to the Article entity.
func (_u *LessonUpdateOne) SetArticle(v *Article) *LessonUpdateOne {
	return _u.SetArticleID(v.ID)
}

// SetExternalArticleID sets the "external_article" edge to the ExternalArticle entity by ID.
func (_u *LessonUpdateOne) SetExternalArticleID(id int) *LessonUpdateOne {
	_u.mutation.SetExternalArticleID(id)
	return _u
}

// SetNillableExternalArticleID sets the "external_article" edge to the ExternalArticle entity by ID if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableExternalArticleID(id *int) *LessonUpdateOne {
	if id != nil {
		_u = _u.SetExternalArticleID(*id)
	}
	return _u
}

// SetExternalArticle sets the "external_article" edge to the ExternalArticle entity.
func (_u *LessonUpdateOne) SetExternalArticle(v *ExternalArticle) *LessonUpdateOne {
	return _u.SetExternalArticleID(v.ID)
}

// AddVideoIDs adds the "videos" edge to the Video entity by IDs.
func (_u *LessonUpdateOne) AddVideoIDs(ids ...int) *LessonUpdateOne {
	_u.mutation.AddVideoIDs(ids...)
	return _u
}

// AddVideos adds the "videos" edges to the Video entity.
func (_u *LessonUpdateOne) AddVideos(v ...*Video) *LessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVideoIDs(ids...)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *LessonUpdateOne) SetProjectID(id int) *LessonUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableProjectID(id *int) *LessonUpdateOne {
	if id != nil {
		_u = _u.SetProjectID(*id)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *LessonUpdateOne) SetProject(v *Project) *LessonUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddTextQuestionIDs adds the "text_questions" edge to the TextResponseQuestion entity by IDs.
func (_u *LessonUpdateOne) AddTextQuestionIDs(ids ...int) *LessonUpdateOne {
	_u.mutation.AddTextQuestionIDs(ids...)
	return _u
}

// AddTextQuestions adds the "text_questions" edges to the TextResponseQuestion entity.
func (_u *LessonUpdateOne) AddTextQuestions(v ...*TextResponseQuestion) *LessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTextQuestionIDs(ids...)
}

// AddTextSubmissionIDs adds the "text_submissions" edge to the TextResponseSubmission entity by IDs.
func (_u *LessonUpdateOne) AddTextSubmissionIDs(ids ...int) *LessonUpdateOne {
	_u.mutation.AddTextSubmissionIDs(ids...)
	return _u
}

// AddTextSubmissions adds the "text_submissions" edges to the TextResponseSubmission entity.
func (_u *LessonUpdateOne) AddTextSubmissions(v ...*TextResponseSubmission) *LessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTextSubmissionIDs(ids...)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *LessonUpdateOne) ClearChapter() *LessonUpdateOne {
	_u.mutation.ClearChapter()
	return _u
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *LessonUpdateOne) ClearQuiz() *LessonUpdateOne {
	_u.mutation.ClearQuiz()
	return _u
}

// ClearArticle clears the "article" edge to the Article entity.
func (_u *LessonUpdateOne) ClearArticle() *LessonUpdateOne {
	_u.mutation.ClearArticle()
	return _u
}

// ClearExternalArticle clears the "external_article" edge to the ExternalArticle entity.
func (_u *LessonUpdateOne) ClearExternalArticle() *LessonUpdateOne {
	_u.mutation.ClearExternalArticle()
	return _u
}

// ClearVideos clears all "videos" edges to the Video entity.
func (_u *LessonUpdateOne) ClearVideos() *LessonUpdateOne {
	_u.mutation.ClearVideos()
	return _u
}

// RemoveVideoIDs removes the "videos" edge to Video entities by IDs.
func (_u *LessonUpdateOne) RemoveVideoIDs(ids ...int) *LessonUpdateOne {
	_u.mutation.RemoveVideoIDs(ids...)
	return _u
}

// RemoveVideos removes "videos" edges to Video entities.
func (_u *LessonUpdateOne) RemoveVideos(v ...*Video) *LessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVideoIDs(ids...)
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *LessonUpdateOne) ClearProject() *LessonUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearTextQuestions clears all "text_questions" edges to the TextResponseQuestion entity.
func (_u *LessonUpdateOne) ClearTextQuestions() *LessonUpdateOne {
	_u.mutation.ClearTextQuestions()
	return _u
}

// RemoveTextQuestionIDs removes the "text_questions" edge to TextResponseQuestion entities by IDs.
func (_u *LessonUpdateOne) RemoveTextQuestionIDs(ids ...int) *LessonUpdateOne {
	_u.mutation.RemoveTextQuestionIDs(ids...)
	return _u
}

// RemoveTextQuestions removes "text_questions" edges to TextResponseQuestion entities.
func (_u *LessonUpdateOne) RemoveTextQuestions(v ...*TextResponseQuestion) *LessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTextQuestionIDs(ids...)
}

// ClearTextSubmissions clears all "text_submissions" edges to the TextResponseSubmission entity.
func (_u *LessonUpdateOne) ClearTextSubmissions() *LessonUpdateOne {
	_u.mutation.ClearTextSubmissions()
	return _u
}

// RemoveTextSubmissionIDs removes the "text_submissions" edge to TextResponseSubmission entities by IDs.
func (_u *LessonUpdateOne) RemoveTextSubmissionIDs(ids ...int) *LessonUpdateOne {
	_u.mutation.RemoveTextSubmissionIDs(ids...)
	return _u
}

// RemoveTextSubmissions removes "text_submissions" edges to TextResponseSubmission entities.
func (_u *LessonUpdateOne) RemoveTextSubmissions(v ...*TextResponseSubmission) *LessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTextSubmissionIDs(ids...)
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := lesson.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Lesson.number": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lesson.chapter"`)
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(lesson.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(lesson.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonType(); ok {
		_spec.SetField(lesson.FieldLessonType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTypeID(); ok {
		_spec.SetField(lesson.FieldLessonTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonTypeID(); ok {
		_spec.AddField(lesson.FieldLessonTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lesson.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lesson.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(lesson.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(lesson.FieldGoals, field.TypeString, value)
	}
	if value, ok := _u.mutation.Guidelines(); ok {
		_spec.SetField(lesson.FieldGuidelines, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsComplete(); ok {
		_spec.SetField(lesson.FieldIsComplete, field.TypeBool, value)
	}
	if _u.mutation.ChapterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArticleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExternalArticleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExternalArticleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VideosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVideosIDs(); len(nodes) > 0 && !_u.mutation.VideosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VideosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TextQuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTextQuestionsIDs(); len(nodes) > 0 && !_u.mutation.TextQuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TextQuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TextSubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTextSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.TextSubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TextSubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
