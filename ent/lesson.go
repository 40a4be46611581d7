// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/article"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/quiz"
)

// Lesson is the model entity for the Lesson schema.
type Lesson struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChapterID holds the value of the "chapter_id" field.
	ChapterID int `json:"chapter_id,omitempty"`
	// 1-based ordinal, unique within the chapter
	Number int `json:"number,omitempty"`
	// Lesson type tag, e.g. multiple-choice-quiz
	LessonType string `json:"lesson_type,omitempty"`
	// LessonTypeID holds the value of the "lesson_type_id" field.
	LessonTypeID int `json:"lesson_type_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Details holds the value of the "details" field.
	Details string `json:"details,omitempty"`
	// Goals holds the value of the "goals" field.
	Goals string `json:"goals,omitempty"`
	// Guidelines holds the value of the "guidelines" field.
	Guidelines string `json:"guidelines,omitempty"`
	// IsComplete holds the value of the "is_complete" field.
	IsComplete bool `json:"is_complete,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LessonQuery when eager-loading is set.
	Edges        LessonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LessonEdges holds the relations/edges for other nodes in the graph.
type LessonEdges struct {
	// Chapter holds the value of the chapter edge.
	Chapter *Chapter `json:"chapter,omitempty"`
	// Quiz holds the value of the quiz edge.
	Quiz *Quiz `json:"quiz,omitempty"`
	// Article holds the value of the article edge.
	Article *Article `json:"article,omitempty"`
	// ExternalArticle holds the value of the external_article edge.
	ExternalArticle *ExternalArticle `json:"external_article,omitempty"`
	// Videos holds the value of the videos edge.
	Videos []*Video `json:"videos,omitempty"`
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// TextQuestions holds the value of the text_questions edge.
	TextQuestions []*TextResponseQuestion `json:"text_questions,omitempty"`
	// TextSubmissions holds the value of the text_submissions edge.
	TextSubmissions []*TextResponseSubmission `json:"text_submissions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// ChapterOrErr returns the Chapter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) ChapterOrErr() (*Chapter, error) {
	if e.Chapter != nil {
		return e.Chapter, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chapter.Label}
	}
	return nil, &NotLoadedError{edge: "chapter"}
}

// QuizOrErr returns the Quiz value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) QuizOrErr() (*Quiz, error) {
	if e.Quiz != nil {
		return e.Quiz, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: quiz.Label}
	}
	return nil, &NotLoadedError{edge: "quiz"}
}

// ArticleOrErr returns the Article value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) ArticleOrErr() (*Article, error) {
	if e.Article != nil {
		return e.Article, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: article.Label}
	}
	return nil, &NotLoadedError{edge: "article"}
}

// ExternalArticleOrErr returns the ExternalArticle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) ExternalArticleOrErr() (*ExternalArticle, error) {
	if e.ExternalArticle != nil {
		return e.ExternalArticle, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: externalarticle.Label}
	}
	return nil, &NotLoadedError{edge: "external_article"}
}

// VideosOrErr returns the Videos value or an error if the edge
// was not loaded in eager-loading.
func (e LessonEdges) VideosOrErr() ([]*Video, error) {
	if e.loadedTypes[4] {
		return e.Videos, nil
	}
	return nil, &NotLoadedError{edge: "videos"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// TextQuestionsOrErr returns the TextQuestions value or an error if the edge
// was not loaded in eager-loading.
func (e LessonEdges) TextQuestionsOrErr() ([]*TextResponseQuestion, error) {
	if e.loadedTypes[6] {
		return e.TextQuestions, nil
	}
	return nil, &NotLoadedError{edge: "text_questions"}
}

// TextSubmissionsOrErr returns the TextSubmissions value or an error if the edge
// was not loaded in eager-loading.
func (e LessonEdges) TextSubmissionsOrErr() ([]*TextResponseSubmission, error) {
	if e.loadedTypes[7] {
		return e.TextSubmissions, nil
	}
	return nil, &NotLoadedError{edge: "text_submissions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lesson) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lesson.FieldIsComplete:
			values[i] = new(sql.NullBool)
		case lesson.FieldID, lesson.FieldChapterID, lesson.FieldNumber, lesson.FieldLessonTypeID:
			values[i] = new(sql.NullInt64)
		case lesson.FieldLessonType, lesson.FieldName, lesson.FieldDescription, lesson.FieldDetails, lesson.FieldGoals, lesson.FieldGuidelines:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lesson fields.
func (_m *Lesson) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lesson.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lesson.FieldChapterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_id", values[i])
			} else if value.Valid {
				_m.ChapterID = int(value.Int64)
			}
		case lesson.FieldNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = int(value.Int64)
			}
		case lesson.FieldLessonType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_type", values[i])
			} else if value.Valid {
				_m.LessonType = value.String
			}
		case lesson.FieldLessonTypeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_type_id", values[i])
			} else if value.Valid {
				_m.LessonTypeID = int(value.Int64)
			}
		case lesson.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case lesson.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case lesson.FieldDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value.Valid {
				_m.Details = value.String
			}
		case lesson.FieldGoals:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goals", values[i])
			} else if value.Valid {
				_m.Goals = value.String
			}
		case lesson.FieldGuidelines:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guidelines", values[i])
			} else if value.Valid {
				_m.Guidelines = value.String
			}
		case lesson.FieldIsComplete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_complete", values[i])
			} else if value.Valid {
				_m.IsComplete = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lesson.
// This includes values selected through modifiers, order, etc.
func (_m *Lesson) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChapter queries the "chapter" edge of the Lesson entity.
func (_m *Lesson) QueryChapter() *ChapterQuery {
	return NewLessonClient(_m.config).QueryChapter(_m)
}

// QueryQuiz queries the "quiz" edge of the Lesson entity.
func (_m *Lesson) QueryQuiz() *QuizQuery {
	return NewLessonClient(_m.config).QueryQuiz(_m)
}

// QueryArticle queries the "article" edge of the Lesson entity.
func (_m *Lesson) QueryArticle() *ArticleQuery {
	return NewLessonClient(_m.config).QueryArticle(_m)
}

// QueryExternalArticle queries the "external_article" edge of the Lesson entity.
func (_m *Lesson) QueryExternalArticle() *ExternalArticleQuery {
	return NewLessonClient(_m.config).QueryExternalArticle(_m)
}

// QueryVideos queries the "videos" edge of the Lesson entity.
func (_m *Lesson) QueryVideos() *VideoQuery {
	return NewLessonClient(_m.config).QueryVideos(_m)
}

// QueryProject queries the "project" edge of the Lesson entity.
func (_m *Lesson) QueryProject() *ProjectQuery {
	return NewLessonClient(_m.config).QueryProject(_m)
}

// QueryTextQuestions queries the "text_questions" edge of the Lesson entity.
func (_m *Lesson) QueryTextQuestions() *TextResponseQuestionQuery {
	return NewLessonClient(_m.config).QueryTextQuestions(_m)
}

// QueryTextSubmissions queries the "text_submissions" edge of the Lesson entity.
func (_m *Lesson) QueryTextSubmissions() *TextResponseSubmissionQuery {
	return NewLessonClient(_m.config).QueryTextSubmissions(_m)
}

// Update returns a builder for updating this Lesson.
// Note that you need to call Lesson.Unwrap() before calling this method if this Lesson
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lesson) Update() *LessonUpdateOne {
	return NewLessonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lesson entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lesson) Unwrap() *Lesson {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lesson is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lesson) String() string {
	var builder strings.Builder
	builder.WriteString("Lesson(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chapter_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChapterID))
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(fmt.Sprintf("%v", _m.Number))
	builder.WriteString(", ")
	builder.WriteString("lesson_type=")
	builder.WriteString(_m.LessonType)
	builder.WriteString(", ")
	builder.WriteString("lesson_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonTypeID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(_m.Details)
	builder.WriteString(", ")
	builder.WriteString("goals=")
	builder.WriteString(_m.Goals)
	builder.WriteString(", ")
	builder.WriteString("guidelines=")
	builder.WriteString(_m.Guidelines)
	builder.WriteString(", ")
	builder.WriteString("is_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsComplete))
	builder.WriteByte(')')
	return builder.String()
}

// Lessons is a parsable slice of Lesson.
type Lessons []*Lesson
