// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/textresponsesubmission"
	"github.com/abhisek/coursegen/internal/course"
)

// TextResponseSubmission is the model entity for the TextResponseSubmission schema.
type TextResponseSubmission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID int `json:"lesson_id,omitempty"`
	// Answers holds the value of the "answers" field.
	Answers map[int]string `json:"answers,omitempty"`
	// Grades holds the value of the "grades" field.
	Grades map[int]course.TextGrade `json:"grades,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore float64 `json:"total_score,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// Grades came from the deterministic fallback, not the model
	Fallback bool `json:"fallback,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TextResponseSubmissionQuery when eager-loading is set.
	Edges        TextResponseSubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TextResponseSubmissionEdges holds the relations/edges for other nodes in the graph.
type TextResponseSubmissionEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *Lesson `json:"lesson,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TextResponseSubmissionEdges) LessonOrErr() (*Lesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TextResponseSubmission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case textresponsesubmission.FieldAnswers, textresponsesubmission.FieldGrades:
			values[i] = new([]byte)
		case textresponsesubmission.FieldFallback:
			values[i] = new(sql.NullBool)
		case textresponsesubmission.FieldTotalScore:
			values[i] = new(sql.NullFloat64)
		case textresponsesubmission.FieldID, textresponsesubmission.FieldLessonID, textresponsesubmission.FieldTotalQuestions:
			values[i] = new(sql.NullInt64)
		case textresponsesubmission.FieldCreateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TextResponseSubmission fields.
func (_m *TextResponseSubmission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case textresponsesubmission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case textresponsesubmission.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case textresponsesubmission.FieldLessonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = int(value.Int64)
			}
		case textresponsesubmission.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case textresponsesubmission.FieldGrades:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field grades", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Grades); err != nil {
					return fmt.Errorf("unmarshal field grades: %w", err)
				}
			}
		case textresponsesubmission.FieldTotalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = value.Float64
			}
		case textresponsesubmission.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case textresponsesubmission.FieldFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback", values[i])
			} else if value.Valid {
				_m.Fallback = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TextResponseSubmission.
// This includes values selected through modifiers, order, etc.
func (_m *TextResponseSubmission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the TextResponseSubmission entity.
func (_m *TextResponseSubmission) QueryLesson() *LessonQuery {
	return NewTextResponseSubmissionClient(_m.config).QueryLesson(_m)
}

// Update returns a builder for updating this TextResponseSubmission.
// Note that you need to call TextResponseSubmission.Unwrap() before calling this method if this TextResponseSubmission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TextResponseSubmission) Update() *TextResponseSubmissionUpdateOne {
	return NewTextResponseSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TextResponseSubmission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TextResponseSubmission) Unwrap() *TextResponseSubmission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TextResponseSubmission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TextResponseSubmission) String() string {
	var builder strings.Builder
	builder.WriteString("TextResponseSubmission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonID))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("grades=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grades))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fallback))
	builder.WriteByte(')')
	return builder.String()
}

// TextResponseSubmissions is a parsable slice of TextResponseSubmission.
type TextResponseSubmissions []*TextResponseSubmission
