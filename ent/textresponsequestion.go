// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
)

// TextResponseQuestion is the model entity for the TextResponseQuestion schema.
type TextResponseQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID int `json:"lesson_id,omitempty"`
	// Number holds the value of the "number" field.
	Number int `json:"number,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// ReferenceAnswer holds the value of the "reference_answer" field.
	ReferenceAnswer string `json:"reference_answer,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TextResponseQuestionQuery when eager-loading is set.
	Edges        TextResponseQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TextResponseQuestionEdges holds the relations/edges for other nodes in the graph.
type TextResponseQuestionEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *Lesson `json:"lesson,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TextResponseQuestionEdges) LessonOrErr() (*Lesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TextResponseQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case textresponsequestion.FieldID, textresponsequestion.FieldLessonID, textresponsequestion.FieldNumber:
			values[i] = new(sql.NullInt64)
		case textresponsequestion.FieldQuestion, textresponsequestion.FieldReferenceAnswer:
			values[i] = new(sql.NullString)
		case textresponsequestion.FieldCreateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TextResponseQuestion fields.
func (_m *TextResponseQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case textresponsequestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case textresponsequestion.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case textresponsequestion.FieldLessonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = int(value.Int64)
			}
		case textresponsequestion.FieldNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = int(value.Int64)
			}
		case textresponsequestion.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case textresponsequestion.FieldReferenceAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference_answer", values[i])
			} else if value.Valid {
				_m.ReferenceAnswer = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TextResponseQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *TextResponseQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the TextResponseQuestion entity.
func (_m *TextResponseQuestion) QueryLesson() *LessonQuery {
	return NewTextResponseQuestionClient(_m.config).QueryLesson(_m)
}

// Update returns a builder for updating this TextResponseQuestion.
// Note that you need to call TextResponseQuestion.Unwrap() before calling this method if this TextResponseQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TextResponseQuestion) Update() *TextResponseQuestionUpdateOne {
	return NewTextResponseQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TextResponseQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TextResponseQuestion) Unwrap() *TextResponseQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TextResponseQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TextResponseQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("TextResponseQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonID))
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(fmt.Sprintf("%v", _m.Number))
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("reference_answer=")
	builder.WriteString(_m.ReferenceAnswer)
	builder.WriteByte(')')
	return builder.String()
}

// TextResponseQuestions is a parsable slice of TextResponseQuestion.
type TextResponseQuestions []*TextResponseQuestion
