// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/quizattempt"
	"github.com/abhisek/coursegen/internal/course"
)

// QuizAttempt is the model entity for the QuizAttempt schema.
type QuizAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// QuizID holds the value of the "quiz_id" field.
	QuizID int `json:"quiz_id,omitempty"`
	// Answers holds the value of the "answers" field.
	Answers map[int]string `json:"answers,omitempty"`
	// Results holds the value of the "results" field.
	Results []course.QuestionResult `json:"results,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// Total holds the value of the "total" field.
	Total int `json:"total,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuizAttemptQuery when eager-loading is set.
	Edges        QuizAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuizAttemptEdges holds the relations/edges for other nodes in the graph.
type QuizAttemptEdges struct {
	// Quiz holds the value of the quiz edge.
	Quiz *Quiz `json:"quiz,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuizOrErr returns the Quiz value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuizAttemptEdges) QuizOrErr() (*Quiz, error) {
	if e.Quiz != nil {
		return e.Quiz, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: quiz.Label}
	}
	return nil, &NotLoadedError{edge: "quiz"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizattempt.FieldAnswers, quizattempt.FieldResults:
			values[i] = new([]byte)
		case quizattempt.FieldID, quizattempt.FieldQuizID, quizattempt.FieldScore, quizattempt.FieldTotal:
			values[i] = new(sql.NullInt64)
		case quizattempt.FieldCreateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizAttempt fields.
func (_m *QuizAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizattempt.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case quizattempt.FieldQuizID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value.Valid {
				_m.QuizID = int(value.Int64)
			}
		case quizattempt.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case quizattempt.FieldResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Results); err != nil {
					return fmt.Errorf("unmarshal field results: %w", err)
				}
			}
		case quizattempt.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case quizattempt.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *QuizAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuiz queries the "quiz" edge of the QuizAttempt entity.
func (_m *QuizAttempt) QueryQuiz() *QuizQuery {
	return NewQuizAttemptClient(_m.config).QueryQuiz(_m)
}

// Update returns a builder for updating this QuizAttempt.
// Note that you need to call QuizAttempt.Unwrap() before calling this method if this QuizAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizAttempt) Update() *QuizAttemptUpdateOne {
	return NewQuizAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizAttempt) Unwrap() *QuizAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("QuizAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("quiz_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizID))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("results=")
	builder.WriteString(fmt.Sprintf("%v", _m.Results))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteByte(')')
	return builder.String()
}

// QuizAttempts is a parsable slice of QuizAttempt.
type QuizAttempts []*QuizAttempt
