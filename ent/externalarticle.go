// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/lesson"
)

// ExternalArticle is the model entity for the ExternalArticle schema.
type ExternalArticle struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID int `json:"lesson_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExternalArticleQuery when eager-loading is set.
	Edges        ExternalArticleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExternalArticleEdges holds the relations/edges for other nodes in the graph.
type ExternalArticleEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *Lesson `json:"lesson,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExternalArticleEdges) LessonOrErr() (*Lesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExternalArticle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case externalarticle.FieldScore:
			values[i] = new(sql.NullFloat64)
		case externalarticle.FieldID, externalarticle.FieldLessonID:
			values[i] = new(sql.NullInt64)
		case externalarticle.FieldURL, externalarticle.FieldTitle:
			values[i] = new(sql.NullString)
		case externalarticle.FieldCreateTime, externalarticle.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExternalArticle fields.
func (_m *ExternalArticle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case externalarticle.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case externalarticle.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case externalarticle.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case externalarticle.FieldLessonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = int(value.Int64)
			}
		case externalarticle.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case externalarticle.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case externalarticle.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExternalArticle.
// This includes values selected through modifiers, order, etc.
func (_m *ExternalArticle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the ExternalArticle entity.
func (_m *ExternalArticle) QueryLesson() *LessonQuery {
	return NewExternalArticleClient(_m.config).QueryLesson(_m)
}

// Update returns a builder for updating this ExternalArticle.
// Note that you need to call ExternalArticle.Unwrap() before calling this method if this ExternalArticle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExternalArticle) Update() *ExternalArticleUpdateOne {
	return NewExternalArticleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExternalArticle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExternalArticle) Unwrap() *ExternalArticle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExternalArticle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExternalArticle) String() string {
	var builder strings.Builder
	builder.WriteString("ExternalArticle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonID))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteByte(')')
	return builder.String()
}

// ExternalArticles is a parsable slice of ExternalArticle.
type ExternalArticles []*ExternalArticle
