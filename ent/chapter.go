// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
)

// Chapter is the model entity for the Chapter schema.
type Chapter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CourseGenerationID holds the value of the "course_generation_id" field.
	CourseGenerationID int `json:"course_generation_id,omitempty"`
	// 1-based ordinal, unique within the generation
	Number int `json:"number,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// 1-10, or -1 when unset
	Difficulty int `json:"difficulty,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChapterQuery when eager-loading is set.
	Edges        ChapterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChapterEdges holds the relations/edges for other nodes in the graph.
type ChapterEdges struct {
	// CourseGeneration holds the value of the course_generation edge.
	CourseGeneration *CourseGeneration `json:"course_generation,omitempty"`
	// Lessons holds the value of the lessons edge.
	Lessons []*Lesson `json:"lessons,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CourseGenerationOrErr returns the CourseGeneration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChapterEdges) CourseGenerationOrErr() (*CourseGeneration, error) {
	if e.CourseGeneration != nil {
		return e.CourseGeneration, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: coursegeneration.Label}
	}
	return nil, &NotLoadedError{edge: "course_generation"}
}

// LessonsOrErr returns the Lessons value or an error if the edge
// was not loaded in eager-loading.
func (e ChapterEdges) LessonsOrErr() ([]*Lesson, error) {
	if e.loadedTypes[1] {
		return e.Lessons, nil
	}
	return nil, &NotLoadedError{edge: "lessons"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Chapter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chapter.FieldID, chapter.FieldCourseGenerationID, chapter.FieldNumber, chapter.FieldDifficulty:
			values[i] = new(sql.NullInt64)
		case chapter.FieldName, chapter.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Chapter fields.
func (_m *Chapter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chapter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case chapter.FieldCourseGenerationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field course_generation_id", values[i])
			} else if value.Valid {
				_m.CourseGenerationID = int(value.Int64)
			}
		case chapter.FieldNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = int(value.Int64)
			}
		case chapter.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case chapter.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case chapter.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Chapter.
// This includes values selected through modifiers, order, etc.
func (_m *Chapter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCourseGeneration queries the "course_generation" edge of the Chapter entity.
func (_m *Chapter) QueryCourseGeneration() *CourseGenerationQuery {
	return NewChapterClient(_m.config).QueryCourseGeneration(_m)
}

// QueryLessons queries the "lessons" edge of the Chapter entity.
func (_m *Chapter) QueryLessons() *LessonQuery {
	return NewChapterClient(_m.config).QueryLessons(_m)
}

// Update returns a builder for updating this Chapter.
// Note that you need to call Chapter.Unwrap() before calling this method if this Chapter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Chapter) Update() *ChapterUpdateOne {
	return NewChapterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Chapter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Chapter) Unwrap() *Chapter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Chapter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Chapter) String() string {
	var builder strings.Builder
	builder.WriteString("Chapter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("course_generation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseGenerationID))
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(fmt.Sprintf("%v", _m.Number))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteByte(')')
	return builder.String()
}

// Chapters is a parsable slice of Chapter.
type Chapters []*Chapter
