// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/coursegeneration"
)

// CourseGeneration is the model entity for the CourseGeneration schema.
type CourseGeneration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// ExperienceLevel holds the value of the "experience_level" field.
	ExperienceLevel string `json:"experience_level,omitempty"`
	// Status holds the value of the "status" field.
	Status coursegeneration.Status `json:"status,omitempty"`
	// TotalChapters holds the value of the "total_chapters" field.
	TotalChapters int `json:"total_chapters,omitempty"`
	// TotalLessons holds the value of the "total_lessons" field.
	TotalLessons int `json:"total_lessons,omitempty"`
	// Aggregate snapshot written once on completion
	CourseData map[string]interface{} `json:"course_data,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CourseGenerationQuery when eager-loading is set.
	Edges        CourseGenerationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CourseGenerationEdges holds the relations/edges for other nodes in the graph.
type CourseGenerationEdges struct {
	// Chapters holds the value of the chapters edge.
	Chapters []*Chapter `json:"chapters,omitempty"`
	// Logs holds the value of the logs edge.
	Logs []*GenerationLog `json:"logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ChaptersOrErr returns the Chapters value or an error if the edge
// was not loaded in eager-loading.
func (e CourseGenerationEdges) ChaptersOrErr() ([]*Chapter, error) {
	if e.loadedTypes[0] {
		return e.Chapters, nil
	}
	return nil, &NotLoadedError{edge: "chapters"}
}

// LogsOrErr returns the Logs value or an error if the edge
// was not loaded in eager-loading.
func (e CourseGenerationEdges) LogsOrErr() ([]*GenerationLog, error) {
	if e.loadedTypes[1] {
		return e.Logs, nil
	}
	return nil, &NotLoadedError{edge: "logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseGeneration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coursegeneration.FieldCourseData:
			values[i] = new([]byte)
		case coursegeneration.FieldID, coursegeneration.FieldTotalChapters, coursegeneration.FieldTotalLessons:
			values[i] = new(sql.NullInt64)
		case coursegeneration.FieldPrompt, coursegeneration.FieldExperienceLevel, coursegeneration.FieldStatus:
			values[i] = new(sql.NullString)
		case coursegeneration.FieldCreateTime, coursegeneration.FieldUpdateTime, coursegeneration.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseGeneration fields.
func (_m *CourseGeneration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coursegeneration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case coursegeneration.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case coursegeneration.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case coursegeneration.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case coursegeneration.FieldExperienceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experience_level", values[i])
			} else if value.Valid {
				_m.ExperienceLevel = value.String
			}
		case coursegeneration.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = coursegeneration.Status(value.String)
			}
		case coursegeneration.FieldTotalChapters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_chapters", values[i])
			} else if value.Valid {
				_m.TotalChapters = int(value.Int64)
			}
		case coursegeneration.FieldTotalLessons:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_lessons", values[i])
			} else if value.Valid {
				_m.TotalLessons = int(value.Int64)
			}
		case coursegeneration.FieldCourseData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field course_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CourseData); err != nil {
					return fmt.Errorf("unmarshal field course_data: %w", err)
				}
			}
		case coursegeneration.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseGeneration.
// This includes values selected through modifiers, order, etc.
func (_m *CourseGeneration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChapters queries the "chapters" edge of the CourseGeneration entity.
func (_m *CourseGeneration) QueryChapters() *ChapterQuery {
	return NewCourseGenerationClient(_m.config).QueryChapters(_m)
}

// QueryLogs queries the "logs" edge of the CourseGeneration entity.
func (_m *CourseGeneration) QueryLogs() *GenerationLogQuery {
	return NewCourseGenerationClient(_m.config).QueryLogs(_m)
}

// Update returns a builder for updating this CourseGeneration.
// Note that you need to call CourseGeneration.Unwrap() before calling this method if this CourseGeneration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourseGeneration) Update() *CourseGenerationUpdateOne {
	return NewCourseGenerationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourseGeneration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourseGeneration) Unwrap() *CourseGeneration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseGeneration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourseGeneration) String() string {
	var builder strings.Builder
	builder.WriteString("CourseGeneration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("experience_level=")
	builder.WriteString(_m.ExperienceLevel)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_chapters=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalChapters))
	builder.WriteString(", ")
	builder.WriteString("total_lessons=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLessons))
	builder.WriteString(", ")
	builder.WriteString("course_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseData))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CourseGenerations is a parsable slice of CourseGeneration.
type CourseGenerations []*CourseGeneration
