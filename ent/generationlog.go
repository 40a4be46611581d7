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
	"github.com/abhisek/coursegen/ent/generationlog"
)

// GenerationLog is the model entity for the GenerationLog schema.
type GenerationLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// CourseGenerationID holds the value of the "course_generation_id" field.
	CourseGenerationID int `json:"course_generation_id,omitempty"`
	// Phase name, e.g. chapter_generation or lesson_content_chapter_2_lesson_3
	Step string `json:"step,omitempty"`
	// Status holds the value of the "status" field.
	Status generationlog.Status `json:"status,omitempty"`
	// Level holds the value of the "level" field.
	Level generationlog.Level `json:"level,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Data holds the value of the "data" field.
	Data map[string]interface{} `json:"data,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GenerationLogQuery when eager-loading is set.
	Edges        GenerationLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GenerationLogEdges holds the relations/edges for other nodes in the graph.
type GenerationLogEdges struct {
	// CourseGeneration holds the value of the course_generation edge.
	CourseGeneration *CourseGeneration `json:"course_generation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CourseGenerationOrErr returns the CourseGeneration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GenerationLogEdges) CourseGenerationOrErr() (*CourseGeneration, error) {
	if e.CourseGeneration != nil {
		return e.CourseGeneration, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: coursegeneration.Label}
	}
	return nil, &NotLoadedError{edge: "course_generation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GenerationLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generationlog.FieldData:
			values[i] = new([]byte)
		case generationlog.FieldID, generationlog.FieldCourseGenerationID:
			values[i] = new(sql.NullInt64)
		case generationlog.FieldStep, generationlog.FieldStatus, generationlog.FieldLevel, generationlog.FieldMessage:
			values[i] = new(sql.NullString)
		case generationlog.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GenerationLog fields.
func (_m *GenerationLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generationlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case generationlog.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case generationlog.FieldCourseGenerationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field course_generation_id", values[i])
			} else if value.Valid {
				_m.CourseGenerationID = int(value.Int64)
			}
		case generationlog.FieldStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step", values[i])
			} else if value.Valid {
				_m.Step = value.String
			}
		case generationlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = generationlog.Status(value.String)
			}
		case generationlog.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = generationlog.Level(value.String)
			}
		case generationlog.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case generationlog.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GenerationLog.
// This includes values selected through modifiers, order, etc.
func (_m *GenerationLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCourseGeneration queries the "course_generation" edge of the GenerationLog entity.
func (_m *GenerationLog) QueryCourseGeneration() *CourseGenerationQuery {
	return NewGenerationLogClient(_m.config).QueryCourseGeneration(_m)
}

// Update returns a builder for updating this GenerationLog.
// Note that you need to call GenerationLog.Unwrap() before calling this method if this GenerationLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GenerationLog) Update() *GenerationLogUpdateOne {
	return NewGenerationLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GenerationLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GenerationLog) Unwrap() *GenerationLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GenerationLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GenerationLog) String() string {
	var builder strings.Builder
	builder.WriteString("GenerationLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("course_generation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseGenerationID))
	builder.WriteString(", ")
	builder.WriteString("step=")
	builder.WriteString(_m.Step)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// GenerationLogs is a parsable slice of GenerationLog.
type GenerationLogs []*GenerationLog
