// Code generated by ent, DO NOT EDIT.

package generationlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the generationlog type in the database.
	Label = "generation_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCourseGenerationID holds the string denoting the course_generation_id field in the database.
	FieldCourseGenerationID = "course_generation_id"
	// FieldStep holds the string denoting the step field in the database.
	FieldStep = "step"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// EdgeCourseGeneration holds the string denoting the course_generation edge name in mutations.
	EdgeCourseGeneration = "course_generation"
	// Table holds the table name of the generationlog in the database.
	Table = "generation_logs"
	// CourseGenerationTable is the table that holds the course_generation relation/edge.
	CourseGenerationTable = "generation_logs"
	// CourseGenerationInverseTable is the table name for the CourseGeneration entity.
	// It exists in this package in order to avoid circular dependency with the "coursegeneration" package.
	CourseGenerationInverseTable = "course_generations"
	// CourseGenerationColumn is the table column denoting the course_generation relation/edge.
	CourseGenerationColumn = "course_generation_id"
)

// Columns holds all SQL columns for generationlog fields.
var Columns = []string{
	FieldID,
	FieldTimestamp,
	FieldCourseGenerationID,
	FieldStep,
	FieldStatus,
	FieldLevel,
	FieldMessage,
	FieldData,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultMessage holds the default value on creation for the "message" field.
	DefaultMessage string
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusStarted    Status = "started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusStarted, StatusInProgress, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("generationlog: invalid enum value for status field: %q", s)
	}
}

// Level defines the type for the "level" enum field.
type Level string

// LevelInfo is the default value of the Level enum.
const DefaultLevel = LevelInfo

// Level values.
const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelDebug, LevelInfo, LevelWarning, LevelError:
		return nil
	default:
		return fmt.Errorf("generationlog: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the GenerationLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByCourseGenerationID orders the results by the course_generation_id field.
func ByCourseGenerationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseGenerationID, opts...).ToFunc()
}

// ByStep orders the results by the step field.
func ByStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByCourseGenerationField orders the results by course_generation field.
func ByCourseGenerationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCourseGenerationStep(), sql.OrderByField(field, opts...))
	}
}
func newCourseGenerationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CourseGenerationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CourseGenerationTable, CourseGenerationColumn),
	)
}
