// Code generated by ent, DO NOT EDIT.

package project

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldGradingMethod holds the string denoting the grading_method field in the database.
	FieldGradingMethod = "grading_method"
	// FieldExpectedOutput holds the string denoting the expected_output field in the database.
	FieldExpectedOutput = "expected_output"
	// FieldIsFinalProject holds the string denoting the is_final_project field in the database.
	FieldIsFinalProject = "is_final_project"
	// EdgeLesson holds the string denoting the lesson edge name in mutations.
	EdgeLesson = "lesson"
	// EdgeFiles holds the string denoting the files edge name in mutations.
	EdgeFiles = "files"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// LessonTable is the table that holds the lesson relation/edge.
	LessonTable = "projects"
	// LessonInverseTable is the table name for the Lesson entity.
	// It exists in this package in order to avoid circular dependency with the "lesson" package.
	LessonInverseTable = "lessons"
	// LessonColumn is the table column denoting the lesson relation/edge.
	LessonColumn = "lesson_id"
	// FilesTable is the table that holds the files relation/edge.
	FilesTable = "project_files"
	// FilesInverseTable is the table name for the ProjectFile entity.
	// It exists in this package in order to avoid circular dependency with the "projectfile" package.
	FilesInverseTable = "project_files"
	// FilesColumn is the table column denoting the files relation/edge.
	FilesColumn = "project_id"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldLessonID,
	FieldName,
	FieldDescription,
	FieldGradingMethod,
	FieldExpectedOutput,
	FieldIsFinalProject,
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
	// DefaultCreateTime holds the default value on creation for the "create_time" field.
	DefaultCreateTime func() time.Time
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultExpectedOutput holds the default value on creation for the "expected_output" field.
	DefaultExpectedOutput string
	// DefaultIsFinalProject holds the default value on creation for the "is_final_project" field.
	DefaultIsFinalProject bool
)

// GradingMethod defines the type for the "grading_method" enum field.
type GradingMethod string

// GradingMethodAiReview is the default value of the GradingMethod enum.
const DefaultGradingMethod = GradingMethodAiReview

// GradingMethod values.
const (
	GradingMethodAiReview         GradingMethod = "ai_review"
	GradingMethodTerminalMatching GradingMethod = "terminal_matching"
)

func (gm GradingMethod) String() string {
	return string(gm)
}

// GradingMethodValidator is a validator for the "grading_method" field enum values. It is called by the builders before save.
func GradingMethodValidator(gm GradingMethod) error {
	switch gm {
	case GradingMethodAiReview, GradingMethodTerminalMatching:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for grading_method field: %q", gm)
	}
}

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreateTime orders the results by the create_time field.
func ByCreateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTime, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByGradingMethod orders the results by the grading_method field.
func ByGradingMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradingMethod, opts...).ToFunc()
}

// ByExpectedOutput orders the results by the expected_output field.
func ByExpectedOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedOutput, opts...).ToFunc()
}

// ByIsFinalProject orders the results by the is_final_project field.
func ByIsFinalProject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFinalProject, opts...).ToFunc()
}

// ByLessonField orders the results by lesson field.
func ByLessonField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLessonStep(), sql.OrderByField(field, opts...))
	}
}

// ByFilesCount orders the results by files count.
func ByFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilesStep(), opts...)
	}
}

// ByFiles orders the results by files terms.
func ByFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLessonStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LessonInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, LessonTable, LessonColumn),
	)
}
func newFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
	)
}
