// Code generated by ent, DO NOT EDIT.

package chapter

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chapter type in the database.
	Label = "chapter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCourseGenerationID holds the string denoting the course_generation_id field in the database.
	FieldCourseGenerationID = "course_generation_id"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// EdgeCourseGeneration holds the string denoting the course_generation edge name in mutations.
	EdgeCourseGeneration = "course_generation"
	// EdgeLessons holds the string denoting the lessons edge name in mutations.
	EdgeLessons = "lessons"
	// Table holds the table name of the chapter in the database.
	Table = "chapters"
	// CourseGenerationTable is the table that holds the course_generation relation/edge.
	CourseGenerationTable = "chapters"
	// CourseGenerationInverseTable is the table name for the CourseGeneration entity.
	// It exists in this package in order to avoid circular dependency with the "coursegeneration" package.
	CourseGenerationInverseTable = "course_generations"
	// CourseGenerationColumn is the table column denoting the course_generation relation/edge.
	CourseGenerationColumn = "course_generation_id"
	// LessonsTable is the table that holds the lessons relation/edge.
	LessonsTable = "lessons"
	// LessonsInverseTable is the table name for the Lesson entity.
	// It exists in this package in order to avoid circular dependency with the "lesson" package.
	LessonsInverseTable = "lessons"
	// LessonsColumn is the table column denoting the lessons relation/edge.
	LessonsColumn = "chapter_id"
)

// Columns holds all SQL columns for chapter fields.
var Columns = []string{
	FieldID,
	FieldCourseGenerationID,
	FieldNumber,
	FieldName,
	FieldDescription,
	FieldDifficulty,
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
	// NumberValidator is a validator for the "number" field. It is called by the builders before save.
	NumberValidator func(int) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty int
)

// OrderOption defines the ordering options for the Chapter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCourseGenerationID orders the results by the course_generation_id field.
func ByCourseGenerationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseGenerationID, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByCourseGenerationField orders the results by course_generation field.
func ByCourseGenerationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCourseGenerationStep(), sql.OrderByField(field, opts...))
	}
}

// ByLessonsCount orders the results by lessons count.
func ByLessonsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLessonsStep(), opts...)
	}
}

// ByLessons orders the results by lessons terms.
func ByLessons(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLessonsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCourseGenerationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CourseGenerationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CourseGenerationTable, CourseGenerationColumn),
	)
}
func newLessonsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LessonsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LessonsTable, LessonsColumn),
	)
}
