// Code generated by ent, DO NOT EDIT.

package generationlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldID, id))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldTimestamp, v))
}

// CourseGenerationID applies equality check predicate on the "course_generation_id" field. It's identical to CourseGenerationIDEQ.
func CourseGenerationID(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldCourseGenerationID, v))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldStep, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldMessage, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldTimestamp, v))
}

// CourseGenerationIDEQ applies the EQ predicate on the "course_generation_id" field.
func CourseGenerationIDEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldCourseGenerationID, v))
}

// CourseGenerationIDNEQ applies the NEQ predicate on the "course_generation_id" field.
func CourseGenerationIDNEQ(v int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldCourseGenerationID, v))
}

// CourseGenerationIDIn applies the In predicate on the "course_generation_id" field.
func CourseGenerationIDIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldCourseGenerationID, vs...))
}

// CourseGenerationIDNotIn applies the NotIn predicate on the "course_generation_id" field.
func CourseGenerationIDNotIn(vs ...int) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldCourseGenerationID, vs...))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldStep, v))
}

// StepContains applies the Contains predicate on the "step" field.
func StepContains(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContains(FieldStep, v))
}

// StepHasPrefix applies the HasPrefix predicate on the "step" field.
func StepHasPrefix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasPrefix(FieldStep, v))
}

// StepHasSuffix applies the HasSuffix predicate on the "step" field.
func StepHasSuffix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasSuffix(FieldStep, v))
}

// StepEqualFold applies the EqualFold predicate on the "step" field.
func StepEqualFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEqualFold(FieldStep, v))
}

// StepContainsFold applies the ContainsFold predicate on the "step" field.
func StepContainsFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContainsFold(FieldStep, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldStatus, vs...))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldLevel, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldContainsFold(FieldMessage, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.GenerationLog {
	return predicate.GenerationLog(sql.FieldNotNull(FieldData))
}

// HasCourseGeneration applies the HasEdge predicate on the "course_generation" edge.
func HasCourseGeneration() predicate.GenerationLog {
	return predicate.GenerationLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CourseGenerationTable, CourseGenerationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCourseGenerationWith applies the HasEdge predicate on the "course_generation" edge with a given conditions (other predicates).
func HasCourseGenerationWith(preds ...predicate.CourseGeneration) predicate.GenerationLog {
	return predicate.GenerationLog(func(s *sql.Selector) {
		step := newCourseGenerationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationLog) predicate.GenerationLog {
	return predicate.GenerationLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationLog) predicate.GenerationLog {
	return predicate.GenerationLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationLog) predicate.GenerationLog {
	return predicate.GenerationLog(sql.NotPredicates(p))
}
