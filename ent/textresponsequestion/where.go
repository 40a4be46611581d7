// Code generated by ent, DO NOT EDIT.

package textresponsequestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldCreateTime, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldLessonID, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldNumber, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldQuestion, v))
}

// ReferenceAnswer applies equality check predicate on the "reference_answer" field. It's identical to ReferenceAnswerEQ.
func ReferenceAnswer(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldReferenceAnswer, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLTE(FieldCreateTime, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNotIn(FieldLessonID, vs...))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v int) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLTE(FieldNumber, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldContainsFold(FieldQuestion, v))
}

// ReferenceAnswerEQ applies the EQ predicate on the "reference_answer" field.
func ReferenceAnswerEQ(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEQ(FieldReferenceAnswer, v))
}

// ReferenceAnswerNEQ applies the NEQ predicate on the "reference_answer" field.
func ReferenceAnswerNEQ(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNEQ(FieldReferenceAnswer, v))
}

// ReferenceAnswerIn applies the In predicate on the "reference_answer" field.
func ReferenceAnswerIn(vs ...string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldIn(FieldReferenceAnswer, vs...))
}

// ReferenceAnswerNotIn applies the NotIn predicate on the "reference_answer" field.
func ReferenceAnswerNotIn(vs ...string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldNotIn(FieldReferenceAnswer, vs...))
}

// ReferenceAnswerGT applies the GT predicate on the "reference_answer" field.
func ReferenceAnswerGT(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGT(FieldReferenceAnswer, v))
}

// ReferenceAnswerGTE applies the GTE predicate on the "reference_answer" field.
func ReferenceAnswerGTE(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldGTE(FieldReferenceAnswer, v))
}

// ReferenceAnswerLT applies the LT predicate on the "reference_answer" field.
func ReferenceAnswerLT(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLT(FieldReferenceAnswer, v))
}

// ReferenceAnswerLTE applies the LTE predicate on the "reference_answer" field.
func ReferenceAnswerLTE(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldLTE(FieldReferenceAnswer, v))
}

// ReferenceAnswerContains applies the Contains predicate on the "reference_answer" field.
func ReferenceAnswerContains(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldContains(FieldReferenceAnswer, v))
}

// ReferenceAnswerHasPrefix applies the HasPrefix predicate on the "reference_answer" field.
func ReferenceAnswerHasPrefix(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldHasPrefix(FieldReferenceAnswer, v))
}

// ReferenceAnswerHasSuffix applies the HasSuffix predicate on the "reference_answer" field.
func ReferenceAnswerHasSuffix(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldHasSuffix(FieldReferenceAnswer, v))
}

// ReferenceAnswerEqualFold applies the EqualFold predicate on the "reference_answer" field.
func ReferenceAnswerEqualFold(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldEqualFold(FieldReferenceAnswer, v))
}

// ReferenceAnswerContainsFold applies the ContainsFold predicate on the "reference_answer" field.
func ReferenceAnswerContainsFold(v string) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.FieldContainsFold(FieldReferenceAnswer, v))
}

// HasLesson applies the HasEdge predicate on the "lesson" edge.
func HasLesson() predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LessonTable, LessonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonWith applies the HasEdge predicate on the "lesson" edge with a given conditions (other predicates).
func HasLessonWith(preds ...predicate.Lesson) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(func(s *sql.Selector) {
		step := newLessonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TextResponseQuestion) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TextResponseQuestion) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TextResponseQuestion) predicate.TextResponseQuestion {
	return predicate.TextResponseQuestion(sql.NotPredicates(p))
}
