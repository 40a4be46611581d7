// Code generated by ent, DO NOT EDIT.

package textresponsesubmission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldCreateTime, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldLessonID, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v float64) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldTotalScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldTotalQuestions, v))
}

// Fallback applies equality check predicate on the "fallback" field. It's identical to FallbackEQ.
func Fallback(v bool) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldFallback, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldLTE(FieldCreateTime, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNotIn(FieldLessonID, vs...))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v float64) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v float64) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...float64) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...float64) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v float64) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v float64) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v float64) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v float64) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldLTE(FieldTotalScore, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldLTE(FieldTotalQuestions, v))
}

// FallbackEQ applies the EQ predicate on the "fallback" field.
func FallbackEQ(v bool) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldEQ(FieldFallback, v))
}

// FallbackNEQ applies the NEQ predicate on the "fallback" field.
func FallbackNEQ(v bool) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.FieldNEQ(FieldFallback, v))
}

// HasLesson applies the HasEdge predicate on the "lesson" edge.
func HasLesson() predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LessonTable, LessonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonWith applies the HasEdge predicate on the "lesson" edge with a given conditions (other predicates).
func HasLessonWith(preds ...predicate.Lesson) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(func(s *sql.Selector) {
		step := newLessonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TextResponseSubmission) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TextResponseSubmission) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TextResponseSubmission) predicate.TextResponseSubmission {
	return predicate.TextResponseSubmission(sql.NotPredicates(p))
}
