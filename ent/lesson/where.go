// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldID, id))
}

// ChapterID applies equality check predicate on the "chapter_id" field. It's identical to ChapterIDEQ.
func ChapterID(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldChapterID, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldNumber, v))
}

// LessonType applies equality check predicate on the "lesson_type" field. It's identical to LessonTypeEQ.
func LessonType(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLessonType, v))
}

// LessonTypeID applies equality check predicate on the "lesson_type_id" field. It's identical to LessonTypeIDEQ.
func LessonTypeID(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLessonTypeID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldDescription, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldDetails, v))
}

// Goals applies equality check predicate on the "goals" field. It's identical to GoalsEQ.
func Goals(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldGoals, v))
}

// Guidelines applies equality check predicate on the "guidelines" field. It's identical to GuidelinesEQ.
func Guidelines(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldGuidelines, v))
}

// IsComplete applies equality check predicate on the "is_complete" field. It's identical to IsCompleteEQ.
func IsComplete(v bool) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldIsComplete, v))
}

// ChapterIDEQ applies the EQ predicate on the "chapter_id" field.
func ChapterIDEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldChapterID, v))
}

// ChapterIDNEQ applies the NEQ predicate on the "chapter_id" field.
func ChapterIDNEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldChapterID, v))
}

// ChapterIDIn applies the In predicate on the "chapter_id" field.
func ChapterIDIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldChapterID, vs...))
}

// ChapterIDNotIn applies the NotIn predicate on the "chapter_id" field.
func ChapterIDNotIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldChapterID, vs...))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldNumber, v))
}

// LessonTypeEQ applies the EQ predicate on the "lesson_type" field.
func LessonTypeEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLessonType, v))
}

// LessonTypeNEQ applies the NEQ predicate on the "lesson_type" field.
func LessonTypeNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldLessonType, v))
}

// LessonTypeIn applies the In predicate on the "lesson_type" field.
func LessonTypeIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldLessonType, vs...))
}

// LessonTypeNotIn applies the NotIn predicate on the "lesson_type" field.
func LessonTypeNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldLessonType, vs...))
}

// LessonTypeGT applies the GT predicate on the "lesson_type" field.
func LessonTypeGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldLessonType, v))
}

// LessonTypeGTE applies the GTE predicate on the "lesson_type" field.
func LessonTypeGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldLessonType, v))
}

// LessonTypeLT applies the LT predicate on the "lesson_type" field.
func LessonTypeLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldLessonType, v))
}

// LessonTypeLTE applies the LTE predicate on the "lesson_type" field.
func LessonTypeLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldLessonType, v))
}

// LessonTypeContains applies the Contains predicate on the "lesson_type" field.
func LessonTypeContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldLessonType, v))
}

// LessonTypeHasPrefix applies the HasPrefix predicate on the "lesson_type" field.
func LessonTypeHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldLessonType, v))
}

// LessonTypeHasSuffix applies the HasSuffix predicate on the "lesson_type" field.
func LessonTypeHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldLessonType, v))
}

// LessonTypeEqualFold applies the EqualFold predicate on the "lesson_type" field.
func LessonTypeEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldLessonType, v))
}

// LessonTypeContainsFold applies the ContainsFold predicate on the "lesson_type" field.
func LessonTypeContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldLessonType, v))
}

// LessonTypeIDEQ applies the EQ predicate on the "lesson_type_id" field.
func LessonTypeIDEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLessonTypeID, v))
}

// LessonTypeIDNEQ applies the NEQ predicate on the "lesson_type_id" field.
func LessonTypeIDNEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldLessonTypeID, v))
}

// LessonTypeIDIn applies the In predicate on the "lesson_type_id" field.
func LessonTypeIDIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldLessonTypeID, vs...))
}

// LessonTypeIDNotIn applies the NotIn predicate on the "lesson_type_id" field.
func LessonTypeIDNotIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldLessonTypeID, vs...))
}

// LessonTypeIDGT applies the GT predicate on the "lesson_type_id" field.
func LessonTypeIDGT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldLessonTypeID, v))
}

// LessonTypeIDGTE applies the GTE predicate on the "lesson_type_id" field.
func LessonTypeIDGTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldLessonTypeID, v))
}

// LessonTypeIDLT applies the LT predicate on the "lesson_type_id" field.
func LessonTypeIDLT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldLessonTypeID, v))
}

// LessonTypeIDLTE applies the LTE predicate on the "lesson_type_id" field.
func LessonTypeIDLTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldLessonTypeID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldDescription, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldDetails, v))
}

// GoalsEQ applies the EQ predicate on the "goals" field.
func GoalsEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldGoals, v))
}

// GoalsNEQ applies the NEQ predicate on the "goals" field.
func GoalsNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldGoals, v))
}

// GoalsIn applies the In predicate on the "goals" field.
func GoalsIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldGoals, vs...))
}

// GoalsNotIn applies the NotIn predicate on the "goals" field.
func GoalsNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldGoals, vs...))
}

// GoalsGT applies the GT predicate on the "goals" field.
func GoalsGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldGoals, v))
}

// GoalsGTE applies the GTE predicate on the "goals" field.
func GoalsGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldGoals, v))
}

// GoalsLT applies the LT predicate on the "goals" field.
func GoalsLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldGoals, v))
}

// GoalsLTE applies the LTE predicate on the "goals" field.
func GoalsLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldGoals, v))
}

// GoalsContains applies the Contains predicate on the "goals" field.
func GoalsContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldGoals, v))
}

// GoalsHasPrefix applies the HasPrefix predicate on the "goals" field.
func GoalsHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldGoals, v))
}

// GoalsHasSuffix applies the HasSuffix predicate on the "goals" field.
func GoalsHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldGoals, v))
}

// GoalsEqualFold applies the EqualFold predicate on the "goals" field.
func GoalsEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldGoals, v))
}

// GoalsContainsFold applies the ContainsFold predicate on the "goals" field.
func GoalsContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldGoals, v))
}

// GuidelinesEQ applies the EQ predicate on the "guidelines" field.
func GuidelinesEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldGuidelines, v))
}

// GuidelinesNEQ applies the NEQ predicate on the "guidelines" field.
func GuidelinesNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldGuidelines, v))
}

// GuidelinesIn applies the In predicate on the "guidelines" field.
func GuidelinesIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldGuidelines, vs...))
}

// GuidelinesNotIn applies the NotIn predicate on the "guidelines" field.
func GuidelinesNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldGuidelines, vs...))
}

// GuidelinesGT applies the GT predicate on the "guidelines" field.
func GuidelinesGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldGuidelines, v))
}

// GuidelinesGTE applies the GTE predicate on the "guidelines" field.
func GuidelinesGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldGuidelines, v))
}

// GuidelinesLT applies the LT predicate on the "guidelines" field.
func GuidelinesLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldGuidelines, v))
}

// GuidelinesLTE applies the LTE predicate on the "guidelines" field.
func GuidelinesLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldGuidelines, v))
}

// GuidelinesContains applies the Contains predicate on the "guidelines" field.
func GuidelinesContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldGuidelines, v))
}

// GuidelinesHasPrefix applies the HasPrefix predicate on the "guidelines" field.
func GuidelinesHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldGuidelines, v))
}

// GuidelinesHasSuffix applies the HasSuffix predicate on the "guidelines" field.
func GuidelinesHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldGuidelines, v))
}

// GuidelinesEqualFold applies the EqualFold predicate on the "guidelines" field.
func GuidelinesEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldGuidelines, v))
}

// GuidelinesContainsFold applies the ContainsFold predicate on the "guidelines" field.
func GuidelinesContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldGuidelines, v))
}

// IsCompleteEQ applies the EQ predicate on the "is_complete" field.
func IsCompleteEQ(v bool) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldIsComplete, v))
}

// IsCompleteNEQ applies the NEQ predicate on the "is_complete" field.
func IsCompleteNEQ(v bool) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldIsComplete, v))
}

// HasChapter applies the HasEdge predicate on the "chapter" edge.
func HasChapter() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChapterTable, ChapterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChapterWith applies the HasEdge predicate on the "chapter" edge with a given conditions (other predicates).
func HasChapterWith(preds ...predicate.Chapter) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newChapterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuiz applies the HasEdge predicate on the "quiz" edge.
func HasQuiz() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, QuizTable, QuizColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuizWith applies the HasEdge predicate on the "quiz" edge with a given conditions (other predicates).
func HasQuizWith(preds ...predicate.Quiz) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newQuizStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArticle applies the HasEdge predicate on the "article" edge.
func HasArticle() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ArticleTable, ArticleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArticleWith applies the HasEdge predicate on the "article" edge with a given conditions (other predicates).
func HasArticleWith(preds ...predicate.Article) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newArticleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExternalArticle applies the HasEdge predicate on the "external_article" edge.
func HasExternalArticle() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ExternalArticleTable, ExternalArticleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExternalArticleWith applies the HasEdge predicate on the "external_article" edge with a given conditions (other predicates).
func HasExternalArticleWith(preds ...predicate.ExternalArticle) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newExternalArticleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVideos applies the HasEdge predicate on the "videos" edge.
func HasVideos() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VideosTable, VideosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVideosWith applies the HasEdge predicate on the "videos" edge with a given conditions (other predicates).
func HasVideosWith(preds ...predicate.Video) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newVideosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTextQuestions applies the HasEdge predicate on the "text_questions" edge.
func HasTextQuestions() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TextQuestionsTable, TextQuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTextQuestionsWith applies the HasEdge predicate on the "text_questions" edge with a given conditions (other predicates).
func HasTextQuestionsWith(preds ...predicate.TextResponseQuestion) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newTextQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTextSubmissions applies the HasEdge predicate on the "text_submissions" edge.
func HasTextSubmissions() predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TextSubmissionsTable, TextSubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTextSubmissionsWith applies the HasEdge predicate on the "text_submissions" edge with a given conditions (other predicates).
func HasTextSubmissionsWith(preds ...predicate.TextResponseSubmission) predicate.Lesson {
	return predicate.Lesson(func(s *sql.Selector) {
		step := newTextSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.NotPredicates(p))
}
