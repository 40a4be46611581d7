// Code generated by ent, DO NOT EDIT.

package coursegeneration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldUpdateTime, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldPrompt, v))
}

// ExperienceLevel applies equality check predicate on the "experience_level" field. It's identical to ExperienceLevelEQ.
func ExperienceLevel(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldExperienceLevel, v))
}

// TotalChapters applies equality check predicate on the "total_chapters" field. It's identical to TotalChaptersEQ.
func TotalChapters(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldTotalChapters, v))
}

// TotalLessons applies equality check predicate on the "total_lessons" field. It's identical to TotalLessonsEQ.
func TotalLessons(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldTotalLessons, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldCompletedAt, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLTE(FieldUpdateTime, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldContainsFold(FieldPrompt, v))
}

// ExperienceLevelEQ applies the EQ predicate on the "experience_level" field.
func ExperienceLevelEQ(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldExperienceLevel, v))
}

// ExperienceLevelNEQ applies the NEQ predicate on the "experience_level" field.
func ExperienceLevelNEQ(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNEQ(FieldExperienceLevel, v))
}

// ExperienceLevelIn applies the In predicate on the "experience_level" field.
func ExperienceLevelIn(vs ...string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelNotIn applies the NotIn predicate on the "experience_level" field.
func ExperienceLevelNotIn(vs ...string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelGT applies the GT predicate on the "experience_level" field.
func ExperienceLevelGT(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGT(FieldExperienceLevel, v))
}

// ExperienceLevelGTE applies the GTE predicate on the "experience_level" field.
func ExperienceLevelGTE(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGTE(FieldExperienceLevel, v))
}

// ExperienceLevelLT applies the LT predicate on the "experience_level" field.
func ExperienceLevelLT(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLT(FieldExperienceLevel, v))
}

// ExperienceLevelLTE applies the LTE predicate on the "experience_level" field.
func ExperienceLevelLTE(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLTE(FieldExperienceLevel, v))
}

// ExperienceLevelContains applies the Contains predicate on the "experience_level" field.
func ExperienceLevelContains(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldContains(FieldExperienceLevel, v))
}

// ExperienceLevelHasPrefix applies the HasPrefix predicate on the "experience_level" field.
func ExperienceLevelHasPrefix(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldHasPrefix(FieldExperienceLevel, v))
}

// ExperienceLevelHasSuffix applies the HasSuffix predicate on the "experience_level" field.
func ExperienceLevelHasSuffix(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldHasSuffix(FieldExperienceLevel, v))
}

// ExperienceLevelEqualFold applies the EqualFold predicate on the "experience_level" field.
func ExperienceLevelEqualFold(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEqualFold(FieldExperienceLevel, v))
}

// ExperienceLevelContainsFold applies the ContainsFold predicate on the "experience_level" field.
func ExperienceLevelContainsFold(v string) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldContainsFold(FieldExperienceLevel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalChaptersEQ applies the EQ predicate on the "total_chapters" field.
func TotalChaptersEQ(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldTotalChapters, v))
}

// TotalChaptersNEQ applies the NEQ predicate on the "total_chapters" field.
func TotalChaptersNEQ(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNEQ(FieldTotalChapters, v))
}

// TotalChaptersIn applies the In predicate on the "total_chapters" field.
func TotalChaptersIn(vs ...int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIn(FieldTotalChapters, vs...))
}

// TotalChaptersNotIn applies the NotIn predicate on the "total_chapters" field.
func TotalChaptersNotIn(vs ...int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotIn(FieldTotalChapters, vs...))
}

// TotalChaptersGT applies the GT predicate on the "total_chapters" field.
func TotalChaptersGT(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGT(FieldTotalChapters, v))
}

// TotalChaptersGTE applies the GTE predicate on the "total_chapters" field.
func TotalChaptersGTE(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGTE(FieldTotalChapters, v))
}

// TotalChaptersLT applies the LT predicate on the "total_chapters" field.
func TotalChaptersLT(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLT(FieldTotalChapters, v))
}

// TotalChaptersLTE applies the LTE predicate on the "total_chapters" field.
func TotalChaptersLTE(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLTE(FieldTotalChapters, v))
}

// TotalLessonsEQ applies the EQ predicate on the "total_lessons" field.
func TotalLessonsEQ(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldTotalLessons, v))
}

// TotalLessonsNEQ applies the NEQ predicate on the "total_lessons" field.
func TotalLessonsNEQ(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNEQ(FieldTotalLessons, v))
}

// TotalLessonsIn applies the In predicate on the "total_lessons" field.
func TotalLessonsIn(vs ...int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIn(FieldTotalLessons, vs...))
}

// TotalLessonsNotIn applies the NotIn predicate on the "total_lessons" field.
func TotalLessonsNotIn(vs ...int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotIn(FieldTotalLessons, vs...))
}

// TotalLessonsGT applies the GT predicate on the "total_lessons" field.
func TotalLessonsGT(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGT(FieldTotalLessons, v))
}

// TotalLessonsGTE applies the GTE predicate on the "total_lessons" field.
func TotalLessonsGTE(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGTE(FieldTotalLessons, v))
}

// TotalLessonsLT applies the LT predicate on the "total_lessons" field.
func TotalLessonsLT(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLT(FieldTotalLessons, v))
}

// TotalLessonsLTE applies the LTE predicate on the "total_lessons" field.
func TotalLessonsLTE(v int) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLTE(FieldTotalLessons, v))
}

// CourseDataIsNil applies the IsNil predicate on the "course_data" field.
func CourseDataIsNil() predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIsNull(FieldCourseData))
}

// CourseDataNotNil applies the NotNil predicate on the "course_data" field.
func CourseDataNotNil() predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotNull(FieldCourseData))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.FieldNotNull(FieldCompletedAt))
}

// HasChapters applies the HasEdge predicate on the "chapters" edge.
func HasChapters() predicate.CourseGeneration {
	return predicate.CourseGeneration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChaptersTable, ChaptersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChaptersWith applies the HasEdge predicate on the "chapters" edge with a given conditions (other predicates).
func HasChaptersWith(preds ...predicate.Chapter) predicate.CourseGeneration {
	return predicate.CourseGeneration(func(s *sql.Selector) {
		step := newChaptersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogs applies the HasEdge predicate on the "logs" edge.
func HasLogs() predicate.CourseGeneration {
	return predicate.CourseGeneration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogsWith applies the HasEdge predicate on the "logs" edge with a given conditions (other predicates).
func HasLogsWith(preds ...predicate.GenerationLog) predicate.CourseGeneration {
	return predicate.CourseGeneration(func(s *sql.Selector) {
		step := newLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourseGeneration) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourseGeneration) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourseGeneration) predicate.CourseGeneration {
	return predicate.CourseGeneration(sql.NotPredicates(p))
}
