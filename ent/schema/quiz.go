package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"

	"github.com/abhisek/coursegen/internal/course"
)

// Quiz holds the questions of a multiple-choice-quiz lesson.
type Quiz struct {
	ent.Schema
}

func (Quiz) Mixin() []ent.Mixin {
	return []ent.Mixin{mixin.CreateTime{}}
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lesson_id").
			Unique(),
		field.JSON("questions", []course.QuizQuestion{}),
	}
}

func (Quiz) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("quiz").
			Field("lesson_id").
			Unique().
			Required(),
		edge.To("attempts", QuizAttempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// QuizAttempt is an immutable graded quiz submission.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{mixin.CreateTime{}}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("quiz_id").
			Immutable(),
		field.JSON("answers", map[int]string{}).
			Immutable(),
		field.JSON("results", []course.QuestionResult{}).
			Immutable(),
		field.Int("score").
			NonNegative().
			Immutable(),
		field.Int("total").
			NonNegative().
			Immutable(),
	}
}

func (QuizAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("quiz", Quiz.Type).
			Ref("attempts").
			Field("quiz_id").
			Unique().
			Required().
			Immutable(),
	}
}
