package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"

	"github.com/abhisek/coursegen/internal/course"
)

// TextResponseQuestion is one open question of a text-response lesson.
type TextResponseQuestion struct {
	ent.Schema
}

func (TextResponseQuestion) Mixin() []ent.Mixin {
	return []ent.Mixin{mixin.CreateTime{}}
}

func (TextResponseQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lesson_id"),
		field.Int("number").
			Positive(),
		field.Text("question"),
		field.Text("reference_answer").
			Default(""),
	}
}

func (TextResponseQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("text_questions").
			Field("lesson_id").
			Unique().
			Required(),
	}
}

func (TextResponseQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id", "number").
			Unique(),
	}
}

// TextResponseSubmission is one graded batch of free-text answers.
type TextResponseSubmission struct {
	ent.Schema
}

func (TextResponseSubmission) Mixin() []ent.Mixin {
	return []ent.Mixin{mixin.CreateTime{}}
}

func (TextResponseSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lesson_id").
			Immutable(),
		field.JSON("answers", map[int]string{}).
			Immutable(),
		field.JSON("grades", map[int]course.TextGrade{}).
			Immutable(),
		field.Float("total_score").
			Immutable(),
		field.Int("total_questions").
			Immutable(),
		field.Bool("fallback").
			Default(false).
			Immutable().
			Comment("Grades came from the deterministic fallback, not the model"),
	}
}

func (TextResponseSubmission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("text_submissions").
			Field("lesson_id").
			Unique().
			Required().
			Immutable(),
	}
}
