package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationLog is an append-only audit entry of a generation run.
type GenerationLog struct {
	ent.Schema
}

func (GenerationLog) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenerationLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("course_generation_id").
			Immutable(),
		field.String("step").
			Immutable().
			Comment("Phase name, e.g. chapter_generation or lesson_content_chapter_2_lesson_3"),
		field.Enum("status").
			Values("started", "in_progress", "completed", "failed").
			Immutable(),
		field.Enum("level").
			Values("debug", "info", "warning", "error").
			Default("info").
			Immutable(),
		field.Text("message").
			Default("").
			Immutable(),
		field.JSON("data", map[string]any{}).
			Optional().
			Immutable(),
	}
}

func (GenerationLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course_generation", CourseGeneration.Type).
			Ref("logs").
			Field("course_generation_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (GenerationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_generation_id", "step"),
	}
}
