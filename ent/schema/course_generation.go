package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// CourseGeneration is one generation run and the root of the course tree.
type CourseGeneration struct {
	ent.Schema
}

func (CourseGeneration) Mixin() []ent.Mixin {
	return []ent.Mixin{mixin.Time{}}
}

func (CourseGeneration) Fields() []ent.Field {
	return []ent.Field{
		field.Text("prompt"),
		field.Text("experience_level").
			Default(""),
		field.Enum("status").
			Values("pending", "generating", "completed", "failed").
			Default("pending"),
		field.Int("total_chapters").
			Default(0),
		field.Int("total_lessons").
			Default(0),
		field.JSON("course_data", map[string]any{}).
			Optional().
			Comment("Aggregate snapshot written once on completion"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (CourseGeneration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chapters", Chapter.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("logs", GenerationLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (CourseGeneration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
