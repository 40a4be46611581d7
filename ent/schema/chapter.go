package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chapter is a planned chapter of a generated course.
type Chapter struct {
	ent.Schema
}

func (Chapter) Fields() []ent.Field {
	return []ent.Field{
		field.Int("course_generation_id"),
		field.Int("number").
			Positive().
			Comment("1-based ordinal, unique within the generation"),
		field.String("name"),
		field.Text("description").
			Default(""),
		field.Int("difficulty").
			Default(-1).
			Comment("1-10, or -1 when unset"),
	}
}

func (Chapter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course_generation", CourseGeneration.Type).
			Ref("chapters").
			Field("course_generation_id").
			Unique().
			Required(),
		edge.To("lessons", Lesson.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Chapter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_generation_id", "number").
			Unique(),
	}
}
