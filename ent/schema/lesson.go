package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is one typed unit of a chapter. At most one kind of content
// artifact hangs off it, matching lesson_type.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.Int("chapter_id"),
		field.Int("number").
			Positive().
			Comment("1-based ordinal, unique within the chapter"),
		field.String("lesson_type").
			Comment("Lesson type tag, e.g. multiple-choice-quiz"),
		field.Int("lesson_type_id").
			Default(0),
		field.String("name"),
		field.Text("description").
			Default(""),
		field.Text("details").
			Default(""),
		field.Text("goals").
			Default(""),
		field.Text("guidelines").
			Default(""),
		field.Bool("is_complete").
			Default(false),
	}
}

func (Lesson) Edges() []ent.Edge {
	cascade := entsql.OnDelete(entsql.Cascade)
	return []ent.Edge{
		edge.From("chapter", Chapter.Type).
			Ref("lessons").
			Field("chapter_id").
			Unique().
			Required(),
		edge.To("quiz", Quiz.Type).Unique().Annotations(cascade),
		edge.To("article", Article.Type).Unique().Annotations(cascade),
		edge.To("external_article", ExternalArticle.Type).Unique().Annotations(cascade),
		edge.To("videos", Video.Type).Annotations(cascade),
		edge.To("project", Project.Type).Unique().Annotations(cascade),
		edge.To("text_questions", TextResponseQuestion.Type).Annotations(cascade),
		edge.To("text_submissions", TextResponseSubmission.Type).Annotations(cascade),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chapter_id", "number").
			Unique(),
	}
}
