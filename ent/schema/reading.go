package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Article is a generated markdown article (ai-article and summary lessons).
type Article struct {
	ent.Schema
}

func (Article) Mixin() []ent.Mixin {
	return []ent.Mixin{mixin.Time{}}
}

func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lesson_id").
			Unique(),
		field.Text("content"),
	}
}

func (Article) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("article").
			Field("lesson_id").
			Unique().
			Required(),
	}
}

// ExternalArticle is the best web search hit for an external-article lesson.
type ExternalArticle struct {
	ent.Schema
}

func (ExternalArticle) Mixin() []ent.Mixin {
	return []ent.Mixin{mixin.Time{}}
}

func (ExternalArticle) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lesson_id").
			Unique(),
		field.String("url").
			NotEmpty(),
		field.String("title").
			Default(""),
		field.Float("score").
			Default(0),
	}
}

func (ExternalArticle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("external_article").
			Field("lesson_id").
			Unique().
			Required(),
	}
}

// Video is a video reference attached to a video lesson.
type Video struct {
	ent.Schema
}

func (Video) Mixin() []ent.Mixin {
	return []ent.Mixin{mixin.Time{}}
}

func (Video) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lesson_id"),
		field.String("video_id").
			NotEmpty().
			Comment("External video id"),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.String("thumbnail_url").
			Default(""),
		field.String("channel_title").
			Default(""),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.String("video_url"),
		field.Uint64("like_count").
			Default(0),
		field.Uint64("view_count").
			Default(0),
	}
}

func (Video) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("videos").
			Field("lesson_id").
			Unique().
			Required(),
	}
}

func (Video) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id", "video_id").
			Unique(),
	}
}
