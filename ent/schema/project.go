package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Project is a programming exercise: starter files plus grading rules.
type Project struct {
	ent.Schema
}

func (Project) Mixin() []ent.Mixin {
	return []ent.Mixin{mixin.Time{}}
}

func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lesson_id").
			Unique(),
		field.String("name"),
		field.Text("description").
			Default(""),
		field.Enum("grading_method").
			Values("ai_review", "terminal_matching").
			Default("ai_review"),
		field.Text("expected_output").
			Default("").
			Comment("Expected stdout when grading_method is terminal_matching"),
		field.Bool("is_final_project").
			Default(false),
	}
}

func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("project").
			Field("lesson_id").
			Unique().
			Required(),
		edge.To("files", ProjectFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// ProjectFile is one starter file of a Project.
type ProjectFile struct {
	ent.Schema
}

func (ProjectFile) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id"),
		field.String("path").
			NotEmpty(),
		field.Text("content").
			Default(""),
	}
}

func (ProjectFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("files").
			Field("project_id").
			Unique().
			Required(),
	}
}

func (ProjectFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "path").
			Unique(),
	}
}
