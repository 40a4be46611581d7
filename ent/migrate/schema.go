// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticlesColumns holds the columns for the "articles" table.
	ArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "lesson_id", Type: field.TypeInt, Unique: true},
	}
	// ArticlesTable holds the schema information for the "articles" table.
	ArticlesTable = &schema.Table{
		Name:       "articles",
		Columns:    ArticlesColumns,
		PrimaryKey: []*schema.Column{ArticlesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "articles_lessons_article",
				Columns:    []*schema.Column{ArticlesColumns[4]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ChaptersColumns holds the columns for the "chapters" table.
	ChaptersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "number", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "difficulty", Type: field.TypeInt, Default: -1},
		{Name: "course_generation_id", Type: field.TypeInt},
	}
	// ChaptersTable holds the schema information for the "chapters" table.
	ChaptersTable = &schema.Table{
		Name:       "chapters",
		Columns:    ChaptersColumns,
		PrimaryKey: []*schema.Column{ChaptersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chapters_course_generations_chapters",
				Columns:    []*schema.Column{ChaptersColumns[5]},
				RefColumns: []*schema.Column{CourseGenerationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chapter_course_generation_id_number",
				Unique:  true,
				Columns: []*schema.Column{ChaptersColumns[5], ChaptersColumns[1]},
			},
		},
	}
	// CourseGenerationsColumns holds the columns for the "course_generations" table.
	CourseGenerationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "experience_level", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "generating", "completed", "failed"}, Default: "pending"},
		{Name: "total_chapters", Type: field.TypeInt, Default: 0},
		{Name: "total_lessons", Type: field.TypeInt, Default: 0},
		{Name: "course_data", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// CourseGenerationsTable holds the schema information for the "course_generations" table.
	CourseGenerationsTable = &schema.Table{
		Name:       "course_generations",
		Columns:    CourseGenerationsColumns,
		PrimaryKey: []*schema.Column{CourseGenerationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coursegeneration_status",
				Unique:  false,
				Columns: []*schema.Column{CourseGenerationsColumns[5]},
			},
		},
	}
	// ExternalArticlesColumns holds the columns for the "external_articles" table.
	ExternalArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "url", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "lesson_id", Type: field.TypeInt, Unique: true},
	}
	// ExternalArticlesTable holds the schema information for the "external_articles" table.
	ExternalArticlesTable = &schema.Table{
		Name:       "external_articles",
		Columns:    ExternalArticlesColumns,
		PrimaryKey: []*schema.Column{ExternalArticlesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "external_articles_lessons_external_article",
				Columns:    []*schema.Column{ExternalArticlesColumns[6]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// GenerationLogsColumns holds the columns for the "generation_logs" table.
	GenerationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "step", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"started", "in_progress", "completed", "failed"}},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"debug", "info", "warning", "error"}, Default: "info"},
		{Name: "message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "course_generation_id", Type: field.TypeInt},
	}
	// GenerationLogsTable holds the schema information for the "generation_logs" table.
	GenerationLogsTable = &schema.Table{
		Name:       "generation_logs",
		Columns:    GenerationLogsColumns,
		PrimaryKey: []*schema.Column{GenerationLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generation_logs_course_generations_logs",
				Columns:    []*schema.Column{GenerationLogsColumns[7]},
				RefColumns: []*schema.Column{CourseGenerationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generationlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GenerationLogsColumns[1]},
			},
			{
				Name:    "generationlog_course_generation_id_step",
				Unique:  false,
				Columns: []*schema.Column{GenerationLogsColumns[7], GenerationLogsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "number", Type: field.TypeInt},
		{Name: "lesson_type", Type: field.TypeString},
		{Name: "lesson_type_id", Type: field.TypeInt, Default: 0},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "details", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "goals", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "guidelines", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "is_complete", Type: field.TypeBool, Default: false},
		{Name: "chapter_id", Type: field.TypeInt},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_chapters_lessons",
				Columns:    []*schema.Column{LessonsColumns[10]},
				RefColumns: []*schema.Column{ChaptersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_chapter_id_number",
				Unique:  true,
				Columns: []*schema.Column{LessonsColumns[10], LessonsColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "grading_method", Type: field.TypeEnum, Enums: []string{"ai_review", "terminal_matching"}, Default: "ai_review"},
		{Name: "expected_output", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "is_final_project", Type: field.TypeBool, Default: false},
		{Name: "lesson_id", Type: field.TypeInt, Unique: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_lessons_project",
				Columns:    []*schema.Column{ProjectsColumns[8]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ProjectFilesColumns holds the columns for the "project_files" table.
	ProjectFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "project_id", Type: field.TypeInt},
	}
	// ProjectFilesTable holds the schema information for the "project_files" table.
	ProjectFilesTable = &schema.Table{
		Name:       "project_files",
		Columns:    ProjectFilesColumns,
		PrimaryKey: []*schema.Column{ProjectFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_files_projects_files",
				Columns:    []*schema.Column{ProjectFilesColumns[3]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectfile_project_id_path",
				Unique:  true,
				Columns: []*schema.Column{ProjectFilesColumns[3], ProjectFilesColumns[1]},
			},
		},
	}
	// QuizsColumns holds the columns for the "quizs" table.
	QuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "lesson_id", Type: field.TypeInt, Unique: true},
	}
	// QuizsTable holds the schema information for the "quizs" table.
	QuizsTable = &schema.Table{
		Name:       "quizs",
		Columns:    QuizsColumns,
		PrimaryKey: []*schema.Column{QuizsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quizs_lessons_quiz",
				Columns:    []*schema.Column{QuizsColumns[3]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "results", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "quiz_id", Type: field.TypeInt},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_attempts_quizs_attempts",
				Columns:    []*schema.Column{QuizAttemptsColumns[6]},
				RefColumns: []*schema.Column{QuizsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TextResponseQuestionsColumns holds the columns for the "text_response_questions" table.
	TextResponseQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "number", Type: field.TypeInt},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "reference_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "lesson_id", Type: field.TypeInt},
	}
	// TextResponseQuestionsTable holds the schema information for the "text_response_questions" table.
	TextResponseQuestionsTable = &schema.Table{
		Name:       "text_response_questions",
		Columns:    TextResponseQuestionsColumns,
		PrimaryKey: []*schema.Column{TextResponseQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "text_response_questions_lessons_text_questions",
				Columns:    []*schema.Column{TextResponseQuestionsColumns[5]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "textresponsequestion_lesson_id_number",
				Unique:  true,
				Columns: []*schema.Column{TextResponseQuestionsColumns[5], TextResponseQuestionsColumns[2]},
			},
		},
	}
	// TextResponseSubmissionsColumns holds the columns for the "text_response_submissions" table.
	TextResponseSubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "grades", Type: field.TypeJSON},
		{Name: "total_score", Type: field.TypeFloat64},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "fallback", Type: field.TypeBool, Default: false},
		{Name: "lesson_id", Type: field.TypeInt},
	}
	// TextResponseSubmissionsTable holds the schema information for the "text_response_submissions" table.
	TextResponseSubmissionsTable = &schema.Table{
		Name:       "text_response_submissions",
		Columns:    TextResponseSubmissionsColumns,
		PrimaryKey: []*schema.Column{TextResponseSubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "text_response_submissions_lessons_text_submissions",
				Columns:    []*schema.Column{TextResponseSubmissionsColumns[7]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// VideosColumns holds the columns for the "videos" table.
	VideosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "video_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "thumbnail_url", Type: field.TypeString, Default: ""},
		{Name: "channel_title", Type: field.TypeString, Default: ""},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "video_url", Type: field.TypeString},
		{Name: "like_count", Type: field.TypeUint64, Default: 0},
		{Name: "view_count", Type: field.TypeUint64, Default: 0},
		{Name: "lesson_id", Type: field.TypeInt},
	}
	// VideosTable holds the schema information for the "videos" table.
	VideosTable = &schema.Table{
		Name:       "videos",
		Columns:    VideosColumns,
		PrimaryKey: []*schema.Column{VideosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "videos_lessons_videos",
				Columns:    []*schema.Column{VideosColumns[12]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "video_lesson_id_video_id",
				Unique:  true,
				Columns: []*schema.Column{VideosColumns[12], VideosColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticlesTable,
		ChaptersTable,
		CourseGenerationsTable,
		ExternalArticlesTable,
		GenerationLogsTable,
		LlmRequestEventsTable,
		LessonsTable,
		ProjectsTable,
		ProjectFilesTable,
		QuizsTable,
		QuizAttemptsTable,
		TextResponseQuestionsTable,
		TextResponseSubmissionsTable,
		VideosTable,
	}
)

func init() {
	ArticlesTable.ForeignKeys[0].RefTable = LessonsTable
	ChaptersTable.ForeignKeys[0].RefTable = CourseGenerationsTable
	ExternalArticlesTable.ForeignKeys[0].RefTable = LessonsTable
	GenerationLogsTable.ForeignKeys[0].RefTable = CourseGenerationsTable
	LessonsTable.ForeignKeys[0].RefTable = ChaptersTable
	ProjectsTable.ForeignKeys[0].RefTable = LessonsTable
	ProjectFilesTable.ForeignKeys[0].RefTable = ProjectsTable
	QuizsTable.ForeignKeys[0].RefTable = LessonsTable
	QuizAttemptsTable.ForeignKeys[0].RefTable = QuizsTable
	TextResponseQuestionsTable.ForeignKeys[0].RefTable = LessonsTable
	TextResponseSubmissionsTable.ForeignKeys[0].RefTable = LessonsTable
	VideosTable.ForeignKeys[0].RefTable = LessonsTable
}
