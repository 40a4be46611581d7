// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the lesson type in the database.
	Label = "lesson"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChapterID holds the string denoting the chapter_id field in the database.
	FieldChapterID = "chapter_id"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldLessonType holds the string denoting the lesson_type field in the database.
	FieldLessonType = "lesson_type"
	// FieldLessonTypeID holds the string denoting the lesson_type_id field in the database.
	FieldLessonTypeID = "lesson_type_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldGoals holds the string denoting the goals field in the database.
	FieldGoals = "goals"
	// FieldGuidelines holds the string denoting the guidelines field in the database.
	FieldGuidelines = "guidelines"
	// FieldIsComplete holds the string denoting the is_complete field in the database.
	FieldIsComplete = "is_complete"
	// EdgeChapter holds the string denoting the chapter edge name in mutations.
	EdgeChapter = "chapter"
	// EdgeQuiz holds the string denoting the quiz edge name in mutations.
	EdgeQuiz = "quiz"
	// EdgeArticle holds the string denoting the article edge name in mutations.
	EdgeArticle = "article"
	// EdgeExternalArticle holds the string denoting the external_article edge name in mutations.
	EdgeExternalArticle = "external_article"
	// EdgeVideos holds the string denoting the videos edge name in mutations.
	EdgeVideos = "videos"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeTextQuestions holds the string denoting the text_questions edge name in mutations.
	EdgeTextQuestions = "text_questions"
	// EdgeTextSubmissions holds the string denoting the text_submissions edge name in mutations.
	EdgeTextSubmissions = "text_submissions"
	// Table holds the table name of the lesson in the database.
	Table = "lessons"
	// ChapterTable is the table that holds the chapter relation/edge.
	ChapterTable = "lessons"
	// ChapterInverseTable is the table name for the Chapter entity.
	// It exists in this package in order to avoid circular dependency with the "chapter" package.
	ChapterInverseTable = "chapters"
	// ChapterColumn is the table column denoting the chapter relation/edge.
	ChapterColumn = "chapter_id"
	// QuizTable is the table that holds the quiz relation/edge.
	QuizTable = "quizs"
	// QuizInverseTable is the table name for the Quiz entity.
	// It exists in this package in order to avoid circular dependency with the "quiz" package.
	QuizInverseTable = "quizs"
	// QuizColumn is the table column denoting the quiz relation/edge.
	QuizColumn = "lesson_id"
	// ArticleTable is the table that holds the article relation/edge.
	ArticleTable = "articles"
	// ArticleInverseTable is the table name for the Article entity.
	// It exists in this package in order to avoid circular dependency with the "article" package.
	ArticleInverseTable = "articles"
	// ArticleColumn is the table column denoting the article relation/edge.
	ArticleColumn = "lesson_id"
	// ExternalArticleTable is the table that holds the external_article relation/edge.
	ExternalArticleTable = "external_articles"
	// ExternalArticleInverseTable is the table name for the ExternalArticle entity.
	// It exists in this package in order to avoid circular dependency with the "externalarticle" package.
	ExternalArticleInverseTable = "external_articles"
	// ExternalArticleColumn is the table column denoting the external_article relation/edge.
	ExternalArticleColumn = "lesson_id"
	// VideosTable is the table that holds the videos relation/edge.
	VideosTable = "videos"
	// VideosInverseTable is the table name for the Video entity.
	// It exists in this package in order to avoid circular dependency with the "video" package.
	VideosInverseTable = "videos"
	// VideosColumn is the table column denoting the videos relation/edge.
	VideosColumn = "lesson_id"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "projects"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "lesson_id"
	// TextQuestionsTable is the table that holds the text_questions relation/edge.
	TextQuestionsTable = "text_response_questions"
	// TextQuestionsInverseTable is the table name for the TextResponseQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "textresponsequestion" package.
	TextQuestionsInverseTable = "text_response_questions"
	// TextQuestionsColumn is the table column denoting the text_questions relation/edge.
	TextQuestionsColumn = "lesson_id"
	// TextSubmissionsTable is the table that holds the text_submissions relation/edge.
	TextSubmissionsTable = "text_response_submissions"
	// TextSubmissionsInverseTable is the table name for the TextResponseSubmission entity.
	// It exists in this package in order to avoid circular dependency with the "textresponsesubmission" package.
	TextSubmissionsInverseTable = "text_response_submissions"
	// TextSubmissionsColumn is the table column denoting the text_submissions relation/edge.
	TextSubmissionsColumn = "lesson_id"
)

// Columns holds all SQL columns for lesson fields.
var Columns = []string{
	FieldID,
	FieldChapterID,
	FieldNumber,
	FieldLessonType,
	FieldLessonTypeID,
	FieldName,
	FieldDescription,
	FieldDetails,
	FieldGoals,
	FieldGuidelines,
	FieldIsComplete,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NumberValidator is a validator for the "number" field. It is called by the builders before save.
	NumberValidator func(int) error
	// DefaultLessonTypeID holds the default value on creation for the "lesson_type_id" field.
	DefaultLessonTypeID int
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultDetails holds the default value on creation for the "details" field.
	DefaultDetails string
	// DefaultGoals holds the default value on creation for the "goals" field.
	DefaultGoals string
	// DefaultGuidelines holds the default value on creation for the "guidelines" field.
	DefaultGuidelines string
	// DefaultIsComplete holds the default value on creation for the "is_complete" field.
	DefaultIsComplete bool
)

// OrderOption defines the ordering options for the Lesson queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChapterID orders the results by the chapter_id field.
func ByChapterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterID, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// ByLessonType orders the results by the lesson_type field.
func ByLessonType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonType, opts...).ToFunc()
}

// ByLessonTypeID orders the results by the lesson_type_id field.
func ByLessonTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonTypeID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDetails orders the results by the details field.
func ByDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetails, opts...).ToFunc()
}

// ByGoals orders the results by the goals field.
func ByGoals(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoals, opts...).ToFunc()
}

// ByGuidelines orders the results by the guidelines field.
func ByGuidelines(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuidelines, opts...).ToFunc()
}

// ByIsComplete orders the results by the is_complete field.
func ByIsComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsComplete, opts...).ToFunc()
}

// ByChapterField orders the results by chapter field.
func ByChapterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChapterStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuizField orders the results by quiz field.
func ByQuizField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuizStep(), sql.OrderByField(field, opts...))
	}
}

// ByArticleField orders the results by article field.
func ByArticleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArticleStep(), sql.OrderByField(field, opts...))
	}
}

// ByExternalArticleField orders the results by external_article field.
func ByExternalArticleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExternalArticleStep(), sql.OrderByField(field, opts...))
	}
}

// ByVideosCount orders the results by videos count.
func ByVideosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVideosStep(), opts...)
	}
}

// ByVideos orders the results by videos terms.
func ByVideos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVideosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByTextQuestionsCount orders the results by text_questions count.
func ByTextQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTextQuestionsStep(), opts...)
	}
}

// ByTextQuestions orders the results by text_questions terms.
func ByTextQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTextQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTextSubmissionsCount orders the results by text_submissions count.
func ByTextSubmissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTextSubmissionsStep(), opts...)
	}
}

// ByTextSubmissions orders the results by text_submissions terms.
func ByTextSubmissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTextSubmissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChapterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChapterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChapterTable, ChapterColumn),
	)
}
func newQuizStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuizInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, QuizTable, QuizColumn),
	)
}
func newArticleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArticleInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ArticleTable, ArticleColumn),
	)
}
func newExternalArticleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExternalArticleInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ExternalArticleTable, ExternalArticleColumn),
	)
}
func newVideosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VideosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VideosTable, VideosColumn),
	)
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ProjectTable, ProjectColumn),
	)
}
func newTextQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TextQuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TextQuestionsTable, TextQuestionsColumn),
	)
}
func newTextSubmissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TextSubmissionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TextSubmissionsTable, TextSubmissionsColumn),
	)
}
