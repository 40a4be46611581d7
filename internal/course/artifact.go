package course

import "time"

// Artifact is the content payload produced for one lesson. The set of
// implementations is closed and mirrors the lesson-type vocabulary.
type Artifact interface {
	// Kind is the lesson type the artifact belongs to.
	Kind() LessonType
	isArtifact()
}

// QuizQuestion is one multiple-choice question keyed A to D.
type QuizQuestion struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

// Quiz is the artifact of a multiple-choice-quiz lesson.
type Quiz struct {
	ID        int            `json:"id,omitempty"`
	LessonID  int            `json:"lesson_id,omitempty"`
	Questions []QuizQuestion `json:"questions"`
}

func (*Quiz) Kind() LessonType { return LessonQuiz }
func (*Quiz) isArtifact()      {}

// Article is a generated markdown article. Summary lessons use it too.
type Article struct {
	ID       int    `json:"id,omitempty"`
	LessonID int    `json:"lesson_id,omitempty"`
	Content  string `json:"content"`
}

func (*Article) Kind() LessonType { return LessonArticle }
func (*Article) isArtifact()      {}

// ExternalArticle references one article found by web search.
type ExternalArticle struct {
	ID       int     `json:"id,omitempty"`
	LessonID int     `json:"lesson_id,omitempty"`
	URL      string  `json:"url"`
	Title    string  `json:"title,omitempty"`
	Score    float64 `json:"score,omitempty"`
}

func (*ExternalArticle) Kind() LessonType { return LessonExternalArticle }
func (*ExternalArticle) isArtifact()      {}

// Video is one video reference attached to a lesson.
type Video struct {
	ID           int        `json:"id,omitempty"`
	LessonID     int        `json:"lesson_id,omitempty"`
	VideoID      string     `json:"video_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	ChannelTitle string     `json:"channel_title,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	URL          string     `json:"video_url"`
	LikeCount    uint64     `json:"like_count"`
	ViewCount    uint64     `json:"view_count"`
}

func (*Video) Kind() LessonType { return LessonVideo }
func (*Video) isArtifact()      {}

// GradingMethod says how a programming exercise is checked.
type GradingMethod string

const (
	GradingAIReview         GradingMethod = "ai_review"
	GradingTerminalMatching GradingMethod = "terminal_matching"
)

// ProjectFile is one starter file of a programming exercise.
type ProjectFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Project is a programming exercise: starter files plus grading rules.
type Project struct {
	ID             int           `json:"id,omitempty"`
	LessonID       int           `json:"lesson_id,omitempty"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	GradingMethod  GradingMethod `json:"grading_method"`
	ExpectedOutput string        `json:"expected_output,omitempty"`
	IsFinalProject bool          `json:"is_final_project"`
	Files          []ProjectFile `json:"files"`
}

func (*Project) Kind() LessonType { return LessonExercise }
func (*Project) isArtifact()      {}

// TextQuestion is one open question with its reference answer.
type TextQuestion struct {
	ID              int    `json:"id,omitempty"`
	Number          int    `json:"question_number"`
	Question        string `json:"question"`
	ReferenceAnswer string `json:"reference_answer"`
}

// TextQuestionSet is the artifact of a text-response lesson.
type TextQuestionSet struct {
	LessonID  int            `json:"lesson_id,omitempty"`
	Questions []TextQuestion `json:"questions"`
}

func (*TextQuestionSet) Kind() LessonType { return LessonTextResponse }
func (*TextQuestionSet) isArtifact()      {}

// LessonContent is the read view of a lesson and whatever artifact it has.
type LessonContent struct {
	Lesson        Lesson           `json:"lesson"`
	Quiz          *Quiz            `json:"quiz,omitempty"`
	Article       *Article         `json:"article,omitempty"`
	External      *ExternalArticle `json:"external_article,omitempty"`
	Videos        []Video          `json:"videos,omitempty"`
	Project       *Project         `json:"project,omitempty"`
	TextQuestions []TextQuestion   `json:"text_questions,omitempty"`
}

// Empty reports whether no artifact is attached.
func (c *LessonContent) Empty() bool {
	return c.Quiz == nil && c.Article == nil && c.External == nil &&
		len(c.Videos) == 0 && c.Project == nil && len(c.TextQuestions) == 0
}

// Accepts reports whether an artifact of a's kind may be attached to a
// lesson of type t. Summary lessons carry articles.
func Accepts(t LessonType, a Artifact) bool {
	if a == nil {
		return false
	}
	if a.Kind() == t {
		return true
	}
	return t == LessonSummary && a.Kind() == LessonArticle
}
