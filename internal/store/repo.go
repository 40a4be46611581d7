package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/coursegen/internal/course"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a status change would leave a
	// terminal state or skip backwards.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrArtifactMismatch is returned when an artifact does not match the
	// type of the lesson it is attached to.
	ErrArtifactMismatch = errors.New("artifact does not match lesson type")
)

// GenerationRepo persists the course tree: generations, chapters, lessons.
type GenerationRepo interface {
	// Create inserts a generation in the generating state.
	Create(ctx context.Context, prompt, experienceLevel string) (*course.Generation, error)

	// Get returns a generation with its chapters and lessons, ordered by number.
	Get(ctx context.Context, id int) (*course.Generation, error)

	// List returns the most recent generations without children.
	List(ctx context.Context, limit int) ([]course.Generation, error)

	// Complete moves a generating run to completed, writing totals and the
	// aggregate snapshot in one transaction.
	Complete(ctx context.Context, id, totalChapters, totalLessons int, data map[string]any) error

	// Fail moves a non-terminal run to failed.
	Fail(ctx context.Context, id int) error

	// CreateChapters inserts all planned chapters in one transaction.
	CreateChapters(ctx context.Context, generationID int, specs []course.ChapterSpec) ([]course.Chapter, error)

	// CreateLessons inserts all planned lessons of a chapter in one transaction.
	CreateLessons(ctx context.Context, chapterID int, specs []course.LessonSpec) ([]course.Lesson, error)

	// AddFinalProject appends the capstone chapter, its single lesson and
	// project atomically. The chapter number is max(existing)+1 and the
	// lesson number is 1, whatever the specs say.
	AddFinalProject(ctx context.Context, generationID int, ch course.ChapterSpec, l course.LessonSpec, p *course.Project) (*course.Chapter, error)

	// GetLesson returns one lesson.
	GetLesson(ctx context.Context, id int) (*course.Lesson, error)

	// MarkLessonComplete sets the lesson's completion flag.
	MarkLessonComplete(ctx context.Context, lessonID int) error
}

// ArtifactRepo persists lesson content.
type ArtifactRepo interface {
	// SaveArtifact attaches a to the lesson. Single-row artifacts replace any
	// previous one, text question sets are replaced wholesale, and videos are
	// upserted by (lesson, video id).
	SaveArtifact(ctx context.Context, lessonID int, a course.Artifact) error

	// LessonContent returns the lesson with whatever artifact it has.
	LessonContent(ctx context.Context, lessonID int) (*course.LessonContent, error)

	// Quiz returns a quiz by id.
	Quiz(ctx context.Context, quizID int) (*course.Quiz, error)

	// TextQuestions returns a lesson's open questions ordered by number.
	TextQuestions(ctx context.Context, lessonID int) ([]course.TextQuestion, error)
}

// SubmissionRepo persists graded submissions. Records are immutable.
type SubmissionRepo interface {
	SaveQuizAttempt(ctx context.Context, a *course.QuizAttempt) error
	SaveTextSubmission(ctx context.Context, s *course.TextSubmission) error
}

// LogRepo is the append-only audit trail of generation runs.
type LogRepo interface {
	Append(ctx context.Context, e course.LogEntry) error
	List(ctx context.Context, generationID int) ([]course.LogEntry, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // exact purpose match
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM calls by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls by model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
