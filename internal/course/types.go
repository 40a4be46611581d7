package course

import (
	"fmt"
	"time"
)

// DifficultyUnset is stored when the planner gave no usable difficulty.
const DifficultyUnset = -1

// Status is the lifecycle state of a course generation.
type Status string

const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether s may move to next. Status only moves
// forward: pending → generating → {completed | failed}.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusGenerating || next == StatusFailed
	case StatusGenerating:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}

// Generation is one course generation run and the root of its tree.
type Generation struct {
	ID              int            `json:"id"`
	Prompt          string         `json:"prompt"`
	ExperienceLevel string         `json:"experience_level"`
	Status          Status         `json:"status"`
	TotalChapters   int            `json:"total_chapters"`
	TotalLessons    int            `json:"total_lessons"`
	CourseData      map[string]any `json:"course_data,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`

	Chapters []Chapter `json:"chapters,omitempty"`
}

// ChapterSpec is a chapter as planned by the LLM, before persistence.
type ChapterSpec struct {
	Number      int    `json:"chapter_number"`
	Name        string `json:"chapter_name"`
	Description string `json:"chapter_description"`
	Difficulty  int    `json:"chapter_difficulty"`
}

// OutlineLine renders the chapter as one line of a course outline.
func (c ChapterSpec) OutlineLine() string {
	return fmt.Sprintf("Chapter %d: %s (Difficulty: %d/10)", c.Number, c.Name, c.Difficulty)
}

// LessonSpec is a lesson as planned by the LLM, before persistence.
type LessonSpec struct {
	Number      int        `json:"lesson_number"`
	Type        LessonType `json:"lesson_type"`
	TypeID      int        `json:"lesson_type_ID"`
	Name        string     `json:"lesson_name"`
	Description string     `json:"lesson_description"`
	Details     string     `json:"lesson_details"`
	Goals       string     `json:"lesson_goals"`
	Guidelines  string     `json:"lesson_guidelines"`
}

// Chapter is a persisted chapter.
type Chapter struct {
	ID           int    `json:"id"`
	GenerationID int    `json:"course_generation_id"`
	Number       int    `json:"chapter_number"`
	Name         string `json:"chapter_name"`
	Description  string `json:"chapter_description"`
	Difficulty   int    `json:"chapter_difficulty"`

	Lessons []Lesson `json:"lessons,omitempty"`
}

// Spec returns the planning view of the chapter.
func (c Chapter) Spec() ChapterSpec {
	return ChapterSpec{
		Number:      c.Number,
		Name:        c.Name,
		Description: c.Description,
		Difficulty:  c.Difficulty,
	}
}

// Lesson is a persisted lesson.
type Lesson struct {
	ID          int        `json:"id"`
	ChapterID   int        `json:"chapter_id"`
	Number      int        `json:"lesson_number"`
	Type        LessonType `json:"lesson_type"`
	TypeID      int        `json:"lesson_type_ID"`
	Name        string     `json:"lesson_name"`
	Description string     `json:"lesson_description"`
	Details     string     `json:"lesson_details"`
	Goals       string     `json:"lesson_goals"`
	Guidelines  string     `json:"lesson_guidelines"`
	Complete    bool       `json:"is_complete"`
}

// Spec returns the planning view of the lesson.
func (l Lesson) Spec() LessonSpec {
	return LessonSpec{
		Number:      l.Number,
		Type:        l.Type,
		TypeID:      l.TypeID,
		Name:        l.Name,
		Description: l.Description,
		Details:     l.Details,
		Goals:       l.Goals,
		Guidelines:  l.Guidelines,
	}
}

// LogStatus is the status of an audit log entry.
type LogStatus string

const (
	LogStarted    LogStatus = "started"
	LogInProgress LogStatus = "in_progress"
	LogCompleted  LogStatus = "completed"
	LogFailed     LogStatus = "failed"
)

// LogLevel is the severity of an audit log entry.
type LogLevel string

const (
	LevelDebug   LogLevel = "debug"
	LevelInfo    LogLevel = "info"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
)

// LogEntry is one append-only audit trail record of a generation run.
type LogEntry struct {
	ID           int            `json:"id"`
	GenerationID int            `json:"course_generation_id"`
	Step         string         `json:"step"`
	Status       LogStatus      `json:"status"`
	Level        LogLevel       `json:"level"`
	Message      string         `json:"message"`
	Data         map[string]any `json:"data,omitempty"`
	CreatedAt    time.Time      `json:"timestamp"`
}
