package course

import (
	"strings"
)

// LessonType is the closed vocabulary of lesson kinds a lesson plan may use.
type LessonType string

const (
	LessonVideo           LessonType = "video"
	LessonArticle         LessonType = "ai-article"
	LessonExternalArticle LessonType = "external-article"
	LessonSummary         LessonType = "summary"
	LessonExercise        LessonType = "interactive-exercise"
	LessonQuiz            LessonType = "multiple-choice-quiz"
	LessonTextResponse    LessonType = "text-response"
	LessonFillInBlank     LessonType = "fill-in-blank"
	LessonFinalProject    LessonType = "final-project"

	// LessonUnknown marks a lesson whose tag could not be resolved. Such
	// lessons are persisted but never get content.
	LessonUnknown LessonType = "unknown"
)

// Category groups lesson types into learning (introduces a topic) and
// practice (applies a topic already introduced).
type Category string

const (
	CategoryLearning Category = "learning"
	CategoryPractice Category = "practice"
)

type lessonTypeInfo struct {
	id       int
	alias    string
	display  string
	category Category
}

// Canonical id mapping. The planner prompt advertises exactly these ids.
var lessonTypes = map[LessonType]lessonTypeInfo{
	LessonVideo:           {1, "vid", "Video", CategoryLearning},
	LessonArticle:         {2, "art", "AI Generated Article", CategoryLearning},
	LessonExternalArticle: {3, "ext", "External Article Reading", CategoryLearning},
	LessonSummary:         {4, "sum", "Conclusion and Summary", CategoryLearning},
	LessonExercise:        {5, "int", "Interactive Programming Exercise", CategoryPractice},
	LessonQuiz:            {6, "mcq", "Multiple Choice Quiz", CategoryPractice},
	LessonTextResponse:    {7, "txt", "Text Response", CategoryPractice},
	LessonFillInBlank:     {8, "fib", "Fill in the Blank", CategoryPractice},
	LessonFinalProject:    {9, "pro", "Final Project", CategoryPractice},
}

// AllLessonTypes returns the vocabulary ordered by id.
func AllLessonTypes() []LessonType {
	return []LessonType{
		LessonVideo,
		LessonArticle,
		LessonExternalArticle,
		LessonSummary,
		LessonExercise,
		LessonQuiz,
		LessonTextResponse,
		LessonFillInBlank,
		LessonFinalProject,
	}
}

// ID returns the numeric id for the type, or 0 for unknown types.
func (t LessonType) ID() int {
	return lessonTypes[t].id
}

// Alias returns the short tag (e.g. "mcq").
func (t LessonType) Alias() string {
	return lessonTypes[t].alias
}

// DisplayName returns a human-readable name.
func (t LessonType) DisplayName() string {
	if info, ok := lessonTypes[t]; ok {
		return info.display
	}
	return "Unknown"
}

// Category reports whether the type is a learning or a practice lesson.
func (t LessonType) Category() Category {
	return lessonTypes[t].category
}

// Valid reports whether t belongs to the vocabulary.
func (t LessonType) Valid() bool {
	_, ok := lessonTypes[t]
	return ok
}

// LessonTypeFromID resolves a numeric id.
func LessonTypeFromID(id int) (LessonType, bool) {
	for t, info := range lessonTypes {
		if info.id == id {
			return t, true
		}
	}
	return LessonUnknown, false
}

// ParseLessonType resolves a tag emitted by the planner. Canonical names,
// short aliases and display names are accepted, case-insensitively.
func ParseLessonType(tag string) (LessonType, bool) {
	norm := strings.ToLower(strings.TrimSpace(tag))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	if norm == "" {
		return LessonUnknown, false
	}
	for t, info := range lessonTypes {
		if norm == string(t) || norm == info.alias {
			return t, true
		}
		if norm == strings.ReplaceAll(strings.ToLower(info.display), " ", "-") {
			return t, true
		}
	}
	return LessonUnknown, false
}

// ResolveLessonType picks a type from a tag, falling back to the numeric id
// when the tag is not recognised.
func ResolveLessonType(tag string, id int) LessonType {
	if t, ok := ParseLessonType(tag); ok {
		return t
	}
	if t, ok := LessonTypeFromID(id); ok {
		return t
	}
	return LessonUnknown
}
