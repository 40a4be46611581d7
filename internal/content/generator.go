// Package content produces the per-lesson artifacts of a generated course:
// quizzes, articles, videos, exercises, open questions and the capstone
// project.
package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/search"
)

// ErrNoGenerator is returned for lesson types that never get content.
var ErrNoGenerator = errors.New("no content generator for lesson type")

// Generator produces the artifact of one lesson.
type Generator interface {
	// Generate returns the artifact for lesson. A nil artifact with a nil
	// error means the lesson is intentionally left without one.
	Generate(ctx context.Context, lesson course.Lesson) (course.Artifact, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, lesson course.Lesson) (course.Artifact, error)

func (f GeneratorFunc) Generate(ctx context.Context, lesson course.Lesson) (course.Artifact, error) {
	return f(ctx, lesson)
}

// Registry maps lesson types to their generator.
type Registry map[course.LessonType]Generator

// Lookup returns the generator for t.
func (r Registry) Lookup(t course.LessonType) (Generator, bool) {
	g, ok := r[t]
	return g, ok && g != nil
}

// Deps are the collaborators of the built-in generators. Nil searchers
// are allowed: the article generator then writes without retrieval, and
// the web and video generators fail with search.ErrNotConfigured.
type Deps struct {
	Provider llm.Provider
	Web      search.WebSearcher
	Vector   search.VectorSearcher
	Video    search.VideoSearcher
	Config   Config
	Log      *logger.Logger
}

// NewRegistry wires every lesson type that has content. Summary lessons
// share the article generator. Fill-in-blank, final-project and unknown
// lessons are absent.
func NewRegistry(d Deps) Registry {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	article := NewArticleGenerator(d.Provider, d.Vector, d.Config, d.Log)
	return Registry{
		course.LessonVideo:           NewVideoGenerator(d.Provider, d.Video, d.Config, d.Log),
		course.LessonArticle:         article,
		course.LessonSummary:         article,
		course.LessonExternalArticle: NewExternalArticleGenerator(d.Provider, d.Web, d.Config, d.Log),
		course.LessonExercise:        NewExerciseGenerator(d.Provider, d.Config),
		course.LessonQuiz:            NewQuizGenerator(d.Provider, d.Config),
		course.LessonTextResponse:    NewTextResponseGenerator(d.Provider, d.Config),
	}
}

// ArtifactSaver persists a lesson's artifact.
type ArtifactSaver interface {
	SaveArtifact(ctx context.Context, lessonID int, a course.Artifact) error
}

// LessonError is a content failure scoped to one lesson.
type LessonError struct {
	LessonID     int
	LessonNumber int
	Type         course.LessonType
	Err          error
}

func (e *LessonError) Error() string {
	return fmt.Sprintf("lesson %d (%s): %v", e.LessonNumber, e.Type, e.Err)
}

func (e *LessonError) Unwrap() error { return e.Err }

// Dispatcher runs the generator of a lesson's type and persists the result.
type Dispatcher struct {
	registry Registry
	saver    ArtifactSaver
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(registry Registry, saver ArtifactSaver) *Dispatcher {
	return &Dispatcher{registry: registry, saver: saver}
}

// Run generates and saves the lesson's artifact. It returns ErrNoGenerator
// for types without content, a nil artifact when the generator chose to
// produce none, and a *LessonError for any generation or save failure.
func (d *Dispatcher) Run(ctx context.Context, lesson course.Lesson) (course.Artifact, error) {
	gen, ok := d.registry.Lookup(lesson.Type)
	if !ok {
		return nil, ErrNoGenerator
	}

	artifact, err := gen.Generate(ctx, lesson)
	if err != nil {
		return nil, d.lessonError(lesson, err)
	}
	if artifact == nil {
		return nil, nil
	}

	if err := d.saver.SaveArtifact(ctx, lesson.ID, artifact); err != nil {
		return nil, d.lessonError(lesson, fmt.Errorf("save artifact: %w", err))
	}
	return artifact, nil
}

func (d *Dispatcher) lessonError(lesson course.Lesson, err error) *LessonError {
	return &LessonError{
		LessonID:     lesson.ID,
		LessonNumber: lesson.Number,
		Type:         lesson.Type,
		Err:          err,
	}
}
