// Package generation runs a course generation end to end: chapter
// planning, the bounded chapter fan-out, the capstone project and the
// final aggregate.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/planner"
	"github.com/abhisek/coursegen/internal/store"
)

var tracer = otel.Tracer("github.com/abhisek/coursegen/internal/generation")

// ChapterPlanner plans the chapters of a course.
type ChapterPlanner interface {
	Plan(ctx context.Context, prompt, experience string) ([]course.ChapterSpec, error)
}

// LessonPlanner plans the lessons of one chapter.
type LessonPlanner interface {
	Plan(ctx context.Context, ch course.ChapterSpec, outline, prompt string) ([]course.LessonSpec, error)
}

// LessonRunner generates and stores the content of one lesson.
type LessonRunner interface {
	Run(ctx context.Context, lesson course.Lesson) (course.Artifact, error)
}

// FinalProjectSynthesizer writes the capstone project.
type FinalProjectSynthesizer interface {
	Synthesize(ctx context.Context, in content.FinalProjectInput) (*content.FinalProject, error)
}

// Deps are the collaborators of an Orchestrator.
type Deps struct {
	Generations  store.GenerationRepo
	Artifacts    store.ArtifactRepo
	Logs         store.LogRepo
	Chapters     ChapterPlanner
	Lessons      LessonPlanner
	Content      LessonRunner
	FinalProject FinalProjectSynthesizer
	Config       Config
	Log          *logger.Logger
}

// Request starts a generation.
type Request struct {
	Prompt          string `json:"prompt"`
	ExperienceLevel string `json:"experience_level"`
}

// ChapterResult is what one chapter worker hands back to the orchestrator.
// Error is set only for structural failures; per-lesson content failures
// are logged and counted in FailedLessons.
type ChapterResult struct {
	ChapterNumber int                 `json:"chapter_number"`
	ChapterID     int                 `json:"chapter_id"`
	LessonPlan    []course.LessonSpec `json:"lesson_plan"`
	LessonsCount  int                 `json:"lessons_count"`
	FailedLessons int                 `json:"failed_lessons"`
	Error         string              `json:"error,omitempty"`

	err error
}

// Err returns the structural failure of the chapter, if any.
func (r ChapterResult) Err() error { return r.err }

// Result is the outcome of a completed generation.
type Result struct {
	CourseGenerationID int             `json:"course_generation_id"`
	TotalChapters      int             `json:"total_chapters"`
	TotalLessons       int             `json:"total_lessons"`
	Chapters           []ChapterResult `json:"result"`
	FinalProject       bool            `json:"final_project"`
	CourseData         map[string]any  `json:"course_data"`
}

// Orchestrator drives generation runs and serves their read side.
type Orchestrator struct {
	generations  store.GenerationRepo
	artifacts    store.ArtifactRepo
	logs         store.LogRepo
	chapters     ChapterPlanner
	lessons      LessonPlanner
	content      LessonRunner
	finalProject FinalProjectSynthesizer
	cfg          Config
	log          *logger.Logger
}

// New creates an orchestrator.
func New(d Deps) *Orchestrator {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Config.MaxWorkers < 1 {
		d.Config.MaxWorkers = 1
	}
	return &Orchestrator{
		generations:  d.Generations,
		artifacts:    d.Artifacts,
		logs:         d.Logs,
		chapters:     d.Chapters,
		lessons:      d.Lessons,
		content:      d.Content,
		finalProject: d.FinalProject,
		cfg:          d.Config,
		log:          d.Log,
	}
}

// StartGeneration runs a whole generation synchronously. It returns the
// aggregate on success. Fatal failures mark the run failed and come back
// as a *GenerationError carrying the run id.
func (o *Orchestrator) StartGeneration(ctx context.Context, req Request) (res *Result, err error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	experience := strings.TrimSpace(req.ExperienceLevel)
	if experience == "" {
		experience = DefaultExperience
	}

	ctx, span := tracer.Start(ctx, "generation.run")
	defer func() {
		endSpan(span, err)
	}()

	gen, err := o.generations.Create(ctx, prompt, experience)
	if err != nil {
		return nil, &GenerationError{Step: "create", Err: err}
	}
	span.SetAttributes(attribute.Int("course_generation_id", gen.ID))
	log := o.log.With("course_generation_id", gen.ID)
	log.Info("generation started")
	o.record(ctx, gen.ID, "generation_started", course.LogStarted, course.LevelInfo,
		"Course generation started", map[string]any{"prompt": prompt})

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = o.fail(ctx, gen.ID, "generation", fmt.Errorf("panic: %v", r))
		}
	}()

	o.record(ctx, gen.ID, "chapter_generation", course.LogInProgress, course.LevelInfo,
		"Planning chapters", nil)
	specs, err := o.chapters.Plan(ctx, prompt, experience)
	if err != nil {
		return nil, o.fail(ctx, gen.ID, "chapter_generation", err)
	}
	chapters, err := o.generations.CreateChapters(ctx, gen.ID, specs)
	if err != nil {
		return nil, o.fail(ctx, gen.ID, "chapter_generation", fmt.Errorf("persist chapters: %w", err))
	}
	o.record(ctx, gen.ID, "chapter_generation", course.LogCompleted, course.LevelInfo,
		fmt.Sprintf("Planned %d chapters", len(chapters)), map[string]any{"chapters": specs})

	results := o.fanOut(ctx, gen.ID, chapters, planner.Outline(specs), prompt)

	final := o.runFinalProject(ctx, gen.ID, content.FinalProjectInput{
		Prompt:     prompt,
		Experience: experience,
		Chapters:   specs,
	})

	res = aggregate(gen.ID, prompt, experience, specs, results, final)
	if err := o.generations.Complete(ctx, gen.ID, res.TotalChapters, res.TotalLessons, res.CourseData); err != nil {
		return nil, o.fail(ctx, gen.ID, "generation_completed", err)
	}

	log.Info("generation completed", "chapters", res.TotalChapters, "lessons", res.TotalLessons)
	o.record(ctx, gen.ID, "generation_completed", course.LogCompleted, course.LevelInfo,
		"Course generation completed", map[string]any{
			"total_chapters": res.TotalChapters,
			"total_lessons":  res.TotalLessons,
		})
	return res, nil
}

// fanOut runs one worker per chapter on a bounded pool and waits for all
// of them. Results land in per-index slots; workers share nothing else.
func (o *Orchestrator) fanOut(ctx context.Context, generationID int, chapters []course.Chapter, outline, prompt string) []ChapterResult {
	results := make([]ChapterResult, len(chapters))

	var g errgroup.Group
	g.SetLimit(max(1, min(len(chapters), o.cfg.MaxWorkers)))
	for i, ch := range chapters {
		g.Go(func() error {
			cctx := ctx
			if o.cfg.ChapterTimeout > 0 {
				var cancel context.CancelFunc
				cctx, cancel = context.WithTimeout(ctx, o.cfg.ChapterTimeout)
				defer cancel()
			}
			results[i] = o.runChapter(cctx, generationID, ch, outline, prompt)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// finalOutcome is the capstone as persisted.
type finalOutcome struct {
	project *content.FinalProject
	chapter *course.Chapter
}

// runFinalProject is additive: any failure is logged and the course
// completes without a capstone.
func (o *Orchestrator) runFinalProject(ctx context.Context, generationID int, in content.FinalProjectInput) *finalOutcome {
	if o.finalProject == nil {
		return nil
	}
	ctx, span := tracer.Start(ctx, "generation.final_project")
	var err error
	defer func() { endSpan(span, err) }()

	o.record(ctx, generationID, "final_project", course.LogInProgress, course.LevelInfo,
		"Generating final project", nil)

	fp, err := o.finalProject.Synthesize(ctx, in)
	if err != nil {
		o.log.Warn("final project failed", "course_generation_id", generationID, "error", err)
		o.record(ctx, generationID, "final_project", course.LogFailed, course.LevelWarning,
			"Final project skipped: "+err.Error(), nil)
		return nil
	}

	ch, err := o.generations.AddFinalProject(ctx, generationID, fp.Chapter, fp.Lesson, fp.Project)
	if err != nil {
		o.log.Warn("final project not saved", "course_generation_id", generationID, "error", err)
		o.record(ctx, generationID, "final_project", course.LogFailed, course.LevelWarning,
			"Final project not saved: "+err.Error(), nil)
		return nil
	}

	o.record(ctx, generationID, "final_project", course.LogCompleted, course.LevelInfo,
		"Final project added", map[string]any{
			"chapter_number":   ch.Number,
			"files":            len(fp.Project.Files),
			"lesson_fallback":  fp.LessonFallback,
			"project_fallback": fp.ProjectFallback,
		})
	return &finalOutcome{project: fp, chapter: ch}
}

// fail marks the run failed and builds the error returned to the caller.
// It writes with a context detached from cancellation so a cancelled run
// still reaches a terminal state.
func (o *Orchestrator) fail(ctx context.Context, generationID int, step string, cause error) error {
	ctx = context.WithoutCancel(ctx)
	o.log.Error("generation failed", "course_generation_id", generationID, "step", step, "error", cause)
	o.record(ctx, generationID, "generation_error", course.LogFailed, course.LevelError,
		cause.Error(), map[string]any{"step": step})
	if err := o.generations.Fail(ctx, generationID); err != nil && !errors.Is(err, store.ErrInvalidTransition) {
		o.log.Warn("failed to mark generation failed", "course_generation_id", generationID, "error", err)
	}
	return &GenerationError{CourseGenerationID: generationID, Step: step, Err: cause}
}

// record appends to the audit trail, also after the run's context is done.
// Write failures are logged and dropped.
func (o *Orchestrator) record(ctx context.Context, generationID int, step string, status course.LogStatus, level course.LogLevel, msg string, data map[string]any) {
	err := o.logs.Append(context.WithoutCancel(ctx), course.LogEntry{
		GenerationID: generationID,
		Step:         step,
		Status:       status,
		Level:        level,
		Message:      msg,
		Data:         data,
	})
	if err != nil {
		o.log.Warn("failed to write generation log", "course_generation_id", generationID, "step", step, "error", err)
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
