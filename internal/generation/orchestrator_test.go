package generation

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/planner"
)

type harness struct {
	db      *memDB
	synth   *fakeSynth
	deps    Deps
	content func(ctx context.Context, l course.Lesson) (course.Artifact, error)
}

func newHarness(chapters int) *harness {
	h := &harness{db: newMemDB(), synth: &fakeSynth{}, content: okContent}
	gen := content.GeneratorFunc(func(ctx context.Context, l course.Lesson) (course.Artifact, error) {
		return h.content(ctx, l)
	})
	h.deps = Deps{
		Generations: h.db.Generations(),
		Artifacts:   h.db.Artifacts(),
		Logs:        h.db.Logs(),
		Chapters:    fakeChapters{specs: chapterSpecs(chapters)},
		Lessons:     lessonPlanFunc(twoLessons),
		Content: content.NewDispatcher(content.Registry{
			course.LessonArticle: gen,
			course.LessonQuiz:    gen,
		}, h.db.Artifacts()),
		FinalProject: h.synth,
		Config:       DefaultConfig(),
		Log:          logger.Nop(),
	}
	return h
}

func (h *harness) run(t *testing.T) (*Result, error) {
	t.Helper()
	return New(h.deps).StartGeneration(context.Background(), Request{Prompt: "Learn Go", ExperienceLevel: "some Python"})
}

func assertContiguous(t *testing.T, g *course.Generation) {
	t.Helper()
	for i, ch := range g.Chapters {
		assert.Equal(t, i+1, ch.Number, "chapter ordinal")
		for j, l := range ch.Lessons {
			assert.Equal(t, j+1, l.Number, "lesson ordinal in chapter %d", ch.Number)
		}
	}
}

func TestStartGeneration(t *testing.T) {
	h := newHarness(3)

	res, err := h.run(t)
	require.NoError(t, err)
	assert.Equal(t, 4, res.TotalChapters)
	assert.Equal(t, 7, res.TotalLessons)
	assert.True(t, res.FinalProject)
	require.Len(t, res.Chapters, 3)
	for i, cr := range res.Chapters {
		assert.Equal(t, i+1, cr.ChapterNumber)
		assert.Equal(t, 2, cr.LessonsCount)
		assert.NoError(t, cr.Err())
	}

	g, err := h.db.Generations().Get(context.Background(), res.CourseGenerationID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusCompleted, g.Status)
	assert.NotNil(t, g.CompletedAt)
	require.Len(t, g.Chapters, 4)
	assertContiguous(t, g)
	assert.Equal(t, "Final Project", g.Chapters[3].Name)

	lessons := 0
	for _, ch := range g.Chapters {
		lessons += len(ch.Lessons)
	}
	assert.Equal(t, g.TotalLessons, lessons)
	assert.Equal(t, g.TotalChapters, len(g.Chapters))

	data := g.CourseData
	assert.Equal(t, "Learn Go", data["original_prompt"])
	assert.Equal(t, "some Python", data["experience_level"])
	assert.Len(t, data["chapter_lesson_plans"], 3)
	assert.Empty(t, data["failed_chapters"])
	assert.NotNil(t, data["final_project"])

	steps := h.db.steps(res.CourseGenerationID)
	assert.Equal(t, "generation_started:started", steps[0])
	assert.Equal(t, "generation_completed:completed", steps[len(steps)-1])
	assert.Contains(t, steps, "chapter_generation:completed")
	assert.Contains(t, steps, "lesson_generation_chapter_2:completed")
	assert.Contains(t, steps, "final_project:completed")
}

func TestStartGeneration_LessonFailureIsolated(t *testing.T) {
	h := newHarness(2)
	h.content = func(ctx context.Context, l course.Lesson) (course.Artifact, error) {
		if strings.HasPrefix(l.Name, "Chapter 1") && l.Type == course.LessonQuiz {
			return nil, errors.New("quiz model returned garbage")
		}
		return okContent(ctx, l)
	}

	res, err := h.run(t)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Chapters[0].LessonsCount)
	assert.Equal(t, 1, res.Chapters[0].FailedLessons)
	assert.NoError(t, res.Chapters[0].Err())
	assert.Equal(t, 5, res.TotalLessons)

	g, err := h.db.Generations().Get(context.Background(), res.CourseGenerationID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusCompleted, g.Status)
	assert.Contains(t, h.db.steps(g.ID), "lesson_content_chapter_1_lesson_2:failed")
}

func TestStartGeneration_LessonPanicIsolated(t *testing.T) {
	h := newHarness(1)
	h.content = func(ctx context.Context, l course.Lesson) (course.Artifact, error) {
		if l.Number == 1 {
			panic("nil map")
		}
		return okContent(ctx, l)
	}

	res, err := h.run(t)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Chapters[0].LessonsCount)
	assert.Equal(t, 1, res.Chapters[0].FailedLessons)

	c, err := h.db.Artifacts().LessonContent(context.Background(), res.Chapters[0].ChapterID+2)
	require.NoError(t, err)
	assert.NotNil(t, c.Quiz)
}

func TestStartGeneration_ChapterPlannerFails(t *testing.T) {
	h := newHarness(0)
	h.deps.Chapters = fakeChapters{err: &planner.ChapterPlanningError{Err: errors.New("model offline")}}

	res, err := h.run(t)
	assert.Nil(t, res)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "chapter_generation", genErr.Step)
	assert.NotZero(t, genErr.CourseGenerationID)

	var planErr *planner.ChapterPlanningError
	assert.True(t, errors.As(err, &planErr))

	g, err := h.db.Generations().Get(context.Background(), genErr.CourseGenerationID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusFailed, g.Status)
	assert.Contains(t, h.db.steps(g.ID), "generation_error:failed")
	assert.Zero(t, h.synth.calls)
}

func TestStartGeneration_LessonPlannerFailsOneChapter(t *testing.T) {
	h := newHarness(3)
	h.deps.Lessons = lessonPlanFunc(func(ctx context.Context, ch course.ChapterSpec) ([]course.LessonSpec, error) {
		switch ch.Number {
		case 2:
			return nil, &planner.LessonPlanningError{ChapterNumber: 2, Err: errors.New("malformed")}
		case 3:
			panic("unexpected")
		}
		return twoLessons(ctx, ch)
	})

	res, err := h.run(t)
	require.NoError(t, err)
	assert.Error(t, res.Chapters[1].Err())
	assert.NotEmpty(t, res.Chapters[1].Error)
	assert.Contains(t, res.Chapters[2].Error, "panic")
	assert.Equal(t, 4, res.TotalChapters)
	assert.Equal(t, 3, res.TotalLessons)
	assert.Equal(t, []int{2, 3}, res.CourseData["failed_chapters"])

	g, err := h.db.Generations().Get(context.Background(), res.CourseGenerationID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusCompleted, g.Status)
	assert.Contains(t, h.db.steps(g.ID), "lesson_generation_chapter_2:failed")
}

func TestStartGeneration_FinalProjectFailureSkipped(t *testing.T) {
	h := newHarness(2)
	h.synth.err = errors.New("malformed project")

	res, err := h.run(t)
	require.NoError(t, err)
	assert.False(t, res.FinalProject)
	assert.Equal(t, 2, res.TotalChapters)
	assert.Equal(t, 4, res.TotalLessons)
	assert.Nil(t, res.CourseData["final_project"])
	assert.Contains(t, h.db.steps(res.CourseGenerationID), "final_project:failed")
}

func TestStartGeneration_Validation(t *testing.T) {
	h := newHarness(1)
	_, err := New(h.deps).StartGeneration(context.Background(), Request{Prompt: "   "})
	assert.ErrorIs(t, err, ErrEmptyPrompt)

	gens, err := h.db.Generations().List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, gens)
}

func TestStartGeneration_DefaultExperience(t *testing.T) {
	h := newHarness(1)
	res, err := New(h.deps).StartGeneration(context.Background(), Request{Prompt: "Learn Go"})
	require.NoError(t, err)
	assert.Equal(t, DefaultExperience, res.CourseData["experience_level"])
}

func TestStartGeneration_LogFailuresIgnored(t *testing.T) {
	h := newHarness(1)
	h.db.failAppend = true

	res, err := h.run(t)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalChapters)
}

func TestStartGeneration_BoundedWorkers(t *testing.T) {
	h := newHarness(6)
	h.deps.Config.MaxWorkers = 2

	var running, peak atomic.Int32
	h.deps.Lessons = lessonPlanFunc(func(ctx context.Context, ch course.ChapterSpec) ([]course.LessonSpec, error) {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		return twoLessons(ctx, ch)
	})

	res, err := h.run(t)
	require.NoError(t, err)
	assert.Equal(t, 12+1, res.TotalLessons)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.GreaterOrEqual(t, peak.Load(), int32(1))
}

func TestStartGeneration_ChapterTimeout(t *testing.T) {
	h := newHarness(1)
	h.deps.Config.ChapterTimeout = 30 * time.Millisecond
	h.content = func(ctx context.Context, l course.Lesson) (course.Artifact, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	res, err := h.run(t)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Chapters[0].LessonsCount)
	assert.Equal(t, 2, res.Chapters[0].FailedLessons)
	assert.Equal(t, 3, res.TotalLessons)
}

func TestReadAccessors(t *testing.T) {
	h := newHarness(1)
	o := New(h.deps)
	res, err := o.StartGeneration(context.Background(), Request{Prompt: "Learn Go"})
	require.NoError(t, err)

	g, err := o.GetCourse(context.Background(), res.CourseGenerationID)
	require.NoError(t, err)
	assert.Len(t, g.Chapters, 2)

	c, err := o.GetLessonArtifact(context.Background(), g.Chapters[0].Lessons[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, c.Article)

	list, err := o.ListGenerations(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	logs, err := o.Logs(context.Background(), res.CourseGenerationID)
	require.NoError(t, err)
	assert.NotEmpty(t, logs)
}
