package generation

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/course"
)

// runChapter plans and persists one chapter's lessons, then generates
// their content one at a time. Only planning or persisting the plan can
// fail the chapter; a panic is recovered into a chapter failure that
// keeps the count of lessons already stored.
func (o *Orchestrator) runChapter(ctx context.Context, generationID int, ch course.Chapter, outline, prompt string) (res ChapterResult) {
	res = ChapterResult{ChapterNumber: ch.Number, ChapterID: ch.ID}
	step := fmt.Sprintf("lesson_generation_chapter_%d", ch.Number)
	log := o.log.With("course_generation_id", generationID, "chapter", ch.Number)

	ctx, span := tracer.Start(ctx, "generation.chapter")
	span.SetAttributes(attribute.Int("chapter_number", ch.Number))
	defer func() {
		if r := recover(); r != nil {
			res.err = fmt.Errorf("chapter worker panic: %v", r)
		}
		if res.err != nil {
			res.Error = res.err.Error()
			log.Error("chapter failed", "error", res.err)
			o.record(ctx, generationID, step, course.LogFailed, course.LevelError,
				res.Error, map[string]any{"lessons_persisted": res.LessonsCount})
		}
		endSpan(span, res.err)
	}()

	o.record(ctx, generationID, step, course.LogInProgress, course.LevelInfo,
		fmt.Sprintf("Planning lessons for chapter %d", ch.Number), nil)

	specs, err := o.lessons.Plan(ctx, ch.Spec(), outline, prompt)
	if err != nil {
		res.err = err
		return res
	}

	lessons, err := o.generations.CreateLessons(ctx, ch.ID, specs)
	if err != nil {
		res.err = fmt.Errorf("persist lessons: %w", err)
		return res
	}
	res.LessonPlan = specs
	res.LessonsCount = len(lessons)

	for i, lesson := range lessons {
		if ctx.Err() != nil {
			skipped := len(lessons) - i
			res.FailedLessons += skipped
			log.Warn("chapter deadline reached, skipping remaining lessons", "skipped", skipped)
			o.record(ctx, generationID, step, course.LogFailed, course.LevelWarning,
				fmt.Sprintf("Deadline reached, %d lessons left without content", skipped), nil)
			break
		}
		if err := o.runLesson(ctx, generationID, ch.Number, lesson); err != nil {
			res.FailedLessons++
		}
	}

	o.record(ctx, generationID, step, course.LogCompleted, course.LevelInfo,
		fmt.Sprintf("Generated %d lessons for chapter %d", res.LessonsCount, ch.Number),
		map[string]any{"lessons": res.LessonsCount, "failed_lessons": res.FailedLessons})
	return res
}

// runLesson generates one lesson's content. Failures, panics included,
// are logged and returned to the chapter loop, never propagated further.
func (o *Orchestrator) runLesson(ctx context.Context, generationID, chapterNumber int, lesson course.Lesson) (err error) {
	step := fmt.Sprintf("lesson_content_chapter_%d_lesson_%d", chapterNumber, lesson.Number)

	ctx, span := tracer.Start(ctx, "generation.lesson")
	span.SetAttributes(
		attribute.Int("lesson_id", lesson.ID),
		attribute.String("lesson_type", string(lesson.Type)),
	)
	defer func() {
		if r := recover(); r != nil {
			err = &content.LessonError{
				LessonID:     lesson.ID,
				LessonNumber: lesson.Number,
				Type:         lesson.Type,
				Err:          fmt.Errorf("panic: %v", r),
			}
		}
		if err != nil {
			o.log.Warn("lesson content failed",
				"course_generation_id", generationID, "lesson_id", lesson.ID, "type", lesson.Type, "error", err)
			o.record(ctx, generationID, step, course.LogFailed, course.LevelError,
				err.Error(), map[string]any{"lesson_id": lesson.ID, "lesson_type": lesson.Type})
		}
		endSpan(span, err)
	}()

	artifact, err := o.content.Run(ctx, lesson)
	switch {
	case errors.Is(err, content.ErrNoGenerator):
		o.record(ctx, generationID, step, course.LogCompleted, course.LevelInfo,
			fmt.Sprintf("No content generated for %s lessons", lesson.Type.DisplayName()),
			map[string]any{"lesson_id": lesson.ID, "lesson_type": lesson.Type})
		return nil
	case err != nil:
		return err
	case artifact == nil:
		o.record(ctx, generationID, step, course.LogCompleted, course.LevelWarning,
			"Lesson left without content", map[string]any{"lesson_id": lesson.ID, "lesson_type": lesson.Type})
	}
	return nil
}
