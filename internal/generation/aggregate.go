package generation

import (
	"fmt"

	"github.com/abhisek/coursegen/internal/course"
)

// aggregate reduces the worker results after the barrier. Totals count
// every persisted chapter and lesson, the capstone included.
func aggregate(generationID int, prompt, experience string, specs []course.ChapterSpec, results []ChapterResult, final *finalOutcome) *Result {
	res := &Result{
		CourseGenerationID: generationID,
		TotalChapters:      len(specs),
		Chapters:           results,
	}

	plans := make(map[string][]course.LessonSpec, len(results))
	failed := []int{}
	for _, r := range results {
		res.TotalLessons += r.LessonsCount
		if r.err != nil {
			failed = append(failed, r.ChapterNumber)
		}
		if r.LessonPlan != nil {
			plans[fmt.Sprintf("chapter_%d", r.ChapterNumber)] = r.LessonPlan
		}
	}

	var finalData map[string]any
	if final != nil {
		res.FinalProject = true
		res.TotalChapters++
		res.TotalLessons++
		finalData = map[string]any{
			"chapter_number":   final.chapter.Number,
			"lesson":           final.project.Lesson,
			"project_name":     final.project.Project.Name,
			"files":            len(final.project.Project.Files),
			"lesson_fallback":  final.project.LessonFallback,
			"project_fallback": final.project.ProjectFallback,
		}
	}

	res.CourseData = map[string]any{
		"original_prompt":      prompt,
		"experience_level":     experience,
		"overall_lesson_plan":  specs,
		"chapter_lesson_plans": plans,
		"failed_chapters":      failed,
		"final_project":        finalData,
	}
	return res
}
