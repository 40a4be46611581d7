package planner

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/course"
)

func buildChapterSystemPrompt(experience string, maxChapters int) string {
	var b strings.Builder

	b.WriteString("You are an expert learning strategist and curriculum designer. ")
	b.WriteString("The user describes, in one sentence, a large project or skill they want to master. ")
	b.WriteString("Break it into sequential chapters so that finishing one chapter prepares the learner for the next.\n\n")
	fmt.Fprintf(&b, "Learner experience: %s\n\n", experience)

	b.WriteString(`For each chapter provide:
- chapter_number: integer, starting at 1
- chapter_name: a descriptive title
- chapter_description: what the chapter covers, in one or two sentences
- chapter_difficulty: integer from 1 to 10

`)
	fmt.Fprintf(&b, "Produce at most %d chapters. Cover everything needed to reach the goal.\n", maxChapters)
	b.WriteString(`Respond with ONLY a JSON array:
[{"chapter_number": 1, "chapter_name": "", "chapter_description": "", "chapter_difficulty": 1}]`)

	return b.String()
}

func buildLessonUserMessage(ch course.ChapterSpec, outline, prompt string, cfg Config) string {
	var b strings.Builder

	b.WriteString("You are an expert curriculum and instructional designer. Plan the lessons for ONE chapter of a course.\n\n")
	fmt.Fprintf(&b, "Course goal: %s\n\n", prompt)
	b.WriteString("Course outline:\n")
	b.WriteString(outline)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Chapter to plan: %s\n", ch.OutlineLine())
	if ch.Description != "" {
		fmt.Fprintf(&b, "Chapter description: %s\n", ch.Description)
	}

	fmt.Fprintf(&b, `
Instructions:
1. Use the chapter difficulty to pick the number of lessons: at least %d, at most %d. Harder chapters get more lessons.
2. Vary the lesson mix from chapter to chapter.
3. Lessons are either learning lessons (introduce a topic) or practice lessons (apply a topic). Mix both, and never place a practice lesson before the learning lesson that introduces its topic.
4. For each lesson provide: lesson_number (starting at 1), lesson_type, lesson_type_ID, lesson_name, lesson_description, lesson_details, lesson_goals, lesson_guidelines (step-by-step notes for the author who will write the lesson).

Lesson types:
`, cfg.MinLessons, cfg.MaxLessons)

	for _, cat := range []course.Category{course.CategoryLearning, course.CategoryPractice} {
		if cat == course.CategoryLearning {
			b.WriteString("Learning lessons:\n")
		} else {
			b.WriteString("Practice lessons:\n")
		}
		for _, t := range course.AllLessonTypes() {
			if t.Category() != cat {
				continue
			}
			fmt.Fprintf(&b, "- %s (lesson_type: %q, lesson_type_ID: %d)", t.DisplayName(), string(t), t.ID())
			switch t {
			case course.LessonSummary:
				b.WriteString(" - only as the last lesson of the chapter")
			case course.LessonFinalProject:
				b.WriteString(" - only at the end, when enough has been learned")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(`
Respond with ONLY a JSON array of lesson objects. No explanations.`)
	return b.String()
}
