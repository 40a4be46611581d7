package planner

import (
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/coursegen/internal/course"
)

// Outline renders the chapter list as text, one chapter per line. Lesson
// planning sees it so chapters do not overlap.
func Outline(chapters []course.ChapterSpec) string {
	return strings.Join(lo.Map(chapters, func(c course.ChapterSpec, _ int) string {
		return c.OutlineLine()
	}), "\n")
}
