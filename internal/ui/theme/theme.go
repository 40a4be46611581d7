// Package theme holds the terminal styles used to print courses.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursegen/internal/course"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Branch = lipgloss.NewStyle().
		Foreground(Border)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Chapter = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Failed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(Accent)
)

// StatusStyle returns the style for a generation status.
func StatusStyle(s course.Status) lipgloss.Style {
	switch s {
	case course.StatusCompleted:
		return Done
	case course.StatusFailed:
		return Failed
	default:
		return Pending
	}
}

// LessonTag renders the short type tag of a lesson, colored by category:
// learning lessons in teal, practice lessons in orange.
func LessonTag(t course.LessonType) string {
	var fg color.Color
	switch {
	case !t.Valid():
		fg = TextDim
	case t.Category() == course.CategoryPractice:
		fg = Accent
	default:
		fg = Secondary
	}
	tag := t.Alias()
	if tag == "" {
		tag = "???"
	}
	return lipgloss.NewStyle().Foreground(fg).Render("[" + tag + "]")
}
