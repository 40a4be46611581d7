package cmd

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/config"
	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/grading"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

func TestRenderCourse(t *testing.T) {
	g := &course.Generation{
		ID:              3,
		Prompt:          "Learn Python",
		ExperienceLevel: "beginner",
		Status:          course.StatusCompleted,
		TotalChapters:   2,
		TotalLessons:    3,
		Chapters: []course.Chapter{
			{Number: 1, Name: "Basics", Difficulty: 2, Lessons: []course.Lesson{
				{ID: 10, Number: 1, Name: "Variables", Type: course.LessonArticle},
				{ID: 11, Number: 2, Name: "Check yourself", Type: course.LessonQuiz, Complete: true},
			}},
			{Number: 2, Name: "Loops", Difficulty: course.DifficultyUnset, Lessons: []course.Lesson{
				{ID: 12, Number: 1, Name: "Mystery", Type: course.LessonUnknown},
			}},
		},
	}

	out := plain(renderCourse(g))

	assert.Contains(t, out, "Course 3")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "2 chapters · 3 lessons · beginner")
	assert.Contains(t, out, "├── Chapter 1: Basics (2/10)")
	assert.Contains(t, out, "└── Chapter 2: Loops\n")
	assert.Contains(t, out, "│   ├── [art] 1. Variables  #10")
	assert.Contains(t, out, "│   └── [mcq] 2. Check yourself ✓  #11")
	assert.Contains(t, out, "    └── [???] 1. Mystery  #12")
}

func TestRenderGenerationList(t *testing.T) {
	assert.Equal(t, "No courses generated yet.\n", renderGenerationList(nil))

	out := plain(renderGenerationList([]course.Generation{
		{ID: 1, Prompt: "Learn Go", Status: course.StatusFailed, CreatedAt: time.Now()},
	}))
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "Learn Go")
}

func TestRenderQuizResult(t *testing.T) {
	questions := []course.QuizQuestion{
		{Question: "2+2?", Options: map[string]string{"A": "3", "B": "4", "C": "5", "D": "6"}, CorrectAnswer: "B", Explanation: "basic sum"},
		{Question: "3+3?", Options: map[string]string{"A": "6", "B": "7", "C": "8", "D": "9"}, CorrectAnswer: "A"},
	}
	attempt := grading.ScoreQuiz(questions, map[int]string{0: grading.NormalizeAnswer(" b ")})

	out := plain(renderQuizResult(&grading.QuizResult{Attempt: attempt, Percentage: attempt.Percentage()}))

	assert.Contains(t, out, "✓ 1. 2+2?  (you: B, correct: B)")
	assert.Contains(t, out, "basic sum")
	assert.Contains(t, out, "✗ 2. 3+3?  (you: -, correct: A)")
	assert.Contains(t, out, "Score: 1/2 (50%) · not passed")
}

func TestRenderQuiz(t *testing.T) {
	out := plain(renderQuiz(&course.Quiz{ID: 4, Questions: []course.QuizQuestion{
		{Question: "Pick B", Options: map[string]string{"A": "no", "B": "yes", "C": "no", "D": "no"}},
	}}))
	assert.Contains(t, out, "1. Pick B\n   A) no\n   B) yes")
	assert.Contains(t, out, "coursegen quiz submit 4 A B C ...")
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()
	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("db", "", "")
		return c
	}

	c := newCmd()
	flagPath := filepath.Join(dir, "flag", "a.db")
	require.NoError(t, c.Flags().Set("db", flagPath))
	got, err := resolveDBPath(c, &config.Config{DB: config.DBConfig{Path: filepath.Join(dir, "cfg.db")}})
	require.NoError(t, err)
	assert.Equal(t, flagPath, got)
	assert.DirExists(t, filepath.Join(dir, "flag"))

	cfgPath := filepath.Join(dir, "cfg", "b.db")
	got, err = resolveDBPath(newCmd(), &config.Config{DB: config.DBConfig{Path: cfgPath}})
	require.NoError(t, err)
	assert.Equal(t, cfgPath, got)

	t.Setenv("COURSEGEN_DB", filepath.Join(dir, "env", "c.db"))
	got, err = resolveDBPath(newCmd(), &config.Config{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "env", "c.db"), got)
}
