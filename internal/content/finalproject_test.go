package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/logger"
)

func finalInput() FinalProjectInput {
	return FinalProjectInput{
		Prompt:     "Learn Python",
		Experience: "beginner",
		Chapters: []course.ChapterSpec{
			{Number: 1, Name: "Basics", Difficulty: 2},
			{Number: 2, Name: "Functions", Difficulty: 5},
		},
	}
}

const finalLessonJSON = `{"lesson_name": "Build a To-Do App", "lesson_description": "A CLI to-do list", "lesson_details": "files, functions", "lesson_goals": ["persist tasks", "use functions"], "lesson_guidelines": "start small"}`

func TestSynthesizer(t *testing.T) {
	files := `{"project_name": "todo", "description": "CLI to-do", "starter_files": {"README.md": "# todo", "main.py": "", "store.py": "", "cli.py": "", "test_store.py": ""}}`
	mock := llm.NewMockProvider(llm.Text(finalLessonJSON), llm.Text(files))
	s := NewSynthesizer(mock, DefaultConfig(), logger.Nop())

	fp, err := s.Synthesize(context.Background(), finalInput())
	require.NoError(t, err)

	assert.Equal(t, "Final Project", fp.Chapter.Name)
	assert.Equal(t, 5, fp.Chapter.Difficulty)
	assert.Equal(t, "Build a To-Do App", fp.Lesson.Name)
	assert.Equal(t, "persist tasks\nuse functions", fp.Lesson.Goals)
	assert.Equal(t, course.LessonFinalProject, fp.Lesson.Type)
	assert.Equal(t, 9, fp.Lesson.TypeID)
	assert.Equal(t, 1, fp.Lesson.Number)
	assert.False(t, fp.LessonFallback)
	assert.False(t, fp.ProjectFallback)

	assert.Equal(t, "todo", fp.Project.Name)
	assert.True(t, fp.Project.IsFinalProject)
	assert.Len(t, fp.Project.Files, 5)
	assert.Equal(t, []string{"final-project-lesson", "final-project-files"}, mock.Purposes)
	assert.Contains(t, mock.Calls[1].Messages[0].Content, "Project: Build a To-Do App")
}

func TestSynthesizer_PadsSmallProjects(t *testing.T) {
	files := `{"starter_files": {"main.py": "print(1)"}}`
	s := NewSynthesizer(llm.NewMockProvider(llm.Text(finalLessonJSON), llm.Text(files)), DefaultConfig(), logger.Nop())

	fp, err := s.Synthesize(context.Background(), finalInput())
	require.NoError(t, err)
	require.Len(t, fp.Project.Files, 4)
	assert.Equal(t, "main.py", fp.Project.Files[0].Path)
	assert.Equal(t, "print(1)", fp.Project.Files[0].Content)
	assert.Equal(t, "Build a To-Do App", fp.Project.Name)
}

func TestSynthesizer_FallsBackWhenUnavailable(t *testing.T) {
	unavailable := &llm.ErrUnavailable{Primary: errBoom, Secondary: errBoom}
	mock := llm.NewMockProvider(llm.Fail(unavailable), llm.Fail(unavailable))
	s := NewSynthesizer(mock, DefaultConfig(), logger.Nop())

	fp, err := s.Synthesize(context.Background(), finalInput())
	require.NoError(t, err)

	assert.True(t, fp.LessonFallback)
	assert.True(t, fp.ProjectFallback)
	assert.Equal(t, "Final Project", fp.Lesson.Name)
	assert.Contains(t, fp.Lesson.Description, "Learn Python")
	assert.Equal(t, course.GradingAIReview, fp.Project.GradingMethod)
	assert.True(t, fp.Project.IsFinalProject)
	assert.GreaterOrEqual(t, len(fp.Project.Files), 4)
}

func TestSynthesizer_OtherErrorsFail(t *testing.T) {
	s := NewSynthesizer(llm.NewMockProvider(llm.Text("not json at all")), DefaultConfig(), logger.Nop())
	_, err := s.Synthesize(context.Background(), finalInput())
	assert.Error(t, err)
}

func TestFinalChapter_UnsetDifficulty(t *testing.T) {
	ch := finalChapter([]course.ChapterSpec{{Difficulty: course.DifficultyUnset}})
	assert.Equal(t, 10, ch.Difficulty)
	assert.Equal(t, 10, finalChapter(nil).Difficulty)
}
