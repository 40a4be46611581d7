package generation

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/planner"
	"github.com/abhisek/coursegen/internal/store"
)

const pipelineQuiz = `{"questions": [{"question": "What is 1+1?", "options": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_answer": "B", "explanation": "Arithmetic."}]}`

// scriptedModel answers by call purpose so concurrent chapters get the
// right response regardless of arrival order.
func scriptedModel(ctx context.Context, req llm.Request) llm.MockResponse {
	switch llm.PurposeFrom(ctx) {
	case "chapter-plan":
		return llm.Text(`Here is the plan: [
			{"chapter_number": "1", "chapter_name": "Basics", "chapter_description": "values and types", "chapter_difficulty": 2},
			{"chapter_number": 2, "chapter_name": "Control Flow", "chapter_description": "if and for", "chapter_difficulty": 3}
		]`)
	case "lesson-plan":
		name := "Basics"
		if strings.Contains(req.Messages[0].Content, "Chapter to plan: Chapter 2: Control Flow") {
			name = "Control Flow"
		}
		return llm.Text(fmt.Sprintf(`[
			{"lesson_number": 1, "lesson_type": "ai-article", "lesson_type_ID": 2, "lesson_name": "%[1]s explained", "lesson_description": "d", "lesson_details": "x", "lesson_goals": ["g1", "g2"], "lesson_guidlines": "short"},
			{"lesson_number": 2, "lesson_type": "mcq", "lesson_name": "%[1]s quiz"},
			{"lesson_number": 3, "lesson_type_ID": 8, "lesson_name": "%[1]s blanks"}
		]`, name))
	case "article-keywords":
		return llm.Text("values, types")
	case "article":
		return llm.Text("# Article\n\nBody.")
	case "quiz":
		return llm.Text(pipelineQuiz)
	case "final-project-lesson", "final-project-files":
		return llm.Fail(&llm.ErrUnavailable{Primary: fmt.Errorf("primary down"), Secondary: fmt.Errorf("secondary down")})
	}
	return llm.Fail(fmt.Errorf("unexpected purpose %q", llm.PurposeFrom(ctx)))
}

func TestPipeline_EndToEnd(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "pipeline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := llm.NewMockProvider()
	mock.Respond = scriptedModel
	log := logger.Nop()
	pcfg := planner.DefaultConfig()
	ccfg := content.DefaultConfig()

	o := New(Deps{
		Generations:  s.Generations(),
		Artifacts:    s.Artifacts(),
		Logs:         s.Logs(),
		Chapters:     planner.NewChapterPlanner(mock, pcfg, log),
		Lessons:      planner.NewLessonPlanner(mock, pcfg, log),
		Content:      content.NewDispatcher(content.NewRegistry(content.Deps{Provider: mock, Config: ccfg, Log: log}), s.Artifacts()),
		FinalProject: content.NewSynthesizer(mock, ccfg, log),
		Config:       DefaultConfig(),
		Log:          log,
	})

	res, err := o.StartGeneration(ctx, Request{Prompt: "Teach me Python"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalChapters)
	assert.Equal(t, 7, res.TotalLessons)

	g, err := o.GetCourse(ctx, res.CourseGenerationID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusCompleted, g.Status)
	require.Len(t, g.Chapters, 3)
	assertContiguous(t, g)

	basics := g.Chapters[0]
	assert.Equal(t, "Basics", basics.Name)
	require.Len(t, basics.Lessons, 3)
	assert.Equal(t, "g1\ng2", basics.Lessons[0].Goals)
	assert.Equal(t, "short", basics.Lessons[0].Guidelines)
	assert.Equal(t, course.LessonFillInBlank, basics.Lessons[2].Type)

	article, err := o.GetLessonArtifact(ctx, basics.Lessons[0].ID)
	require.NoError(t, err)
	require.NotNil(t, article.Article)
	assert.Equal(t, "# Article\n\nBody.", article.Article.Content)

	quiz, err := o.GetLessonArtifact(ctx, basics.Lessons[1].ID)
	require.NoError(t, err)
	require.NotNil(t, quiz.Quiz)
	assert.Equal(t, "B", quiz.Quiz.Questions[0].CorrectAnswer)

	blanks, err := o.GetLessonArtifact(ctx, basics.Lessons[2].ID)
	require.NoError(t, err)
	assert.True(t, blanks.Empty())

	final := g.Chapters[2]
	assert.Equal(t, "Final Project", final.Name)
	require.Len(t, final.Lessons, 1)
	capstone, err := o.GetLessonArtifact(ctx, final.Lessons[0].ID)
	require.NoError(t, err)
	require.NotNil(t, capstone.Project)
	assert.True(t, capstone.Project.IsFinalProject)
	assert.GreaterOrEqual(t, len(capstone.Project.Files), 4)

	logs, err := o.Logs(ctx, res.CourseGenerationID)
	require.NoError(t, err)
	assert.Equal(t, "generation_started", logs[0].Step)
	assert.Equal(t, "generation_completed", logs[len(logs)-1].Step)

	assert.Equal(t, 1, mock.CallsWithPurpose("chapter-plan"))
	assert.Equal(t, 2, mock.CallsWithPurpose("lesson-plan"))
	assert.Equal(t, 2, mock.CallsWithPurpose("quiz"))
}
