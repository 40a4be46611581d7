package grading

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/store"
)

type fixture struct {
	store   *store.Store
	service *Service
	mock    *llm.MockProvider
	quiz    *course.Quiz
	lessons []course.Lesson
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	s, err := store.Open(filepath.Join(t.TempDir(), "grading.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	g, err := s.Generations().Create(ctx, "Learn Go", "beginner")
	require.NoError(t, err)
	chapters, err := s.Generations().CreateChapters(ctx, g.ID, []course.ChapterSpec{{Number: 1, Name: "Basics", Difficulty: 1}})
	require.NoError(t, err)
	lessons, err := s.Generations().CreateLessons(ctx, chapters[0].ID, []course.LessonSpec{
		{Number: 1, Type: course.LessonQuiz, TypeID: 6, Name: "Quiz"},
		{Number: 2, Type: course.LessonTextResponse, TypeID: 7, Name: "Explain"},
	})
	require.NoError(t, err)

	quiz := &course.Quiz{Questions: threeQuestions()}
	require.NoError(t, s.Artifacts().SaveArtifact(ctx, lessons[0].ID, quiz))
	require.NoError(t, s.Artifacts().SaveArtifact(ctx, lessons[1].ID, &course.TextQuestionSet{Questions: []course.TextQuestion{
		{Number: 1, Question: "What is a goroutine?", ReferenceAnswer: "A lightweight thread"},
		{Number: 2, Question: "What is a channel?", ReferenceAnswer: "A typed conduit"},
	}}))

	mock := llm.NewMockProvider()
	cfg := DefaultConfig()
	svc := NewService(s.Artifacts(), s.Submissions(), s.Generations(), NewTextGrader(mock, cfg, logger.Nop()), cfg, logger.Nop())
	return &fixture{store: s, service: svc, mock: mock, quiz: quiz, lessons: lessons}
}

func (f *fixture) lessonComplete(t *testing.T, id int) bool {
	t.Helper()
	l, err := f.store.Generations().GetLesson(context.Background(), id)
	require.NoError(t, err)
	return l.Complete
}

func TestSubmitQuiz_Pass(t *testing.T) {
	f := newFixture(t)

	res, err := f.service.SubmitQuiz(context.Background(), f.quiz.ID, map[int]string{0: "B", 1: "A", 2: "D"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Attempt.Score)
	assert.Equal(t, 100, res.Percentage)
	assert.True(t, res.Passed)
	assert.True(t, res.LessonCompleted)
	assert.NotZero(t, res.Attempt.ID)
	assert.True(t, f.lessonComplete(t, f.lessons[0].ID))
}

func TestSubmitQuiz_BelowThreshold(t *testing.T) {
	f := newFixture(t)

	res, err := f.service.SubmitQuiz(context.Background(), f.quiz.ID, map[int]string{0: "B", 1: "", 2: "D"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Attempt.Score)
	assert.Equal(t, 67, res.Percentage)
	assert.False(t, res.Passed)
	assert.False(t, f.lessonComplete(t, f.lessons[0].ID))
}

func TestSubmitQuiz_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.SubmitQuiz(context.Background(), 9999, nil)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestSubmitTextResponses(t *testing.T) {
	f := newFixture(t)
	f.mock.AddResponse(llm.Text(`{"grades": [{"score": 90, "feedback": "good"}, {"score": 70, "feedback": "ok"}]}`))

	res, err := f.service.SubmitTextResponses(context.Background(), f.lessons[1].ID, map[int]string{1: "a cheap thread", 2: "a pipe"})
	require.NoError(t, err)
	assert.Equal(t, 80.0, res.Submission.TotalScore)
	assert.Equal(t, 2, res.Submission.TotalQuestions)
	assert.Equal(t, 90, res.Submission.Grades[1].Score)
	assert.Equal(t, "a pipe", res.Submission.Answers[2])
	assert.True(t, res.Passed)
	assert.NotZero(t, res.Submission.ID)
	assert.True(t, f.lessonComplete(t, f.lessons[1].ID))
}

func TestSubmitTextResponses_FallbackDoesNotPass(t *testing.T) {
	f := newFixture(t)
	f.mock.AddResponse(llm.Fail(&llm.ErrUnavailable{Primary: errors.New("down")}))

	res, err := f.service.SubmitTextResponses(context.Background(), f.lessons[1].ID, map[int]string{1: "x"})
	require.NoError(t, err)
	assert.True(t, res.Submission.Fallback)
	assert.Equal(t, 50.0, res.Submission.TotalScore)
	assert.Equal(t, "", res.Submission.Answers[2])
	assert.False(t, res.Passed)
}

func TestSubmitTextResponses_NoQuestions(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.SubmitTextResponses(context.Background(), f.lessons[0].ID, map[int]string{1: "x"})
	assert.ErrorIs(t, err, ErrNoQuestions)
}
