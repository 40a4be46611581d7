package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/search"
)

const quizJSON = `{"questions": [
	{"question": "What does range(3) yield?", "options": {"A": "1,2,3", "B": "0,1,2", "C": "0,1,2,3", "D": "3"}, "correct_answer": "B", "explanation": "range starts at 0."},
	{"question": "Which keyword exits a loop?", "options": {"A": "break", "B": "stop", "C": "exit", "D": "return"}, "correct_answer": "A", "explanation": "break leaves the innermost loop."}
]}`

func TestQuizGenerator(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text("Here is your quiz:\n" + quizJSON + "\nGood luck!"))
	g := NewQuizGenerator(mock, DefaultConfig())

	a, err := g.Generate(context.Background(), testLesson(course.LessonQuiz))
	require.NoError(t, err)

	quiz := a.(*course.Quiz)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, "B", quiz.Questions[0].CorrectAnswer)
	assert.Equal(t, "0,1,2", quiz.Questions[0].Options["B"])
	assert.Len(t, quiz.Questions[1].Options, 4)
	assert.Equal(t, 1, mock.CallsWithPurpose("quiz"))
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Lesson Name: Loops in Python")
}

func TestQuizGenerator_ListExplanation(t *testing.T) {
	body := `{"questions": [{"question": "1+1?", "options": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_answer": "B", "explanation": ["B is two", "others wrong"]}]}`
	g := NewQuizGenerator(llm.NewMockProvider(llm.Text(body)), DefaultConfig())

	a, err := g.Generate(context.Background(), testLesson(course.LessonQuiz))
	require.NoError(t, err)
	assert.Equal(t, "B is two\nothers wrong", a.(*course.Quiz).Questions[0].Explanation)
}

func TestQuizGenerator_RejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad key":   `{"questions": [{"question": "q", "options": {"A": "a", "B": "b", "C": "c", "D": "d"}, "correct_answer": "E"}]}`,
		"no items":  `{"questions": []}`,
		"missing D": `{"questions": [{"question": "q", "options": {"A": "a", "B": "b", "C": "c"}, "correct_answer": "A"}]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewQuizGenerator(llm.NewMockProvider(llm.Text(body)), DefaultConfig())
			_, err := g.Generate(context.Background(), testLesson(course.LessonQuiz))
			var contractErr *llmjson.ContractError
			assert.True(t, errors.As(err, &contractErr), "got %v", err)
		})
	}
}

func TestQuizGenerator_Malformed(t *testing.T) {
	g := NewQuizGenerator(llm.NewMockProvider(llm.Text("I cannot do that.")), DefaultConfig())
	_, err := g.Generate(context.Background(), testLesson(course.LessonQuiz))
	var malformed *llmjson.MalformedOutputError
	assert.True(t, errors.As(err, &malformed))
}

func TestArticleGenerator(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text("for loops, while loops"), llm.Text("# Loops\n\nBody"))
	vector := &fakeVector{snippets: []search.Snippet{{Category: "python", Text: "for x in range(3): ..."}}}
	g := NewArticleGenerator(mock, vector, DefaultConfig(), logger.Nop())

	a, err := g.Generate(context.Background(), testLesson(course.LessonArticle))
	require.NoError(t, err)
	assert.Equal(t, "# Loops\n\nBody", a.(*course.Article).Content)

	assert.Equal(t, []string{"for loops, while loops"}, vector.queries)
	assert.Equal(t, []string{"article-keywords", "article"}, mock.Purposes)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Guidelines: Use small examples")
	assert.Contains(t, mock.Calls[1].Messages[0].Content, "[python] for x in range(3)")
	assert.Equal(t, 0.8, mock.Calls[1].TopP)
	assert.Equal(t, 0.7, mock.Calls[1].Temperature)
}

func TestArticleGenerator_VectorFailureDegrades(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text("loops"), llm.Text("article"))
	g := NewArticleGenerator(mock, &fakeVector{err: errBoom}, DefaultConfig(), logger.Nop())

	a, err := g.Generate(context.Background(), testLesson(course.LessonSummary))
	require.NoError(t, err)
	assert.Equal(t, "article", a.(*course.Article).Content)
	assert.Contains(t, mock.Calls[1].Messages[0].Content, "(none)")
}

func TestArticleGenerator_EmptyArticle(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text("loops"), llm.Text("   "))
	g := NewArticleGenerator(mock, nil, DefaultConfig(), logger.Nop())

	_, err := g.Generate(context.Background(), testLesson(course.LessonArticle))
	assert.Error(t, err)
}

func TestExternalArticleGenerator(t *testing.T) {
	web := &fakeWeb{results: []search.WebResult{
		{URL: "https://a.example", Title: "A", Score: 0.6},
		{URL: "", Title: "no url", Score: 0.99},
		{URL: "https://b.example", Title: "B", Score: 0.8},
	}}
	mock := llm.NewMockProvider(llm.Text("How do Python loops work?"))
	g := NewExternalArticleGenerator(mock, web, DefaultConfig(), logger.Nop())

	a, err := g.Generate(context.Background(), testLesson(course.LessonExternalArticle))
	require.NoError(t, err)
	ext := a.(*course.ExternalArticle)
	assert.Equal(t, "https://b.example", ext.URL)
	assert.Equal(t, 0.8, ext.Score)
	assert.Equal(t, []string{"How do Python loops work?"}, web.queries)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Loops in Python. Repeat work with for and while range, break, continue")
}

func TestExternalArticleGenerator_NothingQualifies(t *testing.T) {
	web := &fakeWeb{results: []search.WebResult{{URL: "https://a.example", Score: 0.3}}}
	g := NewExternalArticleGenerator(llm.NewMockProvider(llm.Text("q")), web, DefaultConfig(), logger.Nop())

	a, err := g.Generate(context.Background(), testLesson(course.LessonExternalArticle))
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestExternalArticleGenerator_NotConfigured(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewExternalArticleGenerator(mock, nil, DefaultConfig(), logger.Nop())

	_, err := g.Generate(context.Background(), testLesson(course.LessonExternalArticle))
	assert.ErrorIs(t, err, search.ErrNotConfigured)
	assert.Zero(t, mock.CallCount())
}

func TestVideoGenerator_PicksMostLiked(t *testing.T) {
	videos := &fakeVideos{videos: []course.Video{
		{VideoID: "a", LikeCount: 10, ViewCount: 1000},
		{VideoID: "b", LikeCount: 50, ViewCount: 10},
		{VideoID: "c", LikeCount: 50, ViewCount: 500},
	}}
	mock := llm.NewMockProvider(llm.Text(`{"query": "python loops tutorial", "relevanceLanguage": "en", "videoCategoryId": 27}`))
	g := NewVideoGenerator(mock, videos, DefaultConfig(), logger.Nop())

	a, err := g.Generate(context.Background(), testLesson(course.LessonVideo))
	require.NoError(t, err)
	assert.Equal(t, "c", a.(*course.Video).VideoID)

	require.Len(t, videos.queries, 1)
	assert.Equal(t, search.VideoQuery{
		Query:             "python loops tutorial",
		RelevanceLanguage: "en",
		VideoCategoryID:   "27",
	}, videos.queries[0])
}

func TestVideoGenerator_RawQueryFallback(t *testing.T) {
	videos := &fakeVideos{videos: []course.Video{{VideoID: "a"}}}
	g := NewVideoGenerator(llm.NewMockProvider(llm.Text("  python for loops  ")), videos, DefaultConfig(), logger.Nop())

	_, err := g.Generate(context.Background(), testLesson(course.LessonVideo))
	require.NoError(t, err)
	assert.Equal(t, search.VideoQuery{Query: "python for loops"}, videos.queries[0])
}

func TestVideoGenerator_NoResults(t *testing.T) {
	g := NewVideoGenerator(llm.NewMockProvider(llm.Text(`{"query": "x"}`)), &fakeVideos{}, DefaultConfig(), logger.Nop())
	a, err := g.Generate(context.Background(), testLesson(course.LessonVideo))
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestExerciseGenerator(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		method   course.GradingMethod
		expected string
	}{
		{
			name:     "terminal matching",
			body:     `{"starter_files": {"main.py": "print('hi')", "util.py": ""}, "grading_method": "terminal_matching", "expected_output": "hi\n"}`,
			method:   course.GradingTerminalMatching,
			expected: "hi\n",
		},
		{
			name:   "ai review drops output",
			body:   `{"starter_files": {"main.py": "", "util.py": ""}, "grading_method": "ai_review", "expected_output": "ignored"}`,
			method: course.GradingAIReview,
		},
		{
			name:   "default method",
			body:   `{"starter_files": {"util.py": "", "main.py": ""}}`,
			method: course.GradingAIReview,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.Text(tt.body))
			g := NewExerciseGenerator(mock, DefaultConfig())

			a, err := g.Generate(context.Background(), testLesson(course.LessonExercise))
			require.NoError(t, err)

			p := a.(*course.Project)
			assert.Equal(t, "Exercise for Loops in Python", p.Name)
			assert.Equal(t, "Programming exercise: Repeat work with for and while", p.Description)
			assert.Equal(t, tt.method, p.GradingMethod)
			assert.Equal(t, tt.expected, p.ExpectedOutput)
			require.Len(t, p.Files, 2)
			assert.Equal(t, "main.py", p.Files[0].Path)
			assert.Contains(t, mock.Calls[0].Messages[0].Content, "Lesson Guidelines: Use small examples")
		})
	}
}

func TestTextResponseGenerator(t *testing.T) {
	body := `{"questions": [
		{"question": "q1", "reference_answer": "a1"},
		{"question": "q2", "reference_answer": "a2"},
		{"question": "q3", "reference_answer": "a3"},
		{"question": "q4", "reference_answer": "a4"},
		{"question": "q5", "reference_answer": "a5"},
		{"question": "q6", "reference_answer": "a6"}
	]}`
	g := NewTextResponseGenerator(llm.NewMockProvider(llm.Text(body)), DefaultConfig())

	a, err := g.Generate(context.Background(), testLesson(course.LessonTextResponse))
	require.NoError(t, err)

	set := a.(*course.TextQuestionSet)
	require.Len(t, set.Questions, 5)
	for i, q := range set.Questions {
		assert.Equal(t, i+1, q.Number)
	}
	assert.Equal(t, "a5", set.Questions[4].ReferenceAnswer)
}

func TestTextResponseGenerator_ListReferenceAnswer(t *testing.T) {
	body := `{"questions": [{"question": "What is a slice?", "reference_answer": ["A view over an array", "with length and capacity"]}]}`
	g := NewTextResponseGenerator(llm.NewMockProvider(llm.Text(body)), DefaultConfig())

	a, err := g.Generate(context.Background(), testLesson(course.LessonTextResponse))
	require.NoError(t, err)
	set := a.(*course.TextQuestionSet)
	require.Len(t, set.Questions, 1)
	assert.Equal(t, "A view over an array\nwith length and capacity", set.Questions[0].ReferenceAnswer)
}

func TestTextResponseGenerator_LLMError(t *testing.T) {
	g := NewTextResponseGenerator(llm.NewMockProvider(llm.Fail(errBoom)), DefaultConfig())
	_, err := g.Generate(context.Background(), testLesson(course.LessonTextResponse))
	assert.ErrorIs(t, err, errBoom)
}
