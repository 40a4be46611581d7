package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/generation"
	"github.com/abhisek/coursegen/internal/grading"
	"github.com/abhisek/coursegen/internal/store"
)

type fakeCourses struct {
	start   func(generation.Request) (*generation.Result, error)
	courses map[int]*course.Generation
	content map[int]*course.LessonContent
	logs    map[int][]course.LogEntry

	lastLimit int
}

func (f *fakeCourses) StartGeneration(_ context.Context, req generation.Request) (*generation.Result, error) {
	return f.start(req)
}

func (f *fakeCourses) GetCourse(_ context.Context, id int) (*course.Generation, error) {
	g, ok := f.courses[id]
	if !ok {
		return nil, fmt.Errorf("course generation %d: %w", id, store.ErrNotFound)
	}
	return g, nil
}

func (f *fakeCourses) GetLessonArtifact(_ context.Context, lessonID int) (*course.LessonContent, error) {
	c, ok := f.content[lessonID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeCourses) ListGenerations(_ context.Context, limit int) ([]course.Generation, error) {
	f.lastLimit = limit
	var out []course.Generation
	for _, g := range f.courses {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeCourses) Logs(_ context.Context, generationID int) ([]course.LogEntry, error) {
	return f.logs[generationID], nil
}

type fakeGrader struct {
	quizAnswers map[int]string
	textAnswers map[int]string
	err         error
}

func (f *fakeGrader) SubmitQuiz(_ context.Context, quizID int, answers map[int]string) (*grading.QuizResult, error) {
	f.quizAnswers = answers
	if f.err != nil {
		return nil, f.err
	}
	return &grading.QuizResult{
		Attempt:    course.QuizAttempt{ID: 1, QuizID: quizID, Answers: answers, Score: 1, Total: 1},
		Percentage: 100,
		Passed:     true,
	}, nil
}

func (f *fakeGrader) SubmitTextResponses(_ context.Context, lessonID int, answers map[int]string) (*grading.TextResponseResult, error) {
	f.textAnswers = answers
	if f.err != nil {
		return nil, f.err
	}
	return &grading.TextResponseResult{
		Submission: course.TextSubmission{ID: 3, LessonID: lessonID, Answers: answers, TotalScore: 80},
		Passed:     true,
	}, nil
}

func newTestServer(courses *fakeCourses, grader *fakeGrader) *Server {
	if courses == nil {
		courses = &fakeCourses{}
	}
	if grader == nil {
		grader = &fakeGrader{}
	}
	return New(courses, grader, "test", nil)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthCheck(t *testing.T) {
	rec := do(t, newTestServer(nil, nil), http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	s := newTestServer(nil, nil)

	rec := do(t, s, http.MethodGet, "/healthcheck", "")
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestStartGeneration(t *testing.T) {
	var got generation.Request
	courses := &fakeCourses{start: func(req generation.Request) (*generation.Result, error) {
		got = req
		return &generation.Result{
			CourseGenerationID: 7,
			TotalChapters:      2,
			TotalLessons:       9,
			Chapters:           []generation.ChapterResult{{ChapterNumber: 1, LessonsCount: 5}, {ChapterNumber: 2, LessonsCount: 4}},
			CourseData:         map[string]any{"original_prompt": req.Prompt},
		}, nil
	}}

	rec := do(t, newTestServer(courses, nil), http.MethodPost, "/api/generations",
		`{"prompt":"Learn Go","experience_level":"beginner"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, generation.Request{Prompt: "Learn Go", ExperienceLevel: "beginner"}, got)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 7, body["course_generation_id"])
	assert.EqualValues(t, 2, body["total_chapters"])
	assert.EqualValues(t, 9, body["total_lessons"])
	assert.Len(t, body["result"], 2)
	assert.Equal(t, "Learn Go", body["course_data"].(map[string]any)["original_prompt"])
}

func TestStartGeneration_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		wantID   bool
		envelope bool
	}{
		{"empty prompt", generation.ErrEmptyPrompt, http.StatusBadRequest, false, false},
		{"run failed", &generation.GenerationError{CourseGenerationID: 11, Step: "chapter_generation", Err: errors.New("llm down")}, http.StatusBadRequest, true, false},
		{"create failed", &generation.GenerationError{Step: "create", Err: errors.New("db down")}, http.StatusInternalServerError, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses := &fakeCourses{start: func(generation.Request) (*generation.Result, error) { return nil, tt.err }}
			rec := do(t, newTestServer(courses, nil), http.MethodPost, "/api/generations", `{"prompt":"x"}`)

			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			if tt.envelope {
				assert.Contains(t, body["error"].(map[string]any)["message"], "db down")
				return
			}
			assert.Equal(t, false, body["success"])
			assert.Contains(t, body["error"], tt.err.Error())
			if tt.wantID {
				assert.EqualValues(t, 11, body["course_generation_id"])
			} else {
				assert.NotContains(t, body, "course_generation_id")
			}
		})
	}
}

func TestStartGeneration_BadBody(t *testing.T) {
	rec := do(t, newTestServer(nil, nil), http.MethodPost, "/api/generations", `{"prompt":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_body", decode(t, rec)["error"].(map[string]any)["code"])
}

func TestGetGeneration(t *testing.T) {
	courses := &fakeCourses{courses: map[int]*course.Generation{
		4: {ID: 4, Prompt: "Learn Go", Status: course.StatusCompleted, Chapters: []course.Chapter{
			{ID: 1, Number: 1, Name: "Basics", Lessons: []course.Lesson{{ID: 10, Number: 1, Type: course.LessonQuiz}}},
		}},
	}}
	s := newTestServer(courses, nil)

	rec := do(t, s, http.MethodGet, "/api/generations/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "completed", body["status"])
	chapters := body["chapters"].([]any)
	require.Len(t, chapters, 1)
	lessons := chapters[0].(map[string]any)["lessons"].([]any)
	assert.Equal(t, "multiple-choice-quiz", lessons[0].(map[string]any)["lesson_type"])

	rec = do(t, s, http.MethodGet, "/api/generations/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode(t, rec)["error"].(map[string]any)["code"])

	rec = do(t, s, http.MethodGet, "/api/generations/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListGenerations(t *testing.T) {
	courses := &fakeCourses{courses: map[int]*course.Generation{1: {ID: 1}, 2: {ID: 2}}}
	s := newTestServer(courses, nil)

	rec := do(t, s, http.MethodGet, "/api/generations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["generations"], 2)
	assert.Equal(t, defaultListLimit, courses.lastLimit)

	do(t, s, http.MethodGet, "/api/generations?limit=1000", "")
	assert.Equal(t, maxListLimit, courses.lastLimit)

	rec = do(t, s, http.MethodGet, "/api/generations?limit=-2", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerationLogs(t *testing.T) {
	courses := &fakeCourses{
		courses: map[int]*course.Generation{5: {ID: 5}},
		logs: map[int][]course.LogEntry{5: {
			{GenerationID: 5, Step: "generation_started", Status: course.LogStarted, Level: course.LevelInfo},
		}},
	}
	s := newTestServer(courses, nil)

	rec := do(t, s, http.MethodGet, "/api/generations/5/logs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	logs := decode(t, rec)["logs"].([]any)
	require.Len(t, logs, 1)
	assert.Equal(t, "generation_started", logs[0].(map[string]any)["step"])

	rec = do(t, s, http.MethodGet, "/api/generations/6/logs", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLessonArtifact(t *testing.T) {
	courses := &fakeCourses{content: map[int]*course.LessonContent{
		3: {Lesson: course.Lesson{ID: 3, Type: course.LessonArticle}, Article: &course.Article{Content: "# Hello"}},
	}}
	s := newTestServer(courses, nil)

	rec := do(t, s, http.MethodGet, "/api/lessons/3/artifact", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# Hello", decode(t, rec)["article"].(map[string]any)["content"])

	rec = do(t, s, http.MethodGet, "/api/lessons/4/artifact", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitQuiz(t *testing.T) {
	grader := &fakeGrader{}
	s := newTestServer(nil, grader)

	rec := do(t, s, http.MethodPost, "/api/quizzes/2/attempts", `{"answers":{"0":"B","1":"D"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[int]string{0: "B", 1: "D"}, grader.quizAnswers)
	body := decode(t, rec)
	assert.Equal(t, true, body["passed"])
	assert.EqualValues(t, 2, body["attempt"].(map[string]any)["quiz_id"])

	grader.err = fmt.Errorf("load quiz 2: %w", store.ErrNotFound)
	rec = do(t, s, http.MethodPost, "/api/quizzes/2/attempts", `{"answers":{}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/quizzes/2/attempts", `{"answers":{"zero":"B"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitTextResponses(t *testing.T) {
	grader := &fakeGrader{}
	s := newTestServer(nil, grader)

	rec := do(t, s, http.MethodPost, "/api/lessons/8/text-responses", `{"answers":{"1":"a pointer holds an address"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[int]string{1: "a pointer holds an address"}, grader.textAnswers)
	assert.EqualValues(t, 80, decode(t, rec)["submission"].(map[string]any)["total_score"])

	grader.err = grading.ErrNoQuestions
	rec = do(t, s, http.MethodPost, "/api/lessons/8/text-responses", `{"answers":{}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no_questions", decode(t, rec)["error"].(map[string]any)["code"])

	grader.err = errors.New("disk full")
	rec = do(t, s, http.MethodPost, "/api/lessons/8/text-responses", `{"answers":{}}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	s := newTestServer(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()
	cancel()
	assert.NoError(t, <-done)
}
