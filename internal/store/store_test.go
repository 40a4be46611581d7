package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/coursegen/internal/course"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// must fails the test on a setup error.
func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.DB() == nil {
		t.Fatal("expected non-nil sql.DB")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"busy_timeout", "5000"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "nested", "deeper", "x.db")
	must(t, EnsureDir(p))
	if info, err := os.Stat(filepath.Join(dir, "nested", "deeper")); err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist: %v", err)
	}

	if err := EnsureDir("postgres://user@localhost/db"); err != nil {
		t.Errorf("expected DSN to be ignored, got %v", err)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "c.db")
		t.Setenv("COURSEGEN_DB", want)
		got, err := DefaultDBPath()
		must(t, err)
		if got != want {
			t.Errorf("DefaultDBPath() = %q, want %q", got, want)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("COURSEGEN_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		must(t, err)
		if want := filepath.Join(dir, "coursegen", "coursegen.db"); got != want {
			t.Errorf("DefaultDBPath() = %q, want %q", got, want)
		}
	})
}

// seedCourse creates a generation with two chapters of two lessons each.
func seedCourse(t *testing.T, s *Store) (*course.Generation, []course.Chapter, [][]course.Lesson) {
	t.Helper()
	ctx := context.Background()
	repo := s.Generations()

	g, err := repo.Create(ctx, "Learn Go", "beginner")
	must(t, err)

	chapters, err := repo.CreateChapters(ctx, g.ID, []course.ChapterSpec{
		{Number: 1, Name: "Basics", Description: "syntax", Difficulty: 2},
		{Number: 2, Name: "Concurrency", Description: "goroutines", Difficulty: 6},
	})
	must(t, err)

	var lessons [][]course.Lesson
	for _, ch := range chapters {
		ls, err := repo.CreateLessons(ctx, ch.ID, []course.LessonSpec{
			{Number: 1, Type: course.LessonArticle, TypeID: 2, Name: ch.Name + " intro"},
			{Number: 2, Type: course.LessonQuiz, TypeID: 6, Name: ch.Name + " quiz"},
		})
		must(t, err)
		lessons = append(lessons, ls)
	}
	return g, chapters, lessons
}

func TestGenerationLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Generations()

	g, chapters, _ := seedCourse(t, s)
	if g.Status != course.StatusGenerating {
		t.Errorf("expected status generating, got %q", g.Status)
	}
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}

	must(t, repo.Complete(ctx, g.ID, 2, 4, map[string]any{"title": "Learn Go"}))

	got, err := repo.Get(ctx, g.ID)
	must(t, err)
	if got.Status != course.StatusCompleted {
		t.Errorf("expected status completed, got %q", got.Status)
	}
	if got.TotalChapters != 2 || got.TotalLessons != 4 {
		t.Errorf("unexpected totals: %d chapters, %d lessons", got.TotalChapters, got.TotalLessons)
	}
	if got.CompletedAt == nil {
		t.Error("expected completed_at to be set")
	}
	if got.CourseData["title"] != "Learn Go" {
		t.Errorf("unexpected course data: %v", got.CourseData)
	}
	if len(got.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(got.Chapters))
	}
	if got.Chapters[0].Number != 1 || got.Chapters[1].Number != 2 {
		t.Errorf("chapters out of order: %d, %d", got.Chapters[0].Number, got.Chapters[1].Number)
	}
	if len(got.Chapters[1].Lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(got.Chapters[1].Lessons))
	}
	if got.Chapters[1].Lessons[1].Type != course.LessonQuiz {
		t.Errorf("expected quiz lesson, got %q", got.Chapters[1].Lessons[1].Type)
	}

	// Terminal states never move again.
	if err := repo.Fail(ctx, g.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Fail after complete: expected ErrInvalidTransition, got %v", err)
	}
	if err := repo.Complete(ctx, g.ID, 0, 0, nil); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Complete twice: expected ErrInvalidTransition, got %v", err)
	}
}

func TestGenerationFail(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Generations()

	g, err := repo.Create(ctx, "p", "")
	must(t, err)
	must(t, repo.Fail(ctx, g.ID))

	got, err := repo.Get(ctx, g.ID)
	must(t, err)
	if got.Status != course.StatusFailed {
		t.Errorf("expected status failed, got %q", got.Status)
	}
	if got.CompletedAt != nil {
		t.Errorf("expected no completed_at, got %v", got.CompletedAt)
	}

	if err := repo.Fail(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Get(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDuplicateChapterNumberRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Generations()

	g, err := repo.Create(ctx, "p", "")
	must(t, err)

	_, err = repo.CreateChapters(ctx, g.ID, []course.ChapterSpec{
		{Number: 1, Name: "a"},
		{Number: 1, Name: "b"},
	})
	if err == nil {
		t.Fatal("expected duplicate chapter number to fail")
	}

	// The whole batch rolled back.
	got, err := repo.Get(ctx, g.ID)
	must(t, err)
	if len(got.Chapters) != 0 {
		t.Errorf("expected no chapters after rollback, got %d", len(got.Chapters))
	}
}

func TestAddFinalProject(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Generations()
	g, _, _ := seedCourse(t, s)

	p := &course.Project{
		Name:          "Capstone",
		Description:   "Build a CLI",
		GradingMethod: course.GradingAIReview,
		Files: []course.ProjectFile{
			{Path: "main.go", Content: "package main"},
			{Path: "README.md", Content: "# Capstone"},
		},
	}
	ch, err := repo.AddFinalProject(ctx, g.ID,
		course.ChapterSpec{Number: 1, Name: "Final Project", Difficulty: 8},
		course.LessonSpec{Number: 7, Type: course.LessonExercise, TypeID: 5, Name: "Capstone"},
		p)
	must(t, err)
	if ch.Number != 3 {
		t.Errorf("expected final chapter number 3, got %d", ch.Number)
	}
	if len(ch.Lessons) != 1 || ch.Lessons[0].Number != 1 {
		t.Fatalf("expected a single lesson numbered 1, got %+v", ch.Lessons)
	}
	if !p.IsFinalProject || p.ID == 0 {
		t.Errorf("expected saved final project, got final=%v id=%d", p.IsFinalProject, p.ID)
	}

	content, err := s.Artifacts().LessonContent(ctx, ch.Lessons[0].ID)
	must(t, err)
	if content.Project == nil {
		t.Fatal("expected project content")
	}
	if !content.Project.IsFinalProject {
		t.Error("expected stored project to be flagged final")
	}
	if len(content.Project.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(content.Project.Files))
	}
	if content.Project.Files[0].Path != "README.md" {
		t.Errorf("expected files sorted by path, got %q first", content.Project.Files[0].Path)
	}
}

func TestSaveArtifactReplacesSingleRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, _, lessons := seedCourse(t, s)
	arts := s.Artifacts()
	articleLesson := lessons[0][0].ID

	must(t, arts.SaveArtifact(ctx, articleLesson, &course.Article{Content: "first"}))
	must(t, arts.SaveArtifact(ctx, articleLesson, &course.Article{Content: "second"}))

	content, err := arts.LessonContent(ctx, articleLesson)
	must(t, err)
	if content.Article == nil || content.Article.Content != "second" {
		t.Fatalf("expected replaced article, got %+v", content.Article)
	}

	n, err := s.Client().Article.Query().Count(ctx)
	must(t, err)
	if n != 1 {
		t.Errorf("expected 1 article row, got %d", n)
	}
}

func TestSaveArtifactTypeMismatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, _, lessons := seedCourse(t, s)

	err := s.Artifacts().SaveArtifact(ctx, lessons[0][0].ID, &course.Quiz{})
	if !errors.Is(err, ErrArtifactMismatch) {
		t.Errorf("expected ErrArtifactMismatch, got %v", err)
	}

	err = s.Artifacts().SaveArtifact(ctx, 9999, &course.Article{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSummaryLessonAcceptsArticle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, chapters, _ := seedCourse(t, s)

	ls, err := s.Generations().CreateLessons(ctx, chapters[0].ID, []course.LessonSpec{
		{Number: 3, Type: course.LessonSummary, TypeID: 4, Name: "Wrap up"},
	})
	must(t, err)

	if err := s.Artifacts().SaveArtifact(ctx, ls[0].ID, &course.Article{Content: "recap"}); err != nil {
		t.Fatalf("summary lesson should accept an article: %v", err)
	}
}

func TestVideoUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, chapters, _ := seedCourse(t, s)

	ls, err := s.Generations().CreateLessons(ctx, chapters[0].ID, []course.LessonSpec{
		{Number: 3, Type: course.LessonVideo, TypeID: 1, Name: "Watch"},
	})
	must(t, err)
	lessonID := ls[0].ID
	arts := s.Artifacts()

	must(t, arts.SaveArtifact(ctx, lessonID, &course.Video{VideoID: "abc", Title: "old", URL: "https://www.youtube.com/watch?v=abc", LikeCount: 1}))
	must(t, arts.SaveArtifact(ctx, lessonID, &course.Video{VideoID: "abc", Title: "new", URL: "https://www.youtube.com/watch?v=abc", LikeCount: 9}))
	must(t, arts.SaveArtifact(ctx, lessonID, &course.Video{VideoID: "xyz", Title: "other", URL: "https://www.youtube.com/watch?v=xyz", LikeCount: 3}))

	content, err := arts.LessonContent(ctx, lessonID)
	must(t, err)
	if len(content.Videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(content.Videos))
	}
	if v := content.Videos[0]; v.Title != "new" || v.LikeCount != 9 {
		t.Errorf("expected upserted video, got %+v", v)
	}
	if content.Videos[1].VideoID != "xyz" {
		t.Errorf("expected second video xyz, got %q", content.Videos[1].VideoID)
	}
}

func TestTextQuestionsReplacedWholesale(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, chapters, _ := seedCourse(t, s)

	ls, err := s.Generations().CreateLessons(ctx, chapters[0].ID, []course.LessonSpec{
		{Number: 3, Type: course.LessonTextResponse, TypeID: 7, Name: "Explain"},
	})
	must(t, err)
	lessonID := ls[0].ID
	arts := s.Artifacts()

	set := &course.TextQuestionSet{Questions: []course.TextQuestion{
		{Number: 1, Question: "q1", ReferenceAnswer: "a1"},
		{Number: 2, Question: "q2", ReferenceAnswer: "a2"},
		{Number: 3, Question: "q3", ReferenceAnswer: "a3"},
	}}
	must(t, arts.SaveArtifact(ctx, lessonID, set))
	must(t, arts.SaveArtifact(ctx, lessonID, &course.TextQuestionSet{Questions: []course.TextQuestion{
		{Number: 1, Question: "only", ReferenceAnswer: "x"},
	}}))

	qs, err := arts.TextQuestions(ctx, lessonID)
	must(t, err)
	if len(qs) != 1 || qs[0].Question != "only" {
		t.Fatalf("expected the replacement set only, got %+v", qs)
	}
}

func TestQuizAttemptsAndCascade(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, _, lessons := seedCourse(t, s)
	quizLesson := lessons[0][1].ID

	q := &course.Quiz{Questions: []course.QuizQuestion{
		{Question: "2+2?", Options: map[string]string{"A": "3", "B": "4", "C": "5", "D": "6"}, CorrectAnswer: "B"},
	}}
	must(t, s.Artifacts().SaveArtifact(ctx, quizLesson, q))
	if q.ID == 0 {
		t.Fatal("expected quiz ID to be assigned")
	}

	got, err := s.Artifacts().Quiz(ctx, q.ID)
	must(t, err)
	if got.Questions[0].CorrectAnswer != "B" {
		t.Errorf("expected correct answer B, got %q", got.Questions[0].CorrectAnswer)
	}

	attempt := &course.QuizAttempt{
		QuizID:  q.ID,
		Answers: map[int]string{0: "B"},
		Results: []course.QuestionResult{{QuestionIndex: 0, UserAnswer: "B", CorrectAnswer: "B", IsCorrect: true}},
		Score:   1,
		Total:   1,
	}
	must(t, s.Submissions().SaveQuizAttempt(ctx, attempt))
	if attempt.ID == 0 || attempt.CreatedAt.IsZero() {
		t.Errorf("expected saved attempt, got id=%d created=%v", attempt.ID, attempt.CreatedAt)
	}

	// Replacing the quiz removes its attempts.
	must(t, s.Artifacts().SaveArtifact(ctx, quizLesson, &course.Quiz{Questions: q.Questions}))
	n, err := s.Client().QuizAttempt.Query().Count(ctx)
	must(t, err)
	if n != 0 {
		t.Errorf("expected attempts to cascade, got %d", n)
	}

	if _, err := s.Artifacts().Quiz(ctx, q.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected old quiz gone, got %v", err)
	}
}

func TestTextSubmission(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, chapters, _ := seedCourse(t, s)
	ls, err := s.Generations().CreateLessons(ctx, chapters[1].ID, []course.LessonSpec{
		{Number: 3, Type: course.LessonTextResponse, TypeID: 7, Name: "Explain"},
	})
	must(t, err)

	sub := &course.TextSubmission{
		LessonID:       ls[0].ID,
		Answers:        map[int]string{1: "because"},
		Grades:         map[int]course.TextGrade{1: {Score: 7, Feedback: "ok"}},
		TotalScore:     7,
		TotalQuestions: 1,
	}
	must(t, s.Submissions().SaveTextSubmission(ctx, sub))
	if sub.ID == 0 {
		t.Fatal("expected submission ID to be assigned")
	}

	row, err := s.Client().TextResponseSubmission.Get(ctx, sub.ID)
	must(t, err)
	if row.Grades[1].Score != 7 {
		t.Errorf("expected stored score 7, got %d", row.Grades[1].Score)
	}
}

func TestMarkLessonComplete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, _, lessons := seedCourse(t, s)
	repo := s.Generations()

	id := lessons[1][0].ID
	must(t, repo.MarkLessonComplete(ctx, id))
	l, err := repo.GetLesson(ctx, id)
	must(t, err)
	if !l.Complete {
		t.Error("expected lesson to be complete")
	}

	if err := repo.MarkLessonComplete(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLogs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	g, _, _ := seedCourse(t, s)
	logs := s.Logs()

	must(t, logs.Append(ctx, course.LogEntry{
		GenerationID: g.ID, Step: "chapter_generation", Status: course.LogStarted, Message: "planning",
	}))
	must(t, logs.Append(ctx, course.LogEntry{
		GenerationID: g.ID, Step: "chapter_generation", Status: course.LogCompleted,
		Level: course.LevelInfo, Data: map[string]any{"chapters": 2},
	}))

	got, err := logs.List(ctx, g.ID)
	must(t, err)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Status != course.LogStarted {
		t.Errorf("expected first entry started, got %q", got[0].Status)
	}
	if got[0].Level != course.LevelInfo {
		t.Errorf("expected default level info, got %q", got[0].Level)
	}
	if fmt.Sprint(got[1].Data["chapters"]) != "2" {
		t.Errorf("expected chapters=2 in data, got %v", got[1].Data["chapters"])
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "cerebras", Model: "qwen-3-coder-480b", Purpose: "chapter_plan", InputTokens: 100, OutputTokens: 50, LatencyMs: 100, Success: true, RequestBody: "req", ResponseBody: "resp"},
		{Provider: "cerebras", Model: "qwen-3-coder-480b", Purpose: "quiz", InputTokens: 10, OutputTokens: 5, LatencyMs: 200, Success: true},
		{Provider: "cerebras", Model: "qwen-3-235b-a22b-instruct-2507", Purpose: "quiz", InputTokens: 20, OutputTokens: 15, LatencyMs: 400, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		must(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	must(t, err)
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	quiz, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz", Limit: 1})
	must(t, err)
	if len(quiz) != 1 || quiz[0].Purpose != "quiz" {
		t.Fatalf("expected one quiz event, got %+v", quiz)
	}

	first, err := repo.GetLLMEvent(ctx, all[len(all)-1].ID)
	must(t, err)
	if first == nil || first.RequestBody != "req" {
		t.Fatalf("expected first event with request body, got %+v", first)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	must(t, err)
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	must(t, err)
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	if p := byPurpose[0]; p.Purpose != "quiz" || p.Calls != 2 || p.InputTokens != 30 || p.AvgLatencyMs != 300 {
		t.Errorf("unexpected quiz usage: %+v", p)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	must(t, err)
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if m := byModel[0]; m.Model != "qwen-3-coder-480b" || m.Calls != 2 || m.OutputTokens != 55 {
		t.Errorf("unexpected model usage: %+v", m)
	}
}
