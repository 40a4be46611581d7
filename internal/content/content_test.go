package content

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/search"
)

func testLesson(t course.LessonType) course.Lesson {
	return course.Lesson{
		ID:          42,
		ChapterID:   7,
		Number:      3,
		Type:        t,
		TypeID:      t.ID(),
		Name:        "Loops in Python",
		Description: "Repeat work with for and while",
		Details:     "range, break, continue",
		Goals:       "Write a loop that sums a list",
		Guidelines:  "Use small examples",
	}
}

type fakeVector struct {
	snippets []search.Snippet
	err      error
	queries  []string
}

func (f *fakeVector) Search(_ context.Context, q string, _ int) ([]search.Snippet, error) {
	f.queries = append(f.queries, q)
	return f.snippets, f.err
}

type fakeWeb struct {
	results []search.WebResult
	err     error
	queries []string
}

func (f *fakeWeb) Search(_ context.Context, q string) ([]search.WebResult, error) {
	f.queries = append(f.queries, q)
	return f.results, f.err
}

type fakeVideos struct {
	videos  []course.Video
	err     error
	queries []search.VideoQuery
}

func (f *fakeVideos) SearchVideos(_ context.Context, q search.VideoQuery) ([]course.Video, error) {
	f.queries = append(f.queries, q)
	return f.videos, f.err
}

type fakeSaver struct {
	mu    sync.Mutex
	saved map[int]course.Artifact
	err   error
}

func (f *fakeSaver) SaveArtifact(_ context.Context, lessonID int, a course.Artifact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.saved == nil {
		f.saved = map[int]course.Artifact{}
	}
	f.saved[lessonID] = a
	return nil
}

var errBoom = errors.New("boom")
