package generation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/store"
)

// memDB is an in-memory stand-in for the store repositories.
type memDB struct {
	mu          sync.Mutex
	nextID      int
	generations map[int]*course.Generation
	chapters    map[int]*course.Chapter
	lessons     map[int]*course.Lesson
	artifacts   map[int]course.Artifact
	logs        []course.LogEntry
	failAppend  bool
}

func newMemDB() *memDB {
	return &memDB{
		generations: map[int]*course.Generation{},
		chapters:    map[int]*course.Chapter{},
		lessons:     map[int]*course.Lesson{},
		artifacts:   map[int]course.Artifact{},
	}
}

func (db *memDB) id() int {
	db.nextID++
	return db.nextID
}

func (db *memDB) Generations() store.GenerationRepo { return memGenerations{db} }
func (db *memDB) Artifacts() store.ArtifactRepo     { return memArtifacts{db} }
func (db *memDB) Logs() store.LogRepo               { return memLogs{db} }

func (db *memDB) steps(generationID int) []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []string
	for _, e := range db.logs {
		if e.GenerationID == generationID {
			out = append(out, e.Step+":"+string(e.Status))
		}
	}
	return out
}

type memGenerations struct{ db *memDB }

func (r memGenerations) Create(_ context.Context, prompt, exp string) (*course.Generation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	g := &course.Generation{ID: r.db.id(), Prompt: prompt, ExperienceLevel: exp, Status: course.StatusGenerating, CreatedAt: time.Now()}
	r.db.generations[g.ID] = g
	cp := *g
	return &cp, nil
}

func (r memGenerations) Get(_ context.Context, id int) (*course.Generation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	g, ok := r.db.generations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *g
	out.Chapters = nil
	for _, ch := range r.db.chapters {
		if ch.GenerationID != id {
			continue
		}
		c := *ch
		for _, l := range r.db.lessons {
			if l.ChapterID == ch.ID {
				c.Lessons = append(c.Lessons, *l)
			}
		}
		sort.Slice(c.Lessons, func(i, j int) bool { return c.Lessons[i].Number < c.Lessons[j].Number })
		out.Chapters = append(out.Chapters, c)
	}
	sort.Slice(out.Chapters, func(i, j int) bool { return out.Chapters[i].Number < out.Chapters[j].Number })
	return &out, nil
}

func (r memGenerations) List(_ context.Context, limit int) ([]course.Generation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []course.Generation
	for _, g := range r.db.generations {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memGenerations) transition(id int, next course.Status) (*course.Generation, error) {
	g, ok := r.db.generations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if !g.Status.CanTransition(next) {
		return nil, store.ErrInvalidTransition
	}
	g.Status = next
	return g, nil
}

func (r memGenerations) Complete(_ context.Context, id, chapters, lessons int, data map[string]any) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	g, err := r.transition(id, course.StatusCompleted)
	if err != nil {
		return err
	}
	now := time.Now()
	g.TotalChapters, g.TotalLessons, g.CourseData, g.CompletedAt = chapters, lessons, data, &now
	return nil
}

func (r memGenerations) Fail(_ context.Context, id int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	_, err := r.transition(id, course.StatusFailed)
	return err
}

func (r memGenerations) CreateChapters(_ context.Context, generationID int, specs []course.ChapterSpec) ([]course.Chapter, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]course.Chapter, 0, len(specs))
	for _, s := range specs {
		ch := &course.Chapter{ID: r.db.id(), GenerationID: generationID, Number: s.Number, Name: s.Name, Description: s.Description, Difficulty: s.Difficulty}
		r.db.chapters[ch.ID] = ch
		out = append(out, *ch)
	}
	return out, nil
}

func (r memGenerations) CreateLessons(_ context.Context, chapterID int, specs []course.LessonSpec) ([]course.Lesson, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.createLessons(chapterID, specs), nil
}

func (r memGenerations) createLessons(chapterID int, specs []course.LessonSpec) []course.Lesson {
	out := make([]course.Lesson, 0, len(specs))
	for _, s := range specs {
		l := &course.Lesson{ID: r.db.id(), ChapterID: chapterID, Number: s.Number, Type: s.Type, TypeID: s.TypeID, Name: s.Name}
		r.db.lessons[l.ID] = l
		out = append(out, *l)
	}
	return out
}

func (r memGenerations) AddFinalProject(_ context.Context, generationID int, spec course.ChapterSpec, l course.LessonSpec, p *course.Project) (*course.Chapter, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	number := 1
	for _, ch := range r.db.chapters {
		if ch.GenerationID == generationID && ch.Number >= number {
			number = ch.Number + 1
		}
	}
	ch := &course.Chapter{ID: r.db.id(), GenerationID: generationID, Number: number, Name: spec.Name, Difficulty: spec.Difficulty}
	r.db.chapters[ch.ID] = ch
	l.Number = 1
	lessons := r.createLessons(ch.ID, []course.LessonSpec{l})
	p.IsFinalProject = true
	r.db.artifacts[lessons[0].ID] = p
	out := *ch
	out.Lessons = lessons
	return &out, nil
}

func (r memGenerations) GetLesson(_ context.Context, id int) (*course.Lesson, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	l, ok := r.db.lessons[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r memGenerations) MarkLessonComplete(_ context.Context, id int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	l, ok := r.db.lessons[id]
	if !ok {
		return store.ErrNotFound
	}
	l.Complete = true
	return nil
}

type memArtifacts struct{ db *memDB }

func (r memArtifacts) SaveArtifact(_ context.Context, lessonID int, a course.Artifact) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	l, ok := r.db.lessons[lessonID]
	if !ok {
		return store.ErrNotFound
	}
	if !course.Accepts(l.Type, a) {
		return store.ErrArtifactMismatch
	}
	r.db.artifacts[lessonID] = a
	return nil
}

func (r memArtifacts) LessonContent(_ context.Context, lessonID int) (*course.LessonContent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	l, ok := r.db.lessons[lessonID]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := &course.LessonContent{Lesson: *l}
	switch a := r.db.artifacts[lessonID].(type) {
	case *course.Quiz:
		c.Quiz = a
	case *course.Article:
		c.Article = a
	case *course.Project:
		c.Project = a
	}
	return c, nil
}

func (r memArtifacts) Quiz(context.Context, int) (*course.Quiz, error) {
	return nil, errors.New("not implemented")
}

func (r memArtifacts) TextQuestions(context.Context, int) ([]course.TextQuestion, error) {
	return nil, errors.New("not implemented")
}

type memLogs struct{ db *memDB }

func (r memLogs) Append(_ context.Context, e course.LogEntry) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failAppend {
		return errors.New("log table unavailable")
	}
	e.ID = len(r.db.logs) + 1
	e.CreatedAt = time.Now()
	r.db.logs = append(r.db.logs, e)
	return nil
}

func (r memLogs) List(_ context.Context, generationID int) ([]course.LogEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []course.LogEntry
	for _, e := range r.db.logs {
		if e.GenerationID == generationID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeChapters struct {
	specs []course.ChapterSpec
	err   error
}

func (f fakeChapters) Plan(context.Context, string, string) ([]course.ChapterSpec, error) {
	return f.specs, f.err
}

type lessonPlanFunc func(ctx context.Context, ch course.ChapterSpec) ([]course.LessonSpec, error)

func (f lessonPlanFunc) Plan(ctx context.Context, ch course.ChapterSpec, _, _ string) ([]course.LessonSpec, error) {
	return f(ctx, ch)
}

type runFunc func(ctx context.Context, l course.Lesson) (course.Artifact, error)

func (f runFunc) Run(ctx context.Context, l course.Lesson) (course.Artifact, error) { return f(ctx, l) }

type fakeSynth struct {
	err   error
	calls int
}

func (f *fakeSynth) Synthesize(_ context.Context, in content.FinalProjectInput) (*content.FinalProject, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &content.FinalProject{
		Chapter: course.ChapterSpec{Name: "Final Project", Difficulty: 7},
		Lesson:  course.LessonSpec{Number: 1, Type: course.LessonFinalProject, TypeID: 9, Name: "Capstone"},
		Project: &course.Project{Name: "capstone", Files: []course.ProjectFile{{Path: "a"}, {Path: "b"}, {Path: "c"}, {Path: "d"}}},
	}, nil
}

func chapterSpecs(n int) []course.ChapterSpec {
	out := make([]course.ChapterSpec, n)
	for i := range out {
		out[i] = course.ChapterSpec{Number: i + 1, Name: fmt.Sprintf("Chapter %d", i+1), Difficulty: i + 1}
	}
	return out
}

// twoLessons plans an article and a quiz for every chapter.
func twoLessons(_ context.Context, ch course.ChapterSpec) ([]course.LessonSpec, error) {
	return []course.LessonSpec{
		{Number: 1, Type: course.LessonArticle, TypeID: 2, Name: ch.Name + " intro"},
		{Number: 2, Type: course.LessonQuiz, TypeID: 6, Name: ch.Name + " quiz"},
	}, nil
}

func okContent(_ context.Context, l course.Lesson) (course.Artifact, error) {
	switch l.Type {
	case course.LessonQuiz:
		return &course.Quiz{Questions: []course.QuizQuestion{{Question: "q", CorrectAnswer: "A"}}}, nil
	default:
		return &course.Article{Content: "text"}, nil
	}
}
