package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/internal/course"
)

type generationRepo struct {
	client *ent.Client
}

func (r *generationRepo) Create(ctx context.Context, prompt, experienceLevel string) (*course.Generation, error) {
	g, err := r.client.CourseGeneration.Create().
		SetPrompt(prompt).
		SetExperienceLevel(experienceLevel).
		SetStatus(coursegeneration.StatusGenerating).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create generation: %w", err)
	}
	out := toGeneration(g)
	return &out, nil
}

func (r *generationRepo) Get(ctx context.Context, id int) (*course.Generation, error) {
	g, err := r.client.CourseGeneration.Query().
		Where(coursegeneration.ID(id)).
		WithChapters(func(q *ent.ChapterQuery) {
			q.Order(ent.Asc(chapter.FieldNumber)).
				WithLessons(func(lq *ent.LessonQuery) {
					lq.Order(ent.Asc(lesson.FieldNumber))
				})
		}).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("generation %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get generation %d: %w", id, err)
	}

	out := toGeneration(g)
	for _, ch := range g.Edges.Chapters {
		c := toChapter(ch)
		for _, l := range ch.Edges.Lessons {
			c.Lessons = append(c.Lessons, toLesson(l))
		}
		out.Chapters = append(out.Chapters, c)
	}
	return &out, nil
}

func (r *generationRepo) List(ctx context.Context, limit int) ([]course.Generation, error) {
	q := r.client.CourseGeneration.Query().
		Order(ent.Desc(coursegeneration.FieldCreateTime), ent.Desc(coursegeneration.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	out := make([]course.Generation, 0, len(rows))
	for _, g := range rows {
		out = append(out, toGeneration(g))
	}
	return out, nil
}

func (r *generationRepo) Complete(ctx context.Context, id, totalChapters, totalLessons int, data map[string]any) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		if err := checkTransition(ctx, tx, id, course.StatusCompleted); err != nil {
			return err
		}
		upd := tx.CourseGeneration.UpdateOneID(id).
			SetStatus(coursegeneration.StatusCompleted).
			SetTotalChapters(totalChapters).
			SetTotalLessons(totalLessons).
			SetCompletedAt(time.Now())
		if data != nil {
			upd = upd.SetCourseData(data)
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("complete generation %d: %w", id, err)
		}
		return nil
	})
}

func (r *generationRepo) Fail(ctx context.Context, id int) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		if err := checkTransition(ctx, tx, id, course.StatusFailed); err != nil {
			return err
		}
		if err := tx.CourseGeneration.UpdateOneID(id).
			SetStatus(coursegeneration.StatusFailed).
			Exec(ctx); err != nil {
			return fmt.Errorf("fail generation %d: %w", id, err)
		}
		return nil
	})
}

func checkTransition(ctx context.Context, tx *ent.Tx, id int, next course.Status) error {
	g, err := tx.CourseGeneration.Get(ctx, id)
	if ent.IsNotFound(err) {
		return fmt.Errorf("generation %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("get generation %d: %w", id, err)
	}
	cur := course.Status(g.Status)
	if !cur.CanTransition(next) {
		return fmt.Errorf("generation %d %s -> %s: %w", id, cur, next, ErrInvalidTransition)
	}
	return nil
}

func (r *generationRepo) CreateChapters(ctx context.Context, generationID int, specs []course.ChapterSpec) ([]course.Chapter, error) {
	var out []course.Chapter
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		builders := make([]*ent.ChapterCreate, 0, len(specs))
		for _, s := range specs {
			builders = append(builders, tx.Chapter.Create().
				SetCourseGenerationID(generationID).
				SetNumber(s.Number).
				SetName(s.Name).
				SetDescription(s.Description).
				SetDifficulty(s.Difficulty))
		}
		rows, err := tx.Chapter.CreateBulk(builders...).Save(ctx)
		if err != nil {
			return fmt.Errorf("create chapters: %w", err)
		}
		out = make([]course.Chapter, 0, len(rows))
		for _, c := range rows {
			out = append(out, toChapter(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *generationRepo) CreateLessons(ctx context.Context, chapterID int, specs []course.LessonSpec) ([]course.Lesson, error) {
	var out []course.Lesson
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		rows, err := tx.Lesson.CreateBulk(lessonBuilders(tx, chapterID, specs)...).Save(ctx)
		if err != nil {
			return fmt.Errorf("create lessons: %w", err)
		}
		out = make([]course.Lesson, 0, len(rows))
		for _, l := range rows {
			out = append(out, toLesson(l))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func lessonBuilders(tx *ent.Tx, chapterID int, specs []course.LessonSpec) []*ent.LessonCreate {
	builders := make([]*ent.LessonCreate, 0, len(specs))
	for _, s := range specs {
		builders = append(builders, tx.Lesson.Create().
			SetChapterID(chapterID).
			SetNumber(s.Number).
			SetLessonType(string(s.Type)).
			SetLessonTypeID(s.TypeID).
			SetName(s.Name).
			SetDescription(s.Description).
			SetDetails(s.Details).
			SetGoals(s.Goals).
			SetGuidelines(s.Guidelines))
	}
	return builders
}

func (r *generationRepo) AddFinalProject(ctx context.Context, generationID int, ch course.ChapterSpec, l course.LessonSpec, p *course.Project) (*course.Chapter, error) {
	var out course.Chapter
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		last, err := tx.Chapter.Query().
			Where(chapter.CourseGenerationID(generationID)).
			Order(ent.Desc(chapter.FieldNumber)).
			First(ctx)
		switch {
		case ent.IsNotFound(err):
			ch.Number = 1
		case err != nil:
			return fmt.Errorf("find last chapter: %w", err)
		default:
			ch.Number = last.Number + 1
		}

		c, err := tx.Chapter.Create().
			SetCourseGenerationID(generationID).
			SetNumber(ch.Number).
			SetName(ch.Name).
			SetDescription(ch.Description).
			SetDifficulty(ch.Difficulty).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create final chapter: %w", err)
		}

		l.Number = 1
		lessons, err := tx.Lesson.CreateBulk(lessonBuilders(tx, c.ID, []course.LessonSpec{l})...).Save(ctx)
		if err != nil {
			return fmt.Errorf("create final lesson: %w", err)
		}
		le := lessons[0]

		if p != nil {
			p.IsFinalProject = true
			if err := saveProject(ctx, tx, le.ID, p); err != nil {
				return err
			}
		}

		out = toChapter(c)
		out.Lessons = []course.Lesson{toLesson(le)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *generationRepo) GetLesson(ctx context.Context, id int) (*course.Lesson, error) {
	l, err := r.client.Lesson.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("lesson %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson %d: %w", id, err)
	}
	out := toLesson(l)
	return &out, nil
}

func (r *generationRepo) MarkLessonComplete(ctx context.Context, lessonID int) error {
	err := r.client.Lesson.UpdateOneID(lessonID).SetIsComplete(true).Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("lesson %d: %w", lessonID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("mark lesson %d complete: %w", lessonID, err)
	}
	return nil
}

func toGeneration(g *ent.CourseGeneration) course.Generation {
	return course.Generation{
		ID:              g.ID,
		Prompt:          g.Prompt,
		ExperienceLevel: g.ExperienceLevel,
		Status:          course.Status(g.Status),
		TotalChapters:   g.TotalChapters,
		TotalLessons:    g.TotalLessons,
		CourseData:      g.CourseData,
		CreatedAt:       g.CreateTime,
		UpdatedAt:       g.UpdateTime,
		CompletedAt:     g.CompletedAt,
	}
}

func toChapter(c *ent.Chapter) course.Chapter {
	return course.Chapter{
		ID:           c.ID,
		GenerationID: c.CourseGenerationID,
		Number:       c.Number,
		Name:         c.Name,
		Description:  c.Description,
		Difficulty:   c.Difficulty,
	}
}

func toLesson(l *ent.Lesson) course.Lesson {
	return course.Lesson{
		ID:          l.ID,
		ChapterID:   l.ChapterID,
		Number:      l.Number,
		Type:        course.LessonType(l.LessonType),
		TypeID:      l.LessonTypeID,
		Name:        l.Name,
		Description: l.Description,
		Details:     l.Details,
		Goals:       l.Goals,
		Guidelines:  l.Guidelines,
		Complete:    l.IsComplete,
	}
}
