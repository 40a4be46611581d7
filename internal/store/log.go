package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/generationlog"
	"github.com/abhisek/coursegen/internal/course"
)

type logRepo struct {
	client *ent.Client
}

func (r *logRepo) Append(ctx context.Context, e course.LogEntry) error {
	level := e.Level
	if level == "" {
		level = course.LevelInfo
	}
	c := r.client.GenerationLog.Create().
		SetCourseGenerationID(e.GenerationID).
		SetStep(e.Step).
		SetStatus(generationlog.Status(e.Status)).
		SetLevel(generationlog.Level(level)).
		SetMessage(e.Message)
	if e.Data != nil {
		c = c.SetData(e.Data)
	}
	if err := c.Exec(ctx); err != nil {
		return fmt.Errorf("append log %s: %w", e.Step, err)
	}
	return nil
}

func (r *logRepo) List(ctx context.Context, generationID int) ([]course.LogEntry, error) {
	rows, err := r.client.GenerationLog.Query().
		Where(generationlog.CourseGenerationID(generationID)).
		Order(ent.Asc(generationlog.FieldTimestamp), ent.Asc(generationlog.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	out := make([]course.LogEntry, 0, len(rows))
	for _, l := range rows {
		out = append(out, course.LogEntry{
			ID:           l.ID,
			GenerationID: l.CourseGenerationID,
			Step:         l.Step,
			Status:       course.LogStatus(l.Status),
			Level:        course.LogLevel(l.Level),
			Message:      l.Message,
			Data:         l.Data,
			CreatedAt:    l.Timestamp,
		})
	}
	return out, nil
}
