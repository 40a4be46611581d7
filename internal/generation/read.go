package generation

import (
	"context"

	"github.com/abhisek/coursegen/internal/course"
)

// GetCourse returns a generation with its chapters and lessons.
func (o *Orchestrator) GetCourse(ctx context.Context, id int) (*course.Generation, error) {
	return o.generations.Get(ctx, id)
}

// GetLessonArtifact returns a lesson and whatever content it has.
func (o *Orchestrator) GetLessonArtifact(ctx context.Context, lessonID int) (*course.LessonContent, error) {
	return o.artifacts.LessonContent(ctx, lessonID)
}

// ListGenerations returns the most recent runs.
func (o *Orchestrator) ListGenerations(ctx context.Context, limit int) ([]course.Generation, error) {
	return o.generations.List(ctx, limit)
}

// Logs returns the audit trail of a run in order.
func (o *Orchestrator) Logs(ctx context.Context, generationID int) ([]course.LogEntry, error) {
	return o.logs.List(ctx, generationID)
}
