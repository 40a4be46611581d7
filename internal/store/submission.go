package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/internal/course"
)

type submissionRepo struct {
	client *ent.Client
}

func (r *submissionRepo) SaveQuizAttempt(ctx context.Context, a *course.QuizAttempt) error {
	row, err := r.client.QuizAttempt.Create().
		SetQuizID(a.QuizID).
		SetAnswers(a.Answers).
		SetResults(a.Results).
		SetScore(a.Score).
		SetTotal(a.Total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	a.ID, a.CreatedAt = row.ID, row.CreateTime
	return nil
}

func (r *submissionRepo) SaveTextSubmission(ctx context.Context, s *course.TextSubmission) error {
	row, err := r.client.TextResponseSubmission.Create().
		SetLessonID(s.LessonID).
		SetAnswers(s.Answers).
		SetGrades(s.Grades).
		SetTotalScore(s.TotalScore).
		SetTotalQuestions(s.TotalQuestions).
		SetFallback(s.Fallback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save text submission: %w", err)
	}
	s.ID, s.SubmittedAt = row.ID, row.CreateTime
	return nil
}
