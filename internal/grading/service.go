package grading

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/store"
)

// ErrNoQuestions is returned when a lesson has no open questions to answer.
var ErrNoQuestions = errors.New("lesson has no text questions")

// ArtifactReader loads the graded artifacts.
type ArtifactReader interface {
	Quiz(ctx context.Context, quizID int) (*course.Quiz, error)
	TextQuestions(ctx context.Context, lessonID int) ([]course.TextQuestion, error)
}

// LessonCompleter records that a learner finished a lesson.
type LessonCompleter interface {
	MarkLessonComplete(ctx context.Context, lessonID int) error
}

// QuizResult is the outcome of one quiz submission.
type QuizResult struct {
	Attempt         course.QuizAttempt `json:"attempt"`
	Percentage      int                `json:"percentage"`
	Passed          bool               `json:"passed"`
	LessonCompleted bool               `json:"lesson_completed"`
}

// TextResponseResult is the outcome of one free-text submission.
type TextResponseResult struct {
	Submission      course.TextSubmission `json:"submission"`
	Passed          bool                  `json:"passed"`
	LessonCompleted bool                  `json:"lesson_completed"`
}

// Service grades submissions and persists them.
type Service struct {
	artifacts   ArtifactReader
	submissions store.SubmissionRepo
	lessons     LessonCompleter
	grader      *TextGrader
	cfg         Config
	log         *logger.Logger
}

// NewService creates a grading service.
func NewService(artifacts ArtifactReader, submissions store.SubmissionRepo, lessons LessonCompleter, grader *TextGrader, cfg Config, log *logger.Logger) *Service {
	return &Service{
		artifacts:   artifacts,
		submissions: submissions,
		lessons:     lessons,
		grader:      grader,
		cfg:         cfg,
		log:         log,
	}
}

// SubmitQuiz grades answers keyed by question index, stores the attempt
// and marks the lesson complete when the pass threshold is reached.
func (s *Service) SubmitQuiz(ctx context.Context, quizID int, answers map[int]string) (*QuizResult, error) {
	quiz, err := s.artifacts.Quiz(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("load quiz %d: %w", quizID, err)
	}

	attempt := ScoreQuiz(quiz.Questions, answers)
	attempt.QuizID = quiz.ID
	if err := s.submissions.SaveQuizAttempt(ctx, &attempt); err != nil {
		return nil, fmt.Errorf("save quiz attempt: %w", err)
	}

	res := &QuizResult{
		Attempt:    attempt,
		Percentage: attempt.Percentage(),
		Passed:     Passed(attempt.Score, attempt.Total, s.cfg.PassThreshold),
	}
	if res.Passed {
		res.LessonCompleted = s.complete(ctx, quiz.LessonID)
	}
	return res, nil
}

// SubmitTextResponses grades answers keyed by question number with one
// LLM call, stores the submission and marks the lesson complete on pass.
func (s *Service) SubmitTextResponses(ctx context.Context, lessonID int, answers map[int]string) (*TextResponseResult, error) {
	questions, err := s.artifacts.TextQuestions(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("load text questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].Number < questions[j].Number })

	items := make([]TextItem, len(questions))
	recorded := make(map[int]string, len(questions))
	for i, q := range questions {
		answer := answers[q.Number]
		recorded[q.Number] = answer
		items[i] = TextItem{Question: q.Question, ReferenceAnswer: q.ReferenceAnswer, Answer: answer}
	}

	graded := s.grader.Grade(ctx, items)
	sub := course.TextSubmission{
		LessonID:       lessonID,
		Answers:        recorded,
		Grades:         make(map[int]course.TextGrade, len(questions)),
		TotalScore:     graded.Overall,
		TotalQuestions: len(questions),
		Fallback:       graded.Fallback,
	}
	for i, q := range questions {
		sub.Grades[q.Number] = graded.Grades[i]
	}
	if err := s.submissions.SaveTextSubmission(ctx, &sub); err != nil {
		return nil, fmt.Errorf("save text submission: %w", err)
	}

	res := &TextResponseResult{
		Submission: sub,
		Passed:     sub.TotalScore >= s.cfg.PassThreshold*100,
	}
	if res.Passed {
		res.LessonCompleted = s.complete(ctx, lessonID)
	}
	return res, nil
}

// complete marks the lesson done. A failure is logged; the graded
// submission is already stored.
func (s *Service) complete(ctx context.Context, lessonID int) bool {
	if err := s.lessons.MarkLessonComplete(ctx, lessonID); err != nil {
		s.log.Warn("failed to mark lesson complete", "lesson_id", lessonID, "error", err)
		return false
	}
	return true
}
