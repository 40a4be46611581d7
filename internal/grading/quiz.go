// Package grading scores quiz attempts and free-text answers and records
// lesson completion.
package grading

import (
	"strings"

	"github.com/abhisek/coursegen/internal/course"
)

// ScoreQuiz grades answers, keyed by question index, against the quiz's
// correct keys. A missing answer counts as "" and is wrong. Comparison is
// exact.
func ScoreQuiz(questions []course.QuizQuestion, answers map[int]string) course.QuizAttempt {
	attempt := course.QuizAttempt{
		Answers: make(map[int]string, len(questions)),
		Results: make([]course.QuestionResult, 0, len(questions)),
		Total:   len(questions),
	}

	for i, q := range questions {
		answer := answers[i]
		correct := answer == q.CorrectAnswer
		if correct {
			attempt.Score++
		}
		attempt.Answers[i] = answer
		attempt.Results = append(attempt.Results, course.QuestionResult{
			QuestionIndex: i,
			Question:      q.Question,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
			Explanation:   q.Explanation,
		})
	}
	return attempt
}

// Passed reports whether score out of total reaches threshold.
func Passed(score, total int, threshold float64) bool {
	if total == 0 {
		return false
	}
	return float64(score)/float64(total) >= threshold
}

// NormalizeAnswer upper-cases and trims a submitted option key.
func NormalizeAnswer(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
