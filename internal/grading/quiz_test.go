package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/course"
)

func threeQuestions() []course.QuizQuestion {
	return []course.QuizQuestion{
		{Question: "q1", CorrectAnswer: "B", Explanation: "e1"},
		{Question: "q2", CorrectAnswer: "A", Explanation: "e2"},
		{Question: "q3", CorrectAnswer: "D", Explanation: "e3"},
	}
}

func TestScoreQuiz(t *testing.T) {
	tests := []struct {
		name    string
		answers map[int]string
		score   int
		correct []bool
	}{
		{
			name:    "all correct",
			answers: map[int]string{0: "B", 1: "A", 2: "D"},
			score:   3,
			correct: []bool{true, true, true},
		},
		{
			name:    "blank answer",
			answers: map[int]string{0: "B", 1: "", 2: "D"},
			score:   2,
			correct: []bool{true, false, true},
		},
		{
			name:    "missing answer",
			answers: map[int]string{0: "B", 2: "D"},
			score:   2,
			correct: []bool{true, false, true},
		},
		{
			name:    "case matters",
			answers: map[int]string{0: "b", 1: "A", 2: "D"},
			score:   2,
			correct: []bool{false, true, true},
		},
		{
			name:    "out of range index ignored",
			answers: map[int]string{5: "B"},
			score:   0,
			correct: []bool{false, false, false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ScoreQuiz(threeQuestions(), tt.answers)
			assert.Equal(t, tt.score, a.Score)
			assert.Equal(t, 3, a.Total)
			require.Len(t, a.Results, 3)
			for i, r := range a.Results {
				assert.Equal(t, i, r.QuestionIndex)
				assert.Equal(t, tt.correct[i], r.IsCorrect, "question %d", i)
			}
		})
	}
}

func TestScoreQuiz_BlankRecorded(t *testing.T) {
	a := ScoreQuiz(threeQuestions(), map[int]string{0: "B", 1: "", 2: "D"})
	assert.Equal(t, "", a.Results[1].UserAnswer)
	assert.Equal(t, "A", a.Results[1].CorrectAnswer)
	assert.Equal(t, "e2", a.Results[1].Explanation)
	assert.Equal(t, 67, a.Percentage())
}

func TestPassed(t *testing.T) {
	assert.True(t, Passed(7, 10, 0.7))
	assert.False(t, Passed(6, 10, 0.7))
	assert.True(t, Passed(3, 3, 0.7))
	assert.False(t, Passed(2, 3, 0.7))
	assert.False(t, Passed(0, 0, 0.7))
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "B", NormalizeAnswer(" b "))
	assert.Equal(t, "", NormalizeAnswer("  "))
}
