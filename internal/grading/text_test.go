package grading

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/logger"
)

func twoItems() []TextItem {
	return []TextItem{
		{Question: "What is a goroutine?", ReferenceAnswer: "A lightweight thread", Answer: "a cheap thread"},
		{Question: "What is a channel?", ReferenceAnswer: "A typed conduit", Answer: "no idea"},
	}
}

func TestTextGrader(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text(`{"grades": [
		{"score": 90, "feedback": "Good.", "strengths": ["concise"], "improvements": []},
		{"score": "15", "feedback": "Review channels.", "strengths": [], "improvements": ["define a channel"]}
	]}`))
	g := NewTextGrader(mock, DefaultConfig(), logger.Nop())

	res := g.Grade(context.Background(), twoItems())
	assert.False(t, res.Fallback)
	require.Len(t, res.Grades, 2)
	assert.Equal(t, 90, res.Grades[0].Score)
	assert.Equal(t, 15, res.Grades[1].Score)
	assert.Equal(t, []string{"define a channel"}, res.Grades[1].Improvements)
	assert.Equal(t, 52.5, res.Overall)

	assert.Equal(t, 1, mock.CallsWithPurpose("text-grading"))
	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "Question 2: What is a channel?")
	assert.Contains(t, msg, "Learner answer: a cheap thread")
}

func TestTextGrader_ClampsScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text(`{"grades": [{"score": 140, "feedback": "x"}, {"score": -3, "feedback": "y"}]}`))
	res := NewTextGrader(mock, DefaultConfig(), logger.Nop()).Grade(context.Background(), twoItems())
	assert.Equal(t, 100, res.Grades[0].Score)
	assert.Equal(t, 0, res.Grades[1].Score)
}

func TestTextGrader_Fallback(t *testing.T) {
	tests := map[string]llm.MockResponse{
		"llm error":       llm.Fail(errors.New("down")),
		"malformed":       llm.Text("Great answers all round!"),
		"count mismatch":  llm.Text(`{"grades": [{"score": 80, "feedback": "ok"}]}`),
		"score with unit": llm.Text(`{"grades":[{"score":"85%","feedback":"Good answer."},{"score":"90/100","feedback":"Great."}]}`),
	}
	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewTextGrader(llm.NewMockProvider(resp), DefaultConfig(), logger.Nop())
			res := g.Grade(context.Background(), twoItems())

			assert.True(t, res.Fallback)
			require.Len(t, res.Grades, 2)
			for _, gr := range res.Grades {
				assert.Equal(t, 50, gr.Score)
				assert.Equal(t, fallbackFeedback, gr.Feedback)
			}
			assert.Equal(t, 50.0, res.Overall)
		})
	}
}

func TestTextGrader_Empty(t *testing.T) {
	mock := llm.NewMockProvider()
	res := NewTextGrader(mock, DefaultConfig(), logger.Nop()).Grade(context.Background(), nil)
	assert.Empty(t, res.Grades)
	assert.Zero(t, mock.CallCount())
}

func TestOverallRounding(t *testing.T) {
	res := NewTextGrader(llm.NewMockProvider(llm.Text(`{"grades": [
		{"score": 70, "feedback": ""}, {"score": 71, "feedback": ""}, {"score": 71, "feedback": ""}
	]}`)), DefaultConfig(), logger.Nop()).Grade(context.Background(), append(twoItems(), TextItem{Question: "q3"}))
	assert.Equal(t, 70.7, res.Overall)
}
