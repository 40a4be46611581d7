package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
	"github.com/abhisek/coursegen/internal/logger"
)

func TestChapterPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text(`Here is your plan:
[
  {"chapter_number": "1", "chapter_name": "Python Basics", "chapter_description": "Syntax", "chapter_difficulty": "2"},
  {"chapter_number": 2, "chapter_name": "Web Scraping", "chapter_description": ["requests", "bs4"], "chapter_difficulty": 14},
  {"chapter_number": 3, "chapter_name": "Data Storage", "chapter_description": "SQLite", "chapter_difficulty": "hard"}
]
Good luck!`))
	p := NewChapterPlanner(mock, DefaultConfig(), logger.Nop())

	chapters, err := p.Plan(context.Background(), "Build a web scraper", "beginner")
	require.NoError(t, err)
	require.Len(t, chapters, 3)

	assert.Equal(t, course.ChapterSpec{Number: 1, Name: "Python Basics", Description: "Syntax", Difficulty: 2}, chapters[0])
	assert.Equal(t, 10, chapters[1].Difficulty)
	assert.Equal(t, "requests\nbs4", chapters[1].Description)
	assert.Equal(t, course.DifficultyUnset, chapters[2].Difficulty)

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].System, "beginner")
	assert.Contains(t, mock.Calls[0].System, "at most 5 chapters")
	assert.Equal(t, "Build a web scraper", mock.Calls[0].Messages[0].Content)
	assert.Equal(t, 20000, mock.Calls[0].MaxTokens)
	assert.Equal(t, []string{"chapter-plan"}, mock.Purposes)
}

func TestChapterPlanTruncatesAndRenumbers(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text(`[
		{"chapter_number": 4, "chapter_name": "A", "chapter_difficulty": 1},
		{"chapter_number": 4, "chapter_name": "", "chapter_difficulty": 1},
		{"chapter_number": 9, "chapter_name": "B", "chapter_difficulty": 2},
		{"chapter_number": 1, "chapter_name": "C", "chapter_difficulty": 3}
	]`))
	cfg := DefaultConfig()
	cfg.MaxChapters = 2
	p := NewChapterPlanner(mock, cfg, logger.Nop())

	chapters, err := p.Plan(context.Background(), "x", "y")
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, 1, chapters[0].Number)
	assert.Equal(t, "A", chapters[0].Name)
	assert.Equal(t, 2, chapters[1].Number)
	assert.Equal(t, "B", chapters[1].Name)
}

func TestChapterPlanFailures(t *testing.T) {
	tests := []struct {
		name    string
		resp    llm.MockResponse
		checkFn func(t *testing.T, err error)
	}{
		{
			name: "llm unavailable",
			resp: llm.Fail(&llm.ErrUnavailable{Primary: errors.New("a"), Secondary: errors.New("b")}),
			checkFn: func(t *testing.T, err error) {
				var unavailable *llm.ErrUnavailable
				assert.ErrorAs(t, err, &unavailable)
			},
		},
		{
			name: "no json",
			resp: llm.Text("I cannot help with that."),
			checkFn: func(t *testing.T, err error) {
				var malformed *llmjson.MalformedOutputError
				assert.ErrorAs(t, err, &malformed)
			},
		},
		{
			name: "wrong shape",
			resp: llm.Text(`{"chapters": []}`),
			checkFn: func(t *testing.T, err error) {
				var ce *llmjson.ContractError
				assert.ErrorAs(t, err, &ce)
			},
		},
		{
			name: "only unnamed chapters",
			resp: llm.Text(`[{"chapter_name": "  "}]`),
			checkFn: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "no named chapters")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewChapterPlanner(llm.NewMockProvider(tt.resp), DefaultConfig(), logger.Nop())
			_, err := p.Plan(context.Background(), "x", "y")
			require.Error(t, err)
			var cpe *ChapterPlanningError
			require.ErrorAs(t, err, &cpe)
			tt.checkFn(t, err)
		})
	}
}

func TestOutline(t *testing.T) {
	got := Outline([]course.ChapterSpec{
		{Number: 1, Name: "Basics", Difficulty: 2},
		{Number: 2, Name: "Advanced", Difficulty: 7},
	})
	assert.Equal(t, "Chapter 1: Basics (Difficulty: 2/10)\nChapter 2: Advanced (Difficulty: 7/10)", got)
}
