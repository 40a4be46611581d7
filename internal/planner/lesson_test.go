package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/logger"
)

var testChapter = course.ChapterSpec{Number: 2, Name: "Loops", Description: "for and while", Difficulty: 4}

func TestLessonPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text("```json\n" + `[
		{"lesson_number": "1", "lesson_type": "vid", "lesson_type_ID": "1", "lesson_name": "Watch loops", "lesson_description": "d", "lesson_details": "x", "lesson_goals": ["g1", "g2"], "lesson_guidlines": "step 1"},
		{"lesson_number": "2", "lesson_type": "ai-article", "lesson_type_ID": 2, "lesson_name": "Read loops", "lesson_guidelines": "write it"},
		{"lesson_number": "3", "lesson_type": "Multiple Choice Quiz", "lesson_name": "Quiz"},
		{"lesson_number": "4", "lesson_type": "mystery", "lesson_type_ID": 5, "lesson_name": "Exercise"},
		{"lesson_number": "5", "lesson_type": "weird", "lesson_type_ID": 42, "lesson_name": "Unknown"}
	]` + "\n```"))
	p := NewLessonPlanner(mock, DefaultConfig(), logger.Nop())

	lessons, err := p.Plan(context.Background(), testChapter, "Chapter 1: Basics (Difficulty: 2/10)", "learn python")
	require.NoError(t, err)
	require.Len(t, lessons, 5)

	for i, l := range lessons {
		assert.Equal(t, i+1, l.Number)
	}
	assert.Equal(t, course.LessonVideo, lessons[0].Type)
	assert.Equal(t, 1, lessons[0].TypeID)
	assert.Equal(t, "g1\ng2", lessons[0].Goals)
	assert.Equal(t, "step 1", lessons[0].Guidelines)
	assert.Equal(t, "write it", lessons[1].Guidelines)
	assert.Equal(t, course.LessonQuiz, lessons[2].Type)
	assert.Equal(t, course.LessonExercise, lessons[3].Type)
	assert.Equal(t, course.LessonUnknown, lessons[4].Type)
	assert.Zero(t, lessons[4].TypeID)

	require.Len(t, mock.Calls, 1)
	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "learn python")
	assert.Contains(t, msg, "Chapter 1: Basics (Difficulty: 2/10)")
	assert.Contains(t, msg, "Chapter 2: Loops (Difficulty: 4/10)")
	assert.Contains(t, msg, `lesson_type: "multiple-choice-quiz", lesson_type_ID: 6`)
	assert.Equal(t, []string{"lesson-plan"}, mock.Purposes)
}

func TestLessonPlanTruncates(t *testing.T) {
	mock := llm.NewMockProvider(llm.Text(`[
		{"lesson_type": "art", "lesson_name": "1"},
		{"lesson_type": "art", "lesson_name": "2"},
		{"lesson_type": "art", "lesson_name": "3"}
	]`))
	cfg := DefaultConfig()
	cfg.MaxLessons = 2
	p := NewLessonPlanner(mock, cfg, logger.Nop())

	lessons, err := p.Plan(context.Background(), testChapter, "", "p")
	require.NoError(t, err)
	assert.Len(t, lessons, 2)
}

func TestLessonPlanFailure(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.Fail(&llm.ErrProviderUnavailable{})},
		{"malformed", llm.Text("[{oops")},
		{"missing type", llm.Text(`[{"lesson_name": "x"}]`)},
		{"empty array", llm.Text(`[]`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewLessonPlanner(llm.NewMockProvider(tt.resp), DefaultConfig(), logger.Nop())
			_, err := p.Plan(context.Background(), testChapter, "", "p")
			var lpe *LessonPlanningError
			require.ErrorAs(t, err, &lpe)
			assert.Equal(t, 2, lpe.ChapterNumber)
		})
	}
}

func TestOrderingWarnings(t *testing.T) {
	tests := []struct {
		name  string
		types []course.LessonType
		want  int
	}{
		{"well ordered", []course.LessonType{course.LessonArticle, course.LessonQuiz, course.LessonSummary}, 0},
		{"practice first", []course.LessonType{course.LessonQuiz, course.LessonArticle}, 1},
		{"summary in middle", []course.LessonType{course.LessonArticle, course.LessonSummary, course.LessonQuiz}, 1},
		{"unknown type", []course.LessonType{course.LessonArticle, course.LessonUnknown}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lessons []course.LessonSpec
			for i, typ := range tt.types {
				lessons = append(lessons, course.LessonSpec{Number: i + 1, Type: typ})
			}
			assert.Len(t, OrderingWarnings(lessons), tt.want)
		})
	}
}
