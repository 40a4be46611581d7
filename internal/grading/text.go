package grading

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
	"github.com/abhisek/coursegen/internal/logger"
)

const fallbackFeedback = "Your answer was saved but could not be graded automatically. " +
	"Compare it with the lesson material and try again later for detailed feedback."

// TextItem is one free-text answer to grade.
type TextItem struct {
	Question        string
	ReferenceAnswer string
	Answer          string
}

// TextResult is the grade of a batch. Grades are parallel to the items.
type TextResult struct {
	Grades   []course.TextGrade
	Overall  float64
	Fallback bool
}

// TextGrader grades a batch of free-text answers with one LLM call.
type TextGrader struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewTextGrader creates a free-text grader.
func NewTextGrader(provider llm.Provider, cfg Config, log *logger.Logger) *TextGrader {
	return &TextGrader{provider: provider, cfg: cfg, log: log}
}

// TextGradingContract is the shape of a grading response.
var TextGradingContract = &llmjson.Contract{
	Name: "text-grading",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grades": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"score":        map[string]any{"type": []any{"integer", "number", "string"}},
						"feedback":     map[string]any{"type": "string"},
						"strengths":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"improvements": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []any{"score", "feedback"},
				},
			},
		},
		"required": []any{"grades"},
	},
}

type gradeItem struct {
	Score        llmjson.Int `json:"score"`
	Feedback     string      `json:"feedback"`
	Strengths    []string    `json:"strengths"`
	Improvements []string    `json:"improvements"`
}

type gradeOutput struct {
	Grades []gradeItem `json:"grades"`
}

// Grade never fails: LLM errors, malformed output and a grade count that
// does not match the items all produce the fallback result.
func (g *TextGrader) Grade(ctx context.Context, items []TextItem) TextResult {
	if len(items) == 0 {
		return TextResult{}
	}

	grades, err := g.grade(ctx, items)
	if err != nil {
		g.log.Warn("text grading failed, using fallback score", "items", len(items), "error", err)
		grades = lo.Times(len(items), func(int) course.TextGrade {
			return course.TextGrade{Score: g.cfg.FallbackScore, Feedback: fallbackFeedback}
		})
		return TextResult{Grades: grades, Overall: overall(grades), Fallback: true}
	}
	return TextResult{Grades: grades, Overall: overall(grades)}
}

func (g *TextGrader) grade(ctx context.Context, items []TextItem) ([]course.TextGrade, error) {
	ctx = llm.WithPurpose(ctx, "text-grading")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    textGradingSystemPrompt,
		Messages:  llm.UserMessage(buildGradingMessage(items)),
		Model:     g.cfg.Model,
		MaxTokens: g.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var out gradeOutput
	if err := llmjson.Decode(resp.Content, llmjson.Object, TextGradingContract, &out); err != nil {
		return nil, err
	}
	if len(out.Grades) != len(items) {
		return nil, fmt.Errorf("got %d grades for %d answers", len(out.Grades), len(items))
	}

	for i, o := range out.Grades {
		if !o.Score.Valid {
			return nil, fmt.Errorf("grade %d: unparseable score", i+1)
		}
	}

	return lo.Map(out.Grades, func(o gradeItem, _ int) course.TextGrade {
		return course.TextGrade{
			Score:        lo.Clamp(o.Score.Value, 0, 100),
			Feedback:     strings.TrimSpace(o.Feedback),
			Strengths:    o.Strengths,
			Improvements: o.Improvements,
		}
	}), nil
}

// overall is the mean score rounded to one decimal.
func overall(grades []course.TextGrade) float64 {
	if len(grades) == 0 {
		return 0
	}
	sum := lo.SumBy(grades, func(g course.TextGrade) int { return g.Score })
	return math.Round(float64(sum)/float64(len(grades))*10) / 10
}

const textGradingSystemPrompt = `You grade a learner's written answers to review questions of a programming course.

For every answer, compare it with the reference answer and give:
- "score": 0 to 100
- "feedback": two or three sentences addressed to the learner
- "strengths": short phrases of what the answer got right
- "improvements": short phrases of what is missing or wrong

Grade the answers in the order given and return exactly one grade per answer.

Respond with ONLY a JSON object of this shape:
{"grades": [{"score": 80, "feedback": "...", "strengths": ["..."], "improvements": ["..."]}]}`

func buildGradingMessage(items []TextItem) string {
	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "Question %d: %s\n", i+1, it.Question)
		fmt.Fprintf(&b, "Reference answer: %s\n", it.ReferenceAnswer)
		fmt.Fprintf(&b, "Learner answer: %s\n\n", it.Answer)
	}
	return b.String()
}
