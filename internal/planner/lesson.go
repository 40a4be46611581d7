package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
	"github.com/abhisek/coursegen/internal/logger"
)

// LessonPlanner produces the typed lesson list of one chapter.
type LessonPlanner struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewLessonPlanner creates a lesson planner.
func NewLessonPlanner(provider llm.Provider, cfg Config, log *logger.Logger) *LessonPlanner {
	return &LessonPlanner{provider: provider, cfg: cfg, log: log}
}

type lessonOutput struct {
	Number      llmjson.Int    `json:"lesson_number"`
	Type        llmjson.String `json:"lesson_type"`
	TypeID      llmjson.Int    `json:"lesson_type_ID"`
	Name        llmjson.String `json:"lesson_name"`
	Description llmjson.String `json:"lesson_description"`
	Details     llmjson.String `json:"lesson_details"`
	Goals       llmjson.String `json:"lesson_goals"`
	Guidelines  llmjson.String `json:"lesson_guidelines"`

	// Older prompts asked for the misspelt key; both are accepted.
	GuidelinesAlt llmjson.String `json:"lesson_guidlines"`
}

// Plan makes one LLM call for ch and returns lessons numbered 1..M, M at
// most MaxLessons. Any failure is a *LessonPlanningError.
func (p *LessonPlanner) Plan(ctx context.Context, ch course.ChapterSpec, outline, prompt string) ([]course.LessonSpec, error) {
	ctx = llm.WithPurpose(ctx, "lesson-plan")

	req := llm.Request{
		Messages:    llm.UserMessage(buildLessonUserMessage(ch, outline, prompt, p.cfg)),
		Model:       p.cfg.Model,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, &LessonPlanningError{ChapterNumber: ch.Number, Err: err}
	}

	var out []lessonOutput
	if err := llmjson.Decode(resp.Content, llmjson.Array, LessonPlanContract, &out); err != nil {
		return nil, &LessonPlanningError{ChapterNumber: ch.Number, Err: err}
	}

	lessons := normalizeLessons(out, p.cfg.MaxLessons)
	if len(lessons) == 0 {
		return nil, &LessonPlanningError{ChapterNumber: ch.Number, Err: errors.New("response contained no named lessons")}
	}

	log := p.log.With("chapter", ch.Number)
	if len(lessons) < p.cfg.MinLessons {
		log.Warn("lesson plan below minimum", "lessons", len(lessons), "min", p.cfg.MinLessons)
	}
	for _, w := range OrderingWarnings(lessons) {
		log.Warn("lesson plan ordering", "issue", w)
	}
	return lessons, nil
}

// normalizeLessons keeps the model's order, drops unnamed entries,
// truncates to max, renumbers from 1 and resolves each lesson type from
// its tag or numeric id. Unresolvable types become course.LessonUnknown.
func normalizeLessons(raw []lessonOutput, max int) []course.LessonSpec {
	named := lo.Filter(raw, func(l lessonOutput, _ int) bool {
		return strings.TrimSpace(string(l.Name)) != ""
	})
	if max > 0 && len(named) > max {
		named = named[:max]
	}
	return lo.Map(named, func(l lessonOutput, i int) course.LessonSpec {
		t := course.ResolveLessonType(string(l.Type), l.TypeID.Or(0))
		guidelines := string(l.Guidelines)
		if strings.TrimSpace(guidelines) == "" {
			guidelines = string(l.GuidelinesAlt)
		}
		return course.LessonSpec{
			Number:      i + 1,
			Type:        t,
			TypeID:      t.ID(),
			Name:        strings.TrimSpace(string(l.Name)),
			Description: strings.TrimSpace(string(l.Description)),
			Details:     strings.TrimSpace(string(l.Details)),
			Goals:       strings.TrimSpace(string(l.Goals)),
			Guidelines:  strings.TrimSpace(guidelines),
		}
	})
}

// OrderingWarnings reports departures from the lesson ordering rules the
// planner prompt asks for. They are advisory and never reject a plan.
func OrderingWarnings(lessons []course.LessonSpec) []string {
	var warnings []string
	learned := false
	for i, l := range lessons {
		switch l.Type.Category() {
		case course.CategoryLearning:
			learned = true
		case course.CategoryPractice:
			if !learned {
				warnings = append(warnings, fmt.Sprintf("lesson %d (%s) practices before any learning lesson", l.Number, l.Type))
			}
		}
		if l.Type == course.LessonSummary && i != len(lessons)-1 {
			warnings = append(warnings, fmt.Sprintf("summary lesson %d is not last", l.Number))
		}
		if l.Type == course.LessonUnknown {
			warnings = append(warnings, fmt.Sprintf("lesson %d has an unrecognised type", l.Number))
		}
	}
	return warnings
}
