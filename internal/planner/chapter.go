// Package planner turns a course goal into chapters and each chapter into
// typed lessons.
package planner

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
	"github.com/abhisek/coursegen/internal/logger"
)

// ChapterPlanner produces the chapter outline of a course.
type ChapterPlanner struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewChapterPlanner creates a chapter planner.
func NewChapterPlanner(provider llm.Provider, cfg Config, log *logger.Logger) *ChapterPlanner {
	return &ChapterPlanner{provider: provider, cfg: cfg, log: log}
}

type chapterOutput struct {
	Number      llmjson.Int    `json:"chapter_number"`
	Name        llmjson.String `json:"chapter_name"`
	Description llmjson.String `json:"chapter_description"`
	Difficulty  llmjson.Int    `json:"chapter_difficulty"`
}

// Plan makes one LLM call and returns chapters numbered 1..N, N at most
// MaxChapters. Any failure is a *ChapterPlanningError.
func (p *ChapterPlanner) Plan(ctx context.Context, prompt, experience string) ([]course.ChapterSpec, error) {
	ctx = llm.WithPurpose(ctx, "chapter-plan")

	req := llm.Request{
		System:      buildChapterSystemPrompt(experience, p.cfg.MaxChapters),
		Messages:    llm.UserMessage(prompt),
		Model:       p.cfg.Model,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ChapterPlanningError{Err: err}
	}

	var out []chapterOutput
	if err := llmjson.Decode(resp.Content, llmjson.Array, ChapterPlanContract, &out); err != nil {
		return nil, &ChapterPlanningError{Err: err}
	}

	chapters := normalizeChapters(out, p.cfg.MaxChapters)
	if len(chapters) == 0 {
		return nil, &ChapterPlanningError{Err: errors.New("response contained no named chapters")}
	}
	if len(out) > len(chapters) {
		p.log.Warn("chapter plan trimmed", "returned", len(out), "kept", len(chapters))
	}
	return chapters, nil
}

// normalizeChapters keeps the model's order, drops unnamed entries,
// truncates to max and renumbers from 1. Difficulty is clamped to 1..10;
// an unparseable difficulty becomes course.DifficultyUnset.
func normalizeChapters(raw []chapterOutput, max int) []course.ChapterSpec {
	named := lo.Filter(raw, func(c chapterOutput, _ int) bool {
		return strings.TrimSpace(string(c.Name)) != ""
	})
	if max > 0 && len(named) > max {
		named = named[:max]
	}
	return lo.Map(named, func(c chapterOutput, i int) course.ChapterSpec {
		diff := course.DifficultyUnset
		if c.Difficulty.Valid {
			diff = lo.Clamp(c.Difficulty.Value, 1, 10)
		}
		return course.ChapterSpec{
			Number:      i + 1,
			Name:        strings.TrimSpace(string(c.Name)),
			Description: strings.TrimSpace(string(c.Description)),
			Difficulty:  diff,
		}
	})
}
