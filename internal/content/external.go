package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/search"
)

// ExternalArticleGenerator links a lesson to the most relevant web page.
type ExternalArticleGenerator struct {
	provider llm.Provider
	web      search.WebSearcher
	cfg      Config
	log      *logger.Logger
}

// NewExternalArticleGenerator creates an external-article generator.
func NewExternalArticleGenerator(provider llm.Provider, web search.WebSearcher, cfg Config, log *logger.Logger) *ExternalArticleGenerator {
	return &ExternalArticleGenerator{provider: provider, web: web, cfg: cfg, log: log}
}

// Generate returns nil without error when no result clears MinWebScore.
func (g *ExternalArticleGenerator) Generate(ctx context.Context, lesson course.Lesson) (course.Artifact, error) {
	if g.web == nil {
		return nil, search.ErrNotConfigured
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "external-query"), llm.Request{
		Messages:    llm.UserMessage(webQueryMessage(lesson)),
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		TopP:        g.cfg.TopP,
	})
	if err != nil {
		return nil, fmt.Errorf("derive search query: %w", err)
	}
	query := strings.TrimSpace(resp.Content)
	if query == "" {
		return nil, errors.New("derive search query: empty response")
	}

	results, err := g.web.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("web search: %w", err)
	}

	best, ok := search.Best(results, g.cfg.MinWebScore)
	if !ok {
		g.log.Info("no web result above threshold",
			"lesson_id", lesson.ID, "results", len(results), "min_score", g.cfg.MinWebScore)
		return nil, nil
	}
	title := best.Title
	if title == "" {
		title = "No title available"
	}
	return &course.ExternalArticle{URL: best.URL, Title: title, Score: best.Score}, nil
}
