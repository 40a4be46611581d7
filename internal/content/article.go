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

// ArticleGenerator writes markdown articles grounded on snippets from the
// vector index. Two LLM calls and one vector search per lesson.
type ArticleGenerator struct {
	provider llm.Provider
	vector   search.VectorSearcher
	cfg      Config
	log      *logger.Logger
}

// NewArticleGenerator creates an article generator. vector may be nil.
func NewArticleGenerator(provider llm.Provider, vector search.VectorSearcher, cfg Config, log *logger.Logger) *ArticleGenerator {
	return &ArticleGenerator{provider: provider, vector: vector, cfg: cfg, log: log}
}

func (g *ArticleGenerator) Generate(ctx context.Context, lesson course.Lesson) (course.Artifact, error) {
	keywords, err := g.complete(llm.WithPurpose(ctx, "article-keywords"), "", keywordsMessage(articleContext(lesson)))
	if err != nil {
		return nil, fmt.Errorf("summarize lesson: %w", err)
	}

	snippets := g.retrieve(ctx, lesson, keywords)

	text, err := g.complete(llm.WithPurpose(ctx, "article"), articleSystemPrompt, articleUserMessage(lesson, snippets))
	if err != nil {
		return nil, fmt.Errorf("write article: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("write article: empty response")
	}
	return &course.Article{Content: text}, nil
}

// retrieve searches the vector index and degrades to no snippets on
// failure.
func (g *ArticleGenerator) retrieve(ctx context.Context, lesson course.Lesson, keywords string) []search.Snippet {
	if g.vector == nil || strings.TrimSpace(keywords) == "" {
		return nil
	}
	snippets, err := g.vector.Search(ctx, keywords, g.cfg.TopK)
	if err != nil {
		g.log.Warn("vector search failed, writing without references",
			"lesson_id", lesson.ID, "error", err)
		return nil
	}
	return snippets
}

func (g *ArticleGenerator) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    llm.UserMessage(user),
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		TopP:        g.cfg.TopP,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}
