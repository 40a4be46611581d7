package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/coursegen/internal/config"
	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/generation"
	"github.com/abhisek/coursegen/internal/grading"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/planner"
	"github.com/abhisek/coursegen/internal/search"
	"github.com/abhisek/coursegen/internal/store"
)

// pipeline is the fully wired application.
type pipeline struct {
	Orchestrator *generation.Orchestrator
	Grading      *grading.Service

	closers []func() error
}

func (p *pipeline) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		_ = p.closers[i]()
	}
}

// buildPipeline creates the LLM facade, search clients, generators,
// orchestrator and grading service over an open store.
func buildPipeline(ctx context.Context, cfg *config.Config, st *store.Store, log *logger.Logger) (*pipeline, error) {
	provider, err := llm.NewProvider(ctx, cfg.LLMSettings(), st.EventRepo(), log.With("component", "llm"))
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	p := &pipeline{}
	deps, err := searchDeps(ctx, cfg, log, p)
	if err != nil {
		p.Close()
		return nil, err
	}

	contentCfg := content.DefaultConfig()
	contentCfg.TopK = cfg.Search.Pinecone.TopK
	contentCfg.MinWebScore = cfg.Search.Tavily.MinScore
	deps.Provider = provider
	deps.Config = contentCfg
	deps.Log = log.With("component", "content")

	planCfg := planner.DefaultConfig()
	planCfg.MaxChapters = cfg.Generation.MaxChapters
	planCfg.MinLessons = cfg.Generation.MinLessons
	planCfg.MaxLessons = cfg.Generation.MaxLessons
	planLog := log.With("component", "planner")

	p.Orchestrator = generation.New(generation.Deps{
		Generations:  st.Generations(),
		Artifacts:    st.Artifacts(),
		Logs:         st.Logs(),
		Chapters:     planner.NewChapterPlanner(provider, planCfg, planLog),
		Lessons:      planner.NewLessonPlanner(provider, planCfg, planLog),
		Content:      content.NewDispatcher(content.NewRegistry(deps), st.Artifacts()),
		FinalProject: content.NewSynthesizer(provider, contentCfg, deps.Log),
		Config: generation.Config{
			MaxWorkers:     cfg.Generation.MaxWorkers,
			ChapterTimeout: cfg.Generation.ChapterTimeout,
		},
		Log: log.With("component", "generation"),
	})

	gradeCfg := grading.DefaultConfig()
	gradeCfg.PassThreshold = cfg.Grading.PassThreshold
	gradeCfg.FallbackScore = cfg.Grading.FallbackScore
	gradeLog := log.With("component", "grading")
	p.Grading = grading.NewService(
		st.Artifacts(),
		st.Submissions(),
		st.Generations(),
		grading.NewTextGrader(provider, gradeCfg, gradeLog),
		gradeCfg,
		gradeLog,
	)
	return p, nil
}

// searchDeps builds the search clients that have credentials. Missing
// backends stay nil; the generators that need them fail per lesson.
func searchDeps(ctx context.Context, cfg *config.Config, log *logger.Logger, p *pipeline) (content.Deps, error) {
	var d content.Deps
	sc := cfg.Search
	searchLog := log.With("component", "search")

	if sc.Tavily.APIKey != "" {
		d.Web = search.NewTavilyClient(sc.Tavily.APIKey, sc.Tavily.BaseURL)
	} else {
		log.Warn("web search not configured; external-article lessons will get no content")
	}

	vector, err := search.NewPineconeSearcher(sc.Pinecone.APIKey, sc.Pinecone.Host, sc.Pinecone.Namespace)
	switch {
	case err == nil:
		d.Vector = vector
	case errors.Is(err, search.ErrNotConfigured):
		log.Warn("vector search not configured; articles are written without retrieval")
	default:
		return d, fmt.Errorf("vector search: %w", err)
	}

	videos, err := search.NewYouTubeSearcher(ctx, sc.YouTube.APIKey, sc.YouTube.BaseURL, sc.YouTube.MaxResults)
	switch {
	case err == nil:
		d.Video = videos
	case errors.Is(err, search.ErrNotConfigured):
		log.Warn("video search not configured; video lessons will get no content")
	default:
		return d, fmt.Errorf("video search: %w", err)
	}

	if sc.Redis.URL == "" {
		return d, nil
	}
	cache, err := search.NewRedisCache(ctx, sc.Redis.URL)
	if err != nil {
		log.Warn("search cache unavailable, continuing without it", "error", err)
		return d, nil
	}
	p.closers = append(p.closers, cache.Close)
	if d.Web != nil {
		d.Web = search.NewCachedWeb(d.Web, cache, sc.Redis.TTL, searchLog)
	}
	if d.Video != nil {
		d.Video = search.NewCachedVideo(d.Video, cache, sc.Redis.TTL, searchLog)
	}
	return d, nil
}
