package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/llmjson"
	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/search"
)

// VideoGenerator attaches the best-liked video found for a lesson.
type VideoGenerator struct {
	provider llm.Provider
	videos   search.VideoSearcher
	cfg      Config
	log      *logger.Logger
}

// NewVideoGenerator creates a video generator.
func NewVideoGenerator(provider llm.Provider, videos search.VideoSearcher, cfg Config, log *logger.Logger) *VideoGenerator {
	return &VideoGenerator{provider: provider, videos: videos, cfg: cfg, log: log}
}

type videoQueryOutput struct {
	Query             llmjson.String `json:"query"`
	RelevanceLanguage llmjson.String `json:"relevanceLanguage"`
	RegionCode        llmjson.String `json:"regionCode"`
	VideoCategoryID   llmjson.String `json:"videoCategoryId"`
}

// Generate returns nil without error when the search finds nothing.
func (g *VideoGenerator) Generate(ctx context.Context, lesson course.Lesson) (course.Artifact, error) {
	if g.videos == nil {
		return nil, search.ErrNotConfigured
	}

	q, err := g.query(ctx, lesson)
	if err != nil {
		return nil, err
	}

	candidates, err := g.videos.SearchVideos(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("video search: %w", err)
	}
	if len(candidates) == 0 {
		g.log.Info("no video found", "lesson_id", lesson.ID, "query", q.Query)
		return nil, nil
	}

	search.RankVideos(candidates)
	best := candidates[0]
	return &best, nil
}

// query asks the model for search terms. Output that is not JSON is used
// verbatim as the free-text query.
func (g *VideoGenerator) query(ctx context.Context, lesson course.Lesson) (search.VideoQuery, error) {
	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "video-query"), llm.Request{
		System:    videoQuerySystemPrompt,
		Messages:  llm.UserMessage(videoQueryMessage(lesson)),
		Model:     g.cfg.Model,
		MaxTokens: g.cfg.MaxTokens,
	})
	if err != nil {
		return search.VideoQuery{}, fmt.Errorf("derive video query: %w", err)
	}

	var out videoQueryOutput
	if err := llmjson.Decode(resp.Content, llmjson.Object, VideoQueryContract, &out); err != nil {
		raw := strings.TrimSpace(resp.Content)
		if raw == "" {
			return search.VideoQuery{}, errors.New("derive video query: empty response")
		}
		g.log.Debug("video query is not JSON, using raw text", "lesson_id", lesson.ID)
		return search.VideoQuery{Query: raw}, nil
	}

	return search.VideoQuery{
		Query:             strings.TrimSpace(string(out.Query)),
		RelevanceLanguage: strings.TrimSpace(string(out.RelevanceLanguage)),
		RegionCode:        strings.TrimSpace(string(out.RegionCode)),
		VideoCategoryID:   strings.TrimSpace(string(out.VideoCategoryID)),
	}, nil
}
