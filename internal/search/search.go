// Package search wraps the external lookups lesson content depends on: web
// search for reading material, vector search over the curated corpus and
// video search.
package search

import (
	"context"
	"errors"
	"sort"

	"github.com/abhisek/coursegen/internal/course"
)

// ErrNotConfigured is returned by clients built without credentials.
var ErrNotConfigured = errors.New("search backend not configured")

// WebResult is one web search hit.
type WebResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// WebSearcher finds web pages for a free-text query.
type WebSearcher interface {
	Search(ctx context.Context, query string) ([]WebResult, error)
}

// Snippet is one chunk returned by vector search.
type Snippet struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Text     string  `json:"chunk_text"`
	Score    float64 `json:"score"`
}

// VectorSearcher finds corpus snippets semantically close to a query.
type VectorSearcher interface {
	Search(ctx context.Context, query string, topK int) ([]Snippet, error)
}

// VideoQuery is a video search with optional locale and category hints.
type VideoQuery struct {
	Query             string `json:"query"`
	RelevanceLanguage string `json:"relevanceLanguage,omitempty"`
	RegionCode        string `json:"regionCode,omitempty"`
	VideoCategoryID   string `json:"videoCategoryId,omitempty"`
}

// VideoSearcher finds videos for a query, with statistics filled in.
type VideoSearcher interface {
	SearchVideos(ctx context.Context, q VideoQuery) ([]course.Video, error)
}

// Best returns the highest scoring result at or above minScore that has a
// URL, or false when none qualifies.
func Best(results []WebResult, minScore float64) (WebResult, bool) {
	var best WebResult
	found := false
	for _, r := range results {
		if r.URL == "" || r.Score < minScore {
			continue
		}
		if !found || r.Score > best.Score {
			best, found = r, true
		}
	}
	return best, found
}

// RankVideos orders videos by like count, then view count, both descending.
// Ties keep their search order.
func RankVideos(videos []course.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		if videos[i].LikeCount != videos[j].LikeCount {
			return videos[i].LikeCount > videos[j].LikeCount
		}
		return videos[i].ViewCount > videos[j].ViewCount
	})
}
