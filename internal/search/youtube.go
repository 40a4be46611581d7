package search

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/abhisek/coursegen/internal/course"
)

// WatchURL is the public URL template for a video id.
const WatchURL = "https://www.youtube.com/watch?v=%s"

// YouTubeSearcher runs a search followed by a statistics lookup, so results
// can be ranked by engagement.
type YouTubeSearcher struct {
	svc        *youtube.Service
	maxResults int64
}

// NewYouTubeSearcher creates a searcher. endpoint overrides the API base URL
// and is empty in production.
func NewYouTubeSearcher(ctx context.Context, apiKey, endpoint string, maxResults int64) (*YouTubeSearcher, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	if maxResults <= 0 {
		maxResults = 5
	}
	return &YouTubeSearcher{svc: svc, maxResults: maxResults}, nil
}

// SearchVideos returns videos for q with like and view counts, in
// search order. An empty result is not an error.
func (s *YouTubeSearcher) SearchVideos(ctx context.Context, q VideoQuery) ([]course.Video, error) {
	call := s.svc.Search.List([]string{"id", "snippet"}).
		Q(q.Query).
		Type("video").
		MaxResults(s.maxResults).
		SafeSearch("strict").
		VideoDuration("medium").
		Order("relevance")
	if q.RelevanceLanguage != "" {
		call = call.RelevanceLanguage(q.RelevanceLanguage)
	}
	if q.RegionCode != "" {
		call = call.RegionCode(q.RegionCode)
	}
	if q.VideoCategoryID != "" {
		call = call.VideoCategoryId(q.VideoCategoryID)
	}
	res, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	var ids []string
	byID := make(map[string]*course.Video)
	var out []course.Video
	for _, item := range res.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		v := course.Video{
			VideoID: item.Id.VideoId,
			URL:     fmt.Sprintf(WatchURL, item.Id.VideoId),
		}
		if sn := item.Snippet; sn != nil {
			v.Title = sn.Title
			v.Description = sn.Description
			v.ChannelTitle = sn.ChannelTitle
			if t, err := time.Parse(time.RFC3339, sn.PublishedAt); err == nil {
				v.PublishedAt = &t
			}
			if th := sn.Thumbnails; th != nil {
				switch {
				case th.High != nil:
					v.ThumbnailURL = th.High.Url
				case th.Default != nil:
					v.ThumbnailURL = th.Default.Url
				}
			}
		}
		ids = append(ids, v.VideoID)
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, nil
	}
	for i := range out {
		byID[out[i].VideoID] = &out[i]
	}

	stats, err := s.svc.Videos.List([]string{"statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube video statistics: %w", err)
	}
	for _, item := range stats.Items {
		v, ok := byID[item.Id]
		if !ok || item.Statistics == nil {
			continue
		}
		v.LikeCount = item.Statistics.LikeCount
		v.ViewCount = item.Statistics.ViewCount
	}
	return out, nil
}
