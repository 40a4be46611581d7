package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYouTubeServer(t *testing.T, searchBody, videosBody string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/search"):
			q := r.URL.Query()
			assert.Equal(t, "video", q.Get("type"))
			assert.Equal(t, "strict", q.Get("safeSearch"))
			assert.Equal(t, "medium", q.Get("videoDuration"))
			assert.Equal(t, "relevance", q.Get("order"))
			assert.Equal(t, "5", q.Get("maxResults"))
			assert.NotEmpty(t, q.Get("q"))
			w.Write([]byte(searchBody))
		case strings.HasSuffix(r.URL.Path, "/videos"):
			w.Write([]byte(videosBody))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestYouTubeSearchVideos(t *testing.T) {
	srv := newYouTubeServer(t,
		`{"items":[
			{"id":{"kind":"youtube#video","videoId":"aaa"},"snippet":{"title":"Intro","channelTitle":"Chan","publishedAt":"2024-01-02T03:04:05Z","thumbnails":{"high":{"url":"https://img/aaa.jpg"}}}},
			{"id":{"kind":"youtube#video","videoId":"bbb"},"snippet":{"title":"Deep dive"}}
		]}`,
		`{"items":[
			{"id":"aaa","statistics":{"likeCount":"10","viewCount":"1000"}},
			{"id":"bbb","statistics":{"likeCount":"50","viewCount":"500"}}
		]}`)
	defer srv.Close()

	s, err := NewYouTubeSearcher(context.Background(), "yt-key", srv.URL+"/", 5)
	require.NoError(t, err)

	videos, err := s.SearchVideos(context.Background(), VideoQuery{Query: "python loops", RelevanceLanguage: "en"})
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "aaa", videos[0].VideoID)
	assert.Equal(t, "https://www.youtube.com/watch?v=aaa", videos[0].URL)
	assert.Equal(t, "https://img/aaa.jpg", videos[0].ThumbnailURL)
	require.NotNil(t, videos[0].PublishedAt)
	assert.Equal(t, 2024, videos[0].PublishedAt.Year())
	assert.Equal(t, uint64(10), videos[0].LikeCount)
	assert.Equal(t, uint64(500), videos[1].ViewCount)

	RankVideos(videos)
	assert.Equal(t, "bbb", videos[0].VideoID)
}

func TestYouTubeNoResults(t *testing.T) {
	srv := newYouTubeServer(t, `{"items":[]}`, `{"items":[]}`)
	defer srv.Close()

	s, err := NewYouTubeSearcher(context.Background(), "yt-key", srv.URL+"/", 0)
	require.NoError(t, err)

	videos, err := s.SearchVideos(context.Background(), VideoQuery{Query: "nothing"})
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestNewYouTubeSearcherRequiresKey(t *testing.T) {
	_, err := NewYouTubeSearcher(context.Background(), "", "", 5)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
