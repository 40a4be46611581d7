package search

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/logger"
)

type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	failGet bool
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, false, errors.New("connection refused")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

type countingWeb struct {
	calls   int
	results []WebResult
}

func (c *countingWeb) Search(context.Context, string) ([]WebResult, error) {
	c.calls++
	return c.results, nil
}

type countingVideo struct {
	calls  int
	videos []course.Video
}

func (c *countingVideo) SearchVideos(context.Context, VideoQuery) ([]course.Video, error) {
	c.calls++
	return c.videos, nil
}

func TestCachedWebHitsCache(t *testing.T) {
	inner := &countingWeb{results: []WebResult{{URL: "https://go.dev", Score: 0.9}}}
	c := NewCachedWeb(inner, newMapCache(), time.Hour, logger.Nop())
	ctx := context.Background()

	first, err := c.Search(ctx, "go")
	require.NoError(t, err)
	second, err := c.Search(ctx, "go")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)

	_, err = c.Search(ctx, "rust")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedSkipsEmptyResults(t *testing.T) {
	inner := &countingVideo{}
	c := NewCachedVideo(inner, newMapCache(), time.Hour, logger.Nop())

	for range 2 {
		_, err := c.SearchVideos(context.Background(), VideoQuery{Query: "obscure"})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, inner.calls)
}

func TestCachedFallsThroughOnCacheError(t *testing.T) {
	cache := newMapCache()
	cache.failGet = true
	inner := &countingVideo{videos: []course.Video{{VideoID: "x"}}}
	c := NewCachedVideo(inner, cache, time.Hour, logger.Nop())

	got, err := c.SearchVideos(context.Background(), VideoQuery{Query: "q"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("COURSEGEN_TEST_REDIS_URL")
	if url == "" {
		t.Skip("COURSEGEN_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, url)
	require.NoError(t, err)
	defer c.Close()

	key := cacheKey("test", t.Name())
	require.NoError(t, c.Set(ctx, key, []byte("v"), time.Minute))
	v, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)

	_, ok, err = c.Get(ctx, cacheKey("test", "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}
