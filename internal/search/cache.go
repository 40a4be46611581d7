package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/abhisek/coursegen/internal/course"
	"github.com/abhisek/coursegen/internal/logger"
)

// Cache stores serialized search results.
type Cache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache is a Cache backed by Redis.
type RedisCache struct {
	rdb *goredis.Client
}

// NewRedisCache connects to the Redis server at url (redis://...) and
// verifies it with a ping.
func NewRedisCache(ctx context.Context, url string) (*RedisCache, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	rdb := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisCache{rdb: rdb}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Close releases the connection pool.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

func cacheKey(kind, query string) string {
	sum := sha256.Sum256([]byte(query))
	return "coursegen:search:" + kind + ":" + hex.EncodeToString(sum[:])
}

// cached serves fetch through cache. Cache failures are logged and
// otherwise ignored; empty results are not stored.
func cached[T any](ctx context.Context, c Cache, log *logger.Logger, key string, ttl time.Duration, fetch func() ([]T, error)) ([]T, error) {
	if raw, ok, err := c.Get(ctx, key); err != nil {
		log.Warn("search cache read failed", "key", key, "error", err)
	} else if ok {
		var out []T
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
	}

	out, err := fetch()
	if err != nil || len(out) == 0 {
		return out, err
	}

	raw, err := json.Marshal(out)
	if err == nil {
		err = c.Set(ctx, key, raw, ttl)
	}
	if err != nil {
		log.Warn("search cache write failed", "key", key, "error", err)
	}
	return out, nil
}

// CachedWeb wraps a WebSearcher with a result cache.
type CachedWeb struct {
	inner WebSearcher
	cache Cache
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedWeb(inner WebSearcher, cache Cache, ttl time.Duration, log *logger.Logger) *CachedWeb {
	return &CachedWeb{inner: inner, cache: cache, ttl: ttl, log: log}
}

func (c *CachedWeb) Search(ctx context.Context, query string) ([]WebResult, error) {
	return cached(ctx, c.cache, c.log, cacheKey("web", query), c.ttl, func() ([]WebResult, error) {
		return c.inner.Search(ctx, query)
	})
}

// CachedVideo wraps a VideoSearcher with a result cache.
type CachedVideo struct {
	inner VideoSearcher
	cache Cache
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedVideo(inner VideoSearcher, cache Cache, ttl time.Duration, log *logger.Logger) *CachedVideo {
	return &CachedVideo{inner: inner, cache: cache, ttl: ttl, log: log}
}

func (c *CachedVideo) SearchVideos(ctx context.Context, q VideoQuery) ([]course.Video, error) {
	key, _ := json.Marshal(q)
	return cached(ctx, c.cache, c.log, cacheKey("video", string(key)), c.ttl, func() ([]course.Video, error) {
		return c.inner.SearchVideos(ctx, q)
	})
}
