package news

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

const cacheKeyPrefix = "newsquiz:headlines:"

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// CachedFeed serves headlines from cache while they are fresh. Cache errors are logged
// and never fail the request.
type CachedFeed struct {
	feed  HeadlinesFeed
	cache Cache
	ttl   time.Duration
}

func NewCachedFeed(feed HeadlinesFeed, cache Cache, ttl time.Duration) *CachedFeed {
	return &CachedFeed{feed: feed, cache: cache, ttl: ttl}
}

func (c *CachedFeed) Name() string {
	return c.feed.Name()
}

func (c *CachedFeed) Headlines(ctx context.Context) ([]Article, error) {
	key := cacheKeyPrefix + c.feed.Name()

	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("headline cache read failed", "key", key, "error", err)
	}

	if ok {
		var articles []Article
		if err := json.Unmarshal([]byte(cached), &articles); err == nil {
			slog.Debug("headline cache hit", "key", key, "count", len(articles))
			return articles, nil
		}
		slog.Warn("discarding malformed headline cache entry", "key", key)
	}

	articles, err := c.feed.Headlines(ctx)
	if err != nil {
		return nil, err
	}

	// Empty responses are not cached so a transient empty feed is retried on the next request.
	if len(articles) == 0 {
		return articles, nil
	}

	data, err := json.Marshal(articles)
	if err != nil {
		return articles, nil
	}

	if err := c.cache.Set(ctx, key, string(data), c.ttl); err != nil {
		slog.Warn("headline cache write failed", "key", key, "error", err)
	}

	return articles, nil
}
