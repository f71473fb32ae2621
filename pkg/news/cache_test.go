package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeFeed struct {
	articles []Article
	err      error
	calls    int
}

func (f *fakeFeed) Name() string { return "fake" }

func (f *fakeFeed) Headlines(ctx context.Context) ([]Article, error) {
	f.calls++
	return f.articles, f.err
}

type memoryCache struct {
	values  map[string]string
	ttls    map[string]time.Duration
	readErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	if m.readErr != nil {
		return "", false, m.readErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}

func TestCachedFeedStoresAndServes(t *testing.T) {
	feed := &fakeFeed{articles: []Article{{URL: "https://example.com/a", Headline: "A"}}}
	cache := newMemoryCache()
	cached := NewCachedFeed(feed, cache, time.Minute)

	first, err := cached.Headlines(context.Background())
	assert.Equal(t, nil, err)

	second, err := cached.Headlines(context.Background())
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, feed.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Minute, cache.ttls["newsquiz:headlines:fake"])
}

func TestCachedFeedSkipsEmpty(t *testing.T) {
	feed := &fakeFeed{articles: []Article{}}
	cache := newMemoryCache()
	cached := NewCachedFeed(feed, cache, time.Minute)

	cached.Headlines(context.Background())
	cached.Headlines(context.Background())

	assert.Equal(t, 2, feed.calls)
	assert.Equal(t, 0, len(cache.values))
}

func TestCachedFeedReadErrorFallsThrough(t *testing.T) {
	feed := &fakeFeed{articles: []Article{{URL: "https://example.com/a"}}}
	cache := newMemoryCache()
	cache.readErr = errors.New("redis down")
	cached := NewCachedFeed(feed, cache, time.Minute)

	articles, err := cached.Headlines(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, 1, feed.calls)
}

func TestCachedFeedPropagatesFeedError(t *testing.T) {
	feed := &fakeFeed{err: errors.New("feed down")}
	cached := NewCachedFeed(feed, newMemoryCache(), time.Minute)

	_, err := cached.Headlines(context.Background())

	assert.NotEqual(t, nil, err)
}

func TestCachedFeedIgnoresMalformedEntry(t *testing.T) {
	feed := &fakeFeed{articles: []Article{{URL: "https://example.com/a"}}}
	cache := newMemoryCache()
	cache.values["newsquiz:headlines:fake"] = "{not json"
	cached := NewCachedFeed(feed, cache, time.Minute)

	articles, err := cached.Headlines(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, 1, feed.calls)
}
