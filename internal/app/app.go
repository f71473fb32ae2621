package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/madmax304/news-aggregator-test/db"
	"github.com/madmax304/news-aggregator-test/internal/config"
	"github.com/madmax304/news-aggregator-test/internal/pipeline"
	"github.com/madmax304/news-aggregator-test/internal/storage"
	"github.com/madmax304/news-aggregator-test/pkg/article"
	"github.com/madmax304/news-aggregator-test/pkg/llm"
	"github.com/madmax304/news-aggregator-test/pkg/news"
	"github.com/madmax304/news-aggregator-test/pkg/tts"
)

// App holds the pipeline and the resources that outlive a single run.
type App struct {
	Pipeline *pipeline.Pipeline
	// AudioDir is the directory to serve at /audio, empty when audio goes to S3.
	AudioDir string

	redis *redis.Client
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	feed, err := a.headlinesFeed(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := a.audioStore(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	completer := newCompleter(cfg)

	speaker := tts.NewElevenLabsClient(
		cfg.ElevenLabsAPIKey,
		cfg.ElevenLabsURL,
		cfg.ElevenLabsVoiceID,
		cfg.Voice,
		cfg.StageTimeout,
	)

	a.Pipeline = pipeline.New(
		pipeline.NewSelector(feed, pipeline.SelectorConfig{
			Domain:   cfg.PublicationDomain,
			Homepage: cfg.PublicationHomepage,
			Timeout:  cfg.StageTimeout,
		}),
		pipeline.NewSummarizer(article.NewFetcher(cfg.StageTimeout), completer, cfg.SummaryMaxTokens, cfg.StageTimeout),
		pipeline.NewSynthesizer(speaker, store, cfg.StageTimeout),
		pipeline.NewQuizGenerator(completer, cfg.QuizMaxTokens, cfg.StageTimeout),
		pipeline.Options{Sequential: cfg.Sequential},
	)

	slog.Info("pipeline configured",
		"feed", feed.Name(),
		"model", completer.Name(),
		"audio_store", cfg.AudioStore,
		"sequential", cfg.Sequential,
		"stage_timeout", cfg.StageTimeout,
	)

	return a, nil
}

func (a *App) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
}

func (a *App) headlinesFeed(ctx context.Context, cfg *config.Config) (news.HeadlinesFeed, error) {
	var feed news.HeadlinesFeed
	switch cfg.FeedProvider {
	case config.FeedRSS:
		feed = news.NewRSSClient(cfg.RSSFeedURL, cfg.StageTimeout)
	case config.FeedFinnhub:
		feed = news.NewFinnHubClient(cfg.FinnhubAPIKey)
	default:
		feed = news.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsAPIURL, cfg.NewsSource, cfg.StageTimeout)
	}

	if cfg.RedisURL == "" {
		return feed, nil
	}

	client, err := db.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to Redis: %w", err)
	}
	a.redis = client

	return news.NewCachedFeed(feed, db.NewRedisCache(client), cfg.HeadlineCacheTTL), nil
}

func (a *App) audioStore(ctx context.Context, cfg *config.Config) (storage.AudioStore, error) {
	if cfg.AudioStore == config.AudioS3 {
		store, err := storage.NewS3Store(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.AWSRegion, cfg.S3URLTTL)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	a.AudioDir = cfg.AudioDir
	return storage.NewLocalStore(cfg.AudioDir, "audio"), nil
}

func newCompleter(cfg *config.Config) llm.Completer {
	if cfg.LLMProvider == config.LLMAnthropic {
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}
	return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
}
