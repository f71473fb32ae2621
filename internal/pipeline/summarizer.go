package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/madmax304/news-aggregator-test/pkg/llm"
)

type PageFetcher interface {
	FetchText(ctx context.Context, pageURL string) (string, error)
}

type Summarizer struct {
	fetcher   PageFetcher
	llm       llm.Completer
	maxTokens int64
	timeout   time.Duration
}

func NewSummarizer(fetcher PageFetcher, completer llm.Completer, maxTokens int64, timeout time.Duration) *Summarizer {
	return &Summarizer{
		fetcher:   fetcher,
		llm:       completer,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, articleURL string) (string, error) {
	text, err := s.fetch(ctx, articleURL)
	if err != nil {
		return "", stageError(ErrFetch, err)
	}

	// Script-rendered pages have no server-side paragraphs; the model still gets the prompt.
	if text == "" {
		slog.Warn("article body empty after extraction", "url", articleURL)
	}

	summary, err := s.complete(ctx, llm.SummaryPrompt(text))
	if err != nil {
		return "", stageError(ErrSummarization, err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", stageError(ErrSummarization, errors.New("model returned an empty summary"))
	}

	return summary, nil
}

func (s *Summarizer) fetch(ctx context.Context, articleURL string) (string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.fetcher.FetchText(ctx, articleURL)
}

func (s *Summarizer) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.llm.Complete(ctx, prompt, s.maxTokens)
}
