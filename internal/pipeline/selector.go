package pipeline

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/madmax304/news-aggregator-test/internal/model"
	"github.com/madmax304/news-aggregator-test/pkg/news"
)

type SelectorConfig struct {
	Domain   string
	Homepage string
	Timeout  time.Duration
	// RandIndex returns a uniform index in [0, n). Defaults to math/rand.Intn.
	RandIndex func(n int) int
}

// Selector picks one genuine article page from the headlines feed.
type Selector struct {
	feed      news.HeadlinesFeed
	domain    string
	homepage  string
	timeout   time.Duration
	randIndex func(n int) int
}

func NewSelector(feed news.HeadlinesFeed, cfg SelectorConfig) *Selector {
	randIndex := cfg.RandIndex
	if randIndex == nil {
		randIndex = rand.Intn
	}
	return &Selector{
		feed:      feed,
		domain:    cfg.Domain,
		homepage:  cfg.Homepage,
		timeout:   cfg.Timeout,
		randIndex: randIndex,
	}
}

func (s *Selector) Select(ctx context.Context) (model.SelectedArticle, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	articles, err := s.feed.Headlines(ctx)
	if err != nil {
		return model.SelectedArticle{}, stageError(ErrHeadlines, err)
	}

	if len(articles) == 0 {
		return model.SelectedArticle{}, stageError(ErrNoArticles, nil)
	}

	candidates := FilterCandidates(articles, s.domain, s.homepage)
	if len(candidates) == 0 {
		return model.SelectedArticle{}, stageError(ErrNoValidArticles, nil)
	}

	picked := candidates[s.randIndex(len(candidates))]

	slog.Info("article selected",
		"feed", s.feed.Name(),
		"url", picked.URL,
		"articles", len(articles),
		"candidates", len(candidates),
	)

	return model.SelectedArticle{Candidate: picked}, nil
}

// FilterCandidates keeps articles whose URL contains domain and is not the homepage itself.
func FilterCandidates(articles []news.Article, domain, homepage string) []model.Candidate {
	home := strings.TrimSuffix(homepage, "/")

	candidates := make([]model.Candidate, 0, len(articles))
	for _, a := range articles {
		if !strings.Contains(a.URL, domain) {
			continue
		}
		if a.URL == homepage || strings.TrimSuffix(a.URL, "/") == home {
			continue
		}
		candidates = append(candidates, model.Candidate{
			URL:         a.URL,
			Headline:    a.Headline,
			Description: a.Description,
		})
	}
	return candidates
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
