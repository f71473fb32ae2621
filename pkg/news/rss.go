package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSSClient reads headlines from a publication's own RSS or Atom feed.
type RSSClient struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewRSSClient(feedURL string, timeout time.Duration) *RSSClient {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	return &RSSClient{feedURL: feedURL, parser: parser}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

func (c *RSSClient) Headlines(ctx context.Context) ([]Article, error) {
	feed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss fetch: %w", err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		description := item.Description
		if description == "" {
			description = item.Content
		}

		articles = append(articles, Article{
			URL:         item.Link,
			Headline:    item.Title,
			Description: description,
		})
	}

	return articles, nil
}
