package news

import "context"

type Article struct {
	URL         string `json:"url"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

// HeadlinesFeed returns the current headlines of one fixed source.
type HeadlinesFeed interface {
	Headlines(ctx context.Context) ([]Article, error)
	Name() string
}
