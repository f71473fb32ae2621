package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestNewsAPIHeadlines(t *testing.T) {
	payload := map[string]interface{}{
		"status":       "ok",
		"totalResults": 2,
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"id": "bbc-news", "name": "BBC News"},
				"title":       "BBC News",
				"description": "Visit BBC News for up-to-the-minute news.",
				"url":         "https://www.bbc.co.uk/news",
			},
			{
				"source":      map[string]interface{}{"id": "bbc-news", "name": "BBC News"},
				"title":       "Storm closes coastal roads",
				"description": "Heavy rain and high winds hit the coast overnight.",
				"url":         "https://www.bbc.co.uk/news/articles/c0storm",
			},
		},
	}

	var gotSource, gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSource = r.URL.Query().Get("sources")
		gotKey = r.URL.Query().Get("apiKey")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewNewsAPIClient("test-key", "", "bbc-news", 8*time.Second)
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Headlines(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, "bbc-news", gotSource)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "/v2/top-headlines", gotPath)
	assert.Equal(t, 2, len(articles))

	a := articles[1]
	assert.Equal(t, "Storm closes coastal roads", a.Headline)
	assert.Equal(t, "Heavy rain and high winds hit the coast overnight.", a.Description)
	assert.Equal(t, "https://www.bbc.co.uk/news/articles/c0storm", a.URL)
}

func TestNewsAPIHeadlinesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	defer srv.Close()

	client := NewNewsAPIClient("test-key", srv.URL, "bbc-news", time.Second)

	articles, err := client.Headlines(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestNewsAPIHeadlinesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid."}`))
	}))
	defer srv.Close()

	client := NewNewsAPIClient("bad-key", srv.URL, "bbc-news", time.Second)

	articles, err := client.Headlines(context.Background())

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestNewsAPIHeadlinesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","code":"sourceDoesNotExist","message":"unknown source"}`))
	}))
	defer srv.Close()

	client := NewNewsAPIClient("test-key", srv.URL, "nope", time.Second)

	_, err := client.Headlines(context.Background())

	assert.NotEqual(t, nil, err)
	assert.MatchRegex(t, err.Error(), "sourceDoesNotExist")
}

func TestNewsAPIHeadlinesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer srv.Close()

	client := NewNewsAPIClient("test-key", srv.URL, "bbc-news", 20*time.Millisecond)

	_, err := client.Headlines(context.Background())

	assert.NotEqual(t, nil, err)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
