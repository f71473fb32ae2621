package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/madmax304/news-aggregator-test/pkg/news"
)

const (
	testDomain   = "bbc.co.uk"
	testHomepage = "https://www.bbc.co.uk/news"
)

type fakeFeed struct {
	articles []news.Article
	err      error
	block    bool
}

func (f *fakeFeed) Name() string { return "fake" }

func (f *fakeFeed) Headlines(ctx context.Context) ([]news.Article, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.articles, f.err
}

type fakeFetcher struct {
	text  string
	err   error
	calls int
	urls  []string
}

func (f *fakeFetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	f.calls++
	f.urls = append(f.urls, pageURL)
	return f.text, f.err
}

// fakeCompleter answers summary and quiz prompts separately.
type fakeCompleter struct {
	mu          sync.Mutex
	summary     string
	summaryErr  error
	quiz        string
	quizErr     error
	summaryCall int
	quizCall    int
	prompts     []string
	maxTokens   []int64
}

func (f *fakeCompleter) Name() string { return "fake-model" }

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)
	f.maxTokens = append(f.maxTokens, maxTokens)

	if strings.Contains(prompt, "multiple-choice") {
		f.quizCall++
		return f.quiz, f.quizErr
	}
	f.summaryCall++
	return f.summary, f.summaryErr
}

type fakeSpeaker struct {
	mu    sync.Mutex
	audio []byte
	err   error
	calls int
	texts []string
}

func (f *fakeSpeaker) Speak(ctx context.Context, text string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.texts = append(f.texts, text)
	return f.audio, f.err
}

type memStore struct {
	mu    sync.Mutex
	files map[string][]byte
	err   error
}

func newMemStore() *memStore {
	return &memStore{files: map[string][]byte{}}
}

func (m *memStore) Save(ctx context.Context, key string, audio []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.files[key] = audio
	return "audio/" + key + ".mp3", nil
}

func fixedIndex(i int) func(int) int {
	return func(int) int { return i }
}

func testSelector(feed news.HeadlinesFeed, randIndex func(int) int) *Selector {
	return NewSelector(feed, SelectorConfig{
		Domain:    testDomain,
		Homepage:  testHomepage,
		Timeout:   time.Second,
		RandIndex: randIndex,
	})
}
