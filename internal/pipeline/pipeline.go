package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/madmax304/news-aggregator-test/internal/model"
)

type Options struct {
	// Sequential runs synthesis before quiz generation instead of concurrently.
	Sequential bool
	// NewKey names the audio artifact of a run. Defaults to a random UUID.
	NewKey func() string
}

// Pipeline runs select → summarize → (synthesize, quiz) for one request. A run either
// returns a complete result or the first stage error; nothing partial is returned.
type Pipeline struct {
	selector    *Selector
	summarizer  *Summarizer
	synthesizer *Synthesizer
	quiz        *QuizGenerator
	sequential  bool
	newKey      func() string
}

func New(selector *Selector, summarizer *Summarizer, synthesizer *Synthesizer, quiz *QuizGenerator, opts Options) *Pipeline {
	newKey := opts.NewKey
	if newKey == nil {
		newKey = uuid.NewString
	}
	return &Pipeline{
		selector:    selector,
		summarizer:  summarizer,
		synthesizer: synthesizer,
		quiz:        quiz,
		sequential:  opts.Sequential,
		newKey:      newKey,
	}
}

func (p *Pipeline) Run(ctx context.Context) (*model.PipelineResult, error) {
	start := time.Now()

	article, err := p.selector.Select(ctx)
	if err != nil {
		return nil, p.fail("select", start, err)
	}

	summary, err := p.summarizer.Summarize(ctx, article.URL)
	if err != nil {
		return nil, p.fail("summarize", start, err)
	}
	slog.Info("article summarized", "url", article.URL, "chars", len(summary))

	key := p.newKey()

	var audioRef, quiz string
	if p.sequential {
		audioRef, err = p.synthesizer.Synthesize(ctx, summary, key)
		if err != nil {
			return nil, p.fail("synthesize", start, err)
		}

		quiz, err = p.quiz.Generate(ctx, summary)
		if err != nil {
			return nil, p.fail("quiz", start, err)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			ref, err := p.synthesizer.Synthesize(gctx, summary, key)
			audioRef = ref
			return err
		})

		g.Go(func() error {
			q, err := p.quiz.Generate(gctx, summary)
			quiz = q
			return err
		})

		if err := g.Wait(); err != nil {
			return nil, p.fail("synthesize+quiz", start, err)
		}
	}

	slog.Info("pipeline complete", "url", article.URL, "audio", audioRef, "duration", time.Since(start))

	return &model.PipelineResult{
		ArticleURL:    article.URL,
		Headline:      article.Headline,
		Description:   article.Description,
		Summary:       summary,
		AudioFile:     audioRef,
		QuizQuestions: quiz,
	}, nil
}

func (p *Pipeline) fail(stage string, start time.Time, err error) error {
	slog.Error("pipeline failed", "stage", stage, "error", err, "duration", time.Since(start))
	return err
}
