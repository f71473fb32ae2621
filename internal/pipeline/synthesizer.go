package pipeline

import (
	"context"
	"time"

	"github.com/madmax304/news-aggregator-test/internal/storage"
	"github.com/madmax304/news-aggregator-test/pkg/tts"
)

type Synthesizer struct {
	speaker tts.Speaker
	store   storage.AudioStore
	timeout time.Duration
}

func NewSynthesizer(speaker tts.Speaker, store storage.AudioStore, timeout time.Duration) *Synthesizer {
	return &Synthesizer{speaker: speaker, store: store, timeout: timeout}
}

// Synthesize narrates summary and stores the audio under key, returning the stored reference.
func (s *Synthesizer) Synthesize(ctx context.Context, summary, key string) (string, error) {
	audio, err := s.speak(ctx, summary)
	if err != nil {
		return "", stageError(ErrSynthesis, err)
	}

	saveCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	ref, err := s.store.Save(saveCtx, key, audio)
	if err != nil {
		return "", stageError(ErrSynthesis, err)
	}

	return ref, nil
}

func (s *Synthesizer) speak(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.speaker.Speak(ctx, text)
}
