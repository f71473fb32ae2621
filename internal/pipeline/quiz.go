package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/madmax304/news-aggregator-test/pkg/llm"
)

// QuizGenerator asks the model for three four-option questions. The text is returned as the
// model wrote it.
type QuizGenerator struct {
	llm       llm.Completer
	maxTokens int64
	timeout   time.Duration
}

func NewQuizGenerator(completer llm.Completer, maxTokens int64, timeout time.Duration) *QuizGenerator {
	return &QuizGenerator{llm: completer, maxTokens: maxTokens, timeout: timeout}
}

func (q *QuizGenerator) Generate(ctx context.Context, summary string) (string, error) {
	ctx, cancel := withTimeout(ctx, q.timeout)
	defer cancel()

	quiz, err := q.llm.Complete(ctx, llm.QuizPrompt(summary), q.maxTokens)
	if err != nil {
		return "", stageError(ErrQuizGeneration, err)
	}

	if strings.TrimSpace(quiz) == "" {
		return "", stageError(ErrQuizGeneration, errors.New("model returned an empty quiz"))
	}

	return quiz, nil
}
