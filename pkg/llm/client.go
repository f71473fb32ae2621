package llm

import "context"

// Completer sends a single user prompt to a language model and returns the generated text.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int64) (string, error)
	Name() string
}
