package pipeline

import "errors"

// Stage failure kinds. A *StageError matches its kind with errors.Is.
var (
	ErrHeadlines       = errors.New("headlines feed request failed")
	ErrNoArticles      = errors.New("headlines feed returned no articles")
	ErrNoValidArticles = errors.New("no article passed candidate filtering")
	ErrFetch           = errors.New("article page fetch failed")
	ErrSummarization   = errors.New("summarization failed")
	ErrSynthesis       = errors.New("speech synthesis failed")
	ErrQuizGeneration  = errors.New("quiz generation failed")
)

const fallbackMessage = "Failed to process article."

var userMessages = map[error]string{
	ErrHeadlines:       "Failed to fetch news articles.",
	ErrNoArticles:      "No articles found.",
	ErrNoValidArticles: "No valid articles found.",
	ErrFetch:           "Failed to fetch article content.",
	ErrSummarization:   "Failed to summarize article.",
	ErrSynthesis:       "Failed to convert summary to speech.",
	ErrQuizGeneration:  "Failed to generate quiz questions.",
}

type StageError struct {
	Kind error
	Err  error
}

func stageError(kind, err error) *StageError {
	return &StageError{Kind: kind, Err: err}
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func (e *StageError) Is(target error) bool {
	return target == e.Kind
}

// Message returns the text shown to API callers for err.
func Message(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		if msg, ok := userMessages[se.Kind]; ok {
			return msg
		}
	}
	return fallbackMessage
}
