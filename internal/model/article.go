package model

// Candidate is one headline returned by a feed, before filtering.
type Candidate struct {
	URL         string `json:"url"`
	Headline    string `json:"headline"`
	Description string `json:"description,omitempty"`
}

// SelectedArticle is the candidate picked for a pipeline run. Its URL belongs to the
// publication domain and is never the publication homepage.
type SelectedArticle struct {
	Candidate
}

type PipelineResult struct {
	ArticleURL    string `json:"articleUrl"`
	Headline      string `json:"headline"`
	Description   string `json:"description"`
	Summary       string `json:"summary"`
	AudioFile     string `json:"audioFile"`
	QuizQuestions string `json:"quizQuestions"`
}
