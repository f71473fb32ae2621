package llm

import "fmt"

const summaryPrompt = `Provide a detailed summary of the following news article. Cover who is involved, what happened, where and when it happened, and why it matters. Write plain prose suitable for being read aloud.

Article:
%s`

const quizPrompt = `Based on the following news summary, write exactly 3 multiple-choice questions to test the reader's understanding.

Rules:
- Each question has exactly 4 options labelled A), B), C) and D)
- Only one option is correct
- After the options of each question, add a line "Correct answer: <letter>"
- Use only facts stated in the summary

Summary:
%s`

func SummaryPrompt(articleText string) string {
	return fmt.Sprintf(summaryPrompt, articleText)
}

func QuizPrompt(summary string) string {
	return fmt.Sprintf(quizPrompt, summary)
}
