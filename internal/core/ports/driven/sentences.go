package driven

// SentenceCounter segments text into sentences.
type SentenceCounter interface {
	// CountSentences returns the number of sentences in text; zero for empty text.
	CountSentences(text string) int
}
