package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
)

// sentenceBoundary splits on terminal punctuation followed by whitespace.
var sentenceBoundary = regexp.MustCompile(`[.!?]+\s+`)

// computeMetadata derives the counts stored on a record.
func computeMetadata(content string, counter driven.SentenceCounter) domain.Metadata {
	return domain.Metadata{
		WordCount:      len(strings.Fields(content)),
		CharacterCount: utf8.RuneCountInString(content),
		SentenceCount:  countSentences(content, counter),
	}
}

// countSentences uses the configured counter, falling back to splitting
// on terminal punctuation.
func countSentences(content string, counter driven.SentenceCounter) int {
	if strings.TrimSpace(content) == "" {
		return 0
	}
	if counter != nil {
		return counter.CountSentences(content)
	}

	n := 0
	for _, s := range sentenceBoundary.Split(content, -1) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
