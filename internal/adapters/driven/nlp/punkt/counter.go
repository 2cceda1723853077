// Package punkt counts sentences with the Punkt tokenizer trained on
// English text, so abbreviations such as "Dr." or "mg." do not end a
// sentence.
package punkt

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/medreport/medreport-cli/internal/core/ports/driven"
)

// Ensure Counter implements the interface.
var _ driven.SentenceCounter = (*Counter)(nil)

// Counter segments text into sentences.
type Counter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// New loads the English training data.
func New() (*Counter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading english sentence model: %w", err)
	}
	return &Counter{tokenizer: tokenizer}, nil
}

// CountSentences returns the number of non-blank sentences in text.
func (c *Counter) CountSentences(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	n := 0
	for _, s := range c.tokenizer.Tokenize(text) {
		if strings.TrimSpace(s.Text) != "" {
			n++
		}
	}
	return n
}
