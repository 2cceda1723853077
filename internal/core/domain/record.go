package domain

import "time"

// Record is the stored result of processing one uploaded file.
// A Record is immutable once created; it is only removed by a reset.
type Record struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// Name is the original filename. Names need not be unique.
	Name string `json:"name"`

	// Content is the normalised document text.
	Content string `json:"content"`

	// Format is the detected or declared document format.
	Format Format `json:"type"`

	// ProcessedAt is when the file was processed.
	ProcessedAt time.Time `json:"date"`

	// Findings are the fragments extracted from Content, per category.
	Findings Findings `json:"key_findings"`

	// Metadata holds counts derived at creation time.
	Metadata Metadata `json:"metadata"`

	// Patterns is the registry snapshot that produced Findings.
	Patterns PatternRegistry `json:"patterns"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() Record {
	out := *r
	out.Findings = r.Findings.Clone()
	out.Patterns = r.Patterns.Clone()
	return out
}

// Metadata contains counts derived from a record's content.
type Metadata struct {
	// WordCount is the number of whitespace-separated tokens.
	WordCount int `json:"word_count"`

	// CharacterCount is the number of runes.
	CharacterCount int `json:"character_count"`

	// SentenceCount is the number of sentences; zero for empty content.
	SentenceCount int `json:"sentence_count"`

	// PageCount is the number of pages for paginated formats, else zero.
	PageCount int `json:"page_count,omitempty"`

	// ByteSize is the size of the raw input in bytes.
	ByteSize int `json:"byte_size"`
}

// Findings maps each category to its extracted fragments in scan order.
// Duplicates are allowed within a single record.
type Findings map[Category][]string

// NewFindings returns Findings with all five categories present and empty.
func NewFindings() Findings {
	f := make(Findings, len(categories))
	for _, c := range categories {
		f[c] = []string{}
	}
	return f
}

// Clone returns a deep copy that always carries all five categories.
func (f Findings) Clone() Findings {
	out := NewFindings()
	for c, items := range f {
		dup := make([]string, len(items))
		copy(dup, items)
		out[c] = dup
	}
	return out
}

// Total returns the number of fragments across all categories.
func (f Findings) Total() int {
	n := 0
	for _, items := range f {
		n += len(items)
	}
	return n
}
