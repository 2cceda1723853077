package driven

import (
	"context"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

// TextExtractor converts the raw bytes of one document format into plain text.
type TextExtractor interface {
	// Format returns the document format this extractor handles.
	Format() domain.Format

	// Extract converts content to text. The name is used for error messages only.
	// Corrupt input fails with domain.ErrExtractionFailure or domain.ErrDecode.
	Extract(ctx context.Context, name string, content []byte) (*ExtractResult, error)
}

// ExtractResult contains the output of text extraction.
type ExtractResult struct {
	// Text is the extracted plain text, before normalisation.
	Text string

	// PageCount is the number of pages for paginated formats, else zero.
	PageCount int
}

// ExtractorRegistry selects the extractor for a document format.
type ExtractorRegistry interface {
	// Extract dispatches to the extractor registered for format.
	// Unknown formats fail with domain.ErrUnsupportedFormat.
	Extract(ctx context.Context, format domain.Format, name string, content []byte) (*ExtractResult, error)

	// Register adds an extractor, replacing any existing one for its format.
	Register(extractor TextExtractor)

	// SupportedFormats returns all formats that can be extracted.
	SupportedFormats() []domain.Format
}
