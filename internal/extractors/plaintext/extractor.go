// Package plaintext extracts text from UTF-8 encoded .txt files.
package plaintext

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// utf8BOM is the UTF-8 encoded byte order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatText
}

// Extract decodes content as strict UTF-8.
// A leading byte order mark is dropped; any invalid sequence fails with
// domain.ErrDecode.
func (e *Extractor) Extract(_ context.Context, name string, content []byte) (*driven.ExtractResult, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	if offset := invalidUTF8Offset(content); offset >= 0 {
		return nil, fmt.Errorf("%w: %s: invalid UTF-8 at byte %d", domain.ErrDecode, name, offset)
	}

	return &driven.ExtractResult{
		Text: string(content),
	}, nil
}

// invalidUTF8Offset returns the offset of the first invalid sequence, or -1.
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
