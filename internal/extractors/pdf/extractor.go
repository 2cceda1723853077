// Package pdf extracts text from PDF documents.
//
// The document is validated and its pages counted with pdfcpu; text is
// then read page by page with ledongthuc/pdf. Pages that carry no text
// layer (scans) are skipped.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
	"github.com/medreport/medreport-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// pdfcpu otherwise writes a config directory under the user's home.
var disableConfigDir sync.Once

// Extractor handles PDF documents.
type Extractor struct {
	conf *model.Configuration
}

// New creates a new PDF extractor using relaxed validation.
func New() *Extractor {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Extractor{conf: conf}
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatPDF
}

// Extract returns the text of every page with content, in page order,
// joined by newlines.
func (e *Extractor) Extract(ctx context.Context, name string, content []byte) (*driven.ExtractResult, error) {
	pageCount, err := api.PageCount(bytes.NewReader(content), e.conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: invalid PDF: %v", domain.ErrExtractionFailure, name, err)
	}

	reader, err := openReader(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailure, name, err)
	}

	pages := safeNumPage(reader)
	if pages == 0 {
		pages = pageCount
	}

	texts := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, ok := pageText(reader, i)
		if !ok {
			logger.Debug("pdf %s: skipping unreadable page %d", name, i)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		texts = append(texts, text)
	}

	return &driven.ExtractResult{
		Text:      strings.Join(texts, "\n"),
		PageCount: pageCount,
	}, nil
}

// openReader wraps pdf.NewReader, which can panic on malformed xref tables.
func openReader(content []byte) (reader *lpdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader = nil
			err = fmt.Errorf("reading PDF: %v", r)
		}
	}()
	return lpdf.NewReader(bytes.NewReader(content), int64(len(content)))
}

func safeNumPage(reader *lpdf.Reader) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	return reader.NumPage()
}

// pageText returns the plain text of page i. ok is false when the page
// is missing or the content stream could not be decoded.
func pageText(reader *lpdf.Reader, i int) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	page := reader.Page(i)
	if page.V.IsNull() {
		return "", false
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", false
	}
	return text, true
}
