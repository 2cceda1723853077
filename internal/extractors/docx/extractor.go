// Package docx extracts paragraph text from Word documents.
//
// Only body-level paragraphs of word/document.xml are read, in document
// order. Tables, headers, footers, text boxes and embedded objects are
// not extracted.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// documentPart is the main document part inside the package.
const documentPart = "word/document.xml"

// skippedElements are subtrees inside a paragraph whose text is not part
// of the paragraph: drawings, text boxes, embedded objects, deleted runs.
var skippedElements = map[string]bool{
	"drawing":      true,
	"pict":         true,
	"object":       true,
	"txbxContent":  true,
	"del":          true,
	"instrText":    true,
	"footnoteRef":  true,
	"endnoteRef":   true,
	"commentRange": true,
}

// Extractor handles DOCX documents.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatDOCX
}

// Extract returns the non-empty body paragraphs joined by newlines.
func (e *Extractor) Extract(_ context.Context, name string, content []byte) (*driven.ExtractResult, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: not a Word document: %v", domain.ErrExtractionFailure, name, err)
	}

	part, err := readPart(reader, documentPart)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailure, name, err)
	}

	paragraphs, err := parseParagraphs(part)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: parsing %s: %v", domain.ErrExtractionFailure, name, documentPart, err)
	}

	return &driven.ExtractResult{
		Text: strings.Join(paragraphs, "\n"),
	}, nil
}

// readPart returns the bytes of a named part of the package.
func readPart(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("missing %s", name)
}

// parseParagraphs walks document.xml and returns the text of each
// non-empty body-level paragraph. Within a paragraph, w:t text is
// concatenated, w:tab becomes a tab and w:br/w:cr become newlines.
func parseParagraphs(content []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var (
		paragraphs []string
		stack      []string
		para       strings.Builder
		paraDepth  int // stack depth of the open body paragraph, 0 if none
		skipDepth  int // stack depth of the skipped subtree, 0 if none
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			depth := len(stack)

			switch {
			case skipDepth > 0:
			case paraDepth == 0:
				if t.Name.Local == "p" && depth >= 2 && stack[depth-2] == "body" {
					paraDepth = depth
					para.Reset()
				}
			case skippedElements[t.Name.Local]:
				skipDepth = depth
			case t.Name.Local == "t":
				inText = true
			case t.Name.Local == "tab":
				para.WriteByte('\t')
			case t.Name.Local == "br" || t.Name.Local == "cr":
				para.WriteByte('\n')
			}

		case xml.EndElement:
			depth := len(stack)
			switch {
			case skipDepth > 0:
				if depth == skipDepth {
					skipDepth = 0
				}
			case paraDepth > 0 && depth == paraDepth:
				if para.Len() > 0 {
					paragraphs = append(paragraphs, para.String())
				}
				paraDepth = 0
			case t.Name.Local == "t":
				inText = false
			}
			if depth > 0 {
				stack = stack[:depth-1]
			}

		case xml.CharData:
			if inText && paraDepth > 0 && skipDepth == 0 {
				para.Write(t)
			}
		}
	}

	return paragraphs, nil
}
