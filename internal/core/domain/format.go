package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies how a document's bytes are turned into text.
type Format string

const (
	// FormatPDF is a Portable Document Format file.
	FormatPDF Format = "pdf"

	// FormatText is a UTF-8 plain text file.
	FormatText Format = "txt"

	// FormatDOCX is a Word document. Both .doc and .docx map here.
	FormatDOCX Format = "docx"
)

// suffixFormats maps lower-cased file suffixes to formats.
var suffixFormats = map[string]Format{
	".pdf":  FormatPDF,
	".txt":  FormatText,
	".doc":  FormatDOCX,
	".docx": FormatDOCX,
}

// DetectFormat returns the format for a filename based purely on its
// suffix, compared case-insensitively.
func DetectFormat(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if f, ok := suffixFormats[ext]; ok {
		return f, nil
	}
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no file extension", ErrUnsupportedFormat, name)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// ParseFormat converts an explicit format tag (e.g. "pdf", ".DOC") to a Format.
func ParseFormat(tag string) (Format, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	if !strings.HasPrefix(t, ".") {
		t = "." + t
	}
	if f, ok := suffixFormats[t]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, tag)
}

// SupportedExtensions returns the accepted file suffixes.
func SupportedExtensions() []string {
	return []string{".pdf", ".txt", ".doc", ".docx"}
}

// Extension returns the canonical suffix for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}
