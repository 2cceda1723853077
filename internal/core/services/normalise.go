package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var newlineRuns = regexp.MustCompile(`\n+`)

// Normalise flattens text to a single line of single-spaced tokens.
//
// Runs of newlines collapse to one newline first, then every whitespace
// run (those newlines included) collapses to one space, so the output
// never contains a newline. Characters that are neither printable nor
// whitespace are dropped before collapsing, which keeps the result free
// of doubled spaces and makes Normalise idempotent.
func Normalise(text string) string {
	if text == "" {
		return ""
	}
	text = stripNonPrintable(text)
	text = newlineRuns.ReplaceAllString(text, "\n")
	text = collapseWhitespace(text)
	return strings.TrimSpace(text)
}

// NormaliseLines is the line-preserving counterpart of Normalise.
// Each line is cleaned the same way Normalise cleans the whole text;
// empty lines are dropped and the rest are joined with "\n".
func NormaliseLines(text string) string {
	if text == "" {
		return ""
	}
	text = stripNonPrintable(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(collapseWhitespace(line))
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// NormaliseUnicode applies canonical composition (NFC) so visually
// identical findings compare equal.
func NormaliseUnicode(text string) string {
	return norm.NFC.String(text)
}

// isSpace reports Unicode whitespace plus the ASCII file, group, record
// and unit separators (U+001C to U+001F).
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// stripNonPrintable drops runes that are neither printable nor whitespace.
func stripNonPrintable(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || isSpace(r) {
			return r
		}
		return -1
	}, text)
}

// collapseWhitespace replaces every whitespace run with one space.
func collapseWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inSpace := false
	for _, r := range text {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
