package services

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/logger"
)

// minFindingLength is the shortest finding kept, in runes, after trimming.
const minFindingLength = 3

// FindingExtractor applies a pattern registry to text.
// The patterns of the most recently compiled registry are cached by
// source, so a registry shared across many files is compiled once and
// replaced patterns are released. It is safe for concurrent use.
type FindingExtractor struct {
	maxPatternLength int

	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// FindingExtractorOption configures a FindingExtractor.
type FindingExtractorOption func(*FindingExtractor)

// WithMaxPatternLength sets the maximum accepted pattern length in bytes.
func WithMaxPatternLength(n int) FindingExtractorOption {
	return func(e *FindingExtractor) {
		if n > 0 {
			e.maxPatternLength = n
		}
	}
}

// NewFindingExtractor creates a finding extractor with the given options.
func NewFindingExtractor(opts ...FindingExtractorOption) *FindingExtractor {
	e := &FindingExtractor{
		maxPatternLength: domain.DefaultMaxPatternLength,
		cache:            make(map[string]*regexp.Regexp),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract scans text with every category pattern of the registry.
//
// The result always contains all five categories. A category without a
// pattern yields an empty sequence. Empty text yields empty categories
// without looking at the patterns; otherwise, if any pattern fails to
// compile, the whole extraction fails with domain.ErrInvalidPattern.
func (e *FindingExtractor) Extract(text string, registry domain.PatternRegistry) (domain.Findings, error) {
	findings := domain.NewFindings()
	if text == "" {
		return findings, nil
	}

	compiled, err := e.Compile(registry)
	if err != nil {
		return nil, err
	}

	for _, category := range domain.Categories() {
		re, ok := compiled[category]
		if !ok {
			continue
		}
		findings[category] = scan(re, text)
		logger.Debug("Category %s: %d findings", category, len(findings[category]))
	}
	return findings, nil
}

// Compile validates and compiles every non-empty pattern of the registry.
// Matching is case-insensitive. Go's RE2 engine runs in linear time, so
// a pattern cannot cause catastrophic backtracking; the length limit
// bounds compile cost.
func (e *FindingExtractor) Compile(registry domain.PatternRegistry) (map[domain.Category]*regexp.Regexp, error) {
	compiled := make(map[domain.Category]*regexp.Regexp)
	used := make(map[string]*regexp.Regexp)
	for _, category := range domain.Categories() {
		pattern := registry.Pattern(category)
		if pattern == "" {
			continue
		}
		re, err := e.compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: category %s: %v", domain.ErrInvalidPattern, category, err)
		}
		compiled[category] = re
		used[pattern] = re
	}

	e.mu.Lock()
	e.cache = used
	e.mu.Unlock()
	return compiled, nil
}

// compile returns the cached regexp for pattern or compiles a new one.
func (e *FindingExtractor) compile(pattern string) (*regexp.Regexp, error) {
	if len(pattern) > e.maxPatternLength {
		return nil, fmt.Errorf("pattern is %d bytes (max %d)", len(pattern), e.maxPatternLength)
	}

	e.mu.Lock()
	re, ok := e.cache[pattern]
	e.mu.Unlock()
	if ok {
		return re, nil
	}

	// Parse the pattern as written so errors quote what the user typed.
	if _, err := syntax.Parse(pattern, syntax.Perl); err != nil {
		return nil, err
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("pattern %q has no capture group", pattern)
	}
	return re, nil
}

// scan collects capture group 1 of every non-overlapping match.
func scan(re *regexp.Regexp, text string) []string {
	out := []string{}
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if len(m) < 4 || m[2] < 0 {
			continue
		}
		candidate := strings.TrimSpace(text[m[2]:m[3]])
		if utf8.RuneCountInString(candidate) < minFindingLength {
			continue
		}
		out = append(out, strings.TrimSpace(collapseWhitespace(candidate)))
	}
	return out
}
