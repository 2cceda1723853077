package extractors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
	"github.com/medreport/medreport-cli/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps formats to their extractors.
type Registry struct {
	mu         sync.RWMutex
	extractors map[domain.Format]driven.TextExtractor
}

// NewRegistry creates a registry holding the given extractors.
func NewRegistry(extractors ...driven.TextExtractor) *Registry {
	r := &Registry{
		extractors: make(map[domain.Format]driven.TextExtractor),
	}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor, replacing any existing one for its format.
func (r *Registry) Register(extractor driven.TextExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[extractor.Format()] = extractor
}

// SupportedFormats returns all registered formats, sorted.
func (r *Registry) SupportedFormats() []domain.Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]domain.Format, 0, len(r.extractors))
	for f := range r.extractors {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Extract dispatches to the extractor registered for format.
// Errors that do not already carry a domain sentinel are reported as
// domain.ErrExtractionFailure.
func (r *Registry) Extract(
	ctx context.Context,
	format domain.Format,
	name string,
	content []byte,
) (*driven.ExtractResult, error) {
	r.mu.RLock()
	extractor, ok := r.extractors[format]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}

	logger.Debug("Extracting %s with %s extractor", name, format)
	result, err := extractor.Extract(ctx, name, content)
	if err != nil {
		if isClassified(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailure, name, err)
	}
	logger.Debug("Extracted %d characters", len(result.Text))
	return result, nil
}

// isClassified reports whether err already matches a known sentinel.
func isClassified(err error) bool {
	return errors.Is(err, domain.ErrDecode) ||
		errors.Is(err, domain.ErrExtractionFailure) ||
		errors.Is(err, domain.ErrUnsupportedFormat) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
