package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
	"github.com/medreport/medreport-cli/internal/logger"
)

// Ensure Analyzer implements the interface.
var _ driving.AnalyzerService = (*Analyzer)(nil)

// Analyzer runs the extraction pipeline and owns the record lifecycle
// through its RecordStore.
type Analyzer struct {
	store      driven.RecordStore
	extractors driven.ExtractorRegistry
	patterns   driving.PatternService
	findings   *FindingExtractor
	sentences  driven.SentenceCounter

	preserveLines bool
	unicodeNFC    bool
	maxFileBytes  int
	now           func() time.Time
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithSentenceCounter sets the sentence segmenter used for metadata.
func WithSentenceCounter(counter driven.SentenceCounter) AnalyzerOption {
	return func(a *Analyzer) {
		a.sentences = counter
	}
}

// WithFindingExtractor sets the finding extractor, sharing its pattern cache.
func WithFindingExtractor(e *FindingExtractor) AnalyzerOption {
	return func(a *Analyzer) {
		if e != nil {
			a.findings = e
		}
	}
}

// WithPreserveLines controls whether patterns are matched against
// line-preserving text (true, the default) or the flattened content.
func WithPreserveLines(preserve bool) AnalyzerOption {
	return func(a *Analyzer) {
		a.preserveLines = preserve
	}
}

// WithUnicodeNFC enables NFC normalisation of extracted text.
func WithUnicodeNFC(enabled bool) AnalyzerOption {
	return func(a *Analyzer) {
		a.unicodeNFC = enabled
	}
}

// WithMaxFileBytes sets the largest accepted input.
func WithMaxFileBytes(n int) AnalyzerOption {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxFileBytes = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) AnalyzerOption {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAnalyzer creates an analyzer over the given store, extractors and patterns.
func NewAnalyzer(
	store driven.RecordStore,
	extractors driven.ExtractorRegistry,
	patterns driving.PatternService,
	opts ...AnalyzerOption,
) *Analyzer {
	a := &Analyzer{
		store:         store,
		extractors:    extractors,
		patterns:      patterns,
		findings:      NewFindingExtractor(),
		preserveLines: true,
		maxFileBytes:  domain.DefaultMaxFileBytes,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ProcessFile processes one file, detecting its format from the name.
func (a *Analyzer) ProcessFile(ctx context.Context, name string, content []byte) (*domain.Record, error) {
	format, err := domain.DetectFormat(name)
	if err != nil {
		return nil, err
	}
	return a.ProcessFileAs(ctx, name, content, format)
}

// ProcessFileAs processes one file with an explicit format and stores the record.
func (a *Analyzer) ProcessFileAs(
	ctx context.Context,
	name string,
	content []byte,
	format domain.Format,
) (*domain.Record, error) {
	if a.store == nil || a.extractors == nil || a.patterns == nil {
		return nil, errors.New("analyzer not configured")
	}

	logger.Section("Process " + name)
	logger.Debug("Format: %s, size: %d bytes", format, len(content))

	if len(content) > a.maxFileBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", domain.ErrExtractionFailure, len(content), a.maxFileBytes)
	}

	extracted, err := a.extractors.Extract(ctx, format, name, content)
	if err != nil {
		return nil, err
	}

	text := extracted.Text
	if a.unicodeNFC {
		text = NormaliseUnicode(text)
	}
	normalised := Normalise(text)

	matchText := normalised
	if a.preserveLines {
		matchText = NormaliseLines(text)
	}

	registry := a.patterns.Current()
	findings, err := a.findings.Extract(matchText, registry)
	if err != nil {
		return nil, err
	}

	metadata := computeMetadata(normalised, a.sentences)
	metadata.PageCount = extracted.PageCount
	metadata.ByteSize = len(content)

	record := &domain.Record{
		ID:          uuid.New().String(),
		Name:        name,
		Content:     normalised,
		Format:      format,
		ProcessedAt: a.now().UTC(),
		Findings:    findings,
		Metadata:    metadata,
		Patterns:    registry,
	}

	if err := a.store.Add(ctx, record); err != nil {
		return nil, fmt.Errorf("storing record: %w", err)
	}

	logger.Info("Processed %s: %d words, %d findings", name, metadata.WordCount, findings.Total())
	return record, nil
}

// ProcessBatch processes uploads in the order supplied.
// Each failure is logged with its filename and collected; it never stops
// the remaining files. Once ctx is cancelled the remaining files fail
// with the context error.
func (a *Analyzer) ProcessBatch(ctx context.Context, uploads []domain.Upload) *domain.BatchReport {
	report := &domain.BatchReport{
		Succeeded: []domain.Record{},
		Failed:    []domain.FileError{},
	}

	for i, upload := range uploads {
		if err := ctx.Err(); err != nil {
			report.Failed = append(report.Failed, domain.FileError{Name: upload.Name, Index: i, Err: err})
			continue
		}

		record, err := a.processUpload(ctx, upload)
		if err != nil {
			if errors.Is(err, domain.ErrUnsupportedFormat) {
				logger.Warn("Skipping %s: %v", upload.Name, err)
			} else {
				logger.Error("Error processing file %s: %v", upload.Name, err)
			}
			report.Failed = append(report.Failed, domain.FileError{Name: upload.Name, Index: i, Err: err})
			continue
		}
		report.Succeeded = append(report.Succeeded, *record)
	}

	logger.Info("Batch complete: %d processed, %d failed", len(report.Succeeded), len(report.Failed))
	return report
}

func (a *Analyzer) processUpload(ctx context.Context, upload domain.Upload) (*domain.Record, error) {
	if upload.Format != "" {
		return a.ProcessFileAs(ctx, upload.Name, upload.Content, upload.Format)
	}
	return a.ProcessFile(ctx, upload.Name, upload.Content)
}

// Records returns all records in insertion order.
func (a *Analyzer) Records(ctx context.Context) ([]domain.Record, error) {
	if a.store == nil {
		return nil, errors.New("analyzer not configured")
	}
	return a.store.List(ctx)
}

// Record retrieves a record by ID.
func (a *Analyzer) Record(ctx context.Context, id string) (*domain.Record, error) {
	if a.store == nil {
		return nil, errors.New("analyzer not configured")
	}
	return a.store.Get(ctx, id)
}

// Summary aggregates the current records.
func (a *Analyzer) Summary(ctx context.Context) (domain.Summary, error) {
	records, err := a.Records(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return GenerateSummary(records), nil
}

// FormatSummary renders the current summary.
func (a *Analyzer) FormatSummary(ctx context.Context) (string, error) {
	summary, err := a.Summary(ctx)
	if err != nil {
		return "", err
	}
	return FormatSummary(summary, a.now()), nil
}

// ExportJSON serialises the current summary and records.
func (a *Analyzer) ExportJSON(ctx context.Context) ([]byte, error) {
	records, err := a.Records(ctx)
	if err != nil {
		return nil, err
	}
	return ExportJSON(records, GenerateSummary(records), a.now())
}

// ImportJSON replaces the current records with those of an export and
// returns how many were loaded.
func (a *Analyzer) ImportJSON(ctx context.Context, data []byte) (int, error) {
	if a.store == nil {
		return 0, errors.New("analyzer not configured")
	}
	export, err := ImportJSON(data)
	if err != nil {
		return 0, err
	}
	if err := a.store.Replace(ctx, export.Reports); err != nil {
		return 0, fmt.Errorf("replacing records: %w", err)
	}
	logger.Info("Imported %d records", len(export.Reports))
	return len(export.Reports), nil
}

// Reset clears all records.
func (a *Analyzer) Reset(ctx context.Context) error {
	if a.store == nil {
		return errors.New("analyzer not configured")
	}
	if err := a.store.Reset(ctx); err != nil {
		return fmt.Errorf("resetting records: %w", err)
	}
	logger.Info("All records cleared")
	return nil
}
