package driving

import (
	"context"
	"time"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

// AnalyzerService processes medical documents and aggregates their findings.
type AnalyzerService interface {
	// ProcessFile extracts, normalises and categorises one file, detecting
	// the format from its name, and stores the resulting record.
	ProcessFile(ctx context.Context, name string, content []byte) (*domain.Record, error)

	// ProcessFileAs is ProcessFile with an explicit format tag.
	ProcessFileAs(ctx context.Context, name string, content []byte, format domain.Format) (*domain.Record, error)

	// ProcessBatch processes uploads in order. A failing file never
	// prevents its siblings from being processed.
	ProcessBatch(ctx context.Context, uploads []domain.Upload) *domain.BatchReport

	// Records returns all records in insertion order.
	Records(ctx context.Context) ([]domain.Record, error)

	// Record retrieves a record by ID.
	Record(ctx context.Context, id string) (*domain.Record, error)

	// Summary aggregates the current records.
	Summary(ctx context.Context) (domain.Summary, error)

	// FormatSummary renders the current summary as a text report.
	FormatSummary(ctx context.Context) (string, error)

	// ExportJSON serialises the summary and all records.
	ExportJSON(ctx context.Context) ([]byte, error)

	// ImportJSON replaces the current records with those of an export.
	// On error the current records are unchanged.
	ImportJSON(ctx context.Context, data []byte) (int, error)

	// Reset clears all records.
	Reset(ctx context.Context) error
}

// Export is the structured interchange document.
type Export struct {
	// Summary is the aggregation at export time.
	Summary domain.Summary `json:"summary"`

	// Reports holds every record with full content and findings.
	Reports []domain.Record `json:"reports"`

	// GeneratedAt is when the export was produced.
	GeneratedAt time.Time `json:"generated_at"`
}
