package driven

import (
	"context"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

// RecordStore exclusively owns the list of processed records.
// It is append-only apart from Reset and Replace.
type RecordStore interface {
	// Add appends a record. Duplicate names are stored as separate records.
	Add(ctx context.Context, record *domain.Record) error

	// List returns all records in insertion order.
	List(ctx context.Context) ([]domain.Record, error)

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*domain.Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Reset removes all records atomically; no partial state is visible.
	Reset(ctx context.Context) error

	// Replace atomically swaps the stored records for the given ones.
	Replace(ctx context.Context, records []domain.Record) error
}
