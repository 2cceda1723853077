package memory

import (
	"context"
	"sync"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Records are copied on the way in and out so callers cannot mutate
// stored state.
type RecordStore struct {
	mu      sync.RWMutex
	records []domain.Record
	byID    map[string]int
}

// NewRecordStore creates a new empty in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		byID: make(map[string]int),
	}
}

// Add appends a record.
func (s *RecordStore) Add(_ context.Context, record *domain.Record) error {
	if record == nil || record.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[record.ID]; exists {
		return domain.ErrInvalidInput
	}
	s.byID[record.ID] = len(s.records)
	s.records = append(s.records, record.Clone())
	return nil
}

// List returns all records in insertion order.
func (s *RecordStore) List(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Record, len(s.records))
	for i := range s.records {
		out[i] = s.records[i].Clone()
	}
	return out, nil
}

// Get retrieves a record by ID.
func (s *RecordStore) Get(_ context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	record := s.records[idx].Clone()
	return &record, nil
}

// Count returns the number of stored records.
func (s *RecordStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Reset removes all records.
func (s *RecordStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.byID = make(map[string]int)
	return nil
}

// Replace swaps the stored records for the given ones.
func (s *RecordStore) Replace(_ context.Context, records []domain.Record) error {
	byID := make(map[string]int, len(records))
	copied := make([]domain.Record, len(records))
	for i := range records {
		if records[i].ID == "" {
			return domain.ErrInvalidInput
		}
		if _, dup := byID[records[i].ID]; dup {
			return domain.ErrInvalidInput
		}
		byID[records[i].ID] = i
		copied[i] = records[i].Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = copied
	s.byID = byID
	return nil
}
