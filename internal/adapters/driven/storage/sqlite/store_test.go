package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func newTestRecord(id, name string) *domain.Record {
	findings := domain.NewFindings()
	findings[domain.CategoryDiagnoses] = []string{"Hypertension"}
	findings[domain.CategoryMedications] = []string{"Lisinopril 10mg", "Lisinopril 10mg"}
	return &domain.Record{
		ID:          id,
		Name:        name,
		Content:     "Diagnosis: Hypertension Medication: Lisinopril 10mg",
		Format:      domain.FormatText,
		ProcessedAt: time.Date(2024, 3, 1, 10, 30, 0, 123456789, time.UTC),
		Findings:    findings,
		Metadata: domain.Metadata{
			WordCount:      5,
			CharacterCount: 51,
			SentenceCount:  1,
			ByteSize:       53,
		},
		Patterns: domain.DefaultPatterns(),
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "records.db"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_ReopenKeepsRecords(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, newTestRecord("r-1", "a.txt")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_AddAndGet_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	want := newTestRecord("r-1", "report.txt")
	require.NoError(t, store.Add(ctx, want))

	got, err := store.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, *want, *got)
}

func TestStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Add_Invalid(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.Add(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Add(ctx, &domain.Record{}), domain.ErrInvalidInput)

	require.NoError(t, store.Add(ctx, newTestRecord("r-1", "a.txt")))
	assert.ErrorIs(t, store.Add(ctx, newTestRecord("r-1", "a.txt")), domain.ErrInvalidInput)
}

func TestStore_List_InsertionOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Add(ctx, newTestRecord(id, id+".txt")))
	}

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
	assert.Equal(t, "b", records[2].ID)
}

func TestStore_List_Empty(t *testing.T) {
	store := setupTestStore(t)

	records, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Reset(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, newTestRecord("r-1", "a.txt")))
	require.NoError(t, store.Add(ctx, newTestRecord("r-2", "b.txt")))

	require.NoError(t, store.Reset(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_Replace(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, newTestRecord("old", "old.txt")))

	require.NoError(t, store.Replace(ctx, []domain.Record{
		*newTestRecord("n-1", "x.txt"),
		*newTestRecord("n-2", "y.txt"),
	}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "n-1", records[0].ID)
	assert.Equal(t, "n-2", records[1].ID)
}

func TestStore_Replace_RollsBackOnDuplicate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, newTestRecord("old", "old.txt")))

	err := store.Replace(ctx, []domain.Record{
		*newTestRecord("dup", "x.txt"),
		*newTestRecord("dup", "y.txt"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "old", records[0].ID)
}
