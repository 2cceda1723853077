package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/medreport/medreport-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RecordStore = (*Store)(nil)

// databaseFile is the name of the database inside the data directory.
const databaseFile = "records.db"

// Store is a SQLite-based record store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.medreport/data/records.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".medreport", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, databaseFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending up migrations in version order.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Add appends a record.
func (s *Store) Add(ctx context.Context, record *domain.Record) error {
	if record == nil || record.ID == "" {
		return domain.ErrInvalidInput
	}
	return insertRecord(ctx, s.db, record)
}

// List returns all records in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, content, format, processed_at, findings, metadata, patterns
		FROM records ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// Get retrieves a record by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, content, format, processed_at, findings, metadata, patterns
		FROM records WHERE id = ?
	`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return record, err
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

// Reset removes all records.
func (s *Store) Reset(ctx context.Context) error {
	return s.Replace(ctx, nil)
}

// Replace swaps the stored records for the given ones in one transaction.
func (s *Store) Replace(ctx context.Context, records []domain.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}
	for i := range records {
		if records[i].ID == "" {
			return domain.ErrInvalidInput
		}
		if err := insertRecord(ctx, tx, &records[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertRecord(ctx context.Context, db execer, record *domain.Record) error {
	findings, err := json.Marshal(record.Findings.Clone())
	if err != nil {
		return fmt.Errorf("marshalling findings: %w", err)
	}
	metadata, err := json.Marshal(record.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}
	patterns, err := json.Marshal(record.Patterns)
	if err != nil {
		return fmt.Errorf("marshalling patterns: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO records (id, name, content, format, processed_at, findings, metadata, patterns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Name, record.Content, string(record.Format),
		record.ProcessedAt.UTC().Format(time.RFC3339Nano),
		string(findings), string(metadata), string(patterns))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: duplicate record id %s", domain.ErrInvalidInput, record.ID)
		}
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.Record, error) {
	var (
		record                       domain.Record
		format, processedAt          string
		findings, metadata, patterns string
	)
	if err := row.Scan(&record.ID, &record.Name, &record.Content, &format,
		&processedAt, &findings, &metadata, &patterns); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	record.Format = domain.Format(format)

	t, err := time.Parse(time.RFC3339Nano, processedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing processed_at: %w", err)
	}
	record.ProcessedAt = t

	if err := json.Unmarshal([]byte(findings), &record.Findings); err != nil {
		return nil, fmt.Errorf("unmarshalling findings: %w", err)
	}
	record.Findings = record.Findings.Clone()
	if err := json.Unmarshal([]byte(metadata), &record.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshalling metadata: %w", err)
	}
	if err := json.Unmarshal([]byte(patterns), &record.Patterns); err != nil {
		return nil, fmt.Errorf("unmarshalling patterns: %w", err)
	}

	return &record, nil
}
