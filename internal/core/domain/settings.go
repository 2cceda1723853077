package domain

const unknownDescription = "Unknown"

// StorageBackend selects where processed records are kept.
type StorageBackend string

// Available storage backends.
const (
	// StorageMemory keeps records for the lifetime of the process only.
	StorageMemory StorageBackend = "memory"

	// StorageSQLite persists records in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageMemory, StorageSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageMemory:
		return "Memory (cleared when the process exits)"
	case StorageSQLite:
		return "SQLite (persisted between runs)"
	default:
		return unknownDescription
	}
}

// AllStorageBackends returns all available backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageMemory, StorageSQLite}
}

// StorageSettings configures the record store.
type StorageSettings struct {
	// Backend selects the store implementation.
	Backend StorageBackend

	// DataDir overrides the SQLite data directory. Empty means the default.
	DataDir string
}

// PatternSettings configures where the pattern registry is kept.
type PatternSettings struct {
	// File overrides the pattern configuration path. Empty means the default.
	File string
}

// ExtractionSettings controls text preparation before matching.
type ExtractionSettings struct {
	// PreserveLines matches patterns against line-preserving text so that
	// line-anchored patterns end at the original line breaks.
	PreserveLines bool

	// UnicodeNFC applies NFC normalisation to extracted text.
	UnicodeNFC bool
}

// LimitSettings bounds resource usage.
type LimitSettings struct {
	// MaxFileBytes is the largest accepted upload.
	MaxFileBytes int

	// MaxPatternLength is the longest accepted pattern source.
	MaxPatternLength int
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Storage    StorageSettings
	Patterns   PatternSettings
	Extraction ExtractionSettings
	Limits     LimitSettings

	// Verbose enables diagnostic logging.
	Verbose bool
}

// Default limits.
const (
	DefaultMaxFileBytes     = 50 << 20
	DefaultMaxPatternLength = 1024
)

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Extraction: ExtractionSettings{
			PreserveLines: true,
		},
		Limits: LimitSettings{
			MaxFileBytes:     DefaultMaxFileBytes,
			MaxPatternLength: DefaultMaxPatternLength,
		},
	}
}

// Validate checks that the settings are usable.
func (s AppSettings) Validate() error {
	if !s.Storage.Backend.IsValid() {
		return ErrInvalidConfig
	}
	if s.Limits.MaxFileBytes <= 0 || s.Limits.MaxPatternLength <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
