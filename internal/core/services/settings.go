package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStorageBackend   = "storage.backend"
	KeyStorageDataDir   = "storage.data_dir"
	KeyPatternsFile     = "patterns.file"
	KeyPreserveLines    = "extraction.preserve_lines"
	KeyUnicodeNFC       = "normalise.unicode_nfc"
	KeyMaxFileBytes     = "limits.max_file_bytes"
	KeyMaxPatternLength = "limits.max_pattern_length"
	KeyVerbose          = "verbose"
)

type settingKind int

const (
	kindString settingKind = iota
	kindBool
	kindPositiveInt
	kindBackend
)

var settingKinds = map[string]settingKind{
	KeyStorageBackend:   kindBackend,
	KeyStorageDataDir:   kindString,
	KeyPatternsFile:     kindString,
	KeyPreserveLines:    kindBool,
	KeyUnicodeNFC:       kindBool,
	KeyMaxFileBytes:     kindPositiveInt,
	KeyMaxPatternLength: kindPositiveInt,
	KeyVerbose:          kindBool,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.configStore.GetString(KeyStorageDataDir),
		},
		Patterns: domain.PatternSettings{
			File: s.configStore.GetString(KeyPatternsFile),
		},
		Extraction: domain.ExtractionSettings{
			PreserveLines: s.getBool(KeyPreserveLines, defaults.Extraction.PreserveLines),
			UnicodeNFC:    s.getBool(KeyUnicodeNFC, defaults.Extraction.UnicodeNFC),
		},
		Limits: domain.LimitSettings{
			MaxFileBytes:     s.getPositiveInt(KeyMaxFileBytes, defaults.Limits.MaxFileBytes),
			MaxPatternLength: s.getPositiveInt(KeyMaxPatternLength, defaults.Limits.MaxPatternLength),
		},
		Verbose: s.getBool(KeyVerbose, defaults.Verbose),
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyStorageBackend, settings.Storage.Backend.String()},
		{KeyStorageDataDir, settings.Storage.DataDir},
		{KeyPatternsFile, settings.Patterns.File},
		{KeyPreserveLines, settings.Extraction.PreserveLines},
		{KeyUnicodeNFC, settings.Extraction.UnicodeNFC},
		{KeyMaxFileBytes, settings.Limits.MaxFileBytes},
		{KeyMaxPatternLength, settings.Limits.MaxPatternLength},
		{KeyVerbose, settings.Verbose},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value according to the key's type and stores it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var parsed any
	switch kind {
	case kindString:
		parsed = value
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidConfig, key, value)
		}
		parsed = b
	case kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s expects a positive integer, got %q", domain.ErrInvalidConfig, key, value)
		}
		parsed = n
	case kindBackend:
		if !domain.StorageBackend(value).IsValid() {
			return fmt.Errorf("%w: %s must be one of %v, got %q",
				domain.ErrInvalidConfig, key, domain.AllStorageBackends(), value)
		}
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Unset removes a stored setting.
func (s *SettingsService) Unset(key string) error {
	if _, ok := settingKinds[key]; !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return s.configStore.Unset(key)
}

// Keys returns all recognised config keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that stored values have the expected types.
// Get silently falls back to defaults; Validate reports what it skipped.
func (s *SettingsService) Validate() error {
	for _, key := range s.Keys() {
		raw, ok := s.configStore.Get(key)
		if !ok {
			continue
		}
		if err := checkKind(settingKinds[key], raw); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, key, err)
		}
	}
	return nil
}

// GetDefaults returns the default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func checkKind(kind settingKind, raw any) error {
	switch kind {
	case kindBool:
		if _, ok := raw.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", raw)
		}
	case kindPositiveInt:
		n, ok := toInt(raw)
		if !ok || n <= 0 {
			return fmt.Errorf("expected positive integer, got %v", raw)
		}
	case kindBackend:
		str, _ := raw.(string)
		if !domain.StorageBackend(str).IsValid() {
			return fmt.Errorf("unknown backend %v", raw)
		}
	case kindString:
		if _, ok := raw.(string); !ok {
			return fmt.Errorf("expected string, got %T", raw)
		}
	}
	return nil
}

// toInt accepts the integer types a config store may hand back.
func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	raw, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	b, ok := raw.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(KeyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
