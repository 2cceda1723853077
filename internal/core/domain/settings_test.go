package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageBackend_IsValid(t *testing.T) {
	tests := []struct {
		backend  StorageBackend
		expected bool
	}{
		{StorageMemory, true},
		{StorageSQLite, true},
		{StorageBackend(""), false},
		{StorageBackend("postgres"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.backend.IsValid())
		})
	}
}

func TestStorageBackend_Description(t *testing.T) {
	assert.Contains(t, StorageMemory.Description(), "Memory")
	assert.Contains(t, StorageSQLite.Description(), "SQLite")
	assert.Equal(t, "Unknown", StorageBackend("x").Description())
}

func TestAllStorageBackends(t *testing.T) {
	backends := AllStorageBackends()
	assert.Len(t, backends, 2)
	for _, b := range backends {
		assert.True(t, b.IsValid())
	}
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, StorageSQLite, s.Storage.Backend)
	assert.True(t, s.Extraction.PreserveLines)
	assert.False(t, s.Extraction.UnicodeNFC)
	assert.Equal(t, 50<<20, s.Limits.MaxFileBytes)
	assert.Equal(t, 1024, s.Limits.MaxPatternLength)
	assert.False(t, s.Verbose)
	assert.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*AppSettings)
	}{
		{"unknown backend", func(s *AppSettings) { s.Storage.Backend = "redis" }},
		{"zero file limit", func(s *AppSettings) { s.Limits.MaxFileBytes = 0 }},
		{"negative pattern limit", func(s *AppSettings) { s.Limits.MaxPatternLength = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.modify(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidConfig)
		})
	}
}
