package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

func TestNewPatternStore_NoIO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "patterns.json")

	store, err := NewPatternStore(path)
	require.NoError(t, err)

	assert.Equal(t, path, store.Path())
	assert.NoFileExists(t, path)
}

func TestPatternStore_Load_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "patterns.json")
	store, err := NewPatternStore(path)
	require.NoError(t, err)

	registry, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPatterns(), registry)
	assert.FileExists(t, path)
}

func TestPatternStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	store, err := NewPatternStore(path)
	require.NoError(t, err)

	edited := domain.DefaultPatterns().With(domain.CategoryVitals, `(?:bp)[:\s](.*?)(?:\n|$)`)
	require.NoError(t, store.Save(edited))

	registry, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, edited, registry)
}

func TestPatternStore_KeepsUncompilablePatterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	store, err := NewPatternStore(path)
	require.NoError(t, err)

	edited := domain.DefaultPatterns().With(domain.CategoryDiagnoses, `(unclosed`)
	require.NoError(t, store.Save(edited))

	registry, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, `(unclosed`, registry.Pattern(domain.CategoryDiagnoses))
}

func TestPatternStore_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{"},
		{name: "missing patterns", content: `{"version": "1.0"}`},
		{name: "unknown category", content: `{"patterns": {"allergies": "(.*)"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "patterns.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			store, err := NewPatternStore(path)
			require.NoError(t, err)

			_, err = store.Load()
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestPatternStore_Save_DefaultsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	store, err := NewPatternStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.PatternRegistry{}))

	registry, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.PatternConfigVersion, registry.Version)
	assert.True(t, registry.IsEmpty())
}
