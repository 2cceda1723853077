package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "medreport")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestDefaultDir_UsesEnv(t *testing.T) {
	t.Setenv("MEDREPORT_HOME", "/tmp/custom-medreport")

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-medreport", dir)
}

func TestConfigStore_SetPersistsAsTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "memory"))
	require.NoError(t, store.Set("limits.max_file_bytes", 1024))
	require.NoError(t, store.Set("verbose", true))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[storage]")
	assert.Contains(t, string(raw), "[limits]")

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "memory", reloaded.GetString("storage.backend"))
	assert.Equal(t, 1024, reloaded.GetInt("limits.max_file_bytes"))
	assert.True(t, reloaded.GetBool("verbose"))
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := `verbose = true

[extraction]
preserve_lines = false

[limits]
max_pattern_length = 256
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.True(t, store.GetBool("verbose"))
	v, ok := store.Get("extraction.preserve_lines")
	require.True(t, ok)
	assert.Equal(t, false, v)
	assert.Equal(t, 256, store.GetInt("limits.max_pattern_length"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_Unset(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("patterns.file", "/tmp/p.json"))
	require.NoError(t, store.Unset("patterns.file"))
	require.NoError(t, store.Unset("patterns.file"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	_, ok := reloaded.Get("patterns.file")
	assert.False(t, ok)
}

func TestConfigStore_TypeMismatchReturnsZero(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("verbose", "yes"))

	assert.False(t, store.GetBool("verbose"))
	assert.Zero(t, store.GetInt("verbose"))
	assert.Empty(t, store.GetString("missing"))
}

func TestFlattenAndNest(t *testing.T) {
	flat := map[string]any{
		"a.b":   1,
		"a.c.d": "x",
		"e":     true,
	}

	nested := nestMap(flat)
	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}, nested)
	assert.Equal(t, flat, flattenMap(nested, ""))
}
