package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/adapters/driven/storage/memory"
	"github.com/medreport/medreport-cli/internal/core/services"
	"github.com/medreport/medreport-cli/internal/extractors"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "medreport", rootCmd.Use)
}

func TestRootCmd_HasCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"process", "summary", "export", "import", "records",
		"patterns", "reset", "settings", "mcp", "browse", "version",
	} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestRootCmd_FactoryBuildsServicesOnce(t *testing.T) {
	defer SetServices(nil)
	defer SetServiceFactory(nil)
	SetServices(nil)

	calls := 0
	var gotOpts Options
	SetServiceFactory(func(opts Options) (*Services, error) {
		calls++
		gotOpts = opts
		patterns, err := services.NewPatternService(nil, nil)
		if err != nil {
			return nil, err
		}
		return &Services{
			Analyzer: services.NewAnalyzer(memory.NewRecordStore(), extractors.NewDefaultRegistry(), patterns),
			Patterns: patterns,
			Settings: services.NewSettingsService(memory.NewConfigStore()),
		}, nil
	})

	dir := t.TempDir()
	_, err := executeCommand(t, "", "--config-dir", dir, "summary")
	require.NoError(t, err)
	_, err = executeCommand(t, "", "summary")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, dir, gotOpts.ConfigDir)
}

func TestRootCmd_FactoryError(t *testing.T) {
	defer SetServices(nil)
	defer SetServiceFactory(nil)
	SetServices(nil)

	SetServiceFactory(func(Options) (*Services, error) {
		return nil, errors.New("config unreadable")
	})

	_, err := executeCommand(t, "", "summary")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config unreadable")
}

func TestRootCmd_VersionSkipsFactory(t *testing.T) {
	defer SetServiceFactory(nil)
	SetServices(nil)

	SetServiceFactory(func(Options) (*Services, error) {
		return nil, errors.New("must not be called")
	})

	out, err := executeCommand(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "medreport version")
}
