package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/adapters/driven/storage/memory"
	"github.com/medreport/medreport-cli/internal/core/services"
	"github.com/medreport/medreport-cli/internal/extractors"
)

// setupTestServices installs in-memory services and returns a cleanup func.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	patterns, err := services.NewPatternService(nil, nil)
	require.NoError(t, err)

	analyzer := services.NewAnalyzer(memory.NewRecordStore(), extractors.NewDefaultRegistry(), patterns)
	SetServices(&Services{
		Analyzer: analyzer,
		Patterns: patterns,
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})

	return func() { SetServices(nil) }
}

// executeCommand runs the root command with args and returns its output.
// Flags are reset first because cobra keeps their values between runs.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeFile creates a file under a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
