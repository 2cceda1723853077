package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change medreport settings stored in config.toml.

Keys:
  storage.backend            memory or sqlite
  storage.data_dir           directory for the SQLite database
  patterns.file              path of the pattern configuration file
  extraction.preserve_lines  match patterns line by line (true/false)
  normalise.unicode_nfc      apply Unicode NFC to extracted text (true/false)
  limits.max_file_bytes      largest accepted file
  limits.max_pattern_length  longest accepted pattern
  verbose                    enable diagnostic logging (true/false)`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset [key]",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsUnset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsUnsetCmd)
	rootCmd.AddCommand(settingsCmd)
}

var errSettingsNotConfigured = errors.New("settings service not configured")

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	if settings.Storage.DataDir != "" {
		cmd.Printf("  Data directory: %s\n", settings.Storage.DataDir)
	}
	cmd.Println()

	cmd.Println("[Patterns]")
	if settings.Patterns.File != "" {
		cmd.Printf("  File: %s\n", settings.Patterns.File)
	} else {
		cmd.Println("  File: (default)")
	}
	cmd.Println()

	cmd.Println("[Extraction]")
	cmd.Printf("  Preserve lines: %s\n", yesNo(settings.Extraction.PreserveLines))
	cmd.Printf("  Unicode NFC: %s\n", yesNo(settings.Extraction.UnicodeNFC))
	cmd.Println()

	cmd.Println("[Limits]")
	cmd.Printf("  Max file size: %d bytes\n", settings.Limits.MaxFileBytes)
	cmd.Printf("  Max pattern length: %d\n", settings.Limits.MaxPatternLength)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'medreport settings set' or edit config.toml to fix it.")
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsUnset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	if err := settingsService.Unset(args[0]); err != nil {
		return err
	}
	cmd.Printf("Unset %s\n", args[0])
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
