package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Manage the finding extraction patterns",
	Long: `View and edit the regular expressions used to extract findings.

Each category has one pattern. The first capture group of every match is
taken as the finding. Patterns are matched case-insensitively.`,
	RunE: runPatternsShow,
}

var patternsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active patterns",
	Args:  cobra.NoArgs,
	RunE:  runPatternsShow,
}

var patternsSetCmd = &cobra.Command{
	Use:   "set [category] [pattern]",
	Short: "Replace the pattern of one category",
	Long: `Replace the pattern of one category.

The pattern is stored as given. If it does not compile, files processed
afterwards fail with an invalid pattern error until it is fixed.

Categories: diagnoses, medications, vitals, lab_results, recommendations`,
	Args: cobra.ExactArgs(2),
	RunE: runPatternsSet,
}

var patternsLoadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load a pattern configuration document",
	Long: `Load a JSON pattern configuration and make it active.

The document is rejected as a whole if it is malformed, names an unknown
category, or contains a pattern that does not compile.`,
	Args: cobra.ExactArgs(1),
	RunE: runPatternsLoad,
}

var patternsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the active patterns as a configuration document",
	Args:  cobra.NoArgs,
	RunE:  runPatternsSave,
}

var patternsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every active pattern compiles",
	Args:  cobra.NoArgs,
	RunE:  runPatternsValidate,
}

var patternsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in patterns",
	Args:  cobra.NoArgs,
	RunE:  runPatternsReset,
}

func init() {
	patternsSaveCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	patternsCmd.AddCommand(patternsShowCmd)
	patternsCmd.AddCommand(patternsSetCmd)
	patternsCmd.AddCommand(patternsLoadCmd)
	patternsCmd.AddCommand(patternsSaveCmd)
	patternsCmd.AddCommand(patternsValidateCmd)
	patternsCmd.AddCommand(patternsResetCmd)
	rootCmd.AddCommand(patternsCmd)
}

var errPatternsNotConfigured = errors.New("pattern service not configured")

func runPatternsShow(cmd *cobra.Command, _ []string) error {
	if patternService == nil {
		return errPatternsNotConfigured
	}

	registry := patternService.Current()
	p := newPrinter(cmd)
	cmd.Println(p.title(fmt.Sprintf("Patterns (version %s)", registry.Version)))
	for _, category := range domain.Categories() {
		pattern := registry.Pattern(category)
		if pattern == "" {
			pattern = p.muted("(disabled)")
		}
		cmd.Printf("  %-16s %s\n", category, pattern)
	}
	return nil
}

func runPatternsSet(cmd *cobra.Command, args []string) error {
	if patternService == nil {
		return errPatternsNotConfigured
	}

	category := domain.Category(args[0])
	if err := patternService.SetPattern(category, args[1]); err != nil {
		return fmt.Errorf("setting pattern: %w", err)
	}
	cmd.Printf("Pattern for %s updated.\n", category)

	if err := patternService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runPatternsLoad(cmd *cobra.Command, args []string) error {
	if patternService == nil {
		return errPatternsNotConfigured
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading pattern config: %w", err)
	}
	if err := patternService.Load(data); err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}
	cmd.Printf("Loaded patterns from %s (version %s)\n", args[0], patternService.Current().Version)
	return nil
}

func runPatternsSave(cmd *cobra.Command, _ []string) error {
	if patternService == nil {
		return errPatternsNotConfigured
	}

	data, err := patternService.Save()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		cmd.Println(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0600); err != nil {
		return fmt.Errorf("writing pattern config: %w", err)
	}
	cmd.Printf("Patterns written to %s\n", output)
	return nil
}

func runPatternsValidate(cmd *cobra.Command, _ []string) error {
	if patternService == nil {
		return errPatternsNotConfigured
	}
	if err := patternService.Validate(); err != nil {
		return err
	}
	cmd.Println("All patterns are valid.")
	return nil
}

func runPatternsReset(cmd *cobra.Command, _ []string) error {
	if patternService == nil {
		return errPatternsNotConfigured
	}
	if err := patternService.ResetDefaults(); err != nil {
		return fmt.Errorf("resetting patterns: %w", err)
	}
	cmd.Println("Built-in patterns restored.")
	return nil
}
