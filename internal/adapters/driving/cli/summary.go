package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the summary report of all processed files",
	Long: `Print a Markdown report aggregating the findings of every processed file.

Use --json to print the structured summary instead.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the summary and all records as JSON",
	Long: `Write the summary and every record, including full content and
findings, as a JSON document. Writes to stdout unless --output is given.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace all records with those of a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	summaryCmd.Flags().Bool("json", false, "print the structured summary as JSON")
	exportCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		summary, err := analyzerService.Summary(cmd.Context())
		if err != nil {
			return fmt.Errorf("generating summary: %w", err)
		}
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	text, err := analyzerService.FormatSummary(cmd.Context())
	if err != nil {
		return fmt.Errorf("formatting summary: %w", err)
	}
	cmd.Println(newPrinter(cmd).markdown(text))
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		data, err := analyzerService.ExportJSON(cmd.Context())
		if err != nil {
			return fmt.Errorf("exporting: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if err := writeExport(cmd, output); err != nil {
		return err
	}
	cmd.Printf("Export written to %s\n", output)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading export: %w", err)
	}

	n, err := analyzerService.ImportJSON(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}
	cmd.Printf("Imported %d records from %s\n", n, args[0])
	return nil
}

// writeExport writes the JSON export to path.
func writeExport(cmd *cobra.Command, path string) error {
	data, err := analyzerService.ExportJSON(cmd.Context())
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
