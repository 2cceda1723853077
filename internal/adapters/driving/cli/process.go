package cli

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Process medical report files",
	Long: `Extract text and key findings from one or more report files.

Supported formats are .pdf, .txt, .docx and .doc. The format is detected
from the file suffix unless --as is given. A file that fails is reported
and skipped; the remaining files are still processed.

Examples:
  medreport process visit-2024-03.pdf labs.txt
  medreport process --summary reports/*.docx
  medreport process --as txt notes.log`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().String("as", "", "process every file as this format (pdf, txt, docx)")
	processCmd.Flags().Bool("summary", false, "print the summary report afterwards")
	processCmd.Flags().String("export", "", "write a JSON export to this path afterwards")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}

	asFlag, _ := cmd.Flags().GetString("as")
	showSummary, _ := cmd.Flags().GetBool("summary")
	exportPath, _ := cmd.Flags().GetString("export")

	var format domain.Format
	if asFlag != "" {
		f, err := domain.ParseFormat(asFlag)
		if err != nil {
			return err
		}
		format = f
	}

	uploads := make([]domain.Upload, 0, len(args))
	argIndex := make([]int, 0, len(args))
	var readErrors []domain.FileError
	for i, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			readErrors = append(readErrors, domain.FileError{Name: filepath.Base(path), Index: i, Err: err})
			continue
		}
		uploads = append(uploads, domain.Upload{
			Name:    filepath.Base(path),
			Content: content,
			Format:  format,
		})
		argIndex = append(argIndex, i)
	}

	report := analyzerService.ProcessBatch(cmd.Context(), uploads)
	report.Failed = mergeFailures(readErrors, report.Failed, argIndex)

	p := newPrinter(cmd)
	for i := range report.Succeeded {
		record := &report.Succeeded[i]
		cmd.Printf("%s %s %s\n",
			p.success("✓"), record.Name,
			p.muted(fmt.Sprintf("(%s, %d words, %d findings)",
				record.ID, record.Metadata.WordCount, record.Findings.Total())))
	}
	for _, failure := range report.Failed {
		cmd.Printf("%s %s: %v\n", p.failure("✗"), failure.Name, failure.Err)
	}
	cmd.Printf("\nProcessed %d of %d files.\n", len(report.Succeeded), report.Total())

	if showSummary {
		text, err := analyzerService.FormatSummary(cmd.Context())
		if err != nil {
			return fmt.Errorf("formatting summary: %w", err)
		}
		cmd.Println()
		cmd.Println(p.markdown(text))
	}

	if exportPath != "" {
		if err := writeExport(cmd, exportPath); err != nil {
			return err
		}
		cmd.Printf("Export written to %s\n", exportPath)
	}

	if report.HasFailures() {
		return fmt.Errorf("%d of %d files failed", len(report.Failed), report.Total())
	}
	return nil
}

// mergeFailures combines read and processing failures in argument order.
// Batch failures carry upload positions; argIndex maps them back to
// argument positions.
func mergeFailures(readErrors, batchErrors []domain.FileError, argIndex []int) []domain.FileError {
	merged := make([]domain.FileError, 0, len(readErrors)+len(batchErrors))
	merged = append(merged, readErrors...)
	for _, failure := range batchErrors {
		if failure.Index >= 0 && failure.Index < len(argIndex) {
			failure.Index = argIndex[failure.Index]
		}
		merged = append(merged, failure)
	}
	slices.SortStableFunc(merged, func(a, b domain.FileError) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return merged
}
