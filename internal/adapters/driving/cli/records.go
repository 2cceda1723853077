package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect processed records",
	RunE:  runRecordsList,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List processed records",
	Args:  cobra.NoArgs,
	RunE:  runRecordsList,
}

var recordsGetCmd = &cobra.Command{
	Use:   "get [record-id]",
	Short: "Show the findings and metadata of a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsGet,
}

func init() {
	recordsGetCmd.Flags().Bool("content", false, "also print the normalised content")
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsGetCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runRecordsList(cmd *cobra.Command, _ []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}

	records, err := analyzerService.Records(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}
	if len(records) == 0 {
		cmd.Println(domain.NoReportsMessage)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tPROCESSED\tWORDS\tFINDINGS")
	for i := range records {
		r := &records[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.Name, r.Format, r.ProcessedAt.Format("2006-01-02 15:04"),
			r.Metadata.WordCount, r.Findings.Total())
	}
	return w.Flush()
}

func runRecordsGet(cmd *cobra.Command, args []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}

	record, err := analyzerService.Record(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting record %s: %w", args[0], err)
	}

	p := newPrinter(cmd)
	cmd.Println(p.title(record.Name))
	cmd.Printf("  ID:         %s\n", record.ID)
	cmd.Printf("  Type:       %s\n", record.Format)
	cmd.Printf("  Processed:  %s\n", record.ProcessedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Words:      %d\n", record.Metadata.WordCount)
	cmd.Printf("  Characters: %d\n", record.Metadata.CharacterCount)
	cmd.Printf("  Sentences:  %d\n", record.Metadata.SentenceCount)
	if record.Metadata.PageCount > 0 {
		cmd.Printf("  Pages:      %d\n", record.Metadata.PageCount)
	}
	cmd.Printf("  Patterns:   version %s\n", record.Patterns.Version)
	cmd.Println()

	for _, category := range domain.Categories() {
		cmd.Printf("%s:\n", category.Title())
		items := record.Findings[category]
		if len(items) == 0 {
			cmd.Println(p.muted("  (none)"))
			continue
		}
		for _, item := range items {
			cmd.Printf("  - %s\n", item)
		}
	}

	showContent, _ := cmd.Flags().GetBool("content")
	if showContent {
		cmd.Println()
		cmd.Println(record.Content)
	}
	return nil
}
