package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all processed records",
	Long: `Delete every processed record. Pattern configuration and settings
are kept. Asks for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		cmd.Print("Delete all processed records? [y/N]: ")
		answer := strings.ToLower(readLine(bufio.NewReader(cmd.InOrStdin())))
		if answer != "y" && answer != "yes" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := analyzerService.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("resetting: %w", err)
	}
	cmd.Println("All records deleted.")
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
