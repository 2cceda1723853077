package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/medreport/medreport-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the analyzer to MCP clients",
	Long: `Serve the analyzer over the Model Context Protocol.

Without --port the server speaks JSON-RPC on stdin/stdout, which is what
desktop assistants expect when they launch medreport themselves. With
--port it serves streamable HTTP, bound to loopback unless --host says
otherwise.

Tools:
  process_file       process one report (text or base64 content)
  generate_summary   structured summary of all records
  format_summary     the summary as a Markdown report
  export_json        summary and records as JSON
  reset              delete all records

Resources:
  medreport://records              all records (JSON)
  medreport://records/{recordId}   normalised content of one record
  medreport://summary              the Markdown report
  medreport://patterns             the active pattern configuration`,
	Example: `  medreport mcp serve
  medreport mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "serve HTTP on this port instead of stdio")
	mcpServeCmd.Flags().String("host", "127.0.0.1", "interface to bind in HTTP mode")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := requireAnalyzer(); err != nil {
		return err
	}
	port, _ := cmd.Flags().GetInt("port")
	host, _ := cmd.Flags().GetString("host")

	server, err := mcp.NewServer(&mcp.Ports{
		Analyzer: analyzerService,
		Patterns: patternService,
	})
	if err != nil {
		return err
	}

	if port <= 0 {
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
