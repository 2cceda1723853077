package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

// ProcessFileInput is the input schema for the process_file tool.
type ProcessFileInput struct {
	Name          string `json:"name" jsonschema:"the original filename, used to detect the format"`
	Content       string `json:"content,omitempty" jsonschema:"plain text content of the file"`
	ContentBase64 string `json:"content_base64,omitempty" jsonschema:"base64 encoded bytes of a binary file such as PDF or DOCX"`
	Format        string `json:"format,omitempty" jsonschema:"explicit format overriding the filename: pdf, docx or txt"`
}

// RecordOutput is a processed record without its content.
type RecordOutput struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	ProcessedAt string              `json:"date"`
	Findings    map[string][]string `json:"key_findings"`
	WordCount   int                 `json:"word_count"`
	Sentences   int                 `json:"sentence_count"`
	Pages       int                 `json:"page_count,omitempty"`
}

// SummaryInput is the input schema for the summary tools.
type SummaryInput struct{}

// SummaryOutput is the output schema for the generate_summary tool.
type SummaryOutput struct {
	TotalReports          int                 `json:"total_reports"`
	ReportTypes           map[string]int      `json:"report_types"`
	ReportDates           []string            `json:"report_dates"`
	KeyFindings           map[string][]string `json:"key_findings"`
	TotalWordCount        int                 `json:"total_word_count"`
	AvgSentencesPerReport float64             `json:"avg_sentences_per_report"`
	Message               string              `json:"message,omitempty"`
}

// TextOutput wraps a text document.
type TextOutput struct {
	Text string `json:"text"`
}

// ResetOutput is the output schema for the reset tool.
type ResetOutput struct {
	Removed int `json:"removed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "process_file",
		Description: "Extract and categorise the findings of one medical report",
	}, s.handleProcessFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_summary",
		Description: "Aggregate the findings of all processed reports",
	}, s.handleGenerateSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_summary",
		Description: "Render the summary of all processed reports as Markdown",
	}, s.handleFormatSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_json",
		Description: "Export the summary and every processed report as JSON",
	}, s.handleExportJSON)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reset",
		Description: "Delete all processed reports",
	}, s.handleReset)
}

// handleProcessFile handles the process_file tool invocation.
func (s *Server) handleProcessFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProcessFileInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	content, err := decodeContent(input)
	if err != nil {
		return nil, RecordOutput{}, err
	}

	var record *domain.Record
	if input.Format != "" {
		format, ferr := domain.ParseFormat(input.Format)
		if ferr != nil {
			return nil, RecordOutput{}, ferr
		}
		record, err = s.ports.Analyzer.ProcessFileAs(ctx, input.Name, content, format)
	} else {
		record, err = s.ports.Analyzer.ProcessFile(ctx, input.Name, content)
	}
	if err != nil {
		return nil, RecordOutput{}, err
	}

	return nil, toRecordOutput(record), nil
}

// handleGenerateSummary handles the generate_summary tool invocation.
func (s *Server) handleGenerateSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ SummaryInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	summary, err := s.ports.Analyzer.Summary(ctx)
	if err != nil {
		return nil, SummaryOutput{}, err
	}
	return nil, toSummaryOutput(summary), nil
}

// handleFormatSummary handles the format_summary tool invocation.
func (s *Server) handleFormatSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ SummaryInput,
) (*mcp.CallToolResult, TextOutput, error) {
	text, err := s.ports.Analyzer.FormatSummary(ctx)
	if err != nil {
		return nil, TextOutput{}, err
	}
	return nil, TextOutput{Text: text}, nil
}

// handleExportJSON handles the export_json tool invocation.
func (s *Server) handleExportJSON(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ SummaryInput,
) (*mcp.CallToolResult, TextOutput, error) {
	data, err := s.ports.Analyzer.ExportJSON(ctx)
	if err != nil {
		return nil, TextOutput{}, err
	}
	return nil, TextOutput{Text: string(data)}, nil
}

// handleReset handles the reset tool invocation.
func (s *Server) handleReset(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ SummaryInput,
) (*mcp.CallToolResult, ResetOutput, error) {
	records, err := s.ports.Analyzer.Records(ctx)
	if err != nil {
		return nil, ResetOutput{}, err
	}
	if err := s.ports.Analyzer.Reset(ctx); err != nil {
		return nil, ResetOutput{}, err
	}
	return nil, ResetOutput{Removed: len(records)}, nil
}

func decodeContent(input ProcessFileInput) ([]byte, error) {
	if input.ContentBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(input.ContentBase64)
		if err != nil {
			return nil, fmt.Errorf("decoding content_base64: %w", domain.ErrInvalidInput)
		}
		return data, nil
	}
	if input.Content == "" {
		return nil, ErrMissingContent
	}
	return []byte(input.Content), nil
}

func toRecordOutput(r *domain.Record) RecordOutput {
	return RecordOutput{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Format.String(),
		ProcessedAt: r.ProcessedAt.Format(time.RFC3339),
		Findings:    findingsMap(r.Findings),
		WordCount:   r.Metadata.WordCount,
		Sentences:   r.Metadata.SentenceCount,
		Pages:       r.Metadata.PageCount,
	}
}

func toSummaryOutput(s domain.Summary) SummaryOutput {
	out := SummaryOutput{
		TotalReports:          s.TotalReports,
		ReportTypes:           make(map[string]int, len(s.ReportTypes)),
		ReportDates:           make([]string, len(s.ReportDates)),
		KeyFindings:           findingsMap(s.KeyFindings),
		TotalWordCount:        s.Metadata.TotalWordCount,
		AvgSentencesPerReport: s.Metadata.AvgSentencesPerReport,
	}
	for format, n := range s.ReportTypes {
		out.ReportTypes[format.String()] = n
	}
	for i, d := range s.ReportDates {
		out.ReportDates[i] = d.Format(time.RFC3339)
	}
	if s.IsEmpty() {
		out.Message = domain.NoReportsMessage
	}
	return out
}

func findingsMap(f domain.Findings) map[string][]string {
	out := make(map[string][]string, len(domain.Categories()))
	for _, c := range domain.Categories() {
		items := f[c]
		if items == nil {
			items = []string{}
		}
		out[string(c)] = items
	}
	return out
}
