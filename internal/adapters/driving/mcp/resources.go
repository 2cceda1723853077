package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

const uriScheme = "medreport://"

const mimeJSON = "application/json"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "records",
		Name:        "records",
		Description: "List of all processed reports",
		MIMEType:    mimeJSON,
	}, s.handleRecordsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{recordId}",
		Name:        "record-content",
		Description: "Normalised text of a processed report",
		MIMEType:    "text/plain",
	}, s.handleRecordContentResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "summary",
		Name:        "summary",
		Description: "Summary report across all processed reports",
		MIMEType:    "text/markdown",
	}, s.handleSummaryResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "patterns",
		Name:        "patterns",
		Description: "Active finding extraction patterns",
		MIMEType:    mimeJSON,
	}, s.handlePatternsResource)
}

// handleRecordsResource returns the processed records without content.
func (s *Server) handleRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Analyzer.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	outputs := make([]RecordOutput, len(records))
	for i := range records {
		outputs[i] = toRecordOutput(&records[i])
	}

	data, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling records: %w", err)
	}

	return textResult(req.Params.URI, mimeJSON, string(data)), nil
}

// handleRecordContentResource returns the content of a specific record.
func (s *Server) handleRecordContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractRecordID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Analyzer.Record(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	return textResult(req.Params.URI, "text/plain", record.Content), nil
}

// handleSummaryResource returns the formatted summary report.
func (s *Server) handleSummaryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	text, err := s.ports.Analyzer.FormatSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("formatting summary: %w", err)
	}
	return textResult(req.Params.URI, "text/markdown", text), nil
}

// handlePatternsResource returns the active pattern configuration.
func (s *Server) handlePatternsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Patterns == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := s.ports.Patterns.Save()
	if err != nil {
		return nil, fmt.Errorf("serialising patterns: %w", err)
	}
	return textResult(req.Params.URI, mimeJSON, string(data)), nil
}

func textResult(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}

// extractRecordID extracts the record ID from a URI like medreport://records/{recordId}.
func extractRecordID(uri string) string {
	const prefix = uriScheme + "records/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
