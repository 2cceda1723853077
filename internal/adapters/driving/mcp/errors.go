// Package mcp provides an MCP (Model Context Protocol) server adapter for medreport.
// It lets AI assistants process reports and read summaries and records.
package mcp

import "errors"

// ErrMissingAnalyzerService is returned when the analyzer service is not provided.
var ErrMissingAnalyzerService = errors.New("mcp: analyzer service is required")

// ErrMissingContent is returned when process_file is called without content.
var ErrMissingContent = errors.New("mcp: content or content_base64 is required")
