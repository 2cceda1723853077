package mcp

import (
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Analyzer processes files and aggregates records.
	Analyzer driving.AnalyzerService

	// Patterns exposes the pattern registry. Optional.
	Patterns driving.PatternService
}

// Validate ensures all required ports are set. A nil *Ports is invalid.
func (p *Ports) Validate() error {
	if p == nil || p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	return nil
}
