// Package tui provides an interactive terminal user interface for browsing
// processed medical reports. It is a driving adapter over the core services.
package tui

import (
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Analyzer lists records, renders the summary and processes files.
	Analyzer driving.AnalyzerService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	return nil
}
