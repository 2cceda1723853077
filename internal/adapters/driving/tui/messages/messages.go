// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/medreport/medreport-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewRecords lists processed records.
	ViewRecords ViewType = iota
	// ViewRecord shows one record's metadata, findings and content.
	ViewRecord
	// ViewSummary shows the summary report.
	ViewSummary
	// ViewProcess prompts for a file to process.
	ViewProcess
	// ViewHelp shows keybindings.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewRecords:
		return "records"
	case ViewRecord:
		return "record"
	case ViewSummary:
		return "summary"
	case ViewProcess:
		return "process"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// RecordsLoaded carries the records from the analyzer.
type RecordsLoaded struct {
	Records []domain.Record
	Err     error
}

// RecordSelected signals a record was chosen in the list.
type RecordSelected struct {
	Record domain.Record
}

// SummaryLoaded carries the rendered summary report.
type SummaryLoaded struct {
	Text string
	Err  error
}

// FileProcessed carries the outcome of processing one file.
type FileProcessed struct {
	Path   string
	Record *domain.Record
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
