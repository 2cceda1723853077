package domain

import "time"

// NoReportsMessage is rendered in place of a report when nothing has been processed.
const NoReportsMessage = "No reports have been processed yet."

// Summary is the cross-document aggregation of all current records.
// It is a projection: it is recomputed on demand and never stored on its own.
type Summary struct {
	// TotalReports is the number of records aggregated.
	TotalReports int `json:"total_reports"`

	// ReportTypes counts records per format.
	ReportTypes map[Format]int `json:"report_types"`

	// ReportDates lists processing timestamps in record order.
	ReportDates []time.Time `json:"report_dates"`

	// KeyFindings is the per-category set union, sorted ascending.
	KeyFindings Findings `json:"key_findings"`

	// Metadata holds aggregate counts.
	Metadata SummaryMetadata `json:"metadata"`
}

// SummaryMetadata holds counts aggregated over all records.
type SummaryMetadata struct {
	// TotalWordCount is the sum of per-record word counts.
	TotalWordCount int `json:"total_word_count"`

	// AvgSentencesPerReport is the mean per-record sentence count.
	AvgSentencesPerReport float64 `json:"avg_sentences_per_report"`
}

// NoReports returns the summary of an empty record set.
// It carries all five categories, each empty.
func NoReports() Summary {
	return Summary{
		ReportTypes: map[Format]int{},
		ReportDates: []time.Time{},
		KeyFindings: NewFindings(),
	}
}

// IsEmpty returns true if the summary aggregates no records.
func (s Summary) IsEmpty() bool {
	return s.TotalReports == 0
}
