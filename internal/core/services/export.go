package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
)

// ExportJSON serialises the summary and all records as indented JSON with
// top-level keys summary, reports and generated_at.
func ExportJSON(records []domain.Record, summary domain.Summary, generatedAt time.Time) ([]byte, error) {
	if records == nil {
		records = []domain.Record{}
	}
	export := driving.Export{
		Summary:     summary,
		Reports:     records,
		GeneratedAt: generatedAt.UTC(),
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling export: %w", err)
	}
	return data, nil
}

// ImportJSON parses a document produced by ExportJSON.
// Every record comes back with all five categories present; an unknown
// category or format fails with domain.ErrInvalidInput.
func ImportJSON(data []byte) (*driving.Export, error) {
	var export driving.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("%w: parsing export: %v", domain.ErrInvalidInput, err)
	}

	for i := range export.Reports {
		r := &export.Reports[i]
		if err := validateImportedRecord(r); err != nil {
			return nil, fmt.Errorf("%w: report %d (%s): %v", domain.ErrInvalidInput, i, r.Name, err)
		}
		r.Findings = r.Findings.Clone()
		r.Patterns = r.Patterns.Clone()
	}
	if export.Reports == nil {
		export.Reports = []domain.Record{}
	}
	if export.Summary.KeyFindings == nil {
		export.Summary = domain.NoReports()
	}

	return &export, nil
}

func validateImportedRecord(r *domain.Record) error {
	if r.ID == "" {
		return fmt.Errorf("missing id")
	}
	if _, err := domain.ParseFormat(string(r.Format)); err != nil {
		return err
	}
	for category := range r.Findings {
		if !category.IsValid() {
			return fmt.Errorf("unknown category %q", category)
		}
	}
	return nil
}
