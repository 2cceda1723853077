package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFindings(t *testing.T) {
	f := NewFindings()

	assert.Len(t, f, len(Categories()))
	for _, c := range Categories() {
		assert.NotNil(t, f[c], c)
		assert.Empty(t, f[c], c)
	}
	assert.Zero(t, f.Total())
}

func TestFindings_Clone(t *testing.T) {
	f := Findings{
		CategoryDiagnoses: {"Flu"},
	}

	clone := f.Clone()
	clone[CategoryDiagnoses][0] = "Cold"

	assert.Equal(t, "Flu", f[CategoryDiagnoses][0])
	assert.Len(t, clone, len(Categories()))
	assert.NotNil(t, clone[CategoryVitals])
}

func TestFindings_Total(t *testing.T) {
	f := NewFindings()
	f[CategoryDiagnoses] = []string{"Flu", "Cold"}
	f[CategoryVitals] = []string{"120/80"}

	assert.Equal(t, 3, f.Total())
}

func TestRecord_Clone(t *testing.T) {
	r := &Record{
		ID:          "r1",
		Name:        "visit.txt",
		Format:      FormatText,
		ProcessedAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
		Findings:    Findings{CategoryDiagnoses: {"Flu"}},
		Patterns:    DefaultPatterns(),
	}

	clone := r.Clone()
	clone.Findings[CategoryDiagnoses][0] = "Cold"
	clone.Patterns.Patterns[CategoryDiagnoses] = "changed"

	assert.Equal(t, "Flu", r.Findings[CategoryDiagnoses][0])
	assert.Equal(t, DefaultPatterns().Pattern(CategoryDiagnoses), r.Patterns.Pattern(CategoryDiagnoses))
	assert.Equal(t, r.ID, clone.ID)
}

func TestBatchReport(t *testing.T) {
	report := &BatchReport{
		Succeeded: []Record{{ID: "a"}},
		Failed: []FileError{
			{Name: "report.xls", Err: ErrUnsupportedFormat},
		},
	}

	assert.Equal(t, 2, report.Total())
	assert.True(t, report.HasFailures())
	assert.Equal(t, "report.xls: unsupported format", report.Failed[0].Error())
	assert.True(t, errors.Is(report.Failed[0], ErrUnsupportedFormat))

	empty := &BatchReport{}
	assert.False(t, empty.HasFailures())
	assert.Zero(t, empty.Total())
}

func TestSummary_NoReports(t *testing.T) {
	s := NoReports()

	assert.True(t, s.IsEmpty())
	assert.NotNil(t, s.ReportTypes)
	assert.NotNil(t, s.ReportDates)
	assert.Len(t, s.KeyFindings, len(Categories()))
	assert.Zero(t, s.Metadata.TotalWordCount)
}
