package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

// GenerateSummary aggregates records into a Summary.
// Zero records yield domain.NoReports.
func GenerateSummary(records []domain.Record) domain.Summary {
	if len(records) == 0 {
		return domain.NoReports()
	}

	summary := domain.Summary{
		TotalReports: len(records),
		ReportTypes:  make(map[domain.Format]int),
		ReportDates:  make([]time.Time, 0, len(records)),
		KeyFindings:  domain.NewFindings(),
	}

	sets := make(map[domain.Category]map[string]struct{})
	for _, c := range domain.Categories() {
		sets[c] = make(map[string]struct{})
	}

	totalSentences := 0
	for i := range records {
		r := &records[i]
		summary.ReportTypes[r.Format]++
		summary.ReportDates = append(summary.ReportDates, r.ProcessedAt)
		summary.Metadata.TotalWordCount += r.Metadata.WordCount
		totalSentences += r.Metadata.SentenceCount

		for category, items := range r.Findings {
			set, ok := sets[category]
			if !ok {
				continue
			}
			for _, item := range items {
				set[item] = struct{}{}
			}
		}
	}

	summary.Metadata.AvgSentencesPerReport = float64(totalSentences) / float64(len(records))

	for category, set := range sets {
		items := make([]string, 0, len(set))
		for item := range set {
			items = append(items, item)
		}
		sort.Strings(items)
		summary.KeyFindings[category] = items
	}

	return summary
}

// disclaimer closes every rendered report.
const disclaimer = `## Important Note
The information above is automatically extracted and may not be complete or accurate.
Please verify all findings with healthcare professionals.
`

// FormatSummary renders a summary as a Markdown report. The output is a
// pure function of the summary and generatedAt.
func FormatSummary(summary domain.Summary, generatedAt time.Time) string {
	if summary.IsEmpty() {
		return domain.NoReportsMessage
	}

	var b strings.Builder
	b.WriteString("# Medical Report Summary\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- **Total Reports**: %d\n", summary.TotalReports)
	fmt.Fprintf(&b, "- **File Types**: %s\n", formatReportTypes(summary.ReportTypes))
	fmt.Fprintf(&b, "- **Total Words**: %d\n", summary.Metadata.TotalWordCount)
	fmt.Fprintf(&b, "- **Avg. Sentences/Report**: %.1f\n\n", summary.Metadata.AvgSentencesPerReport)

	b.WriteString("## Key Findings\n\n")
	for _, category := range domain.Categories() {
		fmt.Fprintf(&b, "### %s:\n", category.Title())
		b.WriteString(formatList(summary.KeyFindings[category]))
		b.WriteString("\n\n")
	}

	b.WriteString(disclaimer)
	return b.String()
}

// formatReportTypes renders "ext (count)" pairs ordered by format.
func formatReportTypes(types map[domain.Format]int) string {
	formats := make([]domain.Format, 0, len(types))
	for f := range types {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })

	parts := make([]string, 0, len(formats))
	for _, f := range formats {
		parts = append(parts, fmt.Sprintf("%s (%d)", f.Extension(), types[f]))
	}
	return strings.Join(parts, ", ")
}

// formatList renders items as a bullet list, or the empty-category marker.
func formatList(items []string) string {
	if len(items) == 0 {
		return "- No findings in this category"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
