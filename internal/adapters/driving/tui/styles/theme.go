// Package styles provides the colour theme shared by the TUI and the
// styled CLI output.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/medreport/medreport-cli/internal/core/domain"
)

// Theme is the colour palette.
type Theme struct {
	Accent  lipgloss.Color // titles
	Heading lipgloss.Color // section and category headings
	Text    lipgloss.Color
	Dim     lipgloss.Color
	OK      lipgloss.Color
	Caution lipgloss.Color
	Fail    lipgloss.Color
	Frame   lipgloss.Color
	Cursor  lipgloss.Color // selected row background

	// Categories colours the bullet of each finding category.
	Categories map[domain.Category]lipgloss.Color
}

// DefaultTheme returns the teal clinical palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:  "#0E7490",
		Heading: "#38BDF8",
		Text:    "#E2E8F0",
		Dim:     "#64748B",
		OK:      "#4ADE80",
		Caution: "#FACC15",
		Fail:    "#F87171",
		Frame:   "#334155",
		Cursor:  "#155E75",
		Categories: map[domain.Category]lipgloss.Color{
			domain.CategoryDiagnoses:       "#F472B6",
			domain.CategoryMedications:     "#A78BFA",
			domain.CategoryVitals:          "#34D399",
			domain.CategoryLabResults:      "#FBBF24",
			domain.CategoryRecommendations: "#60A5FA",
		},
	}
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	theme    *Theme
	category map[domain.Category]lipgloss.Style

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Label      lipgloss.Style // metadata field names, fixed width
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles derives styles from theme; nil selects DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	s := &Styles{
		theme:      theme,
		category:   make(map[domain.Category]lipgloss.Style, len(theme.Categories)),
		Title:      fg(theme.Accent).Bold(true),
		Subtitle:   fg(theme.Heading).Bold(true),
		Normal:     fg(theme.Text),
		Muted:      fg(theme.Dim),
		Label:      fg(theme.Dim).Width(12),
		Selected:   fg(theme.Text).Background(theme.Cursor).Bold(true),
		Error:      fg(theme.Fail),
		Success:    fg(theme.OK),
		Warning:    fg(theme.Caution),
		Help:       fg(theme.Dim),
		InputField: lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Frame).Padding(0, 1),
	}
	for c, colour := range theme.Categories {
		s.category[c] = fg(colour).Bold(true)
	}
	return s
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme these styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Category returns the heading style of a finding category.
// Categories without a colour fall back to Subtitle.
func (s *Styles) Category(c domain.Category) lipgloss.Style {
	if style, ok := s.category[c]; ok {
		return style
	}
	return s.Subtitle
}

// ReportLine styles one line of a Markdown summary report.
func (s *Styles) ReportLine(line string) string {
	switch {
	case strings.HasPrefix(line, "# "):
		return s.Title.Render(line)
	case strings.HasPrefix(line, "### "):
		title := strings.TrimSuffix(strings.TrimPrefix(line, "### "), ":")
		for _, c := range domain.Categories() {
			if c.Title() == title {
				return s.Category(c).Render(line)
			}
		}
		return s.Subtitle.Render(line)
	case strings.HasPrefix(line, "## "):
		return s.Subtitle.Render(line)
	case strings.HasPrefix(line, "- No findings"):
		return s.Muted.Render(line)
	}
	return line
}
