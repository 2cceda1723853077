// Package summary provides the summary report view for the TUI.
package summary

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/components/pager"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/keymap"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/messages"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
)

// View renders the summary report of all records.
type View struct {
	ctx      context.Context
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	analyzer driving.AnalyzerService
	pager    *pager.Pager

	loading bool
	err     error
}

// NewView creates a new summary view.
func NewView(ctx context.Context, s *styles.Styles, km *keymap.KeyMap, analyzer driving.AnalyzerService) *View {
	return &View{
		ctx:      ctx,
		styles:   s,
		keymap:   km,
		analyzer: analyzer,
		pager:    pager.New(s),
	}
}

// Init renders the summary in the background.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	return func() tea.Msg {
		text, err := v.analyzer.FormatSummary(v.ctx)
		return messages.SummaryLoaded{Text: text, Err: err}
	}
}

// Update handles messages for the summary view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.SummaryLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.pager.SetLines(v.highlight(msg.Text))
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Up):
			v.pager.ScrollUp(1)
		case key.Matches(msg, v.keymap.Down):
			v.pager.ScrollDown(1)
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewRecords} }
		}
	}
	return v, nil
}

// highlight styles the report for the pager.
func (v *View) highlight(text string) []string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = v.styles.ReportLine(line)
	}
	return lines
}

// View renders the summary.
func (v *View) View() string {
	var b strings.Builder

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Generating summary..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	default:
		b.WriteString(v.pager.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keymap.PagerHelp())))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(_, height int) {
	v.pager.SetHeight(height - 3)
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
