// Package records provides the records list view for the TUI.
package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/keymap"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/messages"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
)

// View is the records list view.
type View struct {
	ctx      context.Context
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	analyzer driving.AnalyzerService

	records      []domain.Record
	selected     int
	scrollOffset int
	width        int
	height       int
	loading      bool
	err          error
}

// NewView creates a new records view.
func NewView(ctx context.Context, s *styles.Styles, km *keymap.KeyMap, analyzer driving.AnalyzerService) *View {
	return &View{
		ctx:      ctx,
		styles:   s,
		keymap:   km,
		analyzer: analyzer,
		records:  []domain.Record{},
	}
}

// Init loads the records.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadRecords()
}

func (v *View) loadRecords() tea.Cmd {
	return func() tea.Msg {
		records, err := v.analyzer.Records(v.ctx)
		return messages.RecordsLoaded{Records: records, Err: err}
	}
}

// Update handles messages for the records view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.RecordsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.records = msg.Records
		if v.selected >= len(v.records) {
			v.selected = max(len(v.records)-1, 0)
		}
		v.adjustScroll()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.records)-1 {
			v.selected++
			v.adjustScroll()
		}
	case key.Matches(msg, v.keymap.Select):
		if v.selected < len(v.records) {
			record := v.records[v.selected]
			return v, func() tea.Msg { return messages.RecordSelected{Record: record} }
		}
	case key.Matches(msg, v.keymap.Summary):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSummary} }
	case key.Matches(msg, v.keymap.Process):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewProcess} }
	case key.Matches(msg, v.keymap.Reload):
		return v, v.Init()
	}
	return v, nil
}

func (v *View) adjustScroll() {
	visible := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	}
	if v.selected >= v.scrollOffset+visible {
		v.scrollOffset = v.selected - visible + 1
	}
}

// visibleItemCount reserves lines for the title, header and help.
func (v *View) visibleItemCount() int {
	return max(v.height-7, 1)
}

// View renders the records list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Medical Reports (%d)", len(v.records))))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading records..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.records) == 0:
		b.WriteString(v.styles.Muted.Render(domain.NoReportsMessage))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Press p to process a file."))
	default:
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("  %-32s %-5s %-16s %8s", "NAME", "TYPE", "PROCESSED", "FINDINGS")))
		b.WriteString("\n")
		end := min(v.scrollOffset+v.visibleItemCount(), len(v.records))
		for i := v.scrollOffset; i < end; i++ {
			b.WriteString(v.renderRecord(i, &v.records[i]))
			b.WriteString("\n")
		}
		if len(v.records) > v.visibleItemCount() {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]", v.scrollOffset+1, end, len(v.records))))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keymap.RecordsHelp())))
	return b.String()
}

func (v *View) renderRecord(index int, r *domain.Record) string {
	name := r.Name
	if len(name) > 32 {
		name = name[:29] + "..."
	}
	line := fmt.Sprintf("%-32s %-5s %-16s %8d",
		name, r.Format, r.ProcessedAt.Local().Format("2006-01-02 15:04"), r.Findings.Total())

	if index == v.selected {
		return v.styles.Selected.Render("> " + line)
	}
	return v.styles.Normal.Render("  " + line)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.adjustScroll()
}

// Records returns the loaded records.
func (v *View) Records() []domain.Record {
	return v.records
}

// SelectedIndex returns the index of the highlighted record.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
