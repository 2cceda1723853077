// Package record provides the record detail view for the TUI.
package record

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/components/pager"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/keymap"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/messages"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
	"github.com/medreport/medreport-cli/internal/core/domain"
)

// View shows the metadata, findings and content of one record.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	pager  *pager.Pager

	record *domain.Record
}

// NewView creates a new record view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	return &View{
		styles: s,
		keymap: km,
		pager:  pager.New(s),
	}
}

// SetRecord sets the record to display and scrolls to the top.
func (v *View) SetRecord(r domain.Record) {
	v.record = &r
	v.pager.SetLines(v.buildContent())
}

// Update handles messages for the record view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Up):
		v.pager.ScrollUp(1)
	case key.Matches(keyMsg, v.keymap.Down):
		v.pager.ScrollDown(1)
	case key.Matches(keyMsg, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewRecords} }
	}
	return v, nil
}

func (v *View) buildContent() []string {
	r := v.record
	lines := []string{
		v.field("ID", r.ID),
		v.field("Type", r.Format.String()),
		v.field("Processed", r.ProcessedAt.Local().Format("2006-01-02 15:04:05")),
		v.field("Words", fmt.Sprintf("%d", r.Metadata.WordCount)),
		v.field("Sentences", fmt.Sprintf("%d", r.Metadata.SentenceCount)),
	}
	if r.Metadata.PageCount > 0 {
		lines = append(lines, v.field("Pages", fmt.Sprintf("%d", r.Metadata.PageCount)))
	}

	for _, category := range domain.Categories() {
		lines = append(lines, "", v.styles.Category(category).Render(category.Title()))
		items := r.Findings[category]
		if len(items) == 0 {
			lines = append(lines, v.styles.Muted.Render("  (none)"))
			continue
		}
		for _, item := range items {
			lines = append(lines, "  - "+item)
		}
	}

	lines = append(lines, "", v.styles.Subtitle.Render("Content"))
	lines = append(lines, strings.Split(r.Content, "\n")...)
	return lines
}

func (v *View) field(label, value string) string {
	return v.styles.Label.Render(label+":") + " " + v.styles.Normal.Render(value)
}

// View renders the record.
func (v *View) View() string {
	if v.record == nil {
		return v.styles.Muted.Render("No record selected.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.record.Name))
	b.WriteString("\n\n")
	b.WriteString(v.pager.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keymap.PagerHelp())))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(_, height int) {
	v.pager.SetHeight(height - 6)
}

// Record returns the displayed record.
func (v *View) Record() *domain.Record {
	return v.record
}
