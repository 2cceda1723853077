// Package process provides the process-file prompt for the TUI.
package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/components/input"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/keymap"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/messages"
	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
)

// View prompts for a path and processes the file it names.
type View struct {
	ctx      context.Context
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	analyzer driving.AnalyzerService
	input    *input.PathInput

	busy   bool
	result string
	err    error
}

// NewView creates a new process view.
func NewView(ctx context.Context, s *styles.Styles, km *keymap.KeyMap, analyzer driving.AnalyzerService) *View {
	return &View{
		ctx:      ctx,
		styles:   s,
		keymap:   km,
		analyzer: analyzer,
		input:    input.NewPathInput(s, "File:"),
	}
}

// Init clears the prompt and focuses the input.
func (v *View) Init() tea.Cmd {
	v.input.Reset()
	v.busy = false
	v.result = ""
	v.err = nil
	return tea.Batch(v.input.Focus(), v.input.Init())
}

// Update handles messages for the process view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.FileProcessed:
		v.busy = false
		if msg.Err != nil {
			v.err = fmt.Errorf("%s: %w", filepath.Base(msg.Path), msg.Err)
			v.result = ""
			return v, nil
		}
		v.err = nil
		v.result = fmt.Sprintf("%s processed: %d findings, %d words",
			msg.Record.Name, msg.Record.Findings.Total(), msg.Record.Metadata.WordCount)
		v.input.Reset()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewRecords} }
		case msg.Type == tea.KeyEnter:
			path := strings.TrimSpace(v.input.Value())
			if path == "" || v.busy {
				return v, nil
			}
			v.busy = true
			return v, v.processFile(path)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) processFile(path string) tea.Cmd {
	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return messages.FileProcessed{Path: path, Err: err}
		}
		record, err := v.analyzer.ProcessFile(v.ctx, filepath.Base(path), content)
		return messages.FileProcessed{Path: path, Record: record, Err: err}
	}
}

// View renders the prompt and the last outcome.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Process a report"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	switch {
	case v.busy:
		b.WriteString(v.styles.Muted.Render("Processing..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("✗ " + v.err.Error()))
	case v.result != "":
		b.WriteString(v.styles.Success.Render("✓ " + v.result))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] process  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.input.SetWidth(width)
}

// Value returns the path typed so far.
func (v *View) Value() string {
	return v.input.Value()
}

// Result returns the message describing the last processed file.
func (v *View) Result() string {
	return v.result
}

// Err returns the last processing error.
func (v *View) Err() error {
	return v.err
}
