// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
)

// PathInput wraps a bubbles textinput for entering a file path.
type PathInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewPathInput creates a focused path input with the given label.
func NewPathInput(s *styles.Styles, label string) *PathInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "path/to/report.pdf"
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 50

	return &PathInput{
		textinput: ti,
		styles:    s,
		label:     label,
	}
}

// Init starts the cursor blinking.
func (p *PathInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (p *PathInput) Update(msg tea.Msg) (*PathInput, tea.Cmd) {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the label and input.
func (p *PathInput) View() string {
	label := p.styles.Title.Render(p.label + " ")
	field := p.styles.InputField.Render(p.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (p *PathInput) Value() string {
	return p.textinput.Value()
}

// SetValue sets the input value.
func (p *PathInput) SetValue(value string) {
	p.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (p *PathInput) Focus() tea.Cmd {
	return p.textinput.Focus()
}

// Focused returns whether the input is focused.
func (p *PathInput) Focused() bool {
	return p.textinput.Focused()
}

// SetWidth fits the input to the terminal width.
func (p *PathInput) SetWidth(width int) {
	inputWidth := width - len(p.label) - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.textinput.Width = inputWidth
}

// Reset clears the input.
func (p *PathInput) Reset() {
	p.textinput.Reset()
}
