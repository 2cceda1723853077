package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/medreport-cli/internal/adapters/driving/tui/styles"
)

func TestNewPathInput(t *testing.T) {
	input := NewPathInput(styles.DefaultStyles(), "File:")

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
}

func TestNewPathInput_NilStyles(t *testing.T) {
	input := NewPathInput(nil, "File:")

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestPathInput_Init(t *testing.T) {
	input := NewPathInput(nil, "File:")

	assert.NotNil(t, input.Init())
}

func TestPathInput_Update(t *testing.T) {
	input := NewPathInput(nil, "File:")

	for _, r := range "a.pdf" {
		input, _ = input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "a.pdf", input.Value())
}

func TestPathInput_View(t *testing.T) {
	input := NewPathInput(nil, "File:")

	assert.Contains(t, input.View(), "File:")
}

func TestPathInput_SetValueAndReset(t *testing.T) {
	input := NewPathInput(nil, "File:")

	input.SetValue("notes.txt")
	assert.Equal(t, "notes.txt", input.Value())

	input.Reset()
	assert.Equal(t, "", input.Value())
}

func TestPathInput_SetWidth(t *testing.T) {
	input := NewPathInput(nil, "File:")

	input.SetWidth(10)
	assert.Equal(t, 20, input.textinput.Width)

	input.SetWidth(100)
	assert.Equal(t, 87, input.textinput.Width)
}
