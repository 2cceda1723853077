package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	assert.Equal(t, []string{"q", "ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, []string{"enter"}, km.Select.Keys())
	assert.Equal(t, []string{"s"}, km.Summary.Keys())
	assert.Equal(t, []string{"p"}, km.Process.Keys())
}

func TestKeyMap_MatchesKeyMsg(t *testing.T) {
	km := DefaultKeyMap()

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	assert.True(t, key.Matches(down, km.Down))
	assert.False(t, key.Matches(down, km.Up))

	esc := tea.KeyMsg{Type: tea.KeyEsc}
	assert.True(t, key.Matches(esc, km.Back))
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	require.Len(t, groups, 3)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, 9, total)
}

func TestHelpLine(t *testing.T) {
	km := DefaultKeyMap()

	line := HelpLine(km.PagerHelp())

	assert.Equal(t, "[↑/k] up  [↓/j] down  [esc] back", line)
}

func TestHelpLine_Empty(t *testing.T) {
	assert.Equal(t, "", HelpLine(nil))
}
