// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back returns to the records list.
	Back key.Binding

	// Up moves the selection or scrolls up.
	Up key.Binding

	// Down moves the selection or scrolls down.
	Down key.Binding

	// Select opens the selected record.
	Select key.Binding

	// Summary opens the summary report.
	Summary key.Binding

	// Process opens the process file prompt.
	Process key.Binding

	// Reload reloads the records.
	Reload key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Summary: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "summary"),
		),
		Process: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "process file"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}

// RecordsHelp returns keybindings for the records list.
func (k *KeyMap) RecordsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Summary, k.Process, k.Reload, k.Quit}
}

// PagerHelp returns keybindings for scrolling views.
func (k *KeyMap) PagerHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Summary, k.Process, k.Reload},
		{k.Back, k.Help, k.Quit},
	}
}

// HelpLine renders bindings as a single "key action" line.
func HelpLine(bindings []key.Binding) string {
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += "  "
		}
		h := b.Help()
		line += "[" + h.Key + "] " + h.Desc
	}
	return line
}
