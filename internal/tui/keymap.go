package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Actions
	Submit key.Binding
	Clear  key.Binding

	// Toggles
	ToggleExtended key.Binding
	ToggleHashcat  key.Binding
	ToggleJohn     key.Binding
	ToggleHelp     key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
// The toggles mirror the -a, -m and -j flags.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "keep in history"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear history"),
		),
		ToggleExtended: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("Alt+A", "extended modes"),
		),
		ToggleHashcat: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("Alt+M", "hashcat modes"),
		),
		ToggleJohn: key.NewBinding(
			key.WithKeys("alt+j"),
			key.WithHelp("Alt+J", "JtR formats"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleExtended, k.ToggleHashcat, k.ToggleJohn, k.ToggleHelp, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear},
		{k.ToggleExtended, k.ToggleHashcat, k.ToggleJohn},
		{k.ToggleHelp, k.Quit, k.ForceQuit},
	}
}
