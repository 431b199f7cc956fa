// Package themes defines the visual styles for the interactive mode.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Prompt      lipgloss.Style
	Marker      lipgloss.Style
	Mode        lipgloss.Style
	Extended    lipgloss.Style
	Tool        lipgloss.Style
	Unknown     lipgloss.Style
	Hint        lipgloss.Style
	Candidate   lipgloss.Style
	Toggle      lipgloss.Style
	ToggleOff   lipgloss.Style
	BorderedBox lipgloss.Style
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Foreground  lipgloss.Color
	Error       lipgloss.Color
	Success     lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	// Colors
	Primary:    lipgloss.Color("#7c3aed"),
	Secondary:  lipgloss.Color("#a78bfa"),
	Success:    lipgloss.Color("#10b981"),
	Error:      lipgloss.Color("#ef4444"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Prompt: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7c3aed")).
		Bold(true),
	Candidate: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e5e5e5")).
		Italic(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),

	// Result styles
	Marker: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	Mode: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Extended: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a78bfa")),
	Tool: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Unknown: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),

	// Status bar toggles
	Toggle: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Padding(0, 1),
	ToggleOff: lipgloss.NewStyle().
		Background(lipgloss.Color("#262626")).
		Foreground(lipgloss.Color("#737373")).
		Padding(0, 1),

	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
}
