// Package cli renders identification results and drives the input sources
// of the command line tool.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// PrimaryColor marks identified modes.
	PrimaryColor = lipgloss.Color("#4ECDC4") // Teal
	// ExtendedColor marks salted or composite modes.
	ExtendedColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor marks unreadable inputs.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor marks tool references and file delimiters.
	SubtleColor = lipgloss.Color("#666666") // Gray
)

// Result markers.
const (
	ModeMarker    = "[+]"
	UnknownResult = "Unknown hash"
)

// Styles holds the lipgloss styles used for result output.
// Styles from NewStyles only emit escape codes the destination supports.
type Styles struct {
	Header   lipgloss.Style
	Marker   lipgloss.Style
	Mode     lipgloss.Style
	Extended lipgloss.Style
	Tool     lipgloss.Style
	Unknown  lipgloss.Style
	File     lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles creates styles bound to r. With color disabled every style
// renders plain text.
func NewStyles(r *lipgloss.Renderer, color bool) Styles {
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Header: r.NewStyle().
			Bold(true),
		Marker: r.NewStyle().
			Foreground(PrimaryColor),
		Mode: r.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),
		Extended: r.NewStyle().
			Foreground(ExtendedColor),
		Tool: r.NewStyle().
			Foreground(SubtleColor),
		Unknown: r.NewStyle().
			Foreground(ErrorColor),
		File: r.NewStyle().
			Foreground(SubtleColor).
			Italic(true),
		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
	}
}
