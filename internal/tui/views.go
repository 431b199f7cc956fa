package tui

import (
	"strings"

	"github.com/Veraticus/hashid/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("hashid"),
		m.input.View(),
		"",
		m.renderCurrent(),
	}

	if history := m.renderHistory(); history != "" {
		sections = append(sections, "", history)
	}

	sections = append(sections, "", m.renderStatusBar(), m.help.View(m.keymap))

	width := m.width - 2
	if width < 20 {
		width = 20
	}

	return m.theme.BorderedBox.
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderCurrent renders the live result for the input field.
func (m Model) renderCurrent() string {
	if strings.TrimSpace(m.current.candidate) == "" {
		return m.theme.Hint.Render("Start typing to identify a hash.")
	}
	return m.renderEntry(m.current, false)
}

// renderEntry renders the modes of e the way the batch output lists them.
func (m Model) renderEntry(e entry, withCandidate bool) string {
	var lines []string
	if withCandidate {
		lines = append(lines, m.theme.Candidate.Render(e.candidate))
	}

	visible := m.visible(e)
	if len(visible) == 0 {
		lines = append(lines, m.theme.Marker.Render(cli.ModeMarker)+" "+m.theme.Unknown.Render(cli.UnknownResult))
		return strings.Join(lines, "\n")
	}

	for _, mode := range visible {
		nameStyle := m.theme.Mode
		if mode.Extended {
			nameStyle = m.theme.Extended
		}

		line := m.theme.Marker.Render(cli.ModeMarker) + " " + nameStyle.Render(mode.Name)
		if notes := m.opts.Annotations(mode); notes != "" {
			line += " " + m.theme.Tool.Render(notes)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderHistory renders previously submitted candidates, newest first.
func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return ""
	}

	parts := []string{m.theme.Subtitle.Render("History")}
	for _, e := range m.history {
		parts = append(parts, m.renderEntry(e, true))
	}
	return strings.Join(parts, "\n")
}

// renderStatusBar shows which toggles are active.
func (m Model) renderStatusBar() string {
	toggle := func(label string, on bool) string {
		if on {
			return m.theme.Toggle.Render(label)
		}
		return m.theme.ToggleOff.Render(label)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		toggle("extended", m.opts.ShowExtended),
		" ",
		toggle("hashcat", m.opts.ShowHashcat),
		" ",
		toggle("john", m.opts.ShowJohn),
	)
}
