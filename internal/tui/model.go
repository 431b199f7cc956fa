// Package tui provides an interactive identification screen.
package tui

import (
	"slices"
	"strings"

	"github.com/Veraticus/hashid/internal/classification"
	"github.com/Veraticus/hashid/internal/cli"
	"github.com/Veraticus/hashid/internal/model"
	"github.com/Veraticus/hashid/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputCharLimit admits the longest built-in shapes.
const inputCharLimit = 8192

// entry is a candidate with every mode it matched, before filtering.
type entry struct {
	candidate string
	modes     []model.HashMode
}

// Model holds the TUI state.
type Model struct {
	theme        themes.Theme
	identifier   *classification.Identifier
	help         help.Model
	keymap       KeyMap
	input        textinput.Model
	current      entry
	history      []entry
	opts         cli.Options
	historyLimit int
	width        int
	height       int
	showHelp     bool
	quitting     bool
}

// newModel creates a new model with the given configuration.
func newModel(identifier *classification.Identifier, cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "Paste a hash..."
	input.Prompt = "> "
	input.CharLimit = inputCharLimit
	input.PromptStyle = cfg.Theme.Prompt
	input.Focus()

	h := help.New()
	h.Width = cfg.Width

	return Model{
		theme:        cfg.Theme,
		identifier:   identifier,
		help:         h,
		keymap:       DefaultKeyMap(),
		input:        input,
		opts:         cfg.Options,
		historyLimit: cfg.HistoryLimit,
		width:        cfg.Width,
		height:       cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKeys(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.identify()
	return m, cmd
}

// handleKeys handles the bindings that are not text input.
func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.ToggleExtended):
		m.opts.ShowExtended = !m.opts.ShowExtended
		return nil, true

	case key.Matches(msg, m.keymap.ToggleHashcat):
		m.opts.ShowHashcat = !m.opts.ShowHashcat
		return nil, true

	case key.Matches(msg, m.keymap.ToggleJohn):
		m.opts.ShowJohn = !m.opts.ShowJohn
		return nil, true

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil, true

	case key.Matches(msg, m.keymap.Clear):
		m.history = nil
		return nil, true

	case key.Matches(msg, m.keymap.Submit):
		m.submit()
		return nil, true
	}
	return nil, false
}

// identify classifies the text currently in the input field.
func (m *Model) identify() {
	value := m.input.Value()
	if value == m.current.candidate {
		return
	}
	m.current = entry{
		candidate: value,
		modes:     m.identifier.IdentifyAll(value),
	}
}

// submit moves the current candidate into the history and clears the input.
func (m *Model) submit() {
	if strings.TrimSpace(m.current.candidate) == "" {
		return
	}

	if m.historyLimit > 0 {
		m.history = append([]entry{m.current}, m.history...)
		if len(m.history) > m.historyLimit {
			m.history = m.history[:m.historyLimit]
		}
	}

	m.input.Reset()
	m.current = entry{}
}

// Value returns the text in the input field.
func (m Model) Value() string {
	return m.input.Value()
}

// Options returns the active filter and annotation toggles.
func (m Model) Options() cli.Options {
	return m.opts
}

// Results returns the visible modes for the current input.
func (m Model) Results() []model.HashMode {
	return m.visible(m.current)
}

// History returns the submitted candidates, most recent first.
func (m Model) History() []string {
	out := make([]string, 0, len(m.history))
	for _, e := range m.history {
		out = append(out, e.candidate)
	}
	return out
}

func (m Model) visible(e entry) []model.HashMode {
	return slices.Collect(m.opts.Visible(slices.Values(e.modes)))
}
