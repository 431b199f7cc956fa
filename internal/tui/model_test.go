package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Veraticus/hashid/internal/classification"
	"github.com/Veraticus/hashid/internal/cli"
	"github.com/Veraticus/hashid/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apr1Hash = "$apr1$foo$abcdefghijklmnopqrstuv"

func newTestModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(classification.NewIdentifier(nil), cfg)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m, cmd
}

func typeText(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func altKey(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func modeNames(modes []model.HashMode) []string {
	out := make([]string, 0, len(modes))
	for _, m := range modes {
		out = append(out, m.Name)
	}
	return out
}

func TestModel_IdentifiesWhileTyping(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, typeText("5f4dcc3b5aa765d61d8327deb882cf99"))

	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", m.Value())
	assert.Contains(t, modeNames(m.Results()), "MD5")
	assert.Contains(t, m.View(), "MD5")
	assert.NotContains(t, m.View(), cli.UnknownResult)
}

func TestModel_EmptyAndUnknownInput(t *testing.T) {
	m := newTestModel(t)
	assert.Empty(t, m.Results())
	assert.Contains(t, m.View(), "Start typing")

	m, _ = send(t, m, typeText("not a hash"))
	assert.Empty(t, m.Results())
	assert.Contains(t, m.View(), cli.UnknownResult)
}

func TestModel_Toggles(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, typeText(apr1Hash))

	assert.Equal(t, []string{"MD5(APR)", "Apache MD5"}, modeNames(m.Results()))

	m, _ = send(t, m, altKey('a'))
	assert.True(t, m.Options().ShowExtended)
	assert.Equal(t, []string{"MD5(APR)", "Apache MD5", "md5apr1"}, modeNames(m.Results()))
	assert.Equal(t, apr1Hash, m.Value(), "toggle keys must not reach the input")

	m, _ = send(t, m, altKey('m'))
	assert.True(t, m.Options().ShowHashcat)
	assert.Contains(t, m.View(), "[Hashcat Mode: 1600]")

	m, _ = send(t, m, altKey('j'))
	assert.True(t, m.Options().ShowJohn)

	m, _ = send(t, m, altKey('a'), altKey('m'), altKey('j'))
	assert.Equal(t, cli.Options{}, m.Options())
}

func TestModel_InitialOptions(t *testing.T) {
	m := newTestModel(t, WithOptions(cli.Options{ShowHashcat: true, ShowJohn: true}))
	m, _ = send(t, m, typeText("5f4dcc3b5aa765d61d8327deb882cf99"))

	view := m.View()
	assert.Contains(t, view, "[Hashcat Mode: 0]")
	assert.Contains(t, view, "[JtR Format: raw-md5]")
}

func TestModel_History(t *testing.T) {
	m := newTestModel(t, WithHistoryLimit(2))
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m, _ = send(t, m, enter)
	assert.Empty(t, m.History(), "blank input is not kept")

	m, _ = send(t, m, typeText("first"), enter, typeText("second"), enter, typeText("third"), enter)

	assert.Equal(t, []string{"third", "second"}, m.History())
	assert.Empty(t, m.Value())
	assert.Contains(t, m.View(), "History")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, m.History())
	assert.NotContains(t, m.View(), "History")
}

func TestModel_HistoryDisabled(t *testing.T) {
	m := newTestModel(t, WithHistoryLimit(0))

	m, _ = send(t, m, typeText("abcd"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.History())
	assert.Empty(t, m.Value())
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "escape", msg: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := send(t, newTestModel(t), tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_InitialSize(t *testing.T) {
	m := newTestModel(t, WithSize(60, 20))

	assert.Equal(t, 60, m.width)
	assert.Equal(t, 20, m.height)
	assert.Equal(t, 60, m.help.Width)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestModel_WindowSizeAndHelp(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)

	short := m.View()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "clear history")
	assert.NotContains(t, short, "clear history")
}

func TestRun_RequiresIdentifier(t *testing.T) {
	err := Run(context.Background(), nil)
	require.Error(t, err)
}

func TestRun_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, classification.NewIdentifier(nil), WithIO(strings.NewReader(""), &out))
	assert.ErrorIs(t, err, context.Canceled)
}
