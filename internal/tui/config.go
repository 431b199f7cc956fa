package tui

import (
	"io"

	"github.com/Veraticus/hashid/internal/cli"
	"github.com/Veraticus/hashid/internal/tui/themes"
)

// defaultHistoryLimit bounds the submitted candidates kept on screen.
const defaultHistoryLimit = 10

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Input        io.Reader
	Output       io.Writer
	Options      cli.Options
	Width        int
	Height       int
	HistoryLimit int
	AltScreen    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Width:        80,
		Height:       24,
		HistoryLimit: defaultHistoryLimit,
		AltScreen:    true,
	}
}

// WithOptions sets the initial filter and annotation toggles.
func WithOptions(opts cli.Options) Option {
	return func(c *Config) {
		c.Options = opts
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithHistoryLimit sets how many submitted candidates stay on screen.
// Zero disables the history.
func WithHistoryLimit(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.HistoryLimit = n
		}
	}
}

// WithIO replaces the terminal with in and out and disables the
// alternate screen.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Config) {
		c.Input = in
		c.Output = out
		c.AltScreen = false
	}
}
