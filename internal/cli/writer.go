package cli

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/Veraticus/hashid/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Options selects which modes are shown and how they are annotated.
type Options struct {
	// ShowExtended includes salted and composite modes.
	ShowExtended bool
	// ShowHashcat appends the hashcat mode when one is known.
	ShowHashcat bool
	// ShowJohn appends the John the Ripper format when one is known.
	ShowJohn bool
	// Color enables styling on terminals that support it.
	Color bool
}

// Visible yields the modes that survive the extended filter.
func (o Options) Visible(modes iter.Seq[model.HashMode]) iter.Seq[model.HashMode] {
	return func(yield func(model.HashMode) bool) {
		for m := range modes {
			if m.Extended && !o.ShowExtended {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Annotations returns the requested tool references for m, e.g.
// "[Hashcat Mode: 0][JtR Format: raw-md5]", or "" when none apply.
func (o Options) Annotations(m model.HashMode) string {
	var b strings.Builder
	if hc, ok := m.HashcatMode(); ok && o.ShowHashcat {
		fmt.Fprintf(&b, "[Hashcat Mode: %d]", hc)
	}
	if john, ok := m.JohnFormat(); ok && o.ShowJohn {
		fmt.Fprintf(&b, "[JtR Format: %s]", john)
	}
	return b.String()
}

// Writer prints identification results in the classic hashID layout.
type Writer struct {
	out    io.Writer
	styles Styles
	opts   Options
}

// NewWriter creates a writer for out.
func NewWriter(out io.Writer, opts Options) *Writer {
	return &Writer{
		out:    out,
		opts:   opts,
		styles: NewStyles(lipgloss.NewRenderer(out), opts.Color),
	}
}

// WriteResult prints the header for candidate followed by one line per
// visible mode, or a single unknown line when no mode is visible.
// It reports whether any mode was printed.
func (w *Writer) WriteResult(candidate string, modes iter.Seq[model.HashMode]) (bool, error) {
	if _, err := fmt.Fprintf(w.out, "%s '%s'\n", w.styles.Header.Render("Analyzing"), candidate); err != nil {
		return false, err
	}

	count := 0
	for m := range w.opts.Visible(modes) {
		if _, err := fmt.Fprintln(w.out, w.FormatMode(m)); err != nil {
			return count > 0, err
		}
		count++
	}

	if count == 0 {
		if _, err := fmt.Fprintln(w.out, w.FormatUnknown()); err != nil {
			return false, err
		}
	}

	return count > 0, nil
}

// FormatMode renders a single result line for m.
func (w *Writer) FormatMode(m model.HashMode) string {
	name := w.styles.Mode.Render(m.Name)
	if m.Extended {
		name = w.styles.Extended.Render(m.Name)
	}

	line := w.styles.Marker.Render(ModeMarker) + " " + name
	if notes := w.opts.Annotations(m); notes != "" {
		line += " " + w.styles.Tool.Render(notes)
	}
	return line
}

// FormatUnknown renders the line printed when nothing was identified.
func (w *Writer) FormatUnknown() string {
	return w.styles.Marker.Render(ModeMarker) + " " + w.styles.Unknown.Render(UnknownResult)
}

// FileStart prints the delimiter that opens a file's results.
func (w *Writer) FileStart(path string) error {
	_, err := fmt.Fprintln(w.out, w.styles.File.Render(fmt.Sprintf("--File '%s'--", path)))
	return err
}

// FileEnd prints the delimiter that closes a file's results.
func (w *Writer) FileEnd(path string) error {
	_, err := fmt.Fprintln(w.out, w.styles.File.Render(fmt.Sprintf("--End of file '%s'--", path)))
	return err
}

// FileError reports a file that could not be read.
func (w *Writer) FileError(path string) error {
	_, err := fmt.Fprintln(w.out, w.styles.Error.Render(fmt.Sprintf("--File '%s' - could not open--", path)))
	return err
}
