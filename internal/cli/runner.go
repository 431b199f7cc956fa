package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/hashid/internal/classification"
	"github.com/Veraticus/hashid/internal/common"
	"github.com/spf13/afero"
)

// StdinArg is the argument that selects standard input explicitly.
const StdinArg = "-"

// maxLineSize bounds a single line read from an input file.
const maxLineSize = 1 << 20

// Summary counts what a run processed.
type Summary struct {
	Inputs      int
	Identified  int
	Unknown     int
	FailedFiles int
}

// Runner feeds candidates from arguments, files or stdin to an identifier
// and prints the results.
type Runner struct {
	identifier *classification.Identifier
	writer     *Writer
	fs         afero.Fs
	stdin      io.Reader
	progress   io.Writer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithFs sets the filesystem used to detect and read input files.
func WithFs(fs afero.Fs) RunnerOption {
	return func(r *Runner) {
		r.fs = fs
	}
}

// WithStdin sets the reader used when no arguments are given.
func WithStdin(stdin io.Reader) RunnerOption {
	return func(r *Runner) {
		r.stdin = stdin
	}
}

// WithProgress draws a progress bar on w while input files are read.
func WithProgress(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.progress = w
	}
}

// NewRunner creates a runner. Without options it reads the OS filesystem
// and an empty stdin.
func NewRunner(identifier *classification.Identifier, writer *Writer, opts ...RunnerOption) *Runner {
	r := &Runner{
		identifier: identifier,
		writer:     writer,
		fs:         afero.NewOsFs(),
		stdin:      eofReader{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes args. With no arguments, or "-" as the first argument,
// candidates are read line by line from stdin until EOF. Otherwise each
// argument naming a regular file contributes its non-blank lines, and any
// other argument is itself a candidate. Unreadable files are reported and
// skipped. The returned error is non-nil only when output cannot be written
// or ctx is canceled.
func (r *Runner) Run(ctx context.Context, args []string) (Summary, error) {
	var summary Summary

	if len(args) == 0 || args[0] == StdinArg {
		err := r.runStdin(ctx, &summary)
		return summary, err
	}

	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if r.isFile(arg) {
			if err := r.runFile(ctx, arg, &summary); err != nil {
				return summary, err
			}
			continue
		}

		if err := r.identify(arg, &summary); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

func (r *Runner) runStdin(ctx context.Context, summary *Summary) error {
	reader := NewLineReader(r.stdin)

	for {
		line, err := reader.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, ErrInputCancelled) {
			return ctx.Err()
		}
		if err != nil {
			return fmt.Errorf("%w: stdin: %v", common.ErrUnreadableInput, err)
		}

		if err := r.identify(line, summary); err != nil {
			return err
		}
	}
}

func (r *Runner) isFile(path string) bool {
	info, err := r.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func (r *Runner) runFile(ctx context.Context, path string, summary *Summary) error {
	f, err := r.fs.Open(path)
	if err != nil {
		return r.fileFailed(path, err, summary)
	}
	defer f.Close()

	if err := r.writer.FileStart(path); err != nil {
		return err
	}

	var src io.Reader = f
	if r.progress != nil {
		if info, statErr := f.Stat(); statErr == nil {
			bar := newFileProgress(r.progress, path, info.Size())
			defer func() {
				if err := bar.Finish(); err != nil {
					slog.Warn("Failed to finish progress bar", "error", err)
				}
			}()
			src = io.TeeReader(f, bar)
		}
	}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := classification.TrimInput(scanner.Text())
		if line == "" {
			continue
		}
		if err := r.identify(line, summary); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return r.fileFailed(path, err, summary)
	}

	return r.writer.FileEnd(path)
}

func (r *Runner) fileFailed(path string, cause error, summary *Summary) error {
	summary.FailedFiles++
	common.LogError(cause, "Failed to read input file", common.Fields{"file": path})
	return r.writer.FileError(path)
}

func (r *Runner) identify(candidate string, summary *Summary) error {
	summary.Inputs++

	found, err := r.writer.WriteResult(candidate, r.identifier.Identify(candidate))
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if found {
		summary.Identified++
	} else {
		summary.Unknown++
		common.LogDebug("No pattern matched", common.Fields{"candidate": candidate})
	}
	return nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
