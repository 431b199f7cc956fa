package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/Veraticus/hashid/internal/classification"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// LineReader reads newline-delimited candidates and can be interrupted
// while blocked on a read.
type LineReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
	eof         bool
}

// NewLineReader creates a line reader over reader.
func NewLineReader(reader io.Reader) *LineReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &LineReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadLine returns the next line with surrounding whitespace removed.
// A final line without a trailing newline is returned before io.EOF.
// If ctx is canceled first, ReadLine returns ErrInputCancelled; the
// pending read keeps running in the background until it completes.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		if r.eof {
			resultCh <- result{err: io.EOF}
			return
		}

		value, err := r.reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			r.eof = true
			if value != "" {
				err = nil
			}
		}
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", res.err
		}
		return classification.TrimInput(res.value), nil
	}
}
