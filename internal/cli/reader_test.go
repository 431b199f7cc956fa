package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "terminated lines",
			input: "first\nsecond\n",
			want:  []string{"first", "second"},
		},
		{
			name:  "surrounding whitespace",
			input: "  5f4dcc3b5aa765d61d8327deb882cf99 \r\n",
			want:  []string{"5f4dcc3b5aa765d61d8327deb882cf99"},
		},
		{
			name:  "empty line is kept",
			input: "\nabc\n",
			want:  []string{"", "abc"},
		},
		{
			name:  "final line without newline",
			input: "abc\ndef",
			want:  []string{"abc", "def"},
		},
		{
			name:  "no input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewLineReader(strings.NewReader(tt.input))
			ctx := context.Background()

			var got []string
			for {
				line, err := reader.ReadLine(ctx)
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				got = append(got, line)
			}

			assert.Equal(t, tt.want, got)

			_, err := reader.ReadLine(ctx)
			assert.ErrorIs(t, err, io.EOF, "EOF must be sticky")
		})
	}
}

func TestLineReader_ContextCancellation(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	reader := NewLineReader(pr)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := reader.ReadLine(ctx)

	assert.ErrorIs(t, err, ErrInputCancelled)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewLineReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewLineReader(nil)
	})
}
