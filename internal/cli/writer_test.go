package cli

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/Veraticus/hashid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

var testModes = []model.HashMode{
	{Name: "MD5", Hashcat: intPtr(0), John: stringPtr("raw-md5")},
	{Name: "LM", Hashcat: intPtr(3000), John: stringPtr("lm")},
	{Name: "RIPEMD-128", John: stringPtr("ripemd-128")},
	{Name: "md5($pass.$salt)", Hashcat: intPtr(10), Extended: true},
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestWriter_WriteResult(t *testing.T) {
	tests := []struct {
		name      string
		modes     []model.HashMode
		want      []string
		opts      Options
		wantFound bool
	}{
		{
			name:  "default hides extended and tool ids",
			modes: testModes,
			want: []string{
				"Analyzing 'abc'",
				"[+] MD5",
				"[+] LM",
				"[+] RIPEMD-128",
			},
			wantFound: true,
		},
		{
			name:  "all modes",
			modes: testModes,
			opts:  Options{ShowExtended: true},
			want: []string{
				"Analyzing 'abc'",
				"[+] MD5",
				"[+] LM",
				"[+] RIPEMD-128",
				"[+] md5($pass.$salt)",
			},
			wantFound: true,
		},
		{
			name:  "hashcat modes only where known",
			modes: testModes,
			opts:  Options{ShowHashcat: true, ShowExtended: true},
			want: []string{
				"Analyzing 'abc'",
				"[+] MD5 [Hashcat Mode: 0]",
				"[+] LM [Hashcat Mode: 3000]",
				"[+] RIPEMD-128",
				"[+] md5($pass.$salt) [Hashcat Mode: 10]",
			},
			wantFound: true,
		},
		{
			name:  "hashcat and john",
			modes: testModes[:3],
			opts:  Options{ShowHashcat: true, ShowJohn: true},
			want: []string{
				"Analyzing 'abc'",
				"[+] MD5 [Hashcat Mode: 0][JtR Format: raw-md5]",
				"[+] LM [Hashcat Mode: 3000][JtR Format: lm]",
				"[+] RIPEMD-128 [JtR Format: ripemd-128]",
			},
			wantFound: true,
		},
		{
			name:      "no modes",
			modes:     nil,
			want:      []string{"Analyzing 'abc'", "[+] Unknown hash"},
			wantFound: false,
		},
		{
			name:      "only extended modes while hidden",
			modes:     testModes[3:],
			want:      []string{"Analyzing 'abc'", "[+] Unknown hash"},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, tt.opts)

			found, err := w.WriteResult("abc", slices.Values(tt.modes))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, lines(buf.String()))
		})
	}
}

func TestWriter_PlainOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{Color: true, ShowHashcat: true})

	_, err := w.WriteResult("abc", slices.Values(testModes))
	require.NoError(t, err)
	require.NoError(t, w.FileStart("hashes.txt"))
	require.NoError(t, w.FileError("hashes.txt"))

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestWriter_FileDelimiters(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})

	require.NoError(t, w.FileStart("hashes.txt"))
	require.NoError(t, w.FileEnd("hashes.txt"))
	require.NoError(t, w.FileError("missing.txt"))

	assert.Equal(t, []string{
		"--File 'hashes.txt'--",
		"--End of file 'hashes.txt'--",
		"--File 'missing.txt' - could not open--",
	}, lines(buf.String()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_PropagatesWriteErrors(t *testing.T) {
	w := NewWriter(failingWriter{}, Options{})

	found, err := w.WriteResult("abc", slices.Values(testModes))
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "disk full")
}

func TestOptions_Visible(t *testing.T) {
	count := func(opts Options) int {
		n := 0
		for range opts.Visible(slices.Values(testModes)) {
			n++
		}
		return n
	}

	assert.Equal(t, 3, count(Options{}))
	assert.Equal(t, 4, count(Options{ShowExtended: true}))

	var first []string
	for m := range (Options{}).Visible(slices.Values(testModes)) {
		first = append(first, m.Name)
		break
	}
	assert.Equal(t, []string{"MD5"}, first)
}
