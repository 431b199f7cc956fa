package classification

import (
	"strings"
	"sync"
	"testing"

	"github.com/Veraticus/hashid/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(modes []model.HashMode) []string {
	out := make([]string, 0, len(modes))
	for _, m := range modes {
		out = append(out, m.Name)
	}
	return out
}

func newTestIdentifier(t *testing.T, patterns []Pattern) *Identifier {
	t.Helper()
	c, err := NewCatalog(patterns)
	require.NoError(t, err)
	return NewIdentifier(c)
}

func TestIdentifier_TestsEveryPattern(t *testing.T) {
	// Every pattern accepts the same input; none may be skipped.
	id := newTestIdentifier(t, []Pattern{
		{Regex: `^[a-f0-9]{8}$`, Modes: []model.HashMode{{Name: "A1"}, {Name: "A2"}}},
		{Regex: `^[a-z0-9]{8}$`, Modes: []model.HashMode{{Name: "B1"}}},
		{Regex: `^.{8}$`, Modes: []model.HashMode{{Name: "C1"}, {Name: "C2"}, {Name: "C3"}}},
		{Regex: `^x+$`, Modes: []model.HashMode{{Name: "never"}}},
		{Regex: `^[0-9a-f]+$`, Modes: []model.HashMode{{Name: "D1"}}},
	})

	got := id.IdentifyAll("deadbeef")

	want := []string{"A1", "A2", "B1", "C1", "C2", "C3", "D1"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("Identify() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, id.MatchCount("deadbeef"))
	assert.Equal(t, id.Catalog().Len()-1, id.MatchCount("deadbeef"))
}

func TestIdentifier_Idempotent(t *testing.T) {
	id := NewIdentifier(nil)
	input := "5d41402abc4b2a76b9719d911017c592"

	seq := id.Identify(input)
	first := names(collect(seq))
	second := names(collect(seq))
	third := names(id.IdentifyAll(input))

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "a sequence must restart on every range")
	assert.Equal(t, first, third)
}

func collect(seq func(func(model.HashMode) bool)) []model.HashMode {
	var out []model.HashMode
	for m := range seq {
		out = append(out, m)
	}
	return out
}

func TestIdentifier_EarlyStop(t *testing.T) {
	id := NewIdentifier(nil)

	var seen []string
	for m := range id.Identify("5d41402abc4b2a76b9719d911017c592") {
		seen = append(seen, m.Name)
		if len(seen) == 3 {
			break
		}
	}

	assert.Equal(t, []string{"MD2", "MD5", "MD4"}, seen)
}

func TestIdentifier_EmptyAndWhitespace(t *testing.T) {
	id := NewIdentifier(nil)

	for _, input := range []string{"", " ", "\t\n", "   \r\n"} {
		assert.Empty(t, id.IdentifyAll(input), "input %q", input)
		assert.Zero(t, id.MatchCount(input), "input %q", input)
	}
}

func TestIdentifier_TrimsInput(t *testing.T) {
	id := NewIdentifier(nil)

	plain := names(id.IdentifyAll("5f4dcc3b5aa765d61d8327deb882cf99"))
	padded := names(id.IdentifyAll("  5f4dcc3b5aa765d61d8327deb882cf99\r\n"))

	assert.Equal(t, plain, padded)
}

func TestTrimInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii whitespace", input: " \t\vabcd\f\r\n", want: "abcd"},
		{name: "information separators", input: "\x1cabcd\x1d\x1e\x1f", want: "abcd"},
		{name: "unicode spaces", input: "\u00a0abcd\u2003\u3000", want: "abcd"},
		{name: "inner whitespace kept", input: " ab cd ", want: "ab cd"},
		{name: "only separators", input: "\x1f\x1c", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimInput(tt.input))
		})
	}
}

func TestIdentifier_TrimsInformationSeparators(t *testing.T) {
	id := NewIdentifier(nil)

	got := names(id.IdentifyAll("5f4dcc3b5aa765d61d8327deb882cf99\x1f"))
	assert.Contains(t, got, "MD5")
	assert.Equal(t, names(id.IdentifyAll("5f4dcc3b5aa765d61d8327deb882cf99")), got)
}

func TestIdentifier_CaseInsensitive(t *testing.T) {
	id := NewIdentifier(nil)

	inputs := []string{
		"5d41402abc4b2a76b9719d911017c592",
		"5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8",
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		"abcd",
	}

	for _, input := range inputs {
		lower := names(id.IdentifyAll(input))
		require.NotEmpty(t, lower, input)

		assert.Equal(t, lower, names(id.IdentifyAll(strings.ToUpper(input))), input)
		assert.Equal(t, lower, names(id.IdentifyAll(mixedCase(input))), input)
	}
}

func mixedCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i%2 == 0 {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestIdentifier_OverlapIsPreserved(t *testing.T) {
	id := NewIdentifier(nil)
	input := "5d41402abc4b2a76b9719d911017c592"

	got := id.IdentifyAll(input)
	gotNames := names(got)

	assert.Equal(t, 7, id.MatchCount(input))
	assert.Len(t, got, 38)
	assert.Subset(t, gotNames, []string{"MD5", "MD4", "LM", "NTLM", "Domain Cached Credentials", "RAdmin v2.x"})

	// The plain 32-hex group comes through intact and in catalog order.
	assert.Equal(t, []string{"MD2", "MD5", "MD4", "Double MD5", "LM"}, gotNames[:5])

	var primary []string
	for _, m := range got {
		if !m.Extended {
			primary = append(primary, m.Name)
		}
	}
	want := []string{
		"MD2", "MD5", "MD4", "Double MD5", "LM", "RIPEMD-128", "Haval-128",
		"Tiger-128", "Snefru-128", "Skein-256(128)", "Skein-512(128)",
		"Lotus Notes/Domino 5", "Skype", "NTLM", "Domain Cached Credentials",
		"Domain Cached Credentials 2", "DNSSEC(NSEC3)", "RAdmin v2.x",
	}
	if diff := cmp.Diff(want, primary); diff != "" {
		t.Errorf("primary modes mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentifier_ToolReferences(t *testing.T) {
	id := NewIdentifier(nil)

	var md5 *model.HashMode
	for _, m := range id.IdentifyAll("5f4dcc3b5aa765d61d8327deb882cf99") {
		if m.Name == "MD5" {
			md5 = &m
			break
		}
	}
	require.NotNil(t, md5)

	mode, ok := md5.HashcatMode()
	assert.True(t, ok)
	assert.Equal(t, 0, mode)

	format, ok := md5.JohnFormat()
	assert.True(t, ok)
	assert.Equal(t, "raw-md5", format)
}

func TestIdentifier_ConcurrentUse(t *testing.T) {
	id := NewIdentifier(nil)
	want := names(id.IdentifyAll("5f4dcc3b5aa765d61d8327deb882cf99"))

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = names(id.IdentifyAll("5f4dcc3b5aa765d61d8327deb882cf99"))
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
