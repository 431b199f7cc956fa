package classification

import (
	"iter"
	"slices"
	"strings"
	"unicode"

	"github.com/Veraticus/hashid/internal/model"
)

// Identifier reports which modes a string's shape is consistent with.
type Identifier struct {
	catalog *Catalog
}

// NewIdentifier creates an identifier over catalog. A nil catalog selects
// the built-in one.
func NewIdentifier(catalog *Catalog) *Identifier {
	if catalog == nil {
		catalog = MustDefaultCatalog()
	}
	return &Identifier{catalog: catalog}
}

// Catalog returns the catalog the identifier evaluates.
func (id *Identifier) Catalog() *Catalog {
	return id.catalog
}

// Identify yields the modes of every pattern the trimmed input matches.
// Input is trimmed with TrimInput.
// Patterns are tested in catalog order and none is skipped because an
// earlier one matched, so the same name can appear more than once.
// An input that matches nothing yields nothing.
func (id *Identifier) Identify(input string) iter.Seq[model.HashMode] {
	return func(yield func(model.HashMode) bool) {
		for p := range id.matches(input) {
			for _, mode := range p.Modes {
				if !yield(mode) {
					return
				}
			}
		}
	}
}

// IdentifyAll collects Identify into a slice.
func (id *Identifier) IdentifyAll(input string) []model.HashMode {
	return slices.Collect(id.Identify(input))
}

// MatchCount returns how many patterns the trimmed input matches.
func (id *Identifier) MatchCount(input string) int {
	n := 0
	for range id.matches(input) {
		n++
	}
	return n
}

func (id *Identifier) matches(input string) iter.Seq[*compiledPattern] {
	return func(yield func(*compiledPattern) bool) {
		candidate := TrimInput(input)
		for i := range id.catalog.patterns {
			p := &id.catalog.patterns[i]
			if p.shape.MatchString(candidate) && !yield(p) {
				return
			}
		}
	}
}

// TrimInput removes leading and trailing whitespace from a candidate. Besides
// Unicode spaces it strips the ASCII separators U+001C through U+001F.
func TrimInput(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}
