// Package classification identifies digest formats by the shape of their text.
package classification

import (
	"fmt"
	"regexp"
	"slices"
	"sync"

	"github.com/Veraticus/hashid/internal/common"
	"github.com/Veraticus/hashid/internal/model"
)

// Pattern associates a digest shape with the modes that produce it.
type Pattern struct {
	// Regex is matched against the whole input, ignoring case.
	Regex string `yaml:"regex"`
	// Modes are reported in this order whenever Regex matches.
	Modes []model.HashMode `yaml:"modes"`
}

// compiledPattern holds a compiled shape with its modes.
type compiledPattern struct {
	shape *regexp.Regexp
	Pattern
}

// Catalog is an ordered, immutable set of compiled patterns.
// It is safe for concurrent use.
type Catalog struct {
	patterns []compiledPattern
}

// NewCatalog compiles patterns in the given order.
func NewCatalog(patterns []Pattern) (*Catalog, error) {
	compiled := make([]compiledPattern, 0, len(patterns))

	for i, p := range patterns {
		cp, err := compilePattern(p)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %d (%s): %w", i, p.Regex, err)
		}
		compiled = append(compiled, cp)
	}

	return &Catalog{patterns: compiled}, nil
}

func compilePattern(p Pattern) (compiledPattern, error) {
	if len(p.Modes) == 0 {
		return compiledPattern{}, common.ErrEmptyModes
	}

	for _, mode := range p.Modes {
		if err := mode.Validate(); err != nil {
			return compiledPattern{}, fmt.Errorf("%w: %v", common.ErrInvalidPattern, err)
		}
	}

	shape, err := common.CompileShape(p.Regex)
	if err != nil {
		return compiledPattern{}, err
	}

	return compiledPattern{
		shape: shape,
		Pattern: Pattern{
			Regex: p.Regex,
			Modes: slices.Clone(p.Modes),
		},
	}, nil
}

// Extend returns a new catalog with patterns appended after the existing ones.
// The receiver is not modified.
func (c *Catalog) Extend(patterns []Pattern) (*Catalog, error) {
	extra, err := NewCatalog(patterns)
	if err != nil {
		return nil, err
	}

	combined := make([]compiledPattern, 0, len(c.patterns)+len(extra.patterns))
	combined = append(combined, c.patterns...)
	combined = append(combined, extra.patterns...)

	return &Catalog{patterns: combined}, nil
}

// Len returns the number of patterns.
func (c *Catalog) Len() int {
	return len(c.patterns)
}

// Patterns returns a copy of the source patterns in evaluation order.
func (c *Catalog) Patterns() []Pattern {
	out := make([]Pattern, 0, len(c.patterns))
	for _, cp := range c.patterns {
		out = append(out, Pattern{
			Regex: cp.Regex,
			Modes: slices.Clone(cp.Modes),
		})
	}
	return out
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return NewCatalog(DefaultPatterns())
})

// DefaultCatalog returns the built-in catalog, compiled on first use.
func DefaultCatalog() (*Catalog, error) {
	return defaultCatalog()
}

// MustDefaultCatalog is like DefaultCatalog but panics if the built-in
// patterns fail to compile.
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}
