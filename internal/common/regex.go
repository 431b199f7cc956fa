package common

import (
	"fmt"
	"regexp"
)

// CompileShape compiles a pattern that must match the whole input, ignoring case.
// The pattern is always wrapped in its own anchored group, so top-level
// alternatives such as `^abc|def$` cannot match a substring.
func CompileShape(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidPattern)
	}

	re, err := regexp.Compile("(?i)^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}
