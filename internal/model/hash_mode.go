// Package model defines the core data structures for the hashid application.
package model

import (
	"fmt"
	"strings"
)

// HashMode is one algorithm or format a digest shape may have been produced by.
type HashMode struct {
	// Hashcat is the hashcat mode number (-m), when hashcat supports the format.
	Hashcat *int `json:"hashcat,omitempty" yaml:"hashcat,omitempty"`
	// John is the John the Ripper format name (--format), when John supports it.
	John *string `json:"john,omitempty" yaml:"john,omitempty"`
	// Name is the display name. Comparison signs like "≤" are plain text.
	Name string `json:"name" yaml:"name"`
	// Extended marks salted or composite constructions such as md5($pass.$salt).
	Extended bool `json:"extended" yaml:"extended"`
}

// HashcatMode returns the hashcat mode and whether one is known.
func (m HashMode) HashcatMode() (int, bool) {
	if m.Hashcat == nil {
		return 0, false
	}
	return *m.Hashcat, true
}

// JohnFormat returns the John the Ripper format and whether one is known.
func (m HashMode) JohnFormat() (string, bool) {
	if m.John == nil {
		return "", false
	}
	return *m.John, true
}

// Validate checks that the mode can be displayed.
func (m HashMode) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("mode name is required")
	}

	if m.Hashcat != nil && *m.Hashcat < 0 {
		return fmt.Errorf("hashcat mode must not be negative")
	}

	if m.John != nil && strings.TrimSpace(*m.John) == "" {
		return fmt.Errorf("john format must not be blank when set")
	}

	return nil
}
