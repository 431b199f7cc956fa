// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Catalog errors.
	ErrInvalidPattern     = errors.New("invalid pattern")
	ErrEmptyModes         = errors.New("pattern has no modes")
	ErrInvalidCatalogFile = errors.New("invalid catalog file")

	// Input errors.
	ErrUnreadableInput = errors.New("input could not be read")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsCatalogError reports whether err came from building or loading a pattern catalog.
func IsCatalogError(err error) bool {
	return errors.Is(err, ErrInvalidPattern) ||
		errors.Is(err, ErrEmptyModes) ||
		errors.Is(err, ErrInvalidCatalogFile)
}
