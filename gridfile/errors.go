package gridfile

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the grid description does not exist.
	ErrInputNotFound = errors.New("grid description not found")
	// ErrMalformedInput is returned when a grid description cannot be parsed.
	ErrMalformedInput = errors.New("malformed grid description")
)

// ParseError reports where a text grid description went wrong. It matches
// ErrMalformedInput with errors.Is.
type ParseError struct {
	Line  int    // 1-based
	Field string // what the line describes, e.g. "start"
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedInput, e.Err}
}
