package kettle

import (
	"errors"
	"fmt"
)

// ErrMalformed marks a document whose markup could not be parsed.
var ErrMalformed = errors.New("malformed document")

// ErrUnrecognizedFormat marks a document whose kind could not be determined.
var ErrUnrecognizedFormat = errors.New("unrecognized document format")

// ParseError wraps a per-document failure with the offending file name, so a
// batch caller can surface per-file results without inspecting messages.
type ParseError struct {
	FileName string
	Err      error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.FileName, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is checks.
func (e *ParseError) Unwrap() error {
	return e.Err
}
