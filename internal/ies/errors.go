package ies

import (
	"errors"
	"fmt"
)

// Failure kinds. A *ParseError unwraps to exactly one of these.
var (
	ErrFormatUnrecognized         = errors.New("format unrecognized")
	ErrMalformedHeader            = errors.New("malformed header")
	ErrIncompleteAngleData        = errors.New("incomplete angle data")
	ErrLabelSectionUnparseable    = errors.New("label section unparseable")
	ErrGridShapeInvariantViolated = errors.New("grid shape invariant violated")
)

// ErrLabelNotFound is returned by Labels lookups for a missing key.
var ErrLabelNotFound = errors.New("ies: label not found")

// ParseError carries the file and 1-based line a parse stopped at.
// Line is 0 when the failure is not tied to a line.
type ParseError struct {
	Filename string
	Line     int
	Kind     error
	Err      error
}

func (e *ParseError) Error() string {
	loc := e.Filename
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Filename, e.Line)
	}
	if e.Err == nil {
		return fmt.Sprintf("ies: %s: %v", loc, e.Kind)
	}
	return fmt.Sprintf("ies: %s: %v: %v", loc, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newParseError(filename string, line int, kind, err error) *ParseError {
	return &ParseError{Filename: filename, Line: line, Kind: kind, Err: err}
}
