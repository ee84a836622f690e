package parser

import (
	"fmt"
)

// Location is a position in a build file.
type Location struct {
	File   string
	Line   int // 1-based, 0 when unknown
	Column int // 1-based, 0 when unknown
}

// String renders the location as file:line:column, dropping unknown parts.
func (l Location) String() string {
	switch {
	case l.File == "" && l.Line == 0:
		return "unknown location"
	case l.File == "":
		return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
	case l.Line == 0:
		return l.File
	default:
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
}

// ParseError reports a malformed tag: an unknown attribute, a missing
// required attribute or a document the front-end could not read.
type ParseError struct {
	Message  string
	Location Location
	Err      error // optional cause
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a ParseError at loc.
func NewParseError(loc Location, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Location: loc}
}

// BuildError reports a semantic conflict in an otherwise well-formed
// document, such as a duplicate target name.
type BuildError struct {
	Message  string
	Location Location
	Err      error // optional cause
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *BuildError) Unwrap() error { return e.Err }

// NewBuildError creates a BuildError at loc.
func NewBuildError(loc Location, format string, args ...any) *BuildError {
	return &BuildError{Message: fmt.Sprintf(format, args...), Location: loc}
}

// wrapBuildError turns cause into a BuildError at loc, keeping cause
// reachable through errors.Is and errors.As.
func wrapBuildError(loc Location, cause error) *BuildError {
	return &BuildError{Message: cause.Error(), Location: loc, Err: cause}
}
