// Package errors provides custom error types for the skytrackr system.
// These errors enable programmatic error checking with errors.Is while
// keeping messages useful for logs.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates that provided input was invalid
var ErrInvalidInput = errors.New("invalid input")

// ParseError represents a failure to parse a source file or field.
type ParseError struct {
	Source  string // file or table being parsed
	Line    int    // 1-based line or row number, 0 if unknown
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s line %d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parsing %s: %s", e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError
func NewParseError(source string, line int, message string, err error) *ParseError {
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

// IOError represents a file system or network I/O failure
type IOError struct {
	Operation string // read, write, open, etc.
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapIO wraps an error with I/O context if it is non-nil
func WrapIO(err error, operation, path string) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}
