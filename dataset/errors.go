package dataset

import (
	"errors"
	"fmt"
)

// ErrMissingColumn reports a required column absent from a file header.
var ErrMissingColumn = errors.New("required column missing")

// ParseError represents a file, row, or column that could not be decoded
// from a source CSV file
type ParseError struct {
	// File is the base name of the file being parsed
	File string
	// Line is the 1-based line number, 0 when the error is not row-specific
	Line int
	// Column is the column involved, empty when the whole file or row failed
	Column string
	// Cause is the underlying error
	Cause error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("parse error in %s line %d column %s: %v", e.File, e.Line, e.Column, e.Cause)
	case e.Line > 0:
		return fmt.Sprintf("parse error in %s line %d: %v", e.File, e.Line, e.Cause)
	default:
		return fmt.Sprintf("parse error in %s: %v", e.File, e.Cause)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a ParseError
func NewParseError(file string, line int, column string, cause error) error {
	return &ParseError{File: file, Line: line, Column: column, Cause: cause}
}

// NewFileError creates an error wrapping the underlying I/O error
func NewFileError(err error, operation, path string) error {
	return fmt.Errorf("file error during %s on %s: %w", operation, path, err)
}
