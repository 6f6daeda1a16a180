package sexp

import "fmt"

// SourceError represents an error with source location information.
type SourceError struct {
	Message string
	Line    int
	Column  int
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// NewSourceErrorf creates a new SourceError with a formatted message.
func NewSourceErrorf(line, column int, format string, args ...any) *SourceError {
	return &SourceError{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  column,
	}
}
