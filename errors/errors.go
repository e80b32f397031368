// Package errors defines the error type returned by lexer, parser, and operation tree.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error classes, each class contains up to 99 error codes:
const (
	LexicalErrors = 101 // used by lexer
	SyntaxErrors  = 201 // used by parser
	RuntimeErrors = 301 // used by optree
)

// Error is the error type used by all packages of this module.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// lexer.Token implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// New creates new Error structure.
// name will be added to error message if not empty, line and col if non-zero.
func New(code int, msg, name string, line, col int) *Error {
	if name != "" {
		msg += " in " + name
	}
	if line != 0 && col != 0 {
		msg += fmt.Sprintf(" at line %d col %d", line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Class returns the error class the code belongs to (LexicalErrors, SyntaxErrors, ...) or 0.
func (e *Error) Class() int {
	if e.Code <= 0 {
		return 0
	}

	return (e.Code-1)/100*100 + 1
}

// Format creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func Format(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, msg, "", 0, 0)
}

// FormatPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// Code returns the code of the *Error found in e's chain or 0.
func Code(e error) int {
	var ee *Error
	if stderrors.As(e, &ee) {
		return ee.Code
	}

	return 0
}
