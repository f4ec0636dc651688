package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrNameNotFound     = NewError("name not found")
	ErrArrayNotFound    = NewError("array not found")
	ErrDictNotFound     = NewError("dictionary not found")
	ErrStringNotFound   = NewError("string not found")
	ErrFunctionNotFound = NewError("function not found")
	ErrKeyNotFound      = NewError("key not found")
	ErrIndexRange       = NewError("index out of bounds")
	ErrEmptyArray       = NewError("array is empty")
	ErrDivisionByZero   = NewError("division by zero")
	ErrModuloByZero     = NewError("modulo by zero")
	ErrArityMismatch    = NewError("parameter count mismatch")
	ErrAssertFailed     = NewError("assertion failed")
	ErrImportCycle      = NewError("import cycle detected")
	ErrReservedKeyword  = NewError("reserved keyword")
	ErrInvalidOperator  = NewError("invalid operator")
	ErrStrayBreak       = NewError("BREAK outside of a loop")
	ErrStrayContinue    = NewError("CONTINUE outside of a loop")
	ErrStrayReturn      = NewError("RETURN outside of a function")
	ErrReadFile         = NewError("failed to read file")
	ErrWriteFile        = NewError("failed to write file")
	ErrReadInput        = NewError("failed to read input")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error with the same message, so
// errors derived with Wrap or With still match their sentinel through
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ParseError reports a syntax error with its source location.
type ParseError struct {
	Message string
	Source  string // The original source input
	Line    int
	Column  int
}

// NewParseError creates a ParseError at the position of tok.
func NewParseError(msg string, source string, tok Token) *ParseError {
	return &ParseError{
		Message: msg,
		Source:  source,
		Line:    tok.Line,
		Column:  tok.Col,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Source == "" {
		return e.Message
	}

	return e.formatWithContext()
}

// formatWithContext formats the parse error with source code context.
func (e *ParseError) formatWithContext() string {
	lines := strings.Split(e.Source, "\n")

	var buf strings.Builder

	// Write error location and description
	buf.WriteString("parse error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))
	buf.WriteString(": ")
	buf.WriteString(e.Message)
	buf.WriteRune('\n')

	// Show the offending line if within bounds
	if e.Line > 0 && e.Line <= len(lines) {
		line := lines[e.Line-1]

		// Print the line with line number
		buf.WriteString("  ")
		buf.WriteString(strconv.Itoa(e.Line))
		buf.WriteString(" | ")
		buf.WriteString(line)
		buf.WriteRune('\n')

		// Print marker pointing to the column
		// Calculate the width needed for line number display
		lineNumWidth := len(strconv.Itoa(e.Line))
		// +5 accounts for: 2 leading spaces + " | " (3 chars)
		padding := strings.Repeat(" ", lineNumWidth+5)

		if e.Column > 0 {
			padding += strings.Repeat(" ", e.Column-1)
		}

		buf.WriteString(padding + "^")
	}

	return buf.String()
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Message),
		slog.Int("line", e.Line),
		slog.Int("column", e.Column),
	)
}
