// Package errors provides sentinel errors and error types for checkers-go.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidColor indicates a colour other than white or black.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidSlot indicates a location outside 1-32.
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrInvalidPieceType indicates a piece type other than man or king.
	ErrInvalidPieceType = errors.New("invalid piece type")

	// ErrInvalidDirection indicates an unknown direction name.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidLocationText indicates malformed coordinate text such as "z6".
	ErrInvalidLocationText = errors.New("invalid location text")

	// ErrInvalidPosition indicates a malformed position string.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrIllegalMove indicates a move that is not among the current legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply at which the move was
// attempted and its notation. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply number (0 if not applicable)
	Move string // The move notation that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error for location text or position
// strings. Offset is the 1-based byte offset into Input, 0 when unknown.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Offset   int    // Byte offset (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Offset > 0 {
			loc += fmt.Sprintf(" at offset %d", e.Offset)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
