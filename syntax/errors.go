// Package syntax validates linegrep patterns and precomputes the index tables
// the backtracker walks at match time.
//
// Parsing does not build an automaton or a tree. It checks the pattern once,
// rejects malformed or unsupported constructs, and records for every '[' and
// '(' where the construct ends, so the interpreter can work with plain index
// arithmetic over an immutable rune buffer.
package syntax

import (
	"errors"
	"fmt"
)

// Error classes. Every *Error unwraps to exactly one of these.
var (
	// ErrMalformed indicates a pattern that is not well formed
	// (unterminated class or group, dangling escape, ...).
	ErrMalformed = errors.New("malformed pattern")

	// ErrUnsupported indicates syntax that is valid in other regex dialects
	// but intentionally not implemented (bounded repetition, lookaround, ...).
	ErrUnsupported = errors.New("unsupported syntax")
)

// ErrorCode describes a failure to parse a pattern.
type ErrorCode string

// Malformed pattern codes.
const (
	ErrMissingBracket        ErrorCode = "missing closing ]"
	ErrMissingParen          ErrorCode = "missing closing )"
	ErrUnexpectedParen       ErrorCode = "unexpected )"
	ErrTrailingBackslash     ErrorCode = "trailing backslash at end of expression"
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
	ErrInvalidRepeatOp       ErrorCode = "invalid nested repetition operator"
	ErrInvalidEscape         ErrorCode = "invalid escape sequence"
	ErrInvalidBackref        ErrorCode = "invalid backreference"
	ErrInvalidCharRange      ErrorCode = "invalid character class range"
	ErrNestingDepth          ErrorCode = "expression nests too deeply"
)

// Unsupported construct code.
const ErrUnsupportedConstruct ErrorCode = "unsupported construct"

func (e ErrorCode) String() string {
	return string(e)
}

// Error describes a failure to parse a pattern and gives the offending
// expression.
type Error struct {
	Code ErrorCode
	Expr string
}

// Error implements the error interface.
// The format follows regexp/syntax so callers see familiar messages.
func (e *Error) Error() string {
	return fmt.Sprintf("error parsing regexp: %s: `%s`", e.Code, e.Expr)
}

// Unwrap returns the error class (ErrMalformed or ErrUnsupported).
func (e *Error) Unwrap() error {
	if e.Code == ErrUnsupportedConstruct {
		return ErrUnsupported
	}
	return ErrMalformed
}
