package reltime

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingNow is returned when an expression never anchors itself with "now".
	ErrMissingNow = errors.New(`expression must contain "now"`)

	// ErrMultipleNow is returned when "now" occurs more than once.
	ErrMultipleNow = errors.New(`"now" cannot occur more than once`)

	// ErrFloorBeforeNow is returned when a floor operation appears before the
	// "now" anchor. Floors only make sense on a concrete instant.
	ErrFloorBeforeNow = errors.New(`floor operation may not appear before "now"`)

	// ErrInvalidDelta is returned when a shift is too large to represent.
	ErrInvalidDelta = errors.New("the given time delta is invalid")

	// ErrInvalidTime is returned when arithmetic lands outside the representable
	// calendar range.
	ErrInvalidTime = errors.New("the computed time value is invalid")

	// ErrInvertedRange is returned by ResolveRange when the start of the range
	// resolves to an instant after its end.
	ErrInvertedRange = errors.New("range start resolves after range end")
)

// CharError reports an input rune the lexer cannot handle. Pos is a byte
// offset. A zero Char means the input ended in the middle of a token.
type CharError struct {
	Pos  int
	Char rune
}

func (e *CharError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("unexpected end of input at position %d", e.Pos)
	}
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

// NumberError reports a numeric literal that does not fit in 32 bits.
type NumberError struct {
	Pos     int
	Literal string
	Err     error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("number %q at position %d is not valid: %v", e.Literal, e.Pos, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }

// FormatError reports a structurally misplaced token. Want and Got are token
// class names ("operator", "number", "unit", or a concrete token name).
// Got is "nothing" when the input ended mid-expression.
type FormatError struct {
	Pos  int
	Want string
	Got  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected token at position %d: expected %s, found %s", e.Pos, e.Want, e.Got)
}
