// Package strenumerrors provides the error type returned by generated parse
// functions.
package strenumerrors

import (
	"errors"
	"strconv"
)

// ErrNoMatch indicates that no declared variant matches the input.
var ErrNoMatch = errors.New("no match")

// ParseError is returned by a generated parse function when the input is not
// the string of any declared variant.
type ParseError struct {
	// Enum is the name of the enum type.
	Enum string

	// Input is the rejected input, unmodified.
	Input string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "cannot parse " + strconv.Quote(e.Input) + " as " + e.Enum
}

// Unwrap returns [ErrNoMatch].
func (e *ParseError) Unwrap() error { return ErrNoMatch }
