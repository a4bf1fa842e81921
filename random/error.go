// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidArgument indicates a count or length is negative, a count
	// exceeds the number of items available, or a character set is empty.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrEmptySource indicates an attempt to sample a single item from an
	// empty collection.
	ErrEmptySource = ErrorKind("ErrEmptySource")

	// ErrNoViableCandidates indicates every entry in a weighted table has a
	// weight that is not finite or is not positive.
	ErrNoViableCandidates = ErrorKind("ErrNoViableCandidates")

	// ErrSequenceExhausted indicates a sequence source configured with the
	// Throw policy was advanced past its final value.
	ErrSequenceExhausted = ErrorKind("ErrSequenceExhausted")

	// ErrSourceUnavailable indicates a source that is not available in the
	// current environment was used.
	ErrSourceUnavailable = ErrorKind("ErrSourceUnavailable")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to random number generation.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// ExhaustedError describes a sequence source that ran out of values.  It
// unwraps to ErrSequenceExhausted.
type ExhaustedError struct {
	// Index is the zero-based draw index that could not be served.
	Index int
}

// Error satisfies the error interface and prints human-readable errors.
func (e ExhaustedError) Error() string {
	return fmt.Sprintf("sequence exhausted at index %d", e.Index)
}

// Unwrap returns ErrSequenceExhausted.
func (e ExhaustedError) Unwrap() error {
	return ErrSequenceExhausted
}
