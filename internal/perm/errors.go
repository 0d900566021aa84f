// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package perm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned if a permutation size is negative or
	// exceeds the supported maximum.
	ErrInvalidSize = errors.New("invalid permutation size")

	// ErrInvalidElement is returned if an element is not in 0..n-1.
	ErrInvalidElement = errors.New("element out of range")

	// ErrDuplicate is returned if an element occurs more than once.
	ErrDuplicate = errors.New("duplicate element")
)

// ParseError wraps errors that occur while parsing a permutation from its
// digit string representation.
//
// Pos is the offending character's position, or -1 if the input as a whole
// is not a permutation.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

// Error implements the [error] interface.
func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}

	return fmt.Sprintf("parse %q at %d: %v", e.Input, e.Pos, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ParseError) Is(other error) bool {
	_, ok := other.(*ParseError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParseError) Unwrap() error {
	return e.Err
}
