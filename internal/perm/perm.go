// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package perm

import (
	"fmt"
	"strconv"
)

// MaxLen is the maximum size of a [Permutation].
const MaxLen = 256

// Permutation is an ordered sequence of the distinct integers 0..n-1.
type Permutation []uint8

// Identity returns the permutation 0, 1, ..., size-1.
func Identity(size int) Permutation {
	p := make(Permutation, size)
	for i := range p {
		p[i] = uint8(i)
	}

	return p
}

// Validate checks that p is a rearrangement of 0..len(p)-1.
func (p Permutation) Validate() error {
	if len(p) > MaxLen {
		return fmt.Errorf("%w: %d", ErrInvalidSize, len(p))
	}

	var seen [MaxLen]bool

	for pos, elem := range p {
		if int(elem) >= len(p) {
			return fmt.Errorf("%w: %d at %d", ErrInvalidElement, elem, pos)
		}

		if seen[elem] {
			return fmt.Errorf("%w: %d at %d", ErrDuplicate, elem, pos)
		}

		seen[elem] = true
	}

	return nil
}

// Append appends the decimal representation of each element to dst,
// separated by sep, and returns the extended buffer.
func (p Permutation) Append(dst []byte, sep string) []byte {
	for i, elem := range p {
		if i > 0 {
			dst = append(dst, sep...)
		}

		dst = strconv.AppendUint(dst, uint64(elem), 10)
	}

	return dst
}

// String returns the elements' decimal representations concatenated
// without separator.
func (p Permutation) String() string {
	return string(p.Append(nil, ""))
}

// Equal reports whether p and other have the same elements in the same
// order.
func (p Permutation) Equal(other Permutation) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// Hits returns the number of positions a and b agree on. Only the common
// prefix is compared if they differ in length.
func Hits(a, b Permutation) int {
	n := min(len(a), len(b))
	hits := 0

	for i := range n {
		if a[i] == b[i] {
			hits++
		}
	}

	return hits
}

// Parse parses a contiguous digit string like "3021". Each character is
// one element, so only sizes up to 10 can be represented.
func Parse(s string) (Permutation, error) {
	if len(s) > 10 {
		return nil, &ParseError{Input: s, Pos: 10, Err: ErrInvalidSize}
	}

	p := make(Permutation, len(s))

	for i := range len(s) {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, &ParseError{Input: s, Pos: i, Err: strconv.ErrSyntax}
		}

		p[i] = c - '0'
	}

	if err := p.Validate(); err != nil {
		return nil, &ParseError{Input: s, Pos: -1, Err: err}
	}

	return p, nil
}

// next rearranges p into its lexicographic successor. It returns false if
// p is the last permutation, leaving p unchanged.
func next(p Permutation) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}

	if i < 0 {
		return false
	}

	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}

	p[i], p[j] = p[j], p[i]

	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
