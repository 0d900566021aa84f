// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package perm

import (
	"fmt"
)

// MaxTableSize is the largest permutation size a [Table] can be built for.
// 10! rows of 10 bytes take about 36 MB.
const MaxTableSize = 10

// Table holds all permutations of a given size in lexicographic order.
type Table struct {
	size int
	rows int
	data []uint8
}

// NewTable enumerates all permutations of 0..size-1. For size 0 the table
// contains exactly one row, the empty permutation.
func NewTable(size int) (*Table, error) {
	if size < 0 || size > MaxTableSize {
		return nil, fmt.Errorf("%w: %d (table max %d)",
			ErrInvalidSize, size, MaxTableSize)
	}

	rows := Factorial(size)
	table := &Table{
		size: size,
		rows: rows,
		data: make([]uint8, 0, rows*size),
	}

	current := Identity(size)
	for {
		table.data = append(table.data, current...)
		if !next(current) {
			break
		}
	}

	return table, nil
}

// Size returns the size of each permutation in the table.
func (t *Table) Size() int {
	return t.size
}

// Len returns the number of permutations in the table.
func (t *Table) Len() int {
	return t.rows
}

// At returns the permutation at the given index. The returned slice shares
// the table's storage and must not be modified.
func (t *Table) At(idx int) Permutation {
	start := idx * t.size
	return Permutation(t.data[start : start+t.size : start+t.size])
}

// Rank returns the lexicographic index of p in the table. It returns false
// if p is not a valid permutation of the table's size.
func (t *Table) Rank(p Permutation) (int, bool) {
	if len(p) != t.size || p.Validate() != nil {
		return 0, false
	}

	rank := 0

	for i := range p {
		smaller := 0
		for _, elem := range p[i+1:] {
			if elem < p[i] {
				smaller++
			}
		}

		rank += smaller * Factorial(t.size-1-i)
	}

	return rank, true
}

// Factorial returns n! for 0 <= n <= 20. Larger values overflow int64.
func Factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}
