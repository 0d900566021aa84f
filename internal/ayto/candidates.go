// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ayto

import (
	"github.com/aibor/ayto/internal/perm"
)

// Candidates is the set of matchings that are still consistent with all
// answers given so far. It references rows of a [perm.Table] by index.
type Candidates struct {
	table   *perm.Table
	indexes []int32
}

// AllCandidates returns a set containing every row of the table.
func AllCandidates(table *perm.Table) Candidates {
	indexes := make([]int32, table.Len())
	for i := range indexes {
		indexes[i] = int32(i)
	}

	return Candidates{table: table, indexes: indexes}
}

// Len returns the number of candidates.
func (c Candidates) Len() int {
	return len(c.indexes)
}

// At returns the i-th candidate.
func (c Candidates) At(i int) perm.Permutation {
	return c.table.At(int(c.indexes[i]))
}

// KeepPair returns the candidates for which the truth booth query for pair
// yields answer.
func (c Candidates) KeepPair(pair Pair, answer int) Candidates {
	return c.keep(func(p perm.Permutation) bool {
		return pair.Hits(p) == answer
	})
}

// KeepMatching returns the candidates that agree with guess on exactly
// answer positions.
func (c Candidates) KeepMatching(guess perm.Permutation, answer int) Candidates {
	return c.keep(func(p perm.Permutation) bool {
		return perm.Hits(guess, p) == answer
	})
}

func (c Candidates) keep(match func(perm.Permutation) bool) Candidates {
	kept := Candidates{table: c.table}

	for _, idx := range c.indexes {
		if match(c.table.At(int(idx))) {
			kept.indexes = append(kept.indexes, idx)
		}
	}

	return kept
}

// pairCount returns how many candidates contain the given pair.
func (c Candidates) pairCount(pair Pair) int {
	count := 0

	for _, idx := range c.indexes {
		count += pair.Hits(c.table.At(int(idx)))
	}

	return count
}

// pairCounts returns the occurrences of every (pos, val) pair among the
// candidates, indexed by pos*size+val.
func (c Candidates) pairCounts() []int {
	size := c.table.Size()
	counts := make([]int, size*size)

	for _, idx := range c.indexes {
		for pos, val := range c.table.At(int(idx)) {
			counts[pos*size+int(val)]++
		}
	}

	return counts
}

// buckets fills counts with the number of candidates per possible
// ceremony answer for guess. counts must have length size+1.
func (c Candidates) buckets(guess perm.Permutation, counts []int) {
	clear(counts)

	for _, idx := range c.indexes {
		counts[perm.Hits(guess, c.table.At(int(idx)))]++
	}
}
