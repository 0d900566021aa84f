// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ayto

import (
	"slices"

	"github.com/aibor/ayto/internal/perm"
)

var evenWorstSequences = map[int]perm.Permutation{
	2:  {0, 1},
	4:  {3, 0, 2, 1},
	6:  {5, 0, 4, 1, 3, 2},
	8:  {7, 0, 6, 1, 5, 2, 4, 3},
	10: {9, 0, 8, 1, 7, 2, 6, 3, 5, 4},
}

// WorstSequence returns the matching that is believed to take the most
// rounds for the [Solver] to find. For odd sizes it is the reversed
// identity. It returns nil for unsupported even sizes.
func WorstSequence(size int) perm.Permutation {
	if size%2 == 1 {
		p := perm.Identity(size)
		slices.Reverse(p)

		return p
	}

	return slices.Clone(evenWorstSequences[size])
}
