// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ayto

import (
	"fmt"

	"github.com/aibor/ayto/internal/perm"
)

// Pair is a single truth booth query: is Val matched with Pos?
type Pair struct {
	Pos uint8
	Val uint8
}

// Hits returns 1 if the pair is part of the given matching, 0 otherwise.
func (p Pair) Hits(matching perm.Permutation) int {
	if int(p.Pos) < len(matching) && matching[p.Pos] == p.Val {
		return 1
	}

	return 0
}

// String implements [fmt.Stringer].
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.Pos, p.Val)
}
