// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ayto

import "errors"

var (
	// ErrInvalidPairs is returned if the number of pairs is outside of
	// [MinPairs] and [MaxPairs].
	ErrInvalidPairs = errors.New("number of pairs out of range")

	// ErrNoCandidates is returned if no candidate matching is consistent
	// with the answers given so far. It indicates an oracle that
	// contradicts itself or answers for a matching of a different size.
	ErrNoCandidates = errors.New("no candidate matching left")
)
