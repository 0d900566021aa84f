// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ayto

import (
	"github.com/aibor/ayto/internal/perm"
)

// Oracle answers the queries of a game.
//
// The current candidates are passed along so adversarial oracles can pick
// their answers. Oracles with a fixed matching ignore them.
type Oracle interface {
	// TruthBooth returns 1 if the pair is part of the matching, 0
	// otherwise.
	TruthBooth(pair Pair, candidates Candidates) int

	// Ceremony returns the number of correctly matched pairs of guess.
	Ceremony(guess perm.Permutation, candidates Candidates) int

	// Describe returns the headline of the game report.
	Describe() string
}

// Hidden is an [Oracle] that answers truthfully for a fixed matching.
type Hidden struct {
	Matching perm.Permutation
}

var _ Oracle = (*Hidden)(nil)

// TruthBooth implements [Oracle].
func (h *Hidden) TruthBooth(pair Pair, _ Candidates) int {
	return pair.Hits(h.Matching)
}

// Ceremony implements [Oracle].
func (h *Hidden) Ceremony(guess perm.Permutation, _ Candidates) int {
	return perm.Hits(h.Matching, guess)
}

// Describe implements [Oracle].
func (h *Hidden) Describe() string {
	return "Running Simulation on Hidden Vector: " + formatSequence(h.Matching)
}

// Adversary is an [Oracle] that always gives the answer which keeps the
// most candidates. It is not bound to a matching up front, but stays
// consistent since every answer leaves at least one candidate.
type Adversary struct{}

var _ Oracle = Adversary{}

// TruthBooth implements [Oracle]. It answers 0 if the pair occurs in less
// than half of the candidates.
func (Adversary) TruthBooth(pair Pair, candidates Candidates) int {
	if 2*candidates.pairCount(pair) < candidates.Len() {
		return 0
	}

	return 1
}

// Ceremony implements [Oracle]. It answers with the hit count shared by the
// most candidates, preferring the lower count on ties.
func (Adversary) Ceremony(guess perm.Permutation, candidates Candidates) int {
	counts := make([]int, len(guess)+1)
	candidates.buckets(guess, counts)

	answer := 0

	for hits, count := range counts {
		if count > counts[answer] {
			answer = hits
		}
	}

	return answer
}

// Describe implements [Oracle].
func (Adversary) Describe() string {
	return "Running AYTO Simulation with Worst-Case Responses"
}
