// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ayto simulates the matching game of the "Are You The One?" TV
// show.
//
// A hidden perfect matching of n pairs is a permutation of 0..n-1. Each
// round consists of a truth booth, which reveals whether a single pair is
// part of the matching, and a matching ceremony, which reveals how many
// pairs of a proposed matching are correct. The [Solver] picks truth booth
// pairs that split the remaining candidates in half and ceremony guesses by
// minimax over all permutations.
package ayto
