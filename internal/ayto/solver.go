// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ayto

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aibor/ayto/internal/perm"
)

// DefaultWorkers is the default number of chunks the minimax search is split
// into.
const DefaultWorkers = 8

// How many guesses are scored between context checks.
const cancelCheckInterval = 1024

// Solver picks the queries of a game. It remembers earlier queries, so use
// a new Solver for each game.
type Solver struct {
	table   *perm.Table
	workers int

	askedPairs map[Pair]struct{}
	guessed    []bool
}

// NewSolver creates a [Solver] that guesses from the given table. The
// minimax search is run on up to workers goroutines. Values below 1 fall
// back to [DefaultWorkers].
func NewSolver(table *perm.Table, workers int) *Solver {
	if workers < 1 {
		workers = DefaultWorkers
	}

	return &Solver{
		table:      table,
		workers:    workers,
		askedPairs: make(map[Pair]struct{}),
		guessed:    make([]bool, table.Len()),
	}
}

// TruthBooth returns the pair to ask about in the given turn.
//
// The first turn always asks (0, 0). With a single candidate left its first
// pair is asked. Otherwise the not yet asked pair whose share among the
// candidates is closest to one half is chosen.
func (s *Solver) TruthBooth(turn int, candidates Candidates) Pair {
	var pair Pair

	switch {
	case turn == 1:
		pair = Pair{Pos: 0, Val: 0}
	case candidates.Len() == 1:
		pair = Pair{Pos: 0, Val: candidates.At(0)[0]}
	default:
		pair = s.splittingPair(candidates)
	}

	s.askedPairs[pair] = struct{}{}

	return pair
}

func (s *Solver) splittingPair(candidates Candidates) Pair {
	var (
		size   = s.table.Size()
		total  = candidates.Len()
		counts = candidates.pairCounts()
		best   Pair
		found  bool
		// Distance from one half, scaled by 2*total to stay in integers.
		bestDist int
	)

	for _, skipAsked := range []bool{true, false} {
		for pos := range size {
			for val := range size {
				pair := Pair{Pos: uint8(pos), Val: uint8(val)}
				if _, asked := s.askedPairs[pair]; asked && skipAsked {
					continue
				}

				dist := abs(2*counts[pos*size+val] - total)
				if !found || dist < bestDist {
					best, bestDist, found = pair, dist, true
				}
			}
		}

		if found {
			break
		}
	}

	return best
}

// Ceremony returns the matching to propose in the given turn.
//
// The first turn proposes the identity if the first truth booth confirmed
// (0, 0) and 1, 0, 2, ..., n-1 otherwise. With a single candidate left it
// is proposed. Otherwise the guess whose worst case answer leaves the
// fewest candidates is chosen from all permutations not proposed before.
func (s *Solver) Ceremony(
	ctx context.Context,
	turn int,
	candidates Candidates,
) (perm.Permutation, error) {
	if candidates.Len() == 0 {
		return nil, ErrNoCandidates
	}

	var guess perm.Permutation

	switch {
	case turn == 1:
		guess = perm.Identity(s.table.Size())
		if candidates.At(0)[0] != 0 && len(guess) > 1 {
			guess[0], guess[1] = guess[1], guess[0]
		}
	case candidates.Len() == 1:
		guess = candidates.At(0)
	default:
		idx, err := s.minimax(ctx, candidates)
		if err != nil {
			return nil, err
		}

		guess = s.table.At(idx)
	}

	if idx, ok := s.table.Rank(guess); ok {
		s.guessed[idx] = true
	}

	return guess, nil
}

type scoredGuess struct {
	index int
	score int
}

// minimax returns the table index of the guess with the smallest largest
// answer bucket. Ties resolve to the lowest index.
func (s *Solver) minimax(ctx context.Context, candidates Candidates) (int, error) {
	chunks := makeChunks(s.table.Len(), s.workers)
	results := make([]scoredGuess, len(chunks))

	slog.Debug("Minimax search",
		slog.Int("candidates", candidates.Len()),
		slog.Int("chunks", len(chunks)))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for i, c := range chunks {
		group.Go(func() error {
			result, err := s.scoreChunk(ctx, candidates, c)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, fmt.Errorf("minimax: %w", err)
	}

	best := scoredGuess{index: -1}

	for _, result := range results {
		if result.index < 0 {
			continue
		}

		if best.index < 0 || result.score < best.score {
			best = result
		}
	}

	if best.index < 0 {
		return 0, ErrNoCandidates
	}

	return best.index, nil
}

func (s *Solver) scoreChunk(
	ctx context.Context,
	candidates Candidates,
	c chunk,
) (scoredGuess, error) {
	best := scoredGuess{index: -1}
	counts := make([]int, s.table.Size()+1)

	for idx := c.start; idx < c.end; idx++ {
		if (idx-c.start)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return best, err //nolint:wrapcheck
			}
		}

		if s.guessed[idx] {
			continue
		}

		candidates.buckets(s.table.At(idx), counts)

		score := 0
		for _, count := range counts {
			score = max(score, count)
		}

		if best.index < 0 || score < best.score {
			best = scoredGuess{index: idx, score: score}
		}
	}

	return best, nil
}

type chunk struct {
	start, end int
}

// makeChunks splits 0..total-1 into at most n contiguous ranges of nearly
// equal size. The first total%n ranges are one longer. Empty ranges are
// omitted.
func makeChunks(total, n int) []chunk {
	size := total / n
	extra := total % n
	chunks := make([]chunk, 0, n)
	start := 0

	for range n {
		length := size
		if extra > 0 {
			length++
			extra--
		}

		if length == 0 {
			break
		}

		chunks = append(chunks, chunk{start: start, end: start + length})
		start += length
	}

	return chunks
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
