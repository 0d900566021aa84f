// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ayto

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/ayto/internal/perm"
)

// Limits for the number of pairs of a game.
const (
	MinPairs = 3
	MaxPairs = perm.MaxTableSize
)

// Game describes a single simulation run.
type Game struct {
	// Pairs is the number of pairs to match.
	Pairs int

	// Workers limits the goroutines of the minimax search. See [NewSolver].
	Workers int

	// Oracle answers the queries.
	Oracle Oracle

	// Output receives the round report. It may be nil.
	Output io.Writer
}

// Result is the outcome of a [Game].
type Result struct {
	// Solution is the matching confirmed by the final ceremony.
	Solution perm.Permutation

	// Rounds is the number of rounds played, including the final one.
	Rounds int
}

// Play runs the game until a matching ceremony confirms all pairs.
func (g *Game) Play(ctx context.Context) (Result, error) {
	if g.Pairs < MinPairs || g.Pairs > MaxPairs {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidPairs, g.Pairs)
	}

	table, err := perm.NewTable(g.Pairs)
	if err != nil {
		return Result{}, fmt.Errorf("enumerate matchings: %w", err)
	}

	var (
		solver     = NewSolver(table, g.Workers)
		candidates = AllCandidates(table)
		out        = newReport(g.Output)
	)

	out.println(g.Oracle.Describe())

	for turn := 1; ; turn++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err //nolint:wrapcheck
		}

		out.printf("**** Round %dA ****\n", turn)
		out.printf("Num. Possibilities: %d\n", candidates.Len())

		pair := solver.TruthBooth(turn, candidates)
		answer := g.Oracle.TruthBooth(pair, candidates)

		out.printf("Guess: %s\n", pair)
		out.printf("Evaluation: %d\n", answer)

		candidates = candidates.KeepPair(pair, answer)

		slog.Debug("Truth booth",
			slog.Int("turn", turn),
			slog.String("pair", pair.String()),
			slog.Int("answer", answer),
			slog.Int("candidates", candidates.Len()))

		if candidates.Len() == 0 {
			return Result{}, fmt.Errorf("round %dA: %w", turn, ErrNoCandidates)
		}

		out.printf("Round %dB\n", turn)
		out.printf("Num. Possibilities: %d\n", candidates.Len())

		guess, err := solver.Ceremony(ctx, turn, candidates)
		if err != nil {
			return Result{}, fmt.Errorf("round %dB: %w", turn, err)
		}

		answer = g.Oracle.Ceremony(guess, candidates)

		out.printf("Guess: %s\n", formatSequence(guess))
		out.printf("Evaluation: %d\n", answer)

		if answer == g.Pairs {
			out.printf("Found %s in %d guesses.\n", formatSequence(guess), turn)

			if out.err != nil {
				return Result{}, fmt.Errorf("write report: %w", out.err)
			}

			return Result{Solution: guess, Rounds: turn}, nil
		}

		candidates = candidates.KeepMatching(guess, answer)

		slog.Debug("Matching ceremony",
			slog.Int("turn", turn),
			slog.String("guess", guess.String()),
			slog.Int("answer", answer),
			slog.Int("candidates", candidates.Len()))

		if candidates.Len() == 0 {
			return Result{}, fmt.Errorf("round %dB: %w", turn, ErrNoCandidates)
		}

		if out.err != nil {
			return Result{}, fmt.Errorf("write report: %w", out.err)
		}
	}
}
