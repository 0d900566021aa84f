// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/aibor/ayto/internal/ayto"
	"github.com/aibor/ayto/internal/exitcode"
	"github.com/aibor/ayto/internal/perm"
	"github.com/aibor/ayto/internal/term"
)

const (
	aytoName       = "ayto"
	aytoUsageLine  = "usage: " + aytoName + " [flags...] npairs"
	aytoRangeUsage = "usage: " + aytoName + " npairs where 3 <= npairs <= 10"

	aytoEnvVar          = "AYTO_ARGS"
	aytoLocalConfigFile = ".ayto-args"

	maxWorkers = 64

	// Exit code of a process terminated by SIGINT.
	exitCodeCanceled = 130

	hiddenPrompt = "Enter your hidden sequence (contiguous, no spaces): "
)

type aytoFlags struct {
	flagSet *flagSet

	pairs     int
	hidden    string
	feed      bool
	worstCase bool
	workers   uint64
}

func newAYTOFlags(output io.Writer) *aytoFlags {
	flags := &aytoFlags{
		flagSet: newFlagSet(aytoName, aytoUsageLine, output),
		workers: ayto.DefaultWorkers,
	}

	flags.flagSet.StringVar(
		&flags.hidden,
		"hidden",
		flags.hidden,
		"hidden matching as contiguous digits, like 3021 "+
			"(default is the worst case sequence)",
	)

	flags.flagSet.BoolVar(
		&flags.feed,
		"feed",
		flags.feed,
		"read the hidden matching from stdin",
	)

	flags.flagSet.BoolVar(
		&flags.worstCase,
		"worstcase",
		flags.worstCase,
		"answer with worst case responses instead of a hidden matching",
	)

	flags.flagSet.Var(
		&LimitedUintValue{
			Value: &flags.workers,
			Lower: 1,
			Upper: maxWorkers,
		},
		"workers",
		fmt.Sprintf("number of parallel minimax workers (default %d)",
			ayto.DefaultWorkers),
	)

	return flags
}

// ParseArgs parses the command line. It expects exactly one positional
// argument, the number of pairs.
func (f *aytoFlags) ParseArgs(args []string) error {
	err := f.flagSet.parse(args)
	if err != nil {
		return err
	}

	positionalArgs := f.flagSet.Args()
	if len(positionalArgs) != 1 {
		return f.flagSet.fail(
			fmt.Sprintf("expected 1 argument, got %d", len(positionalArgs)),
			nil,
		)
	}

	pairs, err := strconv.Atoi(positionalArgs[0])
	if err != nil || pairs < ayto.MinPairs || pairs > ayto.MaxPairs {
		f.flagSet.usageLine = aytoRangeUsage
		return f.flagSet.fail("npairs", err)
	}

	f.pairs = pairs

	if f.worstCase && (f.hidden != "" || f.feed) {
		return f.flagSet.fail("-worstcase excludes -hidden and -feed", nil)
	}

	if f.hidden != "" && f.feed {
		return f.flagSet.fail("-hidden excludes -feed", nil)
	}

	return nil
}

func (f *aytoFlags) oracle(cfg IO) (ayto.Oracle, error) {
	if f.worstCase {
		return ayto.Adversary{}, nil
	}

	input := f.hidden

	if f.feed {
		var err error

		input, err = readHidden(cfg)
		if err != nil {
			return nil, err
		}
	}

	if input == "" {
		return &ayto.Hidden{Matching: ayto.WorstSequence(f.pairs)}, nil
	}

	matching, err := parseHidden(input, f.pairs)
	if err != nil {
		return nil, err
	}

	return &ayto.Hidden{Matching: matching}, nil
}

// readHidden reads the first word from stdin. The prompt is only shown if
// stdin is a terminal.
func readHidden(cfg IO) (string, error) {
	if file, ok := cfg.Stdin.(term.File); ok && term.IsTerminal(file) {
		fmt.Fprintln(cfg.Stdout, hiddenPrompt)
	}

	scanner := bufio.NewScanner(cfg.Stdin)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read hidden sequence: %w", err)
		}

		return "", fmt.Errorf("read hidden sequence: %w", io.ErrUnexpectedEOF)
	}

	return scanner.Text(), nil
}

func parseHidden(input string, pairs int) (perm.Permutation, error) {
	matching, err := perm.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSequence, err)
	}

	if len(matching) != pairs {
		return nil, fmt.Errorf("%w: %d elements for %d pairs",
			ErrInvalidSequence, len(matching), pairs)
	}

	return matching, nil
}

func runAYTO(ctx context.Context, flags *aytoFlags, cfg IO) error {
	oracle, err := flags.oracle(cfg)
	if err != nil {
		return err
	}

	game := ayto.Game{
		Pairs:   flags.pairs,
		Workers: int(flags.workers),
		Oracle:  oracle,
		Output:  cfg.Stdout,
	}

	result, err := game.Play(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			err = exitcode.Wrap(err, exitCodeCanceled)
		}

		return fmt.Errorf("play: %w", err)
	}

	slog.Debug("Game finished",
		slog.String("solution", result.Solution.String()),
		slog.Int("rounds", result.Rounds))

	return nil
}

func newAYTOFlagsFromArgs(args []string, fsys fs.FS, cfg IO) (*aytoFlags, error) {
	args, err := MergedArgs(args, fsys, aytoLocalConfigFile, aytoEnvVar)
	if err != nil {
		return nil, err
	}

	flags := newAYTOFlags(cfg.Stdout)

	err = flags.ParseArgs(commandArgs(args))
	if err != nil {
		return nil, err
	}

	return flags, nil
}

// RunAYTO is the entry point of the ayto command. It returns the exit code.
func RunAYTO(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := newAYTOFlagsFromArgs(args, os.DirFS("."), cfg)
	if err != nil {
		return handleParseArgsError(err, 1)
	}

	setupLogging(cfg.Stderr, flags.flagSet.debug)

	err = runAYTO(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
