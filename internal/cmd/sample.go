// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/aibor/ayto/internal/perm"
	"github.com/aibor/ayto/internal/sample"
)

const (
	sampleName      = "makesample"
	sampleUsageLine = "usage: " + sampleName + " n nsamples"
)

type sampleFlags struct {
	flagSet *flagSet

	size     uint64
	nsamples uint64
	delim    string
}

func newSampleFlags(output io.Writer) *sampleFlags {
	flags := &sampleFlags{
		flagSet: newFlagSet(sampleName, sampleUsageLine, output),
	}

	flags.flagSet.StringVar(
		&flags.delim,
		"delim",
		flags.delim,
		"separator between elements (default none, ambiguous for n > 10)",
	)

	return flags
}

// ParseArgs parses the command line. It expects exactly two non-negative
// integer positional arguments.
func (f *sampleFlags) ParseArgs(args []string) error {
	err := f.flagSet.parse(args)
	if err != nil {
		return err
	}

	positionalArgs := f.flagSet.Args()
	if len(positionalArgs) != 2 {
		return f.flagSet.fail(
			fmt.Sprintf("expected 2 arguments, got %d", len(positionalArgs)),
			nil,
		)
	}

	size := &LimitedUintValue{Value: &f.size, Upper: perm.MaxLen}
	if err := size.Set(positionalArgs[0]); err != nil {
		return f.flagSet.fail("n", err)
	}

	nsamples := &LimitedUintValue{Value: &f.nsamples, Upper: math.MaxInt}
	if err := nsamples.Set(positionalArgs[1]); err != nil {
		return f.flagSet.fail("nsamples", err)
	}

	return nil
}

func runSample(flags *sampleFlags, cfg IO) error {
	src, err := sample.NewSource()
	if err != nil {
		return fmt.Errorf("random source: %w", err)
	}

	sampler, err := sample.New(
		int(flags.size),
		src,
		sample.WithDelimiter(flags.delim),
	)
	if err != nil {
		return fmt.Errorf("new sampler: %w", err)
	}

	slog.Debug("Writing samples",
		slog.Int("n", sampler.Size()),
		slog.Uint64("nsamples", flags.nsamples))

	err = sampler.WriteSamples(cfg.Stdout, int(flags.nsamples))
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}

	return nil
}

// RunSample is the entry point of the makesample command. It returns the
// exit code.
//
// A malformed invocation prints the usage line on stdout and terminates
// normally.
func RunSample(args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags := newSampleFlags(cfg.Stdout)

	err := flags.ParseArgs(commandArgs(args))
	if err != nil {
		return handleParseArgsError(err, 0)
	}

	setupLogging(cfg.Stderr, flags.flagSet.debug)

	err = runSample(flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
