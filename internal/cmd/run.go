// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"io"
	"log/slog"

	"github.com/aibor/ayto/internal/exitcode"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// commandArgs strips the program name.
func commandArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	return args[1:]
}

func handleParseArgsError(err error, usageExitCode int) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints the usage, so just exit.
	if errors.Is(err, &ParseArgsError{}) {
		slog.Debug(err.Error())
		return usageExitCode
	}

	slog.Error(err.Error())

	return 1
}

func handleRunError(err error) int {
	slog.Error(err.Error())

	code, _ := exitcode.From(err, 1)

	return code
}
