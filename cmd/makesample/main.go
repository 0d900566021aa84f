// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command makesample prints uniformly random permutations.
//
//	usage: makesample n nsamples
//
// Each of the nsamples lines is a permutation of 0..n-1, drawn independently
// with replacement.
package main

import (
	"os"

	"github.com/aibor/ayto/internal/cmd"
)

func main() {
	os.Exit(cmd.RunSample(os.Args, cmd.IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}))
}
