// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command ayto simulates the search for a hidden perfect matching with truth
// booths and matching ceremonies.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aibor/ayto/internal/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)

	exitCode := cmd.RunAYTO(ctx, os.Args, cmd.IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	cancel()
	os.Exit(exitCode)
}
