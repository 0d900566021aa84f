// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
)

// flagSet wraps a [flag.FlagSet] with the flags and helpers all commands
// share.
type flagSet struct {
	*flag.FlagSet

	usageLine string
	version   bool
	debug     bool
}

func newFlagSet(name, usageLine string, output io.Writer) *flagSet {
	fs := &flagSet{
		FlagSet:   flag.NewFlagSet(name, flag.ContinueOnError),
		usageLine: usageLine,
	}

	fs.SetOutput(output)
	fs.Usage = fs.usage

	fs.BoolVar(
		&fs.debug,
		"debug",
		fs.debug,
		"enable debug output",
	)

	fs.BoolVar(
		&fs.version,
		"version",
		fs.version,
		"show version and exit",
	)

	return fs
}

// parse parses the flags up to the first argument that is not prefixed with
// a "-" or is "--".
//
// With version flag, the version is printed and [ErrHelp] is returned, so
// the caller exits without error.
func (f *flagSet) parse(args []string) error {
	err := f.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	return nil
}

// fail prints the usage line and returns a [ParseArgsError] carrying msg.
func (f *flagSet) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.Output(), f.usageLine)

	return err
}

func (f *flagSet) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flagSet) usage() {
	fmt.Fprintln(f.Output(), f.usageLine)
	fmt.Fprintln(f.Output(), "\nFlags:")
	f.PrintDefaults()
}
