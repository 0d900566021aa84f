// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

const modulePath = "github.com/aibor/ayto"

var commands = []string{"makesample", "ayto"}

var env = map[string]string{}

func init() {
	gobin, exists := os.LookupEnv("GOBIN")
	if !exists {
		gobin = "./gobin"
	}

	if p, err := filepath.Abs(gobin); err == nil {
		gobin = p
	}

	env["GOBIN"] = gobin
}

// Build the commands into the gobin directory, if sources changed.
func Build() error {
	for _, name := range commands {
		binary := filepath.Join(env["GOBIN"], name)

		mod, err := target.Dir(binary, "cmd/"+name, "internal")
		if err != nil {
			return fmt.Errorf("check %s: %w", name, err)
		}

		if !mod {
			continue
		}

		err = sh.RunWith(env, "go", "build", "-o", binary, "./cmd/"+name)
		if err != nil {
			return fmt.Errorf("build %s: %w", name, err)
		}
	}

	return nil
}

// Install the commands with go install.
func Install() error {
	for _, name := range commands {
		pkg := modulePath + "/cmd/" + name

		err := sh.RunWith(env, "go", "install", pkg)
		if err != nil {
			return fmt.Errorf("install %s: %w", name, err)
		}
	}

	return nil
}

// Run unit tests with race detector and coverage.
func Test(verbose bool) error {
	args := []string{
		"test",
		"-race",
		"-timeout", "5m",
		"-cover",
		"-coverprofile", "/tmp/cover.out",
	}
	if verbose {
		args = append(args, "-v")
	}

	args = append(args, "./...")

	return sh.RunWithV(env, "go", args...)
}

// Print nsamples random permutations of size n with the built makesample.
func Sample(n, nsamples int) error {
	mg.Deps(Build)

	binary := filepath.Join(env["GOBIN"], "makesample")

	return sh.RunV(binary, fmt.Sprint(n), fmt.Sprint(nsamples))
}

// Run the ayto simulation on its worst case sequence.
func Simulate(npairs int) error {
	mg.Deps(Build)

	binary := filepath.Join(env["GOBIN"], "ayto")

	return sh.RunV(binary, fmt.Sprint(npairs))
}

// Remove volatile files.
func Clean() error {
	return sh.Rm(env["GOBIN"])
}
