// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry points for makesample and ayto.
// It handles flag parsing, error handling, and output handling.
package cmd
