// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package term detects interactive terminals.
package term

// File is implemented by [os.File].
type File interface {
	Fd() uintptr
}

// IsTerminal reports whether f refers to a terminal.
func IsTerminal(f File) bool {
	return isTerminal(f.Fd())
}
