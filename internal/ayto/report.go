// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ayto

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aibor/ayto/internal/perm"
)

// report writes the round report and keeps the first write error.
type report struct {
	w   io.Writer
	err error
}

func newReport(w io.Writer) *report {
	if w == nil {
		w = io.Discard
	}

	return &report{w: w}
}

func (r *report) printf(format string, a ...any) {
	if r.err != nil {
		return
	}

	_, r.err = fmt.Fprintf(r.w, format, a...)
}

func (r *report) println(a ...any) {
	if r.err != nil {
		return
	}

	_, r.err = fmt.Fprintln(r.w, a...)
}

// formatSequence formats a matching like "(3, 0, 2, 1)".
func formatSequence(p perm.Permutation) string {
	var b strings.Builder

	b.WriteByte('(')

	for i, elem := range p {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(strconv.Itoa(int(elem)))
	}

	b.WriteByte(')')

	return b.String()
}
