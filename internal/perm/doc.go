// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package perm provides permutations of the integers 0..n-1 and a compact
// lexicographically ordered table of all of them.
//
// A [Table] stores all n! permutations in a single backing array. Rows
// returned by [Table.At] share that storage and must be treated as
// read-only.
package perm
