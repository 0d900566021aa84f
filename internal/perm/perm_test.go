// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package perm_test

import (
	"strconv"
	"testing"

	"github.com/aibor/ayto/internal/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutation_Validate(t *testing.T) {
	tests := []struct {
		name        string
		input       perm.Permutation
		expectedErr error
	}{
		{
			name: "empty",
		},
		{
			name:  "identity",
			input: perm.Identity(4),
		},
		{
			name:  "shuffled",
			input: perm.Permutation{3, 0, 2, 1},
		},
		{
			name:        "out of range",
			input:       perm.Permutation{0, 1, 3},
			expectedErr: perm.ErrInvalidElement,
		},
		{
			name:        "duplicate",
			input:       perm.Permutation{1, 1, 0},
			expectedErr: perm.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestPermutation_Append(t *testing.T) {
	tests := []struct {
		name     string
		input    perm.Permutation
		sep      string
		expected string
	}{
		{
			name: "empty",
		},
		{
			name:     "no separator",
			input:    perm.Permutation{2, 0, 1},
			expected: "201",
		},
		{
			name:     "comma separator",
			input:    perm.Permutation{2, 0, 1},
			sep:      ",",
			expected: "2,0,1",
		},
		{
			name:     "multi digit without separator",
			input:    perm.Permutation{10, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			expected: "100123456789",
		},
		{
			name:     "multi digit with separator",
			input:    perm.Permutation{10, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			sep:      " ",
			expected: "10 0 1 2 3 4 5 6 7 8 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := tt.input.Append([]byte("prefix:"), tt.sep)
			assert.Equal(t, "prefix:"+tt.expected, string(actual))
		})
	}
}

func TestPermutation_Equal(t *testing.T) {
	assert.True(t, perm.Identity(3).Equal(perm.Permutation{0, 1, 2}))
	assert.False(t, perm.Identity(3).Equal(perm.Permutation{0, 2, 1}))
	assert.False(t, perm.Identity(3).Equal(perm.Identity(4)))
}

func TestHits(t *testing.T) {
	tests := []struct {
		name     string
		a, b     perm.Permutation
		expected int
	}{
		{
			name: "empty",
		},
		{
			name:     "same",
			a:        perm.Permutation{3, 0, 2, 1},
			b:        perm.Permutation{3, 0, 2, 1},
			expected: 4,
		},
		{
			name:     "none",
			a:        perm.Permutation{0, 1, 2},
			b:        perm.Permutation{1, 2, 0},
			expected: 0,
		},
		{
			name:     "some",
			a:        perm.Permutation{0, 1, 2, 3},
			b:        perm.Permutation{0, 2, 1, 3},
			expected: 2,
		},
		{
			name:     "different length",
			a:        perm.Permutation{0, 1, 2, 3},
			b:        perm.Permutation{0, 1},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, perm.Hits(tt.a, tt.b))
			assert.Equal(t, tt.expected, perm.Hits(tt.b, tt.a))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    perm.Permutation
		expectedErr error
	}{
		{
			name:     "empty",
			expected: perm.Permutation{},
		},
		{
			name:     "valid",
			input:    "3021",
			expected: perm.Permutation{3, 0, 2, 1},
		},
		{
			name:     "ten",
			input:    "9081726354",
			expected: perm.Permutation{9, 0, 8, 1, 7, 2, 6, 3, 5, 4},
		},
		{
			name:        "too long",
			input:       "01234567890",
			expectedErr: perm.ErrInvalidSize,
		},
		{
			name:        "not a digit",
			input:       "01a",
			expectedErr: strconv.ErrSyntax,
		},
		{
			name:        "spaces",
			input:       "0 1",
			expectedErr: strconv.ErrSyntax,
		},
		{
			name:        "duplicate",
			input:       "0110",
			expectedErr: perm.ErrDuplicate,
		},
		{
			name:        "out of range",
			input:       "013",
			expectedErr: perm.ErrInvalidElement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := perm.Parse(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, &perm.ParseError{})
				return
			}

			assert.Equal(t, tt.expected, actual)
		})
	}
}
