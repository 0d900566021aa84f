// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleFlags_ParseArgs(t *testing.T) {
	tests := []struct {
		name             string
		args             []string
		expectedSize     uint64
		expectedNSamples uint64
		expectedDelim    string
		expectedDebug    bool
		expectedErr      error
		expectedOutput   string
	}{
		{
			name:        "help",
			args:        []string{"-help"},
			expectedErr: ErrHelp,
		},
		{
			name:        "version",
			args:        []string{"-version"},
			expectedErr: ErrHelp,
		},
		{
			name:           "no args",
			expectedErr:    &ParseArgsError{},
			expectedOutput: "usage: makesample n nsamples\n",
		},
		{
			name:           "one arg",
			args:           []string{"3"},
			expectedErr:    &ParseArgsError{},
			expectedOutput: "usage: makesample n nsamples\n",
		},
		{
			name:           "three args",
			args:           []string{"3", "5", "7"},
			expectedErr:    &ParseArgsError{},
			expectedOutput: "usage: makesample n nsamples\n",
		},
		{
			name:           "n not a number",
			args:           []string{"three", "5"},
			expectedErr:    strconv.ErrSyntax,
			expectedOutput: "usage: makesample n nsamples\n",
		},
		{
			name:           "nsamples not a number",
			args:           []string{"3", "5.5"},
			expectedErr:    strconv.ErrSyntax,
			expectedOutput: "usage: makesample n nsamples\n",
		},
		{
			name:           "n too large",
			args:           []string{"257", "5"},
			expectedErr:    ErrValueOutOfRange,
			expectedOutput: "usage: makesample n nsamples\n",
		},
		{
			name:             "valid",
			args:             []string{"3", "5"},
			expectedSize:     3,
			expectedNSamples: 5,
		},
		{
			name:         "zero",
			args:         []string{"0", "0"},
			expectedSize: 0,
		},
		{
			name:             "with flags",
			args:             []string{"-debug", "-delim=,", "12", "1"},
			expectedSize:     12,
			expectedNSamples: 1,
			expectedDelim:    ",",
			expectedDebug:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer

			flags := newSampleFlags(&output)

			err := flags.ParseArgs(tt.args)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedOutput != "" {
				assert.Equal(t, tt.expectedOutput, output.String())
			}

			if tt.expectedErr != nil {
				return
			}

			assert.Equal(t, tt.expectedSize, flags.size)
			assert.Equal(t, tt.expectedNSamples, flags.nsamples)
			assert.Equal(t, tt.expectedDelim, flags.delim)
			assert.Equal(t, tt.expectedDebug, flags.flagSet.debug)
		})
	}
}

func TestAYTOFlags_ParseArgs(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expected       aytoFlags
		expectedErr    error
		expectedOutput string
	}{
		{
			name:        "help",
			args:        []string{"-help"},
			expectedErr: ErrHelp,
		},
		{
			name:           "no args",
			expectedErr:    &ParseArgsError{},
			expectedOutput: "usage: ayto [flags...] npairs\n",
		},
		{
			name:           "too few pairs",
			args:           []string{"2"},
			expectedErr:    &ParseArgsError{},
			expectedOutput: "usage: ayto npairs where 3 <= npairs <= 10\n",
		},
		{
			name:           "too many pairs",
			args:           []string{"11"},
			expectedErr:    &ParseArgsError{},
			expectedOutput: "usage: ayto npairs where 3 <= npairs <= 10\n",
		},
		{
			name:           "pairs not a number",
			args:           []string{"x"},
			expectedErr:    strconv.ErrSyntax,
			expectedOutput: "usage: ayto npairs where 3 <= npairs <= 10\n",
		},
		{
			name:        "zero workers",
			args:        []string{"-workers=0", "4"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "worstcase with hidden",
			args:        []string{"-worstcase", "-hidden=3021", "4"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "hidden with feed",
			args:        []string{"-feed", "-hidden=3021", "4"},
			expectedErr: &ParseArgsError{},
		},
		{
			name: "defaults",
			args: []string{"4"},
			expected: aytoFlags{
				pairs:   4,
				workers: 8,
			},
		},
		{
			name: "all flags",
			args: []string{"-workers", "3", "-hidden", "3021", "-debug", "4"},
			expected: aytoFlags{
				pairs:   4,
				hidden:  "3021",
				workers: 3,
			},
		},
		{
			name: "worstcase",
			args: []string{"-worstcase", "10"},
			expected: aytoFlags{
				pairs:     10,
				worstCase: true,
				workers:   8,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer

			flags := newAYTOFlags(&output)

			err := flags.ParseArgs(tt.args)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedOutput != "" {
				assert.Equal(t, tt.expectedOutput, output.String())
			}

			if tt.expectedErr != nil {
				return
			}

			assert.Equal(t, tt.expected.pairs, flags.pairs)
			assert.Equal(t, tt.expected.hidden, flags.hidden)
			assert.Equal(t, tt.expected.feed, flags.feed)
			assert.Equal(t, tt.expected.worstCase, flags.worstCase)
			assert.Equal(t, tt.expected.workers, flags.workers)
		})
	}
}

func TestParseHidden(t *testing.T) {
	matching, err := parseHidden("3021", 4)
	require.NoError(t, err)
	assert.Equal(t, "3021", matching.String())

	_, err = parseHidden("3021", 5)
	require.ErrorIs(t, err, ErrInvalidSequence)

	_, err = parseHidden("3321", 4)
	require.ErrorIs(t, err, ErrInvalidSequence)

	_, err = parseHidden("30 21", 4)
	require.ErrorIs(t, err, ErrInvalidSequence)
}
