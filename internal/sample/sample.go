// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sample draws permutations uniformly at random with replacement and
// writes them line by line.
package sample

import (
	"bufio"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext/prng"

	"github.com/aibor/ayto/internal/perm"
)

// seedKeys is the number of 32 bit keys the Mersenne Twister is seeded with.
const seedKeys = 8

// TableLimit is the largest size for which all permutations are enumerated
// up front. Larger sizes are sampled by shuffling.
const TableLimit = 8

// ErrInvalidCount is returned for a negative number of samples.
var ErrInvalidCount = errors.New("invalid sample count")

// Option configures a [Sampler].
type Option func(*Sampler)

// WithDelimiter sets a separator that is written between the elements of
// each sample. The default is no separator, which is only unambiguous for
// sizes up to 10.
func WithDelimiter(delim string) Option {
	return func(s *Sampler) {
		s.delim = delim
	}
}

// Sampler draws permutations of a fixed size.
type Sampler struct {
	size  int
	delim string
	rand  *rand.Rand
	table *perm.Table
}

// New creates a [Sampler] for permutations of 0..size-1 that draws from the
// given source.
func New(size int, src rand.Source, opts ...Option) (*Sampler, error) {
	if size < 0 || size > perm.MaxLen {
		return nil, fmt.Errorf("%w: %d", perm.ErrInvalidSize, size)
	}

	sampler := &Sampler{
		size: size,
		rand: rand.New(src),
	}

	for _, opt := range opts {
		opt(sampler)
	}

	if size <= TableLimit {
		table, err := perm.NewTable(size)
		if err != nil {
			return nil, fmt.Errorf("enumerate: %w", err)
		}

		sampler.table = table

		slog.Debug("Enumerated permutations",
			slog.Int("size", size),
			slog.Int("count", table.Len()))
	} else {
		slog.Debug("Sampling by shuffle", slog.Int("size", size))
	}

	return sampler, nil
}

// Size returns the size of the drawn permutations.
func (s *Sampler) Size() int {
	return s.size
}

// Draw returns one permutation chosen uniformly at random. Consecutive
// draws are independent.
//
// The returned permutation may share storage with the sampler and must not
// be modified.
func (s *Sampler) Draw() perm.Permutation {
	if s.table != nil {
		return s.table.At(s.rand.IntN(s.table.Len()))
	}

	p := perm.Identity(s.size)
	s.rand.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})

	return p
}

// WriteSamples writes nsamples lines to w, each one drawn permutation
// terminated by a newline.
func (s *Sampler) WriteSamples(w io.Writer, nsamples int) error {
	if nsamples < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, nsamples)
	}

	var (
		buf  = bufio.NewWriter(w)
		line []byte
	)

	for range nsamples {
		line = s.Draw().Append(line[:0], s.delim)
		line = append(line, '\n')

		if _, err := buf.Write(line); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}

// NewSource returns a Mersenne Twister source seeded from the system's
// entropy source. It is not cryptographically secure.
func NewSource() (rand.Source, error) {
	var seed [seedKeys * 4]byte

	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	keys := make([]uint32, seedKeys)
	for i := range keys {
		keys[i] = binary.LittleEndian.Uint32(seed[i*4:])
	}

	src := prng.NewMT19937()
	src.SeedFromKeys(keys)

	return src, nil
}
