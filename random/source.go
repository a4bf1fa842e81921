// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/randkit/randkit/prng"
)

// twoPow32 scales a uint32 into [0,1).
const twoPow32 = 1 << 32

// Source is the interface that wraps the Float64 method.
//
// Float64 returns the next uniformly distributed value in [0,1).  It must
// never return a value outside of that range.  Implementations that can fail
// must panic rather than return an out of range value.
type Source interface {
	Float64() float64
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func() float64

// Float64 calls f.
func (f SourceFunc) Float64() float64 {
	return f()
}

// byteSource converts a byte filling callback into a Source.
//
// The scratch buffer is reused across draws, which is only sound because a
// Source is not safe for concurrent use.
type byteSource struct {
	fill func([]byte)
	buf  [4]byte
}

func (s *byteSource) Float64() float64 {
	s.fill(s.buf[:])
	return float64(binary.LittleEndian.Uint32(s.buf[:])) / twoPow32
}

// FromByteSource returns a Rand that draws four bytes from fill for every
// value and interprets them as a little endian uint32.  Any panic raised by
// fill propagates to the caller of the operation that requested the draw.
func FromByteSource(fill func(b []byte)) *Rand {
	return New(&byteSource{fill: fill})
}

// FromReader returns a Rand that draws its bytes from rd.  Errors reading rd
// result in a panic.
func FromReader(rd io.Reader) *Rand {
	return FromByteSource(func(b []byte) {
		if _, err := io.ReadFull(rd, b); err != nil {
			panic(fmt.Errorf("random: read of byte source errored: %w", err))
		}
	})
}

// FromSeed returns a Rand backed by a Mulberry32 generator initialized with
// seed.
func FromSeed(seed prng.Seed) *Rand {
	return New(prng.NewMulberry32(seed))
}

// FromFunc returns a Rand backed by fn, which must return values in [0,1).
func FromFunc(fn func() float64) *Rand {
	return New(SourceFunc(fn))
}

// FromSequence returns a Rand that replays values and then applies policy.
// See NewSequence for details.
func FromSequence(values []float64, policy ExhaustionPolicy) (*Rand, error) {
	seq, err := NewSequence(values, policy)
	if err != nil {
		return nil, err
	}
	return New(seq), nil
}

// unavailable is a Source that always fails.
type unavailable struct {
	reason string
}

func (u unavailable) Float64() float64 {
	panic(makeError(ErrSourceUnavailable, u.reason))
}

// Unavailable returns a Source that panics with an Error of kind
// ErrSourceUnavailable described by reason on every draw.  It stands in for
// a source that does not exist in the running environment.
func Unavailable(reason string) Source {
	return unavailable{reason: reason}
}
