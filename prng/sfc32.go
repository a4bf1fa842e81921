// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"math/bits"

	"github.com/randkit/randkit/seedhash"
)

// SFC32 is Chris Doty-Humphrey's Small Fast Counting generator with four
// words of state, one of which is a counter.  The counter guarantees a
// minimum period of 2^32 for every seed, so no seed is invalid.
type SFC32 struct {
	s0, s1, s2, s3 uint32
}

// NewSFC32 returns an SFC32 generator.  String seeds are hashed with
// seedhash.Murmur3.
func NewSFC32(a, b, c, d Seed) *SFC32 {
	w := words(seedhash.Murmur3, a, b, c, d)
	return &SFC32{s0: w[0], s1: w[1], s2: w[2], s3: w[3]}
}

// Uint32 returns the next output word.
func (g *SFC32) Uint32() uint32 {
	t := g.s0 + g.s1 + g.s3
	g.s3++
	g.s0 = g.s1 ^ g.s1>>9
	g.s1 = g.s2 + g.s2<<3
	g.s2 = bits.RotateLeft32(g.s2, 21) + t
	return t
}

// Float64 returns the next output scaled into [0,1).
func (g *SFC32) Float64() float64 {
	return float64(g.Uint32()) / twoPow32
}
