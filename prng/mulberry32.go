// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "github.com/randkit/randkit/seedhash"

// twoPow32 scales a uint32 into [0,1).
const twoPow32 = 1 << 32

// Mulberry32 is a generator with a single word of state.  It is the fastest
// generator in this package and has decent statistical quality.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 returns a Mulberry32 generator.  String seeds are hashed with
// seedhash.MixHash.
func NewMulberry32(seed Seed) *Mulberry32 {
	w := words(seedhash.MixHash, seed)
	return &Mulberry32{state: w[0]}
}

// Uint32 returns the next output word.
func (g *Mulberry32) Uint32() uint32 {
	g.state += 0x6d2b79f5
	s := g.state
	t := (s ^ s>>15) * (s | 1)
	t = (t + (t^t>>7)*(t|61)) ^ t
	return t ^ t>>14
}

// Float64 returns the next output scaled into [0,1).
func (g *Mulberry32) Float64() float64 {
	return float64(g.Uint32()) / twoPow32
}
