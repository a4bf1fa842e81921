// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "strconv"

// hashFunc reduces a string seed to a state word.
type hashFunc func(string) uint32

// Seed is a value used to initialize one word of generator state.  It is
// implemented by Int, Word and String.
type Seed interface {
	word(hash hashFunc) uint32
}

// Int is an integer seed.  Only the low 32 bits are used, so negative values
// wrap, e.g. Int(-1) seeds the word 0xffffffff.
type Int int64

func (s Int) word(hashFunc) uint32 {
	return uint32(s)
}

// Word is a seed that is used as a state word verbatim.
type Word uint32

func (s Word) word(hashFunc) uint32 {
	return uint32(s)
}

// String is a seed that is hashed into a state word by the hash function the
// generator designates for strings.
type String string

func (s String) word(hash hashFunc) uint32 {
	return hash(string(s))
}

// ParseSeed interprets s as an Int seed when it is a base 10 integer and as a
// String seed otherwise.
func ParseSeed(s string) Seed {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	return String(s)
}

// words normalizes the provided seeds into state words.
func words(hash hashFunc, seeds ...Seed) [4]uint32 {
	var w [4]uint32
	for i, s := range seeds {
		if s != nil {
			w[i] = s.word(hash)
		}
	}
	return w
}

// Engine names accepted by New.
const (
	NameMulberry32   = "mulberry32"
	NameSFC32        = "sfc32"
	NameXoshiro128pp = "xoshiro128pp"
)

// Generator is implemented by every generator in this package.
type Generator interface {
	Uint32() uint32
	Float64() float64
}

// New returns the generator identified by name seeded with up to four seeds.
// Mulberry32 uses only the first seed.  Missing seeds are zero.  The second
// return value is false when the name is not recognized.
func New(name string, seeds ...Seed) (Generator, bool) {
	var s [4]Seed
	copy(s[:], seeds)
	for i := range s {
		if s[i] == nil {
			s[i] = Word(0)
		}
	}
	switch name {
	case NameMulberry32:
		return NewMulberry32(s[0]), true
	case NameSFC32:
		return NewSFC32(s[0], s[1], s[2], s[3]), true
	case NameXoshiro128pp:
		return NewXoshiro128pp(s[0], s[1], s[2], s[3]), true
	}
	return nil, false
}

// compile-time checks.
var (
	_ Generator = (*Mulberry32)(nil)
	_ Generator = (*SFC32)(nil)
	_ Generator = (*Xoshiro128pp)(nil)
)
