// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seedhash

import (
	"encoding/binary"
	"math/bits"
	"unicode/utf16"

	"lukechampine.com/blake3"
)

const (
	mixMul1 = 0x85ebca6b
	mixMul2 = 0xc2b2ae35

	murmurC1 = 0xcc9e2d51
	murmurC2 = 0x1b873593
)

// codeUnits returns the UTF-16 code units of s.  Invalid UTF-8 sequences are
// encoded as the replacement character.
func codeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// fmix32 is the avalanche finalizer shared by both hashes.
func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= mixMul1
	h ^= h >> 13
	h *= mixMul2
	h ^= h >> 16
	return h
}

// MixHash hashes the UTF-16 code units of seed by repeatedly multiplying the
// running hash by 33 and xoring in the next unit, then avalanches the result.
// The empty string hashes to zero.
func MixHash(seed string) uint32 {
	var hash uint32
	for _, unit := range codeUnits(seed) {
		hash = hash*33 ^ uint32(unit)
	}
	return fmix32(hash)
}

// Murmur3 returns the MurmurHash3 x86-32 digest, with a zero seed, of the
// UTF-16 code units of seed with each unit truncated to its low byte.  ASCII
// and Latin-1 strings therefore hash the same as their single byte encoding.
func Murmur3(seed string) uint32 {
	units := codeUnits(seed)
	data := make([]byte, len(units))
	for i, unit := range units {
		data[i] = byte(unit)
	}
	return Murmur3Sum(data, 0)
}

// Murmur3Sum returns the MurmurHash3 x86-32 digest of data using the provided
// seed.
func Murmur3Sum(data []byte, seed uint32) uint32 {
	h := seed
	n := len(data)

	// Body.
	for len(data) >= 4 {
		k := binary.LittleEndian.Uint32(data)
		k *= murmurC1
		k = bits.RotateLeft32(k, 15)
		k *= murmurC2

		h ^= k
		h = bits.RotateLeft32(h, 13)
		h = h*5 + 0xe6546b64
		data = data[4:]
	}

	// Tail.
	var k uint32
	switch len(data) {
	case 3:
		k ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(data[0])
		k *= murmurC1
		k = bits.RotateLeft32(k, 15)
		k *= murmurC2
		h ^= k
	}

	h ^= uint32(n)
	return fmix32(h)
}

// Expand fills words with state derived from key using the BLAKE3 extendable
// output function.  The same key always produces the same words, and a longer
// words slice extends, rather than changes, the output for a shorter one.
func Expand(key []byte, words []uint32) {
	if len(words) == 0 {
		return
	}
	hasher := blake3.New(32, nil)
	hasher.Write(key)
	buf := make([]byte, len(words)*4)
	// The XOF reader never errors.
	hasher.XOF().Read(buf)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
}
