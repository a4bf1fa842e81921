// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prng implements small, fast, deterministic pseudorandom number
// generators operating on 32-bit words: Mulberry32, SFC32 and Xoshiro128++.
//
// Every generator provides Uint32, returning the next raw output word, and
// Float64, returning that word scaled into [0,1).  Float64 makes every
// generator usable as a random.Source.
//
// Generators are seeded from Seed values.  Integer seeds are truncated to
// their low 32 bits and string seeds are hashed.  Mulberry32 hashes strings
// with seedhash.MixHash while SFC32 and Xoshiro128++ use seedhash.Murmur3.
// The same seeds always produce the same sequence.
//
// The generators are not safe for concurrent access and are not suitable for
// cryptographic purposes.
package prng
