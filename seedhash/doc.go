// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package seedhash converts arbitrary seed material into 32-bit generator state
words.

Two independent string hashes are provided.  MixHash is a small multiplicative
hash followed by a three step avalanche finalizer.  Murmur3 is the standard
MurmurHash3 x86-32 computed over one byte per UTF-16 code unit, the low byte
of the unit, so ASCII strings hash exactly as their bytes do.  Murmur3Sum exposes the same hash over raw bytes with a caller supplied
seed.

Expand derives any number of state words from a single key using the BLAKE3
extendable output function.  It is useful for seeding every word of a
multi-word generator from one passphrase.

None of these functions are suitable for cryptographic purposes other than
Expand, and even Expand only provides the security of the key it is given.
*/
package seedhash
