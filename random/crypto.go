// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import "github.com/decred/dcrd/crypto/rand"

// cryptoFill returns a byte source backed by p.  The PRNG xors its keystream
// into the buffer it reads into, so the buffer is cleared first to keep its
// previous contents out of the output.
func cryptoFill(p *rand.PRNG) func([]byte) {
	return func(b []byte) {
		clear(b)
		p.Read(b)
	}
}

// NewCrypto returns a Rand that draws from its own ChaCha20 based userspace
// CSPRNG, periodically reseeded from the operating system.  Like every other
// Rand it is not safe for concurrent use.
//
// An error is only returned when the operating system entropy source cannot
// be read for the initial seeding.
func NewCrypto() (*Rand, error) {
	p, err := rand.NewPRNG()
	if err != nil {
		return nil, err
	}
	return FromByteSource(cryptoFill(p)), nil
}
