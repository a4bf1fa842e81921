// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package random provides a uniform random source abstraction and a set of
operations derived from it.

A Source produces uniformly distributed float64 values in [0,1).  Any of the
generators in the prng package, a *math/rand/v2.Rand, a replay Sequence, or a
function adapted with SourceFunc may serve as a Source.  Rand wraps a Source
and derives every other operation from it: sampling with and without
replacement, shuffling, weighted selection, random strings and bytes, gaussian
values, stochastic rounding, dice rolls and version 4 UUIDs.

# Construction

There is no package level default instance.  Every Rand is created
explicitly:

	r := random.FromSeed(prng.String("level 1"))      // Mulberry32
	r := random.New(prng.NewXoshiro128pp(a, b, c, d)) // any generator
	r := random.FromByteSource(hw.Fill)                // byte filling callback
	r, err := random.NewCrypto()                       // ChaCha20 CSPRNG

# Errors

Invalid arguments, such as a negative count, are reported as errors that
can be checked against the ErrorKind constants with errors.Is.  A Source
that fails, such as an exhausted Sequence using the Throw policy or a Source
returned by Unavailable, panics with an error value describing the failure.
Operations never retry a failed draw.

# Concurrency

Rand and every Source in this module, including the one behind NewCrypto,
are unsynchronized.  Concurrent use of a single instance requires external
locking.  Giving each goroutine its own seeded instance is usually preferable
anyway, since interleaved draws from a shared generator are not reproducible.
*/
package random
