// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"errors"
	"testing"
)

// uniformRand returns a Rand replaying the n evenly spaced values i/n for
// i in [0,n) in order, looping once exhausted.  Consuming a multiple of n
// draws therefore visits [0,1) exactly uniformly.
func uniformRand(t *testing.T, n int) *Rand {
	t.Helper()

	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i) / float64(n)
	}
	r, err := FromSequence(values, Loop{})
	if err != nil {
		t.Fatalf("unexpected error creating uniform sequence: %v", err)
	}
	return r
}

// fixedRand returns a Rand replaying values once and then failing.
func fixedRand(t *testing.T, values ...float64) *Rand {
	t.Helper()

	r, err := FromSequence(values, Throw{})
	if err != nil {
		t.Fatalf("unexpected error creating sequence: %v", err)
	}
	return r
}

// recoverError runs fn and returns the error it panicked with, or nil when it
// did not panic.  Panics with values that are not errors are re-raised.
func recoverError(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			e, ok := v.(error)
			if !ok {
				panic(v)
			}
			err = e
		}
	}()
	fn()
	return nil
}

// checkKind ensures err is of the given kind.
func checkKind(t *testing.T, name string, err error, kind ErrorKind) {
	t.Helper()

	if !errors.Is(err, kind) {
		t.Errorf("%s: mismatched error -- got %v, want %v", name, err, kind)
	}
}
