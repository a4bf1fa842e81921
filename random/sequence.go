// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import "fmt"

// ExhaustionPolicy determines what a Sequence does once every value has been
// replayed.  It is implemented by Throw, Loop, Constant and Compute.
type ExhaustionPolicy interface {
	exhaustionPolicy()
}

// Throw fails every draw after the final value with an ExhaustedError.
type Throw struct{}

// Loop restarts the sequence from its first value.
type Loop struct{}

// Constant returns the same value for every draw after the final value.
type Constant float64

// Compute calls the function with the zero-based draw index for every draw
// after the final value.
type Compute func(index int) float64

func (Throw) exhaustionPolicy()    {}
func (Loop) exhaustionPolicy()     {}
func (Constant) exhaustionPolicy() {}
func (Compute) exhaustionPolicy()  {}

// Delegate returns a Compute policy that continues with draws from src.
func Delegate(src Source) Compute {
	return func(int) float64 {
		return src.Float64()
	}
}

// Sequence is a Source that replays a fixed list of values.  It is primarily
// intended to make code built on Rand deterministic under test.
type Sequence struct {
	values []float64
	policy ExhaustionPolicy
	cursor int // position in values
	index  int // draws served so far
}

// inRange returns whether v is a valid Source output.
func inRange(v float64) bool {
	return v >= 0 && v < 1
}

// NewSequence returns a Sequence replaying a copy of values.  A nil policy is
// treated as Throw.
//
// An error of kind ErrInvalidArgument is returned when a value or a Constant
// policy is outside of [0,1), or when the Loop policy is used without any
// values.
func NewSequence(values []float64, policy ExhaustionPolicy) (*Sequence, error) {
	if policy == nil {
		policy = Throw{}
	}
	for i, v := range values {
		if !inRange(v) {
			str := fmt.Sprintf("sequence value %v at index %d is not in "+
				"[0,1)", v, i)
			return nil, makeError(ErrInvalidArgument, str)
		}
	}
	switch p := policy.(type) {
	case Loop:
		if len(values) == 0 {
			str := "loop policy requires at least one value"
			return nil, makeError(ErrInvalidArgument, str)
		}
	case Constant:
		if !inRange(float64(p)) {
			str := fmt.Sprintf("constant fallback %v is not in [0,1)", p)
			return nil, makeError(ErrInvalidArgument, str)
		}
	case Compute:
		if p == nil {
			str := "compute policy requires a function"
			return nil, makeError(ErrInvalidArgument, str)
		}
	}

	return &Sequence{
		values: append([]float64(nil), values...),
		policy: policy,
	}, nil
}

// Next returns the next value.  Once every value has been replayed the
// exhaustion policy decides the result.  The Throw policy returns an
// ExhaustedError without consuming a draw.
func (s *Sequence) Next() (float64, error) {
	if s.cursor == len(s.values) {
		switch p := s.policy.(type) {
		case Throw:
			log.Debugf("Sequence of %d values exhausted at index %d",
				len(s.values), s.index)
			return 0, ExhaustedError{Index: s.index}

		case Loop:
			log.Tracef("Sequence of %d values restarting at index %d",
				len(s.values), s.index)
			s.cursor = 0

		case Constant:
			s.index++
			return float64(p), nil

		case Compute:
			v := p(s.index)
			s.index++
			return v, nil
		}
	}

	v := s.values[s.cursor]
	s.cursor++
	s.index++
	return v, nil
}

// Float64 returns the next value.  It panics with an ExhaustedError when the
// Throw policy is in effect and every value has been replayed.
//
// This is part of the Source interface implementation.
func (s *Sequence) Float64() float64 {
	v, err := s.Next()
	if err != nil {
		panic(err)
	}
	return v
}

// Index returns the number of draws served so far.
func (s *Sequence) Index() int {
	return s.index
}

// Reset rewinds the sequence to its first value.
func (s *Sequence) Reset() {
	s.cursor = 0
	s.index = 0
}
