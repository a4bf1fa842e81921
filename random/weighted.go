// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"fmt"
	"math"
	"sort"
)

// Weighted pairs a candidate value with its relative selection weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedSampler selects values with a probability proportional to their
// weight.  It is immutable once created and draws from the Rand it was
// created with.
type WeightedSampler[T any] struct {
	r          *Rand
	values     []T
	cumulative []float64
	total      float64
}

// NewWeightedSampler returns a sampler over the entries of table.  Entries
// with a weight that is not finite or is not positive are ignored.
//
// An error of kind ErrNoViableCandidates is returned when no entries remain,
// and an error of kind ErrInvalidArgument is returned when the remaining
// weights sum to infinity.
func NewWeightedSampler[T any](r *Rand, table []Weighted[T]) (*WeightedSampler[T], error) {
	values := make([]T, 0, len(table))
	cumulative := make([]float64, 0, len(table))
	var total float64
	for _, entry := range table {
		w := entry.Weight
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			continue
		}
		total += w
		values = append(values, entry.Value)
		cumulative = append(cumulative, total)
	}
	if len(values) == 0 {
		str := fmt.Sprintf("none of the %d weighted candidates has a finite "+
			"positive weight", len(table))
		return nil, makeError(ErrNoViableCandidates, str)
	}
	if math.IsInf(total, 0) {
		str := "total candidate weight overflows"
		return nil, makeError(ErrInvalidArgument, str)
	}
	if len(values) != len(table) {
		log.Debugf("Ignored %d of %d weighted candidates without a finite "+
			"positive weight", len(table)-len(values), len(table))
	}

	return &WeightedSampler[T]{
		r:          r,
		values:     values,
		cumulative: cumulative,
		total:      total,
	}, nil
}

// Sample returns a value chosen with probability proportional to its weight.
func (s *WeightedSampler[T]) Sample() T {
	x := s.r.Between(0, s.total)

	// Find the first cumulative weight greater than x.  The final entry is
	// used when rounding leaves x at or above every cumulative weight.
	last := len(s.cumulative) - 1
	i := sort.Search(last, func(i int) bool {
		return x < s.cumulative[i]
	})
	return s.values[i]
}

// Len returns the number of candidates that can be selected.
func (s *WeightedSampler[T]) Len() int {
	return len(s.values)
}

// Total returns the sum of the weights of the selectable candidates.
func (s *WeightedSampler[T]) Total() float64 {
	return s.total
}
