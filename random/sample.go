// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"fmt"
	"math"
)

// index returns a uniformly distributed index in [0,n).
func (r *Rand) index(n int) int {
	return int(math.Floor(r.src.Float64() * float64(n)))
}

// SampleOne returns a uniformly chosen element of items.  An error of kind
// ErrEmptySource is returned when items is empty.
func SampleOne[T any](r *Rand, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		str := "cannot sample from an empty collection"
		return zero, makeError(ErrEmptySource, str)
	}
	return items[r.index(len(items))], nil
}

// SampleMany returns count distinct elements of items, where distinct means
// taken from distinct positions.  Every element is equally likely to be
// included.  The order of the result is not specified.
//
// An error of kind ErrInvalidArgument is returned when count is negative or
// exceeds the number of items.  Nothing is drawn in that case.
func SampleMany[T any](r *Rand, items []T, count int) ([]T, error) {
	if count < 0 {
		str := fmt.Sprintf("count %d must be non-negative", count)
		return nil, makeError(ErrInvalidArgument, str)
	}
	if count > len(items) {
		str := fmt.Sprintf("cannot sample %d items from a collection of %d",
			count, len(items))
		return nil, makeError(ErrInvalidArgument, str)
	}

	// Reservoir sampling: start with the first count items and let each
	// later item i replace a random slot with probability count/(i+1).
	result := make([]T, count)
	copy(result, items[:count])
	for i := count; i < len(items); i++ {
		j := r.index(i + 1)
		if j < count {
			result[j] = items[i]
		}
	}
	return result, nil
}

// Shuffle returns a uniformly shuffled copy of items.  items is not
// modified.
func Shuffle[T any](r *Rand, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.index(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
