// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// epsilon is the difference between 1 and the next representable float64.
const epsilon = 0x1p-52

// DefaultSides is the number of sides of the die rolled by RollDie.
const DefaultSides = 6

// Rand derives random values of various shapes from a Source.  Rand methods
// are not safe for concurrent access.
type Rand struct {
	src Source
}

// New returns a Rand that draws from src.
func New(src Source) *Rand {
	return &Rand{src: src}
}

// Float64 returns the next value of the underlying source, a uniformly
// distributed float64 in [0,1).  It allows a Rand to serve as the Source of
// another Rand.
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Batch returns count consecutive draws from the source.
func (r *Rand) Batch(count int) ([]float64, error) {
	if count < 0 {
		str := fmt.Sprintf("count %d must be non-negative", count)
		return nil, makeError(ErrInvalidArgument, str)
	}
	values := make([]float64, count)
	for i := range values {
		values[i] = r.src.Float64()
	}
	return values, nil
}

// Chance returns true with the given probability.  A probability of zero or
// less is never true and one or more is always true.
func (r *Rand) Chance(probability float64) bool {
	return r.src.Float64() < probability
}

// Between returns a uniformly distributed value in [min,max).
func (r *Rand) Between(min, max float64) float64 {
	return min + (max-min)*r.src.Float64()
}

// Int returns a uniformly distributed integer in [min,max].  Ranges wider
// than 2^53 lose precision but never leave [min,max].
func (r *Rand) Int(min, max int) int {
	v := math.Floor(r.Between(float64(min), float64(max)+1))

	// Bounds near the limits of int round up to 2^63 as a float64, which
	// does not convert back to an int.
	if v >= float64(max) {
		return max
	}
	if v <= float64(min) {
		return min
	}
	return int(v)
}

// Roll returns the total of count rolls of a die with the given number of
// sides.  No dice are rolled when count is not positive.
func (r *Rand) Roll(count, sides int) int {
	var total int
	for i := 0; i < count; i++ {
		total += r.Int(1, sides)
	}
	return total
}

// RollDie returns the result of rolling a single six-sided die.
func (r *Rand) RollDie() int {
	return r.Roll(1, DefaultSides)
}

// Round rounds n to one of its neighboring integers with a probability given
// by its fractional part, so that on average the result equals n.  For
// example, 2.3 rounds to 3 with a probability of 0.3 and to 2 otherwise.
func (r *Rand) Round(n float64) float64 {
	floor := math.Floor(n)
	if r.Chance(n - floor) {
		return floor + 1
	}
	return floor
}

// Normal returns two independent normally distributed values with the given
// mean and standard deviation using the Box-Muller transform.
//
// Both outputs of the transform are returned.  Callers needing a single value
// may discard one, at the cost of consuming two uniform draws per value.
func (r *Rand) Normal(mean, deviation float64) (float64, float64) {
	// Resample to avoid taking the log of zero.
	u1 := r.src.Float64()
	for u1 <= epsilon {
		u1 = r.src.Float64()
	}
	u2 := r.src.Float64()

	mag := math.Sqrt(-2 * math.Log(u1))
	sin, cos := math.Sincos(2 * math.Pi * u2)
	return mean + mag*cos*deviation, mean + mag*sin*deviation
}

// String returns a string of length characters, each chosen independently
// and uniformly from the characters of charset.  Characters are Unicode code
// points, so multi-byte characters are never split.  Characters repeated in
// charset are proportionally more likely to be chosen.
func (r *Rand) String(length int, charset string) (string, error) {
	if length < 0 {
		str := fmt.Sprintf("length %d must be non-negative", length)
		return "", makeError(ErrInvalidArgument, str)
	}
	chars := []rune(charset)
	if len(chars) == 0 {
		str := "charset must not be empty"
		return "", makeError(ErrInvalidArgument, str)
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		// Never errors since chars is not empty.
		c, _ := SampleOne(r, chars)
		sb.WriteRune(c)
	}
	return sb.String(), nil
}

// Bytes returns n random bytes.
func (r *Rand) Bytes(n int) ([]byte, error) {
	if n < 0 {
		str := fmt.Sprintf("byte count %d must be non-negative", n)
		return nil, makeError(ErrInvalidArgument, str)
	}
	b := make([]byte, n)
	r.Fill(b)
	return b, nil
}

// Fill fills b with random bytes.  Whole 32-bit words are drawn and stored in
// little endian order for as many as fit, and any remaining bytes are drawn
// individually.
func (r *Rand) Fill(b []byte) {
	words := len(b) / 4
	for i := 0; i < words; i++ {
		word := uint32(r.Between(0, twoPow32))
		binary.LittleEndian.PutUint32(b[i*4:], word)
	}
	for i := words * 4; i < len(b); i++ {
		b[i] = byte(r.Between(0, 256))
	}
}

// UUID returns a random version 4 UUID in its canonical lowercase
// xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx form.
//
// The result is only as unpredictable as the underlying source.
func (r *Rand) UUID() string {
	var u uuid.UUID
	r.Fill(u[:])
	u[6] = u[6]&0x0f | 0x40 // version 4
	u[8] = u[8]&0x3f | 0x80 // RFC 4122 variant
	return u.String()
}
