// Package prng provides the seeded pseudo-random source used for level
// generation. Output is stable across platforms and releases: a seed always
// yields the same sequence.
package prng

import (
	"math"
	"slices"
)

// PRNG is a mulberry32 generator. It is not safe for concurrent use.
type PRNG struct {
	state uint32
}

// New creates a generator from a seed. Only the low 32 bits of the seed are used.
func New(seed int64) *PRNG {
	return &PRNG{state: uint32(seed)}
}

// Next returns the next raw 32-bit value.
func (r *PRNG) Next() uint32 {
	r.state += 0x6d2b79f5
	s := r.state
	t := (s ^ (s >> 15)) * (1 | s)
	t = (t + (t^(t>>7))*(61|t)) ^ t
	return t ^ (t >> 14)
}

// Float returns a uniform float64 in [0, 1).
func (r *PRNG) Float() float64 {
	return float64(r.Next()) / 4294967296
}

// InRange returns an integer in [ceil(min), floor(max)).
// When floor(max) == ceil(min) the lower bound is returned.
func (r *PRNG) InRange(min, max float64) int {
	lo := math.Ceil(min)
	hi := math.Floor(max)
	return int(math.Floor(r.Float()*(hi-lo) + lo))
}

// Intn returns an integer in [0, n).
func (r *PRNG) Intn(n int) int {
	return r.InRange(0, float64(n))
}

// Element returns a random element of items. items must not be empty.
func Element[T any](r *PRNG, items []T) T {
	return items[r.Intn(len(items))]
}

// Sample draws count distinct elements from pool without replacement.
//
// If pool has no more than count elements it is returned unchanged and no
// randomness is consumed. Otherwise the chosen elements are removed from
// pool's backing array, so callers must not reuse pool afterwards.
func Sample[T any](r *PRNG, pool []T, count int) []T {
	if len(pool) <= count {
		return pool
	}
	out := make([]T, 0, max(count, 0))
	for range count {
		i := r.Intn(len(pool))
		out = append(out, pool[i])
		pool = slices.Delete(pool, i, i+1)
	}
	return out
}
