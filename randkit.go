// Package randkit is a fast, non-cryptographic random number library for
// simulations, games, and procedural content generation. It favors
// statistical quality and reproducibility over unpredictability; do not use
// it where an adversary must not guess the output.
//
// The stateful generator lives in the wyrand subpackage, the stateless
// coordinate-mixing table in perm, and vector variants of both in vec. This
// package carries the convenience surface: one-off draws backed by a
// process-wide cached seed generator, so callers that just want a number
// never touch seeding.
//
//	n := randkit.Next[uint32]()
//	d := randkit.NextInRange(1, 7) // die roll, [1, 7)
//
//	g := randkit.New() // an owned generator for a longer-lived stream
//	f := wyrand.Next[float64](g)
package randkit

import "github.com/lox/randkit/wyrand"

// Next draws a single value of type T using the process-wide seed cache.
func Next[T wyrand.Value]() T {
	return wyrand.FromHash[T](wyrand.SeedFromLocal())
}

// NextInRange draws a single value in the half-open range [start, end) using
// the process-wide seed cache. Panics if end <= start.
func NextInRange[T wyrand.Value](start, end T) T {
	return wyrand.FromHashInRange(wyrand.SeedFromLocal(), start, end)
}

// New returns a generator seeded from the process-wide seed cache. The
// returned generator is owned by the caller and is not safe for concurrent
// use.
func New() *wyrand.Generator {
	return wyrand.New()
}
