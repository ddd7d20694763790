// Package wyrand implements a fast, non-cryptographic pseudo-random number
// generator in the wyrand family. The entire generator state is a single
// uint64 advanced by an additive constant and mixed with a 128-bit widening
// multiply, which makes it cheap to seed, cheap to copy, and fully
// deterministic for a given seed.
//
// A Generator is not safe for concurrent use; give each goroutine its own.
// Copying a Generator value forks an independent stream: both copies produce
// identical output until either one is advanced, which is useful for
// deterministic branching of random streams.
package wyrand

import "math/bits"

// Mixing constants for the wyrand step. These are fixed algorithm parameters,
// not tunables: they match the reference wyrand constants so that output is
// reproducible across implementations sharing them.
const (
	p0 = 0xa0761d6478bd642f
	p1 = 0xe7037ed1a0b428db
)

// Generator is a wyrand pseudo-random number generator.
type Generator struct {
	state uint64
}

// NewWithSeed returns a generator with the given seed. Equal seeds produce
// identical output sequences.
func NewWithSeed(seed uint64) *Generator {
	return &Generator{state: seed}
}

// New returns a generator seeded from the process-wide seed cache.
func New() *Generator {
	return NewWithSeed(SeedFromLocal())
}

// NewWithSystemSeed returns a generator seeded directly from the operating
// system's entropy source. This is a system call; prefer New unless a fresh
// OS seed is specifically required.
func NewWithSystemSeed() *Generator {
	return NewWithSeed(SeedFromSystem())
}

// Uint64 advances the state and returns the next 64-bit hash. All typed draws
// are built on this primitive.
func (g *Generator) Uint64() uint64 {
	g.state += p0
	hi, lo := bits.Mul64(g.state, g.state^p1)
	return hi ^ lo
}

// Next draws a value of type T from g. See FromHash for how the raw hash maps
// to each type.
func Next[T Value](g *Generator) T {
	return FromHash[T](g.Uint64())
}

// NextInRange draws a value in the half-open range [start, end) from g.
// Panics if end <= start.
func NextInRange[T Value](g *Generator, start, end T) T {
	return FromHashInRange(g.Uint64(), start, end)
}

// Shuffle permutes s in place, swapping each index with a uniformly drawn
// index in [0, len(s)). It consumes one ranged draw per element and does not
// allocate. Slices of length 0 or 1 come back unchanged, though a length-1
// shuffle still advances the generator.
func Shuffle[E any](g *Generator, s []E) {
	for i := range s {
		j := NextInRange(g, 0, len(s))
		s[i], s[j] = s[j], s[i]
	}
}
