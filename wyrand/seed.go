package wyrand

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/randkit/internal/entropy"
)

// seedPool caches seeded generators so SeedFromLocal pays the entropy system
// call once per pooled generator instead of once per request. Go has no
// per-thread storage, so a sync.Pool plays the same role: a generator is held
// by at most one goroutine at a time and there is no cross-goroutine locking
// on the draw itself.
var seedPool = sync.Pool{
	New: func() any { return NewWithSeed(SeedFromSystem()) },
}

// SeedFromSystem returns a 64-bit seed from the operating system's entropy
// source. If the source is unavailable it logs a warning and derives the seed
// from the wall clock instead; it never fails.
//
// This is a system call; for frequent seeding use SeedFromLocal.
func SeedFromSystem() uint64 {
	seed, err := entropy.Read()
	if err != nil {
		log.Warn("entropy source unavailable, deriving seed from system clock", "err", err)
		return entropy.ClockSeed()
	}
	return seed
}

// SeedFromLocal returns the next value from a cached generator that was
// seeded once from SeedFromSystem. Safe to call from concurrent goroutines.
func SeedFromLocal() uint64 {
	g := seedPool.Get().(*Generator)
	v := g.Uint64()
	seedPool.Put(g)
	return v
}
