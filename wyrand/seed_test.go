package wyrand

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedFromSystem(t *testing.T) {
	t.Parallel()
	// With a working entropy source two seeds colliding is a 2^-64 event.
	require.NotEqual(t, SeedFromSystem(), SeedFromSystem())
}

func TestSeedFromLocal(t *testing.T) {
	t.Parallel()
	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		seen[SeedFromLocal()] = true
	}
	require.Len(t, seen, 1000, "local seeds repeated")
}

func TestSeedFromLocalConcurrent(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10000; j++ {
				SeedFromLocal()
			}
		}()
	}
	wg.Wait()
}
