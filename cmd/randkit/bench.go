package main

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/randkit/wyrand"
)

type BenchCmd struct {
	Draws   int    `default:"10000000" help:"Draws per scenario (overridden per scenario in the config)"`
	Workers int    `default:"0" help:"Parallel workers (0 means GOMAXPROCS)"`
	Config  string `help:"HCL scenario file (runs built-in scenarios when omitted or missing)"`
}

func (c *BenchCmd) Run() error {
	config, err := LoadBenchConfig(c.Config)
	if err != nil {
		return err
	}

	for _, scenario := range config.Scenarios {
		draws := scenario.Draws
		if draws == 0 {
			draws = c.Draws
		}
		workers := scenario.Workers
		if workers == 0 {
			workers = c.Workers
		}
		if workers == 0 {
			workers = runtime.GOMAXPROCS(0)
		}

		log.Debug("running scenario", "name", scenario.Name, "draws", draws, "workers", workers)
		elapsed, err := runScenario(scenario, draws, workers)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		rate := float64(draws) / elapsed.Seconds()
		fmt.Printf("%-16s %12d draws  %8d workers  %10.0f draws/s\n",
			scenario.Name, draws, workers, rate)
	}
	return nil
}

func runScenario(s Scenario, draws, workers int) (time.Duration, error) {
	var group errgroup.Group
	perWorker := draws / workers
	start := time.Now()
	for w := 0; w < workers; w++ {
		seed := uint64(w)
		group.Go(func() error {
			var g *wyrand.Generator
			if s.Seed != nil {
				// Offset per worker so streams do not overlap draw for draw.
				g = wyrand.NewWithSeed(*s.Seed + seed)
			} else {
				g = wyrand.New()
			}
			return drawLoop(g, s, perWorker)
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

// sink stops the compiler discarding the draw loops as dead code. Workers
// add to it atomically since drawLoop runs concurrently.
var sink atomic.Uint64

func drawLoop(g *wyrand.Generator, s Scenario, n int) error {
	var acc uint64
	switch {
	case s.Min != nil && s.Type == "float64":
		for i := 0; i < n; i++ {
			acc += uint64(wyrand.NextInRange(g, *s.Min, *s.Max))
		}
	case s.Min != nil && s.Type == "int64":
		for i := 0; i < n; i++ {
			acc += uint64(wyrand.NextInRange(g, int64(*s.Min), int64(*s.Max)))
		}
	case s.Min != nil && s.Type == "uint64":
		for i := 0; i < n; i++ {
			acc += wyrand.NextInRange(g, uint64(*s.Min), uint64(*s.Max))
		}
	case s.Type == "float64":
		for i := 0; i < n; i++ {
			acc += uint64(wyrand.Next[float64](g) * float64(n))
		}
	case s.Type == "uint64":
		for i := 0; i < n; i++ {
			acc += wyrand.Next[uint64](g)
		}
	case s.Type == "uint32":
		for i := 0; i < n; i++ {
			acc += uint64(wyrand.Next[uint32](g))
		}
	case s.Type == "int64":
		for i := 0; i < n; i++ {
			acc += uint64(wyrand.Next[int64](g))
		}
	default:
		return fmt.Errorf("unsupported type %q", s.Type)
	}
	sink.Add(acc)
	return nil
}
