package factions

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunResult summarizes one headless run.
type RunResult struct {
	Seed  int64
	Steps int
	Drops int

	Final Census
	// PeakPopulation is the largest live population seen after any step.
	PeakPopulation int
	// Leader is the faction with the most live cells at the end. It is -1
	// when the board died out.
	Leader int
}

// DropInterval converts the configured periods into a number of generations
// between random drops. It is at least 1.
func DropInterval(cfg Config) int {
	if cfg.GenerationPeriod <= 0 {
		return 1
	}
	n := int(cfg.DropPeriod / cfg.GenerationPeriod)
	if n < 1 {
		n = 1
	}
	return n
}

// Simulate resets a world with seed and runs it for steps generations,
// dropping random patterns on the same cadence the windowed driver uses.
func Simulate(ctx context.Context, cfg Config, seed int64, steps int) (RunResult, error) {
	world := NewWithConfig(cfg)
	world.Reset(seed)

	res := RunResult{Seed: seed, Steps: steps}
	every := DropInterval(cfg)
	for step := 1; step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		world.Step()
		if step%every == 0 && cfg.DropCount > 0 {
			world.DropRandom()
			res.Drops++
		}
		if pop := world.Census().Population; pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
	}
	res.Final = world.Census()
	res.Leader = leader(res.Final)
	return res, nil
}

func leader(c Census) int {
	best, idx := 0, -1
	for i, n := range c.Alive {
		if n > best {
			best, idx = n, i
		}
	}
	return idx
}

// Sweep runs one Simulate per seed with at most workers runs in flight.
// Results come back in seed order. The first failure cancels the rest.
func Sweep(ctx context.Context, cfg Config, seeds []int64, steps, workers int) ([]RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	results := make([]RunResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			res, err := Simulate(ctx, cfg, seed, steps)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
