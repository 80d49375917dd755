package factions

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDropInterval(t *testing.T) {
	cfg := DefaultConfig()
	if got := DropInterval(cfg); got != 23 {
		t.Fatalf("1000ms/42ms should give 23 generations, got %d", got)
	}
	cfg.DropPeriod = 10 * time.Millisecond
	if got := DropInterval(cfg); got != 1 {
		t.Fatalf("drop period shorter than a generation should clamp to 1, got %d", got)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := testConfig(32, 32)
	cfg.DropPeriod = 5 * cfg.GenerationPeriod

	a, err := Simulate(context.Background(), cfg, 11, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Simulate(context.Background(), cfg, 11, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Drops != 4 {
		t.Fatalf("expected 4 drops in 20 steps, got %d", a.Drops)
	}
	if a.Final.Population != b.Final.Population || a.PeakPopulation != b.PeakPopulation || a.Leader != b.Leader {
		t.Fatalf("same seed produced different runs: %+v vs %+v", a, b)
	}
	if a.Final.Generation != 20 {
		t.Fatalf("expected generation 20, got %d", a.Final.Generation)
	}
}

func TestSweepKeepsSeedOrder(t *testing.T) {
	cfg := testConfig(16, 16)
	seeds := []int64{5, 6, 7, 8, 9}
	results, err := Sweep(context.Background(), cfg, seeds, 5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, res := range results {
		if res.Seed != seeds[i] {
			t.Fatalf("result %d has seed %d, expected %d", i, res.Seed, seeds[i])
		}
		single, _ := Simulate(context.Background(), cfg, seeds[i], 5)
		if single.Final.Population != res.Final.Population {
			t.Fatalf("seed %d differs between sweep and single run", seeds[i])
		}
	}
}

func TestSweepRejectsInvalidConfigAndCancellation(t *testing.T) {
	cfg := testConfig(0, 4)
	if _, err := Sweep(context.Background(), cfg, []int64{1}, 1, 1); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Sweep(ctx, testConfig(8, 8), []int64{1, 2}, 3, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
