package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"faction-life/internal/app"
	"faction-life/internal/sims/factions"

	"github.com/shirou/gopsutil/v3/mem"
)

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per run")
	runs := flag.Int("runs", 16, "number of seeds to run")
	firstSeed := flag.Int64("seed", 1, "seed of the first run; later runs count up")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	m, err := overrides.Map()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := factions.FromMap(m)
	if err != nil {
		log.Fatal(err)
	}
	if *runs <= 0 || *steps < 0 {
		log.Fatalf("runs must be positive and steps non-negative (runs=%d steps=%d)", *runs, *steps)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("Host memory: %d MiB available of %d MiB\n", vm.Available>>20, vm.Total>>20)
	}
	fmt.Printf("Sweeping %d seeds on %dx%d (%d workers, %d steps, drop every %d steps)\n",
		*runs, cfg.Width, cfg.Height, *workers, *steps, factions.DropInterval(cfg))

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := factions.Sweep(ctx, cfg, seeds, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	wins := make([]int, len(cfg.Palette))
	extinct := 0
	for _, res := range results {
		fmt.Printf("seed %-6d pop=%-6d peak=%-6d drops=%-4d %s\n",
			res.Seed, res.Final.Population, res.PeakPopulation, res.Drops, shares(cfg, res.Final))
		if res.Leader < 0 {
			extinct++
			continue
		}
		wins[res.Leader]++
	}

	order := make([]int, len(wins))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return wins[order[i]] > wins[order[j]] })

	fmt.Printf("\nLeaders after %d steps (elapsed %s):\n", *steps, elapsed.Round(time.Millisecond))
	for _, c := range order {
		fmt.Printf("  %-8s %d\n", cfg.Palette[c].Name, wins[c])
	}
	if extinct > 0 {
		fmt.Printf("  %-8s %d\n", "extinct", extinct)
	}
}

func shares(cfg factions.Config, c factions.Census) string {
	out := ""
	for i, s := range cfg.Palette {
		out += fmt.Sprintf(" %s=%5.1f%%", s.Name, 100*c.Share(factions.Color(i)))
	}
	return out
}
