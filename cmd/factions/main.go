//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"faction-life/internal/app"
	_ "faction-life/internal/sims/factions"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()
	log.Printf("running %s on a %dx%d grid (seed %d)", sim.Name(), size.W, size.H, cfg.Seed)

	ebiten.SetWindowTitle("faction-life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
