package app

import "faction-life/internal/core"

// NewSim builds the sim named in cfg with its overrides and seeds the first
// population. A zero Seed defers to the sim's own configured seed.
func NewSim(cfg *Config) (core.Sim, error) {
	overrides, err := cfg.Overrides.Map()
	if err != nil {
		return nil, err
	}
	sim, err := core.New(cfg.Sim, overrides)
	if err != nil {
		return nil, err
	}
	sim.Reset(cfg.Seed)
	return sim, nil
}
