package core

import (
	"fmt"
	"image/color"
	"sort"
	"time"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) addresses a cell inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider maps the values returned by Cells to display colors.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Scheduler exposes the periods at which a driver should fire the
// generation step and the random pattern drop.
type Scheduler interface {
	StepPeriod() time.Duration
	DropPeriod() time.Duration
}

// Dropper injects exogenous patterns between steps.
type Dropper interface {
	DropRandom()
}

// InputHandler reacts to a user tap at grid coordinates. It reports whether
// the input was accepted; out-of-range coordinates are ignored.
type InputHandler interface {
	HandleInput(x, y int) bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New looks up a registered factory and builds the sim.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", name, Names())
	}
	sim, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("build sim %q: %w", name, err)
	}
	return sim, nil
}
