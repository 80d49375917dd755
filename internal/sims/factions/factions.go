package factions

import (
	"time"

	"faction-life/internal/core"
)

// World is a Game of Life population split into colored factions. It owns the
// double-buffered grid and every piece of per-step scratch state; callers
// serialize Step, Reset and the drop methods on a single goroutine.
type World struct {
	name string
	cfg  Config

	grid *Grid
	rng  core.Rand

	// reseed is set when the world owns its RNG and can restart it from a
	// seed. Injected sources are left alone by Reset.
	reseed bool

	colWidth   int
	generation int

	tally   []int
	ties    []Color
	display []uint8
}

// New returns a World with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World seeded from cfg.Seed. The config is assumed
// valid; see Config.Validate.
func NewWithConfig(cfg Config) *World {
	w := NewWithRand(cfg, core.NewRNG(cfg.Seed))
	w.reseed = true
	return w
}

// NewWithRand returns an empty World that draws every random decision from
// rng. Reset keeps using rng rather than reseeding it.
func NewWithRand(cfg Config, rng core.Rand) *World {
	g := NewGrid(cfg.Width, cfg.Height)
	colWidth := 1
	if cfg.Columns > 0 && g.W/cfg.Columns > 1 {
		colWidth = g.W / cfg.Columns
	}
	return &World{
		name:     "factions",
		cfg:      cfg,
		grid:     g,
		rng:      rng,
		colWidth: colWidth,
		tally:    make([]int, len(cfg.Palette)),
		ties:     make([]Color, 0, len(cfg.Palette)),
		display:  make([]uint8, g.W*g.H),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Grid exposes the underlying cell storage.
func (w *World) Grid() *Grid { return w.grid }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Generation reports how many steps have run since the last Reset.
func (w *World) Generation() int { return w.generation }

// StepPeriod is the interval between generations.
func (w *World) StepPeriod() time.Duration { return w.cfg.GenerationPeriod }

// DropPeriod is the interval between random pattern drops.
func (w *World) DropPeriod() time.Duration { return w.cfg.DropPeriod }

// Reset fills the board with a random population. Each cell is alive when a
// draw in [0,1) falls below the configured probability; colors follow the
// configured color mode. A seed of 0 falls back to the configured seed.
func (w *World) Reset(seed int64) {
	if w.reseed {
		if seed == 0 {
			seed = w.cfg.Seed
		}
		w.rng = core.NewRNG(seed)
	}
	w.generation = 0

	eventColor := w.randomColor()
	g := w.grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := eventColor
			if w.cfg.ColorMode != ColorModeEvent {
				c = w.ColorForX(x)
			}
			alive := w.rng.Float64() < w.cfg.LifeProbability
			g.active[g.Index(x, y)] = Cell{Alive: alive, Color: c}
		}
	}
	g.sync()
	w.rebuildDisplay()
}

// ColorForX returns the faction of the initial color band containing x.
func (w *World) ColorForX(x int) Color {
	if x < 0 {
		x = 0
	}
	return Color((x / w.colWidth) % len(w.cfg.Palette))
}

// Step advances the world by one generation.
func (w *World) Step() {
	g := w.grid
	rules := w.cfg.Rules
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := g.Index(x, y)
			live := w.countNeighbors(x, y)
			dominant := w.dominantColor()

			alive := g.active[idx].Alive
			switch {
			case alive && (live < rules.MinLive || live > rules.MaxLive):
				alive = false
			case !alive && live == rules.BirthCount:
				alive = true
			}
			g.setNext(idx, Cell{Alive: alive, Color: dominant})
		}
	}
	g.Swap()
	w.generation++
	w.rebuildDisplay()
}

// countNeighbors scans the Moore neighborhood of (x, y) in the active buffer,
// skipping positions outside the grid. It fills w.tally with the number of
// live neighbors per color and returns the total live count.
func (w *World) countNeighbors(x, y int) int {
	for i := range w.tally {
		w.tally[i] = 0
	}
	g := w.grid
	live := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			n := g.active[ny*g.W+nx]
			if !n.Alive {
				continue
			}
			live++
			if int(n.Color) < len(w.tally) {
				w.tally[n.Color]++
			}
		}
	}
	return live
}

// dominantColor returns the palette color with the highest tally. Ties,
// including the all-zero tally of a cell with no live neighbors, are broken
// uniformly at random.
func (w *World) dominantColor() Color {
	best := 0
	for _, n := range w.tally {
		if n > best {
			best = n
		}
	}
	w.ties = w.ties[:0]
	for c, n := range w.tally {
		if n == best {
			w.ties = append(w.ties, Color(c))
		}
	}
	if len(w.ties) == 1 {
		return w.ties[0]
	}
	return w.ties[w.rng.IntN(len(w.ties))]
}

func (w *World) randomColor() Color {
	return Color(w.rng.IntN(len(w.cfg.Palette)))
}

// dropColor picks the faction for a drop anchored at column x.
func (w *World) dropColor(x int) Color {
	if w.cfg.ColorMode == ColorModeEvent {
		return w.randomColor()
	}
	return w.ColorForX(x)
}

// DropPattern stamps p at (x, y) with color c. Anchors outside the grid are
// ignored.
func (w *World) DropPattern(x, y int, p Pattern, c Color) bool {
	if !w.grid.InBounds(x, y) {
		return false
	}
	Stamp(w.grid, p, x, y, c)
	w.rebuildDisplay()
	return true
}

// DropRandomPattern stamps a randomly chosen library pattern at (x, y).
func (w *World) DropRandomPattern(x, y int, c Color) bool {
	if !w.grid.InBounds(x, y) {
		return false
	}
	return w.DropPattern(x, y, RandomPattern(w.rng), c)
}

// DropRandomPatterns drops n random patterns at uniformly random anchors.
func (w *World) DropRandomPatterns(n int) {
	for i := 0; i < n; i++ {
		x := w.rng.IntN(w.grid.W)
		y := w.rng.IntN(w.grid.H)
		w.DropRandomPattern(x, y, w.dropColor(x))
	}
}

// DropRandom drops the configured number of random patterns.
func (w *World) DropRandom() { w.DropRandomPatterns(w.cfg.DropCount) }

// HandleInput drops a random pattern at a tapped cell. Coordinates outside
// the grid are ignored.
func (w *World) HandleInput(x, y int) bool {
	if !w.grid.InBounds(x, y) {
		return false
	}
	return w.DropRandomPattern(x, y, w.dropColor(x))
}

func init() {
	core.Register("factions", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		w := NewWithConfig(c)
		return w, nil
	})
	core.Register("factions-event", func(cfg map[string]string) (core.Sim, error) {
		merged := map[string]string{"color_mode": string(ColorModeEvent)}
		for k, v := range cfg {
			merged[k] = v
		}
		c, err := FromMap(merged)
		if err != nil {
			return nil, err
		}
		w := NewWithConfig(c)
		w.name = "factions-event"
		return w, nil
	})
}
