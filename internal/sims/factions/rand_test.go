package factions

// stubRand replays scripted values and falls back to fixed answers once the
// script runs out.
type stubRand struct {
	ints   []int
	floats []float64

	// pick answers IntN after ints is exhausted. Nil means 0.
	pick  func(n int) int
	float float64

	seen []int
}

func (r *stubRand) IntN(n int) int {
	r.seen = append(r.seen, n)
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	if r.pick != nil {
		return r.pick(n)
	}
	return 0
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.float
}

// testConfig returns a small configuration with the reference palette.
func testConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return cfg
}

const (
	blue Color = iota
	red
	yellow
	green
)

// emptyWorld builds a world with every cell dead and colored blue.
func emptyWorld(w, h int, rng *stubRand) *World {
	world := NewWithRand(testConfig(w, h), rng)
	world.Grid().Clear()
	return world
}

func setAlive(w *World, c Color, coords ...[2]int) {
	for _, p := range coords {
		w.Grid().Set(p[0], p[1], Cell{Alive: true, Color: c})
	}
}
