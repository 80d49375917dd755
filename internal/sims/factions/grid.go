package factions

// Grid stores two row-major cell buffers of identical shape. Readers see the
// active buffer; the engine writes the next generation into scratch and then
// swaps the two.
type Grid struct {
	W, H    int
	active  []Cell
	scratch []Cell
}

// NewGrid allocates a grid with the given dimensions. Callers validate the
// dimensions; non-positive values are raised to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, active: make([]Cell, w*h), scratch: make([]Cell, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Get returns the active cell at (x, y). The second result is false for
// out-of-range coordinates.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.active[g.Index(x, y)], true
}

// Set overwrites the active cell at (x, y). Out-of-range writes are rejected
// and leave the grid untouched.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.active[g.Index(x, y)] = c
	return true
}

// ForEach visits every active cell in row-major order.
func (g *Grid) ForEach(visit func(x, y int, c Cell)) {
	for y := 0; y < g.H; y++ {
		row := g.active[y*g.W : (y+1)*g.W]
		for x, c := range row {
			visit(x, y, c)
		}
	}
}

// Cells exposes the active buffer.
func (g *Grid) Cells() []Cell { return g.active }

// Swap makes scratch the active buffer and recycles the old active buffer as
// the next write target.
func (g *Grid) Swap() {
	g.active, g.scratch = g.scratch, g.active
}

// setNext writes into the scratch buffer. Coordinates are trusted.
func (g *Grid) setNext(idx int, c Cell) { g.scratch[idx] = c }

// sync copies active into scratch so both buffers hold the same snapshot.
func (g *Grid) sync() { copy(g.scratch, g.active) }

// Clear kills every cell in both buffers and resets their color.
func (g *Grid) Clear() {
	for i := range g.active {
		g.active[i] = Cell{}
	}
	g.sync()
}
