package factions

import "faction-life/internal/core"

// Pattern is an immutable boolean stencil. i runs along x and j along y.
type Pattern struct {
	Name string
	W, H int
	bits []bool
}

func newPattern(name string, w, h int, alive ...[2]int) Pattern {
	p := Pattern{Name: name, W: w, H: h, bits: make([]bool, w*h)}
	for _, c := range alive {
		p.bits[c[1]*w+c[0]] = true
	}
	return p
}

// At reports whether stencil cell (i, j) is alive. Outside the stencil it is
// always false.
func (p Pattern) At(i, j int) bool {
	if i < 0 || j < 0 || i >= p.W || j >= p.H {
		return false
	}
	return p.bits[j*p.W+i]
}

// Population counts the live stencil cells.
func (p Pattern) Population() int {
	n := 0
	for _, b := range p.bits {
		if b {
			n++
		}
	}
	return n
}

var (
	// Glider travels diagonally.
	Glider = newPattern("glider", 3, 3,
		[2]int{0, 0}, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1})

	SmallExploder = newPattern("small-exploder", 3, 4,
		[2]int{0, 1}, [2]int{0, 2},
		[2]int{1, 0}, [2]int{1, 1}, [2]int{1, 3},
		[2]int{2, 1}, [2]int{2, 2})

	BigExploder = newPattern("big-exploder", 5, 5,
		[2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4},
		[2]int{2, 0}, [2]int{2, 4},
		[2]int{4, 0}, [2]int{4, 1}, [2]int{4, 2}, [2]int{4, 3}, [2]int{4, 4})
)

var library = []Pattern{Glider, SmallExploder, BigExploder}

// PatternCount returns the number of patterns in the library.
func PatternCount() int { return len(library) }

// PatternAt returns the i-th library pattern.
func PatternAt(i int) (Pattern, bool) {
	if i < 0 || i >= len(library) {
		return Pattern{}, false
	}
	return library[i], true
}

// PatternByName looks a pattern up by its name.
func PatternByName(name string) (Pattern, bool) {
	for _, p := range library {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// RandomPattern picks a library pattern uniformly.
func RandomPattern(rng core.Rand) Pattern {
	return library[rng.IntN(len(library))]
}

// Stamp writes p onto the active buffer of g with its top-left corner at
// (x0, y0). Every in-bounds stencil cell takes the stencil's life state and
// the given color, dead stencil cells included. Stencil cells that fall
// outside the grid are skipped. It returns the number of cells written.
func Stamp(g *Grid, p Pattern, x0, y0 int, c Color) int {
	written := 0
	for i := 0; i < p.W; i++ {
		for j := 0; j < p.H; j++ {
			if g.Set(x0+i, y0+j, Cell{Alive: p.At(i, j), Color: c}) {
				written++
			}
		}
	}
	return written
}
