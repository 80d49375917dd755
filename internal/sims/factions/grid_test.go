package factions

import "testing"

func TestGridRejectsOutOfRange(t *testing.T) {
	g := NewGrid(3, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if g.Set(p[0], p[1], Cell{Alive: true}) {
			t.Fatalf("Set(%d,%d) should be rejected", p[0], p[1])
		}
		if _, ok := g.Get(p[0], p[1]); ok {
			t.Fatalf("Get(%d,%d) should be rejected", p[0], p[1])
		}
	}
	g.ForEach(func(x, y int, c Cell) {
		if c.Alive {
			t.Fatalf("rejected write leaked into (%d,%d)", x, y)
		}
	})
}

func TestGridSwapExposesScratch(t *testing.T) {
	g := NewGrid(2, 2)
	oldScratch := &g.scratch[0]

	g.setNext(g.Index(1, 0), Cell{Alive: true, Color: yellow})
	g.Swap()

	if &g.active[0] != oldScratch {
		t.Fatal("Swap must exchange buffers rather than copy them")
	}
	got, _ := g.Get(1, 0)
	if got != (Cell{Alive: true, Color: yellow}) {
		t.Fatalf("expected swapped-in cell, got %+v", got)
	}

	// The recycled buffer still holds generation zero. Writing a full
	// generation into it must hide that content after the next swap.
	g.Set(0, 0, Cell{Alive: true, Color: red})
	for i := range g.scratch {
		g.setNext(i, Cell{Color: green})
	}
	g.Swap()
	g.ForEach(func(x, y int, c Cell) {
		if c != (Cell{Color: green}) {
			t.Fatalf("stale cell at (%d,%d): %+v", x, y, c)
		}
	})
}

func TestGridForEachRowMajor(t *testing.T) {
	g := NewGrid(3, 2)
	var order [][2]int
	g.ForEach(func(x, y int, _ Cell) {
		order = append(order, [2]int{x, y})
	})
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(order) != len(want) {
		t.Fatalf("visited %d cells, expected %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visit %d was %v, expected %v", i, order[i], want[i])
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}
