package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{A: 0xFF},
		{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF},
		{R: 0xDB, G: 0x44, B: 0x37, A: 0xFF},
	}
	cells := []uint8{0, 1, 2, 9}
	buf := make([]byte, len(cells)*4)
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		0, 0, 0, 0xFF,
		0x42, 0x85, 0xF4, 0xFF,
		0xDB, 0x44, 0x37, 0xFF,
		0xDB, 0x44, 0x37, 0xFF,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("unexpected pixels %v", buf)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{1, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %d", i, b)
		}
	}
}

func TestPaletteOrDefault(t *testing.T) {
	if got := PaletteOrDefault(nil); len(got) != 2 {
		t.Fatalf("expected binary fallback, got %v", got)
	}
	p := []color.RGBA{{R: 1}}
	if got := PaletteOrDefault(p); &got[0] != &p[0] {
		t.Fatal("non-empty palette should be returned as-is")
	}
}
