package factions

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a faction identity: an index into the configured palette.
type Color uint8

// Cell is one grid position. Color is kept even when the cell is dead and is
// what the cell shows the next time it comes alive.
type Cell struct {
	Alive bool
	Color Color
}

// Swatch names a palette entry.
type Swatch struct {
	Name string
	RGBA color.RGBA
}

// Reference palette.
var (
	Blue   = Swatch{Name: "blue", RGBA: color.RGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF}}
	Red    = Swatch{Name: "red", RGBA: color.RGBA{R: 0xDB, G: 0x44, B: 0x37, A: 0xFF}}
	Yellow = Swatch{Name: "yellow", RGBA: color.RGBA{R: 0xF4, G: 0xB4, B: 0x00, A: 0xFF}}
	Green  = Swatch{Name: "green", RGBA: color.RGBA{R: 0x0F, G: 0x9D, B: 0x58, A: 0xFF}}
)

// maxPaletteSize keeps color+1 representable in a display byte.
const maxPaletteSize = 255

// DefaultPalette returns the four reference factions in their canonical order.
func DefaultPalette() []Swatch {
	return []Swatch{Blue, Red, Yellow, Green}
}

// ParsePalette reads a comma separated list of "#RRGGBB" values, optionally
// prefixed with a name ("red=#DB4437").
func ParsePalette(s string) ([]Swatch, error) {
	var out []Swatch
	for i, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name := "c" + strconv.Itoa(len(out))
		if k, v, ok := strings.Cut(raw, "="); ok {
			name, raw = strings.TrimSpace(k), strings.TrimSpace(v)
		}
		rgba, err := parseHex(raw)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		out = append(out, Swatch{Name: name, RGBA: rgba})
	}
	return out, nil
}

// FormatPalette is the inverse of ParsePalette.
func FormatPalette(p []Swatch) string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = fmt.Sprintf("%s=#%02X%02X%02X", s.Name, s.RGBA.R, s.RGBA.G, s.RGBA.B)
	}
	return strings.Join(parts, ",")
}

func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
