package factions

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid factions config")

// ColorMode selects how seeding and pattern drops pick a faction.
type ColorMode string

const (
	// ColorModeColumns bands the grid into vertical columns, each with the
	// next palette color. Seeding and drops take the color of their column.
	ColorModeColumns ColorMode = "columns"
	// ColorModeEvent gives the whole seed one random color and each drop
	// event its own random color.
	ColorModeEvent ColorMode = "event"
)

// Rules holds the Game of Life thresholds.
type Rules struct {
	MinLive    int
	MaxLive    int
	BirthCount int
}

// Config controls the faction simulation.
type Config struct {
	Width  int
	Height int

	// Columns is the number of initial color bands.
	Columns int
	Palette []Swatch
	Rules   Rules

	LifeProbability float64

	GenerationPeriod time.Duration
	DropPeriod       time.Duration
	DropCount        int

	ColorMode ColorMode
	Seed      int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            256,
		Height:           128,
		Columns:          4,
		Palette:          DefaultPalette(),
		Rules:            Rules{MinLive: 2, MaxLive: 3, BirthCount: 3},
		LifeProbability:  0.5,
		GenerationPeriod: 42 * time.Millisecond,
		DropPeriod:       time.Second,
		DropCount:        4,
		ColorMode:        ColorModeColumns,
		Seed:             1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys are ignored; malformed values are errors.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"w", &c.Width},
		{"h", &c.Height},
		{"columns", &c.Columns},
		{"min_live", &c.Rules.MinLive},
		{"max_live", &c.Rules.MaxLive},
		{"birth", &c.Rules.BirthCount},
		{"drop_count", &c.DropCount},
	}
	for _, f := range ints {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, f.key, v, err)
		}
		*f.dst = parsed
	}
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"generation_ms", &c.GenerationPeriod},
		{"drop_ms", &c.DropPeriod},
	}
	for _, f := range durations {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, f.key, v, err)
		}
		*f.dst = time.Duration(parsed) * time.Millisecond
	}
	if v, ok := cfg["life_probability"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: life_probability=%q: %v", ErrInvalidConfig, v, err)
		}
		c.LifeProbability = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["palette"]; ok {
		p, err := ParsePalette(v)
		if err != nil {
			return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		c.Palette = p
	}
	if v, ok := cfg["color_mode"]; ok {
		c.ColorMode = ColorMode(v)
	}
	return c, c.Validate()
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	case len(c.Palette) > maxPaletteSize:
		return fmt.Errorf("%w: palette has %d entries, max %d", ErrInvalidConfig, len(c.Palette), maxPaletteSize)
	case c.Columns <= 0:
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidConfig, c.Columns)
	case c.Rules.MinLive < 0 || c.Rules.MaxLive < c.Rules.MinLive || c.Rules.MaxLive > 8:
		return fmt.Errorf("%w: survival range [%d,%d] outside [0,8]", ErrInvalidConfig, c.Rules.MinLive, c.Rules.MaxLive)
	case c.Rules.BirthCount < 0 || c.Rules.BirthCount > 8:
		return fmt.Errorf("%w: birth count %d outside [0,8]", ErrInvalidConfig, c.Rules.BirthCount)
	case math.IsNaN(c.LifeProbability) || c.LifeProbability < 0 || c.LifeProbability > 1:
		return fmt.Errorf("%w: life probability %g outside [0,1]", ErrInvalidConfig, c.LifeProbability)
	case c.GenerationPeriod <= 0 || c.DropPeriod <= 0:
		return fmt.Errorf("%w: periods must be positive", ErrInvalidConfig)
	case c.DropCount < 0:
		return fmt.Errorf("%w: drop count %d is negative", ErrInvalidConfig, c.DropCount)
	}
	switch c.ColorMode {
	case ColorModeColumns, ColorModeEvent:
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalidConfig, c.ColorMode)
	}
	return nil
}
