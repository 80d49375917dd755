package factions

import (
	"image/color"
	"strconv"

	"faction-life/internal/core"
)

// displayDead is the display value of a dead cell; live cells encode their
// color as color+1.
const displayDead = 0

var deadColor = color.RGBA{A: 0xFF}

// Cells exposes the display buffer: one byte per cell in row-major order.
func (w *World) Cells() []uint8 { return w.display }

// Palette maps display values to colors. Index 0 is black for dead cells.
func (w *World) Palette() []color.RGBA {
	out := make([]color.RGBA, 0, len(w.cfg.Palette)+1)
	out = append(out, deadColor)
	for _, s := range w.cfg.Palette {
		out = append(out, s.RGBA)
	}
	return out
}

func encodeDisplayValue(c Cell) uint8 {
	if !c.Alive {
		return displayDead
	}
	return uint8(c.Color) + 1
}

func (w *World) rebuildDisplay() {
	for i, c := range w.grid.active {
		w.display[i] = encodeDisplayValue(c)
	}
}

// Census summarizes the live population of each faction.
type Census struct {
	Generation int
	Population int
	// Alive is indexed by Color.
	Alive []int
}

// Share returns the fraction of the live population held by c.
func (s Census) Share(c Color) float64 {
	if s.Population == 0 || int(c) >= len(s.Alive) {
		return 0
	}
	return float64(s.Alive[c]) / float64(s.Population)
}

// Census counts live cells per faction in the active buffer.
func (w *World) Census() Census {
	s := Census{Generation: w.generation, Alive: make([]int, len(w.cfg.Palette))}
	for _, c := range w.grid.active {
		if !c.Alive {
			continue
		}
		s.Population++
		if int(c.Color) < len(s.Alive) {
			s.Alive[c.Color]++
		}
	}
	return s
}

// Parameters describes the configuration the world is running with.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				int64Param("seed", "Seed", cfg.Seed),
				intParam("generation", "Generation", w.generation),
			},
		},
		{
			Name: "Factions",
			Params: []core.Parameter{
				intParam("columns", "Columns", cfg.Columns),
				stringParam("color_mode", "Color mode", string(cfg.ColorMode)),
				stringParam("palette", "Palette", FormatPalette(cfg.Palette)),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				intParam("min_live", "Min live", cfg.Rules.MinLive),
				intParam("max_live", "Max live", cfg.Rules.MaxLive),
				intParam("birth", "Birth count", cfg.Rules.BirthCount),
				floatParam("life_probability", "Seed density", cfg.LifeProbability),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam("generation_ms", "Generation ms", int(cfg.GenerationPeriod.Milliseconds())),
				intParam("drop_ms", "Drop ms", int(cfg.DropPeriod.Milliseconds())),
				intParam("drop_count", "Drops per period", cfg.DropCount),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
