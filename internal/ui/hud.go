//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"faction-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view: the
// live population per palette entry and the sim's startup parameters.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string

	snapshot core.ParameterSnapshot
	counts   []int
	palette  []color.RGBA
	total    int
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// zero width disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if p, ok := sim.(core.PaletteProvider); ok {
		h.palette = p.Palette()
	}
	h.counts = make([]int, len(h.palette))
	return h
}

// Update refreshes the cached parameter snapshot and population counts.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.total = countValues(h.sim.Cells(), h.counts)
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)

	y += lineHeight
	text.Draw(h.panel, fmt.Sprintf("population %d", h.total), face, panelPadding, y, labelColor)
	y = h.drawFactions(y + 6)

	for _, group := range h.snapshot.Groups {
		y += lineHeight / 2
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		for _, p := range group.Params {
			y += lineHeight
			if y > height-panelPadding {
				break
			}
			line := fitWidth(p.Label+": "+p.Value, h.width-2*panelPadding)
			text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// drawFactions draws one share bar per non-background palette entry and
// returns the baseline below the last bar.
func (h *HUD) drawFactions(y int) int {
	barMax := float32(h.width - 2*panelPadding - countColumn)
	for i := 1; i < len(h.palette); i++ {
		share := float32(0)
		if h.total > 0 {
			share = float32(h.counts[i]) / float32(h.total)
		}
		vector.DrawFilledRect(h.panel, panelPadding, float32(y), barMax, barHeight, trackColor, false)
		vector.DrawFilledRect(h.panel, panelPadding, float32(y), barMax*share, barHeight, h.palette[i], false)
		label := fmt.Sprintf("%d", h.counts[i])
		text.Draw(h.panel, label, basicfont.Face7x13, h.width-panelPadding-countColumn+6, y+barHeight, labelColor)
		y += barHeight + 4
	}
	return y + lineHeight
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	return strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:]
}

// fitWidth truncates s so it fits in px pixels of the 7x13 face.
func fitWidth(s string, px int) string {
	limit := px / 7
	if limit <= 3 || len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	trackColor = color.RGBA{R: 40, G: 42, B: 48, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	barHeight      = 10
	countColumn    = 56
)
