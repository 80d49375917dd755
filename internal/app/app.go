//go:build ebiten

package app

import (
	"image/color"
	"time"

	"faction-life/internal/core"
	"faction-life/internal/render"
	"faction-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. The generation
// step and the random pattern drop run on two independent timers; both fire
// from Update, so every mutation of the sim happens on the game goroutine.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	stepTimer *core.FixedStep
	dropTimer *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64

	touches []ebiten.TouchID
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:       sim,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(sim, cfg.HUDWidth),
		stepTimer: core.NewFixedStep(cfg.TPS),
		scale:     cfg.Scale,
		hudWidth:  cfg.HUDWidth,
		seed:      cfg.Seed,
	}
	if s, ok := sim.(core.Scheduler); ok {
		g.stepTimer = core.NewFixedPeriod(s.StepPeriod())
		if _, ok := sim.(core.Dropper); ok {
			g.dropTimer = core.NewFixedPeriod(s.DropPeriod())
		}
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if d, ok := g.sim.(core.Dropper); ok && inpututil.IsKeyJustPressed(ebiten.KeyD) {
		d.DropRandom()
	}

	g.handlePointer()

	if g.hud != nil {
		g.hud.Update()
	}

	stepDue := g.stepTimer.ShouldStep()
	dropDue := g.dropTimer != nil && g.dropTimer.ShouldStep()
	if g.paused && !g.tickOnce {
		return nil
	}
	if dropDue {
		g.sim.(core.Dropper).DropRandom()
	}
	if stepDue || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// handlePointer forwards mouse clicks and new touches to the sim.
func (g *Game) handlePointer() {
	h, ok := g.sim.(core.InputHandler)
	if !ok {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y, ok := g.screenToGrid(ebiten.CursorPosition()); ok {
			h.HandleInput(x, y)
		}
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		if x, y, ok := g.screenToGrid(ebiten.TouchPosition(id)); ok {
			h.HandleInput(x, y)
		}
	}
}

// screenToGrid maps screen pixels to grid cells. Points on the HUD or
// outside the window are rejected.
func (g *Game) screenToGrid(sx, sy int) (int, int, bool) {
	if sx < 0 || sy < 0 || g.scale <= 0 {
		return 0, 0, false
	}
	x, y := sx/g.scale, sy/g.scale
	return x, y, g.sim.Size().Contains(x, y)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var palette []color.RGBA
	if p, ok := g.sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
