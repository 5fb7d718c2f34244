//go:build ebiten

package app

import (
	"image/color"

	"golife/internal/core"
	"golife/internal/render"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface and drives one
// interactive session: keyboard events mutate the session or the sim, the
// held mouse button toggles cells, and the sim advances only while running.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	session *core.Session

	onColor  color.Color
	offColor color.Color

	cellSize int
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cellSize int, session *core.Session, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(),
		session:  session,
		onColor:  color.White,
		offColor: color.Black,
		cellSize: cellSize,
		seed:     seed,
	}
}

// Reset clears the simulation back to its startup state.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and conditionally advances the simulation.
// Ebiten calls it at the session's current tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		ebiten.SetTPS(g.session.Faster())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		ebiten.SetTPS(g.session.Slower())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if latch, ok := g.sim.(core.SpawnLatch); ok {
			latch.SetSpawning(!latch.Spawning())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}

	g.applyMouse()

	if !g.session.Paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// applyMouse toggles the cell under the cursor while the left button is
// held. It fires on every polled frame, so a resting cursor flickers its
// cell at the tick rate; this matches the interaction model rather than
// debouncing it.
func (g *Game) applyMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	toggler, ok := g.sim.(core.CellToggler)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return
	}
	toggler.ToggleCell(mx/g.cellSize, my/g.cellSize)
}

// Draw renders the current generation and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.cellSize)

	aliveCount := 0
	if counter, ok := g.sim.(core.AliveCounter); ok {
		aliveCount = counter.AliveCount()
	}
	spawning := false
	if latch, ok := g.sim.(core.SpawnLatch); ok {
		spawning = latch.Spawning()
	}
	status := ui.StatusLine(g.session.Paused, aliveCount, g.session.Speed, spawning)
	g.overlay.Draw(screen, status, g.cellSize)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sim.Size()
	return size.W * g.cellSize, size.H * g.cellSize
}
