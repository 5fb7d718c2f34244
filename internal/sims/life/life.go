package life

import (
	"strconv"

	"golife/internal/core"
)

const (
	dead  = 0
	alive = 1
)

// spawnSaturation is the odds value at which random revival stops firing.
// Each revival lengthens the odds by one, so spawning gets rarer over the
// session until it saturates here.
const spawnSaturation = 1000

// Grid implements Conway's Game of Life on a finite, non-wrapping board,
// with an optional random-revival mode for dead cells.
type Grid struct {
	w, h       int
	cur        *core.ByteGrid
	nxt        *core.ByteGrid
	aliveCount int
	spawning   bool
	lifeChance int
	rng        *core.RNG
}

// New returns a Life grid with the provided dimensions and all cells dead.
func New(w, h int) *Grid {
	return &Grid{
		w:          w,
		h:          h,
		cur:        core.NewByteGrid(w, h),
		nxt:        core.NewByteGrid(w, h),
		lifeChance: 1,
		rng:        core.NewRNG(0),
	}
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the current generation's values.
func (g *Grid) Cells() []uint8 { return g.cur.Cells() }

// AliveCount returns the number of live cells in the current generation.
func (g *Grid) AliveCount() int { return g.aliveCount }

// SetSpawning turns the random-revival mode on or off.
func (g *Grid) SetSpawning(on bool) { g.spawning = on }

// Spawning reports whether random revival is enabled.
func (g *Grid) Spawning() bool { return g.spawning }

// Reset reseeds the revival RNG and kills every cell. The revival odds
// start over at even.
func (g *Grid) Reset(seed int64) {
	g.rng = core.NewRNG(seed)
	g.cur.Clear()
	g.nxt.Clear()
	g.aliveCount = 0
	g.lifeChance = 1
}

// ToggleCell flips the cell at (x, y) in the current generation and keeps
// the alive count in step. Out-of-bounds coordinates are ignored.
func (g *Grid) ToggleCell(x, y int) {
	if !g.cur.InBounds(x, y) {
		return
	}
	idx := g.cur.Index(x, y)
	cells := g.cur.Cells()
	if cells[idx] == alive {
		cells[idx] = dead
		g.aliveCount--
		return
	}
	cells[idx] = alive
	g.aliveCount++
}

// Step advances the simulation by one generation. Every cell is decided
// against the current generation: live cells survive on 2 or 3 neighbors,
// dead cells are born on exactly 3. With spawning enabled, a dead cell may
// additionally be revived by a 1-in-lifeChance draw; the revival is written
// into the generation being scanned, so cells later in the pass observe it
// as a live neighbor within this same tick.
func (g *Grid) Step() {
	w, h := g.w, g.h
	cur := g.cur.Cells()
	nxt := g.nxt.Cells()
	count := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			neighbors := g.cur.Neighbors(x, y)
			if cur[idx] == alive {
				if neighbors == 2 || neighbors == 3 {
					nxt[idx] = alive
				} else {
					nxt[idx] = dead
				}
			} else {
				if neighbors == 3 {
					nxt[idx] = alive
				} else {
					nxt[idx] = dead
				}
				if g.spawning && g.lifeChance < spawnSaturation && g.rng.IntN(g.lifeChance) == 0 {
					cur[idx] = alive
					g.lifeChance++
				}
			}
			if nxt[idx] == alive {
				count++
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.aliveCount = count
}

func intOption(cfg map[string]string, key string, def int) int {
	if v, ok := cfg[key]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		w := intOption(cfg, "width", 100)
		h := intOption(cfg, "height", 100)
		return New(w, h)
	})
}
