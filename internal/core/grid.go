package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// The grid is finite: coordinates outside it are simply not cells, there is
// no toroidal wrapping.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Negative
// dimensions are treated as zero; a zero-area grid holds no cells.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies on the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the value at (x, y), or zero when out of bounds.
func (g *ByteGrid) Get(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[y*g.W+x]
}

// Set writes the value at (x, y). Out-of-bounds writes are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Neighbors counts the non-zero cells in the Moore neighborhood of (x, y).
// Positions beyond the grid edge count as dead, so corner cells see at most
// three neighbors.
func (g *ByteGrid) Neighbors(x, y int) int {
	minX := max(0, x-1)
	maxX := min(g.W-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.H-1, y+1)

	count := 0
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.data[ny*g.W+nx] != 0 {
				count++
			}
		}
	}
	return count
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
