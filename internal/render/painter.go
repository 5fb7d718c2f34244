//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data and
// blits it scaled so each cell covers cellSize×cellSize pixels.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h. Zero-area
// grids yield a painter whose Blit is a no-op.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, cellSize int) {
	if gp.img == nil || len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
