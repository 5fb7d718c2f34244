//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Overlay paints the status line and key legend on top of the board.
type Overlay struct {
	face font.Face
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{face: basicfont.Face7x13}
}

// Draw renders the status text onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, status string, cellSize int) {
	bounds := screen.Bounds()
	x, topY, bottomY := TextOffsets(bounds.Dx(), bounds.Dy(), cellSize)
	text.Draw(screen, status, o.face, x, topY, color.White)
	text.Draw(screen, Legend, o.face, x, bottomY, color.White)
}
