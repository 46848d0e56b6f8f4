//go:build ebiten

package render

import (
	"image/color"

	"life-editor/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image based on cell data.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	lines []Line
}

// NewGridPainter allocates a painter for a grid of size w*h drawn at
// cellSize pixels per cell.
func NewGridPainter(size core.Size, cellSize int) *GridPainter {
	gp := &GridPainter{w: size.W, h: size.H, buf: make([]byte, 4*size.W*size.H)}
	gp.img = ebiten.NewImage(size.W, size.H)
	gp.lines = GridLines(size, cellSize)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Cell, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines strokes the cell boundaries on dst.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, clr color.Color) {
	for _, l := range gp.lines {
		vector.StrokeLine(dst, l.X0, l.Y0, l.X1, l.Y1, 1, clr, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
