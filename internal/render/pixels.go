package render

import (
	"image/color"

	"life-editor/internal/core"
)

// fillBinaryRGBA converts cell data into RGBA pixels in buf, one pixel per cell.
func fillBinaryRGBA(buf []byte, cells []core.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == core.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Line is a segment in screen pixels.
type Line struct {
	X0, Y0, X1, Y1 float32
}

// GridLines returns the cell boundary lines for a w x h grid drawn at
// cellSize pixels per cell. Lines sit on the left and top edge of each
// column and row.
func GridLines(size core.Size, cellSize int) []Line {
	if cellSize <= 0 || size.W <= 0 || size.H <= 0 {
		return nil
	}
	width := float32(size.W * cellSize)
	height := float32(size.H * cellSize)
	lines := make([]Line, 0, size.W+size.H)
	for i := 0; i < size.W; i++ {
		x := float32(i * cellSize)
		lines = append(lines, Line{X0: x, Y0: 0, X1: x, Y1: height})
	}
	for i := 0; i < size.H; i++ {
		y := float32(i * cellSize)
		lines = append(lines, Line{X0: 0, Y0: y, X1: width, Y1: y})
	}
	return lines
}
