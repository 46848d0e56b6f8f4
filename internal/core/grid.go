package core

// Board stores a fixed-size 2D grid of cells in row-major order. Positions
// outside [0, W) x [0, H) are not wrapped; they read as Dead and ignore writes.
type Board struct {
	W, H  int
	cells []Cell
}

// NewBoard allocates an all-Dead board with the given dimensions.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Board{W: w, H: h, cells: make([]Cell, w*h)}
}

// Size returns the board dimensions.
func (b *Board) Size() Size { return Size{W: b.W, H: b.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []Cell { return b.cells }

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.W + x }

// InBounds reports whether (x, y) addresses a cell on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y), or Dead when the position is off the board.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Dead
	}
	return b.cells[b.Index(x, y)]
}

// Set writes the cell at (x, y). Off-board writes are dropped.
func (b *Board) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.Index(x, y)] = c
}

// Clear resets every cell to Dead.
func (b *Board) Clear() {
	clear(b.cells)
}

// Alive counts the live cells on the board.
func (b *Board) Alive() int {
	n := 0
	for _, c := range b.cells {
		if c == Alive {
			n++
		}
	}
	return n
}
