package life

import (
	"crypto/md5"
	"encoding/hex"
	"slices"

	"life-editor/internal/core"
)

// neighborhood lists the eight Moore-neighborhood offsets.
var neighborhood = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Engine implements Conway's Game of Life on a hard-edged board. It keeps two
// boards: cur is authoritative and nxt is scratch that stays all Dead between
// calls to Advance.
type Engine struct {
	cur        *core.Board
	nxt        *core.Board
	generation int
}

// New returns an Engine with an all-Dead board of the provided dimensions.
func New(w, h int) *Engine {
	return &Engine{cur: core.NewBoard(w, h), nxt: core.NewBoard(w, h)}
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// Generation reports how many generations have been computed since the board
// was last cleared or reseeded.
func (e *Engine) Generation() int { return e.generation }

// Population counts live cells on the current board.
func (e *Engine) Population() int { return e.cur.Alive() }

// Cell reads the current board. Off-board positions are Dead.
func (e *Engine) Cell(x, y int) core.Cell { return e.cur.At(x, y) }

// SetCell writes directly to the current board. Callers are expected to pass
// in-bounds coordinates; anything else is dropped.
func (e *Engine) SetCell(x, y int, c core.Cell) { e.cur.Set(x, y, c) }

// CountNeighbors returns the number of live cells around (x, y) on the current
// board. Offsets that leave the board contribute nothing.
func (e *Engine) CountNeighbors(x, y int) int {
	n := 0
	for _, d := range neighborhood {
		nx, ny := x+d[0], y+d[1]
		if !e.cur.InBounds(nx, ny) {
			continue
		}
		if e.cur.Cells()[e.cur.Index(nx, ny)] == core.Alive {
			n++
		}
	}
	return n
}

// Advance computes one generation from the current board into the scratch
// board, swaps the two and clears the new scratch.
func (e *Engine) Advance() {
	w, h := e.cur.W, e.cur.H
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	for y := range h {
		for x := range w {
			idx := y*w + x
			nxt[idx] = Rule(cur[idx], e.CountNeighbors(x, y))
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.nxt.Clear()
	e.generation++
}

// Rule applies the B3/S23 transition to a single cell.
func Rule(c core.Cell, neighbors int) core.Cell {
	switch {
	case c == core.Alive && (neighbors == 2 || neighbors == 3):
		return core.Alive
	case c == core.Dead && neighbors == 3:
		return core.Alive
	default:
		return core.Dead
	}
}

// Clear kills every cell and resets the generation counter.
func (e *Engine) Clear() {
	e.cur.Clear()
	e.nxt.Clear()
	e.generation = 0
}

// Randomize reseeds the board so each cell is alive with the given density.
func (e *Engine) Randomize(seed int64, density float64) {
	core.NewRNG(seed).FillDensity(e.cur.Cells(), density)
	e.nxt.Clear()
	e.generation = 0
}

// Hash fingerprints the current board for cycle detection.
func (e *Engine) Hash() string {
	cells := e.cur.Cells()
	buf := make([]byte, len(cells))
	for i, c := range cells {
		buf[i] = byte(c)
	}
	sum := md5.Sum(buf)
	return hex.EncodeToString(sum[:])
}

// Snapshot returns a read-only copy of the current board.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		size:       e.cur.Size(),
		cells:      slices.Clone(e.cur.Cells()),
		generation: e.generation,
	}
}

// Snapshot is an immutable view of one generation handed to renderers.
type Snapshot struct {
	size       core.Size
	cells      []core.Cell
	generation int
}

// Size returns the snapshot dimensions.
func (s Snapshot) Size() core.Size { return s.size }

// Generation is the engine generation the snapshot was taken at.
func (s Snapshot) Generation() int { return s.generation }

// At returns the cell at (x, y), or Dead when the position is off the board.
func (s Snapshot) At(x, y int) core.Cell {
	if x < 0 || x >= s.size.W || y < 0 || y >= s.size.H {
		return core.Dead
	}
	return s.cells[y*s.size.W+x]
}

// Population counts live cells in the snapshot.
func (s Snapshot) Population() int {
	n := 0
	for _, c := range s.cells {
		if c == core.Alive {
			n++
		}
	}
	return n
}

// AppendCells appends the snapshot's row-major cells to dst.
func (s Snapshot) AppendCells(dst []core.Cell) []core.Cell {
	return append(dst, s.cells...)
}
