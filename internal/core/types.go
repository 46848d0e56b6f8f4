package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated and cleared boards are empty.
	Dead Cell = iota
	// Alive marks a live cell.
	Alive
)

// String returns a short human readable name for the cell state.
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
