package editor

import (
	"math"

	"life-editor/internal/core"
)

// Point is a cursor position in window pixels.
type Point struct {
	X, Y float64
}

// Board is the mutation surface the controller drives. *life.Engine
// satisfies it.
type Board interface {
	Size() core.Size
	SetCell(x, y int, c core.Cell)
	Clear()
	Randomize(seed int64, density float64)
	Advance()
}

// Options configures a Controller.
type Options struct {
	// CellSize is the edge length of one cell in pixels.
	CellSize int
	// Density is the live-cell probability used when randomizing.
	Density float64
}

// Controller tracks the editor/simulation mode and turns abstract input
// signals into board writes. Signals are buffered until HandleAction drains
// them once per interaction tick.
type Controller struct {
	opts Options

	mode Mode
	sub  SubMode

	action   Action
	points   []Point
	commands []command
}

// New returns a Controller in ModeEditor/SubModeDrawing.
func New(opts Options) *Controller {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.Density < 0 || opts.Density > 1 {
		opts.Density = 0.25
	}
	return &Controller{opts: opts, mode: ModeEditor, sub: SubModeDrawing}
}

// Mode returns the current top-level mode.
func (c *Controller) Mode() Mode { return c.mode }

// SubMode returns the editor sub-mode. It is meaningful only in ModeEditor.
func (c *Controller) SubMode() SubMode { return c.sub }

// Action returns the currently latched action.
func (c *Controller) Action() Action { return c.action }

// Pending returns the number of queued cursor points.
func (c *Controller) Pending() int { return len(c.points) }

// CursorMoved queues a cursor position. Positions are not recorded while the
// simulation runs.
func (c *Controller) CursorMoved(x, y float64) {
	if c.mode == ModeSimulation {
		return
	}
	c.points = append(c.points, Point{X: x, Y: y})
}

// PrimaryPressed toggles the place-alive latch.
func (c *Controller) PrimaryPressed() {
	if c.action == ActionPlaceAlive {
		c.action = ActionNone
		return
	}
	c.action = ActionPlaceAlive
}

// SecondaryPressed toggles the place-dead latch.
func (c *Controller) SecondaryPressed() {
	if c.action == ActionPlaceDead {
		c.action = ActionNone
		return
	}
	c.action = ActionPlaceDead
}

// PausePressed requests a mode toggle on the next HandleAction. It replaces
// whatever action was latched.
func (c *Controller) PausePressed() {
	c.action = ActionPause
}

// ClearPressed queues a board clear.
func (c *Controller) ClearPressed() {
	c.commands = append(c.commands, command{kind: commandClear})
}

// RandomizePressed queues a reseed of the board from seed.
func (c *Controller) RandomizePressed(seed int64) {
	c.commands = append(c.commands, command{kind: commandRandomize, seed: seed})
}

// StepPressed queues a single generation advance.
func (c *Controller) StepPressed() {
	c.commands = append(c.commands, command{kind: commandStep})
}

// ToggleSimulation flips between editing and simulating. Returning to the
// editor always lands in SubModeDrawing.
func (c *Controller) ToggleSimulation() {
	switch c.mode {
	case ModeEditor:
		c.mode = ModeSimulation
	default:
		c.mode = ModeEditor
		c.sub = SubModeDrawing
	}
}

// HandleAction runs one interaction tick: a pending pause is consumed and
// toggles the mode, then, in editor mode, queued commands and cursor points
// are applied to b. The point and command queues are always drained.
func (c *Controller) HandleAction(b Board) {
	if c.action == ActionPause {
		c.action = ActionNone
		c.ToggleSimulation()
	}
	defer c.drain()
	if c.mode == ModeSimulation {
		return
	}

	for _, cmd := range c.commands {
		switch cmd.kind {
		case commandClear:
			b.Clear()
		case commandRandomize:
			b.Randomize(cmd.seed, c.opts.Density)
		case commandStep:
			b.Advance()
		}
	}

	var state core.Cell
	switch c.action {
	case ActionPlaceAlive:
		state = core.Alive
	case ActionPlaceDead:
		state = core.Dead
	default:
		return
	}
	size := b.Size()
	for _, p := range c.points {
		x, y, ok := c.cellAt(p, size)
		if !ok {
			continue
		}
		b.SetCell(x, y, state)
	}
}

func (c *Controller) drain() {
	c.points = c.points[:0]
	c.commands = c.commands[:0]
}

// cellAt maps a pixel position to a cell, rejecting positions off the board.
func (c *Controller) cellAt(p Point, size core.Size) (int, int, bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return 0, 0, false
	}
	cs := float64(c.opts.CellSize)
	fx := math.Floor(p.X / cs)
	fy := math.Floor(p.Y / cs)
	if fx < 0 || fy < 0 || fx >= float64(size.W) || fy >= float64(size.H) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}
