package app

import (
	"image"
	"time"

	"life-editor/internal/core"
	"life-editor/internal/editor"
	"life-editor/internal/life"
	"life-editor/internal/ui"
)

// Signals is one frame of device input reduced to the events the editor
// understands. Button and key fields are true only on the frame they were
// pressed.
type Signals struct {
	Cursor      image.Point
	CursorValid bool

	Primary   bool
	Secondary bool
	Pause     bool

	Clear     bool
	Randomize bool
	Reseed    bool
	Step      bool

	Quit bool
}

type stepper interface {
	ShouldStep() bool
	Reset()
}

// Session owns the engine and controller and sequences the per-frame
// interaction and simulation ticks. It has no dependency on a window.
type Session struct {
	cfg    *Config
	engine *life.Engine
	ctrl   *editor.Controller
	ticker stepper

	cursor    image.Point
	hasCursor bool

	seed func() int64
}

// NewSession builds a Session for an already validated configuration.
func NewSession(cfg *Config) *Session {
	size := cfg.GridSize()
	return &Session{
		cfg:    cfg,
		engine: life.New(size.W, size.H),
		ctrl:   editor.New(editor.Options{CellSize: cfg.CellSize, Density: cfg.Density}),
		ticker: core.NewFixedStep(cfg.GenerationsPerSecond),
		seed:   func() int64 { return time.Now().UnixNano() },
	}
}

// Update runs the interaction tick followed, in simulation mode, by at most
// one generation. It reports whether the host should quit.
func (s *Session) Update(sig Signals) bool {
	if sig.Quit {
		return true
	}
	s.dispatch(sig)

	wasSimulating := s.ctrl.Mode() == editor.ModeSimulation
	s.ctrl.HandleAction(s.engine)
	simulating := s.ctrl.Mode() == editor.ModeSimulation
	if simulating && !wasSimulating {
		s.ticker.Reset()
	}

	if simulating && s.ticker.ShouldStep() {
		s.engine.Advance()
	}
	return false
}

func (s *Session) dispatch(sig Signals) {
	if sig.CursorValid && (!s.hasCursor || sig.Cursor != s.cursor) {
		s.cursor = sig.Cursor
		s.hasCursor = true
		s.ctrl.CursorMoved(float64(sig.Cursor.X), float64(sig.Cursor.Y))
	}
	if sig.Primary {
		s.ctrl.PrimaryPressed()
	}
	if sig.Secondary {
		s.ctrl.SecondaryPressed()
	}
	if sig.Pause {
		s.ctrl.PausePressed()
	}
	if sig.Clear {
		s.ctrl.ClearPressed()
	}
	if sig.Randomize {
		s.ctrl.RandomizePressed(s.cfg.Seed)
	}
	if sig.Reseed {
		s.ctrl.RandomizePressed(s.seed())
	}
	if sig.Step {
		s.ctrl.StepPressed()
	}
}

// Snapshot returns the current board for rendering.
func (s *Session) Snapshot() life.Snapshot { return s.engine.Snapshot() }

// Status summarizes the session for the status bar.
func (s *Session) Status() ui.Status {
	return ui.Status{
		Mode:       s.ctrl.Mode(),
		SubMode:    s.ctrl.SubMode(),
		Action:     s.ctrl.Action(),
		Generation: s.engine.Generation(),
		Population: s.engine.Population(),
	}
}

// Size returns the board size in cells.
func (s *Session) Size() core.Size { return s.engine.Size() }
