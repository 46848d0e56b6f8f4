package app

import (
	"image"
	"testing"

	"life-editor/internal/core"
	"life-editor/internal/editor"
)

type manualStepper struct {
	ready  bool
	resets int
}

func (m *manualStepper) ShouldStep() bool {
	ready := m.ready
	m.ready = false
	return ready
}

func (m *manualStepper) Reset() { m.resets++ }

func newTestSession() (*Session, *manualStepper) {
	cfg := NewConfig()
	cfg.WindowWidth = 50
	cfg.WindowHeight = 50
	s := NewSession(cfg)
	st := &manualStepper{}
	s.ticker = st
	s.seed = func() int64 { return 1 }
	return s, st
}

func cursorAt(x, y int) Signals {
	return Signals{Cursor: image.Pt(x, y), CursorValid: true}
}

func TestSessionDrawsAndRuns(t *testing.T) {
	s, st := newTestSession()

	// Blinker drawn with the primary latch while dragging.
	s.Update(Signals{Primary: true})
	for _, x := range []int{15, 25, 35} {
		s.Update(cursorAt(x, 25))
	}
	if s.Status().Population != 3 {
		t.Fatalf("expected 3 live cells, got %d", s.Status().Population)
	}

	s.Update(Signals{Pause: true})
	if s.Status().Mode != editor.ModeSimulation || st.resets != 1 {
		t.Fatalf("expected simulation with a ticker reset, got %s resets=%d", s.Status().Mode, st.resets)
	}
	if s.Status().Generation != 0 {
		t.Fatal("advanced without a simulation tick")
	}

	st.ready = true
	s.Update(Signals{})
	snap := s.Snapshot()
	if snap.Generation() != 1 || snap.At(2, 1) != core.Alive || snap.At(2, 3) != core.Alive || snap.At(1, 2) != core.Dead {
		t.Fatal("blinker did not flip to vertical after one simulation tick")
	}

	// Drawing is ignored while the simulation runs.
	s.Update(cursorAt(5, 5))
	if s.Snapshot().At(0, 0) != core.Dead {
		t.Fatal("simulation mode accepted a drawing edit")
	}
}

func TestSessionDoesNotAdvanceInEditor(t *testing.T) {
	s, st := newTestSession()
	s.Update(Signals{Randomize: true})
	before := s.Snapshot().AppendCells(nil)
	st.ready = true
	s.Update(Signals{})
	if s.Status().Generation != 0 {
		t.Fatal("editor mode advanced the board")
	}
	after := s.Snapshot().AppendCells(nil)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("editor mode changed the board without input")
		}
	}
}

func TestSessionCoalescesCursor(t *testing.T) {
	s, _ := newTestSession()
	s.Update(cursorAt(15, 15))
	// Latch without moving: the stationary cursor is not re-queued.
	s.Update(Signals{Primary: true, Cursor: image.Pt(15, 15), CursorValid: true})
	if s.Status().Population != 0 {
		t.Fatal("stationary cursor painted a cell")
	}
	s.Update(cursorAt(16, 15))
	if s.Snapshot().At(1, 1) != core.Alive {
		t.Fatal("moving cursor did not paint")
	}
}

func TestSessionEditorCommands(t *testing.T) {
	s, _ := newTestSession()
	s.Update(Signals{Reseed: true})
	s.Update(Signals{Step: true})
	if s.Status().Generation != 1 {
		t.Fatalf("step command did not advance, generation %d", s.Status().Generation)
	}
	s.Update(Signals{Clear: true})
	if s.Status().Population != 0 || s.Status().Generation != 0 {
		t.Fatal("clear command left cells behind")
	}
}

func TestSessionQuit(t *testing.T) {
	s, _ := newTestSession()
	if !s.Update(Signals{Quit: true}) {
		t.Fatal("expected quit")
	}
}
