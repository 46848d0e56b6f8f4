package life

import (
	"slices"
	"testing"

	"life-editor/internal/core"
)

func seed(e *Engine, cells ...[2]int) {
	for _, c := range cells {
		e.SetCell(c[0], c[1], core.Alive)
	}
}

func expectAlive(t *testing.T, e *Engine, label string, alive ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, c := range alive {
		want[c] = true
	}
	size := e.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			got := e.Cell(x, y) == core.Alive
			if got != want[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := New(5, 5)
	seed(e, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	e.Advance()
	expectAlive(t, e, "after first step", [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	e.Advance()
	expectAlive(t, e, "after second step", [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	if e.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", e.Generation())
	}
}

func TestBlockStillLife(t *testing.T) {
	e := New(4, 4)
	block := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	seed(e, block...)
	for _, c := range block {
		if n := e.CountNeighbors(c[0], c[1]); n != 3 {
			t.Fatalf("block cell %v has %d neighbors, expected 3", c, n)
		}
	}
	e.Advance()
	expectAlive(t, e, "block", block...)
}

func TestCornerNeighborsDoNotWrap(t *testing.T) {
	e := New(3, 3)
	// Fill everything except the corner under test.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			e.SetCell(x, y, core.Alive)
		}
	}
	if n := e.CountNeighbors(0, 0); n != 3 {
		t.Fatalf("corner (0,0) counted %d neighbors, expected 3", n)
	}
	if n := e.CountNeighbors(1, 0); n != 4 {
		t.Fatalf("edge cell (1,0) counted %d neighbors, expected 4", n)
	}

	wide := New(5, 5)
	// Cells along the far edges would be neighbors of (0,0) on a torus.
	seed(wide, [2]int{4, 0}, [2]int{0, 4}, [2]int{4, 4}, [2]int{4, 1}, [2]int{1, 4})
	if n := wide.CountNeighbors(0, 0); n != 0 {
		t.Fatalf("corner (0,0) wrapped to the opposite edge, counted %d", n)
	}
}

func TestBirthRule(t *testing.T) {
	cases := []struct {
		name      string
		neighbors [][2]int
		alive     bool
	}{
		{name: "two", neighbors: [][2]int{{0, 0}, {2, 0}}, alive: false},
		{name: "three", neighbors: [][2]int{{0, 0}, {2, 0}, {0, 2}}, alive: true},
		{name: "four", neighbors: [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}}, alive: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := New(3, 3)
			seed(e, tc.neighbors...)
			e.Advance()
			if got := e.Cell(1, 1) == core.Alive; got != tc.alive {
				t.Fatalf("center alive=%v, expected %v", got, tc.alive)
			}
		})
	}
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Rule(core.Alive, n) == core.Alive; got != wantAlive {
			t.Errorf("alive with %d neighbors: got alive=%v", n, got)
		}
		wantBorn := n == 3
		if got := Rule(core.Dead, n) == core.Alive; got != wantBorn {
			t.Errorf("dead with %d neighbors: got alive=%v", n, got)
		}
	}
}

// naiveNext computes the next board purely from a frozen copy.
func naiveNext(size core.Size, cells []core.Cell) []core.Cell {
	at := func(x, y int) core.Cell {
		if x < 0 || x >= size.W || y < 0 || y >= size.H {
			return core.Dead
		}
		return cells[y*size.W+x]
	}
	out := make([]core.Cell, len(cells))
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && at(x+dx, y+dy) == core.Alive {
						n++
					}
				}
			}
			out[y*size.W+x] = Rule(at(x, y), n)
		}
	}
	return out
}

func TestAdvanceMatchesFrozenSnapshot(t *testing.T) {
	e := New(24, 17)
	e.Randomize(1234, 0.35)
	for gen := 0; gen < 20; gen++ {
		before := e.Snapshot()
		want := naiveNext(before.Size(), before.AppendCells(nil))
		e.Advance()
		got := e.Snapshot().AppendCells(nil)
		if !slices.Equal(got, want) {
			t.Fatalf("generation %d diverged from a computation over the frozen board", gen+1)
		}
	}
}

func TestScratchClearedAtRest(t *testing.T) {
	e := New(8, 8)
	e.Randomize(5, 0.5)
	for i := 0; i < 3; i++ {
		e.Advance()
		for idx, c := range e.nxt.Cells() {
			if c != core.Dead {
				t.Fatalf("scratch cell %d alive after advance %d", idx, i+1)
			}
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e := New(4, 4)
	e.SetCell(1, 1, core.Alive)
	snap := e.Snapshot()
	cells := snap.AppendCells(nil)
	cells[0] = core.Alive

	e.SetCell(1, 1, core.Dead)
	if snap.At(1, 1) != core.Alive {
		t.Fatal("snapshot changed after engine write")
	}
	if snap.At(0, 0) != core.Dead {
		t.Fatal("snapshot changed through copied cells")
	}
	if e.Cell(0, 0) != core.Dead {
		t.Fatal("engine changed through snapshot cells")
	}
}

func TestSetCellOutOfRangeIgnored(t *testing.T) {
	e := New(3, 3)
	e.SetCell(3, 0, core.Alive)
	e.SetCell(-1, 2, core.Alive)
	if e.Population() != 0 {
		t.Fatalf("off-board writes landed on the board, population %d", e.Population())
	}
}

func TestClearResetsGeneration(t *testing.T) {
	e := New(5, 5)
	seed(e, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	e.Advance()
	e.Clear()
	if e.Population() != 0 || e.Generation() != 0 {
		t.Fatalf("expected empty board at generation 0, got population %d generation %d", e.Population(), e.Generation())
	}
}

func TestHashTracksBoardState(t *testing.T) {
	e := New(5, 5)
	seed(e, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	h0 := e.Hash()
	e.Advance()
	h1 := e.Hash()
	e.Advance()
	if h0 == h1 {
		t.Fatal("distinct boards hashed equal")
	}
	if e.Hash() != h0 {
		t.Fatal("blinker did not return to its first hash after two generations")
	}
}
