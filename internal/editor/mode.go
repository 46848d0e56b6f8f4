package editor

// Mode is the top-level interaction state.
type Mode uint8

const (
	// ModeEditor lets input paint cells.
	ModeEditor Mode = iota
	// ModeSimulation advances the board and ignores editing input.
	ModeSimulation
)

func (m Mode) String() string {
	switch m {
	case ModeEditor:
		return "editor"
	case ModeSimulation:
		return "simulation"
	default:
		return "unknown"
	}
}

// SubMode refines ModeEditor.
type SubMode uint8

const (
	// SubModeDrawing is the only editor sub-mode reachable today.
	SubModeDrawing SubMode = iota
	// SubModeMoving is reserved for panning the view. No transition enters it
	// and input handling does not distinguish it from drawing.
	SubModeMoving
)

func (s SubMode) String() string {
	switch s {
	case SubModeDrawing:
		return "drawing"
	case SubModeMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Action is the latched input action applied to queued cursor points.
type Action uint8

const (
	ActionNone Action = iota
	ActionPlaceAlive
	ActionPlaceDead
	ActionPause
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPlaceAlive:
		return "place alive"
	case ActionPlaceDead:
		return "place dead"
	case ActionPause:
		return "pause"
	default:
		return "unknown"
	}
}

type commandKind uint8

const (
	commandClear commandKind = iota + 1
	commandRandomize
	commandStep
)

type command struct {
	kind commandKind
	seed int64
}
