package ui

import (
	"fmt"

	"life-editor/internal/editor"
)

// Status is the information shown in the status bar.
type Status struct {
	Mode       editor.Mode
	SubMode    editor.SubMode
	Action     editor.Action
	Generation int
	Population int
}

// Text renders the status as a single line.
func (s Status) Text() string {
	mode := s.Mode.String()
	if s.Mode == editor.ModeEditor {
		mode = fmt.Sprintf("%s: %s", mode, s.SubMode)
	}
	return fmt.Sprintf("%s | brush: %s | gen %d | pop %d", mode, s.Action, s.Generation, s.Population)
}

// Hint lists the controls available in the given mode.
func Hint(m editor.Mode) string {
	if m == editor.ModeSimulation {
		return "P edit  Q quit"
	}
	return "LMB draw  RMB erase  P run  N step  C clear  R/S random  Q quit"
}
