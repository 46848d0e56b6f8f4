//go:build !ebiten

package ui

// StatusBar is a no-op placeholder for headless builds.
type StatusBar struct{}

// NewStatusBar returns nil in the headless build.
func NewStatusBar(int) *StatusBar { return nil }

// Draw is a no-op in the headless build.
func (b *StatusBar) Draw(any, Status) {}
