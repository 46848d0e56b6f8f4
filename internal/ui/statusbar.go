//go:build ebiten

package ui

import (
	"image/color"

	"life-editor/internal/editor"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusBar renders a translucent strip along the bottom of the board with
// the current mode and board statistics.
type StatusBar struct {
	width int
	panel *ebiten.Image
}

// NewStatusBar constructs a StatusBar spanning width pixels.
func NewStatusBar(width int) *StatusBar {
	if width <= 0 {
		return nil
	}
	return &StatusBar{width: width, panel: ebiten.NewImage(width, barHeight)}
}

// Draw paints the bar anchored to the bottom edge of screen.
func (b *StatusBar) Draw(screen *ebiten.Image, s Status) {
	if b == nil {
		return
	}
	bg := color.RGBA{R: 16, G: 16, B: 20, A: 200}
	if s.Mode == editor.ModeSimulation {
		bg = color.RGBA{R: 20, G: 40, B: 24, A: 200}
	}
	b.panel.Fill(bg)

	face := basicfont.Face7x13
	text.Draw(b.panel, s.Text(), face, barPadding, barPadding+barBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	hint := Hint(s.Mode)
	bounds := text.BoundString(face, hint)
	text.Draw(b.panel, hint, face, b.width-barPadding-bounds.Dx(), barPadding+barBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(screen.Bounds().Dy()-barHeight))
	screen.DrawImage(b.panel, op)
}

const (
	barPadding  = 6
	barBaseline = 11
	barHeight   = 2*barPadding + 14
)
