//go:build ebiten

package app

import (
	"image"
	"image/color"

	"life-editor/internal/core"
	"life-editor/internal/render"
	"life-editor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	status  *ui.StatusBar
	cells   []core.Cell

	onColor   color.Color
	offColor  color.Color
	gridColor color.Color

	scale int
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) *Game {
	s := NewSession(cfg)
	size := s.Size()
	return &Game{
		session:   s,
		painter:   render.NewGridPainter(size, cfg.CellSize),
		status:    ui.NewStatusBar(size.W * cfg.CellSize),
		onColor:   color.Black,
		offColor:  color.White,
		gridColor: color.Black,
		scale:     cfg.CellSize,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if g.session.Update(g.pollSignals()) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollSignals() Signals {
	x, y := ebiten.CursorPosition()
	w, h := g.Layout(0, 0)
	return Signals{
		Cursor:      image.Pt(x, y),
		CursorValid: x >= 0 && y >= 0 && x < w && y < h,

		Primary:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Secondary: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Pause:     inpututil.IsKeyJustPressed(ebiten.KeyP),

		Clear:     inpututil.IsKeyJustPressed(ebiten.KeyC),
		Randomize: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Reseed:    inpututil.IsKeyJustPressed(ebiten.KeyS),
		Step:      inpututil.IsKeyJustPressed(ebiten.KeyN),

		Quit: inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Draw renders the current board, the grid lines and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	g.cells = snap.AppendCells(g.cells[:0])
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
	g.painter.DrawGridLines(screen, g.gridColor)
	g.status.Draw(screen, g.session.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W * g.scale, s.H * g.scale
}
