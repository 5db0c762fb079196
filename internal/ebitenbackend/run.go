// Package ebitenbackend runs a ui tree in an ebiten window.
package ebitenbackend

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"frameui/internal/config"
	"frameui/internal/ui"
)

// App is what the game loop drives: Update once per tick with fresh input,
// Draw once per rendered frame.
type App interface {
	Update(s ui.Sampler) ui.Cursor
	Draw(rd ui.Renderer)
}

var cursors = map[ui.Cursor]ebiten.CursorShapeType{
	ui.CursorDefault: ebiten.CursorShapeDefault,
	ui.CursorPointer: ebiten.CursorShapePointer,
	ui.CursorText:    ebiten.CursorShapeText,
	ui.CursorMove:    ebiten.CursorShapeMove,
}

// SetCursor shows the icon for c.
func SetCursor(c ui.Cursor) {
	shape, ok := cursors[c]
	if !ok {
		shape = ebiten.CursorShapeDefault
	}
	if ebiten.CursorShape() != shape {
		ebiten.SetCursorShape(shape)
	}
}

// game adapts an App to ebiten.Game.
type game struct {
	app    App
	in     *Sampler
	rd     *Renderer
	screen ui.Vec2
}

func (g *game) Update() error {
	g.in.Poll(g.screen)
	SetCursor(g.app.Update(g.in))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.rd.begin(screen)
	g.app.Draw(g.rd)
}

// Layout keeps one logical pixel per window pixel so percent layouts track
// window resizes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screen = ui.Vec2{X: float32(outsideWidth), Y: float32(outsideHeight)}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window sized from p and drives app until it is
// closed. Fonts that fail to load are reported through onErr and fall back
// to the bitmap face.
func Run(p config.Prefs, fonts map[string]string, app App, onErr func(error)) error {
	ebiten.SetWindowSize(p.Width, p.Height)
	ebiten.SetWindowTitle(p.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if p.TargetFPS > 0 {
		ebiten.SetTPS(p.TargetFPS)
	}

	rd := NewRenderer()
	for name, path := range fonts {
		if err := rd.LoadFont(name, path); err != nil && onErr != nil {
			onErr(err)
		}
	}
	g := &game{
		app:    app,
		in:     NewSampler(),
		rd:     rd,
		screen: ui.Vec2{X: float32(p.Width), Y: float32(p.Height)},
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
