// Package rlbackend runs a ui tree in a raylib window.
package rlbackend

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"frameui/internal/config"
	"frameui/internal/ui"
)

// App is what the window loop drives: Update once per frame with fresh
// input, then Draw between BeginDrawing and EndDrawing.
type App interface {
	Update(s ui.Sampler) ui.Cursor
	Draw(rd ui.Renderer)
}

var cursors = map[ui.Cursor]int32{
	ui.CursorDefault: rl.MouseCursorDefault,
	ui.CursorPointer: rl.MouseCursorPointingHand,
	ui.CursorText:    rl.MouseCursorIBeam,
	ui.CursorMove:    rl.MouseCursorResizeAll,
}

// Window owns the cursor state so SetMouseCursor is only called on change.
type Window struct {
	cursor ui.Cursor
	set    bool
}

// SetCursor shows the icon for c.
func (w *Window) SetCursor(c ui.Cursor) {
	if w.set && c == w.cursor {
		return
	}
	shape, ok := cursors[c]
	if !ok {
		shape = rl.MouseCursorDefault
	}
	rl.SetMouseCursor(shape)
	w.cursor, w.set = c, true
}

// Run opens a resizable window sized from p and drives app until it is
// closed. fonts maps theme font names to files; fonts that fail to load
// are reported through onErr and fall back to the default font.
func Run(p config.Prefs, fonts map[string]string, app App, onErr func(error)) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(p.Width), int32(p.Height), p.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // close via the window button only
	if p.TargetFPS > 0 {
		rl.SetTargetFPS(int32(p.TargetFPS))
	}

	rd := NewRenderer()
	defer rd.Close()
	for name, path := range fonts {
		if err := rd.LoadFont(name, path); err != nil && onErr != nil {
			onErr(err)
		}
	}

	in := NewSampler()
	var win Window
	for !rl.WindowShouldClose() {
		in.Poll()
		win.SetCursor(app.Update(in))

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		app.Draw(rd)
		rl.EndDrawing()
	}
}
