package ui

import (
	"fmt"
	"image/color"
)

// Renderer receives the draw commands the tree emits during Render. It also
// measures text, since layout of labels depends on the loaded font. Font is
// a name registered with the backend; unknown names fall back to the
// backend's default font.
type Renderer interface {
	DrawRectangle(x, y, w, h float32, c color.RGBA)
	DrawRectangleLines(x, y, w, h, thick float32, c color.RGBA)
	DrawText(text string, x, y float32, font string, size float32, c color.RGBA)
	MeasureText(text, font string, size float32) (w, h float32)
	DrawPoly(cx, cy float32, sides int, radius, rotation float32, c color.RGBA)
	DrawPolyLines(cx, cy float32, sides int, radius, rotation, thick float32, c color.RGBA)
	DrawLine(x1, y1, x2, y2, thick float32, c color.RGBA)
}

// Cursor is the pointer icon the tree asks the window to show.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
	CursorMove
)

var cursorNames = [...]string{"default", "pointer", "text", "move"}

func (c Cursor) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return fmt.Sprintf("Cursor(%d)", c)
}
