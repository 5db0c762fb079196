package headless

import (
	"image/color"

	"github.com/mattn/go-runewidth"

	"frameui/internal/ui"
)

var _ ui.Renderer = (*Recorder)(nil)

// Op names a recorded draw call.
type Op string

const (
	OpRect      Op = "rect"
	OpRectLines Op = "rect-lines"
	OpText      Op = "text"
	OpPoly      Op = "poly"
	OpPolyLines Op = "poly-lines"
	OpLine      Op = "line"
)

// Cmd is one recorded draw call. Fields a call does not use stay zero. For
// polygons X/Y is the centre and W the radius; for lines X/Y and W/H are the
// two end points.
type Cmd struct {
	Op       Op
	X, Y     float32
	W, H     float32
	Thick    float32
	Rotation float32
	Sides    int
	Text     string
	Font     string
	Size     float32
	Color    color.RGBA
}

// Recorder is a renderer that keeps the draw calls instead of drawing. It
// measures text as a monospace font whose cells are Advance×size wide.
type Recorder struct {
	Advance float32
	Cmds    []Cmd
}

// NewRecorder returns a recorder with half-em cells.
func NewRecorder() *Recorder {
	return &Recorder{Advance: 0.5}
}

// Reset drops the recorded calls, keeping the buffer.
func (r *Recorder) Reset() {
	r.Cmds = r.Cmds[:0]
}

// Texts returns the strings drawn so far, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Cmds {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) DrawRectangle(x, y, w, h float32, c color.RGBA) {
	r.Cmds = append(r.Cmds, Cmd{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawRectangleLines(x, y, w, h, thick float32, c color.RGBA) {
	r.Cmds = append(r.Cmds, Cmd{Op: OpRectLines, X: x, Y: y, W: w, H: h, Thick: thick, Color: c})
}

func (r *Recorder) DrawText(text string, x, y float32, font string, size float32, c color.RGBA) {
	r.Cmds = append(r.Cmds, Cmd{Op: OpText, X: x, Y: y, Text: text, Font: font, Size: size, Color: c})
}

func (r *Recorder) MeasureText(text, _ string, size float32) (w, h float32) {
	return float32(runewidth.StringWidth(text)) * size * r.Advance, size
}

func (r *Recorder) DrawPoly(cx, cy float32, sides int, radius, rotation float32, c color.RGBA) {
	r.Cmds = append(r.Cmds, Cmd{Op: OpPoly, X: cx, Y: cy, W: radius, Sides: sides, Rotation: rotation, Color: c})
}

func (r *Recorder) DrawPolyLines(cx, cy float32, sides int, radius, rotation, thick float32, c color.RGBA) {
	r.Cmds = append(r.Cmds, Cmd{Op: OpPolyLines, X: cx, Y: cy, W: radius, Sides: sides, Rotation: rotation, Thick: thick, Color: c})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2, thick float32, c color.RGBA) {
	r.Cmds = append(r.Cmds, Cmd{Op: OpLine, X: x1, Y: y1, W: x2, H: y2, Thick: thick, Color: c})
}
