// Package headless drives a ui.Root without a window: Frame and Script
// stand in for the input device and Recorder for the renderer.
package headless

import (
	"slices"

	"frameui/internal/ui"
)

var _ ui.Sampler = Frame{}

// Frame is one synthetic input sample. Left and Right give the button
// state already reduced to a MouseAction.
type Frame struct {
	Mouse   ui.Vec2
	Left    ui.MouseAction
	Right   ui.MouseAction
	Pressed []ui.Key // went down this frame
	Down    []ui.Key // held; keys in Pressed count as held too
	DT      float32
	Screen  ui.Vec2
}

func (f Frame) button(b ui.MouseButton) ui.MouseAction {
	if b == ui.MouseRight {
		return f.Right
	}
	return f.Left
}

func (f Frame) MousePosition() ui.Vec2 { return f.Mouse }

func (f Frame) IsMouseButtonPressed(b ui.MouseButton) bool {
	return f.button(b) == ui.MouseDown
}

func (f Frame) IsMouseButtonDown(b ui.MouseButton) bool {
	a := f.button(b)
	return a == ui.MouseDown || a == ui.MouseHold
}

func (f Frame) IsMouseButtonReleased(b ui.MouseButton) bool {
	return f.button(b) == ui.MouseRelease
}

func (f Frame) KeysPressed() []ui.Key { return f.Pressed }

func (f Frame) IsKeyDown(k ui.Key) bool {
	return slices.Contains(f.Down, k) || slices.Contains(f.Pressed, k)
}

func (f Frame) FrameTime() float32 { return f.DT }

func (f Frame) ScreenSize() ui.Vec2 { return f.Screen }

// At returns a copy of f with the pointer moved to (x, y).
func (f Frame) At(x, y float32) Frame {
	f.Mouse = ui.Vec2{X: x, Y: y}
	return f
}

// With returns a copy of f with the left button set to a.
func (f Frame) With(a ui.MouseAction) Frame {
	f.Left = a
	return f
}

// Keys returns a copy of f pressing keys this frame.
func (f Frame) Keys(keys ...ui.Key) Frame {
	f.Pressed = keys
	return f
}

// Holding returns a copy of f with keys held down.
func (f Frame) Holding(keys ...ui.Key) Frame {
	f.Down = keys
	return f
}

// Click returns the two frames of a left click at (x, y): press, then
// release.
func (f Frame) Click(x, y float32) []Frame {
	at := f.At(x, y)
	return []Frame{at.With(ui.MouseDown), at.With(ui.MouseRelease)}
}

// Run feeds frames to root in order and returns the action of each.
func Run(root *ui.Root, frames ...Frame) []Result {
	out := make([]Result, 0, len(frames))
	for _, f := range frames {
		a, ok := root.Update(f)
		out = append(out, Result{Action: a, OK: ok, Cursor: root.Cursor()})
	}
	return out
}

// Result is what Root.Update reported for one frame.
type Result struct {
	Action ui.Action
	OK     bool
	Cursor ui.Cursor
}
