package ui

import "fmt"

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// MouseAction is the discrete state of one pointer button for one frame.
// MouseDown fires only on the press frame and MouseRelease only on the
// release frame; MouseHold covers the frames in between.
type MouseAction uint8

const (
	MouseNone MouseAction = iota
	MouseDown
	MouseHold
	MouseRelease
)

var mouseActionNames = [...]string{"none", "down", "hold", "release"}

func (a MouseAction) String() string {
	if int(a) < len(mouseActionNames) {
		return mouseActionNames[a]
	}
	return fmt.Sprintf("MouseAction(%d)", a)
}

// Sampler is the per-frame view of the raw input device and window. Every
// method is a pure query about the current frame; backends poll once per
// frame before handing the sampler to Root.Update.
type Sampler interface {
	MousePosition() Vec2
	IsMouseButtonPressed(b MouseButton) bool  // went down this frame
	IsMouseButtonDown(b MouseButton) bool     // currently down
	IsMouseButtonReleased(b MouseButton) bool // went up this frame
	KeysPressed() []Key                       // keys that went down this frame
	IsKeyDown(k Key) bool
	FrameTime() float32 // seconds since the previous frame
	ScreenSize() Vec2
}

// SampleButton turns the raw queries for b into a MouseAction.
func SampleButton(s Sampler, b MouseButton) MouseAction {
	switch {
	case s.IsMouseButtonPressed(b):
		return MouseDown
	case s.IsMouseButtonReleased(b):
		return MouseRelease
	case s.IsMouseButtonDown(b):
		return MouseHold
	}
	return MouseNone
}

// SampleMouse samples both buttons.
func SampleMouse(s Sampler) (left, right MouseAction) {
	return SampleButton(s, MouseLeft), SampleButton(s, MouseRight)
}

// ShiftDown reports whether either shift key is held.
func ShiftDown(s Sampler) bool {
	return s.IsKeyDown(KeyLeftShift) || s.IsKeyDown(KeyRightShift)
}
