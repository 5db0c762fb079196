package ui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Unit tags a Length as absolute pixels or a fraction of the parent.
type Unit uint8

const (
	Pixel Unit = iota
	Percent
)

// Length is one axis of a relative rectangle. A Percent value is a fraction
// of the parent dimension (0.5 = half), not 0–100.
type Length struct {
	Value float32
	Unit  Unit
}

// Px returns a pixel length.
func Px(v float32) Length {
	return Length{Value: v, Unit: Pixel}
}

// Pct returns a length relative to the parent dimension.
func Pct(p float32) Length {
	return Length{Value: p, Unit: Percent}
}

// Resolve converts l to pixels against the parent dimension.
func (l Length) Resolve(parent float32) float32 {
	if l.Unit == Percent {
		return l.Value * parent
	}
	return l.Value
}

// Shift adds a pixel delta to l, keeping the unit it was declared in. A
// percent length inside a parent with no extent cannot absorb a pixel
// delta and becomes a pixel length.
func (l Length) Shift(d, parent float32) Length {
	if d == 0 {
		return l
	}
	if l.Unit == Percent {
		if parent <= 0 {
			return Px(l.Resolve(parent) + d)
		}
		return Pct(l.Value + d/parent)
	}
	return Px(l.Value + d)
}

func (l Length) String() string {
	if l.Unit == Percent {
		return fmt.Sprintf("%g%%", l.Value*100)
	}
	return fmt.Sprintf("%gpx", l.Value)
}

// RelRect is a rectangle expressed relative to the parent's absolute rectangle.
type RelRect struct {
	X, Y, W, H Length
}

// PxRect builds a relative rectangle with every field in pixels.
func PxRect(x, y, w, h float32) RelRect {
	return RelRect{X: Px(x), Y: Px(y), W: Px(w), H: Px(h)}
}

// Align is the anchor of a relative rectangle: which edge or corner keeps
// its distance to the parent when the parent is resized.
type Align uint8

const (
	TopLeft Align = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var alignNames = [...]string{
	"top-left", "top-center", "top-right",
	"center-left", "center", "center-right",
	"bottom-left", "bottom-center", "bottom-right",
}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("Align(%d)", a)
}

// factors returns the share of the parent's size delta applied to the
// position on each axis: 0 for left/top, ½ for center, 1 for right/bottom.
func (a Align) factors() (fx, fy float32) {
	col, row := int(a)%3, int(a)/3
	return float32(col) / 2, float32(row) / 2
}

// LayoutInput is everything ResolveLayout needs for one element and frame.
type LayoutInput struct {
	Prev        Rect    // absolute rect resolved last frame
	Rel         RelRect // relative spec
	Parent      Rect    // parent's absolute rect this frame
	ParentDelta Vec2    // parent's size change since last frame
	Align       Align
	MouseDelta  Vec2
	Dragging    bool // draggable && holding
}

// ResolveLayout computes the element's absolute rectangle for this frame and
// returns the relative spec, which moves along when the element is dragged
// or anchored away from the top-left corner of a resizing parent.
//
// The anchor shift applies to Pixel positions only. A Percent position is a
// fraction of the parent size and already follows a resize, so shifting it
// as well would move it twice.
func ResolveLayout(in LayoutInput) (Rect, RelRect) {
	rel := in.Rel
	abs := Rect{
		W: rel.W.Resolve(in.Parent.W),
		H: rel.H.Resolve(in.Parent.H),
	}

	if in.Dragging {
		abs.X = in.Prev.X + in.MouseDelta.X
		abs.Y = in.Prev.Y + in.MouseDelta.Y
		rel.X = rel.X.Shift(in.MouseDelta.X, in.Parent.W)
		rel.Y = rel.Y.Shift(in.MouseDelta.Y, in.Parent.H)
		return abs, rel
	}

	// Percent positions already scale with the parent; only pixel offsets
	// need the anchor shift to stay glued to their edge.
	if !in.ParentDelta.IsZero() {
		fx, fy := in.Align.factors()
		if rel.X.Unit == Pixel {
			rel.X = rel.X.Shift(in.ParentDelta.X*fx, in.Parent.W)
		}
		if rel.Y.Unit == Pixel {
			rel.Y = rel.Y.Shift(in.ParentDelta.Y*fy, in.Parent.H)
		}
	}
	abs.X = in.Parent.X + rel.X.Resolve(in.Parent.W)
	abs.Y = in.Parent.Y + rel.Y.Resolve(in.Parent.H)
	return abs, rel
}

// sizeDelta is the change in size between two absolute rectangles. Tiny
// float noise is treated as no change.
func sizeDelta(prev, cur Rect) Vec2 {
	d := cur.Size().Sub(prev.Size())
	if math32.Abs(d.X) < 1e-4 {
		d.X = 0
	}
	if math32.Abs(d.Y) < 1e-4 {
		d.Y = 0
	}
	return d
}
