package ui

import "github.com/chewxy/math32"

// Vec2 is a point or a delta in screen pixels.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an absolute rectangle in screen pixels. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area. Empty rectangles are never hit.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies strictly inside r. Points on the edge are outside.
func (r Rect) Contains(p Vec2) bool {
	return PointInRect(p, r)
}

// PointInRect reports whether p lies strictly inside r. Zero or negative
// sized rectangles contain nothing.
func PointInRect(p Vec2, r Rect) bool {
	if r.Empty() {
		return false
	}
	return p.X > r.X && p.X < r.X+r.W &&
		p.Y > r.Y && p.Y < r.Y+r.H
}

// snap rounds a coordinate down to a whole pixel so text stays crisp.
func snap(v float32) float32 {
	return math32.Floor(v)
}
