package ui

import (
	"fmt"
	"image/color"

	"github.com/jinzhu/copier"
)

// ID identifies an element within one tree. Zero is never handed out by
// the Root's generator.
type ID uint32

// Kind names the element variants.
type Kind uint8

const (
	KindBox Kind = iota
	KindText
	KindButton
	KindInput
	KindRadio
)

var kindNames = [...]string{"box", "text", "button", "input", "radio"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// State is the part every element shares: identity, event bookkeeping and
// geometry.
type State struct {
	ID        ID
	Event     Event
	Holding   bool    // captured the pointer with a left press not yet released
	Rel       RelRect // position and size relative to the parent
	Abs       Rect    // resolved screen rect; the hit-test bounds
	Align     Align
	Draggable bool
	ShowHover bool // hovering shows the pointer cursor
	Data      any  // caller payload, surfaced with the action target

	resolved bool // Abs holds a real previous-frame value
}

// Element is a node of the tree. The variant set is closed: Box, Text,
// Button, Input and Radio.
type Element interface {
	State() *State
	Kind() Kind
	update(f *frame, parent Rect, parentDelta Vec2)
	render(rd Renderer, th *Theme, parentColor color.RGBA)
}

// frame is the transient state of one update pass. target is the action
// token: the first element to claim it owns the frame.
type frame struct {
	in          Sampler
	mouse       Vec2
	delta       Vec2
	left, right MouseAction
	dt          float64
	keys        []Key
	shift       bool
	target      Element

	focused *Input // input that gained focus this frame
}

func (f *frame) available() bool {
	return f.target == nil
}

func (f *frame) pressed(k Key) bool {
	for _, p := range f.keys {
		if p == k {
			return true
		}
	}
	return false
}

// layout resolves s.Abs for this frame and returns how much the element
// grew or shrank, which its children use for anchoring.
func (s *State) layout(f *frame, parent Rect, parentDelta Vec2, draggable bool) Vec2 {
	prev := s.Abs
	if !s.resolved {
		parentDelta = Vec2{}
	}
	s.Abs, s.Rel = ResolveLayout(LayoutInput{
		Prev:        prev,
		Rel:         s.Rel,
		Parent:      parent,
		ParentDelta: parentDelta,
		Align:       s.Align,
		MouseDelta:  f.delta,
		Dragging:    draggable && s.Holding,
	})
	if !s.resolved {
		s.resolved = true
		return Vec2{}
	}
	return sizeDelta(prev, s.Abs)
}

// arbitrate runs the hit test and event derivation for self, claiming the
// frame's token when it wins.
func (s *State) arbitrate(f *frame, self Element) {
	v := Arbitrate(f.available(), s.Abs.Contains(f.mouse), s.Event, s.Holding, f.left, f.right)
	s.Event, s.Holding = v.Event, v.Holding
	if v.Claimed && f.target == nil {
		f.target = self
	}
}

// updateChildren updates back to front so the element drawn last gets the
// first chance at the token.
func updateChildren(f *frame, children []Element, parent Rect, parentDelta Vec2) {
	for i := len(children) - 1; i >= 0; i-- {
		children[i].update(f, parent, parentDelta)
	}
}

func renderChildren(rd Renderer, th *Theme, children []Element, parentColor color.RGBA) {
	for _, e := range children {
		e.render(rd, th, parentColor)
	}
}

// Walk calls fn for every element depth first, parents before children.
// Returning false stops the walk.
func Walk(children []Element, fn func(Element) bool) bool {
	for _, e := range children {
		if !fn(e) {
			return false
		}
		if b, ok := e.(*Box); ok {
			if !Walk(b.children, fn) {
				return false
			}
		}
	}
	return true
}

func find(children []Element, id ID) (Element, bool) {
	var out Element
	Walk(children, func(e Element) bool {
		if e.State().ID == id {
			out = e
			return false
		}
		return true
	})
	return out, out != nil
}

// remove deletes the element with id from children or any nested box.
func remove(children []Element, id ID) ([]Element, bool) {
	for i, e := range children {
		if e.State().ID == id {
			return append(children[:i], children[i+1:]...), true
		}
		if b, ok := e.(*Box); ok {
			if rest, ok := remove(b.children, id); ok {
				b.children = rest
				return children, true
			}
		}
	}
	return children, false
}

// withDefaults copies the non-zero fields of params over defaults.
func withDefaults[T any](defaults, params T) T {
	out := defaults
	if err := copier.CopyWithOption(&out, &params, copier.Option{IgnoreEmpty: true}); err != nil {
		panic(fmt.Sprintf("ui: apply params %T: %v", params, err))
	}
	return out
}

// colorOr returns c unless it is the zero colour.
func colorOr(c, fallback color.RGBA) color.RGBA {
	if c == (color.RGBA{}) {
		return fallback
	}
	return c
}

// active reports whether ev shows an element as hovered or pressed.
func active(ev Event) bool {
	switch ev {
	case Hover, Hold, LClick, LRelease:
		return true
	}
	return false
}
