package ui

import (
	"fmt"
	"image/color"

	"github.com/jinzhu/copier"
)

// Action describes the frame's arbitrated target.
type Action struct {
	ID      ID
	Kind    Kind
	Event   Event
	Holding bool
	Abs     Rect
	Data    any
}

// Root owns the top level elements and runs the per frame passes. It keeps
// the previous pointer position and screen size so deltas can be computed
// without global state.
type Root struct {
	Theme      Theme
	Background color.RGBA

	// ExclusiveFocus blurs every other Input when one gains focus.
	ExclusiveFocus bool

	children   []Element
	prevMouse  Vec2
	prevScreen Vec2
	started    bool
	nextID     ID
	cursor     Cursor
	target     Element
}

// NewRoot returns an empty tree drawing with th.
func NewRoot(th Theme) *Root {
	return &Root{
		Theme:          th,
		Background:     DarkGray,
		ExclusiveFocus: true,
	}
}

// NewID hands out the next unused id, starting at 1.
func (r *Root) NewID() ID {
	r.nextID++
	return r.nextID
}

// AddChild appends e above the elements added before it.
func (r *Root) AddChild(e Element) {
	r.children = append(r.children, e)
}

// RemoveChild removes the element with id anywhere in the tree.
func (r *Root) RemoveChild(id ID) bool {
	var ok bool
	r.children, ok = remove(r.children, id)
	return ok
}

func (r *Root) Children() []Element {
	return r.children
}

// Find looks id up depth first.
func (r *Root) Find(id ID) (Element, bool) {
	return find(r.children, id)
}

// Cursor is the hint derived during the last Update.
func (r *Root) Cursor() Cursor {
	return r.cursor
}

// Target is the element that claimed the last frame, or nil.
func (r *Root) Target() Element {
	return r.target
}

// Focus activates the Input with id, applying the exclusive focus policy.
func (r *Root) Focus(id ID) bool {
	e, ok := r.Find(id)
	if !ok {
		return false
	}
	in, ok := e.(*Input)
	if !ok {
		return false
	}
	in.Focus()
	if r.ExclusiveFocus {
		r.blurExcept(in)
	}
	return true
}

func (r *Root) blurExcept(keep *Input) {
	Walk(r.children, func(e Element) bool {
		if in, ok := e.(*Input); ok && in != keep && in.Active() {
			in.Blur()
		}
		return true
	})
}

// Update samples s once, updates the whole tree and returns the element
// that took the frame's action token, if any.
func (r *Root) Update(s Sampler) (Action, bool) {
	mouse := s.MousePosition()
	screen := s.ScreenSize()
	if !r.started {
		r.prevMouse, r.prevScreen = mouse, screen
		r.started = true
	}

	left, right := SampleMouse(s)
	f := &frame{
		in:    s,
		mouse: mouse,
		delta: mouse.Sub(r.prevMouse),
		left:  left,
		right: right,
		dt:    float64(s.FrameTime()),
		keys:  s.KeysPressed(),
		shift: ShiftDown(s),
	}
	screenDelta := screen.Sub(r.prevScreen)
	r.prevMouse, r.prevScreen = mouse, screen

	updateChildren(f, r.children, Rect{W: screen.X, H: screen.Y}, screenDelta)

	if f.focused != nil && r.ExclusiveFocus {
		r.blurExcept(f.focused)
	}
	r.target = f.target
	r.cursor = cursorFor(f.target)
	if f.target == nil {
		return Action{}, false
	}

	st := f.target.State()
	a := Action{Kind: f.target.Kind()}
	if err := copier.Copy(&a, st); err != nil {
		panic(fmt.Sprintf("ui: snapshot action %d: %v", st.ID, err))
	}
	return a, true
}

// cursorFor maps the action target to a cursor hint. Only hover and left
// button events change the cursor.
func cursorFor(e Element) Cursor {
	if e == nil || !active(e.State().Event) {
		return CursorDefault
	}
	st := e.State()
	switch {
	case e.Kind() == KindInput:
		return CursorText
	case st.Draggable && st.Holding:
		return CursorMove
	case st.ShowHover:
		return CursorPointer
	}
	return CursorDefault
}

// Render draws the background and then every element, later siblings on
// top.
func (r *Root) Render(rd Renderer) {
	if r.started && r.Background.A > 0 {
		rd.DrawRectangle(0, 0, r.prevScreen.X, r.prevScreen.Y, r.Background)
	}
	renderChildren(rd, &r.Theme, r.children, r.Background)
}
