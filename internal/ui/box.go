package ui

import "image/color"

var _ Element = (*Box)(nil)

// BoxParams configures a new Box. Zero fields take the defaults.
type BoxParams struct {
	Rect       RelRect
	Align      Align
	Draggable  bool
	ShowHover  bool
	Color      color.RGBA // body colour
	HoverColor color.RGBA // body colour while hovered or pressed
	NoShadow   bool
	Theme      *Theme
}

// Box is a container. It owns its children and draws them on top of its
// body in insertion order.
type Box struct {
	state      State
	children   []Element
	Color      color.RGBA
	HoverColor color.RGBA
	Shadow     bool
}

// NewBox builds a box. Without a theme the body is gray.
func NewBox(id ID, params BoxParams) *Box {
	p := withDefaults(BoxParams{Rect: PxRect(0, 0, 100, 100)}, params)
	base := Gray
	if p.Theme != nil {
		base = p.Theme.Primary
	}
	body := colorOr(p.Color, base)
	return &Box{
		state: State{
			ID:        id,
			Rel:       p.Rect,
			Align:     p.Align,
			Draggable: p.Draggable,
			ShowHover: p.ShowHover,
		},
		Color:      body,
		HoverColor: colorOr(p.HoverColor, Shade(body, 20)),
		Shadow:     !p.NoShadow,
	}
}

func (b *Box) State() *State { return &b.state }
func (b *Box) Kind() Kind    { return KindBox }

// AddChild appends e; it is drawn above the children added before it.
func (b *Box) AddChild(e Element) {
	b.children = append(b.children, e)
}

// RemoveChild removes the element with id from this box's subtree.
func (b *Box) RemoveChild(id ID) bool {
	var ok bool
	b.children, ok = remove(b.children, id)
	return ok
}

// Children returns the direct children in draw order.
func (b *Box) Children() []Element {
	return b.children
}

func (b *Box) update(f *frame, parent Rect, parentDelta Vec2) {
	delta := b.state.layout(f, parent, parentDelta, b.state.Draggable)
	updateChildren(f, b.children, b.state.Abs, delta)
	b.state.arbitrate(f, b)
}

func (b *Box) bodyColor() color.RGBA {
	if active(b.state.Event) {
		return b.HoverColor
	}
	return b.Color
}

func (b *Box) render(rd Renderer, th *Theme, _ color.RGBA) {
	r := b.state.Abs
	body := b.bodyColor()
	if b.Shadow {
		rd.DrawRectangle(r.X-1, r.Y-1, r.W+4, r.H+6, th.Shadow)
	}
	rd.DrawRectangle(r.X, r.Y, r.W, r.H, body)
	renderChildren(rd, th, b.children, body)
}
