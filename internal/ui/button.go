package ui

import "image/color"

var _ Element = (*Button)(nil)

// ButtonParams configures a new Button.
type ButtonParams struct {
	Rect  RelRect
	Align Align
	Text  string
	Theme *Theme
}

// Button is a pill shaped push button. It is never draggable.
type Button struct {
	state      State
	Text       string
	Color      color.RGBA // idle
	HoverColor color.RGBA // hovered or just clicked
	HoldColor  color.RGBA // held or just released
}

func NewButton(id ID, params ButtonParams) *Button {
	p := withDefaults(ButtonParams{
		Rect: PxRect(0, 0, 100, 30),
		Text: "Button",
	}, params)
	b := &Button{
		state: State{
			ID:        id,
			Rel:       p.Rect,
			Align:     p.Align,
			ShowHover: true,
		},
		Text:       p.Text,
		Color:      Gray,
		HoverColor: LightGray,
		HoldColor:  Blue,
	}
	if p.Theme != nil {
		b.Color = p.Theme.Secondary[0]
		b.HoverColor = p.Theme.Secondary[1]
		b.HoldColor = p.Theme.Secondary[2]
	}
	return b
}

func (b *Button) State() *State { return &b.state }
func (b *Button) Kind() Kind    { return KindButton }

func (b *Button) update(f *frame, parent Rect, parentDelta Vec2) {
	b.state.layout(f, parent, parentDelta, false)
	b.state.arbitrate(f, b)
}

func (b *Button) fill() color.RGBA {
	switch b.state.Event {
	case Hover, LClick:
		return b.HoverColor
	case Hold, LRelease:
		return b.HoldColor
	}
	return b.Color
}

const pillSides = 36

func (b *Button) render(rd Renderer, th *Theme, _ color.RGBA) {
	r := b.state.Abs
	fill := b.fill()
	rad := r.H / 2
	left, right, cy := r.X+rad, r.X+r.W-rad, r.Y+rad

	rd.DrawPoly(left, cy, pillSides, rad, 0, fill)
	rd.DrawPoly(right, cy, pillSides, rad, 0, fill)
	rd.DrawPolyLines(left, cy, pillSides, rad, 0, 1, Black)
	rd.DrawPolyLines(right, cy, pillSides, rad, 0, 1, Black)
	rd.DrawRectangle(left, r.Y, r.W-r.H, r.H, fill)
	rd.DrawLine(left, r.Y-0.5, right, r.Y-0.5, 1, Black)
	rd.DrawLine(left, r.Y+r.H+0.5, right, r.Y+r.H+0.5, 1, Black)

	w, h := rd.MeasureText(b.Text, th.Font, th.FontSize)
	x := r.X + (r.W-w)/2
	y := r.Y + (r.H-h)/2
	rd.DrawText(b.Text, snap(x), snap(y), th.Font, th.FontSize, ContrastColor(fill))
}
