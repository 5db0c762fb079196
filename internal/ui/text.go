package ui

import "image/color"

var _ Element = (*Text)(nil)

// TextParams configures a new Text.
type TextParams struct {
	Rect      RelRect
	Align     Align
	Text      string
	FontSize  float32
	Draggable bool
	Color     color.RGBA // zero: contrast against the parent
	Theme     *Theme
}

// Text is a single line label. It is only a drag target when built
// draggable.
type Text struct {
	state    State
	Text     string
	FontSize float32
	Color    color.RGBA
}

func NewText(id ID, params TextParams) *Text {
	p := withDefaults(TextParams{
		Rect:     PxRect(0, 0, 10, 10),
		Text:     "[Display Text]",
		FontSize: 18,
	}, params)
	if p.Theme != nil && params.FontSize == 0 {
		p.FontSize = p.Theme.FontSize
	}
	return &Text{
		state: State{
			ID:        id,
			Rel:       p.Rect,
			Align:     p.Align,
			Draggable: p.Draggable,
		},
		Text:     p.Text,
		FontSize: p.FontSize,
		Color:    p.Color,
	}
}

func (t *Text) State() *State { return &t.state }
func (t *Text) Kind() Kind    { return KindText }

func (t *Text) update(f *frame, parent Rect, parentDelta Vec2) {
	t.state.layout(f, parent, parentDelta, t.state.Draggable)
	t.state.arbitrate(f, t)
}

func (t *Text) render(rd Renderer, th *Theme, parentColor color.RGBA) {
	r := t.state.Abs
	_, h := rd.MeasureText(t.Text, th.Font, t.FontSize)
	c := colorOr(t.Color, ContrastColor(parentColor))
	rd.DrawText(t.Text, snap(r.X), snap(r.Y+(r.H-h)/2), th.Font, t.FontSize, c)
}
