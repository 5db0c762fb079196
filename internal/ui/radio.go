package ui

import "image/color"

var _ Element = (*Radio)(nil)

// RadioParams configures a new Radio.
type RadioParams struct {
	Rect    RelRect
	Align   Align
	Label   string
	Checked bool
	Theme   *Theme
}

// Radio is a round check toggle with an optional label. Checked flips on
// every completed click.
type Radio struct {
	state       State
	Label       string
	Checked     bool
	CircleColor color.RGBA
}

func NewRadio(id ID, params RadioParams) *Radio {
	p := withDefaults(RadioParams{Rect: PxRect(0, 0, 100, 30)}, params)
	r := &Radio{
		state: State{
			ID:        id,
			Rel:       p.Rect,
			Align:     p.Align,
			ShowHover: true,
		},
		Label:       p.Label,
		Checked:     p.Checked,
		CircleColor: Gray,
	}
	if p.Theme != nil {
		r.CircleColor = p.Theme.Secondary[1]
	}
	return r
}

func (r *Radio) State() *State { return &r.state }
func (r *Radio) Kind() Kind    { return KindRadio }

func (r *Radio) update(f *frame, parent Rect, parentDelta Vec2) {
	r.state.layout(f, parent, parentDelta, false)
	r.state.arbitrate(f, r)
	if r.state.Event == LRelease {
		r.Checked = !r.Checked
	}
}

const (
	radioSides  = 24
	radioRadius = 8
)

func (r *Radio) render(rd Renderer, th *Theme, parentColor color.RGBA) {
	b := r.state.Abs
	cx, cy := b.X+12, b.Y+b.H/2
	fill := r.CircleColor
	if active(r.state.Event) {
		fill = Shade(fill, 15)
	}
	rd.DrawPoly(cx, cy, radioSides, radioRadius, 0, fill)
	if r.Checked {
		rd.DrawPoly(cx, cy, radioSides, radioRadius/2, 0, ContrastColor(fill))
	}
	rd.DrawPolyLines(cx, cy, radioSides, radioRadius, 0, 1, Black)

	if r.Label == "" {
		return
	}
	_, h := rd.MeasureText(r.Label, th.Font, th.FontSize)
	rd.DrawText(r.Label, snap(b.X+24), snap(b.Y+(b.H-h)/2), th.Font, th.FontSize, ContrastColor(parentColor))
}
