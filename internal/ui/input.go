package ui

import (
	"image/color"
	"unicode/utf8"
)

var _ Element = (*Input)(nil)

const (
	caretBlink      = 0.5  // seconds between caret visibility toggles
	backspaceDelay  = 0.5  // hold time before backspace starts repeating
	backspaceRepeat = 0.06 // seconds between repeated deletes
	timerEpsilon    = 1e-6

	inputPadding = 5
	caretWidth   = 2
)

// InputParams configures a new Input.
type InputParams struct {
	Rect        RelRect
	Align       Align
	Placeholder string
	Text        string
	Color       color.RGBA
	Theme       *Theme
}

// Input is a single line text field. A completed click toggles focus, a
// click anywhere else blurs it. While focused it takes typed keys.
type Input struct {
	state       State
	Text        string
	Placeholder string
	Color       color.RGBA
	active      bool

	caretTimer     float64
	caretVisible   bool
	backspaceTimer float64
}

func NewInput(id ID, params InputParams) *Input {
	p := withDefaults(InputParams{Rect: PxRect(0, 0, 200, 30)}, params)
	base := LightGray
	if p.Theme != nil {
		base = p.Theme.Primary
	}
	return &Input{
		state: State{
			ID:        id,
			Rel:       p.Rect,
			Align:     p.Align,
			ShowHover: true,
		},
		Text:        p.Text,
		Placeholder: p.Placeholder,
		Color:       colorOr(p.Color, base),
	}
}

func (in *Input) State() *State { return &in.state }
func (in *Input) Kind() Kind    { return KindInput }

// Active reports whether the field has keyboard focus.
func (in *Input) Active() bool { return in.active }

// CaretVisible reports the caret's current blink phase.
func (in *Input) CaretVisible() bool { return in.caretVisible }

// Focus gives the field keyboard focus. The caret starts hidden.
func (in *Input) Focus() {
	if in.active {
		return
	}
	in.active = true
	in.caretTimer = 0
	in.caretVisible = false
	in.backspaceTimer = 0
}

// Blur drops keyboard focus and resets the caret and key repeat.
func (in *Input) Blur() {
	in.active = false
	in.caretTimer = 0
	in.caretVisible = false
	in.backspaceTimer = 0
}

func (in *Input) update(f *frame, parent Rect, parentDelta Vec2) {
	in.state.layout(f, parent, parentDelta, false)
	in.state.arbitrate(f, in)

	switch in.state.Event {
	case LRelease:
		if in.active {
			in.Blur()
			break
		}
		in.Focus()
		f.focused = in
	case LClickOuter:
		in.Blur()
	}
	if !in.active {
		return
	}
	in.typeKeys(f)
	in.backspace(f)
	in.blink(f.dt)
}

func (in *Input) typeKeys(f *frame) {
	for _, k := range f.keys {
		if s, ok := KeyChar(k, f.shift); ok {
			in.Text += s
		}
	}
}

// backspace deletes once on press, then repeats after backspaceDelay every
// backspaceRepeat seconds while the key stays down.
func (in *Input) backspace(f *frame) {
	switch {
	case f.pressed(KeyBackspace):
		in.deleteLast()
		in.backspaceTimer = backspaceDelay
	case f.in.IsKeyDown(KeyBackspace):
		in.backspaceTimer -= f.dt
		if in.backspaceTimer <= timerEpsilon {
			in.deleteLast()
			in.backspaceTimer = backspaceRepeat
		}
	default:
		in.backspaceTimer = 0
	}
}

func (in *Input) deleteLast() {
	if in.Text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(in.Text)
	in.Text = in.Text[:len(in.Text)-size]
}

func (in *Input) blink(dt float64) {
	in.caretTimer += dt
	if in.caretTimer >= caretBlink-timerEpsilon {
		in.caretTimer -= caretBlink
		in.caretVisible = !in.caretVisible
	}
}

func (in *Input) fill() color.RGBA {
	if in.active {
		return Shade(in.Color, 30)
	}
	switch in.state.Event {
	case Hover, LClick:
		return Shade(in.Color, 20)
	case Hold, LRelease:
		return Shade(in.Color, 30)
	}
	return Shade(in.Color, 10)
}

func (in *Input) render(rd Renderer, th *Theme, _ color.RGBA) {
	r := in.state.Abs
	fill := in.fill()
	rd.DrawRectangle(r.X, r.Y, r.W, r.H, fill)

	if in.active || in.Text != "" {
		avail := r.W - 2*inputPadding - caretWidth
		text, w, h := fitTail(rd, in.Text, th.Font, th.FontSize, avail)
		x := r.X + inputPadding
		if text != in.Text {
			x = r.X + r.W - inputPadding - caretWidth - w
		}
		if h == 0 {
			h = th.FontSize
		}
		y := r.Y + (r.H-h)/2
		rd.DrawText(text, snap(x), snap(y), th.Font, th.FontSize, ContrastColor(fill))
		if in.active && in.caretVisible {
			rd.DrawRectangle(snap(x+w+1), snap(y), caretWidth, h, ContrastColor(fill))
		}
	} else if in.Placeholder != "" {
		_, h := rd.MeasureText(in.Placeholder, th.Font, th.FontSize)
		dim := Mix(ContrastColor(fill), fill, 0.45)
		rd.DrawText(in.Placeholder, snap(r.X+inputPadding), snap(r.Y+(r.H-h)/2), th.Font, th.FontSize, dim)
	}
	rd.DrawRectangleLines(r.X, r.Y, r.W, r.H, 1.5, Black)
}

// fitTail returns the longest suffix of s that fits in avail pixels, with
// its measured size. The end of the text, where the caret sits, always
// stays visible.
func fitTail(rd Renderer, s, font string, size, avail float32) (string, float32, float32) {
	w, h := rd.MeasureText(s, font, size)
	for w > avail && s != "" {
		_, n := utf8.DecodeRuneInString(s)
		s = s[n:]
		w, h = rd.MeasureText(s, font, size)
	}
	return s, w, h
}
