package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"frameui/internal/ui"
)

var _ ui.Sampler = (*Sampler)(nil)

var buttons = [...]ebiten.MouseButton{ui.MouseLeft: ebiten.MouseButtonLeft, ui.MouseRight: ebiten.MouseButtonRight}

// Sampler snapshots ebiten's input state at the start of each tick.
type Sampler struct {
	keys   []ui.Key
	mouse  ui.Vec2
	state  [len(buttons)]struct{ pressed, down, released bool }
	typed  []ui.Key
	dt     float32
	screen ui.Vec2
}

func NewSampler() *Sampler {
	return &Sampler{keys: ui.Keys()}
}

// Poll reads the state for this tick. screen is the size last reported to
// Layout.
func (s *Sampler) Poll(screen ui.Vec2) {
	x, y := ebiten.CursorPosition()
	s.mouse = ui.Vec2{X: float32(x), Y: float32(y)}
	for i, b := range buttons {
		s.state[i].pressed = inpututil.IsMouseButtonJustPressed(b)
		s.state[i].down = ebiten.IsMouseButtonPressed(b)
		s.state[i].released = inpututil.IsMouseButtonJustReleased(b)
	}
	s.typed = s.typed[:0]
	for _, k := range s.keys {
		if ek, ok := keyMap[k]; ok && inpututil.IsKeyJustPressed(ek) {
			s.typed = append(s.typed, k)
		}
	}
	// Ebiten ticks at a fixed rate.
	s.dt = float32(1 / float64(ebiten.TPS()))
	s.screen = screen
}

func (s *Sampler) MousePosition() ui.Vec2 { return s.mouse }

func (s *Sampler) IsMouseButtonPressed(b ui.MouseButton) bool {
	return int(b) < len(s.state) && s.state[b].pressed
}

func (s *Sampler) IsMouseButtonDown(b ui.MouseButton) bool {
	return int(b) < len(s.state) && s.state[b].down
}

func (s *Sampler) IsMouseButtonReleased(b ui.MouseButton) bool {
	return int(b) < len(s.state) && s.state[b].released
}

func (s *Sampler) KeysPressed() []ui.Key { return s.typed }

func (s *Sampler) IsKeyDown(k ui.Key) bool {
	ek, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func (s *Sampler) FrameTime() float32 { return s.dt }

func (s *Sampler) ScreenSize() ui.Vec2 { return s.screen }
