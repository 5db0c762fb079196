package rlbackend

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"frameui/internal/ui"
)

var _ ui.Sampler = (*Sampler)(nil)

var buttons = [...]rl.MouseButton{ui.MouseLeft: rl.MouseButtonLeft, ui.MouseRight: rl.MouseButtonRight}

// Sampler snapshots raylib's input state once per frame so every element
// sees the same values.
type Sampler struct {
	keys   []ui.Key // polled in this order
	mouse  ui.Vec2
	state  [len(buttons)]struct{ pressed, down, released bool }
	typed  []ui.Key
	dt     float32
	screen ui.Vec2
}

// NewSampler returns a sampler polling every key the engine knows.
func NewSampler() *Sampler {
	return &Sampler{keys: ui.Keys()}
}

// Poll reads this frame's state. Call it once per frame before Root.Update.
func (s *Sampler) Poll() {
	p := rl.GetMousePosition()
	s.mouse = ui.Vec2{X: p.X, Y: p.Y}
	for i, b := range buttons {
		s.state[i].pressed = rl.IsMouseButtonPressed(b)
		s.state[i].down = rl.IsMouseButtonDown(b)
		s.state[i].released = rl.IsMouseButtonReleased(b)
	}
	s.typed = s.typed[:0]
	for _, k := range s.keys {
		if rl.IsKeyPressed(int32(k)) {
			s.typed = append(s.typed, k)
		}
	}
	s.dt = rl.GetFrameTime()
	s.screen = ui.Vec2{X: float32(rl.GetScreenWidth()), Y: float32(rl.GetScreenHeight())}
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

func (s *Sampler) IsKeyDown(k ui.Key) bool { return rl.IsKeyDown(int32(k)) }

func (s *Sampler) FrameTime() float32 { return s.dt }

func (s *Sampler) ScreenSize() ui.Vec2 { return s.screen }
