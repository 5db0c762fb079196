package headless

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"frameui/internal/ui"
)

// Script is a recorded input session. Mouse position, screen size and
// frame time carry over from frame to frame until a step changes them.
//
//	screen: [800, 600]
//	dt: 0.016
//	frames:
//	  - mouse: [120, 40]
//	    left: down
//	  - left: release
//	  - pressed: [h, i]
//	  - down: [backspace]
//	    repeat: 30
type Script struct {
	Screen [2]float32 `yaml:"screen"`
	DT     float32    `yaml:"dt"`
	Steps  []Step     `yaml:"frames"`
}

// Step is one scripted frame, or Repeat identical frames.
type Step struct {
	Mouse   *[2]float32 `yaml:"mouse,omitempty"`
	Screen  *[2]float32 `yaml:"screen,omitempty"`
	DT      float32     `yaml:"dt,omitempty"`
	Left    string      `yaml:"left,omitempty"`
	Right   string      `yaml:"right,omitempty"`
	Pressed []string    `yaml:"pressed,omitempty"`
	Down    []string    `yaml:"down,omitempty"`
	Repeat  int         `yaml:"repeat,omitempty"`
}

const defaultDT = 1.0 / 60

// LoadScript reads a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if s.DT <= 0 {
		s.DT = defaultDT
	}
	return &s, nil
}

// Frames expands the script into one Frame per tick.
func (s *Script) Frames() ([]Frame, error) {
	cur := Frame{
		Screen: ui.Vec2{X: s.Screen[0], Y: s.Screen[1]},
		DT:     s.DT,
	}
	var out []Frame
	for i, st := range s.Steps {
		if st.Mouse != nil {
			cur.Mouse = ui.Vec2{X: st.Mouse[0], Y: st.Mouse[1]}
		}
		if st.Screen != nil {
			cur.Screen = ui.Vec2{X: st.Screen[0], Y: st.Screen[1]}
		}
		if st.DT > 0 {
			cur.DT = st.DT
		}
		f := cur
		var err error
		if f.Left, err = ParseMouseAction(st.Left); err != nil {
			return nil, fmt.Errorf("frame %d: left: %w", i, err)
		}
		if f.Right, err = ParseMouseAction(st.Right); err != nil {
			return nil, fmt.Errorf("frame %d: right: %w", i, err)
		}
		if f.Pressed, err = parseKeys(st.Pressed); err != nil {
			return nil, fmt.Errorf("frame %d: pressed: %w", i, err)
		}
		if f.Down, err = parseKeys(st.Down); err != nil {
			return nil, fmt.Errorf("frame %d: down: %w", i, err)
		}
		n := max(st.Repeat, 1)
		for range n {
			out = append(out, f)
		}
	}
	return out, nil
}

// ParseMouseAction accepts the names MouseAction.String returns. The empty
// string is MouseNone.
func ParseMouseAction(s string) (ui.MouseAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ui.MouseNone, nil
	case "down":
		return ui.MouseDown, nil
	case "hold":
		return ui.MouseHold, nil
	case "release":
		return ui.MouseRelease, nil
	}
	return ui.MouseNone, fmt.Errorf("unknown mouse action %q", s)
}

func parseKeys(names []string) ([]ui.Key, error) {
	if len(names) == 0 {
		return nil, nil
	}
	keys := make([]ui.Key, 0, len(names))
	for _, n := range names {
		k, err := ui.ParseKey(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
