package headless

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"frameui/internal/ui"
)

const clickScript = `
screen: [640, 480]
dt: 0.1
frames:
  - mouse: [20, 20]
    left: down
  - left: release
  - pressed: [h, i]
    down: [left_shift]
  - down: [backspace]
    repeat: 3
  - mouse: [300, 300]
    screen: [800, 600]
    dt: 0.05
    right: down
`

func TestScriptFrames(t *testing.T) {
	s, err := ParseScript([]byte(clickScript))
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Frames()
	if err != nil {
		t.Fatal(err)
	}

	base := Frame{Mouse: ui.Vec2{X: 20, Y: 20}, Screen: ui.Vec2{X: 640, Y: 480}, DT: 0.1}
	bs := base.Holding(ui.KeyBackspace)
	want := []Frame{
		base.With(ui.MouseDown),
		base.With(ui.MouseRelease),
		base.Keys(ui.KeyH, ui.KeyI).Holding(ui.KeyLeftShift),
		bs, bs, bs,
		{Mouse: ui.Vec2{X: 300, Y: 300}, Screen: ui.Vec2{X: 800, Y: 600}, DT: 0.05, Right: ui.MouseDown},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Frames() mismatch (-want +got):\n%s", diff)
	}
}

func TestScriptErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":   "frames: [",
		"bad action": "frames:\n  - left: tap\n",
		"bad key":    "frames:\n  - pressed: [hyper]\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := ParseScript([]byte(src))
			if err == nil {
				_, err = s.Frames()
			}
			if err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadScriptDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte("frames:\n  - {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.DT != defaultDT {
		t.Errorf("DT = %v; want %v", s.DT, float32(defaultDT))
	}
	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing script should fail")
	}
}

func TestFrameSampler(t *testing.T) {
	f := Frame{Left: ui.MouseHold}.Keys(ui.KeyA)
	if !f.IsMouseButtonDown(ui.MouseLeft) || f.IsMouseButtonPressed(ui.MouseLeft) {
		t.Error("hold should read as down but not pressed")
	}
	if f.IsMouseButtonDown(ui.MouseRight) {
		t.Error("right button should be up")
	}
	if !f.IsKeyDown(ui.KeyA) {
		t.Error("pressed keys count as down")
	}
	if got := ui.SampleButton(f.With(ui.MouseRelease), ui.MouseLeft); got != ui.MouseRelease {
		t.Errorf("SampleButton = %v; want release", got)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	w, h := rec.MeasureText("abcd", "", 20)
	if w != 40 || h != 20 {
		t.Errorf("MeasureText = %v x %v; want 40 x 20", w, h)
	}
	if w, _ := rec.MeasureText("日本", "", 20); w != 40 {
		t.Errorf("wide runes should take two cells, got width %v", w)
	}

	root := ui.NewRoot(ui.DefaultTheme())
	root.AddChild(ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(0, 0, 100, 30), Text: "Go"}))
	root.AddChild(ui.NewRadio(root.NewID(), ui.RadioParams{Rect: ui.PxRect(0, 40, 100, 30), Label: "on", Checked: true}))
	root.Update(Frame{Screen: ui.Vec2{X: 320, Y: 240}})
	root.Render(rec)

	if diff := cmp.Diff([]string{"Go", "on"}, rec.Texts()); diff != "" {
		t.Errorf("Texts() mismatch (-want +got):\n%s", diff)
	}
	// Button: two end caps. Radio: outer circle and check dot.
	if n := rec.Count(OpPoly); n != 4 {
		t.Errorf("%d polygons; want 4", n)
	}
	rec.Reset()
	if len(rec.Cmds) != 0 {
		t.Error("Reset kept commands")
	}
}
