package ui_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"frameui/internal/headless"
	"frameui/internal/ui"
)

var screen = headless.Frame{Screen: ui.Vec2{X: 800, Y: 600}, DT: 0.1}

func newRoot() *ui.Root {
	return ui.NewRoot(ui.DefaultTheme())
}

// checkOwnership fails the test when more than one element holds an owned
// event or the pointer capture.
func checkOwnership(t *testing.T, root *ui.Root) {
	t.Helper()
	var owners, holders []ui.ID
	ui.Walk(root.Children(), func(e ui.Element) bool {
		st := e.State()
		if st.Event.Owned() {
			owners = append(owners, st.ID)
		}
		if st.Holding {
			holders = append(holders, st.ID)
		}
		return true
	})
	if len(owners) > 1 {
		t.Fatalf("elements %v all hold an owned event", owners)
	}
	if len(holders) > 1 {
		t.Fatalf("elements %v are all holding the pointer", holders)
	}
}

func TestTopmostWins(t *testing.T) {
	root := newRoot()
	a := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(0, 0, 100, 100)})
	b := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(50, 50, 100, 100)})
	root.AddChild(a)
	root.AddChild(b)

	act, ok := root.Update(screen.At(75, 75).With(ui.MouseDown))
	if !ok || act.ID != b.State().ID {
		t.Fatalf("action = %+v, %v; want the box added last", act, ok)
	}
	if got := b.State().Event; got != ui.LClick {
		t.Errorf("top box event = %v; want lclick", got)
	}
	if got := a.State().Event; got != ui.None {
		t.Errorf("bottom box event = %v; want none", got)
	}
	checkOwnership(t, root)
}

func TestChildrenBeforeParent(t *testing.T) {
	root := newRoot()
	win := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(100, 100, 300, 200)})
	btn := ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(10, 10, 100, 30), Text: "OK"})
	win.AddChild(btn)
	root.AddChild(win)

	act, ok := root.Update(screen.At(120, 120).With(ui.MouseDown))
	if !ok || act.ID != btn.State().ID || act.Kind != ui.KindButton {
		t.Fatalf("action = %+v; want the button", act)
	}
	if got := win.State().Event; got != ui.None {
		t.Errorf("window event = %v; want none", got)
	}
	if want := (ui.Rect{X: 110, Y: 110, W: 100, H: 30}); btn.State().Abs != want {
		t.Errorf("button abs = %v; want %v", btn.State().Abs, want)
	}
}

func TestClickReleasePairing(t *testing.T) {
	root := newRoot()
	btn := ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(10, 10, 100, 30)})
	root.AddChild(btn)

	type step struct {
		event   ui.Event
		holding bool
	}
	frames := append(screen.Click(20, 20), screen.At(20, 20))
	var got []step
	for _, f := range frames {
		root.Update(f)
		got = append(got, step{btn.State().Event, btn.State().Holding})
		checkOwnership(t, root)
	}
	want := []step{{ui.LClick, true}, {ui.LRelease, false}, {ui.Hover, false}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(step{})); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestOutsideClick(t *testing.T) {
	root := newRoot()
	a := ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(0, 0, 100, 30)})
	b := ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(200, 200, 100, 30)})
	root.AddChild(a)
	root.AddChild(b)

	root.Update(screen.At(210, 210).With(ui.MouseDown))
	if got := b.State().Event; got != ui.LClick {
		t.Errorf("clicked button event = %v; want lclick", got)
	}
	if got := a.State().Event; got != ui.LClickOuter {
		t.Errorf("other button event = %v; want lclick-outer", got)
	}

	root.Update(screen.At(210, 210).With(ui.MouseRelease))
	root.Update(screen.At(500, 500).With(ui.MouseDown))
	if got := b.State().Event; got != ui.LClickOuter {
		t.Errorf("click on empty space: event = %v; want lclick-outer", got)
	}
}

func TestReleaseOutsideDropsHold(t *testing.T) {
	root := newRoot()
	btn := ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(10, 10, 100, 30)})
	root.AddChild(btn)

	headless.Run(root,
		screen.At(20, 20).With(ui.MouseDown),
		screen.At(300, 300).With(ui.MouseHold),
	)
	if !btn.State().Holding {
		t.Fatal("leaving the bounds should not drop the hold")
	}
	root.Update(screen.At(300, 300).With(ui.MouseRelease))
	if btn.State().Holding || btn.State().Event == ui.LRelease {
		t.Errorf("release outside: holding=%v event=%v", btn.State().Holding, btn.State().Event)
	}
}

func TestDrag(t *testing.T) {
	root := newRoot()
	win := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(100, 100, 200, 100), Draggable: true})
	label := ui.NewText(root.NewID(), ui.TextParams{Rect: ui.PxRect(10, 10, 50, 20), Text: "title"})
	win.AddChild(label)
	root.AddChild(win)

	res := headless.Run(root,
		screen.At(150, 150).With(ui.MouseDown),
		screen.At(170, 160).With(ui.MouseHold),
	)
	if want := (ui.Rect{X: 120, Y: 110, W: 200, H: 100}); win.State().Abs != want {
		t.Fatalf("dragged window abs = %v; want %v", win.State().Abs, want)
	}
	if want := (ui.Rect{X: 130, Y: 120, W: 50, H: 20}); label.State().Abs != want {
		t.Errorf("child abs = %v; want %v", label.State().Abs, want)
	}
	if res[1].Cursor != ui.CursorMove {
		t.Errorf("cursor while dragging = %v; want move", res[1].Cursor)
	}

	held := win.State().Abs
	for range 5 {
		root.Update(screen.At(170, 160).With(ui.MouseHold))
		if win.State().Abs != held {
			t.Fatalf("window moved without pointer movement: %v -> %v", held, win.State().Abs)
		}
	}

	root.Update(screen.At(170, 160).With(ui.MouseRelease))
	root.Update(screen.At(200, 200))
	if win.State().Abs != held {
		t.Errorf("window moved after release: %v", win.State().Abs)
	}
}

func TestTextIsNotDraggedUnlessFlagged(t *testing.T) {
	root := newRoot()
	label := ui.NewText(root.NewID(), ui.TextParams{Rect: ui.PxRect(10, 10, 100, 20)})
	root.AddChild(label)

	headless.Run(root,
		screen.At(20, 20).With(ui.MouseDown),
		screen.At(40, 30).With(ui.MouseHold),
	)
	if got := label.State().Abs.Origin(); got != (ui.Vec2{X: 10, Y: 10}) {
		t.Errorf("plain text moved to %v", got)
	}
}

func TestPercentLayoutConverges(t *testing.T) {
	root := newRoot()
	parent := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(0, 0, 200, 100)})
	child := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.RelRect{W: ui.Pct(0.5), H: ui.Pct(1)}})
	parent.AddChild(child)
	root.AddChild(parent)

	root.Update(screen.At(700, 500))
	if got := child.State().Abs.W; got != 100 {
		t.Fatalf("child width = %v; want 100", got)
	}
	parent.State().Rel.W = ui.Px(400)
	root.Update(screen.At(700, 500))
	if got := child.State().Abs.W; got != 200 {
		t.Errorf("child width after resize = %v; want 200", got)
	}
}

func TestAnchorsFollowScreenResize(t *testing.T) {
	root := newRoot()
	win := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.RelRect{X: ui.Px(0), Y: ui.Px(0), W: ui.Pct(0.5), H: ui.Px(200)}})
	closeBtn := ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(370, 0, 30, 30), Align: ui.TopRight, Text: "x"})
	badge := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(700, 550, 100, 50), Align: ui.BottomRight})
	win.AddChild(closeBtn)
	root.AddChild(win)
	root.AddChild(badge)

	root.Update(screen)
	wide := screen
	wide.Screen = ui.Vec2{X: 1000, Y: 700}
	root.Update(wide)

	if got := win.State().Abs.W; got != 500 {
		t.Errorf("window width = %v; want 500", got)
	}
	if got := closeBtn.State().Abs.X; got != 470 {
		t.Errorf("close button x = %v; want 470", got)
	}
	if got := badge.State().Abs.Origin(); got != (ui.Vec2{X: 900, Y: 650}) {
		t.Errorf("badge origin = %v; want {900 650}", got)
	}
}

func TestRadioToggle(t *testing.T) {
	root := newRoot()
	r := ui.NewRadio(root.NewID(), ui.RadioParams{Rect: ui.PxRect(10, 10, 100, 30), Label: "sound"})
	root.AddChild(r)

	headless.Run(root, screen.Click(20, 20)...)
	if !r.Checked {
		t.Fatal("radio should be checked after a click")
	}
	headless.Run(root, screen.At(20, 20), screen.At(20, 20).With(ui.MouseHold))
	if !r.Checked {
		t.Fatal("hovering and holding should not toggle")
	}
	right := screen.At(20, 20)
	right.Right = ui.MouseDown
	root.Update(right)
	right.Right = ui.MouseRelease
	root.Update(right)
	if !r.Checked {
		t.Fatal("right click should not toggle")
	}
	headless.Run(root, screen.Click(20, 20)...)
	if r.Checked {
		t.Error("second click should uncheck")
	}
}

func TestCursorHint(t *testing.T) {
	root := newRoot()
	plain := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(0, 0, 100, 100)})
	hover := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(200, 0, 100, 100), ShowHover: true})
	btn := ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(0, 200, 100, 30)})
	field := ui.NewInput(root.NewID(), ui.InputParams{Rect: ui.PxRect(200, 200, 100, 30)})
	for _, e := range []ui.Element{plain, hover, btn, field} {
		root.AddChild(e)
	}

	tests := []struct {
		name string
		at   ui.Vec2
		want ui.Cursor
	}{
		{"empty space", ui.Vec2{X: 700, Y: 500}, ui.CursorDefault},
		{"plain box", ui.Vec2{X: 50, Y: 50}, ui.CursorDefault},
		{"hover box", ui.Vec2{X: 250, Y: 50}, ui.CursorPointer},
		{"button", ui.Vec2{X: 50, Y: 210}, ui.CursorPointer},
		{"input", ui.Vec2{X: 250, Y: 210}, ui.CursorText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root.Update(screen.At(tt.at.X, tt.at.Y))
			if got := root.Cursor(); got != tt.want {
				t.Errorf("Cursor() = %v; want %v", got, tt.want)
			}
		})
	}

	for _, tt := range []struct {
		name string
		x, y float32
	}{
		{"button", 50, 210},
		{"hover box", 250, 50},
		{"input", 250, 210},
	} {
		t.Run("right click on "+tt.name, func(t *testing.T) {
			f := screen.At(tt.x, tt.y)
			f.Right = ui.MouseDown
			root.Update(f)
			if got := root.Cursor(); got != ui.CursorDefault {
				t.Errorf("Cursor() on right press = %v; want default", got)
			}
			f.Right = ui.MouseRelease
			root.Update(f)
			if got := root.Cursor(); got != ui.CursorDefault {
				t.Errorf("Cursor() on right release = %v; want default", got)
			}
			root.Update(screen.At(tt.x, tt.y))
			if got := root.Cursor(); got == ui.CursorDefault {
				t.Error("hovering again should restore the hint")
			}
		})
	}
}

func TestActionCarriesData(t *testing.T) {
	root := newRoot()
	btn := ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(0, 0, 100, 30)})
	btn.State().Data = "save"
	root.AddChild(btn)

	act, ok := root.Update(screen.At(10, 10).With(ui.MouseDown))
	if !ok {
		t.Fatal("no action")
	}
	want := ui.Action{
		ID:      btn.State().ID,
		Kind:    ui.KindButton,
		Event:   ui.LClick,
		Holding: true,
		Abs:     ui.Rect{W: 100, H: 30},
		Data:    "save",
	}
	if diff := cmp.Diff(want, act); diff != "" {
		t.Errorf("action mismatch (-want +got):\n%s", diff)
	}
	if root.Target() != ui.Element(btn) {
		t.Error("Target() should be the button")
	}

	if _, ok := root.Update(screen.At(700, 500)); ok {
		t.Error("no element under the pointer should give no action")
	}
}

func TestTreeEditing(t *testing.T) {
	root := newRoot()
	if id := root.NewID(); id != 1 {
		t.Fatalf("first id = %d; want 1", id)
	}
	win := ui.NewBox(root.NewID(), ui.BoxParams{})
	inner := ui.NewBox(root.NewID(), ui.BoxParams{})
	leaf := ui.NewText(root.NewID(), ui.TextParams{})
	inner.AddChild(leaf)
	win.AddChild(inner)
	root.AddChild(win)

	e, ok := root.Find(leaf.State().ID)
	if !ok || e != ui.Element(leaf) {
		t.Fatalf("Find(%d) = %v, %v", leaf.State().ID, e, ok)
	}
	if _, ok := root.Find(99); ok {
		t.Error("Find should miss unknown ids")
	}
	if !root.RemoveChild(leaf.State().ID) {
		t.Fatal("RemoveChild of a nested element failed")
	}
	if len(inner.Children()) != 0 {
		t.Errorf("inner box still has %d children", len(inner.Children()))
	}
	if root.RemoveChild(leaf.State().ID) {
		t.Error("removing twice should report false")
	}
	if !win.RemoveChild(inner.State().ID) || len(win.Children()) != 0 {
		t.Error("Box.RemoveChild failed")
	}
}

// TestSingleOwnership drives an overlapping tree with a long pseudo random
// but well formed input sequence and checks ownership after every frame.
func TestSingleOwnership(t *testing.T) {
	root := newRoot()
	win := ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(50, 50, 400, 300), Draggable: true, ShowHover: true})
	win.AddChild(ui.NewButton(root.NewID(), ui.ButtonParams{Rect: ui.PxRect(10, 10, 120, 30)}))
	win.AddChild(ui.NewInput(root.NewID(), ui.InputParams{Rect: ui.RelRect{X: ui.Px(10), Y: ui.Px(60), W: ui.Pct(0.8), H: ui.Px(30)}}))
	win.AddChild(ui.NewRadio(root.NewID(), ui.RadioParams{Rect: ui.PxRect(10, 100, 100, 30)}))
	root.AddChild(win)
	root.AddChild(ui.NewBox(root.NewID(), ui.BoxParams{Rect: ui.PxRect(300, 200, 300, 300), Draggable: true}))
	root.AddChild(ui.NewText(root.NewID(), ui.TextParams{Rect: ui.PxRect(0, 0, 800, 20), Draggable: true}))

	rng := rand.New(rand.NewPCG(1, 2))
	var leftDown, rightDown bool
	next := func(down *bool) ui.MouseAction {
		if *down {
			if rng.IntN(4) == 0 {
				*down = false
				return ui.MouseRelease
			}
			return ui.MouseHold
		}
		if rng.IntN(5) == 0 {
			*down = true
			return ui.MouseDown
		}
		return ui.MouseNone
	}

	f := screen
	for i := range 2000 {
		f.Mouse = ui.Vec2{X: float32(rng.IntN(800)), Y: float32(rng.IntN(600))}
		f.Left = next(&leftDown)
		f.Right = next(&rightDown)
		act, ok := root.Update(f)
		checkOwnership(t, root)
		if ok && !act.Event.Owned() && act.Event != ui.None {
			t.Fatalf("frame %d: action target has event %v", i, act.Event)
		}
	}
}
