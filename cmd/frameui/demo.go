package main

import (
	"frameui/internal/debug"
	"frameui/internal/logger"
	"frameui/internal/ui"
)

// Button payloads.
const (
	actionClose  = "close"
	actionReopen = "reopen"
	actionSubmit = "submit"
	actionClear  = "clear"
)

// demo is the sample tree: a draggable window with a close button, a
// title, a name field, two options and two buttons, plus a reopen button
// on the background.
type demo struct {
	root    *ui.Root
	overlay *debug.Overlay
	log     *logger.Logger

	window *ui.Box
	name   *ui.Input
	sound  *ui.Radio
	music  *ui.Radio
	status *ui.Text

	screenW float32
	last    ui.Action
}

// windowShare is the window's width as a fraction of the screen.
const windowShare = 0.45

func newDemo(th ui.Theme, screen ui.Vec2, exclusive bool, log *logger.Logger) *demo {
	root := ui.NewRoot(th)
	root.ExclusiveFocus = exclusive
	d := &demo{root: root, overlay: debug.New(), log: log}
	d.overlay.Font = th.Font

	reopen := ui.NewButton(root.NewID(), ui.ButtonParams{
		Rect:  ui.PxRect(screen.X-130, screen.Y-50, 110, 30),
		Align: ui.BottomRight,
		Text:  "Reopen",
		Theme: &th,
	})
	reopen.State().Data = actionReopen
	root.AddChild(reopen)

	d.window = ui.NewBox(root.NewID(), ui.BoxParams{
		Rect:      ui.RelRect{X: ui.Px(60), Y: ui.Px(60), W: ui.Pct(windowShare), H: ui.Px(280)},
		Draggable: true,
		Theme:     &th,
	})
	title := ui.NewText(root.NewID(), ui.TextParams{
		Rect:  ui.PxRect(12, 8, 200, 24),
		Text:  "Profile",
		Theme: &th,
	})
	// Placed for the starting window width; the anchor keeps it in the
	// corner when the window follows a screen resize.
	closeBtn := ui.NewButton(root.NewID(), ui.ButtonParams{
		Rect:  ui.PxRect(screen.X*windowShare-34, 6, 28, 28),
		Align: ui.TopRight,
		Text:  "x",
		Theme: &th,
	})
	closeBtn.State().Data = actionClose

	d.name = ui.NewInput(root.NewID(), ui.InputParams{
		Rect:        ui.RelRect{X: ui.Px(12), Y: ui.Px(48), W: ui.Pct(0.9), H: ui.Px(32)},
		Placeholder: "Your name",
		Theme:       &th,
	})
	d.sound = ui.NewRadio(root.NewID(), ui.RadioParams{
		Rect:    ui.PxRect(12, 96, 160, 30),
		Label:   "Sound",
		Checked: true,
		Theme:   &th,
	})
	d.music = ui.NewRadio(root.NewID(), ui.RadioParams{
		Rect:  ui.PxRect(12, 130, 160, 30),
		Label: "Music",
		Theme: &th,
	})
	submit := ui.NewButton(root.NewID(), ui.ButtonParams{
		Rect:  ui.PxRect(12, 176, 110, 32),
		Text:  "Submit",
		Theme: &th,
	})
	submit.State().Data = actionSubmit
	clearBtn := ui.NewButton(root.NewID(), ui.ButtonParams{
		Rect:  ui.PxRect(132, 176, 110, 32),
		Text:  "Clear",
		Theme: &th,
	})
	clearBtn.State().Data = actionClear
	d.status = ui.NewText(root.NewID(), ui.TextParams{
		Rect:     ui.RelRect{X: ui.Px(12), Y: ui.Px(236), W: ui.Pct(0.9), H: ui.Px(24)},
		Text:     " ",
		FontSize: 16,
		Theme:    &th,
	})

	for _, e := range []ui.Element{title, d.name, d.sound, d.music, submit, clearBtn, d.status, closeBtn} {
		d.window.AddChild(e)
	}
	root.AddChild(d.window)
	return d
}

// Update runs one frame of the tree and reacts to completed clicks.
func (d *demo) Update(s ui.Sampler) ui.Cursor {
	d.screenW = s.ScreenSize().X
	d.overlay.Update(s.FrameTime())

	act, ok := d.root.Update(s)
	if !ok {
		d.last = ui.Action{}
		return d.root.Cursor()
	}
	if act.ID != d.last.ID || act.Event != d.last.Event {
		switch act.Event {
		case ui.LClick, ui.RClick, ui.LRelease, ui.RRelease:
			d.log.Logf("action id=%d kind=%s event=%s", act.ID, act.Kind, act.Event)
		}
	}
	d.last = act
	if act.Event == ui.LRelease {
		d.handle(act)
	}
	return d.root.Cursor()
}

func (d *demo) handle(act ui.Action) {
	name, _ := act.Data.(string)
	switch name {
	case actionClose:
		d.root.RemoveChild(d.window.State().ID)
		d.log.Log("window closed")
	case actionReopen:
		if _, open := d.root.Find(d.window.State().ID); !open {
			d.root.AddChild(d.window)
			d.log.Log("window reopened")
		}
	case actionSubmit:
		d.status.Text = "Saved " + d.summary()
		d.log.Logf("submit %s", d.summary())
	case actionClear:
		d.name.Text = ""
		d.status.Text = " "
	}
}

func (d *demo) summary() string {
	name := d.name.Text
	if name == "" {
		name = "(anonymous)"
	}
	return name + " sound=" + onOff(d.sound.Checked) + " music=" + onOff(d.music.Checked)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Draw renders the tree and the debug overlay on top.
func (d *demo) Draw(rd ui.Renderer) {
	d.root.Render(rd)
	d.overlay.Draw(rd, d.screenW)
}
