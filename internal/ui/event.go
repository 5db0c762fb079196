package ui

import "fmt"

// Event is what happened to an element this frame. The order matters:
// callers compare e < Hold to mean "not pressed yet".
type Event uint8

const (
	None Event = iota
	Hover
	Hold
	LClickOuter
	LClick
	RClick
	LRelease
	RRelease
)

var eventNames = [...]string{"none", "hover", "hold", "lclick-outer", "lclick", "rclick", "lrelease", "rrelease"}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", e)
}

// Owned reports whether e is an event only the frame's action target may
// hold. LClickOuter is not owned: every element missed by a click gets it.
func (e Event) Owned() bool {
	switch e {
	case Hover, Hold, LClick, RClick, LRelease, RRelease:
		return true
	}
	return false
}

// Verdict is the outcome of arbitrating one element for one frame.
type Verdict struct {
	Event   Event
	Holding bool
	Claimed bool // the element took the frame's action token
}

// Arbitrate derives an element's event from the previous frame's event and
// hold flag, this frame's pointer samples, the hit test, and whether the
// action token is still free.
func Arbitrate(available, inBounds bool, prev Event, holding bool, left, right MouseAction) Verdict {
	v := Verdict{Event: None, Holding: holding}
	if available && inBounds {
		v.Claimed = true
		switch prev {
		case None, Hover, LRelease, RRelease:
			v.Event = Hover
		}
		switch {
		case left == MouseDown:
			v.Event = LClick
			v.Holding = true
		case left == MouseHold:
			v.Event = Hold
		case left == MouseRelease:
			if v.Holding {
				v.Event = LRelease
			}
			v.Holding = false
		case right == MouseDown:
			v.Event = RClick
		case right == MouseRelease:
			v.Event = RRelease
		}
	}
	if !inBounds && left == MouseDown {
		v.Event = LClickOuter
	}
	if left == MouseRelease && v.Holding {
		v.Holding = false
	}
	return v
}
