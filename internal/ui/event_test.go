package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArbitrate(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		inBounds  bool
		prev      Event
		holding   bool
		left      MouseAction
		right     MouseAction
		want      Verdict
	}{
		{
			name:      "hover when idle",
			available: true, inBounds: true,
			want: Verdict{Event: Hover, Claimed: true},
		},
		{
			name:      "left down inside starts holding",
			available: true, inBounds: true, prev: Hover,
			left: MouseDown,
			want: Verdict{Event: LClick, Holding: true, Claimed: true},
		},
		{
			name:      "left hold keeps holding",
			available: true, inBounds: true, prev: LClick, holding: true,
			left: MouseHold,
			want: Verdict{Event: Hold, Holding: true, Claimed: true},
		},
		{
			name:      "release after hold",
			available: true, inBounds: true, prev: Hold, holding: true,
			left: MouseRelease,
			want: Verdict{Event: LRelease, Claimed: true},
		},
		{
			name:      "release without a press stays hover",
			available: true, inBounds: true, prev: Hover,
			left: MouseRelease,
			want: Verdict{Event: Hover, Claimed: true},
		},
		{
			name:      "hover after release",
			available: true, inBounds: true, prev: LRelease,
			want: Verdict{Event: Hover, Claimed: true},
		},
		{
			name:      "right down",
			available: true, inBounds: true, prev: Hover,
			right: MouseDown,
			want: Verdict{Event: RClick, Claimed: true},
		},
		{
			name:      "right release",
			available: true, inBounds: true, prev: RClick,
			right: MouseRelease,
			want: Verdict{Event: RRelease, Claimed: true},
		},
		{
			name:      "left wins over right",
			available: true, inBounds: true,
			left: MouseDown, right: MouseDown,
			want: Verdict{Event: LClick, Holding: true, Claimed: true},
		},
		{
			name:     "token taken",
			inBounds: true, prev: Hover,
			want: Verdict{Event: None},
		},
		{
			name:     "token taken, press inside is not outer",
			inBounds: true,
			left:     MouseDown,
			want:     Verdict{Event: None},
		},
		{
			name: "outer click without token",
			left: MouseDown,
			want: Verdict{Event: LClickOuter},
		},
		{
			name:      "outer click with token",
			available: true, prev: Hover,
			left: MouseDown,
			want: Verdict{Event: LClickOuter},
		},
		{
			name:      "release outside drops the hold",
			available: true, prev: Hold, holding: true,
			left: MouseRelease,
			want: Verdict{Event: None},
		},
		{
			name:     "release under another element drops the hold",
			inBounds: true, prev: Hold, holding: true,
			left: MouseRelease,
			want: Verdict{Event: None},
		},
		{
			name:    "hold survives leaving the bounds",
			prev:    Hold,
			holding: true,
			left:    MouseHold,
			want:    Verdict{Event: None, Holding: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Arbitrate(tt.available, tt.inBounds, tt.prev, tt.holding, tt.left, tt.right)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Arbitrate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEventOrder(t *testing.T) {
	order := []Event{None, Hover, Hold, LClickOuter, LClick, RClick, LRelease, RRelease}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v should sort before %v", order[i-1], order[i])
		}
	}
	if LClickOuter.Owned() || None.Owned() {
		t.Error("None and LClickOuter are not owned events")
	}
	if got := Event(42).String(); got != "Event(42)" {
		t.Errorf("String() = %q", got)
	}
}
