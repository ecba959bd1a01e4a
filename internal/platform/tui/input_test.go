package tui

import (
	"testing"

	"github.com/vovakirdan/mars-arcade/internal/core"
)

func framesHolding(h *HeldInput, a core.Action, n int) int {
	held := 0
	for range n {
		if h.Frame().Has(a) {
			held++
		}
	}
	return held
}

func TestHeldInputPressHolds(t *testing.T) {
	var h HeldInput
	h.Press(core.ActionRight)

	if got := framesHolding(&h, core.ActionRight, 100); got != pressHold {
		t.Errorf("Right held for %d ticks, expected %d", got, pressHold)
	}
}

func TestHeldInputRepeatExtends(t *testing.T) {
	var h HeldInput
	h.Press(core.ActionRight)
	framesHolding(&h, core.ActionRight, pressHold-1)

	// One tick left; a repeat bridges the next interval.
	h.Press(core.ActionRight)
	if got := framesHolding(&h, core.ActionRight, 100); got != repeatHold {
		t.Errorf("Right held for %d ticks after repeat, expected %d", got, repeatHold)
	}
}

func TestHeldInputOppositeReleases(t *testing.T) {
	var h HeldInput
	h.Press(core.ActionLeft)
	h.Press(core.ActionJump)
	h.Press(core.ActionRight)

	in := h.Frame()
	if in.Has(core.ActionLeft) {
		t.Error("Left should be released by pressing Right")
	}
	if !in.Has(core.ActionRight) || !in.Has(core.ActionJump) {
		t.Errorf("Frame() = %v, expected Right and Jump", in.Actions())
	}
}

func TestHeldInputTaps(t *testing.T) {
	var h HeldInput
	h.Press(core.ActionPause)

	var edges core.EdgeTracker
	presses := 0
	for i := range 60 {
		// Auto-repeat every other tick for the first half second.
		if i < 30 && i%2 == 1 {
			h.Press(core.ActionPause)
		}
		if edges.Update(h.Frame()).Has(core.ActionPause) {
			presses++
		}
	}
	if presses != 1 {
		t.Errorf("held Pause produced %d presses, expected 1", presses)
	}

	h.Press(core.ActionPause)
	if !h.Frame().Has(core.ActionPause) {
		t.Error("Pause after the key went quiet should count again")
	}
}

func TestHeldInputClear(t *testing.T) {
	var h HeldInput
	h.Press(core.ActionFire)
	h.Press(core.ActionModeSwitch)
	h.Clear()

	if in := h.Frame(); !in.Empty() {
		t.Errorf("Frame() after Clear() = %v, expected nothing held", in.Actions())
	}
	h.Press(core.ActionModeSwitch)
	if !h.Frame().Has(core.ActionModeSwitch) {
		t.Error("Clear() should also forget tap repeats")
	}
}
