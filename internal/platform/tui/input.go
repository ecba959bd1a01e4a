package tui

import "github.com/vovakirdan/mars-arcade/internal/core"

// Hold windows in ticks. A first press has to outlast the terminal's
// auto-repeat delay; each repeat only needs to bridge the repeat interval.
const (
	pressHold  = 30
	repeatHold = 6
	tapHold    = 2
)

// HeldInput turns key presses into held actions. Terminals report presses
// and auto-repeats but never releases, so every press holds its action for a
// short window that repeats keep extending.
type HeldInput struct {
	ticks [core.ActionCount]int
	quiet [core.ActionCount]int // ticks until a tap counts as a new press
}

// Toggles act on the press edge. They are held for a tap only, and
// auto-repeat of a held key does not press them again.
var taps = map[core.Action]bool{
	core.ActionPause:      true,
	core.ActionRestart:    true,
	core.ActionModeSwitch: true,
}

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// Press records a key press for a. Pressing a direction releases the
// opposite one.
func (h *HeldInput) Press(a core.Action) {
	if a < 0 || a >= core.ActionCount {
		return
	}
	if taps[a] {
		if h.quiet[a] > 0 {
			h.quiet[a] = max(h.quiet[a], repeatHold)
			return
		}
		h.ticks[a] = tapHold
		h.quiet[a] = pressHold
		return
	}
	if o, ok := opposite[a]; ok {
		h.ticks[o] = 0
	}
	if h.ticks[a] > 0 {
		h.ticks[a] = max(h.ticks[a], repeatHold)
		return
	}
	h.ticks[a] = pressHold
}

// Frame returns the actions held this tick and ages every hold by one tick.
func (h *HeldInput) Frame() core.InputState {
	var in core.InputState
	for a := range core.ActionCount {
		if h.ticks[a] > 0 {
			in = in.With(a)
			h.ticks[a]--
		}
		if h.quiet[a] > 0 {
			h.quiet[a]--
		}
	}
	return in
}

// Clear releases every action.
func (h *HeldInput) Clear() {
	h.ticks = [core.ActionCount]int{}
	h.quiet = [core.ActionCount]int{}
}
