package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionUp         Action = iota // W, Up arrow - aim up, climb
	ActionDown                     // S, Down arrow - crouch, aim down
	ActionLeft                     // A, Left arrow
	ActionRight                    // D, Right arrow
	ActionJump                     // Space, Z
	ActionFire                     // X, J
	ActionItem                     // C, K - dash (soldier)
	ActionPause                    // P, Esc
	ActionModeSwitch               // E, Tab - leave or board the tank
	ActionRestart                  // R - new run after game over

	// ActionCount is the number of actions, not an action itself.
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionJump:       "Jump",
	ActionFire:       "Fire",
	ActionItem:       "Item",
	ActionPause:      "Pause",
	ActionModeSwitch: "ModeSwitch",
	ActionRestart:    "Restart",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputState is the set of actions held during one tick.
// It is a value type: copies never alias, so a state handed to the
// simulation cannot change underneath it.
type InputState struct {
	held [ActionCount]bool
}

// NewInputState returns a state with the given actions held.
func NewInputState(actions ...Action) InputState {
	var s InputState
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// With returns a copy of s with the action held.
func (s InputState) With(a Action) InputState {
	if a >= 0 && a < ActionCount {
		s.held[a] = true
	}
	return s
}

// Without returns a copy of s with the action released.
func (s InputState) Without(a Action) InputState {
	if a >= 0 && a < ActionCount {
		s.held[a] = false
	}
	return s
}

// Has reports whether the action is held.
func (s InputState) Has(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return s.held[a]
}

// Empty reports whether no action is held.
func (s InputState) Empty() bool {
	return s == InputState{}
}

// Actions lists the held actions in declaration order.
func (s InputState) Actions() []Action {
	var out []Action
	for a := Action(0); a < ActionCount; a++ {
		if s.held[a] {
			out = append(out, a)
		}
	}
	return out
}

// EdgeTracker turns held actions into press edges.
// Pressed reports true only on the first tick an action is held.
type EdgeTracker struct {
	prev InputState
}

// Update records the current state and returns the actions newly pressed
// since the previous call.
func (e *EdgeTracker) Update(cur InputState) InputState {
	var pressed InputState
	for a := Action(0); a < ActionCount; a++ {
		if cur.held[a] && !e.prev.held[a] {
			pressed.held[a] = true
		}
	}
	e.prev = cur
	return pressed
}

// Reset forgets the previous state.
func (e *EdgeTracker) Reset() {
	e.prev = InputState{}
}
