package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mars-arcade/internal/core"
)

// GameKeyMap holds the in-game key bindings. It implements help.KeyMap.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Jump       key.Binding
	Fire       key.Binding
	Item       key.Binding
	ModeSwitch key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "aim up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "crouch"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "z"),
			key.WithHelp("space/z", "jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys("x", "f"),
			key.WithHelp("x/f", "fire"),
		),
		Item: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "dash"),
		),
		ModeSwitch: key.NewBinding(
			key.WithKeys("e", "tab"),
			key.WithHelp("e/tab", "board/leave tank"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu (paused)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Fire, k.ModeSwitch, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Jump, k.Fire, k.Item, k.ModeSwitch},
		{k.Pause, k.Restart, k.Back, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// Action returns the game action bound to msg.
func (k GameKeyMap) Action(msg tea.KeyMsg) (core.Action, bool) {
	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Jump, core.ActionJump},
		{k.Fire, core.ActionFire},
		{k.Item, core.ActionItem},
		{k.ModeSwitch, core.ActionModeSwitch},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return kb.a, true
		}
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
