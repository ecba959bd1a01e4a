package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mars-arcade/internal/config"
	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/storage"
)

// MenuItem is one entry of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuDifficulty
	MenuScores
	MenuQuit
)

var menuItems = []MenuItem{MenuStart, MenuDifficulty, MenuScores, MenuQuit}

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

const menuBanner = `
 __  __    _    ____  ____
|  \/  |  / \  |  _ \/ ___|
| |\/| | / _ \ | |_) \___ \
| |  | |/ ___ \|  _ < ___) |
|_|  |_/_/   \_\_| \_\____/`

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	preset    int // index into presets
	width     int
	height    int
	highScore int
	config    core.RuntimeConfig

	quitting       bool
	start          bool
	openScoreboard bool
}

// NewMenuModel creates a menu. The best recorded score is shown when store is
// available.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		preset: 1,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
	for i, p := range presets {
		if p == preset {
			m.preset = i
		}
	}
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(menuItems)

	case MenuActionLeft:
		if menuItems[m.cursor] == MenuDifficulty {
			m.preset = (m.preset + len(presets) - 1) % len(presets)
		}

	case MenuActionRight:
		if menuItems[m.cursor] == MenuDifficulty {
			m.preset = (m.preset + 1) % len(presets)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case MenuStart:
			m.start = true
			return m, tea.Quit
		case MenuDifficulty:
			m.preset = (m.preset + 1) % len(presets)
		case MenuScores:
			m.openScoreboard = true
			return m, tea.Quit
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) label(item MenuItem) string {
	switch item {
	case MenuStart:
		return "Start mission"
	case MenuDifficulty:
		return fmt.Sprintf("Difficulty  < %s >", presets[m.preset])
	case MenuScores:
		return "High scores"
	case MenuQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render(menuBanner))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(fmt.Sprintf("Best score: %d", m.highScore))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		line := "  " + m.label(item)
		if i == m.cursor {
			line = menuCursor.Render("> " + m.label(item))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: navigate  ←/→: difficulty  enter: select  tab: scores  q: quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()))
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return presets[m.preset]
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Start           bool
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	return MenuResult{
		Start:           m.start,
		Preset:          m.Preset(),
		Config:          m.config,
		WantsScoreboard: m.openScoreboard,
		Quit:            m.quitting || (!m.start && !m.openScoreboard),
	}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, preset),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Preset: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Preset: preset, Quit: true}, nil
	}
	return m.result(), nil
}
