package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mars-arcade/internal/config"
	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/storage"
)

// Game is what the terminal front end drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputState) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// GameFactory builds a game for a difficulty preset.
type GameFactory func(preset config.DifficultyPreset) (Game, error)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one run of the game.
type Model struct {
	game      Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	player    string
	keys      GameKeyMap
	help      help.Model
	held      HeldInput
	gameState core.GameState
	width     int
	height    int
	loop      int64

	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewModel creates a model for game. The run is recorded under player.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	m := Model{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
		player: player,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		loop:   newLoop(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.viewRows())
	return m
}

// viewRows is the screen height left to the game below the help bar.
func (m Model) viewRows() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 1)
}

// Init starts the run and the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.viewRows()
	m.game.Reset(cfg)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.saveRun()
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if a, ok := m.keys.Action(msg); ok {
		m.held.Press(a)
	}
	return m, nil
}

// handleResize keeps the run going on the new screen size.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width
	m.screen.Resize(width, m.viewRows())
	m.game.Resize(width, m.viewRows())
	return m, nil
}

// handleTick advances the game by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame())
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun()
	} else {
		m.scoreSaved = false
	}
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun records the current run once per game over.
func (m *Model) saveRun() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	_, err := m.store.SaveRun(storage.Run{
		Player:      m.player,
		Score:       m.gameState.Score,
		Kills:       m.gameState.Kills,
		MapsVisited: m.gameState.MapsVisited,
		MapID:       m.gameState.MapID,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to ~/.mars/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".mars", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.width < minScreenW || m.height < minScreenH {
		return tooSmall(m.width, m.height)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player quits or goes back to the
// menu. It reports whether the menu should be shown again.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, storage.LocalPlayer, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
