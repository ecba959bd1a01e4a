package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/mars-arcade/internal/config"
	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.mars/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Preset is the difficulty the session menu starts on.
	Preset config.DifficultyPreset
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.mars/runs.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Preset:      config.DifficultyNormal,
	}
}

// SSHServer serves the game to SSH clients with Wish.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	factory GameFactory
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. Every session builds its games with
// factory.
func NewSSHServer(cfg SSHServerConfig, factory GameFactory) (*SSHServer, error) {
	if factory == nil {
		return nil, errors.New("ssh: no game factory")
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mars-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		factory: factory,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".mars", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model := NewSessionModel(SessionOptions{
		Store:   s.store,
		Factory: s.factory,
		Config:  cfg,
		Player:  sshSession.User(),
		Preset:  s.config.Preset,
		Logger:  s.logger.With("user", sshSession.User()),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until an interrupt.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store   *storage.Store
	Factory GameFactory
	Config  core.RuntimeConfig
	Player  string
	Preset  config.DifficultyPreset
	Logger  *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel runs a whole session in one program:
// menu -> game or scoreboard -> menu.
type SessionModel struct {
	opts       SessionOptions
	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	game       Model
	err        string
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Store, opts.Config, opts.Preset),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Config.ScreenW = wsm.Width
		m.opts.Config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// The child models answer tea.Quit when they are done; the session swallows
// that and switches screens instead.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch res := m.menu.result(); {
	case m.menu.quitting:
		m.quitting = true
		return m, tea.Quit

	case res.WantsScoreboard:
		m.opts.Preset = res.Preset
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.opts.Player, m.opts.Config.ScreenW, m.opts.Config.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()

	case res.Start:
		m.opts.Preset = res.Preset
		game, err := m.opts.Factory(res.Preset)
		if err != nil {
			m.opts.Logger.Error("cannot create game", "error", err)
			m.err = err.Error()
			m.menu = NewMenuModel(m.opts.Store, m.opts.Config, m.opts.Preset)
			return m, nil
		}
		m.err = ""
		cfg := m.opts.Config
		cfg.Seed = time.Now().UnixNano()
		m.game = NewModel(game, m.opts.Store, cfg, m.opts.Player, m.opts.Logger)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		// The game's tick loop stops once its TickMsg lands on the menu.
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.opts.Config, m.opts.Preset)
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	}
	if m.err != "" {
		return m.menu.View() + "\n" + helpStyle.Render("error: "+m.err)
	}
	return m.menu.View()
}
