package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mars-arcade/internal/config"
	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/entity"
	"github.com/vovakirdan/mars-arcade/internal/games/mars"
	"github.com/vovakirdan/mars-arcade/internal/maps"
	"github.com/vovakirdan/mars-arcade/internal/platform/audio"
	"github.com/vovakirdan/mars-arcade/internal/platform/tui"
	"github.com/vovakirdan/mars-arcade/internal/storage"
)

func validateFlags() error {
	if flagVolume < 0 || flagVolume > 1 {
		return fmt.Errorf("--volume must be within 0 and 1, got %g", flagVolume)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if !config.ValidPreset(config.DifficultyPreset(flagDifficulty)) {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	return nil
}

// loadConfig reads the game config. A maps directory from the command line
// wins over the one in the file.
func loadConfig() (config.MarsConfig, error) {
	cfg, err := config.LoadMars(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagMapsDir != "" {
		cfg.Gameplay.MapsDir = flagMapsDir
	}
	return cfg, nil
}

func loadCatalog(cfg config.MarsConfig) (*maps.Catalog, error) {
	return maps.NewCatalog(cfg.Gameplay.MapsDir, cfg.Physics.TileSize)
}

// newFactory builds games sharing one config and map catalog.
func newFactory(cfg config.MarsConfig, catalog *maps.Catalog, logger *log.Logger, cues entity.CueSink) tui.GameFactory {
	return func(preset config.DifficultyPreset) (tui.Game, error) {
		c := cfg
		config.ApplyMarsPreset(&c, preset)
		g, err := mars.New(mars.Options{
			Config: c,
			Maps:   catalog,
			Logger: logger,
			Cues:   cues,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// openStore opens the runs database. The game still runs without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return nil
	}
	return store
}

// fileLogger logs to ~/.mars/mars.log while the terminal belongs to the game.
// It falls back to stderr when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	opts := log.Options{ReportTimestamp: true, Prefix: "mars"}
	home, err := os.UserHomeDir()
	if err != nil {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}
	path := filepath.Join(home, ".mars", "mars.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}
	logger := log.NewWithOptions(f, opts)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { f.Close() }
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// session is everything a local run needs.
type session struct {
	logger  *log.Logger
	store   *storage.Store
	factory tui.GameFactory
	cleanup []func()
}

func newSession() (*session, error) {
	logger, closeLog := fileLogger()
	s := &session{logger: logger, cleanup: []func(){closeLog}}

	cfg, err := loadConfig()
	if err != nil {
		s.close()
		return nil, err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		s.close()
		return nil, err
	}
	if problems := maps.Check(catalog); len(problems) > 0 {
		for _, p := range problems {
			logger.Warn("map problem", "code", p.Code, "map", p.Map, "msg", p.Message)
		}
	}

	cues, closeAudio := openAudio(logger)
	s.cleanup = append(s.cleanup, closeAudio)

	if s.store = openStore(logger); s.store != nil {
		s.cleanup = append(s.cleanup, func() { s.store.Close() })
	}
	s.factory = newFactory(cfg, catalog, logger, cues)
	return s, nil
}

func (s *session) close() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
}

// openAudio returns the speaker, or a silent sink when muted or when no audio
// device is available.
func openAudio(logger *log.Logger) (entity.CueSink, func()) {
	if flagMute {
		return entity.NopCueSink{}, func() {}
	}
	spk, err := audio.Open(flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return entity.NopCueSink{}, func() {}
	}
	return spk, spk.Close
}
