package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mars-arcade/internal/config"
	"github.com/vovakirdan/mars-arcade/internal/entity"
	"github.com/vovakirdan/mars-arcade/internal/maps"
	"github.com/vovakirdan/mars-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every connection gets its own session with the menu. Runs are recorded
under the SSH user name; all users share one leaderboard. Sessions have
no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mars/host_key

Examples:
  mars serve                           # Listen on :23234 with auto-generated key
  mars serve --ssh :2222               # Listen on port 2222
  mars serve --host-key ./my_host_key  # Use specific host key
  mars serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mars",
	})

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	for _, p := range maps.Check(catalog) {
		logger.Warn("map problem", "code", p.Code, "map", p.Map, "msg", p.Message)
	}

	preset := config.DifficultyPreset(flagDifficulty)
	if preset == "" {
		preset = config.DifficultyNormal
	}
	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Preset:      preset,
	}, newFactory(cfg, catalog, logger, entity.NopCueSink{}))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Mars SSH server on %s\n", flagSSHAddr)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
