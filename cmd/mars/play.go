package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mars-arcade/internal/config"
	"github.com/vovakirdan/mars-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run without the menu",
	Long: `Start a run directly.

Controls:
  ←/→ or A/D    - Move
  ↑/↓ or W/S    - Aim up / crouch
  Space/Z       - Jump
  X/F           - Fire
  C             - Dash (soldier)
  E/Tab         - Board or leave the tank
  P             - Pause
  R             - Restart (after game over)
  Esc/B         - Back to the menu (paused or game over)
  Q/Ctrl+C      - Quit

Examples:
  mars play
  mars play --difficulty easy
  mars play --config ./my-mars.yaml --maps ./my-maps`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	game, err := s.factory(config.DifficultyPreset(flagDifficulty))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	s.logger.Info("run started", "difficulty", flagDifficulty)
	if _, err := tui.Run(game, s.store, runtimeConfig(), s.logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	s.logger.Info("run ended", "score", game.State().Score)
	return nil
}
