package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mars-arcade/internal/config"
	"github.com/vovakirdan/mars-arcade/internal/platform/tui"
	"github.com/vovakirdan/mars-arcade/internal/storage"
)

// runMenu shows the menu, runs the chosen screen and comes back until the
// player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	cfg := runtimeConfig()
	preset := config.DifficultyPreset(flagDifficulty)
	if preset == "" {
		preset = config.DifficultyNormal
	}

	for {
		res, err := tui.RunMenu(s.store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = res.Config
		preset = res.Preset

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(s.store, storage.LocalPlayer, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case res.Start:
			game, err := s.factory(preset)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			s.logger.Info("run started", "difficulty", preset)
			back, err := tui.Run(game, s.store, cfg, s.logger)
			if err != nil {
				return err
			}
			s.logger.Info("run ended", "score", game.State().Score)
			if !back {
				return nil
			}
		}
	}
}
