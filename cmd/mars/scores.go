package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mars-arcade/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs and totals over every run.

Examples:
  mars scores
  mars scores --limit 25
  mars scores --player alice
  mars scores --player alice --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the latest runs of one player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the runs of --player, or every run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(flagScoresPlayer); err != nil {
			return err
		}
		fmt.Fprintln(out, "Runs cleared.")
		return nil
	}

	var runs []storage.Run
	title := "High Scores"
	if flagScoresPlayer != "" {
		title = "Latest runs of " + flagScoresPlayer
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'mars play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-5s  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Kills", "Maps", "Reached", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %-5s  %-4s  %-10s  %-12s  %s\n", "----", "-----", "-----", "----", "-------", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-7d  %-5d  %-4d  %-10s  %-12s  %s\n",
			i+1, r.Score, r.Kills, r.MapsVisited, r.MapID, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Average: %.0f  Kills: %d\n",
		stats.Runs, stats.HighScore, stats.AvgScore, stats.TotalKills)
	return nil
}
