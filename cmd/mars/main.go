// mars is a side-scrolling platformer for the terminal: a soldier and a tank
// the soldier can board fight their way across linked Martian maps.
//
// Usage:
//
//	mars                 - Start the menu
//	mars play            - Start a run directly
//	mars serve           - Start the SSH server for remote play
//	mars scores          - Show the best runs
//	mars maps list       - List the maps of the campaign
//	mars maps check      - Validate the maps and the links between them
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.mars/runs.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--maps <dir>          - Load extra maps from a directory
//	--mute                - Disable sound
//	--volume <0..1>       - Set sound volume (default: 0.5)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMapsDir    string
	flagMute       bool
	flagVolume     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mars",
	Short: "Mars - a tank and soldier platformer in your terminal",
	Long: `Mars is a side-scrolling platformer played in the terminal.
Run and jump as the soldier, board the tank to roll over spikes,
and cross from map to map through the exits at the screen edges.

Without a subcommand the interactive menu starts.

Examples:
  mars
  mars play --difficulty hard
  mars serve --ssh :2222
  mars scores
  mars maps check --maps ./my-maps`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return validateFlags()
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mars/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps", "", "Directory with extra map files")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapsCmd)
}
