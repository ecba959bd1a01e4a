package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mars-arcade/internal/maps"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Inspect the campaign maps",
}

var mapsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every map",
	Long: `Shows the built-in maps and those loaded with --maps.

Examples:
  mars maps list
  mars maps list --maps ./my-maps`,
	Args: cobra.NoArgs,
	RunE: runMapsList,
}

var mapsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the maps and the links between them",
	Args:  cobra.NoArgs,
	RunE:  runMapsCheck,
}

func init() {
	mapsCmd.AddCommand(mapsListCmd)
	mapsCmd.AddCommand(mapsCheckCmd)
}

func catalogFromFlags() (*maps.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return loadCatalog(cfg)
}

func runMapsList(cmd *cobra.Command, _ []string) error {
	catalog, err := catalogFromFlags()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	entries := catalog.Entries()

	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.Map.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-7s  %-20s  %s\n", maxIDLen, "ID", "Size", "Name", "Exits")
	fmt.Fprintf(out, "  %-*s  %-7s  %-20s  %s\n", maxIDLen, "--", "----", "----", "-----")
	for _, e := range entries {
		m := e.Map
		fmt.Fprintf(out, "  %-*s  %-7s  %-20s  %s%s\n", maxIDLen, m.ID,
			fmt.Sprintf("%dx%d", m.Cols(), m.Rows()), m.Name, exitSummary(m), source(e))
	}
	return nil
}

// exitSummary lists the exits as "right>ridge".
func exitSummary(m *tile.Map) string {
	var parts []string
	for _, x := range m.Exits() {
		parts = append(parts, string(x.Dir)+">"+x.Dest)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func source(e maps.Entry) string {
	if e.Builtin {
		return ""
	}
	return " (" + e.FilePath + ")"
}

func runMapsCheck(cmd *cobra.Command, _ []string) error {
	catalog, err := catalogFromFlags()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	problems := maps.Check(catalog)
	for _, p := range problems {
		fmt.Fprintln(out, p.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s) in %d map(s)", len(problems), len(catalog.IDs()))
	}
	fmt.Fprintf(out, "%d maps OK\n", len(catalog.IDs()))
	return nil
}
