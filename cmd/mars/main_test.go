package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagDifficulty, flagFPS, flagVolume = "", 60, 0.5
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMapsCheckBuiltin(t *testing.T) {
	out, err := execute(t, "maps", "check", "--config", "", "--maps", "")
	if err != nil {
		t.Fatalf("maps check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "maps OK") {
		t.Errorf("maps check output = %q, expected a summary", out)
	}
}

func TestMapsListBuiltin(t *testing.T) {
	out, err := execute(t, "maps", "list")
	if err != nil {
		t.Fatalf("maps list failed: %v", err)
	}
	for _, id := range []string{"landing", "ridge", "caves", "crater"} {
		if !strings.Contains(out, id) {
			t.Errorf("maps list output misses %q:\n%s", id, out)
		}
	}
}

func TestRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"difficulty", []string{"maps", "list", "--difficulty", "insane"}},
		{"fps", []string{"maps", "list", "--fps", "0"}},
		{"volume", []string{"maps", "list", "--volume", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("Execute(%v) succeeded, expected an error", tt.args)
			}
		})
	}
}

func TestConfiguredTileSizeReachesMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mars.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  tile_size: 16\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	flagConfig, flagMapsDir = path, ""
	t.Cleanup(func() { flagConfig = "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		t.Fatalf("loadCatalog() failed: %v", err)
	}
	m, err := catalog.Load("landing")
	if err != nil {
		t.Fatalf("Load(landing) failed: %v", err)
	}
	if m.TileSize() != 16 {
		t.Errorf("TileSize() = %v, expected 16", m.TileSize())
	}
}
