package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/mars-arcade/internal/entity"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, ok := parse(DefaultYAML())
	if !ok {
		t.Fatal("embedded mars.yaml does not parse")
	}
	if cfg != DefaultMarsConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultMarsConfig())
	}
}

func TestLoadMarsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mars.yaml")
	data := []byte("gameplay:\n  hit_points: 9\ntank:\n  max_speed: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadMars(path)
	if err != nil {
		t.Fatalf("LoadMars() failed: %v", err)
	}

	if cfg.Gameplay.HitPoints != 9 {
		t.Errorf("HitPoints = %d, expected 9", cfg.Gameplay.HitPoints)
	}
	if cfg.Tank.MaxSpeed != 4 {
		t.Errorf("Tank.MaxSpeed = %v, expected 4", cfg.Tank.MaxSpeed)
	}
	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("Gravity = %v, missing keys should keep defaults", cfg.Physics.Gravity)
	}
}

func TestLoadMarsErrors(t *testing.T) {
	if _, err := LoadMars(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadMars() with a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadMars(path); err == nil {
		t.Error("LoadMars() with malformed YAML should fail")
	}
}

func TestLoadMarsFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadMars("")
	if err != nil {
		t.Fatalf("LoadMars() failed: %v", err)
	}
	if cfg != DefaultMarsConfig() {
		t.Errorf("LoadMars() = %+v, expected the defaults", cfg)
	}
}

func TestLoadMarsPrefersLocalDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", "mars.yaml"), []byte("gameplay:\n  death_delay: 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadMars("")
	if err != nil {
		t.Fatalf("LoadMars() failed: %v", err)
	}
	if cfg.Gameplay.DeathDelay != 5 {
		t.Errorf("DeathDelay = %d, expected 5 from ./configs", cfg.Gameplay.DeathDelay)
	}
}

func TestApplyMarsPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		hp     int
		invuln int
	}{
		{DifficultyEasy, 6, 90},
		{DifficultyNormal, 4, 60},
		{DifficultyHard, 3, 40},
		{"", 4, 60},
	}

	for _, tc := range tests {
		cfg := DefaultMarsConfig()
		ApplyMarsPreset(&cfg, tc.preset)
		if cfg.Gameplay.HitPoints != tc.hp || cfg.Combat.InvulnTicks != tc.invuln {
			t.Errorf("preset %q: hp %d invuln %d, expected %d and %d",
				tc.preset, cfg.Gameplay.HitPoints, cfg.Combat.InvulnTicks, tc.hp, tc.invuln)
		}
	}

	if ValidPreset("brutal") {
		t.Error("ValidPreset(brutal) = true, expected false")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultMarsConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *MarsConfig)
	}{
		{"start side", func(c *MarsConfig) { c.Gameplay.StartSide = "sideways" }},
		{"hit points", func(c *MarsConfig) { c.Gameplay.HitPoints = 0 }},
		{"tile size", func(c *MarsConfig) { c.Physics.TileSize = 0 }},
		{"death delay", func(c *MarsConfig) { c.Gameplay.DeathDelay = 0 }},
		{"blink interval", func(c *MarsConfig) { c.Combat.BlinkInterval = 0 }},
		{"fire cooldown", func(c *MarsConfig) { c.Combat.FireCooldown = -1 }},
		{"invuln ticks", func(c *MarsConfig) { c.Combat.InvulnTicks = -5 }},
		{"dash cooldown", func(c *MarsConfig) { c.Combat.DashCooldown = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMarsConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, expected ErrInvalid", err)
			}
		})
	}

	zero := DefaultMarsConfig()
	zero.Combat.FireCooldown = 0
	zero.Combat.InvulnTicks = 0
	if err := zero.Validate(); err != nil {
		t.Errorf("zero timers should be valid: %v", err)
	}
}

func TestFormSpecOverrides(t *testing.T) {
	cfg := DefaultMarsConfig()
	cfg.Tank.MaxSpeed = 5
	cfg.Tank.WindupTicks = 0

	spec := cfg.FormSpec(entity.Tank)
	if spec.MaxSpeed != 5 {
		t.Errorf("MaxSpeed = %v, expected 5", spec.MaxSpeed)
	}
	if spec.WindupTicks != entity.SpecFor(entity.Tank).WindupTicks {
		t.Errorf("WindupTicks = %d, zero should keep the built-in value", spec.WindupTicks)
	}

	tuning := cfg.Tuning()
	if tuning != entity.DefaultTuning() {
		t.Errorf("Tuning() = %+v, expected the built-in tuning", tuning)
	}
}
