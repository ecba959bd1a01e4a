package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mars-arcade/internal/entity"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// ErrInvalid is returned by Validate for configurations the game cannot run.
var ErrInvalid = errors.New("config: invalid")

// LoadMars loads the game configuration.
// Search order: customPath -> ~/.mars/configs/mars.yaml -> ./configs/mars.yaml -> embedded default
// Keys missing from a file keep their built-in values.
func LoadMars(customPath string) (MarsConfig, error) {
	cfg := DefaultMarsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mars.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := parse(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "mars.yaml")); err == nil {
		if parsed, ok := parse(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := parse(defaultMarsYAML); ok {
		return parsed, nil
	}
	return DefaultMarsConfig(), nil // Fallback to hardcoded if embed fails
}

func parse(data []byte) (MarsConfig, bool) {
	cfg := DefaultMarsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mars", "configs", filename)
}

// ApplyMarsPreset modifies the config based on a difficulty preset.
func ApplyMarsPreset(cfg *MarsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.HitPoints = 6
		cfg.Combat.InvulnTicks = 90
	case DifficultyHard:
		cfg.Gameplay.HitPoints = 3
		cfg.Combat.InvulnTicks = 40
	case DifficultyNormal:
		def := DefaultMarsConfig()
		cfg.Gameplay.HitPoints = def.Gameplay.HitPoints
		cfg.Combat.InvulnTicks = def.Combat.InvulnTicks
	}
}

// Validate reports the first setting the game cannot run with.
func (c MarsConfig) Validate() error {
	switch {
	case c.Physics.TileSize <= 0:
		return fmt.Errorf("%w: physics.tile_size must be positive", ErrInvalid)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalid)
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("%w: physics.terminal_velocity must be positive", ErrInvalid)
	case c.Gameplay.HitPoints <= 0:
		return fmt.Errorf("%w: gameplay.hit_points must be positive", ErrInvalid)
	case c.Gameplay.DeathDelay <= 0:
		return fmt.Errorf("%w: gameplay.death_delay must be positive", ErrInvalid)
	case c.Combat.BlinkInterval <= 0:
		return fmt.Errorf("%w: combat.blink_interval must be positive", ErrInvalid)
	case c.Combat.InvulnTicks < 0, c.Combat.FireCooldown < 0, c.Combat.DamagedTicks < 0,
		c.Combat.DashTicks < 0, c.Combat.DashCooldown < 0:
		return fmt.Errorf("%w: combat timers cannot be negative", ErrInvalid)
	case c.Gameplay.StartMap == "":
		return fmt.Errorf("%w: gameplay.start_map is empty", ErrInvalid)
	case !tile.Direction(c.Gameplay.StartSide).Valid():
		return fmt.Errorf("%w: gameplay.start_side %q is not a screen side", ErrInvalid, c.Gameplay.StartSide)
	}
	return nil
}

// Tuning returns the shared physics and combat numbers.
func (c MarsConfig) Tuning() entity.Tuning {
	t := entity.DefaultTuning()
	t.Gravity = c.Physics.Gravity
	t.TerminalVelocity = c.Physics.TerminalVelocity
	t.InvulnTicks = c.Combat.InvulnTicks
	t.BlinkInterval = c.Combat.BlinkInterval
	t.FireCooldown = c.Combat.FireCooldown
	t.DamagedTicks = c.Combat.DamagedTicks
	t.KnockbackX = c.Combat.KnockbackX
	t.KnockbackY = c.Combat.KnockbackY
	t.DashTicks = c.Combat.DashTicks
	t.DashCooldown = c.Combat.DashCooldown
	return t
}

// FormSpec returns the built-in spec of form k with this config's movement
// overrides applied. Zero values keep the built-in numbers.
func (c MarsConfig) FormSpec(k entity.PlayerKind) entity.KindSpec {
	spec := entity.SpecFor(k)
	fc := c.Soldier
	if k == entity.Tank {
		fc = c.Tank
	}
	if fc.MaxSpeed > 0 {
		spec.MaxSpeed = fc.MaxSpeed
	}
	if fc.Accel > 0 {
		spec.Accel = fc.Accel
	}
	if fc.JumpImpulse < 0 {
		spec.JumpImpulse = fc.JumpImpulse
	}
	if fc.WindupTicks > 0 {
		spec.WindupTicks = fc.WindupTicks
	}
	return spec
}
