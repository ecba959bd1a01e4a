package config

import (
	_ "embed"
)

//go:embed defaults/mars.yaml
var defaultMarsYAML []byte

// DefaultMarsConfig returns the built-in configuration.
func DefaultMarsConfig() MarsConfig {
	return MarsConfig{
		Physics: MarsPhysics{
			TileSize:         32,
			Gravity:          0.2,
			TerminalVelocity: 4,
		},
		Soldier: FormConfig{
			MaxSpeed:    2,
			Accel:       0.2,
			JumpImpulse: -4.5,
		},
		Tank: FormConfig{
			MaxSpeed:    3,
			Accel:       0.2,
			JumpImpulse: -6,
			WindupTicks: 20,
		},
		Combat: MarsCombat{
			InvulnTicks:   60,
			BlinkInterval: 3,
			FireCooldown:  10,
			DamagedTicks:  8,
			KnockbackX:    5,
			KnockbackY:    2,
			DashTicks:     12,
			DashCooldown:  40,
		},
		Gameplay: MarsGameplay{
			StartMap:         "landing",
			StartSide:        "left",
			HitPoints:        4,
			DeathDelay:       200,
			TransitionFrames: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMarsYAML
}
