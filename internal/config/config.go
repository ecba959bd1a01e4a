// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

// MarsConfig contains all tunable numbers of the game.
type MarsConfig struct {
	Physics  MarsPhysics  `yaml:"physics"`
	Soldier  FormConfig   `yaml:"soldier"`
	Tank     FormConfig   `yaml:"tank"`
	Combat   MarsCombat   `yaml:"combat"`
	Gameplay MarsGameplay `yaml:"gameplay"`
}

// MarsPhysics defines world physics shared by every form.
type MarsPhysics struct {
	TileSize         float64 `yaml:"tile_size"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

// FormConfig overrides the movement numbers of one player form.
type FormConfig struct {
	MaxSpeed    float64 `yaml:"max_speed"`
	Accel       float64 `yaml:"accel"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative is up
	WindupTicks int     `yaml:"windup_ticks"` // 0 jumps on the press
}

// MarsCombat defines damage, invulnerability and weapon timing.
type MarsCombat struct {
	InvulnTicks   int     `yaml:"invuln_ticks"`
	BlinkInterval int     `yaml:"blink_interval"`
	FireCooldown  int     `yaml:"fire_cooldown"`
	DamagedTicks  int     `yaml:"damaged_ticks"`
	KnockbackX    float64 `yaml:"knockback_x"`
	KnockbackY    float64 `yaml:"knockback_y"`
	DashTicks     int     `yaml:"dash_ticks"`
	DashCooldown  int     `yaml:"dash_cooldown"`
}

// MarsGameplay defines run-level settings.
type MarsGameplay struct {
	StartMap         string `yaml:"start_map"`
	StartSide        string `yaml:"start_side"` // entrance side of the start map
	HitPoints        int    `yaml:"hit_points"`
	DeathDelay       int    `yaml:"death_delay"` // ticks from death to game over
	TransitionFrames int    `yaml:"transition_frames"`
	MapsDir          string `yaml:"maps_dir"` // extra map files; empty uses only built-in maps
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether p names a known preset. Empty counts as valid
// and leaves the config untouched.
func ValidPreset(p DifficultyPreset) bool {
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
