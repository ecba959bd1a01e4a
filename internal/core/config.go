package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a game reports to the platform after every tick.
type GameState struct {
	Score       int    // Current score
	GameOver    bool   // Whether the run has ended
	Paused      bool   // Whether the game is paused
	MapID       string // Map the active player is on
	HitPoints   int    // Active player's hit points
	Kills       int    // Enemies destroyed this run
	MapsVisited int    // Maps reached through exits this run
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Transitioning is true while a screen scroll blocks gameplay.
	Transitioning bool
}
