package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic shuffles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (moves made for puzzles, lower is better)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is idle on a menu screen
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
	Moved bool // Whether the board changed during this step
}
