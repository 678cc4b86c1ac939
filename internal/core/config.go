package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	PlayerName string // Display name; games fall back to their own default when empty
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

// Outcome names how a finished run ended.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeGameOver Outcome = "game_over"
	OutcomeVictory  Outcome = "victory"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the run has ended, by capture or by victory
	Won      bool    // Whether the run ended in victory
	Paused   bool    // Whether the game is paused
	Outcome  Outcome // Set once GameOver is true
	Player   string  // Name shown in the HUD and saved with the score
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Ended bool // True only on the tick the run reached a terminal state
}
