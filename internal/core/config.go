package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score (snake length)
	GameOver bool   // Whether the session has finished
	Won      bool   // Whether the finished session was won
	Paused   bool   // Whether the game is paused
	Label    string // Difficulty label of the running session
	Ticks    uint64 // Simulation ticks performed
}

// StepResult is returned by Game.Step() after each platform frame.
type StepResult struct {
	State GameState
	// Finished is true only on the frame in which the session ended.
	Finished bool
}
