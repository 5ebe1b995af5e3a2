package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Loop ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is the summary the platform needs after each tick.
type GameState struct {
	Score    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by the game after each loop tick.
type StepResult struct {
	State GameState
	// LevelChanged is set when host progression moved to another level.
	LevelChanged bool
}
