package defender

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Level       int
	Score       int
	Lives       int
	Accuracy    float64
	Attempted   int
	Successful  int
	Completed   int
	Words       int
	Projectiles int
	Particles   int
	Alive       int // surviving structures
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.state

	state := StatePlaying
	switch {
	case s.GameOver:
		state = StateGameOver
	case s.Paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:        g.tick,
		Level:       s.Level,
		Score:       s.Score,
		Lives:       s.Lives,
		Accuracy:    s.Accuracy,
		Attempted:   s.Attempted,
		Successful:  s.Successful,
		Completed:   s.Completed,
		Words:       len(s.Words),
		Projectiles: len(s.Projectiles),
		Particles:   len(s.Particles),
		Alive:       s.Alive(),
		State:       state,
	}
}
