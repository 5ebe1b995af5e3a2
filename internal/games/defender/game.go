// Package defender hosts the Typing Defender simulation: it owns the
// state, level catalog and random source, gates input, and applies the
// level progression policy around sim.Step.
package defender

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/type-defender/internal/config"
	"github.com/vovakirdan/type-defender/internal/core"
	"github.com/vovakirdan/type-defender/internal/games/defender/levels"
	"github.com/vovakirdan/type-defender/internal/games/defender/sim"
)

// Options configures a new Game.
type Options struct {
	Config     config.DefenderConfig
	Catalog    *levels.Catalog // nil means the built-in catalog
	StartLevel int             // 0 means level 1
	Logger     *log.Logger     // nil discards
}

// Game implements Typing Defender on top of the sim package.
type Game struct {
	cfg        config.DefenderConfig
	catalog    *levels.Catalog
	logger     *log.Logger
	difficulty *config.DifficultyManager
	startLevel int

	state *sim.State
	rng   *rand.Rand
	tick  uint64

	levelStart int // state.Completed when the current level began

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	catalog := opts.Catalog
	if catalog == nil {
		c, err := levels.Default()
		if err != nil {
			return nil, fmt.Errorf("defender: loading built-in levels: %w", err)
		}
		catalog = c
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		cfg:        opts.Config,
		catalog:    catalog,
		logger:     logger,
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		startLevel: opts.StartLevel,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "defender"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Typing Defender"
}

// FieldFromConfig converts tuning config into simulation geometry.
func FieldFromConfig(cfg config.DefenderConfig) sim.Field {
	return sim.Field{
		Width:  cfg.Field.Width,
		Height: cfg.Field.Height,
		Ground: cfg.Field.Ground,

		StructureNames:  append([]string(nil), cfg.Structures.Names...),
		StructureWidth:  cfg.Structures.Width,
		StructureHeight: cfg.Structures.Height,
		StructureHealth: cfg.Structures.Health,
		Lives:           cfg.Gameplay.Lives,

		SpawnY:       cfg.Field.SpawnY,
		SpawnMargin:  cfg.Field.SpawnMargin,
		ImpactBuffer: cfg.Field.ImpactBuffer,

		FrameMS:    cfg.Physics.FrameMS,
		FlightMS:   cfg.Physics.FlightMS,
		SpeedScale: cfg.Physics.SpeedScale,

		ParticleCount:   cfg.Particles.Count,
		ParticleSpeed:   cfg.Particles.Speed,
		ParticleLifeMin: cfg.Particles.LifeMin,
		ParticleLifeMax: cfg.Particles.LifeMax,
		ParticleSizeMin: cfg.Particles.SizeMin,
		ParticleSizeMax: cfg.Particles.SizeMax,
		ParticleHueMin:  cfg.Particles.HueMin,
		ParticleHueMax:  cfg.Particles.HueMax,

		PointsPerLetter: cfg.Gameplay.PointsPerLetter,
		GameOverAt:      cfg.Gameplay.GameOverAt,
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.levelStart = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.state = sim.NewState(FieldFromConfig(g.cfg))
	if g.startLevel > 1 {
		g.state.Level = g.catalog.Lookup(g.startLevel).Number
	}

	g.logger.Debug("game reset", "seed", cfg.Seed, "level", g.state.Level)
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one tick covering dtMS milliseconds.
func (g *Game) Step(input core.InputFrame, dtMS float64) core.StepResult {
	g.tick++
	s := g.state
	prevLevel := s.Level

	// Handle restart
	if input.Has(core.ActionRestart) && s.GameOver {
		g.logger.Info("restart", "score", s.Score, "level", s.Level)
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State(), LevelChanged: g.state.Level != prevLevel}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !s.GameOver {
		s.Paused = !s.Paused
		g.logger.Debug("pause toggled", "paused", s.Paused)
	}

	lvl := g.Level()

	// Typed keys only count while the game is live
	if s.Playing && !s.Paused {
		for _, r := range input.Keys {
			result := sim.ResolveKey(s, r, lvl)
			g.logger.Debug("key", "rune", string(r), "result", result)
		}
	}

	if dtMS > g.cfg.Loop.MaxFrameMS {
		dtMS = g.cfg.Loop.MaxFrameMS
	}
	s.Field.SpeedScale = g.difficulty.Speed(g.cfg.Physics.SpeedScale, s.Score, int(g.tick))

	ev := sim.Step(s, dtMS, lvl, g.rng)
	g.logEvents(ev)

	g.progress(lvl)

	return core.StepResult{State: g.State(), LevelChanged: s.Level != prevLevel}
}

// progress applies the host level policy after a step.
func (g *Game) progress(lvl sim.Level) {
	s := g.state
	if g.cfg.Gameplay.Progression != config.ProgressionQuota || s.GameOver {
		return
	}
	if lvl.WordsToComplete <= 0 || s.Level >= g.catalog.Len() {
		return
	}
	if s.Completed-g.levelStart < lvl.WordsToComplete {
		return
	}

	s.Level++
	g.levelStart = s.Completed
	g.logger.Info("level up", "level", s.Level, "score", s.Score)
}

func (g *Game) logEvents(ev sim.Events) {
	s := g.state
	for _, name := range ev.Destroyed {
		g.logger.Info("structure destroyed", "name", name, "lives", s.Lives, "alive", s.Alive())
	}
	if ev.GameOver {
		g.logger.Info("game over",
			"score", s.Score,
			"level", s.Level,
			"accuracy", fmt.Sprintf("%.1f", s.Accuracy),
			"words", s.Completed,
			"ticks", g.tick,
		)
	}
}

// Level returns the tuning for the current level.
func (g *Game) Level() sim.Level {
	return g.catalog.Lookup(g.state.Level)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		GameOver: g.state.GameOver,
		Paused:   g.state.Paused,
	}
}
