// Package config loads Typing Defender tuning from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
)

// DefenderConfig holds all tunable parameters for Typing Defender.
type DefenderConfig struct {
	Field      DefenderField      `yaml:"field"`
	Structures DefenderStructures `yaml:"structures"`
	Physics    DefenderPhysics    `yaml:"physics"`
	Particles  DefenderParticles  `yaml:"particles"`
	Gameplay   DefenderGameplay   `yaml:"gameplay"`
	Loop       DefenderLoop       `yaml:"loop"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// DefenderField defines play-field geometry in field units.
type DefenderField struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Ground       float64 `yaml:"ground"`
	SpawnY       float64 `yaml:"spawn_y"`
	SpawnMargin  float64 `yaml:"spawn_margin"`
	ImpactBuffer float64 `yaml:"impact_buffer"`
}

// DefenderStructures defines the defended buildings.
type DefenderStructures struct {
	Names  []string `yaml:"names"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Health int      `yaml:"health"`
}

// DefenderPhysics defines motion timing.
type DefenderPhysics struct {
	FrameMS    float64 `yaml:"frame_ms"`    // reference frame for word descent
	FlightMS   float64 `yaml:"flight_ms"`   // projectile flight time
	SpeedScale float64 `yaml:"speed_scale"` // multiplier on every level's descent speed
}

// DefenderParticles defines explosion fragments.
type DefenderParticles struct {
	Count   int     `yaml:"count"`
	Speed   float64 `yaml:"speed"`
	LifeMin int     `yaml:"life_min"` // ticks
	LifeMax int     `yaml:"life_max"`
	SizeMin float64 `yaml:"size_min"`
	SizeMax float64 `yaml:"size_max"`
	HueMin  float64 `yaml:"hue_min"`
	HueMax  float64 `yaml:"hue_max"`
}

// DefenderGameplay defines scoring and lose conditions.
type DefenderGameplay struct {
	Lives           int    `yaml:"lives"`
	PointsPerLetter int    `yaml:"points_per_letter"`
	GameOverAt      int    `yaml:"game_over_at"` // surviving structures that end the game
	Progression     string `yaml:"progression"`  // "fixed" or "quota"
}

// DefenderLoop defines host loop limits.
type DefenderLoop struct {
	MaxFrameMS float64 `yaml:"max_frame_ms"` // elapsed time cap per step
}

// DifficultyConfig defines the optional descent speed ramp.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Progression policies for level advancement.
const (
	ProgressionFixed = "fixed"
	ProgressionQuota = "quota"
)

// Validate rejects configurations the simulation cannot run with.
func (c DefenderConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(finite(c.Field.Width, c.Field.Height, c.Field.Ground, c.Field.SpawnY, c.Field.SpawnMargin, c.Field.ImpactBuffer,
		c.Structures.Width, c.Structures.Height, c.Physics.FrameMS, c.Physics.FlightMS, c.Physics.SpeedScale,
		c.Particles.Speed, c.Particles.SizeMin, c.Particles.SizeMax, c.Particles.HueMin, c.Particles.HueMax,
		c.Loop.MaxFrameMS), "numeric values must be finite")
	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Field.Ground >= 0 && c.Field.Ground < c.Field.Height, "ground %v must lie inside the field", c.Field.Ground)
	check(c.Field.SpawnMargin >= 0 && c.Field.SpawnMargin < c.Field.Width, "spawn_margin %v must be within the field width", c.Field.SpawnMargin)
	check(len(c.Structures.Names) > 0, "at least one structure is required")
	check(c.Structures.Health > 0, "structure health must be positive, got %d", c.Structures.Health)
	check(c.Structures.Width > 0 && c.Structures.Height > 0, "structure size must be positive")
	check(c.Physics.FrameMS > 0, "frame_ms must be positive, got %v", c.Physics.FrameMS)
	check(c.Physics.FlightMS > 0, "flight_ms must be positive, got %v", c.Physics.FlightMS)
	check(c.Physics.SpeedScale > 0, "speed_scale must be positive, got %v", c.Physics.SpeedScale)
	check(c.Particles.Count >= 0, "particle count must not be negative")
	check(c.Particles.LifeMin >= 1 && c.Particles.LifeMax >= c.Particles.LifeMin,
		"particle life range [%d, %d] is invalid", c.Particles.LifeMin, c.Particles.LifeMax)
	check(c.Particles.Speed >= 0, "particle speed must not be negative, got %v", c.Particles.Speed)
	check(c.Particles.SizeMin > 0 && c.Particles.SizeMax >= c.Particles.SizeMin,
		"particle size range [%v, %v] is invalid", c.Particles.SizeMin, c.Particles.SizeMax)
	check(c.Particles.HueMax >= c.Particles.HueMin,
		"particle hue range [%v, %v] is invalid", c.Particles.HueMin, c.Particles.HueMax)
	check(c.Gameplay.GameOverAt >= 0 && c.Gameplay.GameOverAt < len(c.Structures.Names),
		"game_over_at %d must be below the structure count %d", c.Gameplay.GameOverAt, len(c.Structures.Names))
	check(c.Gameplay.Progression == ProgressionFixed || c.Gameplay.Progression == ProgressionQuota,
		"progression must be %q or %q, got %q", ProgressionFixed, ProgressionQuota, c.Gameplay.Progression)
	check(c.Loop.MaxFrameMS > 0, "max_frame_ms must be positive, got %v", c.Loop.MaxFrameMS)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid defender config: %w", err)
	}
	return nil
}

// finite reports whether every value is a real number.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
