package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the default Typing Defender configuration.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		Field: DefenderField{
			Width:        1200,
			Height:       800,
			Ground:       120,
			SpawnY:       -50,
			SpawnMargin:  100,
			ImpactBuffer: 50,
		},
		Structures: DefenderStructures{
			Names:  []string{"Home", "School", "Park", "Store", "Library", "Beach"},
			Width:  120,
			Height: 80,
			Health: 3,
		},
		Physics: DefenderPhysics{
			FrameMS:    16,
			FlightMS:   500,
			SpeedScale: 1.0,
		},
		Particles: DefenderParticles{
			Count:   20,
			Speed:   100,
			LifeMin: 40,
			LifeMax: 60,
			SizeMin: 2,
			SizeMax: 6,
			HueMin:  15,
			HueMax:  75,
		},
		Gameplay: DefenderGameplay{
			Lives:           3,
			PointsPerLetter: 10,
			GameOverAt:      2,
			Progression:     ProgressionFixed,
		},
		Loop: DefenderLoop{
			MaxFrameMS: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
