package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in configuration in load results.
const SourceEmbedded = "embedded"

// LoadDefender loads Typing Defender configuration and reports where it came from.
// Search order: customPath -> ~/.defender/configs/defender.yaml -> ./configs/defender.yaml -> embedded default.
// Files overlay the built-in defaults, so partial files are fine.
func LoadDefender(customPath string) (DefenderConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefenderConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseDefender(data)
		if err != nil {
			return DefenderConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("defender.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDefender(data); err == nil {
				return cfg, userCfgPath, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "defender.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parseDefender(data); err == nil {
			return cfg, local, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parseDefender(defaultDefenderYAML)
	if err != nil {
		return DefaultDefenderConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

func parseDefender(data []byte) (DefenderConfig, error) {
	cfg := DefaultDefenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefenderConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".defender", "configs", filename)
}

// Marshal renders cfg as YAML, as printed by `defender config`.
func Marshal(cfg DefenderConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// ApplyDefenderPreset modifies the config based on a difficulty preset.
func ApplyDefenderPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Structures.Health = 4
		cfg.Gameplay.Lives = 5
		cfg.Physics.SpeedScale = 0.8
	case DifficultyHard:
		cfg.Structures.Health = 2
		cfg.Gameplay.Lives = 2
		cfg.Physics.SpeedScale = 1.25
	}
}
