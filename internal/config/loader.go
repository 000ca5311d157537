package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGunner loads the game configuration.
// Search order: customPath -> ~/.gunner/configs/gunner.yaml -> ./configs/gunner.yaml -> embedded default.
// Files are layered over the defaults, so a partial YAML only overrides the keys it names.
func LoadGunner(customPath string) (GunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGunnerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseGunner(data)
		if err != nil {
			return DefaultGunnerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("gunner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseGunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "gunner.yaml")); err == nil {
		if cfg, err := parseGunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseGunner(defaultGunnerYAML)
	if err != nil {
		return DefaultGunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseGunner decodes YAML on top of the hardcoded defaults and validates the result.
func parseGunner(data []byte) (GunnerConfig, error) {
	cfg := DefaultGunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c GunnerConfig) Validate() error {
	a := c.Asteroids
	if a.MinVertices < 4 {
		return fmt.Errorf("asteroids.min_vertices must be at least 4, got %d", a.MinVertices)
	}
	if a.MaxVertices <= a.MinVertices {
		return fmt.Errorf("asteroids.max_vertices (%d) must exceed min_vertices (%d)", a.MaxVertices, a.MinVertices)
	}
	if a.MaxFallSpeed < a.MinFallSpeed {
		return fmt.Errorf("asteroids.max_fall_speed (%g) is below min_fall_speed (%g)", a.MaxFallSpeed, a.MinFallSpeed)
	}
	if a.SpawnRate < 0 || a.FragmentCount < 0 || a.InitialCount < 0 {
		return fmt.Errorf("asteroids: spawn_rate, fragment_count and initial_count must not be negative")
	}
	if c.Simulation.MaxDT <= 0 {
		return fmt.Errorf("simulation.max_dt must be positive, got %g", c.Simulation.MaxDT)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gunner", "configs", filename)
}

// ApplyGunnerPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyGunnerPreset(cfg *GunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Asteroids.InitialCount = 1
		cfg.Ship.MaxStep = 0.2
	case DifficultyHard:
		cfg.Asteroids.InitialCount = 4
		cfg.Ship.MaxStep = 0.1
	}
}
