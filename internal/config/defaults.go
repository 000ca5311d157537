package config

import (
	_ "embed"
)

//go:embed defaults/gunner.yaml
var defaultGunnerYAML []byte

// DefaultGunnerConfig returns the hardcoded default configuration.
// It mirrors defaults/gunner.yaml and backs the loader if the embed is unusable.
func DefaultGunnerConfig() GunnerConfig {
	return GunnerConfig{
		Ship: ShipConfig{
			Scale:   0.15,
			Y:       -0.95,
			MaxStep: 0.15,
		},
		Projectile: ProjectileConfig{
			Scale:     0.04,
			RiseSpeed: 0.7,
		},
		Asteroids: AsteroidConfig{
			Scale:            0.2,
			FragmentScale:    0.3,
			MinVertices:      4,
			MaxVertices:      10,
			MinFallSpeed:     0.3,
			MaxFallSpeed:     0.6,
			RotateSpeedRange: 0.05,
			MaxDrift:         0.1,
			InitialCount:     2,
			SpawnRate:        1.0,
			FragmentCount:    4,
		},
		Scoring: ScoringConfig{
			AsteroidPoints: 1,
			FragmentPoints: 2,
		},
		Simulation: SimulationConfig{
			MaxDT: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnMultiplier: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "gunner":
		return defaultGunnerYAML
	default:
		return nil
	}
}
