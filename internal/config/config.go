// Package config provides YAML-based game configuration loading and
// difficulty management for the gunner platform.
package config

// GunnerConfig contains all configuration for the asteroid shooter.
// Distances are in world units (the viewport spans [-1, 1] on both axes),
// speeds in world units per second.
type GunnerConfig struct {
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Simulation SimulationConfig `yaml:"simulation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Scale   float64 `yaml:"scale"`
	Y       float64 `yaml:"y"`
	MaxStep float64 `yaml:"max_step"` // Largest horizontal nudge per tap
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Scale     float64 `yaml:"scale"`
	RiseSpeed float64 `yaml:"rise_speed"`
}

// AsteroidConfig defines asteroid shapes, motion and spawning.
type AsteroidConfig struct {
	Scale            float64 `yaml:"scale"`
	FragmentScale    float64 `yaml:"fragment_scale"` // Relative to Scale
	MinVertices      int     `yaml:"min_vertices"`
	MaxVertices      int     `yaml:"max_vertices"` // Exclusive
	MinFallSpeed     float64 `yaml:"min_fall_speed"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	RotateSpeedRange float64 `yaml:"rotate_speed_range"` // Radians per tick, symmetric
	MaxDrift         float64 `yaml:"max_drift"`
	InitialCount     int     `yaml:"initial_count"`
	SpawnRate        float64 `yaml:"spawn_rate"` // Mean arrivals per second
	FragmentCount    int     `yaml:"fragment_count"`
}

// ScoringConfig defines points per destroyed rock.
type ScoringConfig struct {
	AsteroidPoints int `yaml:"asteroid_points"`
	FragmentPoints int `yaml:"fragment_points"`
}

// SimulationConfig holds frame-step limits.
type SimulationConfig struct {
	MaxDT float64 `yaml:"max_dt"` // Upper clamp for a single tick, seconds
}

// DifficultyConfig defines the difficulty progression system.
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to fall speed multiplier at max difficulty
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Added to spawn rate multiplier at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
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
