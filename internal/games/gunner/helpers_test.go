package gunner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gunner/internal/config"
	"github.com/vovakirdan/gunner/internal/core"
)

const eps = 1e-9

// quietConfig disables random arrivals and the initial wave so tests control
// every entity in the scene.
func quietConfig() config.GunnerConfig {
	cfg := config.DefaultGunnerConfig()
	cfg.Asteroids.SpawnRate = 0
	cfg.Asteroids.InitialCount = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestScene(cfg config.GunnerConfig) *Scene {
	return NewScene(cfg, rand.New(rand.NewSource(1)))
}

// square builds a motionless axis-aligned square entity.
func square(kind Kind, half float64, at core.Vec2) Entity {
	e := Entity{
		Transform: core.NewTransform([]core.Vec2{
			{X: -half, Y: -half},
			{X: half, Y: -half},
			{X: half, Y: half},
			{X: -half, Y: half},
		}),
		Kind: kind,
	}
	e.Position = at
	return e
}

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}
