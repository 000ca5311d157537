// Package gunner implements a small asteroid shooter.
// A ship at the bottom of the viewport fires upward at falling rocks; large
// asteroids break into fragments when hit, and the run ends when any rock
// reaches the ship.
package gunner

import (
	"github.com/vovakirdan/gunner/internal/core"
)

// Kind tags the variant of an Entity.
type Kind int

const (
	KindShip Kind = iota
	KindProjectile
	KindAsteroid
	KindFragment
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindAsteroid:
		return "asteroid"
	case KindFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// IsRock reports whether the kind is an asteroid or a fragment.
func (k Kind) IsRock() bool {
	return k == KindAsteroid || k == KindFragment
}

// Entity is any simulated object in the scene.
// The embedded Transform holds the shape and pose; the remaining fields are
// motion parameters whose meaning depends on Kind.
type Entity struct {
	core.Transform
	Kind Kind

	// Velocity is the fall drift (x) and fall speed (y) for rocks and the
	// rise speed (y) for projectiles, in world units per second.
	Velocity core.Vec2

	// Spin is added to Rotation every tick for rocks.
	Spin float64

	// MaxStep bounds a single horizontal nudge of the ship.
	MaxStep float64
}

// integrate advances the entity by one tick of dt seconds.
func (e *Entity) integrate(dt float64) {
	e.Translate(e.Velocity.X*dt, e.Velocity.Y*dt)
	if e.Kind.IsRock() {
		e.Rotate(e.Spin)
	}
}
