package gunner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gunner/internal/config"
	"github.com/vovakirdan/gunner/internal/core"
)

// Unit shapes, scaled per entity at construction.
var (
	shipShape = []core.Vec2{
		{X: 0, Y: 1},
		{X: -0.5, Y: 0},
		{X: 0.5, Y: 0},
	}

	projectileShape = []core.Vec2{
		{X: 0, Y: 1},
		{X: -0.4, Y: 0},
		{X: 0, Y: -1},
		{X: 0.4, Y: 0},
	}
)

// NewShip builds the player ship: an apex-up triangle near the bottom edge.
func NewShip(cfg config.ShipConfig) Entity {
	e := Entity{
		Transform: core.NewTransform(shipShape),
		Kind:      KindShip,
		MaxStep:   cfg.MaxStep,
	}
	e.Scale(cfg.Scale, cfg.Scale)
	e.Position = core.V(0, cfg.Y)
	return e
}

// NewProjectile builds a shot centered at the given point, rising.
func NewProjectile(cfg config.ProjectileConfig, at core.Vec2) Entity {
	e := Entity{
		Transform: core.NewTransform(projectileShape),
		Kind:      KindProjectile,
		Velocity:  core.V(0, cfg.RiseSpeed),
	}
	e.Scale(cfg.Scale, cfg.Scale)
	e.Position = at
	return e
}

// NewAsteroid builds a large rock at the given point.
// fallFactor scales the randomized fall speed (1 keeps the configured range).
func NewAsteroid(rng *rand.Rand, cfg config.AsteroidConfig, at core.Vec2, fallFactor float64) Entity {
	return newRock(rng, cfg, KindAsteroid, cfg.Scale, at, fallFactor)
}

// NewFragment builds a small rock left behind by a destroyed asteroid.
func NewFragment(rng *rand.Rand, cfg config.AsteroidConfig, at core.Vec2, fallFactor float64) Entity {
	return newRock(rng, cfg, KindFragment, cfg.Scale*cfg.FragmentScale, at, fallFactor)
}

func newRock(rng *rand.Rand, cfg config.AsteroidConfig, kind Kind, scale float64, at core.Vec2, fallFactor float64) Entity {
	n := RandomVertexCount(rng, cfg.MinVertices, cfg.MaxVertices)
	e := Entity{
		Transform: core.Transform{Local: RandomPolygon(rng, n)},
		Kind:      kind,
	}
	e.Scale(scale, scale)
	e.Position = at

	e.Velocity.Y = -uniform(rng, cfg.MinFallSpeed, cfg.MaxFallSpeed) * fallFactor
	e.Spin = uniform(rng, -cfg.RotateSpeedRange, cfg.RotateSpeedRange)
	// Drift back toward the center column
	e.Velocity.X = -math.Copysign(1, at.X) * rng.Float64() * cfg.MaxDrift
	return e
}

// RandomVertexCount picks a vertex count uniformly from [lo, hi).
func RandomVertexCount(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// RandomPolygon generates a random convex-ish polygon around the origin with
// n vertices, one per equal angular sector, all within the unit disk.
//
// Each new vertex is kept inside the line through the two vertices before it,
// which keeps the hull from folding over itself. The closing vertex is bounded
// against both its predecessors and the first edge, and may still end up
// slightly concave.
func RandomPolygon(rng *rand.Rand, n int) []core.Vec2 {
	if n < 4 {
		n = 4
	}

	sector := 2 * math.Pi / float64(n)
	pts := make([]core.Vec2, n)
	pts[0] = polar(uniform(rng, 0.5, 1.0), 0)
	pts[1] = polar(uniform(rng, 0.5, 1.0), sector)

	for i := 2; i < n-1; i++ {
		dir := polar(1, float64(i)*sector)
		rMax := rayToLine(dir, pts[i-2], pts[i-1])
		if math.IsNaN(rMax) || rMax < 0 {
			rMax = 1
		}
		rMax = math.Min(rMax, 1)
		pts[i] = dir.Scale(uniform(rng, rMax/2, rMax))
	}

	last := n - 1
	dir := polar(1, float64(last)*sector)
	rMax := math.Min(
		rayToLine(dir, pts[last-2], pts[last-1]),
		rayToLine(dir, pts[0], pts[1]),
	)
	rMax = math.Min(rMax, 1)
	rMin := rayToLine(dir, pts[last-1], pts[0])

	switch {
	case math.IsNaN(rMax) || rMax < 0:
		rMax, rMin = 1, 0.5
	case math.IsNaN(rMin) || rMin < 0 || rMin > rMax:
		rMin = rMax / 2
	}
	pts[last] = dir.Scale(uniform(rng, rMin, rMax))

	return pts
}

// rayToLine returns the distance along the unit ray dir (from the origin) to
// the line through a and b. The result is negative when the line lies behind
// the origin and infinite when the ray is parallel to it.
func rayToLine(dir, a, b core.Vec2) float64 {
	return (a.Y*b.X - a.X*b.Y) / (dir.Y*(b.X-a.X) + dir.X*(a.Y-b.Y))
}

func polar(r, angle float64) core.Vec2 {
	sin, cos := math.Sincos(angle)
	return core.V(r*cos, r*sin)
}

// uniform draws from [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
