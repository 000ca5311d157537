package gunner

import "github.com/vovakirdan/gunner/internal/core"

// Viewport bounds in world units.
const (
	ViewMin = -1.0
	ViewMax = 1.0
)

// IsOffScreen reports whether the entity has left the viewport through the
// left, right or bottom edge. Leaving through the top does not count: rocks
// enter from there.
func IsOffScreen(e *Entity) bool {
	b := core.BoundsOf(e.WorldVertices())
	return b.MaxX < ViewMin || b.MinX > ViewMax || b.MaxY < ViewMin
}

// IsAboveScreen reports whether the entity has fully risen past the top edge.
func IsAboveScreen(e *Entity) bool {
	return core.BoundsOf(e.WorldVertices()).MinY > ViewMax
}

// Contains reports whether the world-space point lies inside the entity's polygon.
func Contains(e *Entity, p core.Vec2) bool {
	return core.PolygonContains(e.WorldVertices(), p)
}

// Intersects reports whether any vertex of a lies inside b.
// The test is one-directional: it suits small shapes hitting larger ones and
// misses a small polygon that swallows b without any vertex crossing.
func Intersects(a, b *Entity) bool {
	poly := b.WorldVertices()
	for _, v := range a.WorldVertices() {
		if core.PolygonContains(poly, v) {
			return true
		}
	}
	return false
}

// Touches runs Intersects both ways.
func Touches(a, b *Entity) bool {
	return Intersects(a, b) || Intersects(b, a)
}
