package core

// Transform pairs a local vertex buffer with a rotation+translation pose.
// World vertices are derived on demand, so changing the pose never leaves
// geometry out of sync.
type Transform struct {
	Local    []Vec2  // Entity-local vertices in winding order
	Position Vec2    // World translation
	Rotation float64 // Radians, applied before translation
}

// NewTransform copies the given local vertices into a transform at the origin.
func NewTransform(local []Vec2) Transform {
	buf := make([]Vec2, len(local))
	copy(buf, local)
	return Transform{Local: buf}
}

// Scale multiplies every local vertex by (sx, sy) about the local origin.
// Only meant to be used while building an entity.
func (t *Transform) Scale(sx, sy float64) {
	for i := range t.Local {
		t.Local[i].X *= sx
		t.Local[i].Y *= sy
	}
}

// Rotate adds delta radians to the pose.
func (t *Transform) Rotate(delta float64) {
	t.Rotation += delta
}

// Translate moves the pose by (dx, dy).
func (t *Transform) Translate(dx, dy float64) {
	t.Position.X += dx
	t.Position.Y += dy
}

// WorldVertices returns a fresh slice of world-space vertices.
func (t Transform) WorldVertices() []Vec2 {
	out := make([]Vec2, len(t.Local))
	for i, p := range t.Local {
		out[i] = p.Rotate(t.Rotation).Add(t.Position)
	}
	return out
}
