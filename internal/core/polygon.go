package core

// PolygonContains reports whether p lies inside the closed polygon using
// even-odd ray casting. Works for non-convex input; points exactly on an
// edge may land on either side.
func PolygonContains(poly []Vec2, p Vec2) bool {
	if len(poly) < 3 {
		return false
	}

	inside := false
	prev := poly[len(poly)-1]
	for _, curr := range poly {
		if (curr.Y > p.Y) != (prev.Y > p.Y) {
			// x of the edge at height p.Y
			edgeX := curr.X + (p.Y-curr.Y)*(prev.X-curr.X)/(prev.Y-curr.Y)
			if p.X < edgeX {
				inside = !inside
			}
		}
		prev = curr
	}
	return inside
}
