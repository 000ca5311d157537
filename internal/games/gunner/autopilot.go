package gunner

// AimX picks a column to fire at: the lowest rock still on screen, since it
// is the closest threat. With no rocks around it keeps the ship where it is.
func AimX(s *Scene) float64 {
	target := s.ship.Position.X
	lowest := ViewMax + 1
	for i := range s.entities {
		e := &s.entities[i]
		if !e.Kind.IsRock() || e.Position.Y >= lowest {
			continue
		}
		lowest = e.Position.Y
		target = e.Position.X
	}
	return target
}
