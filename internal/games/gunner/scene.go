package gunner

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/gunner/internal/config"
	"github.com/vovakirdan/gunner/internal/core"
)

// fragmentRequest remembers where a destroyed asteroid should break apart.
type fragmentRequest struct {
	origin core.Vec2
	count  int
}

// Scene owns the ship and every other live entity and advances them together.
//
// A tick integrates all motion first and resolves collisions afterwards, so a
// collision never sees one entity in its old pose and another in its new one.
// Entities that leave the screen or get destroyed are only marked while the
// tick walks the entity list; they are removed in one pass at the end.
type Scene struct {
	cfg        config.GunnerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	ship     Entity
	entities []Entity

	removals  []int
	fragments *fragmentRequest

	score int
	over  bool
	ticks int
}

// NewScene creates a scene with the ship in place and the initial wave of
// asteroids at the top edge.
func NewScene(cfg config.GunnerConfig, rng *rand.Rand) *Scene {
	s := &Scene{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
		ship:       NewShip(cfg.Ship),
	}
	for i, n := 0, cfg.Asteroids.InitialCount; i < n; i++ {
		s.spawnAsteroid()
	}
	return s
}

// FireAt launches a projectile from the ship's apex and then nudges the ship
// toward column x, at most MaxStep per call. The ship never leaves [-1, 1].
// The vertical coordinate of the tap is not used.
func (s *Scene) FireAt(x, _ float64) {
	apex := core.V(s.ship.Position.X, core.BoundsOf(s.ship.WorldVertices()).MaxY)
	s.entities = append(s.entities, NewProjectile(s.cfg.Projectile, apex))

	step := core.ClampF(x-s.ship.Position.X, -s.ship.MaxStep, s.ship.MaxStep)
	s.ship.Translate(step, 0)
	s.ship.Position.X = core.ClampF(s.ship.Position.X, ViewMin, ViewMax)
}

// Tick advances the scene by dt seconds.
// dt is clamped to [0, simulation.max_dt]; a zero dt still resolves
// collisions and spins rocks.
func (s *Scene) Tick(dt float64) {
	dt = core.ClampF(dt, 0, s.cfg.Simulation.MaxDT)
	s.ticks++

	rate := s.difficulty.SpawnRate(s.cfg.Asteroids.SpawnRate, s.score, s.ticks)
	if s.rng.Float64() < dt*rate {
		s.spawnAsteroid()
	}

	for i := range s.entities {
		s.entities[i].integrate(dt)
	}

	marked := make([]bool, len(s.entities))
	for i := range s.entities {
		if marked[i] {
			continue
		}
		e := &s.entities[i]

		switch e.Kind {
		case KindAsteroid, KindFragment:
			if IsOffScreen(e) {
				s.markRemoved(i, marked)
				continue
			}
			if Touches(&s.ship, e) {
				s.over = true
			}

		case KindProjectile:
			if IsOffScreen(e) || IsAboveScreen(e) {
				s.markRemoved(i, marked)
				continue
			}
			s.resolveHit(i, marked)
		}
	}

	s.entities = removeMarked(s.entities, s.removals)
	s.removals = s.removals[:0]

	if req := s.fragments; req != nil {
		s.fragments = nil
		fall := s.fallFactor()
		for i, n := 0, req.count; i < n; i++ {
			s.entities = append(s.entities, NewFragment(s.rng, s.cfg.Asteroids, req.origin, fall))
		}
	}
}

// resolveHit checks projectile i against every live rock. A projectile
// destroys at most one rock; rocks already marked this tick are skipped.
func (s *Scene) resolveHit(i int, marked []bool) {
	shot := &s.entities[i]
	for j := range s.entities {
		rock := &s.entities[j]
		if j == i || marked[j] || !rock.Kind.IsRock() {
			continue
		}
		if !Intersects(shot, rock) {
			continue
		}

		s.markRemoved(i, marked)
		s.markRemoved(j, marked)
		if rock.Kind == KindAsteroid {
			s.score += s.cfg.Scoring.AsteroidPoints
			// Only one breakup is kept per tick; a later hit replaces it
			s.fragments = &fragmentRequest{origin: rock.Position, count: s.cfg.Asteroids.FragmentCount}
		} else {
			s.score += s.cfg.Scoring.FragmentPoints
		}
		return
	}
}

func (s *Scene) markRemoved(i int, marked []bool) {
	marked[i] = true
	s.removals = append(s.removals, i)
}

// removeMarked deletes the entities at the given indices, keeping the
// relative order of the survivors. Duplicate and out-of-range indices are
// ignored.
func removeMarked(entities []Entity, indices []int) []Entity {
	if len(indices) == 0 {
		return entities
	}
	slices.Sort(indices)
	indices = slices.Compact(indices)

	// Back to front so earlier indices stay valid
	for k := len(indices) - 1; k >= 0; k-- {
		i := indices[k]
		if i < 0 || i >= len(entities) {
			continue
		}
		entities = slices.Delete(entities, i, i+1)
	}
	return entities
}

func (s *Scene) spawnAsteroid() {
	at := core.V(uniform(s.rng, ViewMin, ViewMax), ViewMax)
	s.entities = append(s.entities, NewAsteroid(s.rng, s.cfg.Asteroids, at, s.fallFactor()))
}

func (s *Scene) fallFactor() float64 {
	return s.difficulty.FallSpeed(1, s.score, s.ticks)
}

// Spawn adds an entity to the scene. The scene owns exactly one ship, so
// spawning another one is a programming error.
func (s *Scene) Spawn(e Entity) {
	if e.Kind == KindShip {
		panic("gunner: scene already has a ship")
	}
	s.entities = append(s.entities, e)
}

// IsOver reports whether a rock has reached the ship. Once set it stays set.
func (s *Scene) IsOver() bool {
	return s.over
}

// Score returns the points collected so far.
func (s *Scene) Score() int {
	return s.score
}

// GameOverText is the banner shown once the run has ended.
func (s *Scene) GameOverText() string {
	return fmt.Sprintf("GAME OVER - score: %d", s.score)
}

// Ship returns a copy of the player ship.
func (s *Scene) Ship() Entity {
	return s.ship
}

// Entities returns the live non-ship entities in insertion order.
// The slice is owned by the scene and is only valid until the next Tick.
func (s *Scene) Entities() []Entity {
	return s.entities
}

// Ticks returns how many ticks have run.
func (s *Scene) Ticks() int {
	return s.ticks
}
