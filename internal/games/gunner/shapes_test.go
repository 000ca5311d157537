package gunner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/gunner/internal/config"
	"github.com/vovakirdan/gunner/internal/core"
)

func TestRandomPolygonStaysInUnitDisk(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for n := 4; n < 10; n++ {
			poly := RandomPolygon(rng, n)
			if len(poly) != n {
				t.Fatalf("seed %d: len = %d, expected %d", seed, len(poly), n)
			}
			for i, v := range poly {
				if math.IsNaN(v.X) || math.IsNaN(v.Y) {
					t.Fatalf("seed %d n %d: vertex %d is NaN", seed, n, i)
				}
				if v.Len() > 1+eps {
					t.Errorf("seed %d n %d: vertex %d at radius %g", seed, n, i, v.Len())
				}
			}
		}
	}
}

func TestRandomPolygonOneVertexPerSector(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 8
	poly := RandomPolygon(rng, n)
	sector := 2 * math.Pi / float64(n)

	for i, v := range poly {
		if v.Len() < 1e-12 {
			continue
		}
		want := polar(1, float64(i)*sector)
		got := v.Scale(1 / v.Len())
		if !near(got.X, want.X) || !near(got.Y, want.Y) {
			t.Errorf("vertex %d direction = (%g, %g), expected (%g, %g)", i, got.X, got.Y, want.X, want.Y)
		}
	}
}

func TestRandomPolygonMinimumVertices(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := len(RandomPolygon(rng, 3)); got != 4 {
		t.Errorf("len = %d, expected 4", got)
	}
}

func TestRandomVertexCount(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		n := RandomVertexCount(rng, 4, 10)
		if n < 4 || n >= 10 {
			t.Fatalf("count %d outside [4, 10)", n)
		}
	}
	if got := RandomVertexCount(rng, 5, 5); got != 5 {
		t.Errorf("empty range = %d, expected 5", got)
	}
}

func TestNewShip(t *testing.T) {
	ship := NewShip(config.DefaultGunnerConfig().Ship)
	want := []core.Vec2{{X: 0, Y: -0.8}, {X: -0.075, Y: -0.95}, {X: 0.075, Y: -0.95}}

	got := ship.WorldVertices()
	for i := range want {
		if !near(got[i].X, want[i].X) || !near(got[i].Y, want[i].Y) {
			t.Errorf("vertex %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	NewShip(config.DefaultGunnerConfig().Ship)
	if shipShape[0].Y != 1 {
		t.Error("building a ship mutated the shared unit shape")
	}
}

func TestRockMotion(t *testing.T) {
	cfg := config.DefaultGunnerConfig().Asteroids
	rng := rand.New(rand.NewSource(11))

	tests := []struct {
		name  string
		x     float64
		drift func(float64) bool
	}{
		{"right side drifts left", 0.5, func(v float64) bool { return v <= 0 && v >= -cfg.MaxDrift }},
		{"left side drifts right", -0.5, func(v float64) bool { return v >= 0 && v <= cfg.MaxDrift }},
		{"center counts as right", 0, func(v float64) bool { return v <= 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				a := NewAsteroid(rng, cfg, core.V(tc.x, 1), 1)
				if !tc.drift(a.Velocity.X) {
					t.Fatalf("drift %g out of range", a.Velocity.X)
				}
				if a.Velocity.Y > -cfg.MinFallSpeed || a.Velocity.Y < -cfg.MaxFallSpeed {
					t.Fatalf("fall speed %g outside [%g, %g]", -a.Velocity.Y, cfg.MinFallSpeed, cfg.MaxFallSpeed)
				}
				if math.Abs(a.Spin) > cfg.RotateSpeedRange {
					t.Fatalf("spin %g beyond %g", a.Spin, cfg.RotateSpeedRange)
				}
			}
		})
	}
}

func TestFragmentIsSmaller(t *testing.T) {
	cfg := config.DefaultGunnerConfig().Asteroids
	rng := rand.New(rand.NewSource(5))
	at := core.V(0.2, 0.3)

	f := NewFragment(rng, cfg, at, 1)
	if f.Kind != KindFragment {
		t.Fatalf("kind = %v, expected fragment", f.Kind)
	}
	limit := cfg.Scale * cfg.FragmentScale
	for _, v := range f.WorldVertices() {
		if v.Sub(at).Len() > limit+eps {
			t.Errorf("vertex %+v farther than %g from center", v, limit)
		}
	}
}
