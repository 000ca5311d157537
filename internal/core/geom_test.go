package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		angle    float64
		expected Vec2
	}{
		{"zero angle", V(1, 0), 0, V(1, 0)},
		{"quarter turn", V(1, 0), math.Pi / 2, V(0, 1)},
		{"half turn", V(1, 0), math.Pi, V(-1, 0)},
		{"negative quarter", V(0, 1), -math.Pi / 2, V(1, 0)},
		{"origin stays put", V(0, 0), 1.234, V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.angle)
			if !near(got.X, tc.expected.X) || !near(got.Y, tc.expected.Y) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.angle, got, tc.expected)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add = %v, expected (4, -2)", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub = %v, expected (-2, 6)", got)
	}
	if got := b.Scale(0.5); got != V(1.5, -2) {
		t.Errorf("Scale = %v, expected (1.5, -2)", got)
	}
	if got := b.Len(); !near(got, 5) {
		t.Errorf("Len = %v, expected 5", got)
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]Vec2{V(0.5, -1), V(-2, 3), V(1, 0)})
	expected := Bounds{MinX: -2, MinY: -1, MaxX: 1, MaxY: 3}
	if b != expected {
		t.Errorf("BoundsOf = %+v, expected %+v", b, expected)
	}

	if empty := BoundsOf(nil); empty != (Bounds{}) {
		t.Errorf("BoundsOf(nil) = %+v, expected zero box", empty)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0", got)
	}
	if got := ClampF(7.5, 0, 1); got != 1 {
		t.Errorf("ClampF(7.5, 0, 1) = %f, expected 1", got)
	}
}
