package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "thin probe inside tile",
			a:        NewRect(0, 30, 30, 10),
			b:        NewRect(0, 30, 30, 30),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	r := NewRect(100, 100, 30, 30)

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"center inside", V(110, 110), 5, true},
		{"touching left edge from outside", V(96, 115), 5, true},
		{"just out of reach left", V(94, 115), 5, false},
		{"near corner inside radius", V(97, 97), 5, true},
		{"near corner outside radius", V(95, 95), 5, false},
		{"far away", V(300, 300), 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleIntersectsRect(tc.center, tc.radius, r); got != tc.expected {
				t.Errorf("CircleIntersectsRect(%v, %v) = %v, expected %v", tc.center, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestVecRotate(t *testing.T) {
	v := V(1, 0).Rotate(90)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Errorf("Rotate(90) = %v, expected (0, 1)", v)
	}

	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalize length = %f, expected 1", n.Len())
	}

	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Normalize of zero vector = %v, expected zero", z)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		v, size  float64
		expected int
	}{
		{0, 30, 0},
		{29.9, 30, 0},
		{30, 30, 1},
		{-0.1, 30, -1},
		{95, 30, 3},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.v, tc.size); got != tc.expected {
			t.Errorf("FloorDiv(%f, %f) = %d, expected %d", tc.v, tc.size, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
