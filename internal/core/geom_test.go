package core

import "testing"

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Circle{X: 0, Y: 0, Radius: 10},
			b:        Circle{X: 15, Y: 0, Radius: 10},
			expected: true,
		},
		{
			name:     "far apart",
			a:        Circle{X: 0, Y: 0, Radius: 10},
			b:        Circle{X: 100, Y: 100, Radius: 10},
			expected: false,
		},
		{
			name:     "touching is not intersecting",
			a:        Circle{X: 0, Y: 0, Radius: 10},
			b:        Circle{X: 20, Y: 0, Radius: 10},
			expected: false,
		},
		{
			name:     "diagonal just inside",
			a:        Circle{X: 0, Y: 0, Radius: 5},
			b:        Circle{X: 6, Y: 8, Radius: 5.01},
			expected: true,
		},
		{
			name:     "contained",
			a:        Circle{X: 50, Y: 50, Radius: 30},
			b:        Circle{X: 55, Y: 45, Radius: 2},
			expected: true,
		},
		{
			name:     "point inside circle",
			a:        Circle{X: 10, Y: 10, Radius: 0},
			b:        Circle{X: 12, Y: 10, Radius: 3},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Intersects(tc.a, tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
