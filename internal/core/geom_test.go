package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        RectF{X: 0, Y: 0, W: 32, H: 32},
			b:        RectF{X: 16, Y: 16, W: 32, H: 32},
			expected: true,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        RectF{X: 0, Y: 0, W: 32, H: 32},
			b:        RectF{X: 32, Y: 0, W: 32, H: 32},
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        RectF{X: 0, Y: 0, W: 32, H: 32},
			b:        RectF{X: 0, Y: 32, W: 32, H: 32},
			expected: false,
		},
		{
			name:     "sub-pixel overlap",
			a:        RectF{X: 0, Y: 0, W: 32, H: 32},
			b:        RectF{X: 31.5, Y: 31.5, W: 4, H: 4},
			expected: true,
		},
		{
			name:     "contained box",
			a:        RectF{X: 0, Y: 0, W: 56, H: 56},
			b:        RectF{X: 10, Y: 10, W: 8, H: 8},
			expected: true,
		},
		{
			name:     "far apart",
			a:        RectF{X: 0, Y: 0, W: 32, H: 32},
			b:        RectF{X: 100, Y: 100, W: 32, H: 32},
			expected: false,
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

func TestRectFEdges(t *testing.T) {
	r := NewRectF(V(5, 10), 20, 16)

	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 26 {
		t.Errorf("Bottom() = %f, expected 26", r.Bottom())
	}
	if c := r.Center(); c != V(15, 18) {
		t.Errorf("Center() = %v, expected (15, 18)", c)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b     float64
		expected int
	}{
		{64, 32, 2},
		{63.9, 32, 1},
		{0, 32, 0},
		{-0.5, 32, -1},
		{-32, 32, -1},
		{-33, 32, -2},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("FloorDiv(%f, %f) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestClampFAndSign(t *testing.T) {
	if got := ClampF(2.2, -2, 2); got != 2 {
		t.Errorf("ClampF(2.2, -2, 2) = %f, expected 2", got)
	}
	if got := ClampF(-2.2, -2, 2); got != -2 {
		t.Errorf("ClampF(-2.2, -2, 2) = %f, expected -2", got)
	}
	if Sign(-0.1) != -1 || Sign(0) != 0 || Sign(3) != 1 {
		t.Error("Sign() returned an unexpected value")
	}
}
