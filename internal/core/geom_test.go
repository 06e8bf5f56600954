package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same center",
			a:        Box{X: 200, Y: 60, W: 4, H: 12},
			b:        Box{X: 200, Y: 60, W: 20, H: 20},
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "apart horizontally",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "apart vertically",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges horizontal (no overlap)",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges vertical (no overlap)",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 0, Y: 10, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "x overlaps but y does not",
			a:        Box{X: 140, Y: 100, W: 4, H: 12},
			b:        Box{X: 140, Y: 60, W: 20, H: 20},
			expected: false,
		},
		{
			name:     "contained",
			a:        Box{X: 10, Y: 10, W: 20, H: 20},
			b:        Box{X: 12, Y: 12, W: 2, H: 2},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 200, Y: 380, W: 40, H: 40}

	if b.Left() != 180 {
		t.Errorf("Left() = %f, expected 180", b.Left())
	}
	if b.Top() != 360 {
		t.Errorf("Top() = %f, expected 360", b.Top())
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
		{400, 20, 380, 380},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" White ")
	if err != nil {
		t.Fatalf("ParseColor() failed: %v", err)
	}
	if c != ColorWhite {
		t.Errorf("ParseColor(White) = %v, expected white", c)
	}

	if _, err := ParseColor("ultraviolet"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}

	var decoded Color
	if err := decoded.UnmarshalText([]byte("silver")); err != nil {
		t.Fatalf("UnmarshalText() failed: %v", err)
	}
	if decoded != ColorSilver {
		t.Errorf("UnmarshalText(silver) = %v", decoded)
	}
}
