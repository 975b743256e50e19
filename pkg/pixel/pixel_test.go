package pixel

import "testing"

// TestScale tests channel scaling with clamping and rounding
func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		factor float64
		want   Color
	}{
		{
			name:   "doubling clamps the high channel",
			color:  Color{R: 100, G: 200, B: 50},
			factor: 2.0,
			want:   Color{R: 200, G: 255, B: 100},
		},
		{
			name:   "halving rounds to nearest",
			color:  Color{R: 5, G: 100, B: 255},
			factor: 0.5,
			want:   Color{R: 3, G: 50, B: 128},
		},
		{
			name:   "zero factor blanks all channels",
			color:  Color{R: 255, G: 255, B: 255},
			factor: 0,
			want:   Color{},
		},
		{
			name:   "identity",
			color:  Color{R: 1, G: 2, B: 3},
			factor: 1.0,
			want:   Color{R: 1, G: 2, B: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.Scale(tt.factor)
			if got != tt.want {
				t.Errorf("Scale(%v) = %v, want %v", tt.factor, got, tt.want)
			}
		})
	}
}

// TestDiv tests that division is multiplication by the reciprocal
func TestDiv(t *testing.T) {
	c := Color{R: 200, G: 101, B: 7}
	if got, want := c.Div(2), c.Scale(0.5); got != want {
		t.Errorf("Div(2) = %v, want %v", got, want)
	}
	if got, want := c.Div(0.5), c.Scale(2); got != want {
		t.Errorf("Div(0.5) = %v, want %v", got, want)
	}
}

// TestGamma tests the shape of the gamma curve
func TestGamma(t *testing.T) {
	if got := (Color{}).Gamma(); got != (Color{}) {
		t.Errorf("Gamma(black) = %v, want black", got)
	}
	if got := (Color{R: 255, G: 255, B: 255}).Gamma(); got != (Color{R: 255, G: 255, B: 255}) {
		t.Errorf("Gamma(white) = %v, want white", got)
	}

	// The remap must be monotone: a brighter input never maps to a
	// darker output.
	prev := uint8(0)
	for i := 0; i < 256; i++ {
		got := Color{R: uint8(i)}.Gamma().R
		if got < prev {
			t.Fatalf("gamma not monotone at input %d: %d < %d", i, got, prev)
		}
		prev = got
	}
}

// TestGradientAt tests the diagnostic gradient formula
func TestGradientAt(t *testing.T) {
	base := Color{R: 255, G: 128, B: 64}

	brightest := GradientAt(base, 1, 1)
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			c := GradientAt(base, row, col)
			if c.R > brightest.R || c.G > brightest.G || c.B > brightest.B {
				t.Errorf("cell (%d, %d) = %v brighter than (1, 1) = %v", row, col, c, brightest)
			}
		}
	}

	// Intensity is non-increasing as row²+col grows.
	for r1 := 1; r1 <= 8; r1++ {
		for c1 := 1; c1 <= 8; c1++ {
			for r2 := 1; r2 <= 8; r2++ {
				for c2 := 1; c2 <= 8; c2++ {
					if r1*r1+c1 >= r2*r2+c2 {
						continue
					}
					near, far := GradientAt(base, r1, c1), GradientAt(base, r2, c2)
					if far.R > near.R || far.G > near.G || far.B > near.B {
						t.Fatalf("gradient increases from (%d, %d)=%v to (%d, %d)=%v",
							r1, c1, near, r2, c2, far)
					}
				}
			}
		}
	}
}
