package pixel

import "math"

// Color represents one RGB pixel with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// Named colors used by the diagnostic patterns.
var (
	Red   = Color{R: 255}
	Green = Color{G: 255}
	Blue  = Color{B: 255}
)

// gammaTable remaps linear channel values to perceptual brightness
// using a 2.2 power curve. Computed once at package init so the hot
// path is a plain lookup.
var gammaTable [256]uint8

func init() {
	for i := range gammaTable {
		gammaTable[i] = uint8(math.Round(255 * math.Pow(float64(i)/255, 2.2)))
	}
}

// Gamma returns the gamma-corrected color.
func (c Color) Gamma() Color {
	return Color{R: gammaTable[c.R], G: gammaTable[c.G], B: gammaTable[c.B]}
}

// Scale multiplies each channel by f, clamping to [0, 255] and
// rounding to the nearest integer.
func (c Color) Scale(f float64) Color {
	scale := func(ch uint8) uint8 {
		return uint8(math.Round(math.Min(math.Max(float64(ch)*f, 0), 255)))
	}
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Div divides each channel by f. Division is multiplication by the
// reciprocal.
func (c Color) Div(f float64) Color {
	return c.Scale(1 / f)
}

// GradientAt attenuates base for the 1-based matrix cell (row, col):
// each channel is divided by 1+row²+col and truncated. Cell (1, 1) is
// the brightest and intensity never increases as row²+col grows.
func GradientAt(base Color, row, col int) Color {
	d := float64(1 + row*row + col)
	return Color{
		R: uint8(float64(base.R) / d),
		G: uint8(float64(base.G) / d),
		B: uint8(float64(base.B) / d),
	}
}
