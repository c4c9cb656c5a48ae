package core

import "math"

// Color is a linear RGB triple. Channels are usually in [0,1] but are only
// clamped when a pixel is written out.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the channel-wise product (filtering one color through another)
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Blend linearly interpolates towards other: c*(1-t) + other*t
func (c Color) Blend(other Color, t float64) Color {
	return c.Multiply(1 - t).Add(other.Multiply(t))
}

// Clamp returns a color with channels clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// IsBlack reports whether all channels are exactly zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Luminance returns the perceptual luminance (Rec. 709 weights)
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// ApproxEqual reports whether two colors differ by at most tolerance per channel
func (c Color) ApproxEqual(other Color, tolerance float64) bool {
	return math.Abs(c.R-other.R) <= tolerance &&
		math.Abs(c.G-other.G) <= tolerance &&
		math.Abs(c.B-other.B) <= tolerance
}

// Distance returns the Euclidean distance between two colors in RGB space
func (c Color) Distance(other Color) float64 {
	dr, dg, db := c.R-other.R, c.G-other.G, c.B-other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
